package postgres

import (
	"bluecarbon/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Migrate applies the schema for every registry table. Ordered so that
// referenced tables exist before the tables whose constraints point at them.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.AuthenticationModel{},
		&model.RefreshTokenModel{},
		&model.ProjectSiteModel{},
		&model.PlantationRecordModel{},
		&model.CarbonCreditModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
