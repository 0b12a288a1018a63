package postgres

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"bluecarbon/internal/domain/entity"
	"bluecarbon/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// openIntegrationDB connects to the database named by POSTGRES_TEST_DSN and
// applies the schema. Tests are skipped when the variable is unset so the
// suite stays runnable without a database.
func openIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("POSTGRES_TEST_DSN")
	if dsn == "" {
		t.Skip("POSTGRES_TEST_DSN not set, skipping integration test")
	}

	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	return db
}

// seedSiteWithRecord creates a user, a site owned by that user, and a pending
// record on the site. Usernames get a random suffix so repeated runs against
// the same database do not collide on the unique index.
func seedSiteWithRecord(t *testing.T, db *gorm.DB) (*entity.User, *entity.ProjectSite, *entity.PlantationRecord) {
	t.Helper()
	ctx := context.Background()

	suffix := strings.Split(uuid.NewString(), "-")[0]
	user := &entity.User{
		Username: "it-ngo-" + suffix,
		Email:    "it-ngo-" + suffix + "@example.org",
		Role:     entity.RoleNGO,
	}
	require.NoError(t, NewUserRepository(db).Create(ctx, user))

	site := &entity.ProjectSite{
		Name:          "Integration Bay",
		Latitude:      decimal.RequireFromString("9.931233"),
		Longitude:     decimal.RequireFromString("76.267303"),
		EcosystemType: entity.EcosystemMangrove,
		AreaHectares:  decimal.RequireFromString("12.50"),
		CreatedBy:     user.ID,
	}
	require.NoError(t, NewSiteRepository(db).Create(ctx, site))

	record := &entity.PlantationRecord{
		ProjectSiteID:  site.ID,
		DatePlanted:    time.Date(2024, 7, 20, 0, 0, 0, 0, time.UTC),
		Species:        "Rhizophora mucronata",
		NumberOfPlants: 1000,
		UploadedBy:     user.ID,
		UploadDate:     time.Now().UTC(),
	}
	require.NoError(t, NewRecordRepository(db).Create(ctx, record))

	return user, site, record
}

func TestIntegration_SiteDeleteCascades(t *testing.T) {
	db := openIntegrationDB(t)
	ctx := context.Background()

	_, site, record := seedSiteWithRecord(t, db)

	creditRepo := NewCreditRepository(db)
	credit := entity.NewCarbonCredit(site.ID, record.ID, record.DatePlanted.Year(),
		entity.CalculateCredits(record.NumberOfPlants, entity.EcosystemMangrove), time.Now().UTC())
	require.NoError(t, creditRepo.Create(ctx, credit))

	siteRepo := NewSiteRepository(db)
	recordRepo := NewRecordRepository(db)
	require.NoError(t, siteRepo.Delete(ctx, site.ID))

	_, err := siteRepo.FindByID(ctx, site.ID)
	assert.ErrorIs(t, err, repository.ErrSiteNotFound)

	_, err = recordRepo.FindByID(ctx, record.ID)
	assert.ErrorIs(t, err, repository.ErrRecordNotFound)

	_, err = creditRepo.FindByID(ctx, credit.ID)
	assert.ErrorIs(t, err, repository.ErrCreditNotFound)
}

func TestIntegration_DuplicateIssuanceRejected(t *testing.T) {
	db := openIntegrationDB(t)
	ctx := context.Background()

	_, site, record := seedSiteWithRecord(t, db)

	creditRepo := NewCreditRepository(db)
	amount := entity.CalculateCredits(record.NumberOfPlants, entity.EcosystemMangrove)
	issuedAt := time.Now().UTC()

	first := entity.NewCarbonCredit(site.ID, record.ID, record.DatePlanted.Year(), amount, issuedAt)
	require.NoError(t, creditRepo.Create(ctx, first))

	// Different issuance instant gives a distinct txn hash, so the only
	// constraint in play is the unique record reference.
	second := entity.NewCarbonCredit(site.ID, record.ID, record.DatePlanted.Year(), amount, issuedAt.Add(time.Second))
	err := creditRepo.Create(ctx, second)
	assert.ErrorIs(t, err, repository.ErrDuplicateCredit)

	found, err := creditRepo.FindByRecordID(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)
	assert.True(t, found.CreditsIssued.Equal(decimal.RequireFromString("750")))
}

func TestIntegration_DashboardSums(t *testing.T) {
	db := openIntegrationDB(t)
	ctx := context.Background()

	user, site, record := seedSiteWithRecord(t, db)

	creditRepo := NewCreditRepository(db)
	credit := entity.NewCarbonCredit(site.ID, record.ID, record.DatePlanted.Year(),
		entity.CalculateCredits(record.NumberOfPlants, entity.EcosystemMangrove), time.Now().UTC())
	require.NoError(t, creditRepo.Create(ctx, credit))

	sum, err := creditRepo.SumIssuedBySiteCreator(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, sum.GreaterThanOrEqual(decimal.RequireFromString("750")))

	credits, err := creditRepo.ListBySiteCreator(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, credits, 1)
	assert.Equal(t, credit.ID, credits[0].ID)
}
