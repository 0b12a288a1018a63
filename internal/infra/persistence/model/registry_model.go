package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProjectSiteModel mirrors the 'project_sites' table.
type ProjectSiteModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name          string          `gorm:"type:varchar(200);not null"`
	Latitude      decimal.Decimal `gorm:"type:decimal(9,6);not null"`
	Longitude     decimal.Decimal `gorm:"type:decimal(9,6);not null"`
	EcosystemType string          `gorm:"type:varchar(20);not null"`
	AreaHectares  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedBy     uuid.UUID       `gorm:"type:uuid;not null;index"`
	CreatedAt     time.Time

	// Removing a site takes its records and their credits with it.
	Records []PlantationRecordModel `gorm:"foreignKey:ProjectSiteID;constraint:OnDelete:CASCADE"`
	Credits []CarbonCreditModel     `gorm:"foreignKey:ProjectSiteID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProjectSiteModel) TableName() string {
	return "project_sites"
}

// PlantationRecordModel mirrors the 'plantation_records' table.
type PlantationRecordModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ProjectSiteID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	DatePlanted    time.Time  `gorm:"type:date;not null"`
	Species        string     `gorm:"type:varchar(200);not null"`
	NumberOfPlants int        `gorm:"not null;check:number_of_plants > 0"`
	ImagePath      string     `gorm:"type:varchar(500)"`
	Verified       bool       `gorm:"not null;default:false;index"`
	UploadedBy     uuid.UUID  `gorm:"type:uuid;not null;index"`
	UploadDate     time.Time  `gorm:"not null"`
	VerifiedBy     *uuid.UUID `gorm:"type:uuid"`
	VerifiedDate   *time.Time

	Credit *CarbonCreditModel `gorm:"foreignKey:PlantationRecordID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (PlantationRecordModel) TableName() string {
	return "plantation_records"
}

// CarbonCreditModel mirrors the 'carbon_credits' table. The unique index on
// PlantationRecordID enforces at most one credit per record regardless of
// concurrent verification attempts.
type CarbonCreditModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ProjectSiteID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	PlantationRecordID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Year               int             `gorm:"not null"`
	CreditsIssued      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TxnHash            string          `gorm:"type:varchar(64);unique;not null"`
	IssuedDate         time.Time       `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (CarbonCreditModel) TableName() string {
	return "carbon_credits"
}
