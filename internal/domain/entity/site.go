package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProjectSite is a registered coastal restoration site. Sites are created by
// NGO or community accounts and are immutable afterwards; the creator reference
// never changes.
type ProjectSite struct {
	ID            uuid.UUID       // The unique identifier for the site.
	Name          string          // Human-readable site name.
	Latitude      decimal.Decimal // Fixed-precision latitude, 6 fractional digits.
	Longitude     decimal.Decimal // Fixed-precision longitude, 6 fractional digits.
	EcosystemType EcosystemType   // Mangrove, seagrass, or salt marsh.
	AreaHectares  decimal.Decimal // Site area in hectares, 2 fractional digits.
	CreatedBy     uuid.UUID       // The account that registered the site.
	CreatedAt     time.Time       // When the site was registered.
}

// PlantationRecord documents a planting activity on a project site. Records
// start unverified; an administrator verifies them exactly once, which also
// issues the site's carbon credits for the record.
type PlantationRecord struct {
	ID             uuid.UUID  // The unique identifier for the record.
	ProjectSiteID  uuid.UUID  // The site this record belongs to.
	DatePlanted    time.Time  // The planting date (date precision).
	Species        string     // Planted species name.
	NumberOfPlants int        // Positive plant count.
	ImagePath      string     // Optional stored image attachment key; empty when absent.
	Verified       bool       // False until an administrator approves.
	UploadedBy     uuid.UUID  // The account that uploaded the record.
	UploadDate     time.Time  // When the record was uploaded.
	VerifiedBy     *uuid.UUID // The verifying administrator; set together with VerifiedDate.
	VerifiedDate   *time.Time // When the record was verified.
}

// MarkVerified transitions the record to the terminal Verified state. Verifier
// and timestamp are set together; callers persist the three fields atomically.
func (r *PlantationRecord) MarkVerified(verifier uuid.UUID, at time.Time) {
	r.Verified = true
	r.VerifiedBy = &verifier
	r.VerifiedDate = &at
}
