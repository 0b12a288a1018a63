package repository

import (
	"context"

	"bluecarbon/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SiteRepository defines persistence operations for project sites.
type SiteRepository interface {
	// Create persists a new project site.
	Create(ctx context.Context, site *entity.ProjectSite) error

	// FindByID retrieves a single site by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ProjectSite, error)

	// ListByCreator retrieves all sites registered by the given account.
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]*entity.ProjectSite, error)

	// ListAll retrieves every registered site.
	ListAll(ctx context.Context) ([]*entity.ProjectSite, error)

	// Delete removes a site. The schema cascades the delete to the site's
	// plantation records and their carbon credits.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountAll reports the number of registered sites.
	CountAll(ctx context.Context) (int64, error)
}

// RecordRepository defines persistence operations for plantation records.
type RecordRepository interface {
	// Create persists a new record in the unverified state.
	Create(ctx context.Context, record *entity.PlantationRecord) error

	// FindByID retrieves a single record by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PlantationRecord, error)

	// ListByUploader retrieves all records uploaded by the given account.
	ListByUploader(ctx context.Context, uploaderID uuid.UUID) ([]*entity.PlantationRecord, error)

	// ListPending retrieves all records awaiting verification.
	ListPending(ctx context.Context) ([]*entity.PlantationRecord, error)

	// ListAll retrieves every record.
	ListAll(ctx context.Context) ([]*entity.PlantationRecord, error)

	// MarkVerified persists the verified flag, verifier, and verification
	// timestamp of an approved record in a single update.
	MarkVerified(ctx context.Context, record *entity.PlantationRecord) error

	// CountAll reports the number of records.
	CountAll(ctx context.Context) (int64, error)

	// CountVerified reports the number of verified records.
	CountVerified(ctx context.Context) (int64, error)
}

// CreditRepository defines persistence operations for carbon credit issuances.
type CreditRepository interface {
	// Create persists a new issuance. Returns ErrDuplicateCredit when an
	// issuance already exists for the record; the unique constraint on the
	// record reference is the storage-level double-issuance guard.
	Create(ctx context.Context, credit *entity.CarbonCredit) error

	// FindByID retrieves a single issuance by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CarbonCredit, error)

	// FindByRecordID retrieves the issuance for a plantation record.
	FindByRecordID(ctx context.Context, recordID uuid.UUID) (*entity.CarbonCredit, error)

	// ListBySiteCreator retrieves issuances for all sites registered by the
	// given account.
	ListBySiteCreator(ctx context.Context, creatorID uuid.UUID) ([]*entity.CarbonCredit, error)

	// ListAll retrieves every issuance.
	ListAll(ctx context.Context) ([]*entity.CarbonCredit, error)

	// SumIssued reports the total credits issued across the registry.
	SumIssued(ctx context.Context) (decimal.Decimal, error)

	// SumIssuedBySiteCreator reports the total credits issued for sites
	// registered by the given account.
	SumIssuedBySiteCreator(ctx context.Context, creatorID uuid.UUID) (decimal.Decimal, error)
}
