package usecase

import (
	"context"
	"io"
	"time"

	"bluecarbon/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// CreateSiteInput defines the data required to register a project site.
type CreateSiteInput struct {
	Name          string
	Latitude      decimal.Decimal
	Longitude     decimal.Decimal
	EcosystemType string
	AreaHectares  decimal.Decimal
}

// SubmitRecordInput defines the data required to submit a plantation record.
// Image is optional; when set it is streamed to attachment storage.
type SubmitRecordInput struct {
	ProjectSiteID    uuid.UUID
	DatePlanted      time.Time
	Species          string
	NumberOfPlants   int
	Image            io.Reader
	ImageFilename    string
	ImageContentType string
}

// --- Output DTOs ---

// CreateSiteOutput returns the registered site.
type CreateSiteOutput struct {
	Site *entity.ProjectSite
}

// SubmitRecordOutput returns the stored record, in the unverified state.
type SubmitRecordOutput struct {
	Record *entity.PlantationRecord
}

// SiteUsecase defines project site registration and listing operations.
// Every operation receives the authenticated caller explicitly.
type SiteUsecase interface {
	// CreateSite registers a new project site owned by the caller. Only NGO
	// and COMMUNITY accounts may register sites.
	CreateSite(ctx context.Context, caller entity.Identity, input CreateSiteInput) (*CreateSiteOutput, error)

	// ListOwnSites returns the caller's registered sites, newest first.
	ListOwnSites(ctx context.Context, caller entity.Identity) ([]*entity.ProjectSite, error)
}

// RecordUsecase defines plantation record submission and listing operations.
type RecordUsecase interface {
	// SubmitRecord stores a new unverified plantation record against one of
	// the caller's own sites. Submitting against another account's site is
	// rejected regardless of what the request claims.
	SubmitRecord(ctx context.Context, caller entity.Identity, input SubmitRecordInput) (*SubmitRecordOutput, error)

	// ListOwnRecords returns the records the caller uploaded, newest first.
	ListOwnRecords(ctx context.Context, caller entity.Identity) ([]*entity.PlantationRecord, error)
}
