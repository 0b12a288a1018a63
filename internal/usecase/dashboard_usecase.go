package usecase

import (
	"context"

	"bluecarbon/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// OwnerDashboard aggregates everything an NGO or community account sees on
// its dashboard: its sites, its submissions, and the credits its sites earned.
type OwnerDashboard struct {
	User         *entity.User
	Sites        []*entity.ProjectSite
	Records      []*entity.PlantationRecord
	Credits      []*entity.CarbonCredit
	TotalCredits decimal.Decimal
}

// AdminDashboard aggregates the registry-wide review view: the pending queue
// plus every site, record, and issuance in the registry with headline counts.
type AdminDashboard struct {
	PendingRecords     []*entity.PlantationRecord
	Sites              []*entity.ProjectSite
	Records            []*entity.PlantationRecord
	Credits            []*entity.CarbonCredit
	TotalSites         int64
	TotalRecords       int64
	VerifiedRecords    int64
	TotalCreditsIssued decimal.Decimal
}

// RegistrySummary holds the public headline counts shown on the landing page.
type RegistrySummary struct {
	TotalSites         int64
	TotalRecords       int64
	VerifiedRecords    int64
	TotalCreditsIssued decimal.Decimal
}

// DashboardUsecase assembles the role-specific dashboard views.
type DashboardUsecase interface {
	// OwnerDashboard builds the dashboard for an NGO or COMMUNITY caller.
	OwnerDashboard(ctx context.Context, caller entity.Identity) (*OwnerDashboard, error)

	// AdminDashboard builds the registry-wide dashboard for an ADMIN caller.
	AdminDashboard(ctx context.Context, caller entity.Identity) (*AdminDashboard, error)

	// Summary builds the public landing counts. No caller identity involved.
	Summary(ctx context.Context) (*RegistrySummary, error)
}
