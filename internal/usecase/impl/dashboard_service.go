package impl

import (
	"context"
	"log/slog"

	deliverycontext "bluecarbon/internal/delivery/context"
	"bluecarbon/internal/domain/entity"
	domainerrors "bluecarbon/internal/domain/errors"
	"bluecarbon/internal/domain/repository"
	"bluecarbon/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	userRepo   repository.UserRepository
	siteRepo   repository.SiteRepository
	recordRepo repository.RecordRepository
	creditRepo repository.CreditRepository
	logger     *slog.Logger
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	UserRepo   repository.UserRepository
	SiteRepo   repository.SiteRepository
	RecordRepo repository.RecordRepository
	CreditRepo repository.CreditRepository
	Logger     *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		userRepo:   params.UserRepo,
		siteRepo:   params.SiteRepo,
		recordRepo: params.RecordRepo,
		creditRepo: params.CreditRepo,
		logger:     params.Logger,
	}
}

func (srv *dashboardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// OwnerDashboard builds the dashboard for an NGO or COMMUNITY caller: their
// sites, their submissions, and the credits issued for their sites.
func (srv *dashboardService) OwnerDashboard(ctx context.Context, caller entity.Identity) (*usecase.OwnerDashboard, error) {
	if !caller.Role.CanSubmit() {
		return nil, domainerrors.ErrAccessDenied
	}

	user, err := srv.userRepo.FindByID(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user for dashboard")
	}

	sites, err := srv.siteRepo.ListByCreator(ctx, caller.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sites for dashboard")
	}

	records, err := srv.recordRepo.ListByUploader(ctx, caller.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list records for dashboard")
	}

	credits, err := srv.creditRepo.ListBySiteCreator(ctx, caller.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list credits for dashboard")
	}

	total, err := srv.creditRepo.SumIssuedBySiteCreator(ctx, caller.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum credits for dashboard")
	}

	return &usecase.OwnerDashboard{
		User:         user,
		Sites:        sites,
		Records:      records,
		Credits:      credits,
		TotalCredits: total,
	}, nil
}

// AdminDashboard builds the registry-wide review view for an ADMIN caller.
func (srv *dashboardService) AdminDashboard(ctx context.Context, caller entity.Identity) (*usecase.AdminDashboard, error) {
	if !caller.Role.CanVerify() {
		srv.log(ctx).Warn("Admin dashboard denied",
			slog.Any("userID", caller.UserID),
			slog.Any("role", caller.Role),
		)

		return nil, domainerrors.ErrAccessDenied
	}

	pending, err := srv.recordRepo.ListPending(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending records for dashboard")
	}

	sites, err := srv.siteRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sites for dashboard")
	}

	records, err := srv.recordRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list records for dashboard")
	}

	credits, err := srv.creditRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list credits for dashboard")
	}

	verifiedRecords, err := srv.recordRepo.CountVerified(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count verified records for dashboard")
	}

	totalCredits, err := srv.creditRepo.SumIssued(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum credits for dashboard")
	}

	return &usecase.AdminDashboard{
		PendingRecords:     pending,
		Sites:              sites,
		Records:            records,
		Credits:            credits,
		TotalSites:         int64(len(sites)),
		TotalRecords:       int64(len(records)),
		VerifiedRecords:    verifiedRecords,
		TotalCreditsIssued: totalCredits,
	}, nil
}

// Summary builds the public landing counts.
func (srv *dashboardService) Summary(ctx context.Context) (*usecase.RegistrySummary, error) {
	totalSites, err := srv.siteRepo.CountAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count sites for summary")
	}

	totalRecords, err := srv.recordRepo.CountAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count records for summary")
	}

	verifiedRecords, err := srv.recordRepo.CountVerified(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count verified records for summary")
	}

	totalCredits, err := srv.creditRepo.SumIssued(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum credits for summary")
	}

	return &usecase.RegistrySummary{
		TotalSites:         totalSites,
		TotalRecords:       totalRecords,
		VerifiedRecords:    verifiedRecords,
		TotalCreditsIssued: totalCredits,
	}, nil
}
