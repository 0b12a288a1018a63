package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bluecarbon/internal/domain/entity"
	domainerrors "bluecarbon/internal/domain/errors"
	mockRepo "bluecarbon/internal/mocks/repository"
	"bluecarbon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dashboardServiceFixtures holds all test dependencies for dashboard service tests.
type dashboardServiceFixtures struct {
	service    usecase.DashboardUsecase
	userRepo   *mockRepo.MockUserRepository
	siteRepo   *mockRepo.MockSiteRepository
	recordRepo *mockRepo.MockRecordRepository
	creditRepo *mockRepo.MockCreditRepository
}

func createTestDashboardService(t *testing.T) dashboardServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	siteRepo := mockRepo.NewMockSiteRepository(t)
	recordRepo := mockRepo.NewMockRecordRepository(t)
	creditRepo := mockRepo.NewMockCreditRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewDashboardService(DashboardServiceParams{
		UserRepo:   userRepo,
		SiteRepo:   siteRepo,
		RecordRepo: recordRepo,
		CreditRepo: creditRepo,
		Logger:     logger,
	})

	return dashboardServiceFixtures{
		service:    service,
		userRepo:   userRepo,
		siteRepo:   siteRepo,
		recordRepo: recordRepo,
		creditRepo: creditRepo,
	}
}

func TestDashboardService_OwnerDashboard(t *testing.T) {
	fx := createTestDashboardService(t)

	ctx := context.Background()
	caller := entity.Identity{UserID: uuid.New(), Role: entity.RoleNGO}
	user := &entity.User{ID: caller.UserID, Username: "mangrove-ngo", Role: entity.RoleNGO}
	sites := []*entity.ProjectSite{{ID: uuid.New(), CreatedBy: caller.UserID}}
	records := []*entity.PlantationRecord{{ID: uuid.New(), UploadedBy: caller.UserID}}
	credits := []*entity.CarbonCredit{{ID: uuid.New(), ProjectSiteID: sites[0].ID}}
	total := decimal.RequireFromString("750.00")

	fx.userRepo.EXPECT().FindByID(ctx, caller.UserID).Return(user, nil)
	fx.siteRepo.EXPECT().ListByCreator(ctx, caller.UserID).Return(sites, nil)
	fx.recordRepo.EXPECT().ListByUploader(ctx, caller.UserID).Return(records, nil)
	fx.creditRepo.EXPECT().ListBySiteCreator(ctx, caller.UserID).Return(credits, nil)
	fx.creditRepo.EXPECT().SumIssuedBySiteCreator(ctx, caller.UserID).Return(total, nil)

	dashboard, err := fx.service.OwnerDashboard(ctx, caller)

	require.NoError(t, err)
	assert.Equal(t, user, dashboard.User)
	assert.Equal(t, sites, dashboard.Sites)
	assert.Equal(t, records, dashboard.Records)
	assert.Equal(t, credits, dashboard.Credits)
	assert.True(t, dashboard.TotalCredits.Equal(total))
}

func TestDashboardService_OwnerDashboard_AdminDenied(t *testing.T) {
	fx := createTestDashboardService(t)

	caller := entity.Identity{UserID: uuid.New(), Role: entity.RoleAdmin}

	_, err := fx.service.OwnerDashboard(context.Background(), caller)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAccessDenied))
}

func TestDashboardService_AdminDashboard(t *testing.T) {
	fx := createTestDashboardService(t)

	ctx := context.Background()
	caller := entity.Identity{UserID: uuid.New(), Role: entity.RoleAdmin}
	pending := []*entity.PlantationRecord{{ID: uuid.New()}}
	sites := []*entity.ProjectSite{{ID: uuid.New()}, {ID: uuid.New()}}
	records := []*entity.PlantationRecord{pending[0], {ID: uuid.New(), Verified: true}, {ID: uuid.New(), Verified: true}}
	credits := []*entity.CarbonCredit{{ID: uuid.New()}, {ID: uuid.New()}}
	total := decimal.RequireFromString("1234.56")

	fx.recordRepo.EXPECT().ListPending(ctx).Return(pending, nil)
	fx.siteRepo.EXPECT().ListAll(ctx).Return(sites, nil)
	fx.recordRepo.EXPECT().ListAll(ctx).Return(records, nil)
	fx.creditRepo.EXPECT().ListAll(ctx).Return(credits, nil)
	fx.recordRepo.EXPECT().CountVerified(ctx).Return(int64(2), nil)
	fx.creditRepo.EXPECT().SumIssued(ctx).Return(total, nil)

	dashboard, err := fx.service.AdminDashboard(ctx, caller)

	require.NoError(t, err)
	assert.Equal(t, pending, dashboard.PendingRecords)
	assert.Equal(t, sites, dashboard.Sites)
	assert.Equal(t, records, dashboard.Records)
	assert.Equal(t, credits, dashboard.Credits)
	assert.Equal(t, int64(2), dashboard.TotalSites)
	assert.Equal(t, int64(3), dashboard.TotalRecords)
	assert.Equal(t, int64(2), dashboard.VerifiedRecords)
	assert.True(t, dashboard.TotalCreditsIssued.Equal(total))
}

func TestDashboardService_AdminDashboard_NonAdminDenied(t *testing.T) {
	fx := createTestDashboardService(t)

	for _, role := range []entity.Role{entity.RoleNGO, entity.RoleCommunity} {
		caller := entity.Identity{UserID: uuid.New(), Role: role}

		_, err := fx.service.AdminDashboard(context.Background(), caller)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrAccessDenied))
	}
}

func TestDashboardService_Summary(t *testing.T) {
	fx := createTestDashboardService(t)
	ctx := context.Background()

	fx.siteRepo.EXPECT().CountAll(ctx).Return(int64(12), nil)
	fx.recordRepo.EXPECT().CountAll(ctx).Return(int64(40), nil)
	fx.recordRepo.EXPECT().CountVerified(ctx).Return(int64(31), nil)
	fx.creditRepo.EXPECT().SumIssued(ctx).Return(decimal.RequireFromString("15250.50"), nil)

	summary, err := fx.service.Summary(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(12), summary.TotalSites)
	assert.Equal(t, int64(40), summary.TotalRecords)
	assert.Equal(t, int64(31), summary.VerifiedRecords)
	assert.Equal(t, "15250.50", summary.TotalCreditsIssued.StringFixed(2))
}

func TestDashboardService_Summary_CountFailure(t *testing.T) {
	fx := createTestDashboardService(t)
	ctx := context.Background()

	fx.siteRepo.EXPECT().CountAll(ctx).Return(int64(0), errors.New("connection reset"))

	_, err := fx.service.Summary(ctx)

	require.Error(t, err)
}
