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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// siteServiceFixtures holds all test dependencies for site service tests.
type siteServiceFixtures struct {
	service  usecase.SiteUsecase
	siteRepo *mockRepo.MockSiteRepository
}

func createTestSiteService(t *testing.T) siteServiceFixtures {
	siteRepo := mockRepo.NewMockSiteRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewSiteService(SiteServiceParams{
		SiteRepo: siteRepo,
		Logger:   logger,
	})

	return siteServiceFixtures{
		service:  service,
		siteRepo: siteRepo,
	}
}

func validSiteInput() usecase.CreateSiteInput {
	return usecase.CreateSiteInput{
		Name:          "Sundarbans West",
		Latitude:      decimal.RequireFromString("21.949500"),
		Longitude:     decimal.RequireFromString("89.183000"),
		EcosystemType: "MANGROVE",
		AreaHectares:  decimal.RequireFromString("120.50"),
	}
}

func TestSiteService_CreateSite_Success(t *testing.T) {
	fx := createTestSiteService(t)

	ctx := context.Background()
	caller := entity.Identity{UserID: uuid.New(), Role: entity.RoleNGO}

	fx.siteRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ProjectSite")).
		Run(func(ctx context.Context, site *entity.ProjectSite) {
			site.ID = uuid.New()
		}).
		Return(nil)

	out, err := fx.service.CreateSite(ctx, caller, validSiteInput())

	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "Sundarbans West", out.Site.Name)
	assert.Equal(t, entity.EcosystemMangrove, out.Site.EcosystemType)
	assert.Equal(t, caller.UserID, out.Site.CreatedBy)
	assert.NotEqual(t, uuid.Nil, out.Site.ID)
}

func TestSiteService_CreateSite_AdminDenied(t *testing.T) {
	fx := createTestSiteService(t)

	caller := entity.Identity{UserID: uuid.New(), Role: entity.RoleAdmin}

	_, err := fx.service.CreateSite(context.Background(), caller, validSiteInput())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAccessDenied))
}

func TestSiteService_CreateSite_UnknownEcosystem(t *testing.T) {
	fx := createTestSiteService(t)

	caller := entity.Identity{UserID: uuid.New(), Role: entity.RoleCommunity}
	input := validSiteInput()
	input.EcosystemType = "KELP"

	_, err := fx.service.CreateSite(context.Background(), caller, input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestSiteService_ListOwnSites(t *testing.T) {
	fx := createTestSiteService(t)

	ctx := context.Background()
	caller := entity.Identity{UserID: uuid.New(), Role: entity.RoleNGO}
	expected := []*entity.ProjectSite{
		{ID: uuid.New(), Name: "Site A", CreatedBy: caller.UserID},
		{ID: uuid.New(), Name: "Site B", CreatedBy: caller.UserID},
	}

	fx.siteRepo.EXPECT().ListByCreator(ctx, caller.UserID).Return(expected, nil)

	sites, err := fx.service.ListOwnSites(ctx, caller)

	require.NoError(t, err)
	assert.Equal(t, expected, sites)
}
