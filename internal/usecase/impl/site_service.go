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

// siteService implements the SiteUsecase interface.
type siteService struct {
	siteRepo repository.SiteRepository
	logger   *slog.Logger
}

// SiteServiceParams holds dependencies for SiteService, injected by Fx.
type SiteServiceParams struct {
	fx.In

	SiteRepo repository.SiteRepository
	Logger   *slog.Logger
}

// NewSiteService is the constructor for siteService.
func NewSiteService(params SiteServiceParams) usecase.SiteUsecase {
	return &siteService{
		siteRepo: params.SiteRepo,
		logger:   params.Logger,
	}
}

func (srv *siteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateSite registers a new project site owned by the caller.
func (srv *siteService) CreateSite(ctx context.Context, caller entity.Identity, input usecase.CreateSiteInput) (*usecase.CreateSiteOutput, error) {
	if !caller.Role.CanSubmit() {
		srv.log(ctx).Warn("Site registration denied",
			slog.Any("userID", caller.UserID),
			slog.Any("role", caller.Role),
		)

		return nil, domainerrors.ErrAccessDenied
	}

	ecosystem := entity.EcosystemType(input.EcosystemType)
	if !ecosystem.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown ecosystem type")
	}

	site := &entity.ProjectSite{
		Name:          input.Name,
		Latitude:      input.Latitude,
		Longitude:     input.Longitude,
		EcosystemType: ecosystem,
		AreaHectares:  input.AreaHectares,
		CreatedBy:     caller.UserID,
	}

	if err := srv.siteRepo.Create(ctx, site); err != nil {
		return nil, errors.Wrap(err, "failed to register site")
	}

	srv.log(ctx).Info("Site registered",
		slog.Any("siteID", site.ID),
		slog.String("ecosystem", ecosystem.String()),
	)

	return &usecase.CreateSiteOutput{Site: site}, nil
}

// ListOwnSites returns the caller's registered sites, newest first.
func (srv *siteService) ListOwnSites(ctx context.Context, caller entity.Identity) ([]*entity.ProjectSite, error) {
	sites, err := srv.siteRepo.ListByCreator(ctx, caller.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sites")
	}

	return sites, nil
}
