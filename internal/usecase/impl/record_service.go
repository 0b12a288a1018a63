package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"time"

	deliverycontext "bluecarbon/internal/delivery/context"
	"bluecarbon/internal/domain/entity"
	domainerrors "bluecarbon/internal/domain/errors"
	"bluecarbon/internal/domain/repository"
	"bluecarbon/internal/domain/service"
	"bluecarbon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// recordService implements the RecordUsecase interface.
type recordService struct {
	siteRepo   repository.SiteRepository
	recordRepo repository.RecordRepository
	storage    service.FileStorage
	logger     *slog.Logger
}

// RecordServiceParams holds dependencies for RecordService, injected by Fx.
type RecordServiceParams struct {
	fx.In

	SiteRepo   repository.SiteRepository
	RecordRepo repository.RecordRepository
	Storage    service.FileStorage
	Logger     *slog.Logger
}

// NewRecordService is the constructor for recordService.
func NewRecordService(params RecordServiceParams) usecase.RecordUsecase {
	return &recordService{
		siteRepo:   params.SiteRepo,
		recordRepo: params.RecordRepo,
		storage:    params.Storage,
		logger:     params.Logger,
	}
}

func (srv *recordService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitRecord stores a new unverified plantation record. The target site is
// re-loaded and its ownership checked against the caller, so a forged site ID
// in the request cannot plant records on someone else's site.
func (srv *recordService) SubmitRecord(ctx context.Context, caller entity.Identity, input usecase.SubmitRecordInput) (*usecase.SubmitRecordOutput, error) {
	if !caller.Role.CanSubmit() {
		srv.log(ctx).Warn("Record submission denied",
			slog.Any("userID", caller.UserID),
			slog.Any("role", caller.Role),
		)

		return nil, domainerrors.ErrAccessDenied
	}

	if input.NumberOfPlants <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("number of plants must be positive")
	}

	site, err := srv.siteRepo.FindByID(ctx, input.ProjectSiteID)
	if err != nil {
		if errors.Is(err, repository.ErrSiteNotFound) {
			return nil, domainerrors.ErrSiteNotFound
		}

		return nil, errors.Wrap(err, "failed to load site for record submission")
	}

	if site.CreatedBy != caller.UserID {
		srv.log(ctx).Warn("Record submission against foreign site",
			slog.Any("userID", caller.UserID),
			slog.Any("siteID", site.ID),
		)

		return nil, domainerrors.ErrSiteOwnershipViolation
	}

	imagePath := ""
	if input.Image != nil {
		imagePath, err = srv.storeImage(ctx, site.ID, input)
		if err != nil {
			return nil, err
		}
	}

	record := &entity.PlantationRecord{
		ProjectSiteID:  site.ID,
		DatePlanted:    input.DatePlanted,
		Species:        input.Species,
		NumberOfPlants: input.NumberOfPlants,
		ImagePath:      imagePath,
		Verified:       false,
		UploadedBy:     caller.UserID,
		UploadDate:     time.Now(),
	}

	if err := srv.recordRepo.Create(ctx, record); err != nil {
		// The record is the source of truth; an orphaned attachment is
		// cleaned up on a best-effort basis.
		if imagePath != "" {
			if delErr := srv.storage.Delete(ctx, imagePath); delErr != nil {
				srv.log(ctx).Warn("Failed to clean up orphaned attachment",
					slog.String("key", imagePath),
					slog.Any("error", delErr),
				)
			}
		}

		return nil, errors.Wrap(err, "failed to store record")
	}

	srv.log(ctx).Info("Record submitted",
		slog.Any("recordID", record.ID),
		slog.Any("siteID", site.ID),
		slog.Int("plants", record.NumberOfPlants),
	)

	return &usecase.SubmitRecordOutput{Record: record}, nil
}

// ListOwnRecords returns the records the caller uploaded, newest first.
func (srv *recordService) ListOwnRecords(ctx context.Context, caller entity.Identity) ([]*entity.PlantationRecord, error) {
	records, err := srv.recordRepo.ListByUploader(ctx, caller.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list records")
	}

	return records, nil
}

func (srv *recordService) storeImage(ctx context.Context, siteID uuid.UUID, input usecase.SubmitRecordInput) (string, error) {
	ext := path.Ext(input.ImageFilename)
	key := fmt.Sprintf("records/%s/%s%s", siteID, uuid.NewString(), ext)

	stored, err := srv.storage.Save(ctx, key, input.ImageContentType, input.Image)
	if err != nil {
		return "", errors.Wrap(err, "failed to store attachment")
	}

	return stored, nil
}
