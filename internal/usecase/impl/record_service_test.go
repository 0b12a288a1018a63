package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"bluecarbon/internal/domain/entity"
	domainerrors "bluecarbon/internal/domain/errors"
	"bluecarbon/internal/domain/repository"
	mockRepo "bluecarbon/internal/mocks/repository"
	mockService "bluecarbon/internal/mocks/service"
	"bluecarbon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// recordServiceFixtures holds all test dependencies for record service tests.
type recordServiceFixtures struct {
	service    usecase.RecordUsecase
	siteRepo   *mockRepo.MockSiteRepository
	recordRepo *mockRepo.MockRecordRepository
	storage    *mockService.MockFileStorage
}

func createTestRecordService(t *testing.T) recordServiceFixtures {
	siteRepo := mockRepo.NewMockSiteRepository(t)
	recordRepo := mockRepo.NewMockRecordRepository(t)
	storage := mockService.NewMockFileStorage(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewRecordService(RecordServiceParams{
		SiteRepo:   siteRepo,
		RecordRepo: recordRepo,
		Storage:    storage,
		Logger:     logger,
	})

	return recordServiceFixtures{
		service:    service,
		siteRepo:   siteRepo,
		recordRepo: recordRepo,
		storage:    storage,
	}
}

func TestRecordService_SubmitRecord_Success(t *testing.T) {
	fx := createTestRecordService(t)

	ctx := context.Background()
	caller := entity.Identity{UserID: uuid.New(), Role: entity.RoleNGO}
	site := &entity.ProjectSite{ID: uuid.New(), CreatedBy: caller.UserID, EcosystemType: entity.EcosystemMangrove}

	fx.siteRepo.EXPECT().FindByID(ctx, site.ID).Return(site, nil)
	fx.recordRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.PlantationRecord")).
		Run(func(ctx context.Context, record *entity.PlantationRecord) {
			record.ID = uuid.New()
		}).
		Return(nil)

	out, err := fx.service.SubmitRecord(ctx, caller, usecase.SubmitRecordInput{
		ProjectSiteID:  site.ID,
		DatePlanted:    time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Species:        "Rhizophora mucronata",
		NumberOfPlants: 500,
	})

	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, site.ID, out.Record.ProjectSiteID)
	assert.Equal(t, caller.UserID, out.Record.UploadedBy)
	assert.False(t, out.Record.Verified)
	assert.Empty(t, out.Record.ImagePath)
	assert.False(t, out.Record.UploadDate.IsZero())
}

func TestRecordService_SubmitRecord_WithImage(t *testing.T) {
	fx := createTestRecordService(t)

	ctx := context.Background()
	caller := entity.Identity{UserID: uuid.New(), Role: entity.RoleCommunity}
	site := &entity.ProjectSite{ID: uuid.New(), CreatedBy: caller.UserID}
	image := strings.NewReader("png-bytes")

	fx.siteRepo.EXPECT().FindByID(ctx, site.ID).Return(site, nil)
	fx.storage.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), "image/png", image).
		RunAndReturn(func(ctx context.Context, key string, contentType string, r io.Reader) (string, error) {
			assert.True(t, strings.HasPrefix(key, "records/"+site.ID.String()+"/"))
			assert.True(t, strings.HasSuffix(key, ".png"))

			return key, nil
		})
	fx.recordRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.PlantationRecord")).
		Return(nil)

	out, err := fx.service.SubmitRecord(ctx, caller, usecase.SubmitRecordInput{
		ProjectSiteID:    site.ID,
		DatePlanted:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Species:          "Zostera marina",
		NumberOfPlants:   50,
		Image:            image,
		ImageFilename:    "planting.png",
		ImageContentType: "image/png",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, out.Record.ImagePath)
}

func TestRecordService_SubmitRecord_AdminDenied(t *testing.T) {
	fx := createTestRecordService(t)

	caller := entity.Identity{UserID: uuid.New(), Role: entity.RoleAdmin}

	_, err := fx.service.SubmitRecord(context.Background(), caller, usecase.SubmitRecordInput{
		ProjectSiteID:  uuid.New(),
		NumberOfPlants: 10,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAccessDenied))
}

func TestRecordService_SubmitRecord_NonPositivePlants(t *testing.T) {
	fx := createTestRecordService(t)

	caller := entity.Identity{UserID: uuid.New(), Role: entity.RoleNGO}

	for _, plants := range []int{0, -5} {
		_, err := fx.service.SubmitRecord(context.Background(), caller, usecase.SubmitRecordInput{
			ProjectSiteID:  uuid.New(),
			NumberOfPlants: plants,
		})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	}
}

func TestRecordService_SubmitRecord_ForeignSite(t *testing.T) {
	fx := createTestRecordService(t)

	ctx := context.Background()
	caller := entity.Identity{UserID: uuid.New(), Role: entity.RoleNGO}
	site := &entity.ProjectSite{ID: uuid.New(), CreatedBy: uuid.New()}

	fx.siteRepo.EXPECT().FindByID(ctx, site.ID).Return(site, nil)

	_, err := fx.service.SubmitRecord(ctx, caller, usecase.SubmitRecordInput{
		ProjectSiteID:  site.ID,
		NumberOfPlants: 10,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSiteOwnershipViolation))
}

func TestRecordService_SubmitRecord_SiteNotFound(t *testing.T) {
	fx := createTestRecordService(t)

	ctx := context.Background()
	caller := entity.Identity{UserID: uuid.New(), Role: entity.RoleNGO}
	siteID := uuid.New()

	fx.siteRepo.EXPECT().FindByID(ctx, siteID).Return(nil, repository.ErrSiteNotFound)

	_, err := fx.service.SubmitRecord(ctx, caller, usecase.SubmitRecordInput{
		ProjectSiteID:  siteID,
		NumberOfPlants: 10,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSiteNotFound))
}

func TestRecordService_SubmitRecord_CleansUpOrphanedAttachment(t *testing.T) {
	fx := createTestRecordService(t)

	ctx := context.Background()
	caller := entity.Identity{UserID: uuid.New(), Role: entity.RoleNGO}
	site := &entity.ProjectSite{ID: uuid.New(), CreatedBy: caller.UserID}
	image := strings.NewReader("png-bytes")

	fx.siteRepo.EXPECT().FindByID(ctx, site.ID).Return(site, nil)
	fx.storage.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), "image/jpeg", image).
		RunAndReturn(func(ctx context.Context, key string, contentType string, r io.Reader) (string, error) {
			return key, nil
		})
	fx.recordRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.PlantationRecord")).
		Return(errors.New("connection reset"))
	fx.storage.EXPECT().Delete(ctx, mock.AnythingOfType("string")).Return(nil)

	_, err := fx.service.SubmitRecord(ctx, caller, usecase.SubmitRecordInput{
		ProjectSiteID:    site.ID,
		DatePlanted:      time.Now(),
		Species:          "Avicennia marina",
		NumberOfPlants:   20,
		Image:            image,
		ImageFilename:    "planting.jpg",
		ImageContentType: "image/jpeg",
	})

	require.Error(t, err)
}

func TestRecordService_ListOwnRecords(t *testing.T) {
	fx := createTestRecordService(t)

	ctx := context.Background()
	caller := entity.Identity{UserID: uuid.New(), Role: entity.RoleCommunity}
	expected := []*entity.PlantationRecord{
		{ID: uuid.New(), UploadedBy: caller.UserID},
	}

	fx.recordRepo.EXPECT().ListByUploader(ctx, caller.UserID).Return(expected, nil)

	records, err := fx.service.ListOwnRecords(ctx, caller)

	require.NoError(t, err)
	assert.Equal(t, expected, records)
}
