package postgres

import (
	"context"

	"bluecarbon/internal/domain/entity"
	domainerrors "bluecarbon/internal/domain/errors"
	"bluecarbon/internal/domain/repository"
	"bluecarbon/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// recordRepository implements the domain's RecordRepository interface using GORM.
type recordRepository struct {
	db *gorm.DB
}

// NewRecordRepository is the constructor for recordRepository.
func NewRecordRepository(db *gorm.DB) repository.RecordRepository {
	return &recordRepository{db: db}
}

// Create persists a new record in the unverified state.
func (repo *recordRepository) Create(ctx context.Context, record *entity.PlantationRecord) error {
	recordM := fromRecordDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrSiteNotFound.WrapMessage("invalid site reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("number of plants must be positive")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create plantation record")
	}

	record.ID = recordM.ID
	record.UploadDate = recordM.UploadDate

	return nil
}

// FindByID retrieves a single record by its unique ID.
func (repo *recordRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PlantationRecord, error) {
	var recordM model.PlantationRecordModel
	if err := repo.db.WithContext(ctx).First(&recordM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find record by id")
	}

	return toRecordDomain(&recordM), nil
}

// ListByUploader retrieves all records uploaded by the given account, newest first.
func (repo *recordRepository) ListByUploader(ctx context.Context, uploaderID uuid.UUID) ([]*entity.PlantationRecord, error) {
	var recordModels []*model.PlantationRecordModel
	if err := repo.db.WithContext(ctx).
		Where("uploaded_by = ?", uploaderID).
		Order("upload_date DESC").
		Find(&recordModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	return toRecordDomainList(recordModels), nil
}

// ListPending retrieves all records awaiting verification, oldest first so
// reviewers work through the queue in submission order.
func (repo *recordRepository) ListPending(ctx context.Context) ([]*entity.PlantationRecord, error) {
	var recordModels []*model.PlantationRecordModel
	if err := repo.db.WithContext(ctx).
		Where("verified = ?", false).
		Order("upload_date ASC").
		Find(&recordModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	return toRecordDomainList(recordModels), nil
}

// ListAll retrieves every record, newest first.
func (repo *recordRepository) ListAll(ctx context.Context) ([]*entity.PlantationRecord, error) {
	var recordModels []*model.PlantationRecordModel
	if err := repo.db.WithContext(ctx).
		Order("upload_date DESC").
		Find(&recordModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	return toRecordDomainList(recordModels), nil
}

// MarkVerified persists the verified flag, verifier, and verification
// timestamp of an approved record in a single update.
func (repo *recordRepository) MarkVerified(ctx context.Context, record *entity.PlantationRecord) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PlantationRecordModel{}).
		Where("id = ?", record.ID).
		Updates(map[string]any{
			"verified":      record.Verified,
			"verified_by":   record.VerifiedBy,
			"verified_date": record.VerifiedDate,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark record verified")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

// CountAll reports the number of records.
func (repo *recordRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.PlantationRecordModel{}).Count(&count).Error; err != nil {
		return 0, errors.WithStack(err)
	}

	return count, nil
}

// CountVerified reports the number of verified records.
func (repo *recordRepository) CountVerified(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.PlantationRecordModel{}).
		Where("verified = ?", true).
		Count(&count).Error; err != nil {
		return 0, errors.WithStack(err)
	}

	return count, nil
}

// --- Mapper Functions ---

func toRecordDomain(data *model.PlantationRecordModel) *entity.PlantationRecord {
	if data == nil {
		return nil
	}

	return &entity.PlantationRecord{
		ID:             data.ID,
		ProjectSiteID:  data.ProjectSiteID,
		DatePlanted:    data.DatePlanted,
		Species:        data.Species,
		NumberOfPlants: data.NumberOfPlants,
		ImagePath:      data.ImagePath,
		Verified:       data.Verified,
		UploadedBy:     data.UploadedBy,
		UploadDate:     data.UploadDate,
		VerifiedBy:     data.VerifiedBy,
		VerifiedDate:   data.VerifiedDate,
	}
}

func toRecordDomainList(data []*model.PlantationRecordModel) []*entity.PlantationRecord {
	records := make([]*entity.PlantationRecord, 0, len(data))
	for _, recordM := range data {
		records = append(records, toRecordDomain(recordM))
	}

	return records
}

func fromRecordDomain(data *entity.PlantationRecord) *model.PlantationRecordModel {
	if data == nil {
		return nil
	}

	return &model.PlantationRecordModel{
		ID:             data.ID,
		ProjectSiteID:  data.ProjectSiteID,
		DatePlanted:    data.DatePlanted,
		Species:        data.Species,
		NumberOfPlants: data.NumberOfPlants,
		ImagePath:      data.ImagePath,
		Verified:       data.Verified,
		UploadedBy:     data.UploadedBy,
		UploadDate:     data.UploadDate,
		VerifiedBy:     data.VerifiedBy,
		VerifiedDate:   data.VerifiedDate,
	}
}
