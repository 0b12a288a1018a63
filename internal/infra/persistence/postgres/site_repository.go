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

// siteRepository implements the domain's SiteRepository interface using GORM.
type siteRepository struct {
	db *gorm.DB
}

// NewSiteRepository is the constructor for siteRepository.
func NewSiteRepository(db *gorm.DB) repository.SiteRepository {
	return &siteRepository{db: db}
}

// Create persists a new project site.
func (repo *siteRepository) Create(ctx context.Context, site *entity.ProjectSite) error {
	siteM := fromSiteDomain(site)

	if err := repo.db.WithContext(ctx).Create(siteM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid creator reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create project site")
	}

	site.ID = siteM.ID
	site.CreatedAt = siteM.CreatedAt

	return nil
}

// FindByID retrieves a single site by its unique ID.
func (repo *siteRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ProjectSite, error) {
	var siteM model.ProjectSiteModel
	if err := repo.db.WithContext(ctx).First(&siteM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSiteNotFound
		}

		return nil, errors.Wrap(err, "failed to find site by id")
	}

	return toSiteDomain(&siteM), nil
}

// ListByCreator retrieves all sites registered by the given account, newest first.
func (repo *siteRepository) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]*entity.ProjectSite, error) {
	var siteModels []*model.ProjectSiteModel
	if err := repo.db.WithContext(ctx).
		Where("created_by = ?", creatorID).
		Order("created_at DESC").
		Find(&siteModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	return toSiteDomainList(siteModels), nil
}

// ListAll retrieves every registered site, newest first.
func (repo *siteRepository) ListAll(ctx context.Context) ([]*entity.ProjectSite, error) {
	var siteModels []*model.ProjectSiteModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&siteModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	return toSiteDomainList(siteModels), nil
}

// Delete removes a site. The FK cascades take its records and credits with it.
func (repo *siteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ProjectSiteModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}

	if result.RowsAffected == 0 {
		return repository.ErrSiteNotFound
	}

	return nil
}

// CountAll reports the number of registered sites.
func (repo *siteRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ProjectSiteModel{}).Count(&count).Error; err != nil {
		return 0, errors.WithStack(err)
	}

	return count, nil
}

// --- Mapper Functions ---

func toSiteDomain(data *model.ProjectSiteModel) *entity.ProjectSite {
	if data == nil {
		return nil
	}

	return &entity.ProjectSite{
		ID:            data.ID,
		Name:          data.Name,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		EcosystemType: entity.EcosystemType(data.EcosystemType),
		AreaHectares:  data.AreaHectares,
		CreatedBy:     data.CreatedBy,
		CreatedAt:     data.CreatedAt,
	}
}

func toSiteDomainList(data []*model.ProjectSiteModel) []*entity.ProjectSite {
	sites := make([]*entity.ProjectSite, 0, len(data))
	for _, siteM := range data {
		sites = append(sites, toSiteDomain(siteM))
	}

	return sites
}

func fromSiteDomain(data *entity.ProjectSite) *model.ProjectSiteModel {
	if data == nil {
		return nil
	}

	return &model.ProjectSiteModel{
		ID:            data.ID,
		Name:          data.Name,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		EcosystemType: data.EcosystemType.String(),
		AreaHectares:  data.AreaHectares,
		CreatedBy:     data.CreatedBy,
	}
}
