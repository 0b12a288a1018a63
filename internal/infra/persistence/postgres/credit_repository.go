package postgres

import (
	"context"

	"bluecarbon/internal/domain/entity"
	domainerrors "bluecarbon/internal/domain/errors"
	"bluecarbon/internal/domain/repository"
	"bluecarbon/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// creditRepository implements the domain's CreditRepository interface using GORM.
type creditRepository struct {
	db *gorm.DB
}

// NewCreditRepository is the constructor for creditRepository.
func NewCreditRepository(db *gorm.DB) repository.CreditRepository {
	return &creditRepository{db: db}
}

// Create persists a new issuance. The unique index on plantation_record_id is
// the storage-level guard against issuing twice for the same record, so a
// unique violation maps to ErrDuplicateCredit.
func (repo *creditRepository) Create(ctx context.Context, credit *entity.CarbonCredit) error {
	creditM := fromCreditDomain(credit)

	if err := repo.db.WithContext(ctx).Create(creditM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCredit
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrRecordNotFound.WrapMessage("invalid record or site reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create carbon credit")
	}

	credit.ID = creditM.ID

	return nil
}

// FindByID retrieves a single issuance by its unique ID.
func (repo *creditRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CarbonCredit, error) {
	var creditM model.CarbonCreditModel
	if err := repo.db.WithContext(ctx).First(&creditM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCreditNotFound
		}

		return nil, errors.Wrap(err, "failed to find credit by id")
	}

	return toCreditDomain(&creditM), nil
}

// FindByRecordID retrieves the issuance for a plantation record.
func (repo *creditRepository) FindByRecordID(ctx context.Context, recordID uuid.UUID) (*entity.CarbonCredit, error) {
	var creditM model.CarbonCreditModel
	if err := repo.db.WithContext(ctx).First(&creditM, "plantation_record_id = ?", recordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCreditNotFound
		}

		return nil, errors.Wrap(err, "failed to find credit by record id")
	}

	return toCreditDomain(&creditM), nil
}

// ListBySiteCreator retrieves issuances for all sites registered by the given
// account, newest first.
func (repo *creditRepository) ListBySiteCreator(ctx context.Context, creatorID uuid.UUID) ([]*entity.CarbonCredit, error) {
	var creditModels []*model.CarbonCreditModel
	if err := repo.db.WithContext(ctx).
		Joins("JOIN project_sites ON project_sites.id = carbon_credits.project_site_id").
		Where("project_sites.created_by = ?", creatorID).
		Order("carbon_credits.issued_date DESC").
		Find(&creditModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	return toCreditDomainList(creditModels), nil
}

// ListAll retrieves every issuance, newest first.
func (repo *creditRepository) ListAll(ctx context.Context) ([]*entity.CarbonCredit, error) {
	var creditModels []*model.CarbonCreditModel
	if err := repo.db.WithContext(ctx).
		Order("issued_date DESC").
		Find(&creditModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	return toCreditDomainList(creditModels), nil
}

// SumIssued reports the total credits issued across the registry.
func (repo *creditRepository) SumIssued(ctx context.Context) (decimal.Decimal, error) {
	var sum decimal.Decimal
	if err := repo.db.WithContext(ctx).
		Model(&model.CarbonCreditModel{}).
		Select("COALESCE(SUM(credits_issued), 0)").
		Scan(&sum).Error; err != nil {
		return decimal.Zero, errors.WithStack(err)
	}

	return sum, nil
}

// SumIssuedBySiteCreator reports the total credits issued for sites registered
// by the given account.
func (repo *creditRepository) SumIssuedBySiteCreator(ctx context.Context, creatorID uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.Decimal
	if err := repo.db.WithContext(ctx).
		Model(&model.CarbonCreditModel{}).
		Joins("JOIN project_sites ON project_sites.id = carbon_credits.project_site_id").
		Where("project_sites.created_by = ?", creatorID).
		Select("COALESCE(SUM(credits_issued), 0)").
		Scan(&sum).Error; err != nil {
		return decimal.Zero, errors.WithStack(err)
	}

	return sum, nil
}

// --- Mapper Functions ---

func toCreditDomain(data *model.CarbonCreditModel) *entity.CarbonCredit {
	if data == nil {
		return nil
	}

	return &entity.CarbonCredit{
		ID:                 data.ID,
		ProjectSiteID:      data.ProjectSiteID,
		PlantationRecordID: data.PlantationRecordID,
		Year:               data.Year,
		CreditsIssued:      data.CreditsIssued,
		TxnHash:            data.TxnHash,
		IssuedDate:         data.IssuedDate,
	}
}

func toCreditDomainList(data []*model.CarbonCreditModel) []*entity.CarbonCredit {
	credits := make([]*entity.CarbonCredit, 0, len(data))
	for _, creditM := range data {
		credits = append(credits, toCreditDomain(creditM))
	}

	return credits
}

func fromCreditDomain(data *entity.CarbonCredit) *model.CarbonCreditModel {
	if data == nil {
		return nil
	}

	return &model.CarbonCreditModel{
		ID:                 data.ID,
		ProjectSiteID:      data.ProjectSiteID,
		PlantationRecordID: data.PlantationRecordID,
		Year:               data.Year,
		CreditsIssued:      data.CreditsIssued,
		TxnHash:            data.TxnHash,
		IssuedDate:         data.IssuedDate,
	}
}
