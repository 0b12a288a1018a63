package impl

import (
	"context"
	"log/slog"
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

// verificationService implements the VerificationUsecase interface. Approval
// marks the record verified and issues its carbon credit in one transaction,
// so a crash between the two steps can not leave a verified record without a
// credit or a credit without a verified record.
type verificationService struct {
	txManager  repository.TransactionManager
	recordRepo repository.RecordRepository
	creditRepo repository.CreditRepository
	siteRepo   repository.SiteRepository
	publisher  service.EventPublisher
	qrcode     service.QRCodeService
	logger     *slog.Logger
}

// VerificationServiceParams holds dependencies for VerificationService, injected by Fx.
type VerificationServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	RecordRepo repository.RecordRepository
	CreditRepo repository.CreditRepository
	SiteRepo   repository.SiteRepository
	Publisher  service.EventPublisher
	QRCode     service.QRCodeService
	Logger     *slog.Logger
}

// NewVerificationService is the constructor for verificationService.
func NewVerificationService(params VerificationServiceParams) usecase.VerificationUsecase {
	return &verificationService{
		txManager:  params.TxManager,
		recordRepo: params.RecordRepo,
		creditRepo: params.CreditRepo,
		siteRepo:   params.SiteRepo,
		publisher:  params.Publisher,
		qrcode:     params.QRCode,
		logger:     params.Logger,
	}
}

func (srv *verificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ReviewRecord applies an approve or reject decision to a pending record.
// Rejection is deliberately not persisted: the record stays pending and can be
// reviewed again once the submitter has addressed the feedback.
func (srv *verificationService) ReviewRecord(ctx context.Context, caller entity.Identity, input usecase.ReviewRecordInput) (*usecase.ReviewRecordOutput, error) {
	if !caller.Role.CanVerify() {
		srv.log(ctx).Warn("Review denied",
			slog.Any("userID", caller.UserID),
			slog.Any("role", caller.Role),
		)

		return nil, domainerrors.ErrAccessDenied
	}

	switch input.Action {
	case usecase.ReviewActionApprove:
		return srv.approve(ctx, caller, input.RecordID)
	case usecase.ReviewActionReject:
		return srv.reject(ctx, input.RecordID)
	default:
		return nil, domainerrors.ErrValidationFailed.WrapMessage("action must be approve or reject")
	}
}

func (srv *verificationService) approve(ctx context.Context, caller entity.Identity, recordID uuid.UUID) (*usecase.ReviewRecordOutput, error) {
	var (
		record *entity.PlantationRecord
		credit *entity.CarbonCredit
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		recordRepo := repoFactory.RecordRepo()

		var err error
		record, err = recordRepo.FindByID(ctx, recordID)
		if err != nil {
			if errors.Is(err, repository.ErrRecordNotFound) {
				return domainerrors.ErrRecordNotFound
			}

			return errors.Wrap(err, "failed to load record for review")
		}

		if record.Verified {
			return domainerrors.ErrRecordAlreadyVerified
		}

		site, err := repoFactory.SiteRepo().FindByID(ctx, record.ProjectSiteID)
		if err != nil {
			return errors.Wrap(err, "failed to load site for review")
		}

		now := time.Now()
		record.MarkVerified(caller.UserID, now)
		if err := recordRepo.MarkVerified(ctx, record); err != nil {
			return errors.Wrap(err, "failed to mark record verified")
		}

		credits := entity.CalculateCredits(record.NumberOfPlants, site.EcosystemType)
		credit = entity.NewCarbonCredit(site.ID, record.ID, record.DatePlanted.Year(), credits, now)

		if err := repoFactory.CreditRepo().Create(ctx, credit); err != nil {
			// A concurrent approval of the same record loses the race on the
			// unique record index and rolls back its verification update.
			if errors.Is(err, repository.ErrDuplicateCredit) {
				return domainerrors.ErrCreditAlreadyIssued
			}

			return errors.Wrap(err, "failed to issue credit")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Record approved",
		slog.Any("recordID", record.ID),
		slog.Any("creditID", credit.ID),
		slog.String("credits", credit.CreditsIssued.StringFixed(2)),
	)

	srv.publishIssuance(ctx, caller, record, credit)

	return &usecase.ReviewRecordOutput{Record: record, Credit: credit}, nil
}

func (srv *verificationService) reject(ctx context.Context, recordID uuid.UUID) (*usecase.ReviewRecordOutput, error) {
	record, err := srv.recordRepo.FindByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, domainerrors.ErrRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to load record for review")
	}

	if record.Verified {
		return nil, domainerrors.ErrRecordAlreadyVerified
	}

	srv.log(ctx).Info("Record rejected, left pending", slog.Any("recordID", record.ID))

	return &usecase.ReviewRecordOutput{Record: record}, nil
}

// ListPendingRecords returns all records awaiting review, oldest first.
func (srv *verificationService) ListPendingRecords(ctx context.Context, caller entity.Identity) ([]*entity.PlantationRecord, error) {
	if !caller.Role.CanVerify() {
		return nil, domainerrors.ErrAccessDenied
	}

	records, err := srv.recordRepo.ListPending(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending records")
	}

	return records, nil
}

// CreditCertificate renders the QR certificate for an issued credit.
func (srv *verificationService) CreditCertificate(ctx context.Context, caller entity.Identity, creditID uuid.UUID) (*usecase.CertificateOutput, error) {
	credit, err := srv.creditRepo.FindByID(ctx, creditID)
	if err != nil {
		if errors.Is(err, repository.ErrCreditNotFound) {
			return nil, domainerrors.ErrCreditNotFound
		}

		return nil, errors.Wrap(err, "failed to load credit for certificate")
	}

	if !caller.Role.CanVerify() {
		site, err := srv.siteRepo.FindByID(ctx, credit.ProjectSiteID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load site for certificate")
		}

		if site.CreatedBy != caller.UserID {
			return nil, domainerrors.ErrAccessDenied
		}
	}

	png, err := srv.qrcode.GenerateCertificateQR(credit.TxnHash)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render certificate")
	}

	return &usecase.CertificateOutput{PNG: png, TxnHash: credit.TxnHash}, nil
}

// publishIssuance emits the verification and issuance events. Publishing is
// best effort; the transaction has already committed and a delivery failure
// must not fail the review.
func (srv *verificationService) publishIssuance(ctx context.Context, caller entity.Identity, record *entity.PlantationRecord, credit *entity.CarbonCredit) {
	requestID := deliverycontext.GetRequestID(ctx)

	events := []*service.RegistryEvent{
		{
			RequestID:  requestID,
			Type:       service.EventRecordVerified,
			SiteID:     record.ProjectSiteID.String(),
			RecordID:   record.ID.String(),
			VerifiedBy: caller.UserID.String(),
		},
		{
			RequestID:     requestID,
			Type:          service.EventCreditIssued,
			SiteID:        credit.ProjectSiteID.String(),
			RecordID:      record.ID.String(),
			CreditID:      credit.ID.String(),
			CreditsIssued: credit.CreditsIssued.StringFixed(2),
			VerifiedBy:    caller.UserID.String(),
		},
	}

	for _, event := range events {
		if err := srv.publisher.PublishRegistryEvent(ctx, event); err != nil {
			srv.log(ctx).Warn("Failed to publish registry event",
				slog.String("type", event.Type),
				slog.Any("error", err),
			)
		}
	}
}
