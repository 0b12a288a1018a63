package usecase

import (
	"context"

	"bluecarbon/internal/domain/entity"

	"github.com/google/uuid"
)

// Review decisions accepted by ReviewRecord.
const (
	ReviewActionApprove = "approve"
	ReviewActionReject  = "reject"
)

// ReviewRecordInput identifies the record under review and the decision.
type ReviewRecordInput struct {
	RecordID uuid.UUID
	Action   string
}

// ReviewRecordOutput reports the outcome of a review. Credit is set only when
// the review approved the record and issued a credit.
type ReviewRecordOutput struct {
	Record *entity.PlantationRecord
	Credit *entity.CarbonCredit
}

// CertificateOutput carries a rendered certificate QR image.
type CertificateOutput struct {
	PNG     []byte
	TxnHash string
}

// VerificationUsecase defines the admin review workflow. Approval marks the
// record verified and issues exactly one carbon credit for it atomically.
type VerificationUsecase interface {
	// ReviewRecord applies an approve or reject decision to a pending record.
	// Only ADMIN accounts may review. Rejection leaves the record pending so
	// it can be reviewed again later.
	ReviewRecord(ctx context.Context, caller entity.Identity, input ReviewRecordInput) (*ReviewRecordOutput, error)

	// ListPendingRecords returns all records awaiting review, oldest first.
	ListPendingRecords(ctx context.Context, caller entity.Identity) ([]*entity.PlantationRecord, error)

	// CreditCertificate renders the QR certificate for an issued credit.
	// Admins may fetch any certificate; other accounts only certificates for
	// credits on their own sites.
	CreditCertificate(ctx context.Context, caller entity.Identity, creditID uuid.UUID) (*CertificateOutput, error)
}
