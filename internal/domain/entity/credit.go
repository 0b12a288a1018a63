package entity

import (
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// baseCreditsPerPlant is the number of credits earned per verified plant before
// the ecosystem multiplier is applied.
var baseCreditsPerPlant = decimal.RequireFromString("0.5")

// CarbonCredit is the credit issuance for exactly one verified plantation
// record. At most one credit row may ever exist per record; the storage layer
// enforces this with a unique constraint. Credits are never mutated after
// creation.
type CarbonCredit struct {
	ID                 uuid.UUID       // The unique identifier for the issuance.
	ProjectSiteID      uuid.UUID       // The site the credits were issued for.
	PlantationRecordID uuid.UUID       // The verified record; 1:1, unique.
	Year               int             // Reporting year (year of the planting date).
	CreditsIssued      decimal.Decimal // Issued amount, 2 fractional digits, non-negative.
	TxnHash            string          // Opaque unique transaction reference; generated once.
	IssuedDate         time.Time       // When the credits were issued.
}

// CalculateCredits computes the credits earned by a plantation record:
// plants x 0.5 x ecosystem multiplier, rounded to 2 decimal places.
func CalculateCredits(numberOfPlants int, ecosystem EcosystemType) decimal.Decimal {
	return decimal.NewFromInt(int64(numberOfPlants)).
		Mul(baseCreditsPerPlant).
		Mul(ecosystem.CreditMultiplier()).
		Round(2)
}

// NewCarbonCredit builds the issuance for a verified record. The transaction
// reference is a one-way digest over site id, credit amount, and issuance time;
// it is generated exactly once here and never regenerated.
func NewCarbonCredit(siteID, recordID uuid.UUID, year int, credits decimal.Decimal, issuedAt time.Time) *CarbonCredit {
	return &CarbonCredit{
		ProjectSiteID:      siteID,
		PlantationRecordID: recordID,
		Year:               year,
		CreditsIssued:      credits,
		TxnHash:            newTransactionHash(siteID, credits, issuedAt),
		IssuedDate:         issuedAt,
	}
}

// newTransactionHash derives the opaque transaction reference. It is a plain
// SHA-256 digest, not a distributed-ledger transaction.
func newTransactionHash(siteID uuid.UUID, credits decimal.Decimal, issuedAt time.Time) string {
	data := fmt.Sprintf("%s%s%d", siteID, credits.StringFixed(2), issuedAt.UnixNano())

	return fmt.Sprintf("%x", sha256.Sum256([]byte(data)))
}
