package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateCredits(t *testing.T) {
	tests := []struct {
		name      string
		plants    int
		ecosystem EcosystemType
		want      string
	}{
		{name: "mangrove applies 1.5 multiplier", plants: 1000, ecosystem: EcosystemMangrove, want: "750"},
		{name: "seagrass applies 1.2 multiplier", plants: 333, ecosystem: EcosystemSeagrass, want: "199.8"},
		{name: "marsh applies 1.0 multiplier", plants: 100, ecosystem: EcosystemMarsh, want: "50"},
		{name: "single mangrove plant", plants: 1, ecosystem: EcosystemMangrove, want: "0.75"},
		{name: "odd seagrass count rounds to two places", plants: 7, ecosystem: EcosystemSeagrass, want: "4.2"},
		{name: "unknown ecosystem falls back to 1.0", plants: 10, ecosystem: EcosystemType("KELP"), want: "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateCredits(tt.plants, tt.ecosystem)

			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got, tt.want)
		})
	}
}

func TestCalculateCredits_NoFloatDrift(t *testing.T) {
	// 0.1-style binary drift must not appear in issued amounts.
	got := CalculateCredits(3, EcosystemSeagrass)

	assert.Equal(t, "1.80", got.StringFixed(2))
}

func TestNewCarbonCredit(t *testing.T) {
	siteID := uuid.New()
	recordID := uuid.New()
	issuedAt := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	credits := CalculateCredits(1000, EcosystemMangrove)

	credit := NewCarbonCredit(siteID, recordID, 2024, credits, issuedAt)

	require.NotNil(t, credit)
	assert.Equal(t, siteID, credit.ProjectSiteID)
	assert.Equal(t, recordID, credit.PlantationRecordID)
	assert.Equal(t, 2024, credit.Year)
	assert.True(t, credit.CreditsIssued.Equal(credits))
	assert.Equal(t, issuedAt, credit.IssuedDate)
	assert.Len(t, credit.TxnHash, 64)
}

func TestNewCarbonCredit_TxnHashDeterministic(t *testing.T) {
	siteID := uuid.New()
	issuedAt := time.Now()
	credits := decimal.RequireFromString("750")

	a := NewCarbonCredit(siteID, uuid.New(), 2025, credits, issuedAt)
	b := NewCarbonCredit(siteID, uuid.New(), 2025, credits, issuedAt)

	// The reference is derived from site, amount, and issuance instant only.
	assert.Equal(t, a.TxnHash, b.TxnHash)
}

func TestNewCarbonCredit_TxnHashVariesByInput(t *testing.T) {
	siteID := uuid.New()
	recordID := uuid.New()
	issuedAt := time.Now()
	credits := decimal.RequireFromString("750")

	base := NewCarbonCredit(siteID, recordID, 2025, credits, issuedAt)
	otherSite := NewCarbonCredit(uuid.New(), recordID, 2025, credits, issuedAt)
	otherAmount := NewCarbonCredit(siteID, recordID, 2025, decimal.RequireFromString("751"), issuedAt)
	otherInstant := NewCarbonCredit(siteID, recordID, 2025, credits, issuedAt.Add(time.Nanosecond))

	assert.NotEqual(t, base.TxnHash, otherSite.TxnHash)
	assert.NotEqual(t, base.TxnHash, otherAmount.TxnHash)
	assert.NotEqual(t, base.TxnHash, otherInstant.TxnHash)
}
