package entity

import "github.com/shopspring/decimal"

// EcosystemType classifies a blue carbon project site.
type EcosystemType string

const (
	// EcosystemMangrove indicates a mangrove forest site.
	EcosystemMangrove EcosystemType = "MANGROVE"
	// EcosystemSeagrass indicates a seagrass meadow site.
	EcosystemSeagrass EcosystemType = "SEAGRASS"
	// EcosystemMarsh indicates a salt marsh site.
	EcosystemMarsh EcosystemType = "MARSH"
)

// String returns the string representation of the EcosystemType.
func (e EcosystemType) String() string {
	return string(e)
}

// IsValid checks if the EcosystemType is a valid value.
func (e EcosystemType) IsValid() bool {
	switch e {
	case EcosystemMangrove, EcosystemSeagrass, EcosystemMarsh:
		return true
	default:
		return false
	}
}

// EcosystemTypes lists all valid ecosystem types, in display order.
func EcosystemTypes() []EcosystemType {
	return []EcosystemType{EcosystemMangrove, EcosystemSeagrass, EcosystemMarsh}
}

// CreditMultiplier returns the per-ecosystem sequestration multiplier applied
// during credit calculation. Unrecognized types fall back to 1.0.
func (e EcosystemType) CreditMultiplier() decimal.Decimal {
	switch e {
	case EcosystemMangrove:
		return decimal.RequireFromString("1.5")
	case EcosystemSeagrass:
		return decimal.RequireFromString("1.2")
	default:
		return decimal.RequireFromString("1.0")
	}
}
