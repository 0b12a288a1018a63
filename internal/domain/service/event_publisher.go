package service

import "context"

// Event types published by the registry.
const (
	EventRecordVerified = "record.verified"
	EventCreditIssued   = "credit.issued"
)

// RegistryEvent represents a verification or issuance event published for
// downstream consumers (reporting, notifications).
type RegistryEvent struct {
	RequestID     string `json:"request_id,omitempty"` // For distributed tracing
	Type          string `json:"type"`
	SiteID        string `json:"site_id"`
	RecordID      string `json:"record_id"`
	CreditID      string `json:"credit_id,omitempty"`
	CreditsIssued string `json:"credits_issued,omitempty"`
	VerifiedBy    string `json:"verified_by,omitempty"`
}

// EventPublisher defines the interface for publishing registry events to a
// message queue.
type EventPublisher interface {
	// PublishRegistryEvent publishes a registry event for async processing.
	PublishRegistryEvent(ctx context.Context, event *RegistryEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
