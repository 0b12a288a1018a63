package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the usecase layer to handle transactions without depending on a
// specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction. If the function
	// returns an error, the transaction is rolled back; otherwise it is
	// committed. All repository operations within the function use the same
	// database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction, ensuring all operations within it share one connection.
type RepositoryFactory interface {
	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository

	// AuthRepo returns an AuthRepository bound to the current transaction.
	AuthRepo() AuthRepository

	// RefreshTokenRepo returns a RefreshTokenRepository bound to the current transaction.
	RefreshTokenRepo() RefreshTokenRepository

	// SiteRepo returns a SiteRepository bound to the current transaction.
	SiteRepo() SiteRepository

	// RecordRepo returns a RecordRepository bound to the current transaction.
	RecordRepo() RecordRepository

	// CreditRepo returns a CreditRepository bound to the current transaction.
	CreditRepo() CreditRepository
}
