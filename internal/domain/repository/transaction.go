// Package repository defines the interfaces for the persistence layer.
package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	// LicenseRepo returns a LicenseRepository bound to the current transaction.
	LicenseRepo() LicenseRepository

	// DeviceRepo returns a DeviceRepository bound to the current transaction.
	DeviceRepo() DeviceRepository

	// TokenRepo returns an EnrollmentTokenRepository bound to the current transaction.
	TokenRepo() EnrollmentTokenRepository

	// CodeRepo returns an UnlockCodeRepository bound to the current transaction.
	CodeRepo() UnlockCodeRepository

	// PolicyRepo returns a PolicyRepository bound to the current transaction.
	PolicyRepo() PolicyRepository
}
