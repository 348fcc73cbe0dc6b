package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"mdm/config"
	"mdm/internal/domain/repository"
	mockRepo "mdm/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Enrollment: &config.EnrollmentConfig{
			TokenTTL:       24 * time.Hour,
			SweepInterval:  5 * time.Minute,
			SweepBatchSize: 100,
		},
		UnlockCode: &config.UnlockCodeConfig{
			TTL:    15 * time.Minute,
			Length: 8,
		},
		Telemetry: &config.TelemetryConfig{
			HistoryEnabled:   true,
			HistoryRetention: 7 * 24 * time.Hour,
		},
	}
}

// newTxManager returns a transaction manager whose Execute runs the callback
// against the given factory, standing in for a committed transaction.
func newTxManager(t *testing.T, factory repository.RepositoryFactory) *mockRepo.MockTransactionManager {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	return txManager
}

// newRepoFactory wires a factory that hands back the given repository mocks
// inside a transaction. Nil arguments stay unwired.
func newRepoFactory(
	t *testing.T,
	licenseRepo repository.LicenseRepository,
	deviceRepo repository.DeviceRepository,
	tokenRepo repository.EnrollmentTokenRepository,
	codeRepo repository.UnlockCodeRepository,
	policyRepo repository.PolicyRepository,
) *mockRepo.MockRepositoryFactory {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	if licenseRepo != nil {
		factory.EXPECT().LicenseRepo().Return(licenseRepo)
	}
	if deviceRepo != nil {
		factory.EXPECT().DeviceRepo().Return(deviceRepo)
	}
	if tokenRepo != nil {
		factory.EXPECT().TokenRepo().Return(tokenRepo)
	}
	if codeRepo != nil {
		factory.EXPECT().CodeRepo().Return(codeRepo)
	}
	if policyRepo != nil {
		factory.EXPECT().PolicyRepo().Return(policyRepo)
	}

	return factory
}
