package usecase

import (
	"context"
	"time"

	"mdm/internal/domain/entity"
)

// --- Input DTOs ---

// EnrollInput defines the data a device submits when consuming an enrollment token.
type EnrollInput struct {
	Token       string
	IMEI        string
	ClientName  string
	ClientPhone string
}

// --- Output DTOs ---

// IssueTokenOutput returns the issued token together with its provisioning QR.
type IssueTokenOutput struct {
	Token     string
	ExpiresAt time.Time
	QRPayload string
	QRImage   []byte // PNG bytes rendered for the console.
}

// EnrollOutput returns the device record created by a successful enrollment.
type EnrollOutput struct {
	Device *entity.Device
	Policy *entity.Policy // The tenant default applied at enrollment, nil if none.
}

// EnrollmentUsecase defines the interface for the QR enrollment flow.
type EnrollmentUsecase interface {
	// IssueToken reserves one license of the reseller and returns a
	// provisioning QR embedding the new single-use token.
	IssueToken(ctx context.Context, actor Actor) (*IssueTokenOutput, error)

	// Enroll consumes a PENDING token and creates the device record. The
	// token consume, license binding and device creation commit atomically.
	Enroll(ctx context.Context, input EnrollInput) (*EnrollOutput, error)

	// ExpireStaleTokens sweeps PENDING tokens past their TTL, marking them
	// EXPIRED and returning their reserved licenses to the pool. Returns the
	// number of tokens swept.
	ExpireStaleTokens(ctx context.Context) (int, error)
}
