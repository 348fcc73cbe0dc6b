package qrcode

import (
	"encoding/json"
	"fmt"

	"mdm/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// provisioningPayload mirrors the extras bundle an Android Enterprise
// provisioning QR carries. Field names follow the DevicePolicyManager
// provisioning contract, so the device-side agent can read them directly.
type provisioningPayload struct {
	ProvisioningMode string      `json:"android.app.extra.PROVISIONING_MODE"`
	AdminExtras      adminExtras `json:"android.app.extra.PROVISIONING_ADMIN_EXTRAS_BUNDLE"`
}

type adminExtras struct {
	EnrollmentToken string `json:"enrollment_token"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateEnrollmentQR generates a provisioning QR code carrying the
// enrollment token.
func (s *qrcodeService) GenerateEnrollmentQR(token string) (*service.EnrollmentQR, error) {
	payload := provisioningPayload{
		ProvisioningMode: "fully_managed_device",
		AdminExtras: adminExtras{
			EnrollmentToken: token,
		},
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return &service.EnrollmentQR{
		Payload: string(jsonData),
		PNG:     pngBytes,
	}, nil
}

// ParseEnrollmentQR parses a provisioning QR payload and returns the
// enrollment token embedded in the admin extras bundle.
func (s *qrcodeService) ParseEnrollmentQR(payload string) (string, error) {
	var data provisioningPayload
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.AdminExtras.EnrollmentToken == "" {
		return "", fmt.Errorf("QR code payload carries no enrollment token")
	}

	return data.AdminExtras.EnrollmentToken, nil
}
