package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateEnrollmentQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qr, err := service.GenerateEnrollmentQR("tok_abc123")
	require.NoError(t, err)
	require.NotNil(t, qr)
	assert.NotEmpty(t, qr.Payload)
	assert.NotEmpty(t, qr.PNG)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qr.PNG[0])
	assert.Equal(t, byte(0x50), qr.PNG[1])
	assert.Equal(t, byte(0x4E), qr.PNG[2])
	assert.Equal(t, byte(0x47), qr.PNG[3])

	// Payload follows the Android provisioning extras contract
	assert.Contains(t, qr.Payload, "android.app.extra.PROVISIONING_MODE")
	assert.Contains(t, qr.Payload, "tok_abc123")
}

func TestQRCodeService_GenerateEnrollmentQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M")

			qr, err := service.GenerateEnrollmentQR("tok_sized")
			require.NoError(t, err)
			assert.NotEmpty(t, qr.PNG)
		})
	}
}

func TestQRCodeService_ParseEnrollmentQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qr, err := service.GenerateEnrollmentQR("tok_roundtrip")
	require.NoError(t, err)

	token, err := service.ParseEnrollmentQR(qr.Payload)
	require.NoError(t, err)
	assert.Equal(t, "tok_roundtrip", token)
}

func TestQRCodeService_ParseEnrollmentQR_InvalidJSON(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.ParseEnrollmentQR("invalid json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal QR code data")
}

func TestQRCodeService_ParseEnrollmentQR_MissingToken(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.ParseEnrollmentQR(`{"android.app.extra.PROVISIONING_MODE":"fully_managed_device"}`)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no enrollment token")
}
