package service

// EnrollmentQR is the rendered provisioning payload for one enrollment token.
type EnrollmentQR struct {
	Payload string // The Android Enterprise provisioning JSON encoded in the QR.
	PNG     []byte // PNG rendering of the QR code for the console.
}

// QRCodeService defines the interface for building and parsing enrollment QR
// payloads scanned during the Android Enterprise setup flow.
type QRCodeService interface {
	// GenerateEnrollmentQR builds the provisioning payload embedding the
	// enrollment token and renders it as a PNG.
	GenerateEnrollmentQR(token string) (*EnrollmentQR, error)

	// ParseEnrollmentQR extracts the enrollment token from a scanned payload.
	ParseEnrollmentQR(payload string) (string, error)
}
