package service

// CodeGenerator defines the interface for generating the random secrets used
// by the lifecycle: one-time unlock codes, enrollment token values and
// license activation keys.
type CodeGenerator interface {
	// UnlockCode returns a short uppercase alphanumeric code with enough
	// entropy to resist brute force within its validity window.
	UnlockCode() (string, error)

	// EnrollmentToken returns a long opaque token value for QR provisioning.
	EnrollmentToken() (string, error)

	// LicenseKey returns a grouped activation key, e.g. "MDM-7F2K-9QX1-C4BD".
	LicenseKey() (string, error)
}
