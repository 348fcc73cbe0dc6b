package unlockcode

import (
	"crypto/rand"
	"encoding/base64"
	"strings"

	"mdm/config"
	"mdm/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// unlockCodeAlphabet deliberately omits easily confused characters
// (0/O, 1/I/L) since staff read these codes to clients over the phone.
const unlockCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const licenseKeyAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// Params defines the parameters required for the code generator
type Params struct {
	fx.In

	Config *config.Config
}

type randomCodeGenerator struct {
	unlockCodeLength int
}

// New creates a CodeGenerator backed by crypto/rand.
func New(params Params) service.CodeGenerator {
	length := 8
	if params.Config.UnlockCode != nil && params.Config.UnlockCode.Length > 0 {
		length = params.Config.UnlockCode.Length
	}

	return &randomCodeGenerator{unlockCodeLength: length}
}

func (g *randomCodeGenerator) UnlockCode() (string, error) {
	code, err := randomFromAlphabet(unlockCodeAlphabet, g.unlockCodeLength)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate unlock code")
	}

	return code, nil
}

func (g *randomCodeGenerator) EnrollmentToken() (string, error) {
	// 32 random bytes gives an opaque url-safe token long enough that
	// guessing is not a concern within the token's lifetime.
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate enrollment token")
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func (g *randomCodeGenerator) LicenseKey() (string, error) {
	groups := make([]string, 0, 3)
	for range 3 {
		group, err := randomFromAlphabet(licenseKeyAlphabet, 4)
		if err != nil {
			return "", errors.Wrap(err, "failed to generate license key")
		}
		groups = append(groups, group)
	}

	return "MDM-" + strings.Join(groups, "-"), nil
}

// randomFromAlphabet draws length characters uniformly from alphabet
// using rejection sampling to avoid modulo bias.
func randomFromAlphabet(alphabet string, length int) (string, error) {
	max := byte(len(alphabet))
	limit := byte(256 - (256 % len(alphabet)))

	var sb strings.Builder
	sb.Grow(length)

	buf := make([]byte, length*2)
	for sb.Len() < length {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if b >= limit {
				continue
			}
			sb.WriteByte(alphabet[b%max])
			if sb.Len() == length {
				break
			}
		}
	}

	return sb.String(), nil
}
