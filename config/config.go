package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultEnrollmentTokenTTL = 24 * time.Hour
	defaultSweepInterval      = 5 * time.Minute
	defaultSweepBatchSize     = 100
	defaultUnlockCodeTTL      = 15 * time.Minute
	defaultUnlockCodeLength   = 8
	defaultHistoryRetention   = 7 * 24 * time.Hour
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	// HTTP is the console API listened to by the admin and reseller panels.
	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// DeviceAPI is the inbound channel for enrolling devices, telemetry
	// reports and management status callbacks.
	DeviceAPI struct {
		Port int `json:"port" yaml:"port"`
	} `json:"deviceApi" yaml:"deviceApi"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Admin holds the super-administrator console credentials.
	Admin *AdminConfig `json:"admin" yaml:"admin"`

	// Enrollment configures QR enrollment token issuance and expiry.
	Enrollment *EnrollmentConfig `json:"enrollment" yaml:"enrollment"`

	// UnlockCode configures one-time unlock code issuance.
	UnlockCode *UnlockCodeConfig `json:"unlockCode" yaml:"unlockCode"`

	// Telemetry configures the device location history window.
	Telemetry *TelemetryConfig `json:"telemetry" yaml:"telemetry"`

	// QRCode configures provisioning QR rendering.
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// MgmtChannel configures the outbound management channel publisher.
	MgmtChannel *MgmtChannelConfig `json:"mgmtChannel" yaml:"mgmtChannel"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`
}

// AdminConfig defines the seeded super-admin login.
type AdminConfig struct {
	Email        string `json:"email" yaml:"email"`
	PasswordHash string `json:"passwordHash" yaml:"passwordHash"` // Bcrypt hash, never plaintext.
}

// EnrollmentConfig defines enrollment token issuance configuration.
type EnrollmentConfig struct {
	// TokenTTL is how long a PENDING token reserves its license.
	TokenTTL time.Duration `json:"tokenTtl" yaml:"tokenTtl"`

	// SweepInterval is how often the expiry sweeper runs.
	SweepInterval time.Duration `json:"sweepInterval" yaml:"sweepInterval"`

	// SweepBatchSize bounds how many expired tokens one sweep handles.
	SweepBatchSize int `json:"sweepBatchSize" yaml:"sweepBatchSize"`
}

// UnlockCodeConfig defines one-time unlock code configuration.
type UnlockCodeConfig struct {
	// TTL is how long an issued code stays verifiable.
	TTL time.Duration `json:"ttl" yaml:"ttl"`

	// Length is the number of characters in a generated code.
	Length int `json:"length" yaml:"length"`
}

// TelemetryConfig defines telemetry retention configuration.
type TelemetryConfig struct {
	// HistoryEnabled toggles the bounded location history.
	HistoryEnabled bool `json:"historyEnabled" yaml:"historyEnabled"`

	// HistoryRetention is the location history window, e.g. 7 days.
	HistoryRetention time.Duration `json:"historyRetention" yaml:"historyRetention"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// MgmtChannelConfig defines the outbound management channel publisher.
type MgmtChannelConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	cfg.Postgres.Replicas = buildReplicasFromEnv()

	return cfg, nil
}

// applyDefaults fills lifecycle sections so the core never sees a nil or
// zero-valued TTL.
func applyDefaults(cfg *Config) {
	if cfg.Enrollment == nil {
		cfg.Enrollment = &EnrollmentConfig{}
	}
	if cfg.Enrollment.TokenTTL <= 0 {
		cfg.Enrollment.TokenTTL = defaultEnrollmentTokenTTL
	}
	if cfg.Enrollment.SweepInterval <= 0 {
		cfg.Enrollment.SweepInterval = defaultSweepInterval
	}
	if cfg.Enrollment.SweepBatchSize <= 0 {
		cfg.Enrollment.SweepBatchSize = defaultSweepBatchSize
	}

	if cfg.UnlockCode == nil {
		cfg.UnlockCode = &UnlockCodeConfig{}
	}
	if cfg.UnlockCode.TTL <= 0 {
		cfg.UnlockCode.TTL = defaultUnlockCodeTTL
	}
	if cfg.UnlockCode.Length <= 0 {
		cfg.UnlockCode.Length = defaultUnlockCodeLength
	}

	if cfg.Telemetry == nil {
		cfg.Telemetry = &TelemetryConfig{HistoryEnabled: true}
	}
	if cfg.Telemetry.HistoryRetention <= 0 {
		cfg.Telemetry.HistoryRetention = defaultHistoryRetention
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
