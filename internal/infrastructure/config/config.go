package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"fieldops_completion/internal/domain/entities"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the runtime configuration read from the environment.
//
// Supported env vars:
//   - PORT (default: 8080)
//   - WORK_TIMEZONE (default: Asia/Seoul)
//   - LOGGING_LEVEL (default: info), LOGGING_FORMAT (default: json)
//   - LEGACY_API_BASE_URL, LEGACY_API_TIMEOUT (default: 10s),
//     LEGACY_API_MAX_RETRIES (default: 2), LEGACY_API_MOCK
//   - DRAFTS_TABLE (default: work_drafts)
//   - CODE_CACHE_TTL (default: 10m)
//   - COMPLETED_TOMBSTONE_TTL (default: 24h)
//   - POLICY_FILE (optional YAML overlay for the business code tables)
type Config struct {
	Port          string
	Location      *time.Location
	LogLevel      string
	LogFormat     string
	Legacy        LegacyConfig
	DraftsTable   string
	TombstoneTTL  time.Duration
	Policy        entities.Policy
	PolicySources []string
}

type LegacyConfig struct {
	BaseURL      string
	Timeout      time.Duration
	MaxRetries   int
	Mock         bool
	CodeCacheTTL time.Duration
}

func Load() (Config, error) {
	cfg := Config{
		Port:        getenvDefault("PORT", "8080"),
		LogLevel:    getenvDefault("LOGGING_LEVEL", "info"),
		LogFormat:   getenvDefault("LOGGING_FORMAT", "json"),
		DraftsTable: getenvDefault("DRAFTS_TABLE", "work_drafts"),
		Policy:      entities.DefaultPolicy(),
	}

	loc, err := time.LoadLocation(getenvDefault("WORK_TIMEZONE", "Asia/Seoul"))
	if err != nil {
		return Config{}, fmt.Errorf("%w: WORK_TIMEZONE: %v", ErrInvalidConfig, err)
	}
	cfg.Location = loc

	if cfg.TombstoneTTL, err = durationEnv("COMPLETED_TOMBSTONE_TTL", 24*time.Hour); err != nil {
		return Config{}, err
	}

	cfg.Legacy = LegacyConfig{
		BaseURL: strings.TrimRight(os.Getenv("LEGACY_API_BASE_URL"), "/"),
		Mock:    boolEnv("LEGACY_API_MOCK"),
	}
	if cfg.Legacy.Timeout, err = durationEnv("LEGACY_API_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.Legacy.CodeCacheTTL, err = durationEnv("CODE_CACHE_TTL", 10*time.Minute); err != nil {
		return Config{}, err
	}
	retries := getenvDefault("LEGACY_API_MAX_RETRIES", "2")
	if cfg.Legacy.MaxRetries, err = strconv.Atoi(retries); err != nil || cfg.Legacy.MaxRetries < 0 {
		return Config{}, fmt.Errorf("%w: LEGACY_API_MAX_RETRIES=%q", ErrInvalidConfig, retries)
	}
	if cfg.Legacy.BaseURL == "" && !cfg.Legacy.Mock {
		return Config{}, fmt.Errorf("%w: LEGACY_API_BASE_URL is required unless LEGACY_API_MOCK is set", ErrInvalidConfig)
	}

	if path := strings.TrimSpace(os.Getenv("POLICY_FILE")); path != "" {
		if cfg.Policy, err = LoadPolicy(path, cfg.Policy); err != nil {
			return Config{}, err
		}
		cfg.PolicySources = append(cfg.PolicySources, path)
	}
	return cfg, nil
}

// LoadPolicy overlays the YAML file at path onto base. Keys absent from the
// file keep their base value.
func LoadPolicy(path string, base entities.Policy) (entities.Policy, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read policy file: %w", err)
	}
	return ParsePolicy(raw, base)
}

func ParsePolicy(raw []byte, base entities.Policy) (entities.Policy, error) {
	p := base
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return base, fmt.Errorf("%w: policy: %v", ErrInvalidConfig, err)
	}
	if strings.TrimSpace(p.HotbillWorkCode) == "" {
		return base, fmt.Errorf("%w: policy: hotbill_work_code must not be empty", ErrInvalidConfig)
	}
	return p, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidConfig, key, v)
	}
	return d, nil
}

func boolEnv(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
