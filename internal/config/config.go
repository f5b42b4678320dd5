package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// Config holds service configuration. Values come from an optional YAML file
// and are then overridden by environment variables.
//
// Environment variables:
//   - CONFIG_PATH: YAML file to read (default: config.yaml, skipped if absent)
//   - PORT: listen port (default: 8000)
//   - DATA_DIR: document directory (default: /app/data if it exists, else data)
//   - SUPPORTED_SIDO_CODE: province whose rosters are served (default: 11)
//   - DEFAULT_YEAR: year used when a request omits one (default: 2023)
//   - CORS_ALLOWED_ORIGINS: comma separated origins (default: *)
//   - RATE_LIMIT_ENABLED: per-client request limit (default: false)
//   - RATE_LIMIT_RPS / RATE_LIMIT_BURST: limit per client address (default: 50 / 100)
//   - LDA_PROVIDER: topic-model provider, "documents" or "unimplemented" (default: documents)
type Config struct {
	Port    string `yaml:"port"`
	DataDir string `yaml:"data_dir"`

	// Rosters exist for a single province. Its district names carry the
	// province name as a prefix in the statistics documents.
	SupportedSidoCode   string `yaml:"supported_sido_code"`
	SupportedSidoPrefix string `yaml:"supported_sido_prefix"`

	DefaultYear string `yaml:"default_year"`
	LatestYear  string `yaml:"latest_year"`

	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`

	RateLimit RateLimit `yaml:"rate_limit"`

	LDAProvider string `yaml:"lda_provider"`

	// Documents overrides filenames by logical document name.
	Documents map[string]string `yaml:"documents"`
}

type RateLimit struct {
	Enabled bool    `yaml:"enabled"`
	RPS     float64 `yaml:"rps"`
	Burst   int     `yaml:"burst"`
}

const defaultConfigPath = "config.yaml"

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	dataDir := "data"
	if st, err := os.Stat("/app/data"); err == nil && st.IsDir() {
		dataDir = "/app/data"
	}
	return Config{
		Port:                "8000",
		DataDir:             dataDir,
		SupportedSidoCode:   "11",
		SupportedSidoPrefix: "서울특별시 ",
		DefaultYear:         "2023",
		LatestYear:          "2023",
		CORSAllowedOrigins:  []string{"*"},
		RateLimit:           RateLimit{Enabled: false, RPS: 50, Burst: 100},
		LDAProvider:         "documents",
		Documents:           map[string]string{},
	}
}

// Load builds the configuration: defaults, then the YAML file, then the environment.
func Load() (Config, error) {
	cfg := Defaults()

	path := strings.TrimSpace(os.Getenv("CONFIG_PATH"))
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}
	if err := cfg.mergeFile(path, explicit); err != nil {
		return Config{}, err
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string, required bool) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return c.parse(b)
}

func (c *Config) parse(b []byte) error {
	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if c.Documents == nil {
		c.Documents = map[string]string{}
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		c.Port = v
	}
	if v := strings.TrimSpace(os.Getenv("DATA_DIR")); v != "" {
		c.DataDir = v
	}
	if v := strings.TrimSpace(os.Getenv("SUPPORTED_SIDO_CODE")); v != "" {
		c.SupportedSidoCode = v
	}
	if v := strings.TrimSpace(os.Getenv("DEFAULT_YEAR")); v != "" {
		c.DefaultYear = v
	}
	if v := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.CORSAllowedOrigins = origins
	}
	if v := strings.TrimSpace(os.Getenv("LDA_PROVIDER")); v != "" {
		c.LDAProvider = v
	}
	if v := strings.TrimSpace(os.Getenv("RATE_LIMIT_ENABLED")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.RateLimit.Enabled = b
		}
	}
	if v := strings.TrimSpace(os.Getenv("RATE_LIMIT_RPS")); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.RateLimit.RPS = f
		}
	}
	if v := strings.TrimSpace(os.Getenv("RATE_LIMIT_BURST")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RateLimit.Burst = n
		}
	}
}

// Validate checks values that would otherwise fail at request time.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DataDir) == "" {
		return errors.New("data_dir is empty")
	}
	if strings.TrimSpace(c.Port) == "" {
		return errors.New("port is empty")
	}
	if c.SupportedSidoCode == "" {
		return errors.New("supported_sido_code is empty")
	}
	if c.LDAProvider == "" {
		return errors.New("lda_provider is empty")
	}
	if c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("rate_limit needs positive rps and burst, got %v/%d", c.RateLimit.RPS, c.RateLimit.Burst)
	}
	return nil
}
