package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"barflow/internal/model"
)

// Config holds application configuration. Defaults are overlaid by an
// optional YAML file (CONFIG_FILE), then by environment variables; a
// .env file is honored via godotenv.
type Config struct {
	Resolution string `yaml:"resolution" validate:"required"`
	TZ         string `yaml:"tz"`
	FFill      bool   `yaml:"ffill"`
	DropNA     bool   `yaml:"dropna"`

	Input     string `yaml:"input"`
	InputKind string `yaml:"input_kind" validate:"oneof=tick bar"`
	Output    string `yaml:"output"`

	PollURL         string  `yaml:"poll_url" validate:"omitempty,url"`
	PollIntervalSec int     `yaml:"poll_interval_sec" validate:"min=1"`
	PollMaxRPS      float64 `yaml:"poll_max_rps"`
	ReportDir       string  `yaml:"report_dir"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format" validate:"oneof=text json"`
}

// Load builds the configuration from defaults, CONFIG_FILE and the
// environment, then validates it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Resolution:      getEnv("RESOLUTION", "1T"),
		FFill:           true,
		InputKind:       "tick",
		PollIntervalSec: 60,
		PollMaxRPS:      1,
		ReportDir:       "data",
		LogLevel:        "info",
		LogFormat:       "text",
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	cfg.Resolution = getEnv("RESOLUTION", cfg.Resolution)
	cfg.TZ = getEnv("TZ_OUT", cfg.TZ)
	cfg.FFill = getEnvBool("FFILL", cfg.FFill)
	cfg.DropNA = getEnvBool("DROPNA", cfg.DropNA)
	cfg.Input = getEnv("INPUT", cfg.Input)
	cfg.InputKind = strings.ToLower(getEnv("INPUT_KIND", cfg.InputKind))
	cfg.Output = getEnv("OUTPUT", cfg.Output)
	cfg.PollURL = getEnv("POLL_URL", cfg.PollURL)
	cfg.PollIntervalSec = getEnvInt("POLL_INTERVAL_SEC", cfg.PollIntervalSec)
	cfg.ReportDir = getEnv("REPORT_DIR", cfg.ReportDir)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Kind maps the configured input kind to the model tag.
func (c *Config) Kind() model.Kind {
	if c.InputKind == "bar" {
		return model.KindBar
	}
	return model.KindTick
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
