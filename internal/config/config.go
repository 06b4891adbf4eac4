// Package config loads the simforest configuration from a YAML or TOML file,
// an optional .env file, and SIMFOREST_* environment overrides, in that order
// of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/simforest/prim_kruskal"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the top-level application configuration.
type Config struct {
	// Method selects the spanning-forest strategy for every dataset of a run.
	Method      string          `yaml:"method" toml:"method"`
	Concurrency int             `yaml:"concurrency" toml:"concurrency"`
	InputDir    string          `yaml:"inputDir" toml:"input_dir"`
	OutputDir   string          `yaml:"outputDir" toml:"output_dir"`
	Format      string          `yaml:"format" toml:"format"`
	Datasets    []DatasetConfig `yaml:"datasets" toml:"datasets"`
	Logging     LoggingConfig   `yaml:"logging" toml:"logging"`
	Metrics     MetricsConfig   `yaml:"metrics" toml:"metrics"`
	Server      ServerConfig    `yaml:"server" toml:"server"`
}

// DatasetConfig names one input file. Relative paths resolve against InputDir.
type DatasetConfig struct {
	Name  string `yaml:"name" toml:"name"`
	Input string `yaml:"input" toml:"input"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

// MetricsConfig controls the Prometheus endpoint of the batch runner.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" toml:"enabled"`
	Addr    string `yaml:"addr" toml:"addr"`
}

// ServerConfig holds the HTTP API settings.
type ServerConfig struct {
	Addr            string        `yaml:"addr" toml:"addr"`
	MaxRecords      int           `yaml:"maxRecords" toml:"max_records"`
	ShutdownTimeout Duration `yaml:"shutdownTimeout" toml:"shutdown_timeout"`
}

// Duration is a time.Duration written as "15s" or "500ms" in both YAML and TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText parses s with time.ParseDuration.
func (d *Duration) UnmarshalText(s []byte) error {
	v, err := time.ParseDuration(string(s))
	if err != nil {
		return err
	}
	d.Duration = v

	return nil
}

// MarshalText renders d as time.Duration.String does.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Load reads a config file (if path is not empty) and applies environment
// overrides. The file format follows the extension: .yaml/.yml or .toml.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".toml":
			err = toml.Unmarshal(data, cfg)
		case ".yaml", ".yml", "":
			err = yaml.Unmarshal(data, cfg)
		default:
			err = fmt.Errorf("unsupported extension %q", filepath.Ext(path))
		}
		if err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)

	return cfg, nil
}

// LoadDotEnv loads variables from the given .env files (default ".env") into
// the process environment. Missing files are ignored; existing variables win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}

	return nil
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	if _, err := prim_kruskal.ParseMethod(c.Method); err != nil {
		return fmt.Errorf("%w: method: %w", ErrInvalid, err)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("%w: concurrency must be >= 1, got %d", ErrInvalid, c.Concurrency)
	}
	switch c.Format {
	case "xlsx", "csv":
	default:
		return fmt.Errorf("%w: format must be xlsx or csv, got %q", ErrInvalid, c.Format)
	}
	for i, d := range c.Datasets {
		if d.Input == "" {
			return fmt.Errorf("%w: datasets[%d] has no input", ErrInvalid, i)
		}
	}

	return nil
}

// DatasetPath resolves d.Input against InputDir.
func (c *Config) DatasetPath(d DatasetConfig) string {
	if filepath.IsAbs(d.Input) || c.InputDir == "" {
		return d.Input
	}

	return filepath.Join(c.InputDir, d.Input)
}

func defaultConfig() *Config {
	return &Config{
		Method:      string(prim_kruskal.MethodKruskal),
		Concurrency: 4,
		InputDir:    "testdata",
		OutputDir:   "output",
		Format:      "xlsx",
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Addr:    ":9090",
		},
		Server: ServerConfig{
			Addr:            ":8080",
			MaxRecords:      100000,
			ShutdownTimeout: Duration{15 * time.Second},
		},
	}
}

// applyEnvOverrides reads SIMFOREST_* environment variables and overrides the
// corresponding config fields.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SIMFOREST_METHOD"); v != "" {
		cfg.Method = v
	}
	if v := os.Getenv("SIMFOREST_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Concurrency = n
		}
	}
	if v := os.Getenv("SIMFOREST_INPUT_DIR"); v != "" {
		cfg.InputDir = v
	}
	if v := os.Getenv("SIMFOREST_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv("SIMFOREST_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("SIMFOREST_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("SIMFOREST_LOGGING_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("SIMFOREST_METRICS_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Metrics.Enabled = b
		}
	}
	if v := os.Getenv("SIMFOREST_METRICS_ADDR"); v != "" {
		cfg.Metrics.Addr = v
	}
	if v := os.Getenv("SIMFOREST_SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("SIMFOREST_SERVER_MAX_RECORDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MaxRecords = n
		}
	}
	if v := os.Getenv("SIMFOREST_SERVER_SHUTDOWN_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Server.ShutdownTimeout = Duration{d}
		}
	}
}
