package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/pagekit"
	"github.com/fwojciec/pagekit/goquery"
	pkhttp "github.com/fwojciec/pagekit/http"
	"github.com/fwojciec/pagekit/importer"
	"gopkg.in/yaml.v3"
)

// Metadata reader names accepted by the config file.
const (
	MetadataReadability = "readability"
	MetadataTrafilatura = "trafilatura"
	MetadataNone        = "none"
)

// Config is the optional YAML configuration file. Keys left out of the file
// keep their DefaultConfig values.
type Config struct {
	Limits goquery.Limits `yaml:"limits"`

	Fetch struct {
		Timeout time.Duration `yaml:"timeout"`
		RPS     float64       `yaml:"rps"`
		Retries int           `yaml:"retries"`
		// DenyPrivateHosts refuses loopback and private network targets.
		DenyPrivateHosts bool `yaml:"denyPrivateHosts"`
	} `yaml:"fetch"`

	Import struct {
		Concurrency int `yaml:"concurrency"`
	} `yaml:"import"`

	Metadata       string `yaml:"metadata"`
	DetectLanguage bool   `yaml:"detectLanguage"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	cfg := &Config{
		Limits:         goquery.DefaultLimits(),
		Metadata:       MetadataReadability,
		DetectLanguage: true,
	}
	cfg.Fetch.Timeout = pkhttp.DefaultFetchTimeout
	cfg.Fetch.RPS = 1.0
	cfg.Fetch.Retries = len(pkhttp.DefaultRetryDelays())
	cfg.Import.Concurrency = importer.DefaultConcurrency
	return cfg
}

// LoadConfig reads the config file at path over the defaults. A missing
// file yields the defaults; a malformed one returns EINVALID.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	} else if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, pagekit.Errorf(pagekit.EINVALID, "malformed config %s: %v", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate returns an error if the configuration is not usable.
func (c *Config) Validate() error {
	switch c.Metadata {
	case MetadataReadability, MetadataTrafilatura, MetadataNone, "":
	default:
		return pagekit.Errorf(pagekit.EINVALID, "unknown metadata reader %q", c.Metadata)
	}
	if c.Fetch.Timeout < 0 {
		return pagekit.Errorf(pagekit.EINVALID, "fetch.timeout must not be negative")
	}
	if c.Fetch.RPS <= 0 {
		return pagekit.Errorf(pagekit.EINVALID, "fetch.rps must be positive")
	}
	if c.Fetch.Retries < 0 {
		return pagekit.Errorf(pagekit.EINVALID, "fetch.retries must not be negative")
	}
	if c.Import.Concurrency < 0 {
		return pagekit.Errorf(pagekit.EINVALID, "import.concurrency must not be negative")
	}
	return nil
}

// RetryDelays returns Fetch.Retries exponential backoff delays starting at
// one second.
func (c *Config) RetryDelays() []time.Duration {
	delays := make([]time.Duration, c.Fetch.Retries)
	d := time.Second
	for i := range delays {
		delays[i] = d
		d *= 2
	}
	return delays
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pagekit", "config.yaml")
}
