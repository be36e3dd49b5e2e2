package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/fr4nk3nst1ner/salarystats/internal/salary"
	"github.com/fr4nk3nst1ner/salarystats/internal/utils"
)

const (
	// DefaultPath is looked up in the working directory when no --config is given
	DefaultPath = "salarystats.yaml"

	EnvSuperJobKey = "SUPERJOB_SECRET_KEY"
	EnvUserAgent   = "HH_USER_AGENT"

	SourceHeadHunter = "headhunter"
	SourceSuperJob   = "superjob"

	maxPerPage = 100
)

var (
	ErrMissingAPIKey = errors.New("SuperJob API key is not set (" + EnvSuperJobKey + ")")
	ErrNoLanguages   = errors.New("no languages to search for")
	ErrNoSources     = errors.New("all sources are disabled")
)

// Config is the full run configuration
type Config struct {
	Languages  []string         `yaml:"languages"`
	EnvFile    string           `yaml:"env_file"`
	HTTP       HTTPConfig       `yaml:"http"`
	HeadHunter HeadHunterConfig `yaml:"headhunter"`
	SuperJob   SuperJobConfig   `yaml:"superjob"`
}

type HTTPConfig struct {
	Timeout   time.Duration `yaml:"timeout"`
	Proxy     string        `yaml:"proxy"`
	UserAgent string        `yaml:"user_agent"` // Prefer HH_USER_AGENT env var
}

type HeadHunterConfig struct {
	Enabled          bool    `yaml:"enabled"`
	Title            string  `yaml:"title"`
	BaseURL          string  `yaml:"base_url"`
	ProfessionalRole int     `yaml:"professional_role"`
	Area             int     `yaml:"area"`
	PeriodDays       int     `yaml:"period_days"`
	PerPage          int     `yaml:"per_page"`
	MinFound         int     `yaml:"min_found"`
	Currency         string  `yaml:"currency"`
	GrossToNet       float64 `yaml:"gross_to_net"`
}

type SuperJobConfig struct {
	Enabled    bool     `yaml:"enabled"`
	Title      string   `yaml:"title"`
	BaseURL    string   `yaml:"base_url"`
	APIKey     string   `yaml:"api_key"` // Prefer SUPERJOB_SECRET_KEY env var
	Town       int      `yaml:"town"`
	PeriodDays int      `yaml:"period_days"`
	PerPage    int      `yaml:"per_page"`
	MaxPages   int      `yaml:"max_pages"`
	MinFound   int      `yaml:"min_found"`
	Currency   string   `yaml:"currency"`
	Keywords   []string `yaml:"keywords"`
}

// DefaultLanguages are the search terms used when none are configured
var DefaultLanguages = []string{
	"Python",
	"JavaScript",
	"Java",
	"Ruby",
	"PHP",
	"C++",
	"C#",
	"1С",
	"C",
	"Go",
	"Shell",
	"Objective-C",
	"Scala",
	"Swift",
	"TypeScript",
	"R",
	"PowerShell",
}

// Default returns the configuration for Moscow developer vacancies
// over the last 30 days
func Default() *Config {
	return &Config{
		Languages: append([]string(nil), DefaultLanguages...),
		EnvFile:   ".env",
		HTTP: HTTPConfig{
			Timeout:   30 * time.Second,
			UserAgent: "salarystats/1.0 (https://github.com/fr4nk3nst1ner/salarystats)",
		},
		HeadHunter: HeadHunterConfig{
			Enabled:          true,
			Title:            "HeadHunter Moscow",
			BaseURL:          "https://api.hh.ru",
			ProfessionalRole: 96,
			Area:             1,
			PeriodDays:       30,
			PerPage:          100,
			MinFound:         100,
			Currency:         salary.HeadHunterCurrency,
			GrossToNet:       salary.DefaultGrossToNet,
		},
		SuperJob: SuperJobConfig{
			Enabled:    true,
			Title:      "SuperJob Moscow",
			BaseURL:    "https://api.superjob.ru",
			Town:       4,
			PeriodDays: 30,
			PerPage:    100,
			MaxPages:   5,
			Currency:   salary.SuperJobCurrency,
			Keywords:   []string{"программист", "разработчик", "разработка"},
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file and
// the environment. An explicit path must exist; the default path may not.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// defaults only
	default:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyEnv loads the env file, if any, and lets environment variables
// override credentials. Variables already set in the process win over the file.
func (c *Config) ApplyEnv() error {
	if c.EnvFile != "" {
		if err := godotenv.Load(c.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", c.EnvFile, err)
		}
	}

	if key := os.Getenv(EnvSuperJobKey); key != "" {
		c.SuperJob.APIKey = key
	}
	if ua := os.Getenv(EnvUserAgent); ua != "" {
		c.HTTP.UserAgent = ua
	}

	return nil
}

// SetLanguages replaces the search terms with a comma separated list
func (c *Config) SetLanguages(list string) {
	var languages []string
	for _, lang := range strings.Split(list, ",") {
		if lang = strings.TrimSpace(lang); lang != "" {
			languages = append(languages, lang)
		}
	}
	c.Languages = languages
}

// SetSource keeps only the named source enabled. An empty name keeps both.
func (c *Config) SetSource(source string) error {
	switch utils.NormalizeSource(source) {
	case "":
		return nil
	case SourceHeadHunter, "hh":
		c.HeadHunter.Enabled = true
		c.SuperJob.Enabled = false
	case SourceSuperJob, "sj":
		c.HeadHunter.Enabled = false
		c.SuperJob.Enabled = true
	default:
		return fmt.Errorf("invalid source %q: must be one of %s, %s", source, SourceHeadHunter, SourceSuperJob)
	}
	return nil
}

// Validate checks the configuration before any request is made
func (c *Config) Validate() error {
	if len(c.Languages) == 0 {
		return ErrNoLanguages
	}
	if !c.HeadHunter.Enabled && !c.SuperJob.Enabled {
		return ErrNoSources
	}

	if c.HeadHunter.Enabled {
		if c.HeadHunter.PerPage < 1 || c.HeadHunter.PerPage > maxPerPage {
			return fmt.Errorf("headhunter.per_page must be between 1 and %d, got %d", maxPerPage, c.HeadHunter.PerPage)
		}
		if c.HeadHunter.GrossToNet <= 0 || c.HeadHunter.GrossToNet > 1 {
			return fmt.Errorf("headhunter.gross_to_net must be in (0, 1], got %v", c.HeadHunter.GrossToNet)
		}
	}

	if c.SuperJob.Enabled {
		if c.SuperJob.APIKey == "" {
			return ErrMissingAPIKey
		}
		if c.SuperJob.PerPage < 1 || c.SuperJob.PerPage > maxPerPage {
			return fmt.Errorf("superjob.per_page must be between 1 and %d, got %d", maxPerPage, c.SuperJob.PerPage)
		}
		if c.SuperJob.MaxPages < 1 {
			return fmt.Errorf("superjob.max_pages must be at least 1, got %d", c.SuperJob.MaxPages)
		}
	}

	return nil
}
