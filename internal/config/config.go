// Package config loads skilleval configuration from an optional YAML file,
// SKILLEVAL_* environment variables and built-in defaults, in that order of
// increasing precedence for the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/abhisek/skilleval/internal/llm"
	"github.com/abhisek/skilleval/internal/store"
)

// EnvPrefix is prepended to every environment override, e.g.
// SKILLEVAL_DATABASE_DSN for database.dsn.
const EnvPrefix = "SKILLEVAL"

// Config is the full application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Log        LogConfig        `mapstructure:"log"`
	Auth       AuthConfig       `mapstructure:"auth"`
	LLM        llm.Config       `mapstructure:"llm"`
	Assessment AssessmentConfig `mapstructure:"assessment"`
	Catalog    CatalogConfig    `mapstructure:"catalog"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Tracing    TracingConfig    `mapstructure:"tracing"`
}

type ServerConfig struct {
	Addr        string   `mapstructure:"addr"`
	Mode        string   `mapstructure:"mode"` // gin mode: debug, release, test
	CORSOrigins []string `mapstructure:"cors_origins"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // sqlite or postgres
	DSN    string `mapstructure:"dsn"`
}

type LogConfig struct {
	Mode string `mapstructure:"mode"` // dev or prod
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
	Issuer    string `mapstructure:"issuer"`
	AdminRole string `mapstructure:"admin_role"`
}

type AssessmentConfig struct {
	// TimeLimit is the suggested time budget in minutes.
	TimeLimit int `mapstructure:"time_limit"`
	// StartLockTTL bounds how long one start may hold the per-pair guard.
	StartLockTTL time.Duration `mapstructure:"start_lock_ttl"`
}

type CatalogConfig struct {
	SeedFile string `mapstructure:"seed_file"`
}

// RedisConfig enables the distributed start guard when Addr is set.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type TracingConfig struct {
	Exporter    string  `mapstructure:"exporter"` // none, stdout or otlp
	Endpoint    string  `mapstructure:"endpoint"`
	SampleRatio float64 `mapstructure:"sample_ratio"`
}

// Options override file discovery and selected keys, usually from flags.
type Options struct {
	File string
	DSN  string
}

// Load reads configuration. A missing config file is not an error unless
// one was named explicitly.
func Load(opts Options) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.File != "" {
		v.SetConfigFile(opts.File)
	} else {
		v.SetConfigName("skilleval")
		v.SetConfigType("yaml")
		for _, dir := range searchPaths() {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.File != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if opts.DSN != "" {
		cfg.Database.DSN = opts.DSN
	}
	if err := cfg.resolve(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// resolve fills derived values and validates the result.
func (c *Config) resolve() error {
	c.LLM.DiscoverKeys()

	if c.Database.Driver == store.DriverSQLite && c.Database.DSN == "" {
		path, err := store.DefaultDBPath()
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		c.Database.DSN = path
	}

	switch c.Database.Driver {
	case store.DriverSQLite:
	case store.DriverPostgres:
		if c.Database.DSN == "" {
			return errors.New("database.dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown database driver: %q", c.Database.Driver)
	}

	switch c.Tracing.Exporter {
	case "none", "stdout", "otlp":
	default:
		return fmt.Errorf("unknown tracing exporter: %q", c.Tracing.Exporter)
	}
	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		return errors.New("tracing.sample_ratio must be between 0 and 1")
	}
	if c.Assessment.TimeLimit <= 0 {
		return errors.New("assessment.time_limit must be positive")
	}
	return nil
}

// ValidateServe checks the settings only the HTTP server needs.
func (c *Config) ValidateServe() error {
	if c.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret (or SKILLEVAL_AUTH_JWT_SECRET) is required to serve")
	}
	return c.LLM.Validate()
}

func setDefaults(v *viper.Viper) {
	llmDefaults := llm.DefaultConfig()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.cors_origins", []string{})

	v.SetDefault("database.driver", store.DriverSQLite)
	v.SetDefault("database.dsn", "")

	v.SetDefault("log.mode", "prod")

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.issuer", "")
	v.SetDefault("auth.admin_role", "admin")

	v.SetDefault("llm.provider", llmDefaults.Provider)
	v.SetDefault("llm.timeout", llmDefaults.Timeout)
	v.SetDefault("llm.anthropic.api_key", "")
	v.SetDefault("llm.anthropic.model", llmDefaults.Anthropic.Model)
	v.SetDefault("llm.openai.api_key", "")
	v.SetDefault("llm.openai.model", llmDefaults.OpenAI.Model)
	v.SetDefault("llm.openai.base_url", "")
	v.SetDefault("llm.gemini.api_key", "")
	v.SetDefault("llm.gemini.model", llmDefaults.Gemini.Model)
	v.SetDefault("llm.openrouter.api_key", "")
	v.SetDefault("llm.openrouter.model", llmDefaults.OpenRouter.Model)
	v.SetDefault("llm.openrouter.base_url", "")
	v.SetDefault("llm.retry.max_attempts", llmDefaults.Retry.MaxAttempts)
	v.SetDefault("llm.retry.initial_wait", llmDefaults.Retry.InitialWait)
	v.SetDefault("llm.retry.max_wait", llmDefaults.Retry.MaxWait)
	v.SetDefault("llm.retry.multiplier", llmDefaults.Retry.Multiplier)

	v.SetDefault("assessment.time_limit", 45)
	v.SetDefault("assessment.start_lock_ttl", 3*time.Minute)

	v.SetDefault("catalog.seed_file", "")

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("tracing.exporter", "none")
	v.SetDefault("tracing.endpoint", "")
	v.SetDefault("tracing.sample_ratio", 1.0)
}

func searchPaths() []string {
	paths := []string{"."}
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		if home, err := os.UserHomeDir(); err == nil {
			base = filepath.Join(home, ".config")
		}
	}
	if base != "" {
		paths = append(paths, filepath.Join(base, "skilleval"))
	}
	return append(paths, "/etc/skilleval")
}
