package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Xtract    XtractConfig    `yaml:"xtract" mapstructure:"xtract"`
	Documents DocumentsConfig `yaml:"documents" mapstructure:"documents"`
	Mappings  MappingsConfig  `yaml:"mappings" mapstructure:"mappings"`
	Processor ProcessorConfig `yaml:"processor" mapstructure:"processor"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// XtractConfig holds extraction service credentials and limits.
type XtractConfig struct {
	Key                 string  `yaml:"key" mapstructure:"key"`
	BaseURL             string  `yaml:"base_url" mapstructure:"base_url"`
	ProcessTimeoutSecs  int     `yaml:"process_timeout_secs" mapstructure:"process_timeout_secs"`
	RegisterTimeoutSecs int     `yaml:"register_timeout_secs" mapstructure:"register_timeout_secs"`
	RateLimitRPS        float64 `yaml:"rate_limit_rps" mapstructure:"rate_limit_rps"`
}

// DocumentsConfig locates the package document files.
type DocumentsConfig struct {
	Root string `yaml:"root" mapstructure:"root"`
}

// MappingsConfig optionally overrides the built-in field-mapping table.
type MappingsConfig struct {
	File string `yaml:"file" mapstructure:"file"`
}

// ProcessorConfig configures package processing.
type ProcessorConfig struct {
	Concurrency int `yaml:"concurrency" mapstructure:"concurrency"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Port           int      `yaml:"port" mapstructure:"port"`
	AllowedOrigins []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("LOANPACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("xtract.base_url", "https://api.xtractflow.com")
	v.SetDefault("xtract.process_timeout_secs", 60)
	v.SetDefault("xtract.register_timeout_secs", 30)
	v.SetDefault("xtract.rate_limit_rps", 0)
	v.SetDefault("documents.root", "documents")
	v.SetDefault("processor.concurrency", 5)
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the configuration for a given run mode ("serve",
// "process", "fill" or "templates"). Every mode that talks to the extraction
// service needs credentials; serve additionally needs a listen port.
func (c *Config) Validate(mode string) error {
	var problems []string

	needsKey := false
	switch mode {
	case "serve":
		if c.Server.Port <= 0 {
			problems = append(problems, "server.port must be > 0")
		}
		needsKey = true
	case "process", "templates":
		needsKey = true
	case "fill":
		// Fill works from a saved package result; no remote calls.
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	if needsKey && c.Xtract.Key == "" {
		problems = append(problems, "xtract.key is required")
	}
	if c.Xtract.ProcessTimeoutSecs <= 0 {
		problems = append(problems, "xtract.process_timeout_secs must be > 0")
	}
	if c.Xtract.RegisterTimeoutSecs <= 0 {
		problems = append(problems, "xtract.register_timeout_secs must be > 0")
	}
	if c.Processor.Concurrency < 1 || c.Processor.Concurrency > 50 {
		problems = append(problems, "processor.concurrency must be between 1 and 50")
	}

	if len(problems) > 0 {
		return eris.New("config: " + strings.Join(problems, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
