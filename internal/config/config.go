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
	Store  StoreConfig  `yaml:"store" mapstructure:"store"`
	Vector VectorConfig `yaml:"vector" mapstructure:"vector"`
	Assess AssessConfig `yaml:"assess" mapstructure:"assess"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the assessment-run database.
type StoreConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// VectorConfig holds defaults for the vector operations.
type VectorConfig struct {
	CRS       string `yaml:"crs" mapstructure:"crs"`
	MarkField string `yaml:"mark_field" mapstructure:"mark_field"`
	MarkValue int    `yaml:"mark_value" mapstructure:"mark_value"`
}

// AssessConfig holds defaults for the indicator postprocessors.
type AssessConfig struct {
	Locale       string  `yaml:"locale" mapstructure:"locale"`
	YouthRatio   float64 `yaml:"youth_ratio" mapstructure:"youth_ratio"`
	AdultRatio   float64 `yaml:"adult_ratio" mapstructure:"adult_ratio"`
	ElderlyRatio float64 `yaml:"elderly_ratio" mapstructure:"elderly_ratio"`
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
	v.SetEnvPrefix("IMPACT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.path", "impact.db")
	v.SetDefault("vector.crs", "EPSG:4326")
	v.SetDefault("vector.mark_field", "affected")
	v.SetDefault("vector.mark_value", 1)
	v.SetDefault("assess.locale", "en")
	v.SetDefault("assess.youth_ratio", 0.263)
	v.SetDefault("assess.adult_ratio", 0.659)
	v.SetDefault("assess.elderly_ratio", 0.078)
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
