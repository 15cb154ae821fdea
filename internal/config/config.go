package config

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/remessas/screening-service/internal/domain"
)

// Config holds all configuration for the screening service
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Screening ScreeningConfig `mapstructure:"screening"`
	Log       LogConfig       `mapstructure:"log"`
	Security  SecurityConfig  `mapstructure:"security"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// ScreeningConfig holds the rule thresholds and reference data loaded at
// startup. Thresholds become the initial RulesConfig; the reference lists
// are read-only for the process lifetime.
type ScreeningConfig struct {
	VelocityThreshold         int     `mapstructure:"velocity_threshold"`
	VelocityWindowMinutes     int     `mapstructure:"velocity_window_minutes"`
	AmountThreshold           float64 `mapstructure:"amount_threshold"`
	StructuringWindowMinutes  int     `mapstructure:"structuring_window_minutes"`
	StructuringMinCount       int     `mapstructure:"structuring_min_count"`
	StructuringAmountVariance float64 `mapstructure:"structuring_amount_variance"`
	FuzzyMatchThreshold       int     `mapstructure:"fuzzy_match_threshold"`

	SanctionsList     []string `mapstructure:"sanctions_list"`
	HighRiskCountries []string `mapstructure:"high_risk_countries"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Environment string `mapstructure:"environment"`
	Debug       bool   `mapstructure:"debug"`
}

// SecurityConfig holds security configuration
type SecurityConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Rules converts the loaded thresholds into the engine's RulesConfig.
func (c ScreeningConfig) Rules() domain.RulesConfig {
	return domain.RulesConfig{
		VelocityThreshold:         c.VelocityThreshold,
		VelocityWindowMinutes:     c.VelocityWindowMinutes,
		AmountThreshold:           decimal.NewFromFloat(c.AmountThreshold),
		StructuringWindowMinutes:  c.StructuringWindowMinutes,
		StructuringMinCount:       c.StructuringMinCount,
		StructuringAmountVariance: decimal.NewFromFloat(c.StructuringAmountVariance),
		FuzzyMatchThreshold:       c.FuzzyMatchThreshold,
	}
}

// Load loads configuration from environment and config files
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("SCREENING_SERVICE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file (optional)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("/etc/screening-service")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// Config file not found, use defaults + env
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("server.shutdown_timeout", "30s")

	// Rule threshold defaults
	v.SetDefault("screening.velocity_threshold", 5)
	v.SetDefault("screening.velocity_window_minutes", 60)
	v.SetDefault("screening.amount_threshold", 2000.0)
	v.SetDefault("screening.structuring_window_minutes", 30)
	v.SetDefault("screening.structuring_min_count", 3)
	v.SetDefault("screening.structuring_amount_variance", 0.20)
	v.SetDefault("screening.fuzzy_match_threshold", 85)

	// Reference data defaults; production deployments override these with
	// the full lists in the config file.
	v.SetDefault("screening.sanctions_list", []string{
		"Mohammad Ahmad",
		"Viktor Petrov",
		"Carlos Mendoza Ruiz",
		"Global Trade Holdings Ltd",
		"Ali Hassan Al-Rashid",
	})
	v.SetDefault("screening.high_risk_countries", []string{
		"IR", "KP", "SY", "CU", "VE", "MM", "BY", "RU",
	})

	// Log defaults
	v.SetDefault("log.environment", "development")
	v.SetDefault("log.debug", false)

	// Security defaults
	v.SetDefault("security.allowed_origins", []string{"*"})
}
