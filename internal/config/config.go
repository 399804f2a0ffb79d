package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/esprit/eventsproject/internal/domain"
)

const envPrefix = "EVENTS"

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
	Costing  *CostingConfig  `mapstructure:"costing"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	Port               string   `mapstructure:"port"`
	BaseURL            string   `mapstructure:"base_url"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
	// JWTSigningKey guards the write endpoints. Empty disables the check.
	JWTSigningKey string `mapstructure:"jwt_signing_key"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

func (c *PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DB, c.SSLMode)
}

type CostingConfig struct {
	Enabled            bool          `mapstructure:"enabled"`
	Interval           time.Duration `mapstructure:"interval"`
	OrganizerLastName  string        `mapstructure:"organizer_last_name"`
	OrganizerFirstName string        `mapstructure:"organizer_first_name"`
	OrganizerRole      string        `mapstructure:"organizer_role"`
}

func (c *CostingConfig) Organizer() domain.Organizer {
	return domain.Organizer{
		LastName:  c.OrganizerLastName,
		FirstName: c.OrganizerFirstName,
		Role:      domain.Role(c.OrganizerRole),
	}
}

func Load(path string) (*AppConfig, error) {
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	return unmarshal(v)
}

// Watch reloads the config file on every change and hands the new values to
// onChange. Invalid files are logged and ignored.
func Watch(path string, onChange func(conf *AppConfig)) error {
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		conf, err := unmarshal(v)
		if err != nil {
			zap.L().Error("ignoring invalid config change", zap.String("file", e.Name), zap.Error(err))
			return
		}

		zap.L().Info("config reloaded", zap.String("file", e.Name), zap.String("op", e.Op.String()))
		onChange(conf)
	})
	v.WatchConfig()

	return nil
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("api.environment", "development")
	v.SetDefault("api.port", "8080")
	v.SetDefault("api.base_url", "localhost:8080")
	v.SetDefault("api.allowed_cors_domains", []string{"http://localhost:3000"})
	v.SetDefault("api.jwt_signing_key", "")
	v.SetDefault("gin.mode", "debug")
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", "5432")
	v.SetDefault("postgres.user", "postgres")
	v.SetDefault("postgres.password", "")
	v.SetDefault("postgres.db", "events")
	v.SetDefault("postgres.ssl_mode", "disable")
	v.SetDefault("costing.enabled", true)
	v.SetDefault("costing.interval", "60s")
	v.SetDefault("costing.organizer_last_name", domain.DefaultOrganizer.LastName)
	v.SetDefault("costing.organizer_first_name", domain.DefaultOrganizer.FirstName)
	v.SetDefault("costing.organizer_role", string(domain.DefaultOrganizer.Role))

	return v
}

func unmarshal(v *viper.Viper) (*AppConfig, error) {
	var conf AppConfig
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	if err := conf.validate(); err != nil {
		return nil, err
	}

	return &conf, nil
}

func (c *AppConfig) validate() error {
	if c.API == nil || c.Gin == nil || c.Postgres == nil || c.Costing == nil {
		return errors.New("config is missing a section")
	}
	if c.API.Port == "" {
		return errors.New("api.port is required")
	}
	if !domain.Role(c.Costing.OrganizerRole).IsValid() {
		return fmt.Errorf("costing.organizer_role %q is not a valid role", c.Costing.OrganizerRole)
	}
	if c.Costing.Interval <= 0 {
		return fmt.Errorf("costing.interval must be positive, got %v", c.Costing.Interval)
	}

	return nil
}
