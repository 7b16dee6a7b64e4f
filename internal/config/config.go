package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/vietanh2810/stockboard-api/internal/domain"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
	Auth     *AuthConfig     `mapstructure:"auth"`
}

type APIConfig struct {
	Environment              string   `mapstructure:"environment"`
	Port                     string   `mapstructure:"port"`
	BaseURL                  string   `mapstructure:"base_url"`
	AllowedCORSDomains       []string `mapstructure:"allowed_cors_domains"`
	JWTSigningKey            string   `mapstructure:"jwt_signing_key"`
	AccessTokenExpireMinutes int      `mapstructure:"access_token_expire_minutes"`
}

// AccessTokenTTL is the lifetime of tokens issued by the login endpoint.
func (c *APIConfig) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenExpireMinutes) * time.Minute
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DB              string        `mapstructure:"db"`
	SSLMode         string        `mapstructure:"ssl_mode"`
	TimeZone        string        `mapstructure:"time_zone"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	LogLevel        string        `mapstructure:"log_level"`
}

func (c *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		c.Host, c.Port, c.User, c.Password, c.DB, c.SSLMode, c.TimeZone,
	)
}

type AuthConfig struct {
	Users []CredentialConfig `mapstructure:"users"`
}

type CredentialConfig struct {
	Username       string `mapstructure:"username"`
	FullName       string `mapstructure:"full_name"`
	Email          string `mapstructure:"email"`
	HashedPassword string `mapstructure:"hashed_password"`
	Disabled       bool   `mapstructure:"disabled"`
}

func (c *AuthConfig) DomainUsers() []domain.User {
	users := make([]domain.User, 0, len(c.Users))
	for _, u := range c.Users {
		users = append(users, domain.User{
			Username:       u.Username,
			FullName:       u.FullName,
			Email:          u.Email,
			HashedPassword: u.HashedPassword,
			Disabled:       u.Disabled,
		})
	}

	return users
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.environment", "development")
	v.SetDefault("api.port", "8000")
	v.SetDefault("api.base_url", "localhost:8000")
	v.SetDefault("api.allowed_cors_domains", []string{"http://localhost:3000"})
	v.SetDefault("api.jwt_signing_key", "")
	v.SetDefault("api.access_token_expire_minutes", 30)

	v.SetDefault("gin.mode", "debug")

	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", "5432")
	v.SetDefault("postgres.user", "postgres")
	v.SetDefault("postgres.password", "postgres")
	v.SetDefault("postgres.db", "stockboard")
	v.SetDefault("postgres.ssl_mode", "disable")
	v.SetDefault("postgres.time_zone", "UTC")
	v.SetDefault("postgres.max_idle_conns", 5)
	v.SetDefault("postgres.max_open_conns", 25)
	v.SetDefault("postgres.conn_max_lifetime", 5*time.Minute)
	v.SetDefault("postgres.log_level", "warn")
}

// Load reads the YAML file at path. Every key can be overridden by an environment variable
// named after it, e.g. API_JWT_SIGNING_KEY. A missing file falls back to defaults.
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	fileLoaded := true
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
		}
		fileLoaded = false
	}

	conf := &AppConfig{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("conf.Validate -> %w", err)
	}

	if fileLoaded {
		v.OnConfigChange(func(e fsnotify.Event) {
			zap.L().Warn("config file changed, restart to apply", zap.String("file", e.Name), zap.String("op", e.Op.String()))
		})
		v.WatchConfig()
	}

	return conf, nil
}

func (c *AppConfig) Validate() error {
	if c.API == nil || c.Gin == nil || c.Postgres == nil {
		return errors.New("api, gin and postgres sections are required")
	}
	if c.Auth == nil {
		c.Auth = &AuthConfig{}
	}

	err := validation.ValidateStruct(
		c.API,
		validation.Field(&c.API.Port, validation.Required),
		validation.Field(&c.API.JWTSigningKey, validation.Required, validation.Length(16, 0)),
		validation.Field(&c.API.AccessTokenExpireMinutes, validation.Required, validation.Min(1)),
	)
	if err != nil {
		return fmt.Errorf("api -> %w", err)
	}

	err = validation.ValidateStruct(
		c.Gin,
		validation.Field(&c.Gin.Mode, validation.In("debug", "release", "test")),
	)
	if err != nil {
		return fmt.Errorf("gin -> %w", err)
	}

	for i := range c.Auth.Users {
		u := &c.Auth.Users[i]
		err = validation.ValidateStruct(
			u,
			validation.Field(&u.Username, validation.Required),
			validation.Field(&u.HashedPassword, validation.Required),
		)
		if err != nil {
			return fmt.Errorf("auth.users[%d] -> %w", i, err)
		}
	}

	return nil
}
