package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

const (
	StoreMemory = "memory"
	StoreMongo  = "mongo"
	StoreSQLite = "sqlite"
)

type Config struct {
	Server  ServerConfig
	Store   StoreConfig
	Auth    AuthConfig
	Logging LoggingConfig
	Env     string
}

type ServerConfig struct {
	Port         string
	CORSOrigin   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type StoreConfig struct {
	Driver           string
	MongoURI         string
	MongoDatabase    string
	MongoCollection  string
	MongoMaxPoolSize uint64
	SQLitePath       string
	MaxOpenConns     int
}

type AuthConfig struct {
	Required      bool
	JWTSecret     string
	TokenTTL      time.Duration
	AdminUsername string
	// Exactly one of these is needed. The hash wins when both are set.
	AdminPasswordHash string
	AdminPassword     string
	LoginRate         string
}

type LoggingConfig struct {
	File   string
	Level  string
	Stdout bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "5001")
	v.SetDefault("CORS_ORIGIN", "http://localhost:3000")
	v.SetDefault("READ_TIMEOUT", "10s")
	v.SetDefault("WRITE_TIMEOUT", "10s")

	v.SetDefault("STORE_DRIVER", StoreMemory)
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DB_NAME", "viukon")
	v.SetDefault("MONGO_COLLECTION", "sitedata")
	v.SetDefault("MONGO_MAX_POOL_SIZE", 10)
	v.SetDefault("SQLITE_PATH", "sitedata.db")
	v.SetDefault("DB_MAX_OPEN_CONNS", 1)

	v.SetDefault("AUTH_REQUIRED", true)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_TTL", "2h")
	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("ADMIN_PASSWORD_HASH", "")
	v.SetDefault("ADMIN_PASSWORD", "")
	v.SetDefault("LOGIN_RATE", "10-M")

	v.SetDefault("LOG_FILE", "logs/sitedata.log")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_STDOUT", false)

	v.SetDefault("APP_ENV", "production")
}

// Load reads .env when present and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetString("SERVER_PORT"),
			CORSOrigin:   v.GetString("CORS_ORIGIN"),
			ReadTimeout:  v.GetDuration("READ_TIMEOUT"),
			WriteTimeout: v.GetDuration("WRITE_TIMEOUT"),
		},
		Store: StoreConfig{
			Driver:           v.GetString("STORE_DRIVER"),
			MongoURI:         v.GetString("MONGO_URI"),
			MongoDatabase:    v.GetString("MONGO_DB_NAME"),
			MongoCollection:  v.GetString("MONGO_COLLECTION"),
			MongoMaxPoolSize: v.GetUint64("MONGO_MAX_POOL_SIZE"),
			SQLitePath:       v.GetString("SQLITE_PATH"),
			MaxOpenConns:     v.GetInt("DB_MAX_OPEN_CONNS"),
		},
		Auth: AuthConfig{
			Required:          v.GetBool("AUTH_REQUIRED"),
			JWTSecret:         v.GetString("JWT_SECRET"),
			TokenTTL:          v.GetDuration("JWT_TTL"),
			AdminUsername:     v.GetString("ADMIN_USERNAME"),
			AdminPasswordHash: v.GetString("ADMIN_PASSWORD_HASH"),
			AdminPassword:     v.GetString("ADMIN_PASSWORD"),
			LoginRate:         v.GetString("LOGIN_RATE"),
		},
		Logging: LoggingConfig{
			File:   v.GetString("LOG_FILE"),
			Level:  v.GetString("LOG_LEVEL"),
			Stdout: v.GetBool("LOG_STDOUT"),
		},
		Env: v.GetString("APP_ENV"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreMemory, StoreMongo, StoreSQLite:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}
	if c.Store.Driver == StoreMongo && c.Store.MongoURI == "" {
		return fmt.Errorf("MONGO_URI is required for the mongo store")
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("READ_TIMEOUT and WRITE_TIMEOUT must be positive")
	}

	if !c.Auth.Required {
		return nil
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required when AUTH_REQUIRED is set")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive")
	}
	if c.Auth.AdminUsername == "" {
		return fmt.Errorf("ADMIN_USERNAME is required when AUTH_REQUIRED is set")
	}
	if c.Auth.AdminPasswordHash == "" && c.Auth.AdminPassword == "" {
		return fmt.Errorf("ADMIN_PASSWORD_HASH or ADMIN_PASSWORD is required when AUTH_REQUIRED is set")
	}
	return nil
}

// AdminPasswordHash returns the configured bcrypt hash, hashing the plain
// password when no hash was given.
func (c *Config) AdminPasswordHash() ([]byte, error) {
	if c.Auth.AdminPasswordHash != "" {
		if _, err := bcrypt.Cost([]byte(c.Auth.AdminPasswordHash)); err != nil {
			return nil, fmt.Errorf("ADMIN_PASSWORD_HASH is not a bcrypt hash: %w", err)
		}
		return []byte(c.Auth.AdminPasswordHash), nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(c.Auth.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	return hash, nil
}
