// Package config provides configuration management for Savr. Configuration is
// loaded from a TOML file, with SAVR_* environment variables taking precedence
// over file values.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logging  LoggingConfig  `toml:"logging"`
	Push     PushConfig     `toml:"push"`
	Backup   BackupConfig   `toml:"backup"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Port string `toml:"port"`
}

// DatabaseConfig controls the SQLite database.
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// LoggingConfig controls application logging.
type LoggingConfig struct {
	Level string `toml:"level"`
}

// PushConfig holds VAPID keys for web push notifications. Push is disabled
// when either key is empty.
type PushConfig struct {
	VAPIDPublicKey  string `toml:"vapid_public_key"`
	VAPIDPrivateKey string `toml:"vapid_private_key"`
}

// BackupConfig controls encrypted database backups to S3-compatible storage.
// Backups are disabled when the bucket or credentials are empty.
type BackupConfig struct {
	S3Endpoint    string `toml:"s3_endpoint"`
	S3Bucket      string `toml:"s3_bucket"`
	S3Region      string `toml:"s3_region"`
	S3AccessKey   string `toml:"s3_access_key"`
	S3SecretKey   string `toml:"s3_secret_key"`
	Passphrase    string `toml:"passphrase"`
	IntervalHours int    `toml:"interval_hours"`
	RetentionDays int    `toml:"retention_days"`
}

// Default returns a configuration with sensible default values.
func Default() *Config {
	return &Config{
		Server:   ServerConfig{Port: "8080"},
		Database: DatabaseConfig{Path: "savr.db"},
		Logging:  LoggingConfig{Level: "info"},
		Backup: BackupConfig{
			IntervalHours: 24,
			RetentionDays: 30,
		},
	}
}

// Load reads configuration from the given TOML file (if path is non-empty and
// the file exists), applies SAVR_* environment overrides, and validates the
// result. A missing explicit path is an error; a missing default path is not.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	setString := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	setString("SAVR_PORT", &cfg.Server.Port)
	setString("SAVR_DB_PATH", &cfg.Database.Path)
	setString("SAVR_LOG_LEVEL", &cfg.Logging.Level)
	setString("SAVR_VAPID_PUBLIC_KEY", &cfg.Push.VAPIDPublicKey)
	setString("SAVR_VAPID_PRIVATE_KEY", &cfg.Push.VAPIDPrivateKey)
	setString("SAVR_S3_ENDPOINT", &cfg.Backup.S3Endpoint)
	setString("SAVR_S3_BUCKET", &cfg.Backup.S3Bucket)
	setString("SAVR_S3_REGION", &cfg.Backup.S3Region)
	setString("SAVR_S3_ACCESS_KEY", &cfg.Backup.S3AccessKey)
	setString("SAVR_S3_SECRET_KEY", &cfg.Backup.S3SecretKey)
	setString("SAVR_BACKUP_PASSPHRASE", &cfg.Backup.Passphrase)

	if v := os.Getenv("SAVR_BACKUP_INTERVAL_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Backup.IntervalHours = n
		}
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port == "" {
		errs = append(errs, errors.New("server port is required"))
	} else if _, err := strconv.Atoi(c.Server.Port); err != nil {
		errs = append(errs, fmt.Errorf("invalid server port %q", c.Server.Port))
	}

	if c.Database.Path == "" {
		errs = append(errs, errors.New("database path is required"))
	}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("invalid log level %q", c.Logging.Level))
	}

	if (c.Push.VAPIDPublicKey == "") != (c.Push.VAPIDPrivateKey == "") {
		errs = append(errs, errors.New("push requires both VAPID keys or neither"))
	}

	if c.Backup.S3Bucket != "" && c.Backup.Passphrase == "" {
		errs = append(errs, errors.New("backup passphrase is required when S3 bucket is set"))
	}
	if c.Backup.IntervalHours < 0 {
		errs = append(errs, errors.New("backup interval_hours must be non-negative"))
	}
	if c.Backup.RetentionDays < 0 {
		errs = append(errs, errors.New("backup retention_days must be non-negative"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// BackupEnabled reports whether backup configuration is complete enough to
// run backups.
func (c *Config) BackupEnabled() bool {
	b := c.Backup
	return b.S3Bucket != "" && b.S3AccessKey != "" && b.S3SecretKey != "" && b.Passphrase != ""
}

// PushEnabled reports whether VAPID keys are configured.
func (c *Config) PushEnabled() bool {
	return c.Push.VAPIDPublicKey != "" && c.Push.VAPIDPrivateKey != ""
}
