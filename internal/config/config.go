package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	JWT      JWTConfig      `yaml:"jwt"`
	Admin    AdminConfig    `yaml:"admin"`
	Email    EmailConfig    `yaml:"email"`
	Log      LogConfig      `yaml:"log"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
	Mode string `yaml:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Driver string `yaml:"driver"` // sqlite, mysql, postgres
	DSN    string `yaml:"dsn"`
}

type JWTConfig struct {
	Secret     string `yaml:"secret"`
	ExpireHour int    `yaml:"expire_hour"`
}

// AdminConfig holds the static API key that guards management routes.
type AdminConfig struct {
	APIKey string `yaml:"api_key"`
}

type EmailConfig struct {
	Enabled       bool   `yaml:"enabled"`
	Host          string `yaml:"host"`
	Port          int    `yaml:"port"`
	Username      string `yaml:"username"`
	Password      string `yaml:"password"`
	From          string `yaml:"from"`
	UseTLS        bool   `yaml:"use_tls"`
	ActivationURL string `yaml:"activation_url"` // frontend page that consumes the token
}

type LogConfig struct {
	Level         string `yaml:"level"`
	RetentionDays int    `yaml:"retention_days"` // operation log retention
}

var GlobalConfig *Config

func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = "config.yaml"
	}

	var cfg *Config

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, err
		}

		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, err
		}
		cfg = &fileCfg
	}

	cfg.overrideFromEnv()
	GlobalConfig = cfg
	return cfg, nil
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: "8080",
			Mode: "debug",
		},
		Database: DatabaseConfig{
			Driver: "sqlite",
			DSN:    "worklens.db",
		},
		JWT: JWTConfig{
			Secret:     "worklens-secret-key-change-in-production",
			ExpireHour: 24,
		},
		Admin: AdminConfig{
			APIKey: "worklens-admin-key-change-in-production",
		},
		Email: EmailConfig{
			Enabled:       false,
			Port:          587,
			UseTLS:        true,
			ActivationURL: "http://localhost:3000/activate-account",
		},
		Log: LogConfig{
			Level:         "info",
			RetentionDays: 30,
		},
	}
}

func (c *Config) overrideFromEnv() {
	if host := os.Getenv("SERVER_HOST"); host != "" {
		c.Server.Host = host
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		c.Server.Port = port
	}
	if mode := os.Getenv("SERVER_MODE"); mode != "" {
		c.Server.Mode = mode
	}
	if driver := os.Getenv("DB_DRIVER"); driver != "" {
		c.Database.Driver = driver
	}
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		c.Database.DSN = dsn
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		c.JWT.Secret = secret
	}
	if key := os.Getenv("ADMIN_API_KEY"); key != "" {
		c.Admin.APIKey = key
	}
	if host := os.Getenv("EMAIL_HOST"); host != "" {
		c.Email.Enabled = true
		c.Email.Host = host
	}
	if port := os.Getenv("EMAIL_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Email.Port = p
		}
	}
	if user := os.Getenv("EMAIL_USERNAME"); user != "" {
		c.Email.Username = user
	}
	if pass := os.Getenv("EMAIL_PASSWORD"); pass != "" {
		c.Email.Password = pass
	}
	if from := os.Getenv("EMAIL_FROM"); from != "" {
		c.Email.From = from
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
}
