package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		Driver string `yaml:"driver"` // memory, postgres, mysql
		DSN    string `yaml:"url"`
		Seed   bool   `yaml:"seed"`
	} `yaml:"database"`

	Auth struct {
		TokenFormat  string `yaml:"token_format"` // jwt, plain
		JWTSecret    string `yaml:"jwt_secret"`
		JWTTTL       int    `yaml:"jwt_ttl"` // в минутах
		DemoPassword string `yaml:"demo_password"`
		BcryptCost   int    `yaml:"bcrypt_cost"`
	} `yaml:"auth"`

	// Искусственные задержки mock-сервисов, в миллисекундах
	Latency struct {
		AuthMS  int `yaml:"auth_ms"`
		UsersMS int `yaml:"users_ms"`
		JobsMS  int `yaml:"jobs_ms"`
	} `yaml:"latency"`

	Email struct {
		Provider     string `yaml:"provider"` // log, smtp
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
		TemplatesDir string `yaml:"templates_dir"`
	} `yaml:"email"`

	RateLimit struct {
		AuthPerMinute int `yaml:"auth_per_minute"`
		Burst         int `yaml:"burst"`
	} `yaml:"rate_limit"`

	Client struct {
		ServerURL   string `yaml:"server_url"`
		SessionPath string `yaml:"session_path"`
		TimeoutSec  int    `yaml:"timeout_sec"`
	} `yaml:"client"`
}

var AppConfig *Config

// Default возвращает конфиг, с которым сервер поднимается без config.yaml
func Default() *Config {
	var cfg Config

	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 4000
	cfg.Server.Env = "development"

	cfg.Database.Driver = "memory"
	cfg.Database.Seed = true

	cfg.Auth.TokenFormat = "jwt"
	cfg.Auth.JWTSecret = "tekfix-dev-secret"
	cfg.Auth.JWTTTL = 60 * 24
	cfg.Auth.DemoPassword = "password"
	cfg.Auth.BcryptCost = 10

	cfg.Latency.AuthMS = 500
	cfg.Latency.UsersMS = 300
	cfg.Latency.JobsMS = 300

	cfg.Email.Provider = "log"
	cfg.Email.SMTPPort = 587
	cfg.Email.FromEmail = "no-reply@tekfix.com"
	cfg.Email.FromName = "TekFix Jobs"

	cfg.RateLimit.AuthPerMinute = 30
	cfg.RateLimit.Burst = 5

	cfg.Client.ServerURL = "http://localhost:4000"
	cfg.Client.SessionPath = defaultSessionPath()
	cfg.Client.TimeoutSec = 15

	return &cfg
}

// LoadConfig читает .env (если есть), затем config.yaml, затем переменные окружения
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	if err := loadFile(cfg, configPath); err != nil {
		return nil, err
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	AppConfig = cfg
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to open config file at %s: %w", path, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("failed to parse config file at %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SERVER_ENV"); v != "" {
		cfg.Server.Env = v
	}
	if v, err := strconv.Atoi(os.Getenv("SERVER_PORT")); err == nil && v > 0 {
		cfg.Server.Port = v
	}
	if v := os.Getenv("DATABASE_DRIVER"); v != "" {
		cfg.Database.Driver = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
	if v := os.Getenv("TOKEN_FORMAT"); v != "" {
		cfg.Auth.TokenFormat = v
	}
	if v := os.Getenv("JOBBOARD_SERVER"); v != "" {
		cfg.Client.ServerURL = v
	}
	if v := os.Getenv("JOBBOARD_SESSION"); v != "" {
		cfg.Client.SessionPath = v
	}
}

// Validate проверяет значения, без которых приложение не стартует
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "memory":
	case "postgres", "mysql":
		if c.Database.DSN == "" {
			return fmt.Errorf("database.url is required for driver %q", c.Database.Driver)
		}
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}

	switch c.Auth.TokenFormat {
	case "plain":
	case "jwt":
		if c.Auth.JWTSecret == "" {
			return errors.New("auth.jwt_secret is required for jwt tokens")
		}
	default:
		return fmt.Errorf("unsupported token format: %s", c.Auth.TokenFormat)
	}

	if c.Auth.DemoPassword == "" {
		return errors.New("auth.demo_password must not be empty")
	}
	return nil
}

func (c *Config) AuthLatency() time.Duration {
	return time.Duration(c.Latency.AuthMS) * time.Millisecond
}

func (c *Config) UsersLatency() time.Duration {
	return time.Duration(c.Latency.UsersMS) * time.Millisecond
}

func (c *Config) JobsLatency() time.Duration {
	return time.Duration(c.Latency.JobsMS) * time.Millisecond
}

func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.Auth.JWTTTL) * time.Minute
}

func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".jobboard-session.db"
	}
	return home + "/.jobboard/session.db"
}
