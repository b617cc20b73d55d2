package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// EnvConfigPath переменная окружения с путем к конфигу
const EnvConfigPath = "SMC_CONFIG"

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Database DatabaseConfig `toml:"database"`
	Backend  BackendConfig  `toml:"backend"`
	Push     PushConfig     `toml:"push"`
	Payments PaymentsConfig `toml:"payments"`
	Commands CommandsConfig `toml:"commands"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
	// Маршруты логина, на которые отправляет Session Gate
	AdminLoginPath string `toml:"admin_login_path"`
	UserLoginPath  string `toml:"user_login_path"`
	// Разрешенные Origin для live WebSocket (пусто - только тот же хост)
	AllowedOrigins []string `toml:"allowed_origins"`
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// DatabaseConfig postgres для журнала команд смены статуса
type DatabaseConfig struct {
	Enabled         bool   `toml:"enabled"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// BackendConfig внешний бэкенд гаража
type BackendConfig struct {
	AdminURL string `toml:"admin_url"`
	UserURL  string `toml:"user_url"`
	Timeout  int    `toml:"timeout"` // секунды
}

// PushConfig push-канал статусов (STOMP поверх WebSocket)
type PushConfig struct {
	URL            string `toml:"url"`
	Topic          string `toml:"topic"`
	ReconnectDelay int    `toml:"reconnect_delay"` // миллисекунды
	HeartbeatMs    int    `toml:"heartbeat_ms"`
}

type PaymentsConfig struct {
	Enabled         bool   `toml:"enabled"`
	StripeSecretKey string `toml:"stripe_secret_key"`
	Currency        string `toml:"currency"`
	SuccessURL      string `toml:"success_url"`
	CancelURL       string `toml:"cancel_url"`
}

// CommandsConfig настройки команд смены статуса
type CommandsConfig struct {
	// Откатывать успешные запросы группы при частичной ошибке
	Compensate  bool `toml:"compensate"`
	MaxParallel int  `toml:"max_parallel"`
}

func (c *Config) BackendTimeout() time.Duration {
	return time.Duration(c.Backend.Timeout) * time.Second
}

func (c *Config) ReconnectDelay() time.Duration {
	return time.Duration(c.Push.ReconnectDelay) * time.Millisecond
}

func (c *Config) Heartbeat() time.Duration {
	return time.Duration(c.Push.HeartbeatMs) * time.Millisecond
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8090,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
			AdminLoginPath:  "/admin/login",
			UserLoginPath:   "/user/login",
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "smc-garage-desk",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Backend: BackendConfig{
			AdminURL: "http://localhost:8080/api/admin",
			UserURL:  "http://localhost:8080/api/users",
			Timeout:  10,
		},
		Push: PushConfig{
			URL:            "ws://localhost:8080/ws-status/websocket",
			Topic:          "/booking-status/update",
			ReconnectDelay: 5000,
			HeartbeatMs:    10000,
		},
		Payments: PaymentsConfig{Currency: "inr"},
		Commands: CommandsConfig{
			Compensate:  false,
			MaxParallel: 8,
		},
	}
}

// Load загружает конфигурацию из toml-файла поверх значений по умолчанию
// Путь можно переопределить переменной окружения SMC_CONFIG
func Load(path string) (*Config, error) {
	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		path = envPath
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be a valid TCP port (got %d)", ErrInvalidConfig, c.Server.HTTPPort)
	}
	for name, raw := range map[string]string{
		"backend.admin_url": c.Backend.AdminURL,
		"backend.user_url":  c.Backend.UserURL,
		"push.url":          c.Push.URL,
	} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: %s must be an absolute URL (got %q)", ErrInvalidConfig, name, raw)
		}
	}
	if c.Push.Topic == "" {
		return fmt.Errorf("%w: push.topic is required", ErrInvalidConfig)
	}
	if c.Push.ReconnectDelay <= 0 {
		return fmt.Errorf("%w: push.reconnect_delay must be positive", ErrInvalidConfig)
	}
	if c.Commands.MaxParallel <= 0 {
		return fmt.Errorf("%w: commands.max_parallel must be positive", ErrInvalidConfig)
	}
	if c.Payments.Enabled && c.Payments.StripeSecretKey == "" {
		return fmt.Errorf("%w: payments.stripe_secret_key is required when payments are enabled", ErrInvalidConfig)
	}
	if c.Database.Enabled && c.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required when the journal is enabled", ErrInvalidConfig)
	}
	return nil
}
