package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Auth     AuthConfig     `toml:"auth"`
	Booking  BookingConfig  `toml:"booking"`
	Notify   NotifyConfig   `toml:"notify"`
}

// ServerConfig настройки HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int      `toml:"http_port"`
	ReadTimeout     int      `toml:"read_timeout"`
	WriteTimeout    int      `toml:"write_timeout"`
	IdleTimeout     int      `toml:"idle_timeout"`
	ShutdownTimeout int      `toml:"shutdown_timeout"`
	AllowedOrigins  []string `toml:"allowed_origins"`
}

// DatabaseConfig настройки PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// RedisConfig настройки Redis для сессий формы и лимитов
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AuthConfig настройки токенов администратора
type AuthConfig struct {
	JWTSecret     string `toml:"jwt_secret"`
	TokenTTLHours int    `toml:"token_ttl_hours"`
}

// TokenTTL время жизни токена
func (c AuthConfig) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLHours) * time.Hour
}

// BookingConfig настройки формы бронирования
type BookingConfig struct {
	RequireAddress    bool   `toml:"require_address"`
	FormTTLMinutes    int    `toml:"form_ttl_minutes"`
	FormLockSeconds   int    `toml:"form_lock_seconds"`
	FormCreateLimit   int    `toml:"form_create_limit"`
	FormCreateWindowS int    `toml:"form_create_window_seconds"`
	Timezone          string `toml:"timezone"`
}

// FormTTL время жизни сессии формы
func (c BookingConfig) FormTTL() time.Duration {
	return time.Duration(c.FormTTLMinutes) * time.Minute
}

// FormLockTTL время жизни блокировки формы
func (c BookingConfig) FormLockTTL() time.Duration {
	return time.Duration(c.FormLockSeconds) * time.Second
}

// FormCreateWindow окно лимита создания форм
func (c BookingConfig) FormCreateWindow() time.Duration {
	return time.Duration(c.FormCreateWindowS) * time.Second
}

// Location часовой пояс для аналитики и выгрузок
func (c BookingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// NotifyConfig номер оператора для ссылки WhatsApp
type NotifyConfig struct {
	WhatsAppNumber string `toml:"whatsapp_number"`
}

// Load читает TOML, подставляет значения по умолчанию и секреты из окружения.
// Файл .env рядом с конфигом необязателен
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default значения по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
			AllowedOrigins:  []string{"*"},
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{Addr: "localhost:6379"},
		Logs:  LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "theatre-booking",
		},
		Auth: AuthConfig{TokenTTLHours: 12},
		Booking: BookingConfig{
			FormTTLMinutes:    60,
			FormLockSeconds:   30,
			FormCreateLimit:   10,
			FormCreateWindowS: 60,
			Timezone:          "Asia/Kolkata",
		},
	}
}

// applyEnv переопределяет секреты переменными окружения
func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv("DB_PASSWORD"); ok {
		c.Database.Password = v
	}
	if v, ok := os.LookupEnv("REDIS_PASSWORD"); ok {
		c.Redis.Password = v
	}
	if v, ok := os.LookupEnv("JWT_SECRET"); ok {
		c.Auth.JWTSecret = v
	}
}

// Validate проверяет обязательные значения
func (c *Config) Validate() error {
	var errs []error

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		errs = append(errs, fmt.Errorf("server.http_port out of range: %d", c.Server.HTTPPort))
	}
	if c.Database.Host == "" || c.Database.DBName == "" || c.Database.User == "" {
		errs = append(errs, errors.New("database.host, database.dbname and database.user are required"))
	}
	if c.Redis.Addr == "" {
		errs = append(errs, errors.New("redis.addr is required"))
	}
	if len(c.Auth.JWTSecret) < 16 {
		errs = append(errs, errors.New("auth.jwt_secret must be at least 16 characters"))
	}
	if c.Auth.TokenTTLHours <= 0 {
		errs = append(errs, errors.New("auth.token_ttl_hours must be positive"))
	}
	if c.Booking.FormTTLMinutes <= 0 || c.Booking.FormLockSeconds <= 0 {
		errs = append(errs, errors.New("booking.form_ttl_minutes and booking.form_lock_seconds must be positive"))
	}
	if c.Booking.FormCreateLimit <= 0 || c.Booking.FormCreateWindowS <= 0 {
		errs = append(errs, errors.New("booking form create limit and window must be positive"))
	}
	if _, err := c.Booking.Location(); err != nil {
		errs = append(errs, fmt.Errorf("booking.timezone: %w", err))
	}
	if c.Notify.WhatsAppNumber == "" {
		errs = append(errs, errors.New("notify.whatsapp_number is required"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
