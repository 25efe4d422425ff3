package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/m04kA/SMC-VoiceBooking/internal/domain"
)

// Провайдеры хранилища календаря
const (
	ProviderNone     = ""
	ProviderGoogle   = "google"
	ProviderPostgres = "postgres"
	ProviderMemory   = "memory"
)

var (
	// ErrLoad возвращается, когда конфиг не удалось прочитать
	ErrLoad = errors.New("config: failed to load")

	// ErrInvalid возвращается, когда конфиг не прошел валидацию
	ErrInvalid = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Booking  BookingConfig  `toml:"booking"`
	Calendar CalendarConfig `toml:"calendar"`
	Database DatabaseConfig `toml:"database"`
	Events   EventsConfig   `toml:"events"`
	Tracing  TracingConfig  `toml:"tracing"`
	Voice    VoiceConfig    `toml:"voice"`
}

// ServerConfig настройки HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig правила бронирования уровня деплоя
type BookingConfig struct {
	Timezone              string `toml:"timezone"`
	OpenOnReadFailure     bool   `toml:"open_on_read_failure"`
	RollbackPartialWrites bool   `toml:"rollback_partial_writes"`
	FacilitiesFile        string `toml:"facilities_file"`
}

// CalendarConfig настройки хранилища календаря
type CalendarConfig struct {
	Provider        string `toml:"provider"`
	CalendarID      string `toml:"calendar_id"`
	CredentialsFile string `toml:"credentials_file"`
	Timeout         int    `toml:"timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
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
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// EventsConfig настройки публикации событий в RabbitMQ
type EventsConfig struct {
	Enabled   bool   `toml:"enabled"`
	RabbitURL string `toml:"rabbit_url"`
	Exchange  string `toml:"exchange"`
}

// TracingConfig настройки OpenTelemetry
type TracingConfig struct {
	Enabled     bool   `toml:"enabled"`
	Endpoint    string `toml:"endpoint"`
	ServiceName string `toml:"service_name"`
}

// VoiceConfig настройки голосового канала
type VoiceConfig struct {
	OpenAIAPIKey string `toml:"openai_api_key"`
}

// envOverrides переменные окружения, перекрывающие значения из файла
type envOverrides struct {
	HTTPPort          int    `envconfig:"PORT"`
	LogLevel          string `envconfig:"LOG_LEVEL"`
	Timezone          string `envconfig:"BOOKING_TIMEZONE"`
	OpenOnReadFailure *bool  `envconfig:"OPEN_ON_READ_FAILURE"`
	FacilitiesFile    string `envconfig:"FACILITIES_CONFIG_PATH"`
	CalendarProvider  string `envconfig:"CALENDAR_PROVIDER"`
	CalendarID        string `envconfig:"GOOGLE_CALENDAR_ID"`
	CredentialsFile   string `envconfig:"GOOGLE_APPLICATION_CREDENTIALS"`
	DatabasePassword  string `envconfig:"DATABASE_PASSWORD"`
	RabbitURL         string `envconfig:"RABBIT_URL"`
	OpenAIAPIKey      string `envconfig:"OPENAI_API_KEY"`
}

// Default конфигурация со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        5000,
			ReadTimeout:     15,
			WriteTimeout:    30,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "voicebooking",
		},
		Booking: BookingConfig{
			Timezone:              domain.DefaultTimezone,
			OpenOnReadFailure:     domain.DefaultOpenOnReadFailure,
			RollbackPartialWrites: true,
			FacilitiesFile:        "facilities.toml",
		},
		Calendar: CalendarConfig{
			Timeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "voicebooking",
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Events: EventsConfig{
			Exchange: "booking.exchange",
		},
		Tracing: TracingConfig{
			Endpoint:    "localhost:4317",
			ServiceName: "voicebooking",
		},
	}
}

// Load читает .env (если есть), затем path поверх значений по умолчанию,
// затем переменные окружения
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: .env: %v", ErrLoad, err)
	}

	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrLoad, path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	var env envOverrides
	if err := envconfig.Process("", &env); err != nil {
		return fmt.Errorf("%w: environment: %v", ErrLoad, err)
	}

	if env.HTTPPort != 0 {
		c.Server.HTTPPort = env.HTTPPort
	}
	if env.LogLevel != "" {
		c.Logs.Level = env.LogLevel
	}
	if env.Timezone != "" {
		c.Booking.Timezone = env.Timezone
	}
	if env.OpenOnReadFailure != nil {
		c.Booking.OpenOnReadFailure = *env.OpenOnReadFailure
	}
	if env.FacilitiesFile != "" {
		c.Booking.FacilitiesFile = env.FacilitiesFile
	}
	if env.CalendarProvider != "" {
		c.Calendar.Provider = env.CalendarProvider
	}
	if env.CalendarID != "" {
		c.Calendar.CalendarID = env.CalendarID
		// Как и раньше, заданный GOOGLE_CALENDAR_ID включает Google Calendar
		if c.Calendar.Provider == ProviderNone {
			c.Calendar.Provider = ProviderGoogle
		}
	}
	if env.CredentialsFile != "" {
		c.Calendar.CredentialsFile = env.CredentialsFile
	}
	if env.DatabasePassword != "" {
		c.Database.Password = env.DatabasePassword
	}
	if env.RabbitURL != "" {
		c.Events.RabbitURL = env.RabbitURL
	}
	if env.OpenAIAPIKey != "" {
		c.Voice.OpenAIAPIKey = env.OpenAIAPIKey
	}
	return nil
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d is out of range", ErrInvalid, c.Server.HTTPPort)
	}

	if _, err := time.LoadLocation(c.Booking.Timezone); err != nil {
		return fmt.Errorf("%w: booking.timezone %q: %v", ErrInvalid, c.Booking.Timezone, err)
	}

	if c.Booking.FacilitiesFile == "" {
		return fmt.Errorf("%w: booking.facilities_file is required", ErrInvalid)
	}

	switch c.Calendar.Provider {
	case ProviderNone, ProviderMemory, ProviderPostgres:
	case ProviderGoogle:
		if c.Calendar.CalendarID == "" {
			return fmt.Errorf("%w: calendar.calendar_id is required for the google provider", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown calendar.provider %q", ErrInvalid, c.Calendar.Provider)
	}

	if c.Events.Enabled && c.Events.RabbitURL == "" {
		return fmt.Errorf("%w: events.rabbit_url is required when events are enabled", ErrInvalid)
	}

	return nil
}

// Location часовой пояс бронирований; вызывать после Validate
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Booking.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// CalendarConfigured сообщает, подключено ли хранилище календаря
func (c *Config) CalendarConfigured() bool {
	return c.Calendar.Provider != ProviderNone
}

// CalendarTimeout таймаут обращений к Google Calendar
func (c *Config) CalendarTimeout() time.Duration {
	return time.Duration(c.Calendar.Timeout) * time.Second
}
