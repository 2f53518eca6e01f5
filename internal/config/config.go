package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"

	"github.com/m04kA/SMC-HallBooking/internal/domain"
)

// Поддерживаемые бэкенды хранилища черновиков
const (
	DraftBackendRedis    = "redis"
	DraftBackendPostgres = "postgres"
)

// Источники каталога залов
const (
	CatalogSourceStatic  = "static"
	CatalogSourceService = "service"
)

// envPrefix префикс переменных окружения, переопределяющих config.toml
const envPrefix = "HALLBOOKING"

var (
	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server         ServerConfig         `toml:"server"`
	Logs           LogsConfig           `toml:"logs"`
	Metrics        MetricsConfig        `toml:"metrics"`
	BookingService BookingServiceConfig `toml:"booking_service"`
	Drafts         DraftsConfig         `toml:"drafts"`
	Redis          RedisConfig          `toml:"redis"`
	Database       DatabaseConfig       `toml:"database"`
	Catalog        CatalogConfig        `toml:"catalog"`
	Submission     SubmissionConfig     `toml:"submission"`
	Events         EventsConfig         `toml:"events"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
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

// BookingServiceConfig внешний REST сервис бронирований
type BookingServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды

	HallsPath         string `toml:"halls_path"`
	BookingsPath      string `toml:"bookings_path"`
	AvailabilityPath  string `toml:"availability_path"`
	AdminBookingsPath string `toml:"admin_bookings_path"`
}

// DraftsConfig хранилище черновиков
type DraftsConfig struct {
	Backend   string `toml:"backend"`
	KeyPrefix string `toml:"key_prefix"`
	TTLHours  int    `toml:"ttl_hours"` // 0 - без ограничения
}

// RedisConfig подключение к redis
type RedisConfig struct {
	URL string `toml:"url"`
}

// DatabaseConfig подключение к postgres (используется бэкендом черновиков postgres)
type DatabaseConfig struct {
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

// CatalogConfig статический каталог залов и слотов
type CatalogConfig struct {
	Source    string       `toml:"source"`
	Timezone  string       `toml:"timezone"`
	TimeSlots []string     `toml:"time_slots"`
	Halls     []HallConfig `toml:"halls"`
}

// HallConfig описание зала в config.toml
type HallConfig struct {
	ID        string   `toml:"id"`
	Name      string   `toml:"name"`
	Capacity  int      `toml:"capacity"`
	BasePrice float64  `toml:"base_price"`
	Features  []string `toml:"features"`
}

// SubmissionConfig настройки отправки бронирования
type SubmissionConfig struct {
	CheckAvailability bool `toml:"check_availability"`
}

// EventsConfig публикация событий бронирований в kafka
type EventsConfig struct {
	Enabled bool     `toml:"enabled"`
	Brokers []string `toml:"brokers"`
	Topic   string   `toml:"topic"`
}

// envOverrides переменные окружения, переопределяющие config.toml (HALLBOOKING_*)
type envOverrides struct {
	HTTPPort          int      `envconfig:"HTTP_PORT"`
	LogLevel          string   `envconfig:"LOG_LEVEL"`
	BookingServiceURL string   `envconfig:"BOOKING_SERVICE_URL"`
	DraftsBackend     string   `envconfig:"DRAFTS_BACKEND"`
	RedisURL          string   `envconfig:"REDIS_URL"`
	DBHost            string   `envconfig:"DB_HOST"`
	DBPassword        string   `envconfig:"DB_PASSWORD"`
	KafkaBrokers      []string `envconfig:"KAFKA_BROKERS"`
}

// Load читает конфигурацию из TOML файла, применяет значения по умолчанию,
// переопределения из окружения и валидирует результат
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	cfg.fillCatalogDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "hall-booking",
		},
		BookingService: BookingServiceConfig{
			URL:               "http://localhost:8081/api",
			Timeout:           10,
			HallsPath:         "/halls",
			BookingsPath:      "/bookings",
			AvailabilityPath:  "/availability",
			AdminBookingsPath: "/admin/bookings",
		},
		Drafts: DraftsConfig{
			Backend:   DraftBackendRedis,
			KeyPrefix: "drafts:",
			TTLHours:  24 * 7,
		},
		Redis: RedisConfig{URL: "redis://localhost:6379/0"},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Catalog: CatalogConfig{
			Source:   CatalogSourceStatic,
			Timezone: "Local",
		},
		Submission: SubmissionConfig{CheckAvailability: true},
		Events:     EventsConfig{Topic: "booking.events"},
	}
}

// DSN строка подключения к postgres
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Location возвращает часовой пояс каталога
func (c CatalogConfig) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// TTL время жизни черновика
func (d DraftsConfig) TTL() time.Duration {
	return time.Duration(d.TTLHours) * time.Hour
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}

	if _, err := url.ParseRequestURI(c.BookingService.URL); err != nil {
		return fmt.Errorf("%w: booking_service.url: %v", ErrInvalidConfig, err)
	}

	if c.BookingService.Timeout <= 0 {
		return fmt.Errorf("%w: booking_service.timeout must be positive", ErrInvalidConfig)
	}

	switch c.Drafts.Backend {
	case DraftBackendRedis:
		if c.Redis.URL == "" {
			return fmt.Errorf("%w: redis.url is required for redis drafts backend", ErrInvalidConfig)
		}
	case DraftBackendPostgres:
		if c.Database.DBName == "" {
			return fmt.Errorf("%w: database.dbname is required for postgres drafts backend", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown drafts.backend %q", ErrInvalidConfig, c.Drafts.Backend)
	}

	if c.Drafts.TTLHours < 0 {
		return fmt.Errorf("%w: drafts.ttl_hours must not be negative", ErrInvalidConfig)
	}

	switch c.Catalog.Source {
	case CatalogSourceStatic, CatalogSourceService:
	default:
		return fmt.Errorf("%w: unknown catalog.source %q", ErrInvalidConfig, c.Catalog.Source)
	}

	if _, err := c.Catalog.Location(); err != nil {
		return fmt.Errorf("%w: catalog.timezone: %v", ErrInvalidConfig, err)
	}

	if c.Events.Enabled && (len(c.Events.Brokers) == 0 || c.Events.Topic == "") {
		return fmt.Errorf("%w: events.brokers and events.topic are required when events are enabled", ErrInvalidConfig)
	}

	return nil
}

func (c *Config) applyEnv() error {
	var env envOverrides
	if err := envconfig.Process(envPrefix, &env); err != nil {
		return fmt.Errorf("config: failed to read environment: %w", err)
	}

	if env.HTTPPort != 0 {
		c.Server.HTTPPort = env.HTTPPort
	}
	if env.LogLevel != "" {
		c.Logs.Level = env.LogLevel
	}
	if env.BookingServiceURL != "" {
		c.BookingService.URL = env.BookingServiceURL
	}
	if env.DraftsBackend != "" {
		c.Drafts.Backend = env.DraftsBackend
	}
	if env.RedisURL != "" {
		c.Redis.URL = env.RedisURL
	}
	if env.DBHost != "" {
		c.Database.Host = env.DBHost
	}
	if env.DBPassword != "" {
		c.Database.Password = env.DBPassword
	}
	if len(env.KafkaBrokers) > 0 {
		c.Events.Brokers = env.KafkaBrokers
	}

	return nil
}

// fillCatalogDefaults подставляет эталонный каталог, если залы или слоты не заданы
func (c *Config) fillCatalogDefaults() {
	if len(c.Catalog.Halls) == 0 {
		for _, hall := range domain.ReferenceHalls {
			hall = hall.Clone()
			c.Catalog.Halls = append(c.Catalog.Halls, HallConfig{
				ID:        string(hall.ID),
				Name:      hall.Name,
				Capacity:  hall.Capacity,
				BasePrice: hall.BasePrice,
				Features:  hall.Features,
			})
		}
	}
	if len(c.Catalog.TimeSlots) == 0 {
		c.Catalog.TimeSlots = append([]string(nil), domain.ReferenceTimeSlots...)
	}
}
