package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-StudioService/pkg/types"
)

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Storage      StorageConfig      `toml:"storage"`
	Redis        RedisConfig        `toml:"redis"`
	Scheduling   SchedulingConfig   `toml:"scheduling"`
	Catalog      CatalogConfig      `toml:"catalog"`
	Housekeeping HousekeepingConfig `toml:"housekeeping"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port" validate:"required,min=1,max=65535"`
	ReadTimeout     int `toml:"read_timeout" validate:"min=0"`
	WriteTimeout    int `toml:"write_timeout" validate:"min=0"`
	IdleTimeout     int `toml:"idle_timeout" validate:"min=0"`
	ShutdownTimeout int `toml:"shutdown_timeout" validate:"min=0"`
}

type LogsConfig struct {
	Level string `toml:"level" validate:"omitempty,oneof=debug info warn error"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path" validate:"required_if=Enabled true"`
	ServiceName string `toml:"service_name" validate:"required_if=Enabled true"`
}

// StorageConfig выбор бэкенда key-value хранилища
type StorageConfig struct {
	Driver   string         `toml:"driver" validate:"required,oneof=postgres memory"`
	Database DatabaseConfig `toml:"database"`
}

type DatabaseConfig struct {
	Host            string `toml:"host" validate:"required_if=Enabled true"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns" validate:"min=0"`
	MaxIdleConns    int    `toml:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" validate:"min=0"`
	// Enabled выставляется при загрузке, если driver = postgres
	Enabled bool `toml:"-"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	sslMode := d.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, sslMode)
}

// RedisConfig мост уведомлений между процессами
type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr" validate:"required_if=Enabled true"`
	Password string `toml:"password"`
	DB       int    `toml:"db" validate:"min=0"`
	Channel  string `toml:"channel" validate:"required_if=Enabled true"`
}

type ProfessionalConfig struct {
	ID   string `toml:"id" validate:"required"`
	Name string `toml:"name" validate:"required"`
}

// SchedulingConfig параметры генерации слотов
type SchedulingConfig struct {
	BufferMinutes       int                  `toml:"buffer_minutes" validate:"min=0,max=120"`
	WeekdayStart        string               `toml:"weekday_start" validate:"required"`
	WeekdayEnd          string               `toml:"weekday_end" validate:"required"`
	SaturdayStart       string               `toml:"saturday_start" validate:"required"`
	SaturdayEnd         string               `toml:"saturday_end" validate:"required"`
	StepMode            string               `toml:"step_mode" validate:"omitempty,oneof=backward forward"`
	Professionals       []ProfessionalConfig `toml:"professionals" validate:"required,min=1,dive"`
	DefaultProfessional string               `toml:"default_professional" validate:"required"`
}

// ProfessionalIDs возвращает идентификаторы профессионалов в порядке конфигурации
func (s SchedulingConfig) ProfessionalIDs() []string {
	ids := make([]string, 0, len(s.Professionals))
	for _, p := range s.Professionals {
		ids = append(ids, p.ID)
	}
	return ids
}

type CatalogConfig struct {
	// Path путь к YAML файлу с каталогом пакетов, пусто - встроенный каталог
	Path string `toml:"path"`
}

type HousekeepingConfig struct {
	Enabled       bool   `toml:"enabled"`
	Schedule      string `toml:"schedule" validate:"required_if=Enabled true"`
	RetentionDays int    `toml:"retention_days" validate:"min=0"`
}

// Load загружает конфигурацию из TOML файла, переменных окружения и .env
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}

	// .env необязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %v", ErrReadEnv, err)
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет конфигурацию
func (c *Config) Validate() error {
	c.Storage.Database.Enabled = c.Storage.Driver == "postgres"

	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	windows := map[string]string{
		"weekday_start":  c.Scheduling.WeekdayStart,
		"weekday_end":    c.Scheduling.WeekdayEnd,
		"saturday_start": c.Scheduling.SaturdayStart,
		"saturday_end":   c.Scheduling.SaturdayEnd,
	}
	for name, value := range windows {
		if _, err := types.NewTimeStringFromString(value); err != nil {
			return fmt.Errorf("%w: scheduling.%s: %v", ErrValidation, name, err)
		}
	}

	found := false
	seen := make(map[string]struct{}, len(c.Scheduling.Professionals))
	for _, p := range c.Scheduling.Professionals {
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("%w: duplicate professional %q", ErrValidation, p.ID)
		}
		seen[p.ID] = struct{}{}
		if p.ID == c.Scheduling.DefaultProfessional {
			found = true
		}
	}
	if !found {
		return fmt.Errorf("%w: default professional %q is not in professionals",
			ErrValidation, c.Scheduling.DefaultProfessional)
	}

	return nil
}

func defaults() *Config {
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
			Path:        "/metrics",
			ServiceName: "smc_studio_service",
		},
		Storage: StorageConfig{
			Driver: "memory",
			Database: DatabaseConfig{
				Port:            5432,
				SSLMode:         "disable",
				MaxOpenConns:    10,
				MaxIdleConns:    5,
				ConnMaxLifetime: 300,
			},
		},
		Redis: RedisConfig{Channel: "studio:changes"},
		Scheduling: SchedulingConfig{
			BufferMinutes: 15,
			WeekdayStart:  "08:00",
			WeekdayEnd:    "20:10",
			SaturdayStart: "08:00",
			SaturdayEnd:   "16:10",
			StepMode:      "backward",
		},
		Housekeeping: HousekeepingConfig{
			Schedule:      "0 3 * * *",
			RetentionDays: 90,
		},
	}
}

// applyEnv переопределяет секреты и основные параметры из окружения
func applyEnv(cfg *Config) error {
	if v := os.Getenv("STORAGE_DRIVER"); v != "" {
		cfg.Storage.Driver = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		cfg.Storage.Database.Host = v
	}
	if v := os.Getenv("DB_USER"); v != "" {
		cfg.Storage.Database.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Storage.Database.Password = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		cfg.Storage.Database.DBName = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: DB_PORT=%q", ErrReadEnv, v)
		}
		cfg.Storage.Database.Port = port
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: HTTP_PORT=%q", ErrReadEnv, v)
		}
		cfg.Server.HTTPPort = port
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logs.Level = v
	}
	return nil
}
