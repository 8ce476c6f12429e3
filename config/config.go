package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Booking BookingConfig
	DB      DBConfig
	Redis   RedisConfig
	JWT     JWTConfig
}

type AppConfig struct {
	Port       string
	Env        string
	LogLevel   string
	Timezone   string
	CORSOrigin string
}

type BookingConfig struct {
	Facilities    []string
	Slots         []string
	AdminEmail    string
	PageSize      int
	SubmitLatency time.Duration
	EventChannel  string
}

// DBConfig is optional; an empty Host keeps the audit trail in the log only.
type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

func (c DBConfig) Enabled() bool {
	return c.Host != ""
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	SessionExpiry time.Duration
}

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_LOG_LEVEL", "info")
	viper.SetDefault("BOOKING_ADMIN_EMAIL", "admin@example.com")
	viper.SetDefault("BOOKING_PAGE_SIZE", 5)
	viper.SetDefault("BOOKING_SUBMIT_LATENCY", "700ms")
	viper.SetDefault("BOOKING_EVENT_CHANNEL", "bookings:events")
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("JWT_SESSION_EXPIRY", "12h")
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// Environment variables alone are enough
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	submitLatency, err := time.ParseDuration(viper.GetString("BOOKING_SUBMIT_LATENCY"))
	if err != nil {
		submitLatency = 700 * time.Millisecond
	}

	sessionExpiry, err := time.ParseDuration(viper.GetString("JWT_SESSION_EXPIRY"))
	if err != nil {
		sessionExpiry = 12 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port:       viper.GetString("APP_PORT"),
			Env:        viper.GetString("APP_ENV"),
			LogLevel:   viper.GetString("APP_LOG_LEVEL"),
			Timezone:   viper.GetString("APP_TIMEZONE"),
			CORSOrigin: viper.GetString("APP_CORS_ORIGIN"),
		},
		Booking: BookingConfig{
			Facilities:    splitList(viper.GetString("BOOKING_FACILITIES")),
			Slots:         splitList(viper.GetString("BOOKING_SLOTS")),
			AdminEmail:    viper.GetString("BOOKING_ADMIN_EMAIL"),
			PageSize:      viper.GetInt("BOOKING_PAGE_SIZE"),
			SubmitLatency: submitLatency,
			EventChannel:  viper.GetString("BOOKING_EVENT_CHANNEL"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			SessionExpiry: sessionExpiry,
		},
	}

	if config.JWT.Secret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	return config, nil
}

// splitList parses a comma-separated list, dropping blank entries
func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
