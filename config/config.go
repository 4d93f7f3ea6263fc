package config

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Redis   RedisConfig
	Session SessionConfig
}

type AppConfig struct {
	Port       string
	Env        string
	CORSOrigin string
}

type DBConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	AutoMigrate bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type SessionConfig struct {
	Secret string
	TTL    time.Duration
}

func LoadConfig() (*Config, error) {
	return LoadConfigFile(".env")
}

// LoadConfigFile reads the given env file, falling back to the process
// environment when the file does not exist.
func LoadConfigFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_CORS_ORIGIN", "*")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_AUTO_MIGRATE", true)
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	sessionTTL, err := time.ParseDuration(v.GetString("SESSION_TTL"))
	if err != nil {
		sessionTTL = 2 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port:       v.GetString("APP_PORT"),
			Env:        v.GetString("APP_ENV"),
			CORSOrigin: v.GetString("APP_CORS_ORIGIN"),
		},
		DB: DBConfig{
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetString("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASSWORD"),
			Name:        v.GetString("DB_NAME"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Session: SessionConfig{
			Secret: v.GetString("SESSION_SECRET"),
			TTL:    sessionTTL,
		},
	}

	return config, nil
}
