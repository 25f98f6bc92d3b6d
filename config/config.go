package config

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Auth   AuthConfig   `mapstructure:"auth"`
	Cache  CacheConfig  `mapstructure:"cache"`
}

type ServerConfig struct {
	Port string `mapstructure:"port" validate:"required"`
}

type RedisConfig struct {
	Host     string        `mapstructure:"host" validate:"required"`
	Port     string        `mapstructure:"port" validate:"required"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db" validate:"gte=0"`
	Timeout  time.Duration `mapstructure:"timeout" validate:"gt=0"`
	Retries  int           `mapstructure:"retries" validate:"gte=1"`
}

type AuthConfig struct {
	Salt       string `mapstructure:"salt" validate:"required"`
	AdminSalt  string `mapstructure:"admin_salt" validate:"required"`
	AdminLogin string `mapstructure:"admin_login" validate:"required"`
}

type CacheConfig struct {
	ScoreTTL time.Duration `mapstructure:"score_ttl" validate:"gt=0"`
}

var AppConfig Config

var validate = validator.New()

// LoadConfig reads config.yml from the given path and overlays environment
// variables. Every key has a default, so a missing file is not an error.
func LoadConfig(path string) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yml")

	setDefaults()
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatalf("Error reading config file, %s", err)
		}
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Unable to decode config into struct, %v", err)
	}

	if err := validate.Struct(&AppConfig); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
}

func setDefaults() {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", "6379")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.timeout", "1s")
	viper.SetDefault("redis.retries", 3)
	viper.SetDefault("auth.salt", "Otus")
	viper.SetDefault("auth.admin_salt", "42")
	viper.SetDefault("auth.admin_login", "admin")
	viper.SetDefault("cache.score_ttl", "1h")
}
