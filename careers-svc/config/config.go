package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServerPort    string        `mapstructure:"SERVER_PORT"`
	BaseURL       string        `mapstructure:"BASE_URL"`
	DatabaseDSN   string        `mapstructure:"DATABASE_DSN"`
	AccessSecret  string        `mapstructure:"ACCESS_SECRET"`
	TokenTTL      time.Duration `mapstructure:"TOKEN_TTL"`
	KafkaBroker   string        `mapstructure:"KAFKA_BROKER"`
	KafkaTopic    string        `mapstructure:"KAFKA_TOPIC"`
	KafkaUsername string        `mapstructure:"KAFKA_USERNAME"`
	KafkaPassword string        `mapstructure:"KAFKA_PASSWORD"`
	CloudinaryUrl string        `mapstructure:"CLOUDINARY_URL"`
	LogLevel      string        `mapstructure:"LOG_LEVEL"`
	AdminEmail    string        `mapstructure:"ADMIN_EMAIL"`
	AdminPassword string        `mapstructure:"ADMIN_PASSWORD"`
}

var keys = []string{
	"SERVER_PORT", "BASE_URL", "DATABASE_DSN", "ACCESS_SECRET", "TOKEN_TTL",
	"KAFKA_BROKER", "KAFKA_TOPIC", "KAFKA_USERNAME", "KAFKA_PASSWORD",
	"CLOUDINARY_URL", "LOG_LEVEL", "ADMIN_EMAIL", "ADMIN_PASSWORD",
}

func LoadConfig() Config {
	if os.Getenv("ENV") != "prod" {
		if err := godotenv.Overload(); err != nil {
			log.Warnf("env file not found or could not be loaded: %v", err)
		}
	}

	v := viper.New()
	v.SetDefault("SERVER_PORT", ":3000")
	v.SetDefault("BASE_URL", "*")
	v.SetDefault("TOKEN_TTL", "24h")
	v.SetDefault("KAFKA_TOPIC", "careers.events")
	v.SetDefault("LOG_LEVEL", "info")
	v.AutomaticEnv()
	// AutomaticEnv only answers Get; Unmarshal needs every key bound.
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Fatalf("config decode error: %v", err)
	}

	if !strings.HasPrefix(cfg.ServerPort, ":") && !strings.Contains(cfg.ServerPort, ":") {
		cfg.ServerPort = ":" + cfg.ServerPort
	}
	return cfg
}

// Validate reports settings the service cannot start without.
func (c Config) Validate() []string {
	var missing []string
	if c.DatabaseDSN == "" {
		missing = append(missing, "DATABASE_DSN")
	}
	if c.AccessSecret == "" {
		missing = append(missing, "ACCESS_SECRET")
	}
	return missing
}

func (c Config) ApplyLogLevel() {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		log.Warnf("unknown LOG_LEVEL %q, using info", c.LogLevel)
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}
