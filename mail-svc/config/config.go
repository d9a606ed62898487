package config

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	KafkaBroker      string `mapstructure:"KAFKA_BROKER"`
	KafkaTopic       string `mapstructure:"KAFKA_TOPIC"`
	KafkaGroupID     string `mapstructure:"KAFKA_GROUP_ID"`
	KafkaUsername    string `mapstructure:"KAFKA_USERNAME"`
	KafkaPassword    string `mapstructure:"KAFKA_PASSWORD"`
	SMTPHost         string `mapstructure:"SMTP_HOST"`
	SMTPPort         int    `mapstructure:"SMTP_PORT"`
	GmailUser        string `mapstructure:"GMAIL_USER"`
	GmailAppPassword string `mapstructure:"GMAIL_APP_PASSWORD"`
	MailFrom         string `mapstructure:"MAIL_FROM"`
	MailFromName     string `mapstructure:"MAIL_FROM_NAME"`
	AppBaseURL       string `mapstructure:"APP_BASE_URL"`
	LogLevel         string `mapstructure:"LOG_LEVEL"`
}

var keys = []string{
	"KAFKA_BROKER", "KAFKA_TOPIC", "KAFKA_GROUP_ID", "KAFKA_USERNAME", "KAFKA_PASSWORD",
	"SMTP_HOST", "SMTP_PORT", "GMAIL_USER", "GMAIL_APP_PASSWORD",
	"MAIL_FROM", "MAIL_FROM_NAME", "APP_BASE_URL", "LOG_LEVEL",
}

func LoadConfig() Config {
	if os.Getenv("ENV") != "prod" {
		if err := godotenv.Overload(); err != nil {
			log.Warnf(".env not loaded: %v", err)
		}
	}

	v := viper.New()
	v.SetDefault("KAFKA_TOPIC", "careers.events")
	v.SetDefault("KAFKA_GROUP_ID", "mail-svc")
	v.SetDefault("SMTP_HOST", "smtp.gmail.com")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("MAIL_FROM_NAME", "ECOBA Careers")
	v.SetDefault("LOG_LEVEL", "info")
	v.AutomaticEnv()
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Fatalf("config decode error: %v", err)
	}
	if cfg.MailFrom == "" {
		cfg.MailFrom = cfg.GmailUser
	}
	return cfg
}

func (c Config) Validate() []string {
	var missing []string
	if c.KafkaBroker == "" {
		missing = append(missing, "KAFKA_BROKER")
	}
	if c.GmailUser == "" {
		missing = append(missing, "GMAIL_USER")
	}
	if c.GmailAppPassword == "" {
		missing = append(missing, "GMAIL_APP_PASSWORD")
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
