package config

import (
	"github.com/spf13/viper"
)

// Config holds the application settings, read from environment variables
// with sensible defaults.
type Config struct {
	AppPort      string
	DBDriver     string
	DBDSN        string
	RabbitMQURL  string
	TemplatesDir string
}

// Load reads configuration from the environment via Viper. RABBITMQ_URL is
// optional; an empty value disables catalog event publishing.
func Load() Config {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DB_DSN", "shopfront.db")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("TEMPLATES_DIR", "./web/templates")
	viper.AutomaticEnv()

	return Config{
		AppPort:      viper.GetString("APP_PORT"),
		DBDriver:     viper.GetString("DB_DRIVER"),
		DBDSN:        viper.GetString("DB_DSN"),
		RabbitMQURL:  viper.GetString("RABBITMQ_URL"),
		TemplatesDir: viper.GetString("TEMPLATES_DIR"),
	}
}
