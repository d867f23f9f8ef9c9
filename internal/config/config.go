package config

import (
	"github.com/shrimpsizemoose/trekker/logger"
	"github.com/spf13/viper"
)

type Config struct {
	Port                          string `mapstructure:"PORT"`
	DatabasePath                  string `mapstructure:"DATABASE_PATH"`
	AdminPassword                 string `mapstructure:"ADMIN_PASSWORD"`
	SessionSecret                 string `mapstructure:"SESSION_SECRET"`
	Environment                   string `mapstructure:"ENVIRONMENT"`
	DiscordBotToken               string `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordNotificationsChannelID string `mapstructure:"DISCORD_NOTIFICATIONS_CHANNEL_ID"`
}

func LoadConfig() *Config {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATABASE_PATH", "coreday.db")
	viper.SetDefault("ADMIN_PASSWORD", "admin")
	viper.SetDefault("SESSION_SECRET", "coreday-dev-secret")
	viper.SetDefault("ENVIRONMENT", "development")

	viper.BindEnv("ADMIN_PASSWORD")
	viper.BindEnv("SESSION_SECRET")
	viper.BindEnv("ENVIRONMENT")
	viper.BindEnv("DISCORD_BOT_TOKEN")
	viper.BindEnv("DISCORD_NOTIFICATIONS_CHANNEL_ID")

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		logger.Error.Fatalf("Unable to decode config into struct: %v", err)
	}

	return &config
}

// IsProduction gates the Secure flag on the session cookie.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
