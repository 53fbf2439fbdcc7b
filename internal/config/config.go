package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Port                          string `mapstructure:"PORT"`
	DatabasePath                  string `mapstructure:"DATABASE_PATH"`
	AdminAccessID                 string `mapstructure:"ADMIN_ACCESS_ID"`
	ExportPIN                     string `mapstructure:"EXPORT_PIN"`
	JWTSecret                     string `mapstructure:"JWT_SECRET"`
	GeminiAPIKey                  string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel                   string `mapstructure:"GEMINI_MODEL"`
	DiscordBotToken               string `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordNotificationsChannelID string `mapstructure:"DISCORD_NOTIFICATIONS_CHANNEL_ID"`
	FrontendURL                   string `mapstructure:"FRONTEND_URL"`
	EnableCORS                    bool   `mapstructure:"ENABLE_CORS"`
}

func LoadConfig() *Config {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATABASE_PATH", "natacion.db")
	// Operational PIN of the Paraguay site panel, not a security boundary.
	viper.SetDefault("ADMIN_ACCESS_ID", "31913637")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	viper.SetDefault("FRONTEND_URL", "http://127.0.0.1:4000")

	viper.BindEnv("ADMIN_ACCESS_ID")
	viper.BindEnv("EXPORT_PIN")
	viper.BindEnv("JWT_SECRET")
	viper.BindEnv("GEMINI_API_KEY")
	viper.BindEnv("GEMINI_MODEL")
	viper.BindEnv("DISCORD_BOT_TOKEN")
	viper.BindEnv("DISCORD_NOTIFICATIONS_CHANNEL_ID")
	viper.BindEnv("FRONTEND_URL")
	viper.BindEnv("ENABLE_CORS")

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}

	return &config
}
