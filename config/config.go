package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDraftDB  int    `mapstructure:"REDIS_DRAFT_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Draft session lifetime in minutes.
	DraftTTLMinutes int `mapstructure:"DRAFT_TTL_MINUTES"`

	// Payment gateway. "simulated" settles with the configured latency and
	// success rate; "stripe" goes through Stripe PaymentIntents.
	PaymentGateway         string  `mapstructure:"PAYMENT_GATEWAY"`
	PaymentSuccessRate     float64 `mapstructure:"PAYMENT_SUCCESS_RATE"`
	PaymentLatencyMS       int     `mapstructure:"PAYMENT_LATENCY_MS"`
	OfflineVerifyLatencyMS int     `mapstructure:"OFFLINE_VERIFY_LATENCY_MS"`
	StripeKey              string  `mapstructure:"STRIPE_KEY"`

	// Cloudinary storage for proof-of-delivery artifacts.
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`

	// Customer-facing contact details used in confirmation messages.
	AppWebsite   string `mapstructure:"APP_WEBSITE"`
	ContactEmail string `mapstructure:"CONTACT_EMAIL"`
	ContactPhone string `mapstructure:"CONTACT_PHONE"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DRAFT_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("DRAFT_TTL_MINUTES", 60)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("PAYMENT_GATEWAY", "simulated")
	viper.SetDefault("PAYMENT_SUCCESS_RATE", 0.9)
	viper.SetDefault("PAYMENT_LATENCY_MS", 2000)
	viper.SetDefault("OFFLINE_VERIFY_LATENCY_MS", 3000)
	viper.SetDefault("STRIPE_KEY", "")
	viper.SetDefault("CLOUDINARY_CLOUD_NAME", "")
	viper.SetDefault("CLOUDINARY_API_KEY", "")
	viper.SetDefault("CLOUDINARY_API_SECRET", "")
	viper.SetDefault("APP_WEBSITE", "quickdropsd.work")
	viper.SetDefault("CONTACT_EMAIL", "quickdropsd@gmail.com")
	viper.SetDefault("CONTACT_PHONE", "(619) 365-5936")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
