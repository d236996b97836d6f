package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	// Proxies allowed to set X-Forwarded-For, as IPs or CIDRs. Comma separated
	// in the environment; when empty the peer address is used as is.
	TrustedProxies []string `mapstructure:"TRUSTED_PROXIES"`

	// Admin sessions.
	JWTSecret          string `mapstructure:"JWT_SECRET"`
	SessionTTLMinutes  int    `mapstructure:"SESSION_TTL_MINUTES"`
	LoginMaxAttempts   int    `mapstructure:"LOGIN_MAX_ATTEMPTS"`
	LoginWindowMinutes int    `mapstructure:"LOGIN_WINDOW_MINUTES"`

	// Document store: "firestore" or "mongo".
	StoreBackend string `mapstructure:"STORE_BACKEND"`
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Firebase.
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
	FirebaseProjectID       string `mapstructure:"FIREBASE_PROJECT_ID"`
	FirebaseWebAPIKey       string `mapstructure:"FIREBASE_WEB_API_KEY"`
	StaffNotificationTopic  string `mapstructure:"STAFF_NOTIFICATION_TOPIC"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAuthDB   int    `mapstructure:"REDIS_AUTH_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Enquiry events broker. Publishing is disabled when empty.
	AMQPURL      string `mapstructure:"AMQP_URL"`
	AMQPExchange string `mapstructure:"AMQP_EXCHANGE"`

	// Gallery storage.
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`

	// Resort.
	ResortName          string `mapstructure:"RESORT_NAME"`
	ResortTimezone      string `mapstructure:"RESORT_TIMEZONE"`
	OwnerWhatsAppNumber string `mapstructure:"OWNER_WHATSAPP_NUMBER"`
	RoomsSingle         int    `mapstructure:"ROOMS_SINGLE"`
	RoomsDouble         int    `mapstructure:"ROOMS_DOUBLE"`
	RoomsSuite          int    `mapstructure:"ROOMS_SUITE"`
}

var AppConfig Config

func LoadConfig() {
	// A local .env is optional; real environment variables win.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	viper.SetDefault("TRUSTED_PROXIES", []string{})

	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("SESSION_TTL_MINUTES", 480)
	viper.SetDefault("LOGIN_MAX_ATTEMPTS", 5)
	viper.SetDefault("LOGIN_WINDOW_MINUTES", 5)

	viper.SetDefault("STORE_BACKEND", "firestore")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "katwate")

	viper.SetDefault("FIREBASE_CREDENTIALS_FILE", "serviceAccountKey.json")
	viper.SetDefault("FIREBASE_PROJECT_ID", "")
	viper.SetDefault("FIREBASE_WEB_API_KEY", "")
	viper.SetDefault("STAFF_NOTIFICATION_TOPIC", "staff")

	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_QUEUE_DB", 2)

	viper.SetDefault("AMQP_URL", "")
	viper.SetDefault("AMQP_EXCHANGE", "resort.enquiries")

	viper.SetDefault("CLOUDINARY_CLOUD_NAME", "")
	viper.SetDefault("CLOUDINARY_API_KEY", "")
	viper.SetDefault("CLOUDINARY_API_SECRET", "")

	viper.SetDefault("RESORT_NAME", "Katwate's Resort")
	viper.SetDefault("RESORT_TIMEZONE", "Asia/Kolkata")
	viper.SetDefault("OWNER_WHATSAPP_NUMBER", "9172167073")
	viper.SetDefault("ROOMS_SINGLE", 10)
	viper.SetDefault("ROOMS_DOUBLE", 8)
	viper.SetDefault("ROOMS_SUITE", 2)
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
