package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config carries every env-derived setting the process needs. Components
// receive the values they use at construction; nothing reads the
// environment after startup.
type Config struct {
	AppPort       string
	MongoURI      string
	MongoDatabase string

	JWTSecret   string
	TokenExpiry time.Duration

	AdminEmail    string
	AdminPassword string

	StripeSecretKey   string
	RazorpayKeyID     string
	RazorpayKeySecret string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	Currency    string
	DeliveryFee float64
}

func Load() *Config {
	viper.SetDefault("APP_PORT", ":4000")
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DB", "forever")
	viper.SetDefault("TOKEN_EXPIRY", "168h")
	viper.SetDefault("CURRENCY", "USD")
	viper.SetDefault("DELIVERY_FEE", 10.0)
	viper.AutomaticEnv()

	return &Config{
		AppPort:       viper.GetString("APP_PORT"),
		MongoURI:      viper.GetString("MONGO_URI"),
		MongoDatabase: viper.GetString("MONGO_DB"),

		JWTSecret:   viper.GetString("JWT_SECRET"),
		TokenExpiry: viper.GetDuration("TOKEN_EXPIRY"),

		AdminEmail:    viper.GetString("ADMIN_EMAIL"),
		AdminPassword: viper.GetString("ADMIN_PASSWORD"),

		StripeSecretKey:   viper.GetString("STRIPE_SECRET_KEY"),
		RazorpayKeyID:     viper.GetString("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: viper.GetString("RAZORPAY_SECRET_KEY"),

		CloudinaryCloudName: viper.GetString("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    viper.GetString("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: viper.GetString("CLOUDINARY_API_SECRET"),

		Currency:    viper.GetString("CURRENCY"),
		DeliveryFee: viper.GetFloat64("DELIVERY_FEE"),
	}
}
