package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	ServiceName string

	ServerPort int
	LogLevel   string

	StoreDriver   string
	DatabaseURL   string
	MongoURL      string
	MongoDatabase string

	JWTSecret  []byte
	BcryptCost int

	KafkaBrokers []string

	ESURL      string
	ESUsername string
	ESPassword string
	ESIndex    string

	RazorpayKeyID     string
	RazorpayKeySecret string
	RazorpayURL       string

	BrevoAPIKey string
	BrevoURL    string
	SenderEmail string
	SenderName  string

	FrontendURL string
	CORSOrigins []string

	DefaultAdminEmail    string
	DefaultAdminPassword string
}

func Load() Config {
	return Config{
		ServiceName: EnvDefault("SERVICE_NAME", "naturals"),

		ServerPort: EnvIntDefault("SERVER_PORT", 8080),
		LogLevel:   EnvDefault("LOG_LEVEL", "info"),

		StoreDriver:   strings.ToLower(EnvDefault("STORE_DRIVER", "postgres")),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		MongoURL:      os.Getenv("MONGO_URL"),
		MongoDatabase: EnvDefault("MONGO_DB", "naturals"),

		JWTSecret:  []byte(os.Getenv("JWT_SECRET")),
		BcryptCost: EnvIntDefault("BCRYPT_COST", 12),

		KafkaBrokers: CSV(os.Getenv("KAFKA_BROKERS")),

		ESURL:      os.Getenv("ES_URL"),
		ESUsername: os.Getenv("ES_USERNAME"),
		ESPassword: os.Getenv("ES_PASSWORD"),
		ESIndex:    EnvDefault("ES_INDEX", "products"),

		RazorpayKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		RazorpayURL:       EnvDefault("RAZORPAY_URL", "https://api.razorpay.com/v1/"),

		BrevoAPIKey: os.Getenv("BREVO_API_KEY"),
		BrevoURL:    EnvDefault("BREVO_URL", "https://api.brevo.com/v3/"),
		SenderEmail: EnvDefault("SENDER_EMAIL", "noreply@naturals.in"),
		SenderName:  EnvDefault("SENDER_NAME", "Naturals"),

		FrontendURL: EnvDefault("FRONTEND_URL", "http://localhost:3000"),
		CORSOrigins: CSV(EnvDefault("CORS_ORIGINS", "*")),

		DefaultAdminEmail:    strings.ToLower(os.Getenv("DEFAULT_ADMIN_EMAIL")),
		DefaultAdminPassword: os.Getenv("DEFAULT_ADMIN_PASSWORD"),
	}
}

func CSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func EnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
