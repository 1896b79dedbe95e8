package config

import "os"

type Config struct {
	Port                 string
	RentDBHost           string
	RentDBPort           string
	PaymentDBHost        string
	SessionCacheHost     string
	SessionCachePort     string
	RecommendationDBHost string
	RecommendationDBPort string
	RecommendationDBUser string
	RecommendationDBPass string
	JaegerAddress        string
	SMTPServer           string
	SMTPPort             string
	SMTPEmail            string
	SMTPPassword         string
}

func NewConfig() *Config {
	return &Config{
		Port:                 os.Getenv("RENTRIDE_SERVICE_PORT"),
		RentDBHost:           os.Getenv("RENT_DB_HOST"),
		RentDBPort:           os.Getenv("RENT_DB_PORT"),
		PaymentDBHost:        os.Getenv("PAYMENT_DB_HOST"),
		SessionCacheHost:     os.Getenv("SESSION_CACHE_HOST"),
		SessionCachePort:     os.Getenv("SESSION_CACHE_PORT"),
		RecommendationDBHost: os.Getenv("RECOMMENDATION_DB_HOST"),
		RecommendationDBPort: os.Getenv("RECOMMENDATION_DB_PORT"),
		RecommendationDBUser: os.Getenv("RECOMMENDATION_DB_USER"),
		RecommendationDBPass: os.Getenv("RECOMMENDATION_DB_PASS"),
		JaegerAddress:        os.Getenv("JAEGER_ADDRESS"),
		SMTPServer:           os.Getenv("SMTP_AUTH_ADDRESS"),
		SMTPPort:             os.Getenv("SMTP_AUTH_PORT"),
		SMTPEmail:            os.Getenv("SMTP_AUTH_MAIL"),
		SMTPPassword:         os.Getenv("SMTP_AUTH_PASSWORD"),
	}
}
