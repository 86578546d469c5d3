package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port int

	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret string

	OpenAIKey   string
	OpenAIModel string

	PlacesAPIKey  string
	PlacesBaseURL string

	// Where fired reminders get POSTed. Empty => log-only delivery.
	PushGatewayURL   string
	DispatchInterval time.Duration
}

func Load() *Config {
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil {
		port = 8080
	}

	dbPort, err := strconv.Atoi(os.Getenv("DB_PORT"))
	if err != nil {
		dbPort = 5432
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-change-me"
	}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}

	placesURL := os.Getenv("PLACES_BASE_URL")
	if placesURL == "" {
		placesURL = "https://places.googleapis.com/v1"
	}

	interval, err := time.ParseDuration(os.Getenv("DISPATCH_INTERVAL"))
	if err != nil || interval <= 0 {
		interval = 30 * time.Second
	}

	return &Config{
		Port: port,

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     dbPort,
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		JWTSecret: secret,

		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIModel: model,

		PlacesAPIKey:  os.Getenv("PLACES_API_KEY"),
		PlacesBaseURL: placesURL,

		PushGatewayURL:   os.Getenv("PUSH_GATEWAY_URL"),
		DispatchInterval: interval,
	}
}

func (c *Config) ConnString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}
