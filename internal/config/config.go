package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Settings struct {
	Env          string
	HTTPAddr     string
	DatabaseDSN  string
	JWTSecret    string
	LogLevel     string
	StoreTimeout time.Duration
	CorsOrigins  []string
}

var Conf *viper.Viper

func (s Settings) IsProduction() bool {
	return strings.EqualFold(s.Env, "prod")
}

// Load reads settings from the environment. A .env file in the working
// directory is loaded first when present.
func Load() Settings {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			log.Fatalf("config.godotenv: %v", err)
		}
	}

	Conf = viper.New()
	Conf.SetDefault("ENV", "dev")
	Conf.SetDefault("HTTP_ADDR", ":8080")
	Conf.SetDefault("LOG_LEVEL", "info")
	Conf.SetDefault("STORE_TIMEOUT", 5*time.Second)
	Conf.SetDefault("CORS_ORIGINS", "http://localhost:5173")
	Conf.AutomaticEnv()

	timeout := Conf.GetDuration("STORE_TIMEOUT")
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return Settings{
		Env:          Conf.GetString("ENV"),
		HTTPAddr:     Conf.GetString("HTTP_ADDR"),
		DatabaseDSN:  Conf.GetString("DATABASE_DSN"),
		JWTSecret:    Conf.GetString("JWT_SECRET"),
		LogLevel:     Conf.GetString("LOG_LEVEL"),
		StoreTimeout: timeout,
		CorsOrigins:  splitList(Conf.GetString("CORS_ORIGINS")),
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
