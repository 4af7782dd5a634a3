package config

import (
	"log"
	"os"
)

type Config struct {
	Port         string
	DBDriver     string
	DBDSN        string
	LogFile      string
	StaticDir    string
	TemplatesDir string
}

func Load() Config {
	cfg := Config{
		Port:         env("PORT", "8080"),
		DBDriver:     env("DB_DRIVER", "sqlite"),
		DBDSN:        env("DB_DSN", "farmacia.db"), // sqlite file in project root
		LogFile:      env("LOG_FILE", "./farmacia.log"),
		StaticDir:    env("STATIC_DIR", "./web/static"),
		TemplatesDir: env("TEMPLATES_DIR", "./web/templates"),
	}
	log.Printf("[config] PORT=%s DB_DRIVER=%s DB_DSN=%s LOG_FILE=%s", cfg.Port, cfg.DBDriver, cfg.DBDSN, cfg.LogFile)
	return cfg
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
