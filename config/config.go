package config

import (
	"fmt"
	"os"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Config dibangun sekali di main dan di-inject ke service yang
// membutuhkannya. Tidak ada secret atau koneksi DB yang disimpan
// sebagai state global.
type Config struct {
	Port       string
	GinMode    string
	DBDriver   string // "mysql" atau "sqlite"
	DBDSN      string
	JWTSecret  string
	TokenTTL   time.Duration
	CORSOrigin string
}

func Load() *Config {
	cfg := &Config{
		Port:       getEnv("PORT", "8080"),
		GinMode:    getEnv("GIN_MODE", "debug"),
		DBDriver:   getEnv("DB_DRIVER", "mysql"),
		DBDSN:      os.Getenv("DB_DSN"),
		JWTSecret:  getEnv("JWT_SECRET", "TestSecretKeyRESV1945"),
		CORSOrigin: getEnv("CORS_ORIGIN", "http://127.0.0.1:5500"),
	}

	if cfg.DBDSN == "" && cfg.DBDriver == "mysql" {
		cfg.DBDSN = fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			getEnv("DB_USER", "root"),
			os.Getenv("DB_PASSWORD"),
			getEnv("DB_HOST", "127.0.0.1"),
			getEnv("DB_PORT", "3306"),
			getEnv("DB_NAME", "reservation_app"),
		)
	}

	ttl, err := time.ParseDuration(getEnv("TOKEN_TTL", "24h"))
	if err != nil {
		ttl = 24 * time.Hour
	}
	cfg.TokenTTL = ttl

	return cfg
}

// InitDB membuka koneksi gorm sesuai driver pada Config.
// MySQL untuk production, SQLite dipakai di test.
func InitDB(cfg *Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.DBDSN), &gorm.Config{})
	case "mysql":
		return gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER: %s", cfg.DBDriver)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
