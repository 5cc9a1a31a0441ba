package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

// Config is the environment-driven runtime configuration. main loads .env
// first (optional), so every field can come from either source.
type Config struct {
	Port        string
	StoreDriver string // file | mysql | redis | memory
	DataDir     string
	RedisURL    string
	MySQLDSN    string
	ExportDir   string
}

// EnvOrDefault returns the ENV value or the fallback default.
func EnvOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func Load() (Config, error) {
	cfg := Config{
		Port:        EnvOrDefault("PORT", "8080"),
		StoreDriver: strings.ToLower(EnvOrDefault("STORE_DRIVER", "file")),
		DataDir:     EnvOrDefault("DATA_DIR", "./data"),
		ExportDir:   EnvOrDefault("EXPORT_DIR", "./receipts"),
		RedisURL:    strings.TrimSpace(os.Getenv("REDIS_URL")),
	}

	switch cfg.StoreDriver {
	case "file", "memory":
	case "redis":
		if cfg.RedisURL == "" {
			return cfg, fmt.Errorf("REDIS_URL is required when STORE_DRIVER=redis")
		}
	case "mysql":
		dsn, err := resolveMySQLDSN()
		if err != nil {
			return cfg, err
		}
		cfg.MySQLDSN = dsn
	default:
		return cfg, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	return cfg, nil
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := EnvOrDefault("DB_USER", "root")
	pass := os.Getenv("DB_PASS")
	host := EnvOrDefault("DB_HOST", "127.0.0.1")
	port := EnvOrDefault("DB_PORT", "3306")
	dbName := EnvOrDefault("DB_NAME", "frontdesk_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}
