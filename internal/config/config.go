package config

import (
	"errors"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
	StoreMongo  = "mongo"
)

const devJWTSecret = "courtvista-dev-secret"

type Config struct {
	Env               string
	ServerAddr        string
	FrontendOrigins   []string
	StoreBackend      string
	MongoURI          string
	MongoDB           string
	RedisURL          string
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	JWTSecret         string
	AccessTTLMinutes  int
	RefreshTTLMinutes int
	CookieSecure      bool
	AdminEmail        string
	AdminPassword     string

	RateLimitBookings  int
	RateLimitAuth      int
	RateLimitQnA       int
	RateLimitWindowSec int
	CacheTTLSeconds    int

	MailProvider     string
	BrevoAPIKey      string
	BrevoSandbox     bool
	SendGridAPIKey   string
	MailSenderEmail  string
	MailSenderName   string
	Timezone         *time.Location
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func Load() (*Config, error) {
	// Missing .env is fine; real environment variables win.
	_ = godotenv.Load()

	loc, err := time.LoadLocation(getEnv("TZ", "Asia/Kolkata"))
	if err != nil {
		return nil, err
	}

	mongoURI := getEnv("MONGO_URI", "mongodb://localhost:27017/courtvista")
	mongoDB := getEnv("MONGO_DB", "")
	if mongoDB == "" {
		mongoDB = mongoDBFromURI(mongoURI)
	}
	if mongoDB == "" {
		mongoDB = "courtvista"
	}

	cfg := &Config{
		Env:                getEnv("APP_ENV", "development"),
		ServerAddr:         getEnv("SERVER_ADDR", ":8080"),
		FrontendOrigins:    splitList(getEnv("FRONTEND_ORIGIN", "http://localhost:5173")),
		StoreBackend:       strings.ToLower(getEnv("STORE_BACKEND", StoreMemory)),
		MongoURI:           mongoURI,
		MongoDB:            mongoDB,
		RedisURL:           getEnv("REDIS_URL", ""),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		RedisDB:            getEnvInt("REDIS_DB", 0),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		AccessTTLMinutes:   getEnvInt("ACCESS_TTL_MINUTES", 60),
		RefreshTTLMinutes:  getEnvInt("REFRESH_TTL_MINUTES", 43200),
		CookieSecure:       getEnvBool("COOKIE_SECURE", false),
		AdminEmail:         strings.ToLower(getEnv("ADMIN_EMAIL", "admin@courtvista.com")),
		AdminPassword:      getEnv("ADMIN_PASSWORD", "admin123"),
		RateLimitBookings:  getEnvInt("RATE_LIMIT_BOOKINGS", 10),
		RateLimitAuth:      getEnvInt("RATE_LIMIT_AUTH", 20),
		RateLimitQnA:       getEnvInt("RATE_LIMIT_QNA", 5),
		RateLimitWindowSec: getEnvInt("RATE_LIMIT_WINDOW_SEC", 60),
		CacheTTLSeconds:    getEnvInt("CACHE_TTL_SECONDS", 60),
		MailProvider:       strings.ToLower(getEnv("MAIL_PROVIDER", "")),
		BrevoAPIKey:        getEnv("BREVO_API_KEY", ""),
		BrevoSandbox:       getEnvBool("BREVO_SANDBOX", false),
		SendGridAPIKey:     getEnv("SENDGRID_API_KEY", ""),
		MailSenderEmail:    getEnv("MAIL_SENDER_EMAIL", ""),
		MailSenderName:     getEnv("MAIL_SENDER_NAME", "CourtVista"),
		Timezone:           loc,
	}

	switch cfg.StoreBackend {
	case StoreMemory, StoreRedis, StoreMongo:
	default:
		return nil, errors.New("unknown STORE_BACKEND " + strconv.Quote(cfg.StoreBackend))
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			return nil, errors.New("JWT_SECRET is required in production")
		}
		cfg.JWTSecret = devJWTSecret
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

func (c *Config) AccessTTL() time.Duration {
	return time.Duration(c.AccessTTLMinutes) * time.Minute
}

func (c *Config) RefreshTTL() time.Duration {
	return time.Duration(c.RefreshTTLMinutes) * time.Minute
}

func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowSec) * time.Second
}

func mongoDBFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return ""
	}
	db := strings.Trim(u.Path, "/")
	if db == "" {
		return ""
	}
	if idx := strings.Index(db, "/"); idx >= 0 {
		db = db[:idx]
	}
	return db
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
