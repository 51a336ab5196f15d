package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	defaultRemoteBaseURL = "http://20.244.56.144/evaluation-service"
)

// Settings تنظیمات برنامه که از .env و متغیرهای محیطی خوانده می‌شود
type Settings struct {
	Port     string `validate:"required,numeric"`
	Env      string `validate:"oneof=development production"`
	LogLevel string `validate:"oneof=debug info warn error"`
	LogFile  string

	RemoteBaseURL     string `validate:"required,url"`
	RemoteAccessToken string
	RemoteTimeout     time.Duration `validate:"gt=0"`

	FullRefreshInterval  time.Duration `validate:"gt=0"`
	LightRefreshInterval time.Duration `validate:"gt=0"`
	LightRefreshSample   int           `validate:"gte=1"`
	FetchConcurrency     int           `validate:"gte=0"`
	DedupePosts          bool

	RedisAddr        string `validate:"omitempty,hostname_port"`
	RedisPassword    string
	RedisDB          int           `validate:"gte=0"`
	UsersSnapshotTTL time.Duration `validate:"gte=0"`

	CORSAllowedOrigins []string `validate:"dive,required"`
}

// Init بارگذاری .env؛ اگر فایل وجود نداشته باشد false برمی‌گرداند
func Init() bool {
	return godotenv.Load() == nil
}

// Load خواندن تنظیمات از محیط و اعتبارسنجی آن‌ها.
// حتی در صورت خطا Settings پرشده برگردانده می‌شود تا logger ساخته شود.
func Load() (Settings, error) {
	s := Settings{
		Port:     getenv("PORT", "3000"),
		Env:      getenv("APP_ENV", EnvDevelopment),
		LogLevel: strings.ToLower(getenv("LOG_LEVEL", "info")),
		LogFile:  os.Getenv("LOG_FILE"),

		RemoteBaseURL:     getenv("REMOTE_BASE_URL", defaultRemoteBaseURL),
		RemoteAccessToken: os.Getenv("REMOTE_ACCESS_TOKEN"),
		RemoteTimeout:     getenvDuration("REMOTE_TIMEOUT", 10*time.Second),

		FullRefreshInterval:  getenvDuration("FULL_REFRESH_INTERVAL", 5*time.Minute),
		LightRefreshInterval: getenvDuration("LIGHT_REFRESH_INTERVAL", 60*time.Second),
		LightRefreshSample:   getenvInt("LIGHT_REFRESH_SAMPLE", 5),
		FetchConcurrency:     getenvInt("FETCH_CONCURRENCY", 0),
		DedupePosts:          getenvBool("DEDUPE_POSTS", false),

		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		RedisDB:          getenvInt("REDIS_DB", 0),
		UsersSnapshotTTL: getenvDuration("USERS_SNAPSHOT_TTL", 0),

		CORSAllowedOrigins: splitList(getenv("CORS_ALLOWED_ORIGINS", "*")),
	}

	if err := validator.New().Struct(s); err != nil {
		return s, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if iv, err := strconv.Atoi(v); err == nil {
			return iv
		}
	}
	return def
}

func getenvBool(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getenvDuration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
