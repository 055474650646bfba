package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	AppEnv  string
	GinMode string

	// Backend API that owns bookings, admins and employees.
	APIURL     string
	APITimeout time.Duration

	SessionSecret string
	SessionTTL    time.Duration
	WizardTTL     time.Duration

	CORSAllowedOrigins []string
	WhatsAppNumber     string

	LogLevel  string
	LogFormat string

	R2 R2Env
}

// R2Env is optional; the gallery falls back to the bundled catalogue when unset.
type R2Env struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	PublicBaseURL string
	Prefix        string
}

func (r R2Env) Enabled() bool {
	return r.Endpoint != "" && r.AccessKey != "" && r.SecretKey != "" && r.Bucket != ""
}

func (e Env) Production() bool {
	return strings.EqualFold(e.AppEnv, "production")
}

const devSessionSecret = "change-me-modern-band-session"

// ErrSessionSecretRequired is returned in production when SESSION_SECRET is unset;
// the development fallback would let anyone mint admin sessions.
var ErrSessionSecretRequired = errors.New("SESSION_SECRET must be set in production")

// LoadEnv reads configuration from the process environment, loading .env first outside production.
func LoadEnv() (Env, error) {
	if !strings.EqualFold(os.Getenv("APP_ENV"), "production") {
		_ = godotenv.Load()
	}

	env := Env{
		AppAddr:    getenv("APP_ADDR", ":3000"),
		AppEnv:     getenv("APP_ENV", "development"),
		GinMode:    getenv("GIN_MODE", ""),
		APIURL:     strings.TrimRight(getenv("API_URL", "http://localhost:8081/api"), "/"),
		APITimeout: getDuration("API_TIMEOUT", 15*time.Second),

		SessionSecret: getenv("SESSION_SECRET", devSessionSecret),
		SessionTTL:    getDuration("SESSION_TTL", 12*time.Hour),
		WizardTTL:     getDuration("WIZARD_TTL", 2*time.Hour),

		CORSAllowedOrigins: getList("CORS_ALLOWED_ORIGINS", []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
		}),
		WhatsAppNumber: getenv("WHATSAPP_NUMBER", "919412308386"),

		LogLevel:  getenv("LOG_LEVEL", "info"),
		LogFormat: getenv("LOG_FORMAT", "text"),

		R2: R2Env{
			Endpoint:      getenv("R2_ENDPOINT", ""),
			AccessKey:     getenv("R2_ACCESS_KEY", ""),
			SecretKey:     getenv("R2_SECRET_KEY", ""),
			Bucket:        getenv("R2_BUCKET_NAME", ""),
			PublicBaseURL: strings.TrimRight(getenv("R2_PUBLIC_BASE_URL", ""), "/"),
			Prefix:        getenv("GALLERY_PREFIX", "gallery/"),
		},
	}
	if env.Production() && env.SessionSecret == devSessionSecret {
		return env, ErrSessionSecretRequired
	}
	return env, nil
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func getDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func getList(key string, def []string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	out := []string{}
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
