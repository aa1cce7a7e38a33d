// Package config lee la configuración del proceso desde el entorno.
// Un archivo .env (opcional) se carga primero; las variables ya definidas tienen prioridad.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// DBDSN vacío => store en memoria.
	DBDSN        string
	StoreTimeout time.Duration

	Timezone          *time.Location
	TimeSourceURL     string
	TimeSourceTimeout time.Duration

	// AuthJWTSecret vacío => modo dev (header X-Debug-User-ID).
	AuthJWTSecret string
	// Alternativa a JWT local: servicio de identidad externo.
	AuthVerifyURL    string
	AuthVerifyAPIKey string

	OwnerDirectoryURL    string
	OwnerDirectoryAPIKey string

	// UploadDir vacío => no se aceptan fotos.
	UploadDir string

	RateLimitRPS   float64
	RateLimitBurst int

	LogLevel  string
	LogFormat string
	AppName   string
}

// Load lee .env (si existe) y el entorno. files permite indicar otros .env (tests).
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv arma la config a partir de getenv (inyectable en tests).
func FromEnv(getenv func(string) string) (Config, error) {
	r := reader{getenv: getenv}

	cfg := Config{
		Port:                 r.str("PORT", "8080"),
		DBDSN:                r.str("DB_DSN", ""),
		StoreTimeout:         r.duration("STORE_TIMEOUT", 5*time.Second),
		TimeSourceURL:        r.str("TIME_SOURCE_URL", ""),
		TimeSourceTimeout:    r.duration("TIME_SOURCE_TIMEOUT", 2*time.Second),
		AuthJWTSecret:        r.str("AUTH_JWT_SECRET", ""),
		AuthVerifyURL:        r.str("AUTH_VERIFY_URL", ""),
		AuthVerifyAPIKey:     r.str("AUTH_VERIFY_API_KEY", ""),
		OwnerDirectoryURL:    r.str("OWNER_DIRECTORY_URL", ""),
		OwnerDirectoryAPIKey: r.str("OWNER_DIRECTORY_API_KEY", ""),
		UploadDir:            r.str("UPLOAD_DIR", ""),
		RateLimitRPS:         r.float("RATE_LIMIT_RPS", 0),
		RateLimitBurst:       r.int("RATE_LIMIT_BURST", 20),
		LogLevel:             r.str("LOG_LEVEL", "info"),
		LogFormat:            r.str("LOG_FORMAT", "text"),
		AppName:              r.str("APP_NAME", "shelter-care"),
	}

	tz := r.str("TIMEZONE", "Local")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		r.fail("TIMEZONE", err)
	}
	cfg.Timezone = loc

	if len(r.errs) > 0 {
		return Config{}, errors.Join(r.errs...)
	}
	return cfg, nil
}

// Addr es la dirección de escucha del server.
func (c Config) Addr() string { return ":" + c.Port }

type reader struct {
	getenv func(string) string
	errs   []error
}

func (r *reader) fail(key string, err error) {
	r.errs = append(r.errs, fmt.Errorf("config %s: %w", key, err))
}

func (r *reader) str(key, def string) string {
	if v := strings.TrimSpace(r.getenv(key)); v != "" {
		return v
	}
	return def
}

func (r *reader) duration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(r.getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		r.fail(key, fmt.Errorf("invalid duration %q", v))
		return def
	}
	return d
}

func (r *reader) int(key string, def int) int {
	v := strings.TrimSpace(r.getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.fail(key, err)
		return def
	}
	return n
}

func (r *reader) float(key string, def float64) float64 {
	v := strings.TrimSpace(r.getenv(key))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		r.fail(key, fmt.Errorf("invalid number %q", v))
		return def
	}
	return f
}
