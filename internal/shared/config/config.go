package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// DefaultMaxUploadBytes caps resume uploads at 10 MiB unless overridden.
const DefaultMaxUploadBytes int64 = 10 << 20

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string
	MongoURI        string
	MongoDatabase   string
	MongoCollection string
	MaxUploadBytes  int64
	NERBackend      string
	NERModelDir     string
	NERModelURL     string
	NERServiceURL   string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	mongoURI := os.Getenv("MONGODB_URI")

	if env == "production" && mongoURI == "" {
		log.Printf("MONGODB_URI is required in production")
	}

	return Config{
		Port:            getEnv("PORT", "8080"),
		Env:             env,
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		MongoURI:        mongoURI,
		MongoDatabase:   getEnv("MONGODB_DATABASE", "resume_parser"),
		MongoCollection: getEnv("MONGODB_COLLECTION", "parsed_resumes"),
		MaxUploadBytes:  parseBytes(getEnv("MAX_UPLOAD_BYTES", ""), DefaultMaxUploadBytes),
		NERBackend:      normalizeBackend(getEnv("NER_BACKEND", "prose")),
		NERModelDir:     getEnv("NER_MODEL_DIR", ""),
		NERModelURL:     getEnv("NER_MODEL_URL", ""),
		NERServiceURL:   getEnv("NER_SERVICE_URL", ""),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func parseBytes(raw string, def int64) int64 {
	if strings.TrimSpace(raw) == "" {
		return def
	}
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || n <= 0 {
		log.Printf("ignoring invalid MAX_UPLOAD_BYTES %q", raw)
		return def
	}
	return n
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}

func normalizeBackend(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "http":
		return "http"
	default:
		return "prose"
	}
}

// IsDevLike reports whether the environment allows in-memory fallbacks.
func IsDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
