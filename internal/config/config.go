package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port        string
	Environment string
	DatabaseURL string
	JWKSURL     string
	CORSOrigins string
	// Blob storage
	BlobBackend   string // "s3", "filesystem" or "memory"
	S3Bucket      string
	S3Region      string
	PublicBaseURL string // base URL files are served from
	FSStorageRoot string // root directory for the filesystem backend
	// Insight configuration
	OpenAIAPIKey      string
	InsightProvider   string // "openai" or "static"
	InsightModel      string
	InsightMaxTokens  int
	MigrateOnStart    bool
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: env,
		DatabaseURL: getEnv("DATABASE_URL", ""),
		JWKSURL:     getEnv("AUTH_JWKS_URL", ""),
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000"),

		BlobBackend:   getEnv("BLOB_BACKEND", "filesystem"),
		S3Bucket:      getEnv("S3_BUCKET", ""),
		S3Region:      getEnv("S3_REGION", ""),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", ""),
		FSStorageRoot: getEnv("FS_STORAGE_ROOT", "./data/blobs"),

		OpenAIAPIKey:     getEnv("OPENAI_API_KEY", ""),
		InsightProvider:  getEnv("INSIGHT_PROVIDER", getDefaultProvider(env)),
		InsightModel:     getEnv("INSIGHT_MODEL", "gpt-4o-mini"),
		InsightMaxTokens: getEnvInt("INSIGHT_MAX_TOKENS", 120),
		MigrateOnStart:   getEnv("MIGRATE_ON_START", "true") == "true",
	}
}

// getDefaultProvider keeps dev environments off the paid API unless an
// explicit provider is configured
func getDefaultProvider(env string) string {
	if env == "prod" {
		return "openai"
	}
	return "static"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
