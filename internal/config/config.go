package config

import (
	"os"
	"strconv"
	"strings"
)

// Record store backends selectable with RECORD_STORE.
const (
	RecordStoreMemory   = "memory"
	RecordStoreDynamoDB = "dynamodb"
	RecordStorePostgres = "postgres"
)

type Config struct {
	Server      ServerConfig
	Logger      LoggerConfig
	JWT         JWTConfig
	RecordStore string
	AWS         AWSConfig
	Postgres    PostgresConfig
	Redis       RedisConfig
	Archive     ArchiveConfig
	Attom       AttomConfig
	BatchNodeID int64
}

// ServerConfig holds the HTTP listener settings. RequestsPerSec <= 0 turns the
// per-owner rate limit off.
type ServerConfig struct {
	AppEnv         string
	Port           string
	RequestsPerSec float64
	Burst          int
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type JWTConfig struct {
	SecretKey string
}

// AWSConfig is shared by the DynamoDB record store and the S3 archive.
// Endpoints are only set for local emulators.
type AWSConfig struct {
	Region           string
	AccessKeyID      string
	SecretAccessKey  string
	DynamoDBEndpoint string
	S3Endpoint       string
	TablePrefix      string
}

type PostgresConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
	ConnMaxIdleTime int
}

// RedisConfig enables persisted zone rules when Addr is set.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	RulesKey string
}

// ArchiveConfig enables the S3 upload archive when Bucket is set.
type ArchiveConfig struct {
	Bucket string
	Prefix string
}

// AttomConfig configures the property data lookup. An empty APIKey leaves
// enrichment unconfigured; every lookup then fails.
type AttomConfig struct {
	BaseURL        string
	APIKey         string
	RequestsPerSec float64
}

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv:         getEnv("APP_ENV", "dev"),
			Port:           getEnv("PORT", "8080"),
			RequestsPerSec: getEnvFloat("HTTP_REQUESTS_PER_SEC", 20),
			Burst:          getEnvInt("HTTP_BURST", 40),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET_KEY", "your-secret-key-change-this-in-prod"),
		},
		RecordStore: strings.ToLower(getEnv("RECORD_STORE", RecordStoreMemory)),
		AWS: AWSConfig{
			Region:           getEnv("AWS_REGION", "us-east-1"),
			AccessKeyID:      getEnv("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey:  getEnv("AWS_SECRET_ACCESS_KEY", "local"),
			DynamoDBEndpoint: getEnv("DYNAMODB_ENDPOINT", ""),
			S3Endpoint:       getEnv("S3_ENDPOINT", ""),
			TablePrefix:      getEnv("DYNAMODB_TABLE_PREFIX", ""),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "localhost"),
			Port:            getEnv("POSTGRES_PORT", "5432"),
			User:            getEnv("POSTGRES_USER", "servicescale"),
			Password:        getEnv("POSTGRES_PASSWORD", "servicescale"),
			DBName:          getEnv("POSTGRES_DB", "servicescale"),
			SSLMode:         getEnv("POSTGRES_SSLMODE", "disable"),
			MaxOpenConns:    getEnvInt("POSTGRES_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("POSTGRES_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvInt("POSTGRES_CONN_MAX_LIFETIME", 300),
			ConnMaxIdleTime: getEnvInt("POSTGRES_CONN_MAX_IDLE_TIME", 60),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			RulesKey: getEnv("REDIS_RULES_KEY", "servicescale:hvac-zone-rules"),
		},
		Archive: ArchiveConfig{
			Bucket: getEnv("UPLOAD_ARCHIVE_BUCKET", ""),
			Prefix: getEnv("UPLOAD_ARCHIVE_PREFIX", "uploads"),
		},
		Attom: AttomConfig{
			BaseURL:        getEnv("ATTOM_BASE_URL", "https://api.gateway.attomdata.com"),
			APIKey:         getEnv("ATTOM_API_KEY", ""),
			RequestsPerSec: getEnvFloat("ATTOM_REQUESTS_PER_SEC", 0),
		},
		BatchNodeID: int64(getEnvInt("BATCH_ID_NODE", 1)),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
