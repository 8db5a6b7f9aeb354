package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Server captures process level configuration.
type Server struct {
	Addr          string        `env:"DS_ADDR" envDefault:":8080"`
	LogLevel      string        `env:"DS_LOG_LEVEL" envDefault:"info"`
	LogFormat     string        `env:"DS_LOG_FORMAT" envDefault:"json"`
	JWTSigningKey string        `env:"DS_JWT_SIGNING_KEY" envDefault:"dev-secret-key-change-in-production"`
	JWTIssuer     string        `env:"DS_JWT_ISSUER" envDefault:"digital-society"`
	TxTimeout     time.Duration `env:"DS_TX_TIMEOUT" envDefault:"5s"`
	OTelEndpoint  string        `env:"DS_OTEL_ENDPOINT"`

	Database     Database
	Redis        RedisConfig
	Kafka        Kafka
	Blob         Blob
	AWS          AWS
	FaceDetector FaceDetector
}

// Database is empty when the in-memory stores should be used.
type Database struct {
	URL             string        `env:"DS_DATABASE_URL"`
	MaxOpenConns    int           `env:"DS_DATABASE_MAX_OPEN_CONNS" envDefault:"20"`
	MaxIdleConns    int           `env:"DS_DATABASE_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DS_DATABASE_CONN_MAX_LIFETIME" envDefault:"30m"`
}

// RedisConfig configures the optional face-detection cache backend.
type RedisConfig struct {
	URL          string        `env:"DS_REDIS_URL"`
	PoolSize     int           `env:"DS_REDIS_POOL_SIZE" envDefault:"10"`
	MinIdleConns int           `env:"DS_REDIS_MIN_IDLE_CONNS" envDefault:"2"`
	DialTimeout  time.Duration `env:"DS_REDIS_DIAL_TIMEOUT" envDefault:"5s"`
	ReadTimeout  time.Duration `env:"DS_REDIS_READ_TIMEOUT" envDefault:"3s"`
	WriteTimeout time.Duration `env:"DS_REDIS_WRITE_TIMEOUT" envDefault:"3s"`
}

// Kafka brokers are empty when the notification relay is disabled.
type Kafka struct {
	Brokers           []string      `env:"DS_KAFKA_BROKERS" envSeparator:","`
	NotificationTopic string        `env:"DS_KAFKA_NOTIFICATION_TOPIC" envDefault:"citizen-notifications"`
	RelayInterval     time.Duration `env:"DS_RELAY_INTERVAL" envDefault:"2s"`
	RelayBatchSize    int           `env:"DS_RELAY_BATCH_SIZE" envDefault:"100"`
}

// Blob selects S3 when a bucket is set, the local directory otherwise.
type Blob struct {
	Dir      string `env:"DS_BLOB_DIR" envDefault:"./data/blobs"`
	S3Bucket string `env:"DS_S3_BUCKET"`
}

// AWS holds static credentials shared by Rekognition and S3.
type AWS struct {
	Region    string `env:"DS_AWS_REGION" envDefault:"eu-west-2"`
	AccessKey string `env:"DS_AWS_ACCESS_KEY"`
	SecretKey string `env:"DS_AWS_SECRET_KEY"`
}

// FaceDetector tunes the detection result cache.
type FaceDetector struct {
	Enabled       bool          `env:"DS_FACE_DETECTION_ENABLED" envDefault:"true"`
	CacheTTL      time.Duration `env:"DS_FACE_DETECTION_CACHE_TTL" envDefault:"10m"`
	CacheMaxBytes int64         `env:"DS_FACE_DETECTION_CACHE_MAX_BYTES" envDefault:"16777216"`
}

// FromEnv builds the configuration from environment variables so main stays lean.
func FromEnv() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.JWTSigningKey == "" {
		return Server{}, fmt.Errorf("DS_JWT_SIGNING_KEY must not be empty")
	}
	return cfg, nil
}

// UsePostgres reports whether durable stores are configured.
func (s Server) UsePostgres() bool { return s.Database.URL != "" }

// UseKafka reports whether the notification relay should run.
func (s Server) UseKafka() bool { return len(s.Kafka.Brokers) > 0 }
