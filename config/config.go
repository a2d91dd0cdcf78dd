package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServicePort    string
	MetricsPort    string
	Environment    string
	RequestTimeout time.Duration
	MongoDBConfig  MongoDBConfig
	JWTSecret      string
	S3Config       S3Config
	TextGenConfig  TextGenConfig
}

type MongoDBConfig struct {
	URI    string
	DBName string
}

type S3Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
}

type TextGenConfig struct {
	BaseURL string
	APIKey  string
	Referer string
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort: os.Getenv("SERVICE_PORT"),
		MetricsPort: os.Getenv("METRICS_PORT"),
		Environment: os.Getenv("ENVIRONMENT"),
		MongoDBConfig: MongoDBConfig{
			URI:    os.Getenv("MONGODB_URI"),
			DBName: os.Getenv("MONGODB_DB_NAME"),
		},
		JWTSecret: os.Getenv("JWT_SECRET"),
		S3Config: S3Config{
			Region:          os.Getenv("AWS_REGION"),
			Bucket:          os.Getenv("AWS_S3_BUCKET"),
			AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		},
		TextGenConfig: TextGenConfig{
			BaseURL: os.Getenv("TEXTGEN_BASE_URL"),
			APIKey:  os.Getenv("TEXTGEN_API_KEY"),
			Referer: os.Getenv("TEXTGEN_REFERER"),
		},
	}

	timeoutSeconds, err := strconv.Atoi(os.Getenv("REQUEST_TIMEOUT_SECONDS"))
	if err != nil || timeoutSeconds <= 0 {
		timeoutSeconds = 10
	}
	conf.RequestTimeout = time.Duration(timeoutSeconds) * time.Second

	return &conf
}
