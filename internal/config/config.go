package config

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/ZidanKhofifi/hutang/internal/config/connections/mongo"
	"github.com/ZidanKhofifi/hutang/internal/config/connections/s3"

	"github.com/joho/godotenv"
)

type Config struct {
	Port  string
	Mongo *mongo.Mongo
	S3    *s3.S3
}

func Init(ctx context.Context) *Config {
	_ = godotenv.Load()
	port := getenv("SERVER_PORT", "3000")

	mg, err := mongo.NewConnection(ctx, mongo.ConnectionInfo{
		URI:        os.Getenv("MONGO_URI"),
		Scheme:     getenv("MONGO_SCHEME", "mongodb"),
		User:       os.Getenv("MONGO_USER"),
		Password:   os.Getenv("MONGO_PASSWORD"),
		Host:       getenv("MONGO_HOST", "127.0.0.1"),
		Port:       getenv("MONGO_PORT", "27017"),
		DB:         getenv("MONGO_DB", "utang_db"),
		AuthSource: os.Getenv("MONGO_AUTH_SOURCE"),
	})
	if err != nil {
		log.Fatal("Mongo connect error:", err)
	}

	s3c, err := s3.NewConnection(s3.ConnectionInfo{
		Endpoint:  getenv("AWS_ENDPOINT", "localhost:9000"),
		AccessKey: getenv("AWS_ACCESS_KEY_ID", "minioadmin"),
		SecretKey: getenv("AWS_SECRET_ACCESS_KEY", "minioadmin"),
		Region:    getenv("AWS_DEFAULT_REGION", "us-east-1"),
		Bucket:    getenv("AWS_BUCKET", "utang-imports"),
		UseSSL:    getenv("AWS_USE_SSL", "false") == "true",
	})
	if err != nil {
		log.Fatal("S3 connect error:", err)
	}

	return &Config{
		Port:  port,
		Mongo: mg,
		S3:    s3c,
	}
}

func (c *Config) CheckConnections(ctx context.Context) error {
	var errs []error

	if c.Mongo == nil || c.Mongo.Client == nil {
		errs = append(errs, errors.New("mongo not initialized"))
	} else if err := c.Mongo.Client.Ping(ctx, nil); err != nil {
		errs = append(errs, fmt.Errorf("mongo ping failed: %w", err))
	}

	if c.S3 == nil || c.S3.Client == nil {
		errs = append(errs, errors.New("s3 not initialized"))
	} else if err := c.S3.EnsureBucket(ctx); err != nil {
		errs = append(errs, fmt.Errorf("s3 bucket check failed: %w", err))
	}

	if len(errs) == 0 {
		return nil
	}

	return errors.Join(errs...)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
