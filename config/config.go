package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds process configuration read from the environment.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Media    MediaConfig
	Log      LogConfig
}

type AppConfig struct {
	Name string
	Env  string // development, production
	Port string
}

type LogConfig struct {
	Mode string
}

type DatabaseConfig struct {
	Driver   string // postgres, mysql, sqlite
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	// DSN overrides the individual fields when set. For sqlite it is the file path.
	DSN string
}

type MediaConfig struct {
	Driver     string // cloudinary, minio, gcs, memory
	Presets    PresetConfig
	Cloudinary CloudinaryConfig
	MinIO      MinIOConfig
	GCS        GCSConfig
}

// PresetConfig names the upload preset used for each media kind.
type PresetConfig struct {
	ArticleCaption string
	AuthorPhoto    string
}

type CloudinaryConfig struct {
	Cloud  string
	Key    string
	Secret string
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type GCSConfig struct {
	Bucket        string
	PublicBaseURL string
}

func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "CMS API"),
			Env:  getEnv("APP_ENV", "development"),
			Port: getEnv("PORT", "8080"),
		},
		Log: LogConfig{
			Mode: getEnv("LOG_MODE", getEnv("APP_ENV", "development")),
		},
		Database: DatabaseConfig{
			Driver:   strings.ToLower(getEnv("DB_DRIVER", "postgres")),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "cms"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			DSN:      getEnv("DB_DSN", ""),
		},
		Media: MediaConfig{
			Driver: strings.ToLower(getEnv("MEDIA_DRIVER", "cloudinary")),
			Presets: PresetConfig{
				ArticleCaption: getEnv("MEDIA_PRESET_ARTICLE_CAPTION", "article_caption"),
				AuthorPhoto:    getEnv("MEDIA_PRESET_AUTHOR_PHOTO", "author_photo"),
			},
			Cloudinary: CloudinaryConfig{
				Cloud:  getEnv("CLOUDINARY_CLOUD", ""),
				Key:    getEnv("CLOUDINARY_KEY", ""),
				Secret: getEnv("CLOUDINARY_SECRET", ""),
			},
			MinIO: MinIOConfig{
				Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
				AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
				SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
				Bucket:    getEnv("MINIO_BUCKET", "cms-media"),
				UseSSL:    getEnvBool("MINIO_USE_SSL", false),
			},
			GCS: GCSConfig{
				Bucket:        getEnv("GCS_BUCKET", ""),
				PublicBaseURL: getEnv("GCS_PUBLIC_BASE_URL", ""),
			},
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres", "mysql":
	case "sqlite":
		if c.Database.DSN == "" {
			return fmt.Errorf("DB_DSN must be set for the sqlite driver")
		}
	default:
		return fmt.Errorf("unknown DB_DRIVER %q", c.Database.Driver)
	}

	switch c.Media.Driver {
	case "cloudinary":
		if c.Media.Cloudinary.Cloud == "" || c.Media.Cloudinary.Key == "" || c.Media.Cloudinary.Secret == "" {
			return fmt.Errorf("CLOUDINARY_CLOUD, CLOUDINARY_KEY and CLOUDINARY_SECRET must be set")
		}
	case "minio":
		if c.Media.MinIO.Bucket == "" {
			return fmt.Errorf("MINIO_BUCKET must be set")
		}
	case "gcs":
		if c.Media.GCS.Bucket == "" {
			return fmt.Errorf("GCS_BUCKET must be set")
		}
	case "memory":
		if c.App.Env == "production" {
			return fmt.Errorf("MEDIA_DRIVER=memory is not allowed in production")
		}
	default:
		return fmt.Errorf("unknown MEDIA_DRIVER %q", c.Media.Driver)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
