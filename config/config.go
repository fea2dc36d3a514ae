package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/CSCI4830-UNO/PetChart/internal/infrastructure/database"
	"github.com/CSCI4830-UNO/PetChart/internal/infrastructure/minio"
	"github.com/CSCI4830-UNO/PetChart/internal/infrastructure/redis"
	"github.com/CSCI4830-UNO/PetChart/pkg/logger"
)

// Config represents the configs used by services on system.
type Config struct {
	Environment string             `yaml:"environment"`
	HTTP        HTTPConfig         `yaml:"http"`
	MinIOClient minio.ClientConfig `yaml:"minio_client"`
	BlobStore   minio.StoreConfig  `yaml:"blob_store"`
	DBConfig    database.Config    `yaml:"db_config"`
	RedisConfig redis.Config       `yaml:"redis_config"`
	Upload      UploadConfig       `yaml:"upload"`
	Logger      logger.Config      `yaml:"logger"`

	SessionSecret string
}

type HTTPConfig struct {
	Address   string `yaml:"address"`
	PublicURL string `yaml:"public_url"`
}

// UploadConfig is the size/type policy enforced before any store write.
type UploadConfig struct {
	MaxBytes          int64  `yaml:"max_bytes"`
	AllowedTypePrefix string `yaml:"allowed_type_prefix"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		if err := godotenv.Load(); err != nil {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	config.MinIOClient.AccessKey = os.Getenv("MINIO_ROOT_USER")
	config.MinIOClient.SecretKey = os.Getenv("MINIO_ROOT_PASSWORD")
	config.DBConfig.URI = os.Getenv("DATABASE_URI")
	config.RedisConfig.URI = os.Getenv("REDIS_URI")
	config.SessionSecret = os.Getenv("SESSION_SECRET")

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address is required")
	}
	if c.BlobStore.Bucket == "" {
		return errors.New("blob_store.bucket is required")
	}
	// an empty HMAC key would verify any forged session token
	if c.SessionSecret == "" {
		return errors.New("SESSION_SECRET is required")
	}

	return nil
}
