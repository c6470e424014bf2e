package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"snapshare/internal/application/worker"
	"snapshare/internal/infrastructure/broker"
	"snapshare/internal/infrastructure/database"
	"snapshare/internal/infrastructure/gridfs"
	"snapshare/internal/infrastructure/minio"
	"snapshare/internal/presentation/middleware"
	"snapshare/pkg/logger"
)

const (
	BackendMinIO  = "minio"
	BackendGridFS = "gridfs"

	cutoffLayout = "2006-01-02"
)

// Config represents the configs used by services on system.
type Config struct {
	Environment     string                 `yaml:"environment"`
	Default         DefaultConfig          `yaml:"default"`
	Upload          UploadConfig           `yaml:"upload"`
	Serve           ServeConfig            `yaml:"serve"`
	Storage         StorageConfig          `yaml:"storage"`
	MinIOClient     minio.ClientConfig     `yaml:"minio_client"`
	MinIOUploader   minio.StoreConfig      `yaml:"minio_uploader"`
	DBConfig        database.Config        `yaml:"db_config"`
	GridFS          gridfs.Config          `yaml:"gridfs"`
	BrokerConfig    broker.Config          `yaml:"redis_broker_config"`
	PublisherConfig broker.PublisherConfig `yaml:"publisher_config"`
	Worker          worker.Config          `yaml:"worker"`
	Admin           middleware.AdminConfig `yaml:"admin"`
	HTTP            HTTPConfig             `yaml:"http"`
	Logger          logger.Config          `yaml:"logger"`
}

type DefaultConfig struct {
	Address       string `yaml:"address"`
	PublicAddress string `yaml:"public_address"` // base of photo URLs handed to clients
}

type UploadConfig struct {
	Cutoff     string    `yaml:"cutoff"` // YYYY-MM-DD, UTC midnight; empty keeps uploads open
	CutoffTime time.Time `yaml:"-"`
}

type ServeConfig struct {
	DirectURLs bool `yaml:"direct_urls"`
}

type StorageConfig struct {
	Backend string `yaml:"backend"`
}

type HTTPConfig struct {
	BodyLimit       string   `yaml:"body_limit"`
	RateLimit       float64  `yaml:"rate_limit"`
	AllowOrigins    []string `yaml:"allow_origins"`
	ShutdownTimeout int64    `yaml:"shutdown_timeout_in_ms"`
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
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	config.MinIOClient.AccessKey = os.Getenv("MINIO_ROOT_USER")
	config.MinIOClient.SecretKey = os.Getenv("MINIO_ROOT_PASSWORD")
	config.DBConfig.URI = os.Getenv("DATABASE_URI")
	config.BrokerConfig.URI = os.Getenv("BROKER_URI")
	config.Admin.PasswordHash = os.Getenv("ADMIN_PASSWORD_HASH")

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

// basicCheck validates the basic stuff in config and fills defaults.
func (c *Config) basicCheck() error {
	if c.Default.Address == "" {
		return errors.New("default.address is required")
	}
	if c.Default.PublicAddress == "" {
		c.Default.PublicAddress = "http://" + c.Default.Address
	}

	if c.Upload.Cutoff != "" {
		t, err := time.ParseInLocation(cutoffLayout, c.Upload.Cutoff, time.UTC)
		if err != nil {
			return fmt.Errorf("upload.cutoff: %w", err)
		}
		c.Upload.CutoffTime = t
	}

	if c.DBConfig.URI == "" {
		return errors.New("DATABASE_URI is not set")
	}
	if c.DBConfig.DBName == "" {
		c.DBConfig.DBName = "snapshare"
	}

	switch c.Storage.Backend {
	case "":
		c.Storage.Backend = BackendMinIO

		fallthrough
	case BackendMinIO:
		if c.MinIOClient.AccessKey == "" || c.MinIOClient.SecretKey == "" {
			return errors.New("MINIO_ROOT_USER and MINIO_ROOT_PASSWORD are required for the minio backend")
		}
		if c.MinIOClient.Endpoint == "" || c.MinIOUploader.Bucket == "" {
			return errors.New("minio_client.endpoint and minio_uploader.bucket are required")
		}
	case BackendGridFS:
		if c.Serve.DirectURLs {
			return errors.New("serve.direct_urls needs a backend with public object URLs")
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}

	if c.BrokerConfig.URI != "" && (c.BrokerConfig.StreamName == "" || c.BrokerConfig.GroupName == "") {
		return errors.New("redis_broker_config needs stream_name and group_name")
	}

	if c.Admin.Username == "" {
		return errors.New("admin.username is required")
	}
	if c.Admin.PasswordHash == "" {
		return errors.New("ADMIN_PASSWORD_HASH is not set")
	}

	if c.HTTP.BodyLimit == "" {
		c.HTTP.BodyLimit = "50M"
	}
	if c.HTTP.RateLimit <= 0 {
		c.HTTP.RateLimit = 20
	}
	if len(c.HTTP.AllowOrigins) == 0 {
		c.HTTP.AllowOrigins = []string{"*"}
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		c.HTTP.ShutdownTimeout = 10000
	}

	return nil
}
