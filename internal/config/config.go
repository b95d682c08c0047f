package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort       = 5000
	defaultEnv        = "development"
	defaultDBHost     = "127.0.0.1"
	defaultDBPort     = 3306
	defaultDBUser     = "root"
	defaultDBName     = "roar"
	defaultDBCharset  = "utf8mb4"
	defaultRedisURL   = "redis://localhost:6379/0"
	defaultStaticDir  = "./static"
	defaultUploadsDir = "./static/uploads"
)

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Port           int            `yaml:"port"`
	DSN            string         `yaml:"dsn"` // MySQL DSN; overrides Database when set
	Database       DatabaseConfig `yaml:"database"`
	RedisURL       string         `yaml:"redis_url"`
	Env            string         `yaml:"env"` // "development" | "production"
	JWTSecret      string         `yaml:"jwt_secret"`
	AllowedOrigins []string       `yaml:"allowed_origins"`
	Paths          PathsConfig    `yaml:"paths"`
	S3             S3Config       `yaml:"s3"`
}

// DatabaseConfig builds the MySQL DSN when no explicit dsn is given.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Charset  string `yaml:"charset"`
}

// PathsConfig locates local on-disk storage.
type PathsConfig struct {
	Static  string `yaml:"static"`
	Uploads string `yaml:"uploads"`
}

// S3Config enables object storage for uploads instead of the local
// uploads directory.
type S3Config struct {
	Enable          bool   `yaml:"enable"`
	Bucket          string `yaml:"bucket"`
	Region          string `yaml:"region"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	Endpoint        string `yaml:"endpoint"`
	PublicBaseURL   string `yaml:"public_base_url"`
}

// Load reads the YAML config at path and applies defaults. A missing file
// is not an error: the defaults describe a local development setup.
func Load(path string) (*AppConfig, error) {
	cfg := &AppConfig{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// fall through to defaults
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *AppConfig) applyDefaults() {
	if c.Port == 0 {
		c.Port = defaultPort
	}
	if c.Env == "" {
		c.Env = defaultEnv
	}
	if c.RedisURL == "" {
		c.RedisURL = defaultRedisURL
	}
	if c.Database.Host == "" {
		c.Database.Host = defaultDBHost
	}
	if c.Database.Port == 0 {
		c.Database.Port = defaultDBPort
	}
	if c.Database.User == "" {
		c.Database.User = defaultDBUser
	}
	if c.Database.Name == "" {
		c.Database.Name = defaultDBName
	}
	if c.Database.Charset == "" {
		c.Database.Charset = defaultDBCharset
	}
	if c.DSN == "" {
		c.DSN = fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local",
			c.Database.User, c.Database.Password,
			c.Database.Host, c.Database.Port,
			c.Database.Name, c.Database.Charset)
	}
	if c.Paths.Static == "" {
		c.Paths.Static = defaultStaticDir
	}
	if c.Paths.Uploads == "" {
		c.Paths.Uploads = defaultUploadsDir
	}
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool { return c.Env != "production" }
