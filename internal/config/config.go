package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Server    ServerConfig
	Admin     AdminConfig
	Session   SessionConfig
	Content   ContentConfig
	Assets    AssetsConfig
	SMTP      SMTPConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// AdminConfig describes the single administrative identity. PasswordSHA256 is
// the hex-encoded SHA-256 digest of the admin password; the plaintext is never
// stored. PathSegment is the secret URL segment the login page lives under.
type AdminConfig struct {
	Email          string
	PasswordSHA256 string
	PathSegment    string
}

type SessionConfig struct {
	TTL time.Duration
}

// ContentConfig selects the content document backend. FilePath is always set;
// when MongoURI is non-empty the Mongo repository is used instead of the file.
type ContentConfig struct {
	FilePath      string
	MongoURI      string
	MongoDatabase string
	MongoTimeout  time.Duration
}

type AssetsConfig struct {
	Dir         string
	DefaultLogo string
	MinIO       MinIOConfig
}

// MinIOConfig holds optional object-storage connection settings for assets.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
}

type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Recipient string
	Timeout   time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type RateLimitConfig struct {
	Enabled       bool
	UseRedis      bool
	RPS           float64
	Burst         int
	WindowSeconds int
}

// defaultPasswordDigest is SHA-256("Admin@123"), the out-of-the-box credential.
// Deployments must override ADMIN_PASSWORD_SHA256.
const defaultPasswordDigest = "e86f78a8a3caf0b60d8e74e5942aa6d86dc150cd3c03338aef25b7d2d7e3acc7"

// LoadConfig loads configuration from environment variables and .env file
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "3000")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_ENVIRONMENT", "development")
	viper.SetDefault("ADMIN_EMAIL", "admin@chinarfoundation.org")
	viper.SetDefault("ADMIN_PASSWORD_SHA256", defaultPasswordDigest)
	viper.SetDefault("ADMIN_PATH", "9374205")
	viper.SetDefault("SESSION_TTL_MINUTES", 120)
	viper.SetDefault("CONTENT_FILE", "config/content.json")
	viper.SetDefault("MONGODB_DATABASE", "charity_site")
	viper.SetDefault("MONGODB_TIMEOUT", 10)
	viper.SetDefault("ASSETS_DIR", "public/images")
	viper.SetDefault("DEFAULT_LOGO", "logo.png")
	viper.SetDefault("MINIO_BUCKET", "charity-assets")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_TIMEOUT_SECONDS", 10)
	viper.SetDefault("RATE_LIMIT_RPS", 5.0)
	viper.SetDefault("RATE_LIMIT_BURST", 10)
	viper.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 1)

	cfg := &Config{
		Server: ServerConfig{
			Port:         viper.GetString("SERVER_PORT"),
			Host:         viper.GetString("SERVER_HOST"),
			Environment:  viper.GetString("SERVER_ENVIRONMENT"),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Admin: AdminConfig{
			Email:          viper.GetString("ADMIN_EMAIL"),
			PasswordSHA256: viper.GetString("ADMIN_PASSWORD_SHA256"),
			PathSegment:    viper.GetString("ADMIN_PATH"),
		},
		Session: SessionConfig{
			TTL: time.Duration(viper.GetInt("SESSION_TTL_MINUTES")) * time.Minute,
		},
		Content: ContentConfig{
			FilePath:      viper.GetString("CONTENT_FILE"),
			MongoURI:      viper.GetString("MONGODB_URI"),
			MongoDatabase: viper.GetString("MONGODB_DATABASE"),
			MongoTimeout:  time.Duration(viper.GetInt("MONGODB_TIMEOUT")) * time.Second,
		},
		Assets: AssetsConfig{
			Dir:         viper.GetString("ASSETS_DIR"),
			DefaultLogo: viper.GetString("DEFAULT_LOGO"),
			MinIO: MinIOConfig{
				Endpoint:  viper.GetString("MINIO_ENDPOINT"),
				AccessKey: viper.GetString("MINIO_ACCESS_KEY"),
				SecretKey: viper.GetString("MINIO_SECRET_KEY"),
				UseSSL:    viper.GetBool("MINIO_USE_SSL"),
				Bucket:    viper.GetString("MINIO_BUCKET"),
			},
		},
		SMTP: SMTPConfig{
			Host:      viper.GetString("SMTP_HOST"),
			Port:      viper.GetInt("SMTP_PORT"),
			Username:  viper.GetString("SMTP_USER"),
			Password:  viper.GetString("SMTP_PASS"),
			Recipient: viper.GetString("RECIPIENT_EMAIL"),
			Timeout:   time.Duration(viper.GetInt("SMTP_TIMEOUT_SECONDS")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       0,
		},
		RateLimit: RateLimitConfig{
			Enabled:       viper.GetBool("RATE_LIMIT_ENABLED"),
			UseRedis:      viper.GetBool("RATE_LIMIT_USE_REDIS"),
			RPS:           viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:         viper.GetInt("RATE_LIMIT_BURST"),
			WindowSeconds: viper.GetInt("RATE_LIMIT_WINDOW_SECONDS"),
		},
	}

	return cfg, nil
}
