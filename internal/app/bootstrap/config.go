// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the Syneroa
// platform service. These are loaded via WAFFLE's config system with
// support for:
//   - Config files: mongo_uri, session_name, etc.
//   - Environment variables: SYNEROA_MONGO_URI, SYNEROA_SESSION_NAME, etc.
//   - Command-line flags: --mongo_uri, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "syneroa", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "syneroa-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},
	{Name: "session_ttl", Default: "720h", Desc: "Session lifetime (e.g., 720h, 24h)"},

	{Name: "admin_email", Default: "", Desc: "Email granted admin access regardless of account role"},

	// File storage for solution PDF attachments
	{Name: "storage_type", Default: "local", Desc: "Storage backend: 'local' or 's3'"},
	{Name: "storage_local_path", Default: "./uploads", Desc: "Local storage path for uploaded files"},
	{Name: "storage_local_url", Default: "/uploads", Desc: "URL prefix for serving local files"},

	// S3-compatible object storage (MinIO, AWS S3, ...)
	{Name: "s3_endpoint", Default: "", Desc: "S3-compatible endpoint (e.g., minio.internal:9000)"},
	{Name: "s3_access_key", Default: "", Desc: "S3 access key"},
	{Name: "s3_secret_key", Default: "", Desc: "S3 secret key"},
	{Name: "s3_bucket", Default: "syneroa-files", Desc: "S3 bucket name"},
	{Name: "s3_use_ssl", Default: true, Desc: "Use TLS for the S3 endpoint"},
	{Name: "s3_public_url", Default: "", Desc: "Public URL prefix for stored files (defaults to the endpoint)"},

	// Payments
	{Name: "stripe_secret_key", Default: "", Desc: "Stripe secret key (empty runs the in-memory fake processor)"},

	// Background work
	{Name: "challenge_sweep_interval", Default: "15m", Desc: "How often expired challenges are deactivated (0 disables)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, SYNEROA_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "SYNEROA", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),
		SessionTTL:    appValues.Duration("session_ttl", 30*24*time.Hour),

		AdminEmail: appValues.String("admin_email"),

		StorageType:      appValues.String("storage_type"),
		StorageLocalPath: appValues.String("storage_local_path"),
		StorageLocalURL:  appValues.String("storage_local_url"),

		S3Endpoint:  appValues.String("s3_endpoint"),
		S3AccessKey: appValues.String("s3_access_key"),
		S3SecretKey: appValues.String("s3_secret_key"),
		S3Bucket:    appValues.String("s3_bucket"),
		S3UseSSL:    appValues.Bool("s3_use_ssl"),
		S3PublicURL: appValues.String("s3_public_url"),

		StripeSecretKey: appValues.String("stripe_secret_key"),

		ChallengeSweepInterval: appValues.Duration("challenge_sweep_interval", 15*time.Minute),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation before any
// backends are connected.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	switch appCfg.StorageType {
	case "local":
	case "s3":
		if appCfg.S3Endpoint == "" {
			return fmt.Errorf("storage_type 's3' requires s3_endpoint")
		}
	default:
		return fmt.Errorf("storage_type must be 'local' or 's3', got %q", appCfg.StorageType)
	}

	if coreCfg.Env == "prod" && appCfg.StripeSecretKey == "" {
		logger.Warn("stripe_secret_key is empty; paid enrollment will use the fake processor")
	}

	return nil
}
