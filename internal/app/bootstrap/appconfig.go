// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig covers
// framework-level settings (ports, TLS, logging); AppConfig is
// everything specific to the Syneroa platform service.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Session management configuration
	SessionKey    string        // Secret key for signing session cookies (must be strong in production)
	SessionName   string        // Cookie name for sessions (default: syneroa-session)
	SessionDomain string        // Cookie domain (blank means current host)
	SessionTTL    time.Duration // How long a session cookie stays valid

	// AdminEmail is granted admin access even when the account role is
	// "user". Used to bootstrap the first administrator.
	AdminEmail string

	// File storage configuration for solution PDF attachments.
	StorageType      string // Storage backend: "local" or "s3"
	StorageLocalPath string // Local storage path (e.g., "./uploads")
	StorageLocalURL  string // URL prefix for serving local files (e.g., "/uploads")

	// S3-compatible object storage (only used if StorageType is "s3")
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3UseSSL    bool
	S3PublicURL string // public URL prefix for stored files

	// Payments configuration. With an empty secret key the service runs
	// the in-memory fake processor (dev and tests only).
	StripeSecretKey string

	// ChallengeSweepInterval is how often expired challenges are
	// flipped to inactive. Zero disables the sweep.
	ChallengeSweepInterval time.Duration
}
