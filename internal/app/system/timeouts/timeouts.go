// Package timeouts provides centralized timeout values for handler operations.
//
// These timeouts are used with context.WithTimeout for database operations
// and other I/O in HTTP handlers. Using centralized values ensures consistency
// and makes it easy to adjust timeouts across the application.
//
// Guidelines for choosing a timeout:
//   - Ping: health checks and connectivity verification
//   - Short: simple single-document reads or lookups
//   - Medium: list queries, moderate writes, multi-step reads
//   - Long: complex writes, PDF uploads, payment confirmation
//   - Batch: the admin panel's whole-platform load and background sweeps
package timeouts

import (
	"os"
	"sync"
	"time"
)

// Default timeout values, overridable via ConfigureFromEnv.
const (
	DefaultPing   = 2 * time.Second
	DefaultShort  = 5 * time.Second
	DefaultMedium = 10 * time.Second
	DefaultLong   = 30 * time.Second
	DefaultBatch  = 60 * time.Second
)

var mu sync.RWMutex

var (
	ping   = DefaultPing
	short  = DefaultShort
	medium = DefaultMedium
	long   = DefaultLong
	batch  = DefaultBatch
)

// Ping returns the timeout for health checks and connectivity verification.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Short returns the timeout for simple operations like single-document reads.
func Short() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return short
}

// Medium returns the timeout for moderate operations like list queries.
func Medium() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return medium
}

// Long returns the timeout for complex operations like uploads and
// payment confirmation.
func Long() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return long
}

// Batch returns the timeout for bulk operations like the admin panel's
// concurrent whole-platform load.
func Batch() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return batch
}

// ConfigureFromEnv reads timeout configuration from environment variables:
// SYNEROA_TIMEOUT_PING, SYNEROA_TIMEOUT_SHORT, SYNEROA_TIMEOUT_MEDIUM,
// SYNEROA_TIMEOUT_LONG, SYNEROA_TIMEOUT_BATCH (duration strings, e.g.
// "5s"). Returns the number of timeouts successfully configured.
func ConfigureFromEnv() int {
	mu.Lock()
	defer mu.Unlock()
	configured := 0

	for _, e := range []struct {
		name string
		dst  *time.Duration
	}{
		{"SYNEROA_TIMEOUT_PING", &ping},
		{"SYNEROA_TIMEOUT_SHORT", &short},
		{"SYNEROA_TIMEOUT_MEDIUM", &medium},
		{"SYNEROA_TIMEOUT_LONG", &long},
		{"SYNEROA_TIMEOUT_BATCH", &batch},
	} {
		if v := os.Getenv(e.name); v != "" {
			if d, err := time.ParseDuration(v); err == nil && d > 0 {
				*e.dst = d
				configured++
			}
		}
	}

	return configured
}
