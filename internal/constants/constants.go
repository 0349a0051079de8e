package constants

import "time"

// DefaultBaseURL is the Splitwise API v3.0 root used when no base URL is configured.
const DefaultBaseURL = "https://secure.splitwise.com/api/v3.0"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP defaults.
const (
	// DefaultHTTPTimeout is the default timeout for the underlying HTTP client.
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultUserAgent is the User-Agent header sent when none is configured.
	DefaultUserAgent = "splitwise-sdk-go"
)

// Retry defaults.
const (
	// DefaultMaxRetries is the number of retries after the initial attempt.
	DefaultMaxRetries = 3

	// DefaultBaseDelay seeds the exponential backoff window.
	DefaultBaseDelay = 500 * time.Millisecond

	// DefaultMaxDelay caps any single backoff wait, including server hints.
	DefaultMaxDelay = 30 * time.Second
)

// Cache defaults.
const (
	// DefaultCacheTTL is the lifetime of cached GET responses.
	DefaultCacheTTL = 5 * time.Minute

	// DefaultSweepInterval is how often the cache evicts expired entries in the background.
	DefaultSweepInterval = time.Minute
)
