// Package constants provides shared constants used throughout the trophycase
// codebase. This includes timeouts, limits, file permissions, and other
// configuration values that should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to remote
	// schema services and scraped pages
	DefaultHTTPTimeout = 30 * time.Second

	// ResolveTimeout is the timeout for a full reconciliation request
	ResolveTimeout = 2 * time.Minute

	// RetryBackoff is the base backoff duration for remote schema retries
	RetryBackoff = 1 * time.Second

	// MaxRetryBackoff is the maximum backoff duration for retries
	MaxRetryBackoff = 30 * time.Second
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Limit constants define various limits and capacities
const (
	// MaxRetries is the maximum number of retry attempts for the remote
	// schema fetch; no other operation retries
	MaxRetries = 3

	// MaxWalkDepth is how many directory levels heuristic discovery descends
	// below each scan root
	MaxWalkDepth = 3

	// MaxParentLevels is how many parent directories above the install path
	// heuristic discovery inspects
	MaxParentLevels = 2

	// MaxPayloadBytes is the largest payload a provider will hand to a parser
	MaxPayloadBytes = 8 << 20

	// MaxNameLength is the maximum allowed length for achievement names
	MaxNameLength = 256
)

// Path constants for the on-disk layout under the account root
const (
	// AchievementsDir is the directory holding canonical per-title caches
	AchievementsDir = "Achievements"

	// MetadataDir is the directory holding per-title metadata records
	MetadataDir = "Metadata"

	// CacheExt is the extension of canonical cache files
	CacheExt = ".json"

	// UnknownSegment is the fallback path segment when a platform or title
	// sanitizes to nothing
	UnknownSegment = "Unknown"
)
