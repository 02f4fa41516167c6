package trophycase

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/agentstation/trophycase/pkg/sources"
)

// Option is a function that configures a Client instance.
type Option func(*config) error

// config holds the assembled client configuration.
type config struct {
	accountRoot string
	httpClient  *http.Client
	logger      *zerolog.Logger

	schemaURL   string
	fallbackURL string
	searchURL   string

	appBase       string
	extraRoots    []string
	onlyRoots     []string
	rootsReplaced bool

	chain *sources.Chain
}

// defaultConfig returns the zero configuration; the account root must be
// supplied by an option.
func defaultConfig() *config {
	return &config{}
}

// WithAccountRoot sets the active session's storage root, under which
// Achievements/ and Metadata/ live. Required.
func WithAccountRoot(root string) Option {
	return func(c *config) error {
		c.accountRoot = root
		return nil
	}
}

// WithHTTPClient injects the HTTP client used for remote schema fetches and
// scraping. Tests substitute an httptest client here.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *config) error {
		c.httpClient = hc
		return nil
	}
}

// WithLogger sets the logger attached to every resolution context.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}

// WithSchemaService sets the primary and fallback remote schema endpoints.
// Either may be empty to disable that half.
func WithSchemaService(primary, fallback string) Option {
	return func(c *config) error {
		c.schemaURL = primary
		c.fallbackURL = fallback
		return nil
	}
}

// WithSearchURL sets the scrape provider's search endpoint.
func WithSearchURL(url string) Option {
	return func(c *config) error {
		c.searchURL = url
		return nil
	}
}

// WithAppBase sets the application's own base directory, scanned by the
// emulator store provider.
func WithAppBase(dir string) Option {
	return func(c *config) error {
		c.appBase = dir
		return nil
	}
}

// WithStoreRoots appends extra emulator save-store roots.
func WithStoreRoots(roots ...string) Option {
	return func(c *config) error {
		c.extraRoots = append(c.extraRoots, roots...)
		return nil
	}
}

// WithStoreRootsOnly replaces the default emulator save-store roots entirely,
// including with nothing. Tests use it to keep scans inside fixture
// directories.
func WithStoreRootsOnly(roots ...string) Option {
	return func(c *config) error {
		c.onlyRoots = roots
		c.rootsReplaced = true
		return nil
	}
}

// WithChain replaces the entire provider chain. Intended for tests and
// embedders with bespoke providers.
func WithChain(chain *sources.Chain) Option {
	return func(c *config) error {
		c.chain = chain
		return nil
	}
}
