package langkit

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/langkit/pkg/bundle"
	"github.com/dmitrymomot/langkit/pkg/cache"
	"github.com/dmitrymomot/langkit/pkg/langtag"
	"github.com/dmitrymomot/langkit/pkg/store"
)

// Option configures the Client.
type Option func(*config)

type config struct {
	resolverOpts []langtag.ResolverOption
	fetcherOpts  []bundle.Option
}

// WithStore sets the persisted selection store consulted by LocalLanguage.
// Without a store, all persisted reads are treated as absent.
func WithStore(s store.Store) Option {
	return func(c *config) {
		c.resolverOpts = append(c.resolverOpts, langtag.WithStore(s))
	}
}

// WithPreferenceSource sets the server-side preference collaborator
// consulted by UserLanguage.
func WithPreferenceSource(src PreferenceSource) Option {
	return func(c *config) {
		c.resolverOpts = append(c.resolverOpts, langtag.WithPreferenceSource(src))
	}
}

// WithLogger sets the logger for both resolution and fetching.
// If nil, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.resolverOpts = append(c.resolverOpts, langtag.WithLogger(l))
		c.fetcherOpts = append(c.fetcherOpts, bundle.WithLogger(l))
	}
}

// WithHTTPClient sets the HTTP client used for bundle downloads. Attach
// a cookie jar here when requests must carry session credentials.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *config) {
		c.fetcherOpts = append(c.fetcherOpts, bundle.WithHTTPClient(hc))
	}
}

// WithRequestDecorator sets a hook invoked on every outgoing bundle
// request, for attaching cookies or auth headers.
func WithRequestDecorator(fn func(*http.Request)) Option {
	return func(c *config) {
		c.fetcherOpts = append(c.fetcherOpts, bundle.WithRequestDecorator(fn))
	}
}

// WithSupervisorMode routes bundle downloads through the supervisor
// ingress path instead of the static mount.
func WithSupervisorMode() Option {
	return func(c *config) {
		c.fetcherOpts = append(c.fetcherOpts, bundle.WithSupervisorMode())
	}
}

// WithBundleCache replaces the default in-memory bundle cache, e.g. with
// a Redis-backed cache shared by several processes.
func WithBundleCache(bc cache.Cache[*Bundle]) Option {
	return func(c *config) {
		c.fetcherOpts = append(c.fetcherOpts, bundle.WithCache(bc))
	}
}

// WithDefaultLanguage overrides the fallback language used when a
// requested language or its bundle is unavailable.
// Defaults to DefaultLanguage.
func WithDefaultLanguage(lang string) Option {
	return func(c *config) {
		c.fetcherOpts = append(c.fetcherOpts, bundle.WithDefaultLanguage(lang))
	}
}
