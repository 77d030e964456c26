package langkit

import (
	"context"

	"github.com/dmitrymomot/langkit/pkg/bundle"
	"github.com/dmitrymomot/langkit/pkg/langtag"
)

// Type aliases - public API
type (
	// Catalog is the table of supported language codes and bundle metadata.
	Catalog = langtag.Catalog

	// Meta is one supported language's bundle metadata.
	Meta = langtag.Meta

	// Signals carries client-reported language hints.
	Signals = langtag.Signals

	// PreferenceSource supplies a server-stored language preference.
	PreferenceSource = langtag.PreferenceSource

	// PreferenceFunc adapts a function to a PreferenceSource.
	PreferenceFunc = langtag.PreferenceFunc

	// Bundle is a resolved translation payload.
	Bundle = bundle.Bundle
)

// DefaultLanguage is the hard-coded last-resort language.
const DefaultLanguage = langtag.DefaultLanguage

// Client combines language resolution and translation bundle delivery
// behind one front door. It is safe for concurrent use.
type Client struct {
	resolver *langtag.Resolver
	fetcher  *bundle.Fetcher
}

// New creates a Client over the given catalog, downloading bundles from
// the server at baseURL.
//
//	client, err := langkit.New(catalog, "https://app.example.com",
//	    langkit.WithStore(settings),
//	    langkit.WithLogger(log),
//	)
func New(catalog Catalog, baseURL string, opts ...Option) (*Client, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	fetcher, err := bundle.NewFetcher(catalog, baseURL, cfg.fetcherOpts...)
	if err != nil {
		return nil, err
	}

	return &Client{
		resolver: langtag.NewResolver(catalog, cfg.resolverOpts...),
		fetcher:  fetcher,
	}, nil
}

// Find maps a requested language code to the catalog code that serves it.
func (c *Client) Find(code string) (string, bool) {
	return c.resolver.Catalog().Find(code)
}

// UserLanguage returns the server-stored language preference, resolved
// against the catalog. See langtag.Resolver.UserLanguage.
func (c *Client) UserLanguage(ctx context.Context) (string, bool, error) {
	return c.resolver.UserLanguage(ctx)
}

// LocalLanguage resolves the display language from locally available
// signals. It never fails. See langtag.Resolver.LocalLanguage.
func (c *Client) LocalLanguage(ctx context.Context, sig Signals) string {
	return c.resolver.LocalLanguage(ctx, sig)
}

// Translation fetches the translation bundle for lang, optionally scoped
// to a path fragment. See bundle.Fetcher.Fetch.
func (c *Client) Translation(ctx context.Context, fragment, lang string) (*Bundle, error) {
	return c.fetcher.Fetch(ctx, fragment, lang)
}

// Resolver exposes the underlying resolver, e.g. for langtag.Middleware.
func (c *Client) Resolver() *langtag.Resolver {
	return c.resolver
}

// Close releases resources held by the client.
func (c *Client) Close() error {
	return c.fetcher.Close()
}
