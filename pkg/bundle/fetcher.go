package bundle

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrymomot/langkit/pkg/cache"
	"github.com/dmitrymomot/langkit/pkg/langtag"
	"github.com/dmitrymomot/langkit/pkg/logger"
)

const (
	// staticPath is where the static file server mounts translation files.
	staticPath = "/static/translations/"

	// supervisorPath proxies translation files through the supervisor
	// ingress instead of the static mount.
	supervisorPath = "/api/hassio/app/static/translations/"

	// supervisorFragment is stripped from fingerprints before they are
	// substituted into supervisorPath.
	supervisorFragment = "supervisor/"
)

// Fetcher downloads fingerprinted translation bundles over HTTP and
// memoizes them for the lifetime of the process. Successful results are
// cached per fingerprint with in-flight coalescing; a failed fetch leaves
// no cache entry and is retried on demand, falling back to the default
// language at most once.
//
// A Fetcher owns its cache and coalescing state; independent fetchers
// never share results.
type Fetcher struct {
	catalog     langtag.Catalog
	cache       cache.Cache[*Bundle]
	group       cache.Group[*Bundle]
	client      *http.Client
	baseURL     string
	defaultLang string
	supervisor  bool
	decorate    func(*http.Request)
	log         *slog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient sets the HTTP client used for downloads. Attach a cookie
// jar here when requests must carry session credentials.
// Defaults to http.DefaultClient.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) {
		if c != nil {
			f.client = c
		}
	}
}

// WithCache replaces the default in-memory bundle cache, e.g. with a
// Redis-backed cache shared by several processes.
func WithCache(c cache.Cache[*Bundle]) Option {
	return func(f *Fetcher) {
		if c != nil {
			f.cache = c
		}
	}
}

// WithSupervisorMode routes downloads through the supervisor ingress
// path instead of the static mount, stripping the literal "supervisor/"
// fragment prefix from the download path.
func WithSupervisorMode() Option {
	return func(f *Fetcher) {
		f.supervisor = true
	}
}

// WithDefaultLanguage sets the fallback language attempted after a failed
// fetch. Defaults to langtag.DefaultLanguage.
func WithDefaultLanguage(lang string) Option {
	return func(f *Fetcher) {
		if lang != "" {
			f.defaultLang = lang
		}
	}
}

// WithRequestDecorator sets a hook invoked on every outgoing request,
// for attaching cookies or auth headers.
func WithRequestDecorator(fn func(*http.Request)) Option {
	return func(f *Fetcher) {
		f.decorate = fn
	}
}

// WithLogger sets the fetcher logger. Defaults to a no-op logger.
func WithLogger(l *slog.Logger) Option {
	return func(f *Fetcher) {
		if l != nil {
			f.log = l
		}
	}
}

// NewFetcher creates a Fetcher downloading from the server at baseURL.
func NewFetcher(catalog langtag.Catalog, baseURL string, opts ...Option) (*Fetcher, error) {
	if baseURL == "" {
		return nil, ErrEmptyBaseURL
	}

	f := &Fetcher{
		catalog:     catalog,
		cache:       cache.NewMemory[*Bundle](),
		client:      http.DefaultClient,
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		defaultLang: langtag.DefaultLanguage,
		log:         logger.NewNope(),
	}
	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

// Close releases the fetcher's cache.
func (f *Fetcher) Close() error {
	return f.cache.Close()
}

// Fetch returns the translation bundle for lang, optionally scoped to a
// path fragment (e.g. a UI panel name). A language absent from the
// catalog is served as the default language. When fetching the requested
// language fails, the default language is attempted exactly once; a
// failure on the default language itself propagates. Concurrent calls
// for the same fingerprint share one HTTP request.
func (f *Fetcher) Fetch(ctx context.Context, fragment, lang string) (*Bundle, error) {
	meta, ok := f.catalog.Meta(lang)
	if !ok {
		if lang == f.defaultLang {
			return nil, ErrDefaultLanguageMissing
		}
		f.log.DebugContext(ctx, "language missing from catalog, serving default",
			"language", lang, "default", f.defaultLang)

		lang = f.defaultLang
		if meta, ok = f.catalog.Meta(lang); !ok {
			return nil, ErrDefaultLanguageMissing
		}
	}

	b, err := f.attempt(ctx, fragment, lang, meta)
	if err == nil || lang == f.defaultLang {
		return b, err
	}

	f.log.WarnContext(ctx, "bundle fetch failed, falling back to default language",
		"language", lang, "fragment", fragment, "error", err)

	meta, ok = f.catalog.Meta(f.defaultLang)
	if !ok {
		return nil, ErrDefaultLanguageMissing
	}

	return f.attempt(ctx, fragment, f.defaultLang, meta)
}

// attempt fetches one language's bundle through the cache. Results are
// cached without expiration; errors are not cached at all.
func (f *Fetcher) attempt(ctx context.Context, fragment, lang string, meta langtag.Meta) (*Bundle, error) {
	fingerprint := Fingerprint(fragment, lang, meta.Hash)

	return f.group.GetOrFetch(ctx, f.cache, fingerprint, func(ctx context.Context) (*Bundle, time.Duration, error) {
		data, err := f.download(ctx, fingerprint)
		if err != nil {
			return nil, 0, err
		}
		return &Bundle{Language: lang, Data: data}, -1, nil
	})
}

func (f *Fetcher) download(ctx context.Context, fingerprint string) (map[string]any, error) {
	url := f.downloadURL(fingerprint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request for %q: %v", ErrFetchFailed, url, err)
	}
	if f.decorate != nil {
		f.decorate(req)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFetchFailed, fingerprint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %s: unexpected status %d", ErrFetchFailed, fingerprint, resp.StatusCode)
	}

	var data map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", ErrFetchFailed, fingerprint, err)
	}

	return data, nil
}

func (f *Fetcher) downloadURL(fingerprint string) string {
	if f.supervisor {
		return f.baseURL + supervisorPath + strings.TrimPrefix(fingerprint, supervisorFragment)
	}
	return f.baseURL + staticPath + fingerprint
}
