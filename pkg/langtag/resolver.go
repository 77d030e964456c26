package langtag

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/langkit/pkg/logger"
	"github.com/dmitrymomot/langkit/pkg/store"
)

// Resolver determines the effective display language from the available
// signals: a server-stored user preference, a persisted local selection,
// and the client-reported language list. All dependencies are injected;
// a Resolver holds no hidden process-wide state.
type Resolver struct {
	catalog Catalog
	store   store.Store
	prefs   PreferenceSource
	log     *slog.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithStore sets the persisted selection store. A nil store is valid:
// all reads are treated as absent and resolution falls through to the
// client-reported signals.
func WithStore(s store.Store) ResolverOption {
	return func(r *Resolver) {
		r.store = s
	}
}

// WithPreferenceSource sets the server-side preference collaborator
// consulted by UserLanguage.
func WithPreferenceSource(src PreferenceSource) ResolverOption {
	return func(r *Resolver) {
		r.prefs = src
	}
}

// WithLogger sets the resolver logger. Defaults to a no-op logger.
func WithLogger(l *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		if l != nil {
			r.log = l
		}
	}
}

// NewResolver creates a Resolver over the given catalog.
func NewResolver(catalog Catalog, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		catalog: catalog,
		log:     logger.NewNope(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Catalog returns the catalog the resolver matches against.
func (r *Resolver) Catalog() Catalog {
	return r.catalog
}

// UserLanguage asks the configured preference source for the server-stored
// language and resolves it against the catalog. It returns ok=false when
// no source is configured, the source has no value, or the value does not
// resolve to a supported language. Transport errors propagate.
func (r *Resolver) UserLanguage(ctx context.Context) (string, bool, error) {
	if r.prefs == nil {
		return "", false, nil
	}

	lang, ok, err := r.prefs.Language(ctx)
	if err != nil {
		return "", false, err
	}
	if !ok || lang == "" {
		return "", false, nil
	}

	matched, ok := r.catalog.Find(lang)
	if !ok {
		r.log.DebugContext(ctx, "stored user preference not in catalog", "language", lang)
		return "", false, nil
	}

	return matched, true, nil
}

// signal produces one candidate language code; ok=false means the signal
// is absent and resolution moves on.
type signal func() (string, bool)

// LocalLanguage resolves the display language from locally available
// signals, in priority order: the persisted selection, each entry of the
// client's preferred language list, the client's primary language, its
// base subtag when the primary carries a region, and finally
// DefaultLanguage. The first candidate that resolves against the catalog
// wins. LocalLanguage never fails.
func (r *Resolver) LocalLanguage(ctx context.Context, sig Signals) string {
	candidates := []signal{
		func() (string, bool) { return r.storedSelection(ctx) },
	}
	for _, lang := range sig.Languages {
		candidates = append(candidates, func() (string, bool) { return lang, lang != "" })
	}
	candidates = append(candidates,
		func() (string, bool) { return sig.Primary, sig.Primary != "" },
		func() (string, bool) {
			if !strings.Contains(sig.Primary, "-") {
				return "", false
			}
			return baseSubtag(sig.Primary), true
		},
	)

	for _, candidate := range candidates {
		code, ok := candidate()
		if !ok {
			continue
		}
		if matched, found := r.catalog.Find(code); found {
			return matched
		}
	}

	return DefaultLanguage
}

// storedSelection reads the persisted selection, if any. Malformed values
// are logged and skipped so resolution can continue with weaker signals.
func (r *Resolver) storedSelection(ctx context.Context) (string, bool) {
	if r.store == nil {
		return "", false
	}

	raw, err := r.store.Get(ctx, SelectionKey)
	if err != nil {
		return "", false
	}

	lang, err := DecodeSelection(raw)
	if err != nil {
		r.log.WarnContext(ctx, "ignoring malformed persisted selection", "raw", raw)
		return "", false
	}

	return lang, true
}

// baseSubtag reduces a locale to its base language ("pt-BR" to "pt").
// Unparsable input falls back to a plain prefix cut.
func baseSubtag(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		if i := strings.IndexByte(code, '-'); i > 0 {
			return code[:i]
		}
		return code
	}

	base, _ := tag.Base()
	return base.String()
}
