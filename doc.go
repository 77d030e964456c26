// Package langkit resolves which human language a web client should
// display and delivers the matching translation bundle.
//
// The effective language is determined from signals in priority order:
// a server-stored user preference, a persisted local selection, the
// client's reported language list, the client's primary language and its
// base subtag, and finally the hard-coded default "en". Translation
// bundles are versioned by content fingerprint, fetched over HTTP GET
// from a static file server, and memoized in process memory with
// in-flight request coalescing; an unavailable language or bundle falls
// back to the default language exactly once.
//
// # Quick Start
//
// Load the catalog of supported languages, create a client, and resolve
// and fetch per request:
//
//	catalog, err := langtag.LoadJSON(assets, "translations/metadata.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	client, err := langkit.New(catalog, "https://app.example.com",
//	    langkit.WithStore(settings),
//	    langkit.WithLogger(logger.New()),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	lang := client.LocalLanguage(ctx, langtag.SignalsFromRequest(req))
//	b, err := client.Translation(ctx, "logbook", lang)
//
// # Components
//
// The subpackages can be used independently:
//
//   - pkg/langtag: language catalogs, code matching, and resolution
//   - pkg/bundle: fingerprinted bundle fetching with memoization
//   - pkg/cache: in-memory and Redis caches with request coalescing
//   - pkg/store: persisted key-value storage for user selections
//   - pkg/logger: slog factories, including Sentry integration
package langkit
