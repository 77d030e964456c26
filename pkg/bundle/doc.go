// Package bundle fetches versioned translation bundles from a static
// file server and memoizes them in process memory.
//
// Every bundle is identified by a fingerprint built from an optional
// path fragment, the language code, and the bundle's content hash, so a
// changed translation file gets a new identity and stale caches are
// impossible. Fetches for the same fingerprint are coalesced: concurrent
// callers share one HTTP request and one parsed result.
//
// When a fetch fails (transport error, non-2xx status, or an unparsable
// body) the fetcher retries once with the default language, and the
// failed fingerprint stays uncached so a later call can try again.
//
//	f, err := bundle.NewFetcher(catalog, "https://app.example.com")
//	if err != nil { ... }
//	defer f.Close()
//
//	b, err := f.Fetch(ctx, "logbook", "de")
//	// b.Language is "de", or "en" if the German bundle was unavailable.
package bundle
