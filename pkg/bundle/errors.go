package bundle

import "errors"

var (
	// ErrFetchFailed is returned on transport errors, non-2xx responses,
	// and bodies that do not parse as JSON. A failed fetch is never
	// cached, so a later call for the same fingerprint retries.
	ErrFetchFailed = errors.New("bundle: fetch failed")

	// ErrDefaultLanguageMissing indicates broken configuration: the
	// default language must always be present in the catalog, since it
	// terminates every fallback chain.
	ErrDefaultLanguageMissing = errors.New("bundle: default language missing from catalog")

	// ErrEmptyBaseURL is returned when a Fetcher is constructed without
	// a base URL.
	ErrEmptyBaseURL = errors.New("bundle: base URL cannot be empty")
)
