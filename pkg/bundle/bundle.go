package bundle

// Bundle is a resolved translation payload. Language is the catalog code
// the data was actually served for, which may be the default language
// when the requested one was unavailable.
type Bundle struct {
	Language string         `json:"language"`
	Data     map[string]any `json:"data"`
}

// Fingerprint composes the versioned identity of one translation file
// from an optional path fragment, the language code, and the bundle's
// content hash. It serves both as the cache key and as the relative
// download path:
//
//	Fingerprint("logbook", "en", "abc")  =>  "logbook/en-abc.json"
//	Fingerprint("", "en", "abc")         =>  "en-abc.json"
func Fingerprint(fragment, lang, hash string) string {
	if fragment != "" {
		return fragment + "/" + lang + "-" + hash + ".json"
	}
	return lang + "-" + hash + ".json"
}
