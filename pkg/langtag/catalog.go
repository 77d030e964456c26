package langtag

import (
	"sort"
	"strings"
)

// DefaultLanguage is the hard-coded last-resort language. It must be
// present in every catalog that a fetcher falls back through.
const DefaultLanguage = "en"

// aliases maps ambiguous regional codes (lowercased) to the canonical
// script variant a catalog actually carries. Chinese locales report a
// region, but bundles are keyed by script.
var aliases = map[string]string{
	"zh-cn": "zh-Hans",
	"zh-sg": "zh-Hans",
	"zh-my": "zh-Hans",
	"zh-tw": "zh-Hant",
	"zh-hk": "zh-Hant",
	"zh-mo": "zh-Hant",
}

// Meta describes one supported language's bundle metadata. Hash is the
// content fingerprint of the language's translation bundle; NativeName
// and RTL are display hints for language pickers.
type Meta struct {
	Hash       string `json:"hash" yaml:"hash"`
	NativeName string `json:"nativeName,omitempty" yaml:"nativeName,omitempty"`
	RTL        bool   `json:"isRTL,omitempty" yaml:"isRTL,omitempty"`
}

// Catalog is the read-only table of supported language codes and their
// bundle metadata. It is built once at startup and safe for concurrent
// use afterwards.
type Catalog struct {
	langs map[string]Meta
}

// NewCatalog builds a catalog from a code-to-metadata map.
// The map is copied; later mutations of the argument do not affect the catalog.
func NewCatalog(langs map[string]Meta) (Catalog, error) {
	if len(langs) == 0 {
		return Catalog{}, ErrEmptyCatalog
	}

	m := make(map[string]Meta, len(langs))
	for code, meta := range langs {
		if code == "" {
			return Catalog{}, ErrEmptyLanguage
		}
		m[code] = meta
	}

	return Catalog{langs: m}, nil
}

// Find maps a requested language code to the catalog code that serves it.
// It checks, in order: an exact key match, the regional alias table
// (case-insensitive), and finally a case-insensitive scan over all
// catalog codes. Returns ("", false) when nothing matches.
//
// For any code already present in the catalog, Find returns that exact code.
func (c Catalog) Find(code string) (string, bool) {
	if code == "" || c.langs == nil {
		return "", false
	}

	if _, ok := c.langs[code]; ok {
		return code, true
	}

	lower := strings.ToLower(code)
	if canonical, ok := aliases[lower]; ok {
		if _, present := c.langs[canonical]; present {
			return canonical, true
		}
	}

	for candidate := range c.langs {
		if strings.ToLower(candidate) == lower {
			return candidate, true
		}
	}

	return "", false
}

// Has reports whether code is an exact catalog key.
func (c Catalog) Has(code string) bool {
	_, ok := c.langs[code]
	return ok
}

// Meta returns the metadata for an exact catalog key.
func (c Catalog) Meta(code string) (Meta, bool) {
	m, ok := c.langs[code]
	return m, ok
}

// Codes returns all catalog codes in sorted order.
func (c Catalog) Codes() []string {
	codes := make([]string, 0, len(c.langs))
	for code := range c.langs {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
