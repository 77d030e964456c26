package langtag

import (
	"cmp"
	"net/http"
	"slices"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength bounds header parsing against oversized input.
const maxAcceptLanguageLength = 4096

// Signals carries the client-reported language hints used by local
// resolution: the ordered list of preferred languages and the single
// primary language.
type Signals struct {
	// Languages is the client's preference-ordered language list.
	Languages []string

	// Primary is the client's primary reported language.
	Primary string
}

// SignalsFromRequest derives Signals from an HTTP request's
// Accept-Language header. Entries are ordered by descending quality
// value; the first entry doubles as the primary language.
//
// Example header: "en-US,en;q=0.9,pl;q=0.8"
func SignalsFromRequest(r *http.Request) Signals {
	langs := parseAcceptLanguage(r.Header.Get("Accept-Language"))

	sig := Signals{Languages: langs}
	if len(langs) > 0 {
		sig.Primary = langs[0]
	}
	return sig
}

type weightedTag struct {
	tag     string
	quality float64
}

// parseAcceptLanguage parses an Accept-Language header into tags ordered
// by descending quality. Wildcards and malformed q-values are skipped or
// defaulted per RFC 9110 semantics.
func parseAcceptLanguage(header string) []string {
	if header == "" {
		return nil
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var tags []weightedTag

	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		quality := 1.0
		langPart, qPart, hasQuality := strings.Cut(part, ";")
		langPart = strings.TrimSpace(langPart)

		if hasQuality {
			qPart = strings.TrimSpace(qPart)
			if strings.HasPrefix(qPart, "q=") {
				if q, err := strconv.ParseFloat(qPart[2:], 64); err == nil && q >= 0 && q <= 1 {
					quality = q
				}
			}
		}

		if langPart != "" && langPart != "*" {
			tags = append(tags, weightedTag{tag: langPart, quality: quality})
		}
	}

	slices.SortStableFunc(tags, func(a, b weightedTag) int {
		return cmp.Compare(b.quality, a.quality)
	})

	langs := make([]string, 0, len(tags))
	for _, t := range tags {
		langs = append(langs, t.tag)
	}
	return langs
}
