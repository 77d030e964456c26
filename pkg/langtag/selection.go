package langtag

import "encoding/json"

// SelectionKey is the store key under which an explicitly selected
// language is persisted. The value is a JSON-encoded string, matching
// what web clients write to their local storage.
const SelectionKey = "selectedLanguage"

// DecodeSelection parses a persisted language selection. The raw value
// must be a JSON string (e.g. `"zh-Hant"`). A value that does not decode
// to a non-empty string returns ErrMalformedSelection, so callers can
// observe corruption instead of silently ignoring it.
func DecodeSelection(raw string) (string, error) {
	var lang string
	if err := json.Unmarshal([]byte(raw), &lang); err != nil {
		return "", ErrMalformedSelection
	}
	if lang == "" {
		return "", ErrMalformedSelection
	}
	return lang, nil
}

// EncodeSelection encodes a language code for persistence, the inverse
// of DecodeSelection.
func EncodeSelection(lang string) string {
	data, _ := json.Marshal(lang)
	return string(data)
}
