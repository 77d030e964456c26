package langtag

import "errors"

var (
	ErrEmptyCatalog       = errors.New("langtag: catalog cannot be empty")
	ErrEmptyLanguage      = errors.New("langtag: language code cannot be empty")
	ErrMalformedSelection = errors.New("langtag: malformed stored selection")
	ErrInvalidCatalogFile = errors.New("langtag: invalid catalog file")
)
