package langtag

import (
	"encoding/json"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// LoadJSON reads a catalog from a JSON file in an fs.FS. The file must
// contain a single object mapping language codes to metadata:
//
//	{
//	  "en":      {"hash": "5dd9a64d", "nativeName": "English"},
//	  "zh-Hans": {"hash": "b4c21fa8", "nativeName": "简体中文"}
//	}
func LoadJSON(fsys fs.FS, path string) (Catalog, error) {
	return load(fsys, path, func(data []byte, v any) error {
		return json.Unmarshal(data, v)
	})
}

// LoadYAML reads a catalog from a YAML file in an fs.FS, with the same
// shape as LoadJSON.
func LoadYAML(fsys fs.FS, path string) (Catalog, error) {
	return load(fsys, path, func(data []byte, v any) error {
		return yaml.Unmarshal(data, v)
	})
}

func load(fsys fs.FS, path string, unmarshal func([]byte, any) error) (Catalog, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Catalog{}, fmt.Errorf("reading %q: %w", path, err)
	}

	var langs map[string]Meta
	if err := unmarshal(data, &langs); err != nil {
		return Catalog{}, fmt.Errorf("%w: parsing %q: %s", ErrInvalidCatalogFile, path, err)
	}

	return NewCatalog(langs)
}
