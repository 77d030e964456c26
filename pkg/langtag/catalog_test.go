package langtag_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/langkit/pkg/langtag"
)

func testCatalog(t *testing.T) langtag.Catalog {
	t.Helper()

	c, err := langtag.NewCatalog(map[string]langtag.Meta{
		"en":      {Hash: "5dd9a64d", NativeName: "English"},
		"de":      {Hash: "0f2a1c3b", NativeName: "Deutsch"},
		"pt-BR":   {Hash: "77fe1a09"},
		"zh-Hans": {Hash: "b4c21fa8", NativeName: "简体中文"},
		"zh-Hant": {Hash: "9ad03e17", NativeName: "繁體中文"},
		"he":      {Hash: "c61b00da", RTL: true},
	})
	require.NoError(t, err)
	return c
}

func TestNewCatalog(t *testing.T) {
	t.Parallel()

	t.Run("empty map is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := langtag.NewCatalog(nil)
		require.ErrorIs(t, err, langtag.ErrEmptyCatalog)

		_, err = langtag.NewCatalog(map[string]langtag.Meta{})
		require.ErrorIs(t, err, langtag.ErrEmptyCatalog)
	})

	t.Run("empty code is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := langtag.NewCatalog(map[string]langtag.Meta{"": {Hash: "x"}})
		require.ErrorIs(t, err, langtag.ErrEmptyLanguage)
	})

	t.Run("copies the input map", func(t *testing.T) {
		t.Parallel()
		src := map[string]langtag.Meta{"en": {Hash: "abc"}}
		c, err := langtag.NewCatalog(src)
		require.NoError(t, err)

		delete(src, "en")
		require.True(t, c.Has("en"))
	})
}

func TestCatalogFind(t *testing.T) {
	t.Parallel()

	c := testCatalog(t)

	t.Run("exact match returns the same code", func(t *testing.T) {
		t.Parallel()
		for _, code := range c.Codes() {
			matched, ok := c.Find(code)
			require.True(t, ok)
			require.Equal(t, code, matched)
		}
	})

	t.Run("chinese regional codes map to script variants", func(t *testing.T) {
		t.Parallel()
		cases := map[string]string{
			"zh-CN": "zh-Hans",
			"zh-cn": "zh-Hans",
			"ZH-SG": "zh-Hans",
			"zh-MY": "zh-Hans",
			"zh-TW": "zh-Hant",
			"zh-hk": "zh-Hant",
			"ZH-MO": "zh-Hant",
		}
		for in, want := range cases {
			matched, ok := c.Find(in)
			require.True(t, ok, "Find(%q)", in)
			require.Equal(t, want, matched, "Find(%q)", in)
		}
	})

	t.Run("alias target must exist in catalog", func(t *testing.T) {
		t.Parallel()
		small, err := langtag.NewCatalog(map[string]langtag.Meta{"en": {Hash: "abc"}})
		require.NoError(t, err)

		_, ok := small.Find("zh-TW")
		require.False(t, ok)
	})

	t.Run("case-insensitive scan", func(t *testing.T) {
		t.Parallel()
		matched, ok := c.Find("EN")
		require.True(t, ok)
		require.Equal(t, "en", matched)

		matched, ok = c.Find("pt-br")
		require.True(t, ok)
		require.Equal(t, "pt-BR", matched)
	})

	t.Run("unknown code misses", func(t *testing.T) {
		t.Parallel()
		_, ok := c.Find("xx")
		require.False(t, ok)

		_, ok = c.Find("")
		require.False(t, ok)
	})

	t.Run("zero catalog never matches", func(t *testing.T) {
		t.Parallel()
		var zero langtag.Catalog
		_, ok := zero.Find("en")
		require.False(t, ok)
	})
}

func TestCatalogAccessors(t *testing.T) {
	t.Parallel()

	c := testCatalog(t)

	t.Run("meta lookup", func(t *testing.T) {
		t.Parallel()
		meta, ok := c.Meta("he")
		require.True(t, ok)
		require.Equal(t, "c61b00da", meta.Hash)
		require.True(t, meta.RTL)

		_, ok = c.Meta("xx")
		require.False(t, ok)
	})

	t.Run("codes are sorted", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, []string{"de", "en", "he", "pt-BR", "zh-Hans", "zh-Hant"}, c.Codes())
	})
}

func TestSelectionCodec(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		raw := langtag.EncodeSelection("zh-Hant")
		require.Equal(t, `"zh-Hant"`, raw)

		lang, err := langtag.DecodeSelection(raw)
		require.NoError(t, err)
		require.Equal(t, "zh-Hant", lang)
	})

	t.Run("malformed values are reported", func(t *testing.T) {
		t.Parallel()
		for _, raw := range []string{"", "de", `{"lang":"de"}`, "123", `""`} {
			_, err := langtag.DecodeSelection(raw)
			require.ErrorIs(t, err, langtag.ErrMalformedSelection, "raw=%q", raw)
		}
	})
}
