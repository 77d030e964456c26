package langtag_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/langkit/pkg/langtag"
	"github.com/dmitrymomot/langkit/pkg/store"
)

func TestLocalLanguage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	catalog := testCatalog(t)

	storeWith := func(t *testing.T, raw string) store.Store {
		t.Helper()
		s := store.NewMemory()
		require.NoError(t, s.Set(ctx, langtag.SelectionKey, raw))
		return s
	}

	t.Run("persisted selection wins", func(t *testing.T) {
		t.Parallel()
		r := langtag.NewResolver(catalog, langtag.WithStore(storeWith(t, `"de"`)))

		lang := r.LocalLanguage(ctx, langtag.Signals{Languages: []string{"he"}, Primary: "he"})
		require.Equal(t, "de", lang)
	})

	t.Run("persisted selection resolves through aliases", func(t *testing.T) {
		t.Parallel()
		r := langtag.NewResolver(catalog, langtag.WithStore(storeWith(t, `"zh-TW"`)))

		require.Equal(t, "zh-Hant", r.LocalLanguage(ctx, langtag.Signals{}))
	})

	t.Run("malformed selection falls through to reported languages", func(t *testing.T) {
		t.Parallel()
		r := langtag.NewResolver(catalog, langtag.WithStore(storeWith(t, "not-json{")))

		lang := r.LocalLanguage(ctx, langtag.Signals{Languages: []string{"de", "en"}, Primary: "de"})
		require.Equal(t, "de", lang)
	})

	t.Run("unsupported selection falls through", func(t *testing.T) {
		t.Parallel()
		r := langtag.NewResolver(catalog, langtag.WithStore(storeWith(t, `"xx"`)))

		lang := r.LocalLanguage(ctx, langtag.Signals{Languages: []string{"he"}})
		require.Equal(t, "he", lang)
	})

	t.Run("nil store reads as absent", func(t *testing.T) {
		t.Parallel()
		r := langtag.NewResolver(catalog)

		lang := r.LocalLanguage(ctx, langtag.Signals{Languages: []string{"de"}})
		require.Equal(t, "de", lang)
	})

	t.Run("first supported reported language wins", func(t *testing.T) {
		t.Parallel()
		r := langtag.NewResolver(catalog)

		lang := r.LocalLanguage(ctx, langtag.Signals{Languages: []string{"xx", "yy", "he", "de"}})
		require.Equal(t, "he", lang)
	})

	t.Run("primary language is consulted after the list", func(t *testing.T) {
		t.Parallel()
		r := langtag.NewResolver(catalog)

		lang := r.LocalLanguage(ctx, langtag.Signals{Languages: []string{"xx"}, Primary: "de"})
		require.Equal(t, "de", lang)
	})

	t.Run("regional primary falls back to its base subtag", func(t *testing.T) {
		t.Parallel()
		c, err := langtag.NewCatalog(map[string]langtag.Meta{
			"en": {Hash: "abc"},
			"fr": {Hash: "def"},
		})
		require.NoError(t, err)
		r := langtag.NewResolver(c)

		lang := r.LocalLanguage(ctx, langtag.Signals{Primary: "fr-CA"})
		require.Equal(t, "fr", lang)
	})

	t.Run("defaults to en with no usable signals", func(t *testing.T) {
		t.Parallel()
		r := langtag.NewResolver(catalog)

		require.Equal(t, "en", r.LocalLanguage(ctx, langtag.Signals{}))
	})

	t.Run("defaults to en even when nothing matches", func(t *testing.T) {
		t.Parallel()
		r := langtag.NewResolver(catalog)

		lang := r.LocalLanguage(ctx, langtag.Signals{Languages: []string{"xx"}, Primary: "yy-ZZ"})
		require.Equal(t, "en", lang)
	})
}

func TestUserLanguage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	catalog := testCatalog(t)

	t.Run("no source configured", func(t *testing.T) {
		t.Parallel()
		r := langtag.NewResolver(catalog)

		_, ok, err := r.UserLanguage(ctx)
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("preference resolves against the catalog", func(t *testing.T) {
		t.Parallel()
		src := langtag.PreferenceFunc(func(context.Context) (string, bool, error) {
			return "de", true, nil
		})
		r := langtag.NewResolver(catalog, langtag.WithPreferenceSource(src))

		lang, ok, err := r.UserLanguage(ctx)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "de", lang)
	})

	t.Run("preference resolves through aliases", func(t *testing.T) {
		t.Parallel()
		src := langtag.PreferenceFunc(func(context.Context) (string, bool, error) {
			return "zh-CN", true, nil
		})
		r := langtag.NewResolver(catalog, langtag.WithPreferenceSource(src))

		lang, ok, err := r.UserLanguage(ctx)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "zh-Hans", lang)
	})

	t.Run("absent preference", func(t *testing.T) {
		t.Parallel()
		src := langtag.PreferenceFunc(func(context.Context) (string, bool, error) {
			return "", false, nil
		})
		r := langtag.NewResolver(catalog, langtag.WithPreferenceSource(src))

		_, ok, err := r.UserLanguage(ctx)
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("unsupported preference", func(t *testing.T) {
		t.Parallel()
		src := langtag.PreferenceFunc(func(context.Context) (string, bool, error) {
			return "xx", true, nil
		})
		r := langtag.NewResolver(catalog, langtag.WithPreferenceSource(src))

		_, ok, err := r.UserLanguage(ctx)
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("transport error propagates", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("backend down")
		src := langtag.PreferenceFunc(func(context.Context) (string, bool, error) {
			return "", false, boom
		})
		r := langtag.NewResolver(catalog, langtag.WithPreferenceSource(src))

		_, ok, err := r.UserLanguage(ctx)
		require.ErrorIs(t, err, boom)
		require.False(t, ok)
	})
}
