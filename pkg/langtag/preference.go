package langtag

import "context"

// PreferenceSource supplies a server-stored language preference, usually
// backed by a per-user configuration endpoint. Implementations return
// ok=false when the user has no stored preference; errors are reserved
// for transport failures.
type PreferenceSource interface {
	Language(ctx context.Context) (lang string, ok bool, err error)
}

// PreferenceFunc adapts a plain function to a PreferenceSource.
type PreferenceFunc func(ctx context.Context) (string, bool, error)

// Language calls the wrapped function.
func (f PreferenceFunc) Language(ctx context.Context) (string, bool, error) {
	return f(ctx)
}
