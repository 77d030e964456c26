package langtag

import (
	"context"
	"net/http"
)

type languageCtxKey struct{}

// Middleware returns net/http middleware that resolves the request's
// display language and stores it in the request context. The server-side
// preference wins when the resolver has a preference source configured;
// otherwise resolution falls back to local signals, which never fail.
func Middleware(r *Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := req.Context()

			lang, ok, err := r.UserLanguage(ctx)
			if err != nil || !ok {
				lang = r.LocalLanguage(ctx, SignalsFromRequest(req))
			}

			ctx = context.WithValue(ctx, languageCtxKey{}, lang)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	}
}

// LanguageFromContext extracts the language resolved by Middleware.
// Returns ok=false if the middleware did not run.
func LanguageFromContext(ctx context.Context) (string, bool) {
	lang, ok := ctx.Value(languageCtxKey{}).(string)
	return lang, ok
}
