// Package langtag resolves which display language a client should see.
//
// A Catalog lists the supported language codes with their bundle
// metadata. Catalog.Find maps arbitrary client-reported codes onto
// catalog codes: exact matches first, then a small alias table for
// ambiguous regional Chinese codes, then a case-insensitive scan.
//
// A Resolver combines the available signals in priority order:
//
//  1. server-stored user preference (PreferenceSource)
//  2. persisted local selection (store.Store, key "selectedLanguage")
//  3. the client's preference-ordered language list
//  4. the client's primary language, then its base subtag
//  5. the hard-coded default "en"
//
// UserLanguage covers signal 1 and can fail on transport errors;
// LocalLanguage covers the rest and always returns a language.
//
//	catalog, _ := langtag.NewCatalog(map[string]langtag.Meta{
//	    "en":      {Hash: "5dd9a64d"},
//	    "zh-Hans": {Hash: "b4c21fa8"},
//	})
//
//	r := langtag.NewResolver(catalog, langtag.WithStore(settings))
//	lang := r.LocalLanguage(ctx, langtag.SignalsFromRequest(req))
//
// Middleware wires the resolver into a net/http handler chain and makes
// the resolved language available via LanguageFromContext.
package langtag
