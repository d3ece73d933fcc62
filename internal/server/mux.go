package server

import (
	"net/http"
	"path"
	"strings"

	sentryhttp "github.com/getsentry/sentry-go/http"
)

// RootPattern is the pattern of the handler receiving every request no
// other route claims.
const RootPattern = "/"

// NewServeMux registers the handlers on a new mux. Panics inside a
// handler are reported to sentry before net/http recovers them.
//
// The root handler is dispatched outside the mux, so requests for
// unclean paths (`//a`, `/a/../b`) reach it as sent instead of being
// redirected to their clean form.
func NewServeMux(handlers []*HttpHandler) http.Handler {
	mux := http.NewServeMux()
	root := http.NotFoundHandler()

	for _, handler := range handlers {
		if handler.Pattern == RootPattern {
			root = handler.Handler
			continue
		}

		mux.Handle(handler.Pattern, handler.Handler)
	}

	dispatch := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isCleanPath(r.URL.Path) {
			// an empty pattern means no route matched, neither by path
			// nor by method
			if _, pattern := mux.Handler(r); pattern != "" {
				mux.ServeHTTP(w, r)
				return
			}
		}

		root.ServeHTTP(w, r)
	})

	sentryHandler := sentryhttp.New(sentryhttp.Options{
		Repanic: true,
	})

	return sentryHandler.Handle(dispatch)
}

// isCleanPath reports whether the mux would serve p without
// redirecting. It mirrors the cleaning net/http applies.
func isCleanPath(p string) bool {
	if p == "" || p[0] != '/' {
		return false
	}

	clean := path.Clean(p)
	if strings.HasSuffix(p, "/") && clean != "/" {
		clean += "/"
	}

	return clean == p
}
