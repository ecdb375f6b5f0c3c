// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the handler to register with
// [chi.Mux.MethodNotAllowed]. Chi answers a known path with an unknown
// method with 405; this answers it with the JSON 404 used for unknown
// paths, so callers cannot probe which paths exist.
//
// Parameterised routes such as "/users/watchlist/{movieId}" are resolved
// with [chi.Mux.Match]. A request the router can serve after all is
// forwarded to it.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}
		notFound(w, r)
	}
}
