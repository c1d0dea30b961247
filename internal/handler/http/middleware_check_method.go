// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/eat-around/internal/app"
)

// notFound answers every unmatched request with {"error":"Not found"}.
func notFound(w http.ResponseWriter, _ *http.Request) {
	writeErrorMessage(w, app.MsgNotFound, http.StatusNotFound)
}

// CheckHTTPMethod returns the router's MethodNotAllowed handler. A path
// that exists but does not accept the requested method is reported as
// not found, the same as a path that does not exist.
//
// When the method is registered for a route whose pattern equals the raw
// path, the request is handed back to the router.
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			if _, ok := route.Handlers[r.Method]; ok {
				router.ServeHTTP(w, r)
				return
			}
			break
		}

		notFound(w, r)
	}
}
