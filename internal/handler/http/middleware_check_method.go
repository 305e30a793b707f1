// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/sky-take-out/internal/logger"
)

// CheckHTTPMethod is installed as the router's MethodNotAllowed handler.
// chi calls it only after the path matched a route registered for other
// methods. It answers 404, exactly like an unknown path, so callers cannot
// probe which paths exist.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod)
func CheckHTTPMethod(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("method not supported by route")
	http.NotFound(w, r)
}
