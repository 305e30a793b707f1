// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the auth middleware when reading the token header.
// Callers can match against them with [errors.Is].
var (
	// ErrEmptyToken is returned when the token header is absent, blank or
	// carries a bare "Bearer" scheme.
	ErrEmptyToken = errors.New("empty token header")

	// ErrInvalidRoutePattern is returned by NewRouteGuard for patterns that
	// do not start with "/".
	ErrInvalidRoutePattern = errors.New("route pattern must start with /")
)

// Business messages for malformed requests.
const (
	MsgInvalidRequestBody = "invalid request body"
	MsgInvalidParameter   = "invalid parameter: "
)
