// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request DTOs of the admin API before they reach
// the services. Failures name the offending JSON field and the rule it broke,
// e.g. "username must satisfy required".
package validators

import "context"

// Validator checks a DTO. When fields are given, only those struct fields
// are checked; partial updates use this to skip fields the client left empty.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
