// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes the admin token codec, the request-scoped identity slot,
// trace ID generation, password digests and HTTP response writing.
package utils

import (
	"context"
	"sync"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key under which the request's [Identity] slot is
// stored in the context.
var IdentityCtxKey = contextKey("identity")

// Identity is the per-request slot holding the authenticated employee ID.
//
// A slot is created once per request by the auth middleware, filled after a
// successful token check and cleared when the request finishes, whatever
// the outcome. It is safe for use by several goroutines of the same request.
type Identity struct {
	mu    sync.RWMutex
	id    int64
	isSet bool
}

// Set stores the employee ID, replacing any previous value.
func (i *Identity) Set(id int64) {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.id = id
	i.isSet = true
}

// Get returns the stored employee ID. ok is false when nothing is stored.
func (i *Identity) Get() (id int64, ok bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	return i.id, i.isSet
}

// Clear empties the slot. Later Get calls report absence until Set is called
// again.
func (i *Identity) Clear() {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.id = 0
	i.isSet = false
}

// WithIdentity returns a child context carrying a new, empty [Identity] slot
// together with the slot itself.
//
// Example usage:
//
//	ctx, identity := utils.WithIdentity(r.Context())
//	defer identity.Clear()
func WithIdentity(ctx context.Context) (context.Context, *Identity) {
	identity := new(Identity)
	return context.WithValue(ctx, IdentityCtxKey, identity), identity
}

// IdentityFromContext returns the [Identity] slot stored in ctx, or nil when
// the request never passed the auth middleware.
func IdentityFromContext(ctx context.Context) *Identity {
	identity, _ := ctx.Value(IdentityCtxKey).(*Identity)
	return identity
}

// CurrentEmployeeID retrieves the authenticated employee ID from the context.
//
// Returns the employee ID and an ok flag:
//   - ok == true: the request was authenticated and the slot is still set
//   - ok == false: no slot in ctx, or the slot is empty or already cleared
//
// Example usage:
//
//	empID, ok := utils.CurrentEmployeeID(ctx)
//	if !ok {
//	    // handle missing principal
//	}
func CurrentEmployeeID(ctx context.Context) (int64, bool) {
	identity := IdentityFromContext(ctx)
	if identity == nil {
		return 0, false
	}
	return identity.Get()
}
