package http

import (
	"fmt"
	"path"
	"strings"

	"github.com/MKhiriev/sky-take-out/internal/config"
)

// wildcardSuffix marks a pattern that covers a path and everything below it.
const wildcardSuffix = "/**"

// RouteRule is one entry of the guard's rule list.
type RouteRule struct {
	Pattern  string
	Excluded bool
}

// RouteGuard decides whether a request path requires a token.
//
// Exclusions are checked before protections: a path matching any excluded
// pattern is never challenged, even if a protected pattern matches it too.
// Within each class rules are tried in declared order and the first match
// wins.
//
// Patterns are either exact paths ("/admin/employee/login") or prefixes
// ending in "/**" ("/admin/**" matches "/admin" and everything below it).
type RouteGuard struct {
	excluded  []string
	protected []string
}

func NewRouteGuard(rules ...RouteRule) (*RouteGuard, error) {
	g := &RouteGuard{}
	for _, rule := range rules {
		if !strings.HasPrefix(rule.Pattern, "/") {
			return nil, fmt.Errorf("%w: %q", ErrInvalidRoutePattern, rule.Pattern)
		}
		if rule.Excluded {
			g.excluded = append(g.excluded, rule.Pattern)
		} else {
			g.protected = append(g.protected, rule.Pattern)
		}
	}
	return g, nil
}

// NewRouteGuardFromConfig builds the guard from the protected and excluded
// path lists of the auth configuration.
func NewRouteGuardFromConfig(cfg config.Auth) (*RouteGuard, error) {
	rules := make([]RouteRule, 0, len(cfg.ExcludedPaths)+len(cfg.ProtectedPaths))
	for _, p := range cfg.ExcludedPaths {
		rules = append(rules, RouteRule{Pattern: p, Excluded: true})
	}
	for _, p := range cfg.ProtectedPaths {
		rules = append(rules, RouteRule{Pattern: p})
	}
	return NewRouteGuard(rules...)
}

// Protects reports whether requestPath must carry a valid token.
// The path is cleaned first so "//admin" or "/x/../admin" cannot slip past
// a prefix rule.
func (g *RouteGuard) Protects(requestPath string) bool {
	cleaned := path.Clean("/" + requestPath)

	for _, pattern := range g.excluded {
		if matchPattern(pattern, cleaned) {
			return false
		}
	}
	for _, pattern := range g.protected {
		if matchPattern(pattern, cleaned) {
			return true
		}
	}
	return false
}

func matchPattern(pattern, requestPath string) bool {
	prefix, wildcard := strings.CutSuffix(pattern, wildcardSuffix)
	if !wildcard {
		return requestPath == pattern
	}
	return requestPath == prefix || strings.HasPrefix(requestPath, prefix+"/")
}
