package middleware

import "strings"

// publicRule marks a route as reachable without a credential. methods nil
// means every method; a non-nil set makes the rule a method-specific
// exception on an otherwise protected path.
type publicRule struct {
	exact   string
	prefix  string
	segment string // path with one trailing wildcard segment, e.g. /api/notice/*
	methods map[string]struct{}
}

func methods(ms ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(ms))
	for _, m := range ms {
		set[m] = struct{}{}
	}
	return set
}

// publicRoutes is the single source of truth for route classification.
// The original design scattered these rules between the framework security
// config and the filter's own skip logic; keeping one table here is what
// the gate, the router and the tests all share.
var publicRoutes = []publicRule{
	// Local account entry points.
	{exact: "/api/user", methods: methods("POST")},
	{exact: "/api/user/login", methods: methods("POST")},
	{exact: "/api/user/name/check", methods: methods("POST")},
	{exact: "/api/user/email/check", methods: methods("POST")},

	// Mail verification and password-reset mail, all methods.
	{prefix: "/api/mail/"},

	// Federated login callback.
	{exact: "/api/oauth/kakao/callback", methods: methods("GET")},

	// Notice reads are public; writes on the same paths require an admin
	// session, so the detail rule is GET-only.
	{exact: "/api/notice/page_count", methods: methods("GET")},
	{prefix: "/api/notice/page/", methods: methods("GET")},
	{segment: "/api/notice/*", methods: methods("GET")},

	// Location recommendations carry no identifiers and are open.
	{prefix: "/api/proxy/location/"},

	// Operational endpoints.
	{exact: "/health"},
	{exact: "/health/ready"},
	{exact: "/metrics"},
}

// IsPublicRoute reports whether a request may proceed without a credential.
// Classification happens before any token handling: a public route with a
// present token still goes through validation (fail closed).
func IsPublicRoute(method, path string) bool {
	for _, rule := range publicRoutes {
		if !rule.matchPath(path) {
			continue
		}
		if rule.methods == nil {
			return true
		}
		if _, ok := rule.methods[method]; ok {
			return true
		}
	}
	return false
}

func (r publicRule) matchPath(path string) bool {
	switch {
	case r.exact != "":
		return path == r.exact
	case r.prefix != "":
		return strings.HasPrefix(path, r.prefix)
	case r.segment != "":
		base := strings.TrimSuffix(r.segment, "*")
		if !strings.HasPrefix(path, base) {
			return false
		}
		rest := path[len(base):]
		return rest != "" && !strings.Contains(rest, "/")
	default:
		return false
	}
}
