package lookup

import (
	"net/http"
	"strings"
)

// Kind identifies which handler serves a request.
type Kind int

const (
	KindNotFound Kind = iota
	KindReady
	KindCategory
	KindMissingParam
)

// String returns the route label used in logs and metrics.
func (k Kind) String() string {
	switch k {
	case KindReady:
		return "ready"
	case KindCategory:
		return "category"
	case KindMissingParam:
		return "missing_param"
	default:
		return "not_found"
	}
}

const (
	pathReady    = "/ready"
	pathCategory = "/category"

	// keyParam names the query parameter carrying the lookup key.
	keyParam = "url"
)

// Route maps a request to its handler kind. Method and path are matched as
// exact strings: no patterns, no trailing-slash or case normalization. path is
// expected in its escaped form, as sent on the wire.
//
// For GET /category the raw query is parsed as application/x-www-form-urlencoded:
// pairs are separated by "&" only and split on their first "=". The value of
// the first pair named exactly "url" becomes the lookup key. A missing query or
// a query without such a pair yields KindMissingParam. An empty value ("url=")
// is a present key.
func Route(method, path, rawQuery string) (Kind, string) {
	if method != http.MethodGet {
		return KindNotFound, ""
	}

	switch path {
	case pathReady:
		return KindReady, ""
	case pathCategory:
		key, ok := lookupKey(rawQuery)
		if !ok {
			return KindMissingParam, ""
		}
		return KindCategory, key
	default:
		return KindNotFound, ""
	}
}

// RouteName returns the route label of r.
func RouteName(r *http.Request) string {
	kind, _ := Route(r.Method, r.URL.EscapedPath(), r.URL.RawQuery)
	return kind.String()
}

func lookupKey(rawQuery string) (string, bool) {
	if rawQuery == "" {
		return "", false
	}
	for pair := range strings.SplitSeq(rawQuery, "&") {
		if pair == "" {
			continue
		}
		name, value, _ := strings.Cut(pair, "=")
		if decodeFormComponent(name) == keyParam {
			return decodeFormComponent(value), true
		}
	}
	return "", false
}
