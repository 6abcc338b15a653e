package pathutil

import (
	"regexp"
	"strings"
)

// pathPattern pairs a compiled route pattern with its normalized template.
type pathPattern struct {
	pattern  *regexp.Regexp
	template string
}

// pathPatterns lists the dynamic routes, most specific first.
// Pre-compiled at initialization.
var pathPatterns = []*pathPattern{
	{pattern: regexp.MustCompile(`^/article/\d+$`), template: "/article/:id"},
	{pattern: regexp.MustCompile(`^/articles/[^/]+$`), template: "/articles/:category"},
}

// NormalizePath collapses dynamic URL paths to template form so metrics
// labels stay bounded. /article/3 becomes /article/:id and
// /articles/Sports becomes /articles/:category; static paths such as
// /health and /metrics pass through unchanged.
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.pattern.MatchString(path) {
			return p.template
		}
	}
	return path
}
