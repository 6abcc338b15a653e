// Package pathutil extracts route parameters from URL paths and
// normalizes dynamic paths for metrics labels.
package pathutil

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidID is returned when the ID in the URL path is invalid.
var ErrInvalidID = errors.New("invalid id")

// ExtractID extracts and parses an integer ID from a URL path.
// It removes the specified prefix and parses the remainder as an int64.
//
//	id, err := ExtractID("/article/3", "/article/")
//	// Returns: 3, nil
//
// Returns ErrInvalidID when the remainder is not a positive integer.
func ExtractID(path, prefix string) (int64, error) {
	idStr := strings.TrimPrefix(path, prefix)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// ExtractSegment returns the single path segment after prefix, or "" when
// the path equals the prefix (with or without the trailing slash) or the
// remainder contains further segments.
//
//	ExtractSegment("/articles/Sports", "/articles/")  // "Sports"
//	ExtractSegment("/articles", "/articles/")         // ""
//	ExtractSegment("/articles/a/b", "/articles/")     // ""
func ExtractSegment(path, prefix string) string {
	if path == strings.TrimSuffix(prefix, "/") {
		return ""
	}
	seg := strings.TrimPrefix(path, prefix)
	if seg == path || seg == "" || strings.Contains(seg, "/") {
		return ""
	}
	return seg
}
