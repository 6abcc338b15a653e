// Package article provides the read-side use cases for the article
// catalog: listing, category filtering, and single-article lookup.
package article

import "errors"

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that the requested article was not found.
	ErrArticleNotFound = errors.New("article not found")

	// ErrInvalidArticleID indicates that the provided article ID is invalid.
	// Article IDs must be positive integers.
	ErrInvalidArticleID = errors.New("invalid article ID")

	// ErrInvalidCategory indicates a category outside the fixed set.
	// Detected before any store access.
	ErrInvalidCategory = errors.New("invalid category")
)
