// Package repository defines the persistence interfaces consumed by the
// use case layer. Concrete implementations live under
// internal/infra/adapter/persistence.
package repository

import (
	"context"

	"localnews/internal/domain/entity"
)

type ArticleRepository interface {
	// List retrieves all articles ordered by date descending, ties broken
	// by insertion order.
	List(ctx context.Context) ([]*entity.Article, error)
	// ListByCategory retrieves the articles whose category equals the
	// input, in the same order as List. The caller guarantees the
	// category is a member of the fixed set.
	ListByCategory(ctx context.Context, category entity.Category) ([]*entity.Article, error)
	// Get retrieves a single article by ID.
	// Returns (nil, nil) if no article matches.
	Get(ctx context.Context, id int64) (*entity.Article, error)
	// Count returns the total number of articles in the store.
	// Used for idempotent seeding and business metrics.
	Count(ctx context.Context) (int64, error)
	// Create inserts a new article. Only the one-time seed path writes;
	// the HTTP surface exposes no mutation.
	Create(ctx context.Context, article *entity.Article) error
}
