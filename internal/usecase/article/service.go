package article

import (
	"context"
	"errors"
	"fmt"

	"localnews/internal/domain/entity"
	"localnews/internal/repository"
)

// Service implements the article read operations on top of a repository.
type Service struct {
	Repo repository.ArticleRepository
}

// NewService constructs a Service backed by the given repository.
func NewService(repo repository.ArticleRepository) *Service {
	return &Service{Repo: repo}
}

// List returns every article, most recent first.
func (s *Service) List(ctx context.Context) ([]*entity.Article, error) {
	arts, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return arts, nil
}

// ListByCategory returns the articles in the given category, most recent
// first. The category is validated before the store is touched; an unknown
// name yields ErrInvalidCategory. A valid category with no articles returns
// an empty slice, not an error.
func (s *Service) ListByCategory(ctx context.Context, name string) ([]*entity.Article, error) {
	cat, err := entity.ParseCategory(name)
	if err != nil {
		return nil, fmt.Errorf("ListByCategory: %q: %w", name, ErrInvalidCategory)
	}

	arts, err := s.Repo.ListByCategory(ctx, cat)
	if err != nil {
		return nil, fmt.Errorf("ListByCategory: %w", err)
	}
	return arts, nil
}

// Get returns the article with the given ID. Non-positive IDs yield
// ErrInvalidArticleID without touching the store; a missing article yields
// ErrArticleNotFound.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Article, error) {
	if id <= 0 {
		return nil, fmt.Errorf("Get: id=%d: %w", id, ErrInvalidArticleID)
	}

	art, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	if art == nil {
		return nil, fmt.Errorf("Get: id=%d: %w", id, ErrArticleNotFound)
	}
	return art, nil
}

// IsNotFound reports whether err wraps ErrArticleNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrArticleNotFound)
}
