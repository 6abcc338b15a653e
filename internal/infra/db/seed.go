package db

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"

	"localnews/internal/domain/entity"
	"localnews/internal/repository"
)

//go:embed seeds/articles.yaml
var seedArticlesYAML []byte

// seedArticle mirrors one entry of the embedded catalog.
type seedArticle struct {
	Title    string `yaml:"title"`
	Category string `yaml:"category"`
	Content  string `yaml:"content"`
	ImageURL string `yaml:"image_url"`
	Date     string `yaml:"date"`
}

type seedCatalog struct {
	Articles []seedArticle `yaml:"articles"`
}

// SeedArticles parses the embedded catalog into entities, validating
// every category against the fixed set.
func SeedArticles() ([]*entity.Article, error) {
	var catalog seedCatalog
	if err := yaml.Unmarshal(seedArticlesYAML, &catalog); err != nil {
		return nil, fmt.Errorf("parse seed catalog: %w", err)
	}
	if len(catalog.Articles) == 0 {
		return nil, fmt.Errorf("seed catalog is empty")
	}

	articles := make([]*entity.Article, 0, len(catalog.Articles))
	for i, s := range catalog.Articles {
		category, err := entity.ParseCategory(s.Category)
		if err != nil {
			return nil, fmt.Errorf("seed article %d (%q): %w: %q", i+1, s.Title, err, s.Category)
		}
		if s.Title == "" || s.Content == "" || s.Date == "" {
			return nil, fmt.Errorf("seed article %d: title, content and date are required", i+1)
		}
		art := &entity.Article{
			Title:    s.Title,
			Category: category,
			Content:  s.Content,
			Date:     s.Date,
		}
		if s.ImageURL != "" {
			url := s.ImageURL
			art.ImageURL = &url
		}
		articles = append(articles, art)
	}
	return articles, nil
}

// EnsureSeeded populates an empty store with the embedded catalog.
// Running it against a non-empty store is a no-op, so it is safe to call
// on every start. It must complete before the HTTP listener starts so
// category and id queries see the full catalog.
func EnsureSeeded(ctx context.Context, repo repository.ArticleRepository, logger *slog.Logger) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("check article count: %w", err)
	}
	if count > 0 {
		logger.Info("article store already seeded", slog.Int64("articles", count))
		return nil
	}

	articles, err := SeedArticles()
	if err != nil {
		return err
	}

	for _, art := range articles {
		if err := repo.Create(ctx, art); err != nil {
			return fmt.Errorf("insert seed article %q: %w", art.Title, err)
		}
	}

	logger.Info("article store seeded", slog.Int("articles", len(articles)))
	return nil
}
