// Package sqlite provides the SQLite implementation of the article
// repository. It is the default store: a single file database created on
// first run, matching the original deployment model of the site.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"localnews/internal/domain/entity"
	"localnews/internal/repository"
)

// ArticleRepo implements repository.ArticleRepository using SQLite.
type ArticleRepo struct{ db *sql.DB }

// NewArticleRepo creates a new SQLite-backed article repository.
func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

// List retrieves all articles ordered by date (newest first), ties broken
// by insertion order.
func (repo *ArticleRepo) List(ctx context.Context) ([]*entity.Article, error) {
	const query = `
SELECT id, title, category, content, image_url, date
FROM articles
ORDER BY date DESC, id ASC
`

	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return collectArticles(rows)
}

// ListByCategory retrieves the articles in a single category, newest first.
func (repo *ArticleRepo) ListByCategory(ctx context.Context, category entity.Category) ([]*entity.Article, error) {
	const query = `
SELECT id, title, category, content, image_url, date
FROM articles
WHERE category = ?
ORDER BY date DESC, id ASC
`

	rows, err := repo.db.QueryContext(ctx, query, string(category))
	if err != nil {
		return nil, fmt.Errorf("ListByCategory: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return collectArticles(rows)
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	const query = `
SELECT id, title, category, content, image_url, date
FROM articles
WHERE id = ?
LIMIT 1
`
	article, err := scanArticle(repo.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("Get: QueryRowContext: %w", err)
	}
	return article, nil
}

func (repo *ArticleRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM articles`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: QueryRowContext: %w", err)
	}
	return count, nil
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	const query = `
INSERT INTO articles
(title, category, content, image_url, date)
VALUES (?, ?, ?, ?, ?)
`
	var imageURL sql.NullString
	if article.ImageURL != nil {
		imageURL = sql.NullString{String: *article.ImageURL, Valid: true}
	}
	_, err := repo.db.ExecContext(ctx, query,
		article.Title, string(article.Category), article.Content,
		imageURL, article.Date,
	)
	if err != nil {
		return fmt.Errorf("Create: ExecContext: %w", err)
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanArticle(s scanner) (*entity.Article, error) {
	var article entity.Article
	var category string
	var imageURL sql.NullString
	err := s.Scan(&article.ID, &article.Title, &category,
		&article.Content, &imageURL, &article.Date)
	if err != nil {
		return nil, err
	}
	article.Category = entity.Category(category)
	if imageURL.Valid {
		article.ImageURL = &imageURL.String
	}
	return &article, nil
}

func collectArticles(rows *sql.Rows) ([]*entity.Article, error) {
	articles := make([]*entity.Article, 0, 16)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("Scan: %w", err)
		}
		articles = append(articles, article)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return articles, nil
}
