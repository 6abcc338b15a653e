package postgres_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"localnews/internal/domain/entity"
	"localnews/internal/infra/adapter/persistence/postgres"
)

func artRows(articles ...*entity.Article) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "title", "category", "content", "image_url", "date",
	})
	for _, a := range articles {
		var img any
		if a.ImageURL != nil {
			img = *a.ImageURL
		}
		rows.AddRow(a.ID, a.Title, string(a.Category), a.Content, img, a.Date)
	}
	return rows
}

func TestArticleRepo_Get(t *testing.T) {
	t.Parallel()

	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	want := &entity.Article{
		ID: 7, Title: "Mayor Unveils 'Green Future 2030' Environmental Plan",
		Category: entity.CategoryPolitics,
		Content:  "Mayor Johnson today unveiled an environmental initiative.",
		Date:     "2024-01-09",
	}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(int64(7)).
		WillReturnRows(artRows(want))

	repo := postgres.NewArticleRepo(db)
	got, err := repo.Get(context.Background(), 7)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Get mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_ListByCategory(t *testing.T) {
	t.Parallel()

	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("SELECT.*FROM articles.*WHERE category").
		WithArgs("Entertainment").
		WillReturnRows(artRows(
			&entity.Article{ID: 4, Title: "a", Category: entity.CategoryEntertainment, Content: "c", Date: "2024-01-12"},
			&entity.Article{ID: 8, Title: "b", Category: entity.CategoryEntertainment, Content: "c", Date: "2024-01-08"},
		))

	repo := postgres.NewArticleRepo(db)
	arts, err := repo.ListByCategory(context.Background(), entity.CategoryEntertainment)
	if err != nil {
		t.Fatalf("ListByCategory err=%v", err)
	}
	for _, a := range arts {
		if a.Category != entity.CategoryEntertainment {
			t.Errorf("category = %q, want Entertainment", a.Category)
		}
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_Count_Empty(t *testing.T) {
	t.Parallel()

	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM articles")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	repo := postgres.NewArticleRepo(db)
	count, err := repo.Count(context.Background())
	if err != nil || count != 0 {
		t.Fatalf("Count = %d err=%v", count, err)
	}
}
