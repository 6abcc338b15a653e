package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /articles", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"title":"A","category":"Local","content":"x","image_url":null,"date":"2024-01-15"},
			{"id":2,"title":"B","category":"Sports","content":"y","image_url":"https://example.com/b.jpg","date":"2024-01-10"}]`))
	})
	mux.HandleFunc("GET /articles/{category}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("category") != "Sports" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"Invalid category"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":2,"title":"B","category":"Sports","content":"y","image_url":null,"date":"2024-01-10"}]`))
	})
	mux.HandleFunc("GET /article/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "1" {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"Article not found"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":1,"title":"A","category":"Local","content":"x","image_url":null,"date":"2024-01-15"}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Articles(t *testing.T) {
	t.Parallel()

	c := New(newTestServer(t).URL)

	arts, err := c.Articles(context.Background(), "")
	if err != nil {
		t.Fatalf("Articles() error = %v", err)
	}
	if len(arts) != 2 {
		t.Fatalf("len = %d, want 2", len(arts))
	}
	if arts[0].ImageURL != nil {
		t.Errorf("article 1 image_url = %v, want nil", *arts[0].ImageURL)
	}
	if arts[1].ImageURL == nil || *arts[1].ImageURL != "https://example.com/b.jpg" {
		t.Errorf("article 2 image_url = %v, want b.jpg", arts[1].ImageURL)
	}
}

func TestClient_Articles_All(t *testing.T) {
	t.Parallel()

	c := New(newTestServer(t).URL)

	arts, err := c.Articles(context.Background(), "All")
	if err != nil {
		t.Fatalf("Articles(All) error = %v", err)
	}
	if len(arts) != 2 {
		t.Fatalf("len = %d, want 2", len(arts))
	}
}

func TestClient_Articles_Category(t *testing.T) {
	t.Parallel()

	c := New(newTestServer(t).URL)

	arts, err := c.Articles(context.Background(), "Sports")
	if err != nil {
		t.Fatalf("Articles(Sports) error = %v", err)
	}
	if len(arts) != 1 || arts[0].Category != "Sports" {
		t.Errorf("got %+v, want one Sports article", arts)
	}
}

func TestClient_Articles_BadCategory(t *testing.T) {
	t.Parallel()

	c := New(newTestServer(t).URL)

	_, err := c.Articles(context.Background(), "Weather")
	var se *StatusError
	if !errors.As(err, &se) || se.Code != http.StatusBadRequest {
		t.Fatalf("error = %v, want StatusError 400", err)
	}
}

func TestClient_Article(t *testing.T) {
	t.Parallel()

	c := New(newTestServer(t).URL)

	art, err := c.Article(context.Background(), 1)
	if err != nil {
		t.Fatalf("Article(1) error = %v", err)
	}
	if art.ID != 1 || art.Title != "A" {
		t.Errorf("got %+v", art)
	}
}

func TestClient_Article_NotFound(t *testing.T) {
	t.Parallel()

	c := New(newTestServer(t).URL)

	_, err := c.Article(context.Background(), 999)
	var se *StatusError
	if !errors.As(err, &se) || se.Code != http.StatusNotFound {
		t.Fatalf("error = %v, want StatusError 404", err)
	}
}

func TestClient_ContextCancelled(t *testing.T) {
	t.Parallel()

	c := New(newTestServer(t).URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.Articles(ctx, ""); err == nil {
		t.Fatal("Articles(cancelled ctx) error = nil, want context error")
	}
}
