// Package article provides HTTP handlers for the article endpoints:
// listing, category filtering, and single-article lookup.
package article

import "localnews/internal/domain/entity"

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	ID       int64   `json:"id" example:"1"`
	Title    string  `json:"title" example:"City Council Approves New Community Park"`
	Category string  `json:"category" example:"Local"`
	Content  string  `json:"content" example:"The city council voted unanimously..."`
	ImageURL *string `json:"image_url" example:"https://images.unsplash.com/photo-1519331379826"`
	Date     string  `json:"date" example:"2024-01-15"`
}

// toDTO converts a domain article to its transfer representation.
func toDTO(a *entity.Article) DTO {
	return DTO{
		ID:       a.ID,
		Title:    a.Title,
		Category: string(a.Category),
		Content:  a.Content,
		ImageURL: a.ImageURL,
		Date:     a.Date,
	}
}

// toDTOs converts a slice of domain articles, never returning nil so the
// JSON encoding is always an array.
func toDTOs(arts []*entity.Article) []DTO {
	out := make([]DTO, 0, len(arts))
	for _, a := range arts {
		out = append(out, toDTO(a))
	}
	return out
}
