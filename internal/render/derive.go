// Package render holds the pure presentation derivations for article
// views: snippets, read times, paragraph splitting, date formatting,
// grouping, and share link construction.
package render

import (
	"strings"
	"time"

	"localnews/internal/domain/entity"
)

const (
	// SnippetLength is the maximum content length shown on article cards
	// before truncation.
	SnippetLength = 150

	// wordsPerMinute is the assumed reading speed for read time estimates.
	wordsPerMinute = 200

	// CardFallbackImageURL replaces a missing or broken image on cards.
	CardFallbackImageURL = "https://images.unsplash.com/photo-1588681664899-f142ff2dc9b1?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80"

	// DetailFallbackImageURL replaces a missing or broken image on the
	// detail view.
	DetailFallbackImageURL = "https://images.unsplash.com/photo-1588681664899-f142ff2dc9b1?ixlib=rb-4.0.3&auto=format&fit=crop&w=1200&q=80"
)

// Truncate shortens content to maxLen characters and appends "..." when
// the content is longer. Content at or under the limit is returned
// unchanged.
func Truncate(content string, maxLen int) string {
	runes := []rune(content)
	if len(runes) <= maxLen {
		return content
	}
	return string(runes[:maxLen]) + "..."
}

// Snippet returns the card snippet for content.
func Snippet(content string) string {
	return Truncate(content, SnippetLength)
}

// WordCount counts whitespace-separated tokens in content.
func WordCount(content string) int {
	return len(strings.Fields(content))
}

// ReadTime estimates reading time in whole minutes at 200 words per
// minute, never less than one minute.
func ReadTime(content string) int {
	words := WordCount(content)
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}

// Paragraphs splits content on blank lines, dropping segments that are
// empty or whitespace-only.
func Paragraphs(content string) []string {
	parts := strings.Split(content, "\n\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

// FormatDate renders an ISO date like 2024-01-15 as "January 15, 2024".
// Unparseable input is returned as-is.
func FormatDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("January 2, 2006")
}

// CategoryGroup holds one category's articles in display order.
type CategoryGroup struct {
	Category entity.Category
	Articles []*entity.Article
}

// GroupByCategory buckets articles by category, preserving article order
// within each group. Groups appear in first-seen order, so with the
// default date-descending input the category with the newest article
// leads. Categories with no articles are omitted.
func GroupByCategory(arts []*entity.Article) []CategoryGroup {
	index := make(map[entity.Category]int)
	groups := make([]CategoryGroup, 0, 4)
	for _, a := range arts {
		i, ok := index[a.Category]
		if !ok {
			i = len(groups)
			index[a.Category] = i
			groups = append(groups, CategoryGroup{Category: a.Category})
		}
		groups[i].Articles = append(groups[i].Articles, a)
	}
	return groups
}

// ImageOrFallback returns the article's image URL, or fallback when the
// article has none.
func ImageOrFallback(imageURL *string, fallback string) string {
	if imageURL == nil || *imageURL == "" {
		return fallback
	}
	return *imageURL
}

// CategoryIcon maps a category to its display emoji.
func CategoryIcon(cat entity.Category) string {
	switch cat {
	case entity.CategoryLocal:
		return "🏠"
	case entity.CategoryPolitics:
		return "🏛️"
	case entity.CategorySports:
		return "⚽"
	case entity.CategoryEntertainment:
		return "🎭"
	default:
		return ""
	}
}
