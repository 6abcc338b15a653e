// Package entity defines the core domain entities and validation logic for the application.
// It contains the Article entity, the fixed category set, and domain-specific errors.
package entity

// Article represents a single news item in the catalog.
// Date is a calendar date in ISO 8601 form ("2006-01-02"); it carries no
// time-of-day component and is used only for ordering and display.
type Article struct {
	ID       int64
	Title    string
	Category Category
	Content  string
	ImageURL *string
	Date     string
}

// Category is one of the fixed set of article categories.
type Category string

// The complete category set. Collection filtering, seeding, and the
// frontend navigation all derive from this list.
const (
	CategoryLocal         Category = "Local"
	CategoryPolitics      Category = "Politics"
	CategorySports        Category = "Sports"
	CategoryEntertainment Category = "Entertainment"
)

// Categories lists all valid categories in display order.
func Categories() []Category {
	return []Category{CategoryLocal, CategoryPolitics, CategorySports, CategoryEntertainment}
}

// CategoryNames returns the category set as plain strings, for JSON
// responses and error bodies.
func CategoryNames() []string {
	cats := Categories()
	names := make([]string, 0, len(cats))
	for _, c := range cats {
		names = append(names, string(c))
	}
	return names
}

// ParseCategory validates a raw path segment against the category set.
// Returns ErrInvalidCategory for anything outside the set; matching is
// exact and case-sensitive, so "sports" is rejected.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", ErrInvalidCategory
}

// Valid reports whether c is a member of the category set.
func (c Category) Valid() bool {
	_, err := ParseCategory(string(c))
	return err == nil
}
