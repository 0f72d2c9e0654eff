package model

import (
	"strings"
	"time"
)

// Artwork represents a catalog artwork. Records are immutable once resolved
// for a viewer session; display overrides never write back here.
type Artwork struct {
	ID           string    `json:"id"`
	ArtistID     string    `json:"artistId"`
	Title        string    `json:"title"`
	ImageURL     string    `json:"imageUrl"`
	Description  string    `json:"description"`
	Categories   []string  `json:"categories"` // display order preserved
	Dimensions   string    `json:"dimensions,omitempty"`
	Medium       string    `json:"medium,omitempty"`
	Price        string    `json:"price,omitempty"`
	OnSale       bool      `json:"onSale"`
	LikeCount    int       `json:"likeCount"`
	CommentCount int       `json:"commentCount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// HasCategory reports whether the artwork carries the given category tag.
// Matching ignores order.
func (a *Artwork) HasCategory(category string) bool {
	for _, c := range a.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// JoinCategories flattens the category list for storage in a single column.
func JoinCategories(categories []string) string {
	return strings.Join(categories, ",")
}

// SplitCategories restores a category list from its column form.
func SplitCategories(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
