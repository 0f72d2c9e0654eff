package model

import "time"

// Collection is a user-curated named set of artwork identifiers.
// Membership is unique; insertion order is preserved for display.
type Collection struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	CoverImageURL string    `json:"coverImageUrl,omitempty"`
	ArtworkIDs    []string  `json:"artworkIds"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Contains reports whether the artwork is already a member.
func (c *Collection) Contains(artworkID string) bool {
	for _, id := range c.ArtworkIDs {
		if id == artworkID {
			return true
		}
	}
	return false
}
