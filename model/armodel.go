package model

import "time"

// ARModel represents an embeddable 3D model drawn from a static catalog.
// Immutable.
type ARModel struct {
	ID           string `json:"id" gorm:"type:varchar(64);primaryKey"`
	Name         string `json:"name" gorm:"type:varchar(255);not null"`
	EmbedURI     string `json:"embedUri" gorm:"type:varchar(767);not null"`
	ThumbnailURI string `json:"thumbnailUri" gorm:"type:varchar(767)"`
	Description  string `json:"description,omitempty" gorm:"type:text"`
	Creator      string `json:"creator,omitempty" gorm:"type:varchar(255)"`
	// CatalogID is the external-catalog identifier used to derive a
	// downloadable asset URL. Empty means the fixed default asset is used.
	CatalogID string    `json:"catalogId,omitempty" gorm:"type:varchar(64)"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
