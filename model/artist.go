package model

import "time"

// Artist represents an artist profile in the catalog.
type Artist struct {
	ID         string    `json:"id" gorm:"type:varchar(64);primaryKey"`
	Name       string    `json:"name" gorm:"type:varchar(255);not null"`
	Bio        string    `json:"bio,omitempty" gorm:"type:text"`
	AvatarURL  string    `json:"avatarUrl,omitempty" gorm:"type:varchar(767)"`
	Discipline string    `json:"discipline,omitempty" gorm:"type:varchar(100)"`
	Location   string    `json:"location,omitempty" gorm:"type:varchar(255)"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
