package repository

import (
	"context"
	"errors"

	"ArtLens/model"

	"gorm.io/gorm"
)

// ArtistRepository defines artist profile data access.
type ArtistRepository interface {
	Create(ctx context.Context, artist *model.Artist) error
	GetByID(ctx context.Context, id string) (*model.Artist, error)
	List(ctx context.Context) ([]*model.Artist, error)
}

// gormArtistRepository is the GORM implementation.
type gormArtistRepository struct {
	db *gorm.DB
}

// NewGormArtistRepository creates a GORM artist repository.
func NewGormArtistRepository(db *gorm.DB) ArtistRepository {
	return &gormArtistRepository{db: db}
}

func (r *gormArtistRepository) Create(ctx context.Context, artist *model.Artist) error {
	return r.db.WithContext(ctx).Create(artist).Error
}

// GetByID returns (nil, nil) when the artist does not exist.
func (r *gormArtistRepository) GetByID(ctx context.Context, id string) (*model.Artist, error) {
	var artist model.Artist
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&artist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &artist, nil
}

func (r *gormArtistRepository) List(ctx context.Context) ([]*model.Artist, error) {
	var artists []*model.Artist
	err := r.db.WithContext(ctx).Order("name ASC").Find(&artists).Error
	return artists, err
}
