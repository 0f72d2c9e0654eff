package repository

import (
	"context"
	"errors"

	"ArtLens/model"

	"gorm.io/gorm"
)

// ARModelRepository defines access to the 3D model catalog.
type ARModelRepository interface {
	Create(ctx context.Context, m *model.ARModel) error
	GetByID(ctx context.Context, id string) (*model.ARModel, error)
	List(ctx context.Context) ([]*model.ARModel, error)
}

// gormARModelRepository is the GORM implementation.
type gormARModelRepository struct {
	db *gorm.DB
}

// NewGormARModelRepository creates a GORM AR model repository.
func NewGormARModelRepository(db *gorm.DB) ARModelRepository {
	return &gormARModelRepository{db: db}
}

func (r *gormARModelRepository) Create(ctx context.Context, m *model.ARModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// GetByID returns (nil, nil) when the model does not exist.
func (r *gormARModelRepository) GetByID(ctx context.Context, id string) (*model.ARModel, error) {
	var m model.ARModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *gormARModelRepository) List(ctx context.Context) ([]*model.ARModel, error) {
	var models []*model.ARModel
	err := r.db.WithContext(ctx).Order("name ASC").Find(&models).Error
	return models, err
}
