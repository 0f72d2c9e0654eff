package collection

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ArtLens/logger"
	"ArtLens/model"

	"github.com/google/uuid"
)

// ErrCollectionNotFound marks a collection id absent from the user's set.
var ErrCollectionNotFound = errors.New("collection not found")

// Store persists a user's full collection set as one document. Reads and
// writes are whole-document; concurrent writers race and the last write
// wins, which is accepted for a single-user store.
type Store interface {
	Load(ctx context.Context, userID int64) ([]model.Collection, error)
	Save(ctx context.Context, userID int64, collections []model.Collection) error
}

// AddResult is the tagged outcome of a membership add.
type AddResult string

const (
	// AddResultAdded means the artwork joined the collection.
	AddResultAdded AddResult = "added"
	// AddResultAlreadyPresent means membership was unchanged.
	AddResultAlreadyPresent AddResult = "already_present"
)

// Service manages user collections and artwork membership.
type Service struct {
	store Store
}

// NewService creates a collection service on the given store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// List returns the user's collections. An empty slice is a meaningful state:
// the UI directs the user to create their first collection.
func (s *Service) List(ctx context.Context, userID int64) ([]model.Collection, error) {
	collections, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load collections: %w", err)
	}
	return collections, nil
}

// Create adds a new empty collection to the user's set.
func (s *Service) Create(ctx context.Context, userID int64, name, description string) (*model.Collection, error) {
	collections, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load collections: %w", err)
	}

	c := model.Collection{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		ArtworkIDs:  []string{},
		CreatedAt:   time.Now(),
	}
	collections = append(collections, c)

	if err := s.store.Save(ctx, userID, collections); err != nil {
		return nil, fmt.Errorf("failed to save collections: %w", err)
	}

	logger.Info("collection created",
		logger.Int64("userId", userID), logger.String("collection", c.ID))
	return &c, nil
}

// AddArtwork appends the artwork to the collection's membership if it is not
// already a member. The first artwork added also becomes the cover image.
// Re-adding reports AddResultAlreadyPresent and performs no mutation.
func (s *Service) AddArtwork(ctx context.Context, userID int64, collectionID, artworkID, artworkImageURL string) (AddResult, error) {
	collections, err := s.store.Load(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to load collections: %w", err)
	}

	idx := -1
	for i := range collections {
		if collections[i].ID == collectionID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return "", ErrCollectionNotFound
	}

	if collections[idx].Contains(artworkID) {
		return AddResultAlreadyPresent, nil
	}

	if len(collections[idx].ArtworkIDs) == 0 {
		collections[idx].CoverImageURL = artworkImageURL
	}
	collections[idx].ArtworkIDs = append(collections[idx].ArtworkIDs, artworkID)

	if err := s.store.Save(ctx, userID, collections); err != nil {
		return "", fmt.Errorf("failed to save collections: %w", err)
	}

	logger.Info("artwork added to collection",
		logger.Int64("userId", userID),
		logger.String("collection", collectionID),
		logger.String("artwork", artworkID))
	return AddResultAdded, nil
}
