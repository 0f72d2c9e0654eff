package collection

import (
	"context"
	"errors"
	"testing"

	"ArtLens/model"
)

// memStore keeps each user's collection set in memory, whole-document like
// the redis store.
type memStore struct {
	sets    map[int64][]model.Collection
	loadErr error
	saveErr error
	saves   int
}

func newMemStore() *memStore {
	return &memStore{sets: map[int64][]model.Collection{}}
}

func (s *memStore) Load(_ context.Context, userID int64) ([]model.Collection, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	stored := s.sets[userID]
	out := make([]model.Collection, len(stored))
	copy(out, stored)
	return out, nil
}

func (s *memStore) Save(_ context.Context, userID int64, collections []model.Collection) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	stored := make([]model.Collection, len(collections))
	copy(stored, collections)
	s.sets[userID] = stored
	return nil
}

const testUser int64 = 7

func TestListEmptyIsMeaningful(t *testing.T) {
	svc := NewService(newMemStore())

	got, err := svc.List(context.Background(), testUser)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("fresh user has %d collections, want 0", len(got))
	}
}

func TestCreateCollection(t *testing.T) {
	store := newMemStore()
	svc := NewService(store)

	c, err := svc.Create(context.Background(), testUser, "Coastal", "For the kitchen wall")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if c.ID == "" {
		t.Error("created collection has no id")
	}
	if c.Name != "Coastal" || c.Description != "For the kitchen wall" {
		t.Errorf("collection = %+v", c)
	}
	if len(c.ArtworkIDs) != 0 || c.CoverImageURL != "" {
		t.Errorf("new collection not empty: %+v", c)
	}

	listed, _ := svc.List(context.Background(), testUser)
	if len(listed) != 1 || listed[0].ID != c.ID {
		t.Errorf("listed = %+v", listed)
	}
}

func TestCreateAssignsDistinctIDs(t *testing.T) {
	svc := NewService(newMemStore())
	a, _ := svc.Create(context.Background(), testUser, "A", "")
	b, _ := svc.Create(context.Background(), testUser, "B", "")
	if a.ID == b.ID {
		t.Errorf("duplicate collection id %q", a.ID)
	}
}

func TestAddArtworkPromotesFirstCover(t *testing.T) {
	svc := NewService(newMemStore())
	c, _ := svc.Create(context.Background(), testUser, "Coastal", "")

	res, err := svc.AddArtwork(context.Background(), testUser, c.ID, "art-1", "https://img/one.jpg")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if res != AddResultAdded {
		t.Errorf("result = %q, want added", res)
	}

	// A second artwork never replaces the cover.
	if _, err := svc.AddArtwork(context.Background(), testUser, c.ID, "art-2", "https://img/two.jpg"); err != nil {
		t.Fatalf("add: %v", err)
	}

	listed, _ := svc.List(context.Background(), testUser)
	if listed[0].CoverImageURL != "https://img/one.jpg" {
		t.Errorf("cover = %q, want the first member's image", listed[0].CoverImageURL)
	}
	if got := listed[0].ArtworkIDs; len(got) != 2 || got[0] != "art-1" || got[1] != "art-2" {
		t.Errorf("members = %v", got)
	}
}

func TestAddArtworkIdempotent(t *testing.T) {
	store := newMemStore()
	svc := NewService(store)
	c, _ := svc.Create(context.Background(), testUser, "Coastal", "")

	svc.AddArtwork(context.Background(), testUser, c.ID, "art-1", "https://img/one.jpg")
	savesBefore := store.saves

	res, err := svc.AddArtwork(context.Background(), testUser, c.ID, "art-1", "https://img/other.jpg")
	if err != nil {
		t.Fatalf("re-add: %v", err)
	}
	if res != AddResultAlreadyPresent {
		t.Errorf("result = %q, want already_present", res)
	}
	if store.saves != savesBefore {
		t.Error("re-add wrote to the store")
	}

	listed, _ := svc.List(context.Background(), testUser)
	count := 0
	for _, id := range listed[0].ArtworkIDs {
		if id == "art-1" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("artwork appears %d times, want exactly 1", count)
	}
	if listed[0].CoverImageURL != "https://img/one.jpg" {
		t.Errorf("cover changed on re-add: %q", listed[0].CoverImageURL)
	}
}

func TestAddArtworkUnknownCollection(t *testing.T) {
	svc := NewService(newMemStore())

	_, err := svc.AddArtwork(context.Background(), testUser, "nope", "art-1", "")
	if !errors.Is(err, ErrCollectionNotFound) {
		t.Errorf("err = %v, want ErrCollectionNotFound", err)
	}
}

func TestAddArtworkTargetsOnlyNamedCollection(t *testing.T) {
	svc := NewService(newMemStore())
	a, _ := svc.Create(context.Background(), testUser, "A", "")
	b, _ := svc.Create(context.Background(), testUser, "B", "")

	svc.AddArtwork(context.Background(), testUser, b.ID, "art-1", "https://img/one.jpg")

	listed, _ := svc.List(context.Background(), testUser)
	for _, c := range listed {
		switch c.ID {
		case a.ID:
			if len(c.ArtworkIDs) != 0 {
				t.Errorf("collection A gained members: %v", c.ArtworkIDs)
			}
		case b.ID:
			if len(c.ArtworkIDs) != 1 {
				t.Errorf("collection B members = %v", c.ArtworkIDs)
			}
		}
	}
}

func TestStoreErrorsSurface(t *testing.T) {
	store := newMemStore()
	svc := NewService(store)
	c, _ := svc.Create(context.Background(), testUser, "A", "")

	store.loadErr = errors.New("redis down")
	if _, err := svc.List(context.Background(), testUser); err == nil {
		t.Error("list swallowed the load error")
	}
	if _, err := svc.AddArtwork(context.Background(), testUser, c.ID, "art-1", ""); err == nil {
		t.Error("add swallowed the load error")
	}

	store.loadErr = nil
	store.saveErr = errors.New("redis down")
	if _, err := svc.AddArtwork(context.Background(), testUser, c.ID, "art-1", ""); err == nil {
		t.Error("add swallowed the save error")
	}
}
