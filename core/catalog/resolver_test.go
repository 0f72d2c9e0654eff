package catalog

import (
	"context"
	"errors"
	"testing"

	"ArtLens/model"
)

type fakeArtworkRepo struct {
	artworks map[string]*model.Artwork
	err      error
}

func (r *fakeArtworkRepo) CreateArtwork(artwork *model.Artwork) error {
	r.artworks[artwork.ID] = artwork
	return nil
}

func (r *fakeArtworkRepo) GetArtworkByID(id string) (*model.Artwork, error) {
	if r.err != nil {
		return nil, r.err
	}
	a, ok := r.artworks[id]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (r *fakeArtworkRepo) GetAllArtworks(limit, offset int) ([]*model.Artwork, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*model.Artwork, 0, len(r.artworks))
	for _, a := range r.artworks {
		copied := *a
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeArtworkRepo) GetArtworksByCategory(category, excludeID string, limit int) ([]*model.Artwork, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*model.Artwork
	for _, a := range r.artworks {
		if a.ID == excludeID || !a.HasCategory(category) {
			continue
		}
		if len(out) >= limit {
			break
		}
		copied := *a
		out = append(out, &copied)
	}
	return out, nil
}

type fakeArtistRepo struct {
	artists map[string]*model.Artist
}

func (r *fakeArtistRepo) Create(_ context.Context, artist *model.Artist) error {
	r.artists[artist.ID] = artist
	return nil
}

func (r *fakeArtistRepo) GetByID(_ context.Context, id string) (*model.Artist, error) {
	a, ok := r.artists[id]
	if !ok {
		return nil, nil
	}
	return a, nil
}

func (r *fakeArtistRepo) List(_ context.Context) ([]*model.Artist, error) {
	out := make([]*model.Artist, 0, len(r.artists))
	for _, a := range r.artists {
		out = append(out, a)
	}
	return out, nil
}

type fakeRecorder struct {
	views []string
	err   error
}

func (r *fakeRecorder) Record(_ context.Context, userID int64, artworkID string) error {
	if r.err != nil {
		return r.err
	}
	r.views = append(r.views, artworkID)
	return nil
}

func newTestResolver(recent RecentRecorder) (*Resolver, *fakeArtworkRepo) {
	artworks := &fakeArtworkRepo{artworks: map[string]*model.Artwork{
		"1": {
			ID:         "1",
			ArtistID:   "artist-1",
			Title:      "Harbor at Dusk",
			ImageURL:   "https://images.unsplash.com/photo-1549289524-06cf8837ace5?w=800",
			Categories: []string{"landscape", "oil"},
			Price:      "$1,800",
		},
		"2": {
			ID:         "2",
			ArtistID:   "artist-1",
			Title:      "Morning Fog, Inner Archipelago",
			Categories: []string{"landscape", "oil"},
		},
		"3": {
			ID:         "3",
			ArtistID:   "artist-3",
			Title:      "Sediment IV",
			Categories: []string{"abstract"},
		},
	}}
	artists := &fakeArtistRepo{artists: map[string]*model.Artist{
		"artist-1": {ID: "artist-1", Name: "Mara Lindqvist"},
	}}
	return NewResolver(artworks, artists, recent), artworks
}

func TestResolveAppliesDisplayOverride(t *testing.T) {
	r, repo := newTestResolver(nil)

	got, err := r.Resolve(context.Background(), 0, "1")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.Title != "Harbor at Dusk — Artist's Proof" {
		t.Errorf("title = %q, override not applied", got.Title)
	}
	if got.Price != "$2,400" {
		t.Errorf("price = %q, override not applied", got.Price)
	}
	// The stored record keeps its own values.
	if repo.artworks["1"].Title != "Harbor at Dusk" {
		t.Errorf("stored record mutated: %q", repo.artworks["1"].Title)
	}
	// Fields the override leaves empty survive.
	if got.ArtistID != "artist-1" {
		t.Errorf("artistId = %q", got.ArtistID)
	}
}

func TestResolveWithoutOverridePassesThrough(t *testing.T) {
	r, _ := newTestResolver(nil)

	got, err := r.Resolve(context.Background(), 0, "3")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.Title != "Sediment IV" {
		t.Errorf("title = %q", got.Title)
	}
}

func TestResolveUnknownIDIsNotFound(t *testing.T) {
	r, _ := newTestResolver(nil)

	_, err := r.Resolve(context.Background(), 0, "999")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestResolveRecordsRecentViewForUser(t *testing.T) {
	rec := &fakeRecorder{}
	r, _ := newTestResolver(rec)

	if _, err := r.Resolve(context.Background(), 42, "1"); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(rec.views) != 1 || rec.views[0] != "1" {
		t.Errorf("recorded views = %v, want [1]", rec.views)
	}
}

func TestResolveSkipsRecordingForAnonymous(t *testing.T) {
	rec := &fakeRecorder{}
	r, _ := newTestResolver(rec)

	if _, err := r.Resolve(context.Background(), 0, "1"); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(rec.views) != 0 {
		t.Errorf("anonymous view recorded: %v", rec.views)
	}
}

func TestResolveSurvivesRecorderFailure(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("redis down")}
	r, _ := newTestResolver(rec)

	got, err := r.Resolve(context.Background(), 42, "1")
	if err != nil {
		t.Fatalf("resolve failed on recorder error: %v", err)
	}
	if got == nil {
		t.Fatal("resolution lost on recorder error")
	}
}

func TestResolveWrapsLookupError(t *testing.T) {
	r, repo := newTestResolver(nil)
	repo.err = errors.New("connection reset")

	_, err := r.Resolve(context.Background(), 0, "1")
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want a wrapped lookup error", err)
	}
}

func TestArtistForResolvedArtwork(t *testing.T) {
	r, _ := newTestResolver(nil)

	artwork, _ := r.Resolve(context.Background(), 0, "1")
	artist, err := r.ArtistFor(context.Background(), artwork)
	if err != nil {
		t.Fatalf("artistFor: %v", err)
	}
	if artist.Name != "Mara Lindqvist" {
		t.Errorf("artist = %q", artist.Name)
	}
}

func TestArtistForMissingArtist(t *testing.T) {
	r, _ := newTestResolver(nil)

	artwork, _ := r.Resolve(context.Background(), 0, "3")
	if _, err := r.ArtistFor(context.Background(), artwork); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if _, err := r.ArtistFor(context.Background(), &model.Artwork{ID: "x"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("empty artistId: err = %v, want ErrNotFound", err)
	}
}

func TestRecommendationsUseFirstCategory(t *testing.T) {
	r, _ := newTestResolver(nil)

	artwork, _ := r.Resolve(context.Background(), 0, "1")
	recs, err := r.Recommendations(context.Background(), artwork, 8)
	if err != nil {
		t.Fatalf("recommendations: %v", err)
	}
	if len(recs) != 1 || recs[0].ID != "2" {
		ids := make([]string, 0, len(recs))
		for _, rec := range recs {
			ids = append(ids, rec.ID)
		}
		t.Errorf("recommendations = %v, want [2] (same category, subject excluded)", ids)
	}
}

func TestRecommendationsEmptyWithoutCategories(t *testing.T) {
	r, _ := newTestResolver(nil)

	recs, err := r.Recommendations(context.Background(), &model.Artwork{ID: "x"}, 8)
	if err != nil {
		t.Fatalf("recommendations: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("got %d recommendations for an uncategorized artwork", len(recs))
	}
}

func TestListArtworksAppliesOverrides(t *testing.T) {
	r, _ := newTestResolver(nil)

	artworks, err := r.ListArtworks(context.Background(), 24, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, a := range artworks {
		if a.ID == "1" && a.Title != "Harbor at Dusk — Artist's Proof" {
			t.Errorf("listing missed override for artwork 1: %q", a.Title)
		}
	}
}
