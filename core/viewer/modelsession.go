package viewer

import (
	"context"
	"sync"

	"ArtLens/logger"
	"ArtLens/model"
)

// AssetState is the lifecycle state of a model asset derivation.
type AssetState int

const (
	AssetIdle AssetState = iota
	AssetLoading
	AssetLoaded
	AssetError
)

func (s AssetState) String() string {
	switch s {
	case AssetIdle:
		return "idle"
	case AssetLoading:
		return "loading"
	case AssetLoaded:
		return "loaded"
	case AssetError:
		return "error"
	default:
		return "unknown"
	}
}

// AssetDeriver resolves an external-catalog identifier to a downloadable
// asset URL. An empty identifier resolves to the fixed default asset.
// storage.AssetStore is the production implementation.
type AssetDeriver interface {
	DeriveAssetURL(ctx context.Context, catalogID string) (string, error)
}

// ModelHooks are the lifecycle notifications fired by ChangeModel. Each is
// optional; each fires exactly once per ChangeModel call (start, then
// complete or error).
type ModelHooks struct {
	OnLoadStart    func(m model.ARModel)
	OnLoadComplete func(m model.ARModel, assetURL string)
	OnLoadError    func(m model.ARModel, err error)
}

// ModelSession tracks the currently selected 3D model and its derived asset
// URL. Derivation runs asynchronously; a stale derivation finishing after
// the selection changed is discarded by model-identity check, so the latest
// selection always wins.
type ModelSession struct {
	deriver AssetDeriver
	hooks   ModelHooks

	mu         sync.Mutex
	current    *model.ARModel
	assetState AssetState
	assetURL   string
	done       sync.WaitGroup
}

// NewModelSession creates a session with no model selected.
func NewModelSession(deriver AssetDeriver, hooks ModelHooks) *ModelSession {
	return &ModelSession{deriver: deriver, hooks: hooks}
}

// Current returns the selected model, or nil.
func (s *ModelSession) Current() *model.ARModel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// AssetStatus returns the derivation state and the derived URL (empty unless
// Loaded).
func (s *ModelSession) AssetStatus() (AssetState, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.assetState, s.assetURL
}

// ChangeModel selects a model synchronously and begins deriving its asset
// URL in the background.
func (s *ModelSession) ChangeModel(ctx context.Context, m model.ARModel) {
	s.mu.Lock()
	selected := m
	s.current = &selected
	s.assetState = AssetLoading
	s.assetURL = ""
	s.mu.Unlock()

	if s.hooks.OnLoadStart != nil {
		s.hooks.OnLoadStart(m)
	}

	s.done.Add(1)
	go func() {
		defer s.done.Done()
		url, err := s.deriver.DeriveAssetURL(ctx, m.CatalogID)

		s.mu.Lock()
		// A newer selection owns the state now; report but do not commit.
		stale := s.current == nil || s.current.ID != m.ID
		if !stale {
			if err != nil {
				s.assetState = AssetError
			} else {
				s.assetState = AssetLoaded
				s.assetURL = url
			}
		}
		s.mu.Unlock()

		if err != nil {
			logger.Warn("model asset derivation failed",
				logger.String("model", m.ID), logger.ErrorField(err))
			if s.hooks.OnLoadError != nil {
				s.hooks.OnLoadError(m, err)
			}
			return
		}
		if s.hooks.OnLoadComplete != nil {
			s.hooks.OnLoadComplete(m, url)
		}
	}()
}

// Wait blocks until in-flight derivations finish. Used by tests and teardown.
func (s *ModelSession) Wait() {
	s.done.Wait()
}
