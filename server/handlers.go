package server

import (
	"encoding/json"
	"net/http"

	"ArtLens/cache"
	"ArtLens/config"
	"ArtLens/core/catalog"
	"ArtLens/core/collection"
	"ArtLens/repository"
	"ArtLens/storage"
)

// APIHandler handles all API requests.
type APIHandler struct {
	resolver    *catalog.Resolver
	collections *collection.Service
	userRepo    repository.UserRepository
	modelRepo   repository.ARModelRepository
	recentCache *cache.RecentCache
	assetStore  *storage.AssetStore
	cfg         *config.Config
}

// NewAPIHandler creates the API handler with its collaborators.
func NewAPIHandler(
	resolver *catalog.Resolver,
	collections *collection.Service,
	userRepo repository.UserRepository,
	modelRepo repository.ARModelRepository,
	recentCache *cache.RecentCache,
	assetStore *storage.AssetStore,
	cfg *config.Config,
) *APIHandler {
	return &APIHandler{
		resolver:    resolver,
		collections: collections,
		userRepo:    userRepo,
		modelRepo:   modelRepo,
		recentCache: recentCache,
		assetStore:  assetStore,
		cfg:         cfg,
	}
}

// respondJSON writes a JSON body with the given status.
func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// respondError writes a JSON error. nextStep names the actionable recovery
// path; surfaced errors never dead-end.
func respondError(w http.ResponseWriter, status int, message, nextStep string) {
	respondJSON(w, status, map[string]string{
		"error":    message,
		"nextStep": nextStep,
	})
}
