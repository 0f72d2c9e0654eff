package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"ArtLens/core/catalog"
	"ArtLens/core/collection"
	"ArtLens/logger"

	"github.com/gorilla/mux"
)

// ListCollectionsHandler returns the caller's collections. An empty list is
// meaningful: the client renders a "create your first collection" state.
func (h *APIHandler) ListCollectionsHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Not authenticated", "Log in and retry")
		return
	}

	collections, err := h.collections.List(r.Context(), userID)
	if err != nil {
		logger.Error("list collections failed", logger.Int64("userId", userID), logger.ErrorField(err))
		respondError(w, http.StatusInternalServerError, "Failed to load collections", "Refresh to try again")
		return
	}
	respondJSON(w, http.StatusOK, collections)
}

// CreateCollectionRequest is the collection creation body.
type CreateCollectionRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateCollectionHandler adds a new empty collection for the caller.
func (h *APIHandler) CreateCollectionHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Not authenticated", "Log in and retry")
		return
	}

	var req CreateCollectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", "Check the request format and try again")
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "Collection name is required", "Provide a name")
		return
	}

	c, err := h.collections.Create(r.Context(), userID, req.Name, req.Description)
	if err != nil {
		logger.Error("create collection failed", logger.Int64("userId", userID), logger.ErrorField(err))
		respondError(w, http.StatusInternalServerError, "Failed to create collection", "Try again shortly")
		return
	}
	respondJSON(w, http.StatusCreated, c)
}

// AddArtworkRequest is the membership add body.
type AddArtworkRequest struct {
	ArtworkID string `json:"artworkId"`
}

// AddArtworkToCollectionHandler adds an artwork to a collection. Adding an
// existing member is a no-op answered with 200 "already_present"; a fresh
// add answers 201 "added".
func (h *APIHandler) AddArtworkToCollectionHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Not authenticated", "Log in and retry")
		return
	}

	collectionID := mux.Vars(r)["id"]

	var req AddArtworkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ArtworkID == "" {
		respondError(w, http.StatusBadRequest, "artworkId is required", "Provide the artwork to add")
		return
	}

	// The artwork must resolve; its (possibly overridden) image seeds the
	// cover of a previously empty collection.
	artwork, err := h.resolver.Resolve(r.Context(), 0, req.ArtworkID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Artwork not found", "Return to the gallery listing")
			return
		}
		logger.Error("resolve artwork failed", logger.String("id", req.ArtworkID), logger.ErrorField(err))
		respondError(w, http.StatusInternalServerError, "Failed to load artwork", "Try again shortly")
		return
	}

	result, err := h.collections.AddArtwork(r.Context(), userID, collectionID, artwork.ID, artwork.ImageURL)
	if err != nil {
		if errors.Is(err, collection.ErrCollectionNotFound) {
			respondError(w, http.StatusNotFound, "Collection not found", "Create a collection first")
			return
		}
		logger.Error("add artwork failed",
			logger.Int64("userId", userID),
			logger.String("collection", collectionID),
			logger.ErrorField(err))
		respondError(w, http.StatusInternalServerError, "Failed to update collection", "Try again shortly")
		return
	}

	status := http.StatusCreated
	if result == collection.AddResultAlreadyPresent {
		status = http.StatusOK
	}
	respondJSON(w, status, map[string]string{"result": string(result)})
}
