package server

import (
	"errors"
	"net/http"
	"strconv"

	"ArtLens/core/catalog"
	"ArtLens/logger"

	"github.com/gorilla/mux"
)

// ListArtworksHandler returns a page of the artwork catalog.
func (h *APIHandler) ListArtworksHandler(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 24)
	offset := queryInt(r, "offset", 0)

	artworks, err := h.resolver.ListArtworks(r.Context(), limit, offset)
	if err != nil {
		logger.Error("list artworks failed", logger.ErrorField(err))
		respondError(w, http.StatusInternalServerError, "Failed to load artworks", "Refresh to try again")
		return
	}
	respondJSON(w, http.StatusOK, artworks)
}

// GetArtworkHandler resolves one artwork. A missing identifier is a
// distinct not-found state, not a transient error.
func (h *APIHandler) GetArtworkHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	userID, _ := GetUserIDFromContext(r.Context()) // zero for anonymous

	artwork, err := h.resolver.Resolve(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Artwork not found", "Return to the gallery listing")
			return
		}
		logger.Error("resolve artwork failed", logger.String("id", id), logger.ErrorField(err))
		respondError(w, http.StatusInternalServerError, "Failed to load artwork", "Refresh to try again")
		return
	}
	respondJSON(w, http.StatusOK, artwork)
}

// GetArtworkArtistHandler loads the owning artist of an artwork.
func (h *APIHandler) GetArtworkArtistHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	artwork, err := h.resolver.Resolve(r.Context(), 0, id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Artwork not found", "Return to the gallery listing")
			return
		}
		logger.Error("resolve artwork failed", logger.String("id", id), logger.ErrorField(err))
		respondError(w, http.StatusInternalServerError, "Failed to load artwork", "Refresh to try again")
		return
	}

	artist, err := h.resolver.ArtistFor(r.Context(), artwork)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Artist not found", "Return to the artwork page")
			return
		}
		logger.Error("load artist failed", logger.String("artwork", id), logger.ErrorField(err))
		respondError(w, http.StatusInternalServerError, "Failed to load artist", "Refresh to try again")
		return
	}
	respondJSON(w, http.StatusOK, artist)
}

// GetRecommendationsHandler lists artworks related to the given one.
func (h *APIHandler) GetRecommendationsHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	limit := queryInt(r, "limit", 8)

	artwork, err := h.resolver.Resolve(r.Context(), 0, id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Artwork not found", "Return to the gallery listing")
			return
		}
		logger.Error("resolve artwork failed", logger.String("id", id), logger.ErrorField(err))
		respondError(w, http.StatusInternalServerError, "Failed to load artwork", "Refresh to try again")
		return
	}

	recs, err := h.resolver.Recommendations(r.Context(), artwork, limit)
	if err != nil {
		logger.Error("load recommendations failed", logger.String("artwork", id), logger.ErrorField(err))
		respondError(w, http.StatusInternalServerError, "Failed to load recommendations", "Refresh to try again")
		return
	}
	respondJSON(w, http.StatusOK, recs)
}

// RecentArtworksHandler returns the caller's recently-viewed artwork IDs,
// most recent first.
func (h *APIHandler) RecentArtworksHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Not authenticated", "Log in and retry")
		return
	}

	ids, err := h.recentCache.List(r.Context(), userID)
	if err != nil {
		logger.Error("list recent failed", logger.Int64("userId", userID), logger.ErrorField(err))
		respondError(w, http.StatusInternalServerError, "Failed to load recent views", "Refresh to try again")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"artworkIds": ids})
}

func queryInt(r *http.Request, key string, fallback int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return fallback
}
