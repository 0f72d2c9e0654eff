package server

import (
	"net/http"

	"ArtLens/logger"

	"github.com/gorilla/mux"
)

// ListModelsHandler returns the 3D model catalog.
func (h *APIHandler) ListModelsHandler(w http.ResponseWriter, r *http.Request) {
	models, err := h.modelRepo.List(r.Context())
	if err != nil {
		logger.Error("list models failed", logger.ErrorField(err))
		respondError(w, http.StatusInternalServerError, "Failed to load models", "Refresh to try again")
		return
	}
	respondJSON(w, http.StatusOK, models)
}

// GetModelAssetHandler derives the downloadable asset URL for a model:
// the external-catalog object when the model has a catalog id, otherwise
// the fixed default asset.
func (h *APIHandler) GetModelAssetHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	m, err := h.modelRepo.GetByID(r.Context(), id)
	if err != nil {
		logger.Error("model lookup failed", logger.String("id", id), logger.ErrorField(err))
		respondError(w, http.StatusInternalServerError, "Failed to load model", "Refresh to try again")
		return
	}
	if m == nil {
		respondError(w, http.StatusNotFound, "Model not found", "Return to the model gallery")
		return
	}

	assetURL, err := h.assetStore.DeriveAssetURL(r.Context(), m.CatalogID)
	if err != nil {
		logger.Error("asset derivation failed", logger.String("model", id), logger.ErrorField(err))
		respondError(w, http.StatusInternalServerError, "Failed to derive asset URL", "Retry, or use the embedded viewer instead")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"modelId":  m.ID,
		"assetUrl": assetURL,
	})
}
