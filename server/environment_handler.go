package server

import (
	"net/http"

	"ArtLens/core/viewer"
)

// EnvironmentHandler maps a room/lighting selection to its backdrop style.
// Pure lookup; unrecognized values fall back to the living base style.
func (h *APIHandler) EnvironmentHandler(w http.ResponseWriter, r *http.Request) {
	room := viewer.Room(r.URL.Query().Get("room"))
	lighting := viewer.Lighting(r.URL.Query().Get("lighting"))

	respondJSON(w, http.StatusOK, viewer.Describe(room, lighting))
}
