package viewer

import (
	"ArtLens/model"
)

// Session composes the per-connection viewer state: the image pipeline,
// transform controller, camera session, model session and environment
// selection. State between components is disjoint; commands on one never
// touch another. A session belongs to one connection and its commands are
// applied in invocation order by that connection's goroutine.
type Session struct {
	Artwork   *model.Artwork
	Image     *ImagePipeline
	Transform *TransformController
	Camera    *CameraSession
	Model     *ModelSession

	room     Room
	lighting Lighting
}

// SessionConfig carries the collaborators a session is built from.
type SessionConfig struct {
	Artwork     *model.Artwork
	Fetcher     Fetcher
	FallbackURL string
	Device      MediaDevice
	Deriver     AssetDeriver
	Hooks       ModelHooks
}

// NewSession builds a session at its initial state: image Idle, transform
// at defaults, camera inactive, no model selected, living/daylight
// environment.
func NewSession(cfg SessionConfig) *Session {
	return &Session{
		Artwork:   cfg.Artwork,
		Image:     NewImagePipeline(cfg.Fetcher, cfg.FallbackURL),
		Transform: NewTransformController(),
		Camera:    NewCameraSession(cfg.Device),
		Model:     NewModelSession(cfg.Deriver, cfg.Hooks),
		room:      RoomLiving,
		lighting:  LightingDaylight,
	}
}

// SetEnvironment updates the room/lighting selection. The style is a pure
// function of the pair and is recomputed in Snapshot.
func (s *Session) SetEnvironment(room Room, lighting Lighting) {
	s.room = room
	s.lighting = lighting
}

// Environment returns the current room/lighting selection.
func (s *Session) Environment() (Room, Lighting) {
	return s.room, s.lighting
}

// Close tears the session down. The camera is force-deactivated so a
// hardware stream never outlives the viewer.
func (s *Session) Close() {
	s.Camera.Close()
}

// Snapshot is the observable state sent to the client after each command.
type Snapshot struct {
	ArtworkID    string            `json:"artworkId,omitempty"`
	Image        ImageSnapshot     `json:"image"`
	Transform    TransformState    `json:"transform"`
	Composed     ComposedTransform `json:"composed"`
	CameraActive bool              `json:"cameraActive"`
	Model        *ModelSnapshot    `json:"model,omitempty"`
	Room         Room              `json:"room"`
	Lighting     Lighting          `json:"lighting"`
	Style        StyleDescriptor   `json:"style"`
}

// ImageSnapshot is the image pipeline's observable state.
type ImageSnapshot struct {
	State       string `json:"state"`
	RetryCount  int    `json:"retryCount"`
	ResolvedURL string `json:"resolvedUrl,omitempty"`
}

// ModelSnapshot is the model session's observable state.
type ModelSnapshot struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	AssetState string `json:"assetState"`
	AssetURL   string `json:"assetUrl,omitempty"`
}

// Snapshot captures the current state of every component.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Image: ImageSnapshot{
			State:       s.Image.State().String(),
			RetryCount:  s.Image.RetryCount(),
			ResolvedURL: s.Image.ResolvedURL(),
		},
		Transform:    s.Transform.State(),
		Composed:     s.Transform.Composed(),
		CameraActive: s.Camera.Active(),
		Room:         s.room,
		Lighting:     s.lighting,
		Style:        Describe(s.room, s.lighting),
	}
	if s.Artwork != nil {
		snap.ArtworkID = s.Artwork.ID
	}
	if m := s.Model.Current(); m != nil {
		state, url := s.Model.AssetStatus()
		snap.Model = &ModelSnapshot{
			ID:         m.ID,
			Name:       m.Name,
			AssetState: state.String(),
			AssetURL:   url,
		}
	}
	return snap
}
