package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"ArtLens/core/catalog"
	"ArtLens/core/viewer"
	"ArtLens/logger"
	"ArtLens/model"

	"github.com/gorilla/websocket"
)

var wsUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// viewerCommand is a client command. cmd selects the operation; the other
// fields carry its arguments.
type viewerCommand struct {
	Cmd      string  `json:"cmd"`
	DX       float64 `json:"dx,omitempty"`
	DY       float64 `json:"dy,omitempty"`
	ModelID  string  `json:"modelId,omitempty"`
	Room     string  `json:"room,omitempty"`
	Lighting string  `json:"lighting,omitempty"`
	// Granted answers a camera_request event.
	Granted bool `json:"granted,omitempty"`
}

// wsConn serializes writes to one websocket connection.
type wsConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *wsConn) sendJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

// remoteCamera drives the client's camera over the websocket: the server
// sends camera_request, the client answers with a camera_result command.
// This keeps stream ownership in the session while the hardware lives on
// the client.
type remoteCamera struct {
	conn    *wsConn
	results chan bool
}

func (d *remoteCamera) RequestVideoStream(ctx context.Context, facing string) (viewer.MediaStream, error) {
	if err := d.conn.sendJSON(map[string]string{"type": "camera_request", "facing": facing}); err != nil {
		return nil, err
	}
	// The permission prompt has no timeout of its own; the context bounds
	// how long this session is willing to stay pending.
	select {
	case granted := <-d.results:
		if !granted {
			return nil, viewer.ErrPermissionDenied
		}
		return &remoteStream{conn: d.conn}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// remoteStream tells the client to stop every track when released.
type remoteStream struct {
	conn *wsConn
}

func (s *remoteStream) StopTracks() {
	s.conn.sendJSON(map[string]string{"type": "camera_stop"})
}

// ViewerSocketHandler runs a live viewer session over a websocket. Commands
// are applied in arrival order by this connection's goroutine; every command
// is answered with a full state snapshot.
func (h *APIHandler) ViewerSocketHandler(w http.ResponseWriter, r *http.Request) {
	rawConn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("websocket upgrade failed", logger.ErrorField(err))
		return
	}
	defer rawConn.Close()

	conn := &wsConn{conn: rawConn}
	camera := &remoteCamera{conn: conn, results: make(chan bool, 1)}

	var artwork *model.Artwork
	if id := r.URL.Query().Get("artwork"); id != "" {
		artwork, err = h.resolver.Resolve(r.Context(), 0, id)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				conn.sendJSON(map[string]string{
					"type":     "error",
					"error":    "artwork not found",
					"nextStep": "return to the gallery listing",
				})
			} else {
				logger.Error("viewer resolve failed", logger.String("id", id), logger.ErrorField(err))
				conn.sendJSON(map[string]string{
					"type":     "error",
					"error":    "failed to load artwork",
					"nextStep": "reconnect to retry",
				})
			}
			return
		}
	}

	session := viewer.NewSession(viewer.SessionConfig{
		Artwork:     artwork,
		Fetcher:     viewer.NewHTTPFetcher(),
		FallbackURL: h.cfg.FallbackImageURL,
		Device:      camera,
		Deriver:     h.assetStore,
		Hooks: viewer.ModelHooks{
			OnLoadStart: func(m model.ARModel) {
				conn.sendJSON(map[string]string{"type": "model_load_start", "modelId": m.ID})
			},
			OnLoadComplete: func(m model.ARModel, assetURL string) {
				conn.sendJSON(map[string]string{"type": "model_load_complete", "modelId": m.ID, "assetUrl": assetURL})
			},
			OnLoadError: func(m model.ARModel, err error) {
				conn.sendJSON(map[string]string{
					"type":     "model_load_error",
					"modelId":  m.ID,
					"error":    err.Error(),
					"nextStep": "select the model again to retry",
				})
			},
		},
	})
	defer session.Close()

	// Begin loading the artwork image before the first command.
	if artwork != nil {
		session.Image.Load(r.Context(), artwork.ImageURL)
	}
	h.sendSnapshot(conn, session)

	for {
		var cmd viewerCommand
		if err := rawConn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("viewer socket closed unexpectedly", logger.ErrorField(err))
			}
			return
		}
		h.applyCommand(r.Context(), conn, camera, session, cmd)
	}
}

func (h *APIHandler) applyCommand(ctx context.Context, conn *wsConn, camera *remoteCamera, session *viewer.Session, cmd viewerCommand) {
	switch cmd.Cmd {
	case "zoom_in":
		session.Transform.ZoomIn()
	case "zoom_out":
		session.Transform.ZoomOut()
	case "rotate_left":
		session.Transform.RotateLeft()
	case "rotate_right":
		session.Transform.RotateRight()
	case "move":
		session.Transform.Move(cmd.DX, cmd.DY)
	case "reset":
		session.Transform.Reset()
	case "set_environment":
		session.SetEnvironment(viewer.Room(cmd.Room), viewer.Lighting(cmd.Lighting))
	case "retry_image":
		session.Image.Retry(ctx)
	case "set_model":
		m, err := h.modelRepo.GetByID(ctx, cmd.ModelID)
		if err != nil || m == nil {
			conn.sendJSON(map[string]string{
				"type":     "error",
				"error":    "model not found",
				"nextStep": "pick a model from the gallery",
			})
			return
		}
		session.Model.ChangeModel(ctx, *m)
	case "activate_camera":
		// Activation round-trips through the client, whose camera_result
		// arrives on this read loop, so the wait must happen off it. The
		// timeout bounds an abandoned permission prompt.
		go func() {
			activateCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
			defer cancel()
			result := session.Camera.Activate(activateCtx)
			conn.sendJSON(map[string]string{"type": "camera_state", "result": string(result)})
		}()
		// The snapshot below reflects the still-pending state; the
		// camera_state event follows when the client answers.
	case "deactivate_camera":
		session.Camera.Deactivate()
	case "camera_result":
		select {
		case camera.results <- cmd.Granted:
		default:
		}
		// No snapshot: this is the answer to an in-flight request.
		return
	default:
		conn.sendJSON(map[string]string{
			"type":     "error",
			"error":    "unknown command",
			"nextStep": "check the command name",
		})
		return
	}
	h.sendSnapshot(conn, session)
}

func (h *APIHandler) sendSnapshot(conn *wsConn, session *viewer.Session) {
	snap := session.Snapshot()
	payload, err := json.Marshal(snap)
	if err != nil {
		logger.Error("snapshot marshal failed", logger.ErrorField(err))
		return
	}
	conn.sendJSON(map[string]json.RawMessage{"state": payload})
}
