package viewer

import (
	"context"
	"errors"
	"sync"
	"time"

	"ArtLens/logger"
)

// VideoElementID is the single well-known identifier of the viewer's video
// surface. At most one element carrying it exists at any time.
const VideoElementID = "ar-camera-feed"

// ErrPermissionDenied is returned by a MediaDevice when the user refuses
// camera access.
var ErrPermissionDenied = errors.New("camera permission denied")

// MediaStream is a live video stream handle. StopTracks stops every track;
// the stream is unusable afterwards.
type MediaStream interface {
	StopTracks()
}

// MediaDevice acquires camera streams. The production implementation is the
// client platform; tests use fakes.
type MediaDevice interface {
	// RequestVideoStream requests a stream for the given facing mode
	// ("environment" for the rear camera). Returns ErrPermissionDenied
	// when access is refused.
	RequestVideoStream(ctx context.Context, facing string) (MediaStream, error)
}

// ActivationResult is the tagged outcome of a camera activation.
type ActivationResult string

const (
	ActivationGranted     ActivationResult = "granted"
	ActivationDenied      ActivationResult = "denied"
	ActivationFailed      ActivationResult = "failed"
	ActivationUnsupported ActivationResult = "unsupported"
)

// CameraSession owns the single live camera stream used as the AR backdrop.
// Activating while already active tears the previous stream down first, so
// at most one stream exists. Deactivate is an idempotent no-op when
// inactive. Close force-deactivates on viewer teardown so a hardware stream
// is never leaked.
//
// Activation can block on the permission prompt, so unlike the other
// viewer components this one is safe to drive from more than one goroutine.
type CameraSession struct {
	device MediaDevice

	mu sync.Mutex
	// gen advances on every teardown or activation start. An activation
	// commits its stream only if gen is unchanged since it began, so a
	// newer activation or an explicit deactivation always wins.
	gen          uint64
	active       bool
	stream       MediaStream
	pendingSince time.Time
}

// NewCameraSession creates an inactive session. A nil device marks the
// platform as lacking camera support; activation is then refused up front
// rather than failing reactively.
func NewCameraSession(device MediaDevice) *CameraSession {
	return &CameraSession{device: device}
}

// Supported reports whether camera activation can be offered at all.
func (s *CameraSession) Supported() bool {
	return s.device != nil
}

// Active reports whether a stream is currently held.
func (s *CameraSession) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// PendingSince reports when an activation request started waiting on the
// permission prompt or hardware, for UX observation. Zero when no request
// is pending.
func (s *CameraSession) PendingSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingSince
}

// Activate requests a rear-facing stream and takes ownership of it. A
// pre-existing stream is torn down before the new one is attached. On
// denial or hardware error no stream is left dangling.
func (s *CameraSession) Activate(ctx context.Context) ActivationResult {
	if s.device == nil {
		return ActivationUnsupported
	}

	// Remove-before-attach: the previous stream must be gone before the
	// new one takes its place. Claiming the generation in the same
	// critical section keeps overlapping activations from both committing.
	s.mu.Lock()
	prev := s.stream
	s.stream = nil
	s.active = false
	s.gen++
	myGen := s.gen
	s.pendingSince = time.Now()
	s.mu.Unlock()

	if prev != nil {
		prev.StopTracks()
	}

	stream, err := s.device.RequestVideoStream(ctx, "environment")

	s.mu.Lock()
	stale := s.gen != myGen
	if !stale {
		s.pendingSince = time.Time{}
		if err == nil {
			s.stream = stream
			s.active = true
		}
	}
	s.mu.Unlock()

	if err != nil {
		if errors.Is(err, ErrPermissionDenied) {
			logger.Info("camera permission denied")
			return ActivationDenied
		}
		logger.Warn("camera activation failed", logger.ErrorField(err))
		return ActivationFailed
	}

	if stale {
		// The state changed hands while we waited on the device; this
		// stream lost and must not keep running.
		stream.StopTracks()
	}
	return ActivationGranted
}

// Deactivate stops every track of the active stream and releases it.
// Calling it while inactive is a safe no-op.
func (s *CameraSession) Deactivate() {
	s.mu.Lock()
	stream := s.stream
	s.stream = nil
	s.active = false
	s.gen++
	s.pendingSince = time.Time{}
	s.mu.Unlock()

	if stream != nil {
		stream.StopTracks()
	}
}

// Close force-deactivates the session. Called on viewer teardown regardless
// of explicit user action.
func (s *CameraSession) Close() {
	s.Deactivate()
}
