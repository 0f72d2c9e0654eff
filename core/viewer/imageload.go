package viewer

import (
	"context"
	"net/url"
	"strings"
	"time"

	"ArtLens/logger"
)

// ImageLoadState is the lifecycle state of an image load.
type ImageLoadState int

const (
	ImageIdle ImageLoadState = iota
	ImageLoading
	ImageLoaded
	ImageError
)

func (s ImageLoadState) String() string {
	switch s {
	case ImageIdle:
		return "idle"
	case ImageLoading:
		return "loading"
	case ImageLoaded:
		return "loaded"
	case ImageError:
		return "error"
	default:
		return "unknown"
	}
}

// Fetcher fetches and decodes an image by URL. A nil error means the image
// decoded successfully.
type Fetcher interface {
	Fetch(ctx context.Context, url string) error
}

// ImagePipeline manages the load lifecycle of the artwork image: one silent
// fallback substitution on the first decode failure, then a surfaced error
// with unbounded manual retries against the original URL.
//
// Transitions: Idle→Loading on Load; Loading→Loaded on success;
// Loading→Loading on first failure (fallback substituted, retry count
// incremented); Loading→Error on failure with a prior attempt counted;
// Error→Loading on Retry.
//
// Not safe for concurrent use; the viewer session serializes commands.
type ImagePipeline struct {
	fetcher     Fetcher
	fallbackURL string

	state        ImageLoadState
	retryCount   int
	originalURL  string
	resolvedURL  string
	pendingSince time.Time
}

// NewImagePipeline creates a pipeline in the Idle state.
func NewImagePipeline(fetcher Fetcher, fallbackURL string) *ImagePipeline {
	return &ImagePipeline{fetcher: fetcher, fallbackURL: fallbackURL}
}

// State returns the current lifecycle state.
func (p *ImagePipeline) State() ImageLoadState {
	return p.state
}

// RetryCount returns how many substitute or manual attempts have been made
// for the current artwork.
func (p *ImagePipeline) RetryCount() int {
	return p.retryCount
}

// ResolvedURL returns the URL that actually loaded. Empty unless Loaded.
func (p *ImagePipeline) ResolvedURL() string {
	return p.resolvedURL
}

// PendingSince reports when the pipeline entered Loading, for "still pending
// after N seconds" observations. Zero when not loading. No timeout is
// enforced here.
func (p *ImagePipeline) PendingSince() time.Time {
	if p.state != ImageLoading {
		return time.Time{}
	}
	return p.pendingSince
}

// Load starts loading the given URL. The format coercion heuristic is
// applied before the first attempt. On the first decode failure the fixed
// fallback URL is substituted and attempted once without surfacing an error;
// only a failure of the fallback lands in Error.
func (p *ImagePipeline) Load(ctx context.Context, rawURL string) ImageLoadState {
	p.originalURL = CoerceImageURL(rawURL)
	p.retryCount = 0
	p.resolvedURL = ""

	p.attempt(ctx, p.originalURL, true)
	return p.state
}

// Retry re-attempts the original URL after a surfaced error. Manual retries
// are unbounded and do not use the fallback.
func (p *ImagePipeline) Retry(ctx context.Context) ImageLoadState {
	if p.state != ImageError {
		return p.state
	}
	p.retryCount++
	p.attempt(ctx, p.originalURL, false)
	return p.state
}

// attempt runs one fetch. allowFallback permits the single silent
// substitution on failure.
func (p *ImagePipeline) attempt(ctx context.Context, url string, allowFallback bool) {
	p.state = ImageLoading
	p.pendingSince = time.Now()

	err := p.fetcher.Fetch(ctx, url)
	if err == nil {
		p.state = ImageLoaded
		p.resolvedURL = url
		return
	}

	if allowFallback && p.retryCount == 0 {
		// First failure for this artwork: substitute the fixed fallback
		// once, silently.
		logger.Debug("image load failed, substituting fallback",
			logger.String("url", url), logger.ErrorField(err))
		p.retryCount++
		p.attempt(ctx, p.fallbackURL, false)
		return
	}

	logger.Warn("image load failed", logger.String("url", url), logger.ErrorField(err))
	p.state = ImageError
}

// knownImageHost is the image host whose URLs accept a format hint.
const knownImageHost = "images.unsplash.com"

// CoerceImageURL appends a jpg format hint for URLs on the known image host.
// Applied before the first load attempt; never used as a retry strategy.
func CoerceImageURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	if !strings.EqualFold(u.Host, knownImageHost) {
		return rawURL
	}
	q := u.Query()
	if q.Get("fm") != "" {
		return rawURL
	}
	q.Set("fm", "jpg")
	u.RawQuery = q.Encode()
	return u.String()
}
