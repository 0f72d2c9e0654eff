package viewer

import (
	"context"
	"errors"
	"testing"
)

// scriptedFetcher fails URLs listed in fail and records every fetch.
type scriptedFetcher struct {
	fail    map[string]bool
	fetched []string
}

func (f *scriptedFetcher) Fetch(_ context.Context, url string) error {
	f.fetched = append(f.fetched, url)
	if f.fail[url] {
		return errors.New("decode failed")
	}
	return nil
}

const (
	testOriginal = "https://example.com/art.png"
	testFallback = "https://example.com/fallback.jpg"
)

func TestLoadSuccessFirstAttempt(t *testing.T) {
	f := &scriptedFetcher{fail: map[string]bool{}}
	p := NewImagePipeline(f, testFallback)

	if got := p.Load(context.Background(), testOriginal); got != ImageLoaded {
		t.Fatalf("state = %v, want loaded", got)
	}
	if p.ResolvedURL() != testOriginal {
		t.Errorf("resolved = %q, want original", p.ResolvedURL())
	}
	if p.RetryCount() != 0 {
		t.Errorf("retry count = %d, want 0", p.RetryCount())
	}
	if len(f.fetched) != 1 {
		t.Errorf("fetch count = %d, want 1", len(f.fetched))
	}
}

func TestLoadFallsBackSilently(t *testing.T) {
	f := &scriptedFetcher{fail: map[string]bool{testOriginal: true}}
	p := NewImagePipeline(f, testFallback)

	if got := p.Load(context.Background(), testOriginal); got != ImageLoaded {
		t.Fatalf("state = %v, want loaded via fallback", got)
	}
	if p.ResolvedURL() != testFallback {
		t.Errorf("resolved = %q, want fallback", p.ResolvedURL())
	}
	if p.RetryCount() != 1 {
		t.Errorf("retry count = %d, want 1", p.RetryCount())
	}
	want := []string{testOriginal, testFallback}
	if len(f.fetched) != 2 || f.fetched[0] != want[0] || f.fetched[1] != want[1] {
		t.Errorf("fetched %v, want %v", f.fetched, want)
	}
}

func TestLoadErrorAfterFallbackFails(t *testing.T) {
	f := &scriptedFetcher{fail: map[string]bool{testOriginal: true, testFallback: true}}
	p := NewImagePipeline(f, testFallback)

	if got := p.Load(context.Background(), testOriginal); got != ImageError {
		t.Fatalf("state = %v, want error", got)
	}
	if len(f.fetched) != 2 {
		t.Errorf("fetch count = %d, want exactly 2 (original then fallback)", len(f.fetched))
	}
	if p.ResolvedURL() != "" {
		t.Errorf("resolved = %q, want empty in error state", p.ResolvedURL())
	}
}

func TestManualRetryUsesOriginalURL(t *testing.T) {
	f := &scriptedFetcher{fail: map[string]bool{testOriginal: true, testFallback: true}}
	p := NewImagePipeline(f, testFallback)
	p.Load(context.Background(), testOriginal)

	// First manual retry still fails.
	if got := p.Retry(context.Background()); got != ImageError {
		t.Fatalf("state after failed retry = %v, want error", got)
	}
	if got := f.fetched[len(f.fetched)-1]; got != testOriginal {
		t.Errorf("retry fetched %q, want original URL", got)
	}

	// The source recovers; a later retry succeeds.
	f.fail[testOriginal] = false
	if got := p.Retry(context.Background()); got != ImageLoaded {
		t.Fatalf("state after retry = %v, want loaded", got)
	}
	if p.ResolvedURL() != testOriginal {
		t.Errorf("resolved = %q, want original", p.ResolvedURL())
	}
}

func TestManualRetriesNeverFallBack(t *testing.T) {
	f := &scriptedFetcher{fail: map[string]bool{testOriginal: true}}
	p := NewImagePipeline(f, testFallback)
	p.Load(context.Background(), testOriginal)
	// Fallback succeeded, so we are Loaded; force the error path instead.
	f.fail[testFallback] = true
	p2 := NewImagePipeline(f, testFallback)
	p2.Load(context.Background(), testOriginal)

	before := len(f.fetched)
	for i := 0; i < 5; i++ {
		if got := p2.Retry(context.Background()); got != ImageError {
			t.Fatalf("retry %d: state = %v, want error", i, got)
		}
	}
	for _, url := range f.fetched[before:] {
		if url == testFallback {
			t.Fatal("manual retry attempted the fallback URL")
		}
	}
	if got := len(f.fetched) - before; got != 5 {
		t.Errorf("retries made %d attempts, want 5", got)
	}
}

func TestRetryOutsideErrorStateIsNoOp(t *testing.T) {
	f := &scriptedFetcher{fail: map[string]bool{}}
	p := NewImagePipeline(f, testFallback)

	if got := p.Retry(context.Background()); got != ImageIdle {
		t.Errorf("retry from idle = %v, want idle", got)
	}
	p.Load(context.Background(), testOriginal)
	fetchCount := len(f.fetched)
	if got := p.Retry(context.Background()); got != ImageLoaded {
		t.Errorf("retry from loaded = %v, want loaded", got)
	}
	if len(f.fetched) != fetchCount {
		t.Error("retry from loaded state triggered a fetch")
	}
}

func TestLoadResetsRetryCountPerArtwork(t *testing.T) {
	f := &scriptedFetcher{fail: map[string]bool{testOriginal: true, testFallback: true}}
	p := NewImagePipeline(f, testFallback)
	p.Load(context.Background(), testOriginal)
	p.Retry(context.Background())
	p.Retry(context.Background())
	if p.RetryCount() != 3 {
		t.Fatalf("retry count = %d, want 3", p.RetryCount())
	}

	f.fail[testOriginal] = false
	p.Load(context.Background(), testOriginal)
	if p.RetryCount() != 0 {
		t.Errorf("retry count after fresh load = %d, want 0", p.RetryCount())
	}
}

func TestPendingSinceOnlyWhileLoading(t *testing.T) {
	f := &scriptedFetcher{fail: map[string]bool{}}
	p := NewImagePipeline(f, testFallback)
	if !p.PendingSince().IsZero() {
		t.Error("pendingSince set before any load")
	}
	p.Load(context.Background(), testOriginal)
	if !p.PendingSince().IsZero() {
		t.Error("pendingSince set after load completed")
	}
}

func TestCoerceImageURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "known host gets format hint",
			in:   "https://images.unsplash.com/photo-123?w=800",
			want: "https://images.unsplash.com/photo-123?fm=jpg&w=800",
		},
		{
			name: "known host without query",
			in:   "https://images.unsplash.com/photo-123",
			want: "https://images.unsplash.com/photo-123?fm=jpg",
		},
		{
			name: "existing format hint preserved",
			in:   "https://images.unsplash.com/photo-123?fm=png",
			want: "https://images.unsplash.com/photo-123?fm=png",
		},
		{
			name: "other hosts untouched",
			in:   "https://example.com/photo.png?w=800",
			want: "https://example.com/photo.png?w=800",
		},
		{
			name: "unparseable URL untouched",
			in:   "://not-a-url",
			want: "://not-a-url",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CoerceImageURL(tt.in); got != tt.want {
				t.Errorf("CoerceImageURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLoadAppliesCoercionBeforeFirstAttempt(t *testing.T) {
	f := &scriptedFetcher{fail: map[string]bool{}}
	p := NewImagePipeline(f, testFallback)
	p.Load(context.Background(), "https://images.unsplash.com/photo-9?w=400")
	if got, want := f.fetched[0], "https://images.unsplash.com/photo-9?fm=jpg&w=400"; got != want {
		t.Errorf("first fetch = %q, want coerced %q", got, want)
	}
}
