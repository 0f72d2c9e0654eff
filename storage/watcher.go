package storage

import (
	"context"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"ArtLens/logger"

	"github.com/fsnotify/fsnotify"
)

// assetExtensions lists the file types the ingester picks up.
var assetExtensions = map[string]bool{
	".glb":  true,
	".gltf": true,
	".obj":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

// AssetWatcher uploads model and texture files dropped into a local
// directory to the asset bucket under models/ingest/.
type AssetWatcher struct {
	store *AssetStore
	dir   string
	done  chan struct{}
}

// NewAssetWatcher creates a watcher for the given directory.
func NewAssetWatcher(store *AssetStore, dir string) *AssetWatcher {
	return &AssetWatcher{store: store, dir: dir, done: make(chan struct{})}
}

// Start begins watching. It returns once the watcher is registered; events
// are handled on a background goroutine until Stop is called.
func (w *AssetWatcher) Start() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	if err := watcher.Add(w.dir); err != nil {
		watcher.Close()
		return err
	}

	processed := make(map[string]bool)

	go func() {
		defer watcher.Close()
		for {
			select {
			case event := <-watcher.Events:
				if event.Op&fsnotify.Create != fsnotify.Create {
					continue
				}
				ext := strings.ToLower(filepath.Ext(event.Name))
				if !assetExtensions[ext] || processed[event.Name] {
					continue
				}
				processed[event.Name] = true
				w.ingest(event.Name, ext)
			case err := <-watcher.Errors:
				logger.Warn("asset watcher error", logger.ErrorField(err))
			case <-w.done:
				return
			}
		}
	}()

	logger.Info("asset watcher started", logger.String("dir", w.dir))
	return nil
}

// Stop ends the watch loop.
func (w *AssetWatcher) Stop() {
	close(w.done)
}

func (w *AssetWatcher) ingest(name, ext string) {
	f, err := os.Open(name)
	if err != nil {
		logger.Warn("asset open failed", logger.String("file", name), logger.ErrorField(err))
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		logger.Warn("asset stat failed", logger.String("file", name), logger.ErrorField(err))
		return
	}

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	object := path.Join("models", "ingest", filepath.Base(name))
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := w.store.UploadAsset(ctx, object, f, info.Size(), contentType); err != nil {
		logger.Warn("asset ingest failed", logger.String("file", name), logger.ErrorField(err))
	}
}
