package cache

import (
	"crypto/sha256"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var httpClient = &http.Client{Timeout: 10 * time.Second}

// Entry is a decoded header image and its blurred variant.
type Entry struct {
	Sharp   image.Image
	Blurred image.Image
}

// ImageCache provides disk + memory caching for header images. Sources are
// either http(s) URLs or local file paths; only URLs hit the disk cache.
type ImageCache struct {
	cacheDir string
	blur     int
	log      zerolog.Logger
	memory   sync.Map // src -> *Entry
	loading  sync.Map // src -> *loadEntry (in-flight dedup with waiters)
	sem      chan struct{}
}

// loadEntry tracks in-flight loads and their waiters.
type loadEntry struct {
	mu        sync.Mutex
	callbacks []func(*Entry)
	done      bool
	result    *Entry
}

// NewImageCache creates a cache rooted at cacheDir. blurFactor is the
// downsampling factor of the blurred variant.
func NewImageCache(cacheDir string, blurFactor int, log zerolog.Logger) (*ImageCache, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, err
	}
	return &ImageCache{
		cacheDir: cacheDir,
		blur:     blurFactor,
		log:      log,
		sem:      make(chan struct{}, 4),
	}, nil
}

// Get returns a cached entry if available, or nil.
func (ic *ImageCache) Get(src string) *Entry {
	if v, ok := ic.memory.Load(src); ok {
		return v.(*Entry)
	}
	return nil
}

// Put stores an already decoded image under src, blurring it.
func (ic *ImageCache) Put(src string, img image.Image) *Entry {
	e := &Entry{Sharp: img, Blurred: Blur(img, ic.blur)}
	ic.memory.Store(src, e)
	return e
}

// LoadAsync starts loading src in the background. The callback runs on a
// cache goroutine once the image and its blurred variant are ready; it is
// not called when loading fails.
func (ic *ImageCache) LoadAsync(src string, callback func(*Entry)) {
	if v, ok := ic.memory.Load(src); ok {
		callback(v.(*Entry))
		return
	}

	entry := &loadEntry{}
	entry.callbacks = append(entry.callbacks, callback)

	if existing, loaded := ic.loading.LoadOrStore(src, entry); loaded {
		existingEntry := existing.(*loadEntry)
		existingEntry.mu.Lock()
		if existingEntry.done {
			// Finished between LoadOrStore and here.
			e := existingEntry.result
			existingEntry.mu.Unlock()
			if e != nil {
				callback(e)
			}
			return
		}
		existingEntry.callbacks = append(existingEntry.callbacks, callback)
		existingEntry.mu.Unlock()
		return
	}

	go func() {
		defer ic.loading.Delete(src)

		ic.sem <- struct{}{}
		e, err := ic.Load(src)
		<-ic.sem
		if err != nil {
			ic.log.Warn().Err(err).Str("src", src).Msg("header image load failed")
		}

		entry.mu.Lock()
		entry.done = true
		entry.result = e
		cbs := make([]func(*Entry), len(entry.callbacks))
		copy(cbs, entry.callbacks)
		entry.mu.Unlock()

		if e == nil {
			return
		}
		for _, cb := range cbs {
			cb(e)
		}
	}()
}

// Load decodes src synchronously and stores the result in memory.
func (ic *ImageCache) Load(src string) (*Entry, error) {
	if e := ic.Get(src); e != nil {
		return e, nil
	}
	var (
		img image.Image
		err error
	)
	if isURL(src) {
		img, err = ic.loadURL(src)
	} else {
		img, err = decodeFile(src)
	}
	if err != nil {
		return nil, err
	}
	return ic.Put(src, img), nil
}

func isURL(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func (ic *ImageCache) loadURL(url string) (image.Image, error) {
	diskPath := ic.diskPath(url)

	// Try disk cache first
	if img, err := decodeFile(diskPath); err == nil {
		return img, nil
	} else if !os.IsNotExist(err) {
		// Corrupt cache file, remove and re-download
		os.Remove(diskPath)
	}

	resp, err := httpClient.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image download failed: %s", resp.Status)
	}

	if err := os.MkdirAll(filepath.Dir(diskPath), 0o755); err != nil {
		return nil, err
	}
	f, err := os.Create(diskPath)
	if err != nil {
		return nil, err
	}

	// Tee to disk while decoding
	tee := io.TeeReader(resp.Body, f)
	img, _, err := image.Decode(tee)
	f.Close()
	if err != nil {
		os.Remove(diskPath)
		return nil, err
	}

	return img, nil
}

func (ic *ImageCache) diskPath(url string) string {
	h := sha256.Sum256([]byte(url))
	name := fmt.Sprintf("%x", h[:16])
	return filepath.Join(ic.cacheDir, name[:2], name)
}

// Clear removes all cached images from memory.
func (ic *ImageCache) Clear() {
	ic.memory.Clear()
}
