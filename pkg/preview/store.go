// Package preview keeps downscaled copies of in-memory images behind
// short-lived handles so they can be displayed before anything is saved.
package preview

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // Register GIF decoder
	"image/jpeg"
	_ "image/png" // Register PNG decoder
	"sync"

	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

const ContentType = "image/jpeg"

// Images above this many pixels are refused before decoding.
const maxPixels = 40_000_000

var (
	ErrNotFound      = errors.New("preview: handle not found")
	ErrUnsupported   = errors.New("preview: unsupported image")
	ErrImageTooLarge = errors.New("preview: image dimensions too large")
)

type Options struct {
	MaxDimension int // longest edge of the thumbnail
	Quality      int // JPEG quality 1-100
}

// Store is an in-memory registry of preview images. It is safe for
// concurrent use.
type Store struct {
	mu    sync.RWMutex
	items map[string][]byte
	opts  Options
}

func NewStore(opts Options) *Store {
	if opts.MaxDimension <= 0 {
		opts.MaxDimension = 256
	}
	if opts.Quality <= 0 || opts.Quality > 100 {
		opts.Quality = 80
	}
	return &Store{
		items: make(map[string][]byte),
		opts:  opts,
	}
}

// Create decodes data, stores a thumbnail and returns its handle.
func (s *Store) Create(data []byte) (string, error) {
	thumb, err := thumbnail(data, s.opts.MaxDimension, s.opts.Quality)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	s.mu.Lock()
	s.items[id] = thumb
	s.mu.Unlock()
	return id, nil
}

// Release drops a handle. Unknown handles are ignored.
func (s *Store) Release(id string) {
	if id == "" {
		return
	}
	s.mu.Lock()
	delete(s.items, id)
	s.mu.Unlock()
}

// Open returns the thumbnail bytes and their content type.
func (s *Store) Open(id string) ([]byte, string, error) {
	s.mu.RLock()
	data, ok := s.items[id]
	s.mu.RUnlock()
	if !ok {
		return nil, "", ErrNotFound
	}
	return data, ContentType, nil
}

// Len reports the number of live handles.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// thumbnail scales an image so its longest edge is at most maxDimension
// and re-encodes it as JPEG.
func thumbnail(data []byte, maxDimension int, quality int) ([]byte, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupported, err)
	}
	if cfg.Width*cfg.Height > maxPixels {
		return nil, ErrImageTooLarge
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w (format: %s): %v", ErrUnsupported, format, err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	newWidth, newHeight := width, height
	if width > height {
		if width > maxDimension {
			newWidth = maxDimension
			newHeight = int(float64(height) * float64(maxDimension) / float64(width))
		}
	} else if height > maxDimension {
		newHeight = maxDimension
		newWidth = int(float64(width) * float64(maxDimension) / float64(height))
	}
	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 1 {
		newHeight = 1
	}

	resized := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("preview: encode: %w", err)
	}
	return buf.Bytes(), nil
}
