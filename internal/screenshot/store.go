package screenshot

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"

	"github.com/ytget/tv-tiles/internal/platform"
)

// FileExtension is appended to the tile id to form the file name
const FileExtension = ".png"

// ErrNotFound is returned when no screenshot exists for an id
var ErrNotFound = errors.New("screenshot not found")

// Store saves screenshots keyed by tile id
type Store struct {
	root fyne.URI
}

// NewStore creates a store rooted at dir, creating the directory when needed
func NewStore(root fyne.URI) (*Store, error) {
	if root == nil {
		return nil, fmt.Errorf("screenshot root is nil")
	}
	if root.Scheme() == "file" {
		if err := platform.CreateDirectoryIfNotExists(root.Path()); err != nil {
			return nil, fmt.Errorf("creating screenshot dir: %w", err)
		}
	}
	return &Store{root: root}, nil
}

// URI returns the location of the screenshot for id
func (s *Store) URI(id string) (fyne.URI, error) {
	if id == "" {
		return nil, fmt.Errorf("screenshot id is empty")
	}
	return storage.Child(s.root, id+FileExtension)
}

// Save encodes img as PNG under id, replacing any previous screenshot
func (s *Store) Save(id string, img image.Image) error {
	if img == nil {
		return fmt.Errorf("screenshot for %s is nil", id)
	}
	u, err := s.URI(id)
	if err != nil {
		return err
	}

	w, err := storage.Writer(u)
	if err != nil {
		return fmt.Errorf("opening screenshot writer: %w", err)
	}
	if err := png.Encode(w, img); err != nil {
		w.Close()
		return fmt.Errorf("encoding screenshot: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing screenshot writer: %w", err)
	}

	log.Printf("screenshot: saved id=%s uri=%s", id, u)
	return nil
}

// Load decodes the screenshot stored under id
func (s *Store) Load(id string) (image.Image, error) {
	u, err := s.URI(id)
	if err != nil {
		return nil, err
	}

	exists, err := storage.Exists(u)
	if err != nil {
		return nil, fmt.Errorf("checking screenshot: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	r, err := storage.Reader(u)
	if err != nil {
		return nil, fmt.Errorf("opening screenshot reader: %w", err)
	}
	defer r.Close()

	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding screenshot: %w", err)
	}
	return img, nil
}

// Remove deletes the screenshot stored under id. A missing screenshot is not an error.
func (s *Store) Remove(id string) error {
	u, err := s.URI(id)
	if err != nil {
		return err
	}

	exists, err := storage.Exists(u)
	if err != nil {
		return fmt.Errorf("checking screenshot: %w", err)
	}
	if !exists {
		return nil
	}

	if err := storage.Delete(u); err != nil {
		return fmt.Errorf("deleting screenshot: %w", err)
	}
	log.Printf("screenshot: removed id=%s", id)
	return nil
}
