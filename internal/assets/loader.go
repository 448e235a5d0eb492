// Package assets loads and renders the condition images: animation frames
// and forecast icons.
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ErrNoImages is returned when a frame directory holds no decodable image.
var ErrNoImages = errors.New("assets: no images")

var supported = map[string]bool{
	".png":  true,
	".gif":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".webp": true,
}

// Loader resolves relative paths against Root.
type Loader struct {
	Root string
}

func (l Loader) resolve(p string) string {
	if l.Root == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(l.Root, p)
}

// Frames decodes every image in dir, ordered by file name.
func (l Loader) Frames(dir string) ([]image.Image, error) {
	path := l.resolve(dir)
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("read frames: %w", err)
	}

	var frames []image.Image
	for _, e := range entries {
		if e.IsDir() || !supported[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		img, err := decodeFile(filepath.Join(path, e.Name()))
		if err != nil {
			return nil, err
		}
		frames = append(frames, img)
	}
	if len(frames) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoImages, path)
	}
	return frames, nil
}

// Icon decodes a single image.
func (l Loader) Icon(path string) (image.Image, error) {
	return decodeFile(l.resolve(path))
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return img, nil
}
