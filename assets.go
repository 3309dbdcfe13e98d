package yuletide

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// imageResult is what the preload goroutine hands back.
type imageResult struct {
	img image.Image
	err error
}

// ImagePreload decodes an image file on a background goroutine. The frame
// loop polls it; the GPU upload happens on the polling side so Ebitengine
// is only touched from the game loop.
type ImagePreload struct {
	path   string
	ch     chan imageResult
	img    *ebiten.Image
	err    error
	done   bool
	logged bool
}

// PreloadImage starts decoding path. An empty path resolves immediately
// with no image.
func PreloadImage(path string) *ImagePreload {
	p := &ImagePreload{path: path, ch: make(chan imageResult, 1)}
	if path == "" {
		p.done = true
		return p
	}
	go func() {
		img, err := decodeImageFile(path)
		p.ch <- imageResult{img: img, err: err}
	}()
	return p
}

func decodeImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// Poll collects the decode result if it is ready. Returns true once the
// preload has finished, whether or not it succeeded. Failures are logged
// once and never surfaced.
func (p *ImagePreload) Poll() bool {
	if p.done {
		return true
	}
	select {
	case res := <-p.ch:
		p.done = true
		if res.err != nil {
			p.err = res.err
			if !p.logged {
				log.Printf("[yuletide] assets: %v", res.err)
				p.logged = true
			}
			return true
		}
		p.img = ebiten.NewImageFromImage(res.img)
	default:
	}
	return p.done
}

// Image returns the uploaded image, or nil while pending or after failure.
func (p *ImagePreload) Image() *ebiten.Image { return p.img }

// Err returns the decode error, if any.
func (p *ImagePreload) Err() error { return p.err }
