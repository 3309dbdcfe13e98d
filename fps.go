package yuletide

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often, in seconds, the widget text is redrawn.
const fpsRefresh = 0.5

// fpsWidget displays the current FPS and TPS in the bottom-left corner.
// Its image is refreshed every fpsRefresh seconds with ebitenutil.DebugPrint.
type fpsWidget struct {
	img   *ebiten.Image
	since float64
}

func newFPSWidget() *fpsWidget {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	return &fpsWidget{img: ebiten.NewImage(100, 32), since: fpsRefresh}
}

func (w *fpsWidget) update(dt float64) {
	w.since += dt
	if w.since < fpsRefresh {
		return
	}
	w.since = 0

	w.img.Clear()
	// Semi-transparent background for readability
	w.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(w.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

func (w *fpsWidget) draw(dst *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(8, float64(dst.Bounds().Dy()-w.img.Bounds().Dy()-8))
	dst.DrawImage(w.img, op)
}
