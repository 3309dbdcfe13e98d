package yuletide

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Run opens a window sized and titled from the scene's config and runs the
// game loop until the window closes, a test script finishes, or Close is
// called. The scene is closed before Run returns.
func Run(s *Scene) error {
	w := s.cfg.Window
	ebiten.SetWindowTitle(w.Title)
	ebiten.SetWindowSize(w.Width, w.Height)
	if w.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	runErr := ebiten.RunGame(s)
	closeErr := s.Close()
	if runErr != nil {
		return fmt.Errorf("run: %w", runErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close: %w", closeErr)
	}
	if s.testRunner != nil {
		return s.testRunner.Err()
	}
	return nil
}
