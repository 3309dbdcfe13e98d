package yuletide

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing and draw-call metrics.
// Only populated when the scene is in debug mode.
type debugStats struct {
	evaluateTime time.Duration
	drawTime     time.Duration
	overlayTime  time.Duration
	render       renderStats
}

// debugLogInterval is how many frames pass between stat lines.
const debugLogInterval = 60

// debugLog prints timing and draw-call stats to stderr, once every
// debugLogInterval frames.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug || s.frame%debugLogInterval != 0 {
		return
	}
	total := stats.evaluateTime + stats.drawTime + stats.overlayTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[yuletide] evaluate: %v | draw: %v | overlay: %v | total: %v\n",
		stats.evaluateTime, stats.drawTime, stats.overlayTime, total)
	_, _ = fmt.Fprintf(os.Stderr,
		"[yuletide] points: %d | culled: %d | triangles: %d | draw calls: %d\n",
		stats.render.points, stats.render.culled, stats.render.triangles, stats.render.drawCalls)
}

// debugLogf prints one debug line to stderr.
func debugLogf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[yuletide] "+format+"\n", args...)
}
