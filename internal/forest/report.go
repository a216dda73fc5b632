package forest

import (
	"fmt"
	"strings"
)

// BuildReport renders a plain-text snapshot of the world: tick, tree
// census, ground-cover totals, and light statistics. The GUI copies it to
// the clipboard on demand; the TUI and sweep tool print it directly.
func (w *World) BuildReport() string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- canopy forest report ---\n")
	fmt.Fprintf(&b, "seed=%d tick=%d trees=%d dropped_events=%d\n",
		w.seed, w.tick, w.trees.Total(), w.droppedEvents)

	census := w.Census()
	b.WriteString("stages:")
	for stage := StageSprout; stage < stageCount; stage++ {
		fmt.Fprintf(&b, " %s=%d", stage, census[stage])
	}
	b.WriteByte('\n')

	grass := 0
	lightSum := 0.0
	lightMin := 1.0
	for i := 0; i < GridSize; i++ {
		if w.cover[i] == CoverGrass {
			grass++
		}
		lightSum += w.light[i]
		if w.light[i] < lightMin {
			lightMin = w.light[i]
		}
	}
	fmt.Fprintf(&b, "cover: grass=%d dirt=%d (%.1f%% grass)\n",
		grass, GridSize-grass, 100*float64(grass)/float64(GridSize))
	fmt.Fprintf(&b, "light: avg=%.3f min=%.3f\n",
		lightSum/float64(GridSize), lightMin)
	fmt.Fprintf(&b, "camera: x=%.2f y=%.2f zoom=%.2f paused=%t\n",
		w.camera.X, w.camera.Y, w.camera.Zoom, w.paused)
	return b.String()
}
