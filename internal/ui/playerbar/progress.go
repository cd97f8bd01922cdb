package playerbar

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/comrad/internal/ui/styles"
)

const (
	filledCell = "━"
	emptyCell  = "─"
)

// ProgressBar renders a bar of width cells. The filled part takes its
// colours from a gradient spanning the whole bar, so the colour under the
// head reflects how far the track has got.
func ProgressBar(position, duration time.Duration, width int) string {
	if width <= 0 {
		return ""
	}
	filled := filledCells(position, duration, width)

	var b strings.Builder
	colors := styles.Blend(width, styles.T().Primary, styles.T().Secondary)
	for i := range filled {
		b.WriteString(lipgloss.NewStyle().Foreground(colors[i]).Render(filledCell))
	}
	b.WriteString(emptyBarStyle().Render(strings.Repeat(emptyCell, width-filled)))
	return b.String()
}

// filledCells is the number of cells covered by position, clamped to
// [0, width].
func filledCells(position, duration time.Duration, width int) int {
	if duration <= 0 || position <= 0 {
		return 0
	}
	ratio := float64(position) / float64(duration)
	return min(int(float64(width)*ratio), width)
}
