package playerbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/comrad/internal/ui/styles"
)

func barStyle() lipgloss.Style {
	return styles.T().PanelStyle(false).Padding(0, 1)
}

func titleStyle() lipgloss.Style {
	return styles.T().S().Title
}

func infoStyle() lipgloss.Style {
	return styles.T().S().Muted
}

func modeStyle(on bool) lipgloss.Style {
	if on {
		return lipgloss.NewStyle().Foreground(styles.T().Primary)
	}
	return styles.T().S().Subtle
}

func timeStyle() lipgloss.Style {
	return styles.T().S().Muted
}

func emptyBarStyle() lipgloss.Style {
	return styles.T().S().Subtle
}
