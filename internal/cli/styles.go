package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/amirhossein-jamali/webinar-hub/internal/domain/entity"
)

var (
	segmentValueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")).Width(8).Align(lipgloss.Center)
	segmentLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Width(8).Align(lipgloss.Center)
	segmentBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#444444"))
	liveStyle         = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575"))
	headingStyle      = lipgloss.NewStyle().Bold(true)
	mutedStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

// renderCountdownBoxes draws one bordered box per segment, side by side
func renderCountdownBoxes(cd entity.Countdown) string {
	if cd.IsExpired {
		return liveStyle.Render(cd.Label())
	}

	boxes := make([]string, 0, 4)
	for _, s := range cd.Segments() {
		boxes = append(boxes, segmentBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
			segmentValueStyle.Render(s.Value),
			segmentLabelStyle.Render(s.Label),
		)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

// renderCountdownLine is the single-line form redrawn in place while live
func renderCountdownLine(cd entity.Countdown) string {
	if cd.IsExpired {
		return liveStyle.Render(cd.Label())
	}

	parts := make([]string, 0, 4)
	for _, s := range cd.Segments() {
		parts = append(parts, headingStyle.Render(s.Value)+" "+mutedStyle.Render(s.Label))
	}
	return strings.Join(parts, "  ")
}
