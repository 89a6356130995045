package tui

import (
	"fmt"
	"strings"

	"github.com/user/smolwifi/internal/model"
)

// Networks is the scan-result list view.
type Networks struct {
	result model.ScanResult
	width  int
	height int
}

// NewNetworks creates the list view for one scan result.
func NewNetworks(result model.ScanResult, width, height int) *Networks {
	return &Networks{
		result: result,
		width:  width,
		height: height,
	}
}

// SetSize updates the view size.
func (n *Networks) SetSize(width, height int) {
	n.width = width
	n.height = height
}

// View renders the network list.
func (n *Networks) View() string {
	var sb strings.Builder

	status := n.result.Summary()
	if n.result.Stale {
		status += DimStyle.Render("  (stale)")
	}
	if n.result.Skipped > 0 {
		status += DimStyle.Render(fmt.Sprintf("  (%d unreadable)", n.result.Skipped))
	}
	sb.WriteString(StatusStyle.Render(status))
	sb.WriteString("\n")

	for _, rec := range n.result.Networks {
		sb.WriteString(n.renderRow(rec))
		sb.WriteString("\n")
	}

	return sb.String()
}

func (n *Networks) renderRow(rec model.NetworkRecord) string {
	bar := RenderBar(rec.SignalPercent, 100, 10)
	percent := SignalStyle(rec.SignalPercent).Render(fmt.Sprintf("%3d%%", rec.SignalPercent))

	name := rec.DisplayName()
	nameStyle := SSIDStyle
	if rec.Hidden() {
		nameStyle = HiddenStyle
	}
	if rec.Active {
		nameStyle = ActiveStyle
	}
	nameCell := nameStyle.Render(padRight(name, 28))

	band := BandStyle.Render(padRight(rec.Band(), 8))
	security := SecurityStyle.Render(padRight(string(rec.Security), 6))

	marker := "  "
	if rec.Active {
		marker = ActiveStyle.Render("✓ ")
	}

	return fmt.Sprintf("%s%s %s %s %s %s", marker, nameCell, bar, percent, band, security)
}

func padRight(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return string(runes[:width])
	}
	return s + strings.Repeat(" ", width-len(runes))
}
