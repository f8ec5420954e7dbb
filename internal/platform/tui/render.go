package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	tileDark  = lipgloss.Color("#615b56")
	tileLight = lipgloss.Color("#f5ebe4")
)

func tileStyle(bg lipgloss.Color, fg lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Background(bg).Foreground(fg).Bold(true)
}

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

	core.ColorBoard:     lipgloss.NewStyle().Background(lipgloss.Color("#bbada0")),
	core.ColorTileEmpty: lipgloss.NewStyle().Background(lipgloss.Color("#ccc0b3")),
	core.ColorTile2:     tileStyle("#fcefe6", tileDark),
	core.ColorTile4:     tileStyle("#f2e8cb", tileDark),
	core.ColorTile8:     tileStyle("#f5b682", tileLight),
	core.ColorTile16:    tileStyle("#f29446", tileLight),
	core.ColorTile32:    tileStyle("#ff775c", tileLight),
	core.ColorTile64:    tileStyle("#e64c2e", tileLight),
	core.ColorTile128:   tileStyle("#ede291", tileLight),
	core.ColorTile256:   tileStyle("#fce130", tileLight),
	core.ColorTile512:   tileStyle("#ffdb4a", tileLight),
	core.ColorTile1024:  tileStyle("#f0b922", tileLight),
	core.ColorTile2048:  tileStyle("#fad74d", tileLight),
	core.ColorTileSuper: tileStyle("#3c3a32", tileLight),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
				if startColor.IsTile() {
					style = colorStyles[core.ColorTileSuper]
				}
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
