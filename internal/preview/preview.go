// Package preview renders palettes and contrast pairs as terminal swatches.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/swatch/internal/colour"
)

const defaultWidth = 24

// Options controls how swatches are drawn.
type Options struct {
	// Color paints swatch backgrounds. Without it only labels are printed.
	Color bool
	Width int
}

func (o Options) width() int {
	if o.Width <= 0 {
		return defaultWidth
	}
	return o.Width
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	mutedStyle = lipgloss.NewStyle().Faint(true)
	rowStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// Palette renders one row per step of p, lightest first. The seed row is
// marked as the base.
func Palette(p colour.Palette, opts Options) string {
	rows := make([]string, 0, p.Scale.Len()+1)
	rows = append(rows, titleStyle.Render(p.Name))

	for i, value := range p.Scale.Values {
		step := i - p.Scale.Offset
		text, _ := p.Text.Index(i)

		label := fmt.Sprintf("%+d", step)
		if step == 0 {
			label = "base"
		}

		swatch := swatchStyle(value, text, opts).Render(fmt.Sprintf("%-5s %s", label, value))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, swatch, " ", mutedStyle.Render(text)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Contrast renders a sample of foreground on background with their ratio.
// When adjusted differs from foreground a second sample shows the
// accessible replacement.
func Contrast(foreground, adjusted, background string, opts Options) string {
	rows := []string{sample(foreground, background, opts)}
	if !strings.EqualFold(adjusted, foreground) {
		rows = append(rows, sample(adjusted, background, opts))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func sample(foreground, background string, opts Options) string {
	ratio := "n/a"
	if value, err := colour.Contrast(foreground, background); err == nil {
		ratio = fmt.Sprintf("%.2f:1", value)
	}
	swatch := swatchStyle(background, foreground, opts).Render(fmt.Sprintf("Aa %s", foreground))
	return lipgloss.JoinHorizontal(lipgloss.Top, swatch, " ", mutedStyle.Render(ratio))
}

func swatchStyle(background, foreground string, opts Options) lipgloss.Style {
	style := rowStyle.Width(opts.width())
	if !opts.Color {
		return style
	}
	if bg, ok := terminalColour(background); ok {
		style = style.Background(bg)
	}
	if fg, ok := terminalColour(foreground); ok {
		style = style.Foreground(fg)
	}
	return style
}

// terminalColour normalises names and short hex forms to #rrggbb.
func terminalColour(value string) (lipgloss.Color, bool) {
	c, err := colour.Parse(value)
	if err != nil {
		return "", false
	}
	return lipgloss.Color(colour.Hex(c)), true
}
