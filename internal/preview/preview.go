// Package preview draws a view tree as styled terminal text, for checking a
// screen without a display.
package preview

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/lipgloss"
	"github.com/tartampluch/go-cards/internal/config"
	"github.com/tartampluch/go-cards/internal/view"
)

// unit is the number of layout units drawn as one terminal cell.
const unit = 16

var glyphs = map[string]string{
	config.IconPhone: config.GlyphPhone,
	config.IconEmail: config.GlyphEmail,
	config.IconFace:  config.GlyphFace,
}

// Render draws n into a block of the given width.
func Render(n *view.Node, width int) string {
	if n == nil {
		return ""
	}
	return render(n, width)
}

func render(n *view.Node, width int) string {
	pad := n.Style.Padding
	inner := width - cells(pad.Start) - cells(pad.End)
	if inner < 1 {
		inner = 1
	}

	out := draw(n, inner)
	if pad.IsZero() {
		return out
	}
	return lipgloss.NewStyle().
		PaddingTop(cells(pad.Top)).
		PaddingBottom(cells(pad.Bottom)).
		PaddingLeft(cells(pad.Start)).
		PaddingRight(cells(pad.End)).
		Render(out)
}

func draw(n *view.Node, width int) string {
	switch n.Kind {
	case view.KindStack:
		parts := make([]string, 0, len(n.Children))
		for _, c := range n.Children {
			parts = append(parts, render(c, width))
		}
		return lipgloss.JoinVertical(lipgloss.Left, parts...)

	case view.KindColumn:
		parts := make([]string, 0, len(n.Children))
		for _, c := range n.Children {
			parts = append(parts, lipgloss.PlaceHorizontal(width, position(n.Style.HAlign), render(c, width)))
		}
		return lipgloss.JoinVertical(position(n.Style.HAlign), parts...)

	case view.KindRow:
		parts := make([]string, 0, 2*len(n.Children))
		for i, c := range n.Children {
			if i > 0 {
				parts = append(parts, " ")
			}
			parts = append(parts, render(c, width))
		}
		return lipgloss.JoinHorizontal(lipgloss.Center, parts...)

	case view.KindText:
		return textStyle(n).Render(n.Text)

	case view.KindLink:
		return textStyle(n).Underline(true).Render(n.Text)

	case view.KindIcon:
		if g, ok := glyphs[n.Resource]; ok {
			return g
		}
		return config.GlyphUnknown

	case view.KindImage:
		label := n.Description
		if label == "" {
			label = n.Resource
		}
		return fmt.Sprintf(config.FormatImage, label)

	case view.KindSpacer:
		return lipgloss.NewStyle().Height(cells(n.Style.Height)).Render("")

	default:
		return ""
	}
}

func textStyle(n *view.Node) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(n.Style.Bold)
	if c, ok := hex(n.Style.Color); ok {
		s = s.Foreground(lipgloss.Color(c))
	}
	return s
}

func position(a view.Alignment) lipgloss.Position {
	switch a {
	case view.AlignCenter:
		return lipgloss.Center
	case view.AlignEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

func cells(v float32) int {
	return int(v) / unit
}

func hex(c color.Color) (string, bool) {
	if c == nil {
		return "", false
	}
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02X%02X%02X", r>>8, g>>8, b>>8), true
}
