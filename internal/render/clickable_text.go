package render

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-cards/internal/richtext"
)

// ClickableText draws a styled run and forwards taps to its Clickable as a
// rune offset.
type ClickableText struct {
	widget.BaseWidget

	Clickable *richtext.Clickable
}

// NewClickableText creates a new instance of ClickableText.
func NewClickableText(c *richtext.Clickable) *ClickableText {
	t := &ClickableText{Clickable: c}
	t.ExtendBaseWidget(t)
	return t
}

// CreateRenderer implements fyne.Widget.
func (t *ClickableText) CreateRenderer() fyne.WidgetRenderer {
	style := t.style()
	txt := canvas.NewText(t.text(), colorOr(style.Color, theme.ColorNameHyperlink))
	txt.TextSize = t.textSize()
	txt.TextStyle = t.textStyle()
	return widget.NewSimpleRenderer(txt)
}

// Tapped maps the tap position to a character offset and dispatches it.
func (t *ClickableText) Tapped(ev *fyne.PointEvent) {
	t.Clickable.Tap(t.OffsetAt(ev.Position.X))
}

// Cursor shows a pointer over links on desktop.
func (t *ClickableText) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

// OffsetAt returns the rune under the horizontal position x. Positions
// left of the text give -1 and positions past its end give the rune count,
// both of which fall outside any tag.
func (t *ClickableText) OffsetAt(x float32) int {
	if x < 0 {
		return -1
	}
	runes := []rune(t.text())
	size, style := t.textSize(), t.textStyle()
	for i := range runes {
		if x < fyne.MeasureText(string(runes[:i+1]), size, style).Width {
			return i
		}
	}
	return len(runes)
}

func (t *ClickableText) text() string {
	if t.Clickable == nil || t.Clickable.Run == nil {
		return ""
	}
	return t.Clickable.Run.Text
}

func (t *ClickableText) style() richtext.SpanStyle {
	if t.Clickable == nil || t.Clickable.Run == nil {
		return richtext.SpanStyle{}
	}
	return t.Clickable.Run.StyleAt(0)
}

func (t *ClickableText) textSize() float32 {
	if s := t.style().FontSize; s > 0 {
		return s
	}
	return theme.TextSize()
}

func (t *ClickableText) textStyle() fyne.TextStyle {
	s := t.style()
	return fyne.TextStyle{Bold: s.Bold, Underline: s.Underline}
}
