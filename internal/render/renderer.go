package render

import (
	"image/color"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-cards/internal/config"
	"github.com/tartampluch/go-cards/internal/richtext"
	"github.com/tartampluch/go-cards/internal/view"
)

// Resources resolves image and icon names used by view nodes.
type Resources interface {
	Image(name string) (fyne.Resource, error)
	Icon(name string) (fyne.Resource, error)
}

// Renderer converts a view tree into Fyne canvas objects.
type Renderer struct {
	Opener    richtext.URIOpener
	Resources Resources
}

// Render builds the canvas object for n and its children.
func (r *Renderer) Render(n *view.Node) fyne.CanvasObject {
	if n == nil {
		return layout.NewSpacer()
	}
	return padded(r.build(n), n.Style.Padding)
}

// WithBackground places obj over the theme background colour.
func WithBackground(obj fyne.CanvasObject) fyne.CanvasObject {
	bg := canvas.NewRectangle(theme.Color(theme.ColorNameBackground))
	return container.NewStack(bg, obj)
}

func (r *Renderer) build(n *view.Node) fyne.CanvasObject {
	switch n.Kind {
	case view.KindStack:
		return container.NewStack(r.renderAll(n.Children)...)
	case view.KindColumn:
		return r.column(n)
	case view.KindRow:
		return r.row(n)
	case view.KindText:
		return newText(n)
	case view.KindImage:
		return r.image(n)
	case view.KindIcon:
		return r.icon(n)
	case view.KindLink:
		return NewClickableText(&richtext.Clickable{Run: n.Run, Opener: r.Opener})
	case view.KindSpacer:
		rect := canvas.NewRectangle(color.Transparent)
		rect.SetMinSize(fyne.NewSize(0, n.Style.Height))
		return rect
	default:
		return layout.NewSpacer()
	}
}

func (r *Renderer) renderAll(nodes []*view.Node) []fyne.CanvasObject {
	objs := make([]fyne.CanvasObject, 0, len(nodes))
	for _, c := range nodes {
		objs = append(objs, r.Render(c))
	}
	return objs
}

// column stacks children vertically. VAlign places the group inside the
// available height, HAlign places each child inside the width.
func (r *Renderer) column(n *view.Node) fyne.CanvasObject {
	var objs []fyne.CanvasObject
	if n.Style.VAlign != view.AlignStart {
		objs = append(objs, layout.NewSpacer())
	}
	for _, c := range r.renderAll(n.Children) {
		objs = append(objs, alignHorizontal(c, n.Style.HAlign))
	}
	if n.Style.VAlign == view.AlignCenter {
		objs = append(objs, layout.NewSpacer())
	}
	return container.NewVBox(objs...)
}

func (r *Renderer) row(n *view.Node) fyne.CanvasObject {
	objs := r.renderAll(n.Children)
	if n.Style.VAlign == view.AlignCenter {
		for i, o := range objs {
			objs[i] = container.NewCenter(o)
		}
	}
	if n.Style.HAlign == view.AlignCenter {
		objs = append([]fyne.CanvasObject{layout.NewSpacer()}, append(objs, layout.NewSpacer())...)
	} else if n.Style.HAlign == view.AlignEnd {
		objs = append([]fyne.CanvasObject{layout.NewSpacer()}, objs...)
	}
	return container.NewHBox(objs...)
}

func alignHorizontal(obj fyne.CanvasObject, a view.Alignment) fyne.CanvasObject {
	switch a {
	case view.AlignCenter:
		return container.NewCenter(obj)
	case view.AlignEnd:
		return container.NewHBox(layout.NewSpacer(), obj)
	default:
		return container.NewHBox(obj, layout.NewSpacer())
	}
}

func padded(obj fyne.CanvasObject, in view.Insets) fyne.CanvasObject {
	if in.IsZero() {
		return obj
	}
	return container.New(layout.NewCustomPaddedLayout(in.Top, in.Bottom, in.Start, in.End), obj)
}

func newText(n *view.Node) *canvas.Text {
	t := canvas.NewText(n.Text, colorOr(n.Style.Color, theme.ColorNameForeground))
	if n.Style.FontSize > 0 {
		t.TextSize = n.Style.FontSize
	}
	t.TextStyle = fyne.TextStyle{Bold: n.Style.Bold}
	return t
}

func (r *Renderer) image(n *view.Node) fyne.CanvasObject {
	res, err := r.resource(n)
	if err != nil {
		return missing(n)
	}
	img := canvas.NewImageFromResource(res)
	img.FillMode = canvas.ImageFillContain
	if n.Style.Height > 0 {
		img.SetMinSize(fyne.NewSize(n.Style.Height, n.Style.Height))
	}
	return img
}

func (r *Renderer) icon(n *view.Node) fyne.CanvasObject {
	res, err := r.resource(n)
	if err != nil {
		return missing(n)
	}
	return widget.NewIcon(res)
}

func (r *Renderer) resource(n *view.Node) (fyne.Resource, error) {
	if r.Resources == nil {
		return nil, errNoResources
	}

	var res fyne.Resource
	var err error
	if n.Kind == view.KindIcon {
		res, err = r.Resources.Icon(n.Resource)
	} else {
		res, err = r.Resources.Image(n.Resource)
	}
	if err != nil {
		slog.Error(config.ErrAssetMissing,
			config.LogKeyComponent, config.CompRender,
			config.LogKeyName, n.Resource,
			config.LogKeyError, err)
	}
	return res, err
}

// missing keeps the layout stable when a resource cannot be found.
func missing(n *view.Node) fyne.CanvasObject {
	rect := canvas.NewRectangle(color.Transparent)
	rect.SetMinSize(fyne.NewSize(n.Style.Height, n.Style.Height))
	return rect
}

func colorOr(c color.Color, fallback fyne.ThemeColorName) color.Color {
	if c != nil {
		return c
	}
	return theme.Color(fallback)
}
