package view

import (
	"image/color"

	"github.com/tartampluch/go-cards/internal/richtext"
)

// Kind identifies what a Node draws.
type Kind int

const (
	// KindStack overlays its children, each filling the parent.
	KindStack Kind = iota
	KindColumn
	KindRow
	KindImage
	KindIcon
	KindText
	KindLink
	KindSpacer
)

var kindNames = [...]string{"stack", "column", "row", "image", "icon", "text", "link", "spacer"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Alignment positions children along one axis of a container.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	default:
		return "start"
	}
}

// Insets is padding around a node, in device independent units.
type Insets struct {
	Top    float32
	Bottom float32
	Start  float32
	End    float32
}

// IsZero reports whether no padding is set.
func (i Insets) IsZero() bool {
	return i == Insets{}
}

// Style carries the presentation attributes of a node. Zero values fall
// back to the host theme.
type Style struct {
	FontSize float32
	Bold     bool
	Color    color.Color
	Padding  Insets
	Height   float32

	// HAlign and VAlign position the children of containers.
	HAlign Alignment
	VAlign Alignment
}

// Node is one element of an immutable, host independent view tree.
type Node struct {
	Kind Kind

	// Text is the content of text nodes.
	Text string

	// Resource names the image or icon drawn by image and icon nodes.
	Resource string

	// Description is the accessibility text of image nodes.
	Description string

	// Run is the styled, tagged text of link nodes.
	Run *richtext.Run

	Style    Style
	Children []*Node
}

// Interactive reports whether the node reacts to taps.
func (n *Node) Interactive() bool {
	return n.Kind == KindLink
}

// Stack overlays the given regions.
func Stack(children ...*Node) *Node {
	return &Node{Kind: KindStack, Children: children}
}

// Column lays out children vertically.
func Column(style Style, children ...*Node) *Node {
	return &Node{Kind: KindColumn, Style: style, Children: children}
}

// Row lays out children horizontally.
func Row(style Style, children ...*Node) *Node {
	return &Node{Kind: KindRow, Style: style, Children: children}
}

// Text is a single line of static text.
func Text(s string, style Style) *Node {
	return &Node{Kind: KindText, Text: s, Style: style}
}

// Image draws the named image resource.
func Image(resource, description string, style Style) *Node {
	return &Node{Kind: KindImage, Resource: resource, Description: description, Style: style}
}

// Icon draws the named icon.
func Icon(name string, style Style) *Node {
	return &Node{Kind: KindIcon, Resource: name, Style: style}
}

// Link draws a tappable styled run. A nil run gives an empty link.
func Link(run *richtext.Run, style Style) *Node {
	n := &Node{Kind: KindLink, Run: run, Style: style}
	if run != nil {
		n.Text = run.Text
	}
	return n
}

// Spacer reserves vertical space.
func Spacer(height float32) *Node {
	return &Node{Kind: KindSpacer, Style: Style{Height: height}}
}
