// Package screen composes the view trees of the two apps. Every function is
// a pure mapping from display content to a fresh tree.
package screen

import (
	"image/color"

	"github.com/tartampluch/go-cards/internal/config"
	"github.com/tartampluch/go-cards/internal/content"
	"github.com/tartampluch/go-cards/internal/richtext"
	"github.com/tartampluch/go-cards/internal/view"
)

var centered = view.Style{HAlign: view.AlignCenter, VAlign: view.AlignCenter}

// BusinessCard lays out an upper, centred region (portrait, name, job title)
// and a lower, bottom anchored region with three contact rows: phone, email
// and link.
func BusinessCard(c content.BusinessCard) *view.Node {
	top := view.Column(centered,
		view.Image(c.Portrait.Name, c.Portrait.Description, view.Style{
			Padding: view.Insets{Start: config.CardImagePaddingH, End: config.CardImagePaddingH},
			Height:  config.CardImageMinHeight,
		}),
		view.Text(c.Name, view.Style{
			FontSize: config.CardNameFontSize,
			Bold:     true,
			Padding:  view.Insets{Top: config.CardNamePadTop, Bottom: config.CardNamePadBottom},
		}),
		view.Text(c.JobTitle, view.Style{FontSize: config.CardTitleFontSize}),
		view.Spacer(config.CardSpacerHeight),
	)

	bottom := view.Column(view.Style{
		HAlign:  view.AlignStart,
		VAlign:  view.AlignEnd,
		Padding: view.Insets{Start: config.ContactPadStart, Bottom: config.ContactPadBottom},
	},
		contactRow(config.IconPhone, view.Text(c.Phone, view.Style{FontSize: config.ContactFontSize})),
		contactRow(config.IconEmail, view.Text(c.Email, view.Style{FontSize: config.ContactFontSize})),
		contactRow(config.IconFace, HyperlinkText(c.LinkLabel, c.LinkedIn, config.ContactFontSize, config.LinkColor)),
	)

	return view.Stack(top, bottom)
}

func contactRow(icon string, text *view.Node) *view.Node {
	return view.Row(view.Style{VAlign: view.AlignCenter},
		view.Icon(icon, view.Style{Padding: view.Insets{End: config.ContactIconPadEnd}}),
		text,
	)
}

// HyperlinkText builds a link node whose whole label is tagged with target.
func HyperlinkText(label, target string, fontSize float32, col color.Color) *view.Node {
	run := richtext.Link(label, target, richtext.SpanStyle{Color: col, FontSize: fontSize})
	return view.Link(run, view.Style{FontSize: fontSize, Color: col})
}

// TaskCompleted lays out the image, message and compliment in a single
// centred column. Nothing on this screen is interactive.
func TaskCompleted(c content.TaskCompleted) *view.Node {
	return view.Column(centered,
		view.Image(c.Image.Name, c.Image.Description, view.Style{Height: config.TaskImageMinHeight}),
		view.Text(c.Message, view.Style{
			FontSize: config.TaskMessageFontSize,
			Bold:     true,
			Padding:  view.Insets{Top: config.TaskMessagePadTop, Bottom: config.TaskMessagePadBottom},
		}),
		view.Text(c.Compliment, view.Style{FontSize: config.TaskComplimentFontSize}),
	)
}
