package richtext

import (
	"log/slog"

	"github.com/tartampluch/go-cards/internal/config"
)

// TagURL is the annotation key marking link ranges.
const TagURL = config.TagURL

// URIOpener is the host capability that opens an external resource.
// Failures are the host's concern and are not reported back.
type URIOpener interface {
	OpenURI(uri string)
}

// OpenerFunc adapts a plain function to URIOpener.
type OpenerFunc func(uri string)

// OpenURI calls f(uri).
func (f OpenerFunc) OpenURI(uri string) {
	f(uri)
}

// Clickable binds a styled run to the capability invoked when a URL range
// is tapped. It holds no state between taps.
type Clickable struct {
	Run    *Run
	Opener URIOpener
}

// Tap handles a tap at the given rune offset. When a URL tag covers the
// offset, the first one is opened with its target passed through verbatim
// and Tap returns true. Otherwise nothing happens.
func (c *Clickable) Tap(offset int) bool {
	if c == nil || c.Run == nil || c.Opener == nil {
		return false
	}

	tags := c.Run.TagsAt(TagURL, offset)
	if len(tags) == 0 {
		slog.Debug(config.MsgTapIgnored,
			config.LogKeyComponent, config.CompRichText,
			config.LogKeyOffset, offset,
			config.LogKeyLength, c.Run.Len())
		return false
	}

	target := tags[0].Value
	slog.Info(config.MsgTapDispatch,
		config.LogKeyComponent, config.CompRichText,
		config.LogKeyOffset, offset,
		config.LogKeyURI, target)

	c.Opener.OpenURI(target)
	return true
}
