package render

import (
	"errors"
	"log/slog"
	"net/url"

	"fyne.io/fyne/v2"
	"github.com/tartampluch/go-cards/internal/config"
)

var errNoResources = errors.New(config.ErrAssetMissing)

// AppOpener opens link targets with the platform handler of a Fyne app.
// Failures are logged and otherwise left to the host.
type AppOpener struct {
	App fyne.App
}

// OpenURI implements richtext.URIOpener.
func (o AppOpener) OpenURI(uri string) {
	log := slog.With(config.LogKeyComponent, config.CompRender, config.LogKeyURI, uri)

	u, err := url.Parse(uri)
	if err != nil {
		log.Warn(config.ErrURIParse, config.LogKeyError, err)
		return
	}
	if o.App == nil {
		return
	}
	if err := o.App.OpenURL(u); err != nil {
		log.Warn(config.ErrURIOpen, config.LogKeyError, err)
	}
}
