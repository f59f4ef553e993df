package assets

import (
	"embed"
	"fmt"
	"path"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/tartampluch/go-cards/internal/config"
)

//go:embed Icon.png
var appIconData []byte

//go:embed images/*.png icons/*.svg
var assetFS embed.FS

const (
	imagesDir = "images"
	iconsDir  = "icons"
	iconExt   = ".svg"
)

// AppIcon returns the launcher icon shared by both apps.
func AppIcon() fyne.Resource {
	return fyne.NewStaticResource(config.IconFile, appIconData)
}

// Embedded serves images and icons compiled into the binary.
type Embedded struct{}

// Image returns the named image, e.g. config.ImagePortrait.
func (Embedded) Image(name string) (fyne.Resource, error) {
	data, err := assetFS.ReadFile(path.Join(imagesDir, name))
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", config.ErrAssetMissing, name, err)
	}
	return fyne.NewStaticResource(name, data), nil
}

// Icon returns the named icon as a themed resource so it follows the
// foreground colour of the current theme.
func (Embedded) Icon(name string) (fyne.Resource, error) {
	file := name + iconExt
	data, err := assetFS.ReadFile(path.Join(iconsDir, file))
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", config.ErrAssetMissing, name, err)
	}
	return theme.NewThemedResource(fyne.NewStaticResource(file, data)), nil
}
