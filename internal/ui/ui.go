package ui

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-cards/internal/assets"
	"github.com/tartampluch/go-cards/internal/config"
	"github.com/tartampluch/go-cards/internal/content"
	"github.com/tartampluch/go-cards/internal/render"
	"github.com/tartampluch/go-cards/internal/richtext"
	"github.com/tartampluch/go-cards/internal/screen"
	"github.com/tartampluch/go-cards/internal/view"
)

// ScreenApp wires string tables, overrides and the host adapter for one of
// the two screens.
type ScreenApp struct {
	App         fyne.App
	Window      fyne.Window
	Preferences fyne.Preferences
	I18nBundle  *i18n.Bundle
	Localizer   *i18n.Localizer

	// Screen is config.ScreenBusinessCard or config.ScreenTaskDone.
	Screen string

	// Overrides holds values read by content.ReadOverrides.
	Overrides map[string]string

	// Card holds the fields of an imported vCard (content.DecodeCardFields).
	// They are layered over the string tables each time the screen is built.
	Card map[string]string

	Opener    richtext.URIOpener
	Resources render.Resources

	SupportedLanguages []string
	currentLang        string
}

// NewScreenApp constructs the application and wires dependencies.
func NewScreenApp(a fyne.App, screenKind string) *ScreenApp {
	a.SetIcon(assets.AppIcon())

	return &ScreenApp{
		App:                a,
		Preferences:        a.Preferences(),
		Screen:             screenKind,
		Overrides:          map[string]string{},
		Opener:             render.AppOpener{App: a},
		Resources:          assets.Embedded{},
		SupportedLanguages: config.SupportedLanguages,
	}
}

// Run shows the screen and blocks until the window is closed.
func (app *ScreenApp) Run() error {
	if app.I18nBundle == nil {
		app.SetupI18n()
	}

	w, err := app.BuildWindow()
	if err != nil {
		return err
	}
	app.watchPreferences()

	w.ShowAndRun()
	return nil
}

// BuildWindow creates the main window with the composed screen.
func (app *ScreenApp) BuildWindow() (fyne.Window, error) {
	obj, err := app.Compose()
	if err != nil {
		return nil, err
	}

	w := app.App.NewWindow(app.title())
	w.Resize(fyne.NewSize(config.WindowWidth, config.WindowHeight))
	w.SetContent(obj)
	app.Window = w
	return w, nil
}

// Compose renders the current view tree over the theme background.
func (app *ScreenApp) Compose() (fyne.CanvasObject, error) {
	tree, err := app.ViewTree()
	if err != nil {
		return nil, err
	}
	r := &render.Renderer{Opener: app.Opener, Resources: app.Resources}
	return render.WithBackground(r.Render(tree)), nil
}

// ViewTree builds the host independent tree of the configured screen.
func (app *ScreenApp) ViewTree() (*view.Node, error) {
	var tree *view.Node
	switch app.Screen {
	case config.ScreenBusinessCard:
		tree = screen.BusinessCard(app.BusinessCardContent())
	case config.ScreenTaskDone:
		tree = screen.TaskCompleted(app.TaskCompletedContent())
	default:
		return nil, fmt.Errorf("%s: %q", config.ErrUnknownScreen, app.Screen)
	}

	slog.Debug(config.MsgScreenBuilt,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyScreen, app.Screen,
		config.LogKeyNodes, view.Count(tree))
	return tree, nil
}

// BusinessCardContent resolves the business card values: string tables in the
// current language, then the imported vCard fields, then overrides.
func (app *ScreenApp) BusinessCardContent() content.BusinessCard {
	return content.NewBusinessCard(app).
		WithOverrides(app.Card, app).
		WithOverrides(app.Overrides, app)
}

// TaskCompletedContent resolves the task screen values.
func (app *ScreenApp) TaskCompletedContent() content.TaskCompleted {
	return content.NewTaskCompleted(app).WithOverrides(app.Overrides)
}

func (app *ScreenApp) title() string {
	if app.Screen == config.ScreenTaskDone {
		return app.GetMsg(config.TKeyWinTitleTask)
	}
	return app.GetMsg(config.TKeyWinTitleCard)
}

// watchPreferences recomposes the window when the language preference changes.
func (app *ScreenApp) watchPreferences() {
	app.Preferences.AddChangeListener(func() {
		if app.language() == app.currentLang {
			return
		}
		app.UpdateLocalizer()

		slog.Info(config.MsgLangChanged,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyLang, app.currentLang)

		fyne.Do(app.refresh)
	})
}

// refresh rebuilds the window content and title from the current localizer.
func (app *ScreenApp) refresh() {
	if app.Window == nil {
		return
	}
	obj, err := app.Compose()
	if err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyError, err)
		return
	}
	app.Window.SetTitle(app.title())
	app.Window.SetContent(obj)
}
