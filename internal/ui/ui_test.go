package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-cards/internal/config"
	"github.com/tartampluch/go-cards/internal/render"
	"github.com/tartampluch/go-cards/internal/view"
)

// -----------------------------------------------------------------------------
// Mocks
// -----------------------------------------------------------------------------

// iconApp records the launcher icon, which the headless test app discards.
type iconApp struct {
	fyne.App
	icon fyne.Resource
}

func (a *iconApp) SetIcon(r fyne.Resource) {
	a.icon = r
}

// MockOpener stands in for the platform URL handler.
type MockOpener struct {
	mock.Mock
}

func (m *MockOpener) OpenURI(uri string) {
	m.Called(uri)
}

// -----------------------------------------------------------------------------
// Test Setup Helper
// -----------------------------------------------------------------------------

// setupTestApp initializes a headless Fyne app with a mocked opener.
func setupTestApp(t *testing.T, screenKind string) (*ScreenApp, *MockOpener) {
	a := test.NewApp()
	t.Cleanup(a.Quit)

	app := NewScreenApp(a, screenKind)
	opener := new(MockOpener)
	app.Opener = opener

	app.Preferences.SetString(config.PrefLanguage, "en")
	app.SetupI18n()

	return app, opener
}

func findLink(o fyne.CanvasObject) *render.ClickableText {
	if l, ok := o.(*render.ClickableText); ok {
		return l
	}
	if c, ok := o.(*fyne.Container); ok {
		for _, child := range c.Objects {
			if l := findLink(child); l != nil {
				return l
			}
		}
	}
	return nil
}

func hasText(o fyne.CanvasObject, want string) bool {
	if txt, ok := o.(*canvas.Text); ok {
		return txt.Text == want
	}
	if c, ok := o.(*fyne.Container); ok {
		for _, child := range c.Objects {
			if hasText(child, want) {
				return true
			}
		}
	}
	return false
}

// -----------------------------------------------------------------------------
// Localization Tests
// -----------------------------------------------------------------------------

func TestLocalization_Switching(t *testing.T) {
	app, _ := setupTestApp(t, config.ScreenTaskDone)

	assert.Equal(t, "All tasks completed", app.GetMsg(config.TKeyTaskMessage))

	app.Preferences.SetString(config.PrefLanguage, "fr")
	app.UpdateLocalizer()
	assert.Equal(t, "Toutes les tâches sont terminées", app.GetMsg(config.TKeyTaskMessage))
}

func TestLocalization_Template(t *testing.T) {
	app, _ := setupTestApp(t, config.ScreenBusinessCard)

	got := app.GetTemplate(config.TKeyPortraitDesc, map[string]interface{}{"Name": "Ada"})
	assert.Equal(t, "portrait of Ada", got)
}

func TestLocalization_MissingKey(t *testing.T) {
	app, _ := setupTestApp(t, config.ScreenBusinessCard)
	assert.Equal(t, "no_such_key", app.GetMsg("no_such_key"))

	bare := &ScreenApp{}
	assert.Equal(t, config.TKeyName, bare.GetMsg(config.TKeyName), "nil localizer echoes the key")
}

func TestSetupI18n_DetectsLanguages(t *testing.T) {
	app, _ := setupTestApp(t, config.ScreenBusinessCard)
	assert.ElementsMatch(t, config.SupportedLanguages, app.SupportedLanguages)
}

// -----------------------------------------------------------------------------
// Content & View Tree
// -----------------------------------------------------------------------------

func TestBusinessCardContent_FromTables(t *testing.T) {
	app, _ := setupTestApp(t, config.ScreenBusinessCard)
	c := app.BusinessCardContent()

	assert.Equal(t, "Jane Doe", c.Name)
	assert.Equal(t, "Software Engineer", c.JobTitle)
	assert.Equal(t, "LinkedIn", c.LinkLabel)
	assert.Equal(t, "portrait of Jane Doe", c.Portrait.Description)
	assert.Equal(t, config.ImagePortrait, c.Portrait.Name)
}

func TestBusinessCardContent_ImportedCardAndOverrides(t *testing.T) {
	app, _ := setupTestApp(t, config.ScreenBusinessCard)

	app.Card = map[string]string{
		config.EnvCardName:     "Ada Lovelace",
		config.EnvCardJobTitle: "Analyst",
	}
	app.Overrides = map[string]string{config.EnvCardJobTitle: "Programmer"}

	c := app.BusinessCardContent()
	assert.Equal(t, "Ada Lovelace", c.Name)
	assert.Equal(t, "Programmer", c.JobTitle, "overrides apply on top of the vCard")
	assert.Equal(t, "portrait of Ada Lovelace", c.Portrait.Description)
}

func TestBusinessCardContent_ImportedCardFollowsLanguage(t *testing.T) {
	app, _ := setupTestApp(t, config.ScreenBusinessCard)
	app.Card = map[string]string{config.EnvCardName: "Ada Lovelace"}

	app.Preferences.SetString(config.PrefLanguage, "fr")
	app.UpdateLocalizer()

	c := app.BusinessCardContent()
	assert.Equal(t, "Ada Lovelace", c.Name)
	assert.Equal(t, "Ingénieure logiciel", c.JobTitle, "fields missing from the vCard use the current language")
	assert.Equal(t, "portrait de Ada Lovelace", c.Portrait.Description)
}

func TestTaskCompletedContent_Overrides(t *testing.T) {
	app, _ := setupTestApp(t, config.ScreenTaskDone)
	app.Overrides = map[string]string{config.EnvTaskCompliment: "Great job!"}

	c := app.TaskCompletedContent()
	assert.Equal(t, "All tasks completed", c.Message)
	assert.Equal(t, "Great job!", c.Compliment)
}

func TestViewTree_PerScreen(t *testing.T) {
	card, _ := setupTestApp(t, config.ScreenBusinessCard)
	tree, err := card.ViewTree()
	require.NoError(t, err)
	assert.Equal(t, view.KindStack, tree.Kind)
	assert.Len(t, view.FindAll(tree, view.KindLink), 1)

	task, _ := setupTestApp(t, config.ScreenTaskDone)
	tree, err = task.ViewTree()
	require.NoError(t, err)
	assert.Equal(t, view.KindColumn, tree.Kind)
	assert.Empty(t, view.FindAll(tree, view.KindLink))
}

func TestViewTree_UnknownScreen(t *testing.T) {
	app, _ := setupTestApp(t, "settings")
	_, err := app.ViewTree()
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrUnknownScreen)

	_, err = app.BuildWindow()
	assert.Error(t, err)
}

// -----------------------------------------------------------------------------
// Window & Interaction
// -----------------------------------------------------------------------------

func TestBuildWindow(t *testing.T) {
	app, _ := setupTestApp(t, config.ScreenTaskDone)

	w, err := app.BuildWindow()
	require.NoError(t, err)
	defer w.Close()

	assert.Same(t, w, app.Window)
	assert.Equal(t, "Task Manager", w.Title())
	assert.NotNil(t, w.Content())
}

func TestWindow_TapOnLinkOpensProfile(t *testing.T) {
	app, opener := setupTestApp(t, config.ScreenBusinessCard)
	target := app.BusinessCardContent().LinkedIn
	opener.On("OpenURI", target).Once()

	w, err := app.BuildWindow()
	require.NoError(t, err)
	defer w.Close()

	link := findLink(w.Content())
	require.NotNil(t, link)
	test.TapAt(link, fyne.NewPos(1, 1))

	opener.AssertExpectations(t)
}

func TestWatchPreferences_LanguageChangeRecomposes(t *testing.T) {
	app, _ := setupTestApp(t, config.ScreenTaskDone)
	w, err := app.BuildWindow()
	require.NoError(t, err)
	defer w.Close()

	app.watchPreferences()
	app.Preferences.SetString(config.PrefLanguage, "fr")

	assert.Eventually(t, func() bool {
		return w.Title() == "Gestionnaire de tâches"
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, "fr", app.currentLang)
}

func TestWatchPreferences_ImportedCardRecomposesInNewLanguage(t *testing.T) {
	app, _ := setupTestApp(t, config.ScreenBusinessCard)
	app.Card = map[string]string{config.EnvCardName: "Ada Lovelace"}

	w, err := app.BuildWindow()
	require.NoError(t, err)
	defer w.Close()
	require.True(t, hasText(w.Content(), "Software Engineer"))

	app.watchPreferences()
	app.Preferences.SetString(config.PrefLanguage, "fr")

	assert.Eventually(t, func() bool {
		return hasText(w.Content(), "Ingénieure logiciel")
	}, time.Second, 10*time.Millisecond)
	assert.True(t, hasText(w.Content(), "Ada Lovelace"))
}

func TestNewScreenApp_Defaults(t *testing.T) {
	a := &iconApp{App: test.NewApp()}
	defer a.Quit()

	app := NewScreenApp(a, config.ScreenBusinessCard)
	assert.IsType(t, render.AppOpener{}, app.Opener)
	assert.NotNil(t, app.Resources)

	require.NotNil(t, a.icon)
	assert.Equal(t, config.IconFile, a.icon.Name())
	assert.NotEmpty(t, a.icon.Content())
}
