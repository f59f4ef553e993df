package ui

import (
	"embed"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-cards/internal/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

const (
	localeDir    = "locales"
	localePrefix = "active."
	localeSuffix = ".json"
)

// SetupI18n loads the embedded string tables and detects available languages.
func (app *ScreenApp) SetupI18n() {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir(localeDir)
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
		return
	}

	var detectedLangs []string

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, localePrefix) || !strings.HasSuffix(name, localeSuffix) {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		langCode := strings.TrimSuffix(strings.TrimPrefix(name, localePrefix), localeSuffix)
		if langCode == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, localeDir+"/"+name); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}

		detectedLangs = append(detectedLangs, langCode)
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, langCode,
			config.LogKeyFile, name,
		)
	}

	app.SupportedLanguages = detectedLangs
	app.I18nBundle = bundle
	app.UpdateLocalizer()
}

// UpdateLocalizer refreshes the translator based on the user's language preference.
func (app *ScreenApp) UpdateLocalizer() {
	lang := app.language()
	app.Localizer = i18n.NewLocalizer(app.I18nBundle, lang)
	app.currentLang = lang
}

func (app *ScreenApp) language() string {
	lang := app.Preferences.String(config.PrefLanguage)
	if lang == "" {
		lang = config.DefaultLanguage
	}
	return lang
}

// GetMsg is a helper to translate a key safely.
func (app *ScreenApp) GetMsg(key string) string {
	return app.localize(&i18n.LocalizeConfig{MessageID: key})
}

// GetTemplate translates a key that expects template data.
func (app *ScreenApp) GetTemplate(key string, data map[string]interface{}) string {
	return app.localize(&i18n.LocalizeConfig{MessageID: key, TemplateData: data})
}

func (app *ScreenApp) localize(lc *i18n.LocalizeConfig) string {
	if app.Localizer == nil {
		return lc.MessageID
	}
	msg, err := app.Localizer.Localize(lc)
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, lc.MessageID,
			config.LogKeyError, err,
		)
		return lc.MessageID
	}
	return msg
}

// Message implements content.Resolver.
func (app *ScreenApp) Message(key string) string {
	return app.GetMsg(key)
}

// Template implements content.Resolver.
func (app *ScreenApp) Template(key string, data map[string]interface{}) string {
	return app.GetTemplate(key, data)
}
