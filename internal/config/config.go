package config

import (
	"image/color"
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// UserAgent identifies the HTTP client.
var UserAgent = "Go-Cards/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	CardAppName = "Business Card"
	CardAppID   = "com.github.tartampluch.go-cards.businesscard"
	TaskAppName = "Task Manager"
	TaskAppID   = "com.github.tartampluch.go-cards.taskmanager"
	LogFileName = "app.log"
	IconFile    = "Icon.png"
)

// Screen kinds served by ui.ScreenApp.
const (
	ScreenBusinessCard = "business_card"
	ScreenTaskDone     = "task_completed"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion     = "version"
	FlagDebug       = "debug"
	FlagPreview     = "preview"
	FlagWidth       = "width"
	FlagLang        = "lang"
	FlagEnv         = "env"
	FlagVCard       = "vcard"
	FlagExportVCard = "export-vcard"

	FlagDescVersion     = "Show application version and exit"
	FlagDescDebug       = "Enable debug logging to stdout"
	FlagDescPreview     = "Print a text preview of the screen and exit"
	FlagDescWidth       = "Width in columns of the text preview"
	FlagDescLang        = "UI language (overrides the saved preference)"
	FlagDescEnv         = "Path to a .env file with display overrides"
	FlagDescVCard       = "Path or http(s) URL of a vCard used as the business card"
	FlagDescExportVCard = "Write the business card as a vCard to this path and exit"

	MsgVersionOutput = "%s version %s (commit %s, built %s, %s/%s)\n"

	DefaultPreviewWidth = 60
)

// -----------------------------------------------------------------------------
// Network (remote vCard)
// -----------------------------------------------------------------------------

const (
	HTTPTimeout = 30 * time.Second

	// MaxVCardSize caps a downloaded vCard. A single card with a photo fits well below it.
	MaxVCardSize = 1024 * 1024

	SchemeHTTP      = "http"
	SchemeHTTPS     = "https"
	HeaderUserAgent = "User-Agent"
)

// -----------------------------------------------------------------------------
// Preferences & Languages
// -----------------------------------------------------------------------------

const (
	PrefLanguage = "language"
	PrefLastRun  = "last_run_version"

	DefaultLanguage = "en"
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitleCard   = "win_title_card"
	TKeyWinTitleTask   = "win_title_task"
	TKeyName           = "name"
	TKeyJobTitle       = "job_title"
	TKeyPhone          = "phone"
	TKeyEmail          = "email"
	TKeyLinkedIn       = "linked_in"
	TKeyLinkLabel      = "link_label"
	TKeyPortraitDesc   = "portrait_description" // Requires Name
	TKeyTaskMessage    = "task_message"
	TKeyTaskCompliment = "task_compliment"
	TKeyTaskImageDesc  = "task_image_description"
)

// -----------------------------------------------------------------------------
// Environment Overrides
// -----------------------------------------------------------------------------

const (
	EnvCardName       = "CARD_NAME"
	EnvCardJobTitle   = "CARD_JOB_TITLE"
	EnvCardPhone      = "CARD_PHONE"
	EnvCardEmail      = "CARD_EMAIL"
	EnvCardLinkedIn   = "CARD_LINKEDIN"
	EnvCardLinkLabel  = "CARD_LINK_LABEL"
	EnvTaskMessage    = "TASK_MESSAGE"
	EnvTaskCompliment = "TASK_COMPLIMENT"
)

// OverrideKeys lists every environment key read by content.ReadOverrides.
var OverrideKeys = []string{
	EnvCardName, EnvCardJobTitle, EnvCardPhone, EnvCardEmail,
	EnvCardLinkedIn, EnvCardLinkLabel, EnvTaskMessage, EnvTaskCompliment,
}

// -----------------------------------------------------------------------------
// Resource Names (embedded assets)
// -----------------------------------------------------------------------------

const (
	ImagePortrait      = "portrait.png"
	ImageTaskCompleted = "ic_task_completed.png"

	IconPhone = "phone"
	IconEmail = "email"
	IconFace  = "face"

	// TagURL marks the character range of a link inside a styled text run.
	TagURL = "URL"
)

// -----------------------------------------------------------------------------
// Layout Constants (device independent units)
// -----------------------------------------------------------------------------

const (
	// Business card, upper region
	CardImagePaddingH  = 80
	CardNameFontSize   = 30
	CardNamePadTop     = 24
	CardNamePadBottom  = 8
	CardTitleFontSize  = 18
	CardSpacerHeight   = 100
	CardImageMinHeight = 160

	// Business card, contact region
	ContactPadStart   = 80
	ContactPadBottom  = 70
	ContactIconPadEnd = 20
	ContactFontSize   = 16

	// Task completed screen
	TaskMessageFontSize    = 24
	TaskMessagePadTop      = 24
	TaskMessagePadBottom   = 8
	TaskComplimentFontSize = 16
	TaskImageMinHeight     = 160

	WindowWidth  = 420
	WindowHeight = 760
)

// LinkColor is the colour of hyperlink text.
var LinkColor = color.NRGBA{R: 0x00, G: 0x00, B: 0xFF, A: 0xFF}

// -----------------------------------------------------------------------------
// Preview Glyphs
// -----------------------------------------------------------------------------

const (
	GlyphPhone   = "☎"
	GlyphEmail   = "✉"
	GlyphFace    = "☺"
	GlyphUnknown = "•"
	FormatImage  = "[%s]"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrLogFile       = "failed to open log file"
	ErrCacheDir      = "could not determine user cache dir"
	ErrCreateDir     = "could not create app cache dir"
	ErrAppFailed     = "application failed unexpectedly"
	ErrLocalesAccess = "failed to access embedded locales"
	ErrLocaleLoad    = "failed to load locale file"
	ErrEnvRead       = "failed to read override file"
	ErrVCardOpen     = "failed to open vCard file"
	ErrVCardFetch    = "failed to download vCard"
	ErrVCardTooLarge = "vCard exceeds the size limit"
	ErrInvalidURL    = "invalid URL structure"
	ErrProtocol      = "unsupported protocol scheme (http/https only)"
	ErrHTTPStatus    = "server returned unexpected status"
	ErrVCardParse    = "failed to parse vCard stream"
	ErrVCardEmpty    = "vCard stream contains no card"
	ErrVCardEncode   = "failed to encode vCard"
	ErrVCardWrite    = "failed to write vCard file"
	ErrURIParse      = "invalid link target"
	ErrURIOpen       = "host could not open link"
	ErrUnknownScreen = "unknown screen kind"
	ErrAssetMissing  = "embedded asset not found"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting   = "Starting application"
	MsgAppStop       = "Application stopped gracefully"
	MsgCtxCancel     = "Context cancelled, shutting down UI"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
	MsgTapIgnored    = "Tap outside link range"
	MsgTapDispatch   = "Opening link"
	MsgScreenBuilt   = "Screen composed"
	MsgLangChanged   = "Language preference changed, recomposing"
	MsgOverrides     = "Display overrides loaded"
	MsgVCardLoaded   = "Business card loaded from vCard"
	MsgVCardExported = "Business card exported as vCard"
	MsgVCardFetch    = "Downloading vCard"
	MsgHTTPStatus    = "Server returned error status"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyURI       = "uri"
	LogKeyOffset    = "offset"
	LogKeyLength    = "length"
	LogKeyScreen    = "screen"
	LogKeyNodes     = "nodes"
	LogKeyCount     = "count"
	LogKeyName      = "name"
	LogKeyURL       = "url"
	LogKeyStatus    = "status"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyCommit  = "commit"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI       = "ui"
	CompMain     = "main"
	CompI18n     = "i18n"
	CompRichText = "richtext"
	CompRender   = "render"
	CompContent  = "content"
	CompFetcher  = "fetcher"
)
