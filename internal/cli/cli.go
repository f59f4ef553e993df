// Package cli holds the process lifecycle shared by the two screen apps:
// argument parsing, logging, signal handling and the startup of the UI loop.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/tartampluch/go-cards/internal/config"
	"github.com/tartampluch/go-cards/internal/content"
	"github.com/tartampluch/go-cards/internal/preview"
	"github.com/tartampluch/go-cards/internal/ui"
)

// Options describes one executable.
type Options struct {
	Name   string
	ID     string
	Screen string

	// VCard enables the -vcard and -export-vcard flags.
	VCard bool

	// NewApp creates the Fyne application. Defaults to app.NewWithID.
	NewApp func(id string) fyne.App
}

type flags struct {
	version     bool
	debug       bool
	preview     bool
	width       int
	lang        string
	env         string
	vcard       string
	exportVCard string
}

// Main manages the application lifecycle, argument parsing, and exit codes.
// Returns config.ExitCodeSuccess on success, config.ExitCodeError on failure.
// The caller passes the result to os.Exit so that deferred closes run first.
func Main(opts Options, args []string, stdout io.Writer) int {
	// -------------------------------------------------------------------------
	// 1. CLI Argument Parsing
	// -------------------------------------------------------------------------
	f, err := parseFlags(opts, args)
	if err != nil {
		return config.ExitCodeError
	}

	if f.version {
		printVersion(stdout, opts.Name)
		return config.ExitCodeSuccess
	}

	// -------------------------------------------------------------------------
	// 2. Logging Initialization
	// -------------------------------------------------------------------------
	// The preview owns stdout, so its logs go to stderr.
	logOut := stdout
	if f.preview {
		logOut = os.Stderr
	}
	logCloser := setupLogging(logOut, opts.ID, f.debug)
	if logCloser != nil {
		defer func() {
			_ = logCloser.Close()
		}()
	}

	// -------------------------------------------------------------------------
	// 3. Context & Signal Handling
	// -------------------------------------------------------------------------
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logStartupInfo(opts.Name)

	// -------------------------------------------------------------------------
	// 4. Application Logic
	// -------------------------------------------------------------------------
	if err := run(ctx, opts, f, stdout); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

func parseFlags(opts Options, args []string) (flags, error) {
	var f flags
	fs := flag.NewFlagSet(opts.Name, flag.ContinueOnError)

	fs.BoolVar(&f.version, config.FlagVersion, false, config.FlagDescVersion)
	fs.BoolVar(&f.debug, config.FlagDebug, false, config.FlagDescDebug)
	fs.BoolVar(&f.preview, config.FlagPreview, false, config.FlagDescPreview)
	fs.IntVar(&f.width, config.FlagWidth, config.DefaultPreviewWidth, config.FlagDescWidth)
	fs.StringVar(&f.lang, config.FlagLang, "", config.FlagDescLang)
	fs.StringVar(&f.env, config.FlagEnv, "", config.FlagDescEnv)
	if opts.VCard {
		fs.StringVar(&f.vcard, config.FlagVCard, "", config.FlagDescVCard)
		fs.StringVar(&f.exportVCard, config.FlagExportVCard, "", config.FlagDescExportVCard)
	}

	err := fs.Parse(args)
	return f, err
}

// run initializes the Fyne application, wires dependencies, and starts the UI loop.
func run(ctx context.Context, opts Options, f flags, stdout io.Writer) error {
	newApp := opts.NewApp
	if newApp == nil {
		newApp = app.NewWithID
	}
	a := newApp(opts.ID)

	prefs := a.Preferences()
	prefs.SetString(config.PrefLastRun, config.Version)
	if f.lang != "" {
		prefs.SetString(config.PrefLanguage, f.lang)
	}

	gui := ui.NewScreenApp(a, opts.Screen)
	gui.SetupI18n()

	overrides, err := content.ReadOverrides(f.env)
	if err != nil {
		return err
	}
	gui.Overrides = overrides

	if f.vcard != "" {
		fields, err := content.LoadCardFields(ctx, f.vcard, content.NewHTTPFetcher())
		if err != nil {
			return err
		}
		gui.Card = fields
	}

	if f.exportVCard != "" {
		return exportCard(f.exportVCard, gui.BusinessCardContent())
	}

	if f.preview {
		tree, err := gui.ViewTree()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, preview.Render(tree, f.width))
		return err
	}

	// Lifecycle Bridge:
	// Watch for context cancellation to quit the UI gracefully.
	go func() {
		<-ctx.Done()
		slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompMain)
		a.Quit()
	}()

	// Blocks until the main window closes.
	return gui.Run()
}

func exportCard(path string, card content.BusinessCard) error {
	file, err := os.OpenFile(path, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrVCardWrite, err)
	}

	if err := content.EncodeBusinessCard(file, card); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("%s: %w", config.ErrVCardWrite, err)
	}

	slog.Info(config.MsgVCardExported,
		config.LogKeyComponent, config.CompMain,
		config.LogKeyFile, path)
	return nil
}

// printVersion outputs the build information.
func printVersion(w io.Writer, name string) {
	_, _ = fmt.Fprintf(w, config.MsgVersionOutput,
		name,
		config.Version,
		config.Commit,
		config.Date,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo(name string) {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, name),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyCommit, config.Commit),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging configures the default slog logger.
func setupLogging(stdout io.Writer, appID string, debugMode bool) io.Closer {
	writers := []io.Writer{stdout}
	var logFile *os.File

	// O_TRUNC resets logs on restart to prevent indefinite growth.
	if logPath, err := getLogFilePath(appID); err == nil {
		f, err := os.OpenFile(logPath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
		if err == nil {
			writers = append(writers, f)
			logFile = f
		} else {
			fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, logPath, err)
		}
	}

	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(io.MultiWriter(writers...), opts)))

	if logFile == nil {
		return nil
	}
	return logFile
}

// getLogFilePath determines the platform-specific cache directory for logs.
func getLogFilePath(appID string) (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}

	appDir := filepath.Join(cacheDir, appID)

	// Ensure the directory exists with restricted permissions (700).
	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	return filepath.Join(appDir, config.LogFileName), nil
}
