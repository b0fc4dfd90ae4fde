package platform

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// Dialog utilities
const (
	OsascriptCommand  = "osascript"
	PowershellCommand = "powershell"
	ZenityCommand     = "zenity"
	KdialogCommand    = "kdialog"
)

// DefaultPickerTitle is shown by dialogs that support a title
const DefaultPickerTitle = "Select image folder"

// FolderPicker prompts the user for a folder. ok is false when the user
// cancelled or no dialog could be shown.
type FolderPicker interface {
	PickFolder(ctx context.Context, title string) (path string, ok bool, err error)
}

// NativeFolderPicker shows the host operating system's folder dialog by
// running the platform's dialog utility.
type NativeFolderPicker struct {
	runner  CommandRunner
	goos    string
	logger  zerolog.Logger
	console io.Writer
}

// NewNativeFolderPicker creates a picker for the given GOOS value
func NewNativeFolderPicker(runner CommandRunner, goos string, logger zerolog.Logger) *NativeFolderPicker {
	return &NativeFolderPicker{
		runner:  runner,
		goos:    goos,
		logger:  logger,
		console: os.Stderr,
	}
}

// SetConsole redirects the one-line diagnostic printed when no dialog utility exists
func (p *NativeFolderPicker) SetConsole(w io.Writer) {
	p.console = w
}

// Available reports whether a dialog utility was found for this platform
func (p *NativeFolderPicker) Available() bool {
	_, _, ok := p.command(DefaultPickerTitle)
	return ok
}

// PickFolder shows the dialog and waits for it to close
func (p *NativeFolderPicker) PickFolder(ctx context.Context, title string) (string, bool, error) {
	if title == "" {
		title = DefaultPickerTitle
	}

	name, args, ok := p.command(title)
	if !ok {
		fmt.Fprintf(p.console, "folder picker: no dialog utility available on %s\n", p.goos)
		p.logger.Warn().Str("goos", p.goos).Msg("no folder dialog utility available")
		return "", false, nil
	}

	out, err := p.runner.Output(ctx, name, args...)
	path := strings.TrimSpace(string(out))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", false, ctxErr
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && path == "" {
			p.logger.Debug().Str("utility", name).Msg("folder dialog cancelled")
			return "", false, nil
		}
		return "", false, fmt.Errorf("run %s: %w", name, err)
	}
	if path == "" {
		return "", false, nil
	}

	return filepath.Clean(path), true, nil
}

// command returns the dialog invocation for the platform, or ok=false when
// no utility is installed.
func (p *NativeFolderPicker) command(title string) (string, []string, bool) {
	switch p.goos {
	case OSDarwin:
		if !p.has(OsascriptCommand) {
			return "", nil, false
		}
		script := fmt.Sprintf("POSIX path of (choose folder with prompt %s)", appleScriptQuote(title))
		return OsascriptCommand, []string{"-e", script}, true
	case OSWindows:
		if !p.has(PowershellCommand) {
			return "", nil, false
		}
		script := strings.Join([]string{
			"Add-Type -AssemblyName System.Windows.Forms",
			"$d = New-Object System.Windows.Forms.FolderBrowserDialog",
			"$d.Description = " + powershellQuote(title),
			"if ($d.ShowDialog() -eq 'OK') { Write-Output $d.SelectedPath }",
		}, "; ")
		return PowershellCommand, []string{"-NoProfile", "-NonInteractive", "-Command", script}, true
	default:
		if p.has(ZenityCommand) {
			return ZenityCommand, []string{"--file-selection", "--directory", "--title=" + title}, true
		}
		if p.has(KdialogCommand) {
			start, err := os.UserHomeDir()
			if err != nil {
				start = "."
			}
			return KdialogCommand, []string{"--title", title, "--getexistingdirectory", start}, true
		}
		return "", nil, false
	}
}

func (p *NativeFolderPicker) has(utility string) bool {
	_, err := p.runner.LookPath(utility)
	return err == nil
}

func appleScriptQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

func powershellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
