package commands

import (
	"context"
	"fmt"
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/ytget/caption-editor/internal/logging"
	"github.com/ytget/caption-editor/internal/platform"
	"github.com/ytget/caption-editor/internal/session"
	"github.com/ytget/caption-editor/internal/ui"
)

const (
	AppID   = "com.ytget.caption-editor"
	AppName = "Caption Editor"

	WindowWidth  = 1000
	WindowHeight = 700
)

type GuiCmd struct {
	flags   *Flags
	version string

	// flags
	folder string
}

// NewGuiCmd creates a new gui command
func NewGuiCmd(flags *Flags, version string) *GuiCmd {
	return &GuiCmd{flags: flags, version: version}
}

// Flags returns the GUI-specific flags for registration on the root command
func (cmd *GuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "folder",
			Aliases:     []string{"f"},
			Usage:       "folder to load when the window opens",
			Destination: &cmd.folder,
		},
	}
}

// Run opens the editor window. Exported for use as default command.
func (cmd *GuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *GuiCmd) run(_ context.Context, _ *cli.Command) error {
	editor := app.NewWithID(AppID)
	editor.Settings().SetTheme(ui.NewCompactTheme())

	window := editor.NewWindow(fmt.Sprintf("%s %s", AppName, cmd.version))
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	allow := cmd.flags.AllowList
	if allow == nil {
		allow = BuildAllowList(cmd.flags.Config, cmd.flags.Allow)
	}

	picker := platform.NewNativeFolderPicker(platform.ExecRunner{}, runtime.GOOS, logging.Component("picker"))
	sess := session.New(logging.Component("session"))
	root := ui.NewRootUI(window, editor, sess, allow, picker)

	// The config file language applies until the user picks one in the app.
	if cfg := cmd.flags.Config; cfg != nil && cfg.Language != "" {
		root.UseConfigLanguage(cfg.Language)
	}

	if cmd.folder != "" {
		root.LoadFolder(cmd.folder)
	}

	log.Info().Str("session", sess.ID()).Strs("allowed", allow.Roots()).Msg("window opened")
	window.ShowAndRun()
	return nil
}
