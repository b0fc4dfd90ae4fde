package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/ytget/caption-editor/internal/logging"
	"github.com/ytget/caption-editor/internal/session"
)

type ListCmd struct {
	flags *Flags
}

// NewListCmd creates a new list command
func NewListCmd(flags *Flags) *ListCmd {
	return &ListCmd{flags: flags}
}

// Register adds the list command to the application
func (cmd *ListCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "list",
		Usage:     "List the images in a folder with their captions",
		UsageText: "caption-editor list <folder>",
		Description: `Loads the folder and prints one line per PNG image: its 1-based number,
the image path and the current caption, separated by tabs. The load status is
printed last. Line breaks inside a caption are written as \n.`,
		Action: cmd.run,
	})

	return app
}

func (cmd *ListCmd) run(_ context.Context, c *cli.Command) error {
	folder, err := checkedFolder(cmd.flags, c)
	if err != nil {
		return err
	}

	sess := session.New(logging.Component("session"))
	loaded := sess.Load(folder)

	out := c.Root().Writer
	for n := 1; n <= sess.Len(); n++ {
		pair := sess.JumpToNumber(n)
		if _, err := fmt.Fprintf(out, "%d\t%s\t%s\n", n, pair.Image, singleLine(pair.Caption)); err != nil {
			return fmt.Errorf("write listing: %w", err)
		}
	}

	_, err = fmt.Fprintln(out, loaded.Status)
	return err
}

var lineBreaks = strings.NewReplacer("\r\n", `\n`, "\n", `\n`)

func singleLine(s string) string {
	return lineBreaks.Replace(s)
}
