package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/ytget/caption-editor/internal/logging"
	"github.com/ytget/caption-editor/internal/model"
	"github.com/ytget/caption-editor/internal/session"
)

type ShowCmd struct {
	flags *Flags

	// flags
	index int
}

// NewShowCmd creates a new show command
func NewShowCmd(flags *Flags) *ShowCmd {
	return &ShowCmd{flags: flags}
}

// Register adds the show command to the application
func (cmd *ShowCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "show",
		Usage:     "Show one image and its caption",
		UsageText: "caption-editor show <folder> [--index N]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "index",
				Aliases:     []string{"n"},
				Usage:       "1-based image number",
				Value:       model.DefaultJumpValue,
				Destination: &cmd.index,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ShowCmd) run(_ context.Context, c *cli.Command) error {
	folder, err := checkedFolder(cmd.flags, c)
	if err != nil {
		return err
	}

	sess := session.New(logging.Component("session"))
	pair := sess.Load(folder)
	if pair.HasImage() {
		pair = sess.JumpToNumber(cmd.index)
	}

	return printPair(c, pair)
}

func printPair(c *cli.Command, pair model.Pair) error {
	out := c.Root().Writer
	_, _ = fmt.Fprintf(out, "image:   %s\n", pair.Image)
	_, _ = fmt.Fprintf(out, "caption: %s\n", pair.Caption)
	_, err := fmt.Fprintf(out, "status:  %s\n", pair.Status)
	return err
}
