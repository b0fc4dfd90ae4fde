package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/ytget/caption-editor/internal/logging"
	"github.com/ytget/caption-editor/internal/model"
	"github.com/ytget/caption-editor/internal/session"
)

type SaveCmd struct {
	flags *Flags

	// flags
	index   int
	caption string
}

// NewSaveCmd creates a new save command
func NewSaveCmd(flags *Flags) *SaveCmd {
	return &SaveCmd{flags: flags}
}

// Register adds the save command to the application
func (cmd *SaveCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "save",
		Usage:     "Write the caption for one image",
		UsageText: "caption-editor save <folder> --index N [--caption TEXT]",
		Description: `Loads the folder, selects image N and writes the caption next to it.

Without --caption the caption is read from stdin; one trailing newline is
dropped. The status is printed on success. Any other outcome is returned as
an error and the command exits non-zero.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "index",
				Aliases:     []string{"n"},
				Usage:       "1-based image number",
				Required:    true,
				Destination: &cmd.index,
			},
			&cli.StringFlag{
				Name:        "caption",
				Usage:       "caption text (read from stdin when omitted)",
				Destination: &cmd.caption,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *SaveCmd) run(_ context.Context, c *cli.Command) error {
	folder, err := checkedFolder(cmd.flags, c)
	if err != nil {
		return err
	}

	caption := cmd.caption
	if !c.IsSet("caption") {
		caption, err = readCaption(c.Root().Reader)
		if err != nil {
			return err
		}
	}

	sess := session.New(logging.Component("session"))
	pair := sess.Load(folder)
	if pair.HasImage() {
		pair = sess.JumpToNumber(cmd.index)
		if pair.Severity() == model.SeverityInfo {
			pair = sess.Save(caption)
		}
	}

	if pair.Severity() != model.SeveritySuccess {
		return errors.New(pair.Status)
	}

	_, err = fmt.Fprintln(c.Root().Writer, pair.Status)
	return err
}

func readCaption(r io.Reader) (string, error) {
	if r == nil {
		r = os.Stdin
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}

	caption := string(data)
	if s, ok := strings.CutSuffix(caption, "\n"); ok {
		caption = strings.TrimSuffix(s, "\r")
	}
	return caption, nil
}
