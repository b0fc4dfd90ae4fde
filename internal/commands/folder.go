package commands

import (
	"github.com/urfave/cli/v3"

	"github.com/ytget/caption-editor/internal/platform"
)

// checkedFolder returns the folder argument, normalized. A non-empty folder
// must pass the allow-list; an empty one is left for the session to report.
func checkedFolder(flags *Flags, c *cli.Command) (string, error) {
	folder := platform.NormalizeFolderArg(c.Args().First())
	if folder == "" {
		return "", nil
	}

	allow := flags.AllowList
	if allow == nil {
		allow = platform.NewAllowList()
	}
	if err := allow.Check(folder); err != nil {
		return "", err
	}
	return folder, nil
}
