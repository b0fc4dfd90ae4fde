// Package commands implements the caption-editor command line: the GUI
// launcher and the headless list, show and save commands.
package commands

import (
	"github.com/rs/zerolog/log"

	"github.com/ytget/caption-editor/internal/config"
	"github.com/ytget/caption-editor/internal/platform"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	Allow      []string

	// Config is loaded in the Before hook and available to all commands
	Config *config.FileConfig

	// AllowList gates every folder a command loads
	AllowList *platform.AllowList
}

// BuildAllowList combines the default folders, the configured paths and the
// --allow flags. Default folders that cannot be resolved are skipped.
func BuildAllowList(cfg *config.FileConfig, extra []string) *platform.AllowList {
	allow := platform.NewAllowList()

	if cfg == nil || !cfg.DisableDefaultPaths {
		roots, err := platform.DefaultAllowedRoots()
		if err != nil {
			log.Warn().Err(err).Msg("default allowed folders unavailable")
		}
		for _, root := range roots {
			allow.Add(root)
		}
	}

	if cfg != nil {
		for _, p := range cfg.AllowedPaths {
			allow.Add(p)
		}
	}

	for _, p := range extra {
		allow.Add(p)
	}

	return allow
}
