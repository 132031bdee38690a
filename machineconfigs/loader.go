package machineconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/tagmachines/configs"
	"github.com/reusee/tagmachines/logs"
	"github.com/reusee/tagmachines/modes"
)

//go:embed schema.cue
var schema string

var filenames = []string{
	"machines.cue",
	".machines.cue",
}

// ConfigsLoader searches the working directory, the user config directory and
// /etc, in that order. Nothing is searched in development mode.
func (Module) ConfigsLoader(
	logger logs.Logger,
	mode modes.Mode,
) configs.Loader {
	if mode == modes.ModeDevelopment {
		return configs.NewLoader(nil, schema)
	}

	var dirs []string
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}
	dirs = append(dirs, "/etc")

	paths := searchPaths(dirs)
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}
	return configs.NewLoader(paths, schema)
}

func searchPaths(dirs []string) (paths []string) {
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return
}
