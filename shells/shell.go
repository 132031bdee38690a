package shells

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/tagmachines/logs"
)

// Shell reads lines until q or end of input.
type Shell func(ctx context.Context) error

func (Module) Shell(
	dispatch Dispatch,
	logger logs.Logger,
) Shell {
	return func(ctx context.Context) error {
		var historyFile string
		if home, err := os.UserHomeDir(); err == nil {
			historyFile = filepath.Join(home, ".machines_history")
		}
		rl, err := readline.NewEx(&readline.Config{
			Prompt:      "> ",
			HistoryFile: historyFile,
		})
		if err != nil {
			return err
		}
		defer rl.Close()

		logger.InfoContext(ctx, "shell started")
		for {
			line, err := rl.Readline()
			if err != nil { // Ctrl-C or Ctrl-D
				break
			}
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if dispatch(ctx, line) {
				break
			}
		}
		logger.InfoContext(ctx, "shell quit")
		return nil
	}
}
