package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cottand/variance/internal/config"
	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var WatchCmd = &cobra.Command{
	Use:          "watch file",
	Short:        "Infer variances again every time file changes",
	RunE:         runWatch,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
}

var watchFlags *inferenceFlags

func init() {
	watchFlags = addInferenceFlags(WatchCmd)
}

// settle groups the several write events editors emit for a single save
const settle = 50 * time.Millisecond

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := watchFlags.resolve(cmd)
	if err != nil {
		return err
	}
	target, err := filepath.Abs(args[0])
	if err != nil {
		return errors.Wrap(err, "could not get absolute path of target")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "could not create file watcher")
	}
	defer func() {
		_ = watcher.Close()
	}()
	// editors often replace the file instead of writing to it, so the directory is watched
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return errors.Wrapf(err, "could not watch %s", filepath.Dir(target))
	}

	color := useColor(cfg, os.Stdout)
	show(cmd, target, cfg, color)

	ctx := cmd.Context()
	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				cliLogger.Debug("file changed", "file", target, "op", event.Op.String())
				pending = time.After(settle)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			cliLogger.Warn("file watcher error", "error", err)
		case <-pending:
			pending = nil
			show(cmd, target, cfg, color)
		}
	}
}

// show prints the inference output for the current content of path.
// When inference fails, the error replaces the previous output
func show(cmd *cobra.Command, path string, cfg config.Config, color bool) {
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "==> %s (%s) <==\n", path, time.Now().Format(time.TimeOnly))

	sources, err := readSources([]string{path}, nil)
	if err != nil {
		_, _ = fmt.Fprintln(out, err)
		return
	}
	rendered, err := inferSource(sources[0], cfg, color)
	if err != nil {
		_, _ = fmt.Fprintln(out, err)
		return
	}
	_, _ = fmt.Fprint(out, rendered)
}
