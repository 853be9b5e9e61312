package cmd

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of variance and the toolchain that built it",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		info, _ := debug.ReadBuildInfo()
		writeVersion(cmd.OutOrStdout(), info)
	},
}

func writeVersion(w io.Writer, info *debug.BuildInfo) {
	version := "(devel)"
	if info != nil && info.Main.Version != "" {
		version = info.Main.Version
	}
	_, _ = fmt.Fprintf(w, "variance %s\n", version)
	if info == nil {
		return
	}
	_, _ = fmt.Fprintf(w, "go: %s\n", info.GoVersion)
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" || s.Key == "vcs.modified" {
			_, _ = fmt.Fprintf(w, "%s: %s\n", s.Key, s.Value)
		}
	}
}
