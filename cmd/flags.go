package cmd

import (
	"log/slog"
	"os"

	"github.com/cottand/variance/internal/config"
	"github.com/cottand/variance/internal/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// inferenceFlags are the flags shared by every command that runs inference.
// Flags that are set override the configuration file
type inferenceFlags struct {
	configPath   string
	format       string
	substitution string
	strategy     string
	passes       int
	unresolved   string
	noRules      bool
	color        string
	logLevel     int
}

func addInferenceFlags(cmd *cobra.Command) *inferenceFlags {
	f := &inferenceFlags{}
	defaults := config.Default()
	flags := cmd.Flags()
	flags.StringVarP(&f.configPath, "config", "c", "", "configuration file (default "+config.DefaultFile+" if present)")
	flags.StringVarP(&f.format, "format", "f", defaults.Output.Format, "output format: text, json or yaml")
	flags.StringVar(&f.substitution, "substitution", defaults.Simplifier.Substitution, "upper bounds substituted for a type occurrence: first or all")
	flags.StringVar(&f.strategy, "strategy", defaults.Solver.Strategy, "solver strategy: fixpoint or bounded")
	flags.IntVar(&f.passes, "passes", defaults.Solver.Passes, "passes of the bounded solver strategy")
	flags.StringVar(&f.unresolved, "unresolved", defaults.Unresolved, "meaning of undeclared class references: error, bivariant or invariant")
	flags.BoolVar(&f.noRules, "no-rules", false, "do not show the rule each generated constraint comes from")
	flags.StringVar(&f.color, "color", defaults.Output.Color, "colorize text output: auto, always or never")
	flags.IntVarP(&f.logLevel, "log-level", "l", int(slog.LevelWarn), "log level")
	return f
}

// resolve loads the configuration file and applies the flags the user set
func (f *inferenceFlags) resolve(cmd *cobra.Command) (config.Config, error) {
	log.SetLevel(slog.Level(f.logLevel))

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return config.Config{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = f.format
	}
	if flags.Changed("substitution") {
		cfg.Simplifier.Substitution = f.substitution
	}
	if flags.Changed("strategy") {
		cfg.Solver.Strategy = f.strategy
	}
	if flags.Changed("passes") {
		cfg.Solver.Passes = f.passes
	}
	if flags.Changed("unresolved") {
		cfg.Unresolved = f.unresolved
	}
	if flags.Changed("no-rules") {
		cfg.Output.Rules = !f.noRules
	}
	if flags.Changed("color") {
		cfg.Output.Color = f.color
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func useColor(cfg config.Config, out *os.File) bool {
	switch cfg.Output.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd())
	}
}
