package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cottand/variance/frontend/varerr"
	"github.com/cottand/variance/inference"
	"github.com/cottand/variance/internal/config"
	"github.com/cottand/variance/internal/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var InferCmd = &cobra.Command{
	Use:          "infer [file...]",
	Short:        "Infer the variance of the type parameters of the classes declared in each file (stdin if none or -)",
	RunE:         runInfer,
	SilenceUsage: true,
}

var inferFlags *inferenceFlags

func init() {
	inferFlags = addInferenceFlags(InferCmd)
}

var cliLogger = log.Section("cli")

// source is one input of the infer command
type source struct {
	name string
	text string
}

func readSources(args []string, stdin io.Reader) ([]source, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	sources := make([]source, 0, len(args))
	for _, arg := range args {
		var data []byte
		var err error
		if arg == "-" {
			data, err = io.ReadAll(stdin)
		} else {
			data, err = os.ReadFile(arg)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "could not read %s", arg)
		}
		sources = append(sources, source{name: arg, text: string(data)})
	}
	return sources, nil
}

// inferSource runs inference on src and renders its output or its errors
func inferSource(src source, cfg config.Config, color bool) (string, error) {
	res, err := inference.Run(src.text, inference.OptionsFrom(cfg))
	if err != nil {
		var errs *varerr.Errors
		if errors.As(err, &errs) {
			return "", fmt.Errorf("%s", errs.FormatWithSource(src.name, src.text))
		}
		return "", err
	}
	cliLogger.Debug("inferred", "file", src.name, "run", res.ID)
	return res.View(cfg.Output.Rules).Render(inference.Format(cfg.Output.Format), color)
}

func runInfer(cmd *cobra.Command, args []string) error {
	cfg, err := inferFlags.resolve(cmd)
	if err != nil {
		return err
	}
	sources, err := readSources(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	color := useColor(cfg, os.Stdout)

	// runs are independent, so files are inferred concurrently and printed in order
	outputs := make([]string, len(sources))
	failures := make([]error, len(sources))
	g, ctx := errgroup.WithContext(cmd.Context())
	for i, src := range sources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			outputs[i], failures[i] = inferSource(src, cfg, color)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return errors.Wrap(err, "inference interrupted")
	}

	out := cmd.OutOrStdout()
	var failed []string
	for i, src := range sources {
		if len(sources) > 1 && cfg.Output.Format == string(inference.FormatText) {
			_, _ = fmt.Fprintf(out, "==> %s <==\n", src.name)
		}
		if failures[i] != nil {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), failures[i])
			failed = append(failed, src.name)
			continue
		}
		_, _ = fmt.Fprint(out, outputs[i])
	}
	if len(failed) > 0 {
		return fmt.Errorf("inference failed for %s", strings.Join(failed, ", "))
	}
	return nil
}
