package main

import (
	"fmt"
	"os"

	"github.com/aretw0/orbitsieve"
	"github.com/aretw0/orbitsieve/internal/config"
	"github.com/aretw0/orbitsieve/internal/presentation/report"
	"github.com/aretw0/orbitsieve/internal/presentation/tui"
	"github.com/aretw0/orbitsieve/pkg/observability"
	"github.com/muesli/termenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newClassifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify every diagram of the reference universe",
		Long: `Closes the configured generators, runs the orbit sieve over the Keldysh
reference universe and prints one line per diagram followed by the number of
independent orbits.`,
		Args: cobra.NoArgs,
		RunE: runClassify,
	}
	addEngineFlags(cmd)
	cmd.Flags().StringP("format", "f", "", "Output format: text, yaml or markdown")
	cmd.Flags().Bool("metrics", false, "Dump Prometheus metrics after the report")
	cmd.Flags().Bool("banner", false, "Print the banner before the report")
	return cmd
}

func runClassify(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	interactive := isTerminal(out)

	var opts []orbitsieve.Option
	withMetrics, _ := cmd.Flags().GetBool("metrics")
	var metrics *observability.Metrics
	if withMetrics {
		metrics, err = observability.NewMetrics(prometheus.NewRegistry())
		if err != nil {
			return err
		}
		opts = append(opts, orbitsieve.WithMetrics(metrics))
	}

	eng, err := newEngine(cfg, logger, opts...)
	if err != nil {
		return err
	}
	res, err := eng.Classify(cmd.Context())
	if err != nil {
		return err
	}

	if banner, _ := cmd.Flags().GetBool("banner"); banner {
		tui.PrintBanner(out)
	}

	summary := report.FromResult(res.Result)
	switch cfg.Format {
	case config.FormatYAML:
		err = report.YAML(out, summary)
	case config.FormatMarkdown:
		var render func(string) (string, error)
		render, err = tui.NewRenderer(interactive)
		if err != nil {
			return err
		}
		var text string
		text, err = render(report.Markdown(summary))
		if err == nil {
			_, err = fmt.Fprint(out, text)
		}
	default:
		profile := termenv.Ascii
		if interactive {
			profile = termenv.EnvColorProfile()
		}
		err = report.Text(out, summary, termenv.WithProfile(profile))
	}
	if err != nil {
		return err
	}

	if metrics != nil {
		return metrics.Dump(out)
	}
	return nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
