package cmd

import (
	"fmt"
	"os"

	"github.com/cottand/casesplit/failed"
	"github.com/cottand/casesplit/goal"
	"github.com/cottand/casesplit/internal/telemetry"
	"github.com/cottand/casesplit/search"
	"github.com/cottand/casesplit/split"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var RunCmd = &cobra.Command{
	Use:          "run [problem.yaml]",
	Short:        "Split the goal of a problem until it is closed, stuck or out of splits",
	RunE:         runRun,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
}

func init() {
	addConfigFlags(RunCmd)
	RunCmd.Flags().Bool("metrics", false, "print split metrics once the search is over")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	p, err := loadProblem(args[0])
	if err != nil {
		return err
	}
	env, err := p.Env()
	if err != nil {
		return fmt.Errorf("invalid environment: %w", err)
	}
	root, err := p.Goal()
	if err != nil {
		return fmt.Errorf("invalid hypotheses: %w", err)
	}

	if cfg.Tracing {
		shutdown, err := telemetry.TraceTo(os.Stderr)
		if err != nil {
			return err
		}
		defer func() { _ = shutdown(cmd.Context()) }()
	}

	engine := split.NewEngine(env, goal.Introducer{}, cfg.Budget(), cfg.Options())
	result, err := search.New(engine).Run(cmd.Context(), root)
	if err != nil {
		var splitErr failed.SplitError
		if failed.As(err, &splitErr) {
			return fmt.Errorf("search failed: %s", failed.FormatWithCode(splitErr))
		}
		return fmt.Errorf("search failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if err := result.Root.Format(out); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "\n%s after %d splits\n", result.Status, result.Splits)
	if result.Open != nil {
		_, _ = fmt.Fprintf(out, "open %v:\n", result.Open)
		for _, h := range result.Open.Hyps {
			_, _ = fmt.Fprintf(out, "  %s : %v\n", h.Name, h.Prop)
		}
	}

	if withMetrics, _ := cmd.Flags().GetBool("metrics"); withMetrics {
		_, _ = fmt.Fprintln(out)
		return telemetry.WriteMetrics(out, prometheus.DefaultGatherer, "casesplit_")
	}
	return nil
}
