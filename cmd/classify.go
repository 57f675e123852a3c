package cmd

import (
	"fmt"
	"strings"

	"github.com/cottand/casesplit/split"
	"github.com/cottand/casesplit/term"
	"github.com/spf13/cobra"
)

var ClassifyCmd = &cobra.Command{
	Use:          "classify [problem.yaml]",
	Short:        "Classify the split candidates of a problem, and show which one would be split first",
	RunE:         runClassify,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
}

func init() {
	addConfigFlags(ClassifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
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
	g, err := p.Goal()
	if err != nil {
		return fmt.Errorf("invalid hypotheses: %w", err)
	}

	classifier := split.Classifier{Facts: g.Facts, Env: env, Shapes: cfg.Options().Shapes}
	out := cmd.OutOrStdout()
	for _, candidate := range g.State.Pending {
		shape := split.Decompose(env, candidate).Shape
		_, _ = fmt.Fprintf(out, "%v\n  shape %s, %s, depends on [%s]\n",
			candidate, shape, classifier.Classify(candidate), strings.Join(term.FreeVarNames(candidate), " "))
	}

	next, ok := split.SelectNext(classifier, g.State)
	if !ok {
		_, _ = fmt.Fprintln(out, "\nnothing to split")
		return nil
	}
	_, _ = fmt.Fprintf(out, "\nnext split: %v (%s)\n", next.Term, next.Status)
	return nil
}
