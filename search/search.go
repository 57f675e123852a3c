// Package search drives case splitting depth-first until every goal is closed,
// a goal is left with nothing to split, or the split budget runs out.
package search

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/cottand/casesplit/failed"
	"github.com/cottand/casesplit/goal"
	"github.com/cottand/casesplit/internal/log"
	"github.com/cottand/casesplit/split"
	"github.com/cottand/casesplit/util"
)

type Status int

const (
	// Closed means every branch ended in contradictory facts
	Closed Status = iota
	// Stuck means a branch has consistent facts and nothing left to split
	Stuck
	// LimitReached means a branch ran out of splits
	LimitReached
)

func (s Status) String() string {
	switch s {
	case Closed:
		return "closed"
	case Stuck:
		return "stuck"
	default:
		return "limit reached"
	}
}

// Node is a goal of the search tree, along with how it was split
type Node struct {
	Goal *goal.Goal
	// Split is set when Goal was split, and Children holds one node per case
	Split    *split.Outcome
	Children []*Node
	Closed   bool
}

type Result struct {
	Status Status
	Root   *Node
	// Open is the goal the search stopped at, unless Status is Closed
	Open   *goal.Goal
	Splits int
}

type Searcher struct {
	Engine *split.Engine
	logger *slog.Logger
}

func New(engine *split.Engine) *Searcher {
	return &Searcher{Engine: engine, logger: log.Section("search")}
}

// Run searches depth-first from root. The children of a split are explored in case order.
func (s *Searcher) Run(ctx context.Context, root *goal.Goal) (Result, error) {
	result := Result{Root: &Node{Goal: root}}
	var stack util.Stack[*Node]
	stack.Push(result.Root)

	for {
		node, ok := stack.Pop()
		if !ok {
			result.Status = Closed
			return result, nil
		}
		if node.Goal.Closed() {
			node.Closed = true
			s.logger.Debug("goal closed", "goal", node.Goal.ID, "depth", node.Goal.Depth)
			continue
		}

		outcome, err := s.Engine.PerformSplit(ctx, node.Goal)
		if failed.IsLimitExceeded(err) {
			s.logger.Info("split limit reached", "goal", node.Goal.ID, failed.LogAttr(err))
			result.Status, result.Open = LimitReached, node.Goal
			return result, nil
		}
		if err != nil {
			return result, err
		}
		if outcome.Done() {
			s.logger.Info("goal stuck", "goal", node.Goal.ID, "depth", node.Goal.Depth)
			result.Status, result.Open = Stuck, node.Goal
			return result, nil
		}

		result.Splits++
		node.Split = &outcome
		for _, child := range outcome.Goals {
			node.Children = append(node.Children, &Node{Goal: child})
		}
		for _, child := range slices.Backward(node.Children) {
			stack.Push(child)
		}
		s.logger.Debug("goal split", "goal", node.Goal.ID, "cases", len(node.Children), "frontier", stack.Len())
	}
}

// Format writes the tree under n, one goal per line
func (n *Node) Format(w io.Writer) error {
	return n.format(w, 0)
}

func (n *Node) format(w io.Writer, indent int) error {
	pad := strings.Repeat("  ", indent)
	line := pad + n.Goal.String()
	switch {
	case n.Closed:
		line += ": closed"
	case n.Split != nil:
		line += fmt.Sprintf(": split on %v into %d cases", n.Split.Candidate.Term, len(n.Children))
	default:
		line += ": open"
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}
	for i, child := range n.Children {
		if n.Split != nil && i < len(n.Split.Split.Cases) {
			if _, err := fmt.Fprintf(w, "%s  case %v\n", pad, n.Split.Split.Cases[i].Binder.Prop); err != nil {
				return err
			}
		}
		if err := child.format(w, indent+2); err != nil {
			return err
		}
	}
	return nil
}
