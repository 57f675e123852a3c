// Package problem reads proof problems from YAML: the hypotheses of a goal, the terms it
// may be split on, and the matchers and inductive predicates those terms mention.
package problem

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cottand/casesplit/goal"
	"github.com/cottand/casesplit/introspect"
	"github.com/cottand/casesplit/proof"
	"github.com/cottand/casesplit/term"
)

type Hypothesis struct {
	Name string      `yaml:"name"`
	Prop term.Syntax `yaml:"prop"`
}

type Matcher struct {
	Name          string          `yaml:"name"`
	Discriminants int             `yaml:"discriminants"`
	Alternatives  [][]term.Syntax `yaml:"alternatives"`
}

type Inductive struct {
	Name         string   `yaml:"name"`
	Constructors []string `yaml:"constructors"`
}

type Problem struct {
	Hypotheses []Hypothesis  `yaml:"hypotheses"`
	Candidates []term.Syntax `yaml:"candidates"`
	Matchers   []Matcher     `yaml:"matchers"`
	Inductives []Inductive   `yaml:"inductives"`
}

func Load(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read problem: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Problem, error) {
	var p Problem
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse problem: %w", err)
	}
	for i, h := range p.Hypotheses {
		if h.Name == "" {
			return nil, fmt.Errorf("hypothesis %d has no name", i)
		}
		if h.Prop.Term == nil {
			return nil, fmt.Errorf("hypothesis %s has no prop", h.Name)
		}
	}
	for i, c := range p.Candidates {
		if c.Term == nil {
			return nil, fmt.Errorf("candidate %d is empty", i)
		}
	}
	return &p, nil
}

// Env registers the matchers and inductive predicates of p
func (p *Problem) Env() (*introspect.Env, error) {
	env := introspect.NewEnv()
	for _, m := range p.Matchers {
		info := introspect.MatcherInfo{Name: m.Name, NumDiscrs: m.Discriminants}
		for _, alt := range m.Alternatives {
			patterns := make([]term.Term, len(alt))
			for i, pattern := range alt {
				patterns[i] = pattern.Term
			}
			info.Patterns = append(info.Patterns, patterns)
		}
		if err := env.AddMatcher(info); err != nil {
			return nil, err
		}
	}
	for _, ind := range p.Inductives {
		if len(ind.Constructors) == 0 {
			return nil, fmt.Errorf("inductive predicate %s has no constructors", ind.Name)
		}
		env.AddInductivePredicate(introspect.InductiveInfo{Name: ind.Name, Constructors: ind.Constructors})
	}
	return env, nil
}

// Goal builds the top-level goal of p, with its candidates pending
func (p *Problem) Goal() (*goal.Goal, error) {
	candidates := make([]term.Term, len(p.Candidates))
	for i, c := range p.Candidates {
		candidates[i] = c.Term
	}
	hyps := make([]proof.Hypothesis, len(p.Hypotheses))
	for i, h := range p.Hypotheses {
		hyps[i] = proof.Hypothesis{Name: h.Name, Prop: h.Prop.Term}
		hyps[i].Proof = hyps[i].FVar()
	}
	return goal.New(goal.NewState(candidates...), hyps...)
}
