package term

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Syntax decodes a Term from YAML.
//
// A scalar is a constant, or a free variable when it starts with '$', or a literal when it
// is an integer. A sequence [f, a, b] is the application of f to a and b, so that flow
// sequences read like s-expressions:
//
//	[And, [Eq, $x, 0], [Not, $p]]
type Syntax struct {
	Term
}

func (s *Syntax) UnmarshalYAML(node *yaml.Node) error {
	t, err := decodeNode(node)
	if err != nil {
		return err
	}
	s.Term = t
	return nil
}

func (s Syntax) MarshalYAML() (any, error) {
	return encodeTerm(s.Term), nil
}

func decodeNode(node *yaml.Node) (Term, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return decodeScalar(node.Value), nil
	case yaml.SequenceNode:
		if len(node.Content) == 0 {
			return nil, fmt.Errorf("line %d: empty application", node.Line)
		}
		terms := make([]Term, len(node.Content))
		for i, child := range node.Content {
			t, err := decodeNode(child)
			if err != nil {
				return nil, err
			}
			terms[i] = t
		}
		return Apps(terms[0], terms[1:]...), nil
	case yaml.AliasNode:
		return decodeNode(node.Alias)
	default:
		return nil, fmt.Errorf("line %d: a term is either a scalar or a sequence", node.Line)
	}
}

func decodeScalar(value string) Term {
	if strings.HasPrefix(value, "$") && len(value) > 1 {
		return FVar{Name: value[1:]}
	}
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return Lit{Value: n}
	}
	return Const{Name: value}
}

func encodeTerm(t Term) any {
	switch t := StripMData(t).(type) {
	case nil:
		return nil
	case FVar:
		return "$" + t.Name
	case Lit:
		return t.Value
	case Const:
		return t.Name
	case *App:
		encoded := []any{encodeTerm(AppFn(t))}
		for _, arg := range AppArgs(t) {
			encoded = append(encoded, encodeTerm(arg))
		}
		return encoded
	default:
		return t.String()
	}
}
