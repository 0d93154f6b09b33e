// Package filter selects trace steps with expr-lang predicates, e.g.
//
//	kind == "pick" && data.weight > 2
//
// The environment exposes kind, description, data (the step payload) and
// index (the step's position in the trace).
package filter

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/awmpietro/algoviz/internal/trace"
)

type Predicate struct {
	src     string
	program *vm.Program
}

// Indexed is a step paired with its position in the original trace, so a
// filtered view can still be correlated with replay order.
type Indexed struct {
	Index int        `json:"index"`
	Step  trace.Step `json:"step"`
}

// Compile validates and compiles src. An empty source matches every step.
func Compile(src string) (*Predicate, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return &Predicate{}, nil
	}

	if err := Validate(src); err != nil {
		return nil, fmt.Errorf("invalid step filter: %w", err)
	}

	program, err := expr.Compile(src, expr.Env(env(trace.Step{Payload: trace.Payload{}}, 0)), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("failed to compile step filter: %w", err)
	}

	return &Predicate{src: src, program: program}, nil
}

func (p *Predicate) String() string {
	if p == nil {
		return ""
	}
	return p.src
}

func (p *Predicate) Match(step trace.Step, index int) (bool, error) {
	if p == nil || p.program == nil {
		return true, nil
	}

	out, err := expr.Run(p.program, env(step, index))
	if err != nil {
		return false, err
	}

	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("step filter must evaluate to bool (got %T)", out)
	}
	return b, nil
}

// Apply returns the matching steps in trace order. A step whose payload makes
// the predicate fail at runtime (missing field compared to a number, ...) is
// treated as a non-match.
func Apply(steps []trace.Step, p *Predicate) []Indexed {
	out := make([]Indexed, 0, len(steps))
	for i, s := range steps {
		ok, err := p.Match(s, i)
		if err != nil || !ok {
			continue
		}
		out = append(out, Indexed{Index: i, Step: s})
	}
	return out
}

func env(step trace.Step, index int) map[string]any {
	data := map[string]any(step.Payload)
	if data == nil {
		data = map[string]any{}
	}
	return map[string]any{
		"kind":        string(step.Kind),
		"description": step.Description,
		"data":        data,
		"index":       index,
	}
}
