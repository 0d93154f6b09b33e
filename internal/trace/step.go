package trace

import "fmt"

// Kind names the phase of reasoning a Step belongs to.
type Kind string

const (
	KindInit      Kind = "init"
	KindHighlight Kind = "highlight"
	KindUpdate    Kind = "update"
	KindSolution  Kind = "solution"
	KindPick      Kind = "pick"
	KindReject    Kind = "reject"
	KindSort      Kind = "sort"
	KindInfo      Kind = "info"
)

var kinds = map[Kind]struct{}{
	KindInit: {}, KindHighlight: {}, KindUpdate: {}, KindSolution: {},
	KindPick: {}, KindReject: {}, KindSort: {}, KindInfo: {},
}

// ParseKind maps a wire value back onto the closed Kind set.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := kinds[k]; !ok {
		return "", fmt.Errorf("unknown step kind %q", s)
	}
	return k, nil
}

// Payload is the renderer-facing data attached to a Step. Values must be
// JSON-compatible.
type Payload map[string]any

// Step is one recorded unit of algorithmic reasoning. The wire names match
// what the renderer consumes (type/description/data).
type Step struct {
	Kind        Kind    `json:"type"`
	Description string  `json:"description"`
	Payload     Payload `json:"data"`
}

type Metrics struct {
	TimeTaken       float64 `json:"time_taken"`
	SpaceComplexity string  `json:"space_complexity"`
	TimeComplexity  string  `json:"time_complexity"`
	StepCount       int     `json:"step_count"`
}

// Result is the envelope returned for a single invocation.
type Result struct {
	Steps         []Step  `json:"steps"`
	ResultValue   float64 `json:"result_value"`
	SelectedItems []int   `json:"selected_items"`
	Metrics       Metrics `json:"metrics"`
}

// OfKind returns the steps of the given kind, in emission order.
func (r Result) OfKind(k Kind) []Step {
	out := make([]Step, 0)
	for _, s := range r.Steps {
		if s.Kind == k {
			out = append(out, s)
		}
	}
	return out
}

// Last returns the final step, or false when the trace is empty.
func (r Result) Last() (Step, bool) {
	if len(r.Steps) == 0 {
		return Step{}, false
	}
	return r.Steps[len(r.Steps)-1], true
}
