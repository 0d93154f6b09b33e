package trace

import "time"

// Complexity holds the static labels attached to a run. They describe the
// algorithm, they are not measured.
type Complexity struct {
	Time  string
	Space string
}

// Outcome is what a strategy hands back once its trace is complete.
type Outcome struct {
	Value      float64
	Selected   []int
	Complexity Complexity
}

// Run executes fn against a fresh Recorder, stamps the elapsed wall-clock
// time and assembles the envelope.
func Run(fn func(rec *Recorder) Outcome) Result {
	start := time.Now()
	rec := NewRecorder()
	out := fn(rec)
	return Assemble(rec, out, time.Since(start))
}

// Assemble builds the envelope from a finished recorder. StepCount always
// equals len(Steps).
func Assemble(rec *Recorder, out Outcome, elapsed time.Duration) Result {
	steps := rec.Steps()
	selected := make([]int, len(out.Selected))
	copy(selected, out.Selected)

	return Result{
		Steps:         steps,
		ResultValue:   out.Value,
		SelectedItems: selected,
		Metrics: Metrics{
			TimeTaken:       elapsed.Seconds(),
			SpaceComplexity: out.Complexity.Space,
			TimeComplexity:  out.Complexity.Time,
			StepCount:       len(steps),
		},
	}
}
