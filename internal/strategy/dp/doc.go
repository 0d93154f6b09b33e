// Package dp implements the table-filling strategies.
//
// Every strategy follows the same trace shape:
//
//   - one init step describing the table and its base cases;
//   - cells visited in a fixed dependency order, one highlight per cell,
//     one update per value written (payload: i, j, value and, for
//     multi-choice recurrences, the competing candidates and the winner);
//   - a backtracking pass from the terminal cell to the base case that emits
//     one solution step per choice, followed by a summary solution step.
//
// Ties are decided by the evaluation order documented on each strategy and
// the backtracking pass replays the choices recorded during the forward pass,
// so selected items always agree with the trace.
package dp

func newTable(rows, cols int) [][]int {
	t := make([][]int, rows)
	for i := range t {
		t[i] = make([]int, cols)
	}
	return t
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
