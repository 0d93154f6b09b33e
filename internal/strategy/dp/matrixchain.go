package dp

import (
	"fmt"
	"math"
	"strings"

	"github.com/awmpietro/algoviz/internal/model"
	"github.com/awmpietro/algoviz/internal/trace"
)

// MatrixChain computes the minimum scalar multiplications for a chain of
// len(dims)-1 matrices. Cells are filled by increasing chain length and the
// first split k reaching the minimum wins. Selected items are split points in
// preorder of the optimal parenthesization.
func MatrixChain(in model.MatrixChainInput) trace.Result {
	return trace.Run(func(rec *trace.Recorder) trace.Outcome {
		dims := in.Dimensions
		n := len(dims) - 1

		m := newTable(n+1, n+1)
		split := newTable(n+1, n+1)

		rec.Record(trace.KindInit, fmt.Sprintf("Initialized DP table for %d matrices. Diagonal set to 0", n), trace.Payload{
			"rows": n + 1, "cols": n + 1, "dimensions": dims, "base_case": "m[i][i] = 0",
		})

		for l := 2; l <= n; l++ {
			for i := 1; i <= n-l+1; i++ {
				j := i + l - 1
				m[i][j] = math.MaxInt

				rec.Record(trace.KindHighlight, fmt.Sprintf("Computing m[%d][%d] for chain A%d..A%d", i, j, i, j), trace.Payload{
					"i": i, "j": j, "length": l,
				})

				for k := i; k < j; k++ {
					mult := dims[i-1] * dims[k] * dims[j]
					cost := m[i][k] + m[k+1][j] + mult
					rec.Record(trace.KindInfo, fmt.Sprintf("Split at k=%d: %d + %d + %d = %d", k, m[i][k], m[k+1][j], mult, cost), trace.Payload{
						"i": i, "j": j, "k": k, "cost": cost,
						"left": m[i][k], "right": m[k+1][j], "multiply": mult,
					})
					if cost < m[i][j] {
						m[i][j] = cost
						split[i][j] = k
						rec.Record(trace.KindUpdate, fmt.Sprintf("New minimum for m[%d][%d] = %d at k=%d", i, j, cost, k), trace.Payload{
							"i": i, "j": j, "value": cost, "split": k,
						})
					}
				}
			}
		}

		type span struct{ i, j int }
		selected := make([]int, 0, n-1)
		stack := []span{{1, n}}
		for len(stack) > 0 {
			s := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if s.i >= s.j {
				continue
			}
			k := split[s.i][s.j]
			selected = append(selected, k)
			rec.Record(trace.KindSolution, fmt.Sprintf("Split A%d..A%d at k=%d", s.i, s.j, k), trace.Payload{
				"i": s.i, "j": s.j, "split": k,
				"left":  []int{s.i, k},
				"right": []int{k + 1, s.j},
			})
			stack = append(stack, span{k + 1, s.j}, span{s.i, k})
		}

		order := parenthesize(split, n)
		rec.Record(trace.KindSolution, fmt.Sprintf("Optimal order %s with cost %d", order, m[1][n]), trace.Payload{
			"parenthesization": order, "splits": selected, "cost": m[1][n],
		})

		return trace.Outcome{
			Value:      float64(m[1][n]),
			Selected:   selected,
			Complexity: trace.Complexity{Time: "O(N³)", Space: "O(N²)"},
		}
	})
}

// parenthesize renders the optimal order, e.g. "((A1A2)A3)".
func parenthesize(split [][]int, n int) string {
	type token struct {
		lit  string
		i, j int
	}
	var b strings.Builder
	stack := []token{{i: 1, j: n}}
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch {
		case t.lit != "":
			b.WriteString(t.lit)
		case t.i == t.j:
			fmt.Fprintf(&b, "A%d", t.i)
		default:
			k := split[t.i][t.j]
			stack = append(stack,
				token{lit: ")"},
				token{i: k + 1, j: t.j},
				token{i: t.i, j: k},
				token{lit: "("},
			)
		}
	}
	return b.String()
}
