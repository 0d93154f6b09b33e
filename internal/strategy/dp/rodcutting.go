package dp

import (
	"fmt"

	"github.com/awmpietro/algoviz/internal/model"
	"github.com/awmpietro/algoviz/internal/trace"
)

// RodCutting maximizes revenue for a rod of the given length where prices[k-1]
// is the price of a piece of length k. The first cut reaching the maximum
// wins. Selected items are cut lengths in backtracking order.
func RodCutting(in model.RodCuttingInput) trace.Result {
	return trace.Run(func(rec *trace.Recorder) trace.Outcome {
		length, prices := in.Length, in.Prices

		dp := make([]int, length+1)
		cuts := make([]int, length+1)

		rec.Record(trace.KindInit, fmt.Sprintf("Initialized revenue array of size %d", length+1), trace.Payload{
			"rows": 1, "cols": length + 1, "prices": prices, "base_case": "dp[0] = 0",
		})

		for i := 1; i <= length; i++ {
			rec.Record(trace.KindHighlight, fmt.Sprintf("Computing max revenue for length %d", i), trace.Payload{"i": 0, "j": i})

			found := false
			for j := 1; j <= min(i, len(prices)); j++ {
				candidate := prices[j-1] + dp[i-j]
				rec.Record(trace.KindInfo, fmt.Sprintf("Cut %d: price %d + dp[%d] = %d", j, prices[j-1], i-j, candidate), trace.Payload{
					"i": 0, "j": i, "cut_length": j, "price": prices[j-1], "remaining": i - j, "candidate": candidate,
				})
				if !found || candidate > dp[i] {
					found = true
					dp[i] = candidate
					cuts[i] = j
					rec.Record(trace.KindUpdate, fmt.Sprintf("New best for length %d: %d (first cut %d)", i, candidate, j), trace.Payload{
						"i": 0, "j": i, "value": candidate, "cut": j,
					})
				}
			}
		}

		selected := make([]int, 0, length)
		for remaining := length; remaining > 0; {
			c := cuts[remaining]
			selected = append(selected, c)
			remaining -= c
			rec.Record(trace.KindSolution, fmt.Sprintf("Backtracking: cut piece of length %d", c), trace.Payload{
				"cut": c, "remaining": remaining, "j": remaining + c,
			})
		}

		rec.Record(trace.KindSolution, fmt.Sprintf("Max revenue %d with cuts %v", dp[length], selected), trace.Payload{
			"max_revenue": dp[length], "cuts": selected, "dp": dp,
		})

		return trace.Outcome{
			Value:      float64(dp[length]),
			Selected:   selected,
			Complexity: trace.Complexity{Time: "O(N²)", Space: "O(N)"},
		}
	})
}
