package dp

import (
	"fmt"
	"sort"

	"github.com/awmpietro/algoviz/internal/model"
	"github.com/awmpietro/algoviz/internal/trace"
)

// IntervalScheduling finds the maximum set of non-overlapping intervals.
// Intervals are sorted by end time, then dp[i] = max(dp[i-1], 1+dp[p(i)])
// where p(i) is the latest compatible interval. Including wins ties.
func IntervalScheduling(in model.IntervalSchedulingInput) trace.Result {
	return trace.Run(func(rec *trace.Recorder) trace.Outcome {
		sorted := make([]model.Interval, len(in.Intervals))
		copy(sorted, in.Intervals)
		sort.SliceStable(sorted, func(a, b int) bool { return sorted[a].End < sorted[b].End })
		n := len(sorted)

		order := make([]string, 0, n)
		ids := make([]int, 0, n)
		for _, iv := range sorted {
			order = append(order, fmt.Sprintf("[%d,%d]", iv.Start, iv.End))
			ids = append(ids, iv.ID)
		}
		rec.Record(trace.KindSort, fmt.Sprintf("Sorted %d intervals by end time for DP solution", n), trace.Payload{
			"sorted_order": order,
			"sorted_ids":   ids,
		})

		dp := make([]int, n+1)
		took := make([]bool, n+1)
		prev := make([]int, n+1)

		rec.Record(trace.KindInit, fmt.Sprintf("Initialized DP array of size %d", n+1), trace.Payload{
			"rows": 1, "cols": n + 1, "base_case": "dp[0] = 0",
		})

		for i := 1; i <= n; i++ {
			cur := sorted[i-1]

			j := i - 1
			for j > 0 && sorted[j-1].End > cur.Start {
				j--
			}

			include := 1 + dp[j]
			exclude := dp[i-1]
			candidates := map[string]int{"include": include, "exclude": exclude}

			rec.Record(trace.KindHighlight,
				fmt.Sprintf("DP[%d]: Interval [%d,%d]. Include=%d, Exclude=%d", i, cur.Start, cur.End, include, exclude),
				trace.Payload{"i": 0, "j": i, "interval_id": cur.ID, "compatible": j})

			if include >= exclude {
				dp[i] = include
				took[i] = true
				prev[i] = j
				rec.Record(trace.KindUpdate, fmt.Sprintf("Include interval %d: %d >= %d", cur.ID, include, exclude), trace.Payload{
					"i": 0, "j": i, "value": include,
					"action": "include", "candidates": candidates, "winner": "include", "prev_j": j,
				})
				continue
			}

			dp[i] = exclude
			prev[i] = i - 1
			rec.Record(trace.KindUpdate, fmt.Sprintf("Exclude interval %d: %d > %d", cur.ID, exclude, include), trace.Payload{
				"i": 0, "j": i, "value": exclude,
				"action": "exclude", "candidates": candidates, "winner": "exclude", "prev_j": i - 1,
			})
		}

		selected := make([]int, 0, dp[n])
		for i := n; i > 0; {
			cur := sorted[i-1]
			if took[i] {
				selected = append(selected, cur.ID)
				rec.Record(trace.KindSolution, fmt.Sprintf("Backtracking: interval %d [%d,%d] selected", cur.ID, cur.Start, cur.End), trace.Payload{
					"item_id": cur.ID, "selected": true, "j": i, "next_j": prev[i],
				})
				i = prev[i]
				continue
			}
			rec.Record(trace.KindSolution, fmt.Sprintf("Backtracking: interval %d [%d,%d] skipped", cur.ID, cur.Start, cur.End), trace.Payload{
				"item_id": cur.ID, "selected": false, "j": i, "next_j": i - 1,
			})
			i--
		}
		reverse(selected)

		rec.Record(trace.KindSolution, fmt.Sprintf("Selected %d non-overlapping interval(s)", dp[n]), trace.Payload{
			"selected_items": selected, "count": dp[n],
		})

		return trace.Outcome{
			Value:      float64(dp[n]),
			Selected:   selected,
			Complexity: trace.Complexity{Time: "O(N²)", Space: "O(N)"},
		}
	})
}
