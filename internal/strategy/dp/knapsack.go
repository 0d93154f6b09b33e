package dp

import (
	"fmt"

	"github.com/awmpietro/algoviz/internal/model"
	"github.com/awmpietro/algoviz/internal/trace"
)

// Knapsack solves 0/1 knapsack with dp[i][w] = max(dp[i-1][w], value+dp[i-1][w-weight]).
// Including the item wins ties. Selected item ids are returned in input order.
func Knapsack(in model.KnapsackInput) trace.Result {
	return trace.Run(func(rec *trace.Recorder) trace.Outcome {
		items := in.Items
		n, capacity := len(items), in.Capacity

		dp := newTable(n+1, capacity+1)
		take := make([][]bool, n+1)
		for i := range take {
			take[i] = make([]bool, capacity+1)
		}

		rec.Record(trace.KindInit, fmt.Sprintf("Initialized DP table of size (%d x %d)", n+1, capacity+1), trace.Payload{
			"rows":      n + 1,
			"cols":      capacity + 1,
			"base_case": "dp[0][w] = 0",
		})

		for i := 1; i <= n; i++ {
			item := items[i-1]
			for w := 0; w <= capacity; w++ {
				rec.Record(trace.KindHighlight,
					fmt.Sprintf("Calculating for Item %d (wt:%d, val:%d) at capacity %d", item.ID, item.Weight, item.Value, w),
					trace.Payload{"i": i, "j": w})

				if item.Weight > w {
					dp[i][w] = dp[i-1][w]
					rec.Record(trace.KindUpdate,
						fmt.Sprintf("Item %d too heavy (%d > %d). Copy from above.", item.ID, item.Weight, w),
						trace.Payload{
							"i": i, "j": w, "value": dp[i][w],
							"action": "skip",
							"prev_i": i - 1, "prev_j_exclude": w,
						})
					continue
				}

				exclude := dp[i-1][w]
				include := item.Value + dp[i-1][w-item.Weight]
				candidates := map[string]int{"include": include, "exclude": exclude}

				if include >= exclude {
					dp[i][w] = include
					take[i][w] = true
					rec.Record(trace.KindUpdate,
						fmt.Sprintf("Include Item %d: %d + %d >= %d", item.ID, item.Value, dp[i-1][w-item.Weight], exclude),
						trace.Payload{
							"i": i, "j": w, "value": include,
							"action": "include", "candidates": candidates, "winner": "include",
							"prev_i": i - 1, "prev_j_include": w - item.Weight, "prev_j_exclude": w,
						})
					continue
				}

				dp[i][w] = exclude
				rec.Record(trace.KindUpdate,
					fmt.Sprintf("Exclude Item %d: %d > %d", item.ID, exclude, include),
					trace.Payload{
						"i": i, "j": w, "value": exclude,
						"action": "exclude", "candidates": candidates, "winner": "exclude",
						"prev_i": i - 1, "prev_j_include": w - item.Weight, "prev_j_exclude": w,
					})
			}
		}

		selected := make([]int, 0, n)
		totalWeight := 0
		w := capacity
		for i := n; i >= 1; i-- {
			item := items[i-1]
			if take[i][w] {
				selected = append(selected, item.ID)
				totalWeight += item.Weight
				w -= item.Weight
				rec.Record(trace.KindSolution, fmt.Sprintf("Backtracking: Item %d was selected", item.ID), trace.Payload{
					"item_id": item.ID, "selected": true, "i": i, "j": w + item.Weight, "remaining_capacity": w,
				})
				continue
			}
			rec.Record(trace.KindSolution, fmt.Sprintf("Backtracking: Item %d was NOT selected", item.ID), trace.Payload{
				"item_id": item.ID, "selected": false, "i": i, "j": w, "remaining_capacity": w,
			})
		}
		reverse(selected)

		best := dp[n][capacity]
		rec.Record(trace.KindSolution, fmt.Sprintf("Maximum value %d using weight %d/%d", best, totalWeight, capacity), trace.Payload{
			"selected_items": selected,
			"total_value":    best,
			"total_weight":   totalWeight,
		})

		return trace.Outcome{
			Value:    float64(best),
			Selected: selected,
			Complexity: trace.Complexity{
				Time:  fmt.Sprintf("O(%d * %d)", n, capacity),
				Space: fmt.Sprintf("O(%d * %d)", n, capacity),
			},
		}
	})
}
