package greedy

import (
	"fmt"
	"sort"

	"github.com/awmpietro/algoviz/internal/model"
	"github.com/awmpietro/algoviz/internal/trace"
)

// CoinChange takes as many of the largest denomination as fit, then moves to
// the next one. It is not optimal for every coin system; when the remainder
// cannot be cleared the result is -1 with no coins.
func CoinChange(in model.CoinChangeInput) trace.Result {
	return trace.Run(func(rec *trace.Recorder) trace.Outcome {
		amount := in.Amount
		coins := make([]int, len(in.Coins))
		copy(coins, in.Coins)
		sort.Sort(sort.Reverse(sort.IntSlice(coins)))

		rec.Record(trace.KindSort, fmt.Sprintf("Sorted coins in descending order: %v", coins), trace.Payload{"sorted_coins": coins})

		remaining, total := amount, 0
		selected := make([]int, 0)
		for _, coin := range coins {
			rec.Record(trace.KindHighlight, fmt.Sprintf("Considering coin %d with %d remaining", coin, remaining), trace.Payload{
				"item_id": coin, "remaining": remaining,
			})

			count := remaining / coin
			if count == 0 {
				rec.Record(trace.KindReject, fmt.Sprintf("Coin %d too large for remaining amount %d", coin, remaining), trace.Payload{
					"item_id": coin, "current_weight": amount - remaining,
				})
				continue
			}

			remaining -= coin * count
			total += count
			for range count {
				selected = append(selected, coin)
			}
			rec.Record(trace.KindPick, fmt.Sprintf("Picked %d coin(s) of value %d. Remaining: %d", count, coin, remaining), trace.Payload{
				"item_id": coin, "count": count,
				"current_weight": amount - remaining, "total_value": total,
			})
		}

		complexity := trace.Complexity{Time: fmt.Sprintf("O(%d log %d)", len(coins), len(coins)), Space: "O(1)"}

		if remaining > 0 {
			rec.Record(trace.KindSolution, fmt.Sprintf("Greedy failed: cannot make exact amount (remaining: %d)", remaining), trace.Payload{
				"success": false, "remaining": remaining,
			})
			return trace.Outcome{Value: -1, Complexity: complexity}
		}

		rec.Record(trace.KindSolution, fmt.Sprintf("Greedy formed %d with %d coin(s)", amount, total), trace.Payload{
			"success": true, "coins": selected, "count": total,
		})
		return trace.Outcome{Value: float64(total), Selected: selected, Complexity: complexity}
	})
}
