package dp

import (
	"fmt"
	"math"

	"github.com/awmpietro/algoviz/internal/model"
	"github.com/awmpietro/algoviz/internal/trace"
)

const unreachable = math.MaxInt

// CoinChange computes the minimum number of coins summing to the amount with
// dp[i] = min over coins c <= i of dp[i-c]+1. The first coin in input order
// reaching the minimum wins. An unreachable amount yields -1 and no coins.
func CoinChange(in model.CoinChangeInput) trace.Result {
	return trace.Run(func(rec *trace.Recorder) trace.Outcome {
		amount, coins := in.Amount, in.Coins

		dp := make([]int, amount+1)
		choice := make([]int, amount+1)
		for i := 1; i <= amount; i++ {
			dp[i] = unreachable
		}

		rec.Record(trace.KindInit, fmt.Sprintf("Initialized DP array of size %d. dp[0] = 0, rest = ∞", amount+1), trace.Payload{
			"rows":      1,
			"cols":      amount + 1,
			"coins":     coins,
			"base_case": "dp[0] = 0",
		})

		for i := 1; i <= amount; i++ {
			rec.Record(trace.KindHighlight, fmt.Sprintf("Computing minimum coins for amount %d", i), trace.Payload{"i": 0, "j": i})

			for _, c := range coins {
				if c > i || dp[i-c] == unreachable {
					continue
				}
				candidate := dp[i-c] + 1
				if candidate >= dp[i] {
					continue
				}
				previous := cellValue(dp[i])
				dp[i] = candidate
				choice[i] = c
				rec.Record(trace.KindUpdate, fmt.Sprintf("Using coin %d: dp[%d] = dp[%d] + 1 = %d", c, i, i-c, candidate), trace.Payload{
					"i": 0, "j": i, "value": candidate,
					"coin_used": c, "prev_j": i - c, "previous": previous,
				})
			}

			if dp[i] == unreachable {
				rec.Record(trace.KindInfo, fmt.Sprintf("Amount %d cannot be formed with the given coins", i), trace.Payload{
					"i": 0, "j": i, "value": nil,
				})
			}
		}

		complexity := trace.Complexity{
			Time:  fmt.Sprintf("O(%d * %d)", amount, len(coins)),
			Space: fmt.Sprintf("O(%d)", amount),
		}

		if dp[amount] == unreachable {
			rec.Record(trace.KindSolution, fmt.Sprintf("No combination of coins sums to %d", amount), trace.Payload{
				"success": false, "amount": amount,
			})
			return trace.Outcome{Value: -1, Complexity: complexity}
		}

		selected := make([]int, 0, dp[amount])
		for current := amount; current > 0; {
			c := choice[current]
			selected = append(selected, c)
			current -= c
			rec.Record(trace.KindSolution, fmt.Sprintf("Backtracking: Used coin %d", c), trace.Payload{
				"coin": c, "remaining": current, "j": current + c,
			})
		}

		rec.Record(trace.KindSolution, fmt.Sprintf("Amount %d formed with %d coin(s)", amount, dp[amount]), trace.Payload{
			"success": true, "coins": selected, "count": dp[amount],
		})

		return trace.Outcome{Value: float64(dp[amount]), Selected: selected, Complexity: complexity}
	})
}

// cellValue renders an unreachable cell as JSON null.
func cellValue(v int) any {
	if v == unreachable {
		return nil
	}
	return v
}
