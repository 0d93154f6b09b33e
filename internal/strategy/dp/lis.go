package dp

import (
	"fmt"

	"github.com/awmpietro/algoviz/internal/model"
	"github.com/awmpietro/algoviz/internal/trace"
)

// LIS finds the longest strictly increasing subsequence. The earliest
// predecessor j giving the longest chain ending at i wins, and the earliest
// index holding the overall maximum is backtracked from. Selected items are
// the subsequence values.
func LIS(in model.LISInput) trace.Result {
	return trace.Run(func(rec *trace.Recorder) trace.Outcome {
		arr := in.Sequence
		n := len(arr)
		complexity := trace.Complexity{Time: "O(N²)", Space: "O(N)"}

		if n == 0 {
			rec.Record(trace.KindInfo, "Empty sequence, LIS length is 0", trace.Payload{"length": 0})
			return trace.Outcome{Complexity: complexity}
		}

		dp := make([]int, n)
		parent := make([]int, n)
		for i := range dp {
			dp[i] = 1
			parent[i] = -1
		}

		rec.Record(trace.KindInit, fmt.Sprintf("Initialized LIS array of size %d with 1s", n), trace.Payload{
			"rows": 1, "cols": n, "array": arr, "dp": dp, "base_case": "dp[i] = 1",
		})

		maxLen, maxIdx := 1, 0
		for i := 1; i < n; i++ {
			rec.Record(trace.KindHighlight, fmt.Sprintf("Computing LIS ending at index %d (value %d)", i, arr[i]), trace.Payload{
				"i": 0, "j": i,
			})
			for j := 0; j < i; j++ {
				rec.Record(trace.KindInfo, fmt.Sprintf("Compare arr[%d]=%d with arr[%d]=%d", j, arr[j], i, arr[i]), trace.Payload{
					"i": 0, "j": i, "compare_j": j, "arr_j": arr[j], "arr_i": arr[i],
				})
				if arr[j] < arr[i] && dp[j]+1 > dp[i] {
					dp[i] = dp[j] + 1
					parent[i] = j
					rec.Record(trace.KindUpdate, fmt.Sprintf("Extend from index %d: dp[%d] = %d", j, i, dp[i]), trace.Payload{
						"i": 0, "j": i, "value": dp[i], "from": j, "dp_array": dp,
					})
				}
			}
			if dp[i] > maxLen {
				maxLen, maxIdx = dp[i], i
			}
		}

		indices := make([]int, 0, maxLen)
		for idx := maxIdx; idx != -1; idx = parent[idx] {
			indices = append(indices, idx)
			rec.Record(trace.KindSolution, fmt.Sprintf("Backtracking: arr[%d]=%d is in the LIS", idx, arr[idx]), trace.Payload{
				"index": idx, "value": arr[idx], "j": idx,
			})
		}
		reverse(indices)

		sequence := make([]int, 0, len(indices))
		for _, idx := range indices {
			sequence = append(sequence, arr[idx])
		}

		rec.Record(trace.KindSolution, fmt.Sprintf("LIS length is %d", maxLen), trace.Payload{
			"length": maxLen, "sequence": sequence, "indices": indices,
		})

		return trace.Outcome{Value: float64(maxLen), Selected: sequence, Complexity: complexity}
	})
}
