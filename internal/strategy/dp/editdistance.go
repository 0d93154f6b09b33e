package dp

import (
	"fmt"

	"github.com/awmpietro/algoviz/internal/model"
	"github.com/awmpietro/algoviz/internal/trace"
)

const (
	opMatch   = "match"
	opReplace = "replace"
	opInsert  = "insert"
	opDelete  = "delete"
)

// EditDistance computes the Levenshtein distance turning text1 into text2.
// Among equal-cost edits replace is preferred, then insert, then delete.
func EditDistance(in model.EditDistanceInput) trace.Result {
	return trace.Run(func(rec *trace.Recorder) trace.Outcome {
		a, b := []rune(in.Text1), []rune(in.Text2)
		n, m := len(a), len(b)

		dp := newTable(n+1, m+1)
		ops := make([][]string, n+1)
		for i := range ops {
			ops[i] = make([]string, m+1)
		}
		for i := 1; i <= n; i++ {
			dp[i][0] = i
			ops[i][0] = opDelete
		}
		for j := 1; j <= m; j++ {
			dp[0][j] = j
			ops[0][j] = opInsert
		}

		rec.Record(trace.KindInit, fmt.Sprintf("Initialized %dx%d edit distance table", n+1, m+1), trace.Payload{
			"rows": n + 1, "cols": m + 1,
			"row_labels": labels(a), "col_labels": labels(b),
			"base_case": "dp[i][0] = i, dp[0][j] = j",
		})

		for i := 1; i <= n; i++ {
			for j := 1; j <= m; j++ {
				ca, cb := string(a[i-1]), string(b[j-1])
				rec.Record(trace.KindHighlight, fmt.Sprintf("Comparing '%s' with '%s'", ca, cb), trace.Payload{
					"i": i, "j": j, "compare": []string{ca, cb},
				})

				if a[i-1] == b[j-1] {
					dp[i][j] = dp[i-1][j-1]
					ops[i][j] = opMatch
					rec.Record(trace.KindUpdate, fmt.Sprintf("Match '%s': no cost, dp[%d][%d] = %d", ca, i, j, dp[i][j]), trace.Payload{
						"i": i, "j": j, "value": dp[i][j], "operation": opMatch,
					})
					continue
				}

				replace := dp[i-1][j-1] + 1
				insert := dp[i][j-1] + 1
				del := dp[i-1][j] + 1

				best, op := replace, opReplace
				if insert < best {
					best, op = insert, opInsert
				}
				if del < best {
					best, op = del, opDelete
				}
				dp[i][j] = best
				ops[i][j] = op
				rec.Record(trace.KindUpdate, fmt.Sprintf("min(replace=%d, insert=%d, delete=%d) = %d via %s", replace, insert, del, best, op), trace.Payload{
					"i": i, "j": j, "value": best, "operation": op,
					"candidates": map[string]int{opReplace: replace, opInsert: insert, opDelete: del},
					"winner":     op,
				})
			}
		}

		operations := make([][]string, 0, n+m)
		for i, j := n, m; i > 0 || j > 0; {
			switch op := ops[i][j]; op {
			case opMatch:
				operations = append(operations, []string{op, string(a[i-1])})
				rec.Record(trace.KindSolution, fmt.Sprintf("Keep '%s'", string(a[i-1])), trace.Payload{"i": i, "j": j, "operation": op})
				i--
				j--
			case opReplace:
				operations = append(operations, []string{op, string(a[i-1]) + "->" + string(b[j-1])})
				rec.Record(trace.KindSolution, fmt.Sprintf("Replace '%s' with '%s'", string(a[i-1]), string(b[j-1])), trace.Payload{"i": i, "j": j, "operation": op})
				i--
				j--
			case opInsert:
				operations = append(operations, []string{op, string(b[j-1])})
				rec.Record(trace.KindSolution, fmt.Sprintf("Insert '%s'", string(b[j-1])), trace.Payload{"i": i, "j": j, "operation": op})
				j--
			default:
				operations = append(operations, []string{op, string(a[i-1])})
				rec.Record(trace.KindSolution, fmt.Sprintf("Delete '%s'", string(a[i-1])), trace.Payload{"i": i, "j": j, "operation": op})
				i--
			}
		}
		reverse(operations)

		rec.Record(trace.KindSolution, fmt.Sprintf("Edit distance is %d", dp[n][m]), trace.Payload{
			"distance": dp[n][m], "operations": operations,
		})

		return trace.Outcome{
			Value: float64(dp[n][m]),
			Complexity: trace.Complexity{
				Time:  fmt.Sprintf("O(%d * %d)", n, m),
				Space: fmt.Sprintf("O(%d * %d)", n, m),
			},
		}
	})
}
