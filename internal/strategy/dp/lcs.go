package dp

import (
	"fmt"

	"github.com/awmpietro/algoviz/internal/model"
	"github.com/awmpietro/algoviz/internal/trace"
)

// LCS computes the longest common subsequence length of two texts, compared
// rune by rune. On a tie between the cell above and the cell to the left,
// the cell above wins. Selected items are indices into text1, ascending.
func LCS(in model.LCSInput) trace.Result {
	return trace.Run(func(rec *trace.Recorder) trace.Outcome {
		a, b := []rune(in.Text1), []rune(in.Text2)
		n, m := len(a), len(b)
		dp := newTable(n+1, m+1)

		rec.Record(trace.KindInit, fmt.Sprintf("Initialized %dx%d LCS table", n+1, m+1), trace.Payload{
			"rows": n + 1, "cols": m + 1,
			"row_labels": labels(a), "col_labels": labels(b),
			"base_case": "dp[0][j] = dp[i][0] = 0",
		})

		for i := 1; i <= n; i++ {
			for j := 1; j <= m; j++ {
				ca, cb := string(a[i-1]), string(b[j-1])
				rec.Record(trace.KindHighlight, fmt.Sprintf("Comparing '%s' (text1[%d]) with '%s' (text2[%d])", ca, i-1, cb, j-1), trace.Payload{
					"i": i, "j": j, "compare": []string{ca, cb},
				})

				if a[i-1] == b[j-1] {
					dp[i][j] = dp[i-1][j-1] + 1
					rec.Record(trace.KindUpdate, fmt.Sprintf("Match '%s': dp[%d][%d] = dp[%d][%d] + 1 = %d", ca, i, j, i-1, j-1, dp[i][j]), trace.Payload{
						"i": i, "j": j, "value": dp[i][j], "match": true,
						"prev_i": i - 1, "prev_j": j - 1,
					})
					continue
				}

				up, left := dp[i-1][j], dp[i][j-1]
				candidates := map[string]int{"up": up, "left": left}
				if up >= left {
					dp[i][j] = up
					rec.Record(trace.KindUpdate, fmt.Sprintf("No match: take max(up=%d, left=%d) from above", up, left), trace.Payload{
						"i": i, "j": j, "value": up, "match": false,
						"candidates": candidates, "winner": "up", "prev_i": i - 1, "prev_j": j,
					})
					continue
				}
				dp[i][j] = left
				rec.Record(trace.KindUpdate, fmt.Sprintf("No match: take max(up=%d, left=%d) from the left", up, left), trace.Payload{
					"i": i, "j": j, "value": left, "match": false,
					"candidates": candidates, "winner": "left", "prev_i": i, "prev_j": j - 1,
				})
			}
		}

		indices := make([]int, 0, dp[n][m])
		common := make([]rune, 0, dp[n][m])
		path := make([][2]int, 0, n+m)
		for i, j := n, m; i > 0 && j > 0; {
			path = append(path, [2]int{i, j})
			switch {
			case a[i-1] == b[j-1]:
				indices = append(indices, i-1)
				common = append(common, a[i-1])
				rec.Record(trace.KindSolution, fmt.Sprintf("Backtracking: '%s' is part of the LCS", string(a[i-1])), trace.Payload{
					"i": i, "j": j, "move": "diagonal", "char": string(a[i-1]),
				})
				i--
				j--
			case dp[i-1][j] >= dp[i][j-1]:
				rec.Record(trace.KindSolution, fmt.Sprintf("Backtracking: skip '%s' from text1", string(a[i-1])), trace.Payload{
					"i": i, "j": j, "move": "up",
				})
				i--
			default:
				rec.Record(trace.KindSolution, fmt.Sprintf("Backtracking: skip '%s' from text2", string(b[j-1])), trace.Payload{
					"i": i, "j": j, "move": "left",
				})
				j--
			}
		}
		reverse(indices)
		reverse(common)

		rec.Record(trace.KindSolution, fmt.Sprintf("LCS is '%s' with length %d", string(common), dp[n][m]), trace.Payload{
			"lcs": string(common), "length": dp[n][m], "indices": indices, "path": path,
		})

		return trace.Outcome{
			Value:    float64(dp[n][m]),
			Selected: indices,
			Complexity: trace.Complexity{
				Time:  fmt.Sprintf("O(%d * %d)", n, m),
				Space: fmt.Sprintf("O(%d * %d)", n, m),
			},
		}
	})
}

// labels prefixes the empty-string header used by the table renderer.
func labels(rs []rune) []string {
	out := make([]string, 0, len(rs)+1)
	out = append(out, "")
	for _, r := range rs {
		out = append(out, string(r))
	}
	return out
}
