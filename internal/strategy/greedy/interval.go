package greedy

import (
	"fmt"
	"sort"

	"github.com/awmpietro/algoviz/internal/model"
	"github.com/awmpietro/algoviz/internal/trace"
)

// IntervalScheduling is earliest-finish-first, which is optimal here.
func IntervalScheduling(in model.IntervalSchedulingInput) trace.Result {
	return trace.Run(func(rec *trace.Recorder) trace.Outcome {
		sorted := make([]model.Interval, len(in.Intervals))
		copy(sorted, in.Intervals)
		sort.SliceStable(sorted, func(a, b int) bool { return sorted[a].End < sorted[b].End })

		order := make([]string, 0, len(sorted))
		for _, iv := range sorted {
			order = append(order, fmt.Sprintf("[%d,%d]", iv.Start, iv.End))
		}
		rec.Record(trace.KindSort, fmt.Sprintf("Sorted %d intervals by end time (earliest finish first)", len(sorted)), trace.Payload{
			"sorted_order": order,
		})

		var (
			lastEnd  int
			hasLast  bool
			selected = make([]int, 0, len(sorted))
		)
		for _, iv := range sorted {
			rec.Record(trace.KindHighlight, fmt.Sprintf("Considering interval [%d, %d]", iv.Start, iv.End), trace.Payload{
				"interval_id": iv.ID, "start": iv.Start, "end": iv.End,
			})

			if hasLast && iv.Start < lastEnd {
				rec.Record(trace.KindReject,
					fmt.Sprintf("Rejected interval [%d, %d]. Overlaps with previous (ends at %d).", iv.Start, iv.End, lastEnd),
					trace.Payload{"item_id": iv.ID, "current_weight": lastEnd})
				continue
			}

			selected = append(selected, iv.ID)
			lastEnd, hasLast = iv.End, true
			rec.Record(trace.KindPick,
				fmt.Sprintf("Selected interval [%d, %d]. No overlap with previous.", iv.Start, iv.End),
				trace.Payload{"item_id": iv.ID, "current_weight": lastEnd, "total_value": len(selected)})
		}

		return trace.Outcome{
			Value:      float64(len(selected)),
			Selected:   selected,
			Complexity: trace.Complexity{Time: "O(N log N)", Space: "O(N)"},
		}
	})
}
