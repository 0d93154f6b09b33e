// Package greedy implements the sort-then-scan strategies and Huffman coding.
package greedy

import (
	"fmt"
	"sort"

	"github.com/awmpietro/algoviz/internal/model"
	"github.com/awmpietro/algoviz/internal/trace"
)

// Knapsack takes whole items by descending value/weight ratio while they fit.
// Items with equal ratio keep their input order.
func Knapsack(in model.KnapsackInput) trace.Result {
	return trace.Run(func(rec *trace.Recorder) trace.Outcome {
		capacity := in.Capacity
		sorted := make([]model.Item, len(in.Items))
		copy(sorted, in.Items)

		ratios := make(map[string]float64, len(sorted))
		for _, it := range sorted {
			ratios[fmt.Sprint(it.ID)] = ratio(it)
		}
		rec.Record(trace.KindSort, "Calculating value/weight ratios for all items", trace.Payload{"ratios": ratios})

		sort.SliceStable(sorted, func(a, b int) bool { return ratio(sorted[a]) > ratio(sorted[b]) })

		order := make([]int, 0, len(sorted))
		for _, it := range sorted {
			order = append(order, it.ID)
		}
		rec.Record(trace.KindSort, "Sorted items by ratio (value/weight) in descending order", trace.Payload{"sorted_order": order})

		weight, value := 0, 0
		selected := make([]int, 0, len(sorted))
		for _, it := range sorted {
			rec.Record(trace.KindHighlight,
				fmt.Sprintf("Considering Item %d (Wt: %d, Val: %d, Ratio: %.2f)", it.ID, it.Weight, it.Value, ratio(it)),
				trace.Payload{"item_id": it.ID})

			if weight+it.Weight > capacity {
				rec.Record(trace.KindReject,
					fmt.Sprintf("Rejected Item %d. Adding it would exceed capacity (%d + %d > %d)", it.ID, weight, it.Weight, capacity),
					trace.Payload{"item_id": it.ID, "current_weight": weight})
				continue
			}

			weight += it.Weight
			value += it.Value
			selected = append(selected, it.ID)
			rec.Record(trace.KindPick,
				fmt.Sprintf("Picked Item %d. Current Weight: %d/%d", it.ID, weight, capacity),
				trace.Payload{"item_id": it.ID, "current_weight": weight, "total_value": value})
		}

		return trace.Outcome{
			Value:      float64(value),
			Selected:   selected,
			Complexity: trace.Complexity{Time: "O(N log N)", Space: "O(1) (auxiliary)"},
		}
	})
}

func ratio(it model.Item) float64 {
	return float64(it.Value) / float64(it.Weight)
}
