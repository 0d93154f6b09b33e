package strategy

import (
	"unicode/utf8"

	"github.com/awmpietro/algoviz/internal/model"
)

// Cell estimates, one per algorithm. They follow the shape of each trace:
// a DP table records a step or two per entry, a greedy scan one per item.

func knapsackTableCells(in model.KnapsackInput) int {
	return (len(in.Items) + 1) * (max(in.Capacity, 0) + 1)
}

func knapsackItemCells(in model.KnapsackInput) int { return len(in.Items) + 1 }

func coinTableCells(in model.CoinChangeInput) int {
	return (max(in.Amount, 0) + 1) * max(len(in.Coins), 1)
}

func coinDenominationCells(in model.CoinChangeInput) int { return len(in.Coins) + 1 }

func intervalCells(in model.IntervalSchedulingInput) int { return len(in.Intervals) + 1 }

// matrixChainCells is n³ for n matrices: every (i, j, k) split is recorded.
func matrixChainCells(in model.MatrixChainInput) int {
	n := max(len(in.Dimensions)-1, 1)
	return n * n * n
}

func huffmanCells(in model.HuffmanInput) int { return utf8.RuneCountInString(in.Text) + 1 }

func lcsCells(in model.LCSInput) int { return pairCells(in.Text1, in.Text2) }

func editDistanceCells(in model.EditDistanceInput) int { return pairCells(in.Text1, in.Text2) }

func pairCells(a, b string) int {
	return (utf8.RuneCountInString(a) + 1) * (utf8.RuneCountInString(b) + 1)
}

func lisCells(in model.LISInput) int { return len(in.Sequence)*len(in.Sequence) + 1 }

func rodCuttingCells(in model.RodCuttingInput) int {
	length := max(in.Length, 0)
	return length*min(length, len(in.Prices)) + 1
}

func graphCells(in model.GraphInput) int {
	cells := 1
	for _, nbrs := range in.Graph {
		cells += 1 + len(nbrs)
	}
	return cells
}
