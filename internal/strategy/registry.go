// Package strategy resolves a (family, variant) route to the algorithm that
// serves it. Resolution happens once, at the transport boundary; everything
// below works with a typed Algorithm.
package strategy

import (
	"errors"
	"fmt"
	"sort"

	"github.com/awmpietro/algoviz/internal/model"
	"github.com/awmpietro/algoviz/internal/strategy/dp"
	"github.com/awmpietro/algoviz/internal/strategy/graphs"
	"github.com/awmpietro/algoviz/internal/strategy/greedy"
	"github.com/awmpietro/algoviz/internal/trace"
)

type Family string

const (
	Knapsack           Family = "knapsack"
	CoinChange         Family = "coin-change"
	IntervalScheduling Family = "interval-scheduling"
	MatrixChain        Family = "matrix-chain"
	Huffman            Family = "huffman"
	LCS                Family = "lcs"
	Dijkstra           Family = "dijkstra"
	Prims              Family = "prims"
	Kruskals           Family = "kruskals"
	EditDistance       Family = "edit-distance"
	LIS                Family = "lis"
	RodCutting         Family = "rod-cutting"
)

type Variant string

const (
	DP     Variant = "dp"
	Greedy Variant = "greedy"
	// None marks families served by a single algorithm and routed without a
	// variant segment.
	None Variant = ""
)

var ErrInputType = errors.New("input type mismatch")

// Algorithm is one resolved strategy.
type Algorithm struct {
	Family  Family
	Variant Variant

	newInput func() any
	solve    func(in any) (trace.Result, error)
	cells    func(in any) int
}

// NewInput returns a pointer to a zero input value for the algorithm,
// ready to be decoded into.
func (a Algorithm) NewInput() any { return a.newInput() }

// Solve runs the strategy. in must be the value returned by NewInput, or
// the input struct itself.
func (a Algorithm) Solve(in any) (trace.Result, error) { return a.solve(in) }

// Cells estimates how many trace cells (table entries, candidate checks,
// edges) solving in will record. Inputs of the wrong type count as 0.
func (a Algorithm) Cells(in any) int { return a.cells(in) }

// Name is "family/variant", or just the family when there is no variant.
func (a Algorithm) Name() string {
	if a.Variant == None {
		return string(a.Family)
	}
	return string(a.Family) + "/" + string(a.Variant)
}

func entry[T any](f Family, v Variant, fn func(T) trace.Result, cost func(T) int) Algorithm {
	return Algorithm{
		Family:   f,
		Variant:  v,
		newInput: func() any { return new(T) },
		cells: func(in any) int {
			switch x := in.(type) {
			case *T:
				return cost(*x)
			case T:
				return cost(x)
			}
			return 0
		},
		solve: func(in any) (trace.Result, error) {
			switch x := in.(type) {
			case *T:
				return fn(*x), nil
			case T:
				return fn(x), nil
			}
			return trace.Result{}, fmt.Errorf("%w: %s/%s wants %T, got %T", ErrInputType, f, v, *new(T), in)
		},
	}
}

var registry = map[Family]map[Variant]Algorithm{
	Knapsack: {
		DP:     entry(Knapsack, DP, dp.Knapsack, knapsackTableCells),
		Greedy: entry(Knapsack, Greedy, greedy.Knapsack, knapsackItemCells),
	},
	CoinChange: {
		DP:     entry(CoinChange, DP, dp.CoinChange, coinTableCells),
		Greedy: entry(CoinChange, Greedy, greedy.CoinChange, coinDenominationCells),
	},
	IntervalScheduling: {
		DP:     entry(IntervalScheduling, DP, dp.IntervalScheduling, intervalCells),
		Greedy: entry(IntervalScheduling, Greedy, greedy.IntervalScheduling, intervalCells),
	},
	MatrixChain:  {DP: entry(MatrixChain, DP, dp.MatrixChain, matrixChainCells)},
	Huffman:      {None: entry(Huffman, None, greedy.Huffman, huffmanCells)},
	LCS:          {None: entry(LCS, None, dp.LCS, lcsCells)},
	Dijkstra:     {None: entry(Dijkstra, None, graphs.Dijkstra, graphCells)},
	Prims:        {None: entry(Prims, None, graphs.Prim, graphCells)},
	Kruskals:     {None: entry(Kruskals, None, graphs.Kruskal, graphCells)},
	EditDistance: {None: entry(EditDistance, None, dp.EditDistance, editDistanceCells)},
	LIS:          {None: entry(LIS, None, dp.LIS, lisCells)},
	RodCutting:   {None: entry(RodCutting, None, dp.RodCutting, rodCuttingCells)},
}

// Families whose variant rejection carries a fixed message.
var variantMessages = map[Family]string{
	MatrixChain: "Matrix Chain optimization is a DP problem.",
}

// Resolve maps raw route segments to an Algorithm. An empty variant selects
// the single algorithm of variant-less families.
func Resolve(family, variant string) (Algorithm, error) {
	variants, ok := registry[Family(family)]
	if !ok {
		return Algorithm{}, &UnknownFamilyError{Family: family}
	}
	alg, ok := variants[Variant(variant)]
	if !ok {
		return Algorithm{}, &UnknownVariantError{
			Family:  family,
			Variant: variant,
			Message: variantMessages[Family(family)],
		}
	}
	return alg, nil
}

// Must is Resolve for statically known routes.
func Must(f Family, v Variant) Algorithm {
	alg, err := Resolve(string(f), string(v))
	if err != nil {
		panic(err)
	}
	return alg
}

// Families lists the registered families in lexicographic order.
func Families() []Family {
	out := make([]Family, 0, len(registry))
	for f := range registry {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Variants lists the variants of f in lexicographic order; variant-less
// families yield [None].
func Variants(f Family) []Variant {
	vs := registry[f]
	out := make([]Variant, 0, len(vs))
	for v := range vs {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Algorithms returns every registered algorithm ordered by Name.
func Algorithms() []Algorithm {
	out := make([]Algorithm, 0, 16)
	for _, f := range Families() {
		for _, v := range Variants(f) {
			out = append(out, registry[f][v])
		}
	}
	return out
}

// IsGraph reports whether f consumes a model.GraphInput.
func IsGraph(f Family) bool {
	vs := Variants(f)
	if len(vs) == 0 {
		return false
	}
	_, ok := registry[f][vs[0]].NewInput().(*model.GraphInput)
	return ok
}
