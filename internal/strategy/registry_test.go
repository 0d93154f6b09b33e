package strategy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awmpietro/algoviz/internal/model"
)

func TestResolve_KnownRoutes(t *testing.T) {
	routes := [][2]string{
		{"knapsack", "dp"}, {"knapsack", "greedy"},
		{"coin-change", "dp"}, {"coin-change", "greedy"},
		{"interval-scheduling", "dp"}, {"interval-scheduling", "greedy"},
		{"matrix-chain", "dp"},
		{"huffman", ""}, {"lcs", ""}, {"dijkstra", ""}, {"prims", ""},
		{"kruskals", ""}, {"edit-distance", ""}, {"lis", ""}, {"rod-cutting", ""},
	}
	for _, r := range routes {
		alg, err := Resolve(r[0], r[1])
		require.NoError(t, err, "%s/%s", r[0], r[1])
		assert.Equal(t, Family(r[0]), alg.Family)
		assert.Equal(t, Variant(r[1]), alg.Variant)
		assert.NotNil(t, alg.NewInput())
	}
	assert.Len(t, Algorithms(), len(routes))
}

func TestResolve_UnknownFamily(t *testing.T) {
	_, err := Resolve("bogosort", "dp")
	var fe *UnknownFamilyError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "bogosort", fe.Family)
}

func TestResolve_UnknownVariant(t *testing.T) {
	_, err := Resolve("knapsack", "fractional")
	var ve *UnknownVariantError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "Unknown algorithm type: fractional", err.Error())

	_, err = Resolve("knapsack", "")
	require.True(t, errors.As(err, &ve))

	_, err = Resolve("lcs", "dp")
	require.True(t, errors.As(err, &ve))
}

func TestResolve_MatrixChainMessage(t *testing.T) {
	_, err := Resolve("matrix-chain", "greedy")
	require.Error(t, err)
	assert.Equal(t, "Matrix Chain optimization is a DP problem.", err.Error())
}

func TestAlgorithm_SolveAcceptsPointerAndValue(t *testing.T) {
	alg := Must(CoinChange, DP)

	in, ok := alg.NewInput().(*model.CoinChangeInput)
	require.True(t, ok)
	in.Amount, in.Coins = 11, []int{1, 2, 5}

	byPtr, err := alg.Solve(in)
	require.NoError(t, err)
	byVal, err := alg.Solve(*in)
	require.NoError(t, err)
	assert.Equal(t, 3.0, byPtr.ResultValue)
	assert.Equal(t, byPtr.ResultValue, byVal.ResultValue)
}

func TestAlgorithm_SolveRejectsWrongInput(t *testing.T) {
	_, err := Must(LCS, None).Solve(&model.LISInput{})
	assert.True(t, errors.Is(err, ErrInputType))
}

func TestAlgorithm_Name(t *testing.T) {
	assert.Equal(t, "knapsack/greedy", Must(Knapsack, Greedy).Name())
	assert.Equal(t, "lis", Must(LIS, None).Name())
}

func TestIsGraph(t *testing.T) {
	assert.True(t, IsGraph(Dijkstra))
	assert.True(t, IsGraph(Kruskals))
	assert.False(t, IsGraph(Knapsack))
	assert.False(t, IsGraph("nope"))
}

func TestAlgorithm_Cells(t *testing.T) {
	cases := []struct {
		alg  Algorithm
		in   any
		want int
	}{
		{Must(Knapsack, DP), &model.KnapsackInput{Capacity: 9, Items: make([]model.Item, 4)}, 5 * 10},
		{Must(Knapsack, Greedy), model.KnapsackInput{Capacity: 9, Items: make([]model.Item, 4)}, 5},
		{Must(CoinChange, DP), &model.CoinChangeInput{Amount: 99, Coins: []int{1, 2, 5}}, 100 * 3},
		{Must(CoinChange, Greedy), &model.CoinChangeInput{Amount: 99, Coins: []int{1, 2, 5}}, 4},
		{Must(MatrixChain, DP), &model.MatrixChainInput{Dimensions: []int{1, 2, 3, 4}}, 27},
		{Must(LCS, None), &model.LCSInput{Text1: "héllo", Text2: "ab"}, 6 * 3},
		{Must(EditDistance, None), &model.EditDistanceInput{Text1: "", Text2: ""}, 1},
		{Must(LIS, None), &model.LISInput{Sequence: make([]int, 10)}, 101},
		{Must(RodCutting, None), &model.RodCuttingInput{Length: 10, Prices: make([]int, 4)}, 41},
		{Must(RodCutting, None), &model.RodCuttingInput{Length: 3, Prices: make([]int, 8)}, 10},
		{Must(Kruskals, None), &model.GraphInput{Graph: model.Graph{"A": {"B": 1, "C": 2}, "B": {"C": 1}}}, 6},
		{Must(Huffman, None), &model.HuffmanInput{Text: "abc"}, 4},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.alg.Cells(tc.in), tc.alg.Name())
	}

	assert.Zero(t, Must(LCS, None).Cells(&model.LISInput{}))
}
