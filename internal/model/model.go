// Package model holds the validated, strongly typed inputs handed to the
// strategies. JSON names follow the public request contract.
package model

type Item struct {
	ID     int `json:"id"`
	Weight int `json:"weight" validate:"gte=1,lte=1000000"`
	Value  int `json:"value" validate:"gte=0"`
}

type KnapsackInput struct {
	Capacity int    `json:"capacity" validate:"gte=0,lte=5000"`
	Items    []Item `json:"items" validate:"max=200,dive"`
}

type CoinChangeInput struct {
	Amount int   `json:"amount" validate:"gte=0,lte=10000"`
	Coins  []int `json:"coins" validate:"required,min=1,max=50,dive,gte=1"`
}

type Interval struct {
	ID    int `json:"id"`
	Start int `json:"start"`
	End   int `json:"end" validate:"gtefield=Start"`
}

type IntervalSchedulingInput struct {
	Intervals []Interval `json:"intervals" validate:"max=1000,dive"`
}

type MatrixChainInput struct {
	Dimensions []int `json:"dimensions" validate:"required,min=2,max=51,dive,gte=1,lte=100000"`
}

type HuffmanInput struct {
	Text string `json:"text" validate:"max=10000"`
}

type LCSInput struct {
	Text1 string `json:"text1" validate:"max=1000"`
	Text2 string `json:"text2" validate:"max=1000"`
}

type EditDistanceInput struct {
	Text1 string `json:"text1" validate:"max=1000"`
	Text2 string `json:"text2" validate:"max=1000"`
}

type LISInput struct {
	Sequence []int `json:"sequence" validate:"max=1000"`
}

type RodCuttingInput struct {
	Length int   `json:"length" validate:"gte=0,lte=2000"`
	Prices []int `json:"prices" validate:"max=2000,dive,gte=0"`
}

// Graph is a weighted adjacency mapping node → neighbour → weight.
type Graph map[string]map[string]float64

// GraphInput is shared by Dijkstra, Prim and Kruskal.
type GraphInput struct {
	Graph     Graph  `json:"graph" validate:"required"`
	StartNode string `json:"start_node"`
}
