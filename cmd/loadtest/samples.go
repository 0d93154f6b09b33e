package main

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/awmpietro/algoviz/internal/model"
)

const sampleGraph = `{"A":{"B":1,"C":4},"B":{"C":2,"D":5},"C":{"D":1}}`

// small are fixed bodies that finish in microseconds.
var small = map[string]string{
	"knapsack":            `{"capacity":50,"items":[{"id":1,"weight":10,"value":60},{"id":2,"weight":20,"value":100},{"id":3,"weight":30,"value":120}]}`,
	"coin-change":         `{"amount":63,"coins":[1,5,10,21,25]}`,
	"interval-scheduling": `{"intervals":[{"id":1,"start":1,"end":4},{"id":2,"start":3,"end":5},{"id":3,"start":0,"end":6},{"id":4,"start":5,"end":7}]}`,
	"lcs":                 `{"text1":"ABCBDAB","text2":"BDCABA"}`,
	"edit-distance":       `{"text1":"kitten","text2":"sitting"}`,
	"lis":                 `{"sequence":[10,9,2,5,3,7,101,18]}`,
	"rod-cutting":         `{"length":8,"prices":[1,5,8,9,10,17,17,20]}`,
	"matrix-chain":        `{"dimensions":[10,30,5,60]}`,
	"huffman":             `{"text":"abracadabra"}`,
	"dijkstra":            `{"graph":` + sampleGraph + `,"start_node":"A"}`,
	"prims":               `{"graph":` + sampleGraph + `}`,
	"kruskals":            `{"graph":` + sampleGraph + `}`,
}

// large builds a body for family sized to fill a good part of the server's
// default trace budget, so the DP tables dominate request time.
func large(family string, rng *rand.Rand) (any, bool) {
	switch family {
	case "knapsack":
		in := model.KnapsackInput{Capacity: 1500, Items: make([]model.Item, 60)}
		for i := range in.Items {
			in.Items[i] = model.Item{ID: i + 1, Weight: 1 + rng.IntN(80), Value: rng.IntN(500)}
		}
		return in, true
	case "coin-change":
		in := model.CoinChangeInput{Amount: 5000, Coins: make([]int, 20)}
		for i := range in.Coins {
			in.Coins[i] = 1 + rng.IntN(200)
		}
		return in, true
	case "lcs":
		return model.LCSInput{Text1: randomText(rng, 300), Text2: randomText(rng, 300)}, true
	case "edit-distance":
		return model.EditDistanceInput{Text1: randomText(rng, 300), Text2: randomText(rng, 300)}, true
	case "lis":
		in := model.LISInput{Sequence: make([]int, 300)}
		for i := range in.Sequence {
			in.Sequence[i] = rng.IntN(10_000)
		}
		return in, true
	case "rod-cutting":
		in := model.RodCuttingInput{Length: 300, Prices: make([]int, 300)}
		for i := range in.Prices {
			in.Prices[i] = (i+1)*3 + rng.IntN(10)
		}
		return in, true
	case "matrix-chain":
		in := model.MatrixChainInput{Dimensions: make([]int, 40)}
		for i := range in.Dimensions {
			in.Dimensions[i] = 5 + rng.IntN(95)
		}
		return in, true
	case "huffman":
		return model.HuffmanInput{Text: randomText(rng, 5000)}, true
	}
	return nil, false
}

func randomText(rng *rand.Rand, n int) string {
	const alphabet = "ACGT"
	var b strings.Builder
	b.Grow(n)
	for range n {
		b.WriteByte(alphabet[rng.IntN(len(alphabet))])
	}
	return b.String()
}

// sampleBody returns the request body for family at size "small" or "large".
// Graph families only have a small body.
func sampleBody(family, size string, seed uint64) ([]byte, error) {
	switch size {
	case "small":
		body, ok := small[family]
		if !ok {
			return nil, fmt.Errorf("no sample body for family %q", family)
		}
		return []byte(body), nil
	case "large":
		in, ok := large(family, rand.New(rand.NewPCG(seed, seed)))
		if !ok {
			return nil, fmt.Errorf("no large sample for family %q", family)
		}
		return json.Marshal(in)
	default:
		return nil, fmt.Errorf("unknown size %q (small|large)", size)
	}
}
