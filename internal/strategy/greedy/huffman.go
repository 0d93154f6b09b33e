package greedy

import (
	"container/heap"
	"fmt"

	"github.com/awmpietro/algoviz/internal/model"
	"github.com/awmpietro/algoviz/internal/trace"
)

const noChild = -1

// hnode lives in an arena; its id is its arena index and grows with
// construction order.
type hnode struct {
	id          int
	symbol      string
	leaf        bool
	freq        int
	left, right int
}

type nodeQueue struct {
	arena []hnode
	ids   []int
}

func (q *nodeQueue) Len() int { return len(q.ids) }
func (q *nodeQueue) Less(i, j int) bool {
	a, b := q.arena[q.ids[i]], q.arena[q.ids[j]]
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	return a.id < b.id
}
func (q *nodeQueue) Swap(i, j int) { q.ids[i], q.ids[j] = q.ids[j], q.ids[i] }
func (q *nodeQueue) Push(x any)   { q.ids = append(q.ids, x.(int)) }
func (q *nodeQueue) Pop() any {
	old := q.ids
	n := len(old)
	id := old[n-1]
	q.ids = old[:n-1]
	return id
}

func (q *nodeQueue) add(n hnode) int {
	n.id = len(q.arena)
	q.arena = append(q.arena, n)
	return n.id
}

// Huffman builds an optimal prefix code over the runes of the text. The
// result value is the total number of encoded bits.
func Huffman(in model.HuffmanInput) trace.Result {
	return trace.Run(func(rec *trace.Recorder) trace.Outcome {
		complexity := trace.Complexity{
			Time:  "O(N log K) where N is text length",
			Space: "O(K) where K is unique chars",
		}
		if in.Text == "" {
			return trace.Outcome{Complexity: trace.Complexity{Time: "O(1)", Space: "O(1)"}}
		}

		symbols := make([]string, 0)
		freq := make(map[string]int)
		for _, r := range in.Text {
			s := string(r)
			if _, seen := freq[s]; !seen {
				symbols = append(symbols, s)
			}
			freq[s]++
		}

		rec.Record(trace.KindInit, fmt.Sprintf("Calculated frequencies for text: '%s'", in.Text), trace.Payload{
			"frequencies": freq, "order": symbols,
		})

		q := &nodeQueue{}
		leaves := make([]map[string]any, 0, len(symbols))
		for _, s := range symbols {
			id := q.add(hnode{symbol: s, leaf: true, freq: freq[s], left: noChild, right: noChild})
			q.ids = append(q.ids, id)
			leaves = append(leaves, map[string]any{"id": id, "char": s, "freq": freq[s]})
		}
		heap.Init(q)

		rec.Record(trace.KindInit, "Initialized priority queue with leaf nodes", trace.Payload{"nodes": leaves})

		for q.Len() > 1 {
			l := q.arena[heap.Pop(q).(int)]
			r := q.arena[heap.Pop(q).(int)]

			rec.Record(trace.KindHighlight,
				fmt.Sprintf("Selected two smallest nodes: '%s' (%d) and '%s' (%d)", label(l), l.freq, label(r), r.freq),
				trace.Payload{"left_id": l.id, "right_id": r.id, "left_freq": l.freq, "right_freq": r.freq})

			merged := q.add(hnode{freq: l.freq + r.freq, left: l.id, right: r.id})
			heap.Push(q, merged)

			rec.Record(trace.KindUpdate,
				fmt.Sprintf("Merged into new internal node with frequency %d", l.freq+r.freq),
				trace.Payload{
					"new_node_id": merged, "freq": l.freq + r.freq,
					"left_child_id": l.id, "right_child_id": r.id,
					"remaining_count": q.Len(),
				})
		}

		codes := generateCodes(q.arena, q.ids[0])
		rec.Record(trace.KindSolution, "Huffman codes generated", trace.Payload{"codes": codes})

		bits := 0
		for s, code := range codes {
			bits += freq[s] * len(code)
		}

		return trace.Outcome{Value: float64(bits), Complexity: complexity}
	})
}

func label(n hnode) string {
	if n.leaf {
		return n.symbol
	}
	return "Internal"
}

// generateCodes walks the tree depth-first with an explicit stack. A tree
// made of a single leaf gets the code "0".
func generateCodes(arena []hnode, root int) map[string]string {
	codes := make(map[string]string)
	if arena[root].leaf {
		codes[arena[root].symbol] = "0"
		return codes
	}

	type frame struct {
		id   int
		code string
	}
	stack := []frame{{id: root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := arena[f.id]
		if n.leaf {
			codes[n.symbol] = f.code
			continue
		}
		if n.right != noChild {
			stack = append(stack, frame{id: n.right, code: f.code + "1"})
		}
		if n.left != noChild {
			stack = append(stack, frame{id: n.left, code: f.code + "0"})
		}
	}
	return codes
}
