package pathfind

// searchNode is one entry in the open set. g/h/f are the usual A* scores;
// index is the node's position in the heap slice, maintained by the heap
// methods to support decrease-key via heap.Fix.
type searchNode struct {
	x, y  int
	g     float64
	h     float64
	f     float64
	index int
}

// nodeHeap is a binary min-heap ordered by the total order (f, h, y, x),
// so that results are byte-identical across runs regardless of insertion
// order or map iteration.
type nodeHeap []*searchNode

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.h != b.h {
		return a.h < b.h
	}
	if a.y != b.y {
		return a.y < b.y
	}
	return a.x < b.x
}

func (h nodeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *nodeHeap) Push(x any) {
	n := x.(*searchNode)
	n.index = len(*h)
	*h = append(*h, n)
}

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.index = -1
	*h = old[:n-1]
	return node
}
