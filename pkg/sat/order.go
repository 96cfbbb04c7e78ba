package sat

const activityCeiling = 1e100

// order is the VSIDS branching heuristic: a binary max-heap of variables
// keyed by activity, ties broken by lowest variable index so repeated runs
// decide identically. Assigned variables leave the heap lazily on pop and
// return when backtracking unassigns them.
type order struct {
	activity []float64
	varInc   float64
	varDecay float64
	heap     []int32 // 0-based variable indices, heap-ordered
	pos      []int32 // position of each variable in heap; -1 when absent
	phases   []bool  // last assigned polarity; negative initially
}

func newOrder(numVars int, decay float64) *order {
	o := &order{
		activity: make([]float64, numVars),
		varInc:   1.0,
		varDecay: decay,
		heap:     make([]int32, numVars),
		pos:      make([]int32, numVars),
		phases:   make([]bool, numVars),
	}
	for v := range numVars {
		o.heap[v] = int32(v)
		o.pos[v] = int32(v)
	}
	return o
}

// before reports whether variable a is popped before variable b.
func (o *order) before(a, b int32) bool {
	if o.activity[a] != o.activity[b] {
		return o.activity[a] > o.activity[b]
	}
	return a < b
}

func (o *order) push(v int32) {
	if o.pos[v] >= 0 {
		return
	}
	o.pos[v] = int32(len(o.heap))
	o.heap = append(o.heap, v)
	o.siftUp(int(o.pos[v]))
}

func (o *order) pop() int32 {
	v := o.heap[0]
	last := len(o.heap) - 1
	o.heap[0] = o.heap[last]
	o.pos[o.heap[0]] = 0
	o.heap = o.heap[:last]
	o.pos[v] = -1
	if len(o.heap) > 1 {
		o.siftDown(0)
	}
	return v
}

func (o *order) empty() bool {
	return len(o.heap) == 0
}

func (o *order) siftUp(i int) {
	v := o.heap[i]
	for i > 0 {
		p := (i - 1) / 2
		if !o.before(v, o.heap[p]) {
			break
		}
		o.heap[i] = o.heap[p]
		o.pos[o.heap[i]] = int32(i)
		i = p
	}
	o.heap[i] = v
	o.pos[v] = int32(i)
}

func (o *order) siftDown(i int) {
	v := o.heap[i]
	for {
		child := 2*i + 1
		if child >= len(o.heap) {
			break
		}
		if r := child + 1; r < len(o.heap) && o.before(o.heap[r], o.heap[child]) {
			child = r
		}
		if !o.before(o.heap[child], v) {
			break
		}
		o.heap[i] = o.heap[child]
		o.pos[o.heap[i]] = int32(i)
		i = child
	}
	o.heap[i] = v
	o.pos[v] = int32(i)
}

// bump raises a variable's activity by the current increment, rescaling
// every score and the increment itself when the ceiling is hit.
func (o *order) bump(v int32) {
	o.activity[v] += o.varInc
	if o.activity[v] > activityCeiling {
		for i := range o.activity {
			o.activity[i] *= 1 / activityCeiling
		}
		o.varInc *= 1 / activityCeiling
	}
	if o.pos[v] >= 0 {
		o.siftUp(int(o.pos[v]))
	}
}

// decay grows the bump increment, which decays every stored score
// relatively without touching them.
func (o *order) decay() {
	o.varInc *= 1 / o.varDecay
}
