package edge

import (
	"github.com/google/btree"
	"github.com/mikenye/polyclip/point"
)

// qItem groups every edge that starts (has its left endpoint) at the
// same lattice point, so a whole shared-vertex bundle pops as one
// item rather than keying the tree on individual edges.
type qItem struct {
	at    point.Point
	edges []Edge
}

func qItemLess(a, b qItem) bool {
	return a.at.Less(b.at)
}

// Queue is the sweep's pending-edge priority queue: a
// [btree.BTreeG]-backed ordered map from left-endpoint to the edges
// starting there, ascending in (x, y) order.
type Queue struct {
	tree      *btree.BTreeG[qItem]
	nextIndex int
}

// NewQueue returns an empty Queue.
func NewQueue() *Queue {
	return &Queue{tree: btree.NewG(2, qItemLess)}
}

// MintIndex returns a fresh, strictly increasing edge index. The sweep
// calls this when splitting an edge at an intersection point so the two
// resulting pieces get their own stable identity.
func (q *Queue) MintIndex() int {
	i := q.nextIndex
	q.nextIndex++
	return i
}

// Insert adds e to the queue, keyed by its left endpoint. If another
// edge already starts at that exact point, e joins its group rather
// than creating a new one.
func (q *Queue) Insert(e Edge) {
	at := e.Segment().Left()
	existing, found := q.tree.Get(qItem{at: at})
	if !found {
		q.tree.ReplaceOrInsert(qItem{at: at, edges: []Edge{e}})
		return
	}
	existing.edges = append(existing.edges, e)
	q.tree.ReplaceOrInsert(existing)
}

// Len returns the number of distinct left-endpoints still pending.
func (q *Queue) Len() int {
	return q.tree.Len()
}

// Minted returns how many edge indices have been handed out so far —
// the total number of edges created for the operation, splits
// included.
func (q *Queue) Minted() int {
	return q.nextIndex
}

// IsEmpty reports whether the queue has no pending edges.
func (q *Queue) IsEmpty() bool {
	return q.tree.Len() == 0
}

// NextX returns the x-coordinate of the next pending batch — the
// sweep's "next_x", telling it where to advance the sweep line to next
// — and false if the queue is empty.
func (q *Queue) NextX() (point.Coordinate, bool) {
	item, ok := q.tree.Min()
	if !ok {
		return 0, false
	}
	return item.at.X(), true
}

// PopBatch removes and returns every edge whose left endpoint shares
// the queue's minimum x-coordinate, ordered by increasing y within that
// column. Processing a whole vertical column at once, rather than one
// point at a time, is what lets the scope insert same-x edges in a
// single consistent pass.
func (q *Queue) PopBatch() []Edge {
	minItem, ok := q.tree.Min()
	if !ok {
		return nil
	}
	batchX := minItem.at.X()

	var toDelete []qItem
	var batch []Edge
	q.tree.AscendGreaterOrEqual(qItem{at: minItem.at}, func(item qItem) bool {
		if item.at.X() != batchX {
			return false
		}
		toDelete = append(toDelete, item)
		batch = append(batch, item.edges...)
		return true
	})
	for _, item := range toDelete {
		q.tree.Delete(item)
	}
	return batch
}
