package bigarray

import (
	"github.com/govalues/bignum"
)

// node is a segment of the tree covering leaves [lo, hi].
// An absent node covers no live elements.
// If pending is set, agg already reflects the assignment of *pending to
// every leaf of the segment, but the children have not been updated yet.
type node struct {
	agg     bignum.Int
	present bool
	pending *bignum.Int
	lo, hi  int
}

// change is a journal record holding the previous state of a node.
type change struct {
	i int
	n node
}

// tree is a segment tree over [0, capacity).
// Nodes are stored in heap order starting from index 1.
// Every write to an existing tree is journaled, so that an operation
// failing halfway can be rolled back.
type tree struct {
	nodes   []node
	combine Combine
	journal []change
}

// newTree builds a tree over [0, capacity) with leaves taken from data.
// Leaves at and beyond len(data) are absent.
func newTree(data []bignum.Int, capacity int, c Combine) (*tree, error) {
	t := &tree{
		nodes:   make([]node, 4*capacity),
		combine: c,
	}
	if err := t.build(1, 0, capacity-1, data); err != nil {
		return nil, err
	}
	t.commit()
	return t, nil
}

func (t *tree) build(i, lo, hi int, data []bignum.Int) error {
	n := &t.nodes[i]
	n.lo, n.hi = lo, hi
	if lo == hi {
		if lo < len(data) {
			n.agg, n.present = data[lo], true
		}
		return nil
	}
	mid := lo + (hi-lo)/2
	if err := t.build(2*i, lo, mid, data); err != nil {
		return err
	}
	if err := t.build(2*i+1, mid+1, hi, data); err != nil {
		return err
	}
	return t.pull(i)
}

// atomic runs f and rolls back every node written by f if it fails.
func (t *tree) atomic(f func() error) error {
	t.commit()
	if err := f(); err != nil {
		t.rollback()
		return err
	}
	t.commit()
	return nil
}

func (t *tree) write(i int, n node) {
	t.journal = append(t.journal, change{i: i, n: t.nodes[i]})
	t.nodes[i] = n
}

func (t *tree) commit() {
	clear(t.journal)
	t.journal = t.journal[:0]
}

func (t *tree) rollback() {
	for k := len(t.journal) - 1; k >= 0; k-- {
		c := t.journal[k]
		t.nodes[c.i] = c.n
	}
	t.commit()
}

// merge combines the aggregates of two sibling nodes, skipping absent ones.
func (t *tree) merge(l, r *node) (bignum.Int, bool, error) {
	switch {
	case l.present && r.present:
		z, err := t.combine(l.agg, r.agg)
		if err != nil {
			return bignum.Int{}, false, err
		}
		return z, true, nil
	case l.present:
		return l.agg, true, nil
	case r.present:
		return r.agg, true, nil
	}
	return bignum.Int{}, false, nil
}

// pull recomputes node i from its children.
func (t *tree) pull(i int) error {
	agg, present, err := t.merge(&t.nodes[2*i], &t.nodes[2*i+1])
	if err != nil {
		return err
	}
	n := t.nodes[i]
	n.agg, n.present, n.pending = agg, present, nil
	t.write(i, n)
	return nil
}

// fill assigns v to every leaf of node i.
func (t *tree) fill(i int, v bignum.Int) error {
	n := t.nodes[i]
	agg, err := repeat(t.combine, v, n.hi-n.lo+1)
	if err != nil {
		return err
	}
	n.agg, n.present, n.pending = agg, true, nil
	if n.lo != n.hi {
		n.pending = &v
	}
	t.write(i, n)
	return nil
}

// pushDown moves a pending assignment of node i to its children.
func (t *tree) pushDown(i int) error {
	n := t.nodes[i]
	if n.pending == nil {
		return nil
	}
	v := *n.pending
	if err := t.fill(2*i, v); err != nil {
		return err
	}
	if err := t.fill(2*i+1, v); err != nil {
		return err
	}
	n.pending = nil
	t.write(i, n)
	return nil
}

// set replaces the leaf at pos.
func (t *tree) set(pos int, v bignum.Int) error {
	return t.atomic(func() error {
		return t.update(1, pos, v, true)
	})
}

// remove marks the leaf at pos as absent.
func (t *tree) remove(pos int) error {
	return t.atomic(func() error {
		return t.update(1, pos, bignum.Int{}, false)
	})
}

func (t *tree) update(i, pos int, v bignum.Int, present bool) error {
	n := t.nodes[i]
	if n.lo == n.hi {
		n.agg, n.present = v, present
		t.write(i, n)
		return nil
	}
	if err := t.pushDown(i); err != nil {
		return err
	}
	child := 2 * i
	if pos > t.nodes[child].hi {
		child++
	}
	if err := t.update(child, pos, v, present); err != nil {
		return err
	}
	return t.pull(i)
}

// assign replaces every leaf in [lo, hi].
// The leaves must be present.
func (t *tree) assign(lo, hi int, v bignum.Int) error {
	return t.atomic(func() error {
		return t.assignRange(1, lo, hi, v)
	})
}

func (t *tree) assignRange(i, lo, hi int, v bignum.Int) error {
	n := t.nodes[i]
	switch {
	case hi < n.lo || n.hi < lo:
		return nil
	case lo <= n.lo && n.hi <= hi:
		return t.fill(i, v)
	}
	if err := t.pushDown(i); err != nil {
		return err
	}
	if err := t.assignRange(2*i, lo, hi, v); err != nil {
		return err
	}
	if err := t.assignRange(2*i+1, lo, hi, v); err != nil {
		return err
	}
	return t.pull(i)
}

// query returns the aggregate of the present leaves in [lo, hi].
// It does not modify the tree.
func (t *tree) query(i, lo, hi int) (bignum.Int, bool, error) {
	n := &t.nodes[i]
	switch {
	case hi < n.lo || n.hi < lo || !n.present:
		return bignum.Int{}, false, nil
	case lo <= n.lo && n.hi <= hi:
		return n.agg, true, nil
	case n.pending != nil:
		z, err := repeat(t.combine, *n.pending, min(hi, n.hi)-max(lo, n.lo)+1)
		if err != nil {
			return bignum.Int{}, false, err
		}
		return z, true, nil
	}
	l := node{}
	var err error
	l.agg, l.present, err = t.query(2*i, lo, hi)
	if err != nil {
		return bignum.Int{}, false, err
	}
	r := node{}
	r.agg, r.present, err = t.query(2*i+1, lo, hi)
	if err != nil {
		return bignum.Int{}, false, err
	}
	return t.merge(&l, &r)
}
