package jetjson

import "iter"

// Array view operations. Element access is linear in the sibling chain by
// design; the single-slot position cache makes monotonically increasing
// access O(1) per step. Random indexing into large arrays is intentionally
// not optimized: use Items or Stream.

// At returns the element at index i. Out-of-range indices are an
// IndexError; calling At on a non-array is a TypeMismatchError.
func (v *Value) At(i int) (*Value, error) {
	if v.Kind() != KindArray {
		return nil, &TypeMismatchError{Want: KindArray, Got: v.Kind()}
	}

	if i < 0 {
		return nil, &IndexError{Index: i, Size: v.Size()}
	}

	s := v.store
	node := s.firstChild[v.node]
	pos := 0

	if v.lastNode != noNode && int(v.lastIdx) <= i {
		node = v.lastNode
		pos = int(v.lastIdx)
	}

	for pos < i && node != noNode {
		node = s.nextSibling[node]
		pos++
	}

	if node == noNode {
		return nil, &IndexError{Index: i, Size: v.Size()}
	}

	v.lastIdx = int32(pos)
	v.lastNode = node

	return v.child(node), nil
}

// Items iterates the array's elements as views in source order.
func (v *Value) Items() iter.Seq[*Value] {
	return func(yield func(*Value) bool) {
		if v == nil || v.kind != KindArray {
			return
		}

		s := v.store

		for c := s.firstChild[v.node]; c != noNode; c = s.nextSibling[c] {
			if !yield(v.child(c)) {
				return
			}
		}
	}
}

// Stream returns a pooled cursor over the array's elements. The cursor
// walks the sibling chain directly and never materializes the elements
// ahead of time; it is recalled together with all other loans at the next
// parse on the owning Context.
func (v *Value) Stream() (*ArrayCursor, error) {
	if v.Kind() != KindArray {
		return nil, &TypeMismatchError{Want: KindArray, Got: v.Kind()}
	}

	return v.ctx.borrowCursor(v.store.firstChild[v.node]), nil
}

// ArrayCursor streams an array's elements one view at a time.
type ArrayCursor struct {
	ctx    *Context
	cur    int32
	pooled bool
}

func (c *ArrayCursor) init(ctx *Context, first int32) {
	c.ctx = ctx
	c.cur = first
}

// HasNext reports whether another element remains.
func (c *ArrayCursor) HasNext() bool { return c.cur != noNode }

// Next returns a view over the next element, or ok=false when the array is
// exhausted.
func (c *ArrayCursor) Next() (*Value, bool) {
	if c.cur == noNode {
		return nil, false
	}

	v := c.ctx.borrowValue(c.cur)
	c.cur = c.ctx.store.nextSibling[c.cur]

	return v, true
}
