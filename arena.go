package jetjson

// poolInline is the inline free-list capacity per pool; entries beyond it
// spill to a growable overflow table bounded by the pool cap.
const poolInline = 64

// defaultPoolCap bounds the number of handles a pool will ever own.
const defaultPoolCap = 256

// Context is the reusable arena for parsing: one tokenizer, one node store,
// reusable source wrappers, and free lists of view handles and array
// cursors. Each Parse call resets the store in place and recalls every
// handle loaned by the previous call, so a warmed Context parses without
// heap allocation.
//
// A Context is owned by one goroutine at a time. There is no internal
// locking on any path.
type Context struct {
	tok   tokenizer
	store nodeStore
	bsrc  BytesSource
	ssrc  StringSource

	// src holds the contiguous bytes of the current parse; every view
	// loaned from this Context borrows it.
	src []byte

	values  valuePool
	cursors cursorPool

	// decodeBuf is the shared scratch for escape decoding and decoded key
	// comparison.
	decodeBuf []byte
}

// ContextOption configures a [Context].
type ContextOption func(*Context)

// WithPoolCap bounds how many view handles each pool may own. Loans past
// the cap still succeed; they allocate ordinary handles that are discarded
// rather than re-pooled on recall. Values below 1 are clamped to 1.
func WithPoolCap(n int) ContextOption {
	return func(c *Context) {
		if n < 1 {
			n = 1
		}

		c.values.cap = n
		c.cursors.cap = n
	}
}

// NewContext returns a ready-to-use parse context.
func NewContext(opts ...ContextOption) *Context {
	c := &Context{}
	c.store.rootIdx = noNode
	c.store.grow(initialNodeCap)
	c.values.cap = defaultPoolCap
	c.cursors.cap = defaultPoolCap

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Parse tokenizes one complete JSON document from data and returns a view
// over its root. data is borrowed: it must stay immutable while values
// from this parse are in use. All views from the previous Parse on this
// Context are recalled first. The input is carried by the Context's
// reusable byte-slice wrapper, so no source object is allocated per parse.
func (c *Context) Parse(data []byte) (*Value, error) {
	c.bsrc.data = data

	return c.ParseSource(&c.bsrc)
}

// ParseString parses a JSON document from a string without copying it,
// through the Context's reusable string wrapper.
func (c *Context) ParseString(s string) (*Value, error) {
	c.ssrc.s = s

	return c.ParseSource(&c.ssrc)
}

// ParseSource parses from an arbitrary [Source]. Contiguous sources are
// parsed in place; anything else is staged byte-by-byte through a reusable
// scratch buffer so the tokenizer's hot loop always runs over flat bytes.
func (c *Context) ParseSource(src Source) (*Value, error) {
	if b, ok := src.Contiguous(); ok {
		return c.parseBytes(b)
	}

	n := src.Len()
	if cap(c.tok.scratch) < n {
		c.tok.scratch = make([]byte, n)
	}

	buf := c.tok.scratch[:n]
	for i := range n {
		buf[i] = src.ByteAt(i)
	}

	return c.parseBytes(buf)
}

func (c *Context) parseBytes(b []byte) (*Value, error) {
	c.recallAll()
	c.store.reset()
	c.src = b

	if err := c.tok.parse(b, &c.store); err != nil {
		return nil, err
	}

	return c.borrowValue(c.store.root()), nil
}

// Close recalls all outstanding loans and drops the pooled handles and
// buffers. The Context remains usable; the next parse rebuilds its pools.
func (c *Context) Close() {
	c.recallAll()
	c.values = valuePool{cap: c.values.cap}
	c.cursors = cursorPool{cap: c.cursors.cap}
	c.decodeBuf = nil
	c.src = nil
	c.bsrc.data = nil
	c.ssrc.s = ""
}

func (c *Context) recallAll() {
	c.values.recallAll()
	c.cursors.recallAll()
}

// borrowValue loans a view handle over node.
func (c *Context) borrowValue(node int32) *Value {
	v := c.values.borrow()
	v.init(c, node)

	return v
}

// borrowCursor loans an array cursor starting at first.
func (c *Context) borrowCursor(first int32) *ArrayCursor {
	cur := c.cursors.borrow()
	cur.init(c, first)

	return cur
}

// valuePool is a free list of view handles: a small inline array, a
// growable overflow table, and a hard cap. Borrowing past the cap hands
// out a one-shot handle that is dropped on recall instead of re-pooled.
type valuePool struct {
	inline   [poolInline]*Value
	n        int      // filled entries of inline
	overflow []*Value // free entries beyond the inline array
	loaned   []*Value // outstanding loans, recalled at the next parse
	owned    int      // pooled handles ever created; bounded by cap
	cap      int
}

func (p *valuePool) borrow() *Value {
	var v *Value

	switch {
	case len(p.overflow) > 0:
		v = p.overflow[len(p.overflow)-1]
		p.overflow = p.overflow[:len(p.overflow)-1]
	case p.n > 0:
		p.n--
		v = p.inline[p.n]
		p.inline[p.n] = nil
	case p.owned < p.cap:
		v = &Value{pooled: true}
		p.owned++
	default:
		v = &Value{}
	}

	p.loaned = append(p.loaned, v)

	return v
}

func (p *valuePool) recallAll() {
	for i, v := range p.loaned {
		p.loaned[i] = nil

		if !v.pooled {
			continue
		}

		v.clear()

		if p.n < poolInline {
			p.inline[p.n] = v
			p.n++
		} else {
			p.overflow = append(p.overflow, v)
		}
	}

	p.loaned = p.loaned[:0]
}

// cursorPool mirrors valuePool for array cursors.
type cursorPool struct {
	inline   [poolInline]*ArrayCursor
	n        int
	overflow []*ArrayCursor
	loaned   []*ArrayCursor
	owned    int
	cap      int
}

func (p *cursorPool) borrow() *ArrayCursor {
	var cur *ArrayCursor

	switch {
	case len(p.overflow) > 0:
		cur = p.overflow[len(p.overflow)-1]
		p.overflow = p.overflow[:len(p.overflow)-1]
	case p.n > 0:
		p.n--
		cur = p.inline[p.n]
		p.inline[p.n] = nil
	case p.owned < p.cap:
		cur = &ArrayCursor{pooled: true}
		p.owned++
	default:
		cur = &ArrayCursor{}
	}

	p.loaned = append(p.loaned, cur)

	return cur
}

func (p *cursorPool) recallAll() {
	for i, cur := range p.loaned {
		p.loaned[i] = nil

		if !cur.pooled {
			continue
		}

		cur.ctx = nil
		cur.cur = noNode

		if p.n < poolInline {
			p.inline[p.n] = cur
			p.n++
		} else {
			p.overflow = append(p.overflow, cur)
		}
	}

	p.loaned = p.loaned[:0]
}
