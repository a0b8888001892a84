package jetjson

// noNode is the null link in the node table.
const noNode = int32(-1)

const initialNodeCap = 64

// nodeStore is the flat AST: one structure-of-arrays table holding every
// node of the current document. Nodes are identified by dense indices into
// the parallel columns. The tree shape is first-child / next-sibling;
// lastChild is a private tail pointer that makes addChild O(1) and must
// always equal the tail of the firstChild/nextSibling chain.
//
// The store is reset in place between parses and never shrinks.
type nodeStore struct {
	kinds       []Kind
	starts      []int32
	ends        []int32
	firstChild  []int32
	nextSibling []int32
	lastChild   []int32
	flags       []uint8
	hashes      []uint32

	rootIdx int32
}

// grow ensures capacity for at least n more nodes, doubling as needed.
func (s *nodeStore) grow(n int) {
	need := len(s.kinds) + n
	if need <= cap(s.kinds) {
		return
	}

	c := cap(s.kinds) * 2
	if c < need {
		c = need
	}

	s.kinds = append(make([]Kind, 0, c), s.kinds...)
	s.starts = append(make([]int32, 0, c), s.starts...)
	s.ends = append(make([]int32, 0, c), s.ends...)
	s.firstChild = append(make([]int32, 0, c), s.firstChild...)
	s.nextSibling = append(make([]int32, 0, c), s.nextSibling...)
	s.lastChild = append(make([]int32, 0, c), s.lastChild...)
	s.flags = append(make([]uint8, 0, c), s.flags...)
	s.hashes = append(make([]uint32, 0, c), s.hashes...)
}

// len returns the number of nodes in the table.
func (s *nodeStore) len() int { return len(s.kinds) }

// addNode appends a node with all links initialized to noNode and returns
// its index.
func (s *nodeStore) addNode(k Kind, start, end int32, fl uint8, hash uint32) int32 {
	if len(s.kinds) == cap(s.kinds) {
		s.grow(1)
	}

	idx := int32(len(s.kinds))
	s.kinds = append(s.kinds, k)
	s.starts = append(s.starts, start)
	s.ends = append(s.ends, end)
	s.firstChild = append(s.firstChild, noNode)
	s.nextSibling = append(s.nextSibling, noNode)
	s.lastChild = append(s.lastChild, noNode)
	s.flags = append(s.flags, fl)
	s.hashes = append(s.hashes, hash)

	return idx
}

func (s *nodeStore) setEnd(idx, end int32) { s.ends[idx] = end }

// addChild appends child to parent's child list in O(1) via the lastChild
// tail pointer.
func (s *nodeStore) addChild(parent, child int32) {
	tail := s.lastChild[parent]
	if tail == noNode {
		s.firstChild[parent] = child
	} else {
		s.nextSibling[tail] = child
	}

	s.lastChild[parent] = child
}

func (s *nodeStore) root() int32       { return s.rootIdx }
func (s *nodeStore) setRoot(idx int32) { s.rootIdx = idx }

// reset empties the table for the next parse, retaining capacity.
func (s *nodeStore) reset() {
	s.kinds = s.kinds[:0]
	s.starts = s.starts[:0]
	s.ends = s.ends[:0]
	s.firstChild = s.firstChild[:0]
	s.nextSibling = s.nextSibling[:0]
	s.lastChild = s.lastChild[:0]
	s.flags = s.flags[:0]
	s.hashes = s.hashes[:0]
	s.rootIdx = noNode
}

// childCount walks the sibling chain once.
func (s *nodeStore) childCount(idx int32) int {
	n := 0
	for c := s.firstChild[idx]; c != noNode; c = s.nextSibling[c] {
		n++
	}

	return n
}
