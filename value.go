package jetjson

import "strings"

// Value is a lazy handle over one AST node: a kind tag, a node index, and
// borrowed references to the node table and the input bytes. Nothing is
// decoded at construction; materialization happens on request and caches at
// most one decoded representation per handle.
//
// Values are loaned from their Context's pool and stay valid until the next
// Parse call on that Context or Context.Close. A nil *Value is inert:
// predicates return false, Size is 0, and the kind-checked accessors that
// return an error (Object, Int64, Decoded, At, Stream, ...) fail with a
// TypeMismatchError. Object lookups report the key as absent instead: Get
// and the typed getters return nil (or false) with no error. Interface
// returns nil and WriteTo writes null.
type Value struct {
	store *nodeStore
	src   []byte
	ctx   *Context
	node  int32
	kind  Kind

	// pooled marks handles that return to the free list on recall;
	// overflow loans beyond the pool cap are discarded instead.
	pooled bool

	// Single-slot caches. Cleared on recall.
	sizeCache  int32  // container child count, -1 unknown
	lastField  int32  // object: field index of the last Get hit
	lastHash   uint32 // object: key hash of the last Get hit
	lastIdx    int32  // array: index of the last At hit
	lastNode   int32  // array: node of the last At hit
	decoded    string // string: decoded form
	hasDecoded bool
	numTag     uint8 // number: 0 empty, 1 int64, 2 float64
	numI       int64
	numF       float64
}

// init points the handle at a node and clears every cache slot.
func (v *Value) init(ctx *Context, node int32) {
	v.store = &ctx.store
	v.src = ctx.src
	v.ctx = ctx
	v.node = node
	v.kind = ctx.store.kinds[node]
	v.sizeCache = -1
	v.lastField = noNode
	v.lastHash = 0
	v.lastIdx = -1
	v.lastNode = noNode
	v.decoded = ""
	v.hasDecoded = false
	v.numTag = 0
}

// clear drops every borrowed reference and cache slot so a pooled handle
// holds nothing while on the free list.
func (v *Value) clear() {
	v.store = nil
	v.src = nil
	v.ctx = nil
	v.node = noNode
	v.kind = KindInvalid
	v.sizeCache = -1
	v.lastField = noNode
	v.lastHash = 0
	v.lastIdx = -1
	v.lastNode = noNode
	v.decoded = ""
	v.hasDecoded = false
	v.numTag = 0
	v.numI = 0
	v.numF = 0
}

// Kind returns the node kind, or KindInvalid for a nil handle.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindInvalid
	}

	return v.kind
}

// IsObject reports whether the node is an object.
func (v *Value) IsObject() bool { return v.Kind() == KindObject }

// IsArray reports whether the node is an array.
func (v *Value) IsArray() bool { return v.Kind() == KindArray }

// IsString reports whether the node is a string.
func (v *Value) IsString() bool { return v.Kind() == KindString }

// IsNumber reports whether the node is a number.
func (v *Value) IsNumber() bool { return v.Kind() == KindNumber }

// IsBool reports whether the node is true or false.
func (v *Value) IsBool() bool {
	k := v.Kind()

	return k == KindTrue || k == KindFalse
}

// IsNull reports whether the node is null.
func (v *Value) IsNull() bool { return v.Kind() == KindNull }

// Object returns v type-checked as an object.
func (v *Value) Object() (*Value, error) { return v.as(KindObject) }

// Array returns v type-checked as an array.
func (v *Value) Array() (*Value, error) { return v.as(KindArray) }

// Str returns v type-checked as a string.
func (v *Value) Str() (*Value, error) { return v.as(KindString) }

// Number returns v type-checked as a number.
func (v *Value) Number() (*Value, error) { return v.as(KindNumber) }

func (v *Value) as(want Kind) (*Value, error) {
	if v.Kind() != want {
		return nil, &TypeMismatchError{Want: want, Got: v.Kind()}
	}

	return v, nil
}

// Bool materializes a boolean node.
func (v *Value) Bool() (bool, error) {
	switch v.Kind() {
	case KindTrue:
		return true, nil
	case KindFalse:
		return false, nil
	}

	return false, &TypeMismatchError{Want: KindTrue, Got: v.Kind()}
}

// Raw returns the node's raw byte span in the input: a string's contents
// without quotes, a number's digits, a container including its delimiters.
func (v *Value) Raw() []byte {
	if v == nil {
		return nil
	}

	return v.src[v.store.starts[v.node]:v.store.ends[v.node]]
}

// Span returns the node's [start, end) byte offsets in the input.
func (v *Value) Span() (start, end int) {
	if v == nil {
		return 0, 0
	}

	return int(v.store.starts[v.node]), int(v.store.ends[v.node])
}

// Size returns the number of object members or array elements, walking the
// sibling chain once and caching the count. Non-containers have size 0.
func (v *Value) Size() int {
	if v == nil || (v.kind != KindObject && v.kind != KindArray) {
		return 0
	}

	if v.sizeCache < 0 {
		v.sizeCache = int32(v.store.childCount(v.node))
	}

	return int(v.sizeCache)
}

// child borrows a view over a child node.
func (v *Value) child(node int32) *Value {
	return v.ctx.borrowValue(node)
}

// Interface materializes the subtree as ordinary Go values: map[string]any,
// []any, string, int64 or float64, bool, and nil. Unlike the lazy
// accessors, the result owns its memory and survives Context reuse.
func (v *Value) Interface() (any, error) {
	if v == nil {
		return nil, nil
	}

	return v.materialize(v.node)
}

func (v *Value) materialize(node int32) (any, error) {
	s := v.store

	switch s.kinds[node] {
	case KindObject:
		m := make(map[string]any, s.childCount(node))

		for f := s.firstChild[node]; f != noNode; f = s.nextSibling[f] {
			key := s.firstChild[f]

			name, err := v.decodeNode(key)
			if err != nil {
				return nil, err
			}

			val, err := v.materialize(s.nextSibling[key])
			if err != nil {
				return nil, err
			}

			if _, dup := m[name]; !dup {
				// First match wins, same as Get.
				m[name] = val
			}
		}

		return m, nil

	case KindArray:
		out := make([]any, 0, s.childCount(node))

		for c := s.firstChild[node]; c != noNode; c = s.nextSibling[c] {
			val, err := v.materialize(c)
			if err != nil {
				return nil, err
			}

			out = append(out, val)
		}

		return out, nil

	case KindString:
		dec, err := v.decodeNode(node)
		if err != nil {
			return nil, err
		}

		return dec, nil

	case KindNumber:
		raw := v.src[s.starts[node]:s.ends[node]]
		if isIntegerBytes(raw) {
			if n, err := parseInt64(raw); err == nil {
				return n, nil
			}
		}

		f, err := parseFloat64(raw)
		if err != nil {
			return nil, err
		}

		return f, nil

	case KindTrue:
		return true, nil
	case KindFalse:
		return false, nil
	}

	return nil, nil
}

// decodeNode decodes a string node to an owned Go string that survives
// Context reuse.
func (v *Value) decodeNode(node int32) (string, error) {
	s, err := v.borrowNodeString(node)
	if err != nil {
		return "", err
	}

	return strings.Clone(s), nil
}

// hashName computes the field-name hash of s: h = 31*h + cp over UTF-16
// code units, matching the tokenizer's live hash for unescaped names.
func hashName(s string) uint32 {
	var h uint32

	for _, r := range s {
		if r > 0xFFFF {
			h = 31*h + uint32(0xD800+((r-0x10000)>>10))
			h = 31*h + uint32(0xDC00+((r-0x10000)&0x3FF))
		} else {
			h = 31*h + uint32(r)
		}
	}

	return h
}
