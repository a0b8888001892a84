package jetjson

import "iter"

// Object view operations. Every method in this file treats v as an object;
// lookups and typed getters on a non-object (or nil) receiver return the
// absent result rather than an error. Typed getters report a
// TypeMismatchError only for a present member of another kind.

// Get returns the value of the first member whose decoded key equals key,
// or nil when the key is absent (absence is not an error). The scan is
// linear in source order: each member's precomputed name hash is compared
// first, and the bytes only on a hash hit. Members whose raw name contains
// escapes skip the hash filter and compare decoded. A repeated Get of the
// same key is O(1) via a single-slot (hash, member) cache.
func (v *Value) Get(key string) *Value {
	if v == nil || v.kind != KindObject {
		return nil
	}

	s := v.store
	h := hashName(key)

	if v.lastField != noNode && v.lastHash == h {
		k := s.firstChild[v.lastField]
		if v.keyEquals(k, key) {
			return v.child(s.nextSibling[k])
		}
	}

	for f := s.firstChild[v.node]; f != noNode; f = s.nextSibling[f] {
		k := s.firstChild[f]

		if s.flags[k]&flagStringEscaped == 0 && s.hashes[k] != h {
			continue
		}

		if v.keyEquals(k, key) {
			v.lastField = f
			v.lastHash = h

			return v.child(s.nextSibling[k])
		}
	}

	return nil
}

// keyEquals compares the key node's decoded bytes against key.
func (v *Value) keyEquals(node int32, key string) bool {
	s := v.store
	raw := v.src[s.starts[node]:s.ends[node]]

	if s.flags[node]&flagStringEscaped == 0 {
		return bytesString(raw) == key
	}

	buf, err := decodeAppend(v.ctx.decodeBuf[:0], raw, int(s.starts[node]))
	v.ctx.decodeBuf = buf

	if err != nil {
		return false
	}

	return bytesString(buf) == key
}

// GetObject returns the member value as an object view. Absent keys return
// (nil, nil); a present key of another kind is a TypeMismatchError.
func (v *Value) GetObject(key string) (*Value, error) { return v.getTyped(key, KindObject) }

// GetArray returns the member value as an array view.
func (v *Value) GetArray(key string) (*Value, error) { return v.getTyped(key, KindArray) }

// GetString returns the member value as a string view.
func (v *Value) GetString(key string) (*Value, error) { return v.getTyped(key, KindString) }

// GetNumber returns the member value as a number view.
func (v *Value) GetNumber(key string) (*Value, error) { return v.getTyped(key, KindNumber) }

func (v *Value) getTyped(key string, want Kind) (*Value, error) {
	m := v.Get(key)
	if m == nil {
		return nil, nil
	}

	return m.as(want)
}

// GetBool materializes a boolean member. Absent keys return (false, nil).
func (v *Value) GetBool(key string) (bool, error) {
	m := v.Get(key)
	if m == nil {
		return false, nil
	}

	return m.Bool()
}

// Fields iterates the object's members as (key, value) view pairs in source
// order. Duplicate keys are yielded as often as they appear.
func (v *Value) Fields() iter.Seq2[*Value, *Value] {
	return func(yield func(*Value, *Value) bool) {
		if v == nil || v.kind != KindObject {
			return
		}

		s := v.store

		for f := s.firstChild[v.node]; f != noNode; f = s.nextSibling[f] {
			k := s.firstChild[f]
			if !yield(v.child(k), v.child(s.nextSibling[k])) {
				return
			}
		}
	}
}
