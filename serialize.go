package jetjson

// WriteTo re-serializes the subtree under v into w, preserving member order
// and the exact source form of numbers. String values are re-escaped from
// their decoded form, so the output is always strictly escaped regardless
// of which legal variant the input used.
func (v *Value) WriteTo(w *Writer) error {
	if v == nil {
		w.WriteNull()

		return w.Err()
	}

	if err := v.writeNode(w, v.node); err != nil {
		return err
	}

	return w.Err()
}

func (v *Value) writeNode(w *Writer, node int32) error {
	s := v.store

	switch s.kinds[node] {
	case KindObject:
		w.ObjectStart()

		for f := s.firstChild[node]; f != noNode; f = s.nextSibling[f] {
			key := s.firstChild[f]

			name, err := v.borrowNodeString(key)
			if err != nil {
				return err
			}

			w.FieldName(name)

			if err := v.writeNode(w, s.nextSibling[key]); err != nil {
				return err
			}
		}

		w.ObjectEnd()

	case KindArray:
		w.ArrayStart()

		for c := s.firstChild[node]; c != noNode; c = s.nextSibling[c] {
			if err := v.writeNode(w, c); err != nil {
				return err
			}
		}

		w.ArrayEnd()

	case KindString:
		dec, err := v.borrowNodeString(node)
		if err != nil {
			return err
		}

		w.WriteString(dec)

	case KindNumber:
		w.WriteRaw(v.src[s.starts[node]:s.ends[node]])

	case KindTrue:
		w.WriteBool(true)

	case KindFalse:
		w.WriteBool(false)

	case KindNull:
		w.WriteNull()
	}

	return nil
}

// borrowNodeString returns the decoded form of a string node without
// copying when the raw bytes contain no escapes. The result borrows either
// the input or the Context's decode scratch and must be consumed before the
// next decode.
func (v *Value) borrowNodeString(node int32) (string, error) {
	s := v.store
	raw := v.src[s.starts[node]:s.ends[node]]

	if s.flags[node]&flagStringEscaped == 0 {
		return bytesString(raw), nil
	}

	buf, err := decodeAppend(v.ctx.decodeBuf[:0], raw, int(s.starts[node]))
	v.ctx.decodeBuf = buf

	if err != nil {
		return "", err
	}

	return bytesString(buf), nil
}
