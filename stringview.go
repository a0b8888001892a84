package jetjson

// String view operations. Slice is zero-copy; Decoded materializes on
// demand and caches the result in the view's single decoded slot.

// Slice returns the string node's raw bytes between the quotes, without
// unescaping. Returns nil for non-string nodes.
func (v *Value) Slice() []byte {
	if v.Kind() != KindString {
		return nil
	}

	return v.Raw()
}

// Decoded returns the decoded string, resolving escapes and preserving
// UTF-8. The result is cached, so repeated calls return the identical
// string without re-decoding.
func (v *Value) Decoded() (string, error) {
	if v.Kind() != KindString {
		return "", &TypeMismatchError{Want: KindString, Got: v.Kind()}
	}

	if v.hasDecoded {
		return v.decoded, nil
	}

	s, err := v.decodeNode(v.node)
	if err != nil {
		return "", err
	}

	v.decoded = s
	v.hasDecoded = true

	return s, nil
}

// ParseInt64 interprets the raw string bytes as an integer, for exchange
// APIs that quote their numbers.
func (v *Value) ParseInt64() (int64, error) {
	if v.Kind() != KindString {
		return 0, &TypeMismatchError{Want: KindString, Got: v.Kind()}
	}

	return parseInt64(v.Raw())
}

// ParseFloat64 interprets the raw string bytes as a float.
func (v *Value) ParseFloat64() (float64, error) {
	if v.Kind() != KindString {
		return 0, &TypeMismatchError{Want: KindString, Got: v.Kind()}
	}

	return parseFloat64(v.Raw())
}

// EqualString compares the string node against s without decoding when the
// raw bytes contain no escapes, falling back to a decoded comparison when
// they do. Undecodable nodes compare unequal.
func (v *Value) EqualString(s string) bool {
	if v.Kind() != KindString {
		return false
	}

	raw := v.Raw()
	if v.store.flags[v.node]&flagStringEscaped == 0 {
		return bytesString(raw) == s
	}

	dec, err := v.Decoded()
	if err != nil {
		return false
	}

	return dec == s
}

// EqualBytes is EqualString over a byte slice.
func (v *Value) EqualBytes(b []byte) bool {
	return v.EqualString(bytesString(b))
}

// AppendTo decodes the string into sink. Unescaped strings are forwarded
// in one write.
func (v *Value) AppendTo(sink Sink) error {
	if v.Kind() != KindString {
		return &TypeMismatchError{Want: KindString, Got: v.Kind()}
	}

	raw := v.Raw()
	if v.store.flags[v.node]&flagStringEscaped == 0 {
		sink.Write(raw)

		return nil
	}

	buf, err := decodeAppend(v.ctx.decodeBuf[:0], raw, int(v.store.starts[v.node]))
	v.ctx.decodeBuf = buf

	if err != nil {
		return err
	}

	sink.Write(buf)

	return nil
}
