package jetjson

import "unsafe"

// Source is a borrowed, immutable byte range fed to the parser. The
// tokenizer branches once per parse on [Source.Contiguous]: when the
// underlying storage is a single byte array the hot loops address it
// directly, otherwise the bytes are staged through [Source.ByteAt].
//
// Every Source shipped by this package is contiguous.
type Source interface {
	// Len returns the number of bytes in the source.
	Len() int
	// ByteAt returns the byte at position i, 0 <= i < Len.
	ByteAt(i int) byte
	// Contiguous returns the backing byte array when the source is a single
	// contiguous allocation, and ok=false otherwise.
	Contiguous() (data []byte, ok bool)
}

// BytesSource is a [Source] over a caller-owned byte slice. The slice is
// borrowed, not copied; it must not be mutated while parsed values are live.
type BytesSource struct {
	data []byte
}

// NewBytesSource returns a [BytesSource] borrowing data.
func NewBytesSource(data []byte) *BytesSource {
	return &BytesSource{data: data}
}

// Len returns the number of bytes in the source.
func (s *BytesSource) Len() int { return len(s.data) }

// ByteAt returns the byte at position i.
func (s *BytesSource) ByteAt(i int) byte { return s.data[i] }

// Contiguous returns the borrowed slice. Always ok.
func (s *BytesSource) Contiguous() ([]byte, bool) { return s.data, true }

// StringSource is a [Source] over a string. The string's backing bytes are
// exposed without copying; the returned slice must never be written to.
type StringSource struct {
	s string
}

// NewStringSource returns a [StringSource] over s.
func NewStringSource(s string) *StringSource {
	return &StringSource{s: s}
}

// Len returns the number of bytes in the source.
func (s *StringSource) Len() int { return len(s.s) }

// ByteAt returns the byte at position i.
func (s *StringSource) ByteAt(i int) byte { return s.s[i] }

// Contiguous exposes the string's backing bytes read-only. Always ok.
func (s *StringSource) Contiguous() ([]byte, bool) {
	return stringBytes(s.s), true
}

// stringBytes exposes the backing bytes of s without copying. The result
// must never be mutated.
func stringBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}

	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// bytesString views b as a string without copying. b must not be mutated
// while the string is live.
func bytesString(b []byte) string {
	if len(b) == 0 {
		return ""
	}

	return unsafe.String(&b[0], len(b))
}
