package jetjson

import (
	"unicode/utf16"
	"unicode/utf8"
)

// escapeTable maps each byte below 0x80 to its JSON escape sequence, or nil
// when the byte passes through unchanged. Bytes at or above 0x80 are always
// passed through: the encoder assumes well-formed UTF-8 and never re-encodes
// multibyte sequences. Immutable after initialization.
var escapeTable = buildEscapeTable()

func buildEscapeTable() (t [128][]byte) {
	const hexDigits = "0123456789abcdef"

	for b := range 0x20 {
		t[b] = []byte{'\\', 'u', '0', '0', hexDigits[b>>4], hexDigits[b&0xF]}
	}

	t['\b'] = []byte(`\b`)
	t['\f'] = []byte(`\f`)
	t['\n'] = []byte(`\n`)
	t['\r'] = []byte(`\r`)
	t['\t'] = []byte(`\t`)
	t['"'] = []byte(`\"`)
	t['\\'] = []byte(`\\`)

	return t
}

// writeEscaped emits s to sink with JSON escaping, surrounded by quotes.
// Runs of bytes needing no escape are flushed in single writes.
func writeEscaped(sink Sink, s string) {
	sink.WriteByte('"')

	flushFrom := 0

	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= 0x80 || escapeTable[b] == nil {
			continue
		}

		if i > flushFrom {
			sink.Write(stringBytes(s)[flushFrom:i])
		}

		sink.Write(escapeTable[b])
		flushFrom = i + 1
	}

	if flushFrom < len(s) {
		sink.Write(stringBytes(s)[flushFrom:])
	}

	sink.WriteByte('"')
}

// AppendQuoted appends s to dst as a quoted JSON string, escaping through
// the same table the writer uses.
func AppendQuoted(dst []byte, s string) []byte {
	dst = append(dst, '"')

	flushFrom := 0

	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= 0x80 || escapeTable[b] == nil {
			continue
		}

		if i > flushFrom {
			dst = append(dst, s[flushFrom:i]...)
		}

		dst = append(dst, escapeTable[b]...)
		flushFrom = i + 1
	}

	if flushFrom < len(s) {
		dst = append(dst, s[flushFrom:]...)
	}

	return append(dst, '"')
}

// decodeAppend appends the decoded form of raw (a string node's byte range,
// quotes excluded) to dst. base is the absolute input offset of raw[0], used
// for error positions. Non-escape bytes are copied verbatim, preserving
// UTF-8.
func decodeAppend(dst, raw []byte, base int) ([]byte, error) {
	for i := 0; i < len(raw); {
		c := raw[i]
		if c != '\\' {
			dst = append(dst, c)
			i++

			continue
		}

		if i+1 >= len(raw) {
			return dst, &EscapeError{Offset: base + i}
		}

		switch raw[i+1] {
		case '"':
			dst = append(dst, '"')
		case '\\':
			dst = append(dst, '\\')
		case '/':
			dst = append(dst, '/')
		case 'b':
			dst = append(dst, '\b')
		case 'f':
			dst = append(dst, '\f')
		case 'n':
			dst = append(dst, '\n')
		case 'r':
			dst = append(dst, '\r')
		case 't':
			dst = append(dst, '\t')
		case 'u':
			r, n, err := decodeUnicodeEscape(raw, i, base)
			if err != nil {
				return dst, err
			}

			dst = utf8.AppendRune(dst, r)
			i += n

			continue
		default:
			return dst, &EscapeError{Offset: base + i}
		}

		i += 2
	}

	return dst, nil
}

// decodeUnicodeEscape decodes a \uXXXX sequence starting at raw[i] (the
// backslash), pairing surrogates. It returns the rune and the total number
// of bytes consumed.
func decodeUnicodeEscape(raw []byte, i, base int) (rune, int, error) {
	hi, ok := hex4(raw, i+2)
	if !ok {
		return 0, 0, &EscapeError{Offset: base + i}
	}

	if !utf16.IsSurrogate(rune(hi)) {
		return rune(hi), 6, nil
	}

	// A high surrogate must be followed by \u + low surrogate.
	if hi >= 0xDC00 {
		// Unpaired low surrogate decodes to U+FFFD.
		return utf8.RuneError, 6, nil
	}

	if i+12 > len(raw) || raw[i+6] != '\\' || raw[i+7] != 'u' {
		return 0, 0, &EscapeError{Offset: base + i}
	}

	lo, ok := hex4(raw, i+8)
	if !ok || lo < 0xDC00 || lo > 0xDFFF {
		return 0, 0, &EscapeError{Offset: base + i}
	}

	return utf16.DecodeRune(rune(hi), rune(lo)), 12, nil
}

// hex4 reads four hex digits at raw[i:i+4].
func hex4(raw []byte, i int) (uint32, bool) {
	if i+4 > len(raw) {
		return 0, false
	}

	var v uint32

	for _, c := range raw[i : i+4] {
		v <<= 4

		switch {
		case c >= '0' && c <= '9':
			v |= uint32(c - '0')
		case c >= 'a' && c <= 'f':
			v |= uint32(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v |= uint32(c-'A') + 10
		default:
			return 0, false
		}
	}

	return v, true
}
