package jetjson

import "unicode/utf16"

// maxDepth is the fixed container-nesting capacity. Deeper input is a parse
// error rather than a reallocation: the target workload has small nesting
// and predictable cost wins over unbounded depth.
const maxDepth = 64

// tokenizer is the single-pass state machine that turns one complete JSON
// document into nodeStore entries. It is created once per Context and reset
// per call; the only mutable state between calls is the container stack and
// the staging buffer for non-contiguous sources.
type tokenizer struct {
	store *nodeStore
	stack [maxDepth]int32
	depth int

	// scratch stages bytes from a non-contiguous Source so the hot loop
	// always runs over a flat slice. Grown once, reused across parses.
	scratch []byte
}

// parse tokenizes b into s. On error the store holds a partial but
// consistent prefix that the next reset discards.
func (t *tokenizer) parse(b []byte, s *nodeStore) error {
	t.store = s
	t.depth = 0

	i := skipSpace(b, 0)
	if i == len(b) {
		return &ParseError{Offset: i, Reason: "Unexpected end of input"}
	}

	pendingKey := noNode

value:
	for {
		c := b[i]

		var (
			node int32
			err  error
		)

		switch {
		case c == '{':
			if t.depth == maxDepth {
				return &ParseError{Offset: i, Reason: "nesting exceeds maximum depth"}
			}

			node = s.addNode(KindObject, int32(i), 0, 0, 0)
			t.attach(node, &pendingKey)
			t.stack[t.depth] = node
			t.depth++
			i++

			i = skipSpace(b, i)
			if i == len(b) {
				return &ParseError{Offset: i, Reason: "Unexpected end of input in object"}
			}

			if b[i] == '}' {
				s.setEnd(node, int32(i+1))
				i++
				t.depth--

				break // empty object: value complete
			}

			i, pendingKey, err = t.parseKey(b, i)
			if err != nil {
				return err
			}

			continue value

		case c == '[':
			if t.depth == maxDepth {
				return &ParseError{Offset: i, Reason: "nesting exceeds maximum depth"}
			}

			node = s.addNode(KindArray, int32(i), 0, 0, 0)
			t.attach(node, &pendingKey)
			t.stack[t.depth] = node
			t.depth++
			i++

			i = skipSpace(b, i)
			if i == len(b) {
				return &ParseError{Offset: i, Reason: "Unexpected end of input in array"}
			}

			if b[i] == ']' {
				s.setEnd(node, int32(i+1))
				i++
				t.depth--

				break // empty array: value complete
			}

			continue value

		case c == '"':
			i, node, err = t.parseString(b, i)
			if err != nil {
				return err
			}

			t.attach(node, &pendingKey)

		case c == '-' || (c >= '0' && c <= '9'):
			i, node, err = t.parseNumber(b, i)
			if err != nil {
				return err
			}

			t.attach(node, &pendingKey)

		case c == 't':
			i, node, err = t.parseLiteral(b, i, "true", KindTrue)
			if err != nil {
				return err
			}

			t.attach(node, &pendingKey)

		case c == 'f':
			i, node, err = t.parseLiteral(b, i, "false", KindFalse)
			if err != nil {
				return err
			}

			t.attach(node, &pendingKey)

		case c == 'n':
			i, node, err = t.parseLiteral(b, i, "null", KindNull)
			if err != nil {
				return err
			}

			t.attach(node, &pendingKey)

		default:
			return &ParseError{Offset: i, Reason: "Unexpected character"}
		}

		// A value just completed. Unwind closed containers and advance
		// past separators until the next value position or the end.
		for {
			if t.depth == 0 {
				i = skipSpace(b, i)
				if i != len(b) {
					return &ParseError{Offset: i, Reason: "Unexpected trailing characters"}
				}

				return nil
			}

			i = skipSpace(b, i)
			top := t.stack[t.depth-1]

			if i == len(b) {
				if s.kinds[top] == KindObject {
					return &ParseError{Offset: i, Reason: "Unexpected end of input in object"}
				}

				return &ParseError{Offset: i, Reason: "Unexpected end of input in array"}
			}

			if s.kinds[top] == KindObject {
				switch b[i] {
				case ',':
					i = skipSpace(b, i+1)
					if i == len(b) {
						return &ParseError{Offset: i, Reason: "Unexpected end of input in object"}
					}

					var err error

					i, pendingKey, err = t.parseKey(b, i)
					if err != nil {
						return err
					}

					continue value
				case '}':
					s.setEnd(top, int32(i+1))
					i++
					t.depth--
				default:
					return &ParseError{Offset: i, Reason: "Expected ',' or '}' in object"}
				}
			} else {
				switch b[i] {
				case ',':
					i = skipSpace(b, i+1)
					if i == len(b) {
						return &ParseError{Offset: i, Reason: "Unexpected end of input in array"}
					}

					continue value
				case ']':
					s.setEnd(top, int32(i+1))
					i++
					t.depth--
				default:
					return &ParseError{Offset: i, Reason: "Expected ',' or ']' in array"}
				}
			}
		}
	}
}

// attach links a freshly added value node into the tree: as the root, as an
// array element, or (when a key is pending) wrapped in a Field node whose
// start and end columns alias the key and value indices.
func (t *tokenizer) attach(node int32, pendingKey *int32) {
	s := t.store

	if t.depth == 0 {
		s.setRoot(node)

		return
	}

	parent := t.stack[t.depth-1]

	if key := *pendingKey; key != noNode {
		*pendingKey = noNode

		f := s.addNode(kindField, key, node, 0, 0)
		s.firstChild[f] = key
		s.lastChild[f] = node
		s.nextSibling[key] = node
		s.addChild(parent, f)

		return
	}

	s.addChild(parent, node)
}

// parseKey parses an object member key at b[i] (which must be '"'),
// computes its name hash, consumes the ':' separator, and leaves i at the
// first byte of the member value.
func (t *tokenizer) parseKey(b []byte, i int) (int, int32, error) {
	if b[i] != '"' {
		return i, noNode, &ParseError{Offset: i, Reason: "Expected object key"}
	}

	i, key, err := t.parseKeyString(b, i)
	if err != nil {
		return i, noNode, err
	}

	i = skipSpace(b, i)
	if i == len(b) {
		return i, noNode, &ParseError{Offset: i, Reason: "Unexpected end of input in object"}
	}

	if b[i] != ':' {
		return i, noNode, &ParseError{Offset: i, Reason: "Expected ':' after object key"}
	}

	i = skipSpace(b, i+1)
	if i == len(b) {
		return i, noNode, &ParseError{Offset: i, Reason: "Unexpected end of input in object"}
	}

	return i, key, nil
}

// parseString scans a string value at b[i] == '"'. The recorded span
// excludes both quotes. Escapes are not validated here: every backslash
// consumes the following byte unconditionally and sets flagStringEscaped;
// full decoding is deferred to materialization.
func (t *tokenizer) parseString(b []byte, i int) (int, int32, error) {
	start := i + 1
	j := start

	var fl uint8

	for j < len(b) {
		switch b[j] {
		case '"':
			node := t.store.addNode(KindString, int32(start), int32(j), fl, 0)

			return j + 1, node, nil
		case '\\':
			fl |= flagStringEscaped
			j += 2
		default:
			j++
		}
	}

	return j, noNode, &ParseError{Offset: len(b), Reason: "Unterminated string"}
}

// parseKeyString is the field-name variant of parseString: the same scan,
// plus a live hash over the decoded code points (h = 31*h + cp, seeded 0).
// Two- and three-byte UTF-8 sequences fold to their code point; four-byte
// sequences hash as their UTF-16 surrogate halves. Bytes following a
// backslash contribute their raw value: the hash of an escaped name is not
// the hash of its decoded form, so lookups on escaped names fall back to a
// decoded compare instead of trusting the hash.
func (t *tokenizer) parseKeyString(b []byte, i int) (int, int32, error) {
	start := i + 1
	j := start

	var (
		fl   uint8
		hash uint32
	)

	for j < len(b) {
		c := b[j]

		switch {
		case c == '"':
			node := t.store.addNode(KindString, int32(start), int32(j), fl, hash)

			return j + 1, node, nil

		case c == '\\':
			fl |= flagStringEscaped

			if j+1 < len(b) {
				hash = 31*hash + uint32(b[j+1])
			}

			j += 2

		case c < 0x80:
			hash = 31*hash + uint32(c)
			j++

		default:
			cp, size := decodeKeyRune(b, j)
			if cp > 0xFFFF {
				hi, lo := utf16.EncodeRune(cp)
				hash = 31*hash + uint32(hi)
				hash = 31*hash + uint32(lo)
			} else {
				hash = 31*hash + uint32(cp)
			}

			j += size
		}
	}

	return j, noNode, &ParseError{Offset: len(b), Reason: "Unterminated string"}
}

// decodeKeyRune decodes one multibyte UTF-8 sequence at b[j] for hashing.
// Malformed sequences are not policed: a leading byte without enough valid
// continuation bytes folds as a single raw byte, which keeps the scan from
// ever consuming a closing quote.
func decodeKeyRune(b []byte, j int) (rune, int) {
	c := b[j]

	switch {
	case c < 0xE0:
		if c >= 0xC0 && j+1 < len(b) && isCont(b[j+1]) {
			return rune(c&0x1F)<<6 | rune(b[j+1]&0x3F), 2
		}
	case c < 0xF0:
		if j+2 < len(b) && isCont(b[j+1]) && isCont(b[j+2]) {
			return rune(c&0x0F)<<12 | rune(b[j+1]&0x3F)<<6 | rune(b[j+2]&0x3F), 3
		}
	default:
		if j+3 < len(b) && isCont(b[j+1]) && isCont(b[j+2]) && isCont(b[j+3]) {
			return rune(c&0x07)<<18 | rune(b[j+1]&0x3F)<<12 |
				rune(b[j+2]&0x3F)<<6 | rune(b[j+3]&0x3F), 4
		}
	}

	return rune(c), 1
}

func isCont(c byte) bool { return c&0xC0 == 0x80 }

// parseNumber validates the strict RFC 8259 number grammar
// -?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)? and records the span.
// flagNumberFloat is set when '.', 'e', or 'E' appears.
func (t *tokenizer) parseNumber(b []byte, i int) (int, int32, error) {
	start := i

	var fl uint8

	if b[i] == '-' {
		i++
		if i == len(b) || b[i] < '0' || b[i] > '9' {
			return i, noNode, &ParseError{Offset: i, Reason: "Expected digit after '-'"}
		}
	}

	if b[i] == '0' {
		i++
	} else {
		for i < len(b) && b[i] >= '0' && b[i] <= '9' {
			i++
		}
	}

	if i < len(b) && b[i] == '.' {
		fl |= flagNumberFloat
		i++

		if i == len(b) || b[i] < '0' || b[i] > '9' {
			return i, noNode, &ParseError{Offset: i, Reason: "Expected digit after '.'"}
		}

		for i < len(b) && b[i] >= '0' && b[i] <= '9' {
			i++
		}
	}

	if i < len(b) && (b[i] == 'e' || b[i] == 'E') {
		fl |= flagNumberFloat
		i++

		if i < len(b) && (b[i] == '+' || b[i] == '-') {
			i++
		}

		if i == len(b) || b[i] < '0' || b[i] > '9' {
			return i, noNode, &ParseError{Offset: i, Reason: "Expected digit in exponent"}
		}

		for i < len(b) && b[i] >= '0' && b[i] <= '9' {
			i++
		}
	}

	node := t.store.addNode(KindNumber, int32(start), int32(i), fl, 0)

	return i, node, nil
}

// parseLiteral matches lit byte-for-byte at b[i].
func (t *tokenizer) parseLiteral(b []byte, i int, lit string, k Kind) (int, int32, error) {
	if len(b)-i < len(lit) || string(b[i:i+len(lit)]) != lit {
		return i, noNode, &ParseError{Offset: i, Reason: "Invalid literal"}
	}

	node := t.store.addNode(k, int32(i), int32(i+len(lit)), 0, 0)

	return i + len(lit), node, nil
}

// skipSpace advances past the four JSON whitespace bytes. Nothing else is
// accepted between tokens.
func skipSpace(b []byte, i int) int {
	for i < len(b) {
		c := b[i]
		if c != ' ' && c != '\t' && c != '\n' && c != '\r' {
			return i
		}

		i++
	}

	return i
}
