package jetjson

// Kind identifies the type of a parsed JSON node.
type Kind uint8

const (
	// KindInvalid is the zero Kind; no parsed node carries it.
	KindInvalid Kind = iota
	// KindObject is a JSON object.
	KindObject
	// KindArray is a JSON array.
	KindArray
	// KindString is a JSON string.
	KindString
	// KindNumber is a JSON number.
	KindNumber
	// KindTrue is the literal true.
	KindTrue
	// KindFalse is the literal false.
	KindFalse
	// KindNull is the literal null.
	KindNull

	// kindField couples an object member's key to its value. Field nodes
	// never surface through the view layer.
	kindField
)

func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindTrue:
		return "true"
	case KindFalse:
		return "false"
	case KindNull:
		return "null"
	case kindField:
		return "field"
	}

	return "invalid"
}

// Node flags recorded by the tokenizer.
const (
	// flagStringEscaped marks a string whose raw bytes contain at least one
	// backslash and therefore need decoding before semantic comparison.
	flagStringEscaped uint8 = 1 << 0
	// flagNumberFloat marks a number containing '.', 'e', or 'E'.
	flagNumberFloat uint8 = 1 << 1
)
