// Package jetjson is a high-throughput JSON engine built around a zero-copy,
// lazy-materialization parser and an immediate-mode serializer. It is designed
// to sustain millions of small-document operations per second with a
// steady-state allocation rate at or near zero.
//
// # Parsing
//
// A [Context] owns every reusable piece of parse state: the tokenizer, the
// flat node store, and the view pools. Parsing walks the input once, records
// byte spans into a structure-of-arrays node table, and returns a lazy
// [Value] handle over the root node. Nothing is decoded until asked for:
//
//	ctx := jetjson.NewContext()
//	defer ctx.Close()
//
//	root, err := ctx.Parse([]byte(`{"name":"test","value":42}`))
//	name, err := root.GetString("name")
//	s, err := name.Decoded() // decodes "test" on demand
//	num, err := root.GetNumber("value")
//	n, err := num.Int32() // parses 42 on demand
//
// Reusing one Context per goroutine makes repeated parses of similar
// documents allocation-free after the first call: the node table, the
// container stack, and the pooled views are all reset in place. A Context is
// single-goroutine state and must not be shared without external
// synchronization.
//
// Values returned from a Context stay valid until the next Parse call on
// that Context (or [Context.Close]). Callers that need data beyond that
// point must copy it out, for example with [Value.Decoded] or
// [Value.Interface].
//
// # Serializing
//
// [Writer] emits bytes directly into a [Sink] as structural calls are made,
// with no intermediate tree:
//
//	sink := jetjson.NewBufferSink(256)
//	w := jetjson.NewWriter(sink)
//	w.ObjectStart()
//	w.FieldString("symbol", "BTCUSDT")
//	w.FieldFloat64("price", 27000.5)
//	w.ObjectEnd()
//	// sink.Bytes() == {"symbol":"BTCUSDT","price":27000.5}
//
// [Builder] layers a fluent callback API on top of Writer so that structural
// correctness is enforced by lexical nesting instead of caller bookkeeping.
//
// Integer and float formatting never allocate: integers go through a
// two-digit pair table, and floats in [1e-4, 1e15) take a scaled-integer
// fast path with trailing-zero stripping. NaN and infinities have no JSON
// representation and are written as null.
//
// # Strictness
//
// The parser accepts exactly one complete JSON document per call, a strict
// subset of RFC 8259: no comments, no trailing commas, no BOM, no NaN or
// Infinity literals, no characters outside space, tab, LF, and CR between
// tokens. Duplicate object keys are accepted; [Value.Get] returns the first
// match in source order.
//
// # Errors
//
// The package defines sentinel errors for use with [errors.Is]:
//
//   - [ErrSyntax]: the input is not valid JSON; the concrete [ParseError]
//     carries the byte offset of the first violation.
//   - [ErrNumberFormat]: a numeric byte range does not fit the requested
//     precision, or overflows it.
//   - [ErrTypeMismatch]: a typed accessor was called on a node of a
//     different kind.
//   - [ErrIndexOutOfRange]: an array index is out of bounds. Absent object
//     keys are not errors; lookups return nil.
//   - [ErrInvalidEscape]: lazy string decoding found a malformed escape
//     sequence. The tokenizer deliberately does not validate escapes.
//   - [ErrSinkOverflow]: a fixed-capacity sink ran out of room.
package jetjson
