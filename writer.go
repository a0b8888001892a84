package jetjson

var (
	trueLiteral  = []byte("true")
	falseLiteral = []byte("false")
)

// writerFrame tracks one open container on the writer's stack.
type writerFrame struct {
	object bool
	first  bool
	named  bool // object only: FieldName emitted, value expected
}

// Writer is the immediate-mode serializer: structural calls emit bytes
// into the sink as they happen, with no intermediate tree. The writer
// tracks, per open container, whether a separator is due and whether an
// object is between a field name and its value.
//
// Structural misuse (closing a container that is not open, writing a value
// directly inside an object) is programmer error and panics. Sink failures
// do not panic; they latch in the sink and surface from [Writer.Err].
type Writer struct {
	sink   Sink
	frames []writerFrame

	// num is the reusable number-formatting scratch; it keeps integer and
	// float emission allocation-free.
	num []byte
}

// NewWriter returns a Writer emitting into sink.
func NewWriter(sink Sink) *Writer {
	return &Writer{
		sink:   sink,
		frames: make([]writerFrame, 0, 16),
		num:    make([]byte, 0, 32),
	}
}

// Reset re-arms the writer for a new document on sink, retaining the frame
// stack's capacity.
func (w *Writer) Reset(sink Sink) {
	w.sink = sink
	w.frames = w.frames[:0]
}

// Sink returns the current output sink.
func (w *Writer) Sink() Sink { return w.sink }

// Err returns the sink's latched failure, or nil.
func (w *Writer) Err() error { return w.sink.Err() }

// Depth returns the number of open containers.
func (w *Writer) Depth() int { return len(w.frames) }

// valuePrefix emits the separator due before a value at the current
// position and updates the frame state.
func (w *Writer) valuePrefix() {
	if len(w.frames) == 0 {
		return
	}

	f := &w.frames[len(w.frames)-1]

	if f.object {
		if !f.named {
			panic("jetjson: value inside object requires FieldName")
		}

		f.named = false

		return
	}

	if !f.first {
		w.sink.WriteByte(',')
	}

	f.first = false
}

// ObjectStart opens an object at value position.
func (w *Writer) ObjectStart() {
	w.valuePrefix()
	w.sink.WriteByte('{')
	w.frames = append(w.frames, writerFrame{object: true, first: true})
}

// ObjectEnd closes the innermost object.
func (w *Writer) ObjectEnd() {
	if len(w.frames) == 0 || !w.frames[len(w.frames)-1].object {
		panic("jetjson: ObjectEnd outside object")
	}

	if w.frames[len(w.frames)-1].named {
		panic("jetjson: ObjectEnd after FieldName without value")
	}

	w.frames = w.frames[:len(w.frames)-1]
	w.sink.WriteByte('}')
}

// ArrayStart opens an array at value position.
func (w *Writer) ArrayStart() {
	w.valuePrefix()
	w.sink.WriteByte('[')
	w.frames = append(w.frames, writerFrame{first: true})
}

// ArrayEnd closes the innermost array.
func (w *Writer) ArrayEnd() {
	if len(w.frames) == 0 || w.frames[len(w.frames)-1].object {
		panic("jetjson: ArrayEnd outside array")
	}

	w.frames = w.frames[:len(w.frames)-1]
	w.sink.WriteByte(']')
}

// FieldName emits the member separator if due, then the escaped name and
// the ':' separator, leaving the writer expecting the member's value.
func (w *Writer) FieldName(name string) {
	if len(w.frames) == 0 || !w.frames[len(w.frames)-1].object {
		panic("jetjson: FieldName outside object")
	}

	f := &w.frames[len(w.frames)-1]
	if f.named {
		panic("jetjson: FieldName after FieldName without value")
	}

	if !f.first {
		w.sink.WriteByte(',')
	}

	f.first = false
	f.named = true

	writeEscaped(w.sink, name)
	w.sink.WriteByte(':')
}

// WriteString emits s escaped and quoted at value position.
func (w *Writer) WriteString(s string) {
	w.valuePrefix()
	writeEscaped(w.sink, s)
}

// WriteInt32 emits v at value position.
func (w *Writer) WriteInt32(v int32) {
	w.valuePrefix()
	w.num = appendInt32(w.num[:0], v)
	w.sink.Write(w.num)
}

// WriteInt64 emits v at value position.
func (w *Writer) WriteInt64(v int64) {
	w.valuePrefix()
	w.num = appendInt64(w.num[:0], v)
	w.sink.Write(w.num)
}

// WriteFloat64 emits v at value position. NaN and infinities become null.
func (w *Writer) WriteFloat64(v float64) {
	w.valuePrefix()
	w.num = appendFloat64(w.num[:0], v)
	w.sink.Write(w.num)
}

// WriteBool emits true or false at value position.
func (w *Writer) WriteBool(v bool) {
	w.valuePrefix()

	if v {
		w.sink.Write(trueLiteral)
	} else {
		w.sink.Write(falseLiteral)
	}
}

// WriteNull emits null at value position.
func (w *Writer) WriteNull() {
	w.valuePrefix()
	w.sink.Write(nullLiteral)
}

// WriteRaw emits raw, which must already be valid JSON, at value position.
func (w *Writer) WriteRaw(raw []byte) {
	w.valuePrefix()
	w.sink.Write(raw)
}

// FieldString writes name and a string value in one call.
func (w *Writer) FieldString(name, v string) {
	w.FieldName(name)
	w.WriteString(v)
}

// FieldInt32 writes name and an int32 value in one call.
func (w *Writer) FieldInt32(name string, v int32) {
	w.FieldName(name)
	w.WriteInt32(v)
}

// FieldInt64 writes name and an int64 value in one call.
func (w *Writer) FieldInt64(name string, v int64) {
	w.FieldName(name)
	w.WriteInt64(v)
}

// FieldFloat64 writes name and a float value in one call.
func (w *Writer) FieldFloat64(name string, v float64) {
	w.FieldName(name)
	w.WriteFloat64(v)
}

// FieldBool writes name and a boolean value in one call.
func (w *Writer) FieldBool(name string, v bool) {
	w.FieldName(name)
	w.WriteBool(v)
}

// FieldNull writes name and a null value in one call.
func (w *Writer) FieldNull(name string) {
	w.FieldName(name)
	w.WriteNull()
}
