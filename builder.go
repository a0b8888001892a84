package jetjson

// Builder is a thin fluent layer over [Writer]: nested callbacks carry the
// container structure, so lexical nesting enforces what the writer's state
// machine would otherwise leave to caller discipline. No new serialization
// semantics live here.
//
//	b := jetjson.NewBuilder(sink)
//	b.Object(func(o *ObjectBuilder) {
//		o.String("symbol", "BTCUSDT")
//		o.Array("asks", func(a *ArrayBuilder) {
//			a.Float64(27000.5)
//		})
//	})
type Builder struct {
	w *Writer
}

// NewBuilder returns a Builder emitting into sink.
func NewBuilder(sink Sink) *Builder {
	return &Builder{w: NewWriter(sink)}
}

// Writer exposes the underlying writer.
func (b *Builder) Writer() *Writer { return b.w }

// Err returns the sink's latched failure, or nil.
func (b *Builder) Err() error { return b.w.Err() }

// Object writes a whole object document via fn.
func (b *Builder) Object(fn func(*ObjectBuilder)) *Builder {
	b.w.ObjectStart()
	fn(&ObjectBuilder{w: b.w})
	b.w.ObjectEnd()

	return b
}

// Array writes a whole array document via fn.
func (b *Builder) Array(fn func(*ArrayBuilder)) *Builder {
	b.w.ArrayStart()
	fn(&ArrayBuilder{w: b.w})
	b.w.ArrayEnd()

	return b
}

// ObjectBuilder adds members to an open object.
type ObjectBuilder struct {
	w *Writer
}

// String adds a string member.
func (o *ObjectBuilder) String(name, v string) *ObjectBuilder {
	o.w.FieldString(name, v)

	return o
}

// Int32 adds an int32 member.
func (o *ObjectBuilder) Int32(name string, v int32) *ObjectBuilder {
	o.w.FieldInt32(name, v)

	return o
}

// Int64 adds an int64 member.
func (o *ObjectBuilder) Int64(name string, v int64) *ObjectBuilder {
	o.w.FieldInt64(name, v)

	return o
}

// Float64 adds a float member.
func (o *ObjectBuilder) Float64(name string, v float64) *ObjectBuilder {
	o.w.FieldFloat64(name, v)

	return o
}

// Bool adds a boolean member.
func (o *ObjectBuilder) Bool(name string, v bool) *ObjectBuilder {
	o.w.FieldBool(name, v)

	return o
}

// Null adds a null member.
func (o *ObjectBuilder) Null(name string) *ObjectBuilder {
	o.w.FieldNull(name)

	return o
}

// Object adds an object member built by fn.
func (o *ObjectBuilder) Object(name string, fn func(*ObjectBuilder)) *ObjectBuilder {
	o.w.FieldName(name)
	o.w.ObjectStart()
	fn(&ObjectBuilder{w: o.w})
	o.w.ObjectEnd()

	return o
}

// Array adds an array member built by fn.
func (o *ObjectBuilder) Array(name string, fn func(*ArrayBuilder)) *ObjectBuilder {
	o.w.FieldName(name)
	o.w.ArrayStart()
	fn(&ArrayBuilder{w: o.w})
	o.w.ArrayEnd()

	return o
}

// ArrayBuilder adds elements to an open array.
type ArrayBuilder struct {
	w *Writer
}

// String adds a string element.
func (a *ArrayBuilder) String(v string) *ArrayBuilder {
	a.w.WriteString(v)

	return a
}

// Int32 adds an int32 element.
func (a *ArrayBuilder) Int32(v int32) *ArrayBuilder {
	a.w.WriteInt32(v)

	return a
}

// Int64 adds an int64 element.
func (a *ArrayBuilder) Int64(v int64) *ArrayBuilder {
	a.w.WriteInt64(v)

	return a
}

// Float64 adds a float element.
func (a *ArrayBuilder) Float64(v float64) *ArrayBuilder {
	a.w.WriteFloat64(v)

	return a
}

// Bool adds a boolean element.
func (a *ArrayBuilder) Bool(v bool) *ArrayBuilder {
	a.w.WriteBool(v)

	return a
}

// Null adds a null element.
func (a *ArrayBuilder) Null() *ArrayBuilder {
	a.w.WriteNull()

	return a
}

// Object adds an object element built by fn.
func (a *ArrayBuilder) Object(fn func(*ObjectBuilder)) *ArrayBuilder {
	a.w.ObjectStart()
	fn(&ObjectBuilder{w: a.w})
	a.w.ObjectEnd()

	return a
}

// Array adds a nested array element built by fn.
func (a *ArrayBuilder) Array(fn func(*ArrayBuilder)) *ArrayBuilder {
	a.w.ArrayStart()
	fn(&ArrayBuilder{w: a.w})
	a.w.ArrayEnd()

	return a
}
