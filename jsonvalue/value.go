package jsonvalue

import (
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

// Kind identifies which variant of the JSON value union a Value holds.
type Kind int

const (
	// NullKind is the kind of the JSON null value. It is the zero value of Kind.
	NullKind Kind = iota
	// BoolKind is the kind of true and false.
	BoolKind
	// NumberKind is the kind of JSON numbers.
	NumberKind
	// StringKind is the kind of JSON strings.
	StringKind
	// ArrayKind is the kind of JSON arrays.
	ArrayKind
	// ObjectKind is the kind of JSON objects.
	ObjectKind
)

// String returns the JSON name of the kind, as used in diagnostics.
func (k Kind) String() string {
	switch k {
	case NullKind:
		return "null"
	case BoolKind:
		return "boolean"
	case NumberKind:
		return "number"
	case StringKind:
		return "string"
	case ArrayKind:
		return "array"
	case ObjectKind:
		return "object"
	default:
		return "unknown"
	}
}

// Value is an immutable JSON value.
//
// The zero value of Value is the JSON null value. Values are safe to share between goroutines, since no
// exported method modifies them.
type Value struct {
	kind        Kind
	boolValue   bool
	numberValue Number
	stringValue string
	arrayValue  []Value
	objectValue *objectData
}

type objectData struct {
	keys   []string
	values map[string]Value
}

// Null returns the JSON null value.
func Null() Value {
	return Value{}
}

// Bool returns a boolean Value.
func Bool(b bool) Value {
	return Value{kind: BoolKind, boolValue: b}
}

// Int returns a number Value for an integer.
func Int(i int) Value {
	return NumberOf(NumberFromInt(int64(i)))
}

// NumberOf returns a number Value.
func NumberOf(n Number) Value {
	return Value{kind: NumberKind, numberValue: n}
}

// String returns a string Value.
func String(s string) Value {
	return Value{kind: StringKind, stringValue: s}
}

// ArrayOf returns an array Value containing the specified elements. The slice is copied.
func ArrayOf(values ...Value) Value {
	a := make([]Value, len(values))
	copy(a, values)
	return Value{kind: ArrayKind, arrayValue: a}
}

// ObjectBuilder is used to construct an object Value.
type ObjectBuilder struct {
	data *objectData
}

// ObjectBuild starts building an object Value.
func ObjectBuild() *ObjectBuilder {
	return &ObjectBuilder{}
}

// Set adds a property. If the key was already set, the new value replaces the old one but the key keeps
// its original position.
func (b *ObjectBuilder) Set(key string, value Value) *ObjectBuilder {
	if b.data == nil {
		b.data = &objectData{values: make(map[string]Value)}
	}
	if _, exists := b.data.values[key]; !exists {
		b.data.keys = append(b.data.keys, key)
	}
	b.data.values[key] = value
	return b
}

// Build returns the object Value. The builder must not be used afterward.
func (b *ObjectBuilder) Build() Value {
	data := b.data
	if data == nil {
		data = &objectData{values: map[string]Value{}}
	}
	b.data = nil
	return Value{kind: ObjectKind, objectValue: data}
}

// Kind returns the variant of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull returns true if the value is the JSON null value.
func (v Value) IsNull() bool {
	return v.kind == NullKind
}

// BoolValue returns the boolean, or false if the value is not a boolean.
func (v Value) BoolValue() bool {
	return v.kind == BoolKind && v.boolValue
}

// NumberValue returns the number, or a zero Number if the value is not a number.
func (v Value) NumberValue() Number {
	if v.kind != NumberKind {
		return Number{}
	}
	return v.numberValue
}

// StringValue returns the string, or "" if the value is not a string.
func (v Value) StringValue() string {
	if v.kind != StringKind {
		return ""
	}
	return v.stringValue
}

// Count returns the number of array elements or object properties, or zero for any other kind.
func (v Value) Count() int {
	switch v.kind {
	case ArrayKind:
		return len(v.arrayValue)
	case ObjectKind:
		return len(v.objectValue.keys)
	default:
		return 0
	}
}

// Index returns an array element, or a null Value if the value is not an array or the index is out of
// range.
func (v Value) Index(i int) Value {
	if v.kind != ArrayKind || i < 0 || i >= len(v.arrayValue) {
		return Null()
	}
	return v.arrayValue[i]
}

// Keys returns the object's keys in the order they first appeared, or nil if the value is not an
// object. The returned slice is a copy.
func (v Value) Keys() []string {
	if v.kind != ObjectKind {
		return nil
	}
	keys := make([]string, len(v.objectValue.keys))
	copy(keys, v.objectValue.keys)
	return keys
}

// Get returns an object property and true, or a null Value and false if the value is not an object or
// has no such key.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != ObjectKind {
		return Null(), false
	}
	value, ok := v.objectValue.values[key]
	return value, ok
}

// String returns the value as compact JSON. Numbers are written as they appeared in the source and
// object keys keep their original order.
func (v Value) String() string {
	w := jwriter.NewWriter()
	v.WriteToJSONWriter(&w)
	return string(w.Bytes())
}

// WriteToJSONWriter writes the value as compact JSON to a jwriter.Writer.
func (v Value) WriteToJSONWriter(w *jwriter.Writer) {
	switch v.kind {
	case BoolKind:
		w.Bool(v.boolValue)
	case NumberKind:
		w.Raw([]byte(v.numberValue.Literal()))
	case StringKind:
		w.String(v.stringValue)
	case ArrayKind:
		arr := w.Array()
		for _, e := range v.arrayValue {
			e.WriteToJSONWriter(w)
		}
		arr.End()
	case ObjectKind:
		obj := w.Object()
		for _, k := range v.objectValue.keys {
			v.objectValue.values[k].WriteToJSONWriter(obj.Name(k))
		}
		obj.End()
	default:
		w.Null()
	}
}
