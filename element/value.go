// Package element implements the ordered JSON tree that the FHIR codec
// operates on.
//
// Decoded documents keep their members in input order, so re-encoding a
// decoded document reproduces it member for member. Numbers keep their
// literal text; FHIR decimals carry significant trailing zeros.
package element

import (
	"fmt"
	"iter"
	"slices"
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// Kind is the JSON kind of a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is one node of a JSON tree.
//
// The set of implementations is closed: Null, Bool, Number, String, Array
// and *Object.
type Value interface {
	Kind() Kind
	isValue()
}

type (
	// Null is the JSON null literal.
	Null struct{}
	// Bool is a JSON boolean.
	Bool bool
	// Number is a JSON number kept as its literal text.
	Number string
	// String is an unescaped JSON string.
	String string
	// Array is a JSON array.
	Array []Value
)

func (Null) Kind() Kind   { return KindNull }
func (Bool) Kind() Kind   { return KindBool }
func (Number) Kind() Kind { return KindNumber }
func (String) Kind() Kind { return KindString }
func (Array) Kind() Kind  { return KindArray }

func (Null) isValue()   {}
func (Bool) isValue()   {}
func (Number) isValue() {}
func (String) isValue() {}
func (Array) isValue()  {}

// NumberFromDecimal renders d the way FHIR expects decimals on the wire.
func NumberFromDecimal(d *apd.Decimal) Number {
	return Number(d.Text('f'))
}

// NumberFromInt renders an integer.
func NumberFromInt(i int64) Number {
	return Number(strconv.FormatInt(i, 10))
}

// Decimal parses the literal with arbitrary precision.
func (n Number) Decimal() (*apd.Decimal, error) {
	d, _, err := apd.NewFromString(string(n))
	if err != nil {
		return nil, err
	}
	if d.Form != apd.Finite {
		return nil, fmt.Errorf("%q is not a finite number", string(n))
	}
	return d, nil
}

// Int64 parses the literal as an integer without fraction or exponent.
func (n Number) Int64() (int64, error) {
	return strconv.ParseInt(string(n), 10, 64)
}

// Member is a key and its value inside an Object.
type Member struct {
	Key   string
	Value Value
}

// Object is a JSON object that remembers member order.
//
// Objects returned by Parse or handed out by a Node must be treated as
// immutable; With and Without return modified copies. Set and Delete mutate
// in place and are meant for objects still under construction.
type Object struct {
	members []Member
}

func (*Object) Kind() Kind { return KindObject }
func (*Object) isValue()   {}

// NewObject returns an object holding members in the given order.
func NewObject(members ...Member) *Object {
	return &Object{members: slices.Clone(members)}
}

// Len returns the number of members.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.members)
}

func (o *Object) index(key string) int {
	if o == nil {
		return -1
	}
	for i, m := range o.members {
		if m.Key == key {
			return i
		}
	}
	return -1
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	i := o.index(key)
	if i < 0 {
		return nil, false
	}
	return o.members[i].Value, true
}

// Has reports whether key is present, including keys holding null.
func (o *Object) Has(key string) bool {
	return o.index(key) >= 0
}

// Keys returns the member keys in order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	keys := make([]string, len(o.members))
	for i, m := range o.members {
		keys[i] = m.Key
	}
	return keys
}

// All iterates over the members in order.
func (o *Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if o == nil {
			return
		}
		for _, m := range o.members {
			if !yield(m.Key, m.Value) {
				return
			}
		}
	}
}

// Clone returns a shallow copy of o.
func (o *Object) Clone() *Object {
	if o == nil {
		return &Object{}
	}
	return &Object{members: slices.Clone(o.members)}
}

// With returns a copy of o where key holds v. An existing member keeps its
// position; a new one is appended.
func (o *Object) With(key string, v Value) *Object {
	c := o.Clone()
	c.Set(key, v)
	return c
}

// Without returns a copy of o without key.
func (o *Object) Without(key string) *Object {
	c := o.Clone()
	c.Delete(key)
	return c
}

// Set stores v under key in place. An existing member keeps its position.
func (o *Object) Set(key string, v Value) {
	if i := o.index(key); i >= 0 {
		o.members[i].Value = v
		return
	}
	o.members = append(o.members, Member{Key: key, Value: v})
}

// Delete removes key in place.
func (o *Object) Delete(key string) {
	if i := o.index(key); i >= 0 {
		o.members = slices.Delete(o.members, i, i+1)
	}
}

// IsNull reports whether v is absent or JSON null. Both read as a missing
// member.
func IsNull(v Value) bool {
	switch v.(type) {
	case nil, Null:
		return true
	}
	return false
}

// IsEmpty reports whether v carries no data: absent, null or an empty array.
func IsEmpty(v Value) bool {
	switch v := v.(type) {
	case nil, Null:
		return true
	case Array:
		return len(v) == 0
	default:
		return false
	}
}
