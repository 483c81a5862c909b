package element

import (
	"slices"

	"github.com/cockroachdb/apd/v3"
)

// Encoder converts a typed value back to its tree form. It is the inverse
// of a Decoder and used by generated builders.
type Encoder[T any] func(T) Value

// FromString encodes any string-valued primitive.
func FromString[S ~string](s S) Value {
	return String(s)
}

// FromBool encodes a boolean.
func FromBool(b bool) Value {
	return Bool(b)
}

// FromInt32 encodes an integer.
func FromInt32(i int32) Value {
	return NumberFromInt(int64(i))
}

// FromUint32 encodes an unsignedInt or positiveInt.
func FromUint32(i uint32) Value {
	return NumberFromInt(int64(i))
}

// FromDecimal encodes a decimal keeping its precision.
func FromDecimal(d *apd.Decimal) Value {
	if d == nil {
		return Null{}
	}
	return NumberFromDecimal(d)
}

// FromView encodes a generated view. Zero views encode as an empty object.
func FromView[V interface{ ElementNode() Node }](v V) Value {
	return v.ElementNode().Object()
}

// Put stores the encoded value under key. A value carrying no data, or the
// empty string, removes the key instead.
func Put[T any](o *Object, key string, v T, enc Encoder[T]) {
	ev := enc(v)
	if IsEmpty(ev) || ev == String("") {
		o.Delete(key)
		return
	}
	o.Set(key, ev)
}

// PutAll stores the items as an array under key. No items remove the key.
func PutAll[T any](o *Object, key string, items []T, enc Encoder[T]) {
	if len(items) == 0 {
		o.Delete(key)
		return
	}
	arr := make(Array, len(items))
	for i, item := range items {
		arr[i] = enc(item)
	}
	o.Set(key, arr)
}

// Append adds one item to the array under key.
func Append[T any](o *Object, key string, item T, enc Encoder[T]) {
	var arr Array
	if v, ok := o.Get(key); ok {
		if a, ok := v.(Array); ok {
			arr = slices.Clone(a)
		}
	}
	o.Set(key, append(arr, enc(item)))
}

// PutVariant stores one variant of a choice field and removes all other
// variants of the group together with their primitive extensions.
func PutVariant[T any](o *Object, key string, v T, enc Encoder[T], group ...string) {
	for _, k := range group {
		if k != key {
			o.Delete(k)
			o.Delete("_" + k)
		}
	}
	Put(o, key, v, enc)
}
