package element

import (
	"fmt"
	"math"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Node is an object together with its location in the document. Generated
// views wrap a Node and read their fields through the helpers below.
type Node struct {
	obj  *Object
	path Path
}

// NewNode wraps obj found at path.
func NewNode(obj *Object, path Path) Node {
	return Node{obj: obj, path: path}
}

// Object returns the wrapped object, never nil.
func (n Node) Object() *Object {
	if n.obj == nil {
		return &Object{}
	}
	return n.obj
}

// Path returns the location of the node.
func (n Node) Path() Path {
	return n.path
}

// IsZero reports whether the node wraps nothing.
func (n Node) IsZero() bool {
	return n.obj == nil
}

// Get returns the value under key; null counts as absent.
func (n Node) Get(key string) (Value, bool) {
	v, ok := n.obj.Get(key)
	if !ok {
		return nil, false
	}
	if _, null := v.(Null); null {
		return nil, false
	}
	return v, true
}

// Decoder converts a present value found at path p.
type Decoder[T any] func(v Value, p Path) (T, error)

// Required reads a field with minimum cardinality 1.
func Required[T any](n Node, key string, dec Decoder[T]) (T, error) {
	var zero T
	p := n.path.Field(key)
	v, ok := n.Get(key)
	if !ok {
		return zero, &Error{Kind: MissingRequiredField, Path: p}
	}
	return dec(v, p)
}

// Optional reads a field with cardinality 0..1.
func Optional[T any](n Node, key string, dec Decoder[T]) (T, bool, error) {
	var zero T
	v, ok := n.Get(key)
	if !ok {
		return zero, false, nil
	}
	t, err := dec(v, n.path.Field(key))
	if err != nil {
		return zero, false, err
	}
	return t, true, nil
}

// Repeated reads a field with cardinality 0..*. An absent key and an empty
// array both yield no elements. Null entries, which align primitive values
// with their extensions, decode to the zero value.
func Repeated[T any](n Node, key string, dec Decoder[T]) ([]T, error) {
	p := n.path.Field(key)
	v, ok := n.Get(key)
	if !ok {
		return nil, nil
	}
	arr, ok := v.(Array)
	if !ok {
		return nil, mismatch(p, "array", v)
	}
	if len(arr) == 0 {
		return nil, nil
	}
	out := make([]T, len(arr))
	for i, e := range arr {
		if _, null := e.(Null); null {
			continue
		}
		t, err := dec(e, p.Index(i))
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}

// RequiredRepeated reads a field with cardinality 1..*.
func RequiredRepeated[T any](n Node, key string, dec Decoder[T]) ([]T, error) {
	out, err := Repeated(n, key, dec)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, &Error{Kind: MissingRequiredField, Path: n.path.Field(key)}
	}
	return out, nil
}

// Choice returns which key of a choice group is populated. A variant counts
// as populated when either its value or its primitive extension is present
// and not null.
// More than one populated variant is reported, never resolved.
func Choice(n Node, base string, group ...string) (string, bool, error) {
	var found []string
	for _, key := range group {
		val, _ := n.obj.Get(key)
		ext, _ := n.obj.Get("_" + key)
		if !IsNull(val) || !IsNull(ext) {
			found = append(found, key)
		}
	}
	switch len(found) {
	case 0:
		return "", false, nil
	case 1:
		return found[0], true, nil
	default:
		return "", false, &Error{
			Kind:   AmbiguousChoice,
			Path:   n.path.Field(base),
			Raw:    strings.Join(found, ","),
			Detail: fmt.Sprintf("%d variants of %s[x] are set", len(found), base),
		}
	}
}

// Variant reads one key of a choice group after checking the group is not
// ambiguous.
func Variant[T any](n Node, key string, dec Decoder[T], base string, group ...string) (T, bool, error) {
	if _, _, err := Choice(n, base, group...); err != nil {
		var zero T
		return zero, false, err
	}
	return Optional(n, key, dec)
}

// PrimitiveExtension reads the "_key" sibling of a singular primitive.
func PrimitiveExtension(n Node, key string) (Node, bool, error) {
	return Optional(n, "_"+key, AsNode)
}

// PrimitiveExtensions reads the "_key" sibling of a repeated primitive. The
// result is index aligned with the values; entries without extension are
// zero nodes.
func PrimitiveExtensions(n Node, key string) ([]Node, error) {
	return Repeated(n, "_"+key, AsNode)
}

// AsValue returns v unchanged.
func AsValue(v Value, _ Path) (Value, error) {
	return v, nil
}

// AsString decodes any string-valued primitive.
func AsString(v Value, p Path) (string, error) {
	s, ok := v.(String)
	if !ok {
		return "", mismatch(p, "string", v)
	}
	return string(s), nil
}

// AsBool decodes a boolean.
func AsBool(v Value, p Path) (bool, error) {
	b, ok := v.(Bool)
	if !ok {
		return false, mismatch(p, "boolean", v)
	}
	return bool(b), nil
}

// AsInt32 decodes an integer.
func AsInt32(v Value, p Path) (int32, error) {
	num, ok := v.(Number)
	if !ok {
		return 0, mismatch(p, "number", v)
	}
	i, err := num.Int64()
	if err != nil || i < math.MinInt32 || i > math.MaxInt32 {
		return 0, &Error{Kind: InvalidValue, Path: p, Raw: string(num), Detail: "not a 32 bit integer"}
	}
	return int32(i), nil
}

// AsUint32 decodes an unsignedInt.
func AsUint32(v Value, p Path) (uint32, error) {
	num, ok := v.(Number)
	if !ok {
		return 0, mismatch(p, "number", v)
	}
	i, err := num.Int64()
	if err != nil || i < 0 || i > math.MaxInt32 {
		return 0, &Error{Kind: InvalidValue, Path: p, Raw: string(num), Detail: "not an unsigned 31 bit integer"}
	}
	return uint32(i), nil
}

// AsPositiveInt decodes a positiveInt, which starts at 1.
func AsPositiveInt(v Value, p Path) (uint32, error) {
	num, ok := v.(Number)
	if !ok {
		return 0, mismatch(p, "number", v)
	}
	i, err := num.Int64()
	if err != nil || i < 1 || i > math.MaxInt32 {
		return 0, &Error{Kind: InvalidValue, Path: p, Raw: string(num), Detail: "not a positive 31 bit integer"}
	}
	return uint32(i), nil
}

// AsDecimal decodes a decimal keeping its precision.
func AsDecimal(v Value, p Path) (*apd.Decimal, error) {
	num, ok := v.(Number)
	if !ok {
		return nil, mismatch(p, "number", v)
	}
	d, err := num.Decimal()
	if err != nil {
		return nil, &Error{Kind: InvalidValue, Path: p, Raw: string(num), Detail: err.Error()}
	}
	return d, nil
}

// AsNode decodes an object.
func AsNode(v Value, p Path) (Node, error) {
	o, ok := v.(*Object)
	if !ok {
		return Node{}, mismatch(p, "object", v)
	}
	return Node{obj: o, path: p}, nil
}

// AsStruct decodes an object and wraps it into a view.
func AsStruct[T any](wrap func(Node) T) Decoder[T] {
	return func(v Value, p Path) (T, error) {
		n, err := AsNode(v, p)
		if err != nil {
			var zero T
			return zero, err
		}
		return wrap(n), nil
	}
}

// AsCode decodes a code bound to a closed value set. Codes for which known
// returns false fail with UnknownEnumValue carrying the raw code.
func AsCode[E ~string](known func(E) bool) Decoder[E] {
	return func(v Value, p Path) (E, error) {
		s, err := AsString(v, p)
		if err != nil {
			return "", err
		}
		if !known(E(s)) {
			return "", &Error{Kind: UnknownEnumValue, Path: p, Raw: s}
		}
		return E(s), nil
	}
}
