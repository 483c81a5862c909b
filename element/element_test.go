package element_test

import (
	"errors"
	"testing"

	"github.com/damedic/fhir-binding-go/element"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, doc string) *element.Object {
	t.Helper()
	obj, err := element.ParseObject([]byte(doc))
	require.NoError(t, err)
	return obj
}

func TestParseKeepsOrderAndLiterals(t *testing.T) {
	doc := `{"z":1.50,"a":[true,null,"<b>"],"m":{"y":-0.0e1,"x":{}}}`
	obj := mustParse(t, doc)

	assert.Equal(t, []string{"z", "a", "m"}, obj.Keys())
	z, _ := obj.Get("z")
	assert.Equal(t, element.Number("1.50"), z)

	out, err := element.Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, doc, string(out))
}

func TestParseFailures(t *testing.T) {
	for name, doc := range map[string]string{
		"truncated":     `{"a":`,
		"duplicate key": `{"a":1,"a":2}`,
		"nested dup":    `{"a":{"b":1,"b":1}}`,
		"not an object": `[1,2]`,
		"empty":         ``,
		"invalid utf8":  "{\"text\":\"a\xffb\"}",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := element.ParseObject([]byte(doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, element.ErrParseFailure)
		})
	}
}

func TestMarshalOmitsEmptyArrays(t *testing.T) {
	obj := element.NewObject(
		element.Member{Key: "a", Value: element.Array{}},
		element.Member{Key: "b", Value: element.String("x")},
	)
	out, err := element.Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"b":"x"}`, string(out))

	_, err = element.Marshal(element.Number("1..2"))
	assert.Error(t, err)
}

func TestMarshalIndent(t *testing.T) {
	out, err := element.MarshalIndent(mustParse(t, `{"a":{"b":1}}`), "", "  ")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": {\n    \"b\": 1\n  }\n}", string(out))
}

func TestObjectCopies(t *testing.T) {
	orig := mustParse(t, `{"a":1,"b":2}`)

	with := orig.With("a", element.Number("3")).With("c", element.Null{})
	without := orig.Without("a")

	assert.Equal(t, []string{"a", "b"}, orig.Keys())
	assert.Equal(t, []string{"a", "b", "c"}, with.Keys())
	assert.Equal(t, []string{"b"}, without.Keys())
	a, _ := orig.Get("a")
	assert.Equal(t, element.Number("1"), a)
	assert.True(t, with.Has("c"))

	var nilObj *element.Object
	assert.Equal(t, 0, nilObj.Len())
	assert.Equal(t, 0, nilObj.Clone().Len())
}

func TestPath(t *testing.T) {
	p := element.Root("VisionPrescription").Field("lensSpecification").Index(0).Field("prism").Index(1)
	assert.Equal(t, "VisionPrescription.lensSpecification[0].prism[1]", p.String())
	assert.Equal(t, element.Path("id"), element.Path("").Field("id"))
}

func TestError(t *testing.T) {
	err := error(&element.Error{Kind: element.UnknownEnumValue, Path: "Patient.gender", Raw: "robot"})

	assert.Equal(t, `Patient.gender: unknown enum value "robot"`, err.Error())
	assert.True(t, errors.Is(err, element.ErrUnknownEnumValue))
	assert.False(t, errors.Is(err, element.ErrTypeMismatch))

	e, ok := element.AsError(errors.Join(errors.New("other"), err))
	require.True(t, ok)
	assert.Equal(t, element.UnknownEnumValue, e.Kind)
	assert.Equal(t, "UnknownEnumValue", e.Kind.String())

	missing := &element.Error{Kind: element.MissingRequiredField, Path: "Observation.status"}
	assert.Equal(t, "Observation.status: missing required field", missing.Error())
}

func TestAccessors(t *testing.T) {
	n := element.NewNode(mustParse(t, `{
		"id": "1",
		"count": 3000000000,
		"size": 12,
		"sphere": -2.00,
		"flag": false,
		"nothing": null,
		"given": ["a", null, "c"],
		"_given": [null, {"id": "g1"}],
		"code": "left"
	}`), element.Root("T"))

	id, err := element.Required(n, "id", element.AsString)
	require.NoError(t, err)
	assert.Equal(t, "1", id)

	_, err = element.Required(n, "nothing", element.AsString)
	assert.ErrorIs(t, err, element.ErrMissingRequiredField)
	_, ok, err := element.Optional(n, "nothing", element.AsString)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = element.Required(n, "count", element.AsInt32)
	var e *element.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, element.InvalidValue, e.Kind)
	assert.Equal(t, element.Path("T.count"), e.Path)

	size, err := element.Required(n, "size", element.AsUint32)
	require.NoError(t, err)
	assert.Equal(t, uint32(12), size)

	sphere, err := element.Required(n, "sphere", element.AsDecimal)
	require.NoError(t, err)
	assert.Equal(t, "-2.00", sphere.String())
	assert.Equal(t, element.Number("-2.00"), element.FromDecimal(sphere))

	_, err = element.Required(n, "flag", element.AsString)
	assert.ErrorIs(t, err, element.ErrTypeMismatch)

	given, err := element.Repeated(n, "given", element.AsString)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "", "c"}, given)

	exts, err := element.PrimitiveExtensions(n, "given")
	require.NoError(t, err)
	require.Len(t, exts, 2)
	assert.True(t, exts[0].IsZero())
	assert.Equal(t, element.Path("T._given[1]"), exts[1].Path())

	_, err = element.Repeated(n, "id", element.AsString)
	assert.ErrorIs(t, err, element.ErrTypeMismatch)
	_, err = element.RequiredRepeated(n, "missing", element.AsString)
	assert.ErrorIs(t, err, element.ErrMissingRequiredField)

	type eye string
	known := func(e eye) bool { return e == "left" || e == "right" }
	code, err := element.Required(n, "code", element.AsCode(known))
	require.NoError(t, err)
	assert.Equal(t, eye("left"), code)
	_, err = element.Required(n, "id", element.AsCode(known))
	require.ErrorAs(t, err, &e)
	assert.Equal(t, element.UnknownEnumValue, e.Kind)
	assert.Equal(t, "1", e.Raw)
}

func TestPositiveInt(t *testing.T) {
	n := element.NewNode(mustParse(t, `{"zero":0,"one":1,"negative":-1}`), "T")

	_, err := element.Required(n, "zero", element.AsPositiveInt)
	var e *element.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, element.InvalidValue, e.Kind)
	assert.Equal(t, "0", e.Raw)

	one, err := element.Required(n, "one", element.AsPositiveInt)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), one)

	zero, err := element.Required(n, "zero", element.AsUint32)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), zero)
	_, err = element.Required(n, "negative", element.AsUint32)
	assert.ErrorIs(t, err, element.ErrInvalidValue)
}

func TestChoice(t *testing.T) {
	keys := []string{"valueString", "valueBoolean"}

	n := element.NewNode(mustParse(t, `{"_valueString":{"id":"x"}}`), "Observation")
	key, ok, err := element.Choice(n, "value", keys...)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "valueString", key)

	n = element.NewNode(mustParse(t, `{"valueString":"a","valueBoolean":true}`), "Observation")
	_, _, err = element.Choice(n, "value", keys...)
	assert.ErrorIs(t, err, element.ErrAmbiguousChoice)
	_, _, err = element.Variant(n, "valueBoolean", element.AsBool, "value", keys...)
	assert.ErrorIs(t, err, element.ErrAmbiguousChoice)

	n = element.NewNode(mustParse(t, `{"valueString":null,"valueBoolean":true}`), "Observation")
	key, ok, err = element.Choice(n, "value", keys...)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "valueBoolean", key)

	n = element.NewNode(mustParse(t, `{"valueBoolean":true}`), "Observation")
	b, ok, err := element.Variant(n, "valueBoolean", element.AsBool, "value", keys...)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, b)
	_, ok, err = element.Variant(n, "valueString", element.AsString, "value", keys...)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBuild(t *testing.T) {
	obj := element.NewObject()
	element.Put(obj, "status", "active", element.FromString[string])
	element.Put(obj, "text", "", element.FromString[string])
	element.PutAll(obj, "given", []string{"a", "b"}, element.FromString[string])
	element.Append(obj, "given", "c", element.FromString[string])
	element.PutAll(obj, "family", nil, element.FromString[string])
	element.Put(obj, "active", true, element.FromBool)
	element.Put(obj, "count", int32(-4), element.FromInt32)
	element.PutVariant(obj, "valueString", "x", element.FromString[string], "valueString", "valueBoolean")

	out, err := element.Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"status":"active","given":["a","b","c"],"active":true,"count":-4,"valueString":"x"}`, string(out))

	obj.Set("_valueString", element.NewObject())
	element.PutVariant(obj, "valueBoolean", false, element.FromBool, "valueString", "valueBoolean")
	assert.False(t, obj.Has("valueString"))
	assert.False(t, obj.Has("_valueString"))
	v, _ := obj.Get("valueBoolean")
	assert.Equal(t, element.Bool(false), v)

	element.Put(obj, "status", "", element.FromString[string])
	assert.False(t, obj.Has("status"))
}

func TestUnmarshalJSON(t *testing.T) {
	var obj element.Object
	require.NoError(t, obj.UnmarshalJSON([]byte(`{"b":[1],"a":"x"}`)))

	want := []element.Member{
		{Key: "b", Value: element.Array{element.Number("1")}},
		{Key: "a", Value: element.String("x")},
	}
	var got []element.Member
	for k, v := range obj.All() {
		got = append(got, element.Member{Key: k, Value: v})
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("members differ (-want +got):\n%s", diff)
	}
}
