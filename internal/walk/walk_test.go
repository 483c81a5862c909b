package walk

import (
	"testing"

	"github.com/damedic/fhir-binding-go/element"
	"github.com/damedic/fhir-binding-go/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type finding struct {
	Path    element.Path
	Kind    element.ErrorKind
	Code    string
	Warning bool
}

func walkAll(t *testing.T, cfg Config, doc string) []finding {
	t.Helper()
	reg, err := schema.R4()
	require.NoError(t, err)
	cfg.Registry = reg

	obj, err := element.ParseObject([]byte(doc))
	require.NoError(t, err)

	var found []finding
	complete := Resource(cfg, obj, "", func(p Problem) bool {
		found = append(found, finding{Path: p.Err.Path, Kind: p.Err.Kind, Code: p.Code, Warning: p.Warning})
		return true
	})
	assert.True(t, complete)
	return found
}

func TestTraversalOrder(t *testing.T) {
	found := walkAll(t, Config{CheckCardinality: true, CheckFormat: true},
		`{"resourceType":"Observation","status":"guess","colour":"x","valueString":"a","valueBoolean":true}`)

	assert.Equal(t, []finding{
		{Path: "Observation.colour", Kind: element.UnknownField, Code: "structure", Warning: true},
		{Path: "Observation.status", Kind: element.UnknownEnumValue, Code: "code-invalid"},
		{Path: "Observation.code", Kind: element.MissingRequiredField, Code: "required"},
		{Path: "Observation.value", Kind: element.AmbiguousChoice, Code: "multiple-matches", Warning: true},
	}, found)
}

func TestPrimitiveExtensionSatisfiesMinimum(t *testing.T) {
	found := walkAll(t, Config{CheckCardinality: true, RejectUnknown: true},
		`{"resourceType":"Observation","_status":{"id":"s1"},"code":{}}`)
	assert.Empty(t, found)

	found = walkAll(t, Config{CheckCardinality: true, RejectUnknown: true},
		`{"resourceType":"Observation","status":null,"code":{},"_code":{}}`)
	assert.Equal(t, []finding{
		{Path: "Observation._code", Kind: element.UnknownField, Code: "structure"},
		{Path: "Observation.status", Kind: element.MissingRequiredField, Code: "required"},
	}, found)
}

func TestRequiredRepeated(t *testing.T) {
	found := walkAll(t, Config{CheckCardinality: true},
		`{"resourceType":"OperationOutcome","issue":[]}`)
	assert.Equal(t, []finding{
		{Path: "OperationOutcome.issue", Kind: element.MissingRequiredField, Code: "required"},
	}, found)
}

func TestModifierExtensions(t *testing.T) {
	doc := `{"resourceType":"Basic","code":{},"modifierExtension":[
		{"url":"http://example.org/understood","valueBoolean":true},
		{"url":"http://example.org/unknown","valueBoolean":true}
	]}`

	assert.Empty(t, walkAll(t, Config{}, doc))

	found := walkAll(t, Config{Modifiers: map[string]bool{"http://example.org/understood": true}}, doc)
	assert.Equal(t, []finding{
		{Path: "Basic.modifierExtension[1]", Kind: element.UnknownField, Code: "extension"},
	}, found)
}

func TestStop(t *testing.T) {
	reg, err := schema.R4()
	require.NoError(t, err)
	obj, err := element.ParseObject([]byte(`{"resourceType":"Patient","a":1,"b":2,"gender":"robot"}`))
	require.NoError(t, err)

	calls := 0
	complete := Resource(Config{Registry: reg}, obj, "", func(Problem) bool {
		calls++
		return false
	})
	assert.False(t, complete)
	assert.Equal(t, 1, calls)
}

func TestWalkType(t *testing.T) {
	reg, err := schema.R4()
	require.NoError(t, err)
	quantity, ok := reg.Type("Quantity")
	require.True(t, ok)
	obj, err := element.ParseObject([]byte(`{"value":1,"comparator":"~"}`))
	require.NoError(t, err)

	var found []*element.Error
	Walk(Config{Registry: reg}, obj, quantity, "Observation.valueQuantity", func(p Problem) bool {
		found = append(found, p.Err)
		return true
	})
	require.Len(t, found, 1)
	assert.Equal(t, element.Path("Observation.valueQuantity.comparator"), found[0].Path)
	assert.Equal(t, "~", found[0].Raw)
}

func TestCodeFor(t *testing.T) {
	assert.Equal(t, "invalid", CodeFor(element.ParseFailure))
	assert.Equal(t, "value", CodeFor(element.InvalidValue))
	assert.Equal(t, "structure", CodeFor(element.TypeMismatch))
}
