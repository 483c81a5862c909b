package schema_test

import (
	"strings"
	"testing"

	"github.com/damedic/fhir-binding-go/element"
	"github.com/damedic/fhir-binding-go/schema"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gadgetDefinitions = `{
  "resourceType": "Bundle",
  "entry": [
    {"resource": {"resourceType": "SearchParameter", "url": "http://example.org/sp"}},
    {"resource": {
      "resourceType": "StructureDefinition",
      "type": "Gadget",
      "kind": "resource",
      "baseDefinition": "http://hl7.org/fhir/StructureDefinition/DomainResource",
      "description": "A test gadget.",
      "snapshot": {"element": [
        {"path": "Gadget", "min": 0, "max": "*"},
        {"path": "Gadget.id", "min": 0, "max": "1", "type": [{"code": "http://hl7.org/fhirpath/System.String"}]},
        {"path": "Gadget.status", "min": 1, "max": "1", "type": [{"code": "code"}],
         "binding": {"strength": "required", "valueSet": "http://example.org/vs/gadget-status|1.0"}},
        {"path": "Gadget.hidden", "min": 0, "max": "0", "type": [{"code": "string"}]},
        {"path": "Gadget.part", "min": 0, "max": "*", "type": [{"code": "BackboneElement"}]},
        {"path": "Gadget.part.name", "min": 1, "max": "1", "type": [{"code": "string"}]},
        {"path": "Gadget.part.sub", "min": 0, "max": "*", "contentReference": "#Gadget.part"},
        {"path": "Gadget.size[x]", "min": 0, "max": "1", "type": [{"code": "integer"}, {"code": "string"}]}
      ]}
    }},
    {"resource": {
      "resourceType": "ValueSet",
      "url": "http://example.org/vs/gadget-status",
      "name": "GadgetStatus",
      "compose": {"include": [{"system": "http://example.org/cs/gadget-status"}]}
    }},
    {"resource": {
      "resourceType": "CodeSystem",
      "url": "http://example.org/cs/gadget-status",
      "concept": [
        {"code": "active", "display": "Active"},
        {"code": "retired", "concept": [{"code": "scrapped"}]}
      ]
    }}
  ]
}`

func TestLoad(t *testing.T) {
	reg, err := schema.Load(strings.NewReader(gadgetDefinitions))
	require.NoError(t, err)

	assert.Equal(t, []string{"Gadget"}, reg.ResourceNames())
	assert.Empty(t, reg.ComplexTypeNames())

	gadget, ok := reg.Resource("Gadget")
	require.True(t, ok)
	assert.Equal(t, "DomainResource", gadget.Base)
	assert.Equal(t, "A test gadget.", gadget.Doc)

	var names []string
	for _, f := range gadget.Fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"id", "status", "part", "size"}, names)

	id, _ := gadget.Field("id")
	assert.Equal(t, []string{"string"}, id.Types)

	status, _ := gadget.Field("status")
	assert.True(t, status.Required())
	assert.Equal(t, "http://example.org/vs/gadget-status", status.Binding.ValueSet)
	assert.Equal(t, "GadgetStatus", status.Binding.Name)
	assert.True(t, status.Binding.Closed())
	assert.True(t, status.Binding.Permits("scrapped"))
	assert.False(t, status.Binding.Permits("lost"))

	part, _ := gadget.Field("part")
	assert.True(t, part.Repeated())
	assert.Equal(t, []string{"GadgetPart"}, part.Types)

	backbone, ok := reg.Type("GadgetPart")
	require.True(t, ok)
	assert.Equal(t, schema.KindBackbone, backbone.Kind)
	assert.Equal(t, "Gadget.part", backbone.Path)
	sub, _ := backbone.Field("sub")
	assert.Equal(t, "Gadget.part", sub.ContentReference)
	assert.Equal(t, []string{"GadgetPart"}, sub.Types)

	size, _ := gadget.Field("size")
	assert.True(t, size.Polymorph)
	assert.Equal(t, []string{"sizeInteger", "sizeString"}, size.Keys())
	f, typ, ok := gadget.Lookup("sizeString")
	require.True(t, ok)
	assert.Equal(t, "size", f.Name)
	assert.Equal(t, "string", typ)
	_, _, ok = gadget.Lookup("size")
	assert.False(t, ok)
	_, _, ok = gadget.Lookup("hidden")
	assert.False(t, ok)

	want := []*schema.ValueSet{{
		URL:  "http://example.org/vs/gadget-status",
		Name: "GadgetStatus",
		Codes: []schema.Code{
			{Code: "active", Display: "Active"},
			{Code: "retired"},
			{Code: "scrapped"},
		},
	}}
	if diff := cmp.Diff(want, reg.ValueSets()); diff != "" {
		t.Errorf("value sets differ (-want +got):\n%s", diff)
	}
}

func TestLoadRejectsUnknownTypes(t *testing.T) {
	def := `{
	  "resourceType": "StructureDefinition",
	  "type": "Widget",
	  "kind": "complex-type",
	  "snapshot": {"element": [
	    {"path": "Widget"},
	    {"path": "Widget.gear", "min": 0, "max": "1", "type": [{"code": "Gear"}]}
	  ]}
	}`
	_, err := schema.Load(strings.NewReader(def))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Widget.gear: Gear")

	_, err = schema.Load(strings.NewReader(`{"resourceType":`))
	assert.Error(t, err)
}

func TestR4(t *testing.T) {
	reg, err := schema.R4()
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"Basic", "Bundle", "Observation", "OperationOutcome", "Patient", "VisionPrescription"},
		reg.ResourceNames(),
	)
	assert.Contains(t, reg.ComplexTypeNames(), "Quantity")

	obs, ok := reg.Resource("Observation")
	require.True(t, ok)
	f, typ, ok := obs.Lookup("valueQuantity")
	require.True(t, ok)
	assert.Equal(t, "value", f.Name)
	assert.Equal(t, "Quantity", typ)

	_, ok = reg.Resource("Quantity")
	assert.False(t, ok)

	vp, _ := reg.Resource("VisionPrescription")
	status, _ := vp.Field("status")
	assert.Equal(t, "FinancialResourceStatusCodes", status.Binding.Name)
	assert.Equal(t, []string{"active", "cancelled", "draft", "entered-in-error"}, status.Binding.Codes)

	language, _ := vp.Field("language")
	assert.False(t, language.Binding.Closed())
	assert.True(t, language.Binding.Permits("tlh"))
}

func TestNaming(t *testing.T) {
	assert.Equal(t, "ObservationReferenceRange", schema.GoTypeName("Observation.referenceRange"))
	assert.Equal(t, "Httpverb", schema.GoTypeName("HTTPVerb"))
	assert.Equal(t, "StringValue", schema.GoFieldName("string"))
	assert.Equal(t, "LensSpecification", schema.GoFieldName("lensSpecification"))
	assert.Equal(t, "typ", schema.ParamName("type"))
	assert.Equal(t, "for_", schema.ParamName("for"))
	assert.Equal(t, "patient", schema.ParamName("patient"))
	assert.Equal(t, "QuantityComparatorLessThanOrEqualTo", schema.ConstantName("QuantityComparator", "<="))
	assert.Equal(t, "IssueTypeCodeInvalid", schema.ConstantName("IssueType", "code-invalid"))
}

func TestPrimitives(t *testing.T) {
	for _, tt := range []struct {
		typ     string
		literal string
		ok      bool
	}{
		{"date", "2014-06-15", true},
		{"date", "2014-13", false},
		{"date", "yesterday", false},
		{"dateTime", "2014-06-15T10:00:00+01:00", true},
		{"dateTime", "2014-06-15T10:00", false},
		{"instant", "2014-06-15", false},
		{"decimal", "-2.00", true},
		{"decimal", "01", false},
		{"id", "33124", true},
		{"id", strings.Repeat("a", 65), false},
		{"code", "entered-in-error", true},
		{"code", " active", false},
		{"positiveInt", "0", false},
		{"uri", "urn:uuid:x", true},
		{"uuid", "urn:uuid:c757873d-ec9a-4326-a141-556f43239520", true},
		{"string", "", false},
	} {
		p, ok := schema.LookupPrimitive(tt.typ)
		require.True(t, ok, tt.typ)
		assert.Equal(t, tt.ok, p.Matches(tt.literal), "%s %q", tt.typ, tt.literal)
	}

	p, _ := schema.LookupPrimitive("boolean")
	assert.Equal(t, "boolean", p.Name)
	assert.Equal(t, element.KindBool, p.Kind)
	assert.True(t, schema.IsPrimitive("integer64"))
	assert.False(t, schema.IsPrimitive("Quantity"))
	assert.Len(t, schema.PrimitiveTypes(), 21)
}
