package validate_test

import (
	"context"
	"errors"
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damedic/fhir-binding-go/element"
	"github.com/damedic/fhir-binding-go/fhirjson"
	"github.com/damedic/fhir-binding-go/testdata"
	"github.com/damedic/fhir-binding-go/validate"
)

func TestDocumentExamples(t *testing.T) {
	for name, data := range testdata.Examples() {
		t.Run(name, func(t *testing.T) {
			res, err := validate.Document(data)
			require.NoError(t, err)
			assert.Empty(t, res.Issues)
			assert.True(t, res.Valid())
			assert.NoError(t, res.Err())
		})
	}
}

func TestDocumentCollectsAllIssues(t *testing.T) {
	doc := `{
		"resourceType": "VisionPrescription",
		"status": "active",
		"created": "2014-06-15",
		"dateWritten": "2014-06-15",
		"prescriber": {"reference": "Practitioner/example"},
		"lensSpecification": [
			{
				"product": {"text": "lens"},
				"eye": "right",
				"prism": [
					{"amount": 0.5, "base": "down"},
					{"amount": "0.25", "base": "out"}
				]
			},
			{
				"product": {"text": "lens"},
				"eye": "middle"
			}
		]
	}`

	res, err := validate.Document([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "VisionPrescription", res.Type)
	assert.False(t, res.Valid())

	type found struct {
		Path string
		Kind element.ErrorKind
		Code string
	}
	var got []found
	for _, i := range res.Issues {
		got = append(got, found{Path: i.Path.String(), Kind: i.Kind, Code: i.Code})
	}
	assert.Equal(t, []found{
		{Path: "VisionPrescription.patient", Kind: element.MissingRequiredField, Code: "required"},
		{Path: "VisionPrescription.lensSpecification[0].prism[1].amount", Kind: element.TypeMismatch, Code: "structure"},
		{Path: "VisionPrescription.lensSpecification[1].eye", Kind: element.UnknownEnumValue, Code: "code-invalid"},
	}, got)

	err = res.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, element.ErrUnknownEnumValue))
	assert.True(t, errors.Is(err, element.ErrMissingRequiredField))
	assert.Contains(t, err.Error(), `unknown enum value "middle"`)
}

func TestDocumentParseFailure(t *testing.T) {
	res, err := validate.Document([]byte(`{"resourceType": "Patient",`))
	require.NoError(t, err)
	require.Len(t, res.Issues, 1)
	assert.Equal(t, validate.SeverityFatal, res.Issues[0].Severity)
	assert.Equal(t, "invalid", res.Issues[0].Code)
	assert.Equal(t, element.ParseFailure, res.Issues[0].Kind)
	assert.False(t, res.Valid())
	assert.Empty(t, res.Type)
}

func TestDocumentUnknownResourceType(t *testing.T) {
	res, err := validate.Document([]byte(`{"resourceType": "Starship"}`))
	require.NoError(t, err)
	require.Len(t, res.Issues, 1)
	assert.Equal(t, element.Path("resourceType"), res.Issues[0].Path)
	assert.Empty(t, res.Type)
}

func TestUnknownFieldPolicy(t *testing.T) {
	doc := []byte(`{"resourceType": "Basic", "code": {"text": "x"}, "colour": "red"}`)

	res, err := validate.Document(doc)
	require.NoError(t, err)
	require.Len(t, res.Issues, 1)
	assert.Equal(t, validate.SeverityError, res.Issues[0].Severity)
	assert.Equal(t, element.Path("Basic.colour"), res.Issues[0].Path)
	assert.Equal(t, element.UnknownField, res.Issues[0].Kind)

	res, err = validate.Document(doc, validate.WithPolicy(fhirjson.Lenient()))
	require.NoError(t, err)
	require.Len(t, res.Issues, 1)
	assert.Equal(t, validate.SeverityWarning, res.Issues[0].Severity)
	assert.True(t, res.Valid())
	assert.Len(t, res.Warnings(), 1)
	assert.Empty(t, res.Errors())
}

func TestAmbiguousChoice(t *testing.T) {
	doc := []byte(`{
		"resourceType": "Observation",
		"status": "final",
		"code": {"text": "x"},
		"valueString": "a",
		"valueBoolean": true
	}`)

	res, err := validate.Document(doc)
	require.NoError(t, err)
	require.Len(t, res.Issues, 1)
	issue := res.Issues[0]
	assert.Equal(t, element.AmbiguousChoice, issue.Kind)
	assert.Equal(t, "multiple-matches", issue.Code)
	assert.Equal(t, element.Path("Observation.value"), issue.Path)
	assert.Contains(t, issue.Diagnostics, "valueString,valueBoolean")
}

func TestLenientAmbiguousChoiceIsOnlyAWarning(t *testing.T) {
	doc := []byte(`{
		"resourceType": "Observation",
		"status": "final",
		"code": {"text": "x"},
		"valueString": "a",
		"valueBoolean": true
	}`)

	res, err := validate.Document(doc, validate.WithPolicy(fhirjson.Lenient()))
	require.NoError(t, err)
	require.Len(t, res.Issues, 1)
	assert.Equal(t, validate.SeverityWarning, res.Issues[0].Severity)
	assert.Equal(t, element.AmbiguousChoice, res.Issues[0].Kind)
	assert.True(t, res.Valid())
	assert.Empty(t, res.Errors())
}

func TestPrimitiveFormat(t *testing.T) {
	doc := []byte(`{"resourceType": "Patient", "id": "has space", "birthDate": "25-12-1974"}`)

	res, err := validate.Document(doc)
	require.NoError(t, err)
	require.Len(t, res.Issues, 2)
	assert.Equal(t, element.Path("Patient.id"), res.Issues[0].Path)
	assert.Equal(t, element.InvalidValue, res.Issues[0].Kind)
	assert.Equal(t, "value", res.Issues[0].Code)
	assert.Equal(t, element.Path("Patient.birthDate"), res.Issues[1].Path)

	res, err = validate.Document(doc, validate.WithPolicy(fhirjson.Lenient()))
	require.NoError(t, err)
	assert.Empty(t, res.Issues)
}

func TestContainedAndBundledResources(t *testing.T) {
	doc := []byte(`{
		"resourceType": "Bundle",
		"type": "collection",
		"entry": [
			{"resource": {"resourceType": "Patient", "gender": "unknown"}},
			{"resource": {"resourceType": "Patient", "gender": "robot"}},
			{"resource": {"resourceType": "Basic", "contained": [{"resourceType": "Basic"}], "code": {}}}
		]
	}`)

	res, err := validate.Document(doc)
	require.NoError(t, err)
	var paths []string
	for _, i := range res.Issues {
		paths = append(paths, i.Path.String())
	}
	assert.Equal(t, []string{
		"Bundle.entry[1].resource.gender",
		"Bundle.entry[2].resource.contained[0].code",
	}, paths)
}

func TestModifierExtensions(t *testing.T) {
	doc := []byte(`{
		"resourceType": "Basic",
		"code": {"text": "x"},
		"modifierExtension": [
			{"url": "http://example.org/understood", "valueBoolean": true},
			{"url": "http://example.org/unknown", "valueBoolean": true}
		]
	}`)

	res, err := validate.Document(doc)
	require.NoError(t, err)
	assert.Empty(t, res.Issues)

	res, err = validate.Document(doc, validate.WithUnderstoodModifiers("http://example.org/understood"))
	require.NoError(t, err)
	require.Len(t, res.Issues, 1)
	assert.Equal(t, "extension", res.Issues[0].Code)
	assert.Equal(t, element.Path("Basic.modifierExtension[1]"), res.Issues[0].Path)
}

func TestPrimitiveExtensionAlignment(t *testing.T) {
	doc := []byte(`{
		"resourceType": "Patient",
		"name": [{"given": ["a", "b"], "_given": [null]}]
	}`)

	res, err := validate.Document(doc)
	require.NoError(t, err)
	require.Len(t, res.Issues, 1)
	assert.Equal(t, element.Path("Patient.name[0]._given"), res.Issues[0].Path)
}

func TestObject(t *testing.T) {
	obj, err := element.ParseObject([]byte(`{"amount": 1.5}`))
	require.NoError(t, err)

	res, err := validate.Object(obj, "VisionPrescriptionLensSpecificationPrism")
	require.NoError(t, err)
	require.Len(t, res.Issues, 1)
	assert.Equal(t, element.Path("VisionPrescription.lensSpecification.prism.base"), res.Issues[0].Path)

	_, err = validate.Object(obj, "Starship")
	assert.Error(t, err)
}

func TestBatch(t *testing.T) {
	docs := map[string][]byte{
		"a.json": testdata.Fixture("patient.json"),
		"b.json": []byte(`{"resourceType": "Patient", "gender": "robot"}`),
		"c.json": []byte(`not json`),
		"d.json": testdata.Fixture("observation.json"),
	}
	names := slices.Sorted(maps.Keys(docs))
	seq := func(yield func(string, []byte) bool) {
		for _, name := range names {
			if !yield(name, docs[name]) {
				return
			}
		}
	}

	results, err := validate.Batch(context.Background(), seq, validate.WithWorkers(2))
	require.NoError(t, err)
	require.Len(t, results, 4)

	var valid []bool
	for i, r := range results {
		assert.Equal(t, names[i], r.Name)
		valid = append(valid, r.Valid())
	}
	assert.Equal(t, []bool{true, false, false, true}, valid)
	assert.Equal(t, "Patient", results[1].Type)
}

func TestBatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	seq := func(yield func(string, []byte) bool) {
		yield("a.json", testdata.Fixture("patient.json"))
	}
	_, err := validate.Batch(ctx, seq)
	assert.ErrorIs(t, err, context.Canceled)
}
