package r4_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/damedic/fhir-binding-go/element"
	"github.com/damedic/fhir-binding-go/fhirjson"
	"github.com/damedic/fhir-binding-go/model/gen/r4"
	"github.com/damedic/fhir-binding-go/testdata"
	"github.com/damedic/fhir-binding-go/testdata/assert"
	"github.com/stretchr/testify/require"

	testifyassert "github.com/stretchr/testify/assert"
)

func TestRoundTripExamples(t *testing.T) {
	for name, data := range testdata.Examples() {
		t.Run(name, func(t *testing.T) {
			var r r4.ContainedResource
			require.NoError(t, json.Unmarshal(data, &r))

			out, err := json.Marshal(r)
			require.NoError(t, err)
			assert.JSONEqual(t, string(data), string(out))
		})
	}
}

func TestUnmarshalVisionPrescription(t *testing.T) {
	vp, err := r4.UnmarshalVisionPrescription(testdata.Fixture("vision-prescription.json"))
	require.NoError(t, err)

	status, err := vp.Status()
	require.NoError(t, err)
	testifyassert.Equal(t, r4.FinancialResourceStatusCodesActive, status)

	specs, err := vp.LensSpecification()
	require.NoError(t, err)
	require.Len(t, specs, 2)

	sphere, ok, err := specs[0].Sphere()
	require.NoError(t, err)
	require.True(t, ok)
	testifyassert.Equal(t, "-2.00", sphere.String())

	prisms, err := specs[0].Prism()
	require.NoError(t, err)
	require.Len(t, prisms, 2)
	base, err := prisms[1].Base()
	require.NoError(t, err)
	testifyassert.Equal(t, r4.VisionBaseOut, base)

	eye, err := specs[1].Eye()
	require.NoError(t, err)
	testifyassert.Equal(t, r4.VisionEyesLeft, eye)

	axis, ok, err := specs[1].Axis()
	require.NoError(t, err)
	require.True(t, ok)
	testifyassert.Equal(t, int32(180), axis)
}

func TestUnmarshalRejectsOtherResourceType(t *testing.T) {
	_, err := r4.UnmarshalPatient(testdata.Fixture("vision-prescription.json"))
	require.Error(t, err)
}

func TestUnmarshalReportsFirstProblem(t *testing.T) {
	doc := []byte(`{"resourceType": "Patient", "gender": "robot"}`)

	_, err := r4.UnmarshalPatient(doc)
	require.Error(t, err)
	testifyassert.True(t, errors.Is(err, element.ErrUnknownEnumValue))

	var e *element.Error
	require.ErrorAs(t, err, &e)
	testifyassert.Equal(t, element.Path("Patient.gender"), e.Path)
}

func TestUnmarshalLenientKeepsUnknownFields(t *testing.T) {
	doc := []byte(`{"resourceType": "Basic", "code": {"text": "x"}, "colour": "red"}`)

	_, err := r4.UnmarshalBasic(doc)
	require.Error(t, err)
	testifyassert.True(t, errors.Is(err, element.ErrUnknownField))

	basic, err := r4.UnmarshalBasic(doc, fhirjson.WithPolicy(fhirjson.Lenient()))
	require.NoError(t, err)

	out, err := json.Marshal(basic)
	require.NoError(t, err)
	assert.JSONEqual(t, string(doc), string(out))
}

func TestUnmarshalJSONImplementsJSONUnmarshaler(t *testing.T) {
	var p r4.Patient
	require.NoError(t, json.Unmarshal(testdata.Fixture("patient.json"), &p))

	gender, ok, err := p.Gender()
	require.NoError(t, err)
	require.True(t, ok)
	testifyassert.Equal(t, r4.AdministrativeGenderMale, gender)

	names, err := p.Name()
	require.NoError(t, err)
	require.NotEmpty(t, names)
	given, err := names[0].Given()
	require.NoError(t, err)
	elements, err := names[0].GivenElement()
	require.NoError(t, err)
	testifyassert.Len(t, elements, len(given))

	exts, err := elements[1].Extension()
	require.NoError(t, err)
	testifyassert.NotEmpty(t, exts)
}

func TestContainedResources(t *testing.T) {
	bundle, err := r4.UnmarshalBundle(testdata.Fixture("bundle.json"))
	require.NoError(t, err)

	entries, err := bundle.Entry()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	res, ok, err := entries[0].Resource()
	require.NoError(t, err)
	require.True(t, ok)
	patient, ok := res.(r4.Patient)
	require.True(t, ok)
	testifyassert.Equal(t, "Patient", patient.ResourceType())
	testifyassert.Equal(t, element.Path("Bundle.entry[0].resource"), patient.ElementNode().Path())

	req, ok, err := entries[1].Request()
	require.NoError(t, err)
	require.True(t, ok)
	method, err := req.Method()
	require.NoError(t, err)
	testifyassert.Equal(t, r4.HttpverbPost, method)
}

func TestUnmarshalResourceDispatchesOnResourceType(t *testing.T) {
	r, err := r4.UnmarshalResource(testdata.Fixture("observation.json"))
	require.NoError(t, err)

	obs, ok := r.(r4.Observation)
	require.True(t, ok)
	key, ok, err := obs.Value()
	require.NoError(t, err)
	require.True(t, ok)
	testifyassert.Equal(t, "valueQuantity", key)

	q, ok, err := obs.ValueQuantity()
	require.NoError(t, err)
	require.True(t, ok)
	v, ok, err := q.Value()
	require.NoError(t, err)
	require.True(t, ok)
	testifyassert.Equal(t, "6.30", v.String())
}

func TestContainedResourceNil(t *testing.T) {
	out, err := json.Marshal(r4.ContainedResource{})
	require.NoError(t, err)
	testifyassert.Equal(t, "null", string(out))
	testifyassert.Equal(t, "null", r4.ContainedResource{}.String())
}

func TestMarshalResourceAddsResourceType(t *testing.T) {
	p := r4.NewPatient().SetActive(true).Build()

	out, err := fhirjson.MarshalResource(p)
	require.NoError(t, err)
	testifyassert.Equal(t, `{"resourceType":"Patient","active":true}`, string(out))

	out, err = json.Marshal(p)
	require.NoError(t, err)
	testifyassert.Equal(t, `{"active":true}`, string(out))
}

func TestMarshalKeepsNarrativeMarkup(t *testing.T) {
	div := `<div xmlns="http://www.w3.org/1999/xhtml">a &amp; b</div>`
	p := r4.NewPatient().SetText(r4.NewNarrative(div, r4.NarrativeStatusGenerated).Build()).Build()

	out, err := fhirjson.Marshal(p)
	require.NoError(t, err)
	testifyassert.Contains(t, string(out), `"div":"<div xmlns=\"http://www.w3.org/1999/xhtml\">a &amp; b</div>"`)

	// encoding/json escapes HTML in what MarshalJSON returns.
	out, err = json.Marshal(p)
	require.NoError(t, err)
	testifyassert.Contains(t, string(out), `\u003cdiv`)
}

func TestValueSetKnown(t *testing.T) {
	testifyassert.True(t, r4.AdministrativeGenderUnknown.Known())
	testifyassert.True(t, r4.QuantityComparatorLessThanOrEqualTo.Known())
	testifyassert.False(t, r4.AdministrativeGender("robot").Known())
	testifyassert.Equal(t, r4.ObservationStatus("corrected"), r4.ObservationStatusCorrected)
}

func TestOperationOutcomeIsError(t *testing.T) {
	oo, err := r4.UnmarshalOperationOutcome(testdata.Fixture("operation-outcome.json"))
	require.NoError(t, err)

	var target error = oo
	testifyassert.Contains(t, target.Error(), `"issue"`)
}
