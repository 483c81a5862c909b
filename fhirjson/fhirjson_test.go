package fhirjson_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/damedic/fhir-binding-go/element"
	"github.com/damedic/fhir-binding-go/fhirjson"
	"github.com/damedic/fhir-binding-go/model/gen/r4"
	"github.com/damedic/fhir-binding-go/testdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireCodecError(t *testing.T, err error, kind element.ErrorKind, path element.Path) {
	t.Helper()
	e, ok := element.AsError(err)
	require.True(t, ok, "expected a codec error, got %v", err)
	assert.Equal(t, kind, e.Kind, e.Error())
	assert.Equal(t, path, e.Path)
}

func TestDecode(t *testing.T) {
	obj, rt, err := fhirjson.Decode(testdata.Fixture("vision-prescription.json"))
	require.NoError(t, err)
	assert.Equal(t, "VisionPrescription", rt)
	assert.Equal(t, "resourceType", obj.Keys()[0])

	obj, rt, err = fhirjson.Read(strings.NewReader(`{"resourceType":"Observation"}`))
	require.NoError(t, err, "minimum cardinality is left to validation")
	assert.Equal(t, "Observation", rt)
	assert.Equal(t, 1, obj.Len())
}

func TestDecodeFirstProblem(t *testing.T) {
	for _, tt := range []struct {
		name string
		doc  string
		kind element.ErrorKind
		path element.Path
	}{
		{"syntax", `{"resourceType":"Patient",}`, element.ParseFailure, ""},
		{"no resource type", `{"id":"1"}`, element.MissingRequiredField, "resourceType"},
		{"unknown resource type", `{"resourceType":"Spaceship"}`, element.InvalidValue, "resourceType"},
		{"resource type kind", `{"resourceType":7}`, element.TypeMismatch, "resourceType"},
		{"datatype as resource", `{"resourceType":"Quantity"}`, element.InvalidValue, "resourceType"},
		{"enum", `{"resourceType":"Patient","gender":"robot","birthDate":"yesterday"}`, element.UnknownEnumValue, "Patient.gender"},
		{"format", `{"resourceType":"Patient","birthDate":"yesterday"}`, element.InvalidValue, "Patient.birthDate"},
		{"unknown field", `{"resourceType":"Basic","code":{},"colour":"red"}`, element.UnknownField, "Basic.colour"},
		{"ambiguous", `{"resourceType":"Patient","deceasedBoolean":true,"deceasedDateTime":"2020"}`, element.AmbiguousChoice, "Patient.deceased"},
		{"array for single", `{"resourceType":"Patient","gender":["male"]}`, element.TypeMismatch, "Patient.gender"},
		{"single for array", `{"resourceType":"Patient","name":{"family":"Doe"}}`, element.TypeMismatch, "Patient.name"},
		{"number kind", `{"resourceType":"Patient","active":"yes"}`, element.TypeMismatch, "Patient.active"},
		{"integer range", `{"resourceType":"Patient","multipleBirthInteger":3000000000}`, element.InvalidValue, "Patient.multipleBirthInteger"},
		{"null entry", `{"resourceType":"Patient","name":[null]}`, element.TypeMismatch, "Patient.name[0]"},
		{"misaligned extensions", `{"resourceType":"Patient","name":[{"given":["a"],"_given":[null,null]}]}`, element.InvalidValue, "Patient.name[0]._given"},
		{"nested resource", `{"resourceType":"Bundle","type":"collection","entry":[{"resource":{"resourceType":"Patient","gender":"robot"}}]}`, element.UnknownEnumValue, "Bundle.entry[0].resource.gender"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := fhirjson.Decode([]byte(tt.doc))
			require.Error(t, err)
			requireCodecError(t, err, tt.kind, tt.path)
		})
	}
}

func TestLenient(t *testing.T) {
	lenient := fhirjson.WithPolicy(fhirjson.Lenient())

	for _, doc := range []string{
		`{"resourceType":"Basic","code":{},"colour":"red"}`,
		`{"resourceType":"Patient","deceasedBoolean":true,"deceasedDateTime":"2020"}`,
		`{"resourceType":"Patient","birthDate":"yesterday"}`,
	} {
		obj, _, err := fhirjson.Decode([]byte(doc), lenient)
		require.NoError(t, err, doc)
		out, err := element.Marshal(obj)
		require.NoError(t, err)
		assert.Equal(t, doc, string(out))
	}

	_, _, err := fhirjson.Decode([]byte(`{"resourceType":"Patient","gender":"robot"}`), lenient)
	requireCodecError(t, err, element.UnknownEnumValue, "Patient.gender")
}

func TestNullChoiceVariantIsAbsent(t *testing.T) {
	doc := `{"resourceType":"Observation","status":"final","code":{"text":"x"},"valueString":null,"valueBoolean":true}`

	obj, typ, err := fhirjson.Decode([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "Observation", typ)

	_, ok := obj.Get("valueString")
	assert.True(t, ok)

	obs, err := r4.UnmarshalObservation([]byte(doc))
	require.NoError(t, err)
	b, ok, err := obs.ValueBoolean()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, b)
}

func TestDecodeAs(t *testing.T) {
	obj, err := fhirjson.DecodeAs([]byte(`{"value":1.50,"unit":"mg"}`), "Quantity")
	require.NoError(t, err)
	v, _ := obj.Get("value")
	assert.Equal(t, element.Number("1.50"), v)

	_, err = fhirjson.DecodeAs([]byte(`{"value":"1.50"}`), "Quantity")
	requireCodecError(t, err, element.TypeMismatch, "Quantity.value")

	_, err = fhirjson.DecodeAs([]byte(`{"resourceType":"Basic"}`), "Patient")
	requireCodecError(t, err, element.InvalidValue, "Patient.resourceType")

	_, err = fhirjson.DecodeAs([]byte(`{"eye":"middle"}`), "VisionPrescriptionLensSpecification")
	requireCodecError(t, err, element.UnknownEnumValue, "VisionPrescription.lensSpecification.eye")

	_, err = fhirjson.DecodeAs([]byte(`{}`), "Spaceship")
	assert.Error(t, err)
}

func TestEncode(t *testing.T) {
	obs := r4.NewObservation(r4.NewCodeableConcept().SetText("weight").Build(), r4.ObservationStatusFinal).Build()

	out, err := fhirjson.Marshal(obs)
	require.NoError(t, err)
	assert.Equal(t, `{"code":{"text":"weight"},"status":"final"}`, string(out))

	out, err = fhirjson.MarshalResource(obs)
	require.NoError(t, err)
	assert.Equal(t, `{"resourceType":"Observation","code":{"text":"weight"},"status":"final"}`, string(out))

	var buf bytes.Buffer
	require.NoError(t, fhirjson.Encode(&buf, obs))
	assert.Equal(t, string(out), buf.String())

	_, rt, err := fhirjson.Decode(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "Observation", rt)

	out, err = fhirjson.MarshalIndent(obs, "", " ")
	require.NoError(t, err)
	assert.Equal(t, "{\n \"code\": {\n  \"text\": \"weight\"\n },\n \"status\": \"final\"\n}", string(out))
}
