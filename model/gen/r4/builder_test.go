package r4_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/damedic/fhir-binding-go/element"
	"github.com/damedic/fhir-binding-go/fhirjson"
	"github.com/damedic/fhir-binding-go/model/gen/r4"
	"github.com/damedic/fhir-binding-go/testdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVisionPrescription() r4.VisionPrescription {
	return r4.NewVisionPrescription(
		[]r4.VisionPrescriptionLensSpecification{
			r4.NewVisionPrescriptionLensSpecification(r4.NewCodeableConcept().Build()).Build(),
		},
		r4.NewReference().SetIdentifier(r4.NewIdentifier().SetId("id").SetValue("value").Build()).Build(),
		r4.NewReference().Build(),
	).Build()
}

func TestBuilderMarshalsOnlySetFields(t *testing.T) {
	data, err := json.Marshal(newVisionPrescription())
	require.NoError(t, err)

	assert.Equal(t,
		`{"lensSpecification":[{"product":{}}],"patient":{"identifier":{"id":"id","value":"value"}},"prescriber":{}}`,
		string(data),
	)
}

func TestToBuilderLeavesOriginalUnchanged(t *testing.T) {
	vp := newVisionPrescription()
	pirate := vp.ToBuilder().SetLanguage("Pirate").Build()

	lang, ok, err := pirate.Language()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Pirate", lang)

	_, ok, err = vp.Language()
	require.NoError(t, err)
	assert.False(t, ok)

	data, err := json.Marshal(vp)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "Pirate")
}

func TestChangingLanguageKeepsEverythingElse(t *testing.T) {
	vp, err := r4.UnmarshalVisionPrescription(testdata.Fixture("vision-prescription.json"))
	require.NoError(t, err)

	pirate := vp.ToBuilder().SetLanguage("Pirate").Build()

	orig, err := fhirjson.MarshalResource(vp)
	require.NoError(t, err)
	changed, err := fhirjson.MarshalResource(pirate)
	require.NoError(t, err)

	require.Contains(t, string(orig), `"prism":[`)
	want := strings.Replace(string(orig), `"language":"en"`, `"language":"Pirate"`, 1)
	assert.NotEqual(t, string(orig), want)
	assert.Equal(t, want, string(changed))
}

func TestBuiltPositiveIntIsCheckedOnRead(t *testing.T) {
	cp := r4.NewContactPoint().SetRank(0).Build()
	_, _, err := cp.Rank()
	assert.True(t, errors.Is(err, element.ErrInvalidValue))

	cp = cp.ToBuilder().SetRank(1).Build()
	rank, ok, err := cp.Rank()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint32(1), rank)
}

func TestBuiltViewsAreIndependentOfTheirBuilder(t *testing.T) {
	b := r4.NewPatient().SetGender(r4.AdministrativeGenderFemale)
	first := b.Build()
	second := b.SetGender(r4.AdministrativeGenderMale).AddName(r4.NewHumanName().SetFamily("Chalmers").Build()).Build()

	gender, _, err := first.Gender()
	require.NoError(t, err)
	assert.Equal(t, r4.AdministrativeGenderFemale, gender)

	names, err := first.Name()
	require.NoError(t, err)
	assert.Empty(t, names)

	gender, _, err = second.Gender()
	require.NoError(t, err)
	assert.Equal(t, r4.AdministrativeGenderMale, gender)
}

func TestSetterWithEmptyValueRemovesField(t *testing.T) {
	p := r4.NewPatient().SetBirthDate("1974-12-25").SetBirthDate("").Build()

	_, ok, err := p.BirthDate()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestChoiceSetterReplacesOtherVariants(t *testing.T) {
	obs := r4.NewObservation(r4.NewCodeableConcept().SetText("glucose").Build(), r4.ObservationStatusFinal).
		SetValueString("high").
		SetValueBoolean(true).
		Build()

	key, ok, err := obs.Value()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "valueBoolean", key)

	_, ok, err = obs.ValueString()
	require.NoError(t, err)
	assert.False(t, ok)

	v, ok, err := obs.ValueBoolean()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, v)
}

func TestRequiredAccessorOfZeroView(t *testing.T) {
	var vp r4.VisionPrescription

	_, err := vp.Patient()
	require.Error(t, err)
	assert.True(t, errors.Is(err, element.ErrMissingRequiredField))

	var e *element.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, element.Path("patient"), e.Path)
}

func TestPrimitiveElementSetter(t *testing.T) {
	ext := r4.NewExtension("http://example.org/fhir/StructureDefinition/precision").
		SetValueCode("day").
		Build()
	p := r4.NewPatient().
		SetBirthDate("1974-12-25").
		SetBirthDateElement(r4.NewElement().SetExtension(ext).Build()).
		Build()

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"birthDate":"1974-12-25","_birthDate":{"extension":[{"url":"http://example.org/fhir/StructureDefinition/precision","valueCode":"day"}]}}`,
		string(data),
	)

	el, ok, err := p.BirthDateElement()
	require.NoError(t, err)
	require.True(t, ok)
	exts, err := el.Extension()
	require.NoError(t, err)
	require.Len(t, exts, 1)
	url, err := exts[0].Url()
	require.NoError(t, err)
	assert.Equal(t, "http://example.org/fhir/StructureDefinition/precision", url)
}
