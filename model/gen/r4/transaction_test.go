package r4_test

import (
	"strings"
	"testing"

	"github.com/damedic/fhir-binding-go/model/gen/r4"
	"github.com/damedic/fhir-binding-go/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	patient := r4.NewPatient().SetGender(r4.AdministrativeGenderFemale).Build()
	basic := r4.NewBasic(r4.NewCodeableConcept().SetText("referral").Build()).Build()

	bundle := r4.NewTransaction(
		r4.NewTransactionEntry(patient, r4.HttpverbPost, "Patient"),
		r4.NewTransactionEntry(basic, r4.HttpverbPost, "Basic"),
	)

	entries, err := bundle.Entry()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	first, ok, err := entries[0].FullUrl()
	require.NoError(t, err)
	require.True(t, ok)
	second, _, err := entries[1].FullUrl()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(first, "urn:uuid:"), first)
	assert.NotEqual(t, first, second)

	res, ok, err := entries[1].Resource()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Basic", res.ResourceType())

	check, err := validate.Resource(bundle)
	require.NoError(t, err)
	assert.True(t, check.Valid(), check.Err())
}
