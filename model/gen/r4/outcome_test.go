package r4_test

import (
	"strings"
	"testing"

	"github.com/damedic/fhir-binding-go/model/gen/r4"
	"github.com/damedic/fhir-binding-go/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperationOutcomeFromResult(t *testing.T) {
	doc := []byte(`{"resourceType": "Patient", "gender": "robot", "birthDate": "yesterday"}`)
	res, err := validate.Document(doc)
	require.NoError(t, err)
	require.Len(t, res.Issues, 2)

	oo := r4.OperationOutcomeFromResult(res)
	issues, err := oo.Issue()
	require.NoError(t, err)
	require.Len(t, issues, 2)

	code, err := issues[0].Code()
	require.NoError(t, err)
	assert.Equal(t, r4.IssueTypeCodeInvalid, code)

	severity, err := issues[0].Severity()
	require.NoError(t, err)
	assert.Equal(t, r4.IssueSeverityError, severity)

	expr, err := issues[0].Expression()
	require.NoError(t, err)
	assert.Equal(t, []string{"Patient.gender"}, expr)

	diagnostics, ok, err := issues[1].Diagnostics()
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, strings.Contains(diagnostics, "Patient.birthDate"), diagnostics)

	check, err := validate.Resource(oo)
	require.NoError(t, err)
	assert.True(t, check.Valid(), check.Err())
}

func TestOperationOutcomeFromValidResult(t *testing.T) {
	oo := r4.OperationOutcomeFromResult(validate.Result{Type: "Patient"})

	issues, err := oo.Issue()
	require.NoError(t, err)
	require.Len(t, issues, 1)

	severity, err := issues[0].Severity()
	require.NoError(t, err)
	assert.Equal(t, r4.IssueSeverityInformation, severity)
}
