package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/damedic/fhir-binding-go/testdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), err
}

func workspace(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestValidate(t *testing.T) {
	dir := workspace(t, map[string]string{
		"patient.json": string(testdata.Fixture("patient.json")),
		"robot.json":   `{"resourceType":"Patient","gender":"robot"}`,
	})

	out, err := run(t, "validate", "--workers", "2", filepath.Join(dir, "patient.json"), filepath.Join(dir, "robot.json"))

	assert.ErrorIs(t, err, errFailed)
	assert.Contains(t, out, filepath.Join(dir, "patient.json")+": valid\n")
	assert.Contains(t, out, "[code-invalid]")
	assert.Contains(t, out, "Patient.gender")
}

func TestValidateValid(t *testing.T) {
	dir := workspace(t, map[string]string{
		"vision.json": string(testdata.Fixture("vision-prescription.json")),
	})

	out, err := run(t, "validate", dir)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "vision.json")+": valid\n", out)
}

func TestValidateOutcome(t *testing.T) {
	dir := workspace(t, map[string]string{
		"robot.json": `{"resourceType":"Patient","gender":"robot"}`,
	})

	out, err := run(t, "validate", "--outcome", filepath.Join(dir, "robot.json"))

	assert.ErrorIs(t, err, errFailed)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], `{"resourceType":"OperationOutcome"`), lines[0])
	assert.Contains(t, lines[0], `"code":"code-invalid"`)
	assert.Contains(t, lines[0], `"Patient.gender"`)
}

func TestValidateMissingFile(t *testing.T) {
	dir := workspace(t, nil)

	_, err := run(t, "validate", filepath.Join(dir, "missing.json"))

	require.Error(t, err)
	assert.NotErrorIs(t, err, errFailed)
}

func TestRoundtrip(t *testing.T) {
	basic := `{"resourceType":"Basic","code":{"text":"note"},"colour":"red"}`
	dir := workspace(t, map[string]string{
		"basic.json": basic,
	})
	path := filepath.Join(dir, "basic.json")

	out, err := run(t, "roundtrip", "--strict=false", path)
	require.NoError(t, err)
	assert.Equal(t, path+": ok\n", out)

	out, err = run(t, "roundtrip", "--strict=false", "--print", path)
	require.NoError(t, err)
	assert.Equal(t, basic+"\n", out)

	out, err = run(t, "roundtrip", path)
	assert.ErrorIs(t, err, errFailed)
	assert.Contains(t, out, "colour")
}

func TestRoundtripFixtures(t *testing.T) {
	files := map[string]string{}
	for name, data := range testdata.Examples() {
		files[name] = string(data)
	}
	dir := workspace(t, files)

	out, err := run(t, "roundtrip", dir)

	require.NoError(t, err, out)
	assert.Equal(t, len(files), strings.Count(out, ": ok\n"))
}

func TestTypes(t *testing.T) {
	workspace(t, nil)

	out, err := run(t, "types")
	require.NoError(t, err)
	assert.Contains(t, strings.Split(out, "\n"), "VisionPrescription")

	out, err = run(t, "types", "--kind", "valueset")
	require.NoError(t, err)
	assert.Contains(t, out, "http://hl7.org/fhir/ValueSet/administrative-gender")

	_, err = run(t, "types", "--kind", "profile")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "fhirbind "), out)
	assert.Contains(t, out, "(FHIR R4)")
}
