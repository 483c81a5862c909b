package generate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/damedic/fhir-binding-go/internal/generate"
	"github.com/damedic/fhir-binding-go/internal/generate/json"
	"github.com/damedic/fhir-binding-go/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAll(t *testing.T) {
	reg, err := schema.R4()
	require.NoError(t, err)
	dir := t.TempDir()

	err = generate.GenerateAll(reg, "R4", dir,
		generate.ModelPkgDocGenerator{},
		generate.TypesGenerator{},
		generate.ImplElementGenerator{},
		generate.ImplResourceGenerator{},
		generate.BuilderGenerator{},
		json.MarshalGenerator{},
		json.UnmarshalGenerator{},
		generate.StringerGenerator{},
		generate.OperationOutcomeErrorGenerator{},
		generate.ValueSetsGenerator{},
	)
	require.NoError(t, err)

	read := func(name string) string {
		t.Helper()
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		return string(data)
	}

	for _, name := range []string{"doc.go", "contained_resource.go", "primitive_element.go", "value_sets.go", "vision_prescription.go", "codeable_concept.go"} {
		src := read(name)
		assert.True(t, strings.HasPrefix(src, "// Code generated by internal/cmd/generate; DO NOT EDIT.\n"), name)
		assert.Contains(t, src, "package r4", name)
	}

	vp := read("vision_prescription.go")
	assert.Contains(t, vp, "func NewVisionPrescription(lensSpecification []VisionPrescriptionLensSpecification, patient Reference, prescriber Reference) *VisionPrescriptionBuilder {")
	assert.Contains(t, vp, "type VisionPrescriptionLensSpecificationPrism struct {")
	assert.Contains(t, vp, "func UnmarshalVisionPrescription(data []byte, opts ...fhirjson.Option) (VisionPrescription, error) {")
	assert.Contains(t, vp, `return element.RequiredRepeated(r.node, "lensSpecification", element.AsStruct(newVisionPrescriptionLensSpecification))`)

	assert.Contains(t, read("value_sets.go"), "type Httpverb string")
	assert.Contains(t, read("operation_outcome.go"), "func (o OperationOutcome) Error() string {")

	_, err = os.Stat(filepath.Join(dir, "vision_prescription_lens_specification.go"))
	assert.True(t, os.IsNotExist(err), "backbone types share the file of their resource")
}

func TestGroups(t *testing.T) {
	reg, err := schema.R4()
	require.NoError(t, err)

	groups := generate.Groups(reg)
	resources := generate.FilterResources(groups)

	var names []string
	for _, g := range resources {
		names = append(names, g.Name)
	}
	assert.Equal(t, reg.ResourceNames(), names)

	for _, g := range groups {
		if g.Name != "Bundle" {
			continue
		}
		assert.Equal(t, "bundle", g.FileName)
		var structs []string
		for _, s := range g.Structs {
			structs = append(structs, s.Name)
		}
		assert.Equal(t, "Bundle", structs[0])
		assert.Contains(t, structs, "BundleEntryRequest")
	}
}
