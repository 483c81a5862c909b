// Package json generates the JSON encoding of the views.
package json

import (
	"strings"

	"github.com/damedic/fhir-binding-go/internal/generate"
	. "github.com/dave/jennifer/jen"
)

const (
	moduleName  = "github.com/damedic/fhir-binding-go"
	elementPkg  = moduleName + "/element"
	fhirjsonPkg = moduleName + "/fhirjson"
	modelPkg    = moduleName + "/model"
)

type MarshalGenerator struct {
	generate.NoOpGenerator
}

func (g MarshalGenerator) GenerateType(f *File, rt generate.TypeGroup) bool {
	for _, t := range rt.Structs {
		f.Comment("MarshalJSON encodes r in stored member order. json.Marshal escapes HTML in")
		f.Comment("the result; use fhirjson.Marshal for byte-faithful output.")
		f.Func().Params(Id("r").Id(t.Name)).Id("MarshalJSON").Params().Params(Index().Byte(), Error()).Block(
			Return(Qual(fhirjsonPkg, "Marshal").Call(Id("r"))),
		)
		f.Line()
	}

	return true
}

func (g MarshalGenerator) GenerateAdditional(f func(fileName string, pkgName string) *File, release string, rt []generate.TypeGroup) {
	implementMarshalContained(f("contained_resource", strings.ToLower(release)))
}

func implementMarshalContained(f *File) {
	f.Comment("MarshalJSON encodes the held resource, or null when there is none.")
	f.Comment("json.Marshal escapes HTML in the result; use fhirjson.MarshalResource")
	f.Comment("for byte-faithful output.")
	f.Func().Params(Id("r").Id("ContainedResource")).Id("MarshalJSON").Params().Params(Index().Byte(), Error()).Block(
		If(Id("r").Dot("Resource").Op("==").Nil()).Block(
			Return(Index().Byte().Call(Lit("null")), Nil()),
		),
		Return(Qual(fhirjsonPkg, "MarshalResource").Call(Id("r").Dot("Resource"))),
	)
	f.Line()

	f.Func().Id("encodeResource").Params(Id("r").Qual(modelPkg, "Resource")).Qual(elementPkg, "Value").Block(
		If(Id("r").Op("==").Nil()).Block(
			Return(Qual(elementPkg, "Null").Values()),
		),
		Return(Qual(fhirjsonPkg, "ResourceValue").Call(Id("r"))),
	)
	f.Line()
}
