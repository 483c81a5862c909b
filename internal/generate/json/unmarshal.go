package json

import (
	"fmt"
	"strings"

	"github.com/damedic/fhir-binding-go/internal/generate"
	. "github.com/dave/jennifer/jen"
)

type UnmarshalGenerator struct {
	generate.NoOpGenerator
}

func (g UnmarshalGenerator) GenerateType(f *File, rt generate.TypeGroup) bool {
	for _, t := range rt.Structs {
		f.Comment(fmt.Sprintf("Unmarshal%s decodes a document holding %s.", t.Name, t.Path))
		f.Func().Id("Unmarshal"+t.Name).Params(
			Id("data").Index().Byte(),
			Id("opts").Op("...").Qual(fhirjsonPkg, "Option"),
		).Params(Id(t.Name), Error()).Block(
			List(Id("obj"), Err()).Op(":=").Qual(fhirjsonPkg, "DecodeAs").Call(Id("data"), Lit(t.Name), Id("opts").Op("...")),
			If(Err().Op("!=").Nil()).Block(
				Return(Id(t.Name).Values(), Err()),
			),
			Return(Id("new"+t.Name).Call(Qual(elementPkg, "NewNode").Call(Id("obj"), Qual(elementPkg, "Root").Call(Lit(t.Path)))), Nil()),
		)
		f.Line()

		f.Func().Params(Id("r").Op("*").Id(t.Name)).Id("UnmarshalJSON").Params(Id("data").Index().Byte()).Error().Block(
			List(Id("v"), Err()).Op(":=").Id("Unmarshal"+t.Name).Call(Id("data")),
			If(Err().Op("!=").Nil()).Block(
				Return(Err()),
			),
			Op("*").Id("r").Op("=").Id("v"),
			Return(Nil()),
		)
		f.Line()
	}

	return true
}

func (g UnmarshalGenerator) GenerateAdditional(f func(fileName string, pkgName string) *File, release string, rt []generate.TypeGroup) {
	implementUnmarshalContained(f("contained_resource", strings.ToLower(release)), generate.FilterResources(rt))
}

func implementUnmarshalContained(f *File, resources []generate.TypeGroup) {
	f.Func().Params(Id("r").Op("*").Id("ContainedResource")).Id("UnmarshalJSON").Params(Id("data").Index().Byte()).Error().Block(
		List(Id("res"), Err()).Op(":=").Id("UnmarshalResource").Call(Id("data")),
		If(Err().Op("!=").Nil()).Block(
			Return(Err()),
		),
		Id("r").Dot("Resource").Op("=").Id("res"),
		Return(Nil()),
	)
	f.Line()

	f.Comment("UnmarshalResource decodes a document of any resource type of this package.")
	f.Func().Id("UnmarshalResource").Params(
		Id("data").Index().Byte(),
		Id("opts").Op("...").Qual(fhirjsonPkg, "Option"),
	).Params(Qual(modelPkg, "Resource"), Error()).Block(
		List(Id("obj"), Id("_"), Err()).Op(":=").Qual(fhirjsonPkg, "Decode").Call(Id("data"), Id("opts").Op("...")),
		If(Err().Op("!=").Nil()).Block(
			Return(Nil(), Err()),
		),
		Return(Id("decodeResource").Call(Id("obj"), Lit(""))),
	)
	f.Line()

	f.Func().Id("decodeResource").Params(
		Id("v").Qual(elementPkg, "Value"),
		Id("p").Qual(elementPkg, "Path"),
	).Params(Qual(modelPkg, "Resource"), Error()).Block(
		List(Id("n"), Err()).Op(":=").Qual(elementPkg, "AsNode").Call(Id("v"), Id("p")),
		If(Err().Op("!=").Nil()).Block(
			Return(Nil(), Err()),
		),
		List(Id("name"), Err()).Op(":=").Qual(elementPkg, "Required").Call(Id("n"), Lit("resourceType"), Qual(elementPkg, "AsString")),
		If(Err().Op("!=").Nil()).Block(
			Return(Nil(), Err()),
		),
		If(Id("p").Op("==").Lit("")).Block(
			Id("n").Op("=").Qual(elementPkg, "NewNode").Call(Id("n").Dot("Object").Call(), Qual(elementPkg, "Root").Call(Id("name"))),
		),
		Switch(Id("name")).BlockFunc(func(g *Group) {
			for _, r := range resources {
				g.Case(Lit(r.Name)).Block(
					Return(Id("new"+r.Name).Call(Id("n")), Nil()),
				)
			}
		}),
		Return(Nil(), Op("&").Qual(elementPkg, "Error").Values(
			Id("Kind").Op(":").Qual(elementPkg, "InvalidValue"),
			Id("Path").Op(":").Id("p").Dot("Field").Call(Lit("resourceType")),
			Id("Raw").Op(":").Id("name"),
			Id("Detail").Op(":").Lit("unknown resource type"),
		)),
	)
	f.Line()
}
