package generate

import (
	. "github.com/dave/jennifer/jen"
)

type StringerGenerator struct {
	NoOpGenerator
}

func (g StringerGenerator) GenerateType(f *File, rt TypeGroup) bool {
	for _, s := range rt.Structs {
		f.Func().Params(Id("r").Id(s.Name)).Id("String").Params().String().Block(
			List(Id("buf"), Id("err")).Op(":=").Qual(fhirjsonPkg, "MarshalIndent").Params(Id("r"), Lit(""), Lit("  ")),
			If(Id("err").Op("!=").Nil()).Block(
				Return(Lit("null")),
			),
			Return(Id("string").Params(Id("buf"))),
		)
		f.Line()
	}

	return true
}

func (g StringerGenerator) GenerateAdditional(f func(fileName string, pkgName string) *File, release string, rt []TypeGroup) {
	implementStringerForContained(f("contained_resource", pkgNameOf(release)))
}

func implementStringerForContained(f *File) {
	f.Func().Params(Id("r").Id("ContainedResource")).Id("String").Params().String().Block(
		If(Id("r").Dot("Resource").Op("==").Nil()).Block(
			Return(Lit("null")),
		),
		List(Id("buf"), Id("err")).Op(":=").Qual(elementPkg, "MarshalIndent").Params(
			Qual(fhirjsonPkg, "ResourceValue").Call(Id("r").Dot("Resource")), Lit(""), Lit("  "),
		),
		If(Id("err").Op("!=").Nil()).Block(
			Return(Lit("null")),
		),
		Return(Id("string").Params(Id("buf"))),
	)
	f.Line()
}
