package generate

import (
	"github.com/damedic/fhir-binding-go/schema"
	. "github.com/dave/jennifer/jen"
)

type ImplElementGenerator struct {
	NoOpGenerator
}

func (g ImplElementGenerator) GenerateType(f *File, rt TypeGroup) bool {
	for _, t := range rt.Structs {
		implementElement(f, t)
	}

	return true
}

func (g ImplElementGenerator) GenerateAdditional(f func(fileName string, pkgName string) *File, release string, rt []TypeGroup) {
	implementPrimitiveElement(f("primitive_element", pkgNameOf(release)))
}

func implementElement(f *File, t *schema.Type) {
	f.Func().Id("new"+t.Name).Params(Id("n").Qual(elementPkg, "Node")).Id(t.Name).Block(
		Return(Id(t.Name).Values(Dict{Id("node"): Id("n")})),
	)
	f.Line()

	f.Comment("ElementNode returns the tree the view reads from.")
	f.Func().Params(Id("r").Id(t.Name)).Id("ElementNode").Params().Qual(elementPkg, "Node").Block(
		Return(Id("r").Dot("node")),
	)
	f.Line()
}

func implementPrimitiveElement(f *File) {
	f.Func().Id("primitiveElement").Params(
		Id("n").Qual(elementPkg, "Node"),
		Id("key").String(),
	).Params(Id("Element"), Bool(), Error()).Block(
		List(Id("ext"), Id("ok"), Err()).Op(":=").Qual(elementPkg, "PrimitiveExtension").Call(Id("n"), Id("key")),
		If(Err().Op("!=").Nil().Op("||").Op("!").Id("ok")).Block(
			Return(Id("Element").Values(), False(), Err()),
		),
		Return(Id("newElement").Call(Id("ext")), True(), Nil()),
	)
	f.Line()

	f.Func().Id("primitiveElements").Params(
		Id("n").Qual(elementPkg, "Node"),
		Id("key").String(),
	).Params(Index().Id("Element"), Error()).Block(
		List(Id("exts"), Err()).Op(":=").Qual(elementPkg, "PrimitiveExtensions").Call(Id("n"), Id("key")),
		If(Err().Op("!=").Nil()).Block(
			Return(Nil(), Err()),
		),
		Id("out").Op(":=").Make(Index().Id("Element"), Len(Id("exts"))),
		For(List(Id("i"), Id("ext")).Op(":=").Range().Id("exts")).Block(
			Id("out").Index(Id("i")).Op("=").Id("newElement").Call(Id("ext")),
		),
		Return(Id("out"), Nil()),
	)
	f.Line()
}
