package generate

import (
	"fmt"
	"strings"

	"github.com/damedic/fhir-binding-go/schema"
	. "github.com/dave/jennifer/jen"
)

type TypesGenerator struct {
	NoOpGenerator
}

func (g TypesGenerator) GenerateType(f *File, rt TypeGroup) bool {
	for _, t := range rt.Structs {
		generateView(f, t)
		for i := range t.Fields {
			generateAccessors(f, t, &t.Fields[i])
		}
	}
	return true
}

func (g TypesGenerator) GenerateAdditional(f func(fileName string, pkgName string) *File, release string, rt []TypeGroup) {
	implementContainedResource(f("contained_resource", pkgNameOf(release)))
}

func generateView(f *File, t *schema.Type) {
	switch t.Kind {
	case schema.KindResource:
		f.Comment(fmt.Sprintf("%s is a view of a FHIR %s resource.", t.Name, t.Name))
	case schema.KindBackbone:
		f.Comment(fmt.Sprintf("%s is a view of the FHIR element %s.", t.Name, t.Path))
	default:
		f.Comment(fmt.Sprintf("%s is a view of the FHIR %s datatype.", t.Name, t.Name))
	}
	if t.Doc != "" {
		f.Comment("//")
		docLines(f, t.Doc)
	}
	f.Type().Id(t.Name).Struct(
		Id("node").Qual(elementPkg, "Node"),
	)
	f.Line()
}

func generateAccessors(f *File, t *schema.Type, sf *schema.Field) {
	if sf.Polymorph {
		generateChoiceAccessors(f, t, sf)
		return
	}

	vt := resolveType(sf, sf.Types[0])
	args := []Code{Id("r").Dot("node"), Lit(sf.Name), vt.decoder()}

	if sf.Doc != "" {
		docLines(f, sf.Doc)
	}
	getter := f.Func().Params(Id("r").Id(t.Name)).Id(sf.GoName).Params()
	switch {
	case sf.Repeated() && sf.Required():
		getter.Params(Index().Add(vt.goType()), Error()).Block(
			Return(Qual(elementPkg, "RequiredRepeated").Call(args...)),
		)
	case sf.Repeated():
		getter.Params(Index().Add(vt.goType()), Error()).Block(
			Return(Qual(elementPkg, "Repeated").Call(args...)),
		)
	case sf.Required():
		getter.Params(vt.goType(), Error()).Block(
			Return(Qual(elementPkg, "Required").Call(args...)),
		)
	default:
		getter.Params(vt.goType(), Bool(), Error()).Block(
			Return(Qual(elementPkg, "Optional").Call(args...)),
		)
	}
	f.Line()

	if !hasPrimitiveElement(t, sf) {
		return
	}
	f.Comment(fmt.Sprintf("%sElement returns the id and extensions of %s.", sf.GoName, sf.Name))
	if sf.Repeated() {
		f.Func().Params(Id("r").Id(t.Name)).Id(sf.GoName+"Element").Params().Params(Index().Id("Element"), Error()).Block(
			Return(Id("primitiveElements").Call(Id("r").Dot("node"), Lit(sf.Name))),
		)
	} else {
		f.Func().Params(Id("r").Id(t.Name)).Id(sf.GoName+"Element").Params().Params(Id("Element"), Bool(), Error()).Block(
			Return(Id("primitiveElement").Call(Id("r").Dot("node"), Lit(sf.Name))),
		)
	}
	f.Line()
}

func generateChoiceAccessors(f *File, t *schema.Type, sf *schema.Field) {
	keys := choiceKeysName(t, sf)

	f.Var().Id(keys).Op("=").Index().String().ValuesFunc(func(g *Group) {
		for _, k := range sf.Keys() {
			g.Lit(k)
		}
	})
	f.Line()

	if sf.Doc != "" {
		docLines(f, sf.Doc)
		f.Comment("//")
	}
	f.Comment(fmt.Sprintf("%s returns the key of the populated variant of %s[x].", sf.GoName, sf.Name))
	f.Func().Params(Id("r").Id(t.Name)).Id(sf.GoName).Params().Params(String(), Bool(), Error()).Block(
		Return(Qual(elementPkg, "Choice").Call(Id("r").Dot("node"), Lit(sf.Name), Id(keys).Op("..."))),
	)
	f.Line()

	for _, v := range sf.Variants() {
		vt := resolveType(sf, v.Type)
		f.Func().Params(Id("r").Id(t.Name)).Id(schema.GoFieldName(v.Key)).Params().Params(vt.goType(), Bool(), Error()).Block(
			Return(Qual(elementPkg, "Variant").Call(Id("r").Dot("node"), Lit(v.Key), vt.decoder(), Lit(sf.Name), Id(keys).Op("..."))),
		)
		f.Line()
	}
}

func implementContainedResource(f *File) {
	f.Comment("ContainedResource holds a resource of any type of this package, such as")
	f.Comment("an entry of contained. Its JSON form dispatches on resourceType.")
	f.Type().Id("ContainedResource").Struct(
		Qual(modelPkg, "Resource"),
	)
	f.Line()
}

func pkgNameOf(release string) string {
	return strings.ToLower(release)
}
