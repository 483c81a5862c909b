package generate

import (
	"fmt"

	"github.com/damedic/fhir-binding-go/schema"
	. "github.com/dave/jennifer/jen"
)

// ValueSetsGenerator emits a string type with one constant per code for
// every value set of a required binding whose codes are known.
type ValueSetsGenerator struct {
	NoOpGenerator
}

func (g ValueSetsGenerator) GenerateAdditional(f func(fileName string, pkgName string) *File, release string, rt []TypeGroup) {
	if len(rt) == 0 {
		return
	}
	valueSets := rt[0].Registry.ValueSets()
	if len(valueSets) == 0 {
		return
	}

	vf := f("value_sets", pkgNameOf(release))
	for _, vs := range valueSets {
		generateValueSet(vf, vs)
	}
}

func generateValueSet(f *File, vs *schema.ValueSet) {
	typeName := schema.GoTypeName(vs.Name)

	f.Comment(fmt.Sprintf("%s holds the codes of %s.", typeName, vs.URL))
	f.Type().Id(typeName).String()
	f.Line()

	var names []Code
	seen := map[string]bool{}
	f.Const().DefsFunc(func(g *Group) {
		for _, c := range vs.Codes {
			name := schema.ConstantName(vs.Name, c.Code)
			if seen[name] {
				continue
			}
			seen[name] = true
			names = append(names, Id(name))

			comment := c.Display
			if comment == "" {
				comment = c.Code
			}
			g.Comment(comment)
			g.Id(name).Id(typeName).Op("=").Lit(c.Code)
		}
	})
	f.Line()

	f.Comment(fmt.Sprintf("Known reports whether c is one of the %s codes.", typeName))
	f.Func().Params(Id("c").Id(typeName)).Id("Known").Params().Bool().Block(
		Switch(Id("c")).Block(
			Case(names...).Block(
				Return(True()),
			),
		),
		Return(False()),
	)
	f.Line()
}
