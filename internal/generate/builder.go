package generate

import (
	"fmt"
	"slices"
	"strings"

	"github.com/damedic/fhir-binding-go/schema"
	. "github.com/dave/jennifer/jen"
)

// builderRequired overrides which fields the New<Type> constructors take.
// By default these are the fields with minimum cardinality 1 that are not
// choices.
var builderRequired = map[string][]string{
	"VisionPrescription":                  {"lensSpecification", "patient", "prescriber"},
	"VisionPrescriptionLensSpecification": {"product"},
}

type BuilderGenerator struct {
	NoOpGenerator
}

func (g BuilderGenerator) GenerateType(f *File, rt TypeGroup) bool {
	for _, t := range rt.Structs {
		generateBuilder(f, t)
	}
	return true
}

func requiredFields(t *schema.Type) []*schema.Field {
	var fields []*schema.Field
	if names, ok := builderRequired[t.Name]; ok {
		for _, name := range names {
			if sf, ok := t.Field(name); ok {
				fields = append(fields, sf)
			}
		}
	} else {
		for i := range t.Fields {
			if sf := &t.Fields[i]; sf.Required() && !sf.Polymorph {
				fields = append(fields, sf)
			}
		}
	}
	slices.SortFunc(fields, func(a, b *schema.Field) int {
		return strings.Compare(a.Name, b.Name)
	})
	return fields
}

func generateBuilder(f *File, t *schema.Type) {
	builder := t.Name + "Builder"

	f.Comment(fmt.Sprintf("%s assembles %s %s.", builder, article(t.Name), t.Name))
	f.Type().Id(builder).Struct(
		Id("obj").Op("*").Qual(elementPkg, "Object"),
	)
	f.Line()

	required := requiredFields(t)
	f.Comment(fmt.Sprintf("New%s starts %s %s from its required fields.", t.Name, article(t.Name), t.Name))
	f.Func().Id("New" + t.Name).ParamsFunc(func(g *Group) {
		for _, sf := range required {
			vt := resolveType(sf, sf.Types[0])
			if sf.Repeated() {
				g.Id(schema.ParamName(sf.Name)).Index().Add(vt.goType())
			} else {
				g.Id(schema.ParamName(sf.Name)).Add(vt.goType())
			}
		}
	}).Op("*").Id(builder).BlockFunc(func(g *Group) {
		newBuilder := Op("&").Id(builder).Values(Dict{Id("obj"): Qual(elementPkg, "NewObject").Call()})
		if len(required) == 0 {
			g.Return(newBuilder)
			return
		}
		g.Id("b").Op(":=").Add(newBuilder)
		for _, sf := range required {
			if sf.Repeated() {
				g.Id("b").Dot("Set" + sf.GoName).Call(Id(schema.ParamName(sf.Name)).Op("..."))
			} else {
				g.Id("b").Dot("Set" + sf.GoName).Call(Id(schema.ParamName(sf.Name)))
			}
		}
		g.Return(Id("b"))
	})
	f.Line()

	f.Comment("ToBuilder returns a builder starting from a copy of r.")
	f.Func().Params(Id("r").Id(t.Name)).Id("ToBuilder").Params().Op("*").Id(builder).Block(
		Return(Op("&").Id(builder).Values(Dict{
			Id("obj"): Id("r").Dot("node").Dot("Object").Call().Dot("Clone").Call(),
		})),
	)
	f.Line()

	for i := range t.Fields {
		generateSetters(f, t, &t.Fields[i], builder)
	}

	f.Comment(fmt.Sprintf("Build returns the assembled %s.", t.Name))
	f.Func().Params(Id("b").Op("*").Id(builder)).Id("Build").Params().Id(t.Name).Block(
		Return(Id("new"+t.Name).Call(
			Qual(elementPkg, "NewNode").Call(
				Id("b").Dot("obj").Dot("Clone").Call(),
				Qual(elementPkg, "Root").Call(Lit(t.Path)),
			),
		)),
	)
	f.Line()
}

func generateSetters(f *File, t *schema.Type, sf *schema.Field, builder string) {
	setter := func(name string, param *Statement, body Code) {
		f.Func().Params(Id("b").Op("*").Id(builder)).Id(name).Params(Id("v").Add(param)).Op("*").Id(builder).Block(
			body,
			Return(Id("b")),
		)
		f.Line()
	}

	if sf.Polymorph {
		for _, v := range sf.Variants() {
			vt := resolveType(sf, v.Type)
			setter("Set"+schema.GoFieldName(v.Key), vt.goType(),
				Qual(elementPkg, "PutVariant").Call(Id("b").Dot("obj"), Lit(v.Key), Id("v"), vt.encoder(), Id(choiceKeysName(t, sf)).Op("...")),
			)
		}
		return
	}

	vt := resolveType(sf, sf.Types[0])
	if sf.Repeated() {
		setter("Set"+sf.GoName, Op("...").Add(vt.goType()),
			Qual(elementPkg, "PutAll").Call(Id("b").Dot("obj"), Lit(sf.Name), Id("v"), vt.encoder()),
		)
		setter("Add"+sf.GoName, vt.goType(),
			Qual(elementPkg, "Append").Call(Id("b").Dot("obj"), Lit(sf.Name), Id("v"), vt.encoder()),
		)
		return
	}

	setter("Set"+sf.GoName, vt.goType(),
		Qual(elementPkg, "Put").Call(Id("b").Dot("obj"), Lit(sf.Name), Id("v"), vt.encoder()),
	)
	if hasPrimitiveElement(t, sf) {
		setter("Set"+sf.GoName+"Element", Id("Element"),
			Qual(elementPkg, "Put").Call(Id("b").Dot("obj"), Lit("_"+sf.Name), Id("v"), Qual(elementPkg, "FromView").Index(Id("Element"))),
		)
	}
}
