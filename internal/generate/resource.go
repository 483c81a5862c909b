package generate

import (
	. "github.com/dave/jennifer/jen"
)

type ImplResourceGenerator struct {
	NoOpGenerator
}

func (g ImplResourceGenerator) GenerateType(f *File, rt TypeGroup) bool {
	if !rt.IsResource {
		return false
	}

	f.Func().Params(Id("r").Id(rt.Name)).Id("ResourceType").Params().String().Block(
		Return(Lit(rt.Name)),
	)
	f.Line()
	f.Func().Params(Id("r").Id(rt.Name)).Id("ResourceId").Params().Params(String(), Bool()).Block(
		List(Id("id"), Id("ok"), Err()).Op(":=").Id("r").Dot("Id").Call(),
		Return(Id("id"), Id("ok").Op("&&").Err().Op("==").Nil()),
	)
	f.Line()

	return true
}
