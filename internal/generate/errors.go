package generate

import (
	. "github.com/dave/jennifer/jen"
)

// OperationOutcomeErrorGenerator makes OperationOutcome an error, so
// outcomes produced by validation can travel through error returns.
type OperationOutcomeErrorGenerator struct {
	NoOpGenerator
}

func (g OperationOutcomeErrorGenerator) GenerateType(f *File, rt TypeGroup) bool {
	if rt.Name == "OperationOutcome" {
		implementErrorForOperationOutcome(f)
		return true
	}
	return false
}

func implementErrorForOperationOutcome(f *File) {
	f.Comment("Error renders the outcome as indented JSON.")
	f.Func().
		Params(Id("o").Id("OperationOutcome")).
		Id("Error").
		Params().
		String().
		Block(
			Return(Id("o").Dot("String").Call()),
		)
	f.Line()
}
