package generate

import (
	"github.com/damedic/fhir-binding-go/schema"
	. "github.com/dave/jennifer/jen"
)

// valueType is how values of one FHIR type are represented in views and
// builders.
type valueType struct {
	goType    func() *Statement
	decoder   func() *Statement
	encoder   func() *Statement
	primitive bool
}

func resolveType(f *schema.Field, typeName string) valueType {
	switch typeName {
	case "boolean":
		return primitiveType(Bool, "AsBool", "FromBool")
	case "integer":
		return primitiveType(Int32, "AsInt32", "FromInt32")
	case "positiveInt":
		return primitiveType(Uint32, "AsPositiveInt", "FromUint32")
	case "unsignedInt":
		return primitiveType(Uint32, "AsUint32", "FromUint32")
	case "decimal":
		return primitiveType(func() *Statement { return Op("*").Qual(apdPkg, "Decimal") }, "AsDecimal", "FromDecimal")
	case "Resource":
		return valueType{
			goType:  func() *Statement { return Qual(modelPkg, "Resource") },
			decoder: func() *Statement { return Id("decodeResource") },
			encoder: func() *Statement { return Id("encodeResource") },
		}
	}

	if !schema.IsPrimitive(typeName) {
		return valueType{
			goType:  func() *Statement { return Id(typeName) },
			decoder: func() *Statement { return Qual(elementPkg, "AsStruct").Call(Id("new" + typeName)) },
			encoder: func() *Statement { return Qual(elementPkg, "FromView").Index(Id(typeName)) },
		}
	}

	if enum, ok := enumName(f); ok && typeName == "code" {
		return valueType{
			goType:    func() *Statement { return Id(enum) },
			decoder:   func() *Statement { return Qual(elementPkg, "AsCode").Call(Id(enum).Dot("Known")) },
			encoder:   func() *Statement { return Qual(elementPkg, "FromString").Index(Id(enum)) },
			primitive: true,
		}
	}
	return valueType{
		goType:    String,
		decoder:   func() *Statement { return Qual(elementPkg, "AsString") },
		encoder:   func() *Statement { return Qual(elementPkg, "FromString").Index(String()) },
		primitive: true,
	}
}

func primitiveType(goType func() *Statement, decoder, encoder string) valueType {
	return valueType{
		goType:    goType,
		decoder:   func() *Statement { return Qual(elementPkg, decoder) },
		encoder:   func() *Statement { return Qual(elementPkg, encoder) },
		primitive: true,
	}
}

// enumName returns the generated type of a code bound to a closed value set.
func enumName(f *schema.Field) (string, bool) {
	if f.Polymorph || !f.Binding.Closed() {
		return "", false
	}
	return schema.GoTypeName(f.Binding.Name), true
}

// hasPrimitiveElement reports whether the primitive field may carry a
// "_field" sibling. Element ids and extension urls are plain strings.
func hasPrimitiveElement(t *schema.Type, f *schema.Field) bool {
	switch {
	case f.Polymorph:
		return false
	case f.Name == "id" && !t.IsResource():
		return false
	case t.Name == "Extension" && f.Name == "url":
		return false
	}
	return schema.IsPrimitive(f.Types[0])
}

func choiceKeysName(t *schema.Type, f *schema.Field) string {
	return lowerFirst(t.Name) + f.GoName + "Keys"
}
