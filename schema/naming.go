package schema

import (
	"go/token"
	"strings"

	"github.com/iancoleman/strcase"
)

// goNameOverrides maps wire names to Go identifiers where the camel cased
// wire name would clash with a method every generated view carries.
var goNameOverrides = map[string]string{
	"string":       "StringValue",
	"resourceType": "ResourceTypeValue",
	"elementNode":  "ElementNodeValue",
	"build":        "BuildValue",
}

// paramOverrides maps wire names that are Go keywords, predeclared
// identifiers or imported package names to builder parameter names.
var paramOverrides = map[string]string{
	"type":     "typ",
	"range":    "rng",
	"func":     "fn",
	"string":   "str",
	"element":  "elem",
	"model":    "mdl",
	"apd":      "dec",
	"fhirjson": "fj",
}

// GoTypeName converts a FHIR type name or element path to a Go type name,
// e.g. "Observation.referenceRange" becomes "ObservationReferenceRange".
func GoTypeName(name string) string {
	return strcase.ToCamel(name)
}

// GoFieldName converts a wire name to an exported Go identifier.
func GoFieldName(name string) string {
	if o, ok := goNameOverrides[name]; ok {
		return o
	}
	return strcase.ToCamel(name)
}

// ParamName converts a wire name to a Go parameter name.
func ParamName(name string) string {
	if o, ok := paramOverrides[name]; ok {
		return o
	}
	if token.IsKeyword(name) {
		return name + "_"
	}
	return name
}

var constantReplacer = strings.NewReplacer(
	"<=", "LessThanOrEqualTo",
	">=", "GreaterThanOrEqualTo",
	"<", "LessThan",
	">", "GreaterThan",
	"!=", "NotEqualTo",
	"=", "EqualTo",
)

// ConstantName names the constant of a code within a value set, e.g.
// "QuantityComparatorLessThanOrEqualTo".
func ConstantName(valueSetName, code string) string {
	return strcase.ToCamel(valueSetName) + strcase.ToCamel(constantReplacer.Replace(code))
}
