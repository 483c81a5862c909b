package schema

import (
	"regexp"
	"slices"

	"github.com/damedic/fhir-binding-go/element"
)

// Primitive describes the wire representation of a FHIR primitive type.
type Primitive struct {
	Name string
	// Kind is the JSON kind the value is encoded as.
	Kind element.Kind
	// Pattern matches the lexical form; nil when any value of Kind is fine.
	Pattern *regexp.Regexp
}

// Matches reports whether the literal satisfies the lexical format.
func (p Primitive) Matches(literal string) bool {
	return p.Pattern == nil || p.Pattern.MatchString(literal)
}

var (
	decimalPattern   = regexp.MustCompile(`^-?(0|[1-9]\d*)(\.\d+)?([eE][+-]?\d+)?$`)
	integerPattern   = regexp.MustCompile(`^-?(0|[1-9]\d*)$`)
	unsignedPattern  = regexp.MustCompile(`^(0|[1-9]\d*)$`)
	positivePattern  = regexp.MustCompile(`^[1-9]\d*$`)
	stringPattern    = regexp.MustCompile(`^[\s\S]+$`)
	uriPattern       = regexp.MustCompile(`^\S*$`)
	urlPattern       = regexp.MustCompile(`^\S+$`)
	canonicalPattern = regexp.MustCompile(`^\S+(\|\S+)?$`)
	codePattern      = regexp.MustCompile(`^\S+( \S+)*$`)
	idPattern        = regexp.MustCompile(`^[A-Za-z0-9\-.]{1,64}$`)
	oidPattern       = regexp.MustCompile(`^urn:oid:[012](\.(0|[1-9]\d*))+$`)
	uuidPattern      = regexp.MustCompile(`^urn:uuid:[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
	base64Pattern    = regexp.MustCompile(`^(\s*([0-9a-zA-Z+/=]){4}\s*)+$`)
	instantPattern   = regexp.MustCompile(`^(\d{4})-(0[1-9]|1[012])-(0[1-9]|[12]\d|3[01])T([01]\d|2[0-3]):[0-5]\d:([0-5]\d|60)(\.\d+)?(Z|[+-]((0\d|1[0-3]):[0-5]\d|14:00))$`)
	datePattern      = regexp.MustCompile(`^(\d{4})(-(0[1-9]|1[012])(-(0[1-9]|[12]\d|3[01]))?)?$`)
	dateTimePattern  = regexp.MustCompile(`^(\d{4})(-(0[1-9]|1[012])(-(0[1-9]|[12]\d|3[01])(T([01]\d|2[0-3]):[0-5]\d:([0-5]\d|60)(\.\d+)?(Z|[+-]((0\d|1[0-3]):[0-5]\d|14:00))?)?)?)?$`)
	timePattern      = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d:([0-5]\d|60)(\.\d+)?$`)
)

var primitiveTypeNames = []string{
	"base64Binary",
	"boolean",
	"canonical",
	"code",
	"date",
	"dateTime",
	"decimal",
	"id",
	"instant",
	"integer",
	"integer64",
	"markdown",
	"oid",
	"positiveInt",
	"string",
	"time",
	"unsignedInt",
	"uri",
	"url",
	"uuid",
	"xhtml",
}

var primitives = map[string]Primitive{
	"base64Binary": {Kind: element.KindString, Pattern: base64Pattern},
	"boolean":      {Kind: element.KindBool},
	"canonical":    {Kind: element.KindString, Pattern: canonicalPattern},
	"code":         {Kind: element.KindString, Pattern: codePattern},
	"date":         {Kind: element.KindString, Pattern: datePattern},
	"dateTime":     {Kind: element.KindString, Pattern: dateTimePattern},
	"decimal":      {Kind: element.KindNumber, Pattern: decimalPattern},
	"id":           {Kind: element.KindString, Pattern: idPattern},
	"instant":      {Kind: element.KindString, Pattern: instantPattern},
	"integer":      {Kind: element.KindNumber, Pattern: integerPattern},
	"integer64":    {Kind: element.KindString, Pattern: integerPattern},
	"markdown":     {Kind: element.KindString, Pattern: stringPattern},
	"oid":          {Kind: element.KindString, Pattern: oidPattern},
	"positiveInt":  {Kind: element.KindNumber, Pattern: positivePattern},
	"string":       {Kind: element.KindString, Pattern: stringPattern},
	"time":         {Kind: element.KindString, Pattern: timePattern},
	"unsignedInt":  {Kind: element.KindNumber, Pattern: unsignedPattern},
	"uri":          {Kind: element.KindString, Pattern: uriPattern},
	"url":          {Kind: element.KindString, Pattern: urlPattern},
	"uuid":         {Kind: element.KindString, Pattern: uuidPattern},
	"xhtml":        {Kind: element.KindString},
}

func init() {
	for name, p := range primitives {
		p.Name = name
		primitives[name] = p
	}
}

// LookupPrimitive returns the primitive type of the given name.
func LookupPrimitive(name string) (Primitive, bool) {
	p, ok := primitives[name]
	return p, ok
}

// IsPrimitive reports whether name is a FHIR primitive type.
func IsPrimitive(name string) bool {
	return slices.Contains(primitiveTypeNames, name)
}

// PrimitiveTypes returns the primitive type names in alphabetical order.
func PrimitiveTypes() []string {
	return slices.Clone(primitiveTypeNames)
}
