// Package schema describes the shapes of FHIR types.
//
// A Registry is loaded from StructureDefinition, ValueSet and CodeSystem
// bundles in the format HL7 publishes them. The generic codec in fhirjson
// and validate interprets it; internal/generate emits typed views from it.
package schema

import (
	"slices"
	"strings"
)

// Kind classifies a Type.
type Kind uint8

const (
	KindComplex Kind = iota + 1
	KindResource
	KindBackbone
)

func (k Kind) String() string {
	switch k {
	case KindComplex:
		return "complex-type"
	case KindResource:
		return "resource"
	case KindBackbone:
		return "backbone"
	default:
		return "unknown"
	}
}

// ResourceTypeKey is the member naming the type of a resource document.
const ResourceTypeKey = "resourceType"

// Type is a complex datatype, a resource or a backbone element.
type Type struct {
	// Name is the FHIR type name, or for backbone elements the owner's name
	// followed by the camel cased field name, e.g.
	// "VisionPrescriptionLensSpecification".
	Name string
	// Path is the element path the type is defined at, e.g.
	// "VisionPrescription.lensSpecification".
	Path     string
	Kind     Kind
	Base     string
	Abstract bool
	Fields   []Field
	Doc      string
}

// IsResource reports whether documents of this type carry a resourceType.
func (t *Type) IsResource() bool {
	return t.Kind == KindResource
}

// Field returns the field declared under the wire name.
func (t *Type) Field(name string) (*Field, bool) {
	for i := range t.Fields {
		if t.Fields[i].Name == name {
			return &t.Fields[i], true
		}
	}
	return nil, false
}

// Lookup resolves a member key to its field and the type of the value held
// under it. Choice keys such as "valueQuantity" resolve to their variant.
func (t *Type) Lookup(key string) (*Field, string, bool) {
	for i := range t.Fields {
		f := &t.Fields[i]
		if !f.Polymorph {
			if f.Name == key {
				return f, f.Types[0], true
			}
			continue
		}
		if !strings.HasPrefix(key, f.Name) {
			continue
		}
		for _, v := range f.Variants() {
			if v.Key == key {
				return f, v.Type, true
			}
		}
	}
	return nil, "", false
}

// Field is one logical field of a Type.
type Field struct {
	// Name is the wire name, without the "[x]" of choice fields.
	Name   string
	GoName string
	Min    int
	// Max is the maximum cardinality, -1 when unbounded.
	Max int
	// Types holds the possible type names. Non-choice fields have exactly
	// one. "Resource" stands for any resource, dispatched on resourceType.
	Types     []string
	Polymorph bool
	Binding   *Binding
	// ContentReference is set when the field reuses the structure of
	// another backbone element.
	ContentReference string
	Doc              string
}

// Required reports whether the field has minimum cardinality 1 or more.
func (f *Field) Required() bool {
	return f.Min > 0
}

// Repeated reports whether the field may hold more than one value.
func (f *Field) Repeated() bool {
	return f.Max != 1
}

// Variant is one wire key of a choice field.
type Variant struct {
	// Key is the wire key, e.g. "valueString".
	Key string
	// Type is the type name, e.g. "string".
	Type string
}

// Variants returns the wire keys of the field. Non-choice fields have a
// single variant keyed by the field name.
func (f *Field) Variants() []Variant {
	if !f.Polymorph {
		return []Variant{{Key: f.Name, Type: f.Types[0]}}
	}
	variants := make([]Variant, len(f.Types))
	for i, t := range f.Types {
		variants[i] = Variant{Key: f.Name + upperFirst(t), Type: t}
	}
	return variants
}

// Keys returns the wire keys of all variants.
func (f *Field) Keys() []string {
	var keys []string
	for _, v := range f.Variants() {
		keys = append(keys, v.Key)
	}
	return keys
}

// Binding ties a coded field to a value set.
type Binding struct {
	Strength string
	ValueSet string
	// Name is the value set name, e.g. "FinancialResourceStatusCodes".
	Name string
	// Codes is the closed set of codes for required bindings whose codes
	// could be resolved; nil otherwise.
	Codes []string
}

// Closed reports whether only the listed codes are permitted.
func (b *Binding) Closed() bool {
	return b != nil && b.Strength == "required" && len(b.Codes) > 0
}

// Permits reports whether code is acceptable for the binding.
func (b *Binding) Permits(code string) bool {
	if !b.Closed() {
		return true
	}
	return slices.Contains(b.Codes, code)
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
