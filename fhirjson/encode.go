package fhirjson

import (
	"io"

	"github.com/damedic/fhir-binding-go/element"
	"github.com/damedic/fhir-binding-go/model"
	"github.com/damedic/fhir-binding-go/schema"
)

// Marshal encodes e in stored member order. Absent fields are never
// written; resourceType is written only if the tree holds it, use
// MarshalResource to always include it.
func Marshal(e model.Element) ([]byte, error) {
	return element.Marshal(e.ElementNode().Object())
}

// MarshalIndent is like Marshal but indents the output.
func MarshalIndent(e model.Element, prefix, indent string) ([]byte, error) {
	return element.MarshalIndent(e.ElementNode().Object(), prefix, indent)
}

// MarshalResource encodes r including its resourceType.
func MarshalResource(r model.Resource) ([]byte, error) {
	return element.Marshal(ResourceValue(r))
}

// Encode writes r including its resourceType to w.
func Encode(w io.Writer, r model.Resource) error {
	return element.Write(w, ResourceValue(r))
}

// ResourceValue returns the tree of r carrying its resourceType, as required
// wherever resources are nested. A missing resourceType is added as first
// member.
func ResourceValue(r model.Resource) element.Value {
	obj := r.ElementNode().Object()
	if v, ok := obj.Get(schema.ResourceTypeKey); ok && v == element.String(r.ResourceType()) {
		return obj
	}

	members := []element.Member{{Key: schema.ResourceTypeKey, Value: element.String(r.ResourceType())}}
	for key, v := range obj.All() {
		if key != schema.ResourceTypeKey {
			members = append(members, element.Member{Key: key, Value: v})
		}
	}
	return element.NewObject(members...)
}
