// Package fhirjson decodes and encodes FHIR JSON documents against a schema.
//
// Decoding is atomic: the document is parsed, checked against the schema
// and either returned as a whole or rejected with the first problem found,
// located by its path. Minimum cardinality is not a decode failure; it is
// reported by validate and by the accessors of required fields.
package fhirjson

import (
	"fmt"
	"io"

	"github.com/damedic/fhir-binding-go/element"
	"github.com/damedic/fhir-binding-go/internal/walk"
	"github.com/damedic/fhir-binding-go/schema"
)

// Decode reads a resource document and returns its tree and resource type.
func Decode(data []byte, opts ...Option) (*element.Object, string, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, "", err
	}
	obj, err := element.ParseObject(data)
	if err != nil {
		return nil, "", err
	}

	var first *element.Error
	walk.Resource(o.policy.WalkConfig(o.registry), obj, "", stopAtFirst(&first))
	if first != nil {
		return nil, "", first
	}

	rt, _ := obj.Get(schema.ResourceTypeKey)
	return obj, string(rt.(element.String)), nil
}

// DecodeAs reads a document of a known type. A resourceType member is
// optional but must match when present; backbone types are named as in
// schema.Type.
func DecodeAs(data []byte, typeName string, opts ...Option) (*element.Object, error) {
	obj, err := element.ParseObject(data)
	if err != nil {
		return nil, err
	}
	if err := Check(obj, typeName, opts...); err != nil {
		return nil, err
	}
	return obj, nil
}

// Check checks an already parsed tree as an instance of the named type.
func Check(obj *element.Object, typeName string, opts ...Option) error {
	o, err := resolve(opts)
	if err != nil {
		return err
	}
	t, ok := o.registry.Type(typeName)
	if !ok {
		return fmt.Errorf("unknown type %q", typeName)
	}

	var first *element.Error
	walk.Walk(o.policy.WalkConfig(o.registry), obj, t, element.Root(t.Path), stopAtFirst(&first))
	if first != nil {
		return first
	}
	return nil
}

// Read decodes a resource document from r.
func Read(r io.Reader, opts ...Option) (*element.Object, string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, "", fmt.Errorf("read document: %w", err)
	}
	return Decode(data, opts...)
}

func stopAtFirst(first **element.Error) walk.Reporter {
	return func(p walk.Problem) bool {
		if p.Warning {
			return true
		}
		*first = p.Err
		return false
	}
}
