package model

import (
	"github.com/damedic/fhir-binding-go/element"
)

// Element is any element in the FHIR model.
//
// This includes Resources, Datatypes and BackboneElements. Every element is
// a typed view onto a node of the generic document tree.
type Element interface {
	ElementNode() element.Node
}

// Resource is any FHIR Resource.
type Resource interface {
	Element
	ResourceType() string
	ResourceId() (string, bool)
}
