package model

// Release is a FHIR release the module provides types for.
//
// The interface is sealed so that switches over releases stay exhaustive.
type Release interface {
	String() string
	isRelease()
}

// R4 is FHIR release 4.0.1.
type R4 struct{}

func (R4) String() string { return "R4" }
func (R4) isRelease()     {}

// ReleaseName returns the name of R.
func ReleaseName[R Release]() string {
	var r R
	return r.String()
}
