package element

import "strconv"

// Path locates a node inside a document in FHIRPath notation, e.g.
// "VisionPrescription.lensSpecification[0].prism[1].amount".
type Path string

// Root starts a path at a type name.
func Root(typeName string) Path {
	return Path(typeName)
}

// Field descends into a member.
func (p Path) Field(name string) Path {
	if p == "" {
		return Path(name)
	}
	return p + "." + Path(name)
}

// Index selects an array element.
func (p Path) Index(i int) Path {
	return p + "[" + Path(strconv.Itoa(i)) + "]"
}

func (p Path) String() string {
	return string(p)
}
