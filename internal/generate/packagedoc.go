package generate

import (
	"fmt"

	. "github.com/dave/jennifer/jen"
)

type ModelPkgDocGenerator struct {
	NoOpGenerator
}

func (g ModelPkgDocGenerator) GenerateAdditional(f func(fileName string, pkgName string) *File, release string, rt []TypeGroup) {
	file := f("doc", pkgNameOf(release))
	file.PackageComment(fmt.Sprintf("Package %s provides generated views and builders for FHIR release %s.", pkgNameOf(release), release))
}
