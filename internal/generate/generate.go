// Package generate emits the typed views of package model/gen from a schema
// registry.
package generate

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/damedic/fhir-binding-go/schema"
	. "github.com/dave/jennifer/jen"
	"github.com/iancoleman/strcase"
	"github.com/pkg/errors"
)

const moduleName = "github.com/damedic/fhir-binding-go"

const (
	elementPkg  = moduleName + "/element"
	fhirjsonPkg = moduleName + "/fhirjson"
	modelPkg    = moduleName + "/model"
	apdPkg      = "github.com/cockroachdb/apd/v3"
)

// Generator contributes code to the generated package. GenerateType is
// called once per file of a top level type and returns whether it added
// anything; GenerateAdditional may create further files.
type Generator interface {
	GenerateType(f *File, rt TypeGroup) bool
	GenerateAdditional(f func(fileName string, pkgName string) *File, release string, rt []TypeGroup)
}

// NoOpGenerator can be embedded to implement only one of the methods.
type NoOpGenerator struct{}

func (g NoOpGenerator) GenerateType(f *File, rt TypeGroup) bool {
	return false
}

func (g NoOpGenerator) GenerateAdditional(f func(fileName string, pkgName string) *File, release string, rt []TypeGroup) {
}

// TypeGroup is a resource or complex type together with its backbone
// elements; each group is generated into one file.
type TypeGroup struct {
	Name       string
	FileName   string
	IsResource bool
	// Structs holds the top level type first, then its backbone types.
	Structs  []*schema.Type
	Registry *schema.Registry
}

// Groups collects the type groups of reg ordered by name.
func Groups(reg *schema.Registry) []TypeGroup {
	all := reg.Types()

	var groups []TypeGroup
	for _, t := range all {
		if t.Kind == schema.KindBackbone {
			continue
		}
		g := TypeGroup{
			Name:       t.Name,
			FileName:   strcase.ToSnake(t.Name),
			IsResource: t.IsResource(),
			Structs:    []*schema.Type{t},
			Registry:   reg,
		}
		for _, b := range all {
			if b.Kind == schema.KindBackbone && strings.HasPrefix(b.Path, t.Path+".") {
				g.Structs = append(g.Structs, b)
			}
		}
		groups = append(groups, g)
	}
	return groups
}

// FilterResources returns the groups of resource types.
func FilterResources(rt []TypeGroup) []TypeGroup {
	return slices.DeleteFunc(slices.Clone(rt), func(g TypeGroup) bool {
		return !g.IsResource
	})
}

// GenerateAll runs the generators over all types of reg and writes the files
// of package strings.ToLower(release) to dir.
func GenerateAll(reg *schema.Registry, release, dir string, generators ...Generator) error {
	pkgName := strings.ToLower(release)
	groups := Groups(reg)

	files := map[string]*File{}
	var order []string
	newFile := func(fileName, pkgName string) *File {
		if f, ok := files[fileName]; ok {
			return f
		}
		f := NewFile(pkgName)
		f.HeaderComment("Code generated by internal/cmd/generate; DO NOT EDIT.")
		f.ImportName(elementPkg, "element")
		f.ImportName(fhirjsonPkg, "fhirjson")
		f.ImportName(modelPkg, "model")
		f.ImportName(apdPkg, "apd")
		files[fileName] = f
		order = append(order, fileName)
		return f
	}

	for _, rt := range groups {
		f := newFile(rt.FileName, pkgName)
		for _, g := range generators {
			g.GenerateType(f, rt)
		}
	}
	for _, g := range generators {
		g.GenerateAdditional(newFile, release, groups)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "creating output directory")
	}
	for _, name := range order {
		if err := files[name].Save(filepath.Join(dir, name+".go")); err != nil {
			return errors.Wrapf(err, "writing %s.go", name)
		}
	}
	return nil
}

func docLines(g interface{ Comment(string) *Statement }, text string) {
	for _, line := range strings.Split(text, "\n") {
		g.Comment(line)
	}
}

func article(name string) string {
	if strings.ContainsRune("AEIOU", rune(name[0])) {
		return "an"
	}
	return "a"
}

func lowerFirst(s string) string {
	return strings.ToLower(s[:1]) + s[1:]
}
