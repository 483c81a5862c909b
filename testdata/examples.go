// Package testdata provides FHIR documents for tests.
package testdata

import (
	"embed"
	"io/fs"
	"path"
	"strings"
)

//go:embed fixtures
var fixtures embed.FS

// Fixture returns the document of the given file name, e.g.
// "vision-prescription.json". It panics if there is none.
func Fixture(name string) []byte {
	data, err := fixtures.ReadFile(path.Join("fixtures", name))
	if err != nil {
		panic(err)
	}
	return data
}

// Examples returns all single-resource JSON fixtures keyed by file name.
func Examples() map[string][]byte {
	entries, err := fs.ReadDir(fixtures, "fixtures")
	if err != nil {
		panic(err)
	}

	examples := map[string][]byte{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		examples[e.Name()] = Fixture(e.Name())
	}
	return examples
}
