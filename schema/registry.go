package schema

import (
	"bytes"
	"embed"
	"encoding/json"
	"io"
	"io/fs"
	"maps"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Registry holds the types of one FHIR release. It is read-only once
// loaded and safe for concurrent use.
type Registry struct {
	types     map[string]*Type
	valueSets map[string]*ValueSet
}

// Type returns the type of the given name; backbone types are named as
// described at Type.Name.
func (r *Registry) Type(name string) (*Type, bool) {
	t, ok := r.types[name]
	return t, ok
}

// Resource returns the resource type of the given name.
func (r *Registry) Resource(name string) (*Type, bool) {
	t, ok := r.types[name]
	if !ok || !t.IsResource() {
		return nil, false
	}
	return t, true
}

// Types returns all types ordered by name.
func (r *Registry) Types() []*Type {
	types := slices.Collect(maps.Values(r.types))
	slices.SortFunc(types, func(a, b *Type) int {
		return strings.Compare(a.Name, b.Name)
	})
	return types
}

// ResourceNames returns the names of all resource types in order.
func (r *Registry) ResourceNames() []string {
	return r.names(KindResource)
}

// ComplexTypeNames returns the names of all complex datatypes in order.
func (r *Registry) ComplexTypeNames() []string {
	return r.names(KindComplex)
}

func (r *Registry) names(kind Kind) []string {
	var names []string
	for name, t := range r.types {
		if t.Kind == kind {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// ValueSets returns the value sets of required bindings whose codes are
// known, ordered by name.
func (r *Registry) ValueSets() []*ValueSet {
	valueSets := slices.Collect(maps.Values(r.valueSets))
	slices.SortFunc(valueSets, func(a, b *ValueSet) int {
		return strings.Compare(a.Name, b.Name)
	})
	return valueSets
}

// Load builds a registry from conformance resources. Each reader holds a
// Bundle, such as profiles-types.json, profiles-resources.json or
// valuesets.json from the FHIR definitions package, or a single
// StructureDefinition, ValueSet or CodeSystem.
func Load(readers ...io.Reader) (*Registry, error) {
	var l loader
	for i, rd := range readers {
		data, err := io.ReadAll(rd)
		if err != nil {
			return nil, errors.Wrapf(err, "reading definitions %d", i)
		}
		if err := l.add(data); err != nil {
			return nil, errors.Wrapf(err, "loading definitions %d", i)
		}
	}
	return l.build()
}

type loader struct {
	definitions []*structureDefinition
	valueSets   map[string]*valueSet
	codeSystems map[string]*codeSystem
}

func (l *loader) add(data []byte) error {
	var header resourceHeader
	if err := json.Unmarshal(data, &header); err != nil {
		return errors.Wrap(err, "decoding resource type")
	}

	if header.ResourceType != "Bundle" {
		return l.addResource(header.ResourceType, data)
	}

	var b bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return errors.Wrap(err, "decoding bundle")
	}
	for i, e := range b.Entry {
		if len(e.Resource) == 0 {
			continue
		}
		var h resourceHeader
		if err := json.Unmarshal(e.Resource, &h); err != nil {
			return errors.Wrapf(err, "decoding entry %d", i)
		}
		if err := l.addResource(h.ResourceType, e.Resource); err != nil {
			return errors.Wrapf(err, "entry %d", i)
		}
	}
	return nil
}

func (l *loader) addResource(resourceType string, data []byte) error {
	switch resourceType {
	case "StructureDefinition":
		var sd structureDefinition
		if err := json.Unmarshal(data, &sd); err != nil {
			return errors.Wrap(err, "decoding StructureDefinition")
		}
		l.definitions = append(l.definitions, &sd)
	case "ValueSet":
		var vs valueSet
		if err := json.Unmarshal(data, &vs); err != nil {
			return errors.Wrap(err, "decoding ValueSet")
		}
		if l.valueSets == nil {
			l.valueSets = map[string]*valueSet{}
		}
		l.valueSets[vs.URL] = &vs
	case "CodeSystem":
		var cs codeSystem
		if err := json.Unmarshal(data, &cs); err != nil {
			return errors.Wrap(err, "decoding CodeSystem")
		}
		if l.codeSystems == nil {
			l.codeSystems = map[string]*codeSystem{}
		}
		l.codeSystems[cs.URL] = &cs
	}
	// other conformance resources, e.g. SearchParameter, are not needed
	return nil
}

func (l *loader) build() (*Registry, error) {
	var types []*Type
	for _, sd := range l.definitions {
		switch {
		case sd.Kind != "complex-type" && sd.Kind != "resource":
			continue
		case sd.Derivation == "constraint":
			continue
		case sd.Abstract:
			continue
		}
		types = append(types, parseDefinition(sd)...)
	}

	reg := &Registry{
		types:     make(map[string]*Type, len(types)),
		valueSets: resolveBindings(types, l.valueSets, l.codeSystems),
	}
	for _, t := range types {
		reg.types[t.Name] = t
	}

	if err := reg.checkReferences(); err != nil {
		return nil, err
	}
	return reg, nil
}

// checkReferences makes sure every field type is known, so the codec never
// meets a type it cannot interpret.
func (r *Registry) checkReferences() error {
	var missing []string
	for _, t := range r.Types() {
		for _, f := range t.Fields {
			for _, name := range f.Types {
				if name == "Resource" || IsPrimitive(name) {
					continue
				}
				if _, ok := r.types[name]; !ok {
					missing = append(missing, t.Name+"."+f.Name+": "+name)
				}
			}
		}
	}
	if len(missing) > 0 {
		return errors.Errorf("unknown field types: %s", strings.Join(missing, ", "))
	}
	return nil
}

//go:embed definitions/*.json
var definitions embed.FS

var r4 = sync.OnceValues(func() (*Registry, error) {
	files, err := fs.Glob(definitions, "definitions/*.json")
	if err != nil {
		return nil, err
	}
	sort.Strings(files)

	var readers []io.Reader
	for _, name := range files {
		data, err := definitions.ReadFile(name)
		if err != nil {
			return nil, errors.Wrapf(err, "reading embedded %s", name)
		}
		readers = append(readers, bytes.NewReader(data))
	}
	return Load(readers...)
})

// R4 returns the registry of the FHIR R4 types embedded in this package:
// the common datatypes and the resources VisionPrescription, Patient,
// Observation, Bundle, OperationOutcome and Basic. Official definition
// bundles can be passed to Load for the full release.
func R4() (*Registry, error) {
	return r4()
}
