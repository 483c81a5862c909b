package schema

import (
	"strconv"
	"strings"
)

// parseDefinition turns one StructureDefinition snapshot into its type and
// the backbone types nested in it.
func parseDefinition(sd *structureDefinition) []*Type {
	kind := KindComplex
	if sd.Kind == "resource" {
		kind = KindResource
	}
	return parseTypes(
		sd.Type,
		sd.Type,
		kind,
		baseName(sd.BaseDefinition),
		sd.Abstract,
		sd.Snapshot.Element,
		sd.Type,
		sd.Description,
	)
}

func baseName(url string) string {
	if url == "" {
		return ""
	}
	return url[strings.LastIndex(url, "/")+1:]
}

func parseTypes(
	name string,
	path string,
	kind Kind,
	base string,
	abstract bool,
	elementDefinitions []elementDefinition,
	elementPathStripPrefix string,
	doc string,
) []*Type {
	parsed := []*Type{{
		Name:     name,
		Path:     path,
		Kind:     kind,
		Base:     base,
		Abstract: abstract,
		Doc:      doc,
	}}

	for _, g := range groupElementDefinitionsByPrefix(elementDefinitions, elementPathStripPrefix) {
		if g.definitions[0].Max == "0" {
			continue
		}

		if len(g.definitions) > 1 {
			parsed = append(parsed, parseTypes(
				name+GoTypeName(strings.TrimSuffix(g.fieldName, "[x]")),
				g.definitions[0].Path,
				KindBackbone,
				"BackboneElement",
				false,
				g.definitions,
				g.definitions[0].Path,
				g.definitions[0].Definition,
			)...)
		}

		parsed[0].Fields = append(parsed[0].Fields, parseField(name, g.definitions[0], elementPathStripPrefix))
	}

	return parsed
}

type definitionsGroup struct {
	fieldName   string
	definitions []elementDefinition
}

func groupElementDefinitionsByPrefix(elementDefinitions []elementDefinition, stripPrefix string) []definitionsGroup {
	var grouped []definitionsGroup

	for _, d := range elementDefinitions {
		if d.Path == stripPrefix || !strings.HasPrefix(d.Path, stripPrefix+".") {
			continue
		}

		fieldName := strings.SplitN(d.Path[len(stripPrefix)+1:], ".", 2)[0]

		if len(grouped) == 0 || grouped[len(grouped)-1].fieldName != fieldName {
			grouped = append(grouped, definitionsGroup{
				fieldName: fieldName,
			})
		}

		grouped[len(grouped)-1].definitions = append(grouped[len(grouped)-1].definitions, d)
	}

	return grouped
}

func parseField(typeName string, d elementDefinition, elementPathStripPrefix string) Field {
	name := d.Path[len(elementPathStripPrefix)+1:]
	name, polymorph := strings.CutSuffix(name, "[x]")

	var types []string
	var contentReference string
	switch {
	case polymorph:
		for _, t := range d.Type {
			types = append(types, typeCode(t.Code))
		}
	case len(d.Type) > 0:
		switch code := typeCode(d.Type[0].Code); code {
		case "BackboneElement", "Element":
			types = append(types, typeName+GoTypeName(name))
		default:
			types = append(types, code)
		}
	default:
		// content reference, strip "#"
		contentReference = strings.TrimPrefix(d.ContentReference, "#")
		types = append(types, GoTypeName(contentReference))
	}

	var binding *Binding
	if d.Binding != nil {
		binding = &Binding{
			Strength: d.Binding.Strength,
			ValueSet: strings.Split(d.Binding.ValueSet, "|")[0],
		}
	}

	return Field{
		Name:             name,
		GoName:           GoFieldName(name),
		Min:              d.Min,
		Max:              parseMax(d.Max),
		Types:            types,
		Polymorph:        polymorph,
		Binding:          binding,
		ContentReference: contentReference,
		Doc:              d.Definition,
	}
}

// typeCode maps the FHIRPath system types used for primitive values and
// Element.id to their FHIR primitive.
func typeCode(code string) string {
	switch t := code[strings.LastIndex(code, "/")+1:]; t {
	case "System.String":
		return "string"
	case "System.Boolean":
		return "boolean"
	case "System.Integer":
		return "integer"
	case "System.Decimal":
		return "decimal"
	case "System.Date":
		return "date"
	case "System.DateTime":
		return "dateTime"
	case "System.Time":
		return "time"
	default:
		return t
	}
}

func parseMax(s string) int {
	if s == "*" {
		return -1
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 1
	}
	return n
}
