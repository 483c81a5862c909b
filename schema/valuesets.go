package schema

// ValueSet is a value set some required binding resolved to.
type ValueSet struct {
	URL   string
	Name  string
	Codes []Code
}

// Code is one member of a value set.
type Code struct {
	Code    string
	Display string
}

// CodeValues returns the bare codes in definition order.
func (vs *ValueSet) CodeValues() []string {
	codes := make([]string, len(vs.Codes))
	for i, c := range vs.Codes {
		codes[i] = c.Code
	}
	return codes
}

// resolveBindings fills in Name and Codes of every required binding whose
// value set enumerates its codes, directly or through code systems. The
// value sets resolved this way are returned keyed by URL.
func resolveBindings(types []*Type, valueSets map[string]*valueSet, codeSystems map[string]*codeSystem) map[string]*ValueSet {
	resolved := map[string]*ValueSet{}

	for _, t := range types {
		for i := range t.Fields {
			b := t.Fields[i].Binding
			if b == nil {
				continue
			}
			vs, ok := valueSets[b.ValueSet]
			if !ok {
				continue
			}
			b.Name = vs.Name
			if b.Strength != "required" {
				continue
			}

			r, ok := resolved[vs.URL]
			if !ok {
				r = expand(vs, codeSystems)
				resolved[vs.URL] = r
			}
			if r != nil {
				b.Codes = r.CodeValues()
			}
		}
	}

	for url, vs := range resolved {
		if vs == nil {
			delete(resolved, url)
		}
	}
	return resolved
}

// expand lists the codes of a value set without terminology services. Value
// sets including code systems that are not available, such as external
// ones like urn:iso:std:iso:4217, cannot be expanded and yield nil.
func expand(vs *valueSet, codeSystems map[string]*codeSystem) *ValueSet {
	r := &ValueSet{URL: vs.URL, Name: vs.Name}

	for _, include := range vs.Compose.Include {
		if len(include.Concept) > 0 {
			for _, c := range include.Concept {
				r.Codes = append(r.Codes, Code{Code: c.Code})
			}
			continue
		}
		cs, ok := codeSystems[include.System]
		if !ok || len(cs.Concept) == 0 {
			return nil
		}
		r.Codes = append(r.Codes, flatten(cs.Concept)...)
	}

	if len(r.Codes) == 0 {
		return nil
	}
	return r
}

func flatten(concepts []concept) []Code {
	var codes []Code
	for _, c := range concepts {
		codes = append(codes, Code{Code: c.Code, Display: c.Display})
		codes = append(codes, flatten(c.Concept)...)
	}
	return codes
}
