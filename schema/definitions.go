package schema

import "encoding/json"

// The structs below hold the subset of the conformance resources the loader
// reads. Unknown members are ignored.

type bundle struct {
	ResourceType string `json:"resourceType"`
	Entry        []struct {
		Resource json.RawMessage `json:"resource"`
	} `json:"entry"`
}

type resourceHeader struct {
	ResourceType string `json:"resourceType"`
}

type structureDefinition struct {
	URL            string `json:"url"`
	Name           string `json:"name"`
	Type           string `json:"type"`
	Kind           string `json:"kind"`
	Abstract       bool   `json:"abstract"`
	BaseDefinition string `json:"baseDefinition"`
	Derivation     string `json:"derivation"`
	Description    string `json:"description"`
	Snapshot       struct {
		Element []elementDefinition `json:"element"`
	} `json:"snapshot"`
}

type elementDefinition struct {
	Path             string `json:"path"`
	Definition       string `json:"definition"`
	Min              int    `json:"min"`
	Max              string `json:"max"`
	ContentReference string `json:"contentReference"`
	Type             []struct {
		Code string `json:"code"`
	} `json:"type"`
	Binding *struct {
		Strength string `json:"strength"`
		ValueSet string `json:"valueSet"`
	} `json:"binding"`
}

type valueSet struct {
	URL     string `json:"url"`
	Name    string `json:"name"`
	Compose struct {
		Include []struct {
			System  string `json:"system"`
			Concept []struct {
				Code string `json:"code"`
			} `json:"concept"`
		} `json:"include"`
	} `json:"compose"`
}

type codeSystem struct {
	URL     string    `json:"url"`
	Name    string    `json:"name"`
	Concept []concept `json:"concept"`
}

type concept struct {
	Code    string    `json:"code"`
	Display string    `json:"display"`
	Concept []concept `json:"concept"`
}
