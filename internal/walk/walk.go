// Package walk traverses a document tree along its schema and reports every
// structural problem it finds. fhirjson stops at the first error, validate
// collects them all.
package walk

import (
	"fmt"
	"math"
	"strings"

	"github.com/damedic/fhir-binding-go/element"
	"github.com/damedic/fhir-binding-go/schema"
)

// Problem is one finding of a walk.
type Problem struct {
	Err *element.Error
	// Code is the FHIR issue type code, e.g. "required".
	Code string
	// Warning is set for findings the configuration tolerates.
	Warning bool
}

// Reporter receives problems in traversal order. Returning false stops the
// walk.
type Reporter func(Problem) bool

// Config controls which checks are errors.
type Config struct {
	Registry *schema.Registry
	// RejectUnknown turns members without a field into errors instead of
	// warnings.
	RejectUnknown bool
	// RejectAmbiguous turns choice fields with several variants into errors
	// instead of warnings.
	RejectAmbiguous bool
	// CheckFormat matches primitives against their lexical format.
	CheckFormat bool
	// CheckCardinality reports fields below their minimum or above their
	// maximum cardinality.
	CheckCardinality bool
	// Modifiers holds the understood modifier extension URLs. When nil,
	// modifier extensions are not checked.
	Modifiers map[string]bool
}

// primitiveElement is the shape of "_field" siblings when the registry does
// not define Element.
var primitiveElement = &schema.Type{
	Name: "Element",
	Path: "Element",
	Kind: schema.KindComplex,
	Fields: []schema.Field{
		{Name: "id", GoName: "Id", Max: 1, Types: []string{"string"}},
		{Name: "extension", GoName: "Extension", Max: -1, Types: []string{"Extension"}},
	},
}

type walker struct {
	cfg     Config
	report  Reporter
	element *schema.Type
	stopped bool
}

func newWalker(cfg Config, report Reporter) *walker {
	w := &walker{cfg: cfg, report: report, element: primitiveElement}
	if t, ok := cfg.Registry.Type("Element"); ok {
		w.element = t
	}
	return w
}

// Walk checks obj as an instance of t located at root. It returns false if
// the reporter stopped the walk.
func Walk(cfg Config, obj *element.Object, t *schema.Type, root element.Path, report Reporter) bool {
	w := newWalker(cfg, report)
	w.object(obj, t, root)
	return !w.stopped
}

// Resource checks obj as a resource of the type named by its resourceType.
// It returns false if the reporter stopped the walk.
func Resource(cfg Config, obj *element.Object, root element.Path, report Reporter) bool {
	w := newWalker(cfg, report)
	w.resource(obj, root)
	return !w.stopped
}

// CodeFor maps an error kind to the FHIR issue type code.
func CodeFor(kind element.ErrorKind) string {
	switch kind {
	case element.ParseFailure:
		return "invalid"
	case element.MissingRequiredField:
		return "required"
	case element.UnknownEnumValue:
		return "code-invalid"
	case element.AmbiguousChoice:
		return "multiple-matches"
	case element.InvalidValue:
		return "value"
	default:
		return "structure"
	}
}

func (w *walker) emit(warning bool, err *element.Error, code string) {
	if w.stopped {
		return
	}
	if code == "" {
		code = CodeFor(err.Kind)
	}
	if !w.report(Problem{Err: err, Code: code, Warning: warning}) {
		w.stopped = true
	}
}

func (w *walker) fail(err *element.Error) {
	w.emit(false, err, "")
}

func (w *walker) resource(obj *element.Object, p element.Path) {
	v, ok := obj.Get(schema.ResourceTypeKey)
	if !ok {
		w.fail(&element.Error{Kind: element.MissingRequiredField, Path: p.Field(schema.ResourceTypeKey)})
		return
	}
	name, ok := v.(element.String)
	if !ok {
		w.fail(&element.Error{
			Kind:   element.TypeMismatch,
			Path:   p.Field(schema.ResourceTypeKey),
			Detail: fmt.Sprintf("expected string, got %s", v.Kind()),
		})
		return
	}
	t, ok := w.cfg.Registry.Resource(string(name))
	if !ok {
		w.fail(&element.Error{
			Kind:   element.InvalidValue,
			Path:   p.Field(schema.ResourceTypeKey),
			Raw:    string(name),
			Detail: "unknown resource type",
		})
		return
	}
	if p == "" {
		p = element.Root(t.Name)
	}
	w.object(obj, t, p)
}

func (w *walker) object(obj *element.Object, t *schema.Type, p element.Path) {
	for key, v := range obj.All() {
		if w.stopped {
			return
		}
		if key == schema.ResourceTypeKey && t.IsResource() {
			if s, ok := v.(element.String); !ok || string(s) != t.Name {
				w.fail(&element.Error{
					Kind:   element.InvalidValue,
					Path:   p.Field(key),
					Raw:    rawOf(v),
					Detail: "expected " + t.Name,
				})
			}
			continue
		}
		if !known(t, key) {
			w.emit(!w.cfg.RejectUnknown, &element.Error{Kind: element.UnknownField, Path: p.Field(key)}, "")
		}
	}

	for i := range t.Fields {
		if w.stopped {
			return
		}
		w.field(obj, &t.Fields[i], p)
	}
}

func known(t *schema.Type, key string) bool {
	if _, _, ok := t.Lookup(key); ok {
		return true
	}
	if name, ok := strings.CutPrefix(key, "_"); ok {
		_, typ, ok := t.Lookup(name)
		return ok && schema.IsPrimitive(typ)
	}
	return false
}

func (w *walker) field(obj *element.Object, f *schema.Field, p element.Path) {
	var present []schema.Variant
	for _, v := range f.Variants() {
		val, _ := obj.Get(v.Key)
		ext, _ := obj.Get("_" + v.Key)
		if !element.IsNull(val) || !element.IsNull(ext) {
			present = append(present, v)
		}
	}

	if f.Polymorph && len(present) > 1 {
		keys := make([]string, len(present))
		for i, v := range present {
			keys[i] = v.Key
		}
		w.emit(!w.cfg.RejectAmbiguous, &element.Error{
			Kind:   element.AmbiguousChoice,
			Path:   p.Field(f.Name),
			Raw:    strings.Join(keys, ","),
			Detail: fmt.Sprintf("%d variants of %s[x] are set", len(keys), f.Name),
		}, "")
	}

	count := 0
	for _, v := range present {
		count += w.member(obj, f, v, p)
	}

	if !w.cfg.CheckCardinality {
		return
	}
	ambiguous := f.Polymorph && len(present) > 1
	switch {
	case count < f.Min:
		e := &element.Error{Kind: element.MissingRequiredField, Path: p.Field(f.Name)}
		if count > 0 {
			e.Detail = fmt.Sprintf("found %d, minimum is %d", count, f.Min)
		}
		w.fail(e)
	case f.Max >= 0 && count > f.Max && !ambiguous:
		w.fail(&element.Error{
			Kind:   element.InvalidValue,
			Path:   p.Field(f.Name),
			Detail: fmt.Sprintf("found %d, maximum is %d", count, f.Max),
		})
	}
}

// member checks one wire key and its primitive extension and returns the
// number of populated entries.
func (w *walker) member(obj *element.Object, f *schema.Field, v schema.Variant, p element.Path) int {
	val, _ := obj.Get(v.Key)
	ext, _ := obj.Get("_" + v.Key)
	primitive := schema.IsPrimitive(v.Type)

	if val != nil {
		w.values(val, f, v.Type, p.Field(v.Key), primitive)
	}
	if ext != nil && primitive {
		w.extensions(ext, val, f, p.Field("_"+v.Key))
	}
	return populated(val, ext, f.Repeated())
}

func (w *walker) values(val element.Value, f *schema.Field, typ string, p element.Path, primitive bool) {
	if _, null := val.(element.Null); null {
		return
	}
	arr, isArray := val.(element.Array)
	if !f.Repeated() {
		if isArray {
			w.fail(&element.Error{Kind: element.TypeMismatch, Path: p, Detail: "expected a single value, got array"})
			return
		}
		w.value(val, f, typ, p)
		return
	}
	if !isArray {
		w.fail(&element.Error{Kind: element.TypeMismatch, Path: p, Detail: fmt.Sprintf("expected array, got %s", val.Kind())})
		return
	}
	for i, item := range arr {
		if w.stopped {
			return
		}
		if _, null := item.(element.Null); null {
			if !primitive {
				w.fail(&element.Error{Kind: element.TypeMismatch, Path: p.Index(i), Detail: "null entry"})
			}
			continue
		}
		w.value(item, f, typ, p.Index(i))
	}
}

func (w *walker) value(v element.Value, f *schema.Field, typ string, p element.Path) {
	if prim, ok := schema.LookupPrimitive(typ); ok {
		w.primitive(v, f, prim, p)
		return
	}

	obj, ok := v.(*element.Object)
	if !ok {
		w.fail(&element.Error{Kind: element.TypeMismatch, Path: p, Detail: fmt.Sprintf("expected object, got %s", v.Kind())})
		return
	}
	if typ == "Resource" {
		w.resource(obj, p)
		return
	}
	t, ok := w.cfg.Registry.Type(typ)
	if !ok {
		w.fail(&element.Error{Kind: element.InvalidValue, Path: p, Raw: typ, Detail: "unknown type"})
		return
	}
	w.object(obj, t, p)

	if f.Name == "modifierExtension" && w.cfg.Modifiers != nil {
		url, _ := obj.Get("url")
		if s, ok := url.(element.String); !ok || !w.cfg.Modifiers[string(s)] {
			w.emit(false, &element.Error{
				Kind:   element.UnknownField,
				Path:   p,
				Raw:    rawOf(url),
				Detail: "modifier extension is not understood",
			}, "extension")
		}
	}
}

func (w *walker) primitive(v element.Value, f *schema.Field, prim schema.Primitive, p element.Path) {
	if v.Kind() != prim.Kind {
		w.fail(&element.Error{
			Kind:   element.TypeMismatch,
			Path:   p,
			Raw:    rawOf(v),
			Detail: fmt.Sprintf("expected %s for %s, got %s", prim.Kind, prim.Name, v.Kind()),
		})
		return
	}
	if prim.Kind == element.KindBool {
		return
	}

	literal := rawOf(v)
	if w.cfg.CheckFormat && !validLiteral(prim, literal) {
		w.fail(&element.Error{Kind: element.InvalidValue, Path: p, Raw: literal, Detail: "not a valid " + prim.Name})
		return
	}
	if prim.Kind == element.KindString && !f.Binding.Permits(literal) {
		w.fail(&element.Error{
			Kind:   element.UnknownEnumValue,
			Path:   p,
			Raw:    literal,
			Detail: "not in value set " + f.Binding.Name,
		})
	}
}

func validLiteral(prim schema.Primitive, literal string) bool {
	if !prim.Matches(literal) {
		return false
	}
	switch prim.Name {
	case "integer", "unsignedInt", "positiveInt":
		i, err := element.Number(literal).Int64()
		return err == nil && i >= math.MinInt32 && i <= math.MaxInt32
	}
	return true
}

func (w *walker) extensions(ext, val element.Value, f *schema.Field, p element.Path) {
	if _, null := ext.(element.Null); null {
		return
	}
	if !f.Repeated() {
		obj, ok := ext.(*element.Object)
		if !ok {
			w.fail(&element.Error{Kind: element.TypeMismatch, Path: p, Detail: fmt.Sprintf("expected object, got %s", ext.Kind())})
			return
		}
		w.object(obj, w.element, p)
		return
	}

	arr, ok := ext.(element.Array)
	if !ok {
		w.fail(&element.Error{Kind: element.TypeMismatch, Path: p, Detail: fmt.Sprintf("expected array, got %s", ext.Kind())})
		return
	}
	if values, ok := val.(element.Array); ok && len(values) != len(arr) {
		w.fail(&element.Error{
			Kind:   element.InvalidValue,
			Path:   p,
			Detail: fmt.Sprintf("%d extensions do not align with %d values", len(arr), len(values)),
		})
		return
	}
	for i, item := range arr {
		if w.stopped {
			return
		}
		switch item := item.(type) {
		case element.Null:
		case *element.Object:
			w.object(item, w.element, p.Index(i))
		default:
			w.fail(&element.Error{Kind: element.TypeMismatch, Path: p.Index(i), Detail: fmt.Sprintf("expected object, got %s", item.Kind())})
		}
	}
}

// populated counts entries holding a value or a primitive extension.
func populated(val, ext element.Value, repeated bool) int {
	if !repeated {
		if !element.IsEmpty(val) || !element.IsEmpty(ext) {
			return 1
		}
		return 0
	}
	values, _ := val.(element.Array)
	exts, _ := ext.(element.Array)
	count := 0
	for i := range max(len(values), len(exts)) {
		if (i < len(values) && !element.IsEmpty(values[i])) || (i < len(exts) && !element.IsEmpty(exts[i])) {
			count++
		}
	}
	return count
}

func rawOf(v element.Value) string {
	switch v := v.(type) {
	case element.String:
		return string(v)
	case element.Number:
		return string(v)
	case element.Bool:
		if v {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}
