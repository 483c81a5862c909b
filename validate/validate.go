// Package validate checks FHIR documents against a schema and reports every
// problem found, each located by its FHIRPath-like path. Unlike decoding it
// does not stop at the first problem and also checks cardinality.
package validate

import (
	"fmt"
	"runtime"

	"github.com/damedic/fhir-binding-go/element"
	"github.com/damedic/fhir-binding-go/fhirjson"
	"github.com/damedic/fhir-binding-go/internal/walk"
	"github.com/damedic/fhir-binding-go/model"
	"github.com/damedic/fhir-binding-go/schema"
)

// Option configures validation.
type Option func(*options)

type options struct {
	registry  *schema.Registry
	policy    fhirjson.Policy
	modifiers map[string]bool
	workers   int
}

// WithRegistry validates against reg instead of the embedded R4 types.
func WithRegistry(reg *schema.Registry) Option {
	return func(o *options) {
		o.registry = reg
	}
}

// WithPolicy sets which findings are errors. Findings the policy tolerates
// are reported as warnings.
func WithPolicy(p fhirjson.Policy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithUnderstoodModifiers reports modifier extensions whose url is not in
// urls as errors. Without it modifier extensions are not checked.
func WithUnderstoodModifiers(urls ...string) Option {
	return func(o *options) {
		if o.modifiers == nil {
			o.modifiers = make(map[string]bool, len(urls))
		}
		for _, u := range urls {
			o.modifiers[u] = true
		}
	}
}

// WithWorkers sets the number of documents Batch validates at once.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

func resolve(opts []Option) (options, error) {
	o := options{workers: runtime.NumCPU()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		reg, err := schema.R4()
		if err != nil {
			return o, err
		}
		o.registry = reg
	}
	if o.workers <= 0 {
		o.workers = 1
	}
	return o, nil
}

func (o options) config() walk.Config {
	cfg := o.policy.WalkConfig(o.registry)
	cfg.CheckCardinality = true
	cfg.Modifiers = o.modifiers
	return cfg
}

// Object validates obj as an instance of the named type.
func Object(obj *element.Object, typeName string, opts ...Option) (Result, error) {
	o, err := resolve(opts)
	if err != nil {
		return Result{}, err
	}
	t, ok := o.registry.Type(typeName)
	if !ok {
		return Result{}, fmt.Errorf("unknown type %q", typeName)
	}

	res := Result{Type: t.Name}
	walk.Walk(o.config(), obj, t, element.Root(t.Path), collect(&res))
	return res, nil
}

// Resource validates a decoded or built resource.
func Resource(r model.Resource, opts ...Option) (Result, error) {
	obj, _ := fhirjson.ResourceValue(r).(*element.Object)
	return Object(obj, r.ResourceType(), opts...)
}

// Document parses data and validates it as a resource of the type named by
// its resourceType. Unparseable input is reported as a fatal issue, not as
// an error.
func Document(data []byte, opts ...Option) (Result, error) {
	o, err := resolve(opts)
	if err != nil {
		return Result{}, err
	}
	return o.document(data), nil
}

func (o options) document(data []byte) Result {
	var res Result
	obj, err := element.ParseObject(data)
	if err != nil {
		e, ok := element.AsError(err)
		if !ok {
			e = &element.Error{Kind: element.ParseFailure, Detail: err.Error()}
		}
		res.Issues = append(res.Issues, issueOf(e, walk.CodeFor(element.ParseFailure), SeverityFatal))
		return res
	}

	if rt, ok := obj.Get(schema.ResourceTypeKey); ok {
		if s, ok := rt.(element.String); ok {
			if _, ok := o.registry.Resource(string(s)); ok {
				res.Type = string(s)
			}
		}
	}
	walk.Resource(o.config(), obj, "", collect(&res))
	return res
}

func collect(res *Result) walk.Reporter {
	return func(p walk.Problem) bool {
		sev := SeverityError
		if p.Warning {
			sev = SeverityWarning
		}
		res.Issues = append(res.Issues, issueOf(p.Err, p.Code, sev))
		return true
	}
}
