package fhirjson

import (
	"github.com/damedic/fhir-binding-go/internal/walk"
	"github.com/damedic/fhir-binding-go/schema"
)

// UnknownFieldPolicy decides how members without a field are treated.
type UnknownFieldPolicy uint8

const (
	RejectUnknownFields UnknownFieldPolicy = iota
	IgnoreUnknownFields
)

// ChoicePolicy decides how choice fields with several variants are treated.
type ChoicePolicy uint8

const (
	RejectAmbiguousChoices ChoicePolicy = iota
	AllowAmbiguousChoices
)

// FormatPolicy decides whether primitives are matched against their
// lexical format.
type FormatPolicy uint8

const (
	CheckPrimitiveFormats FormatPolicy = iota
	SkipPrimitiveFormats
)

// Policy is the strictness of decoding. The zero value is Strict.
type Policy struct {
	UnknownFields   UnknownFieldPolicy
	AmbiguousChoice ChoicePolicy
	PrimitiveFormat FormatPolicy
}

// Strict rejects unknown fields, ambiguous choices and malformed
// primitives.
func Strict() Policy {
	return Policy{}
}

// Lenient accepts documents a forward compatible reader would: unknown
// fields are ignored, ambiguous choices are kept and primitive formats are
// not checked. Closed value sets are enforced either way.
func Lenient() Policy {
	return Policy{
		UnknownFields:   IgnoreUnknownFields,
		AmbiguousChoice: AllowAmbiguousChoices,
		PrimitiveFormat: SkipPrimitiveFormats,
	}
}

// WalkConfig translates the policy for a walk over reg.
func (p Policy) WalkConfig(reg *schema.Registry) walk.Config {
	return walk.Config{
		Registry:        reg,
		RejectUnknown:   p.UnknownFields == RejectUnknownFields,
		RejectAmbiguous: p.AmbiguousChoice == RejectAmbiguousChoices,
		CheckFormat:     p.PrimitiveFormat == CheckPrimitiveFormats,
	}
}

// Option configures decoding.
type Option func(*options)

type options struct {
	registry *schema.Registry
	policy   Policy
}

// WithRegistry decodes against reg instead of the embedded R4 types.
func WithRegistry(reg *schema.Registry) Option {
	return func(o *options) {
		o.registry = reg
	}
}

// WithPolicy sets the strictness policy.
func WithPolicy(p Policy) Option {
	return func(o *options) {
		o.policy = p
	}
}

func resolve(opts []Option) (options, error) {
	var o options
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
	return o, nil
}
