package element

import (
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/buger/jsonparser"
)

// Parse reads one JSON document into a tree.
//
// Any syntax problem, including duplicate object keys, is reported as a
// single ParseFailure; there is no partial result. Input must be UTF-8.
func Parse(data []byte) (Value, error) {
	if !utf8.Valid(data) {
		return nil, &Error{Kind: ParseFailure, Detail: "invalid UTF-8"}
	}
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &Error{Kind: ParseFailure, Detail: err.Error()}
	}

	value, typ, _, err := jsonparser.Get(raw)
	if err != nil {
		return nil, &Error{Kind: ParseFailure, Detail: err.Error()}
	}
	v, err := parseValue(value, typ)
	if err != nil {
		return nil, &Error{Kind: ParseFailure, Detail: err.Error()}
	}
	return v, nil
}

// ParseObject reads a document whose top level must be an object.
func ParseObject(data []byte) (*Object, error) {
	v, err := Parse(data)
	if err != nil {
		return nil, err
	}
	o, ok := v.(*Object)
	if !ok {
		return nil, &Error{Kind: ParseFailure, Detail: fmt.Sprintf("expected a JSON object, got %s", v.Kind())}
	}
	return o, nil
}

var errDuplicateKey = errors.New("duplicate key")

func parseValue(data []byte, typ jsonparser.ValueType) (Value, error) {
	switch typ {
	case jsonparser.Null:
		return Null{}, nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(data)
		if err != nil {
			return nil, err
		}
		return Bool(b), nil
	case jsonparser.Number:
		return Number(string(data)), nil
	case jsonparser.String:
		s, err := jsonparser.ParseString(data)
		if err != nil {
			return nil, err
		}
		return String(s), nil
	case jsonparser.Array:
		return parseArray(data)
	case jsonparser.Object:
		return parseObject(data)
	default:
		return nil, fmt.Errorf("unknown value type %v", typ)
	}
}

func parseArray(data []byte) (Array, error) {
	arr := Array{}
	var firstErr error
	_, err := jsonparser.ArrayEach(data, func(value []byte, typ jsonparser.ValueType, _ int, err error) {
		if firstErr != nil {
			return
		}
		if err != nil {
			firstErr = err
			return
		}
		v, err := parseValue(value, typ)
		if err != nil {
			firstErr = err
			return
		}
		arr = append(arr, v)
	})
	if err != nil {
		return nil, err
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return arr, nil
}

func parseObject(data []byte) (*Object, error) {
	obj := &Object{}
	err := jsonparser.ObjectEach(data, func(key []byte, value []byte, typ jsonparser.ValueType, _ int) error {
		k := string(key)
		if obj.Has(k) {
			return fmt.Errorf("%w: %q", errDuplicateKey, k)
		}
		v, err := parseValue(value, typ)
		if err != nil {
			return err
		}
		obj.members = append(obj.members, Member{Key: k, Value: v})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return obj, nil
}
