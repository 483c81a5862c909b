package element

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Marshal encodes v compactly. Object members are written in stored order;
// members holding an empty array are omitted.
func Marshal(v Value) ([]byte, error) {
	var b bytes.Buffer
	if err := encode(&b, v); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// MarshalIndent is like Marshal but indents the output.
func MarshalIndent(v Value, prefix, indent string) ([]byte, error) {
	compact, err := Marshal(v)
	if err != nil {
		return nil, err
	}
	var b bytes.Buffer
	if err := json.Indent(&b, compact, prefix, indent); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Write encodes v to w.
func Write(w io.Writer, v Value) error {
	b, err := Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

func (o *Object) MarshalJSON() ([]byte, error) {
	return Marshal(o)
}

func (o *Object) UnmarshalJSON(b []byte) error {
	parsed, err := ParseObject(b)
	if err != nil {
		return err
	}
	*o = *parsed
	return nil
}

func encode(b *bytes.Buffer, v Value) error {
	switch v := v.(type) {
	case nil, Null:
		b.WriteString("null")
	case Bool:
		if v {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case Number:
		if !json.Valid([]byte(v)) {
			return fmt.Errorf("invalid number literal %q", string(v))
		}
		b.WriteString(string(v))
	case String:
		return encodeString(b, string(v))
	case Array:
		b.WriteByte('[')
		for i, e := range v {
			if i > 0 {
				b.WriteByte(',')
			}
			if err := encode(b, e); err != nil {
				return err
			}
		}
		b.WriteByte(']')
	case *Object:
		b.WriteByte('{')
		setComma := false
		for key, value := range v.All() {
			if a, ok := value.(Array); ok && len(a) == 0 {
				continue
			}
			if setComma {
				b.WriteByte(',')
			}
			setComma = true
			if err := encodeString(b, key); err != nil {
				return err
			}
			b.WriteByte(':')
			if err := encode(b, value); err != nil {
				return err
			}
		}
		b.WriteByte('}')
	default:
		return fmt.Errorf("unsupported value %T", v)
	}
	return nil
}

func encodeString(b *bytes.Buffer, s string) error {
	enc := json.NewEncoder(b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode terminates every value with a newline
	b.Truncate(b.Len() - 1)
	return nil
}
