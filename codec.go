package conslist

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Format names a text encoding for lists.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a format name (or file extension without the dot) to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Ext returns the file extension conventionally used for f, with the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// Marshal encodes l in format f. A nil list encodes like an empty one.
func Marshal[T any](l *List[T], f Format) ([]byte, error) {
	if l == nil {
		l = New[T]()
	}
	switch f {
	case FormatJSON:
		return l.MarshalJSON()
	case FormatYAML:
		data, err := yaml.Marshal(l)
		if err != nil {
			return nil, fmt.Errorf("yaml marshal: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// Unmarshal decodes a list from data in format f. On failure no list is
// returned and the error wraps ErrDecode.
func Unmarshal[T any](data []byte, f Format) (*List[T], error) {
	switch f {
	case FormatJSON:
		return decodeJSON[T](data)
	case FormatYAML:
		return decodeYAMLStream[T](data)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// MarshalJSON encodes the list as a JSON array, head first.
func (l *List[T]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	i := 0
	for v := range l.All() {
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(data)
		i++
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// UnmarshalJSON replaces the contents of l with the decoded array. JSON null
// leaves l unchanged. On failure l is left unchanged.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	l.mustNotBeBorrowed("UnmarshalJSON")
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}
	decoded, err := decodeJSON[T](data)
	if err != nil {
		return err
	}
	l.adopt(decoded)
	return nil
}

func decodeJSON[T any](data []byte) (*List[T], error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	acc := New[T]()
	if tok != nil {
		if d, ok := tok.(json.Delim); !ok || d != '[' {
			return nil, fmt.Errorf("%w: expected array, got %v", ErrDecode, tok)
		}
		for i := 0; dec.More(); i++ {
			var v T
			if err := dec.Decode(&v); err != nil {
				acc.Clear()
				return nil, fmt.Errorf("%w: element %d: %w", ErrDecode, i, err)
			}
			acc.Cons(v)
		}
		if _, err := dec.Token(); err != nil {
			acc.Clear()
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
	}
	// A null or an array must be the whole input.
	if _, err := dec.Token(); err != io.EOF {
		acc.Clear()
		return nil, fmt.Errorf("%w: trailing data after value", ErrDecode)
	}
	return acc.Reverse(), nil
}

// MarshalYAML encodes the list as a YAML sequence, head first.
func (l *List[T]) MarshalYAML() (any, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	i := 0
	for v := range l.All() {
		item := &yaml.Node{}
		if err := item.Encode(v); err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		seq.Content = append(seq.Content, item)
		i++
	}
	return seq, nil
}

// UnmarshalYAML replaces the contents of l with the decoded sequence. On
// failure l is left unchanged.
func (l *List[T]) UnmarshalYAML(value *yaml.Node) error {
	l.mustNotBeBorrowed("UnmarshalYAML")
	decoded, err := decodeYAML[T](value)
	if err != nil {
		return err
	}
	l.adopt(decoded)
	return nil
}

// decodeYAMLStream decodes a single YAML document. Empty input yields an
// empty list; a second document is an error.
func decodeYAMLStream[T any](data []byte) (*List[T], error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return New[T](), nil
		}
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	l, err := decodeYAML[T](&doc)
	if err != nil {
		return nil, err
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); err != io.EOF {
		l.Clear()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
		return nil, fmt.Errorf("%w: more than one document", ErrDecode)
	}
	return l, nil
}

func decodeYAML[T any](value *yaml.Node) (*List[T], error) {
	if value.Kind == yaml.DocumentNode && len(value.Content) == 1 {
		value = value.Content[0]
	}
	if value.Kind == yaml.AliasNode && value.Alias != nil {
		value = value.Alias
	}
	if value.Kind == yaml.ScalarNode && value.ShortTag() == "!!null" {
		return New[T](), nil
	}
	if value.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: line %d: expected sequence, got %s", ErrDecode, value.Line, value.ShortTag())
	}

	acc := New[T]()
	for i, item := range value.Content {
		var v T
		if err := item.Decode(&v); err != nil {
			acc.Clear()
			return nil, fmt.Errorf("%w: element %d: %w", ErrDecode, i, err)
		}
		acc.Cons(v)
	}
	return acc.Reverse(), nil
}

// adopt releases the current contents of l and takes over the chain of src.
func (l *List[T]) adopt(src *List[T]) {
	release(l.head)
	l.head, src.head = src.head, nil
}
