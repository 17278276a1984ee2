package types

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Signature is an ordered list of slot descriptors.
type Signature []Type

// Bounds returns the number of required slots and the total slot count.
func (s Signature) Bounds() (required, total int) {
	for _, t := range s {
		if !IsOptional(t) {
			required++
		}
	}
	return required, len(s)
}

// Names returns the pretty name of every slot.
func (s Signature) Names() []string {
	names := make([]string, len(s))
	for i, t := range s {
		names[i] = Name(t)
	}
	return names
}

// MarshalJSON serializes the signature as a list of type expressions.
func (s Signature) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	raw, err := s.expressions()
	if err != nil {
		return nil, err
	}
	return json.Marshal(raw)
}

// UnmarshalJSON deserializes the signature from a list of type expressions.
func (s *Signature) UnmarshalJSON(data []byte) error {
	if s == nil {
		return fmt.Errorf("types: UnmarshalJSON on nil pointer")
	}
	if string(data) == "null" {
		*s = nil
		return nil
	}

	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		// Fallback: a single comma separated string
		var list string
		if errList := json.Unmarshal(data, &list); errList != nil {
			return err
		}
		parsed, err := ParseList(list)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	}
	return s.parse(raw)
}

// MarshalYAML serializes the signature as a YAML sequence of type expressions.
func (s Signature) MarshalYAML() (any, error) {
	if s == nil {
		return nil, nil
	}
	return s.expressions()
}

// UnmarshalYAML accepts either a sequence of expressions or a single comma
// separated string.
func (s *Signature) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var list string
		if err := node.Decode(&list); err != nil {
			return err
		}
		parsed, err := ParseList(list)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	case yaml.SequenceNode:
		var raw []string
		if err := node.Decode(&raw); err != nil {
			return err
		}
		return s.parse(raw)
	default:
		return fmt.Errorf("line %d: signature must be a sequence or a string", node.Line)
	}
}

func (s Signature) expressions() ([]string, error) {
	raw := make([]string, len(s))
	for i, t := range s {
		if t == nil {
			return nil, fmt.Errorf("slot %d: type is nil", i)
		}
		if _, ok := t.(*ClassType); ok {
			return nil, fmt.Errorf("slot %d: class %s has no textual form", i, Name(t))
		}
		raw[i] = Format(t)
	}
	return raw, nil
}

func (s *Signature) parse(raw []string) error {
	parsed := make(Signature, len(raw))
	for i, expr := range raw {
		t, err := Parse(expr)
		if err != nil {
			return fmt.Errorf("slot %d: %w", i, err)
		}
		parsed[i] = t
	}
	*s = parsed
	return nil
}
