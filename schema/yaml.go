package schema

import (
	"errors"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"relfunc/value"
)

// Shape nodes are polymorphic in YAML:
//   - Scalar: "text" or "int"
//   - Mapping with a single "choice" key: choice: [vanilla, strawberry]
//   - Mapping with a single "tuple" key: tuple: [<shape>, <shape>]
//   - Mapping with a single "record" key: record: {name: <shape>, ...}
//
// Record field order follows document order.

// UnmarshalYAML implements custom YAML unmarshaling for Schema.
func (s *Schema) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var name string

		err := node.Decode(&name)
		if err != nil {
			return err
		}

		switch name {
		case "text":
			*s = Text()
			return nil
		case "int":
			*s = Int()
			return nil
		default:
			return fmt.Errorf("unknown scalar shape %q (expected 'text' or 'int')", name)
		}

	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return errors.New("expected a single-key map like {record: ...}, {tuple: ...} or {choice: ...}")
		}

		var key string

		err := node.Content[0].Decode(&key)
		if err != nil {
			return fmt.Errorf("invalid shape key: %w", err)
		}

		body := node.Content[1]

		switch key {
		case "record":
			return unmarshalRecord(body, s)
		case "tuple":
			return unmarshalTuple(body, s)
		case "choice":
			return unmarshalChoice(body, s)
		default:
			return fmt.Errorf("unknown shape key %q (expected 'record', 'tuple' or 'choice')", key)
		}

	default:
		return fmt.Errorf("expected string or map for shape, got %v", node.Kind)
	}
}

func unmarshalRecord(node *yaml.Node, s *Schema) error {
	if node.Kind != yaml.MappingNode {
		return errors.New("record body must be a map of field name to shape")
	}

	fields := make([]Field, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		var name string

		err := node.Content[i].Decode(&name)
		if err != nil {
			return fmt.Errorf("invalid field name: %w", err)
		}

		var shape Schema

		err = node.Content[i+1].Decode(&shape)
		if err != nil {
			return fmt.Errorf("field %q: %w", name, err)
		}

		fields = append(fields, Field{Name: name, Shape: shape})
	}

	*s = RecordOf(fields...)

	return nil
}

func unmarshalTuple(node *yaml.Node, s *Schema) error {
	if node.Kind != yaml.SequenceNode {
		return errors.New("tuple body must be a sequence of shapes")
	}

	elems := make([]Schema, 0, len(node.Content))

	for i, item := range node.Content {
		var shape Schema

		err := item.Decode(&shape)
		if err != nil {
			return fmt.Errorf("tuple element %d: %w", i, err)
		}

		elems = append(elems, shape)
	}

	*s = TupleOf(elems...)

	return nil
}

func unmarshalChoice(node *yaml.Node, s *Schema) error {
	if node.Kind != yaml.SequenceNode {
		return errors.New("choice body must be a sequence of literals")
	}

	literals := make([]value.Value, 0, len(node.Content))

	for i, item := range node.Content {
		if item.Kind != yaml.ScalarNode {
			return fmt.Errorf("choice literal %d: expected scalar, got %v", i, item.Kind)
		}

		// Integer literals keep their int kind, everything else is text.
		if item.Tag == "!!int" {
			var n int64

			err := item.Decode(&n)
			if err != nil {
				return fmt.Errorf("choice literal %d: %w", i, err)
			}

			literals = append(literals, value.Int(n))

			continue
		}

		var str string

		err := item.Decode(&str)
		if err != nil {
			return fmt.Errorf("choice literal %d: %w", i, err)
		}

		literals = append(literals, value.Text(str))
	}

	*s = ChoiceOf(literals...)

	return nil
}

// MarshalYAML implements custom YAML marshaling for Schema. Record field
// order is preserved in the output document.
func (s Schema) MarshalYAML() (any, error) {
	return shapeNode(s)
}

func shapeNode(s Schema) (*yaml.Node, error) {
	switch s.Kind {
	case KindText, KindInt:
		return scalarNode(s.Kind.String()), nil

	case KindChoice:
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, c := range s.Choices {
			if c.Kind == value.KindInt {
				seq.Content = append(seq.Content, &yaml.Node{
					Kind:  yaml.ScalarNode,
					Tag:   "!!int",
					Value: strconv.FormatInt(c.Int, 10),
				})

				continue
			}

			seq.Content = append(seq.Content, scalarNode(c.Text))
		}

		return singleKeyNode("choice", seq), nil

	case KindTuple:
		seq := &yaml.Node{Kind: yaml.SequenceNode}

		for _, e := range s.Elems {
			child, err := shapeNode(e)
			if err != nil {
				return nil, err
			}

			seq.Content = append(seq.Content, child)
		}

		return singleKeyNode("tuple", seq), nil

	case KindRecord:
		body := &yaml.Node{Kind: yaml.MappingNode}

		for _, f := range s.Fields {
			child, err := shapeNode(f.Shape)
			if err != nil {
				return nil, err
			}

			body.Content = append(body.Content, scalarNode(f.Name), child)
		}

		return singleKeyNode("record", body), nil

	default:
		return nil, fmt.Errorf("cannot marshal shape of kind %s", s.Kind)
	}
}

func scalarNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: v}
}

func singleKeyNode(key string, body *yaml.Node) *yaml.Node {
	return &yaml.Node{
		Kind:    yaml.MappingNode,
		Content: []*yaml.Node{scalarNode(key), body},
	}
}
