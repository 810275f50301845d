package config

import (
	"bytes"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/pkg/errors"
	"github.com/pseudomuto/javafmt/pkg/format"
	"gopkg.in/yaml.v3"
)

// Apply sets the options named by overrides on s. Each override has the form
// NAME=VALUE, where NAME is an option in IntelliJ spelling (SPACE_BEFORE_IF_PARENTHESES),
// camel case or snake case, and VALUE is parsed like the same key in a YAML file.
//
// Example:
//
//	err := config.Apply(settings, "INDENT_SIZE=2", "method_brace_style=next_line")
func Apply(s *format.Settings, overrides ...string) error {
	for _, o := range overrides {
		name, value, ok := strings.Cut(o, "=")
		if !ok {
			return errors.Errorf("override %q is not of the form NAME=VALUE", o)
		}

		key := strcase.ToSnake(strings.TrimSpace(name))
		if key == "" {
			return errors.Errorf("override %q has no name", o)
		}

		if err := applyOne(s, key, strings.TrimSpace(value)); err != nil {
			return errors.Wrapf(err, "failed to apply override %s", name)
		}
	}

	return nil
}

func applyOne(s *format.Settings, key, value string) error {
	var parsed yaml.Node
	if err := yaml.Unmarshal([]byte(value), &parsed); err != nil {
		return errors.Wrapf(err, "invalid value %q", value)
	}

	// An empty VALUE parses to an empty document.
	val := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str"}
	if parsed.Kind == yaml.DocumentNode && len(parsed.Content) > 0 {
		val = parsed.Content[0]
	}

	doc := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: key},
			val,
		},
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	return dec.Decode(s)
}
