package config

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// VerifyAgainstEmbeddedSchema checks config values against constraints of the embedded JSON schema.
// Only minimum and minLength constraints are enforced, nested objects are followed by $ref.
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	var schema schemaNode
	if err := json.Unmarshal([]byte(embeddedSchema), &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	// convert config to generic JSON for validation
	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	var configMap map[string]any
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	root := schema.resolve(schema.Ref, schema.Defs)
	if root == nil {
		return fmt.Errorf("schema root %q not found", schema.Ref)
	}
	return verifyObject("", root, configMap, schema.Defs)
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() (*jsonschema.Schema, error) {
	return jsonschema.Reflect(&Config{}), nil
}

// schemaNode is the subset of JSON schema used for verification
type schemaNode struct {
	Ref        string                 `json:"$ref"`
	Defs       map[string]*schemaNode `json:"$defs"`
	Type       string                 `json:"type"`
	Properties map[string]*schemaNode `json:"properties"`
	Minimum    *float64               `json:"minimum"`
	MinLength  *int                   `json:"minLength"`
}

func (n *schemaNode) resolve(ref string, defs map[string]*schemaNode) *schemaNode {
	if ref == "" {
		return n
	}
	return defs[strings.TrimPrefix(ref, "#/$defs/")]
}

func verifyObject(prefix string, node *schemaNode, values map[string]any, defs map[string]*schemaNode) error {
	for name, prop := range node.Properties {
		key := strings.TrimPrefix(prefix+"."+name, ".")
		prop = prop.resolve(prop.Ref, defs)
		if prop == nil {
			return fmt.Errorf("%s: unresolved schema reference", key)
		}

		switch v := values[name].(type) {
		case map[string]any:
			if err := verifyObject(key, prop, v, defs); err != nil {
				return err
			}
		case float64:
			if prop.Minimum != nil && v < *prop.Minimum {
				return fmt.Errorf("%s must be at least %v, got %v", key, *prop.Minimum, v)
			}
		case string:
			if prop.MinLength != nil && len(v) < *prop.MinLength {
				return fmt.Errorf("%s is required", key)
			}
		}
	}
	return nil
}
