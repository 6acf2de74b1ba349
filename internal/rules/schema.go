package rules

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/invoicerd/invoicerd/constants"
)

// BuildRuleSetJSONSchema returns a JSON-Schema (draft 2020-12 subset) for an
// array of extraction rules. Operators edit rule sets by hand, so structural
// mistakes are caught here before a rule set ever reaches the engine.
func BuildRuleSetJSONSchema() map[string]any {
	bboxProps := map[string]any{
		"x":      map[string]any{"type": "number"},
		"y":      map[string]any{"type": "number"},
		"width":  map[string]any{"type": "number"},
		"height": map[string]any{"type": "number"},
	}
	columnRef := map[string]any{
		"anyOf": []any{
			map[string]any{"type": "integer", "minimum": 0},
			map[string]any{"type": "string", "minLength": 1},
		},
	}

	ruleProps := map[string]any{
		"field_name":    map[string]any{"type": "string", "minLength": 1},
		"data_type":     map[string]any{"type": "string", "enum": toAny(constants.DataTypes)},
		"location_type": map[string]any{"type": "string", "enum": toAny(constants.LocationTypes)},
		"coordinates": map[string]any{
			"type":       "object",
			"properties": bboxProps,
			"required":   []any{"x", "y", "width", "height"},
		},
		"keyword":       map[string]any{"type": "string"},
		"regex_pattern": map[string]any{"type": "string"},
		"table_config": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"header_text":            map[string]any{"type": "string"},
				"start_row_after_header": map[string]any{"type": "integer", "minimum": 0},
				"item_columns": map[string]any{
					"type":                 "object",
					"additionalProperties": columnRef,
				},
				"parsing_method":    map[string]any{"type": "string", "enum": toAny(constants.ParsingMethods)},
				"bbox":              map[string]any{"type": "object", "properties": bboxProps},
				"row_index":         map[string]any{"type": "integer", "minimum": 0},
				"col_index":         map[string]any{"type": "integer", "minimum": 0},
				"terminator_prefix": map[string]any{"type": "string"},
			},
		},
		"required": map[string]any{"type": "boolean"},
		"pre_processing": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"remove_spaces":        map[string]any{"type": "boolean"},
				"to_uppercase":         map[string]any{"type": "boolean"},
				"remove_special_chars": map[string]any{"type": "boolean"},
				"remove_whitespace":    map[string]any{"type": "boolean"},
			},
		},
		"post_processing": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"format_date":    map[string]any{"type": "string"},
				"input_format":   map[string]any{"type": "string"},
				"round_decimals": map[string]any{"type": "integer", "minimum": 0},
			},
		},
		"validation": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"regex":     map[string]any{"type": "string"},
				"min_value": map[string]any{"type": "number"},
				"max_value": map[string]any{"type": "number"},
			},
		},
		"post_processor": map[string]any{"type": "string"},
	}

	return map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties":           ruleProps,
			"required":             []any{"field_name", "data_type", "location_type"},
		},
	}
}

// ValidateRuleSetJSON validates raw rule-set JSON against the schema.
func ValidateRuleSetJSON(data []byte) error {
	b, err := json.Marshal(BuildRuleSetJSONSchema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("rules.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("rules.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal rule set: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("rule set does not match schema: %w", err)
	}
	return nil
}

// ParseRuleSet validates and decodes a JSON rule set, running each rule's
// own invariant check after decoding.
func ParseRuleSet(data []byte) ([]Rule, error) {
	if err := ValidateRuleSetJSON(data); err != nil {
		return nil, err
	}
	var out []Rule
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode rule set: %w", err)
	}
	for i := range out {
		if err := out[i].Validate(); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
