package rules

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"

	"github.com/invoicerd/invoicerd/constants"
	"github.com/invoicerd/invoicerd/internal/pdfio"
)

// ColumnRef names a table column either by zero-based index or by header
// label. JSON accepts both forms: 2 or "Unit Price".
type ColumnRef struct {
	Index   int
	Label   string
	ByIndex bool
}

func (c *ColumnRef) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		c.Index = n
		c.ByIndex = true
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("column ref must be an index or a label: %s", string(data))
	}
	c.Label = s
	c.ByIndex = false
	return nil
}

func (c ColumnRef) MarshalJSON() ([]byte, error) {
	if c.ByIndex {
		return []byte(strconv.Itoa(c.Index)), nil
	}
	return json.Marshal(c.Label)
}

// TableConfig parameterizes table/header lookups and line-item extraction.
type TableConfig struct {
	HeaderText          string               `json:"header_text,omitempty"`
	StartRowAfterHeader int                  `json:"start_row_after_header,omitempty"`
	ItemColumns         map[string]ColumnRef `json:"item_columns,omitempty"`
	ParsingMethod       string               `json:"parsing_method,omitempty"`
	BBox                *pdfio.BBox          `json:"bbox,omitempty"`
	RowIndex            *int                 `json:"row_index,omitempty"`
	ColIndex            *int                 `json:"col_index,omitempty"`
	// TerminatorPrefix overrides the row prefix that ends a line-item block.
	TerminatorPrefix string `json:"terminator_prefix,omitempty"`
}

// Flavor returns the configured parsing method, defaulting to hybrid.
func (tc *TableConfig) Flavor() constants.ParsingMethod {
	if tc == nil {
		return constants.ParsingMethodHybrid
	}
	return constants.NormalizeParsingMethod(tc.ParsingMethod)
}

// Area returns the configured detection bbox, zero when unset.
func (tc *TableConfig) Area() pdfio.BBox {
	if tc == nil || tc.BBox == nil {
		return pdfio.BBox{}
	}
	return *tc.BBox
}

// PreProcessing flags, applied in a fixed order: remove_special_chars,
// to_uppercase, remove_spaces, remove_whitespace.
type PreProcessing struct {
	RemoveSpaces       bool `json:"remove_spaces,omitempty"`
	ToUppercase        bool `json:"to_uppercase,omitempty"`
	RemoveSpecialChars bool `json:"remove_special_chars,omitempty"`
	RemoveWhitespace   bool `json:"remove_whitespace,omitempty"`
}

// PostProcessing directives, interpreted per data type.
type PostProcessing struct {
	// FormatDate is the Go layout the date is re-rendered with.
	FormatDate string `json:"format_date,omitempty"`
	// InputFormat is the Go layout the raw text is parsed with.
	InputFormat   string `json:"input_format,omitempty"`
	RoundDecimals *int   `json:"round_decimals,omitempty"`
}

// Validation constraints enforced by the strict orchestrator variant.
type Validation struct {
	Regex    string   `json:"regex,omitempty"`
	MinValue *float64 `json:"min_value,omitempty"`
	MaxValue *float64 `json:"max_value,omitempty"`
}

// Rule is one declarative extraction instruction. Rules are supplied by the
// caller per vendor, read-only during extraction, never mutated by the engine.
type Rule struct {
	FieldName     string                 `json:"field_name"`
	DataType      constants.DataType     `json:"data_type"`
	LocationType  constants.LocationType `json:"location_type"`
	Coordinates   *pdfio.BBox            `json:"coordinates,omitempty"`
	Keyword       string                 `json:"keyword,omitempty"`
	RegexPattern  string                 `json:"regex_pattern,omitempty"`
	TableConfig   *TableConfig           `json:"table_config,omitempty"`
	Required      bool                   `json:"required"`
	PreProcessing *PreProcessing         `json:"pre_processing,omitempty"`
	PostProcess   *PostProcessing        `json:"post_processing,omitempty"`
	Validation    *Validation            `json:"validation,omitempty"`
	// PostProcessor selects a registered custom column post-processor by key.
	PostProcessor string `json:"post_processor,omitempty"`
}

// Validate checks the rule's internal consistency: a known data and location
// type, and the location parameter matching location_type present and sound.
func (r *Rule) Validate() error {
	if r.FieldName == "" {
		return fmt.Errorf("rule: field_name is required")
	}
	if !contains(constants.DataTypes, string(r.DataType)) {
		return fmt.Errorf("rule %q: unknown data_type %q", r.FieldName, r.DataType)
	}
	if !contains(constants.LocationTypes, string(r.LocationType)) {
		return fmt.Errorf("rule %q: unknown location_type %q", r.FieldName, r.LocationType)
	}

	switch r.LocationType {
	case constants.LocationTypeCoordinates:
		if r.Coordinates == nil {
			return fmt.Errorf("rule %q: coordinates required for location_type=coordinates", r.FieldName)
		}
	case constants.LocationTypeKeyword:
		if r.Keyword == "" {
			return fmt.Errorf("rule %q: keyword required for location_type=keyword", r.FieldName)
		}
	case constants.LocationTypeRegex:
		if r.RegexPattern == "" {
			return fmt.Errorf("rule %q: regex_pattern required for location_type=regex", r.FieldName)
		}
		if _, err := regexp.Compile(r.RegexPattern); err != nil {
			return fmt.Errorf("rule %q: invalid regex_pattern: %w", r.FieldName, err)
		}
	case constants.LocationTypeTable, constants.LocationTypeHeader:
		if r.TableConfig == nil && r.DataType != constants.DataTypeLineItems {
			return fmt.Errorf("rule %q: table_config required for location_type=%s", r.FieldName, r.LocationType)
		}
	}

	if r.Validation != nil && r.Validation.Regex != "" {
		if _, err := regexp.Compile(r.Validation.Regex); err != nil {
			return fmt.Errorf("rule %q: invalid validation regex: %w", r.FieldName, err)
		}
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
