// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/invoicerd/invoicerd/gen/ent/extractionrule"
	"github.com/invoicerd/invoicerd/gen/ent/vendor"
)

// ExtractionRule is the model entity for the ExtractionRule schema.
type ExtractionRule struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// VendorID holds the value of the "vendor_id" field.
	VendorID uuid.UUID `json:"vendor_id,omitempty"`
	// FieldName holds the value of the "field_name" field.
	FieldName string `json:"field_name,omitempty"`
	// DataType holds the value of the "data_type" field.
	DataType string `json:"data_type,omitempty"`
	// LocationType holds the value of the "location_type" field.
	LocationType string `json:"location_type,omitempty"`
	// Coordinates holds the value of the "coordinates" field.
	Coordinates json.RawMessage `json:"coordinates,omitempty"`
	// Keyword holds the value of the "keyword" field.
	Keyword *string `json:"keyword,omitempty"`
	// RegexPattern holds the value of the "regex_pattern" field.
	RegexPattern *string `json:"regex_pattern,omitempty"`
	// TableConfig holds the value of the "table_config" field.
	TableConfig json.RawMessage `json:"table_config,omitempty"`
	// Required holds the value of the "required" field.
	Required bool `json:"required,omitempty"`
	// PreProcessing holds the value of the "pre_processing" field.
	PreProcessing json.RawMessage `json:"pre_processing,omitempty"`
	// PostProcessing holds the value of the "post_processing" field.
	PostProcessing json.RawMessage `json:"post_processing,omitempty"`
	// Validation holds the value of the "validation" field.
	Validation json.RawMessage `json:"validation,omitempty"`
	// PostProcessor holds the value of the "post_processor" field.
	PostProcessor *string `json:"post_processor,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExtractionRuleQuery when eager-loading is set.
	Edges        ExtractionRuleEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExtractionRuleEdges holds the relations/edges for other nodes in the graph.
type ExtractionRuleEdges struct {
	// Vendor holds the value of the vendor edge.
	Vendor *Vendor `json:"vendor,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// VendorOrErr returns the Vendor value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractionRuleEdges) VendorOrErr() (*Vendor, error) {
	if e.Vendor != nil {
		return e.Vendor, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: vendor.Label}
	}
	return nil, &NotLoadedError{edge: "vendor"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractionRule) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extractionrule.FieldCoordinates, extractionrule.FieldTableConfig, extractionrule.FieldPreProcessing, extractionrule.FieldPostProcessing, extractionrule.FieldValidation:
			values[i] = new([]byte)
		case extractionrule.FieldRequired:
			values[i] = new(sql.NullBool)
		case extractionrule.FieldFieldName, extractionrule.FieldDataType, extractionrule.FieldLocationType, extractionrule.FieldKeyword, extractionrule.FieldRegexPattern, extractionrule.FieldPostProcessor, extractionrule.FieldDescription:
			values[i] = new(sql.NullString)
		case extractionrule.FieldCreatedAt, extractionrule.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case extractionrule.FieldID, extractionrule.FieldVendorID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractionRule fields.
func (_m *ExtractionRule) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extractionrule.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case extractionrule.FieldVendorID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field vendor_id", values[i])
			} else if value != nil {
				_m.VendorID = *value
			}
		case extractionrule.FieldFieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field field_name", values[i])
			} else if value.Valid {
				_m.FieldName = value.String
			}
		case extractionrule.FieldDataType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field data_type", values[i])
			} else if value.Valid {
				_m.DataType = value.String
			}
		case extractionrule.FieldLocationType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field location_type", values[i])
			} else if value.Valid {
				_m.LocationType = value.String
			}
		case extractionrule.FieldCoordinates:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field coordinates", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Coordinates); err != nil {
					return fmt.Errorf("unmarshal field coordinates: %w", err)
				}
			}
		case extractionrule.FieldKeyword:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field keyword", values[i])
			} else if value.Valid {
				_m.Keyword = new(string)
				*_m.Keyword = value.String
			}
		case extractionrule.FieldRegexPattern:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field regex_pattern", values[i])
			} else if value.Valid {
				_m.RegexPattern = new(string)
				*_m.RegexPattern = value.String
			}
		case extractionrule.FieldTableConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field table_config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TableConfig); err != nil {
					return fmt.Errorf("unmarshal field table_config: %w", err)
				}
			}
		case extractionrule.FieldRequired:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field required", values[i])
			} else if value.Valid {
				_m.Required = value.Bool
			}
		case extractionrule.FieldPreProcessing:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field pre_processing", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PreProcessing); err != nil {
					return fmt.Errorf("unmarshal field pre_processing: %w", err)
				}
			}
		case extractionrule.FieldPostProcessing:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field post_processing", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PostProcessing); err != nil {
					return fmt.Errorf("unmarshal field post_processing: %w", err)
				}
			}
		case extractionrule.FieldValidation:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field validation", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Validation); err != nil {
					return fmt.Errorf("unmarshal field validation: %w", err)
				}
			}
		case extractionrule.FieldPostProcessor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field post_processor", values[i])
			} else if value.Valid {
				_m.PostProcessor = new(string)
				*_m.PostProcessor = value.String
			}
		case extractionrule.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case extractionrule.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case extractionrule.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractionRule.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractionRule) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryVendor queries the "vendor" edge of the ExtractionRule entity.
func (_m *ExtractionRule) QueryVendor() *VendorQuery {
	return NewExtractionRuleClient(_m.config).QueryVendor(_m)
}

// Update returns a builder for updating this ExtractionRule.
// Note that you need to call ExtractionRule.Unwrap() before calling this method if this ExtractionRule
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractionRule) Update() *ExtractionRuleUpdateOne {
	return NewExtractionRuleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractionRule entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractionRule) Unwrap() *ExtractionRule {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractionRule is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractionRule) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractionRule(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("vendor_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.VendorID))
	builder.WriteString(", ")
	builder.WriteString("field_name=")
	builder.WriteString(_m.FieldName)
	builder.WriteString(", ")
	builder.WriteString("data_type=")
	builder.WriteString(_m.DataType)
	builder.WriteString(", ")
	builder.WriteString("location_type=")
	builder.WriteString(_m.LocationType)
	builder.WriteString(", ")
	builder.WriteString("coordinates=")
	builder.WriteString(fmt.Sprintf("%v", _m.Coordinates))
	builder.WriteString(", ")
	if v := _m.Keyword; v != nil {
		builder.WriteString("keyword=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RegexPattern; v != nil {
		builder.WriteString("regex_pattern=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("table_config=")
	builder.WriteString(fmt.Sprintf("%v", _m.TableConfig))
	builder.WriteString(", ")
	builder.WriteString("required=")
	builder.WriteString(fmt.Sprintf("%v", _m.Required))
	builder.WriteString(", ")
	builder.WriteString("pre_processing=")
	builder.WriteString(fmt.Sprintf("%v", _m.PreProcessing))
	builder.WriteString(", ")
	builder.WriteString("post_processing=")
	builder.WriteString(fmt.Sprintf("%v", _m.PostProcessing))
	builder.WriteString(", ")
	builder.WriteString("validation=")
	builder.WriteString(fmt.Sprintf("%v", _m.Validation))
	builder.WriteString(", ")
	if v := _m.PostProcessor; v != nil {
		builder.WriteString("post_processor=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExtractionRules is a parsable slice of ExtractionRule.
type ExtractionRules []*ExtractionRule
