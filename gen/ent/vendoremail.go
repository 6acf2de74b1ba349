// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/invoicerd/invoicerd/gen/ent/vendor"
	"github.com/invoicerd/invoicerd/gen/ent/vendoremail"
)

// VendorEmail is the model entity for the VendorEmail schema.
type VendorEmail struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// VendorID holds the value of the "vendor_id" field.
	VendorID uuid.UUID `json:"vendor_id,omitempty"`
	// Email holds the value of the "email" field.
	Email string `json:"email,omitempty"`
	// IsPrimary holds the value of the "is_primary" field.
	IsPrimary bool `json:"is_primary,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the VendorEmailQuery when eager-loading is set.
	Edges        VendorEmailEdges `json:"edges"`
	selectValues sql.SelectValues
}

// VendorEmailEdges holds the relations/edges for other nodes in the graph.
type VendorEmailEdges struct {
	// Vendor holds the value of the vendor edge.
	Vendor *Vendor `json:"vendor,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// VendorOrErr returns the Vendor value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e VendorEmailEdges) VendorOrErr() (*Vendor, error) {
	if e.Vendor != nil {
		return e.Vendor, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: vendor.Label}
	}
	return nil, &NotLoadedError{edge: "vendor"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*VendorEmail) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case vendoremail.FieldIsPrimary:
			values[i] = new(sql.NullBool)
		case vendoremail.FieldEmail:
			values[i] = new(sql.NullString)
		case vendoremail.FieldID, vendoremail.FieldVendorID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the VendorEmail fields.
func (_m *VendorEmail) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case vendoremail.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case vendoremail.FieldVendorID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field vendor_id", values[i])
			} else if value != nil {
				_m.VendorID = *value
			}
		case vendoremail.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case vendoremail.FieldIsPrimary:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_primary", values[i])
			} else if value.Valid {
				_m.IsPrimary = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the VendorEmail.
// This includes values selected through modifiers, order, etc.
func (_m *VendorEmail) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryVendor queries the "vendor" edge of the VendorEmail entity.
func (_m *VendorEmail) QueryVendor() *VendorQuery {
	return NewVendorEmailClient(_m.config).QueryVendor(_m)
}

// Update returns a builder for updating this VendorEmail.
// Note that you need to call VendorEmail.Unwrap() before calling this method if this VendorEmail
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *VendorEmail) Update() *VendorEmailUpdateOne {
	return NewVendorEmailClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the VendorEmail entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *VendorEmail) Unwrap() *VendorEmail {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: VendorEmail is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *VendorEmail) String() string {
	var builder strings.Builder
	builder.WriteString("VendorEmail(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("vendor_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.VendorID))
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("is_primary=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsPrimary))
	builder.WriteByte(')')
	return builder.String()
}

// VendorEmails is a parsable slice of VendorEmail.
type VendorEmails []*VendorEmail
