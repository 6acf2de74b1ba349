// Code generated by ent, DO NOT EDIT.

package extractionrule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the extractionrule type in the database.
	Label = "extraction_rule"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldVendorID holds the string denoting the vendor_id field in the database.
	FieldVendorID = "vendor_id"
	// FieldFieldName holds the string denoting the field_name field in the database.
	FieldFieldName = "field_name"
	// FieldDataType holds the string denoting the data_type field in the database.
	FieldDataType = "data_type"
	// FieldLocationType holds the string denoting the location_type field in the database.
	FieldLocationType = "location_type"
	// FieldCoordinates holds the string denoting the coordinates field in the database.
	FieldCoordinates = "coordinates"
	// FieldKeyword holds the string denoting the keyword field in the database.
	FieldKeyword = "keyword"
	// FieldRegexPattern holds the string denoting the regex_pattern field in the database.
	FieldRegexPattern = "regex_pattern"
	// FieldTableConfig holds the string denoting the table_config field in the database.
	FieldTableConfig = "table_config"
	// FieldRequired holds the string denoting the required field in the database.
	FieldRequired = "required"
	// FieldPreProcessing holds the string denoting the pre_processing field in the database.
	FieldPreProcessing = "pre_processing"
	// FieldPostProcessing holds the string denoting the post_processing field in the database.
	FieldPostProcessing = "post_processing"
	// FieldValidation holds the string denoting the validation field in the database.
	FieldValidation = "validation"
	// FieldPostProcessor holds the string denoting the post_processor field in the database.
	FieldPostProcessor = "post_processor"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeVendor holds the string denoting the vendor edge name in mutations.
	EdgeVendor = "vendor"
	// Table holds the table name of the extractionrule in the database.
	Table = "extraction_rules"
	// VendorTable is the table that holds the vendor relation/edge.
	VendorTable = "extraction_rules"
	// VendorInverseTable is the table name for the Vendor entity.
	// It exists in this package in order to avoid circular dependency with the "vendor" package.
	VendorInverseTable = "vendors"
	// VendorColumn is the table column denoting the vendor relation/edge.
	VendorColumn = "vendor_id"
)

// Columns holds all SQL columns for extractionrule fields.
var Columns = []string{
	FieldID,
	FieldVendorID,
	FieldFieldName,
	FieldDataType,
	FieldLocationType,
	FieldCoordinates,
	FieldKeyword,
	FieldRegexPattern,
	FieldTableConfig,
	FieldRequired,
	FieldPreProcessing,
	FieldPostProcessing,
	FieldValidation,
	FieldPostProcessor,
	FieldDescription,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// FieldNameValidator is a validator for the "field_name" field. It is called by the builders before save.
	FieldNameValidator func(string) error
	// DataTypeValidator is a validator for the "data_type" field. It is called by the builders before save.
	DataTypeValidator func(string) error
	// LocationTypeValidator is a validator for the "location_type" field. It is called by the builders before save.
	LocationTypeValidator func(string) error
	// DefaultRequired holds the default value on creation for the "required" field.
	DefaultRequired bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ExtractionRule queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByVendorID orders the results by the vendor_id field.
func ByVendorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVendorID, opts...).ToFunc()
}

// ByFieldName orders the results by the field_name field.
func ByFieldName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFieldName, opts...).ToFunc()
}

// ByDataType orders the results by the data_type field.
func ByDataType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDataType, opts...).ToFunc()
}

// ByLocationType orders the results by the location_type field.
func ByLocationType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocationType, opts...).ToFunc()
}

// ByKeyword orders the results by the keyword field.
func ByKeyword(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKeyword, opts...).ToFunc()
}

// ByRegexPattern orders the results by the regex_pattern field.
func ByRegexPattern(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRegexPattern, opts...).ToFunc()
}

// ByRequired orders the results by the required field.
func ByRequired(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequired, opts...).ToFunc()
}

// ByPostProcessor orders the results by the post_processor field.
func ByPostProcessor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPostProcessor, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByVendorField orders the results by vendor field.
func ByVendorField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newVendorStep(), sql.OrderByField(field, opts...))
	}
}
func newVendorStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(VendorInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, VendorTable, VendorColumn),
	)
}
