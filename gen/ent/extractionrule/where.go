// Code generated by ent, DO NOT EDIT.

package extractionrule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/invoicerd/invoicerd/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldLTE(FieldID, id))
}

// VendorID applies equality check predicate on the "vendor_id" field. It's identical to VendorIDEQ.
func VendorID(v uuid.UUID) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldEQ(FieldVendorID, v))
}

// FieldName applies equality check predicate on the "field_name" field. It's identical to FieldNameEQ.
func FieldName(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldEQ(FieldFieldName, v))
}

// DataType applies equality check predicate on the "data_type" field. It's identical to DataTypeEQ.
func DataType(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldEQ(FieldDataType, v))
}

// LocationType applies equality check predicate on the "location_type" field. It's identical to LocationTypeEQ.
func LocationType(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldEQ(FieldLocationType, v))
}

// Keyword applies equality check predicate on the "keyword" field. It's identical to KeywordEQ.
func Keyword(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldEQ(FieldKeyword, v))
}

// RegexPattern applies equality check predicate on the "regex_pattern" field. It's identical to RegexPatternEQ.
func RegexPattern(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldEQ(FieldRegexPattern, v))
}

// Required applies equality check predicate on the "required" field. It's identical to RequiredEQ.
func Required(v bool) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldEQ(FieldRequired, v))
}

// PostProcessor applies equality check predicate on the "post_processor" field. It's identical to PostProcessorEQ.
func PostProcessor(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldEQ(FieldPostProcessor, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldEQ(FieldDescription, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldEQ(FieldUpdatedAt, v))
}

// VendorIDEQ applies the EQ predicate on the "vendor_id" field.
func VendorIDEQ(v uuid.UUID) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldEQ(FieldVendorID, v))
}

// VendorIDNEQ applies the NEQ predicate on the "vendor_id" field.
func VendorIDNEQ(v uuid.UUID) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldNEQ(FieldVendorID, v))
}

// VendorIDIn applies the In predicate on the "vendor_id" field.
func VendorIDIn(vs ...uuid.UUID) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldIn(FieldVendorID, vs...))
}

// VendorIDNotIn applies the NotIn predicate on the "vendor_id" field.
func VendorIDNotIn(vs ...uuid.UUID) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldNotIn(FieldVendorID, vs...))
}

// FieldNameEQ applies the EQ predicate on the "field_name" field.
func FieldNameEQ(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldEQ(FieldFieldName, v))
}

// FieldNameNEQ applies the NEQ predicate on the "field_name" field.
func FieldNameNEQ(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldNEQ(FieldFieldName, v))
}

// FieldNameIn applies the In predicate on the "field_name" field.
func FieldNameIn(vs ...string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldIn(FieldFieldName, vs...))
}

// FieldNameNotIn applies the NotIn predicate on the "field_name" field.
func FieldNameNotIn(vs ...string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldNotIn(FieldFieldName, vs...))
}

// FieldNameGT applies the GT predicate on the "field_name" field.
func FieldNameGT(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldGT(FieldFieldName, v))
}

// FieldNameGTE applies the GTE predicate on the "field_name" field.
func FieldNameGTE(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldGTE(FieldFieldName, v))
}

// FieldNameLT applies the LT predicate on the "field_name" field.
func FieldNameLT(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldLT(FieldFieldName, v))
}

// FieldNameLTE applies the LTE predicate on the "field_name" field.
func FieldNameLTE(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldLTE(FieldFieldName, v))
}

// FieldNameContains applies the Contains predicate on the "field_name" field.
func FieldNameContains(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldContains(FieldFieldName, v))
}

// FieldNameHasPrefix applies the HasPrefix predicate on the "field_name" field.
func FieldNameHasPrefix(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldHasPrefix(FieldFieldName, v))
}

// FieldNameHasSuffix applies the HasSuffix predicate on the "field_name" field.
func FieldNameHasSuffix(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldHasSuffix(FieldFieldName, v))
}

// FieldNameEqualFold applies the EqualFold predicate on the "field_name" field.
func FieldNameEqualFold(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldEqualFold(FieldFieldName, v))
}

// FieldNameContainsFold applies the ContainsFold predicate on the "field_name" field.
func FieldNameContainsFold(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldContainsFold(FieldFieldName, v))
}

// DataTypeEQ applies the EQ predicate on the "data_type" field.
func DataTypeEQ(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldEQ(FieldDataType, v))
}

// DataTypeNEQ applies the NEQ predicate on the "data_type" field.
func DataTypeNEQ(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldNEQ(FieldDataType, v))
}

// DataTypeIn applies the In predicate on the "data_type" field.
func DataTypeIn(vs ...string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldIn(FieldDataType, vs...))
}

// DataTypeNotIn applies the NotIn predicate on the "data_type" field.
func DataTypeNotIn(vs ...string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldNotIn(FieldDataType, vs...))
}

// DataTypeGT applies the GT predicate on the "data_type" field.
func DataTypeGT(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldGT(FieldDataType, v))
}

// DataTypeGTE applies the GTE predicate on the "data_type" field.
func DataTypeGTE(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldGTE(FieldDataType, v))
}

// DataTypeLT applies the LT predicate on the "data_type" field.
func DataTypeLT(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldLT(FieldDataType, v))
}

// DataTypeLTE applies the LTE predicate on the "data_type" field.
func DataTypeLTE(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldLTE(FieldDataType, v))
}

// DataTypeContains applies the Contains predicate on the "data_type" field.
func DataTypeContains(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldContains(FieldDataType, v))
}

// DataTypeHasPrefix applies the HasPrefix predicate on the "data_type" field.
func DataTypeHasPrefix(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldHasPrefix(FieldDataType, v))
}

// DataTypeHasSuffix applies the HasSuffix predicate on the "data_type" field.
func DataTypeHasSuffix(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldHasSuffix(FieldDataType, v))
}

// DataTypeEqualFold applies the EqualFold predicate on the "data_type" field.
func DataTypeEqualFold(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldEqualFold(FieldDataType, v))
}

// DataTypeContainsFold applies the ContainsFold predicate on the "data_type" field.
func DataTypeContainsFold(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldContainsFold(FieldDataType, v))
}

// LocationTypeEQ applies the EQ predicate on the "location_type" field.
func LocationTypeEQ(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldEQ(FieldLocationType, v))
}

// LocationTypeNEQ applies the NEQ predicate on the "location_type" field.
func LocationTypeNEQ(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldNEQ(FieldLocationType, v))
}

// LocationTypeIn applies the In predicate on the "location_type" field.
func LocationTypeIn(vs ...string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldIn(FieldLocationType, vs...))
}

// LocationTypeNotIn applies the NotIn predicate on the "location_type" field.
func LocationTypeNotIn(vs ...string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldNotIn(FieldLocationType, vs...))
}

// LocationTypeGT applies the GT predicate on the "location_type" field.
func LocationTypeGT(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldGT(FieldLocationType, v))
}

// LocationTypeGTE applies the GTE predicate on the "location_type" field.
func LocationTypeGTE(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldGTE(FieldLocationType, v))
}

// LocationTypeLT applies the LT predicate on the "location_type" field.
func LocationTypeLT(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldLT(FieldLocationType, v))
}

// LocationTypeLTE applies the LTE predicate on the "location_type" field.
func LocationTypeLTE(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldLTE(FieldLocationType, v))
}

// LocationTypeContains applies the Contains predicate on the "location_type" field.
func LocationTypeContains(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldContains(FieldLocationType, v))
}

// LocationTypeHasPrefix applies the HasPrefix predicate on the "location_type" field.
func LocationTypeHasPrefix(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldHasPrefix(FieldLocationType, v))
}

// LocationTypeHasSuffix applies the HasSuffix predicate on the "location_type" field.
func LocationTypeHasSuffix(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldHasSuffix(FieldLocationType, v))
}

// LocationTypeEqualFold applies the EqualFold predicate on the "location_type" field.
func LocationTypeEqualFold(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldEqualFold(FieldLocationType, v))
}

// LocationTypeContainsFold applies the ContainsFold predicate on the "location_type" field.
func LocationTypeContainsFold(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldContainsFold(FieldLocationType, v))
}

// CoordinatesIsNil applies the IsNil predicate on the "coordinates" field.
func CoordinatesIsNil() predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldIsNull(FieldCoordinates))
}

// CoordinatesNotNil applies the NotNil predicate on the "coordinates" field.
func CoordinatesNotNil() predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldNotNull(FieldCoordinates))
}

// KeywordEQ applies the EQ predicate on the "keyword" field.
func KeywordEQ(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldEQ(FieldKeyword, v))
}

// KeywordNEQ applies the NEQ predicate on the "keyword" field.
func KeywordNEQ(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldNEQ(FieldKeyword, v))
}

// KeywordIn applies the In predicate on the "keyword" field.
func KeywordIn(vs ...string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldIn(FieldKeyword, vs...))
}

// KeywordNotIn applies the NotIn predicate on the "keyword" field.
func KeywordNotIn(vs ...string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldNotIn(FieldKeyword, vs...))
}

// KeywordGT applies the GT predicate on the "keyword" field.
func KeywordGT(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldGT(FieldKeyword, v))
}

// KeywordGTE applies the GTE predicate on the "keyword" field.
func KeywordGTE(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldGTE(FieldKeyword, v))
}

// KeywordLT applies the LT predicate on the "keyword" field.
func KeywordLT(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldLT(FieldKeyword, v))
}

// KeywordLTE applies the LTE predicate on the "keyword" field.
func KeywordLTE(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldLTE(FieldKeyword, v))
}

// KeywordContains applies the Contains predicate on the "keyword" field.
func KeywordContains(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldContains(FieldKeyword, v))
}

// KeywordHasPrefix applies the HasPrefix predicate on the "keyword" field.
func KeywordHasPrefix(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldHasPrefix(FieldKeyword, v))
}

// KeywordHasSuffix applies the HasSuffix predicate on the "keyword" field.
func KeywordHasSuffix(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldHasSuffix(FieldKeyword, v))
}

// KeywordIsNil applies the IsNil predicate on the "keyword" field.
func KeywordIsNil() predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldIsNull(FieldKeyword))
}

// KeywordNotNil applies the NotNil predicate on the "keyword" field.
func KeywordNotNil() predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldNotNull(FieldKeyword))
}

// KeywordEqualFold applies the EqualFold predicate on the "keyword" field.
func KeywordEqualFold(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldEqualFold(FieldKeyword, v))
}

// KeywordContainsFold applies the ContainsFold predicate on the "keyword" field.
func KeywordContainsFold(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldContainsFold(FieldKeyword, v))
}

// RegexPatternEQ applies the EQ predicate on the "regex_pattern" field.
func RegexPatternEQ(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldEQ(FieldRegexPattern, v))
}

// RegexPatternNEQ applies the NEQ predicate on the "regex_pattern" field.
func RegexPatternNEQ(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldNEQ(FieldRegexPattern, v))
}

// RegexPatternIn applies the In predicate on the "regex_pattern" field.
func RegexPatternIn(vs ...string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldIn(FieldRegexPattern, vs...))
}

// RegexPatternNotIn applies the NotIn predicate on the "regex_pattern" field.
func RegexPatternNotIn(vs ...string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldNotIn(FieldRegexPattern, vs...))
}

// RegexPatternGT applies the GT predicate on the "regex_pattern" field.
func RegexPatternGT(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldGT(FieldRegexPattern, v))
}

// RegexPatternGTE applies the GTE predicate on the "regex_pattern" field.
func RegexPatternGTE(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldGTE(FieldRegexPattern, v))
}

// RegexPatternLT applies the LT predicate on the "regex_pattern" field.
func RegexPatternLT(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldLT(FieldRegexPattern, v))
}

// RegexPatternLTE applies the LTE predicate on the "regex_pattern" field.
func RegexPatternLTE(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldLTE(FieldRegexPattern, v))
}

// RegexPatternContains applies the Contains predicate on the "regex_pattern" field.
func RegexPatternContains(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldContains(FieldRegexPattern, v))
}

// RegexPatternHasPrefix applies the HasPrefix predicate on the "regex_pattern" field.
func RegexPatternHasPrefix(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldHasPrefix(FieldRegexPattern, v))
}

// RegexPatternHasSuffix applies the HasSuffix predicate on the "regex_pattern" field.
func RegexPatternHasSuffix(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldHasSuffix(FieldRegexPattern, v))
}

// RegexPatternIsNil applies the IsNil predicate on the "regex_pattern" field.
func RegexPatternIsNil() predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldIsNull(FieldRegexPattern))
}

// RegexPatternNotNil applies the NotNil predicate on the "regex_pattern" field.
func RegexPatternNotNil() predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldNotNull(FieldRegexPattern))
}

// RegexPatternEqualFold applies the EqualFold predicate on the "regex_pattern" field.
func RegexPatternEqualFold(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldEqualFold(FieldRegexPattern, v))
}

// RegexPatternContainsFold applies the ContainsFold predicate on the "regex_pattern" field.
func RegexPatternContainsFold(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldContainsFold(FieldRegexPattern, v))
}

// TableConfigIsNil applies the IsNil predicate on the "table_config" field.
func TableConfigIsNil() predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldIsNull(FieldTableConfig))
}

// TableConfigNotNil applies the NotNil predicate on the "table_config" field.
func TableConfigNotNil() predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldNotNull(FieldTableConfig))
}

// RequiredEQ applies the EQ predicate on the "required" field.
func RequiredEQ(v bool) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldEQ(FieldRequired, v))
}

// RequiredNEQ applies the NEQ predicate on the "required" field.
func RequiredNEQ(v bool) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldNEQ(FieldRequired, v))
}

// PreProcessingIsNil applies the IsNil predicate on the "pre_processing" field.
func PreProcessingIsNil() predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldIsNull(FieldPreProcessing))
}

// PreProcessingNotNil applies the NotNil predicate on the "pre_processing" field.
func PreProcessingNotNil() predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldNotNull(FieldPreProcessing))
}

// PostProcessingIsNil applies the IsNil predicate on the "post_processing" field.
func PostProcessingIsNil() predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldIsNull(FieldPostProcessing))
}

// PostProcessingNotNil applies the NotNil predicate on the "post_processing" field.
func PostProcessingNotNil() predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldNotNull(FieldPostProcessing))
}

// ValidationIsNil applies the IsNil predicate on the "validation" field.
func ValidationIsNil() predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldIsNull(FieldValidation))
}

// ValidationNotNil applies the NotNil predicate on the "validation" field.
func ValidationNotNil() predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldNotNull(FieldValidation))
}

// PostProcessorEQ applies the EQ predicate on the "post_processor" field.
func PostProcessorEQ(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldEQ(FieldPostProcessor, v))
}

// PostProcessorNEQ applies the NEQ predicate on the "post_processor" field.
func PostProcessorNEQ(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldNEQ(FieldPostProcessor, v))
}

// PostProcessorIn applies the In predicate on the "post_processor" field.
func PostProcessorIn(vs ...string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldIn(FieldPostProcessor, vs...))
}

// PostProcessorNotIn applies the NotIn predicate on the "post_processor" field.
func PostProcessorNotIn(vs ...string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldNotIn(FieldPostProcessor, vs...))
}

// PostProcessorGT applies the GT predicate on the "post_processor" field.
func PostProcessorGT(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldGT(FieldPostProcessor, v))
}

// PostProcessorGTE applies the GTE predicate on the "post_processor" field.
func PostProcessorGTE(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldGTE(FieldPostProcessor, v))
}

// PostProcessorLT applies the LT predicate on the "post_processor" field.
func PostProcessorLT(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldLT(FieldPostProcessor, v))
}

// PostProcessorLTE applies the LTE predicate on the "post_processor" field.
func PostProcessorLTE(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldLTE(FieldPostProcessor, v))
}

// PostProcessorContains applies the Contains predicate on the "post_processor" field.
func PostProcessorContains(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldContains(FieldPostProcessor, v))
}

// PostProcessorHasPrefix applies the HasPrefix predicate on the "post_processor" field.
func PostProcessorHasPrefix(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldHasPrefix(FieldPostProcessor, v))
}

// PostProcessorHasSuffix applies the HasSuffix predicate on the "post_processor" field.
func PostProcessorHasSuffix(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldHasSuffix(FieldPostProcessor, v))
}

// PostProcessorIsNil applies the IsNil predicate on the "post_processor" field.
func PostProcessorIsNil() predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldIsNull(FieldPostProcessor))
}

// PostProcessorNotNil applies the NotNil predicate on the "post_processor" field.
func PostProcessorNotNil() predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldNotNull(FieldPostProcessor))
}

// PostProcessorEqualFold applies the EqualFold predicate on the "post_processor" field.
func PostProcessorEqualFold(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldEqualFold(FieldPostProcessor, v))
}

// PostProcessorContainsFold applies the ContainsFold predicate on the "post_processor" field.
func PostProcessorContainsFold(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldContainsFold(FieldPostProcessor, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldContainsFold(FieldDescription, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasVendor applies the HasEdge predicate on the "vendor" edge.
func HasVendor() predicate.ExtractionRule {
	return predicate.ExtractionRule(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, VendorTable, VendorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVendorWith applies the HasEdge predicate on the "vendor" edge with a given conditions (other predicates).
func HasVendorWith(preds ...predicate.Vendor) predicate.ExtractionRule {
	return predicate.ExtractionRule(func(s *sql.Selector) {
		step := newVendorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractionRule) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractionRule) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractionRule) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.NotPredicates(p))
}
