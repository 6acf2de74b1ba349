package constants

import "strings"

// DataType is the declared type of an extracted field.
type DataType string

const (
	DataTypeText      DataType = "text"
	DataTypeNumber    DataType = "number"
	DataTypeDate      DataType = "date"
	DataTypeCurrency  DataType = "currency"
	DataTypeEmail     DataType = "email"
	DataTypePhone     DataType = "phone"
	DataTypeLineItems DataType = "line_items"
)

// DataTypes holds the allowed values for the data_type field in ExtractionRule.
var DataTypes = []string{
	string(DataTypeText),
	string(DataTypeNumber),
	string(DataTypeDate),
	string(DataTypeCurrency),
	string(DataTypeEmail),
	string(DataTypePhone),
	string(DataTypeLineItems),
}

// LocationType selects the strategy used to locate a field on a page.
type LocationType string

const (
	LocationTypeCoordinates LocationType = "coordinates"
	LocationTypeKeyword     LocationType = "keyword"
	LocationTypeRegex       LocationType = "regex"
	LocationTypeTable       LocationType = "table"
	LocationTypeHeader      LocationType = "header"
)

// LocationTypes holds the allowed values for the location_type field in ExtractionRule.
var LocationTypes = []string{
	string(LocationTypeCoordinates),
	string(LocationTypeKeyword),
	string(LocationTypeRegex),
	string(LocationTypeTable),
	string(LocationTypeHeader),
}

// ParsingMethod is the table-detection flavor used by the tabular engine.
type ParsingMethod string

const (
	ParsingMethodRuled      ParsingMethod = "ruled"
	ParsingMethodWhitespace ParsingMethod = "whitespace"
	ParsingMethodHybrid     ParsingMethod = "hybrid"
)

// ParsingMethods holds the allowed values for table_config.parsing_method.
var ParsingMethods = []string{
	string(ParsingMethodRuled),
	string(ParsingMethodWhitespace),
	string(ParsingMethodHybrid),
}

// NormalizeParsingMethod lowercases the method and maps the empty string to hybrid.
func NormalizeParsingMethod(s string) ParsingMethod {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ruled":
		return ParsingMethodRuled
	case "whitespace":
		return ParsingMethodWhitespace
	default:
		return ParsingMethodHybrid
	}
}
