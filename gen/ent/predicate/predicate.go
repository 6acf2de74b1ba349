// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// ExtractionRule is the predicate function for extractionrule builders.
type ExtractionRule func(*sql.Selector)

// Vendor is the predicate function for vendor builders.
type Vendor func(*sql.Selector)

// VendorEmail is the predicate function for vendoremail builders.
type VendorEmail func(*sql.Selector)
