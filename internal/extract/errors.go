package extract

import (
	"fmt"
	"strings"
)

// IssueKind classifies per-field problems recorded during a pass. All of
// these are local and recoverable; only the aggregate required-fields
// failure is surfaced to the caller.
type IssueKind string

const (
	IssueFieldNotFound        IssueKind = "field_not_found"
	IssueRequiredFieldMissing IssueKind = "required_field_missing"
	IssueValidationFailed     IssueKind = "validation_failed"
	IssueBackendError         IssueKind = "backend_error"
	IssuePostProcessing       IssueKind = "post_processing"
)

// FieldIssue records one problem with one field during extraction.
type FieldIssue struct {
	Field  string    `json:"field"`
	Kind   IssueKind `json:"kind"`
	Detail string    `json:"detail,omitempty"`
}

// RequiredFieldsError is the single aggregate failure raised after a full
// pass when required fields could not be extracted. Fields appear in rule
// evaluation order; callers must not assume any other ordering.
type RequiredFieldsError struct {
	Fields []string
}

func (e *RequiredFieldsError) Error() string {
	return fmt.Sprintf("Extraction failed for fields: %s", strings.Join(e.Fields, ", "))
}
