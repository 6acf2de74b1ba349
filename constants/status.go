package constants

// DocumentStatus is the canonical status for rows in document.
type DocumentStatus string

// Stable values (store these exact strings in DB).
const (
	DocumentStatusPending   DocumentStatus = "pending"   // seen but not yet extracted
	DocumentStatusProcessed DocumentStatus = "processed" // extraction succeeded, row exported
	DocumentStatusError     DocumentStatus = "error"     // terminal failure, data holds the error payload
)

// DocumentStatuses holds the allowed values for the status field in Document.
var DocumentStatuses = []string{
	string(DocumentStatusPending),
	string(DocumentStatusProcessed),
	string(DocumentStatusError),
}
