package entity

import (
	"time"

	"github.com/google/uuid"
)

// Vendor represents an invoice issuer for data transfer between layers.
type Vendor struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	// SpreadsheetColumnMapping maps record field names to export columns,
	// e.g. {"invoice_number": "A", "total_amount": "C"}.
	SpreadsheetColumnMapping map[string]string `json:"spreadsheet_column_mapping,omitempty"`
	CreatedAt                time.Time         `json:"created_at"`
	UpdatedAt                time.Time         `json:"updated_at"`
}

// VendorEmail links a sender address to a vendor.
type VendorEmail struct {
	ID        uuid.UUID `json:"id"`
	VendorID  uuid.UUID `json:"vendor_id"`
	Email     string    `json:"email"`
	IsPrimary bool      `json:"is_primary"`
}
