package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/invoicerd/invoicerd/constants"
)

// Document tracks one processed message/attachment across its lifecycle.
type Document struct {
	ID        uuid.UUID                `json:"id"`
	VendorID  *uuid.UUID               `json:"vendor_id,omitempty"`
	MessageID string                   `json:"message_id"`
	Status    constants.DocumentStatus `json:"status"`
	// Data holds the extracted record on success, {"error": "..."} on failure.
	Data        json.RawMessage `json:"data,omitempty"`
	SourcePath  *string         `json:"source_path,omitempty"`
	ProcessedAt *time.Time      `json:"processed_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
