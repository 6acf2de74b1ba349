// Package mail defines the collaborator contract for inbound invoice mail.
// The pipeline only depends on these interfaces; a concrete Gmail or IMAP
// source lives behind them.
package mail

import (
	"context"
	"time"
)

// Message is the metadata of one inbound email.
type Message struct {
	ID       string
	From     string
	Subject  string
	Received time.Time
}

// Attachment is one file carried by a message.
type Attachment struct {
	Filename string
	Data     []byte
}

// Source lists messages and fetches their attachments. List pages through
// results with an opaque token: pass "" for the first page, and stop when
// the returned token is "".
type Source interface {
	List(ctx context.Context, query, pageToken string, pageSize int32) ([]Message, string, error)
	Attachments(ctx context.Context, messageID string) ([]Attachment, error)
}
