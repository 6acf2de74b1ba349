package async

import (
	"context"
	"time"
)

// Job is one re-extraction request, identified by the mail message whose
// document should run again.
type Job struct {
	MessageID   string
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
