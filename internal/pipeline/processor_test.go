package pipeline

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoicerd/invoicerd/constants"
	"github.com/invoicerd/invoicerd/internal/common"
	"github.com/invoicerd/invoicerd/internal/entity"
	"github.com/invoicerd/invoicerd/internal/extract"
	"github.com/invoicerd/invoicerd/internal/mail"
	"github.com/invoicerd/invoicerd/internal/rules"
	"github.com/invoicerd/invoicerd/internal/vendors"
)

type fakeSource struct {
	messages    []mail.Message
	attachments map[string][]mail.Attachment
}

func (f *fakeSource) List(_ context.Context, _, pageToken string, _ int32) ([]mail.Message, string, error) {
	if pageToken != "" {
		return nil, "", nil
	}
	return f.messages, "", nil
}

func (f *fakeSource) Attachments(_ context.Context, messageID string) ([]mail.Attachment, error) {
	return f.attachments[messageID], nil
}

type fakeVendorRepo struct {
	byEmail map[string]*entity.Vendor
	created []string
}

func (f *fakeVendorRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Vendor, error) {
	for _, v := range f.byEmail {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeVendorRepo) GetByName(_ context.Context, name string) (*entity.Vendor, error) {
	for _, v := range f.byEmail {
		if v.Name == name {
			return v, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeVendorRepo) GetByEmail(_ context.Context, email string) (*entity.Vendor, error) {
	if v, ok := f.byEmail[email]; ok {
		return v, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeVendorRepo) List(_ context.Context) ([]*entity.Vendor, error) { return nil, nil }

func (f *fakeVendorRepo) Create(_ context.Context, name string, _ map[string]string) (*entity.Vendor, error) {
	v := &entity.Vendor{ID: uuid.New(), Name: name}
	f.created = append(f.created, name)
	return v, nil
}

func (f *fakeVendorRepo) AddEmail(_ context.Context, vendorID uuid.UUID, email string, _ bool) error {
	f.byEmail[email] = &entity.Vendor{ID: vendorID}
	return nil
}

type fakeDocRepo struct {
	byMessage map[string]*entity.Document
}

func (f *fakeDocRepo) GetByMessageID(_ context.Context, messageID string) (*entity.Document, error) {
	if d, ok := f.byMessage[messageID]; ok {
		return d, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeDocRepo) CreatePending(_ context.Context, messageID string, vendorID *uuid.UUID, sourcePath string) (*entity.Document, error) {
	d := &entity.Document{
		ID:         uuid.New(),
		MessageID:  messageID,
		VendorID:   vendorID,
		Status:     constants.DocumentStatusPending,
		SourcePath: &sourcePath,
	}
	f.byMessage[messageID] = d
	return d, nil
}

func (f *fakeDocRepo) MarkProcessed(_ context.Context, id uuid.UUID, data json.RawMessage) error {
	for _, d := range f.byMessage {
		if d.ID == id {
			d.Status = constants.DocumentStatusProcessed
			d.Data = data
			now := time.Now()
			d.ProcessedAt = &now
		}
	}
	return nil
}

func (f *fakeDocRepo) MarkError(_ context.Context, id uuid.UUID, message string) error {
	for _, d := range f.byMessage {
		if d.ID == id {
			d.Status = constants.DocumentStatusError
			d.Data, _ = json.Marshal(map[string]string{"error": message})
		}
	}
	return nil
}

func (f *fakeDocRepo) List(_ context.Context, _ *constants.DocumentStatus, _ *uuid.UUID) ([]*entity.Document, error) {
	return nil, nil
}

type fakeRuleRepo struct {
	ruleSet []rules.Rule
}

func (f *fakeRuleRepo) ListForVendor(_ context.Context, _ uuid.UUID) ([]rules.Rule, error) {
	return f.ruleSet, nil
}

func (f *fakeRuleRepo) ReplaceForVendor(_ context.Context, _ uuid.UUID, _ []rules.Rule) error {
	return nil
}

type fakeExtractor struct {
	record extract.Record
	err    error
}

func (f *fakeExtractor) ExtractFile(_ context.Context, _ string, _ []rules.Rule) (extract.Record, []extract.FieldIssue, error) {
	return f.record, nil, f.err
}

type fakeAppender struct {
	rows [][]string
}

func (f *fakeAppender) AppendRow(_ context.Context, row []string) error {
	f.rows = append(f.rows, row)
	return nil
}

func newTestProcessor(t *testing.T, src *fakeSource, docs *fakeDocRepo, ex *fakeExtractor, app *fakeAppender) *Processor {
	t.Helper()
	vrepo := &fakeVendorRepo{byEmail: map[string]*entity.Vendor{
		"billing@acme.com": {ID: uuid.New(), Name: "acme", SpreadsheetColumnMapping: map[string]string{
			"invoice_number": "A",
			"total_amount":   "B",
		}},
	}}
	p := NewProcessor(src, vendors.NewService(vrepo, nil), docs,
		&fakeRuleRepo{ruleSet: []rules.Rule{{
			FieldName:    "invoice_number",
			DataType:     constants.DataTypeText,
			LocationType: constants.LocationTypeKeyword,
			Keyword:      "Invoice No.",
		}}},
		ex, app, Config{WorkDir: t.TempDir()}, nil)
	p.validate = func(string) error { return nil }
	return p
}

func TestProcessorRun(t *testing.T) {
	src := &fakeSource{
		messages: []mail.Message{{ID: "m1", From: "billing@acme.com"}},
		attachments: map[string][]mail.Attachment{
			"m1": {{Filename: "invoice.pdf", Data: []byte("%PDF")}},
		},
	}
	docs := &fakeDocRepo{byMessage: map[string]*entity.Document{}}
	ex := &fakeExtractor{record: extract.Record{"invoice_number": "ABC123", "total_amount": "10.00"}}
	app := &fakeAppender{}

	p := newTestProcessor(t, src, docs, ex, app)
	processed, failed, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, processed)
	assert.Equal(t, 0, failed)

	d := docs.byMessage["m1"]
	require.NotNil(t, d)
	assert.Equal(t, constants.DocumentStatusProcessed, d.Status)
	assert.NotNil(t, d.ProcessedAt)

	// Row follows the vendor's column mapping order.
	require.Len(t, app.rows, 1)
	assert.Equal(t, []string{"ABC123", "10.00"}, app.rows[0])
}

func TestProcessorSkipsSeenMessages(t *testing.T) {
	src := &fakeSource{
		messages: []mail.Message{{ID: "m1", From: "billing@acme.com"}},
		attachments: map[string][]mail.Attachment{
			"m1": {{Filename: "invoice.pdf", Data: []byte("%PDF")}},
		},
	}
	docs := &fakeDocRepo{byMessage: map[string]*entity.Document{
		"m1": {ID: uuid.New(), MessageID: "m1", Status: constants.DocumentStatusProcessed},
	}}
	ex := &fakeExtractor{record: extract.Record{}}
	app := &fakeAppender{}

	p := newTestProcessor(t, src, docs, ex, app)
	processed, failed, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, processed)
	assert.Equal(t, 0, failed)
	assert.Empty(t, app.rows)
}

func TestProcessorRecordsExtractionError(t *testing.T) {
	src := &fakeSource{
		messages: []mail.Message{{ID: "m2", From: "billing@acme.com"}},
		attachments: map[string][]mail.Attachment{
			"m2": {{Filename: "invoice.pdf", Data: []byte("%PDF")}},
		},
	}
	docs := &fakeDocRepo{byMessage: map[string]*entity.Document{}}
	ex := &fakeExtractor{err: &extract.RequiredFieldsError{Fields: []string{"invoice_number"}}}

	p := newTestProcessor(t, src, docs, ex, &fakeAppender{})
	processed, failed, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, processed)
	assert.Equal(t, 1, failed)

	d := docs.byMessage["m2"]
	require.NotNil(t, d)
	assert.Equal(t, constants.DocumentStatusError, d.Status)
	assert.JSONEq(t, `{"error":"Extraction failed for fields: invoice_number"}`, string(d.Data))
}

func TestProcessorSkipsMessagesWithoutPDF(t *testing.T) {
	src := &fakeSource{
		messages: []mail.Message{{ID: "m3", From: "billing@acme.com"}},
		attachments: map[string][]mail.Attachment{
			"m3": {{Filename: "logo.png", Data: []byte("png")}},
		},
	}
	docs := &fakeDocRepo{byMessage: map[string]*entity.Document{}}

	p := newTestProcessor(t, src, docs, &fakeExtractor{}, &fakeAppender{})
	processed, failed, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, processed)
	assert.Equal(t, 0, failed)
	assert.Empty(t, docs.byMessage)
}
