// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/invoicerd/invoicerd/gen/ent/document"
	"github.com/invoicerd/invoicerd/gen/ent/extractionrule"
	"github.com/invoicerd/invoicerd/gen/ent/predicate"
	"github.com/invoicerd/invoicerd/gen/ent/vendor"
	"github.com/invoicerd/invoicerd/gen/ent/vendoremail"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDocument       = "Document"
	TypeExtractionRule = "ExtractionRule"
	TypeVendor         = "Vendor"
	TypeVendorEmail    = "VendorEmail"
)

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	message_id    *string
	status        *string
	processed_at  *time.Time
	data          *json.RawMessage
	appenddata    json.RawMessage
	source_path   *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	vendor        *uuid.UUID
	clearedvendor bool
	done          bool
	oldValue      func(context.Context) (*Document, error)
	predicates    []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id uuid.UUID) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetVendorID sets the "vendor_id" field.
func (m *DocumentMutation) SetVendorID(u uuid.UUID) {
	m.vendor = &u
}

// VendorID returns the value of the "vendor_id" field in the mutation.
func (m *DocumentMutation) VendorID() (r uuid.UUID, exists bool) {
	v := m.vendor
	if v == nil {
		return
	}
	return *v, true
}

// OldVendorID returns the old "vendor_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldVendorID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVendorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVendorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVendorID: %w", err)
	}
	return oldValue.VendorID, nil
}

// ClearVendorID clears the value of the "vendor_id" field.
func (m *DocumentMutation) ClearVendorID() {
	m.vendor = nil
	m.clearedFields[document.FieldVendorID] = struct{}{}
}

// VendorIDCleared returns if the "vendor_id" field was cleared in this mutation.
func (m *DocumentMutation) VendorIDCleared() bool {
	_, ok := m.clearedFields[document.FieldVendorID]
	return ok
}

// ResetVendorID resets all changes to the "vendor_id" field.
func (m *DocumentMutation) ResetVendorID() {
	m.vendor = nil
	delete(m.clearedFields, document.FieldVendorID)
}

// SetMessageID sets the "message_id" field.
func (m *DocumentMutation) SetMessageID(s string) {
	m.message_id = &s
}

// MessageID returns the value of the "message_id" field in the mutation.
func (m *DocumentMutation) MessageID() (r string, exists bool) {
	v := m.message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageID returns the old "message_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldMessageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageID: %w", err)
	}
	return oldValue.MessageID, nil
}

// ResetMessageID resets all changes to the "message_id" field.
func (m *DocumentMutation) ResetMessageID() {
	m.message_id = nil
}

// SetStatus sets the "status" field.
func (m *DocumentMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *DocumentMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DocumentMutation) ResetStatus() {
	m.status = nil
}

// SetProcessedAt sets the "processed_at" field.
func (m *DocumentMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *DocumentMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldProcessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (m *DocumentMutation) ClearProcessedAt() {
	m.processed_at = nil
	m.clearedFields[document.FieldProcessedAt] = struct{}{}
}

// ProcessedAtCleared returns if the "processed_at" field was cleared in this mutation.
func (m *DocumentMutation) ProcessedAtCleared() bool {
	_, ok := m.clearedFields[document.FieldProcessedAt]
	return ok
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *DocumentMutation) ResetProcessedAt() {
	m.processed_at = nil
	delete(m.clearedFields, document.FieldProcessedAt)
}

// SetData sets the "data" field.
func (m *DocumentMutation) SetData(jm json.RawMessage) {
	m.data = &jm
	m.appenddata = nil
}

// Data returns the value of the "data" field in the mutation.
func (m *DocumentMutation) Data() (r json.RawMessage, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldData(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// AppendData adds jm to the "data" field.
func (m *DocumentMutation) AppendData(jm json.RawMessage) {
	m.appenddata = append(m.appenddata, jm...)
}

// AppendedData returns the list of values that were appended to the "data" field in this mutation.
func (m *DocumentMutation) AppendedData() (json.RawMessage, bool) {
	if len(m.appenddata) == 0 {
		return nil, false
	}
	return m.appenddata, true
}

// ClearData clears the value of the "data" field.
func (m *DocumentMutation) ClearData() {
	m.data = nil
	m.appenddata = nil
	m.clearedFields[document.FieldData] = struct{}{}
}

// DataCleared returns if the "data" field was cleared in this mutation.
func (m *DocumentMutation) DataCleared() bool {
	_, ok := m.clearedFields[document.FieldData]
	return ok
}

// ResetData resets all changes to the "data" field.
func (m *DocumentMutation) ResetData() {
	m.data = nil
	m.appenddata = nil
	delete(m.clearedFields, document.FieldData)
}

// SetSourcePath sets the "source_path" field.
func (m *DocumentMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *DocumentMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSourcePath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ClearSourcePath clears the value of the "source_path" field.
func (m *DocumentMutation) ClearSourcePath() {
	m.source_path = nil
	m.clearedFields[document.FieldSourcePath] = struct{}{}
}

// SourcePathCleared returns if the "source_path" field was cleared in this mutation.
func (m *DocumentMutation) SourcePathCleared() bool {
	_, ok := m.clearedFields[document.FieldSourcePath]
	return ok
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *DocumentMutation) ResetSourcePath() {
	m.source_path = nil
	delete(m.clearedFields, document.FieldSourcePath)
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DocumentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DocumentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DocumentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearVendor clears the "vendor" edge to the Vendor entity.
func (m *DocumentMutation) ClearVendor() {
	m.clearedvendor = true
	m.clearedFields[document.FieldVendorID] = struct{}{}
}

// VendorCleared reports if the "vendor" edge to the Vendor entity was cleared.
func (m *DocumentMutation) VendorCleared() bool {
	return m.VendorIDCleared() || m.clearedvendor
}

// VendorIDs returns the "vendor" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// VendorID instead. It exists only for internal usage by the builders.
func (m *DocumentMutation) VendorIDs() (ids []uuid.UUID) {
	if id := m.vendor; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetVendor resets all changes to the "vendor" edge.
func (m *DocumentMutation) ResetVendor() {
	m.vendor = nil
	m.clearedvendor = false
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.vendor != nil {
		fields = append(fields, document.FieldVendorID)
	}
	if m.message_id != nil {
		fields = append(fields, document.FieldMessageID)
	}
	if m.status != nil {
		fields = append(fields, document.FieldStatus)
	}
	if m.processed_at != nil {
		fields = append(fields, document.FieldProcessedAt)
	}
	if m.data != nil {
		fields = append(fields, document.FieldData)
	}
	if m.source_path != nil {
		fields = append(fields, document.FieldSourcePath)
	}
	if m.created_at != nil {
		fields = append(fields, document.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, document.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldVendorID:
		return m.VendorID()
	case document.FieldMessageID:
		return m.MessageID()
	case document.FieldStatus:
		return m.Status()
	case document.FieldProcessedAt:
		return m.ProcessedAt()
	case document.FieldData:
		return m.Data()
	case document.FieldSourcePath:
		return m.SourcePath()
	case document.FieldCreatedAt:
		return m.CreatedAt()
	case document.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldVendorID:
		return m.OldVendorID(ctx)
	case document.FieldMessageID:
		return m.OldMessageID(ctx)
	case document.FieldStatus:
		return m.OldStatus(ctx)
	case document.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	case document.FieldData:
		return m.OldData(ctx)
	case document.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case document.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case document.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldVendorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVendorID(v)
		return nil
	case document.FieldMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageID(v)
		return nil
	case document.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case document.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	case document.FieldData:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case document.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case document.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case document.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldVendorID) {
		fields = append(fields, document.FieldVendorID)
	}
	if m.FieldCleared(document.FieldProcessedAt) {
		fields = append(fields, document.FieldProcessedAt)
	}
	if m.FieldCleared(document.FieldData) {
		fields = append(fields, document.FieldData)
	}
	if m.FieldCleared(document.FieldSourcePath) {
		fields = append(fields, document.FieldSourcePath)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldVendorID:
		m.ClearVendorID()
		return nil
	case document.FieldProcessedAt:
		m.ClearProcessedAt()
		return nil
	case document.FieldData:
		m.ClearData()
		return nil
	case document.FieldSourcePath:
		m.ClearSourcePath()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldVendorID:
		m.ResetVendorID()
		return nil
	case document.FieldMessageID:
		m.ResetMessageID()
		return nil
	case document.FieldStatus:
		m.ResetStatus()
		return nil
	case document.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	case document.FieldData:
		m.ResetData()
		return nil
	case document.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case document.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case document.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.vendor != nil {
		edges = append(edges, document.EdgeVendor)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeVendor:
		if id := m.vendor; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedvendor {
		edges = append(edges, document.EdgeVendor)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeVendor:
		return m.clearedvendor
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	case document.EdgeVendor:
		m.ClearVendor()
		return nil
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeVendor:
		m.ResetVendor()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// ExtractionRuleMutation represents an operation that mutates the ExtractionRule nodes in the graph.
type ExtractionRuleMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	field_name            *string
	data_type             *string
	location_type         *string
	coordinates           *json.RawMessage
	appendcoordinates     json.RawMessage
	keyword               *string
	regex_pattern         *string
	table_config          *json.RawMessage
	appendtable_config    json.RawMessage
	required              *bool
	pre_processing        *json.RawMessage
	appendpre_processing  json.RawMessage
	post_processing       *json.RawMessage
	appendpost_processing json.RawMessage
	validation            *json.RawMessage
	appendvalidation      json.RawMessage
	post_processor        *string
	description           *string
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	vendor                *uuid.UUID
	clearedvendor         bool
	done                  bool
	oldValue              func(context.Context) (*ExtractionRule, error)
	predicates            []predicate.ExtractionRule
}

var _ ent.Mutation = (*ExtractionRuleMutation)(nil)

// extractionruleOption allows management of the mutation configuration using functional options.
type extractionruleOption func(*ExtractionRuleMutation)

// newExtractionRuleMutation creates new mutation for the ExtractionRule entity.
func newExtractionRuleMutation(c config, op Op, opts ...extractionruleOption) *ExtractionRuleMutation {
	m := &ExtractionRuleMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractionRule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractionRuleID sets the ID field of the mutation.
func withExtractionRuleID(id uuid.UUID) extractionruleOption {
	return func(m *ExtractionRuleMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractionRule
		)
		m.oldValue = func(ctx context.Context) (*ExtractionRule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractionRule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractionRule sets the old ExtractionRule of the mutation.
func withExtractionRule(node *ExtractionRule) extractionruleOption {
	return func(m *ExtractionRuleMutation) {
		m.oldValue = func(context.Context) (*ExtractionRule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractionRuleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractionRuleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractionRule entities.
func (m *ExtractionRuleMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractionRuleMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractionRuleMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractionRule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetVendorID sets the "vendor_id" field.
func (m *ExtractionRuleMutation) SetVendorID(u uuid.UUID) {
	m.vendor = &u
}

// VendorID returns the value of the "vendor_id" field in the mutation.
func (m *ExtractionRuleMutation) VendorID() (r uuid.UUID, exists bool) {
	v := m.vendor
	if v == nil {
		return
	}
	return *v, true
}

// OldVendorID returns the old "vendor_id" field's value of the ExtractionRule entity.
// If the ExtractionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRuleMutation) OldVendorID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVendorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVendorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVendorID: %w", err)
	}
	return oldValue.VendorID, nil
}

// ResetVendorID resets all changes to the "vendor_id" field.
func (m *ExtractionRuleMutation) ResetVendorID() {
	m.vendor = nil
}

// SetFieldName sets the "field_name" field.
func (m *ExtractionRuleMutation) SetFieldName(s string) {
	m.field_name = &s
}

// FieldName returns the value of the "field_name" field in the mutation.
func (m *ExtractionRuleMutation) FieldName() (r string, exists bool) {
	v := m.field_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldName returns the old "field_name" field's value of the ExtractionRule entity.
// If the ExtractionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRuleMutation) OldFieldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldName: %w", err)
	}
	return oldValue.FieldName, nil
}

// ResetFieldName resets all changes to the "field_name" field.
func (m *ExtractionRuleMutation) ResetFieldName() {
	m.field_name = nil
}

// SetDataType sets the "data_type" field.
func (m *ExtractionRuleMutation) SetDataType(s string) {
	m.data_type = &s
}

// DataType returns the value of the "data_type" field in the mutation.
func (m *ExtractionRuleMutation) DataType() (r string, exists bool) {
	v := m.data_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDataType returns the old "data_type" field's value of the ExtractionRule entity.
// If the ExtractionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRuleMutation) OldDataType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDataType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDataType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDataType: %w", err)
	}
	return oldValue.DataType, nil
}

// ResetDataType resets all changes to the "data_type" field.
func (m *ExtractionRuleMutation) ResetDataType() {
	m.data_type = nil
}

// SetLocationType sets the "location_type" field.
func (m *ExtractionRuleMutation) SetLocationType(s string) {
	m.location_type = &s
}

// LocationType returns the value of the "location_type" field in the mutation.
func (m *ExtractionRuleMutation) LocationType() (r string, exists bool) {
	v := m.location_type
	if v == nil {
		return
	}
	return *v, true
}

// OldLocationType returns the old "location_type" field's value of the ExtractionRule entity.
// If the ExtractionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRuleMutation) OldLocationType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocationType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocationType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocationType: %w", err)
	}
	return oldValue.LocationType, nil
}

// ResetLocationType resets all changes to the "location_type" field.
func (m *ExtractionRuleMutation) ResetLocationType() {
	m.location_type = nil
}

// SetCoordinates sets the "coordinates" field.
func (m *ExtractionRuleMutation) SetCoordinates(jm json.RawMessage) {
	m.coordinates = &jm
	m.appendcoordinates = nil
}

// Coordinates returns the value of the "coordinates" field in the mutation.
func (m *ExtractionRuleMutation) Coordinates() (r json.RawMessage, exists bool) {
	v := m.coordinates
	if v == nil {
		return
	}
	return *v, true
}

// OldCoordinates returns the old "coordinates" field's value of the ExtractionRule entity.
// If the ExtractionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRuleMutation) OldCoordinates(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCoordinates is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCoordinates requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCoordinates: %w", err)
	}
	return oldValue.Coordinates, nil
}

// AppendCoordinates adds jm to the "coordinates" field.
func (m *ExtractionRuleMutation) AppendCoordinates(jm json.RawMessage) {
	m.appendcoordinates = append(m.appendcoordinates, jm...)
}

// AppendedCoordinates returns the list of values that were appended to the "coordinates" field in this mutation.
func (m *ExtractionRuleMutation) AppendedCoordinates() (json.RawMessage, bool) {
	if len(m.appendcoordinates) == 0 {
		return nil, false
	}
	return m.appendcoordinates, true
}

// ClearCoordinates clears the value of the "coordinates" field.
func (m *ExtractionRuleMutation) ClearCoordinates() {
	m.coordinates = nil
	m.appendcoordinates = nil
	m.clearedFields[extractionrule.FieldCoordinates] = struct{}{}
}

// CoordinatesCleared returns if the "coordinates" field was cleared in this mutation.
func (m *ExtractionRuleMutation) CoordinatesCleared() bool {
	_, ok := m.clearedFields[extractionrule.FieldCoordinates]
	return ok
}

// ResetCoordinates resets all changes to the "coordinates" field.
func (m *ExtractionRuleMutation) ResetCoordinates() {
	m.coordinates = nil
	m.appendcoordinates = nil
	delete(m.clearedFields, extractionrule.FieldCoordinates)
}

// SetKeyword sets the "keyword" field.
func (m *ExtractionRuleMutation) SetKeyword(s string) {
	m.keyword = &s
}

// Keyword returns the value of the "keyword" field in the mutation.
func (m *ExtractionRuleMutation) Keyword() (r string, exists bool) {
	v := m.keyword
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyword returns the old "keyword" field's value of the ExtractionRule entity.
// If the ExtractionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRuleMutation) OldKeyword(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyword is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyword requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyword: %w", err)
	}
	return oldValue.Keyword, nil
}

// ClearKeyword clears the value of the "keyword" field.
func (m *ExtractionRuleMutation) ClearKeyword() {
	m.keyword = nil
	m.clearedFields[extractionrule.FieldKeyword] = struct{}{}
}

// KeywordCleared returns if the "keyword" field was cleared in this mutation.
func (m *ExtractionRuleMutation) KeywordCleared() bool {
	_, ok := m.clearedFields[extractionrule.FieldKeyword]
	return ok
}

// ResetKeyword resets all changes to the "keyword" field.
func (m *ExtractionRuleMutation) ResetKeyword() {
	m.keyword = nil
	delete(m.clearedFields, extractionrule.FieldKeyword)
}

// SetRegexPattern sets the "regex_pattern" field.
func (m *ExtractionRuleMutation) SetRegexPattern(s string) {
	m.regex_pattern = &s
}

// RegexPattern returns the value of the "regex_pattern" field in the mutation.
func (m *ExtractionRuleMutation) RegexPattern() (r string, exists bool) {
	v := m.regex_pattern
	if v == nil {
		return
	}
	return *v, true
}

// OldRegexPattern returns the old "regex_pattern" field's value of the ExtractionRule entity.
// If the ExtractionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRuleMutation) OldRegexPattern(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegexPattern is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegexPattern requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegexPattern: %w", err)
	}
	return oldValue.RegexPattern, nil
}

// ClearRegexPattern clears the value of the "regex_pattern" field.
func (m *ExtractionRuleMutation) ClearRegexPattern() {
	m.regex_pattern = nil
	m.clearedFields[extractionrule.FieldRegexPattern] = struct{}{}
}

// RegexPatternCleared returns if the "regex_pattern" field was cleared in this mutation.
func (m *ExtractionRuleMutation) RegexPatternCleared() bool {
	_, ok := m.clearedFields[extractionrule.FieldRegexPattern]
	return ok
}

// ResetRegexPattern resets all changes to the "regex_pattern" field.
func (m *ExtractionRuleMutation) ResetRegexPattern() {
	m.regex_pattern = nil
	delete(m.clearedFields, extractionrule.FieldRegexPattern)
}

// SetTableConfig sets the "table_config" field.
func (m *ExtractionRuleMutation) SetTableConfig(jm json.RawMessage) {
	m.table_config = &jm
	m.appendtable_config = nil
}

// TableConfig returns the value of the "table_config" field in the mutation.
func (m *ExtractionRuleMutation) TableConfig() (r json.RawMessage, exists bool) {
	v := m.table_config
	if v == nil {
		return
	}
	return *v, true
}

// OldTableConfig returns the old "table_config" field's value of the ExtractionRule entity.
// If the ExtractionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRuleMutation) OldTableConfig(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTableConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTableConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTableConfig: %w", err)
	}
	return oldValue.TableConfig, nil
}

// AppendTableConfig adds jm to the "table_config" field.
func (m *ExtractionRuleMutation) AppendTableConfig(jm json.RawMessage) {
	m.appendtable_config = append(m.appendtable_config, jm...)
}

// AppendedTableConfig returns the list of values that were appended to the "table_config" field in this mutation.
func (m *ExtractionRuleMutation) AppendedTableConfig() (json.RawMessage, bool) {
	if len(m.appendtable_config) == 0 {
		return nil, false
	}
	return m.appendtable_config, true
}

// ClearTableConfig clears the value of the "table_config" field.
func (m *ExtractionRuleMutation) ClearTableConfig() {
	m.table_config = nil
	m.appendtable_config = nil
	m.clearedFields[extractionrule.FieldTableConfig] = struct{}{}
}

// TableConfigCleared returns if the "table_config" field was cleared in this mutation.
func (m *ExtractionRuleMutation) TableConfigCleared() bool {
	_, ok := m.clearedFields[extractionrule.FieldTableConfig]
	return ok
}

// ResetTableConfig resets all changes to the "table_config" field.
func (m *ExtractionRuleMutation) ResetTableConfig() {
	m.table_config = nil
	m.appendtable_config = nil
	delete(m.clearedFields, extractionrule.FieldTableConfig)
}

// SetRequired sets the "required" field.
func (m *ExtractionRuleMutation) SetRequired(b bool) {
	m.required = &b
}

// Required returns the value of the "required" field in the mutation.
func (m *ExtractionRuleMutation) Required() (r bool, exists bool) {
	v := m.required
	if v == nil {
		return
	}
	return *v, true
}

// OldRequired returns the old "required" field's value of the ExtractionRule entity.
// If the ExtractionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRuleMutation) OldRequired(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequired is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequired requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequired: %w", err)
	}
	return oldValue.Required, nil
}

// ResetRequired resets all changes to the "required" field.
func (m *ExtractionRuleMutation) ResetRequired() {
	m.required = nil
}

// SetPreProcessing sets the "pre_processing" field.
func (m *ExtractionRuleMutation) SetPreProcessing(jm json.RawMessage) {
	m.pre_processing = &jm
	m.appendpre_processing = nil
}

// PreProcessing returns the value of the "pre_processing" field in the mutation.
func (m *ExtractionRuleMutation) PreProcessing() (r json.RawMessage, exists bool) {
	v := m.pre_processing
	if v == nil {
		return
	}
	return *v, true
}

// OldPreProcessing returns the old "pre_processing" field's value of the ExtractionRule entity.
// If the ExtractionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRuleMutation) OldPreProcessing(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreProcessing is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreProcessing requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreProcessing: %w", err)
	}
	return oldValue.PreProcessing, nil
}

// AppendPreProcessing adds jm to the "pre_processing" field.
func (m *ExtractionRuleMutation) AppendPreProcessing(jm json.RawMessage) {
	m.appendpre_processing = append(m.appendpre_processing, jm...)
}

// AppendedPreProcessing returns the list of values that were appended to the "pre_processing" field in this mutation.
func (m *ExtractionRuleMutation) AppendedPreProcessing() (json.RawMessage, bool) {
	if len(m.appendpre_processing) == 0 {
		return nil, false
	}
	return m.appendpre_processing, true
}

// ClearPreProcessing clears the value of the "pre_processing" field.
func (m *ExtractionRuleMutation) ClearPreProcessing() {
	m.pre_processing = nil
	m.appendpre_processing = nil
	m.clearedFields[extractionrule.FieldPreProcessing] = struct{}{}
}

// PreProcessingCleared returns if the "pre_processing" field was cleared in this mutation.
func (m *ExtractionRuleMutation) PreProcessingCleared() bool {
	_, ok := m.clearedFields[extractionrule.FieldPreProcessing]
	return ok
}

// ResetPreProcessing resets all changes to the "pre_processing" field.
func (m *ExtractionRuleMutation) ResetPreProcessing() {
	m.pre_processing = nil
	m.appendpre_processing = nil
	delete(m.clearedFields, extractionrule.FieldPreProcessing)
}

// SetPostProcessing sets the "post_processing" field.
func (m *ExtractionRuleMutation) SetPostProcessing(jm json.RawMessage) {
	m.post_processing = &jm
	m.appendpost_processing = nil
}

// PostProcessing returns the value of the "post_processing" field in the mutation.
func (m *ExtractionRuleMutation) PostProcessing() (r json.RawMessage, exists bool) {
	v := m.post_processing
	if v == nil {
		return
	}
	return *v, true
}

// OldPostProcessing returns the old "post_processing" field's value of the ExtractionRule entity.
// If the ExtractionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRuleMutation) OldPostProcessing(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPostProcessing is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPostProcessing requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPostProcessing: %w", err)
	}
	return oldValue.PostProcessing, nil
}

// AppendPostProcessing adds jm to the "post_processing" field.
func (m *ExtractionRuleMutation) AppendPostProcessing(jm json.RawMessage) {
	m.appendpost_processing = append(m.appendpost_processing, jm...)
}

// AppendedPostProcessing returns the list of values that were appended to the "post_processing" field in this mutation.
func (m *ExtractionRuleMutation) AppendedPostProcessing() (json.RawMessage, bool) {
	if len(m.appendpost_processing) == 0 {
		return nil, false
	}
	return m.appendpost_processing, true
}

// ClearPostProcessing clears the value of the "post_processing" field.
func (m *ExtractionRuleMutation) ClearPostProcessing() {
	m.post_processing = nil
	m.appendpost_processing = nil
	m.clearedFields[extractionrule.FieldPostProcessing] = struct{}{}
}

// PostProcessingCleared returns if the "post_processing" field was cleared in this mutation.
func (m *ExtractionRuleMutation) PostProcessingCleared() bool {
	_, ok := m.clearedFields[extractionrule.FieldPostProcessing]
	return ok
}

// ResetPostProcessing resets all changes to the "post_processing" field.
func (m *ExtractionRuleMutation) ResetPostProcessing() {
	m.post_processing = nil
	m.appendpost_processing = nil
	delete(m.clearedFields, extractionrule.FieldPostProcessing)
}

// SetValidation sets the "validation" field.
func (m *ExtractionRuleMutation) SetValidation(jm json.RawMessage) {
	m.validation = &jm
	m.appendvalidation = nil
}

// Validation returns the value of the "validation" field in the mutation.
func (m *ExtractionRuleMutation) Validation() (r json.RawMessage, exists bool) {
	v := m.validation
	if v == nil {
		return
	}
	return *v, true
}

// OldValidation returns the old "validation" field's value of the ExtractionRule entity.
// If the ExtractionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRuleMutation) OldValidation(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidation: %w", err)
	}
	return oldValue.Validation, nil
}

// AppendValidation adds jm to the "validation" field.
func (m *ExtractionRuleMutation) AppendValidation(jm json.RawMessage) {
	m.appendvalidation = append(m.appendvalidation, jm...)
}

// AppendedValidation returns the list of values that were appended to the "validation" field in this mutation.
func (m *ExtractionRuleMutation) AppendedValidation() (json.RawMessage, bool) {
	if len(m.appendvalidation) == 0 {
		return nil, false
	}
	return m.appendvalidation, true
}

// ClearValidation clears the value of the "validation" field.
func (m *ExtractionRuleMutation) ClearValidation() {
	m.validation = nil
	m.appendvalidation = nil
	m.clearedFields[extractionrule.FieldValidation] = struct{}{}
}

// ValidationCleared returns if the "validation" field was cleared in this mutation.
func (m *ExtractionRuleMutation) ValidationCleared() bool {
	_, ok := m.clearedFields[extractionrule.FieldValidation]
	return ok
}

// ResetValidation resets all changes to the "validation" field.
func (m *ExtractionRuleMutation) ResetValidation() {
	m.validation = nil
	m.appendvalidation = nil
	delete(m.clearedFields, extractionrule.FieldValidation)
}

// SetPostProcessor sets the "post_processor" field.
func (m *ExtractionRuleMutation) SetPostProcessor(s string) {
	m.post_processor = &s
}

// PostProcessor returns the value of the "post_processor" field in the mutation.
func (m *ExtractionRuleMutation) PostProcessor() (r string, exists bool) {
	v := m.post_processor
	if v == nil {
		return
	}
	return *v, true
}

// OldPostProcessor returns the old "post_processor" field's value of the ExtractionRule entity.
// If the ExtractionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRuleMutation) OldPostProcessor(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPostProcessor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPostProcessor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPostProcessor: %w", err)
	}
	return oldValue.PostProcessor, nil
}

// ClearPostProcessor clears the value of the "post_processor" field.
func (m *ExtractionRuleMutation) ClearPostProcessor() {
	m.post_processor = nil
	m.clearedFields[extractionrule.FieldPostProcessor] = struct{}{}
}

// PostProcessorCleared returns if the "post_processor" field was cleared in this mutation.
func (m *ExtractionRuleMutation) PostProcessorCleared() bool {
	_, ok := m.clearedFields[extractionrule.FieldPostProcessor]
	return ok
}

// ResetPostProcessor resets all changes to the "post_processor" field.
func (m *ExtractionRuleMutation) ResetPostProcessor() {
	m.post_processor = nil
	delete(m.clearedFields, extractionrule.FieldPostProcessor)
}

// SetDescription sets the "description" field.
func (m *ExtractionRuleMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ExtractionRuleMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ExtractionRule entity.
// If the ExtractionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRuleMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ExtractionRuleMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[extractionrule.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ExtractionRuleMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[extractionrule.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ExtractionRuleMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, extractionrule.FieldDescription)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractionRuleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractionRuleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExtractionRule entity.
// If the ExtractionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRuleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExtractionRuleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ExtractionRuleMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ExtractionRuleMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ExtractionRule entity.
// If the ExtractionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRuleMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ExtractionRuleMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearVendor clears the "vendor" edge to the Vendor entity.
func (m *ExtractionRuleMutation) ClearVendor() {
	m.clearedvendor = true
	m.clearedFields[extractionrule.FieldVendorID] = struct{}{}
}

// VendorCleared reports if the "vendor" edge to the Vendor entity was cleared.
func (m *ExtractionRuleMutation) VendorCleared() bool {
	return m.clearedvendor
}

// VendorIDs returns the "vendor" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// VendorID instead. It exists only for internal usage by the builders.
func (m *ExtractionRuleMutation) VendorIDs() (ids []uuid.UUID) {
	if id := m.vendor; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetVendor resets all changes to the "vendor" edge.
func (m *ExtractionRuleMutation) ResetVendor() {
	m.vendor = nil
	m.clearedvendor = false
}

// Where appends a list predicates to the ExtractionRuleMutation builder.
func (m *ExtractionRuleMutation) Where(ps ...predicate.ExtractionRule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractionRuleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractionRuleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractionRule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractionRuleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractionRuleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractionRule).
func (m *ExtractionRuleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractionRuleMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.vendor != nil {
		fields = append(fields, extractionrule.FieldVendorID)
	}
	if m.field_name != nil {
		fields = append(fields, extractionrule.FieldFieldName)
	}
	if m.data_type != nil {
		fields = append(fields, extractionrule.FieldDataType)
	}
	if m.location_type != nil {
		fields = append(fields, extractionrule.FieldLocationType)
	}
	if m.coordinates != nil {
		fields = append(fields, extractionrule.FieldCoordinates)
	}
	if m.keyword != nil {
		fields = append(fields, extractionrule.FieldKeyword)
	}
	if m.regex_pattern != nil {
		fields = append(fields, extractionrule.FieldRegexPattern)
	}
	if m.table_config != nil {
		fields = append(fields, extractionrule.FieldTableConfig)
	}
	if m.required != nil {
		fields = append(fields, extractionrule.FieldRequired)
	}
	if m.pre_processing != nil {
		fields = append(fields, extractionrule.FieldPreProcessing)
	}
	if m.post_processing != nil {
		fields = append(fields, extractionrule.FieldPostProcessing)
	}
	if m.validation != nil {
		fields = append(fields, extractionrule.FieldValidation)
	}
	if m.post_processor != nil {
		fields = append(fields, extractionrule.FieldPostProcessor)
	}
	if m.description != nil {
		fields = append(fields, extractionrule.FieldDescription)
	}
	if m.created_at != nil {
		fields = append(fields, extractionrule.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, extractionrule.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractionRuleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractionrule.FieldVendorID:
		return m.VendorID()
	case extractionrule.FieldFieldName:
		return m.FieldName()
	case extractionrule.FieldDataType:
		return m.DataType()
	case extractionrule.FieldLocationType:
		return m.LocationType()
	case extractionrule.FieldCoordinates:
		return m.Coordinates()
	case extractionrule.FieldKeyword:
		return m.Keyword()
	case extractionrule.FieldRegexPattern:
		return m.RegexPattern()
	case extractionrule.FieldTableConfig:
		return m.TableConfig()
	case extractionrule.FieldRequired:
		return m.Required()
	case extractionrule.FieldPreProcessing:
		return m.PreProcessing()
	case extractionrule.FieldPostProcessing:
		return m.PostProcessing()
	case extractionrule.FieldValidation:
		return m.Validation()
	case extractionrule.FieldPostProcessor:
		return m.PostProcessor()
	case extractionrule.FieldDescription:
		return m.Description()
	case extractionrule.FieldCreatedAt:
		return m.CreatedAt()
	case extractionrule.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractionRuleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractionrule.FieldVendorID:
		return m.OldVendorID(ctx)
	case extractionrule.FieldFieldName:
		return m.OldFieldName(ctx)
	case extractionrule.FieldDataType:
		return m.OldDataType(ctx)
	case extractionrule.FieldLocationType:
		return m.OldLocationType(ctx)
	case extractionrule.FieldCoordinates:
		return m.OldCoordinates(ctx)
	case extractionrule.FieldKeyword:
		return m.OldKeyword(ctx)
	case extractionrule.FieldRegexPattern:
		return m.OldRegexPattern(ctx)
	case extractionrule.FieldTableConfig:
		return m.OldTableConfig(ctx)
	case extractionrule.FieldRequired:
		return m.OldRequired(ctx)
	case extractionrule.FieldPreProcessing:
		return m.OldPreProcessing(ctx)
	case extractionrule.FieldPostProcessing:
		return m.OldPostProcessing(ctx)
	case extractionrule.FieldValidation:
		return m.OldValidation(ctx)
	case extractionrule.FieldPostProcessor:
		return m.OldPostProcessor(ctx)
	case extractionrule.FieldDescription:
		return m.OldDescription(ctx)
	case extractionrule.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case extractionrule.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractionRule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionRuleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractionrule.FieldVendorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVendorID(v)
		return nil
	case extractionrule.FieldFieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldName(v)
		return nil
	case extractionrule.FieldDataType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDataType(v)
		return nil
	case extractionrule.FieldLocationType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocationType(v)
		return nil
	case extractionrule.FieldCoordinates:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCoordinates(v)
		return nil
	case extractionrule.FieldKeyword:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyword(v)
		return nil
	case extractionrule.FieldRegexPattern:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegexPattern(v)
		return nil
	case extractionrule.FieldTableConfig:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTableConfig(v)
		return nil
	case extractionrule.FieldRequired:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequired(v)
		return nil
	case extractionrule.FieldPreProcessing:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreProcessing(v)
		return nil
	case extractionrule.FieldPostProcessing:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPostProcessing(v)
		return nil
	case extractionrule.FieldValidation:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidation(v)
		return nil
	case extractionrule.FieldPostProcessor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPostProcessor(v)
		return nil
	case extractionrule.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case extractionrule.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case extractionrule.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionRule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractionRuleMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractionRuleMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionRuleMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ExtractionRule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractionRuleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractionrule.FieldCoordinates) {
		fields = append(fields, extractionrule.FieldCoordinates)
	}
	if m.FieldCleared(extractionrule.FieldKeyword) {
		fields = append(fields, extractionrule.FieldKeyword)
	}
	if m.FieldCleared(extractionrule.FieldRegexPattern) {
		fields = append(fields, extractionrule.FieldRegexPattern)
	}
	if m.FieldCleared(extractionrule.FieldTableConfig) {
		fields = append(fields, extractionrule.FieldTableConfig)
	}
	if m.FieldCleared(extractionrule.FieldPreProcessing) {
		fields = append(fields, extractionrule.FieldPreProcessing)
	}
	if m.FieldCleared(extractionrule.FieldPostProcessing) {
		fields = append(fields, extractionrule.FieldPostProcessing)
	}
	if m.FieldCleared(extractionrule.FieldValidation) {
		fields = append(fields, extractionrule.FieldValidation)
	}
	if m.FieldCleared(extractionrule.FieldPostProcessor) {
		fields = append(fields, extractionrule.FieldPostProcessor)
	}
	if m.FieldCleared(extractionrule.FieldDescription) {
		fields = append(fields, extractionrule.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractionRuleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractionRuleMutation) ClearField(name string) error {
	switch name {
	case extractionrule.FieldCoordinates:
		m.ClearCoordinates()
		return nil
	case extractionrule.FieldKeyword:
		m.ClearKeyword()
		return nil
	case extractionrule.FieldRegexPattern:
		m.ClearRegexPattern()
		return nil
	case extractionrule.FieldTableConfig:
		m.ClearTableConfig()
		return nil
	case extractionrule.FieldPreProcessing:
		m.ClearPreProcessing()
		return nil
	case extractionrule.FieldPostProcessing:
		m.ClearPostProcessing()
		return nil
	case extractionrule.FieldValidation:
		m.ClearValidation()
		return nil
	case extractionrule.FieldPostProcessor:
		m.ClearPostProcessor()
		return nil
	case extractionrule.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown ExtractionRule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractionRuleMutation) ResetField(name string) error {
	switch name {
	case extractionrule.FieldVendorID:
		m.ResetVendorID()
		return nil
	case extractionrule.FieldFieldName:
		m.ResetFieldName()
		return nil
	case extractionrule.FieldDataType:
		m.ResetDataType()
		return nil
	case extractionrule.FieldLocationType:
		m.ResetLocationType()
		return nil
	case extractionrule.FieldCoordinates:
		m.ResetCoordinates()
		return nil
	case extractionrule.FieldKeyword:
		m.ResetKeyword()
		return nil
	case extractionrule.FieldRegexPattern:
		m.ResetRegexPattern()
		return nil
	case extractionrule.FieldTableConfig:
		m.ResetTableConfig()
		return nil
	case extractionrule.FieldRequired:
		m.ResetRequired()
		return nil
	case extractionrule.FieldPreProcessing:
		m.ResetPreProcessing()
		return nil
	case extractionrule.FieldPostProcessing:
		m.ResetPostProcessing()
		return nil
	case extractionrule.FieldValidation:
		m.ResetValidation()
		return nil
	case extractionrule.FieldPostProcessor:
		m.ResetPostProcessor()
		return nil
	case extractionrule.FieldDescription:
		m.ResetDescription()
		return nil
	case extractionrule.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case extractionrule.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractionRule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractionRuleMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.vendor != nil {
		edges = append(edges, extractionrule.EdgeVendor)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractionRuleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractionrule.EdgeVendor:
		if id := m.vendor; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractionRuleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractionRuleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractionRuleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedvendor {
		edges = append(edges, extractionrule.EdgeVendor)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractionRuleMutation) EdgeCleared(name string) bool {
	switch name {
	case extractionrule.EdgeVendor:
		return m.clearedvendor
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractionRuleMutation) ClearEdge(name string) error {
	switch name {
	case extractionrule.EdgeVendor:
		m.ClearVendor()
		return nil
	}
	return fmt.Errorf("unknown ExtractionRule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractionRuleMutation) ResetEdge(name string) error {
	switch name {
	case extractionrule.EdgeVendor:
		m.ResetVendor()
		return nil
	}
	return fmt.Errorf("unknown ExtractionRule edge %s", name)
}

// VendorMutation represents an operation that mutates the Vendor nodes in the graph.
type VendorMutation struct {
	config
	op                               Op
	typ                              string
	id                               *uuid.UUID
	name                             *string
	spreadsheet_column_mapping       *json.RawMessage
	appendspreadsheet_column_mapping json.RawMessage
	created_at                       *time.Time
	updated_at                       *time.Time
	clearedFields                    map[string]struct{}
	rules                            map[uuid.UUID]struct{}
	removedrules                     map[uuid.UUID]struct{}
	clearedrules                     bool
	emails                           map[uuid.UUID]struct{}
	removedemails                    map[uuid.UUID]struct{}
	clearedemails                    bool
	documents                        map[uuid.UUID]struct{}
	removeddocuments                 map[uuid.UUID]struct{}
	cleareddocuments                 bool
	done                             bool
	oldValue                         func(context.Context) (*Vendor, error)
	predicates                       []predicate.Vendor
}

var _ ent.Mutation = (*VendorMutation)(nil)

// vendorOption allows management of the mutation configuration using functional options.
type vendorOption func(*VendorMutation)

// newVendorMutation creates new mutation for the Vendor entity.
func newVendorMutation(c config, op Op, opts ...vendorOption) *VendorMutation {
	m := &VendorMutation{
		config:        c,
		op:            op,
		typ:           TypeVendor,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVendorID sets the ID field of the mutation.
func withVendorID(id uuid.UUID) vendorOption {
	return func(m *VendorMutation) {
		var (
			err   error
			once  sync.Once
			value *Vendor
		)
		m.oldValue = func(ctx context.Context) (*Vendor, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Vendor.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVendor sets the old Vendor of the mutation.
func withVendor(node *Vendor) vendorOption {
	return func(m *VendorMutation) {
		m.oldValue = func(context.Context) (*Vendor, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VendorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VendorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Vendor entities.
func (m *VendorMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VendorMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VendorMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Vendor.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *VendorMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *VendorMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Vendor entity.
// If the Vendor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VendorMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *VendorMutation) ResetName() {
	m.name = nil
}

// SetSpreadsheetColumnMapping sets the "spreadsheet_column_mapping" field.
func (m *VendorMutation) SetSpreadsheetColumnMapping(jm json.RawMessage) {
	m.spreadsheet_column_mapping = &jm
	m.appendspreadsheet_column_mapping = nil
}

// SpreadsheetColumnMapping returns the value of the "spreadsheet_column_mapping" field in the mutation.
func (m *VendorMutation) SpreadsheetColumnMapping() (r json.RawMessage, exists bool) {
	v := m.spreadsheet_column_mapping
	if v == nil {
		return
	}
	return *v, true
}

// OldSpreadsheetColumnMapping returns the old "spreadsheet_column_mapping" field's value of the Vendor entity.
// If the Vendor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VendorMutation) OldSpreadsheetColumnMapping(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpreadsheetColumnMapping is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpreadsheetColumnMapping requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpreadsheetColumnMapping: %w", err)
	}
	return oldValue.SpreadsheetColumnMapping, nil
}

// AppendSpreadsheetColumnMapping adds jm to the "spreadsheet_column_mapping" field.
func (m *VendorMutation) AppendSpreadsheetColumnMapping(jm json.RawMessage) {
	m.appendspreadsheet_column_mapping = append(m.appendspreadsheet_column_mapping, jm...)
}

// AppendedSpreadsheetColumnMapping returns the list of values that were appended to the "spreadsheet_column_mapping" field in this mutation.
func (m *VendorMutation) AppendedSpreadsheetColumnMapping() (json.RawMessage, bool) {
	if len(m.appendspreadsheet_column_mapping) == 0 {
		return nil, false
	}
	return m.appendspreadsheet_column_mapping, true
}

// ClearSpreadsheetColumnMapping clears the value of the "spreadsheet_column_mapping" field.
func (m *VendorMutation) ClearSpreadsheetColumnMapping() {
	m.spreadsheet_column_mapping = nil
	m.appendspreadsheet_column_mapping = nil
	m.clearedFields[vendor.FieldSpreadsheetColumnMapping] = struct{}{}
}

// SpreadsheetColumnMappingCleared returns if the "spreadsheet_column_mapping" field was cleared in this mutation.
func (m *VendorMutation) SpreadsheetColumnMappingCleared() bool {
	_, ok := m.clearedFields[vendor.FieldSpreadsheetColumnMapping]
	return ok
}

// ResetSpreadsheetColumnMapping resets all changes to the "spreadsheet_column_mapping" field.
func (m *VendorMutation) ResetSpreadsheetColumnMapping() {
	m.spreadsheet_column_mapping = nil
	m.appendspreadsheet_column_mapping = nil
	delete(m.clearedFields, vendor.FieldSpreadsheetColumnMapping)
}

// SetCreatedAt sets the "created_at" field.
func (m *VendorMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VendorMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Vendor entity.
// If the Vendor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VendorMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VendorMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *VendorMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *VendorMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Vendor entity.
// If the Vendor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VendorMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *VendorMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddRuleIDs adds the "rules" edge to the ExtractionRule entity by ids.
func (m *VendorMutation) AddRuleIDs(ids ...uuid.UUID) {
	if m.rules == nil {
		m.rules = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.rules[ids[i]] = struct{}{}
	}
}

// ClearRules clears the "rules" edge to the ExtractionRule entity.
func (m *VendorMutation) ClearRules() {
	m.clearedrules = true
}

// RulesCleared reports if the "rules" edge to the ExtractionRule entity was cleared.
func (m *VendorMutation) RulesCleared() bool {
	return m.clearedrules
}

// RemoveRuleIDs removes the "rules" edge to the ExtractionRule entity by IDs.
func (m *VendorMutation) RemoveRuleIDs(ids ...uuid.UUID) {
	if m.removedrules == nil {
		m.removedrules = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.rules, ids[i])
		m.removedrules[ids[i]] = struct{}{}
	}
}

// RemovedRules returns the removed IDs of the "rules" edge to the ExtractionRule entity.
func (m *VendorMutation) RemovedRulesIDs() (ids []uuid.UUID) {
	for id := range m.removedrules {
		ids = append(ids, id)
	}
	return
}

// RulesIDs returns the "rules" edge IDs in the mutation.
func (m *VendorMutation) RulesIDs() (ids []uuid.UUID) {
	for id := range m.rules {
		ids = append(ids, id)
	}
	return
}

// ResetRules resets all changes to the "rules" edge.
func (m *VendorMutation) ResetRules() {
	m.rules = nil
	m.clearedrules = false
	m.removedrules = nil
}

// AddEmailIDs adds the "emails" edge to the VendorEmail entity by ids.
func (m *VendorMutation) AddEmailIDs(ids ...uuid.UUID) {
	if m.emails == nil {
		m.emails = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.emails[ids[i]] = struct{}{}
	}
}

// ClearEmails clears the "emails" edge to the VendorEmail entity.
func (m *VendorMutation) ClearEmails() {
	m.clearedemails = true
}

// EmailsCleared reports if the "emails" edge to the VendorEmail entity was cleared.
func (m *VendorMutation) EmailsCleared() bool {
	return m.clearedemails
}

// RemoveEmailIDs removes the "emails" edge to the VendorEmail entity by IDs.
func (m *VendorMutation) RemoveEmailIDs(ids ...uuid.UUID) {
	if m.removedemails == nil {
		m.removedemails = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.emails, ids[i])
		m.removedemails[ids[i]] = struct{}{}
	}
}

// RemovedEmails returns the removed IDs of the "emails" edge to the VendorEmail entity.
func (m *VendorMutation) RemovedEmailsIDs() (ids []uuid.UUID) {
	for id := range m.removedemails {
		ids = append(ids, id)
	}
	return
}

// EmailsIDs returns the "emails" edge IDs in the mutation.
func (m *VendorMutation) EmailsIDs() (ids []uuid.UUID) {
	for id := range m.emails {
		ids = append(ids, id)
	}
	return
}

// ResetEmails resets all changes to the "emails" edge.
func (m *VendorMutation) ResetEmails() {
	m.emails = nil
	m.clearedemails = false
	m.removedemails = nil
}

// AddDocumentIDs adds the "documents" edge to the Document entity by ids.
func (m *VendorMutation) AddDocumentIDs(ids ...uuid.UUID) {
	if m.documents == nil {
		m.documents = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.documents[ids[i]] = struct{}{}
	}
}

// ClearDocuments clears the "documents" edge to the Document entity.
func (m *VendorMutation) ClearDocuments() {
	m.cleareddocuments = true
}

// DocumentsCleared reports if the "documents" edge to the Document entity was cleared.
func (m *VendorMutation) DocumentsCleared() bool {
	return m.cleareddocuments
}

// RemoveDocumentIDs removes the "documents" edge to the Document entity by IDs.
func (m *VendorMutation) RemoveDocumentIDs(ids ...uuid.UUID) {
	if m.removeddocuments == nil {
		m.removeddocuments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.documents, ids[i])
		m.removeddocuments[ids[i]] = struct{}{}
	}
}

// RemovedDocuments returns the removed IDs of the "documents" edge to the Document entity.
func (m *VendorMutation) RemovedDocumentsIDs() (ids []uuid.UUID) {
	for id := range m.removeddocuments {
		ids = append(ids, id)
	}
	return
}

// DocumentsIDs returns the "documents" edge IDs in the mutation.
func (m *VendorMutation) DocumentsIDs() (ids []uuid.UUID) {
	for id := range m.documents {
		ids = append(ids, id)
	}
	return
}

// ResetDocuments resets all changes to the "documents" edge.
func (m *VendorMutation) ResetDocuments() {
	m.documents = nil
	m.cleareddocuments = false
	m.removeddocuments = nil
}

// Where appends a list predicates to the VendorMutation builder.
func (m *VendorMutation) Where(ps ...predicate.Vendor) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VendorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VendorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Vendor, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VendorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VendorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Vendor).
func (m *VendorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VendorMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, vendor.FieldName)
	}
	if m.spreadsheet_column_mapping != nil {
		fields = append(fields, vendor.FieldSpreadsheetColumnMapping)
	}
	if m.created_at != nil {
		fields = append(fields, vendor.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, vendor.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VendorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case vendor.FieldName:
		return m.Name()
	case vendor.FieldSpreadsheetColumnMapping:
		return m.SpreadsheetColumnMapping()
	case vendor.FieldCreatedAt:
		return m.CreatedAt()
	case vendor.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VendorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case vendor.FieldName:
		return m.OldName(ctx)
	case vendor.FieldSpreadsheetColumnMapping:
		return m.OldSpreadsheetColumnMapping(ctx)
	case vendor.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case vendor.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Vendor field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VendorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case vendor.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case vendor.FieldSpreadsheetColumnMapping:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpreadsheetColumnMapping(v)
		return nil
	case vendor.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case vendor.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Vendor field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VendorMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VendorMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VendorMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Vendor numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VendorMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(vendor.FieldSpreadsheetColumnMapping) {
		fields = append(fields, vendor.FieldSpreadsheetColumnMapping)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VendorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VendorMutation) ClearField(name string) error {
	switch name {
	case vendor.FieldSpreadsheetColumnMapping:
		m.ClearSpreadsheetColumnMapping()
		return nil
	}
	return fmt.Errorf("unknown Vendor nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VendorMutation) ResetField(name string) error {
	switch name {
	case vendor.FieldName:
		m.ResetName()
		return nil
	case vendor.FieldSpreadsheetColumnMapping:
		m.ResetSpreadsheetColumnMapping()
		return nil
	case vendor.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case vendor.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Vendor field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VendorMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.rules != nil {
		edges = append(edges, vendor.EdgeRules)
	}
	if m.emails != nil {
		edges = append(edges, vendor.EdgeEmails)
	}
	if m.documents != nil {
		edges = append(edges, vendor.EdgeDocuments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VendorMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case vendor.EdgeRules:
		ids := make([]ent.Value, 0, len(m.rules))
		for id := range m.rules {
			ids = append(ids, id)
		}
		return ids
	case vendor.EdgeEmails:
		ids := make([]ent.Value, 0, len(m.emails))
		for id := range m.emails {
			ids = append(ids, id)
		}
		return ids
	case vendor.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.documents))
		for id := range m.documents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VendorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedrules != nil {
		edges = append(edges, vendor.EdgeRules)
	}
	if m.removedemails != nil {
		edges = append(edges, vendor.EdgeEmails)
	}
	if m.removeddocuments != nil {
		edges = append(edges, vendor.EdgeDocuments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VendorMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case vendor.EdgeRules:
		ids := make([]ent.Value, 0, len(m.removedrules))
		for id := range m.removedrules {
			ids = append(ids, id)
		}
		return ids
	case vendor.EdgeEmails:
		ids := make([]ent.Value, 0, len(m.removedemails))
		for id := range m.removedemails {
			ids = append(ids, id)
		}
		return ids
	case vendor.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.removeddocuments))
		for id := range m.removeddocuments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VendorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedrules {
		edges = append(edges, vendor.EdgeRules)
	}
	if m.clearedemails {
		edges = append(edges, vendor.EdgeEmails)
	}
	if m.cleareddocuments {
		edges = append(edges, vendor.EdgeDocuments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VendorMutation) EdgeCleared(name string) bool {
	switch name {
	case vendor.EdgeRules:
		return m.clearedrules
	case vendor.EdgeEmails:
		return m.clearedemails
	case vendor.EdgeDocuments:
		return m.cleareddocuments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VendorMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Vendor unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VendorMutation) ResetEdge(name string) error {
	switch name {
	case vendor.EdgeRules:
		m.ResetRules()
		return nil
	case vendor.EdgeEmails:
		m.ResetEmails()
		return nil
	case vendor.EdgeDocuments:
		m.ResetDocuments()
		return nil
	}
	return fmt.Errorf("unknown Vendor edge %s", name)
}

// VendorEmailMutation represents an operation that mutates the VendorEmail nodes in the graph.
type VendorEmailMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	email         *string
	is_primary    *bool
	clearedFields map[string]struct{}
	vendor        *uuid.UUID
	clearedvendor bool
	done          bool
	oldValue      func(context.Context) (*VendorEmail, error)
	predicates    []predicate.VendorEmail
}

var _ ent.Mutation = (*VendorEmailMutation)(nil)

// vendoremailOption allows management of the mutation configuration using functional options.
type vendoremailOption func(*VendorEmailMutation)

// newVendorEmailMutation creates new mutation for the VendorEmail entity.
func newVendorEmailMutation(c config, op Op, opts ...vendoremailOption) *VendorEmailMutation {
	m := &VendorEmailMutation{
		config:        c,
		op:            op,
		typ:           TypeVendorEmail,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVendorEmailID sets the ID field of the mutation.
func withVendorEmailID(id uuid.UUID) vendoremailOption {
	return func(m *VendorEmailMutation) {
		var (
			err   error
			once  sync.Once
			value *VendorEmail
		)
		m.oldValue = func(ctx context.Context) (*VendorEmail, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VendorEmail.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVendorEmail sets the old VendorEmail of the mutation.
func withVendorEmail(node *VendorEmail) vendoremailOption {
	return func(m *VendorEmailMutation) {
		m.oldValue = func(context.Context) (*VendorEmail, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VendorEmailMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VendorEmailMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of VendorEmail entities.
func (m *VendorEmailMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VendorEmailMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VendorEmailMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VendorEmail.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetVendorID sets the "vendor_id" field.
func (m *VendorEmailMutation) SetVendorID(u uuid.UUID) {
	m.vendor = &u
}

// VendorID returns the value of the "vendor_id" field in the mutation.
func (m *VendorEmailMutation) VendorID() (r uuid.UUID, exists bool) {
	v := m.vendor
	if v == nil {
		return
	}
	return *v, true
}

// OldVendorID returns the old "vendor_id" field's value of the VendorEmail entity.
// If the VendorEmail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VendorEmailMutation) OldVendorID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVendorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVendorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVendorID: %w", err)
	}
	return oldValue.VendorID, nil
}

// ResetVendorID resets all changes to the "vendor_id" field.
func (m *VendorEmailMutation) ResetVendorID() {
	m.vendor = nil
}

// SetEmail sets the "email" field.
func (m *VendorEmailMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *VendorEmailMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the VendorEmail entity.
// If the VendorEmail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VendorEmailMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *VendorEmailMutation) ResetEmail() {
	m.email = nil
}

// SetIsPrimary sets the "is_primary" field.
func (m *VendorEmailMutation) SetIsPrimary(b bool) {
	m.is_primary = &b
}

// IsPrimary returns the value of the "is_primary" field in the mutation.
func (m *VendorEmailMutation) IsPrimary() (r bool, exists bool) {
	v := m.is_primary
	if v == nil {
		return
	}
	return *v, true
}

// OldIsPrimary returns the old "is_primary" field's value of the VendorEmail entity.
// If the VendorEmail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VendorEmailMutation) OldIsPrimary(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsPrimary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsPrimary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsPrimary: %w", err)
	}
	return oldValue.IsPrimary, nil
}

// ResetIsPrimary resets all changes to the "is_primary" field.
func (m *VendorEmailMutation) ResetIsPrimary() {
	m.is_primary = nil
}

// ClearVendor clears the "vendor" edge to the Vendor entity.
func (m *VendorEmailMutation) ClearVendor() {
	m.clearedvendor = true
	m.clearedFields[vendoremail.FieldVendorID] = struct{}{}
}

// VendorCleared reports if the "vendor" edge to the Vendor entity was cleared.
func (m *VendorEmailMutation) VendorCleared() bool {
	return m.clearedvendor
}

// VendorIDs returns the "vendor" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// VendorID instead. It exists only for internal usage by the builders.
func (m *VendorEmailMutation) VendorIDs() (ids []uuid.UUID) {
	if id := m.vendor; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetVendor resets all changes to the "vendor" edge.
func (m *VendorEmailMutation) ResetVendor() {
	m.vendor = nil
	m.clearedvendor = false
}

// Where appends a list predicates to the VendorEmailMutation builder.
func (m *VendorEmailMutation) Where(ps ...predicate.VendorEmail) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VendorEmailMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VendorEmailMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VendorEmail, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VendorEmailMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VendorEmailMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VendorEmail).
func (m *VendorEmailMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VendorEmailMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.vendor != nil {
		fields = append(fields, vendoremail.FieldVendorID)
	}
	if m.email != nil {
		fields = append(fields, vendoremail.FieldEmail)
	}
	if m.is_primary != nil {
		fields = append(fields, vendoremail.FieldIsPrimary)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VendorEmailMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case vendoremail.FieldVendorID:
		return m.VendorID()
	case vendoremail.FieldEmail:
		return m.Email()
	case vendoremail.FieldIsPrimary:
		return m.IsPrimary()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VendorEmailMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case vendoremail.FieldVendorID:
		return m.OldVendorID(ctx)
	case vendoremail.FieldEmail:
		return m.OldEmail(ctx)
	case vendoremail.FieldIsPrimary:
		return m.OldIsPrimary(ctx)
	}
	return nil, fmt.Errorf("unknown VendorEmail field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VendorEmailMutation) SetField(name string, value ent.Value) error {
	switch name {
	case vendoremail.FieldVendorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVendorID(v)
		return nil
	case vendoremail.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case vendoremail.FieldIsPrimary:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsPrimary(v)
		return nil
	}
	return fmt.Errorf("unknown VendorEmail field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VendorEmailMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VendorEmailMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VendorEmailMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown VendorEmail numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VendorEmailMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VendorEmailMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VendorEmailMutation) ClearField(name string) error {
	return fmt.Errorf("unknown VendorEmail nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VendorEmailMutation) ResetField(name string) error {
	switch name {
	case vendoremail.FieldVendorID:
		m.ResetVendorID()
		return nil
	case vendoremail.FieldEmail:
		m.ResetEmail()
		return nil
	case vendoremail.FieldIsPrimary:
		m.ResetIsPrimary()
		return nil
	}
	return fmt.Errorf("unknown VendorEmail field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VendorEmailMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.vendor != nil {
		edges = append(edges, vendoremail.EdgeVendor)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VendorEmailMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case vendoremail.EdgeVendor:
		if id := m.vendor; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VendorEmailMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VendorEmailMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VendorEmailMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedvendor {
		edges = append(edges, vendoremail.EdgeVendor)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VendorEmailMutation) EdgeCleared(name string) bool {
	switch name {
	case vendoremail.EdgeVendor:
		return m.clearedvendor
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VendorEmailMutation) ClearEdge(name string) error {
	switch name {
	case vendoremail.EdgeVendor:
		m.ClearVendor()
		return nil
	}
	return fmt.Errorf("unknown VendorEmail unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VendorEmailMutation) ResetEdge(name string) error {
	switch name {
	case vendoremail.EdgeVendor:
		m.ResetVendor()
		return nil
	}
	return fmt.Errorf("unknown VendorEmail edge %s", name)
}
