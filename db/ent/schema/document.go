package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/invoicerd/invoicerd/constants"
	"github.com/invoicerd/invoicerd/db/ent/schema/utils"

	"github.com/google/uuid"
)

// Document tracks one processed email/attachment so failures are diagnosable
// without re-running extraction.
type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("vendor_id", uuid.UUID{}).Optional().Nillable(),
		field.String("message_id").NotEmpty().Unique(),
		field.String("status").Default(string(constants.DocumentStatusPending)).
			Validate(utils.EnumValidator(constants.DocumentStatuses...)),
		field.Time("processed_at").Optional().Nillable(),
		// Extracted record on success, {"error": "..."} on failure.
		field.JSON("data", json.RawMessage{}).
			Optional(),
		field.String("source_path").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("vendor", Vendor.Type).
			Ref("documents").
			Field("vendor_id").
			Unique(),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "processed_at"),
		index.Fields("vendor_id"),
	}
}
