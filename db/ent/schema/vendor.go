package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type Vendor struct {
	ent.Schema
}

func (Vendor) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "vendors"},
	}
}

func (Vendor) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("name").NotEmpty().Unique(),
		// Column mapping for the export spreadsheet, e.g.
		// {"invoice_number": "A", "date": "B", "total_amount": "C"}.
		field.JSON("spreadsheet_column_mapping", json.RawMessage{}).
			Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Vendor) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE vendor -> MANY rules / emails / documents
		edge.To("rules", ExtractionRule.Type),
		edge.To("emails", VendorEmail.Type),
		edge.To("documents", Document.Type),
	}
}
