package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type VendorEmail struct {
	ent.Schema
}

func (VendorEmail) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "vendor_emails"},
	}
}

func (VendorEmail) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("vendor_id", uuid.UUID{}),
		field.String("email").NotEmpty().Unique(),
		field.Bool("is_primary").Default(false),
	}
}

func (VendorEmail) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("vendor", Vendor.Type).
			Ref("emails").
			Field("vendor_id").
			Required().
			Unique(),
	}
}

func (VendorEmail) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("vendor_id", "email").Unique(),
	}
}
