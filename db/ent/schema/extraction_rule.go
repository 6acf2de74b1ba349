package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/invoicerd/invoicerd/constants"
	"github.com/invoicerd/invoicerd/db/ent/schema/utils"

	"github.com/google/uuid"
)

type ExtractionRule struct{ ent.Schema }

func (ExtractionRule) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extraction_rules"},
	}
}

func (ExtractionRule) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("vendor_id", uuid.UUID{}),
		field.String("field_name").NotEmpty(),
		field.String("data_type").NotEmpty().
			Validate(utils.EnumValidator(constants.DataTypes...)),
		field.String("location_type").NotEmpty().
			Validate(utils.EnumValidator(constants.LocationTypes...)),
		// Location parameters, one meaningful per location_type.
		field.JSON("coordinates", json.RawMessage{}).
			Optional(),
		field.String("keyword").Optional().Nillable(),
		field.String("regex_pattern").Optional().Nillable(),
		field.JSON("table_config", json.RawMessage{}).
			Optional(),
		field.Bool("required").Default(true),
		field.JSON("pre_processing", json.RawMessage{}).
			Optional(),
		field.JSON("post_processing", json.RawMessage{}).
			Optional(),
		field.JSON("validation", json.RawMessage{}).
			Optional(),
		// Key of a registered custom column post-processor.
		field.String("post_processor").Optional().Nillable(),
		field.String("description").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ExtractionRule) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("vendor", Vendor.Type).
			Ref("rules").
			Field("vendor_id").
			Required().
			Unique(),
	}
}

func (ExtractionRule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("vendor_id", "field_name").Unique(),
	}
}
