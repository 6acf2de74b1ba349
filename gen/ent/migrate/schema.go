// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
		{Name: "source_path", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "vendor_id", Type: field.TypeUUID, Nullable: true},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "documents_vendors_documents",
				Columns:    []*schema.Column{DocumentsColumns[8]},
				RefColumns: []*schema.Column{VendorsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "document_status_processed_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[2], DocumentsColumns[3]},
			},
			{
				Name:    "document_vendor_id",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[8]},
			},
		},
	}
	// ExtractionRulesColumns holds the columns for the "extraction_rules" table.
	ExtractionRulesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "field_name", Type: field.TypeString},
		{Name: "data_type", Type: field.TypeString},
		{Name: "location_type", Type: field.TypeString},
		{Name: "coordinates", Type: field.TypeJSON, Nullable: true},
		{Name: "keyword", Type: field.TypeString, Nullable: true},
		{Name: "regex_pattern", Type: field.TypeString, Nullable: true},
		{Name: "table_config", Type: field.TypeJSON, Nullable: true},
		{Name: "required", Type: field.TypeBool, Default: true},
		{Name: "pre_processing", Type: field.TypeJSON, Nullable: true},
		{Name: "post_processing", Type: field.TypeJSON, Nullable: true},
		{Name: "validation", Type: field.TypeJSON, Nullable: true},
		{Name: "post_processor", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "vendor_id", Type: field.TypeUUID},
	}
	// ExtractionRulesTable holds the schema information for the "extraction_rules" table.
	ExtractionRulesTable = &schema.Table{
		Name:       "extraction_rules",
		Columns:    ExtractionRulesColumns,
		PrimaryKey: []*schema.Column{ExtractionRulesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extraction_rules_vendors_rules",
				Columns:    []*schema.Column{ExtractionRulesColumns[16]},
				RefColumns: []*schema.Column{VendorsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractionrule_vendor_id_field_name",
				Unique:  true,
				Columns: []*schema.Column{ExtractionRulesColumns[16], ExtractionRulesColumns[1]},
			},
		},
	}
	// VendorsColumns holds the columns for the "vendors" table.
	VendorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "spreadsheet_column_mapping", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// VendorsTable holds the schema information for the "vendors" table.
	VendorsTable = &schema.Table{
		Name:       "vendors",
		Columns:    VendorsColumns,
		PrimaryKey: []*schema.Column{VendorsColumns[0]},
	}
	// VendorEmailsColumns holds the columns for the "vendor_emails" table.
	VendorEmailsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "is_primary", Type: field.TypeBool, Default: false},
		{Name: "vendor_id", Type: field.TypeUUID},
	}
	// VendorEmailsTable holds the schema information for the "vendor_emails" table.
	VendorEmailsTable = &schema.Table{
		Name:       "vendor_emails",
		Columns:    VendorEmailsColumns,
		PrimaryKey: []*schema.Column{VendorEmailsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "vendor_emails_vendors_emails",
				Columns:    []*schema.Column{VendorEmailsColumns[3]},
				RefColumns: []*schema.Column{VendorsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "vendoremail_vendor_id_email",
				Unique:  true,
				Columns: []*schema.Column{VendorEmailsColumns[3], VendorEmailsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentsTable,
		ExtractionRulesTable,
		VendorsTable,
		VendorEmailsTable,
	}
)

func init() {
	DocumentsTable.ForeignKeys[0].RefTable = VendorsTable
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	ExtractionRulesTable.ForeignKeys[0].RefTable = VendorsTable
	ExtractionRulesTable.Annotation = &entsql.Annotation{
		Table: "extraction_rules",
	}
	VendorsTable.Annotation = &entsql.Annotation{
		Table: "vendors",
	}
	VendorEmailsTable.ForeignKeys[0].RefTable = VendorsTable
	VendorEmailsTable.Annotation = &entsql.Annotation{
		Table: "vendor_emails",
	}
}
