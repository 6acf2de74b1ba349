// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/invoicerd/invoicerd/db/ent/schema"
	"github.com/invoicerd/invoicerd/gen/ent/document"
	"github.com/invoicerd/invoicerd/gen/ent/extractionrule"
	"github.com/invoicerd/invoicerd/gen/ent/vendor"
	"github.com/invoicerd/invoicerd/gen/ent/vendoremail"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescMessageID is the schema descriptor for message_id field.
	documentDescMessageID := documentFields[2].Descriptor()
	// document.MessageIDValidator is a validator for the "message_id" field. It is called by the builders before save.
	document.MessageIDValidator = documentDescMessageID.Validators[0].(func(string) error)
	// documentDescStatus is the schema descriptor for status field.
	documentDescStatus := documentFields[3].Descriptor()
	// document.DefaultStatus holds the default value on creation for the status field.
	document.DefaultStatus = documentDescStatus.Default.(string)
	// document.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	document.StatusValidator = documentDescStatus.Validators[0].(func(string) error)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[7].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescUpdatedAt is the schema descriptor for updated_at field.
	documentDescUpdatedAt := documentFields[8].Descriptor()
	// document.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	document.DefaultUpdatedAt = documentDescUpdatedAt.Default.(func() time.Time)
	// document.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	document.UpdateDefaultUpdatedAt = documentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	extractionruleFields := schema.ExtractionRule{}.Fields()
	_ = extractionruleFields
	// extractionruleDescFieldName is the schema descriptor for field_name field.
	extractionruleDescFieldName := extractionruleFields[2].Descriptor()
	// extractionrule.FieldNameValidator is a validator for the "field_name" field. It is called by the builders before save.
	extractionrule.FieldNameValidator = extractionruleDescFieldName.Validators[0].(func(string) error)
	// extractionruleDescDataType is the schema descriptor for data_type field.
	extractionruleDescDataType := extractionruleFields[3].Descriptor()
	// extractionrule.DataTypeValidator is a validator for the "data_type" field. It is called by the builders before save.
	extractionrule.DataTypeValidator = func() func(string) error {
		validators := extractionruleDescDataType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(data_type string) error {
			for _, fn := range fns {
				if err := fn(data_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractionruleDescLocationType is the schema descriptor for location_type field.
	extractionruleDescLocationType := extractionruleFields[4].Descriptor()
	// extractionrule.LocationTypeValidator is a validator for the "location_type" field. It is called by the builders before save.
	extractionrule.LocationTypeValidator = func() func(string) error {
		validators := extractionruleDescLocationType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(location_type string) error {
			for _, fn := range fns {
				if err := fn(location_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractionruleDescRequired is the schema descriptor for required field.
	extractionruleDescRequired := extractionruleFields[9].Descriptor()
	// extractionrule.DefaultRequired holds the default value on creation for the required field.
	extractionrule.DefaultRequired = extractionruleDescRequired.Default.(bool)
	// extractionruleDescCreatedAt is the schema descriptor for created_at field.
	extractionruleDescCreatedAt := extractionruleFields[15].Descriptor()
	// extractionrule.DefaultCreatedAt holds the default value on creation for the created_at field.
	extractionrule.DefaultCreatedAt = extractionruleDescCreatedAt.Default.(func() time.Time)
	// extractionruleDescUpdatedAt is the schema descriptor for updated_at field.
	extractionruleDescUpdatedAt := extractionruleFields[16].Descriptor()
	// extractionrule.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	extractionrule.DefaultUpdatedAt = extractionruleDescUpdatedAt.Default.(func() time.Time)
	// extractionrule.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	extractionrule.UpdateDefaultUpdatedAt = extractionruleDescUpdatedAt.UpdateDefault.(func() time.Time)
	// extractionruleDescID is the schema descriptor for id field.
	extractionruleDescID := extractionruleFields[0].Descriptor()
	// extractionrule.DefaultID holds the default value on creation for the id field.
	extractionrule.DefaultID = extractionruleDescID.Default.(func() uuid.UUID)
	vendorFields := schema.Vendor{}.Fields()
	_ = vendorFields
	// vendorDescName is the schema descriptor for name field.
	vendorDescName := vendorFields[1].Descriptor()
	// vendor.NameValidator is a validator for the "name" field. It is called by the builders before save.
	vendor.NameValidator = vendorDescName.Validators[0].(func(string) error)
	// vendorDescCreatedAt is the schema descriptor for created_at field.
	vendorDescCreatedAt := vendorFields[3].Descriptor()
	// vendor.DefaultCreatedAt holds the default value on creation for the created_at field.
	vendor.DefaultCreatedAt = vendorDescCreatedAt.Default.(func() time.Time)
	// vendorDescUpdatedAt is the schema descriptor for updated_at field.
	vendorDescUpdatedAt := vendorFields[4].Descriptor()
	// vendor.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	vendor.DefaultUpdatedAt = vendorDescUpdatedAt.Default.(func() time.Time)
	// vendor.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	vendor.UpdateDefaultUpdatedAt = vendorDescUpdatedAt.UpdateDefault.(func() time.Time)
	// vendorDescID is the schema descriptor for id field.
	vendorDescID := vendorFields[0].Descriptor()
	// vendor.DefaultID holds the default value on creation for the id field.
	vendor.DefaultID = vendorDescID.Default.(func() uuid.UUID)
	vendoremailFields := schema.VendorEmail{}.Fields()
	_ = vendoremailFields
	// vendoremailDescEmail is the schema descriptor for email field.
	vendoremailDescEmail := vendoremailFields[2].Descriptor()
	// vendoremail.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	vendoremail.EmailValidator = vendoremailDescEmail.Validators[0].(func(string) error)
	// vendoremailDescIsPrimary is the schema descriptor for is_primary field.
	vendoremailDescIsPrimary := vendoremailFields[3].Descriptor()
	// vendoremail.DefaultIsPrimary holds the default value on creation for the is_primary field.
	vendoremail.DefaultIsPrimary = vendoremailDescIsPrimary.Default.(bool)
	// vendoremailDescID is the schema descriptor for id field.
	vendoremailDescID := vendoremailFields[0].Descriptor()
	// vendoremail.DefaultID holds the default value on creation for the id field.
	vendoremail.DefaultID = vendoremailDescID.Default.(func() uuid.UUID)
}
