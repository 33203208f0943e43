// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/counselflow/intake-api/ent/booking"
	"github.com/counselflow/intake-api/ent/enrollment"
	"github.com/counselflow/intake-api/ent/interaction"
	"github.com/counselflow/intake-api/ent/lead"
	"github.com/counselflow/intake-api/ent/scheduledmessage"
	"github.com/counselflow/intake-api/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	bookingFields := schema.Booking{}.Fields()
	_ = bookingFields
	// bookingDescEmail is the schema descriptor for email field.
	bookingDescEmail := bookingFields[0].Descriptor()
	// booking.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	booking.EmailValidator = bookingDescEmail.Validators[0].(func(string) error)
	// bookingDescCreatedAt is the schema descriptor for created_at field.
	bookingDescCreatedAt := bookingFields[6].Descriptor()
	// booking.DefaultCreatedAt holds the default value on creation for the created_at field.
	booking.DefaultCreatedAt = bookingDescCreatedAt.Default.(func() time.Time)
	// bookingDescUpdatedAt is the schema descriptor for updated_at field.
	bookingDescUpdatedAt := bookingFields[7].Descriptor()
	// booking.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	booking.DefaultUpdatedAt = bookingDescUpdatedAt.Default.(func() time.Time)
	// booking.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	booking.UpdateDefaultUpdatedAt = bookingDescUpdatedAt.UpdateDefault.(func() time.Time)
	enrollmentFields := schema.Enrollment{}.Fields()
	_ = enrollmentFields
	// enrollmentDescLeadID is the schema descriptor for lead_id field.
	enrollmentDescLeadID := enrollmentFields[0].Descriptor()
	// enrollment.LeadIDValidator is a validator for the "lead_id" field. It is called by the builders before save.
	enrollment.LeadIDValidator = enrollmentDescLeadID.Validators[0].(func(int) error)
	// enrollmentDescEmail is the schema descriptor for email field.
	enrollmentDescEmail := enrollmentFields[1].Descriptor()
	// enrollment.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	enrollment.EmailValidator = enrollmentDescEmail.Validators[0].(func(string) error)
	// enrollmentDescPathwayName is the schema descriptor for pathway_name field.
	enrollmentDescPathwayName := enrollmentFields[2].Descriptor()
	// enrollment.PathwayNameValidator is a validator for the "pathway_name" field. It is called by the builders before save.
	enrollment.PathwayNameValidator = enrollmentDescPathwayName.Validators[0].(func(string) error)
	// enrollmentDescTrigger is the schema descriptor for trigger field.
	enrollmentDescTrigger := enrollmentFields[3].Descriptor()
	// enrollment.DefaultTrigger holds the default value on creation for the trigger field.
	enrollment.DefaultTrigger = enrollmentDescTrigger.Default.(string)
	// enrollmentDescCreatedAt is the schema descriptor for created_at field.
	enrollmentDescCreatedAt := enrollmentFields[6].Descriptor()
	// enrollment.DefaultCreatedAt holds the default value on creation for the created_at field.
	enrollment.DefaultCreatedAt = enrollmentDescCreatedAt.Default.(func() time.Time)
	// enrollmentDescUpdatedAt is the schema descriptor for updated_at field.
	enrollmentDescUpdatedAt := enrollmentFields[7].Descriptor()
	// enrollment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	enrollment.DefaultUpdatedAt = enrollmentDescUpdatedAt.Default.(func() time.Time)
	// enrollment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	enrollment.UpdateDefaultUpdatedAt = enrollmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	interactionFields := schema.Interaction{}.Fields()
	_ = interactionFields
	// interactionDescLeadID is the schema descriptor for lead_id field.
	interactionDescLeadID := interactionFields[0].Descriptor()
	// interaction.LeadIDValidator is a validator for the "lead_id" field. It is called by the builders before save.
	interaction.LeadIDValidator = interactionDescLeadID.Validators[0].(func(int) error)
	// interactionDescKind is the schema descriptor for kind field.
	interactionDescKind := interactionFields[1].Descriptor()
	// interaction.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	interaction.KindValidator = interactionDescKind.Validators[0].(func(string) error)
	// interactionDescAt is the schema descriptor for at field.
	interactionDescAt := interactionFields[3].Descriptor()
	// interaction.DefaultAt holds the default value on creation for the at field.
	interaction.DefaultAt = interactionDescAt.Default.(func() time.Time)
	leadFields := schema.Lead{}.Fields()
	_ = leadFields
	// leadDescEmail is the schema descriptor for email field.
	leadDescEmail := leadFields[1].Descriptor()
	// lead.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	lead.EmailValidator = leadDescEmail.Validators[0].(func(string) error)
	// leadDescFirstName is the schema descriptor for first_name field.
	leadDescFirstName := leadFields[2].Descriptor()
	// lead.DefaultFirstName holds the default value on creation for the first_name field.
	lead.DefaultFirstName = leadDescFirstName.Default.(string)
	// leadDescLastName is the schema descriptor for last_name field.
	leadDescLastName := leadFields[3].Descriptor()
	// lead.DefaultLastName holds the default value on creation for the last_name field.
	lead.DefaultLastName = leadDescLastName.Default.(string)
	// leadDescScore is the schema descriptor for score field.
	leadDescScore := leadFields[7].Descriptor()
	// lead.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	lead.ScoreValidator = func() func(int) error {
		validators := leadDescScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(score int) error {
			for _, fn := range fns {
				if err := fn(score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// leadDescProfile is the schema descriptor for profile field.
	leadDescProfile := leadFields[9].Descriptor()
	// lead.DefaultProfile holds the default value on creation for the profile field.
	lead.DefaultProfile = leadDescProfile.Default.(string)
	// leadDescCreatedAt is the schema descriptor for created_at field.
	leadDescCreatedAt := leadFields[11].Descriptor()
	// lead.DefaultCreatedAt holds the default value on creation for the created_at field.
	lead.DefaultCreatedAt = leadDescCreatedAt.Default.(func() time.Time)
	// leadDescUpdatedAt is the schema descriptor for updated_at field.
	leadDescUpdatedAt := leadFields[12].Descriptor()
	// lead.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	lead.DefaultUpdatedAt = leadDescUpdatedAt.Default.(func() time.Time)
	// lead.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	lead.UpdateDefaultUpdatedAt = leadDescUpdatedAt.UpdateDefault.(func() time.Time)
	scheduledmessageFields := schema.ScheduledMessage{}.Fields()
	_ = scheduledmessageFields
	// scheduledmessageDescEmail is the schema descriptor for email field.
	scheduledmessageDescEmail := scheduledmessageFields[1].Descriptor()
	// scheduledmessage.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	scheduledmessage.EmailValidator = scheduledmessageDescEmail.Validators[0].(func(string) error)
	// scheduledmessageDescSubjectTemplate is the schema descriptor for subject_template field.
	scheduledmessageDescSubjectTemplate := scheduledmessageFields[3].Descriptor()
	// scheduledmessage.SubjectTemplateValidator is a validator for the "subject_template" field. It is called by the builders before save.
	scheduledmessage.SubjectTemplateValidator = scheduledmessageDescSubjectTemplate.Validators[0].(func(string) error)
	// scheduledmessageDescBodyTemplateID is the schema descriptor for body_template_id field.
	scheduledmessageDescBodyTemplateID := scheduledmessageFields[4].Descriptor()
	// scheduledmessage.BodyTemplateIDValidator is a validator for the "body_template_id" field. It is called by the builders before save.
	scheduledmessage.BodyTemplateIDValidator = scheduledmessageDescBodyTemplateID.Validators[0].(func(string) error)
	// scheduledmessageDescAttempts is the schema descriptor for attempts field.
	scheduledmessageDescAttempts := scheduledmessageFields[7].Descriptor()
	// scheduledmessage.DefaultAttempts holds the default value on creation for the attempts field.
	scheduledmessage.DefaultAttempts = scheduledmessageDescAttempts.Default.(int)
	// scheduledmessage.AttemptsValidator is a validator for the "attempts" field. It is called by the builders before save.
	scheduledmessage.AttemptsValidator = scheduledmessageDescAttempts.Validators[0].(func(int) error)
	// scheduledmessageDescCreatedAt is the schema descriptor for created_at field.
	scheduledmessageDescCreatedAt := scheduledmessageFields[10].Descriptor()
	// scheduledmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	scheduledmessage.DefaultCreatedAt = scheduledmessageDescCreatedAt.Default.(func() time.Time)
	// scheduledmessageDescUpdatedAt is the schema descriptor for updated_at field.
	scheduledmessageDescUpdatedAt := scheduledmessageFields[11].Descriptor()
	// scheduledmessage.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	scheduledmessage.DefaultUpdatedAt = scheduledmessageDescUpdatedAt.Default.(func() time.Time)
	// scheduledmessage.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	scheduledmessage.UpdateDefaultUpdatedAt = scheduledmessageDescUpdatedAt.UpdateDefault.(func() time.Time)
}
