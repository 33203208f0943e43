// Code generated by ent, DO NOT EDIT.

package scheduledmessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/counselflow/intake-api/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldLTE(FieldID, id))
}

// EnrollmentID applies equality check predicate on the "enrollment_id" field. It's identical to EnrollmentIDEQ.
func EnrollmentID(v int) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldEnrollmentID, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldEmail, v))
}

// FirstName applies equality check predicate on the "first_name" field. It's identical to FirstNameEQ.
func FirstName(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldFirstName, v))
}

// SubjectTemplate applies equality check predicate on the "subject_template" field. It's identical to SubjectTemplateEQ.
func SubjectTemplate(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldSubjectTemplate, v))
}

// BodyTemplateID applies equality check predicate on the "body_template_id" field. It's identical to BodyTemplateIDEQ.
func BodyTemplateID(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldBodyTemplateID, v))
}

// SendAt applies equality check predicate on the "send_at" field. It's identical to SendAtEQ.
func SendAt(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldSendAt, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldAttempts, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldLastError, v))
}

// SentAt applies equality check predicate on the "sent_at" field. It's identical to SentAtEQ.
func SentAt(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldSentAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldUpdatedAt, v))
}

// EnrollmentIDEQ applies the EQ predicate on the "enrollment_id" field.
func EnrollmentIDEQ(v int) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldEnrollmentID, v))
}

// EnrollmentIDNEQ applies the NEQ predicate on the "enrollment_id" field.
func EnrollmentIDNEQ(v int) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNEQ(FieldEnrollmentID, v))
}

// EnrollmentIDIn applies the In predicate on the "enrollment_id" field.
func EnrollmentIDIn(vs ...int) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldIn(FieldEnrollmentID, vs...))
}

// EnrollmentIDNotIn applies the NotIn predicate on the "enrollment_id" field.
func EnrollmentIDNotIn(vs ...int) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNotIn(FieldEnrollmentID, vs...))
}

// EnrollmentIDIsNil applies the IsNil predicate on the "enrollment_id" field.
func EnrollmentIDIsNil() predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldIsNull(FieldEnrollmentID))
}

// EnrollmentIDNotNil applies the NotNil predicate on the "enrollment_id" field.
func EnrollmentIDNotNil() predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNotNull(FieldEnrollmentID))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldContainsFold(FieldEmail, v))
}

// FirstNameEQ applies the EQ predicate on the "first_name" field.
func FirstNameEQ(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldFirstName, v))
}

// FirstNameNEQ applies the NEQ predicate on the "first_name" field.
func FirstNameNEQ(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNEQ(FieldFirstName, v))
}

// FirstNameIn applies the In predicate on the "first_name" field.
func FirstNameIn(vs ...string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldIn(FieldFirstName, vs...))
}

// FirstNameNotIn applies the NotIn predicate on the "first_name" field.
func FirstNameNotIn(vs ...string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNotIn(FieldFirstName, vs...))
}

// FirstNameGT applies the GT predicate on the "first_name" field.
func FirstNameGT(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldGT(FieldFirstName, v))
}

// FirstNameGTE applies the GTE predicate on the "first_name" field.
func FirstNameGTE(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldGTE(FieldFirstName, v))
}

// FirstNameLT applies the LT predicate on the "first_name" field.
func FirstNameLT(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldLT(FieldFirstName, v))
}

// FirstNameLTE applies the LTE predicate on the "first_name" field.
func FirstNameLTE(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldLTE(FieldFirstName, v))
}

// FirstNameContains applies the Contains predicate on the "first_name" field.
func FirstNameContains(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldContains(FieldFirstName, v))
}

// FirstNameHasPrefix applies the HasPrefix predicate on the "first_name" field.
func FirstNameHasPrefix(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldHasPrefix(FieldFirstName, v))
}

// FirstNameHasSuffix applies the HasSuffix predicate on the "first_name" field.
func FirstNameHasSuffix(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldHasSuffix(FieldFirstName, v))
}

// FirstNameIsNil applies the IsNil predicate on the "first_name" field.
func FirstNameIsNil() predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldIsNull(FieldFirstName))
}

// FirstNameNotNil applies the NotNil predicate on the "first_name" field.
func FirstNameNotNil() predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNotNull(FieldFirstName))
}

// FirstNameEqualFold applies the EqualFold predicate on the "first_name" field.
func FirstNameEqualFold(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEqualFold(FieldFirstName, v))
}

// FirstNameContainsFold applies the ContainsFold predicate on the "first_name" field.
func FirstNameContainsFold(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldContainsFold(FieldFirstName, v))
}

// SubjectTemplateEQ applies the EQ predicate on the "subject_template" field.
func SubjectTemplateEQ(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldSubjectTemplate, v))
}

// SubjectTemplateNEQ applies the NEQ predicate on the "subject_template" field.
func SubjectTemplateNEQ(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNEQ(FieldSubjectTemplate, v))
}

// SubjectTemplateIn applies the In predicate on the "subject_template" field.
func SubjectTemplateIn(vs ...string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldIn(FieldSubjectTemplate, vs...))
}

// SubjectTemplateNotIn applies the NotIn predicate on the "subject_template" field.
func SubjectTemplateNotIn(vs ...string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNotIn(FieldSubjectTemplate, vs...))
}

// SubjectTemplateGT applies the GT predicate on the "subject_template" field.
func SubjectTemplateGT(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldGT(FieldSubjectTemplate, v))
}

// SubjectTemplateGTE applies the GTE predicate on the "subject_template" field.
func SubjectTemplateGTE(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldGTE(FieldSubjectTemplate, v))
}

// SubjectTemplateLT applies the LT predicate on the "subject_template" field.
func SubjectTemplateLT(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldLT(FieldSubjectTemplate, v))
}

// SubjectTemplateLTE applies the LTE predicate on the "subject_template" field.
func SubjectTemplateLTE(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldLTE(FieldSubjectTemplate, v))
}

// SubjectTemplateContains applies the Contains predicate on the "subject_template" field.
func SubjectTemplateContains(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldContains(FieldSubjectTemplate, v))
}

// SubjectTemplateHasPrefix applies the HasPrefix predicate on the "subject_template" field.
func SubjectTemplateHasPrefix(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldHasPrefix(FieldSubjectTemplate, v))
}

// SubjectTemplateHasSuffix applies the HasSuffix predicate on the "subject_template" field.
func SubjectTemplateHasSuffix(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldHasSuffix(FieldSubjectTemplate, v))
}

// SubjectTemplateEqualFold applies the EqualFold predicate on the "subject_template" field.
func SubjectTemplateEqualFold(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEqualFold(FieldSubjectTemplate, v))
}

// SubjectTemplateContainsFold applies the ContainsFold predicate on the "subject_template" field.
func SubjectTemplateContainsFold(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldContainsFold(FieldSubjectTemplate, v))
}

// BodyTemplateIDEQ applies the EQ predicate on the "body_template_id" field.
func BodyTemplateIDEQ(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldBodyTemplateID, v))
}

// BodyTemplateIDNEQ applies the NEQ predicate on the "body_template_id" field.
func BodyTemplateIDNEQ(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNEQ(FieldBodyTemplateID, v))
}

// BodyTemplateIDIn applies the In predicate on the "body_template_id" field.
func BodyTemplateIDIn(vs ...string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldIn(FieldBodyTemplateID, vs...))
}

// BodyTemplateIDNotIn applies the NotIn predicate on the "body_template_id" field.
func BodyTemplateIDNotIn(vs ...string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNotIn(FieldBodyTemplateID, vs...))
}

// BodyTemplateIDGT applies the GT predicate on the "body_template_id" field.
func BodyTemplateIDGT(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldGT(FieldBodyTemplateID, v))
}

// BodyTemplateIDGTE applies the GTE predicate on the "body_template_id" field.
func BodyTemplateIDGTE(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldGTE(FieldBodyTemplateID, v))
}

// BodyTemplateIDLT applies the LT predicate on the "body_template_id" field.
func BodyTemplateIDLT(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldLT(FieldBodyTemplateID, v))
}

// BodyTemplateIDLTE applies the LTE predicate on the "body_template_id" field.
func BodyTemplateIDLTE(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldLTE(FieldBodyTemplateID, v))
}

// BodyTemplateIDContains applies the Contains predicate on the "body_template_id" field.
func BodyTemplateIDContains(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldContains(FieldBodyTemplateID, v))
}

// BodyTemplateIDHasPrefix applies the HasPrefix predicate on the "body_template_id" field.
func BodyTemplateIDHasPrefix(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldHasPrefix(FieldBodyTemplateID, v))
}

// BodyTemplateIDHasSuffix applies the HasSuffix predicate on the "body_template_id" field.
func BodyTemplateIDHasSuffix(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldHasSuffix(FieldBodyTemplateID, v))
}

// BodyTemplateIDEqualFold applies the EqualFold predicate on the "body_template_id" field.
func BodyTemplateIDEqualFold(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEqualFold(FieldBodyTemplateID, v))
}

// BodyTemplateIDContainsFold applies the ContainsFold predicate on the "body_template_id" field.
func BodyTemplateIDContainsFold(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldContainsFold(FieldBodyTemplateID, v))
}

// SendAtEQ applies the EQ predicate on the "send_at" field.
func SendAtEQ(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldSendAt, v))
}

// SendAtNEQ applies the NEQ predicate on the "send_at" field.
func SendAtNEQ(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNEQ(FieldSendAt, v))
}

// SendAtIn applies the In predicate on the "send_at" field.
func SendAtIn(vs ...time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldIn(FieldSendAt, vs...))
}

// SendAtNotIn applies the NotIn predicate on the "send_at" field.
func SendAtNotIn(vs ...time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNotIn(FieldSendAt, vs...))
}

// SendAtGT applies the GT predicate on the "send_at" field.
func SendAtGT(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldGT(FieldSendAt, v))
}

// SendAtGTE applies the GTE predicate on the "send_at" field.
func SendAtGTE(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldGTE(FieldSendAt, v))
}

// SendAtLT applies the LT predicate on the "send_at" field.
func SendAtLT(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldLT(FieldSendAt, v))
}

// SendAtLTE applies the LTE predicate on the "send_at" field.
func SendAtLTE(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldLTE(FieldSendAt, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNotIn(FieldStatus, vs...))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldLTE(FieldAttempts, v))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldContainsFold(FieldLastError, v))
}

// SentAtEQ applies the EQ predicate on the "sent_at" field.
func SentAtEQ(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldSentAt, v))
}

// SentAtNEQ applies the NEQ predicate on the "sent_at" field.
func SentAtNEQ(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNEQ(FieldSentAt, v))
}

// SentAtIn applies the In predicate on the "sent_at" field.
func SentAtIn(vs ...time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldIn(FieldSentAt, vs...))
}

// SentAtNotIn applies the NotIn predicate on the "sent_at" field.
func SentAtNotIn(vs ...time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNotIn(FieldSentAt, vs...))
}

// SentAtGT applies the GT predicate on the "sent_at" field.
func SentAtGT(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldGT(FieldSentAt, v))
}

// SentAtGTE applies the GTE predicate on the "sent_at" field.
func SentAtGTE(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldGTE(FieldSentAt, v))
}

// SentAtLT applies the LT predicate on the "sent_at" field.
func SentAtLT(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldLT(FieldSentAt, v))
}

// SentAtLTE applies the LTE predicate on the "sent_at" field.
func SentAtLTE(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldLTE(FieldSentAt, v))
}

// SentAtIsNil applies the IsNil predicate on the "sent_at" field.
func SentAtIsNil() predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldIsNull(FieldSentAt))
}

// SentAtNotNil applies the NotNil predicate on the "sent_at" field.
func SentAtNotNil() predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNotNull(FieldSentAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasEnrollment applies the HasEdge predicate on the "enrollment" edge.
func HasEnrollment() predicate.ScheduledMessage {
	return predicate.ScheduledMessage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EnrollmentTable, EnrollmentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEnrollmentWith applies the HasEdge predicate on the "enrollment" edge with a given conditions (other predicates).
func HasEnrollmentWith(preds ...predicate.Enrollment) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(func(s *sql.Selector) {
		step := newEnrollmentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScheduledMessage) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScheduledMessage) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScheduledMessage) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.NotPredicates(p))
}
