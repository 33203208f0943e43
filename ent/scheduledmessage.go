// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/counselflow/intake-api/ent/enrollment"
	"github.com/counselflow/intake-api/ent/scheduledmessage"
)

// ScheduledMessage is the model entity for the ScheduledMessage schema.
type ScheduledMessage struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Owning enrollment; null for orphan one-off messages
	EnrollmentID *int `json:"enrollment_id,omitempty"`
	// Recipient email
	Email string `json:"email,omitempty"`
	// Recipient first name for template rendering
	FirstName string `json:"first_name,omitempty"`
	// Subject line with substitution tokens
	SubjectTemplate string `json:"subject_template,omitempty"`
	// Identifier resolved by the template renderer
	BodyTemplateID string `json:"body_template_id,omitempty"`
	// Absolute instant the message becomes due
	SendAt time.Time `json:"send_at,omitempty"`
	// Delivery status
	Status scheduledmessage.Status `json:"status,omitempty"`
	// Delivery attempts made so far
	Attempts int `json:"attempts,omitempty"`
	// Last delivery error if any
	LastError string `json:"last_error,omitempty"`
	// When the message was actually sent
	SentAt *time.Time `json:"sent_at,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ScheduledMessageQuery when eager-loading is set.
	Edges        ScheduledMessageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ScheduledMessageEdges holds the relations/edges for other nodes in the graph.
type ScheduledMessageEdges struct {
	// Enrollment holds the value of the enrollment edge.
	Enrollment *Enrollment `json:"enrollment,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// EnrollmentOrErr returns the Enrollment value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ScheduledMessageEdges) EnrollmentOrErr() (*Enrollment, error) {
	if e.Enrollment != nil {
		return e.Enrollment, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: enrollment.Label}
	}
	return nil, &NotLoadedError{edge: "enrollment"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScheduledMessage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scheduledmessage.FieldID, scheduledmessage.FieldEnrollmentID, scheduledmessage.FieldAttempts:
			values[i] = new(sql.NullInt64)
		case scheduledmessage.FieldEmail, scheduledmessage.FieldFirstName, scheduledmessage.FieldSubjectTemplate, scheduledmessage.FieldBodyTemplateID, scheduledmessage.FieldStatus, scheduledmessage.FieldLastError:
			values[i] = new(sql.NullString)
		case scheduledmessage.FieldSendAt, scheduledmessage.FieldSentAt, scheduledmessage.FieldCreatedAt, scheduledmessage.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScheduledMessage fields.
func (_m *ScheduledMessage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scheduledmessage.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case scheduledmessage.FieldEnrollmentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field enrollment_id", values[i])
			} else if value.Valid {
				_m.EnrollmentID = new(int)
				*_m.EnrollmentID = int(value.Int64)
			}
		case scheduledmessage.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case scheduledmessage.FieldFirstName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field first_name", values[i])
			} else if value.Valid {
				_m.FirstName = value.String
			}
		case scheduledmessage.FieldSubjectTemplate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject_template", values[i])
			} else if value.Valid {
				_m.SubjectTemplate = value.String
			}
		case scheduledmessage.FieldBodyTemplateID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field body_template_id", values[i])
			} else if value.Valid {
				_m.BodyTemplateID = value.String
			}
		case scheduledmessage.FieldSendAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field send_at", values[i])
			} else if value.Valid {
				_m.SendAt = value.Time
			}
		case scheduledmessage.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = scheduledmessage.Status(value.String)
			}
		case scheduledmessage.FieldAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempts", values[i])
			} else if value.Valid {
				_m.Attempts = int(value.Int64)
			}
		case scheduledmessage.FieldLastError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_error", values[i])
			} else if value.Valid {
				_m.LastError = value.String
			}
		case scheduledmessage.FieldSentAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field sent_at", values[i])
			} else if value.Valid {
				_m.SentAt = new(time.Time)
				*_m.SentAt = value.Time
			}
		case scheduledmessage.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case scheduledmessage.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ScheduledMessage.
// This includes values selected through modifiers, order, etc.
func (_m *ScheduledMessage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEnrollment queries the "enrollment" edge of the ScheduledMessage entity.
func (_m *ScheduledMessage) QueryEnrollment() *EnrollmentQuery {
	return NewScheduledMessageClient(_m.config).QueryEnrollment(_m)
}

// Update returns a builder for updating this ScheduledMessage.
// Note that you need to call ScheduledMessage.Unwrap() before calling this method if this ScheduledMessage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScheduledMessage) Update() *ScheduledMessageUpdateOne {
	return NewScheduledMessageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScheduledMessage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScheduledMessage) Unwrap() *ScheduledMessage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScheduledMessage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScheduledMessage) String() string {
	var builder strings.Builder
	builder.WriteString("ScheduledMessage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.EnrollmentID; v != nil {
		builder.WriteString("enrollment_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("first_name=")
	builder.WriteString(_m.FirstName)
	builder.WriteString(", ")
	builder.WriteString("subject_template=")
	builder.WriteString(_m.SubjectTemplate)
	builder.WriteString(", ")
	builder.WriteString("body_template_id=")
	builder.WriteString(_m.BodyTemplateID)
	builder.WriteString(", ")
	builder.WriteString("send_at=")
	builder.WriteString(_m.SendAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempts))
	builder.WriteString(", ")
	builder.WriteString("last_error=")
	builder.WriteString(_m.LastError)
	builder.WriteString(", ")
	if v := _m.SentAt; v != nil {
		builder.WriteString("sent_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ScheduledMessages is a parsable slice of ScheduledMessage.
type ScheduledMessages []*ScheduledMessage
