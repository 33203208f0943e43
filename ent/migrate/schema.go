// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BookingsColumns holds the columns for the "bookings" table.
	BookingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"general", "estate", "business", "brand", "counsel", "vip"}, Default: "general"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"scheduled", "completed", "cancelled"}, Default: "scheduled"},
		{Name: "scheduled_at", Type: field.TypeTime, Nullable: true},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"webhook", "manual"}, Default: "webhook"},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// BookingsTable holds the schema information for the "bookings" table.
	BookingsTable = &schema.Table{
		Name:       "bookings",
		Columns:    BookingsColumns,
		PrimaryKey: []*schema.Column{BookingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "idx_booking_email_status",
				Unique:  false,
				Columns: []*schema.Column{BookingsColumns[1], BookingsColumns[3]},
			},
			{
				Name:    "idx_booking_email_time",
				Unique:  false,
				Columns: []*schema.Column{BookingsColumns[1], BookingsColumns[4]},
			},
		},
	}
	// EnrollmentsColumns holds the columns for the "enrollments" table.
	EnrollmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString},
		{Name: "pathway_name", Type: field.TypeString},
		{Name: "trigger", Type: field.TypeString, Default: "intake"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "paused", "completed", "cancelled"}, Default: "active"},
		{Name: "pause_reason", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "lead_id", Type: field.TypeInt},
	}
	// EnrollmentsTable holds the schema information for the "enrollments" table.
	EnrollmentsTable = &schema.Table{
		Name:       "enrollments",
		Columns:    EnrollmentsColumns,
		PrimaryKey: []*schema.Column{EnrollmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "enrollments_leads_enrollments",
				Columns:    []*schema.Column{EnrollmentsColumns[8]},
				RefColumns: []*schema.Column{LeadsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "idx_enrollment_email_pathway_status",
				Unique:  false,
				Columns: []*schema.Column{EnrollmentsColumns[1], EnrollmentsColumns[2], EnrollmentsColumns[4]},
			},
			{
				Name:    "idx_enrollment_lead_status",
				Unique:  false,
				Columns: []*schema.Column{EnrollmentsColumns[8], EnrollmentsColumns[4]},
			},
			{
				Name:    "idx_enrollment_time",
				Unique:  false,
				Columns: []*schema.Column{EnrollmentsColumns[6]},
			},
		},
	}
	// InteractionsColumns holds the columns for the "interactions" table.
	InteractionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "kind", Type: field.TypeString},
		{Name: "detail", Type: field.TypeJSON, Nullable: true},
		{Name: "at", Type: field.TypeTime},
		{Name: "lead_id", Type: field.TypeInt},
	}
	// InteractionsTable holds the schema information for the "interactions" table.
	InteractionsTable = &schema.Table{
		Name:       "interactions",
		Columns:    InteractionsColumns,
		PrimaryKey: []*schema.Column{InteractionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "interactions_leads_interactions",
				Columns:    []*schema.Column{InteractionsColumns[4]},
				RefColumns: []*schema.Column{LeadsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "idx_interaction_lead_time",
				Unique:  false,
				Columns: []*schema.Column{InteractionsColumns[4], InteractionsColumns[3]},
			},
			{
				Name:    "idx_interaction_kind",
				Unique:  false,
				Columns: []*schema.Column{InteractionsColumns[1]},
			},
		},
	}
	// LeadsColumns holds the columns for the "leads" table.
	LeadsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "submission_id", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString},
		{Name: "first_name", Type: field.TypeString, Default: ""},
		{Name: "last_name", Type: field.TypeString, Default: ""},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "business_name", Type: field.TypeString, Nullable: true},
		{Name: "submission_kind", Type: field.TypeEnum, Enums: []string{"estate", "business_formation", "brand_protection", "outside_counsel", "legal_strategy", "legal_risk_assessment", "gaming_legal", "newsletter", "resource_guide"}},
		{Name: "score", Type: field.TypeInt},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"standard", "medium", "high", "critical"}, Default: "standard"},
		{Name: "profile", Type: field.TypeString, Default: "generic"},
		{Name: "form_data", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LeadsTable holds the schema information for the "leads" table.
	LeadsTable = &schema.Table{
		Name:       "leads",
		Columns:    LeadsColumns,
		PrimaryKey: []*schema.Column{LeadsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "idx_lead_email",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[2]},
			},
			{
				Name:    "idx_lead_kind_time",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[7], LeadsColumns[12]},
			},
			{
				Name:    "idx_lead_score",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[8]},
			},
		},
	}
	// ScheduledMessagesColumns holds the columns for the "scheduled_messages" table.
	ScheduledMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString},
		{Name: "first_name", Type: field.TypeString, Nullable: true},
		{Name: "subject_template", Type: field.TypeString},
		{Name: "body_template_id", Type: field.TypeString},
		{Name: "send_at", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "paused", "sent", "failed", "cancelled"}, Default: "pending"},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "last_error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "sent_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "enrollment_id", Type: field.TypeInt, Nullable: true},
	}
	// ScheduledMessagesTable holds the schema information for the "scheduled_messages" table.
	ScheduledMessagesTable = &schema.Table{
		Name:       "scheduled_messages",
		Columns:    ScheduledMessagesColumns,
		PrimaryKey: []*schema.Column{ScheduledMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "scheduled_messages_enrollments_messages",
				Columns:    []*schema.Column{ScheduledMessagesColumns[12]},
				RefColumns: []*schema.Column{EnrollmentsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "idx_message_due",
				Unique:  false,
				Columns: []*schema.Column{ScheduledMessagesColumns[6], ScheduledMessagesColumns[5]},
			},
			{
				Name:    "idx_message_enrollment_status",
				Unique:  false,
				Columns: []*schema.Column{ScheduledMessagesColumns[12], ScheduledMessagesColumns[6]},
			},
			{
				Name:    "idx_message_email_status",
				Unique:  false,
				Columns: []*schema.Column{ScheduledMessagesColumns[1], ScheduledMessagesColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BookingsTable,
		EnrollmentsTable,
		InteractionsTable,
		LeadsTable,
		ScheduledMessagesTable,
	}
)

func init() {
	EnrollmentsTable.ForeignKeys[0].RefTable = LeadsTable
	InteractionsTable.ForeignKeys[0].RefTable = LeadsTable
	ScheduledMessagesTable.ForeignKeys[0].RefTable = EnrollmentsTable
}
