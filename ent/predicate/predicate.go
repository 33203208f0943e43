// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Booking is the predicate function for booking builders.
type Booking func(*sql.Selector)

// Enrollment is the predicate function for enrollment builders.
type Enrollment func(*sql.Selector)

// Interaction is the predicate function for interaction builders.
type Interaction func(*sql.Selector)

// Lead is the predicate function for lead builders.
type Lead func(*sql.Selector)

// ScheduledMessage is the predicate function for scheduledmessage builders.
type ScheduledMessage func(*sql.Selector)
