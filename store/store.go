// Package store provides access to the sign-in and user documents.
package store

import (
	"context"

	"dojoroll/models"
)

// Counter names the user profile field a sign-in increments.
type Counter string

const (
	CounterGi   Counter = "giCount"
	CounterNogi Counter = "nogiCount"
	// CounterNone means the class matched neither discipline marker and no
	// counter changes.
	CounterNone Counter = ""
)

// Store is the document-store facade shared by all handlers. Implementations
// must be safe for concurrent use; handlers hold no state of their own.
type Store interface {
	// RecordSignIn writes the sign-in record for (date, className, uid),
	// overwriting any existing record at that key, and atomically increments
	// the given counter on the user's profile (creating the profile if
	// absent). Counter CounterNone skips the profile update. Both writes
	// happen in one transaction.
	RecordSignIn(ctx context.Context, date, className, uid string, rec models.SignInRecord, counter Counter) error

	// ClassesOn lists the class categories recorded under a date, in store
	// enumeration order. A date with no sign-ins yields an empty slice.
	ClassesOn(ctx context.Context, date string) ([]string, error)

	// SignInsFor lists all sign-in records for a date and class category.
	SignInsFor(ctx context.Context, date, className string) ([]models.SignInRecord, error)

	// Users lists every user profile, in store enumeration order.
	Users(ctx context.Context) ([]models.UserProfile, error)

	// AcknowledgeMilestone persists totalMilestone on a user profile so a
	// later scan does not re-fire for the same threshold.
	AcknowledgeMilestone(ctx context.Context, uid string, total int) error
}
