// Package apperrors defines the error taxonomy of the encoding core.
// Every failure is a tagged value carrying a Kind discriminant plus the
// structured fields of the violation, so callers branch with errors.As
// instead of matching message strings.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind discriminates the failure classes of the encoding core.
type Kind string

const (
	// KindInvalidURL - the input URL failed syntactic validation.
	KindInvalidURL Kind = "invalid_url"
	// KindNonConsecutiveLevel - a level dictionary was requested out of
	// order. This is a programming-logic fault, not a user input error.
	KindNonConsecutiveLevel Kind = "non_consecutive_level"
	// KindSiteMisalignment - the URL's top-level site does not match the
	// tenant's registered site.
	KindSiteMisalignment Kind = "site_misalignment"
	// KindSubscriptionViolated - admitting the URL would exceed a
	// subscription ceiling.
	KindSubscriptionViolated Kind = "subscription_violated"
	// KindNoExistingSubscription - unknown tier name.
	KindNoExistingSubscription Kind = "no_existing_subscription"
	// KindCodeNotFound - decode was asked for an unknown code.
	KindCodeNotFound Kind = "code_not_found"
	// KindTenantNotFound - no record persisted for the tenant id.
	KindTenantNotFound Kind = "tenant_not_found"
)

// Error - a tagged domain error. Category, Level, Attempted and Limit are
// populated for subscription violations; Code for decode misses.
type Error struct {
	Kind      Kind
	Message   string
	Category  string
	Level     int
	Attempted int
	Limit     int
	Code      string
}

func (e *Error) Error() string {
	if e.Kind == KindSubscriptionViolated {
		return fmt.Sprintf("%s: category %q at level %d: attempted %d, limit %d",
			e.Kind, e.Category, e.Level, e.Attempted, e.Limit)
	}
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return string(e.Kind)
}

// New creates an error of the given kind with a human readable message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Violation creates a subscription violation. The category "depth" marks
// the hierarchy depth ceiling; the other categories are the wire names of
// models.ValueCategory.
func Violation(category string, level, attempted, limit int) *Error {
	return &Error{
		Kind:      KindSubscriptionViolated,
		Category:  category,
		Level:     level,
		Attempted: attempted,
		Limit:     limit,
	}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	e, ok := AsError(err)
	return ok && e.Kind == kind
}

// AsError unwraps err into an *Error if possible.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
