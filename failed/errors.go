// Package failed holds the errors a case split can end in.
//
// Every error is created through New, which records where it was created so that
// FormatWithCode can point at it. Collaborator errors are wrapped, never replaced:
// errors.Cause and errors.Is still reach them.
package failed

import (
	"github.com/pkg/errors"
)

// Wrap annotates err with msg, keeping it as the cause
func Wrap(err error, msg string) error {
	return errors.Wrap(err, msg)
}

func As(err error, target any) bool { return errors.As(err, target) }

func Is(err, target error) bool { return errors.Is(err, target) }

func Cause(err error) error { return errors.Cause(err) }

// IsLimitExceeded reports whether err means the split budget ran out
func IsLimitExceeded(err error) bool { return CodeOf(err) == LimitExceeded }
