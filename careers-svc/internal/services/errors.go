package services

import (
	"errors"
	"fmt"
)

var (
	ErrEmailTaken          = errors.New("email is already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrUnauthenticated     = errors.New("sign in required")
	ErrWrongRole           = errors.New("not allowed for this account type")
	ErrForbidden           = errors.New("forbidden")
	ErrProfileIncomplete   = errors.New("complete your profile first")
	ErrJobNotFound         = errors.New("job not found")
	ErrJobClosed           = errors.New("job is no longer accepting applications")
	ErrAlreadyApplied      = errors.New("already applied to this job")
	ErrSubmitFailed        = errors.New("failed to submit application")
	ErrApplicationNotFound = errors.New("application not found")
	ErrInvalidStatus       = errors.New("invalid application status")
	ErrEmployerNotFound    = errors.New("employer profile not found")
)

// ValidationError carries a message meant for the end user.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func invalid(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}
