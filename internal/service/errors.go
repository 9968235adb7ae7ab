package service

import (
	"errors"
	"fmt"
)

// Guard violations. These abort the operation with no state change and map
// to an actionable client error.
var (
	ErrDuplicateApplication = errors.New("you have already applied to this job")
	ErrInvalidApplicant     = errors.New("job owners cannot apply to their own jobs")
	ErrJobClosed            = errors.New("this job is no longer open")
	ErrNotOwner             = errors.New("only the owner may perform this action")
	ErrAlreadyDecided       = errors.New("this application has already been decided")
	ErrSelfMessage          = errors.New("sender and receiver must be different users")
	ErrUnknownEvent         = errors.New("unknown event kind")
)

// HireStep identifies one of the ordered sub-effects of a hire transition.
type HireStep string

const (
	HireStepAcceptApplication HireStep = "accept_application"
	HireStepRejectSiblings    HireStep = "reject_siblings"
	HireStepCloseJob          HireStep = "close_job"
)

// HirePartialError reports that a hire transition failed after at least one
// sub-effect was committed. Every step is idempotent, so the caller may
// safely retry the whole transition; the step name says where to look when
// retries keep failing.
type HirePartialError struct {
	Step HireStep
	Err  error
}

func (e *HirePartialError) Error() string {
	return fmt.Sprintf("hire incomplete at step %s: %v", e.Step, e.Err)
}

func (e *HirePartialError) Unwrap() error {
	return e.Err
}
