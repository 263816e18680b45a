package jobpost

import (
	"fmt"

	"staffing/internal/pkg/errs"
)

// Status represents the lifecycle state of a job post.
// It implements a state machine with defined transitions to ensure
// job posts follow the correct staffing workflow.
//
// State transitions:
//
//	draft ──> open ──┬──> upcoming ──> checkedIn ──> completed
//	                 │         ^
//	                 └──> assigned
//
// Checkout is the one exception: it may complete a job post from any valid
// status (see CheckOut), matching the behavior of the checkout endpoint.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is a side state for posts prepared but not yet published.
	Draft

	// Open is the initial status of a published post awaiting acceptance.
	Open

	// Assigned indicates a post reserved for a worker but not yet scheduled.
	Assigned

	// Upcoming indicates a post accepted by a worker and scheduled.
	Upcoming

	// CheckedIn indicates the worker has started the shift.
	CheckedIn

	// Completed indicates the shift was checked out. Final state.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Draft:     "draft",
		Open:      "open",
		Assigned:  "assigned",
		Upcoming:  "upcoming",
		CheckedIn: "checkedIn",
		Completed: "completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:     "draft",
		Open:      "open",
		Assigned:  "assigned",
		Upcoming:  "upcoming",
		CheckedIn: "checkedIn",
		Completed: "completed",
	}
}

// transitions is the forward-only transition table. Status changes applied
// outside the dedicated lifecycle actions (the generic update path) are
// validated against this table.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		Draft:     {Open},
		Open:      {Assigned, Upcoming},
		Assigned:  {Upcoming},
		Upcoming:  {CheckedIn},
		CheckedIn: {Completed},
		Completed: {},
	}
}

// StatusFromString parses the persisted representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted, human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Accept transitions the status to Upcoming.
//
// Valid transitions:
//   - Open -> Upcoming
//
// Any other current status yields a StatusConflictError and no transition.
func (s Status) Accept() (Status, error) {
	if s != Open {
		return 0, errs.NewStatusConflictError(s.String(), "accept")
	}
	return Upcoming, nil
}

// CheckIn transitions the status to CheckedIn.
//
// Valid transitions:
//   - Upcoming -> CheckedIn
//
// Any other current status yields a StatusConflictError and no transition.
func (s Status) CheckIn() (Status, error) {
	if s != Upcoming {
		return 0, errs.NewStatusConflictError(s.String(), "check in")
	}
	return CheckedIn, nil
}

// CheckOut transitions the status to Completed. Checkout intentionally has no
// status precondition: any valid status may be checked out.
func (s Status) CheckOut() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return Completed, nil
}

// CanTransitionTo reports whether a direct change from s to next is an allowed
// forward edge of the lifecycle graph. Setting the same status again is a no-op
// and always allowed.
func (s Status) CanTransitionTo(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if s == next {
		return nil
	}
	for _, allowed := range transitions()[s] {
		if next == allowed {
			return nil
		}
	}
	return errs.NewStatusConflictError(s.String(), "move to "+next.String())
}
