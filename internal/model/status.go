package model

import "errors"

// Status is the lifecycle state of a notification.
type Status string

const (
	StatusScheduled Status = "scheduled" // deferred, waiting for its due time
	StatusSending   Status = "sending"   // claimed by a send attempt
	StatusSent      Status = "sent"      // delivery attempt completed
	StatusFailed    Status = "failed"    // transport-level failure, terminal
)

// Event is a lifecycle trigger applied to a notification status.
type Event string

const (
	EventClaim           Event = "claim"
	EventDispatchSuccess Event = "dispatch_success"
	EventDispatchFailure Event = "dispatch_failure"
)

// ErrIllegalTransition is returned by NextStatus for a (status, event) pair
// that is not in the transition table.
var ErrIllegalTransition = errors.New("illegal status transition")

var transitions = map[Status]map[Event]Status{
	StatusScheduled: {
		EventClaim: StatusSending,
	},
	StatusSending: {
		// A claim on an already-claimed row is how the immediate send path
		// re-enters the table; the compare-and-set in the repository is what
		// serializes concurrent sweeps.
		EventClaim:           StatusSending,
		EventDispatchSuccess: StatusSent,
		EventDispatchFailure: StatusFailed,
	},
}

// NextStatus returns the status that applying event to current yields.
// Every transition not listed is illegal; in particular sent and failed
// accept no events at all.
func NextStatus(current Status, event Event) (Status, error) {
	next, ok := transitions[current][event]
	if !ok {
		return "", ErrIllegalTransition
	}
	return next, nil
}
