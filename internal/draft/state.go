package draft

// SubmissionState tracks one draft's place in the submit lifecycle. A mutable
// "submitting" flag would make the duplicate-submission guard untestable on
// its own, so the guard is an explicit state machine:
//
//	Idle -> Submitting -> Succeeded
//	                   -> Failed -> Submitting (resubmit)
type SubmissionState int

const (
	// StateIdle means the draft has never been submitted.
	StateIdle SubmissionState = iota

	// StateSubmitting means a create request is in flight; further submits
	// are refused until it resolves.
	StateSubmitting

	// StateSucceeded means the server accepted the order. The draft is spent.
	StateSucceeded

	// StateFailed means the last submit was rejected; the draft stays
	// editable and may be resubmitted.
	StateFailed
)

func (s SubmissionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
