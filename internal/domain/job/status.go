package job

import "content-dispatch/internal/pkg/errs"

var (
	ErrInvalidKind        = errs.Mark(errs.New("invalid job kind"), errs.ErrValidation)
	ErrInvalidStatus      = errs.Mark(errs.New("invalid job status"), errs.ErrValidation)
	ErrIllegalTransition  = errs.New("illegal job status transition")
	ErrJobNotFound        = errs.Mark(errs.New("job not found"), errs.ErrNotFound)
	ErrMissingFailureText = errs.Mark(errs.New("failed status requires an error message"), errs.ErrValidation)
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	// every broker attempt was spent and the last one failed
	StatusBrokerExhausted Status = "broker_exhausted"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed, StatusBrokerExhausted:
		return true
	default:
		return false
	}
}

// IsTerminal reports statuses that carry processed_at. failed is included
// even though a broker retry may still move it back to processing.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusFailed, StatusBrokerExhausted:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// Nothing ever moves back to pending.
var allowedFrom = map[Status][]Status{
	StatusProcessing:      {StatusPending, StatusProcessing, StatusFailed},
	StatusCompleted:       {StatusProcessing, StatusCompleted},
	StatusFailed:          {StatusPending, StatusProcessing, StatusFailed},
	StatusBrokerExhausted: {StatusFailed, StatusBrokerExhausted},
}

// AllowedFrom lists the statuses a row may hold for a move to next to be legal.
func AllowedFrom(next Status) []Status {
	from := allowedFrom[next]
	out := make([]Status, len(from))
	copy(out, from)
	return out
}

func CanTransition(from, to Status) bool {
	for _, s := range allowedFrom[to] {
		if s == from {
			return true
		}
	}
	return false
}

// TransitionError reports a compare-and-set that found the row in a status
// from which the requested move is not allowed.
type TransitionError struct {
	JobID int64
	From  Status
	To    Status
}

func (e *TransitionError) Error() string {
	return "illegal job status transition " + string(e.From) + " -> " + string(e.To)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrIllegalTransition
}
