package queue

import (
	"time"

	"content-dispatch/internal/pkg/backoff"
	"content-dispatch/internal/pkg/errs"
)

var ErrUnknownQueue = errs.Mark(errs.New("unknown queue"), errs.ErrValidation)

type Name string

const (
	ContentHigh Name = "content-high"
	Content     Name = "content"
	Email       Name = "email"
)

// Policy is the per-queue retry and retention contract.
type Policy struct {
	Name          Name
	Attempts      int
	Backoff       backoff.Strategy
	Concurrency   int
	KeepCompleted int64
	KeepFailed    int64
}

func DefaultPolicies() Policies {
	return Policies{
		ContentHigh: {
			Name:          ContentHigh,
			Attempts:      5,
			Backoff:       backoff.NewExponential(1500*time.Millisecond, 5*time.Minute),
			Concurrency:   8,
			KeepCompleted: 200,
			KeepFailed:    1000,
		},
		Content: {
			Name:          Content,
			Attempts:      3,
			Backoff:       backoff.NewExponential(2*time.Second, 5*time.Minute),
			Concurrency:   4,
			KeepCompleted: 100,
			KeepFailed:    500,
		},
		Email: {
			Name:          Email,
			Attempts:      3,
			Backoff:       backoff.NewExponential(3*time.Second, 5*time.Minute),
			Concurrency:   4,
			KeepCompleted: 100,
			KeepFailed:    1000,
		},
	}
}

// Policies is a lookup over a fixed set of queue policies.
type Policies map[Name]Policy

func (p Policies) Get(name Name) (Policy, error) {
	pol, ok := p[name]
	if !ok {
		return Policy{}, errs.Wrapf(ErrUnknownQueue, "%q", name)
	}
	return pol, nil
}

// Select returns the policies for names, in order. An empty list selects all
// queues.
func (p Policies) Select(names []string) ([]Policy, error) {
	if len(names) == 0 {
		return p.Select([]string{string(ContentHigh), string(Content), string(Email)})
	}
	out := make([]Policy, 0, len(names))
	for _, n := range names {
		pol, err := p.Get(Name(n))
		if err != nil {
			return nil, err
		}
		out = append(out, pol)
	}
	return out, nil
}
