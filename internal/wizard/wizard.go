// Package wizard drives the multi-step form flows: an ordered sequence of
// steps over a single draft record, with per-step validation gating forward
// navigation and one terminal submission at the end.
package wizard

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrSubmitInFlight is returned when navigation or resubmission is
	// attempted while a submission is on the wire.
	ErrSubmitInFlight = errors.New("submission in flight")
	// ErrConfirmed is returned for any transition attempted after a
	// successful submission; the confirmation state is terminal.
	ErrConfirmed = errors.New("wizard already confirmed")
	// ErrNotFinalStep is returned when Submit is called before the final
	// step is reached.
	ErrNotFinalStep = errors.New("submit only allowed from the final step")
)

// Step is one stage of a flow. Validate inspects only the fields the step
// owns and returns one message per invalid field; an empty map means the
// step passes.
type Step[D any] struct {
	Name     string
	Validate func(draft D) map[string]string
}

// SubmitFunc performs the single network write for the accumulated draft.
type SubmitFunc[D any] func(ctx context.Context, draft D) error

// Machine holds the draft and the current step of one flow instance. Steps
// are numbered from 1. The zero value is not usable; construct with New.
type Machine[D any] struct {
	mu        sync.Mutex
	steps     []Step[D]
	submit    SubmitFunc[D]
	draft     D
	current   int
	inFlight  bool
	confirmed bool
	submitErr string
}

// New constructs a machine positioned at step 1 with the given initial draft.
func New[D any](steps []Step[D], initial D, submit SubmitFunc[D]) *Machine[D] {
	if len(steps) == 0 {
		panic("wizard: at least one step required")
	}
	return &Machine[D]{steps: steps, draft: initial, submit: submit, current: 1}
}

// Current returns the 1-based step number.
func (m *Machine[D]) Current() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// StepName returns the name of the current step.
func (m *Machine[D]) StepName() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.steps[m.current-1].Name
}

// Draft returns the accumulated draft value.
func (m *Machine[D]) Draft() D {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.draft
}

// Update applies fn to the draft. Updates are rejected while a submission is
// in flight and after confirmation.
func (m *Machine[D]) Update(fn func(draft D) D) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.confirmed {
		return ErrConfirmed
	}
	if m.inFlight {
		return ErrSubmitInFlight
	}
	m.draft = fn(m.draft)
	return nil
}

// Next validates only the current step's fields. On success it advances one
// step and returns an empty map; on failure it stays put, leaves the draft
// unchanged and returns the field errors.
func (m *Machine[D]) Next() (map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.confirmed {
		return nil, ErrConfirmed
	}
	if m.inFlight {
		return nil, ErrSubmitInFlight
	}
	if fieldErrs := m.steps[m.current-1].Validate(m.draft); len(fieldErrs) > 0 {
		return fieldErrs, nil
	}
	if m.current < len(m.steps) {
		m.current++
	}
	return map[string]string{}, nil
}

// Back moves one step backwards without revalidating, flooring at step 1.
func (m *Machine[D]) Back() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.confirmed {
		return ErrConfirmed
	}
	if m.inFlight {
		return ErrSubmitInFlight
	}
	if m.current > 1 {
		m.current--
	}
	return nil
}

// Submit performs the terminal submission from the final step. Every step is
// revalidated first so a draft edited after an earlier Next cannot slip
// through. On success the machine enters the terminal confirmed state and
// the draft is discarded. On failure the machine stays on the final step,
// retains the server error and permits resubmission.
func (m *Machine[D]) Submit(ctx context.Context) (map[string]string, error) {
	m.mu.Lock()
	if m.confirmed {
		m.mu.Unlock()
		return nil, ErrConfirmed
	}
	if m.inFlight {
		m.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	if m.current != len(m.steps) {
		m.mu.Unlock()
		return nil, ErrNotFinalStep
	}
	for _, step := range m.steps {
		if fieldErrs := step.Validate(m.draft); len(fieldErrs) > 0 {
			m.mu.Unlock()
			return fieldErrs, nil
		}
	}
	m.inFlight = true
	draft := m.draft
	m.mu.Unlock()

	err := m.submit(ctx, draft)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.inFlight = false
	if err != nil {
		m.submitErr = err.Error()
		return nil, err
	}
	m.confirmed = true
	m.submitErr = ""
	var zero D
	m.draft = zero
	return map[string]string{}, nil
}

// Confirmed reports whether the terminal confirmation state was reached.
func (m *Machine[D]) Confirmed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.confirmed
}

// SubmitError returns the message of the last failed submission, empty when
// the last submission succeeded or none was attempted.
func (m *Machine[D]) SubmitError() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.submitErr
}

// Busy reports whether a submission is currently in flight.
func (m *Machine[D]) Busy() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inFlight
}
