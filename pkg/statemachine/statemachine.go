package statemachine

import (
	"context"
	"fmt"
	"sync"
)

// Action executes side effects during a transition. Returning an error
// prevents the transition.
type Action[S, E comparable] func(ctx context.Context, from, to S, event E, data any) error

// Guard decides at runtime whether a transition may proceed.
type Guard[S, E comparable] func(ctx context.Context, from S, event E, data any) bool

// Observer is notified after every committed transition.
type Observer[S, E comparable] func(from, to S, event E)

type transition[S, E comparable] struct {
	to      S
	guards  []Guard[S, E]  // all must pass
	actions []Action[S, E] // run in order before the state changes
}

// Machine is a thread-safe in-memory finite state machine.
// Transitions are stored as [from][event][]transition; several transitions
// may share a from/event pair and the first one whose guards pass wins.
type Machine[S, E comparable] struct {
	initial     S
	current     S
	transitions map[S]map[E][]transition[S, E]
	observers   []Observer[S, E]
	mu          sync.RWMutex
}

// New creates a machine in the initial state and applies opts.
func New[S, E comparable](initial S, opts ...Option[S, E]) (*Machine[S, E], error) {
	m := &Machine[S, E]{
		initial:     initial,
		current:     initial,
		transitions: make(map[S]map[E][]transition[S, E]),
	}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// MustNew is like New but panics on a configuration error.
func MustNew[S, E comparable](initial S, opts ...Option[S, E]) *Machine[S, E] {
	m, err := New(initial, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create state machine: %v", err))
	}
	return m
}

// Current returns the current state.
func (m *Machine[S, E]) Current() S {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Is reports whether the machine is in state s.
func (m *Machine[S, E]) Is(s S) bool {
	return m.Current() == s
}

// AddTransition registers a transition from -> to triggered by event.
func (m *Machine[S, E]) AddTransition(from, to S, event E, guards []Guard[S, E], actions []Action[S, E]) error {
	var zero E
	if event == zero {
		return ErrInvalidEvent
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.transitions[from]; !ok {
		m.transitions[from] = make(map[E][]transition[S, E])
	}
	m.transitions[from][event] = append(m.transitions[from][event], transition[S, E]{
		to:      to,
		guards:  guards,
		actions: actions,
	})
	return nil
}

// Fire triggers event with optional data. Actions run while the machine is
// locked, so they must not call back into it. Observers run after the lock
// is released.
func (m *Machine[S, E]) Fire(ctx context.Context, event E, data any) error {
	m.mu.Lock()

	from := m.current
	candidates := m.transitions[from][event]
	if len(candidates) == 0 {
		m.mu.Unlock()
		return &NoTransitionError{State: fmt.Sprint(from), Event: fmt.Sprint(event)}
	}

	t, ok := m.pick(ctx, from, event, data, candidates)
	if !ok {
		m.mu.Unlock()
		return &RejectedError{State: fmt.Sprint(from), Event: fmt.Sprint(event)}
	}

	for _, action := range t.actions {
		if err := action(ctx, from, t.to, event, data); err != nil {
			m.mu.Unlock()
			return fmt.Errorf("%w: %w", ErrActionFailed, err)
		}
	}

	m.current = t.to
	observers := m.observers
	m.mu.Unlock()

	for _, o := range observers {
		o(from, t.to, event)
	}
	return nil
}

// CanFire reports whether event would be accepted in the current state.
func (m *Machine[S, E]) CanFire(ctx context.Context, event E, data any) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	candidates := m.transitions[m.current][event]
	if len(candidates) == 0 {
		return false
	}
	_, ok := m.pick(ctx, m.current, event, data, candidates)
	return ok
}

// Reset moves the machine back to its initial state without running
// actions or observers.
func (m *Machine[S, E]) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.initial
}

func (m *Machine[S, E]) pick(ctx context.Context, from S, event E, data any, candidates []transition[S, E]) (transition[S, E], bool) {
	for _, t := range candidates {
		passed := true
		for _, guard := range t.guards {
			if !guard(ctx, from, event, data) {
				passed = false
				break
			}
		}
		if passed {
			return t, true
		}
	}
	return transition[S, E]{}, false
}
