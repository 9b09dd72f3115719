package statemachine

// Option configures a machine during construction.
type Option[S, E comparable] func(*Machine[S, E]) error

// TransitionOption configures a single transition.
type TransitionOption[S, E comparable] func(*transitionConfig[S, E])

type transitionConfig[S, E comparable] struct {
	guards  []Guard[S, E]
	actions []Action[S, E]
}

// WithTransition adds a transition from -> to on event.
func WithTransition[S, E comparable](from, to S, event E, opts ...TransitionOption[S, E]) Option[S, E] {
	return func(m *Machine[S, E]) error {
		cfg := &transitionConfig[S, E]{}
		for _, opt := range opts {
			opt(cfg)
		}
		return m.AddTransition(from, to, event, cfg.guards, cfg.actions)
	}
}

// WithObserver registers fn to be called after each committed transition.
func WithObserver[S, E comparable](fn Observer[S, E]) Option[S, E] {
	return func(m *Machine[S, E]) error {
		if fn != nil {
			m.observers = append(m.observers, fn)
		}
		return nil
	}
}

// WithGuard adds guard to a transition. Nil guards are ignored.
func WithGuard[S, E comparable](guard Guard[S, E]) TransitionOption[S, E] {
	return func(cfg *transitionConfig[S, E]) {
		if guard != nil {
			cfg.guards = append(cfg.guards, guard)
		}
	}
}

// WithAction adds action to a transition. Nil actions are ignored.
func WithAction[S, E comparable](action Action[S, E]) TransitionOption[S, E] {
	return func(cfg *transitionConfig[S, E]) {
		if action != nil {
			cfg.actions = append(cfg.actions, action)
		}
	}
}
