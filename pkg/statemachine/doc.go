// Package statemachine implements a small, generic finite state machine.
//
// States and events are any comparable types, usually string constants:
//
//	type phase string
//	type trigger string
//
//	m := statemachine.MustNew[phase, trigger]("idle",
//	    statemachine.WithTransition[phase, trigger]("idle", "validating", "submit"),
//	    statemachine.WithTransition[phase, trigger]("validating", "idle", "invalid"),
//	)
//	err := m.Fire(ctx, "submit", nil)
//
// Guards decide whether a transition may proceed; when several transitions
// share a from/event pair the first one whose guards all pass is used, which
// allows priority ordering. Actions run before the state changes and any
// error aborts the transition. Observers are notified after a transition is
// committed.
//
// Fire returns *NoTransitionError when nothing is defined for the current
// state and event, and *RejectedError when guards blocked every candidate.
// Use IsNoTransition and IsRejected to tell them apart.
package statemachine
