package fsm

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// AutoPredicate names the owning machine's auto-complete predicate.
	AutoPredicate = "auto"
	// NegatePrefix inverts the named predicate's expected result.
	NegatePrefix = "not_"
)

var (
	ErrNoStates         = errors.New("no states declared")
	ErrDuplicateState   = errors.New("duplicate state")
	ErrUnknownState     = errors.New("unknown state")
	ErrMissingPredicate = errors.New("missing predicate")
)

// Predicates is the registry transitions are resolved against.
type Predicates map[string]Predicate

// TransitionSpec is the config form of a transition.
type TransitionSpec struct {
	Check    string // predicate name, optionally prefixed with NegatePrefix
	To       string
	Buffered bool
}

// StateSpec lists a state's transitions in evaluation order.
type StateSpec struct {
	State       string
	Transitions []TransitionSpec
}

// Table is an ordered transition table. The first state is the initial one.
type Table []StateSpec

// States returns the table's state names in declaration order.
func (t Table) States() []string {
	names := make([]string, len(t))
	for i, s := range t {
		names[i] = s.State
	}
	return names
}

// Build validates table against preds and returns a ready machine. Every
// configuration problem is reported here rather than mid-simulation.
func Build(name string, table Table, preds Predicates) (*Machine, error) {
	if len(table) == 0 {
		return nil, fmt.Errorf("fsm %q: %w", name, ErrNoStates)
	}

	seen := make(map[string]bool, len(table))
	for _, s := range table {
		if seen[s.State] {
			return nil, fmt.Errorf("fsm %q: %w %q", name, ErrDuplicateState, s.State)
		}
		seen[s.State] = true
	}

	m := New(name, table.States()...)

	for _, s := range table {
		for _, spec := range s.Transitions {
			t, err := resolve(m, spec, preds)
			if err != nil {
				return nil, fmt.Errorf("fsm %q: state %q: %w", name, s.State, err)
			}
			m.AddTransition(s.State, t)
		}
	}

	return m, nil
}

func resolve(m *Machine, spec TransitionSpec, preds Predicates) (Transition, error) {
	to, ok := m.StateIndex(spec.To)
	if !ok {
		return Transition{}, fmt.Errorf("transition %q: %w %q", spec.Check, ErrUnknownState, spec.To)
	}

	t := Transition{
		Name:     spec.Check,
		To:       to,
		Buffered: spec.Buffered,
	}

	predicate := spec.Check
	if strings.HasPrefix(predicate, NegatePrefix) {
		predicate = strings.TrimPrefix(predicate, NegatePrefix)
		t.Negate = true
	}

	if predicate == AutoPredicate {
		t.Auto = true
		return t, nil
	}

	check, ok := preds[predicate]
	if !ok || check == nil {
		return Transition{}, fmt.Errorf("transition %q: %w %q", spec.Check, ErrMissingPredicate, predicate)
	}
	t.Check = check
	return t, nil
}
