// Package fsm implements a named-state automaton driven by a declarative,
// ordered transition table. Transitions are guarded by zero-argument
// predicates resolved by name from a caller-supplied registry.
package fsm

import (
	"fmt"
)

// Predicate is a zero-argument guard, usually bound to a controller check.
type Predicate func() bool

// Transition is one entry in a state's ordered transition list.
type Transition struct {
	Name     string
	Check    Predicate // nil when Auto is set
	Auto     bool      // use the machine's auto-complete predicate
	To       int
	Negate   bool
	Buffered bool
}

// ChangeFunc observes state changes.
type ChangeFunc func(from, to string)

// Machine holds exactly one current state out of an ordered list.
type Machine struct {
	Name string

	states      []string
	index       map[string]int
	current     int
	transitions [][]Transition

	buffered    int
	hasBuffered bool

	auto      Predicate
	listeners []ChangeFunc
}

// New creates a machine whose current state is the first one listed.
// An empty or duplicated state list is a programming error.
func New(name string, states ...string) *Machine {
	if len(states) == 0 {
		panic(fmt.Sprintf("fsm %q: no states", name))
	}

	m := &Machine{
		Name:        name,
		states:      append([]string(nil), states...),
		index:       make(map[string]int, len(states)),
		transitions: make([][]Transition, len(states)),
		auto:        func() bool { return true },
	}
	for i, s := range states {
		if _, dup := m.index[s]; dup {
			panic(fmt.Sprintf("fsm %q: duplicate state %q", name, s))
		}
		m.index[s] = i
	}
	return m
}

// SetAuto installs the predicate used by "auto" transitions and by the
// buffered-transition check.
func (m *Machine) SetAuto(p Predicate) {
	m.auto = p
}

// OnChange registers a listener called after every state change.
func (m *Machine) OnChange(fn ChangeFunc) {
	m.listeners = append(m.listeners, fn)
}

// AddTransition appends t to the named state's list. Declaration order is
// evaluation order.
func (m *Machine) AddTransition(state string, t Transition) {
	i := m.mustIndex(state)
	if t.To < 0 || t.To >= len(m.states) {
		panic(fmt.Sprintf("fsm %q: transition %q targets index %d out of range", m.Name, t.Name, t.To))
	}
	if t.Check == nil && !t.Auto {
		panic(fmt.Sprintf("fsm %q: transition %q has no predicate", m.Name, t.Name))
	}
	m.transitions[i] = append(m.transitions[i], t)
}

// Transitions returns the transition list for a state.
func (m *Machine) Transitions(state string) []Transition {
	return m.transitions[m.mustIndex(state)]
}

func (m *Machine) States() []string {
	return m.states
}

func (m *Machine) State() string {
	return m.states[m.current]
}

func (m *Machine) Index() int {
	return m.current
}

// HasState reports whether name is one of the machine's states.
func (m *Machine) HasState(name string) bool {
	_, ok := m.index[name]
	return ok
}

// StateIndex returns the index of a state name.
func (m *Machine) StateIndex(name string) (int, bool) {
	i, ok := m.index[name]
	return i, ok
}

// Buffered returns the pending buffered target, if any.
func (m *Machine) Buffered() (int, bool) {
	return m.buffered, m.hasBuffered
}

// SetState moves to the named state and clears any buffered target.
// Unknown names panic.
func (m *Machine) SetState(name string) {
	m.SetStateIndex(m.mustIndex(name))
}

// SetStateIndex moves to the state at i and clears any buffered target.
// An out of range index panics.
func (m *Machine) SetStateIndex(i int) {
	if i < 0 || i >= len(m.states) {
		panic(fmt.Sprintf("fsm %q: state index %d out of range [0, %d)", m.Name, i, len(m.states)))
	}

	from := m.states[m.current]
	m.current = i
	m.hasBuffered = false

	for _, fn := range m.listeners {
		fn(from, m.states[i])
	}
}

// Update evaluates one tick. A buffered target fires first if the auto
// predicate passes. Otherwise the current state's transitions are checked in
// order and the first whose result matches its polarity wins: a buffered
// transition only records its target, any other fires immediately.
func (m *Machine) Update() {
	if m.hasBuffered && m.auto() {
		m.SetStateIndex(m.buffered)
		return
	}

	for _, t := range m.transitions[m.current] {
		if !m.check(t) {
			continue
		}

		if t.Buffered {
			m.buffered = t.To
			m.hasBuffered = true
			return
		}

		m.SetStateIndex(t.To)
		return
	}
}

func (m *Machine) check(t Transition) bool {
	var result bool
	if t.Auto {
		result = m.auto()
	} else {
		result = t.Check()
	}
	return result != t.Negate
}

func (m *Machine) mustIndex(name string) int {
	i, ok := m.index[name]
	if !ok {
		panic(fmt.Sprintf("fsm %q: unknown state %q", m.Name, name))
	}
	return i
}
