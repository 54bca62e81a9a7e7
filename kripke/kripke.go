// Package kripke builds total Büchi automata from Kripke structures
// (§4.F): a builder API (AddState/AddTransition) accumulates a model,
// and Build encodes it against a formula's AP map.
//
// Grounded on original_source/lib/src/kripke.rs's KripkeBuilder.
package kripke

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/justusdieckmann/model-checker/automaton"
	"github.com/justusdieckmann/model-checker/ltl"
)

// State is a Büchi-automaton state's annotation after Kripke encoding:
// either a caller-supplied model state ID, or one of the two synthetic
// roles (initial / dead) the encoder may add.
type State struct {
	ID    uint64
	Synth SynthRole
}

// SynthRole distinguishes a real model state from the encoder's two
// synthetic states.
type SynthRole uint8

const (
	// RealState carries a caller-supplied ID in State.ID.
	RealState SynthRole = iota
	// InitState is the synthetic entry point (q_init in §4.F).
	InitState
	// DeadState is the synthetic totality sink (q_dead in §4.F), only
	// present when some state genuinely lacks an outgoing transition.
	DeadState
)

type kripkeState struct {
	id    uint64
	aps   []string
	start bool
}

// Builder accumulates a Kripke structure: states (with their AP labels
// and start flag) plus directed transitions between previously added
// state IDs. States are kept in insertion order so that Build's output
// is deterministic given identical construction order (§5).
type Builder struct {
	states    []kripkeState
	indexByID map[uint64]int
	edges     [][2]uint64
}

// NewBuilder returns an empty Kripke structure builder.
func NewBuilder() *Builder {
	return &Builder{indexByID: make(map[uint64]int)}
}

// AddState declares a state with the given caller-supplied ID, the set
// of AP names that hold there, and whether it is a start state. Adding
// the same ID again replaces its APs/start flag in place.
func (b *Builder) AddState(id uint64, aps []string, start bool) {
	if i, ok := b.indexByID[id]; ok {
		b.states[i] = kripkeState{id: id, aps: aps, start: start}
		return
	}
	b.indexByID[id] = len(b.states)
	b.states = append(b.states, kripkeState{id: id, aps: aps, start: start})
}

// AddTransition declares a directed edge between two previously (or
// later) added state IDs; the reference is resolved at Build time.
func (b *Builder) AddTransition(fromID, toID uint64) {
	b.edges = append(b.edges, [2]uint64{fromID, toID})
}

func symbolFromAPs(aps []string, apMap map[string]ltl.AP) automaton.Symbol {
	var sym automaton.Symbol
	for _, name := range aps {
		if ap, ok := apMap[name]; ok {
			sym |= 1 << ap
		}
	}
	return sym
}

// Build encodes the accumulated structure as a total Büchi automaton
// over apMap's AP alphabet (§4.F): one internal state per declared
// Kripke state, a synthetic initial state with edges to every start
// state, and — only if some state would otherwise be a dead end — a
// synthetic dead state with a self-loop, recovering the optimization
// noted but left undone in original_source/lib/src/kripke.rs ("TODO
// Only include dead-state if necessary").
func (b *Builder) Build(apMap map[string]ltl.AP) (*automaton.BA[State], error) {
	n := len(b.states)

	hasStart := false
	for _, s := range b.states {
		if s.start {
			hasStart = true
			break
		}
	}
	if !hasStart {
		return nil, ModelNoStart
	}

	const initIdx = automaton.StateID(0)
	internalOf := func(stateIdx int) automaton.StateID { return automaton.StateID(stateIdx + 1) }

	hasSuccessor := make([]bool, n)
	for _, e := range b.edges {
		fromIdx, ok := b.indexByID[e[0]]
		if !ok {
			return nil, ModelInvalid
		}
		if _, ok := b.indexByID[e[1]]; !ok {
			return nil, ModelInvalid
		}
		hasSuccessor[fromIdx] = true
	}

	needDead := false
	for _, ok := range hasSuccessor {
		if !ok {
			needDead = true
			break
		}
	}

	var deadIdx automaton.StateID
	amountStates := n + 1
	if needDead {
		deadIdx = automaton.StateID(n + 1)
		amountStates = n + 2
	}

	trans := automaton.NewTransitions(amountStates)

	for i, s := range b.states {
		if s.start {
			trans.Add(initIdx, symbolFromAPs(s.aps, apMap), internalOf(i))
		}
	}

	for _, e := range b.edges {
		fromIdx := b.indexByID[e[0]]
		toIdx := b.indexByID[e[1]]
		sym := symbolFromAPs(b.states[toIdx].aps, apMap)
		trans.Add(internalOf(fromIdx), sym, internalOf(toIdx))
	}

	if needDead {
		for i, ok := range hasSuccessor {
			if !ok {
				trans.Add(internalOf(i), 0, deadIdx)
			}
		}
		trans.Add(deadIdx, 0, deadIdx)
	}

	stateInfo := make([]State, amountStates)
	stateInfo[0] = State{Synth: InitState}
	for i, s := range b.states {
		stateInfo[i+1] = State{ID: s.id, Synth: RealState}
	}
	if needDead {
		stateInfo[deadIdx] = State{Synth: DeadState}
	}

	accept := bitset.New(uint(amountStates))
	for i := uint(0); i < uint(amountStates); i++ {
		accept.Set(i)
	}

	return &automaton.BA[State]{
		StateInfo: stateInfo,
		APCount:   uint8(len(apMap)),
		Start:     initIdx,
		Trans:     trans,
		Accept:    accept,
	}, nil
}
