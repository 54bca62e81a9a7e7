package automaton

// Edge is one outgoing transition: read symbol, target state.
type Edge struct {
	Symbol Symbol
	To     StateID
}

// Triple is a full (from, symbol, to) transition.
type Triple struct {
	From   StateID
	Symbol Symbol
	To     StateID
}

// Transitions is the automaton's transition relation, indexed by source
// state. It dedupes (src, symbol, dst) triples (spec's invariant allows
// but does not require dedup) and preserves insertion order per source
// state, so that iteration is deterministic given identical construction
// order — required by §5 and testable property 6 — independent of Go's
// randomized map iteration order.
//
// Grounded on original_source/lib/src/buechi/transitions.rs, generalized
// from a HashMap-per-state (non-deterministic iteration) to an
// insertion-ordered edge list with a dedup set.
type Transitions struct {
	edges []([]Edge)
	seen  []map[Edge]struct{}
}

// NewTransitions allocates an empty transition relation for the given
// number of states.
func NewTransitions(numStates int) *Transitions {
	t := &Transitions{
		edges: make([][]Edge, numStates),
		seen:  make([]map[Edge]struct{}, numStates),
	}
	for i := range t.seen {
		t.seen[i] = make(map[Edge]struct{})
	}
	return t
}

// Add records a transition from -sym-> to. A repeat of the same triple
// is a no-op.
func (t *Transitions) Add(from StateID, symbol Symbol, to StateID) {
	e := Edge{Symbol: symbol, To: to}
	if _, ok := t.seen[from][e]; ok {
		return
	}
	t.seen[from][e] = struct{}{}
	t.edges[from] = append(t.edges[from], e)
}

// Has reports whether the triple (from, symbol, to) was added.
func (t *Transitions) Has(from StateID, symbol Symbol, to StateID) bool {
	_, ok := t.seen[from][Edge{Symbol: symbol, To: to}]
	return ok
}

// NumStates returns the number of states this relation is sized for.
func (t *Transitions) NumStates() int { return len(t.edges) }

// From returns all outgoing edges of from_state, in insertion order.
func (t *Transitions) From(from StateID) []Edge {
	return t.edges[from]
}

// NextStates returns the distinct target states reachable directly from
// from_state, in first-appearance order.
func (t *Transitions) NextStates(from StateID) []StateID {
	seen := make(map[StateID]struct{}, len(t.edges[from]))
	out := make([]StateID, 0, len(t.edges[from]))
	for _, e := range t.edges[from] {
		if _, ok := seen[e.To]; ok {
			continue
		}
		seen[e.To] = struct{}{}
		out = append(out, e.To)
	}
	return out
}

// SymbolsFromTo returns every symbol labeling an edge from_state->to_state.
func (t *Transitions) SymbolsFromTo(from, to StateID) []Symbol {
	var out []Symbol
	for _, e := range t.edges[from] {
		if e.To == to {
			out = append(out, e.Symbol)
		}
	}
	return out
}

// FromWithSymbol returns the target states reachable from from_state on
// exactly the given symbol, in insertion order.
func (t *Transitions) FromWithSymbol(from StateID, symbol Symbol) []StateID {
	var out []StateID
	for _, e := range t.edges[from] {
		if e.Symbol == symbol {
			out = append(out, e.To)
		}
	}
	return out
}

// All iterates every (from, symbol, to) triple in source-state order,
// then insertion order within each source state.
func (t *Transitions) All() []Triple {
	var out []Triple
	for from, es := range t.edges {
		for _, e := range es {
			out = append(out, Triple{From: StateID(from), Symbol: e.Symbol, To: e.To})
		}
	}
	return out
}
