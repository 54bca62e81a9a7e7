package modelchecker

import "github.com/justusdieckmann/model-checker/kripke"

// NewAlternatingExample builds the two-state {a}<->{b} Kripke structure
// used by scenarios S1/S2: state 1 labeled {a} and state 2 labeled {b},
// each with an edge to the other, state 1 marked start.
func NewAlternatingExample() *kripke.Builder {
	b := kripke.NewBuilder()
	b.AddState(1, []string{"a"}, true)
	b.AddState(2, []string{"b"}, false)
	b.AddTransition(1, 2)
	b.AddTransition(2, 1)
	return b
}

// NewSelfLoopExample builds a single unlabeled state with a self-loop,
// used by scenario S3.
func NewSelfLoopExample() *kripke.Builder {
	b := kripke.NewBuilder()
	b.AddState(1, nil, true)
	b.AddTransition(1, 1)
	return b
}

// NewDeadEndExample builds a single state labeled {p} with no outgoing
// transition, used by scenario S4 to exercise the synthesized dead
// state.
func NewDeadEndExample() *kripke.Builder {
	b := kripke.NewBuilder()
	b.AddState(1, []string{"p"}, true)
	return b
}

// NewNoStartExample builds a single declared state with no start flag
// set, used by scenario S5.
func NewNoStartExample() *kripke.Builder {
	b := kripke.NewBuilder()
	b.AddState(1, []string{"p"}, false)
	return b
}
