package modelchecker

import (
	"fmt"
	"strings"

	"github.com/justusdieckmann/model-checker/automaton"
	"github.com/justusdieckmann/model-checker/kripke"
	"github.com/justusdieckmann/model-checker/tableau"
)

// LassoStep is one element of a counterexample lasso (§6): the Kripke
// state the execution is in, paired with the property automaton's own
// state annotation and degeneralization plane at that point.
type LassoStep struct {
	KripkeStateID uint64
	PropertyState tableau.State
	Plane         uint8
}

// Lasso is a counterexample witness: Prefix ends at the cycle's entry
// point, Cycle repeats forever from there (its first and last steps are
// the same state).
type Lasso struct {
	Prefix []LassoStep
	Cycle  []LassoStep
}

func (l *Lasso) String() string {
	var b strings.Builder
	fmt.Fprint(&b, "prefix: ")
	writeSteps(&b, l.Prefix)
	fmt.Fprint(&b, "\ncycle:  ")
	writeSteps(&b, l.Cycle)
	return b.String()
}

func writeSteps(b *strings.Builder, steps []LassoStep) {
	for i, s := range steps {
		if i > 0 {
			fmt.Fprint(b, " -> ")
		}
		fmt.Fprintf(b, "(k%d,%s,p%d)", s.KripkeStateID, s.PropertyState, s.Plane)
	}
}

type productAnnotation = automaton.ProductState[kripke.State, automaton.Plane[tableau.State]]

func toLassoSteps(states []productAnnotation) []LassoStep {
	out := make([]LassoStep, len(states))
	for i, s := range states {
		out[i] = LassoStep{
			KripkeStateID: s.Left.ID,
			PropertyState: s.Right.Info,
			Plane:         s.Right.Plane,
		}
	}
	return out
}
