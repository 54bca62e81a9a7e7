// Package modelchecker ties together the lexer/parser (package ltl),
// the tableau construction and automaton algebra (packages tableau and
// automaton), the Kripke encoder (package kripke), and nested-DFS
// emptiness (package emptiness) into the single entry point: Check.
package modelchecker

import (
	"github.com/justusdieckmann/model-checker/automaton"
	"github.com/justusdieckmann/model-checker/emptiness"
	"github.com/justusdieckmann/model-checker/kripke"
	"github.com/justusdieckmann/model-checker/ltl"
	"github.com/justusdieckmann/model-checker/tableau"
)

// Check decides whether every infinite execution of the Kripke
// structure built by model satisfies formulaText (§6). It returns
// (nil, nil) when the property holds on all executions, a non-nil
// Lasso when it is violated somewhere, and a non-nil error when the
// formula fails to parse or the model is invalid.
//
// The automata-theoretic approach: a Kripke structure satisfies φ iff
// its language, intersected with the language of ¬φ, is empty. So the
// property automaton is built from the formula's *negation*; a
// nonempty intersection is therefore a genuine counterexample to φ.
func Check(model *kripke.Builder, formulaText string) (*Lasso, error) {
	formula, apIDs, err := ltl.Parse(formulaText)
	if err != nil {
		return nil, wrap(err)
	}

	modelBA, err := model.Build(apIDs)
	if err != nil {
		return nil, wrap(err)
	}

	apCount := uint8(len(apIDs))
	negated := ltl.Not(formula)
	gba := tableau.Build(negated, apCount)
	propertyBA := automaton.Degeneralize(gba)

	product, err := automaton.Product(modelBA, propertyBA)
	if err != nil {
		// APCount always matches here (both built from the same apIDs),
		// so this can only indicate an internal inconsistency.
		return nil, wrap(err)
	}

	lasso := emptiness.Check(product)
	if lasso == nil {
		return nil, nil
	}

	return &Lasso{
		Prefix: toLassoSteps(lasso.Prefix),
		Cycle:  toLassoSteps(lasso.Cycle),
	}, nil
}
