package modelchecker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justusdieckmann/model-checker/kripke"
	"github.com/justusdieckmann/model-checker/ltl"
)

// TestS1PropertyHolds: K = {a}<->{b}; G(a|b) holds on every execution.
func TestS1PropertyHolds(t *testing.T) {
	lasso, err := Check(NewAlternatingExample(), "G(a|b)")
	require.NoError(t, err)
	assert.Nil(t, lasso)
}

// TestS2PropertyViolated: K = {a}<->{b}; G(a&b) is violated by every
// execution, since no state satisfies both a and b simultaneously. The
// returned lasso must alternate between the two Kripke states.
func TestS2PropertyViolated(t *testing.T) {
	lasso, err := Check(NewAlternatingExample(), "G(a&b)")
	require.NoError(t, err)
	require.NotNil(t, lasso)

	require.NotEmpty(t, lasso.Cycle)
	seen := map[uint64]bool{}
	for _, step := range lasso.Cycle {
		seen[step.KripkeStateID] = true
	}
	assert.True(t, seen[1] && seen[2], "cycle should alternate between both Kripke states")
}

// TestS3FormulaNoAPs exercises §4.A: a formula mentioning zero atomic
// propositions (only the true/false literals) is rejected before
// reaching the tableau stage.
func TestS3FormulaNoAPs(t *testing.T) {
	_, err := Check(NewSelfLoopExample(), "1")
	require.Error(t, err)
	assert.True(t, IsFormulaNoAPs(err))
}

// TestS3ViolationOnUnlabeledState: the self-loop state has no AP
// labels at all, so the bare property "a" (required to hold at the
// very first step) is violated immediately.
func TestS3ViolationOnUnlabeledState(t *testing.T) {
	lasso, err := Check(NewSelfLoopExample(), "a")
	require.NoError(t, err)
	require.NotNil(t, lasso)
}

// TestS4DeadStateViolatesGloballyP exercises the synthesized dead
// state: a single state {p} with no outgoing transition is made total
// by an edge to a dead state that fails p, so G p is violated.
func TestS4DeadStateViolatesGloballyP(t *testing.T) {
	lasso, err := Check(NewDeadEndExample(), "Gp")
	require.NoError(t, err)
	require.NotNil(t, lasso)
}

// TestS5ModelNoStart exercises §4.F's invariant: a Kripke structure
// with no declared start state is rejected.
func TestS5ModelNoStart(t *testing.T) {
	_, err := Check(NewNoStartExample(), "p")
	require.Error(t, err)
	assert.True(t, IsModelNoStart(err))
}

// TestModelInvalidTransition exercises §4.F's second invariant: a
// transition referencing an undeclared state id is rejected.
func TestModelInvalidTransition(t *testing.T) {
	b := kripke.NewBuilder()
	b.AddState(1, []string{"p"}, true)
	b.AddTransition(1, 42)

	_, err := Check(b, "p")
	require.Error(t, err)
	assert.True(t, IsModelInvalid(err))
}

// TestFormulaSyntaxErrorSurfaces exercises §7: a malformed formula
// surfaces its syntax error kind through the top-level error.
func TestFormulaSyntaxErrorSurfaces(t *testing.T) {
	_, err := Check(NewAlternatingExample(), "a&")
	require.Error(t, err)
	kind, ok := IsFormulaSyntax(err)
	require.True(t, ok)
	assert.Equal(t, ltl.MalformedExpression, kind)
}
