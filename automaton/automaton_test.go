package automaton

import (
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func acceptSet(n int, members ...int) *bitset.BitSet {
	b := bitset.New(uint(n))
	for _, m := range members {
		b.Set(uint(m))
	}
	return b
}

// TestDegeneralizeZeroSets exercises the m==0 case: every state accepts.
func TestDegeneralizeZeroSets(t *testing.T) {
	trans := NewTransitions(2)
	trans.Add(0, 0, 1)
	trans.Add(1, 0, 0)
	g := &GBA[string]{
		StateInfo: []string{"s0", "s1"},
		APCount:   1,
		Start:     0,
		Trans:     trans,
		Accepting: nil,
	}
	b := Degeneralize(g)
	assert.True(t, b.AllAccepting())
	assert.Equal(t, uint64(2), b.NumStates())
}

// TestDegeneralizeOneSet exercises the m==1 passthrough case.
func TestDegeneralizeOneSet(t *testing.T) {
	trans := NewTransitions(2)
	trans.Add(0, 0, 1)
	trans.Add(1, 0, 0)
	g := &GBA[string]{
		StateInfo: []string{"s0", "s1"},
		APCount:   1,
		Start:     0,
		Trans:     trans,
		Accepting: []*bitset.BitSet{acceptSet(2, 1)},
	}
	b := Degeneralize(g)
	assert.False(t, b.Accept.Test(0))
	assert.True(t, b.Accept.Test(1))
}

// TestDegeneralizeTwoSets exercises testable property 5: a run visiting
// F0 and F1 infinitely often must pass through the final plane
// infinitely often in the degeneralized automaton.
func TestDegeneralizeTwoSets(t *testing.T) {
	// Two states, each in one of the two accepting sets, cycling between
	// each other: s0 -> s1 -> s0 ...
	trans := NewTransitions(2)
	trans.Add(0, 0, 1)
	trans.Add(1, 0, 0)
	g := &GBA[string]{
		StateInfo: []string{"s0", "s1"},
		APCount:   1,
		Start:     0,
		Trans:     trans,
		Accepting: []*bitset.BitSet{acceptSet(2, 0), acceptSet(2, 1)},
	}
	b := Degeneralize(g)
	require.Equal(t, uint64(4), b.NumStates())

	// Plane 0, state s0 (index 0) is in F0, so it advances to plane 1 on
	// its outgoing edge.
	edges := b.Trans.From(0)
	require.Len(t, edges, 1)
	assert.Equal(t, StateID(1*2+1), edges[0].To) // plane 1, state s1

	// Only plane 1's F1-states are accepting: state s1 is index 1, so
	// plane*n+1 = 1*2+1 = 3.
	assert.True(t, b.Accept.Test(3))
	assert.False(t, b.Accept.Test(0))
	assert.False(t, b.Accept.Test(1))
	assert.False(t, b.Accept.Test(2))
}

func trivialAllAccepting(numStates int, apCount uint8) *BA[int] {
	trans := NewTransitions(numStates)
	info := make([]int, numStates)
	accept := bitset.New(uint(numStates))
	for i := range info {
		info[i] = i
		accept.Set(uint(i))
	}
	return &BA[int]{StateInfo: info, APCount: apCount, Start: 0, Trans: trans, Accept: accept}
}

// TestProductSimpleFastPath exercises the a1-fully-accepting branch: a
// 1-state fully accepting automaton times a 2-state automaton with a
// single accepting state should accept exactly where the second operand
// does, and have no "extra" plane dimension.
func TestProductSimpleFastPath(t *testing.T) {
	a1 := trivialAllAccepting(1, 1)
	a1.Trans.Add(0, 0, 0)
	a1.Trans.Add(0, 1, 0)

	a2trans := NewTransitions(2)
	a2trans.Add(0, 0, 1)
	a2trans.Add(1, 1, 0)
	a2 := &BA[string]{
		StateInfo: []string{"q0", "q1"},
		APCount:   1,
		Start:     0,
		Trans:     a2trans,
		Accept:    acceptSet(2, 1),
	}

	got, err := Product(a1, a2)
	require.NoError(t, err)
	require.Equal(t, uint64(2), got.NumStates())

	// Pair index = p*n2+q = 0*2+q = q.
	assert.False(t, got.Accept.Test(0))
	assert.True(t, got.Accept.Test(1))
	assert.Equal(t, uint8(0), got.StateInfo[0].Plane)
}

// TestProductAPCountMismatch exercises the error path instead of a panic.
func TestProductAPCountMismatch(t *testing.T) {
	a1 := trivialAllAccepting(1, 1)
	a2 := trivialAllAccepting(1, 2)
	_, err := Product(a1, a2)
	require.Error(t, err)
}

// TestProductGeneralCase exercises testable property 9 / scenario S7:
// neither operand is fully accepting, so the general (degeneralizing)
// path must run. Two 2-state automata, each with a single accepting
// self-loop state reachable via a distinct symbol, product to an
// automaton whose accepting run requires visiting both operands'
// accepting states infinitely often.
func TestProductGeneralCase(t *testing.T) {
	t1 := NewTransitions(2)
	t1.Add(0, 0, 0)
	t1.Add(0, 1, 1)
	t1.Add(1, 0, 0)
	t1.Add(1, 1, 1)
	a1 := &BA[string]{
		StateInfo: []string{"p0", "p1"},
		APCount:   1,
		Start:     0,
		Trans:     t1,
		Accept:    acceptSet(2, 1),
	}

	t2 := NewTransitions(2)
	t2.Add(0, 0, 1)
	t2.Add(0, 1, 0)
	t2.Add(1, 0, 1)
	t2.Add(1, 1, 0)
	a2 := &BA[string]{
		StateInfo: []string{"q0", "q1"},
		APCount:   1,
		Start:     0,
		Trans:     t2,
		Accept:    acceptSet(2, 1),
	}

	require.False(t, a1.AllAccepting())
	require.False(t, a2.AllAccepting())

	got, err := Product(a1, a2)
	require.NoError(t, err)
	// Degeneralized over 2 sets: 2*2 pair-states * 2 planes.
	assert.Equal(t, uint64(8), got.NumStates())

	// Determinism: rebuilding from the same inputs must produce an
	// identical transition ordering (testable property 6).
	got2, err := Product(a1, a2)
	require.NoError(t, err)
	assert.Equal(t, got.Trans.All(), got2.Trans.All())
}

// TestTransitionsDeterministicOrder exercises testable property 6 at the
// Transitions level directly: insertion order is preserved and repeat
// triples dedupe.
func TestTransitionsDeterministicOrder(t *testing.T) {
	tr := NewTransitions(2)
	tr.Add(0, 3, 1)
	tr.Add(0, 1, 0)
	tr.Add(0, 3, 1) // duplicate, must not re-append
	tr.Add(0, 2, 1)

	got := tr.From(0)
	want := []Edge{{Symbol: 3, To: 1}, {Symbol: 1, To: 0}, {Symbol: 2, To: 1}}
	assert.Equal(t, want, got)
}
