// Package tableau implements the LTL-to-generalized-Büchi tableau
// construction (§4.C): each candidate automaton state is a bit-packed
// 64-bit word, one bit per AP and one bit per distinct Next/Until
// subformula, enumerated bottom-up over the formula tree.
//
// Grounded on original_source/lib/src/buechi/ltl_to_buechi.rs.
package tableau

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/justusdieckmann/model-checker/automaton"
	"github.com/justusdieckmann/model-checker/ltl"
)

// State is a tableau candidate state: bits 0..apCount-1 hold the AP
// valuation, bits apCount.. hold one bit per Next/Until subformula
// encountered during construction.
type State uint64

func (s State) String() string {
	return fmt.Sprintf("%#016x", uint64(s))
}

// valueExpr is a compiled predicate over tableau states (AND/NOT/bit
// lookup), built once per distinct subformula and evaluated repeatedly
// against every candidate state during transition-predicate checking.
type valueExpr struct {
	kind exprKind
	a, b *valueExpr
	bit  uint8
}

type exprKind int

const (
	exprAnd exprKind = iota
	exprNot
	exprLookup
)

func lookupExpr(bit uint8) *valueExpr  { return &valueExpr{kind: exprLookup, bit: bit} }
func notExpr(a *valueExpr) *valueExpr  { return &valueExpr{kind: exprNot, a: a} }
func andExpr(a, b *valueExpr) *valueExpr {
	return &valueExpr{kind: exprAnd, a: a, b: b}
}

func (v *valueExpr) eval(s State) bool {
	switch v.kind {
	case exprAnd:
		return v.a.eval(s) && v.b.eval(s)
	case exprNot:
		return !v.a.eval(s)
	case exprLookup:
		return s&(1<<v.bit) != 0
	default:
		panic("tableau: unreachable valueExpr kind")
	}
}

// constraint is a local transition-validity check (§4.C): one per Next
// or Until subformula, evaluated over every candidate (s, s') pair.
type constraint struct {
	kind constraintKind
	// Next
	xphi, phi *valueExpr
	// Until
	phi1, phi2, phi1UntilPhi2 *valueExpr
}

type constraintKind int

const (
	constraintNext constraintKind = iota
	constraintUntil
)

func (c *constraint) satisfies(q1, q2 State) bool {
	switch c.kind {
	case constraintNext:
		return c.xphi.eval(q1) == c.phi.eval(q2)
	case constraintUntil:
		q1HasUntil := c.phi1UntilPhi2.eval(q1)
		return (q1HasUntil && c.phi2.eval(q1)) ||
			(!q1HasUntil && !c.phi1.eval(q1)) ||
			(q1HasUntil == c.phi1UntilPhi2.eval(q2))
	default:
		panic("tableau: unreachable constraint kind")
	}
}

// builder accumulates candidate states, constraints, and accepting-set
// predicates while walking the formula tree bottom-up.
type builder struct {
	states      []State
	constraints []*constraint
	acceptExprs []*valueExpr
	memo        map[ltl.Formula]*valueExpr
	bitsUsed    uint8
}

// compile walks f bottom-up, doubling the candidate state set as each
// AP/Next/Until subformula is encountered, and returns the compiled
// predicate for f itself. Structurally equal subformulas are memoized
// (the memo is keyed by Formula value) so their bit is reused rather
// than re-allocated.
func (b *builder) compile(f ltl.Formula) *valueExpr {
	if v, ok := b.memo[f]; ok {
		return v
	}

	var v *valueExpr
	switch n := f.(type) {
	case ltl.Atomic:
		v = b.compileAtomic(n)
	case ltl.Negation:
		v = notExpr(b.compile(n.Operand))
	case ltl.Conjunction:
		v = andExpr(b.compile(n.Left), b.compile(n.Right))
	case ltl.NextOp:
		v = b.compileNext(n)
	case ltl.UntilOp:
		v = b.compileUntil(n)
	default:
		panic(fmt.Sprintf("tableau: unreachable formula type %T", f))
	}

	b.memo[f] = v
	return v
}

func (b *builder) compileAtomic(n ltl.Atomic) *valueExpr {
	bit := uint8(n.AP)
	tmp := make([]State, 0, len(b.states))
	for _, s := range b.states {
		tmp = append(tmp, s|(1<<bit))
	}
	b.states = append(b.states, tmp...)
	return lookupExpr(bit)
}

func (b *builder) compileNext(n ltl.NextOp) *valueExpr {
	val := b.compile(n.Operand)
	bit := b.bitsUsed
	b.bitsUsed++

	tmp := make([]State, 0, len(b.states))
	for _, s := range b.states {
		tmp = append(tmp, s|(1<<bit))
	}
	b.states = append(b.states, tmp...)

	b.constraints = append(b.constraints, &constraint{
		kind: constraintNext,
		xphi: lookupExpr(bit),
		phi:  val,
	})
	return lookupExpr(bit)
}

func (b *builder) compileUntil(n ltl.UntilOp) *valueExpr {
	val1 := b.compile(n.Left)
	val2 := b.compile(n.Right)
	bit := b.bitsUsed
	b.bitsUsed++

	n0 := len(b.states)
	var tmp []State
	for i := 0; i < n0; i++ {
		s := b.states[i]
		switch {
		case val2.eval(s):
			b.states[i] = s | (1 << bit)
		case val1.eval(s):
			tmp = append(tmp, s|(1<<bit))
		}
	}
	b.states = append(b.states, tmp...)

	untilBit := lookupExpr(bit)
	b.constraints = append(b.constraints, &constraint{
		kind:          constraintUntil,
		phi1:          val1,
		phi2:          val2,
		phi1UntilPhi2: untilBit,
	})
	// F_j = { s : not (bit_b(s) and not eval(phi2, s)) } — the pending
	// Until obligation must eventually be discharged.
	b.acceptExprs = append(b.acceptExprs, notExpr(andExpr(untilBit, notExpr(val2))))
	return untilBit
}

// Build runs the tableau construction (§4.C) over formula, whose APs
// are numbered 0..apCount-1 (as returned by ltl.Parse), producing a
// generalized Büchi automaton with one accepting set per Until
// subformula.
func Build(formula ltl.Formula, apCount uint8) *automaton.GBA[State] {
	apBitmask := State(1)<<apCount - 1

	b := &builder{
		states:   []State{0},
		memo:     make(map[ltl.Formula]*valueExpr),
		bitsUsed: apCount,
	}
	complete := b.compile(formula)

	numRealStates := len(b.states)
	startID := automaton.StateID(numRealStates)
	amountStates := numRealStates + 1

	trans := automaton.NewTransitions(amountStates)
	acceptSets := make([]*bitset.BitSet, len(b.acceptExprs))
	for i := range acceptSets {
		acceptSets[i] = bitset.New(uint(amountStates))
	}

	for i, s := range b.states {
		for i2, s2 := range b.states {
			ok := true
			for _, c := range b.constraints {
				if !c.satisfies(s, s2) {
					ok = false
					break
				}
			}
			if ok {
				trans.Add(automaton.StateID(i), automaton.Symbol(s2&apBitmask), automaton.StateID(i2))
			}
		}
		if complete.eval(s) {
			trans.Add(startID, automaton.Symbol(s&apBitmask), automaton.StateID(i))
		}
		for i2, expr := range b.acceptExprs {
			if expr.eval(s) {
				acceptSets[i2].Set(uint(i))
			}
		}
	}

	stateInfo := make([]State, amountStates)
	copy(stateInfo, b.states)
	stateInfo[numRealStates] = State(^uint64(0)) // synthetic start sentinel, never accepting

	return &automaton.GBA[State]{
		StateInfo: stateInfo,
		APCount:   apCount,
		Start:     startID,
		Trans:     trans,
		Accepting: acceptSets,
	}
}
