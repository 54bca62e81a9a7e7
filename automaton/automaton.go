// Package automaton implements generalized and plain Büchi automata over
// atomic-proposition valuations: the shared representation the tableau
// construction (package tableau), the Kripke encoder (package kripke),
// degeneralization, and the synchronous product all operate on.
//
// Automata are parameterized by an opaque per-state annotation type T, so
// a pipeline stage can carry along whatever debugging information is
// useful (the tableau's bit-packed state word, a Kripke state's caller
// ID, a degeneralization plane index) without a family of near-identical
// structs — following the same shape as the original Rust
// `GeneralizedBüchi<T>` / `Büchi<T>`.
package automaton

import "github.com/bits-and-blooms/bitset"

// StateID is a dense, zero-based automaton state index.
type StateID uint64

// Symbol is an AP valuation: bit i set iff AP i holds.
type Symbol uint64

// GBA is a generalized Büchi automaton: multiple accepting sets, all of
// which an accepting run must visit infinitely often.
type GBA[T any] struct {
	StateInfo []T
	APCount   uint8
	Start     StateID
	Trans     *Transitions
	// Accepting holds one bitset.BitSet per accepting set F_1..F_m, each
	// sized to len(StateInfo).
	Accepting []*bitset.BitSet
}

// BA is a plain Büchi automaton: a single accepting set.
type BA[T any] struct {
	StateInfo []T
	APCount   uint8
	Start     StateID
	Trans     *Transitions
	Accept    *bitset.BitSet
}

// NumStates returns the number of states in the automaton.
func (g *GBA[T]) NumStates() uint64 { return uint64(len(g.StateInfo)) }

// NumStates returns the number of states in the automaton.
func (b *BA[T]) NumStates() uint64 { return uint64(len(b.StateInfo)) }

// AllAccepting reports whether every state is in the accepting set —
// the shape §4.F's Kripke encoding always produces, and the condition
// the product construction (§4.G) uses to pick its fast path.
func (b *BA[T]) AllAccepting() bool {
	n := uint(len(b.StateInfo))
	for i := uint(0); i < n; i++ {
		if !b.Accept.Test(i) {
			return false
		}
	}
	return true
}
