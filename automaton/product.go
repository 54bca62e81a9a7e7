package automaton

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// ProductState is the per-state annotation of a product automaton: the
// two operands' annotations plus the degeneralization plane (always 0
// when the product took the fast, single-operand-accepting path).
type ProductState[P, Q any] struct {
	Left  P
	Right Q
	Plane uint8
}

// pairInfo is the bare (left, right) annotation used while the pair
// topology is built, before a plane index (if any) is known.
type pairInfo[P, Q any] struct {
	Left  P
	Right Q
}

// Product computes the synchronous product of two Büchi automata over
// the same AP alphabet (§4.G): (p,q) -σ-> (p',q') iff p -σ-> p' in a1 and
// q -σ-> q' in a2.
//
//   - If a1 is fully accepting (as every §4.F Kripke encoding is), the
//     product accepts (p,q) iff q is accepting in a2 — no
//     degeneralization needed.
//   - If a2 is fully accepting instead, operands are swapped and the
//     result's annotation is un-swapped to match the caller's (a1, a2)
//     order.
//   - Otherwise neither side has a single all-sufficient acceptance
//     condition: the product is built as a 2-set generalized Büchi
//     automaton (F1 from a1's acceptance, F2 from a2's) and degeneralized.
//     This is the case original_source/lib/src/buechi/product.rs left as
//     `todo!("Only simple product automata implemented until now.")`.
func Product[P, Q any](a1 *BA[P], a2 *BA[Q]) (*BA[ProductState[P, Q]], error) {
	if a1.APCount != a2.APCount {
		return nil, fmt.Errorf("automaton: product operands disagree on AP count (%d vs %d)", a1.APCount, a2.APCount)
	}

	switch {
	case a1.AllAccepting():
		return simpleProduct(a1, a2), nil
	case a2.AllAccepting():
		swapped := simpleProduct(a2, a1)
		return swapProductAnnotation[Q, P](swapped), nil
	default:
		return generalProduct(a1, a2), nil
	}
}

func buildPairTopology[P, Q any](a1 *BA[P], a2 *BA[Q]) (*Transitions, []pairInfo[P, Q], StateID) {
	n1, n2 := int(a1.NumStates()), int(a2.NumStates())
	infos := make([]pairInfo[P, Q], n1*n2)
	for p := 0; p < n1; p++ {
		for q := 0; q < n2; q++ {
			infos[p*n2+q] = pairInfo[P, Q]{Left: a1.StateInfo[p], Right: a2.StateInfo[q]}
		}
	}

	trans := NewTransitions(n1 * n2)
	for _, tr := range a1.Trans.All() {
		from1, to1 := int(tr.From), int(tr.To)
		for from2 := 0; from2 < n2; from2++ {
			for _, to2 := range a2.Trans.FromWithSymbol(StateID(from2), tr.Symbol) {
				trans.Add(
					StateID(from1*n2+from2),
					tr.Symbol,
					StateID(to1*n2+int(to2)),
				)
			}
		}
	}

	start := StateID(int(a1.Start)*n2 + int(a2.Start))
	return trans, infos, start
}

// simpleProduct implements §4.G's fast path: allAccepting must already be
// fully accepting; the result accepts exactly where other does.
func simpleProduct[P, Q any](allAccepting *BA[P], other *BA[Q]) *BA[ProductState[P, Q]] {
	trans, infos, start := buildPairTopology(allAccepting, other)
	n2 := int(other.NumStates())

	accept := bitset.New(uint(len(infos)))
	for p := 0; p < int(allAccepting.NumStates()); p++ {
		for q := 0; q < n2; q++ {
			if other.Accept.Test(uint(q)) {
				accept.Set(uint(p*n2 + q))
			}
		}
	}

	out := make([]ProductState[P, Q], len(infos))
	for i, pi := range infos {
		out[i] = ProductState[P, Q]{Left: pi.Left, Right: pi.Right, Plane: 0}
	}

	return &BA[ProductState[P, Q]]{
		StateInfo: out,
		APCount:   allAccepting.APCount,
		Start:     start,
		Trans:     trans,
		Accept:    accept,
	}
}

// generalProduct implements §4.G's general case: builds the pair
// topology as a 2-set GBA (one set per operand's acceptance) and
// degeneralizes it.
func generalProduct[P, Q any](a1 *BA[P], a2 *BA[Q]) *BA[ProductState[P, Q]] {
	trans, infos, start := buildPairTopology(a1, a2)
	n2 := int(a2.NumStates())

	f1 := bitset.New(uint(len(infos)))
	f2 := bitset.New(uint(len(infos)))
	for p := 0; p < int(a1.NumStates()); p++ {
		for q := 0; q < n2; q++ {
			idx := uint(p*n2 + q)
			if a1.Accept.Test(uint(p)) {
				f1.Set(idx)
			}
			if a2.Accept.Test(uint(q)) {
				f2.Set(idx)
			}
		}
	}

	g := &GBA[pairInfo[P, Q]]{
		StateInfo: infos,
		APCount:   a1.APCount,
		Start:     start,
		Trans:     trans,
		Accepting: []*bitset.BitSet{f1, f2},
	}
	degeneralized := Degeneralize(g)

	out := make([]ProductState[P, Q], len(degeneralized.StateInfo))
	for i, pl := range degeneralized.StateInfo {
		out[i] = ProductState[P, Q]{Left: pl.Info.Left, Right: pl.Info.Right, Plane: pl.Plane}
	}

	return &BA[ProductState[P, Q]]{
		StateInfo: out,
		APCount:   degeneralized.APCount,
		Start:     degeneralized.Start,
		Trans:     degeneralized.Trans,
		Accept:    degeneralized.Accept,
	}
}

func swapProductAnnotation[Q, P any](b *BA[ProductState[Q, P]]) *BA[ProductState[P, Q]] {
	out := make([]ProductState[P, Q], len(b.StateInfo))
	for i, s := range b.StateInfo {
		out[i] = ProductState[P, Q]{Left: s.Right, Right: s.Left, Plane: s.Plane}
	}
	return &BA[ProductState[P, Q]]{
		StateInfo: out,
		APCount:   b.APCount,
		Start:     b.Start,
		Trans:     b.Trans,
		Accept:    b.Accept,
	}
}
