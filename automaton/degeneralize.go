package automaton

import "github.com/bits-and-blooms/bitset"

// Plane pairs a GBA's original per-state annotation with the
// degeneralization plane the state ended up on.
type Plane[T any] struct {
	Info  T
	Plane uint8
}

// Degeneralize converts a generalized Büchi automaton into an equivalent
// plain Büchi automaton (§4.E).
//
//   - m == 0 accepting sets: every state accepts.
//   - m == 1: the single set is copied through unchanged.
//   - m >= 2: m stacked copies ("planes") of the state set. A transition
//     (s, σ, s') becomes (i,s) -σ-> (i',s') where i' = (i+1) mod m if
//     s ∈ F_i, else i' = i. The final accepting set is exactly the pairs
//     (m-1, s) with s ∈ F_{m-1}.
//
// Grounded on original_source/lib/src/buechi.rs's
// `Büchi::from_generalized_büchi`.
func Degeneralize[T any](g *GBA[T]) *BA[Plane[T]] {
	n := len(g.StateInfo)
	m := len(g.Accepting)

	if m == 0 {
		info := make([]Plane[T], n)
		accept := bitset.New(uint(n))
		for i, v := range g.StateInfo {
			info[i] = Plane[T]{Info: v, Plane: 0}
			accept.Set(uint(i))
		}
		return &BA[Plane[T]]{
			StateInfo: info,
			APCount:   g.APCount,
			Start:     g.Start,
			Trans:     g.Trans,
			Accept:    accept,
		}
	}

	if m == 1 {
		info := make([]Plane[T], n)
		for i, v := range g.StateInfo {
			info[i] = Plane[T]{Info: v, Plane: 0}
		}
		return &BA[Plane[T]]{
			StateInfo: info,
			APCount:   g.APCount,
			Start:     g.Start,
			Trans:     g.Trans,
			Accept:    g.Accepting[0],
		}
	}

	infos := make([]Plane[T], 0, n*m)
	trans := NewTransitions(n * m)
	for plane := 0; plane < m; plane++ {
		for _, v := range g.StateInfo {
			infos = append(infos, Plane[T]{Info: v, Plane: uint8(plane)})
		}
		for _, tr := range g.Trans.All() {
			targetPlane := plane
			if g.Accepting[plane].Test(uint(tr.From)) {
				targetPlane = (plane + 1) % m
			}
			trans.Add(
				StateID(plane*n)+tr.From,
				tr.Symbol,
				StateID(targetPlane*n)+tr.To,
			)
		}
	}

	accept := bitset.New(uint(n * m))
	lastSet := g.Accepting[m-1]
	offset := uint((m - 1) * n)
	for s := uint(0); s < uint(n); s++ {
		if lastSet.Test(s) {
			accept.Set(offset + s)
		}
	}

	return &BA[Plane[T]]{
		StateInfo: infos,
		APCount:   g.APCount,
		Start:     g.Start, // plane 0, same raw index
		Trans:     trans,
		Accept:    accept,
	}
}
