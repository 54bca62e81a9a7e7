// Package emptiness decides Büchi automaton language emptiness via
// nested depth-first search (§4.H) and, when the language is
// nonempty, extracts a counterexample lasso.
//
// Grounded on the *shape* of original_source/lib/src/buechi.rs's
// dfs/dfs_cycle/is_empty, but not its exact control flow: that
// implementation clears outer_finished right after setting it and
// always returns false from dfs, so is_empty is unconditionally true.
// This follows the classical Courcoubetis-Vardi-Wolper formulation
// instead (outer visited flags plus the live outer stack, and a
// per-seed inner search for a cycle back to the seed), as noted
// as an open question for implementers to resolve.
package emptiness

import "github.com/justusdieckmann/model-checker/automaton"

// Lasso is a counterexample witness: a finite path from the automaton's
// start state to an accepting state, followed by a cycle back to that
// same state. Cycle[0] and Cycle[len(Cycle)-1] are the same state
// (equal to Prefix's last element).
type Lasso[T any] struct {
	Prefix []T
	Cycle  []T
}

// Check runs nested DFS over ba and returns a lasso witnessing a
// nonempty language, or nil if L(ba) is empty.
func Check[T any](ba *automaton.BA[T]) *Lasso[T] {
	n := int(ba.NumStates())
	c := &checker{
		succ: func(v automaton.StateID) []automaton.StateID {
			return ba.Trans.NextStates(v)
		},
		accept:       func(v automaton.StateID) bool { return ba.Accept.Test(uint(v)) },
		n:            n,
		outerStarted: make([]bool, n),
	}

	if !c.outerDFS(ba.Start) || c.result == nil {
		return nil
	}

	prefix := make([]T, len(c.result.prefix))
	for i, s := range c.result.prefix {
		prefix[i] = ba.StateInfo[s]
	}
	cycle := make([]T, len(c.result.cycle))
	for i, s := range c.result.cycle {
		cycle[i] = ba.StateInfo[s]
	}
	return &Lasso[T]{Prefix: prefix, Cycle: cycle}
}

type rawLasso struct {
	prefix []automaton.StateID
	cycle  []automaton.StateID
}

// checker carries the nested-DFS working state over a state-ID space;
// it is generic-parameter-free so the recursion itself never touches
// the caller's annotation type T.
type checker struct {
	succ   func(automaton.StateID) []automaton.StateID
	accept func(automaton.StateID) bool
	n      int

	outerStarted []bool
	outerStack   []automaton.StateID
	result       *rawLasso
}

// outerDFS is the outer pass of nested DFS (§4.H): visits each state at
// most once, and on post-order exit from an accepting state launches an
// inner search for a cycle back to it.
func (c *checker) outerDFS(v automaton.StateID) bool {
	c.outerStarted[v] = true
	c.outerStack = append(c.outerStack, v)

	for _, w := range c.succ(v) {
		if !c.outerStarted[w] {
			if c.outerDFS(w) {
				return true
			}
		}
	}

	if c.accept(v) {
		if cyclePath, found := c.innerDFS(v); found {
			c.result = &rawLasso{
				prefix: append([]automaton.StateID(nil), c.outerStack...),
				cycle:  cyclePath,
			}
			return true
		}
	}

	c.outerStack = c.outerStack[:len(c.outerStack)-1]
	return false
}

// innerDFS searches the subgraph reachable from seed for an edge back
// to seed itself, which (combined with the outer-stack path that
// already reaches seed) completes the lasso's cycle.
func (c *checker) innerDFS(seed automaton.StateID) ([]automaton.StateID, bool) {
	visited := make([]bool, c.n)
	var path []automaton.StateID

	var dfs func(v automaton.StateID) bool
	dfs = func(v automaton.StateID) bool {
		visited[v] = true
		path = append(path, v)
		for _, w := range c.succ(v) {
			if w == seed {
				path = append(path, seed)
				return true
			}
			if !visited[w] {
				if dfs(w) {
					return true
				}
			}
		}
		path = path[:len(path)-1]
		return false
	}

	found := dfs(seed)
	return path, found
}
