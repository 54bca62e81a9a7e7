package kripke

// ModelError is the error kind surfaced by Builder.Build (§4.F, §7).
type ModelError int

const (
	// ModelNoStart: no Kripke state was marked as a start state.
	ModelNoStart ModelError = iota
	// ModelInvalid: a transition referenced a state id that was never added.
	ModelInvalid
)

func (e ModelError) Error() string {
	switch e {
	case ModelNoStart:
		return "kripke: no start state declared"
	case ModelInvalid:
		return "kripke: transition references an undeclared state"
	default:
		return "kripke: unknown model error"
	}
}
