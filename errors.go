package modelchecker

import (
	"errors"
	"fmt"

	"github.com/justusdieckmann/model-checker/kripke"
	"github.com/justusdieckmann/model-checker/ltl"
)

// Error is the top-level error returned by Check (§7): every failure
// from formula parsing or model validation surfaces here, never as an
// ad-hoc recovery inside a pipeline stage.
type Error struct {
	Kind error
}

func (e *Error) Error() string {
	return fmt.Sprintf("model checker: %s", e.Kind)
}

func (e *Error) Unwrap() error { return e.Kind }

func wrap(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: err}
}

// IsModelNoStart reports whether err is (or wraps) a ModelNoStart error.
func IsModelNoStart(err error) bool {
	var e *Error
	return errors.As(err, &e) && errors.Is(e.Kind, kripke.ModelNoStart)
}

// IsModelInvalid reports whether err is (or wraps) a ModelInvalid error.
func IsModelInvalid(err error) bool {
	var e *Error
	return errors.As(err, &e) && errors.Is(e.Kind, kripke.ModelInvalid)
}

// IsFormulaNoAPs reports whether err is (or wraps) a FormulaNoAPs error.
func IsFormulaNoAPs(err error) bool {
	var e *Error
	return errors.As(err, &e) && errors.Is(e.Kind, ltl.ErrNoAPs)
}

// IsFormulaSyntax reports whether err is (or wraps) a FormulaSyntaxError,
// and if so returns its kind.
func IsFormulaSyntax(err error) (ltl.SyntaxErrorKind, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return 0, false
	}
	var synErr *ltl.SyntaxError
	if !errors.As(e.Kind, &synErr) {
		return 0, false
	}
	return synErr.Kind, true
}

// IsFormulaLex reports whether err is (or wraps) a lex error, and if so
// returns the byte offset of the unexpected character.
func IsFormulaLex(err error) (int, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return 0, false
	}
	var lexErr *ltl.LexError
	if !errors.As(e.Kind, &lexErr) {
		return 0, false
	}
	return lexErr.Offset, true
}
