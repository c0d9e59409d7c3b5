package brackets

import "errors"

var (
	ErrPhaseIncomplete = errors.New("previous phase has matches without a valid score")
	ErrNotEnoughGroups = errors.New("at least two groups with two ranked teams are required")
	ErrBracketShape    = errors.New("finals require exactly two semifinals")
	ErrInvalidScore    = errors.New("score is not a valid volleyball set result")
	ErrNegativeScore   = errors.New("score must not be negative")
	ErrMatchNotFound   = errors.New("match not found")
	ErrPhaseClosed     = errors.New("group phase is closed, knockout matches already exist")
)
