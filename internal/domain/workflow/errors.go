package workflow

import "errors"

var (
	ErrTransitionNotAllowed      = errors.New("transition not allowed")
	ErrRecalcIntentRequired      = errors.New("recalculation intent required for future-dated termination")
	ErrRecalcIntentNotApplicable = errors.New("recalculation intent only applies to future-dated termination")
	ErrRemovalLineLocked         = errors.New("removal line decision is not editable")
	ErrInvalidWiringType         = errors.New("invalid wiring type")
	ErrInvalidOutcome            = errors.New("invalid removal outcome")
	ErrInvalidReason             = errors.New("invalid incomplete reason")
	ErrWiringTypeRequired        = errors.New("wiring type must be set first")
	ErrReasonNotApplicable       = errors.New("reason only applies to incomplete removal")
)
