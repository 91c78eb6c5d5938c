package wizard

import "errors"

// Sentinel errors returned by wizard transitions. None of them terminates the
// flow: the session stays on its current step with all entered data intact.
var (
	ErrValidationFailed  = errors.New("validation failed")
	ErrDecisionPending   = errors.New("duplicate decision pending")
	ErrNoPendingDecision = errors.New("no duplicate decision pending")
	ErrBusy              = errors.New("duplicate check in flight")
	ErrWrongStep         = errors.New("action not valid for current step")
	ErrCommitFailed      = errors.New("commit failed")
	ErrSuperseded        = errors.New("lookup response superseded")
	ErrNonArabicInput    = errors.New("non-arabic characters rejected")
	ErrInvalidValue      = errors.New("invalid value")
	ErrUnknownField      = errors.New("unknown field")
	ErrNoGuarantee       = errors.New("service carries no guarantee")
	ErrEndDateDerived    = errors.New("guarantee end date is derived, not editable")
	ErrNoSuchService     = errors.New("no such service")
)
