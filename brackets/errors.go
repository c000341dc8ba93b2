package brackets

import "errors"

// Contract violations. Incomplete tournament data never produces these;
// they mean the upstream producer sent something it should not have.
var (
	ErrUnknownParticipantKind = errors.New("participant kind must be player, team or bye")
	ErrMissingParticipantRef  = errors.New("participant has no ref and is not a bye")
	ErrTooManyParticipants    = errors.New("match has more than two participants")
	ErrUnknownMatchStatus     = errors.New("match status must be scheduled, in_progress or completed")
	ErrMissingPerformerRef    = errors.New("performance has no performer ref")
	ErrInvalidPlace           = errors.New("performance place must be a positive integer")
	ErrInvalidFinalScore      = errors.New("performance final score must be a finite number")
)
