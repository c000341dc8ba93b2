package models

// ParticipantKind tags what Participant.Ref points at.
type ParticipantKind string

const (
	ParticipantPlayer ParticipantKind = "player"
	ParticipantTeam   ParticipantKind = "team"
	// ParticipantBye marks an explicitly empty slot; Ref is ignored.
	ParticipantBye ParticipantKind = "bye"
)

// Expected Participant.Position labels for the two slots of a match.
const (
	PositionFirst  = "Player 1"
	PositionSecond = "Player 2"
)

// Participant is a competitor slot inside a Match.
type Participant struct {
	Kind     ParticipantKind `json:"kind" yaml:"kind" db:"kind"`
	Ref      string          `json:"ref,omitempty" yaml:"ref,omitempty" db:"ref"`
	Position string          `json:"position,omitempty" yaml:"position,omitempty" db:"position"`
}

func (p Participant) IsBye() bool {
	return p.Kind == ParticipantBye
}
