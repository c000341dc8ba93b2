package models

import "time"

type MatchStatus string

const (
	MatchStatusScheduled  MatchStatus = "scheduled"
	MatchStatusInProgress MatchStatus = "in_progress"
	MatchStatusCompleted  MatchStatus = "completed"
)

func (s MatchStatus) Valid() bool {
	switch s {
	case MatchStatusScheduled, MatchStatusInProgress, MatchStatusCompleted:
		return true
	}
	return false
}

// Round is one of the canonical knockout stages. Its value is the exact
// label organizers use in Match.RoundLabel.
type Round string

const (
	RoundPreliminary  Round = "Preliminary"
	RoundQuarterfinal Round = "Quarterfinal"
	RoundSemifinal    Round = "Semifinal"
	RoundBronze       Round = "Bronze"
	RoundFinal        Round = "Final"
)

// Match is one head-to-head contest as produced by the scheduling subsystem.
type Match struct {
	ID            string        `json:"id" yaml:"id" db:"id"`
	RoundLabel    string        `json:"round_label" yaml:"round_label" db:"round_label"`
	DisplayName   string        `json:"display_name" yaml:"display_name" db:"display_name"`
	Participants  []Participant `json:"participants" yaml:"participants" db:"-"`
	Status        MatchStatus   `json:"status" yaml:"status" db:"status"`
	WinnerRef     *string       `json:"winner_ref,omitempty" yaml:"winner_ref,omitempty" db:"winner_ref"`
	ScheduledTime *time.Time    `json:"scheduled_time,omitempty" yaml:"scheduled_time,omitempty" db:"scheduled_time"`
	CompletedTime *time.Time    `json:"completed_time,omitempty" yaml:"completed_time,omitempty" db:"completed_time"`
}
