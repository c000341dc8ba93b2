package models

import "time"

type WinnerSlot string

const (
	WinnerNone   WinnerSlot = "none"
	WinnerFirst  WinnerSlot = "first"
	WinnerSecond WinnerSlot = "second"
)

// Slot is a resolved competitor position. A nil Participant means Bye.
type Slot struct {
	Participant *Participant `json:"participant,omitempty"`
	Bye         bool         `json:"bye"`
	Winner      bool         `json:"winner"`
}

func ByeSlot() Slot {
	return Slot{Bye: true}
}

// Ref returns the underlying player/team reference, or "" for a bye.
func (s Slot) Ref() string {
	if s.Bye || s.Participant == nil {
		return ""
	}
	return s.Participant.Ref
}

// BracketMatch is a Match as it appears in a built bracket.
type BracketMatch struct {
	ID            string      `json:"id"`
	RoundLabel    string      `json:"round_label"`
	DisplayName   string      `json:"display_name"`
	Status        MatchStatus `json:"status"`
	WinnerRef     *string     `json:"winner_ref,omitempty"`
	ScheduledTime *time.Time  `json:"scheduled_time,omitempty"`
	CompletedTime *time.Time  `json:"completed_time,omitempty"`
	First         Slot        `json:"first"`
	Second        Slot        `json:"second"`
	Winner        WinnerSlot  `json:"winner"`
}

type RoundGroup struct {
	Round   Round          `json:"round"`
	Matches []BracketMatch `json:"matches"`
}

type BracketResult struct {
	Rounds           []RoundGroup `json:"rounds"`
	ParticipantCount int          `json:"participant_count"`
	// Matches whose round label is not canonical. They never appear in Rounds.
	DroppedMatchIDs []string `json:"dropped_match_ids,omitempty"`
}
