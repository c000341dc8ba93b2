package models

import "time"

type TournamentStatus string

const (
	StatusSoon      TournamentStatus = "soon"
	StatusActive    TournamentStatus = "active"
	StatusCompleted TournamentStatus = "completed"
	StatusCanceled  TournamentStatus = "canceled"
)

// Tournament carries the event-level settings the engine needs from storage.
type Tournament struct {
	ID     int              `json:"id" db:"id"`
	Name   string           `json:"name" db:"name"`
	Status TournamentStatus `json:"status" db:"status"`
	// PlacementRound is the raw label of the round whose explicit places override scores.
	PlacementRound *string   `json:"placement_round,omitempty" db:"placement_round"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// Snapshot is what gets broadcast to websocket rooms and written to storage.
type Snapshot struct {
	TournamentID int            `json:"tournament_id"`
	Bracket      *BracketResult `json:"bracket"`
	Rankings     Rankings       `json:"rankings"`
}
