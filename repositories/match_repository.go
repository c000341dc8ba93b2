package repositories

import (
	"context"
	"fmt"

	"github.com/Dosada05/bracketboard/models"
)

type MatchRepository interface {
	ListByTournament(ctx context.Context, tournamentID int) ([]models.Match, error)
}

type postgresMatchRepository struct {
	db SQLExecutor
}

func NewPostgresMatchRepository(db SQLExecutor) MatchRepository {
	return &postgresMatchRepository{db: db}
}

// ListByTournament returns the tournament's matches in insertion order with
// their participants attached in slot order.
func (r *postgresMatchRepository) ListByTournament(ctx context.Context, tournamentID int) ([]models.Match, error) {
	query := `
		SELECT id, round_label, display_name, status, winner_ref, scheduled_time, completed_time
		FROM bracket_matches
		WHERE tournament_id = $1
		ORDER BY seq ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches for tournament %d: %w", tournamentID, err)
	}
	defer rows.Close()

	matches := make([]models.Match, 0)
	for rows.Next() {
		var m models.Match
		if scanErr := rows.Scan(
			&m.ID,
			&m.RoundLabel,
			&m.DisplayName,
			&m.Status,
			&m.WinnerRef,
			&m.ScheduledTime,
			&m.CompletedTime,
		); scanErr != nil {
			return nil, fmt.Errorf("failed to scan match row: %w", scanErr)
		}
		matches = append(matches, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during match rows iteration: %w", err)
	}

	participants, err := r.listParticipants(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	for i := range matches {
		matches[i].Participants = participants[matches[i].ID]
	}
	return matches, nil
}

func (r *postgresMatchRepository) listParticipants(ctx context.Context, tournamentID int) (map[string][]models.Participant, error) {
	query := `
		SELECT mp.match_id, mp.kind, COALESCE(mp.ref, ''), COALESCE(mp.position, '')
		FROM match_participants mp
		JOIN bracket_matches m ON m.id = mp.match_id
		WHERE m.tournament_id = $1
		ORDER BY mp.match_id ASC, mp.slot_index ASC`

	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query match participants for tournament %d: %w", tournamentID, err)
	}
	defer rows.Close()

	byMatch := make(map[string][]models.Participant)
	for rows.Next() {
		var matchID string
		var p models.Participant
		if scanErr := rows.Scan(&matchID, &p.Kind, &p.Ref, &p.Position); scanErr != nil {
			return nil, fmt.Errorf("failed to scan match participant row: %w", scanErr)
		}
		byMatch[matchID] = append(byMatch[matchID], p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during match participant rows iteration: %w", err)
	}
	return byMatch, nil
}
