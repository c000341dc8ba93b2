package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Dosada05/bracketboard/models"
	"github.com/lib/pq"
)

type PerformanceRepository interface {
	ListByTournament(ctx context.Context, tournamentID int) ([]models.Performance, error)
}

type postgresPerformanceRepository struct {
	db SQLExecutor
}

func NewPostgresPerformanceRepository(db SQLExecutor) PerformanceRepository {
	return &postgresPerformanceRepository{db: db}
}

func (r *postgresPerformanceRepository) ListByTournament(ctx context.Context, tournamentID int) ([]models.Performance, error) {
	query := `
		SELECT id, round_label, performer_ref, performance_order, scores, final_score, place
		FROM performances
		WHERE tournament_id = $1
		ORDER BY seq ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query performances for tournament %d: %w", tournamentID, err)
	}
	defer rows.Close()

	performances := make([]models.Performance, 0)
	for rows.Next() {
		var (
			p          models.Performance
			finalScore sql.NullFloat64
			place      sql.NullInt64
		)
		if scanErr := rows.Scan(
			&p.ID,
			&p.RoundLabel,
			&p.PerformerRef,
			&p.PerformanceOrder,
			pq.Array(&p.Scores),
			&finalScore,
			&place,
		); scanErr != nil {
			return nil, fmt.Errorf("failed to scan performance row: %w", scanErr)
		}
		if finalScore.Valid {
			v := finalScore.Float64
			p.FinalScore = &v
		}
		if place.Valid {
			v := int(place.Int64)
			p.Place = &v
		}
		if p.Scores == nil {
			p.Scores = []float64{}
		}
		performances = append(performances, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during performance rows iteration: %w", err)
	}
	return performances, nil
}
