package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Dosada05/bracketboard/brackets"
	"github.com/Dosada05/bracketboard/models"
	"github.com/Dosada05/bracketboard/repositories"
	"golang.org/x/sync/errgroup"
)

type LeaderboardService interface {
	RankPerformances(ctx context.Context, performances []models.Performance, placementRound string) (models.Rankings, error)
	// TournamentLeaderboard ranks the stored performances. An empty
	// placementRound falls back to the round designated on the tournament.
	TournamentLeaderboard(ctx context.Context, tournamentID int, placementRound string) (models.Rankings, error)
	SetPlacementRound(ctx context.Context, tournamentID int, placementRound string) error
}

type leaderboardService struct {
	tournamentRepo  repositories.TournamentRepository
	performanceRepo repositories.PerformanceRepository
	logger          *slog.Logger
}

func NewLeaderboardService(
	tournamentRepo repositories.TournamentRepository,
	performanceRepo repositories.PerformanceRepository,
	logger *slog.Logger,
) LeaderboardService {
	return &leaderboardService{
		tournamentRepo:  tournamentRepo,
		performanceRepo: performanceRepo,
		logger:          logger,
	}
}

func (s *leaderboardService) RankPerformances(ctx context.Context, performances []models.Performance, placementRound string) (models.Rankings, error) {
	rankings, err := brackets.Rank(performances, brackets.RankOptions{PlacementRound: placementRound})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if placementRound != "" {
		if _, ok := rankings.Round(placementRound); !ok && len(rankings) > 0 {
			s.logger.DebugContext(ctx, "placement round has no performances yet", slog.String("placement_round", placementRound))
		}
	}
	return rankings, nil
}

func (s *leaderboardService) TournamentLeaderboard(ctx context.Context, tournamentID int, placementRound string) (models.Rankings, error) {
	var (
		tournament   *models.Tournament
		performances []models.Performance
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := s.tournamentRepo.GetByID(gCtx, tournamentID)
		if err != nil {
			return mapRepositoryError(err)
		}
		tournament = t
		return nil
	})
	g.Go(func() error {
		list, err := s.performanceRepo.ListByTournament(gCtx, tournamentID)
		if err != nil {
			return fmt.Errorf("failed to load performances for tournament %d: %w", tournamentID, err)
		}
		performances = list
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if placementRound == "" && tournament.PlacementRound != nil {
		placementRound = *tournament.PlacementRound
	}

	rankings, err := s.RankPerformances(ctx, performances, placementRound)
	if err != nil {
		return nil, fmt.Errorf("tournament %d: %w", tournamentID, err)
	}
	return rankings, nil
}

func (s *leaderboardService) SetPlacementRound(ctx context.Context, tournamentID int, placementRound string) error {
	placementRound = strings.TrimSpace(placementRound)
	var value *string
	if placementRound != "" {
		value = &placementRound
	}
	if err := s.tournamentRepo.UpdatePlacementRound(ctx, tournamentID, value); err != nil {
		return mapRepositoryError(err)
	}
	s.logger.InfoContext(ctx, "placement round updated",
		slog.Int("tournament_id", tournamentID),
		slog.String("placement_round", placementRound))
	return nil
}
