package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Dosada05/bracketboard/brackets"
	"github.com/Dosada05/bracketboard/models"
	"github.com/Dosada05/bracketboard/repositories"
)

type BracketService interface {
	BuildBracket(ctx context.Context, matches []models.Match) (*models.BracketResult, error)
	TournamentBracket(ctx context.Context, tournamentID int) (*models.BracketResult, error)
}

type bracketService struct {
	tournamentRepo repositories.TournamentRepository
	matchRepo      repositories.MatchRepository
	logger         *slog.Logger
}

func NewBracketService(
	tournamentRepo repositories.TournamentRepository,
	matchRepo repositories.MatchRepository,
	logger *slog.Logger,
) BracketService {
	return &bracketService{
		tournamentRepo: tournamentRepo,
		matchRepo:      matchRepo,
		logger:         logger,
	}
}

func (s *bracketService) BuildBracket(ctx context.Context, matches []models.Match) (*models.BracketResult, error) {
	result, err := brackets.Build(matches)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if len(result.DroppedMatchIDs) > 0 {
		// Usually a typo in a round label upstream.
		s.logger.WarnContext(ctx, "matches with unknown round labels left out of bracket",
			slog.Int("dropped", len(result.DroppedMatchIDs)),
			slog.Any("match_ids", result.DroppedMatchIDs))
	}
	return result, nil
}

func (s *bracketService) TournamentBracket(ctx context.Context, tournamentID int) (*models.BracketResult, error) {
	if _, err := s.tournamentRepo.GetByID(ctx, tournamentID); err != nil {
		return nil, mapRepositoryError(err)
	}

	matches, err := s.matchRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load matches for tournament %d: %w", tournamentID, err)
	}

	result, err := s.BuildBracket(ctx, matches)
	if err != nil {
		return nil, fmt.Errorf("tournament %d: %w", tournamentID, err)
	}
	return result, nil
}

func mapRepositoryError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrTournamentNotFound):
		return ErrTournamentNotFound
	default:
		return err
	}
}
