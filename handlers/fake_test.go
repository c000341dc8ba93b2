package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Dosada05/bracketboard/models"
	"github.com/Dosada05/bracketboard/services"
	"github.com/stretchr/testify/require"
)

type fakeBracketService struct {
	build      func(ctx context.Context, matches []models.Match) (*models.BracketResult, error)
	tournament func(ctx context.Context, tournamentID int) (*models.BracketResult, error)
}

func (f *fakeBracketService) BuildBracket(ctx context.Context, matches []models.Match) (*models.BracketResult, error) {
	return f.build(ctx, matches)
}

func (f *fakeBracketService) TournamentBracket(ctx context.Context, tournamentID int) (*models.BracketResult, error) {
	return f.tournament(ctx, tournamentID)
}

type fakeLeaderboardService struct {
	rank         func(ctx context.Context, performances []models.Performance, placementRound string) (models.Rankings, error)
	leaderboard  func(ctx context.Context, tournamentID int, placementRound string) (models.Rankings, error)
	setPlacement func(ctx context.Context, tournamentID int, placementRound string) error
}

func (f *fakeLeaderboardService) RankPerformances(ctx context.Context, performances []models.Performance, placementRound string) (models.Rankings, error) {
	return f.rank(ctx, performances, placementRound)
}

func (f *fakeLeaderboardService) TournamentLeaderboard(ctx context.Context, tournamentID int, placementRound string) (models.Rankings, error) {
	return f.leaderboard(ctx, tournamentID, placementRound)
}

func (f *fakeLeaderboardService) SetPlacementRound(ctx context.Context, tournamentID int, placementRound string) error {
	return f.setPlacement(ctx, tournamentID, placementRound)
}

type fakePublisher struct {
	publish   func(ctx context.Context, tournamentID int, force bool) (*services.PublishResult, error)
	unpublish func(ctx context.Context, tournamentID int) error
	snapshot  func(ctx context.Context, tournamentID int) (*models.Snapshot, []byte, error)
}

func (f *fakePublisher) Publish(ctx context.Context, tournamentID int, force bool) (*services.PublishResult, error) {
	return f.publish(ctx, tournamentID, force)
}

func (f *fakePublisher) Unpublish(ctx context.Context, tournamentID int) error {
	return f.unpublish(ctx, tournamentID)
}

func (f *fakePublisher) Snapshot(ctx context.Context, tournamentID int) (*models.Snapshot, []byte, error) {
	return f.snapshot(ctx, tournamentID)
}

func doRequest(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
