package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/Dosada05/bracketboard/brackets"
	"github.com/Dosada05/bracketboard/models"
	"github.com/Dosada05/bracketboard/services"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bracketRouter(svc services.BracketService) http.Handler {
	h := NewBracketHandler(svc)
	r := chi.NewRouter()
	r.Post("/brackets", h.BuildHandler)
	r.Get("/tournaments/{tournamentID}/bracket", h.TournamentBracketHandler)
	r.Get("/tournaments/{tournamentID}/connectors", h.ConnectorsHandler)
	return r
}

func engineBracketService() *fakeBracketService {
	return &fakeBracketService{
		build: func(ctx context.Context, matches []models.Match) (*models.BracketResult, error) {
			result, err := brackets.Build(matches)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", services.ErrInvalidInput, err)
			}
			return result, nil
		},
	}
}

func TestBracketHandler_Build(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "valid matches",
			body:       `{"matches":[{"id":"f","round_label":"Final","display_name":"F","participants":[{"kind":"player","ref":"A"},{"kind":"player","ref":"B"}],"winner_ref":"B"}]}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "malformed json",
			body:       `{"matches":[`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown field",
			body:       `{"games":[]}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "empty body",
			body:       "",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "contract violation",
			body:       `{"matches":[{"id":"f","round_label":"Final","participants":[{"kind":"referee","ref":"A"}]}]}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, bracketRouter(engineBracketService()), http.MethodPost, "/brackets", tt.body)
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestBracketHandler_BuildResponseShape(t *testing.T) {
	body := `{"matches":[
		{"id":"f","round_label":"Final","display_name":"F","participants":[{"kind":"player","ref":"A"},{"kind":"player","ref":"B"}],"winner_ref":"B"},
		{"id":"x","round_label":"Quarter","display_name":"Q","participants":[]}
	]}`
	rec := doRequest(t, bracketRouter(engineBracketService()), http.MethodPost, "/brackets", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var result models.BracketResult
	require.NoError(t, json.Unmarshal(decodeBody(t, rec)["bracket"], &result))
	require.Len(t, result.Rounds, 1)
	assert.Equal(t, models.RoundFinal, result.Rounds[0].Round)
	assert.Equal(t, models.WinnerSecond, result.Rounds[0].Matches[0].Winner)
	assert.True(t, result.Rounds[0].Matches[0].Second.Winner)
	assert.Equal(t, []string{"x"}, result.DroppedMatchIDs)
	assert.Equal(t, 2, result.ParticipantCount)
}

func TestBracketHandler_TournamentBracket(t *testing.T) {
	svc := &fakeBracketService{
		tournament: func(ctx context.Context, tournamentID int) (*models.BracketResult, error) {
			switch tournamentID {
			case 1:
				return &models.BracketResult{Rounds: []models.RoundGroup{}}, nil
			case 2:
				return nil, services.ErrTournamentNotFound
			case 3:
				return nil, fmt.Errorf("tournament 3: %w", services.ErrInvalidInput)
			default:
				return nil, errors.New("database is down")
			}
		},
	}
	router := bracketRouter(svc)

	tests := []struct {
		target string
		want   int
	}{
		{target: "/tournaments/1/bracket", want: http.StatusOK},
		{target: "/tournaments/2/bracket", want: http.StatusNotFound},
		{target: "/tournaments/3/bracket", want: http.StatusUnprocessableEntity},
		{target: "/tournaments/4/bracket", want: http.StatusInternalServerError},
		{target: "/tournaments/abc/bracket", want: http.StatusBadRequest},
		{target: "/tournaments/0/bracket", want: http.StatusBadRequest},
		{target: "/tournaments/1/connectors", want: http.StatusOK},
		{target: "/tournaments/2/connectors", want: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodGet, tt.target, "")
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestBracketHandler_Connectors(t *testing.T) {
	svc := &fakeBracketService{
		tournament: func(ctx context.Context, tournamentID int) (*models.BracketResult, error) {
			return brackets.Build([]models.Match{
				{ID: "sf1", RoundLabel: "Semifinal", DisplayName: "SF1"},
				{ID: "sf2", RoundLabel: "Semifinal", DisplayName: "SF2"},
				{ID: "f", RoundLabel: "Final", DisplayName: "F"},
			})
		},
	}

	rec := doRequest(t, bracketRouter(svc), http.MethodGet, "/tournaments/5/connectors", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []brackets.Connector
	require.NoError(t, json.Unmarshal(decodeBody(t, rec)["connectors"], &got))
	require.Len(t, got, 2)
	assert.Equal(t, "sf1", got[0].FromMatchID)
	assert.Equal(t, models.WinnerFirst, got[0].ToSlot)
	assert.Equal(t, "sf2", got[1].FromMatchID)
	assert.Equal(t, models.WinnerSecond, got[1].ToSlot)
}
