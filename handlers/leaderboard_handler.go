package handlers

import (
	"net/http"

	"github.com/Dosada05/bracketboard/models"
	"github.com/Dosada05/bracketboard/services"
)

type LeaderboardHandler struct {
	leaderboardService services.LeaderboardService
}

func NewLeaderboardHandler(ls services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: ls,
	}
}

type rankPerformancesInput struct {
	Performances   []models.Performance `json:"performances"`
	PlacementRound string               `json:"placement_round"`
}

type placementRoundInput struct {
	PlacementRound string `json:"placement_round"`
}

// RankHandler godoc
// @Summary Rank performances per round
// @Description Rounds keep first-appearance order. In the placement round explicit places win over scores.
// @Tags rankings
// @Accept json
// @Produce json
// @Param input body rankPerformancesInput true "Performances"
// @Success 200 {array} models.RoundRanking
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rankings [post]
func (h *LeaderboardHandler) RankHandler(w http.ResponseWriter, r *http.Request) {
	var input rankPerformancesInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	rankings, err := h.leaderboardService.RankPerformances(r.Context(), input.Performances, input.PlacementRound)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"rankings": rankings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// TournamentRankingsHandler godoc
// @Summary Get the leaderboard of a stored tournament
// @Tags rankings
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Param placement_round query string false "Placement round label, defaults to the one stored for the tournament"
// @Success 200 {array} models.RoundRanking
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /tournaments/{tournamentID}/rankings [get]
func (h *LeaderboardHandler) TournamentRankingsHandler(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	placementRound := r.URL.Query().Get("placement_round")

	rankings, err := h.leaderboardService.TournamentLeaderboard(r.Context(), tournamentID, placementRound)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"rankings": rankings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SetPlacementRoundHandler godoc
// @Summary Designate the placement round of a tournament
// @Description A blank label clears the designation.
// @Tags rankings
// @Accept json
// @Param tournamentID path int true "Tournament ID"
// @Param input body placementRoundInput true "Placement round"
// @Success 204
// @Failure 401 {string} string
// @Failure 403 {string} string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /tournaments/{tournamentID}/placement-round [put]
func (h *LeaderboardHandler) SetPlacementRoundHandler(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input placementRoundInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.leaderboardService.SetPlacementRound(r.Context(), tournamentID, input.PlacementRound); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
