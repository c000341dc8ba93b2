package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Dosada05/bracketboard/middleware"
	"github.com/Dosada05/bracketboard/services"
)

type snapshotPublisher interface {
	Publish(ctx context.Context, tournamentID int, force bool) (*services.PublishResult, error)
	Unpublish(ctx context.Context, tournamentID int) error
}

type PublishHandler struct {
	publisher snapshotPublisher
}

func NewPublishHandler(publisher snapshotPublisher) *PublishHandler {
	return &PublishHandler{
		publisher: publisher,
	}
}

// PublishSnapshotHandler godoc
// @Summary Publish the tournament snapshot
// @Description Broadcasts the bracket and leaderboard to websocket clients and uploads them to storage when they changed since the last publish.
// @Tags publishing
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Param force query bool false "Publish even when nothing changed"
// @Success 200 {object} services.PublishResult
// @Failure 401 {string} string
// @Failure 403 {string} string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /tournaments/{tournamentID}/publish [post]
func (h *PublishHandler) PublishSnapshotHandler(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	force := false
	if raw := r.URL.Query().Get("force"); raw != "" {
		force, err = strconv.ParseBool(raw)
		if err != nil {
			badRequestResponse(w, r, err)
			return
		}
	}

	result, err := h.publisher.Publish(r.Context(), tournamentID, force)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if userID, err := middleware.GetUserIDFromContext(r.Context()); err == nil {
		slog.InfoContext(r.Context(), "snapshot publish requested",
			slog.Int("tournament_id", tournamentID),
			slog.Int("user_id", userID),
			slog.Bool("changed", result.Changed))
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"publish": result}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UnpublishSnapshotHandler godoc
// @Summary Remove the stored tournament snapshot
// @Tags publishing
// @Param tournamentID path int true "Tournament ID"
// @Success 204
// @Failure 401 {string} string
// @Failure 403 {string} string
// @Security BearerAuth
// @Router /tournaments/{tournamentID}/publish [delete]
func (h *PublishHandler) UnpublishSnapshotHandler(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.publisher.Unpublish(r.Context(), tournamentID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
