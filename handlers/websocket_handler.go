package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Dosada05/bracketboard/brackets"
	"github.com/Dosada05/bracketboard/models"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Snapshots are public; any origin may watch.
		return true
	},
}

type snapshotSource interface {
	Snapshot(ctx context.Context, tournamentID int) (*models.Snapshot, []byte, error)
}

type WebSocketHandler struct {
	hub       *brackets.Hub
	snapshots snapshotSource
	logger    *slog.Logger
}

func NewWebSocketHandler(hub *brackets.Hub, snapshots snapshotSource, logger *slog.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		hub:       hub,
		snapshots: snapshots,
		logger:    logger,
	}
}

// ServeWs joins the caller to the room of /ws/tournaments/{tournamentID} and
// sends the current snapshot right away.
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	// Unknown tournaments are rejected before the upgrade.
	if _, _, err := h.snapshots.Snapshot(r.Context(), tournamentID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client.
		h.logger.Warn("websocket upgrade failed", slog.Int("tournament_id", tournamentID), slog.Any("error", err))
		return
	}

	client := &brackets.Client{
		Hub:          h.hub,
		Conn:         conn,
		Send:         make(chan []byte, 256),
		TournamentID: tournamentID,
	}
	if !h.hub.Join(client) {
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
		conn.Close()
		return
	}

	// Loaded after joining: anything the room broadcast before this point is
	// no newer than the snapshot queued here.
	if initial, err := h.initialMessage(r.Context(), tournamentID); err != nil {
		h.logger.Warn("failed to load initial snapshot", slog.Int("tournament_id", tournamentID), slog.Any("error", err))
	} else {
		client.Push(initial)
	}

	go client.WritePump()
	go client.ReadPump()

	h.logger.Debug("websocket client joined", slog.Int("tournament_id", tournamentID))
}

func (h *WebSocketHandler) initialMessage(ctx context.Context, tournamentID int) ([]byte, error) {
	snapshot, _, err := h.snapshots.Snapshot(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	return json.Marshal(brackets.WebSocketMessage{
		Type:         brackets.MessageSnapshotUpdated,
		Payload:      snapshot,
		TournamentID: tournamentID,
	})
}
