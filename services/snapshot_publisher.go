package services

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Dosada05/bracketboard/brackets"
	"github.com/Dosada05/bracketboard/models"
	"github.com/Dosada05/bracketboard/storage"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/sync/errgroup"
)

// Broadcaster is the part of brackets.Hub the publisher needs.
type Broadcaster interface {
	BroadcastToRoom(tournamentID int, message any)
	ActiveTournaments() []int
}

type PublishResult struct {
	TournamentID int    `json:"tournament_id"`
	Changed      bool   `json:"changed"`
	Digest       string `json:"digest"`
	Location     string `json:"location,omitempty"`
}

// SnapshotPublisher pushes bracket and leaderboard snapshots to websocket
// rooms and object storage. A snapshot is only pushed when its content
// differs from the last one pushed for the same tournament.
type SnapshotPublisher struct {
	bracketService     BracketService
	leaderboardService LeaderboardService
	hub                Broadcaster
	uploader           storage.FileUploader
	logger             *slog.Logger

	mu      sync.Mutex
	digests map[int][blake2b.Size256]byte
}

// NewSnapshotPublisher builds a publisher. uploader may be nil, in which case
// snapshots are only broadcast.
func NewSnapshotPublisher(
	bracketService BracketService,
	leaderboardService LeaderboardService,
	hub Broadcaster,
	uploader storage.FileUploader,
	logger *slog.Logger,
) *SnapshotPublisher {
	return &SnapshotPublisher{
		bracketService:     bracketService,
		leaderboardService: leaderboardService,
		hub:                hub,
		uploader:           uploader,
		logger:             logger,
		digests:            make(map[int][blake2b.Size256]byte),
	}
}

func snapshotKey(tournamentID int) string {
	return fmt.Sprintf("tournaments/%d/snapshot.json", tournamentID)
}

// Snapshot loads the bracket and the leaderboard concurrently and returns the
// snapshot together with its JSON encoding.
func (p *SnapshotPublisher) Snapshot(ctx context.Context, tournamentID int) (*models.Snapshot, []byte, error) {
	snapshot := &models.Snapshot{TournamentID: tournamentID}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		bracket, err := p.bracketService.TournamentBracket(gCtx, tournamentID)
		if err != nil {
			return err
		}
		snapshot.Bracket = bracket
		return nil
	})
	g.Go(func() error {
		rankings, err := p.leaderboardService.TournamentLeaderboard(gCtx, tournamentID, "")
		if err != nil {
			return err
		}
		snapshot.Rankings = rankings
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode snapshot for tournament %d: %w", tournamentID, err)
	}
	return snapshot, payload, nil
}

// Publish broadcasts and uploads the tournament's current snapshot. Unless
// force is set, nothing is sent when the snapshot is unchanged.
func (p *SnapshotPublisher) Publish(ctx context.Context, tournamentID int, force bool) (*PublishResult, error) {
	snapshot, payload, err := p.Snapshot(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	digest := blake2b.Sum256(payload)
	result := &PublishResult{TournamentID: tournamentID, Digest: hex.EncodeToString(digest[:])}

	p.mu.Lock()
	prev, seen := p.digests[tournamentID]
	p.mu.Unlock()
	if seen && prev == digest && !force {
		return result, nil
	}

	p.hub.BroadcastToRoom(tournamentID, brackets.WebSocketMessage{
		Type:         brackets.MessageSnapshotUpdated,
		Payload:      snapshot,
		TournamentID: tournamentID,
	})

	if p.uploader != nil {
		upload, err := p.uploader.Upload(ctx, snapshotKey(tournamentID), "application/json", bytes.NewReader(payload))
		if err != nil {
			// Digest stays unrecorded so the next refresh retries the upload.
			return nil, fmt.Errorf("%w: tournament %d: %w", ErrPublishFailed, tournamentID, err)
		}
		result.Location = upload.Location
	}

	p.mu.Lock()
	p.digests[tournamentID] = digest
	p.mu.Unlock()

	result.Changed = true
	p.logger.InfoContext(ctx, "snapshot published",
		slog.Int("tournament_id", tournamentID),
		slog.String("digest", result.Digest),
		slog.Bool("forced", force))
	return result, nil
}

// Unpublish removes the stored snapshot and forgets its digest.
func (p *SnapshotPublisher) Unpublish(ctx context.Context, tournamentID int) error {
	p.mu.Lock()
	delete(p.digests, tournamentID)
	p.mu.Unlock()

	if p.uploader == nil {
		return nil
	}
	if err := p.uploader.Delete(ctx, snapshotKey(tournamentID)); err != nil {
		return fmt.Errorf("%w: tournament %d: %w", ErrPublishFailed, tournamentID, err)
	}
	return nil
}

// RefreshActive republishes every tournament that has connected clients and
// drops remembered digests of tournaments nobody watches anymore.
func (p *SnapshotPublisher) RefreshActive(ctx context.Context) error {
	active := p.hub.ActiveTournaments()

	watched := make(map[int]struct{}, len(active))
	for _, id := range active {
		watched[id] = struct{}{}
	}
	p.mu.Lock()
	for id := range p.digests {
		if _, ok := watched[id]; !ok {
			delete(p.digests, id)
		}
	}
	p.mu.Unlock()

	var errs []error
	for _, id := range active {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if _, err := p.Publish(ctx, id, false); err != nil {
			p.logger.ErrorContext(ctx, "snapshot refresh failed", slog.Int("tournament_id", id), slog.Any("error", err))
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
