package services

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/Dosada05/bracketboard/models"
	"github.com/Dosada05/bracketboard/repositories"
	"github.com/Dosada05/bracketboard/storage"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeTournamentRepo struct {
	mu          sync.Mutex
	tournaments map[int]*models.Tournament
	err         error
}

func (f *fakeTournamentRepo) GetByID(ctx context.Context, id int) (*models.Tournament, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	t, ok := f.tournaments[id]
	if !ok {
		return nil, repositories.ErrTournamentNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTournamentRepo) UpdatePlacementRound(ctx context.Context, id int, placementRound *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tournaments[id]
	if !ok {
		return repositories.ErrTournamentNotFound
	}
	t.PlacementRound = placementRound
	return nil
}

type fakeMatchRepo struct {
	mu      sync.Mutex
	matches map[int][]models.Match
	err     error
}

func (f *fakeMatchRepo) ListByTournament(ctx context.Context, tournamentID int) ([]models.Match, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.matches[tournamentID], nil
}

func (f *fakeMatchRepo) set(tournamentID int, matches []models.Match) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.matches[tournamentID] = matches
}

type fakePerformanceRepo struct {
	performances map[int][]models.Performance
	err          error
}

func (f *fakePerformanceRepo) ListByTournament(ctx context.Context, tournamentID int) ([]models.Performance, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.performances[tournamentID], nil
}

type fakeBroadcaster struct {
	mu       sync.Mutex
	active   []int
	messages map[int][]any
}

func newFakeBroadcaster(active ...int) *fakeBroadcaster {
	return &fakeBroadcaster{active: active, messages: make(map[int][]any)}
}

func (f *fakeBroadcaster) BroadcastToRoom(tournamentID int, message any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages[tournamentID] = append(f.messages[tournamentID], message)
}

func (f *fakeBroadcaster) ActiveTournaments() []int {
	return f.active
}

func (f *fakeBroadcaster) count(tournamentID int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.messages[tournamentID])
}

type fakeUploader struct {
	uploads map[string][]byte
	deleted []string
	err     error
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{uploads: make(map[string][]byte)}
}

func (f *fakeUploader) Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*storage.UploadResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	f.uploads[key] = data
	return &storage.UploadResult{Key: key, Location: "https://cdn.test/" + key}, nil
}

func (f *fakeUploader) Delete(ctx context.Context, key string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, key)
	return nil
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func intPtr(i int) *int { return &i }

func player(ref string) models.Participant {
	return models.Participant{Kind: models.ParticipantPlayer, Ref: ref}
}
