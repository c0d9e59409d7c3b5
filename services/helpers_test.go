package services

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/Dosada05/volei-torneio/brackets"
	"github.com/Dosada05/volei-torneio/metrics"
	"github.com/Dosada05/volei-torneio/models"
	"github.com/Dosada05/volei-torneio/storage"
)

type recordingNotifier struct {
	mu       sync.Mutex
	messages []brackets.WebSocketMessage
}

func (n *recordingNotifier) BroadcastToRoom(_ string, message interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if msg, ok := message.(brackets.WebSocketMessage); ok {
		n.messages = append(n.messages, msg)
	}
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.messages)
}

// conflictingStore fails the first conflicts saves with a version conflict.
type conflictingStore struct {
	storage.DocumentStore
	conflicts int
	saves     int
}

func (s *conflictingStore) Save(ctx context.Context, doc *models.Database, expected storage.Version) (storage.Version, error) {
	s.saves++
	if s.conflicts > 0 {
		s.conflicts--
		return "", storage.ErrVersionConflict
	}
	return s.DocumentStore.Save(ctx, doc, expected)
}

type testServices struct {
	store      storage.DocumentStore
	notifier   *recordingNotifier
	tournament *TournamentService
	athletes   AthleteService
	teams      TeamService
	matches    MatchService
	bracket    BracketService
	votes      VoteService
	dashboard  DashboardService
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServices(store storage.DocumentStore) *testServices {
	if store == nil {
		store = storage.NewMemoryDocumentStore()
	}
	logger := quietLogger()
	notifier := &recordingNotifier{}
	ts := NewTournamentService(store, brackets.NewEngine(brackets.WithLogger(logger)), notifier, metrics.NewRecorder(), logger, 3)
	return &testServices{
		store:      store,
		notifier:   notifier,
		tournament: ts,
		athletes:   NewAthleteService(ts),
		teams:      NewTeamService(ts),
		matches:    NewMatchService(ts),
		bracket:    NewBracketService(ts),
		votes:      NewVoteService(ts),
		dashboard:  NewDashboardService(ts),
	}
}

// seedTwoGroups registers eight athletes and four teams, two per group.
func (s *testServices) seedTwoGroups(ctx context.Context) {
	pairs := [][3]string{
		{"Ana", "Bia", "A"},
		{"Carla", "Duda", "A"},
		{"Eva", "Fran", "B"},
		{"Gabi", "Helo", "B"},
	}
	for _, p := range pairs {
		for _, name := range p[:2] {
			if _, err := s.athletes.Create(ctx, name); err != nil {
				panic(err)
			}
		}
		if _, err := s.teams.Create(ctx, CreateTeamInput{Athlete1: p[0], Athlete2: p[1], Group: p[2]}); err != nil {
			panic(err)
		}
	}
}

// playAll gives side 1 a 21-15 win in every unplayed match.
func (s *testServices) playAll(ctx context.Context) {
	matches, err := s.matches.List(ctx)
	if err != nil {
		panic(err)
	}
	for _, m := range matches {
		if m.Score.IsZero() {
			if _, err := s.matches.RecordScore(ctx, m.ID, 21, 15); err != nil {
				panic(err)
			}
		}
	}
}
