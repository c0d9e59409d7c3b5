package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Dosada05/volei-torneio/brackets"
	"github.com/Dosada05/volei-torneio/metrics"
	"github.com/Dosada05/volei-torneio/models"
	"github.com/Dosada05/volei-torneio/storage"
)

// MessageDocumentUpdated is the websocket message type sent after every
// successful write.
const MessageDocumentUpdated = "DOCUMENT_UPDATED"

// Notifier is the part of the websocket hub the services use.
type Notifier interface {
	BroadcastToRoom(roomID string, message interface{})
}

type DocumentUpdate struct {
	Action  string         `json:"action"`
	Phase   brackets.Phase `json:"phase"`
	Matches []models.Match `json:"matches,omitempty"`
}

// errNoChange lets a mutation finish without writing the document.
var errNoChange = errors.New("no change")

// TournamentService owns the read-modify-write cycle over the tournament
// document. Every other service goes through it.
type TournamentService struct {
	store    storage.DocumentStore
	engine   *brackets.Engine
	notifier Notifier
	metrics  *metrics.Recorder
	logger   *slog.Logger
	retries  int

	mu sync.Mutex // одна запись за раз внутри процесса
}

func NewTournamentService(
	store storage.DocumentStore,
	engine *brackets.Engine,
	notifier Notifier,
	recorder *metrics.Recorder,
	logger *slog.Logger,
	retries int,
) *TournamentService {
	if engine == nil {
		engine = brackets.NewEngine(brackets.WithLogger(logger))
	}
	if recorder == nil {
		recorder = metrics.NewRecorder()
	}
	if logger == nil {
		logger = slog.Default()
	}
	if retries < 0 {
		retries = 0
	}
	return &TournamentService{
		store:    store,
		engine:   engine,
		notifier: notifier,
		metrics:  recorder,
		logger:   logger,
		retries:  retries,
	}
}

// Document loads the current document.
func (s *TournamentService) Document(ctx context.Context) (*models.Database, error) {
	doc, _, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tournament document: %w", err)
	}
	return doc, nil
}

// update applies fn to a fresh copy of the document and saves it. When the
// store reports a concurrent write the document is reloaded and fn runs again.
// fn returns the matches it touched, they go into the broadcast.
func (s *TournamentService) update(ctx context.Context, action string, fn func(doc *models.Database) ([]models.Match, error)) (*models.Database, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for attempt := 0; attempt <= s.retries; attempt++ {
		doc, version, err := s.store.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to load document: %w", action, err)
		}

		work := doc.Clone()
		changed, err := fn(work)
		if errors.Is(err, errNoChange) {
			return work, nil
		}
		if err != nil {
			return nil, err
		}

		if _, err := s.store.Save(ctx, work, version); err != nil {
			if errors.Is(err, storage.ErrVersionConflict) {
				s.metrics.DocumentSave(metrics.SaveConflict)
				s.logger.WarnContext(ctx, "document changed during update, retrying",
					slog.String("action", action),
					slog.Int("attempt", attempt+1),
				)
				continue
			}
			s.metrics.DocumentSave(metrics.SaveError)
			return nil, fmt.Errorf("%s: failed to save document: %w", action, err)
		}

		s.metrics.DocumentSave(metrics.SaveOK)
		s.logger.InfoContext(ctx, "document updated", slog.String("action", action), slog.Int("matches_changed", len(changed)))
		s.notify(action, work, changed)
		return work, nil
	}

	return nil, fmt.Errorf("%s: %w", action, ErrConcurrentUpdate)
}

func (s *TournamentService) notify(action string, doc *models.Database, changed []models.Match) {
	if s.notifier == nil {
		return
	}
	s.notifier.BroadcastToRoom(brackets.TournamentRoom, brackets.WebSocketMessage{
		Type: MessageDocumentUpdated,
		Payload: DocumentUpdate{
			Action:  action,
			Phase:   brackets.CurrentPhase(doc.Matches),
			Matches: changed,
		},
		RoomID: brackets.TournamentRoom,
	})
}
