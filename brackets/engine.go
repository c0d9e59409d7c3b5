package brackets

import (
	"log/slog"

	"github.com/Dosada05/volei-torneio/models"
	"github.com/google/uuid"
)

// Engine generates fixtures and standings from a team/match snapshot. It keeps
// no state between calls; the logger and id source are its only dependencies.
type Engine struct {
	logger *slog.Logger
	newID  func() string
}

type Option func(*Engine)

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithIDGenerator overrides the match id source, tests use it for stable ids.
func WithIDGenerator(fn func() string) Option {
	return func(e *Engine) {
		if fn != nil {
			e.newID = fn
		}
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		logger: slog.Default(),
		newID:  NewID,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewID returns a random UUID. Several matches are created in one batch, so a
// counter based on the collection size would collide.
func NewID() string {
	return uuid.NewString()
}

func (e *Engine) newMatch(stage models.Stage, side1, side2 string) models.Match {
	return models.Match{
		ID:    e.newID(),
		Round: stage.String(),
		Side1: side1,
		Side2: side2,
	}
}
