package handlers

import (
	"context"
	"net/http"

	"github.com/Dosada05/volei-torneio/brackets"
	"github.com/Dosada05/volei-torneio/services"
)

type BracketHandler struct {
	bracketService services.BracketService
}

func NewBracketHandler(bs services.BracketService) *BracketHandler {
	return &BracketHandler{bracketService: bs}
}

func (h *BracketHandler) ListGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.bracketService.Groups(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, jsonResponse{"groups": groups})
}

func (h *BracketHandler) Standings(w http.ResponseWriter, r *http.Request) {
	standings, err := h.bracketService.Standings(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, jsonResponse{"standings": standings})
}

func (h *BracketHandler) Phase(w http.ResponseWriter, r *http.Request) {
	phase, err := h.bracketService.Phase(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, jsonResponse{"phase": phase})
}

func (h *BracketHandler) GenerateGroups(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.bracketService.GenerateGroups)
}

func (h *BracketHandler) AdvanceToSemifinals(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.bracketService.AdvanceToSemifinals)
}

func (h *BracketHandler) AdvanceToFinals(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.bracketService.AdvanceToFinals)
}

// transition answers 201 when matches were created and 200 when the step had
// already been done.
func (h *BracketHandler) transition(w http.ResponseWriter, r *http.Request, step func(ctx context.Context) (brackets.Transition, error)) {
	t, err := step(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	status := http.StatusOK
	if t.Outcome == brackets.OutcomeGenerated {
		status = http.StatusCreated
	}
	respond(w, r, status, jsonResponse{"transition": t})
}
