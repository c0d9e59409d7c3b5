package handlers

import (
	"net/http"

	"github.com/Dosada05/volei-torneio/services"
)

// DocumentHandler exposes the raw tournament document in its stored format.
type DocumentHandler struct {
	tournament *services.TournamentService
}

func NewDocumentHandler(ts *services.TournamentService) *DocumentHandler {
	return &DocumentHandler{tournament: ts}
}

func (h *DocumentHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := h.tournament.Document(r.Context())
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, doc)
}

func Health(w http.ResponseWriter, r *http.Request) {
	respond(w, r, http.StatusOK, jsonResponse{"status": "ok"})
}
