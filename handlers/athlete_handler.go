package handlers

import (
	"net/http"

	"github.com/Dosada05/volei-torneio/services"
)

type AthleteHandler struct {
	athleteService services.AthleteService
}

func NewAthleteHandler(s services.AthleteService) *AthleteHandler {
	return &AthleteHandler{athleteService: s}
}

type createAthleteInput struct {
	Name string `json:"nome"`
}

func (h *AthleteHandler) ListAthletes(w http.ResponseWriter, r *http.Request) {
	athletes, err := h.athleteService.List(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, jsonResponse{"athletes": athletes})
}

func (h *AthleteHandler) CreateAthlete(w http.ResponseWriter, r *http.Request) {
	var input createAthleteInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	athlete, err := h.athleteService.Create(r.Context(), input.Name)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusCreated, jsonResponse{"athlete": athlete})
}

func (h *AthleteHandler) DeleteAthlete(w http.ResponseWriter, r *http.Request) {
	athleteID, err := getIDFromURL(r, "athleteID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.athleteService.Delete(r.Context(), athleteID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
