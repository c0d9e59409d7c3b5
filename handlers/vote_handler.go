package handlers

import (
	"net/http"

	"github.com/Dosada05/volei-torneio/services"
)

type VoteHandler struct {
	voteService services.VoteService
}

func NewVoteHandler(vs services.VoteService) *VoteHandler {
	return &VoteHandler{voteService: vs}
}

func (h *VoteHandler) ListVotes(w http.ResponseWriter, r *http.Request) {
	votes, err := h.voteService.List(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, jsonResponse{"votes": votes})
}

func (h *VoteHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	var input services.CastVoteInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	round, vote, err := h.voteService.Cast(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusCreated, jsonResponse{"round": round, "vote": vote})
}
