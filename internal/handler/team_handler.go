package handler

import (
	"net/http"
)

func (h *Handler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	captainID, err := currentUserID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	teamID, err := pathID(r, "teamID")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req AddPlayerRequest
	if err := readJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}
	if req.UserID <= 0 {
		h.handleError(w, r, badRequest("user_id must be a positive integer"))
		return
	}

	team, err := h.rosterService.AddPlayer(r.Context(), teamID, captainID, req.UserID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, TeamEnvelope{Team: domainTeamToHTTP(team, false)})
}

func (h *Handler) RemovePlayer(w http.ResponseWriter, r *http.Request) {
	captainID, err := currentUserID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	teamID, err := pathID(r, "teamID")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	playerID, err := pathID(r, "userID")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	team, err := h.rosterService.RemovePlayer(r.Context(), teamID, captainID, playerID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, TeamEnvelope{Team: domainTeamToHTTP(team, false)})
}

func (h *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	teamID, err := pathID(r, "teamID")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	team, err := h.checkInService.CheckIn(r.Context(), teamID, userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, TeamEnvelope{Team: domainTeamToHTTP(team, false)})
}

func (h *Handler) CheckOut(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	teamID, err := pathID(r, "teamID")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	team, err := h.checkInService.CheckOut(r.Context(), teamID, userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, TeamEnvelope{Team: domainTeamToHTTP(team, false)})
}

func (h *Handler) ResetInviteCode(w http.ResponseWriter, r *http.Request) {
	captainID, err := currentUserID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	teamID, err := pathID(r, "teamID")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	team, err := h.rosterService.ResetInviteCode(r.Context(), teamID, captainID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, TeamEnvelope{Team: domainTeamToHTTP(team, true)})
}
