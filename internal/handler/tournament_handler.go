package handler

import (
	"net/http"
	"strings"
)

func (h *Handler) JoinViaInviteCode(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	tournamentID, err := pathID(r, "tournamentID")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req JoinRequest
	if err := readJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	inviteCode := strings.TrimSpace(req.InviteCode)
	if inviteCode == "" {
		h.handleError(w, r, badRequest("invite_code is required"))
		return
	}

	team, err := h.rosterService.JoinViaInviteCode(r.Context(), tournamentID, inviteCode, userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, TeamEnvelope{Team: domainTeamToHTTP(team, false)})
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := pathID(r, "tournamentID")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	teams, err := h.rosterService.ListTeams(r.Context(), tournamentID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ListTeamsResponse{
		TournamentID: tournamentID,
		Teams:        domainTeamsToHTTP(teams),
	})
}

func (h *Handler) UpdateSeeds(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	tournamentID, err := pathID(r, "tournamentID")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req UpdateSeedsRequest
	if err := readJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}
	if req.TeamIDs == nil {
		h.handleError(w, r, badRequest("team_ids is required"))
		return
	}

	tournament, err := h.seedingService.UpdateSeeds(r.Context(), tournamentID, userID, req.TeamIDs)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, SeedsResponse{
		TournamentID: tournament.ID,
		TeamIDs:      tournament.SeedTeamIDs,
	})
}
