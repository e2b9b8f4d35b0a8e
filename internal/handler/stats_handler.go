package handler

import "net/http"

func (h *Handler) GetTournamentStats(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := pathID(r, "tournamentID")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	stats, err := h.statsService.GetTournamentStats(r.Context(), tournamentID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainStatsToHTTP(stats))
}
