package handler

import "net/http"

func (h *Handler) ListMyTeams(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	memberships, err := h.userService.ListMemberships(r.Context(), userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, MembershipsResponse{
		UserID: userID,
		Teams:  domainMembershipsToHTTP(memberships),
	})
}
