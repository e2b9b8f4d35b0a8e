package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rosterhq/tournament-roster/internal/domain"
	"go.uber.org/zap"
)

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		statusCode := getStatusCode(domainErr.Code)
		if statusCode >= http.StatusInternalServerError {
			h.log.Warn("request failed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Error(err),
			)
		}
		writeError(w, statusCode, domainErr.Code, domainErr.Message)
		return
	}

	h.log.Error("internal error",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

func getStatusCode(errorCode string) int {
	switch errorCode {
	case domain.CodeInvalidTournament,
		domain.CodeInvalidTeam,
		domain.CodeInvalidInviteCode,
		domain.CodeTeamFull,
		domain.CodeCannotRemoveCaptain,
		domain.CodeAlreadyCheckedIn,
		domain.CodeCheckInClosed,
		domain.CodeInvalidSeedSet,
		domain.CodeAlreadyOnTeam,
		domain.CodeBadRequest:
		return http.StatusBadRequest
	case domain.CodeNotCaptain, domain.CodeNotAdmin, domain.CodeUnauthenticated:
		return http.StatusUnauthorized
	case domain.CodeTransient:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, statusCode int, code, message string) {
	writeJSON(w, statusCode, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}
