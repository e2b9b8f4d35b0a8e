package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rosterhq/tournament-roster/internal/domain"
)

const maxBodyBytes = 1 << 20

func readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return badRequest("invalid request body: " + err.Error())
	}
	return nil
}

func pathID(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		return 0, badRequest(name + " must be a positive integer")
	}
	return id, nil
}

func currentUserID(r *http.Request) (int, error) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		return 0, domain.ErrUnauthenticated
	}
	return userID, nil
}

func badRequest(message string) error {
	return domain.NewBadRequestError(message)
}
