package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

func TestAuthenticate(t *testing.T) {
	var gotUserID int
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := UserIDFromContext(r.Context())
		require.True(t, ok)
		gotUserID = userID
		w.WriteHeader(http.StatusNoContent)
	})
	mw := Authenticate(testSecret)(next)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantUserID int
	}{
		{
			name:       "валидный токен",
			header:     "Bearer " + signToken(t, testSecret, jwt.MapClaims{"user_id": 42, "exp": time.Now().Add(time.Hour).Unix()}),
			wantStatus: http.StatusNoContent,
			wantUserID: 42,
		},
		{
			name:       "user_id строкой",
			header:     "Bearer " + signToken(t, testSecret, jwt.MapClaims{"user_id": "7"}),
			wantStatus: http.StatusNoContent,
			wantUserID: 7,
		},
		{
			name:       "нет заголовка",
			header:     "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "не bearer",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "чужая подпись",
			header:     "Bearer " + signToken(t, []byte("other"), jwt.MapClaims{"user_id": 42}),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "токен истек",
			header:     "Bearer " + signToken(t, testSecret, jwt.MapClaims{"user_id": 42, "exp": time.Now().Add(-time.Hour).Unix()}),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "нет user_id",
			header:     "Bearer " + signToken(t, testSecret, jwt.MapClaims{"sub": "42"}),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "дробный user_id",
			header:     "Bearer " + signToken(t, testSecret, jwt.MapClaims{"user_id": 4.5}),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "отрицательный user_id",
			header:     "Bearer " + signToken(t, testSecret, jwt.MapClaims{"user_id": -1}),
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotUserID = 0
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			mw.ServeHTTP(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantUserID, gotUserID)
		})
	}
}
