package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rosterhq/tournament-roster/internal/domain"
)

type contextKey string

const (
	userIDContextKey contextKey = "user_id"
	jwtClaimUserID              = "user_id"
	bearerPrefix                = "Bearer "
)

var errInvalidUserClaim = errors.New("invalid user_id claim")

// Authenticate проверяет bearer-токен (HS256) и кладет user_id в контекст запроса
func Authenticate(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, bearerPrefix) {
				writeError(w, http.StatusUnauthorized, domain.CodeUnauthenticated, "bearer token is required")
				return
			}
			tokenString := strings.TrimSpace(authHeader[len(bearerPrefix):])

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
				return secret, nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid {
				writeError(w, http.StatusUnauthorized, domain.CodeUnauthenticated, "invalid access token")
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				writeError(w, http.StatusUnauthorized, domain.CodeUnauthenticated, "invalid token claims")
				return
			}

			userID, err := userIDFromClaims(claims)
			if err != nil {
				writeError(w, http.StatusUnauthorized, domain.CodeUnauthenticated, err.Error())
				return
			}

			ctx := WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func userIDFromClaims(claims jwt.MapClaims) (int, error) {
	raw, ok := claims[jwtClaimUserID]
	if !ok {
		return 0, fmt.Errorf("missing %s claim", jwtClaimUserID)
	}

	var userID int
	switch v := raw.(type) {
	case float64:
		if v != float64(int(v)) {
			return 0, errInvalidUserClaim
		}
		userID = int(v)
	case json.Number:
		n, err := strconv.Atoi(v.String())
		if err != nil {
			return 0, errInvalidUserClaim
		}
		userID = n
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, errInvalidUserClaim
		}
		userID = n
	default:
		return 0, errInvalidUserClaim
	}

	if userID <= 0 {
		return 0, errInvalidUserClaim
	}
	return userID, nil
}

func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDContextKey, userID)
}

func UserIDFromContext(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(userIDContextKey).(int)
	return userID, ok
}
