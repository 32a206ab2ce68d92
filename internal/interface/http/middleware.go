package http

import (
	"context"
	"errors"
	"net/http"
)

type ctxKey int

const ctxUserIDKey ctxKey = 0

var errNoToken = errors.New("access denied: no token provided")

// tokenFromRequest reads the bearer credential. The original clients send
// it in a bare "token" header, so that stays the wire contract.
func tokenFromRequest(r *http.Request) string {
	return r.Header.Get("token")
}

func (a *API) userAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := tokenFromRequest(r)
		if token == "" {
			respondError(w, http.StatusUnauthorized, errNoToken)
			return
		}
		userID, err := a.authSvc.ParseUserToken(token)
		if err != nil {
			respondError(w, http.StatusUnauthorized, err)
			return
		}
		ctx := context.WithValue(r.Context(), ctxUserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *API) adminAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := tokenFromRequest(r)
		if token == "" {
			respondError(w, http.StatusUnauthorized, errNoToken)
			return
		}
		if err := a.authSvc.VerifyAdminToken(token); err != nil {
			respondError(w, http.StatusUnauthorized, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func userIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxUserIDKey).(string)
	return id
}
