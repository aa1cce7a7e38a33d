package middleware

import (
	"context"
	"net/http"
	"strings"

	"shelter-care/internal/platform/logger"
	"shelter-care/internal/platform/respond"
	"shelter-care/internal/ports/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// DebugUserHeader solo se acepta cuando no hay verifier configurado (modo dev).
const DebugUserHeader = "X-Debug-User-ID"

// AuthContext resuelve claims y las deja en el contexto; nunca corta el request.
// Con verifier: Bearer token. Sin verifier: header X-Debug-User-ID.
// Quien exige usuario es RequireUser.
func AuthContext(verifier auth.AuthVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := resolveClaims(r, verifier)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			if l, found := logger.Lookup(ctx); found {
				ctx = logger.WithContext(ctx, l.With(logger.Fields{"user_id": claims.UserID}))
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolveClaims(r *http.Request, verifier auth.AuthVerifier) (auth.Claims, bool) {
	if verifier == nil {
		uid := strings.TrimSpace(r.Header.Get(DebugUserHeader))
		return auth.Claims{UserID: uid}, uid != ""
	}

	token := bearerToken(r.Header.Get("Authorization"))
	if token == "" {
		return auth.Claims{}, false
	}
	claims, err := verifier.Verify(r.Context(), token)
	if err != nil {
		logger.FromContext(r.Context(), logger.Nop()).Debug("bearer token rejected", logger.Fields{
			"error": err,
		})
		return auth.Claims{}, false
	}
	return claims, true
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey).(auth.Claims)
	return c, ok
}

// RequireUser corta con 401 si AuthContext no dejó claims con UserID.
// Todo el refugio comparte los registros: no hay chequeo por dueño.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			respond.Unauthorized(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(header string) string {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
