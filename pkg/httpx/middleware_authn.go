package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/tripmates/userd/pkg/jwtx"
	"github.com/tripmates/userd/pkg/slogx"
)

// SessionMiddleware verifies the Bearer session token and injects the
// caller's identity into the request context. Every authenticated endpoint
// sits behind this; the server itself keeps no session state.
func SessionMiddleware(v *jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				WriteError(w, http.StatusUnauthorized, "Missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("session token rejected", "err", err)
				WriteError(w, http.StatusUnauthorized, "Invalid or expired session token")
				return
			}

			ctx = contextWithSession(ctx, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a handler on the role claim of the session token. The
// role is trusted as signed; no store lookup happens here.
func RequireRole(role string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if RoleFromCtx(r.Context()) != role {
				WriteError(w, http.StatusForbidden, "Insufficient privileges")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func contextWithSession(ctx context.Context, c jwtx.SessionClaims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, c.UserID)
	ctx = context.WithValue(ctx, CtxKeyRole, c.Role)
	return ctx
}
