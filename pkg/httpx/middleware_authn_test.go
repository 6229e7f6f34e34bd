package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tripmates/userd/pkg/jwtx"
)

const testSecret = "httpx-test-secret"

func sessionFixtures(t *testing.T) (*jwtx.Signer, *jwtx.Verifier) {
	t.Helper()

	signer, err := jwtx.NewSigner(testSecret, "userd-test", time.Hour)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifier(testSecret, "userd-test")
	require.NoError(t, err)
	return signer, verifier
}

func echoIdentity() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteResult(w, http.StatusOK, map[string]string{
			"id":   UserIDFromCtx(r.Context()),
			"role": RoleFromCtx(r.Context()),
		})
	})
}

func TestSessionMiddlewareInjectsIdentity(t *testing.T) {
	t.Parallel()

	signer, verifier := sessionFixtures(t)
	token, err := signer.Sign("u42", "Alice", "hikers", "", "admin")
	require.NoError(t, err)

	handler := Chain(echoIdentity(), SessionMiddleware(verifier))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"id":"u42"`)
	require.Contains(t, rec.Body.String(), `"role":"admin"`)
}

func TestSessionMiddlewareRejectsMissingToken(t *testing.T) {
	t.Parallel()

	_, verifier := sessionFixtures(t)
	handler := Chain(echoIdentity(), SessionMiddleware(verifier))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), `"success":false`)
}

func TestSessionMiddlewareRejectsTamperedToken(t *testing.T) {
	t.Parallel()

	signer, verifier := sessionFixtures(t)
	token, err := signer.Sign("u42", "Alice", "", "", "user")
	require.NoError(t, err)

	handler := Chain(echoIdentity(), SessionMiddleware(verifier))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token+"x")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRoleForbidsOtherRoles(t *testing.T) {
	t.Parallel()

	signer, verifier := sessionFixtures(t)
	token, err := signer.Sign("u7", "Bob", "", "", "user")
	require.NoError(t, err)

	handler := Chain(echoIdentity(), SessionMiddleware(verifier), RequireRole("admin"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
}
