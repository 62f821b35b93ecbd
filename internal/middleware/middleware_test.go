package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"homestead-architect/internal/platform/logger"
	"homestead-architect/internal/ports/auth"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type stubVerifier struct {
	claims auth.Claims
	err    error
}

func (s stubVerifier) Verify(_ context.Context, _ string) (auth.Claims, error) {
	return s.claims, s.err
}

func whoAmI() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, _ := UserID(r.Context())
		_, _ = w.Write([]byte(uid))
	})
}

func TestAuthContext_DevModeUsesDebugHeader(t *testing.T) {
	h := AuthContext(nil)(RequireUser(whoAmI()))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(DebugUserHeader, "user-1")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthContext_VerifierIgnoresDebugHeader(t *testing.T) {
	h := AuthContext(stubVerifier{claims: auth.Claims{UserID: "jwt-user"}})(RequireUser(whoAmI()))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(DebugUserHeader, "spoofed")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer abc")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "jwt-user", rec.Body.String())
}

func TestAuthContext_VerifyErrorLeavesRequestAnonymous(t *testing.T) {
	h := AuthContext(stubVerifier{err: errors.New("expired")})(RequireUser(whoAmI()))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer abc")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "tok", bearerToken("bearer tok"))
	assert.Equal(t, "", bearerToken("Basic tok"))
	assert.Equal(t, "", bearerToken("Bearer"))
}

func TestRecover_Returns500(t *testing.T) {
	h := chimw.RequestID(Recover(logger.Nop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestEchoRequestID(t *testing.T) {
	h := chimw.RequestID(EchoRequestID(whoAmI()))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

func TestRateLimiter_PerUserBuckets(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	defer rl.Close()

	h := AuthContext(nil)(rl.Middleware(whoAmI()))

	do := func(uid string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(DebugUserHeader, uid)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	require.Equal(t, http.StatusOK, do("a"))
	require.Equal(t, http.StatusOK, do("a"))
	assert.Equal(t, http.StatusTooManyRequests, do("a"))

	// otro usuario tiene su propio bucket
	assert.Equal(t, http.StatusOK, do("b"))
}

func TestRateLimiter_SweepDropsIdleVisitors(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	defer rl.Close()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }
	rl.limiterFor("user:a")

	now = now.Add(limiterIdleTTL + time.Second)
	rl.sweep()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.Empty(t, rl.visitors)
}

func TestRateLimiter_DisabledWhenRPSZero(t *testing.T) {
	rl := NewRateLimiter(0, 0)
	defer rl.Close()

	h := rl.Middleware(whoAmI())
	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
}
