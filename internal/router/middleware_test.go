package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"homestead-architect/internal/platform/logger"
	"homestead-architect/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUseBase_PanicIsCountedAs500(t *testing.T) {
	r := chi.NewRouter()
	useBase(r, logger.Nop())
	r.Get("/boom", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	counter := metrics.HTTPRequestsTotal.WithLabelValues("/boom", http.MethodGet, "500")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
