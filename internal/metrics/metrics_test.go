package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderCounters(t *testing.T) {
	m := New()

	m.SaleCreated()
	m.SaleCreated()
	m.SaleModified()
	m.SaleCancelled()
	m.RuleRejected()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.SalesCreatedTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SalesModifiedTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SalesCancelledTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RuleRejectionsTotal))
}

func TestIndependentRegistries(t *testing.T) {
	a, b := New(), New()
	a.SaleCreated()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.SalesCreatedTotal))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.SalesCreatedTotal))
}

func TestHandler(t *testing.T) {
	m := New()
	m.SaleCreated()

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "sales_created_total 1")
}
