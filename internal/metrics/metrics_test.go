package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/mobile-wallet/internal/config"
	"github/chapool/mobile-wallet/internal/metrics"
)

func TestMetricsRecording(t *testing.T) {
	m, err := metrics.New(config.DefaultServiceConfigFromEnv())
	require.NoError(t, err)

	m.FlowOpened()
	m.FlowOpened()
	m.Submission(metrics.OutcomeSucceeded)
	m.StaleDiscarded(metrics.KindGas)
	m.ObserveCall("estimate_gas", time.Now())

	count, err := testutil.GatherAndCount(m.Registry(),
		"mobile_wallet_send_flows_opened_total",
		"mobile_wallet_send_submissions_total",
		"mobile_wallet_send_stale_responses_total",
	)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "mobile_wallet_send_flows_opened_total 2")
}

func TestNilServiceIsNoop(t *testing.T) {
	var m *metrics.Service
	assert.NotPanics(t, func() {
		m.FlowOpened()
		m.Submission(metrics.OutcomeFailed)
		m.StaleDiscarded(metrics.KindBalance)
		m.ObserveCall("balance", time.Now())
	})
}
