package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	t.Parallel()

	m := New()
	m.ObserveUpload("historical", "applied")
	m.ObserveUpload("historical", "applied")
	m.ObserveUpload("any", "rejected")
	m.ObserveResolution("prediction", "custom")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.uploads.WithLabelValues("historical", "applied")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.uploads.WithLabelValues("any", "rejected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.resolutions.WithLabelValues("prediction", "custom")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.resolutions.WithLabelValues("historical", "remote")))
}

func TestMetrics_Handler(t *testing.T) {
	t.Parallel()

	m := New()
	m.ObserveResolution("historical", "remote")

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	res, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer func() { _ = res.Body.Close() }()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.True(t, strings.Contains(string(body), `stock_dashboard_dataset_resolutions_total{kind="historical",source="remote"} 1`))
}
