package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/theirongolddev/kapital/internal/horizon"
	"github.com/theirongolddev/kapital/internal/model"
)

// reportBody mirrors the JSON shape of model.Report for decoding.
type reportBody struct {
	Scenario     model.Scenario `json:"scenario"`
	Horizon      string         `json:"horizon"`
	HorizonLabel string         `json:"horizon_label"`
	Stride       int            `json:"stride"`
	Capital      struct {
		Points []struct {
			Day   int      `json:"day"`
			Value *float64 `json:"value"`
		} `json:"points"`
		Summary struct {
			Start     *float64 `json:"start"`
			End       *float64 `json:"end"`
			GrowthPct *float64 `json:"growth_pct"`
		} `json:"summary"`
	} `json:"capital"`
	Fees struct {
		Summary struct {
			Start *float64 `json:"start"`
		} `json:"summary"`
	} `json:"fees"`
}

func newTestServer(t *testing.T) (*Service, *httptest.Server) {
	t.Helper()
	svc := New(Config{
		Scenario: model.Scenario{
			StartingInvestors:        50,
			StartingCapital:          10000,
			MonthlyContribution:      200,
			DailyGrowthPct:           1,
			FeePct:                   10,
			MonthlyInvestorGrowthPct: 5,
		},
		Horizon: horizon.Month,
	})
	ts := httptest.NewServer(svc.Handler())
	t.Cleanup(ts.Close)
	return svc, ts
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url) //nolint:noctx // test helper
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestHealth(t *testing.T) {
	_, ts := newTestServer(t)
	resp, body := get(t, ts.URL+"/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok\n", string(body))
}

func TestProjection_Defaults(t *testing.T) {
	_, ts := newTestServer(t)
	resp, body := get(t, ts.URL+"/v1/projection")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var rep reportBody
	require.NoError(t, json.Unmarshal(body, &rep))
	assert.Equal(t, "month", rep.Horizon)
	assert.Equal(t, 30, rep.Scenario.HorizonDays)
	assert.Equal(t, 1, rep.Stride)
	require.Len(t, rep.Capital.Points, 31)
	require.NotNil(t, rep.Capital.Summary.Start)
	assert.Equal(t, 500000.0, *rep.Capital.Summary.Start)
	require.NotNil(t, rep.Fees.Summary.Start)
	assert.Equal(t, 1.0, *rep.Fees.Summary.Start)
}

func TestProjection_QueryOverrides(t *testing.T) {
	_, ts := newTestServer(t)
	resp, body := get(t, ts.URL+"/v1/projection?horizon=year&investors=10&capital=100&growth=0&contribution=0")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var rep reportBody
	require.NoError(t, json.Unmarshal(body, &rep))
	assert.Equal(t, "12 Monate (Jahr)", rep.HorizonLabel)
	assert.Equal(t, 365, rep.Scenario.HorizonDays)
	require.Len(t, rep.Capital.Points, 13)
	assert.Equal(t, 360, rep.Capital.Points[12].Day)
	require.NotNil(t, rep.Capital.Summary.End)
	assert.Equal(t, 1000.0, *rep.Capital.Summary.End)
}

func TestProjection_ExplicitDays(t *testing.T) {
	_, ts := newTestServer(t)
	resp, body := get(t, ts.URL+"/v1/projection?horizon=3y&days=91")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var rep reportBody
	require.NoError(t, json.Unmarshal(body, &rep))
	require.Len(t, rep.Capital.Points, 2)
	assert.Equal(t, 90, rep.Capital.Points[1].Day)
}

func TestProjection_NonFiniteEncodedAsNull(t *testing.T) {
	_, ts := newTestServer(t)
	resp, body := get(t, ts.URL+"/v1/projection?horizon=decade&growth=100&capital=1e6&investors=1e6")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var rep reportBody
	require.NoError(t, json.Unmarshal(body, &rep))
	assert.Nil(t, rep.Capital.Summary.End)
	last := rep.Capital.Points[len(rep.Capital.Points)-1]
	assert.Nil(t, last.Value)
	assert.Equal(t, 3650, last.Day)
}

func TestProjection_BadRequests(t *testing.T) {
	svc, ts := newTestServer(t)

	for _, q := range []string{
		"horizon=fortnight",
		"fee=ten",
		"days=0",
		"days=abc",
		"growth=NaN",
		"days=1000000000",
	} {
		resp, body := get(t, ts.URL+"/v1/projection?"+q)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, q)

		var e errorBody
		require.NoError(t, json.Unmarshal(body, &e), q)
		assert.NotEmpty(t, e.Error, q)
	}

	svc.mu.RLock()
	defer svc.mu.RUnlock()
	assert.Equal(t, int64(6), svc.requests)
	assert.NotEmpty(t, svc.lastError)
}

func TestProjection_MethodNotAllowed(t *testing.T) {
	_, ts := newTestServer(t)
	resp, err := http.Post(ts.URL+"/v1/projection", "application/json", nil) //nolint:noctx // test
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestHorizons(t *testing.T) {
	_, ts := newTestServer(t)
	resp, body := get(t, ts.URL+"/v1/horizons")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var hs []HorizonInfo
	require.NoError(t, json.Unmarshal(body, &hs))
	require.Len(t, hs, 6)
	assert.Equal(t, HorizonInfo{Key: "decade", Label: "10 Jahre", Days: 3650, Stride: 365}, hs[5])
}

func TestStatusCountsRequests(t *testing.T) {
	_, ts := newTestServer(t)
	get(t, ts.URL+"/v1/projection")
	get(t, ts.URL+"/v1/projection?horizon=quarter")

	_, body := get(t, ts.URL+"/v1/status")
	var st Status
	require.NoError(t, json.Unmarshal(body, &st))
	assert.Equal(t, int64(2), st.Requests)
	assert.Equal(t, "month", st.BaseHorizon)
	assert.Equal(t, 50.0, st.BaseScenario.StartingInvestors)
}

func TestNewDefaults(t *testing.T) {
	svc := New(Config{Horizon: horizon.Bucket(-1)})
	assert.Equal(t, "127.0.0.1:8788", svc.cfg.Addr)
	assert.Equal(t, horizon.Month, svc.cfg.Horizon)
}

func TestProjectionSpans(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	svc := New(Config{Horizon: horizon.Year, Tracer: tp.Tracer("test")})
	ts := httptest.NewServer(svc.Handler())
	t.Cleanup(ts.Close)

	get(t, ts.URL+"/v1/projection")
	get(t, ts.URL+"/v1/projection?days=-3")

	spans := rec.Ended()
	require.Len(t, spans, 2)

	ok := spans[0]
	assert.Equal(t, "kapital.projection", ok.Name())
	assert.Contains(t, ok.Attributes(), attribute.String("kapital.horizon", "year"))
	assert.Contains(t, ok.Attributes(), attribute.Int("kapital.points", 13))

	assert.Equal(t, codes.Error, spans[1].Status().Code)
}
