package report_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"hr-sync/feature/report"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupReportApp(t *testing.T) (*fiber.App, *report.FileSink) {
	t.Helper()
	sink, err := report.NewFileSink(t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	app := fiber.New()
	feature := report.NewFeature(sink, zap.NewNop())
	require.NoError(t, feature.Load(app))
	return app, sink
}

func TestHandleListReports(t *testing.T) {
	app, sink := setupReportApp(t)

	ctx := context.Background()
	require.NoError(t, sink.Write(ctx, finishedReport()))
	require.NoError(t, sink.Write(ctx, finishedReport()))

	req := httptest.NewRequest("GET", "/reports", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		Count   int               `json:"count"`
		Reports []report.Artifact `json:"reports"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 2, body.Count)
	require.Len(t, body.Reports, 2)
	assert.Equal(t, 3, body.Reports[0].Summary.Processed)
}

func TestHandleListReports_Limit(t *testing.T) {
	app, sink := setupReportApp(t)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		require.NoError(t, sink.Write(ctx, finishedReport()))
	}

	req := httptest.NewRequest("GET", "/reports?limit=1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1, body.Count)
}

func TestHandleListReports_BadLimit(t *testing.T) {
	app, _ := setupReportApp(t)

	req := httptest.NewRequest("GET", "/reports?limit=zero", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}
