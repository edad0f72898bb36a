package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, baseURL string, maxAttempts int) (*HTTPClient, *atomic.Int32) {
	t.Helper()
	c := NewClient(Config{
		BaseURL:           baseURL,
		AuthHeader:        "Bearer token",
		Cookie:            "session=abc",
		View:              "view_colaboradores_teste_tecnico",
		TimeoutSeconds:    5,
		MaxAttempts:       maxAttempts,
		RetryDelaySeconds: 5,
	}, zap.NewNop())

	var sleeps atomic.Int32
	c.sleep = func(ctx context.Context, d time.Duration) error {
		// The delay must stay the configured flat 5s, never scaled.
		assert.Equal(t, 5*time.Second, d)
		sleeps.Add(1)
		return nil
	}
	return c, &sleeps
}

func TestFetchColaboradores_Success(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "/data", r.URL.Path)
		assert.Equal(t, "view_colaboradores_teste_tecnico", r.URL.Query().Get("view"))
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		assert.Equal(t, "session=abc", r.Header.Get("Cookie"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"cpf":"11144477735","usuario":"jdoe","nome":"John","sobrenome":"Doe",
			"empresa_cnpj":"12345678000199","empresa_nome":"Acme",
			"centro_custo_identificador":"CC1","centro_custo_nome":"Ops"}]`))
	}))
	defer srv.Close()

	c, sleeps := newTestClient(t, srv.URL, 3)
	records, err := c.FetchColaboradores(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "11144477735", records[0].CPF)
	assert.Equal(t, "jdoe", records[0].Usuario)
	assert.Equal(t, "Acme", records[0].EmpresaNome)
	assert.Equal(t, int32(1), hits.Load())
	assert.Equal(t, int32(0), sleeps.Load())
}

func TestFetchColaboradores_RetriesThenExhausts(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c, sleeps := newTestClient(t, srv.URL, 3)
	records, err := c.FetchColaboradores(context.Background())

	require.Error(t, err)
	assert.Nil(t, records)
	assert.Equal(t, int32(3), hits.Load())
	assert.Equal(t, int32(2), sleeps.Load())

	var unavailable *UnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, 3, unavailable.Attempts)
	assert.Contains(t, unavailable.Err.Error(), "HTTP 502")
}

func TestFetchColaboradores_SingleAttempt(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, sleeps := newTestClient(t, srv.URL, 1)
	_, err := c.FetchColaboradores(context.Background())

	require.Error(t, err)
	assert.Equal(t, int32(1), hits.Load())
	assert.Equal(t, int32(0), sleeps.Load())

	var unavailable *UnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, 1, unavailable.Attempts)
}

func TestFetchColaboradores_RecoversAfterFailure(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c, sleeps := newTestClient(t, srv.URL, 3)
	records, err := c.FetchColaboradores(context.Background())

	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, int32(2), hits.Load())
	assert.Equal(t, int32(1), sleeps.Load())
}

func TestFetchColaboradores_MalformedBodyIsAttemptFailure(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{"not":"an array"}`))
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL, 2)
	_, err := c.FetchColaboradores(context.Background())

	require.Error(t, err)
	assert.Equal(t, int32(2), hits.Load())

	var unavailable *UnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Contains(t, unavailable.Err.Error(), "decode")
}

func TestFetchColaboradores_TransportError(t *testing.T) {
	// Closed server: connection refused on every attempt.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c, _ := newTestClient(t, url, 2)
	_, err := c.FetchColaboradores(context.Background())

	var unavailable *UnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, 2, unavailable.Attempts)
	assert.Error(t, unavailable.Err)
}
