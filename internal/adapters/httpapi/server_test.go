package httpapi_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	backend "github.com/redis/go-redis/v9"

	"github.com/tmsim/tmconv"
	"github.com/tmsim/tmconv/internal/adapters/httpapi"
	redisCache "github.com/tmsim/tmconv/internal/adapters/redis"
	"github.com/tmsim/tmconv/pkg/domain"
)

const sampleSource = "q0(a) -> q1(b)R\nalphabet: (ba)\ntape: (*aab)\n"

func newTestServer(t *testing.T, opts ...httpapi.ServerOption) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(httpapi.NewHandler(tmconv.New(), opts...))
	t.Cleanup(srv.Close)
	return srv
}

func postSource(t *testing.T, url, source string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "text/plain", strings.NewReader(source))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestServer_Convert(t *testing.T) {
	srv := newTestServer(t)

	resp := postSource(t, srv.URL+"/convert", sampleSource)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cfg domain.Configuration
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cfg))
	require.Len(t, cfg.Commands, 1)
	assert.Equal(t, "ab", cfg.Alphabet)
	assert.Equal(t, "*aab", cfg.Tape)
	assert.Equal(t, domain.MoveRight, cfg.Commands[0].NextMove)
}

func TestServer_ConvertMissingDeclarations(t *testing.T) {
	srv := newTestServer(t)

	t.Run("Missing Alphabet", func(t *testing.T) {
		resp := postSource(t, srv.URL+"/convert", "tape: (*a)\n")
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Contains(t, body["error"], "alphabet")
	})

	t.Run("Missing Tape", func(t *testing.T) {
		resp := postSource(t, srv.URL+"/convert", "alphabet: (a)\n")
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Contains(t, body["error"], "tape")
	})
}

func TestServer_Graph(t *testing.T) {
	srv := newTestServer(t)

	resp := postSource(t, srv.URL+"/graph", sampleSource)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	buf := new(strings.Builder)
	_, err := copyBody(buf, resp)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "graph TD")
	assert.Contains(t, buf.String(), "q0 -- \"a/b,R\" --> q1")
}

func TestServer_Health(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, tmconv.Version, body["version"])
}

func TestServer_Metrics(t *testing.T) {
	srv := newTestServer(t)

	postSource(t, srv.URL+"/convert", sampleSource)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	buf := new(strings.Builder)
	_, err = copyBody(buf, resp)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `tmconv_conversions_total{status="ok"} 1`)
}

func TestServer_CacheRoundTrip(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	cache := redisCache.NewFromClient(client)

	srv := newTestServer(t, httpapi.WithCache(cache))

	// First request populates the cache, second is served from it; both
	// must return the identical configuration.
	first := postSource(t, srv.URL+"/convert", sampleSource)
	require.Equal(t, http.StatusOK, first.StatusCode)
	var a domain.Configuration
	require.NoError(t, json.NewDecoder(first.Body).Decode(&a))

	second := postSource(t, srv.URL+"/convert", sampleSource)
	require.Equal(t, http.StatusOK, second.StatusCode)
	var b domain.Configuration
	require.NoError(t, json.NewDecoder(second.Body).Decode(&b))

	assert.Equal(t, a, b)

	metricsResp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer metricsResp.Body.Close()
	buf := new(strings.Builder)
	_, err = copyBody(buf, metricsResp)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "tmconv_cache_hits_total 1")
}

func copyBody(dst *strings.Builder, resp *http.Response) (int64, error) {
	return io.Copy(dst, resp.Body)
}
