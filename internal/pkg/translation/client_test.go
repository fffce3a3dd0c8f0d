package translation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newTestClient(url string) *Client {
	return NewClient(Config{
		BaseURL:       url,
		Timeout:       time.Second,
		RateLimit:     rate.Inf,
		MaxRetries:    1,
		RetryInterval: time.Millisecond,
	})
}

func TestSessionTranslateAPI(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/translate", r.URL.Path)

		var req translateRequest
		require.NoError(t, sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "fr", req.Source)
		assert.Equal(t, "en", req.Target)
		assert.Equal(t, "Construction de la route nationale", req.Q)

		_, _ = w.Write([]byte(`{"translatedText": "Construction of the national road"}`))
	}))
	defer srv.Close()

	s := newTestClient(srv.URL).NewSession()

	res := s.Translate(context.Background(), "Construction de la route nationale", "fr")
	assert.Equal(t, MethodAPI, res.Method)
	assert.Equal(t, "Construction of the national road", res.Text)
	assert.True(t, res.Translated())

	// cached
	res = s.Translate(context.Background(), "Construction de la route nationale", "fr")
	assert.Equal(t, MethodAPI, res.Method)
	assert.EqualValues(t, 1, calls.Load())

	stats := s.Stats()
	assert.Equal(t, 2, stats.TotalRequests)
	assert.Equal(t, 2, stats.Success)
	assert.Equal(t, 2, stats.Languages["fr"])
}

func TestSessionServerErrorFallsBack(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := newTestClient(srv.URL).NewSession()

	res := s.Translate(context.Background(), "Travaux de construction de la route", "fr")
	assert.Equal(t, MethodFallback, res.Method)
	assert.Equal(t, "Works de construction de la route", res.Text)
	assert.EqualValues(t, 2, calls.Load())

	res = s.Translate(context.Background(), "Bonjour tout le monde", "fr")
	assert.Equal(t, MethodFailed, res.Method)
	assert.Equal(t, "Bonjour tout le monde", res.Text)
	assert.False(t, res.Translated())

	stats := s.Stats()
	assert.Equal(t, 1, stats.FallbackUsed)
	assert.Equal(t, 1, stats.Failed)
	assert.Equal(t, 0, stats.Success)
}

func TestSessionClientErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "bad language"}`))
	}))
	defer srv.Close()

	res := newTestClient(srv.URL).NewSession().Translate(context.Background(), "Licitación de obras viales", "es")
	assert.Equal(t, MethodFallback, res.Method)
	assert.Equal(t, "Tender de obras viales", res.Text)
	assert.EqualValues(t, 1, calls.Load())
}

func TestSessionTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, Timeout: 50 * time.Millisecond, RateLimit: rate.Inf, RetryInterval: time.Millisecond})

	start := time.Now()
	res := c.NewSession().Translate(context.Background(), "Bonjour tout le monde", "fr")

	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, MethodFailed, res.Method)
	assert.Equal(t, "Bonjour tout le monde", res.Text)
}

func TestSessionAlreadyEnglish(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("english text must not reach the api")
	}))
	defer srv.Close()

	s := newTestClient(srv.URL).NewSession()

	res := s.Translate(context.Background(), "Supply of laptops for the schools", "")
	assert.Equal(t, MethodAlreadyEnglish, res.Method)
	assert.Equal(t, "Supply of laptops for the schools", res.Text)

	res = s.Translate(context.Background(), "   ", "fr")
	assert.Equal(t, MethodSkipped, res.Method)

	stats := s.Stats()
	assert.Equal(t, 1, stats.TotalRequests)
	assert.Equal(t, 1, stats.AlreadyEnglish)
}

func TestSessionsDoNotShareState(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"translatedText": "Works"}`))
	}))
	defer srv.Close()

	factory := newTestClient(srv.URL).Factory()
	first, second := factory(), factory()

	first.Translate(context.Background(), "Travaux", "fr")
	assert.Equal(t, 1, first.Stats().TotalRequests)
	assert.Equal(t, 0, second.Stats().TotalRequests)
}

func TestNoop(t *testing.T) {
	res := NoopFactory().Translate(context.Background(), "Travaux", "fr")
	assert.Equal(t, MethodSkipped, res.Method)
	assert.Equal(t, "Travaux", res.Text)
}

func TestStatsSnapshotIsACopy(t *testing.T) {
	c := newStatsCounter()
	c.record(Result{Method: MethodAPI, Lang: "es"})

	snap := c.snapshot()
	snap.Languages["es"] = 100

	assert.Equal(t, 1, c.snapshot().Languages["es"])
}
