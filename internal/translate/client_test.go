package translate

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient()

	if client.Endpoint() != DefaultEndpoint {
		t.Errorf("Expected endpoint %s, got %s", DefaultEndpoint, client.Endpoint())
	}
	if client.Timeout() != DefaultTimeout {
		t.Errorf("Expected timeout %v, got %v", DefaultTimeout, client.Timeout())
	}
}

func TestTranslateSendsQueryAndLangPair(t *testing.T) {
	var gotQuery, gotPair, gotContact string
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get(ParamQuery)
		gotPair = r.URL.Query().Get(ParamLangPair)
		gotContact = r.URL.Query().Get(ParamContact)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"responseData":{"translatedText":"नमस्ते"}}`))
	})

	client := NewClient(WithEndpoint(srv.URL))
	out, err := client.Translate(context.Background(), "Hello", "auto", "hi")

	require.NoError(t, err)
	assert.Equal(t, "नमस्ते", out)
	assert.Equal(t, "Hello", gotQuery)
	assert.Equal(t, "auto|hi", gotPair)
	assert.Empty(t, gotContact)
}

func TestTranslateSendsContactWhenConfigured(t *testing.T) {
	var gotContact string
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotContact = r.URL.Query().Get(ParamContact)
		_, _ = w.Write([]byte(`{"responseData":{"translatedText":"Hallo"}}`))
	})

	client := NewClient(WithEndpoint(srv.URL), WithContact(" me@example.com "))
	_, err := client.Translate(context.Background(), "Hello", "en", "de")

	require.NoError(t, err)
	assert.Equal(t, "me@example.com", gotContact)
}

func TestTranslateMissingFieldYieldsEmptyString(t *testing.T) {
	bodies := []string{
		`{}`,
		`{"responseData":{}}`,
		`{"responseData":null}`,
		`{"responseData":{"translatedText":null},"responseDetails":"QUOTA EXCEEDED"}`,
	}

	for _, body := range bodies {
		body := body
		srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		})

		out, err := NewClient(WithEndpoint(srv.URL)).Translate(context.Background(), "Hello", "en", "fr")
		if err != nil {
			t.Errorf("body %s: expected no error, got %v", body, err)
		}
		if out != "" {
			t.Errorf("body %s: expected empty output, got %q", body, out)
		}
	}
}

func TestTranslateFailuresWrapErrFailed(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "http error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
		},
		{
			name: "too many requests",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
		},
		{
			name: "non json body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("<html>oops</html>"))
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			srv := newTestServer(t, test.handler)
			out, err := NewClient(WithEndpoint(srv.URL)).Translate(context.Background(), "Hello", "en", "fr")

			assert.Empty(t, out)
			assert.True(t, errors.Is(err, ErrFailed), "expected ErrFailed, got %v", err)
		})
	}
}

func TestTranslateTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	client := NewClient(WithEndpoint(srv.URL), WithTimeout(50*time.Millisecond))
	start := time.Now()
	_, err := client.Translate(context.Background(), "Hello", "en", "fr")

	assert.ErrorIs(t, err, ErrFailed)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestTranslateNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL
	srv.Close()

	_, err := NewClient(WithEndpoint(endpoint)).Translate(context.Background(), "Hello", "en", "fr")
	assert.ErrorIs(t, err, ErrFailed)
}

func TestTranslateRejectsInvalidInputWithoutRequest(t *testing.T) {
	var calls atomic.Int32
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})
	client := NewClient(WithEndpoint(srv.URL))

	_, err := client.Translate(context.Background(), "   ", "en", "fr")
	assert.ErrorIs(t, err, ErrFailed)
	assert.ErrorIs(t, err, ErrEmptyText)

	_, err = client.Translate(context.Background(), "Hello", "en", "auto")
	assert.ErrorIs(t, err, ErrFailed)
	assert.ErrorIs(t, err, ErrInvalidTarget)

	assert.Equal(t, int32(0), calls.Load())
}

func TestTranslateInvalidEndpoint(t *testing.T) {
	_, err := NewClient(WithEndpoint("ftp://example.com")).Translate(context.Background(), "Hello", "en", "fr")
	assert.ErrorIs(t, err, ErrFailed)
}

func TestTranslateNoCaching(t *testing.T) {
	var calls atomic.Int32
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"responseData":{"translatedText":"Hola"}}`))
	})
	client := NewClient(WithEndpoint(srv.URL))

	for i := 0; i < 3; i++ {
		out, err := client.Translate(context.Background(), "Hello", "en", "es")
		require.NoError(t, err)
		assert.Equal(t, "Hola", out)
	}
	assert.Equal(t, int32(3), calls.Load())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate(" abc ", 5))
	assert.Equal(t, "ab...", truncate("abcdef", 2))
}
