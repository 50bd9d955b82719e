package wordsource

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/hangman/internal/words"
)

func serve(t *testing.T, status int, contentType, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClientFetch(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		srv := serve(t, http.StatusOK, "application/json; charset=utf-8", `["Brouhaha"]`)

		w, err := NewClient(srv.URL, time.Second).Fetch(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "brouhaha", w)
	})

	tests := []struct {
		name        string
		status      int
		contentType string
		body        string
	}{
		{"server error", http.StatusInternalServerError, "application/json", `["word"]`},
		{"html", http.StatusOK, "text/html", `<html></html>`},
		{"not json", http.StatusOK, "application/json", `nope`},
		{"object", http.StatusOK, "application/json", `{"word":"x"}`},
		{"empty array", http.StatusOK, "application/json", `[]`},
		{"number", http.StatusOK, "application/json", `[42]`},
		{"not a word", http.StatusOK, "application/json", `["ice-cream"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := serve(t, tt.status, tt.contentType, tt.body)

			_, err := NewClient(srv.URL, time.Second).Fetch(context.Background())

			assert.Error(t, err)
		})
	}

	t.Run("payload errors are typed", func(t *testing.T) {
		srv := serve(t, http.StatusOK, "application/json", `[true]`)
		_, err := NewClient(srv.URL, time.Second).Fetch(context.Background())
		assert.ErrorIs(t, err, ErrBadPayload)
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := serve(t, http.StatusOK, "application/json", `["x"]`)
		srv.Close()
		_, err := NewClient(srv.URL, time.Second).Fetch(context.Background())
		assert.Error(t, err)
	})
}

type stubFetcher struct {
	word string
	err  error
}

func (s stubFetcher) Fetch(context.Context) (string, error) { return s.word, s.err }

func TestSourceWord(t *testing.T) {
	offline, err := words.Parse(strings.NewReader("gubbins\n"))
	require.NoError(t, err)

	t.Run("remote first", func(t *testing.T) {
		s := &Source{Remote: stubFetcher{word: "malarkey"}, Offline: offline, Log: zerolog.Nop()}
		assert.Equal(t, "malarkey", s.Word(context.Background()))
	})

	t.Run("falls back and warns", func(t *testing.T) {
		var buf bytes.Buffer
		s := &Source{Remote: stubFetcher{err: errors.New("boom")}, Offline: offline, Log: zerolog.New(&buf)}

		assert.Equal(t, "gubbins", s.Word(context.Background()))
		assert.Contains(t, buf.String(), `"level":"warn"`)
		assert.Contains(t, buf.String(), "boom")
	})

	t.Run("offline only", func(t *testing.T) {
		s := &Source{Offline: offline, Log: zerolog.Nop()}
		assert.Equal(t, "gubbins", s.Word(context.Background()))
	})
}
