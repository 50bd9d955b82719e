// internal/wordsource/wordsource.go
//
// Secret word acquisition: remote word service first, offline list second.
//
// The remote service speaks the random-word-api format: GET returns a JSON
// array of strings, e.g. ["badger"]. Any deviation (transport error, non-200
// status, wrong content type, bad JSON, non-string or non-alphabetic first
// element) is a failure, and Source falls back to the offline list.

package wordsource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/robalobadob/hangman/internal/words"
)

// DefaultURL is the public random word service.
const DefaultURL = "https://random-word-api.herokuapp.com/word"

// ErrBadPayload is returned when the response body is not ["word"].
var ErrBadPayload = errors.New("wordsource: unexpected payload")

// Fetcher returns a single word from somewhere remote.
type Fetcher interface {
	Fetch(ctx context.Context) (string, error)
}

// Client fetches words over HTTP.
type Client struct {
	URL  string
	HTTP *http.Client
}

// NewClient builds a Client with the given request timeout.
func NewClient(url string, timeout time.Duration) *Client {
	if url == "" {
		url = DefaultURL
	}
	return &Client{URL: url, HTTP: &http.Client{Timeout: timeout}}
}

// Fetch requests one word and returns it lowercased.
func (c *Client) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return "", fmt.Errorf("wordsource: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("wordsource: get %s: %w", c.URL, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, res.Body)
		return "", fmt.Errorf("wordsource: request failed: status %d", res.StatusCode)
	}
	if mt, _, _ := mime.ParseMediaType(res.Header.Get("Content-Type")); mt != "application/json" {
		_, _ = io.Copy(io.Discard, res.Body)
		return "", fmt.Errorf("wordsource: invalid content-type %q", res.Header.Get("Content-Type"))
	}

	var payload []json.RawMessage
	if err := json.NewDecoder(io.LimitReader(res.Body, 64<<10)).Decode(&payload); err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("%w: empty array", ErrBadPayload)
	}
	var w string
	if err := json.Unmarshal(payload[0], &w); err != nil {
		return "", fmt.Errorf("%w: first element is not a string", ErrBadPayload)
	}
	w = strings.ToLower(strings.TrimSpace(w))
	if !words.IsWord(w) {
		return "", fmt.Errorf("%w: %q is not a word", ErrBadPayload, w)
	}
	return w, nil
}

// Source returns a secret word and never fails.
type Source struct {
	Remote  Fetcher     // may be nil for offline play
	Offline *words.List // required
	Log     zerolog.Logger
}

// Word tries Remote, then picks from Offline.
func (s *Source) Word(ctx context.Context) string {
	if s.Remote != nil {
		w, err := s.Remote.Fetch(ctx)
		if err == nil {
			s.Log.Debug().Str("source", "remote").Int("length", len(w)).Msg("word fetched")
			return w
		}
		s.Log.Warn().Err(err).Msg("fetch error, starting an offline game")
	}
	return s.Offline.Random()
}
