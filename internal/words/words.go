// internal/words/words.go
//
// Provides the offline word list used when the remote word service is
// unavailable.
//
// Responsibilities:
//   - Load the list from a file (WORDS_FILE) or fall back to the embedded default.
//   - Normalize entries: trimmed, lowercase, letters a–z only, no duplicates.
//   - Supply Random, Contains, Len and the daily word (see daily.go).
//
// File format:
//   One word per line. Blank lines and lines starting with '#' are skipped;
//   anything that is not purely alphabetic is dropped.

package words

import (
	"bufio"
	"crypto/rand"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"
)

//go:embed default_words.txt
var embeddedWords string

// ErrEmpty is returned when a list ends up with no usable words.
var ErrEmpty = errors.New("words: list is empty")

// List is an immutable set of candidate secret words.
type List struct {
	words []string
	set   map[string]struct{}
}

// Load reads the list at path, or the embedded default when path is empty.
func Load(path string) (*List, error) {
	if path == "" {
		return Parse(strings.NewReader(embeddedWords))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()
	l, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("words: %s: %w", path, err)
	}
	return l, nil
}

// Default returns the embedded list.
func Default() *List {
	l, err := Parse(strings.NewReader(embeddedWords))
	if err != nil {
		panic(err) // embedded list is part of the binary
	}
	return l
}

// Parse reads one word per line from r.
func Parse(r io.Reader) (*List, error) {
	l := &List{set: make(map[string]struct{})}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.ToLower(strings.TrimSpace(sc.Text()))
		if w == "" || strings.HasPrefix(w, "#") || !isAlpha(w) {
			continue
		}
		if _, dup := l.set[w]; dup {
			continue
		}
		l.set[w] = struct{}{}
		l.words = append(l.words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(l.words) == 0 {
		return nil, ErrEmpty
	}
	return l, nil
}

// Random returns a uniformly chosen word using crypto/rand.
func (l *List) Random() string {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(l.words))))
	if err != nil {
		return l.words[0]
	}
	return l.words[nBig.Int64()]
}

// Contains reports whether w (any case) is in the list.
func (l *List) Contains(w string) bool {
	_, ok := l.set[strings.ToLower(w)]
	return ok
}

// Len returns the number of words.
func (l *List) Len() int { return len(l.words) }

// At returns the i-th word in file order.
func (l *List) At(i int) string { return l.words[i] }

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// IsWord reports whether s is usable as a secret word: non-empty, a–z only.
func IsWord(s string) bool {
	return s != "" && isAlpha(s)
}
