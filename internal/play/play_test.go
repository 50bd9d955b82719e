package play

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/hangman/internal/console"
)

type fixedWord string

func (w fixedWord) Word(context.Context) string { return string(w) }

// scriptedInput hands out lines in order, then err (io.EOF by default).
type scriptedInput struct {
	lines []string
	err   error
	reads int
}

func (s *scriptedInput) ReadLine(ctx context.Context, prompt string) (string, error) {
	s.reads++
	if len(s.lines) == 0 {
		if s.err != nil {
			return "", s.err
		}
		return "", io.EOF
	}
	l := s.lines[0]
	s.lines = s.lines[1:]
	return l, nil
}

type message struct {
	style string
	text  string
}

type recorder struct{ msgs []message }

func (r *recorder) Banner(t string)  { r.msgs = append(r.msgs, message{"banner", t}) }
func (r *recorder) Info(t string)    { r.msgs = append(r.msgs, message{"info", t}) }
func (r *recorder) Warning(t string) { r.msgs = append(r.msgs, message{"warning", t}) }
func (r *recorder) Error(t string)   { r.msgs = append(r.msgs, message{"error", t}) }
func (r *recorder) Success(t string) { r.msgs = append(r.msgs, message{"success", t}) }

func (r *recorder) has(style, text string) bool {
	for _, m := range r.msgs {
		if m.style == style && m.text == text {
			return true
		}
	}
	return false
}

func run(t *testing.T, word string, in *scriptedInput, attempts int) (Result, *recorder) {
	t.Helper()
	rec := &recorder{}
	res, err := Run(context.Background(), Options{
		Words:     fixedWord(word),
		Input:     in,
		Presenter: rec,
		Log:       zerolog.Nop(),
		Attempts:  attempts,
	})
	require.NoError(t, err)
	return res, rec
}

func TestRunWinLetterByLetter(t *testing.T) {
	in := &scriptedInput{lines: []string{"c", "z", "z", "a", "", "t"}}

	res, rec := run(t, "Cat", in, 0)

	assert.True(t, res.Finished)
	assert.True(t, res.Won)
	assert.Equal(t, "cat", res.Word)
	assert.Equal(t, 9, res.Attempts)
	assert.Equal(t, 6, res.Rounds)
	assert.True(t, rec.has("banner", "HANGMAN"))
	assert.True(t, rec.has("info", "*  *  *"))
	assert.True(t, rec.has("success", "That is correct."))
	assert.True(t, rec.has("error", "You have 9 attempts left."))
	assert.True(t, rec.has("warning", `Remember the past. There's no "z".`))
	assert.True(t, rec.has("warning", "Wrong input. Try again..."))
	assert.True(t, rec.has("success", "c  a  t"))
	assert.True(t, rec.has("success", `Victory! You guessed the word "cat".`))
}

func TestRunStopsOnceTerminal(t *testing.T) {
	in := &scriptedInput{lines: []string{"sun", "sun", "s"}}

	res, rec := run(t, "sun", in, 0)

	assert.True(t, res.Won)
	assert.Equal(t, 1, res.Rounds)
	assert.Equal(t, 1, in.reads)
	assert.Len(t, in.lines, 2)
	assert.True(t, rec.has("success", `Victory! You guessed the word "sun".`))
}

func TestRunLoss(t *testing.T) {
	in := &scriptedInput{lines: []string{"x", "y"}}

	res, rec := run(t, "dog", in, 1)

	assert.True(t, res.Finished)
	assert.False(t, res.Won)
	assert.Equal(t, 0, res.Attempts)
	assert.Equal(t, 1, res.Rounds)
	assert.True(t, rec.has("error", "0 attempts left."))
	assert.True(t, rec.has("error", `Game over! The word was "dog".`))
}

func TestRunHasteMakesWaste(t *testing.T) {
	in := &scriptedInput{lines: []string{"dig", "o"}}

	_, rec := run(t, "dog", in, 3)

	assert.True(t, rec.has("error", "Haste makes waste."))
	assert.True(t, rec.has("error", "You have 2 attempts left."))
}

func TestRunCancelled(t *testing.T) {
	t.Run("ErrCancelled is a forced loss that shows the word", func(t *testing.T) {
		in := &scriptedInput{lines: []string{"d"}, err: ErrCancelled}

		res, rec := run(t, "dog", in, 0)

		assert.True(t, res.Cancelled)
		assert.True(t, res.Finished)
		assert.False(t, res.Won)
		assert.Equal(t, 0, res.Attempts)
		assert.Equal(t, 1, res.Rounds)
		assert.True(t, rec.has("error", `Game over! The word was "dog".`))
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		in := &scriptedInput{err: context.Canceled}

		res, err := Run(ctx, Options{Words: fixedWord("dog"), Input: in, Presenter: &recorder{}, Log: zerolog.Nop()})

		require.NoError(t, err)
		assert.True(t, res.Cancelled)
		assert.False(t, res.Won)
	})
}

func TestRunInputExhausted(t *testing.T) {
	in := &scriptedInput{lines: []string{"d"}}

	res, rec := run(t, "dog", in, 0)

	assert.False(t, res.Finished)
	assert.False(t, res.Cancelled)
	assert.Equal(t, 1, res.Rounds)
	assert.False(t, rec.has("error", `Game over! The word was "dog".`))
}

func TestRunOversizedGuessIsAMiss(t *testing.T) {
	input := strings.Repeat("a", 70000) + "\n" + strings.Repeat("!", 70000) + "\ncat\n"
	rec := &recorder{}

	res, err := Run(context.Background(), Options{
		Words:     fixedWord("cat"),
		Input:     console.NewReader(strings.NewReader(input), io.Discard),
		Presenter: rec,
		Log:       zerolog.Nop(),
	})

	require.NoError(t, err)
	assert.True(t, res.Won)
	assert.Equal(t, 3, res.Rounds)
	assert.Equal(t, 9, res.Attempts)
	assert.True(t, rec.has("error", "Haste makes waste."))
	assert.True(t, rec.has("warning", "Wrong input. Try again..."))
}

func TestRunErrors(t *testing.T) {
	t.Run("bad word", func(t *testing.T) {
		_, err := Run(context.Background(), Options{Words: fixedWord(""), Input: &scriptedInput{}, Presenter: &recorder{}, Log: zerolog.Nop()})
		assert.Error(t, err)
	})

	t.Run("read failure", func(t *testing.T) {
		in := &scriptedInput{err: errors.New("tty gone")}
		_, err := Run(context.Background(), Options{Words: fixedWord("dog"), Input: in, Presenter: &recorder{}, Log: zerolog.Nop()})
		assert.ErrorContains(t, err, "tty gone")
	})
}

func TestAttemptsLeft(t *testing.T) {
	for n, want := range map[int]string{0: "0 attempts left.", 1: "You have 1 attempt left.", 7: "You have 7 attempts left."} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			assert.Equal(t, want, AttemptsLeft(n))
		})
	}
}

func TestSpaced(t *testing.T) {
	assert.Equal(t, "s  *  n", Spaced("s*n"))
	assert.Equal(t, "", Spaced(""))
}
