package words

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// The word of the day is the same for every player on a given UTC date, so
// a daily hangman game (GET /word/daily, POST /game/new with "daily") can be
// compared between friends. The salt keeps the schedule unguessable from
// the public word list.

// DateKey is the UTC calendar date a daily word is keyed on, as YYYY-MM-DD.
func DateKey(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}

// DailyIndex picks the list position of the word of the day among n words.
// It is 0 for an empty list.
func DailyIndex(day time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	mac := hmac.New(sha256.New, []byte(salt))
	mac.Write([]byte(DateKey(day)))
	return int(binary.BigEndian.Uint64(mac.Sum(nil)) % uint64(n))
}

// Daily returns the hangman word of the day.
func (l *List) Daily(day time.Time, salt string) string {
	return l.At(DailyIndex(day, salt, l.Len()))
}
