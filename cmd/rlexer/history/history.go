// Package history stores the statements entered at the rlexer prompt.
package history

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
)

// MaxHistSize is the default number of statements kept in history.
const MaxHistSize = 100

// Size returns the max number of statements that should be stored in history.
// RLEXER_HISTFILESIZE overrides the default when it is a positive integer.
func Size() int {
	if s := os.Getenv("RLEXER_HISTFILESIZE"); s != "" {
		if sz, err := strconv.Atoi(s); err == nil && sz > 0 {
			return sz
		}
	}
	return MaxHistSize
}

// Dedupe returns a copy of the slice with contiguous dupes removed.
func Dedupe(s []string) []string {
	if s == nil {
		return nil
	}
	o := make([]string, 0, len(s))
	for i := range s {
		if i == 0 || s[i] != o[len(o)-1] {
			o = append(o, s[i])
		}
	}
	return o
}

// Filter returns a copy of the slice with blank elements removed.
func Filter(s []string) []string {
	if s == nil {
		return nil
	}
	o := make([]string, 0, len(s))
	for i := range s {
		if strings.TrimSpace(s[i]) == "" {
			continue
		}
		o = append(o, s[i])
	}
	return o
}

// Read reads the statement history from r.
func Read(r io.Reader) ([]string, error) {
	if r == nil {
		return nil, nil
	}
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return Filter(lines), scanner.Err()
}

// Write writes at most maxSz of the most recent statements to w.
func Write(lines []string, maxSz int, w io.Writer) error {
	if w == nil || maxSz <= 0 {
		return nil
	}
	k := Dedupe(Filter(lines))
	if len(k) == 0 {
		return nil
	}
	if len(k) > maxSz {
		k = k[len(k)-maxSz:]
	}
	_, err := io.WriteString(w, strings.Join(k, "\n"))
	return err
}

// Load reads the history file. A missing file is an empty history.
func Load() ([]string, error) {
	r := Reader()
	if r == nil {
		return nil, nil
	}
	defer r.Close()
	return Read(r)
}

// Save replaces the history file with the most recent statements.
func Save(lines []string) error {
	w := Writer()
	if w == nil {
		return nil
	}
	if err := Write(lines, Size(), w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
