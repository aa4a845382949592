// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package analyzer

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Wordlist is an immutable set of lowercase common-password entries,
// matched by case-insensitive substring containment. Build one with
// NewWordlist or LoadWordlistFile; the zero/nil value matches nothing.
type Wordlist struct {
	entries []string
}

// NewWordlist normalizes entries to lowercase, trims whitespace and drops
// blanks. The input slice is not retained.
func NewWordlist(entries []string) *Wordlist {
	w := &Wordlist{entries: make([]string, 0, len(entries))}
	for _, e := range entries {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		w.entries = append(w.entries, e)
	}
	return w
}

// ReadWordlist builds a Wordlist from one-entry-per-line data. Blank lines
// and lines starting with # are skipped.
func ReadWordlist(r io.Reader) (*Wordlist, error) {
	var entries []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return NewWordlist(entries), nil
}

// LoadWordlistFile reads a wordlist file, one entry per line.
func LoadWordlistFile(name string) (*Wordlist, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()

	return ReadWordlist(file)
}

func (w *Wordlist) Len() int {
	if w == nil {
		return 0
	}
	return len(w.entries)
}

// ContainsSubstring reports whether any entry occurs inside the lowercase
// form of s.
func (w *Wordlist) ContainsSubstring(s string) bool {
	if w == nil {
		return false
	}
	lower := strings.ToLower(s)
	for _, e := range w.entries {
		if strings.Contains(lower, e) {
			return true
		}
	}
	return false
}

var defaultWordlist = NewWordlist(commonPasswords)

// DefaultWordlist returns the embedded common-password table.
func DefaultWordlist() *Wordlist {
	return defaultWordlist
}

// commonPasswords is a small embedded cut of the usual leaked-password
// top lists. Use the fetch command for a full list.
var commonPasswords = []string{
	"password",
	"passw0rd",
	"password1",
	"123456",
	"123456789",
	"1234567890",
	"12345678",
	"111111",
	"123123",
	"654321",
	"000000",
	"696969",
	"666666",
	"112233",
	"abc123",
	"qwerty",
	"qwertyuiop",
	"asdfghjkl",
	"zxcvbnm",
	"letmein",
	"welcome",
	"monkey",
	"dragon",
	"iloveyou",
	"sunshine",
	"princess",
	"admin",
	"login",
	"master",
	"shadow",
	"superman",
	"batman",
	"starwars",
	"pokemon",
	"trustno1",
	"whatever",
	"freedom",
	"secret",
	"summer",
	"winter",
	"ginger",
	"pepper",
	"cookie",
	"cheese",
	"banana",
	"flower",
	"purple",
	"orange",
	"silver",
	"diamond",
	"football",
	"baseball",
	"soccer",
	"hockey",
	"jordan",
	"hunter",
	"killer",
	"ranger",
	"mustang",
	"corvette",
	"ferrari",
	"yamaha",
	"computer",
	"internet",
	"samsung",
	"michael",
	"jessica",
	"jennifer",
	"ashley",
	"amanda",
	"daniel",
	"charlie",
	"thomas",
	"george",
	"andrew",
	"matrix",
	"harley",
}
