// Package words splits a character stream into lower cased word tokens.
package words

import (
	"bufio"
	"io"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MaxWordLen is the longest word, in bytes after lower casing, that Scan
// will return. Longer runs of letters and digits are returned as several
// consecutive words.
const MaxWordLen = 255

// Scanner reads words from an io.Reader. A word is a run of letters and
// digits; everything else separates words. Words are lower cased.
type Scanner struct {
	r     *bufio.Reader
	caser cases.Caser
	buf   []byte
	word  string
	err   error
	done  bool
}

// NewScanner returns a new Scanner reading from r
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		r:     bufio.NewReader(r),
		caser: cases.Lower(language.Und),
		buf:   make([]byte, 0, MaxWordLen),
	}
}

func isWordRune(r rune) bool {
	return r != utf8.RuneError && (unicode.IsLetter(r) || unicode.IsDigit(r))
}

// Scan advances to the next word, which is then available through Word.
// It returns false at the end of the input or on a read error.
func (s *Scanner) Scan() bool {
	if s.done {
		s.word = ""
		return false
	}
	s.buf = s.buf[:0]
	s.word = ""
	for {
		r, _, err := s.r.ReadRune()
		if err != nil {
			s.done = true
			if err != io.EOF {
				s.err = err
			}
			break
		}
		if !isWordRune(r) {
			if len(s.buf) > 0 {
				break
			}
			// skip separators
			continue
		}
		// lower casing can grow a rune, so measure what is stored
		lower := s.caser.String(string(r))
		if len(s.buf)+len(lower) > MaxWordLen {
			// leave the rune for the next word
			_ = s.r.UnreadRune()
			break
		}
		s.buf = append(s.buf, lower...)
	}
	if len(s.buf) == 0 {
		return false
	}
	s.word = string(s.buf)
	return true
}

// Word returns the most recent word found by Scan
func (s *Scanner) Word() string {
	return s.word
}

// Err returns the first non-EOF error encountered by the Scanner
func (s *Scanner) Err() error {
	return s.err
}

// Words reads every word from r
func Words(r io.Reader) ([]string, error) {
	var words []string
	sc := NewScanner(r)
	for sc.Scan() {
		words = append(words, sc.Word())
	}
	return words, sc.Err()
}
