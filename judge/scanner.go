package judge

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrMalformedInput wraps every token-level parse failure.
var ErrMalformedInput = errors.New("judge: malformed input")

// maxToken bounds a single token (a full grid row, for instance).
const maxToken = 1 << 20

// Scanner reads whitespace-separated tokens with one token of lookahead.
type Scanner struct {
	sc      *bufio.Scanner
	peeked  string
	hasPeek bool
	err     error
}

// NewScanner wraps r.
func NewScanner(r io.Reader) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxToken)
	sc.Split(bufio.ScanWords)
	return &Scanner{sc: sc}
}

// More reports whether another token is available.
func (s *Scanner) More() bool {
	if s.hasPeek {
		return true
	}
	if !s.sc.Scan() {
		s.err = s.sc.Err()
		return false
	}
	s.peeked, s.hasPeek = s.sc.Text(), true
	return true
}

// Word returns the next token.
func (s *Scanner) Word() (string, error) {
	if !s.More() {
		if s.err != nil {
			return "", fmt.Errorf("%w: %w", ErrMalformedInput, s.err)
		}
		return "", fmt.Errorf("%w: %w", ErrMalformedInput, io.ErrUnexpectedEOF)
	}
	s.hasPeek = false
	return s.peeked, nil
}

// Int returns the next token parsed as a base-10 int.
func (s *Scanner) Int() (int, error) {
	tok, err := s.Word()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrMalformedInput, tok)
	}
	return v, nil
}

// Int64 returns the next token parsed as a base-10 int64.
func (s *Scanner) Int64() (int64, error) {
	tok, err := s.Word()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a 64-bit integer", ErrMalformedInput, tok)
	}
	return v, nil
}
