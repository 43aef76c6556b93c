// Package input reads player responses from a line-oriented stream.
package input

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Sentinel errors
var (
	ErrNoInput      = errors.New("no input")
	ErrInvalidGuess = errors.New("guess is not a whole number")
)

// Reader yields whitespace-delimited tokens
// Tokens may span lines, so "10 50\n42" is three guesses
type Reader struct {
	scanner *bufio.Scanner
}

// NewReader wraps r in a token scanner
func NewReader(r io.Reader) *Reader {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	return &Reader{scanner: s}
}

// Token returns the next token
// Returns ErrNoInput at end of stream
func (r *Reader) Token() (string, error) {
	if r.scanner.Scan() {
		return r.scanner.Text(), nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", errors.Wrap(err, "read input")
	}
	return "", ErrNoInput
}

// Int returns the next token parsed as a base-10 integer
func (r *Reader) Int() (int, error) {
	tok, err := r.Token()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidGuess, "%q", tok)
	}
	return n, nil
}

// Choice returns the next token lowercased
func (r *Reader) Choice() (string, error) {
	tok, err := r.Token()
	if err != nil {
		return "", err
	}
	return strings.ToLower(tok), nil
}
