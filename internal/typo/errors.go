package typo

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBase is returned when a strand literal holds something other than A, C, G, T
	ErrInvalidBase = errors.New("invalid base")

	// ErrInvalidAminoAcid is returned when an enzyme literal holds an unknown code
	ErrInvalidAminoAcid = errors.New("invalid amino acid")
)

// ParseError describes where a strand or enzyme literal failed to parse.
type ParseError struct {
	// Input is the literal that was parsed
	Input string

	// Pos is the byte offset of the bad base, or the index of the bad amino acid
	Pos int

	// Token is the offending text
	Token string

	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %q: %v %q at %d", e.Input, e.Err, e.Token, e.Pos)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
