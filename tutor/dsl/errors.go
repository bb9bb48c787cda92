package dsl

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind is the stage of compilation that rejected a query.
type ErrorKind string

const (
	Lexical   ErrorKind = "lexical"
	Syntactic ErrorKind = "syntactic"
	Semantic  ErrorKind = "semantic"
)

// ParseErrorKind narrows down a syntactic error.
type ParseErrorKind uint8

const (
	InvalidKeyword ParseErrorKind = iota + 1
	ExpectToken
	ExpectTokens
)

// Error is returned for any query that does not compile. Only the first
// problem in a query is reported.
type Error struct {
	Kind  ErrorKind
	Parse ParseErrorKind
	// Field is the attribute a semantic error refers to.
	Field string
	// Text is the offending piece of the query.
	Text     string
	Msg      string
	Expected []TokenKind
	Found    *Token
	// Suggestions are close alternatives for an unknown value.
	Suggestions []string
}

func (e *Error) Error() string {
	var b strings.Builder
	switch e.Kind {
	case Lexical:
		fmt.Fprintf(&b, "%s: %q", e.Msg, e.Text)
	case Syntactic:
		switch e.Parse {
		case InvalidKeyword:
			fmt.Fprintf(&b, "invalid keyword %s", e.Found)
		case ExpectToken:
			fmt.Fprintf(&b, "expected %s but found %s", e.Expected[0], e.Found)
		case ExpectTokens:
			expected := make([]string, 0, len(e.Expected))
			for _, k := range e.Expected {
				expected = append(expected, k.String())
			}
			fmt.Fprintf(&b, "expected one of %s but found %s", strings.Join(expected, ", "), e.Found)
		default:
			b.WriteString(e.Msg)
		}
	case Semantic:
		fmt.Fprintf(&b, "invalid %s %q", e.Field, e.Text)
		if e.Msg != "" {
			fmt.Fprintf(&b, ": %s", e.Msg)
		}
	}
	if len(e.Suggestions) > 0 {
		fmt.Fprintf(&b, " (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}
	return b.String()
}

func invalidKeyword(found Token) *Error {
	return &Error{Kind: Syntactic, Parse: InvalidKeyword, Found: &found}
}

func expectToken(expected TokenKind, found Token) *Error {
	return &Error{Kind: Syntactic, Parse: ExpectToken, Expected: []TokenKind{expected}, Found: &found}
}

func expectTokens(expected []TokenKind, found Token) *Error {
	return &Error{Kind: Syntactic, Parse: ExpectTokens, Expected: expected, Found: &found}
}

func semantic(field, text, msg string) *Error {
	return &Error{Kind: Semantic, Field: field, Text: text, Msg: msg}
}

func isKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

func IsLexical(err error) bool   { return isKind(err, Lexical) }
func IsSyntactic(err error) bool { return isKind(err, Syntactic) }
func IsSemantic(err error) bool  { return isKind(err, Semantic) }
