package dsl

import (
	"regexp"
	"strconv"
	"strings"
)

// chunkRegex splits a query into quoted strings, word runs, symbol runs and
// stray quotes, in that order of preference.
var chunkRegex = regexp.MustCompile(`"([^"]*)"|([-\w\pL]+)|([^\s\w\pL"-]+)|(")`)

// Lex turns a query into tokens. The result always ends with an EOF token.
func Lex(text string) ([]Token, error) {
	var tokens []Token
	for _, m := range chunkRegex.FindAllStringSubmatchIndex(text, -1) {
		switch {
		case m[2] >= 0:
			tokens = append(tokens, Token{Kind: TokenStr, Text: text[m[2]:m[3]]})
		case m[4] >= 0:
			tokens = append(tokens, lexWord(text[m[4]:m[5]]))
		case m[6] >= 0:
			symbolTokens, err := lexSymbols(text[m[6]:m[7]])
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, symbolTokens...)
		default:
			return nil, &Error{Kind: Lexical, Text: text[m[8]:], Msg: "unterminated quote"}
		}
	}
	return append(tokens, Token{Kind: TokenEOF}), nil
}

func lexWord(word string) Token {
	if kind, ok := fieldKeywords[strings.ToLower(word)]; ok {
		return Token{Kind: kind, Text: word}
	}
	if n, err := strconv.Atoi(word); err == nil {
		return Token{Kind: TokenNum, Text: word, Num: n}
	}
	return Token{Kind: TokenStr, Text: word}
}

// lexSymbols splits a symbol run, preferring two character operators.
func lexSymbols(run string) ([]Token, error) {
	var tokens []Token
	for i := 0; i < len(run); {
		if i+2 <= len(run) {
			if kind, ok := symbols[run[i:i+2]]; ok {
				tokens = append(tokens, Token{Kind: kind, Text: run[i : i+2]})
				i += 2
				continue
			}
		}
		if kind, ok := symbols[run[i:i+1]]; ok {
			tokens = append(tokens, Token{Kind: kind, Text: run[i : i+1]})
			i++
			continue
		}
		return nil, &Error{Kind: Lexical, Text: run[i:], Msg: "unrecognized token"}
	}
	return tokens, nil
}

// IsFreeText reports whether tokens hold only words and numbers, with no
// field selector or operator.
func IsFreeText(tokens []Token) bool {
	words := 0
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenStr, TokenNum:
			words++
		case TokenEOF:
		default:
			return false
		}
	}
	return words > 0
}
