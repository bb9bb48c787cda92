package dsl

import (
	"fmt"
	"strconv"
)

type TokenKind uint8

const (
	TokenEOF TokenKind = iota
	TokenStr
	TokenNum

	// Field keywords.
	TokenName
	TokenDesc
	TokenRarity
	TokenTemple
	TokenTribe
	TokenAttack
	TokenHealth
	TokenSigil
	TokenSpAtk
	TokenCosts
	TokenCostType
	TokenTrait

	TokenOr
	TokenNot
	TokenOpenParen
	TokenCloseParen
	TokenColon
	TokenEqual
	TokenGreater
	TokenGreaterEqual
	TokenLess
	TokenLessEqual
)

var tokenNames = [...]string{
	TokenEOF:          "end of query",
	TokenStr:          "text",
	TokenNum:          "number",
	TokenName:         "name",
	TokenDesc:         "description",
	TokenRarity:       "rarity",
	TokenTemple:       "temple",
	TokenTribe:        "tribe",
	TokenAttack:       "attack",
	TokenHealth:       "health",
	TokenSigil:        "sigil",
	TokenSpAtk:        "spatk",
	TokenCosts:        "cost",
	TokenCostType:     "costtype",
	TokenTrait:        "trait",
	TokenOr:           "or",
	TokenNot:          "!",
	TokenOpenParen:    "(",
	TokenCloseParen:   ")",
	TokenColon:        ":",
	TokenEqual:        "=",
	TokenGreater:      ">",
	TokenGreaterEqual: ">=",
	TokenLess:         "<",
	TokenLessEqual:    "<=",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenNames) {
		return tokenNames[k]
	}
	return "TokenKind(" + strconv.Itoa(int(k)) + ")"
}

// IsField reports whether k names a card attribute.
func (k TokenKind) IsField() bool {
	return k >= TokenName && k <= TokenTrait
}

// Token is a lexed piece of a query. Text is the source it was read from.
type Token struct {
	Kind TokenKind
	Text string
	Num  int
}

func (t Token) String() string {
	switch t.Kind {
	case TokenEOF:
		return t.Kind.String()
	case TokenStr:
		return strconv.Quote(t.Text)
	case TokenNum:
		return strconv.Itoa(t.Num)
	}
	if t.Text != "" {
		return fmt.Sprintf("%q", t.Text)
	}
	return fmt.Sprintf("%q", t.Kind.String())
}

var fieldKeywords = map[string]TokenKind{
	"name":        TokenName,
	"n":           TokenName,
	"description": TokenDesc,
	"d":           TokenDesc,
	"rarity":      TokenRarity,
	"r":           TokenRarity,
	"temple":      TokenTemple,
	"tp":          TokenTemple,
	"tribe":       TokenTribe,
	"tb":          TokenTribe,
	"attack":      TokenAttack,
	"a":           TokenAttack,
	"health":      TokenHealth,
	"h":           TokenHealth,
	"sigil":       TokenSigil,
	"s":           TokenSigil,
	"spatk":       TokenSpAtk,
	"sp":          TokenSpAtk,
	"cost":        TokenCosts,
	"c":           TokenCosts,
	"costtype":    TokenCostType,
	"ct":          TokenCostType,
	"trait":       TokenTrait,
	"tr":          TokenTrait,
	"or":          TokenOr,
}

var symbols = map[string]TokenKind{
	"(":  TokenOpenParen,
	")":  TokenCloseParen,
	"!":  TokenNot,
	":":  TokenColon,
	"=":  TokenEqual,
	">":  TokenGreater,
	"<":  TokenLess,
	">=": TokenGreaterEqual,
	"<=": TokenLessEqual,
}
