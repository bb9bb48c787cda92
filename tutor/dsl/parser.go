package dsl

import (
	"fmt"
	"strings"

	"github.com/magpietutor/magpie/internal/domain/query"
)

type KeywordKind uint8

const (
	KeywordName KeywordKind = iota
	KeywordDesc
	KeywordRarity
	KeywordTemple
	KeywordTribe
	KeywordAttack
	KeywordHealth
	KeywordSigil
	KeywordSpAtk
	KeywordCosts
	KeywordCostType
	KeywordTrait
	KeywordOr
	KeywordNot
)

var stringFields = map[TokenKind]KeywordKind{
	TokenName:     KeywordName,
	TokenDesc:     KeywordDesc,
	TokenRarity:   KeywordRarity,
	TokenTemple:   KeywordTemple,
	TokenTribe:    KeywordTribe,
	TokenSigil:    KeywordSigil,
	TokenSpAtk:    KeywordSpAtk,
	TokenCosts:    KeywordCosts,
	TokenCostType: KeywordCostType,
	TokenTrait:    KeywordTrait,
}

var comparisonFields = map[TokenKind]KeywordKind{
	TokenAttack: KeywordAttack,
	TokenHealth: KeywordHealth,
}

var comparators = map[TokenKind]query.Ordering{
	TokenColon:        query.Equal,
	TokenEqual:        query.Equal,
	TokenGreater:      query.Greater,
	TokenGreaterEqual: query.GreaterEqual,
	TokenLess:         query.Less,
	TokenLessEqual:    query.LessEqual,
}

var comparatorTokens = []TokenKind{
	TokenColon, TokenEqual, TokenGreater, TokenLess, TokenGreaterEqual, TokenLessEqual,
}

// Keyword is a parsed query term.
type Keyword struct {
	Kind KeywordKind
	// Value is the operand of string fields.
	Value string
	Cmp   query.Ordering
	Num   int
	// Left and Right are the operands of Or, Left alone is the operand of Not.
	Left  *Keyword
	Right *Keyword
}

var keywordFieldNames = [...]string{
	KeywordName:     "name",
	KeywordDesc:     "description",
	KeywordRarity:   "rarity",
	KeywordTemple:   "temple",
	KeywordTribe:    "tribe",
	KeywordAttack:   "attack",
	KeywordHealth:   "health",
	KeywordSigil:    "sigil",
	KeywordSpAtk:    "spatk",
	KeywordCosts:    "cost",
	KeywordCostType: "costtype",
	KeywordTrait:    "trait",
}

func (k KeywordKind) String() string {
	switch k {
	case KeywordOr:
		return "or"
	case KeywordNot:
		return "not"
	}
	if int(k) < len(keywordFieldNames) {
		return keywordFieldNames[k]
	}
	return "unknown"
}

func (k Keyword) String() string {
	switch k.Kind {
	case KeywordOr:
		return fmt.Sprintf("(%s or %s)", k.Left, k.Right)
	case KeywordNot:
		return fmt.Sprintf("!%s", k.Left)
	case KeywordAttack, KeywordHealth:
		return fmt.Sprintf("%s%s%d", k.Kind, k.Cmp, k.Num)
	}
	if strings.ContainsAny(k.Value, " \t") {
		return fmt.Sprintf("%s:%q", k.Kind, k.Value)
	}
	return fmt.Sprintf("%s:%s", k.Kind, k.Value)
}

type parser struct {
	tokens []Token
	pos    int
}

// Parse turns tokens ending in EOF into the list of top level terms.
func Parse(tokens []Token) ([]Keyword, error) {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != TokenEOF {
		tokens = append(tokens, Token{Kind: TokenEOF})
	}
	p := &parser{tokens: tokens}

	var program []Keyword
	for p.peek().Kind != TokenEOF {
		kw, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		program = append(program, kw)
	}
	return program, nil
}

func (p *parser) peek() Token {
	return p.tokens[p.pos]
}

func (p *parser) next() Token {
	tok := p.tokens[p.pos]
	if tok.Kind != TokenEOF {
		p.pos++
	}
	return tok
}

func (p *parser) expect(kind TokenKind) (Token, error) {
	tok := p.next()
	if tok.Kind != kind {
		return tok, expectToken(kind, tok)
	}
	return tok, nil
}

func (p *parser) parseOr() (Keyword, error) {
	left, err := p.parseNot()
	if err != nil {
		return Keyword{}, err
	}
	for p.peek().Kind == TokenOr {
		p.next()
		right, err := p.parseNot()
		if err != nil {
			return Keyword{}, err
		}
		l, r := left, right
		left = Keyword{Kind: KeywordOr, Left: &l, Right: &r}
	}
	return left, nil
}

func (p *parser) parseNot() (Keyword, error) {
	if p.peek().Kind != TokenNot {
		return p.parseKeyword()
	}
	p.next()
	inner, err := p.parseKeyword()
	if err != nil {
		return Keyword{}, err
	}
	return Keyword{Kind: KeywordNot, Left: &inner}, nil
}

func (p *parser) parseKeyword() (Keyword, error) {
	tok := p.next()
	if kind, ok := stringFields[tok.Kind]; ok {
		return p.parseStringField(kind)
	}
	if kind, ok := comparisonFields[tok.Kind]; ok {
		return p.parseComparisonField(kind)
	}
	if tok.Kind == TokenOpenParen {
		inner, err := p.parseOr()
		if err != nil {
			return Keyword{}, err
		}
		if _, err := p.expect(TokenCloseParen); err != nil {
			return Keyword{}, err
		}
		return inner, nil
	}
	return Keyword{}, invalidKeyword(tok)
}

func (p *parser) parseStringField(kind KeywordKind) (Keyword, error) {
	if _, err := p.expect(TokenColon); err != nil {
		return Keyword{}, err
	}
	tok := p.next()
	// Field keywords double as bare words so that short values like
	// rarity:r still read as text.
	if tok.Kind != TokenStr && tok.Kind != TokenNum && !tok.Kind.IsField() {
		return Keyword{}, expectTokens([]TokenKind{TokenNum, TokenStr}, tok)
	}
	return Keyword{Kind: kind, Value: tok.Text}, nil
}

func (p *parser) parseComparisonField(kind KeywordKind) (Keyword, error) {
	tok := p.next()
	cmp, ok := comparators[tok.Kind]
	if !ok {
		return Keyword{}, expectTokens(comparatorTokens, tok)
	}
	num, err := p.expect(TokenNum)
	if err != nil {
		return Keyword{}, err
	}
	return Keyword{Kind: kind, Cmp: cmp, Num: num.Num}, nil
}
