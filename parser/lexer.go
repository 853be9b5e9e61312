package parser

import (
	"unicode"
	"unicode/utf8"

	"github.com/cottand/variance/frontend/ast"
)

type TokenKind uint8

const (
	Whitespace TokenKind = iota
	Identifier
	Punctuation
)

func (k TokenKind) String() string {
	switch k {
	case Whitespace:
		return "whitespace"
	case Identifier:
		return "identifier"
	case Punctuation:
		return "punctuation"
	default:
		return "invalid"
	}
}

type Token struct {
	Kind TokenKind
	Text string
	ast.Range
}

func isIdentifierChar(r rune) bool {
	return r == '_' || r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}

// Tokenize splits src into tokens covering every character exactly once.
// Whitespace and identifier characters are grouped into maximal runs,
// anything else is a single-character punctuation token.
func Tokenize(src string) []Token {
	var tokens []Token
	for offset := 0; offset < len(src); {
		r, _ := utf8.DecodeRuneInString(src[offset:])
		var kind TokenKind
		var accept func(rune) bool
		switch {
		case unicode.IsSpace(r):
			kind, accept = Whitespace, unicode.IsSpace
		case isIdentifierChar(r):
			kind, accept = Identifier, isIdentifierChar
		default:
			kind, accept = Punctuation, nil
		}

		end := offset
		for end < len(src) {
			next, width := utf8.DecodeRuneInString(src[end:])
			if end > offset && (accept == nil || !accept(next)) {
				break
			}
			end += width
		}
		tokens = append(tokens, Token{
			Kind:  kind,
			Text:  src[offset:end],
			Range: ast.OffsetRange(offset, end),
		})
		offset = end
	}
	return tokens
}
