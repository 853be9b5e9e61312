package parser

import (
	"fmt"

	"github.com/cottand/variance/frontend/ast"
	"github.com/cottand/variance/frontend/varerr"
	"github.com/cottand/variance/internal/log"
)

var logger = log.Section("parser")

// ParseTokens parses tokens (whitespace included) into class declarations.
// srcLen positions errors at the end of input.
//
// Parsing stops at the first malformed declaration: the returned errors then
// hold exactly one error and the declarations are nil.
func ParseTokens(tokens []Token, srcLen int) (decls []ast.ClassDecl, errs *varerr.Errors) {
	filtered := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind != Whitespace {
			filtered = append(filtered, tok)
		}
	}
	p := &parser{tokens: filtered, end: ast.OffsetRange(srcLen, srcLen)}

	defer func() {
		if r := recover(); r != nil {
			asParseErr, ok := r.(parseError)
			if !ok {
				panic(fmt.Sprintf("parser panicked: %v", r))
			}
			decls = nil
			errs = errs.With(asParseErr.err)
			logger.Debug("malformed declaration", "error", varerr.FormatWithCode(asParseErr.err))
		}
	}()

	for p.has() {
		decl := p.class()
		logger.Debug("parsed class", "decl", decl)
		decls = append(decls, decl)
	}
	logger.Debug("parsed declarations", "classes", len(decls), "tokens", len(filtered))
	return decls, nil
}

// ParseToAST tokenizes and parses src
func ParseToAST(src string) ([]ast.ClassDecl, *varerr.Errors) {
	return ParseTokens(Tokenize(src), len(src))
}
