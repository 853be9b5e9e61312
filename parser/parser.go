package parser

import (
	"github.com/cottand/variance/frontend/ast"
	"github.com/cottand/variance/frontend/varerr"
	"github.com/hashicorp/go-set/v3"
)

// parseError aborts a parse; it is recovered in ParseTokens only
type parseError struct {
	err varerr.VarError
}

type parser struct {
	tokens []Token
	index  int
	// end is where the source ends, used to position end-of-input errors
	end ast.Range
}

func (p *parser) has() bool {
	return p.index < len(p.tokens)
}

func (p *parser) peek() (Token, bool) {
	if !p.has() {
		return Token{}, false
	}
	return p.tokens[p.index], true
}

// peekIs reports whether the next token is exactly text
func (p *parser) peekIs(text string) bool {
	tok, ok := p.peek()
	return ok && tok.Text == text
}

func (p *parser) fail(expected string) {
	tok, ok := p.peek()
	if !ok {
		panic(parseError{varerr.New(varerr.NewParse{Positioner: p.end, Expected: expected})})
	}
	panic(parseError{varerr.New(varerr.NewParse{Positioner: tok.Range, Expected: expected, Found: tok.Text})})
}

// expect consumes the next token, which must be exactly text
func (p *parser) expect(text string) Token {
	if !p.peekIs(text) {
		p.fail("'" + text + "'")
	}
	tok := p.tokens[p.index]
	p.index++
	return tok
}

func (p *parser) identifier(what string) Token {
	tok, ok := p.peek()
	if !ok || tok.Kind != Identifier {
		p.fail(what)
	}
	p.index++
	return tok
}

//	Class := "class" Identifier "<" ParamList ">" "{" Method* "}"
func (p *parser) class() ast.ClassDecl {
	start := p.expect("class")
	name := p.identifier("class name")
	p.expect("<")
	params := p.paramList(name.Text)
	p.expect(">")
	p.expect("{")
	var methods []ast.Method
	for !p.peekIs("}") {
		methods = append(methods, p.method())
	}
	end := p.expect("}")
	return ast.ClassDecl{
		Name:    name.Text,
		Params:  params,
		Methods: methods,
		Range:   ast.RangeBetween(start, end),
	}
}

//	ParamList := Identifier ("," Identifier)*
func (p *parser) paramList(class string) []string {
	seen := set.New[string](4)
	var params []string
	for {
		param := p.identifier("type parameter name")
		if !seen.Insert(param.Text) {
			panic(parseError{varerr.New(varerr.NewDuplicateParam{Positioner: param.Range, Class: class, Param: param.Text})})
		}
		params = append(params, param.Text)
		if !p.peekIs(",") {
			return params
		}
		p.expect(",")
	}
}

//	Method := Type Identifier "(" Type* ")" ";"
//
// Parameter types are not separated by commas, so `void set(T x)` has two
// parameter types, T and x
func (p *parser) method() ast.Method {
	if !p.has() {
		p.fail("method or '}'")
	}
	ret := p.typ()
	name := p.identifier("method name")
	p.expect("(")
	var params []ast.Type
	for !p.peekIs(")") {
		params = append(params, p.typ())
	}
	p.expect(")")
	end := p.expect(";")
	return ast.Method{
		Return: ret,
		Name:   name.Text,
		Params: params,
		Range:  ast.RangeBetween(ret, end),
	}
}

//	Type     := Identifier TypeArgs?
//	TypeArgs := "<" TypeArg ("," TypeArg)* ">"
func (p *parser) typ() ast.Type {
	name := p.identifier("type name")
	t := ast.Type{Name: name.Text, Range: name.Range}
	if !p.peekIs("<") {
		return t
	}
	p.expect("<")
	for {
		t.Args = append(t.Args, p.typeArg())
		if !p.peekIs(",") {
			break
		}
		p.expect(",")
	}
	end := p.expect(">")
	t.Range = ast.RangeBetween(name, end)
	return t
}

//	TypeArg := "?" ("extends" | "super") Type | Type
func (p *parser) typeArg() ast.TypeArg {
	if !p.peekIs("?") {
		return ast.TypeArg{Wildcard: ast.Bare, Type: p.typ()}
	}
	p.expect("?")
	switch {
	case p.peekIs("extends"):
		p.expect("extends")
		return ast.TypeArg{Wildcard: ast.Extends, Type: p.typ()}
	case p.peekIs("super"):
		p.expect("super")
		return ast.TypeArg{Wildcard: ast.Super, Type: p.typ()}
	default:
		p.fail("'extends' or 'super'")
		return ast.TypeArg{}
	}
}
