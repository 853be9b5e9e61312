package varerr

import (
	"fmt"
	"go/token"
	"runtime/debug"
	"strings"

	"github.com/cottand/variance/frontend/ast"
)

// enableDebugErrorPrinting makes errors include the frame that created them when printed
var enableDebugErrorPrinting = false

type ErrCode int

const (
	None ErrCode = iota
	Parse
	UnknownClass
	ArityMismatch
	DuplicateParam
)

type VarError interface {
	Error() string
	Code() ErrCode
	ast.Positioner

	withStack([]byte) VarError
	getStack() []byte
}

func FormatWithCode(e VarError) string {
	if enableDebugErrorPrinting && e.getStack() != nil {
		frames := strings.Split(string(e.getStack()), "\n")
		if len(frames) > 6 {
			return fmt.Sprintf("%s:(E%03d) %s", strings.TrimSpace(frames[6]), e.Code(), e.Error())
		}
	}
	return fmt.Sprintf("(E%03d) %s", e.Code(), e.Error())
}

// FormatAt prefixes FormatWithCode with the line and column of e inside file
func FormatAt(e VarError, file *token.File) string {
	pos := e.Pos()
	if file == nil || !pos.IsValid() || int(pos)-1 > file.Size() {
		return FormatWithCode(e)
	}
	position := file.Position(file.Pos(int(pos) - 1))
	return fmt.Sprintf("%s: %s", position, FormatWithCode(e))
}

func New[E VarError](err E) VarError {
	return err.withStack(debug.Stack())
}

// NewParse is a malformed declaration: a token was missing or unexpected
type NewParse struct {
	ast.Positioner
	Expected string
	Found    string
	stack    []byte
}

func (e NewParse) Error() string {
	if e.Found == "" {
		return fmt.Sprintf("malformed declaration: expected %s, found end of input", e.Expected)
	}
	return fmt.Sprintf("malformed declaration: expected %s, found '%s'", e.Expected, e.Found)
}
func (e NewParse) Code() ErrCode    { return Parse }
func (e NewParse) getStack() []byte { return e.stack }
func (e NewParse) withStack(stack []byte) VarError {
	e.stack = stack
	return e
}

// NewUnknownClass is a type applied to arguments whose name is not a declared class
type NewUnknownClass struct {
	ast.Positioner
	Name  string
	stack []byte
}

func (e NewUnknownClass) Error() string {
	return fmt.Sprintf("unknown class reference '%s'", e.Name)
}
func (e NewUnknownClass) Code() ErrCode    { return UnknownClass }
func (e NewUnknownClass) getStack() []byte { return e.stack }
func (e NewUnknownClass) withStack(stack []byte) VarError {
	e.stack = stack
	return e
}

// NewArityMismatch is a class applied to more type arguments than it declares
type NewArityMismatch struct {
	ast.Positioner
	Class    string
	Declared int
	Given    int
	stack    []byte
}

func (e NewArityMismatch) Error() string {
	return fmt.Sprintf("class '%s' declares %d type parameters, but %d were given", e.Class, e.Declared, e.Given)
}
func (e NewArityMismatch) Code() ErrCode    { return ArityMismatch }
func (e NewArityMismatch) getStack() []byte { return e.stack }
func (e NewArityMismatch) withStack(stack []byte) VarError {
	e.stack = stack
	return e
}

type NewDuplicateParam struct {
	ast.Positioner
	Class string
	Param string
	stack []byte
}

func (e NewDuplicateParam) Error() string {
	return fmt.Sprintf("malformed declaration: type parameter '%s' is declared twice in class '%s'", e.Param, e.Class)
}
func (e NewDuplicateParam) Code() ErrCode    { return DuplicateParam }
func (e NewDuplicateParam) getStack() []byte { return e.stack }
func (e NewDuplicateParam) withStack(stack []byte) VarError {
	e.stack = stack
	return e
}

// IsMalformed reports whether errs contains an error raised while parsing
func IsMalformed(errs *Errors) bool {
	for _, e := range errs.Errors() {
		if e.Code() == Parse || e.Code() == DuplicateParam {
			return true
		}
	}
	return false
}
