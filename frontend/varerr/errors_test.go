package varerr

import (
	"testing"

	"github.com/cottand/variance/frontend/ast"
	"github.com/stretchr/testify/assert"
)

func TestNilErrors(t *testing.T) {
	var errs *Errors

	assert.False(t, errs.HasError())
	assert.Empty(t, errs.Errors())
	assert.Equal(t, "", errs.Error())
	assert.False(t, IsMalformed(errs))
}

func TestWithAndMerge(t *testing.T) {
	var errs *Errors
	errs = errs.With(New(NewUnknownClass{Positioner: ast.OffsetRange(0, 4), Name: "List"}))
	other := (*Errors)(nil).With(New(NewParse{Positioner: ast.OffsetRange(5, 6), Expected: "';'", Found: "}"}))

	merged := errs.Merge(other).Merge(nil)

	assert.Len(t, merged.Errors(), 2)
	assert.True(t, IsMalformed(merged))
	assert.Equal(t, "(E002) unknown class reference 'List'\n(E001) malformed declaration: expected ';', found '}'", merged.Error())
}

func TestFormatWithSource(t *testing.T) {
	src := "class A<T> {\n  List<T> get();\n}"
	errs := (*Errors)(nil).With(
		New(NewUnknownClass{Positioner: ast.OffsetRange(15, 22), Name: "List"}),
		New(NewParse{Positioner: ast.OffsetRange(len(src), len(src)), Expected: "'class'"}),
	)

	assert.Equal(t,
		"a.var:2:3: (E002) unknown class reference 'List'\n"+
			"a.var:3:2: (E001) malformed declaration: expected 'class', found end of input",
		errs.FormatWithSource("a.var", src))
}

func TestFormatWithoutPosition(t *testing.T) {
	err := New(NewArityMismatch{Positioner: ast.Range{}, Class: "Box", Declared: 1, Given: 2})

	assert.Equal(t, "(E003) class 'Box' declares 1 type parameters, but 2 were given", FormatAt(err, nil))
}
