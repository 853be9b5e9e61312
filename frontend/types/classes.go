package types

import (
	"github.com/benbjohnson/immutable"
	"github.com/cottand/variance/frontend/ast"
)

// ClassIndex looks up class declarations by name.
// It is shared, read-only, by every stage of a run
type ClassIndex struct {
	byName *immutable.Map[string, *ast.ClassDecl]
	decls  []ast.ClassDecl
}

// NewClassIndex indexes decls; for repeated names, the first declaration wins
func NewClassIndex(decls []ast.ClassDecl) ClassIndex {
	m := immutable.NewMap[string, *ast.ClassDecl](nil)
	for i := range decls {
		if _, exists := m.Get(decls[i].Name); exists {
			continue
		}
		m = m.Set(decls[i].Name, &decls[i])
	}
	return ClassIndex{byName: m, decls: decls}
}

func (c ClassIndex) Lookup(name string) (*ast.ClassDecl, bool) {
	if c.byName == nil {
		return nil, false
	}
	return c.byName.Get(name)
}

// Decls returns the declarations in source order
func (c ClassIndex) Decls() []ast.ClassDecl {
	return c.decls
}

// Params returns a reference to every declared parameter, in declaration order
func (c ClassIndex) Params() []ClassParamRef {
	var refs []ClassParamRef
	for i := range c.decls {
		for _, p := range c.decls[i].Params {
			refs = append(refs, RefTo(p, &c.decls[i]))
		}
	}
	return refs
}
