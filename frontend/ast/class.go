package ast

import "log/slog"

// Wildcard is the use-site variance annotation written on a type argument
type Wildcard byte

const (
	// Bare is a type argument written without a wildcard, e.g. Box<T>
	Bare Wildcard = 'o'
	// Extends is written `? extends T`
	Extends Wildcard = '+'
	// Super is written `? super T`
	Super Wildcard = '-'
)

func (w Wildcard) String() string {
	return string(w)
}

// ClassDecl is a generic class declaration
//
//	class Name<P1, P2> { Methods... }
type ClassDecl struct {
	Name    string
	Params  []string
	Methods []Method
	Range
}

// Signature returns the class name applied to its own parameters, e.g. Box<T>
func (c *ClassDecl) Signature() string {
	return c.Name + "<" + joinStrings(c.Params) + ">"
}

// LogValue renders the declaration back to source, only when the record is logged
func (c ClassDecl) LogValue() slog.Value {
	return slog.StringValue(DeclString(c))
}

type Method struct {
	Return Type
	Name   string
	Params []Type
	Range
}

// Type is a use of either a class parameter or a (possibly applied) class name
type Type struct {
	Name string
	Args []TypeArg
	Range
}

// IsTerminal reports whether the type has no type arguments
func (t *Type) IsTerminal() bool {
	return len(t.Args) == 0
}

type TypeArg struct {
	Wildcard Wildcard
	Type     Type
}

// ReferencedClasses returns the names of every type applied to type arguments
// anywhere in decls, in order of first appearance
func ReferencedClasses(decls []ClassDecl) []string {
	seen := map[string]struct{}{}
	var names []string
	var walk func(t *Type)
	walk = func(t *Type) {
		if t.IsTerminal() {
			return
		}
		if _, ok := seen[t.Name]; !ok {
			seen[t.Name] = struct{}{}
			names = append(names, t.Name)
		}
		for i := range t.Args {
			walk(&t.Args[i].Type)
		}
	}
	for _, decl := range decls {
		for _, m := range decl.Methods {
			walk(&m.Return)
			for i := range m.Params {
				walk(&m.Params[i])
			}
		}
	}
	return names
}
