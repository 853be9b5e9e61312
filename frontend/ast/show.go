package ast

import "strings"

// TypeString renders t with each argument prefixed by its wildcard, e.g. Box<oT, +U>
func TypeString(t Type) string {
	sb := strings.Builder{}
	writeType(&sb, t)
	return sb.String()
}

func writeType(sb *strings.Builder, t Type) {
	sb.WriteString(t.Name)
	if t.IsTerminal() {
		return
	}
	sb.WriteByte('<')
	for i, arg := range t.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(arg.Wildcard.String())
		writeType(sb, arg.Type)
	}
	sb.WriteByte('>')
}

// SourceString renders t in the declaration syntax, e.g. Box<? extends T>
func SourceString(t Type) string {
	sb := strings.Builder{}
	sb.WriteString(t.Name)
	if t.IsTerminal() {
		return sb.String()
	}
	sb.WriteByte('<')
	for i, arg := range t.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		switch arg.Wildcard {
		case Extends:
			sb.WriteString("? extends ")
		case Super:
			sb.WriteString("? super ")
		}
		sb.WriteString(SourceString(arg.Type))
	}
	sb.WriteByte('>')
	return sb.String()
}

// DeclString renders a class declaration back to source, one method per line
func DeclString(c ClassDecl) string {
	sb := strings.Builder{}
	sb.WriteString("class ")
	sb.WriteString(c.Signature())
	sb.WriteString(" {\n")
	for _, m := range c.Methods {
		sb.WriteString("  ")
		sb.WriteString(SourceString(m.Return))
		sb.WriteByte(' ')
		sb.WriteString(m.Name)
		sb.WriteByte('(')
		for i, p := range m.Params {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(SourceString(p))
		}
		sb.WriteString(");\n")
	}
	sb.WriteString("}")
	return sb.String()
}

func joinStrings(s []string) string {
	return strings.Join(s, ", ")
}
