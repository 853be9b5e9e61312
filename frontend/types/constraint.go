package types

// Rule names the generation rule a Constraint came from
type Rule string

const (
	RuleReturnPosition    Rule = "return-position"
	RuleArgumentPosition  Rule = "argument-position"
	RuleSelfOccurrence    Rule = "self-occurrence"
	RuleUnrelatedTerminal Rule = "unrelated-terminal"
	RuleNestedArgument    Rule = "nested-argument"
)

// Constraint bounds Left from above:
//
//	Left ≤ Right
type Constraint struct {
	Left  Expr
	Right Expr
	Rule  Rule
}

// String renders the constraint as `left < right`
func (c Constraint) String() string {
	return ExprString(c.Left) + " < " + ExprString(c.Right)
}

// StringWithRule prefixes String with `[rule <tag>] ` when a Rule is set
func (c Constraint) StringWithRule() string {
	if c.Rule == "" {
		return c.String()
	}
	return "[rule " + string(c.Rule) + "] " + c.String()
}
