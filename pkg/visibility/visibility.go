package visibility

// Evaluator decides whether a control should be displayed based on a rule
// string and the current control values.
type Evaluator interface {
	Eval(target, rule string, ctx Context) (bool, error)
}

// Context carries the values a rule may reference, keyed by element id (for
// example "title" or "payment"). Select controls contribute their selected
// option value, checkboxes contribute "true" or "false".
type Context struct {
	Values map[string]string
}

// Value returns the value recorded for key.
func (c Context) Value(key string) (string, bool) {
	if c.Values == nil {
		return "", false
	}
	v, ok := c.Values[key]
	return v, ok
}

// EvaluatorFunc adapts a function into an Evaluator.
type EvaluatorFunc func(target, rule string, ctx Context) (bool, error)

// Eval delegates to the underlying function.
func (fn EvaluatorFunc) Eval(target, rule string, ctx Context) (bool, error) {
	return fn(target, rule, ctx)
}

// Always shows every control regardless of the rule.
var Always Evaluator = EvaluatorFunc(func(string, string, Context) (bool, error) {
	return true, nil
})
