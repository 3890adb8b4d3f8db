package format

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// retvalName is the output slot of a format script: its final bound value
// is the render result unless the script returns explicitly.
const retvalName = "retval"

// state holds the variables visible to one script evaluation. The bound
// context plus any script-local assignments; nothing else is reachable.
type state struct {
	vars map[string]value
}

// runScript evaluates a script against the given bound context and returns
// the result value. The result is, in order of precedence: the value of an
// executed return statement, the final value assigned to retval, or the
// value of a trailing expression statement.
func runScript(src string, env map[string]value) (value, error) {
	stmts, err := parse(src)
	if err != nil {
		return value{}, err
	}

	st := &state{vars: make(map[string]value, len(env)+1)}
	for k, v := range env {
		st.vars[k] = v
	}

	ret, tail, err := st.execStmts(stmts)
	if err != nil {
		return value{}, err
	}

	if ret != nil {
		return *ret, nil
	}
	if v, ok := st.vars[retvalName]; ok {
		return v, nil
	}
	if tail != nil {
		return *tail, nil
	}
	return value{}, fmt.Errorf("script produced no value: assign retval, return a value, or end with an expression")
}

// execStmts executes a statement list. ret is non-nil once a return
// statement has executed; tail is the value of the last top-level
// expression statement.
func (st *state) execStmts(stmts []stmt) (ret, tail *value, err error) {
	for _, s := range stmts {
		switch s := s.(type) {
		case *exprStmt:
			v, err := st.eval(s.x)
			if err != nil {
				return nil, nil, err
			}
			tail = &v

		case *assignStmt:
			v, err := st.eval(s.x)
			if err != nil {
				return nil, nil, err
			}
			st.vars[s.name] = v
			tail = nil

		case *returnStmt:
			if s.x == nil {
				// A bare return yields retval.
				if v, ok := st.vars[retvalName]; ok {
					return &v, nil, nil
				}
				return nil, nil, fmt.Errorf("line %d: return without a value and retval is unset", s.line)
			}
			v, err := st.eval(s.x)
			if err != nil {
				return nil, nil, err
			}
			return &v, nil, nil

		case *ifStmt:
			cond, err := st.eval(s.cond)
			if err != nil {
				return nil, nil, err
			}
			if cond.kind != boolVal {
				return nil, nil, fmt.Errorf("line %d: if condition must be bool, got %s", s.line, cond.kind)
			}
			branch := s.then
			if !cond.b {
				branch = s.elseArm
			}
			if branch != nil {
				r, _, err := st.execStmts(branch)
				if err != nil {
					return nil, nil, err
				}
				if r != nil {
					return r, nil, nil
				}
			}
			tail = nil
		}
	}
	return nil, tail, nil
}

func (st *state) eval(e expr) (value, error) {
	switch e := e.(type) {
	case *stringLit:
		s, err := st.interpolate(e.raw, e.line)
		if err != nil {
			return value{}, err
		}
		return stringValue(s), nil

	case *intLit:
		return intValue(e.n), nil

	case *boolLit:
		return boolValue(e.b), nil

	case *identExpr:
		v, ok := st.vars[e.name]
		if !ok {
			return value{}, fmt.Errorf("line %d: unbound name %q", e.line, e.name)
		}
		return v, nil

	case *selectorExpr:
		return st.evalSelector(e)

	case *unaryExpr:
		return st.evalUnary(e)

	case *binaryExpr:
		return st.evalBinary(e)

	case *callExpr:
		return st.evalCall(e)
	}
	return value{}, fmt.Errorf("unhandled expression %T", e)
}

// evalSelector resolves field access, which is only defined on date values.
func (st *state) evalSelector(e *selectorExpr) (value, error) {
	x, err := st.eval(e.x)
	if err != nil {
		return value{}, err
	}
	if x.kind != dateVal {
		return value{}, fmt.Errorf("line %d: cannot access field %q on %s value", e.line, e.field, x.kind)
	}
	switch e.field {
	case "year":
		return intValue(x.date.Year), nil
	case "month":
		return intValue(x.date.Month), nil
	case "day":
		return intValue(x.date.Day), nil
	}
	return value{}, fmt.Errorf("line %d: date has no field %q (year, month, day)", e.line, e.field)
}

func (st *state) evalUnary(e *unaryExpr) (value, error) {
	x, err := st.eval(e.x)
	if err != nil {
		return value{}, err
	}
	switch e.op {
	case tokNot:
		if x.kind != boolVal {
			return value{}, fmt.Errorf("line %d: operator ! requires bool, got %s", e.line, x.kind)
		}
		return boolValue(!x.b), nil
	case tokMinus:
		if x.kind != intVal {
			return value{}, fmt.Errorf("line %d: unary - requires int, got %s", e.line, x.kind)
		}
		return intValue(-x.num), nil
	}
	return value{}, fmt.Errorf("line %d: unhandled unary operator", e.line)
}

func (st *state) evalBinary(e *binaryExpr) (value, error) {
	// Logical operators short-circuit.
	if e.op == tokAnd || e.op == tokOr {
		l, err := st.eval(e.l)
		if err != nil {
			return value{}, err
		}
		if l.kind != boolVal {
			return value{}, fmt.Errorf("line %d: operator %s requires bool operands, got %s", e.line, opText(e.op), l.kind)
		}
		if (e.op == tokAnd && !l.b) || (e.op == tokOr && l.b) {
			return l, nil
		}
		r, err := st.eval(e.r)
		if err != nil {
			return value{}, err
		}
		if r.kind != boolVal {
			return value{}, fmt.Errorf("line %d: operator %s requires bool operands, got %s", e.line, opText(e.op), r.kind)
		}
		return r, nil
	}

	l, err := st.eval(e.l)
	if err != nil {
		return value{}, err
	}
	r, err := st.eval(e.r)
	if err != nil {
		return value{}, err
	}

	switch e.op {
	case tokPlus:
		if l.kind == stringVal && r.kind == stringVal {
			return stringValue(l.str + r.str), nil
		}
		if l.kind == intVal && r.kind == intVal {
			return intValue(l.num + r.num), nil
		}
		return value{}, fmt.Errorf("line %d: cannot add %s and %s (use str() for explicit conversion)", e.line, l.kind, r.kind)

	case tokMinus, tokStar, tokSlash:
		if l.kind != intVal || r.kind != intVal {
			return value{}, fmt.Errorf("line %d: operator %s requires int operands, got %s and %s", e.line, opText(e.op), l.kind, r.kind)
		}
		switch e.op {
		case tokMinus:
			return intValue(l.num - r.num), nil
		case tokStar:
			return intValue(l.num * r.num), nil
		default:
			if r.num == 0 {
				return value{}, fmt.Errorf("line %d: division by zero", e.line)
			}
			return intValue(l.num / r.num), nil
		}

	case tokEq, tokNeq:
		if l.kind != r.kind {
			return value{}, fmt.Errorf("line %d: cannot compare %s with %s", e.line, l.kind, r.kind)
		}
		eq := l.equal(r)
		if e.op == tokNeq {
			eq = !eq
		}
		return boolValue(eq), nil

	case tokLt, tokLe, tokGt, tokGe:
		cmp, err := order(l, r, e.line)
		if err != nil {
			return value{}, err
		}
		switch e.op {
		case tokLt:
			return boolValue(cmp < 0), nil
		case tokLe:
			return boolValue(cmp <= 0), nil
		case tokGt:
			return boolValue(cmp > 0), nil
		default:
			return boolValue(cmp >= 0), nil
		}
	}
	return value{}, fmt.Errorf("line %d: unhandled operator", e.line)
}

// order compares two values of the same orderable kind, returning -1, 0 or 1.
func order(l, r value, line int) (int, error) {
	if l.kind != r.kind {
		return 0, fmt.Errorf("line %d: cannot compare %s with %s", line, l.kind, r.kind)
	}
	switch l.kind {
	case intVal:
		switch {
		case l.num < r.num:
			return -1, nil
		case l.num > r.num:
			return 1, nil
		}
		return 0, nil
	case stringVal:
		return strings.Compare(l.str, r.str), nil
	case dateVal:
		switch {
		case l.date.Before(r.date):
			return -1, nil
		case r.date.Before(l.date):
			return 1, nil
		}
		return 0, nil
	}
	return 0, fmt.Errorf("line %d: %s values are not ordered", line, l.kind)
}

// evalCall dispatches the fixed builtin allowlist. No other functions are
// reachable from a script.
func (st *state) evalCall(e *callExpr) (value, error) {
	args := make([]value, len(e.args))
	for i, a := range e.args {
		v, err := st.eval(a)
		if err != nil {
			return value{}, err
		}
		args[i] = v
	}

	argc := func(n int) error {
		if len(args) != n {
			return fmt.Errorf("line %d: %s() takes %d argument(s), got %d", e.line, e.name, n, len(args))
		}
		return nil
	}
	stringArg := func() (string, error) {
		if err := argc(1); err != nil {
			return "", err
		}
		if args[0].kind != stringVal {
			return "", fmt.Errorf("line %d: %s() requires a string, got %s", e.line, e.name, args[0].kind)
		}
		return args[0].str, nil
	}

	switch e.name {
	case "str":
		if err := argc(1); err != nil {
			return value{}, err
		}
		return stringValue(args[0].text()), nil
	case "len":
		s, err := stringArg()
		if err != nil {
			return value{}, err
		}
		return intValue(utf8.RuneCountInString(s)), nil
	case "upper":
		s, err := stringArg()
		if err != nil {
			return value{}, err
		}
		return stringValue(strings.ToUpper(s)), nil
	case "lower":
		s, err := stringArg()
		if err != nil {
			return value{}, err
		}
		return stringValue(strings.ToLower(s)), nil
	case "trim":
		s, err := stringArg()
		if err != nil {
			return value{}, err
		}
		return stringValue(strings.TrimSpace(s)), nil
	}
	return value{}, fmt.Errorf("line %d: unknown function %q", e.line, e.name)
}

// interpolate resolves {name} placeholders in a string literal against the
// current variables. {{ and }} escape literal braces.
func (st *state) interpolate(raw string, line int) (string, error) {
	var b strings.Builder
	runes := []rune(raw)

	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '{':
			if i+1 < len(runes) && runes[i+1] == '{' {
				b.WriteRune('{')
				i++
				continue
			}
			j := i + 1
			for j < len(runes) && runes[j] != '}' {
				j++
			}
			if j == len(runes) {
				return "", fmt.Errorf("line %d: unclosed interpolation brace", line)
			}
			name := string(runes[i+1 : j])
			if !validIdent(name) {
				return "", fmt.Errorf("line %d: invalid interpolation %q: only bound names may be interpolated", line, name)
			}
			v, ok := st.vars[name]
			if !ok {
				return "", fmt.Errorf("line %d: unbound name %q", line, name)
			}
			b.WriteString(v.text())
			i = j
		case '}':
			if i+1 < len(runes) && runes[i+1] == '}' {
				b.WriteRune('}')
				i++
				continue
			}
			return "", fmt.Errorf("line %d: unmatched '}' in string literal (use }} for a literal brace)", line)
		default:
			b.WriteRune(runes[i])
		}
	}
	return b.String(), nil
}

func validIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

func opText(op tokenKind) string {
	switch op {
	case tokAnd:
		return "&&"
	case tokOr:
		return "||"
	case tokMinus:
		return "-"
	case tokStar:
		return "*"
	case tokSlash:
		return "/"
	}
	return "?"
}
