package format

import (
	"fmt"
	"strconv"
)

// The format script grammar, a fixed subset deliberately free of any
// ambient capability:
//
//	script  = { stmt sep } ;
//	stmt    = "return" [ expr ]
//	        | "if" expr block [ "else" ( stmt-if | block ) ]
//	        | ident "=" expr
//	        | expr ;
//	block   = "{" { stmt sep } "}" ;
//	expr    = or ;
//	or      = and { "||" and } ;
//	and     = cmp { "&&" cmp } ;
//	cmp     = add [ ( "==" | "!=" | "<" | "<=" | ">" | ">=" ) add ] ;
//	add     = mul { ( "+" | "-" ) mul } ;
//	mul     = unary { ( "*" | "/" ) unary } ;
//	unary   = ( "!" | "-" ) unary | postfix ;
//	postfix = primary { "." ident } ;
//	primary = int | string | "true" | "false" | ident
//	        | ident "(" [ expr { "," expr } ] ")"
//	        | "(" expr ")" ;

type stmt interface{ stmtNode() }

type exprStmt struct {
	x expr
}

type assignStmt struct {
	name string
	x    expr
	line int
}

type returnStmt struct {
	x    expr // nil for a bare return
	line int
}

type ifStmt struct {
	cond     expr
	then     []stmt
	elseArm  []stmt // nil when absent
	line     int
}

func (*exprStmt) stmtNode()   {}
func (*assignStmt) stmtNode() {}
func (*returnStmt) stmtNode() {}
func (*ifStmt) stmtNode()     {}

type expr interface{ exprLine() int }

type stringLit struct {
	raw  string // literal text with interpolation braces intact
	line int
}

type intLit struct {
	n    int
	line int
}

type boolLit struct {
	b    bool
	line int
}

type identExpr struct {
	name string
	line int
}

type selectorExpr struct {
	x     expr
	field string
	line  int
}

type unaryExpr struct {
	op   tokenKind
	x    expr
	line int
}

type binaryExpr struct {
	op   tokenKind
	l, r expr
	line int
}

type callExpr struct {
	name string
	args []expr
	line int
}

func (e *stringLit) exprLine() int    { return e.line }
func (e *intLit) exprLine() int       { return e.line }
func (e *boolLit) exprLine() int      { return e.line }
func (e *identExpr) exprLine() int    { return e.line }
func (e *selectorExpr) exprLine() int { return e.line }
func (e *unaryExpr) exprLine() int    { return e.line }
func (e *binaryExpr) exprLine() int   { return e.line }
func (e *callExpr) exprLine() int     { return e.line }

type parser struct {
	toks []token
	pos  int
}

// parse turns a format script into a statement list. Any failure is a
// malformed-script error with a line number.
func parse(src string) ([]stmt, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	stmts, err := p.stmtList(tokEOF)
	if err != nil {
		return nil, err
	}
	return stmts, nil
}

func (p *parser) cur() token  { return p.toks[p.pos] }
func (p *parser) next() token { t := p.toks[p.pos]; p.pos++; return t }

func (p *parser) skipSeps() {
	for p.cur().kind == tokSep {
		p.pos++
	}
}

func (p *parser) expect(kind tokenKind, what string) (token, error) {
	t := p.cur()
	if t.kind != kind {
		return t, p.errorf(t, "expected %s", what)
	}
	p.pos++
	return t, nil
}

func (p *parser) errorf(t token, format string, args ...interface{}) error {
	return fmt.Errorf("line %d: %s", t.line, fmt.Sprintf(format, args...))
}

// stmtList parses statements until the given closing token, which is left
// unconsumed.
func (p *parser) stmtList(until tokenKind) ([]stmt, error) {
	var stmts []stmt
	p.skipSeps()
	for p.cur().kind != until {
		s, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)

		// A separator is required between statements.
		if p.cur().kind != until && p.cur().kind != tokSep {
			return nil, p.errorf(p.cur(), "unexpected %q after statement", p.cur().text)
		}
		p.skipSeps()
	}
	return stmts, nil
}

func (p *parser) statement() (stmt, error) {
	switch t := p.cur(); t.kind {
	case tokReturn:
		p.pos++
		if k := p.cur().kind; k == tokSep || k == tokEOF || k == tokRBrace {
			return &returnStmt{line: t.line}, nil
		}
		x, err := p.expression()
		if err != nil {
			return nil, err
		}
		return &returnStmt{x: x, line: t.line}, nil

	case tokIf:
		return p.ifStatement()

	case tokIdent:
		if p.toks[p.pos+1].kind == tokAssign {
			p.pos += 2
			x, err := p.expression()
			if err != nil {
				return nil, err
			}
			return &assignStmt{name: t.text, x: x, line: t.line}, nil
		}
	}

	x, err := p.expression()
	if err != nil {
		return nil, err
	}
	return &exprStmt{x: x}, nil
}

func (p *parser) ifStatement() (stmt, error) {
	t, _ := p.expect(tokIf, "'if'")

	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	then, err := p.block()
	if err != nil {
		return nil, err
	}

	s := &ifStmt{cond: cond, then: then, line: t.line}

	// 'else' may follow the closing brace, possibly on the next line.
	save := p.pos
	p.skipSeps()
	if p.cur().kind != tokElse {
		p.pos = save
		return s, nil
	}
	p.pos++

	if p.cur().kind == tokIf {
		chained, err := p.ifStatement()
		if err != nil {
			return nil, err
		}
		s.elseArm = []stmt{chained}
		return s, nil
	}

	s.elseArm, err = p.block()
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (p *parser) block() ([]stmt, error) {
	if _, err := p.expect(tokLBrace, "'{'"); err != nil {
		return nil, err
	}
	stmts, err := p.stmtList(tokRBrace)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokRBrace, "'}'"); err != nil {
		return nil, err
	}
	// A block always yields a non-nil slice so an empty else arm is
	// distinguishable from an absent one.
	if stmts == nil {
		stmts = []stmt{}
	}
	return stmts, nil
}

func (p *parser) expression() (expr, error) {
	return p.orExpr()
}

func (p *parser) orExpr() (expr, error) {
	l, err := p.andExpr()
	if err != nil {
		return nil, err
	}
	for p.cur().kind == tokOr {
		t := p.next()
		r, err := p.andExpr()
		if err != nil {
			return nil, err
		}
		l = &binaryExpr{op: tokOr, l: l, r: r, line: t.line}
	}
	return l, nil
}

func (p *parser) andExpr() (expr, error) {
	l, err := p.cmpExpr()
	if err != nil {
		return nil, err
	}
	for p.cur().kind == tokAnd {
		t := p.next()
		r, err := p.cmpExpr()
		if err != nil {
			return nil, err
		}
		l = &binaryExpr{op: tokAnd, l: l, r: r, line: t.line}
	}
	return l, nil
}

func (p *parser) cmpExpr() (expr, error) {
	l, err := p.addExpr()
	if err != nil {
		return nil, err
	}
	switch k := p.cur().kind; k {
	case tokEq, tokNeq, tokLt, tokLe, tokGt, tokGe:
		t := p.next()
		r, err := p.addExpr()
		if err != nil {
			return nil, err
		}
		return &binaryExpr{op: k, l: l, r: r, line: t.line}, nil
	}
	return l, nil
}

func (p *parser) addExpr() (expr, error) {
	l, err := p.mulExpr()
	if err != nil {
		return nil, err
	}
	for {
		k := p.cur().kind
		if k != tokPlus && k != tokMinus {
			return l, nil
		}
		t := p.next()
		r, err := p.mulExpr()
		if err != nil {
			return nil, err
		}
		l = &binaryExpr{op: k, l: l, r: r, line: t.line}
	}
}

func (p *parser) mulExpr() (expr, error) {
	l, err := p.unaryExpr()
	if err != nil {
		return nil, err
	}
	for {
		k := p.cur().kind
		if k != tokStar && k != tokSlash {
			return l, nil
		}
		t := p.next()
		r, err := p.unaryExpr()
		if err != nil {
			return nil, err
		}
		l = &binaryExpr{op: k, l: l, r: r, line: t.line}
	}
}

func (p *parser) unaryExpr() (expr, error) {
	switch t := p.cur(); t.kind {
	case tokNot, tokMinus:
		p.pos++
		x, err := p.unaryExpr()
		if err != nil {
			return nil, err
		}
		return &unaryExpr{op: t.kind, x: x, line: t.line}, nil
	}
	return p.postfixExpr()
}

func (p *parser) postfixExpr() (expr, error) {
	x, err := p.primary()
	if err != nil {
		return nil, err
	}
	for p.cur().kind == tokDot {
		t := p.next()
		field, err := p.expect(tokIdent, "field name after '.'")
		if err != nil {
			return nil, err
		}
		x = &selectorExpr{x: x, field: field.text, line: t.line}
	}
	return x, nil
}

func (p *parser) primary() (expr, error) {
	switch t := p.cur(); t.kind {
	case tokInt:
		p.pos++
		n, err := strconv.Atoi(t.text)
		if err != nil {
			return nil, p.errorf(t, "invalid integer literal %q", t.text)
		}
		return &intLit{n: n, line: t.line}, nil

	case tokString:
		p.pos++
		return &stringLit{raw: t.text, line: t.line}, nil

	case tokTrue:
		p.pos++
		return &boolLit{b: true, line: t.line}, nil

	case tokFalse:
		p.pos++
		return &boolLit{b: false, line: t.line}, nil

	case tokIdent:
		p.pos++
		if p.cur().kind != tokLParen {
			return &identExpr{name: t.text, line: t.line}, nil
		}
		p.pos++
		var args []expr
		if p.cur().kind != tokRParen {
			for {
				a, err := p.expression()
				if err != nil {
					return nil, err
				}
				args = append(args, a)
				if p.cur().kind != tokComma {
					break
				}
				p.pos++
			}
		}
		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}
		return &callExpr{name: t.text, args: args, line: t.line}, nil

	case tokLParen:
		p.pos++
		x, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}
		return x, nil
	}

	return nil, p.errorf(p.cur(), "unexpected %q in expression", p.cur().text)
}
