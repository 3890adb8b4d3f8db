package format

import (
	"fmt"
	"strings"
	"unicode"
)

// tokenKind enumerates the token types of the format script grammar.
type tokenKind int

const (
	tokEOF tokenKind = iota
	tokSep           // statement separator: newline or ';'
	tokIdent
	tokString
	tokInt
	tokAssign // =
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokEq  // ==
	tokNeq // !=
	tokLt
	tokLe
	tokGt
	tokGe
	tokAnd // &&
	tokOr  // ||
	tokNot // !
	tokLParen
	tokRParen
	tokLBrace
	tokRBrace
	tokComma
	tokDot
	tokIf
	tokElse
	tokReturn
	tokTrue
	tokFalse
)

type token struct {
	kind tokenKind
	text string
	line int
}

var keywords = map[string]tokenKind{
	"if":     tokIf,
	"else":   tokElse,
	"return": tokReturn,
	"true":   tokTrue,
	"false":  tokFalse,
}

// lex tokenizes a format script. Comments run from '#' to end of line.
func lex(src string) ([]token, error) {
	var toks []token
	line := 1
	runes := []rune(src)
	i := 0

	emit := func(kind tokenKind, text string) {
		toks = append(toks, token{kind: kind, text: text, line: line})
	}

	for i < len(runes) {
		c := runes[i]
		switch {
		case c == '\n':
			emit(tokSep, "\n")
			line++
			i++
		case c == ' ' || c == '\t' || c == '\r':
			i++
		case c == '#':
			for i < len(runes) && runes[i] != '\n' {
				i++
			}
		case c == ';':
			emit(tokSep, ";")
			i++
		case c == '\'' || c == '"':
			text, n, err := lexString(runes[i:], line)
			if err != nil {
				return nil, err
			}
			emit(tokString, text)
			i += n
		case unicode.IsDigit(c):
			j := i
			for j < len(runes) && unicode.IsDigit(runes[j]) {
				j++
			}
			emit(tokInt, string(runes[i:j]))
			i = j
		case unicode.IsLetter(c) || c == '_':
			j := i
			for j < len(runes) && (unicode.IsLetter(runes[j]) || unicode.IsDigit(runes[j]) || runes[j] == '_') {
				j++
			}
			word := string(runes[i:j])
			if kind, ok := keywords[word]; ok {
				emit(kind, word)
			} else {
				emit(tokIdent, word)
			}
			i = j
		default:
			two := ""
			if i+1 < len(runes) {
				two = string(runes[i : i+2])
			}
			switch two {
			case "==":
				emit(tokEq, two)
				i += 2
				continue
			case "!=":
				emit(tokNeq, two)
				i += 2
				continue
			case "<=":
				emit(tokLe, two)
				i += 2
				continue
			case ">=":
				emit(tokGe, two)
				i += 2
				continue
			case "&&":
				emit(tokAnd, two)
				i += 2
				continue
			case "||":
				emit(tokOr, two)
				i += 2
				continue
			}

			switch c {
			case '=':
				emit(tokAssign, "=")
			case '+':
				emit(tokPlus, "+")
			case '-':
				emit(tokMinus, "-")
			case '*':
				emit(tokStar, "*")
			case '/':
				emit(tokSlash, "/")
			case '<':
				emit(tokLt, "<")
			case '>':
				emit(tokGt, ">")
			case '!':
				emit(tokNot, "!")
			case '(':
				emit(tokLParen, "(")
			case ')':
				emit(tokRParen, ")")
			case '{':
				emit(tokLBrace, "{")
			case '}':
				emit(tokRBrace, "}")
			case ',':
				emit(tokComma, ",")
			case '.':
				emit(tokDot, ".")
			default:
				return nil, fmt.Errorf("line %d: unexpected character %q", line, string(c))
			}
			i++
		}
	}

	toks = append(toks, token{kind: tokEOF, line: line})
	return toks, nil
}

// lexString consumes a quoted string literal starting at runes[0] and
// returns its unescaped content and the number of runes consumed.
// Interpolation braces are kept as-is; they are resolved at evaluation time.
func lexString(runes []rune, line int) (string, int, error) {
	quote := runes[0]
	var b strings.Builder
	i := 1

	for i < len(runes) {
		c := runes[i]
		switch c {
		case quote:
			return b.String(), i + 1, nil
		case '\n':
			return "", 0, fmt.Errorf("line %d: unterminated string literal", line)
		case '\\':
			if i+1 >= len(runes) {
				return "", 0, fmt.Errorf("line %d: unterminated string literal", line)
			}
			i++
			switch runes[i] {
			case 'n':
				b.WriteRune('\n')
			case 't':
				b.WriteRune('\t')
			case '\\', '\'', '"':
				b.WriteRune(runes[i])
			default:
				return "", 0, fmt.Errorf("line %d: unknown escape sequence \\%s", line, string(runes[i]))
			}
			i++
		default:
			b.WriteRune(c)
			i++
		}
	}

	return "", 0, fmt.Errorf("line %d: unterminated string literal", line)
}
