package format

import (
	"strconv"

	"github.com/hoppe93/PublicationManager/internal/article"
)

// valueKind enumerates the types a script value can take.
type valueKind int

const (
	stringVal valueKind = iota
	intVal
	boolVal
	dateVal
)

func (k valueKind) String() string {
	switch k {
	case stringVal:
		return "string"
	case intVal:
		return "int"
	case boolVal:
		return "bool"
	case dateVal:
		return "date"
	}
	return "unknown"
}

// value is a single script value. Exactly one field besides kind is
// meaningful at a time.
type value struct {
	kind valueKind
	str  string
	num  int
	b    bool
	date article.Date
}

func stringValue(s string) value       { return value{kind: stringVal, str: s} }
func intValue(n int) value             { return value{kind: intVal, num: n} }
func boolValue(b bool) value           { return value{kind: boolVal, b: b} }
func dateValue(d article.Date) value   { return value{kind: dateVal, date: d} }

// text converts the value to its string representation. Used for
// interpolation, the str builtin and the final render result.
func (v value) text() string {
	switch v.kind {
	case stringVal:
		return v.str
	case intVal:
		return strconv.Itoa(v.num)
	case boolVal:
		return strconv.FormatBool(v.b)
	case dateVal:
		return v.date.String()
	}
	return ""
}

// equal compares two values of the same kind.
func (v value) equal(w value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case stringVal:
		return v.str == w.str
	case intVal:
		return v.num == w.num
	case boolVal:
		return v.b == w.b
	case dateVal:
		return v.date == w.date
	}
	return false
}
