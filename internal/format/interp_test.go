package format

import (
	"strings"
	"testing"

	"github.com/hoppe93/PublicationManager/internal/article"
)

// run evaluates a script against a minimal environment, returning the
// stringified result.
func run(t *testing.T, script string, env map[string]value) (string, error) {
	t.Helper()
	if env == nil {
		env = map[string]value{}
	}
	v, err := runScript(script, env)
	if err != nil {
		return "", err
	}
	return v.text(), nil
}

func TestInterp_Arithmetic(t *testing.T) {
	tests := []struct {
		script string
		want   string
	}{
		{`1 + 2 * 3`, "7"},
		{`(1 + 2) * 3`, "9"},
		{`10 / 3`, "3"},
		{`7 - 10`, "-3"},
		{`-(2 + 3)`, "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.script, func(t *testing.T) {
			got, err := run(t, tt.script, nil)
			if err != nil {
				t.Fatalf("runScript(%q) error = %v", tt.script, err)
			}
			if got != tt.want {
				t.Errorf("runScript(%q) = %q, want %q", tt.script, got, tt.want)
			}
		})
	}
}

func TestInterp_DivisionByZero(t *testing.T) {
	_, err := run(t, `1 / 0`, nil)
	if err == nil || !strings.Contains(err.Error(), "division by zero") {
		t.Errorf("expected division-by-zero error, got %v", err)
	}
}

func TestInterp_Comparisons(t *testing.T) {
	env := map[string]value{
		"year": intValue(2020),
		"name": stringValue("abc"),
	}

	tests := []struct {
		script string
		want   string
	}{
		{`year == 2020`, "true"},
		{`year != 2020`, "false"},
		{`year >= 2021`, "false"},
		{`year < 2021 && year > 2019`, "true"},
		{`year < 2000 || name == "abc"`, "true"},
		{`!(year == 2020)`, "false"},
		{`name < "abd"`, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.script, func(t *testing.T) {
			got, err := run(t, tt.script, env)
			if err != nil {
				t.Fatalf("runScript(%q) error = %v", tt.script, err)
			}
			if got != tt.want {
				t.Errorf("runScript(%q) = %q, want %q", tt.script, got, tt.want)
			}
		})
	}
}

func TestInterp_DateSelectors(t *testing.T) {
	env := map[string]value{
		"date": dateValue(article.Date{Year: 2020, Month: 3, Day: 14}),
	}

	got, err := run(t, `str(date.year) + "-" + str(date.month) + "-" + str(date.day)`, env)
	if err != nil {
		t.Fatalf("runScript() error = %v", err)
	}
	if got != "2020-3-14" {
		t.Errorf("date selectors = %q", got)
	}

	if _, err := run(t, `date.weekday`, env); err == nil {
		t.Error("unknown date field should fail")
	}
	if _, err := run(t, `"x".year`, env); err == nil {
		t.Error("selector on a string should fail")
	}
}

func TestInterp_DateStringification(t *testing.T) {
	env := map[string]value{
		"date": dateValue(article.Date{Year: 2020, Month: 3, Day: 1}),
	}

	got, err := run(t, `"{date}"`, env)
	if err != nil {
		t.Fatalf("runScript() error = %v", err)
	}
	if got != "2020-03-01" {
		t.Errorf("interpolated date = %q, want ISO form", got)
	}

	got, err = run(t, `str(date)`, env)
	if err != nil {
		t.Fatalf("runScript() error = %v", err)
	}
	if got != "2020-03-01" {
		t.Errorf("str(date) = %q", got)
	}
}

func TestInterp_Builtins(t *testing.T) {
	tests := []struct {
		script string
		want   string
	}{
		{`str(42)`, "42"},
		{`str(len("héllo"))`, "5"},
		{`upper("abc")`, "ABC"},
		{`lower("ABC")`, "abc"},
		{`trim("  x  ")`, "x"},
	}

	for _, tt := range tests {
		t.Run(tt.script, func(t *testing.T) {
			got, err := run(t, tt.script, nil)
			if err != nil {
				t.Fatalf("runScript(%q) error = %v", tt.script, err)
			}
			if got != tt.want {
				t.Errorf("runScript(%q) = %q, want %q", tt.script, got, tt.want)
			}
		})
	}
}

func TestInterp_NoAmbientFunctions(t *testing.T) {
	for _, script := range []string{
		`open("/etc/passwd")`,
		`exec("rm -rf /")`,
		`print("hi")`,
	} {
		t.Run(script, func(t *testing.T) {
			if _, err := run(t, script, nil); err == nil || !strings.Contains(err.Error(), "unknown function") {
				t.Errorf("runScript(%q) should fail with unknown function, got %v", script, err)
			}
		})
	}
}

func TestInterp_LocalVariables(t *testing.T) {
	script := `
sep = ", "
left = "a"
retval = left + sep + "b"
`
	got, err := run(t, script, nil)
	if err != nil {
		t.Fatalf("runScript() error = %v", err)
	}
	if got != "a, b" {
		t.Errorf("runScript() = %q", got)
	}
}

func TestInterp_LocalsVisibleInInterpolation(t *testing.T) {
	script := `
mark = "*"
return "{mark}important{mark}"
`
	got, err := run(t, script, nil)
	if err != nil {
		t.Fatalf("runScript() error = %v", err)
	}
	if got != "*important*" {
		t.Errorf("runScript() = %q", got)
	}
}

func TestInterp_BraceEscapes(t *testing.T) {
	got, err := run(t, `"{{not a binding}}"`, nil)
	if err != nil {
		t.Fatalf("runScript() error = %v", err)
	}
	if got != "{not a binding}" {
		t.Errorf("brace escape = %q", got)
	}

	if _, err := run(t, `"{unclosed"`, nil); err == nil {
		t.Error("unclosed interpolation should fail")
	}
	if _, err := run(t, `"stray } brace"`, nil); err == nil {
		t.Error("unmatched closing brace should fail")
	}
	if _, err := run(t, `"{not ident}"`, nil); err == nil {
		t.Error("non-identifier interpolation should fail")
	}
}

func TestInterp_ElseIfChain(t *testing.T) {
	script := `
if n > 10 {
	retval = "many"
} else if n > 1 {
	retval = "some"
} else {
	retval = "one"
}
`
	tests := []struct {
		n    int
		want string
	}{
		{20, "many"},
		{5, "some"},
		{1, "one"},
	}

	for _, tt := range tests {
		got, err := run(t, script, map[string]value{"n": intValue(tt.n)})
		if err != nil {
			t.Fatalf("runScript() error = %v", err)
		}
		if got != tt.want {
			t.Errorf("n=%d: got %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestInterp_ReturnInsideIf(t *testing.T) {
	script := `
if n == 1 {
	return "early"
}
return "late"
`
	got, err := run(t, script, map[string]value{"n": intValue(1)})
	if err != nil {
		t.Fatalf("runScript() error = %v", err)
	}
	if got != "early" {
		t.Errorf("runScript() = %q, want early return", got)
	}
}

func TestInterp_BareReturnYieldsRetval(t *testing.T) {
	script := `
retval = "done"
return
`
	got, err := run(t, script, nil)
	if err != nil {
		t.Fatalf("runScript() error = %v", err)
	}
	if got != "done" {
		t.Errorf("runScript() = %q", got)
	}

	if _, err := run(t, `return`, nil); err == nil {
		t.Error("bare return without retval should fail")
	}
}

func TestInterp_NoValueProduced(t *testing.T) {
	_, err := run(t, `x = "assigned but never surfaced"`, nil)
	if err == nil {
		t.Fatal("script producing no value should fail")
	}
}

func TestInterp_SemicolonSeparators(t *testing.T) {
	got, err := run(t, `a = "x"; b = "y"; a + b`, nil)
	if err != nil {
		t.Fatalf("runScript() error = %v", err)
	}
	if got != "xy" {
		t.Errorf("runScript() = %q", got)
	}
}

func TestInterp_EnvironmentNotMutated(t *testing.T) {
	env := map[string]value{"title": stringValue("original")}
	if _, err := runScript(`title = "changed"; title`, env); err != nil {
		t.Fatalf("runScript() error = %v", err)
	}
	if env["title"].str != "original" {
		t.Error("script assignment leaked into the caller's environment")
	}
}
