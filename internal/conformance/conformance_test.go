package conformance

import (
	"os"
	"strings"
	"testing"
)

func loadCases(t *testing.T) []Case {
	t.Helper()
	data, err := os.ReadFile("testdata/linebreaktest.txt")
	if err != nil {
		t.Fatalf("reading testdata: %v", err)
	}
	cases, err := Parse(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("parsing testdata: %v", err)
	}
	return cases
}

func loadSkip(t *testing.T) *compiledSkip {
	t.Helper()
	data, err := os.ReadFile("testdata/skiprules.yaml")
	if err != nil {
		t.Fatalf("reading skip rules: %v", err)
	}
	doc, err := LoadSkipDocument(data)
	if err != nil {
		t.Fatalf("loading skip rules: %v", err)
	}
	cs, err := Compile(doc)
	if err != nil {
		t.Fatalf("compiling skip rules: %v", err)
	}
	return cs
}

func TestConformanceExcerpt(t *testing.T) {
	cases := loadCases(t)
	skip := loadSkip(t)

	res := Run(cases, skip)
	if res.Total == 0 {
		t.Fatal("no test cases parsed")
	}
	if res.Skipped != 1 {
		t.Errorf("skipped = %d, want 1 (the synthetic LB25 divergence case)", res.Skipped)
	}
	wantPassed := res.Total - res.Skipped
	if res.Passed != wantPassed {
		for _, f := range res.Failures {
			t.Logf("line %d (%s): got %v, want %v", f.Case.Line, f.Case.Comment, f.Got, f.Case.Allowed)
		}
		t.Errorf("passed = %d, want %d (failed <= %d logged)", res.Passed, wantPassed, len(res.Failures))
	}
}

func TestParseRejectsMalformedLine(t *testing.T) {
	_, err := Parse(strings.NewReader("÷ 0061 0062 ÷\n"))
	if err == nil {
		t.Fatal("expected an error for a line missing a marker between scalars")
	}
}
