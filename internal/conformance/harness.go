package conformance

import linebreak "github.com/scalecode-solutions/linebreak"

// Result tallies one conformance run over a parsed test file.
type Result struct {
	Total   int
	Passed  int
	Skipped int
	// Failures holds up to maxFailuresLogged mismatching cases, for
	// diagnostics; it is intentionally bounded so a badly regressed engine
	// doesn't produce an unreadable wall of output.
	Failures []Failure
}

// Failure describes one test case whose breaks didn't match expectations.
type Failure struct {
	Case Case
	Got  []bool
}

const maxFailuresLogged = 50

// Run evaluates every case against [linebreak.Breaker], coercing Mandatory
// to Opportunity per the Unicode test file's own convention (it draws no
// distinction between the two), and skips any case a compiled skip rule
// matches.
func Run(cases []Case, skip *compiledSkip) Result {
	var res Result
	for i, c := range cases {
		res.Total++
		if skip != nil {
			if _, matched := skip.Skip(i+1, len(c.Scalars)); matched {
				res.Skipped++
				continue
			}
		}

		got := breaksFor(c.Scalars)
		if equalBoolSlices(got, c.Allowed) {
			res.Passed++
			continue
		}
		if len(res.Failures) < maxFailuresLogged {
			res.Failures = append(res.Failures, Failure{Case: c, Got: got})
		}
	}
	return res
}

// breaksFor returns, for each interior boundary in scalars, whether
// linebreak classified it as allowed (Opportunity or Mandatory) or not.
func breaksFor(scalars []rune) []bool {
	if len(scalars) < 2 {
		return nil
	}
	br := linebreak.NewBreaker(scalars)
	allowed := make([]bool, 0, len(scalars)-1)
	for i := 0; i < len(scalars)-1; i++ {
		_, b, ok := br.Next()
		if !ok {
			break
		}
		allowed = append(allowed, b == linebreak.Opportunity || b == linebreak.Mandatory)
	}
	return allowed
}

func equalBoolSlices(a, b []bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
