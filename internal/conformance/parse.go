// Package conformance runs this module's Breaker against the Unicode
// LineBreakTest.txt grammar and reports how many lines match, honoring a
// configurable set of known-divergent test indices.
package conformance

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Case is one parsed LineBreakTest.txt line: a sequence of scalar values
// with a boundary classification (allowed or not) recorded between every
// adjacent pair, plus the source line number and comment for diagnostics.
type Case struct {
	Line    int
	Scalars []rune
	// Allowed[i] is true ("÷") if a break is allowed between Scalars[i] and
	// Scalars[i+1], false ("×") if not. len(Allowed) == len(Scalars)-1.
	Allowed []bool
	Comment string
}

// Parse reads LineBreakTest.txt-format data from r. Blank lines and lines
// that are entirely a comment (start with '#') are skipped; inline comments
// after '#' are trimmed and recorded on the Case.
func Parse(r io.Reader) ([]Case, error) {
	var cases []Case
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		body, comment := line, ""
		if idx := strings.Index(line, "#"); idx >= 0 {
			body = strings.TrimSpace(line[:idx])
			comment = strings.TrimSpace(line[idx+1:])
		}
		if body == "" {
			continue
		}

		c, err := parseLine(body)
		if err != nil {
			return nil, fmt.Errorf("conformance: line %d: %w", lineNo, err)
		}
		c.Line = lineNo
		c.Comment = comment
		cases = append(cases, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cases, nil
}

// parseLine parses a single body like "× 0061 ÷ 0020 × 0062 ÷" into a Case.
func parseLine(body string) (Case, error) {
	fields := strings.Fields(body)
	var c Case
	for _, f := range fields {
		switch f {
		case "÷":
			c.Allowed = append(c.Allowed, true)
		case "×":
			c.Allowed = append(c.Allowed, false)
		default:
			v, err := strconv.ParseUint(f, 16, 32)
			if err != nil {
				return Case{}, fmt.Errorf("unexpected token %q", f)
			}
			c.Scalars = append(c.Scalars, rune(v))
		}
	}
	// The leading and trailing ÷/× bracket the whole line (before the first
	// scalar and after the last); only the interior markers correspond to
	// inter-scalar boundaries.
	if len(c.Allowed) != len(c.Scalars)+1 {
		return Case{}, fmt.Errorf("malformed line: %d scalars, %d markers", len(c.Scalars), len(c.Allowed))
	}
	c.Allowed = c.Allowed[1 : len(c.Allowed)-1]
	return c, nil
}
