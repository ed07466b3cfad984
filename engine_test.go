package linebreak

import "testing"

// collect drains a Breaker into parallel slices for easy comparison.
func collect(s string) (runes []rune, breaks []Break) {
	br := NewBreakerString(s)
	for {
		r, b, ok := br.Next()
		if !ok {
			break
		}
		runes = append(runes, r)
		breaks = append(breaks, b)
	}
	return runes, breaks
}

func TestHelloWorld(t *testing.T) {
	_, breaks := collect("Hello world")
	// "Hello world" has indices 0..10; space is index 5, final 'd' is index 10.
	for i, b := range breaks {
		switch i {
		case 5, 10:
			if b != Opportunity {
				t.Errorf("index %d: got %v, want Opportunity", i, b)
			}
		default:
			if b != Prohibited {
				t.Errorf("index %d: got %v, want Prohibited", i, b)
			}
		}
	}
}

func TestCRLF(t *testing.T) {
	runes, breaks := collect("ab\r\ncd")
	want := []Break{Prohibited, Prohibited, Prohibited, Mandatory, Prohibited, Opportunity}
	if len(runes) != len(want) {
		t.Fatalf("got %d items, want %d", len(runes), len(want))
	}
	for i, w := range want {
		if breaks[i] != w {
			t.Errorf("index %d (%q): got %v, want %v", i, runes[i], breaks[i], w)
		}
	}
}

func TestOpenParen(t *testing.T) {
	_, breaks := collect("a(b")
	want := []Break{Prohibited, Prohibited, Opportunity}
	for i, w := range want {
		if breaks[i] != w {
			t.Errorf("index %d: got %v, want %v", i, breaks[i], w)
		}
	}
}

func TestRegionalIndicatorPairing(t *testing.T) {
	flags := string([]rune{0x1F1E6, 0x1F1E7, 0x1F1E8, 0x1F1E9}) // four RIs
	_, breaks := collect(flags)
	want := []Break{Prohibited, Opportunity, Prohibited, Opportunity}
	for i, w := range want {
		if breaks[i] != w {
			t.Errorf("index %d: got %v, want %v", i, breaks[i], w)
		}
	}
}

func TestCombiningMarkThenSpace(t *testing.T) {
	s := string([]rune{'a', 0x0301, ' ', 'b'})
	_, breaks := collect(s)
	want := []Break{Prohibited, Prohibited, Opportunity, Opportunity}
	for i, w := range want {
		if breaks[i] != w {
			t.Errorf("index %d: got %v, want %v", i, breaks[i], w)
		}
	}
}

func TestHebrewHyphenDeferredProhibition(t *testing.T) {
	s := string([]rune{0x05D0, '-', 'a'}) // HL, HY, AL
	_, breaks := collect(s)
	want := []Break{Prohibited, Prohibited, Opportunity}
	for i, w := range want {
		if breaks[i] != w {
			t.Errorf("index %d: got %v, want %v", i, breaks[i], w)
		}
	}
}

func TestSingleScalarIsOpportunity(t *testing.T) {
	_, breaks := collect("x")
	if len(breaks) != 1 || breaks[0] != Opportunity {
		t.Fatalf("got %v, want single Opportunity", breaks)
	}
}

func TestEmptyInputYieldsNothing(t *testing.T) {
	runes, breaks := collect("")
	if len(runes) != 0 || len(breaks) != 0 {
		t.Fatalf("got %d items, want 0", len(breaks))
	}
}

func TestLastBreakIsAlwaysOpportunity(t *testing.T) {
	inputs := []string{"hello.", "a\n", "日本語", "end(", string(rune(0x1F1E6))}
	for _, in := range inputs {
		_, breaks := collect(in)
		if len(breaks) == 0 {
			t.Fatalf("%q: no output", in)
		}
		if last := breaks[len(breaks)-1]; last != Opportunity {
			t.Errorf("%q: last break = %v, want Opportunity", in, last)
		}
	}
}

func TestOutputLengthMatchesInputLength(t *testing.T) {
	inputs := []string{"", "a", "Hello, world!", "日本語のテスト"}
	for _, in := range inputs {
		runes, breaks := collect(in)
		if len(runes) != len([]rune(in)) || len(breaks) != len([]rune(in)) {
			t.Errorf("%q: got %d items, want %d", in, len(breaks), len([]rune(in)))
		}
	}
}

func TestDeterministic(t *testing.T) {
	in := "The quick (brown) fox—jumps! Over\tthe lazy dog: 42.5%."
	_, first := collect(in)
	_, second := collect(in)
	if len(first) != len(second) {
		t.Fatalf("length mismatch across runs")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("index %d differs across runs: %v != %v", i, first[i], second[i])
		}
	}
}

func TestNoMandatoryBetweenCRAndLF(t *testing.T) {
	runes, breaks := collect("x\r\ny\r\nz")
	for i, r := range runes {
		if r == '\r' && i+1 < len(runes) && runes[i+1] == '\n' {
			if breaks[i] == Mandatory {
				t.Errorf("index %d: CR before LF must not be Mandatory", i)
			}
		}
	}
}
