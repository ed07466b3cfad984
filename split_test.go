package linebreak

import (
	"bufio"
	"strings"
	"testing"
)

func TestFirstLineSegmentInString(t *testing.T) {
	seg, rest := FirstLineSegmentInString("Hello world")
	if seg != "Hello " {
		t.Errorf("seg = %q, want %q", seg, "Hello ")
	}
	if rest != "world" {
		t.Errorf("rest = %q, want %q", rest, "world")
	}
}

func TestFirstLineSegmentInStringEmpty(t *testing.T) {
	seg, rest := FirstLineSegmentInString("")
	if seg != "" || rest != "" {
		t.Errorf("got (%q, %q), want (\"\", \"\")", seg, rest)
	}
}

func TestLines(t *testing.T) {
	got := Lines("Hello world")
	want := []string{"Hello ", "world"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLinesReassemble(t *testing.T) {
	in := "The quick brown fox jumps over the lazy dog."
	segs := Lines(in)
	if strings.Join(segs, "") != in {
		t.Errorf("segments don't reassemble to original: %q", strings.Join(segs, ""))
	}
}

func TestSplitFuncWithScanner(t *testing.T) {
	in := "Hello world, how are you?"
	scanner := bufio.NewScanner(strings.NewReader(in))
	scanner.Split(SplitFunc)

	var segs []string
	for scanner.Scan() {
		segs = append(segs, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("scanner error: %v", err)
	}
	if strings.Join(segs, "") != in {
		t.Errorf("segments don't reassemble to original: got %q, want %q", strings.Join(segs, ""), in)
	}
	if len(segs) == 0 {
		t.Fatal("expected at least one segment")
	}
}

func TestSplitFuncOnSmallBuffer(t *testing.T) {
	in := "a b c d e f g h i j k l m n o p q r s t u v w x y z"
	scanner := bufio.NewScanner(strings.NewReader(in))
	scanner.Buffer(make([]byte, 4), 4)
	scanner.Split(SplitFunc)

	var out strings.Builder
	for scanner.Scan() {
		out.WriteString(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("scanner error: %v", err)
	}
	if out.String() != in {
		t.Errorf("got %q, want %q", out.String(), in)
	}
}
