package linebreak

import "unicode/utf8"

// FirstLineSegment returns the scalars of the first line segment in
// runes: the prefix up to and including the first Mandatory or Opportunity
// boundary, and the remainder. If runes is empty, both seg and rest are
// nil.
//
// This is a convenience built directly on [Breaker]; it does not implement
// any width-aware wrapping policy of its own.
func FirstLineSegment(runes []rune) (seg, rest []rune) {
	if len(runes) == 0 {
		return nil, nil
	}
	br := NewBreaker(runes)
	n := 0
	for {
		_, brk, ok := br.Next()
		if !ok {
			break
		}
		n++
		if brk == Mandatory || brk == Opportunity {
			break
		}
	}
	return runes[:n], runes[n:]
}

// FirstLineSegmentInString is [FirstLineSegment] for a string, returning
// substrings of s (split at the segment's byte length) instead of rune
// slices.
func FirstLineSegmentInString(s string) (seg, rest string) {
	if s == "" {
		return "", ""
	}
	segRunes, _ := FirstLineSegment([]rune(s))
	byteOffset := 0
	for _, r := range segRunes {
		byteOffset += utf8.RuneLen(r)
	}
	return s[:byteOffset], s[byteOffset:]
}

// Lines splits s into line segments at every Mandatory or Opportunity
// boundary, in order. It is a convenience wrapper; callers that want to stop
// early, or that are processing a stream too large to hold entirely in
// memory, should use [Breaker] or [SplitFunc] directly instead.
func Lines(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	rest := s
	for rest != "" {
		var seg string
		seg, rest = FirstLineSegmentInString(rest)
		out = append(out, seg)
	}
	return out
}

// SplitFunc is a bufio.SplitFunc that splits at every Mandatory or
// Opportunity boundary; it is meant for use with bufio.Scanner.Split. Its
// behavior follows mechanically from [Breaker]: each call decodes whatever
// of data is currently complete, replays the same ordered pair decisions
// across it, and returns the first segment that ends in a real boundary.
// When data doesn't yet contain enough to decide (no boundary found and
// atEOF is false), it asks bufio.Scanner for more.
func SplitFunc(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if len(data) == 0 {
		if atEOF {
			return 0, nil, nil
		}
		return 0, nil, nil
	}

	runes, lens := decodeCompleteRunes(data, atEOF)
	if len(runes) == 0 {
		if atEOF {
			return len(data), data, nil
		}
		return 0, nil, nil
	}
	if len(runes) == 1 {
		if atEOF {
			return lens[0], data[:lens[0]], nil
		}
		return 0, nil, nil
	}

	br := &Breaker{runes: runes}
	byteOffset := 0
	for i := 0; i < len(runes)-1; i++ {
		n1 := ClassOf(runes[i])
		n2 := ClassOf(runes[i+1])
		b := br.decide(n1, n2)
		byteOffset += lens[i]
		if b == Mandatory || b == Opportunity {
			return byteOffset, data[:byteOffset], nil
		}
	}

	if atEOF {
		total := byteOffset + lens[len(runes)-1]
		return total, data[:total], nil
	}
	return 0, nil, nil
}

// decodeCompleteRunes decodes as much of data as is unambiguous: every
// rune, unless data ends mid-encoding and more bytes might still arrive.
func decodeCompleteRunes(data []byte, atEOF bool) (runes []rune, lens []int) {
	i := 0
	for i < len(data) {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 && !atEOF && len(data)-i < utf8.UTFMax {
			break
		}
		runes = append(runes, r)
		lens = append(lens, size)
		i += size
	}
	return runes, lens
}
