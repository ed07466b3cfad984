package linebreak

import "unicode"

// ClassOf returns the line breaking class of r after LB1 resolution: the
// result is always one of the 38 classes that can actually occur in a pair
// break decision. SG, AI, XX, CJ, and SA never come back from ClassOf; see
// [Class] for where each of those is folded.
//
// ClassOf is pure, total (every rune in [0, unicode.MaxRune] has an answer),
// and allocates nothing. Callers in a hot loop can call it once per scalar
// with no setup.
func ClassOf(r rune) Class {
	if r < 0x80 {
		return classOfASCII(r)
	}
	if h2h3, ok := classOfHangulSyllable(r); ok {
		return h2h3
	}
	if c, ok := classOfRange(r); ok {
		return c
	}
	return classOfFallback(r)
}

// classOfASCII fast-tracks the 128 code points that dominate real-world
// text, skipping the binary search entirely.
func classOfASCII(r rune) Class {
	switch {
	case r >= '0' && r <= '9':
		return NU
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return AL
	}
	if c, ok := classOfRange(r); ok {
		return c
	}
	return AL
}

// classOfHangulSyllable reports whether r falls in the precomposed Hangul
// syllable block (U+AC00..U+D7A3) and, if so, whether it is an LV (H2) or
// LVT (H3) syllable. The formula mirrors the one in the Unicode Standard,
// §3.12: syllables at index multiples of 28 within the block have no
// trailing consonant (LV); all others do (LVT).
func classOfHangulSyllable(r rune) (Class, bool) {
	const hangulBase, hangulLast = 0xAC00, 0xD7A3
	if r < hangulBase || r > hangulLast {
		return 0, false
	}
	if (r-hangulBase)%28 == 0 {
		return H2, true
	}
	return H3, true
}

// classOfRange performs a binary search over the curated, sorted
// lineBreakRanges table in classtable.go.
func classOfRange(r rune) (Class, bool) {
	ranges := lineBreakRanges
	lo, hi := 0, len(ranges)
	u := uint32(r)
	for lo < hi {
		mid := (lo + hi) / 2
		entry := ranges[mid]
		switch {
		case u < entry.lo:
			hi = mid
		case u > entry.hi:
			lo = mid + 1
		default:
			return entry.class, true
		}
	}
	return 0, false
}

// classOfFallback answers for any scalar not present in the curated table:
// unassigned code points and entire scripts this package does not curate
// individually. It implements the effect of LB1's SA substitution (combining
// marks resolve to CM, everything else to AL) plus the two UAX #14 default
// ranges for currently-unassigned code points.
func classOfFallback(r rune) Class {
	if unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r) || unicode.Is(unicode.Me, r) {
		return CM
	}
	switch {
	case r >= 0x1F000 && r <= 0x1FFFD:
		return ID
	case r >= 0x20A0 && r <= 0x20CF:
		return PR
	}
	return AL
}
