package linebreak

// Class is a Unicode line breaking class, as assigned by UAX #14 Table 1,
// after the LB1 resolution that [ClassOf] performs: SG, AI, and XX never
// appear (folded to AL), CJ never appears (folded to NS), and SA never
// appears (folded to CM or AL depending on General Category). Equality and
// copy are cheap; the zero value is not a valid Class (it is not one of the
// 39 named constants below).
//
// Grouped the way UAX #14 Table 1 groups them; see
// https://www.unicode.org/reports/tr14/#Table1 for the authoritative
// description of each.
type Class uint8

const (
	BK Class = iota + 1 // Mandatory Break
	CR                  // Carriage Return
	LF                  // Line Feed
	CM                  // Combining Mark
	NL                  // Next Line
	WJ                  // Word Joiner
	ZW                  // Zero Width Space
	GL                  // Non-breaking ("Glue")
	SP                  // Space
	ZWJ                 // Zero Width Joiner

	B2 // Break Opportunity Before and After
	BA // Break After
	BB // Break Before
	HY // Hyphen
	CB // Contingent Break Opportunity

	CL // Close Punctuation
	CP // Close Parenthesis
	EX // Exclamation/Interrogation
	IN // Inseparable
	NS // Nonstarter
	OP // Open Punctuation
	QU // Quotation

	IS // Infix Numeric Separator
	NU // Numeric
	PO // Postfix Numeric
	PR // Prefix Numeric
	SY // Symbols Allowing Break After

	AL // Ordinary Alphabetic
	EB // Emoji Base
	EM // Emoji Modifier
	H2 // Hangul LV Syllable
	H3 // Hangul LVT Syllable
	HL // Hebrew Letter
	ID // Ideographic
	JL // Hangul L Jamo
	JV // Hangul V Jamo
	JT // Hangul T Jamo
	RI // Regional Indicator

	// XX is part of UAX #14's Table 1 but [ClassOf] never returns it: every
	// scalar that would resolve to XX resolves to AL instead (LB1). It
	// exists as a named constant only so the type mirrors Table 1 exactly.
	XX

	// SG, AI, CJ, SA: resolved away by LB1 without a surviving constant of
	// their own, see [ClassOf].
)

// String returns the two-letter UAX #14 abbreviation for c, or "??" for an
// unrecognized value.
func (c Class) String() string {
	if int(c) < len(classNames) {
		if name := classNames[c]; name != "" {
			return name
		}
	}
	return "??"
}

var classNames = [...]string{
	BK: "BK", CR: "CR", LF: "LF", CM: "CM", NL: "NL",
	WJ: "WJ", ZW: "ZW", GL: "GL", SP: "SP", ZWJ: "ZWJ",
	B2: "B2", BA: "BA", BB: "BB", HY: "HY", CB: "CB",
	CL: "CL", CP: "CP", EX: "EX", IN: "IN", NS: "NS", OP: "OP", QU: "QU",
	IS: "IS", NU: "NU", PO: "PO", PR: "PR", SY: "SY",
	AL: "AL", EB: "EB", EM: "EM", H2: "H2", H3: "H3", HL: "HL", ID: "ID",
	JL: "JL", JV: "JV", JT: "JT", RI: "RI", XX: "XX",
}
