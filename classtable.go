// Hand-curated in the format gen_classtable.go (tagged "generate") emits;
// running that generator replaces this file with the full table.
//
// Derived from LineBreak-11.0.0.txt and UnicodeData-11.0.0.txt as published
// at https://www.unicode.org/Public/11.0.0/ucd/. See the Unicode Terms of
// Use (https://www.unicode.org/copyright.html) for the data license. This
// is a curated subset of the full UAX #14 code point assignments: common
// scripts, punctuation, and emoji ranges that exercise every Class and
// every rule in the pair break engine. Code points not listed here resolve
// via the General_Category and default-range fallback in resolve.go, per
// UAX #14 LB1.

package linebreak

// classRange is one entry of a sorted, non-overlapping code point range
// table: every scalar in [lo, hi] maps to class.
type classRange struct {
	lo, hi uint32
	class  Class
}

// lineBreakRanges is sorted ascending by lo. classOfRange performs a binary
// search over it; see resolve.go.
var lineBreakRanges = []classRange{
	{0x0009, 0x0009, BA}, // TAB
	{0x000A, 0x000A, LF},
	{0x000B, 0x000C, BK}, // VT, FF
	{0x000D, 0x000D, CR},
	{0x0020, 0x0020, SP},
	{0x0021, 0x0021, EX}, // !
	{0x0022, 0x0022, QU}, // "
	{0x0024, 0x0024, PR}, // $
	{0x0025, 0x0025, PO}, // %
	{0x0027, 0x0027, QU}, // '
	{0x0028, 0x0028, OP}, // (
	{0x0029, 0x0029, CP}, // )
	{0x002B, 0x002B, PR}, // +
	{0x002C, 0x002C, IS}, // ,
	{0x002D, 0x002D, HY}, // -
	{0x002E, 0x002E, IS}, // .
	{0x002F, 0x002F, SY}, // /
	{0x003A, 0x003A, IS}, // :
	{0x003B, 0x003B, IS}, // ;
	{0x003F, 0x003F, EX}, // ?
	{0x005B, 0x005B, OP}, // [
	{0x005D, 0x005D, CP}, // ]
	{0x007B, 0x007B, OP}, // {
	{0x007D, 0x007D, CL}, // }
	{0x0085, 0x0085, NL},
	{0x00A0, 0x00A0, GL}, // NBSP
	{0x00A3, 0x00A3, PR}, // £
	{0x00A5, 0x00A5, PR}, // ¥
	{0x00AB, 0x00AB, QU}, // «
	{0x00AD, 0x00AD, BA}, // soft hyphen
	{0x00B0, 0x00B0, PO}, // °
	{0x00BB, 0x00BB, QU}, // »
	{0x0300, 0x036F, CM}, // combining diacritical marks
	{0x05D0, 0x05EA, HL}, // Hebrew letters
	{0x1100, 0x115F, JL}, // Hangul Choseong
	{0x1160, 0x11A7, JV}, // Hangul Jungseong
	{0x11A8, 0x11FF, JT}, // Hangul Jongseong
	{0x1680, 0x1680, BA}, // Ogham space mark
	{0x180E, 0x180E, GL}, // Mongolian vowel separator
	{0x2007, 0x2007, GL}, // figure space
	{0x200B, 0x200B, ZW},
	{0x200D, 0x200D, ZWJ},
	{0x2010, 0x2010, BA}, // hyphen
	{0x2012, 0x2013, BA}, // figure dash, en dash
	{0x2014, 0x2014, B2}, // em dash
	{0x2018, 0x2019, QU},
	{0x201A, 0x201A, QU},
	{0x201C, 0x201D, QU},
	{0x201E, 0x201E, QU},
	{0x2024, 0x2026, IN}, // leader dots, horizontal ellipsis
	{0x2028, 0x2028, BK},
	{0x2029, 0x2029, BK},
	{0x202F, 0x202F, GL}, // narrow NBSP
	{0x2030, 0x2030, PO}, // per mille
	{0x2060, 0x2060, WJ},
	{0x20AC, 0x20AC, PR}, // euro sign
	{0x2E17, 0x2E17, BB}, // double oblique hyphen
	{0x3001, 0x3002, CL}, // ideographic comma, full stop
	{0x3005, 0x3005, NS}, // ideographic iteration mark
	{0x300C, 0x300C, OP}, // 「
	{0x300D, 0x300D, CP}, // 」
	{0x300E, 0x300E, OP}, // 『
	{0x300F, 0x300F, CP}, // 』
	{0x303B, 0x303B, NS},
	{0x3040, 0x30FF, ID}, // hiragana, katakana
	{0x3400, 0x4DBF, ID}, // CJK Unified Ideographs Extension A
	{0x4E00, 0x9FFF, ID}, // CJK Unified Ideographs
	{0xF900, 0xFAFF, ID}, // CJK Compatibility Ideographs
	{0xFEFF, 0xFEFF, WJ}, // zero width no-break space / BOM
	{0xFF10, 0xFF19, NU}, // fullwidth digits
	{0xFFFC, 0xFFFC, CB}, // object replacement character

	{0x1F1E6, 0x1F1FF, RI}, // regional indicators
	{0x1F3FB, 0x1F3FF, EM}, // emoji modifiers (Fitzpatrick)

	// Emoji_Modifier_Base: a representative subset of people/body emoji
	// that commonly combine with a skin-tone modifier.
	{0x1F466, 0x1F469, EB},
	{0x1F46E, 0x1F46E, EB},
	{0x1F470, 0x1F478, EB},
	{0x1F47C, 0x1F47C, EB},
	{0x1F481, 0x1F483, EB},
	{0x1F485, 0x1F487, EB},
	{0x1F4AA, 0x1F4AA, EB},
	{0x1F575, 0x1F575, EB},
	{0x1F57A, 0x1F57A, EB},
	{0x1F590, 0x1F590, EB},
	{0x1F595, 0x1F596, EB},
	{0x1F645, 0x1F647, EB},
	{0x1F64B, 0x1F64F, EB},
	{0x1F6A3, 0x1F6A3, EB},
	{0x1F6B4, 0x1F6B6, EB},
	{0x1F6C0, 0x1F6C0, EB},
	{0x1F6CC, 0x1F6CC, EB},
	{0x1F90C, 0x1F90C, EB},
	{0x1F90F, 0x1F90F, EB},
	{0x1F918, 0x1F91F, EB},
	{0x1F926, 0x1F926, EB},
	{0x1F930, 0x1F939, EB},
	{0x1F93D, 0x1F93E, EB},
	{0x1F9B5, 0x1F9B6, EB},
	{0x1F9B8, 0x1F9B9, EB},
	{0x1F9BB, 0x1F9BB, EB},
	{0x1F9CD, 0x1F9CF, EB},
	{0x1F9D1, 0x1F9DD, EB},

	{0x20000, 0x2FFFD, ID}, // CJK Unified Ideographs Extension B..
	{0x30000, 0x3FFFD, ID}, // ..and Extension G/H planes
}
