package virty

// whitespaceChars is the set of code points classified as whitespace. It is
// a compatibility surface for consuming tokenizers and must not be edited
// casually: membership is observable behavior.
var whitespaceChars = [...]rune{
	'\u0009', // character tabulation
	'\u000A', // line feed
	'\u000B', // line tabulation
	'\u000C', // form feed
	'\u000D', // carriage return
	'\u0020', // space
	'\u0085', // next line
	'\u00A0', // no-break space
	'\u1680', // ogham space mark
	'\u180E', // mongolian vowel separator
	'\u2000', // en quad
	'\u2001', // em quad
	'\u2002', // en space
	'\u2003', // em space
	'\u2004', // three-per-em space
	'\u2005', // four-per-em space
	'\u2006', // six-per-em space
	'\u2007', // figure space
	'\u2008', // punctuation space
	'\u2009', // thin space
	'\u200A', // hair space
	'\u200B', // zero width space
	'\u200C', // zero width non-joiner
	'\u2028', // line separator
	'\u2029', // paragraph separator
	'\u202F', // narrow no-break space
	'\u205F', // medium mathematical space
	'\u3000', // ideographic space
	'\uFEFF', // zero width no-break space
}

// whitespaceSymbolChars is the companion set of visible glyphs that stand in
// for whitespace (control pictures, pilcrows, and the like). They are only
// classified as whitespace when the caller opts in.
var whitespaceSymbolChars = [...]rune{
	'\u00AC', // not sign
	'\u00B6', // pilcrow sign
	'\u00B7', // middle dot
	'\u204B', // reversed pilcrow sign
	'\u2192', // rightwards arrow
	'\u21B5', // downwards arrow with corner leftwards
	'\u21E5', // rightwards arrow to bar
	'\u237D', // shouldered open box
	'\u23CE', // return symbol
	'\u2409', // symbol for horizontal tabulation
	'\u240A', // symbol for line feed
	'\u240B', // symbol for vertical tabulation
	'\u240C', // symbol for form feed
	'\u240D', // symbol for carriage return
	'\u2420', // symbol for space
	'\u2422', // blank symbol
	'\u2423', // open box
	'\u2424', // symbol for newline
	'\u2E31', // word separator middle dot
}

var (
	whitespaceSet       map[rune]struct{}
	whitespaceSymbolSet map[rune]struct{}
)

func init() {
	whitespaceSet = make(map[rune]struct{}, len(whitespaceChars))
	for _, r := range whitespaceChars {
		whitespaceSet[r] = struct{}{}
	}
	whitespaceSymbolSet = make(map[rune]struct{}, len(whitespaceSymbolChars))
	for _, r := range whitespaceSymbolChars {
		whitespaceSymbolSet[r] = struct{}{}
	}
}

// IsWhitespace reports whether r is a whitespace code point. When
// includeSymbols is true, the visible whitespace glyphs (middle dot, control
// pictures, pilcrows, ...) are classified as whitespace too.
func IsWhitespace(r rune, includeSymbols bool) bool {
	if _, ok := whitespaceSet[r]; ok {
		return true
	}
	if includeSymbols {
		_, ok := whitespaceSymbolSet[r]
		return ok
	}
	return false
}
