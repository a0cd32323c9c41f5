package pathtoregexp

// lexToken is a single lexical unit of a pattern string.
type lexToken struct {
	tType lexTokenType
	index int
	value string
}

type lexTokenType uint8

const (
	// lexChar represents a pattern code point without special syntactical meaning.
	lexChar lexTokenType = iota
	// lexEscapedChar represents a code point escaped using a backslash like "\<char>".
	lexEscapedChar
	// lexName represents a string of the form ":<name>". The name is a run of word characters.
	lexName
	// lexGroup represents a string of the form "(<regular expression>)" with balanced parentheses.
	lexGroup
	// lexModifier represents one of the U+003F (?), U+002A (*) or U+002B (+) code points.
	lexModifier
	// lexEnd represents the end of the pattern string.
	lexEnd
)

// TokenType discriminates the two kinds of parsed tokens.
type TokenType uint8

const (
	// TokenStatic represents literal text matched verbatim.
	TokenStatic TokenType = iota
	// TokenParameter represents a named or positional capturing segment.
	TokenParameter
)

// Modifier governs how many times a parameter may appear in a subject
// string and whether it may be absent entirely.
type Modifier uint8

const (
	// The parameter does not have a modifier and appears exactly once.
	ModifierNone Modifier = iota
	// The parameter has an optional modifier indicated by the U+003F (?) code point.
	ModifierOptional
	// The parameter has a "zero or more" modifier indicated by the U+002A (*) code point.
	ModifierZeroOrMore
	// The parameter has a "one or more" modifier indicated by the U+002B (+) code point.
	ModifierOneOrMore
)

// String returns the pattern-syntax spelling of the modifier, or the empty
// string for ModifierNone.
func (m Modifier) String() string {
	switch m {
	case ModifierOptional:
		return "?"
	case ModifierZeroOrMore:
		return "*"
	case ModifierOneOrMore:
		return "+"
	default:
		return ""
	}
}

func (m Modifier) optional() bool {
	return m == ModifierOptional || m == ModifierZeroOrMore
}

func (m Modifier) repeat() bool {
	return m == ModifierZeroOrMore || m == ModifierOneOrMore
}

// Token is one parsed unit of a pattern.
//
// A TokenStatic token only uses Value. A TokenParameter token uses Name,
// Prefix, Pattern and Modifier: Name is never empty, unnamed matching
// groups receive the next positional index rendered in decimal; Pattern is
// the regular expression fragment the parameter matches, defaulting to one
// or more non-delimiter characters.
type Token struct {
	Type     TokenType
	Value    string
	Name     string
	Prefix   string
	Pattern  string
	Modifier Modifier
}

// Tokens is the intermediate representation produced by Parse. It is not
// modified by Compile and may be reused across compilations.
type Tokens []Token
