package pathtoregexp

import "time"

// DefaultDelimiter separates path segments unless overridden.
const DefaultDelimiter byte = '/'

// Options configures parsing and compilation of one pattern. The same
// value must be passed to Parse and Compile; it is never mutated by either.
// The zero value anchors nowhere and has no delimiter, which is rarely
// useful: start from DefaultOptions and adjust the fields you need.
type Options struct {
	// Delimiter is the segment separator. MUST be an ASCII code point.
	Delimiter byte

	// Whitelist restricts the characters that may be captured as a
	// parameter prefix. When empty, only the delimiter itself qualifies.
	// Every character MUST be an ASCII code point.
	Whitelist string

	// Sensitive enables case-sensitive matching.
	Sensitive bool

	// Strict disables the implicit optional trailing delimiter, so "/a"
	// no longer accepts "/a/".
	Strict bool

	// Start anchors the compiled pattern to the beginning of the subject.
	Start bool

	// End anchors the compiled pattern to the end of the subject. When
	// false the pattern matches a prefix of the subject ending at a
	// delimiter boundary.
	End bool

	// EndsWith lists literal strings that may terminate a match as
	// alternatives to the end of the subject, such as "?" for a query
	// string. The terminator itself is not consumed.
	EndsWith []string

	// MatchTimeout bounds how long the regexp engine may spend on a
	// single subject. Zero means no limit.
	MatchTimeout time.Duration
}

// DefaultOptions returns the canonical configuration: "/" delimited,
// case-insensitive, non-strict, anchored at both ends.
func DefaultOptions() Options {
	return Options{
		Delimiter: DefaultDelimiter,
		Start:     true,
		End:       true,
	}
}
