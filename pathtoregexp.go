// Package pathtoregexp turns Express-style path patterns such as
// /user/:name into regular expressions.
//
// A pattern string is parsed into a token sequence, the tokens are
// compiled into a Pattern, and the Pattern is matched against concrete
// paths:
//
//	p, err := pathtoregexp.New("/user/:name", pathtoregexp.DefaultOptions())
//	if err != nil {
//		// malformed pattern
//	}
//	matches, err := p.Match("/user/john") // [{name john}]
//
// Parameters (":name") match a single delimited segment by default, may
// carry a custom matching group (":id(\\d+)") and a trailing modifier
// ("?", "*", "+"), and bare groups ("(.*)") capture under positional
// names. A backslash makes any syntax character literal.
package pathtoregexp

// New parses and compiles pattern in one step.
func New(pattern string, options Options) (*Pattern, error) {
	tokens, err := Parse(pattern, options)
	if err != nil {
		return nil, err
	}

	return Compile(tokens, options)
}

// MustNew is like New but panics on error. It simplifies safe
// initialization of global variables holding compiled patterns.
func MustNew(pattern string, options Options) *Pattern {
	p, err := New(pattern, options)
	if err != nil {
		panic(err)
	}

	return p
}
