package pathtoregexp

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dlclark/regexp2"
)

// Pattern is a compiled path pattern: a regular expression paired with the
// parameter names in capture order. It holds no reference to the pattern
// source text, is immutable after compilation and is safe for concurrent
// use; one Pattern may serve many Match calls at once.
type Pattern struct {
	re    *regexp2.Regexp
	names []string
}

// Compile turns a token sequence into a Pattern. Compilation only fails
// when a user-supplied matching group is not valid regular expression
// syntax; such groups are embedded unvalidated.
func Compile(tokens Tokens, options Options) (*Pattern, error) {
	source, names := tokens.generateRegexpAndNameList(options)

	re, err := regexp2.Compile(source, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("pathtoregexp: compile %q: %w", source, err)
	}

	if options.MatchTimeout > 0 {
		re.MatchTimeout = options.MatchTimeout
	}

	return &Pattern{re: re, names: names}, nil
}

// Names returns the parameter names in capture order.
func (p *Pattern) Names() []string {
	return slices.Clone(p.names)
}

// String returns the generated regular expression source.
func (p *Pattern) String() string {
	return p.re.String()
}

// generateRegexpAndNameList assembles the regular expression source for a
// token sequence together with the parameter names in capture order.
func (ts Tokens) generateRegexpAndNameList(options Options) (string, []string) {
	var result strings.Builder
	nameList := make([]string, 0, len(ts))

	if !options.Sensitive {
		result.WriteString("(?i)")
	}
	if options.Start {
		result.WriteByte('^')
	}

	for _, t := range ts {
		if t.Type == TokenStatic {
			result.WriteString(escapeRegexpString(t.Value))

			continue
		}

		nameList = append(nameList, t.Name)

		delimiter := options.Delimiter
		if t.Prefix != "" {
			delimiter = t.Prefix[0]
		}

		capture := t.Pattern
		if t.Modifier.repeat() {
			// Repetitions are separated by the delimiter; the prefix
			// appears once before the whole repeated block.
			capture = "(?:" + t.Pattern + ")(?:" + escapeRegexpString(string(delimiter)) + "(?:" + t.Pattern + "))*"
		}

		switch {
		case t.Modifier.optional() && t.Prefix != "":
			result.WriteString("(?:")
			result.WriteString(escapeRegexpString(t.Prefix))
			result.WriteByte('(')
			result.WriteString(capture)
			result.WriteString("))?")

		case t.Modifier.optional():
			result.WriteByte('(')
			result.WriteString(capture)
			result.WriteString(")?")

		default:
			result.WriteString(escapeRegexpString(t.Prefix))
			result.WriteByte('(')
			result.WriteString(capture)
			result.WriteByte(')')
		}
	}

	endsWith := "$"
	if len(options.EndsWith) > 0 {
		escaped := make([]string, 0, len(options.EndsWith)+1)
		for _, e := range options.EndsWith {
			escaped = append(escaped, escapeRegexpString(e))
		}

		endsWith = strings.Join(append(escaped, "$"), "|")
	}

	delimiter := escapeRegexpString(string(options.Delimiter))

	if options.End {
		if !options.Strict {
			result.WriteString("(?:" + delimiter + ")?")
		}

		if endsWith == "$" {
			result.WriteByte('$')
		} else {
			result.WriteString("(?=" + endsWith + ")")
		}

		return result.String(), nameList
	}

	if !options.Strict {
		result.WriteString("(?:" + delimiter + "(?=" + endsWith + "))?")
	}

	if !ts.endDelimited(options.Delimiter) {
		result.WriteString("(?=" + delimiter + "|" + endsWith + ")")
	}

	return result.String(), nameList
}

// endDelimited reports whether the token sequence already ends at a
// delimiter boundary.
func (ts Tokens) endDelimited(delimiter byte) bool {
	if len(ts) == 0 {
		return true
	}

	last := ts[len(ts)-1]

	return last.Type == TokenStatic && last.Value[len(last.Value)-1] == delimiter
}
