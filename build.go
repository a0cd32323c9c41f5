package pathtoregexp

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

var (
	MissingValueError = errors.New("missing value for parameter")
	InvalidValueError = errors.New("value does not match parameter pattern")
)

// BuildFunc compiles the per-parameter validators once and returns a
// function rendering concrete paths from the token sequence, the reverse
// of matching. params supplies one value per named or positional
// parameter; a repeated parameter takes its repetitions pre-joined with
// the token's delimiter. Every value is validated against its parameter's
// pattern. Parameters with an optional modifier may be omitted, in which
// case their prefix is omitted too.
func (ts Tokens) BuildFunc(options Options) (func(params map[string]string) (string, error), error) {
	validators := make([]*regexp2.Regexp, len(ts))

	for i, t := range ts {
		if t.Type != TokenParameter {
			continue
		}

		source := validatorSource(t, options)

		re, err := regexp2.Compile(source, regexp2.None)
		if err != nil {
			return nil, fmt.Errorf("pathtoregexp: compile %q: %w", source, err)
		}

		validators[i] = re
	}

	return func(params map[string]string) (string, error) {
		var result strings.Builder

		for i, t := range ts {
			if t.Type == TokenStatic {
				result.WriteString(t.Value)

				continue
			}

			value, ok := params[t.Name]
			if !ok {
				if t.Modifier.optional() {
					continue
				}

				return "", fmt.Errorf("pathtoregexp: %w %q", MissingValueError, t.Name)
			}

			ok, err := validators[i].MatchString(value)
			if err != nil {
				return "", &MatchError{Subject: value, Err: err}
			}
			if !ok {
				return "", fmt.Errorf("pathtoregexp: %w: %q for %q", InvalidValueError, value, t.Name)
			}

			result.WriteString(t.Prefix)
			result.WriteString(value)
		}

		return result.String(), nil
	}, nil
}

// Build renders a concrete path from the token sequence in one step. Use
// BuildFunc when rendering many paths from the same tokens.
func (ts Tokens) Build(params map[string]string, options Options) (string, error) {
	build, err := ts.BuildFunc(options)
	if err != nil {
		return "", err
	}

	return build(params)
}

// validatorSource is the anchored expression a parameter value must
// satisfy, mirroring the capture the compiler emits for the token.
func validatorSource(t Token, options Options) string {
	delimiter := options.Delimiter
	if t.Prefix != "" {
		delimiter = t.Prefix[0]
	}

	capture := t.Pattern
	if t.Modifier.repeat() {
		capture = "(?:" + t.Pattern + ")(?:" + escapeRegexpString(string(delimiter)) + "(?:" + t.Pattern + "))*"
	}

	source := "^(?:" + capture + ")$"
	if !options.Sensitive {
		source = "(?i)" + source
	}

	return source
}
