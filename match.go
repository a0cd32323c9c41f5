package pathtoregexp

import "fmt"

// Match is one captured parameter of a successful match.
type Match struct {
	Name  string
	Value string
}

// MatchError reports a failure inside the regexp engine while executing a
// compiled pattern, such as an exceeded MatchTimeout. It is distinct from
// an ordinary non-match, which is not an error.
type MatchError struct {
	Subject string
	Err     error
}

func (e *MatchError) Error() string {
	return fmt.Sprintf("pathtoregexp: matching %q: %s", e.Subject, e.Err)
}

func (e *MatchError) Unwrap() error { return e.Err }

// Match runs the pattern against subject. A nil slice with a nil error
// means the subject was rejected. A successful match returns one entry per
// participating parameter, in pattern declaration order; an optional
// parameter that did not participate contributes no entry, so a match
// without captures returns an empty, non-nil slice.
func (p *Pattern) Match(subject string) ([]Match, error) {
	m, err := p.re.FindStringMatch(subject)
	if err != nil {
		return nil, &MatchError{Subject: subject, Err: err}
	}
	if m == nil {
		return nil, nil
	}

	groups := m.Groups()
	matches := make([]Match, 0, len(p.names))

	for i, name := range p.names {
		group := groups[i+1]
		if len(group.Captures) == 0 {
			continue
		}

		matches = append(matches, Match{Name: name, Value: group.String()})
	}

	return matches, nil
}

// Test reports whether subject conforms to the pattern.
func (p *Pattern) Test(subject string) (bool, error) {
	ok, err := p.re.MatchString(subject)
	if err != nil {
		return false, &MatchError{Subject: subject, Err: err}
	}

	return ok, nil
}
