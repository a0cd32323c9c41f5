package pathtoregexp

import (
	"strings"

	"github.com/dunglas/whatwg-url/url"
)

var pathnameParser = url.NewParser()

// NormalizePath canonicalizes a concrete pathname the way a WHATWG URL
// parser would: dot segments are resolved and reserved characters are
// percent-encoded. Pattern strings must not be normalized, only subjects.
func NormalizePath(value string) (string, error) {
	if value == "" {
		return value, nil
	}

	leadingSlash := strings.HasPrefix(value, "/")
	modifiedValue := value
	if !leadingSlash {
		modifiedValue = "/-" + value
	}

	dummyURL := pathnameParser.NewUrl()
	u, err := pathnameParser.BasicParser(modifiedValue, nil, dummyURL, url.StatePathStart)
	if err != nil {
		return "", err
	}

	result := u.Pathname()

	if !leadingSlash {
		result = result[2:]
	}

	return result, nil
}

// MatchNormalized canonicalizes subject with NormalizePath before running
// the pattern against it.
func (p *Pattern) MatchNormalized(subject string) ([]Match, error) {
	normalized, err := NormalizePath(subject)
	if err != nil {
		return nil, err
	}

	return p.Match(normalized)
}
