package pathtoregexp

import (
	"errors"
	"strconv"
	"strings"
)

var (
	BadParserIndexError = errors.New("parser's index must be less than parser's token list size")
	RequiredTokenError  = errors.New("missing required token")
)

// Parse lexes a pattern string into its token representation.
//
// Literal text accumulates into static tokens, ":name" starts a parameter,
// "(...)" supplies a custom matching group (positional when unnamed) and a
// trailing "?", "*" or "+" sets the parameter's modifier. A delimiter
// character written immediately before a parameter becomes its prefix.
func Parse(pattern string, options Options) (Tokens, error) {
	tl, err := tokenize(pattern)
	if err != nil {
		return nil, err
	}

	p := patternParser{
		options:   options,
		tokenList: tl,
	}

	tls := len(tl)

	for p.index < tls {
		nameToken, err := p.tryConsumeToken(lexName)
		if err != nil {
			return nil, err
		}

		groupToken, err := p.tryConsumeToken(lexGroup)
		if err != nil {
			return nil, err
		}

		if nameToken != nil || groupToken != nil {
			modifierToken, err := p.tryConsumeToken(lexModifier)
			if err != nil {
				return nil, err
			}

			p.addParameter(nameToken, groupToken, modifierToken)

			continue
		}

		fixedToken, err := p.tryConsumeFixedToken()
		if err != nil {
			return nil, err
		}

		if fixedToken != nil {
			p.pendingStatic = p.pendingStatic + fixedToken.value
			p.pendingEscaped = fixedToken.tType == lexEscapedChar

			continue
		}

		if _, err := p.consumeRequiredToken(lexEnd); err != nil {
			return nil, err
		}

		p.flushStatic()
	}

	return p.tokens, nil
}

type patternParser struct {
	tokenList       []lexToken
	options         Options
	tokens          Tokens
	pendingStatic   string
	pendingEscaped  bool
	index           int
	nextNumericName int
}

func (p *patternParser) tryConsumeToken(tType lexTokenType) (*lexToken, error) {
	// Assert: parser's index is less than parser's token list size.
	if p.index >= len(p.tokenList) {
		return nil, BadParserIndexError
	}

	nextToken := p.tokenList[p.index]
	if nextToken.tType != tType {
		return nil, nil
	}

	p.index++

	return &nextToken, nil
}

// tryConsumeFixedToken consumes a token contributing literal text: a plain
// character, an escaped character, or a modifier with nothing to modify.
func (p *patternParser) tryConsumeFixedToken() (*lexToken, error) {
	token, err := p.tryConsumeToken(lexChar)
	if err != nil {
		return nil, err
	}
	if token == nil {
		token, err = p.tryConsumeToken(lexEscapedChar)
		if err != nil {
			return nil, err
		}
	}
	if token == nil {
		token, err = p.tryConsumeToken(lexModifier)
		if err != nil {
			return nil, err
		}
	}

	return token, nil
}

func (p *patternParser) consumeRequiredToken(tType lexTokenType) (*lexToken, error) {
	result, err := p.tryConsumeToken(tType)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, RequiredTokenError
	}

	return result, nil
}

// consumePrefix splits a trailing prefix character off the pending static
// text. A character written as an escape sequence never becomes a prefix.
func (p *patternParser) consumePrefix() string {
	if p.pendingEscaped || p.pendingStatic == "" {
		return ""
	}

	last := p.pendingStatic[len(p.pendingStatic)-1]
	if !p.isPrefixCodePoint(last) {
		return ""
	}

	p.pendingStatic = p.pendingStatic[:len(p.pendingStatic)-1]

	return string(last)
}

func (p *patternParser) isPrefixCodePoint(codePoint byte) bool {
	if p.options.Whitelist != "" {
		return strings.IndexByte(p.options.Whitelist, codePoint) >= 0
	}

	return codePoint == p.options.Delimiter
}

func (p *patternParser) flushStatic() {
	if p.pendingStatic == "" {
		return
	}

	p.tokens = append(p.tokens, Token{Type: TokenStatic, Value: p.pendingStatic})
	p.pendingStatic = ""
	p.pendingEscaped = false
}

func (p *patternParser) addParameter(nameToken, groupToken, modifierToken *lexToken) {
	prefix := p.consumePrefix()
	p.flushStatic()

	modifier := ModifierNone
	if modifierToken != nil {
		switch modifierToken.value {
		case "?":
			modifier = ModifierOptional
		case "*":
			modifier = ModifierZeroOrMore
		case "+":
			modifier = ModifierOneOrMore
		}
	}

	delimiter := p.options.Delimiter
	if prefix != "" {
		delimiter = prefix[0]
	}

	pattern := ""
	if groupToken != nil {
		pattern = escapeGroupString(groupToken.value)
	}
	if pattern == "" {
		pattern = segmentPattern(delimiter, p.options.Delimiter)
	}

	var name string
	if nameToken != nil {
		name = nameToken.value
	} else {
		name = strconv.Itoa(p.nextNumericName)
		p.nextNumericName++
	}

	p.tokens = append(p.tokens, Token{
		Type:     TokenParameter,
		Name:     name,
		Prefix:   prefix,
		Pattern:  pattern,
		Modifier: modifier,
	})
}

// segmentPattern is the default parameter pattern: one or more characters
// up to the next delimiter, matched lazily.
func segmentPattern(delimiter, defaultDelimiter byte) string {
	if delimiter == defaultDelimiter {
		return "[^" + escapeRegexpString(string(delimiter)) + "]+?"
	}

	return "[^" + escapeRegexpString(string([]byte{delimiter, defaultDelimiter})) + "]+?"
}
