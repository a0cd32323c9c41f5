package pathtoregexp

import (
	"errors"
	"fmt"

	"golang.org/x/exp/utf8string"
)

var (
	DanglingParameterError = errors.New("missing parameter name")
	UnterminatedGroupError = errors.New("unterminated matching group")
	EmptyGroupError        = errors.New("empty matching group")
	TrailingEscapeError    = errors.New("trailing escape character")
)

// ParseError reports malformed pattern syntax together with the rune index
// of the offending character. Parsing is all or nothing: when a ParseError
// is returned, no token sequence is produced.
type ParseError struct {
	Err error
	Pos int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("pathtoregexp: %s at index %d", e.Err, e.Pos)
}

func (e *ParseError) Unwrap() error { return e.Err }

type tokenizer struct {
	input     *utf8string.String
	tokenList []lexToken
	index     int
	nextIndex int
	codePoint rune
}

// tokenize splits a pattern string into lexical tokens. Modifiers are
// emitted unconditionally; the parser decides whether one binds to a
// parameter or is literal text.
func tokenize(input string) ([]lexToken, error) {
	t := tokenizer{
		input:     utf8string.NewString(input),
		tokenList: make([]lexToken, 0, len(input)),
	}

	len := t.input.RuneCount()

	for t.index < len {
		t.seekAndGetNextCodePoint(t.index)

		switch t.codePoint {
		case '?', '*', '+':
			t.addTokenWithDefaultPositionAndLength(lexModifier)

		case '\\':
			if t.index == len-1 {
				return nil, &ParseError{Err: TrailingEscapeError, Pos: t.index}
			}

			escapedIndex := t.nextIndex
			t.getNextCodePoint()
			t.addTokenWithDefaultLength(lexEscapedChar, t.nextIndex, escapedIndex)

		case ':':
			namePosition := t.nextIndex
			nameStart := namePosition

			for namePosition < len {
				t.seekAndGetNextCodePoint(namePosition)
				if !isNameCodePoint(t.codePoint) {
					break
				}

				namePosition = t.nextIndex
			}

			if namePosition <= nameStart {
				return nil, &ParseError{Err: DanglingParameterError, Pos: t.index}
			}

			t.addTokenWithDefaultLength(lexName, namePosition, nameStart)

		case '(':
			depth := 1
			groupPosition := t.nextIndex
			groupStart := groupPosition

			for groupPosition < len && depth > 0 {
				t.seekAndGetNextCodePoint(groupPosition)

				switch t.codePoint {
				case '\\':
					if groupPosition == len-1 {
						return nil, &ParseError{Err: UnterminatedGroupError, Pos: t.index}
					}

					t.getNextCodePoint()

				case '(':
					depth++

				case ')':
					depth--
				}

				groupPosition = t.nextIndex
			}

			if depth != 0 {
				return nil, &ParseError{Err: UnterminatedGroupError, Pos: t.index}
			}

			groupLength := groupPosition - groupStart - 1
			if groupLength == 0 {
				return nil, &ParseError{Err: EmptyGroupError, Pos: t.index}
			}

			t.addToken(lexGroup, groupPosition, groupStart, groupLength)

		default:
			t.addTokenWithDefaultPositionAndLength(lexChar)
		}
	}

	t.addTokenWithDefaultLength(lexEnd, t.index, t.index)

	return t.tokenList, nil
}

func (t *tokenizer) getNextCodePoint() {
	t.codePoint = t.input.At(t.nextIndex)
	t.nextIndex++
}

func (t *tokenizer) seekAndGetNextCodePoint(index int) {
	t.nextIndex = index
	t.getNextCodePoint()
}

func (t *tokenizer) addToken(tType lexTokenType, nextPosition, valuePosition, valueLength int) {
	t.tokenList = append(t.tokenList, lexToken{
		tType: tType,
		index: t.index,
		value: t.input.Slice(valuePosition, valuePosition+valueLength),
	})
	t.index = nextPosition
}

func (t *tokenizer) addTokenWithDefaultLength(tType lexTokenType, nextPosition, valuePosition int) {
	t.addToken(tType, nextPosition, valuePosition, nextPosition-valuePosition)
}

func (t *tokenizer) addTokenWithDefaultPositionAndLength(tType lexTokenType) {
	t.addTokenWithDefaultLength(tType, t.nextIndex, t.index)
}

// Parameter names are runs of word characters, the class matched by \w.
func isNameCodePoint(codePoint rune) bool {
	return codePoint == '_' ||
		(codePoint >= '0' && codePoint <= '9') ||
		(codePoint >= 'a' && codePoint <= 'z') ||
		(codePoint >= 'A' && codePoint <= 'Z')
}
