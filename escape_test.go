package pathtoregexp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeRegexpString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"abc-123", "abc-123"},
		{"/user", "\\/user"},
		{"/a.b+c", "\\/a\\.b\\+c"},
		{"(){}[]|^$", "\\(\\)\\{\\}\\[\\]\\|\\^\\$"},
		{"=!:?*\\", "\\=\\!\\:\\?\\*\\\\"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, escapeRegexpString(tt.in), tt.in)
	}
}

func TestEscapeGroupString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"\\d+", "\\d+"},
		{".*", ".*"},
		{"[^abc]+?", "[^abc]+?"},
		{"a(b)c", "a\\(b\\)c"},
		{"a/b=c!d:e$f", "a\\/b\\=c\\!d\\:e\\$f"},
		{"b\\)c", "b\\)c"},
		{"a\\(b(c)", "a\\(b\\(c\\)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, escapeGroupString(tt.in), tt.in)
	}
}

func TestSegmentPattern(t *testing.T) {
	assert.Equal(t, "[^\\/]+?", segmentPattern('/', '/'))
	assert.Equal(t, "[^\\.\\/]+?", segmentPattern('.', '/'))
}
