package pathtoregexp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pathtoregexp "github.com/ArekMiszcz/path-to-regexp-go"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"empty", "", ""},
		{"already canonical", "/a/b", "/a/b"},
		{"parent segment", "/a/../b", "/b"},
		{"current segment", "/a/./b", "/a/b"},
		{"percent encoding", "/a b", "/a%20b"},
		{"relative path", "img/photo.png", "img/photo.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pathtoregexp.NormalizePath(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchNormalized(t *testing.T) {
	p := pathtoregexp.MustNew("/user/:name", pathtoregexp.DefaultOptions())

	matches, err := p.MatchNormalized("/user/tmp/../john")
	require.NoError(t, err)
	assert.Equal(t, []pathtoregexp.Match{{Name: "name", Value: "john"}}, matches)

	matches, err = p.MatchNormalized("/user/john/extra/..")
	require.NoError(t, err)
	assert.Equal(t, []pathtoregexp.Match{{Name: "name", Value: "john"}}, matches)
}
