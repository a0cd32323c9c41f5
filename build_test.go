package pathtoregexp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pathtoregexp "github.com/ArekMiszcz/path-to-regexp-go"
)

func mustParse(t *testing.T, pattern string) pathtoregexp.Tokens {
	t.Helper()

	tokens, err := pathtoregexp.Parse(pattern, pathtoregexp.DefaultOptions())
	require.NoError(t, err)

	return tokens
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		params  map[string]string
		want    string
	}{
		{
			name:    "named parameter",
			pattern: "/user/:name",
			params:  map[string]string{"name": "john"},
			want:    "/user/john",
		},
		{
			name:    "optional omitted",
			pattern: "/photos/:id?",
			params:  map[string]string{},
			want:    "/photos",
		},
		{
			name:    "optional provided",
			pattern: "/photos/:id?",
			params:  map[string]string{"id": "1"},
			want:    "/photos/1",
		},
		{
			name:    "repeated parameter",
			pattern: "/:path+",
			params:  map[string]string{"path": "a/b"},
			want:    "/a/b",
		},
		{
			name:    "positional parameter",
			pattern: "/route/(\\d+)",
			params:  map[string]string{"0": "42"},
			want:    "/route/42",
		},
		{
			name:    "escaped text is rendered raw",
			pattern: "/a\\:b",
			params:  map[string]string{},
			want:    "/a:b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := mustParse(t, tt.pattern).Build(tt.params, pathtoregexp.DefaultOptions())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildMissingValue(t *testing.T) {
	_, err := mustParse(t, "/user/:name").Build(nil, pathtoregexp.DefaultOptions())
	assert.ErrorIs(t, err, pathtoregexp.MissingValueError)
}

func TestBuildInvalidValue(t *testing.T) {
	tokens := mustParse(t, "/icon-:foo(\\d+).png")

	_, err := tokens.Build(map[string]string{"foo": "abc"}, pathtoregexp.DefaultOptions())
	assert.ErrorIs(t, err, pathtoregexp.InvalidValueError)

	got, err := tokens.Build(map[string]string{"foo": "76"}, pathtoregexp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "/icon-76.png", got)
}

func TestBuildFunc(t *testing.T) {
	build, err := mustParse(t, "/user/:name").BuildFunc(pathtoregexp.DefaultOptions())
	require.NoError(t, err)

	got, err := build(map[string]string{"name": "john"})
	require.NoError(t, err)
	assert.Equal(t, "/user/john", got)

	got, err = build(map[string]string{"name": "jane"})
	require.NoError(t, err)
	assert.Equal(t, "/user/jane", got)

	_, err = build(nil)
	assert.ErrorIs(t, err, pathtoregexp.MissingValueError)
}

func TestBuildFuncInvalidCustomPattern(t *testing.T) {
	_, err := mustParse(t, "/:x([)").BuildFunc(pathtoregexp.DefaultOptions())
	assert.Error(t, err)
}

func TestBuildRejectsDelimiterInSegmentValue(t *testing.T) {
	_, err := mustParse(t, "/user/:name").Build(map[string]string{"name": "a/b"}, pathtoregexp.DefaultOptions())
	assert.ErrorIs(t, err, pathtoregexp.InvalidValueError)
}
