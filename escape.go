package pathtoregexp

import "unicode/utf8"

// Adapted from the regexp package: https://cs.opensource.google/go/go/+/refs/tags/go1.23.0:src/regexp/regexp.go;l=705-747

// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found at https://go.dev/LICENSE.

// Bitmaps used to check whether a character needs to be escaped before
// being emitted into the generated regular expression.
var specialRegexpBytes [16]byte
var specialGroupBytes [16]byte

// specialRegexp reports whether byte b is special in the generated
// regular expression dialect.
func specialRegexp(b byte) bool {
	return b < utf8.RuneSelf && specialRegexpBytes[b%16]&(1<<(b/16)) != 0
}

// specialGroup reports whether byte b changes the meaning of a
// user-supplied matching group once embedded in the larger expression.
func specialGroup(b byte) bool {
	return b < utf8.RuneSelf && specialGroupBytes[b%16]&(1<<(b/16)) != 0
}

func init() {
	for _, b := range []byte(`\.+*?=^!:${}()[]|/`) {
		specialRegexpBytes[b%16] |= 1 << (b / 16)
	}
	for _, b := range []byte(`=!:$/()`) {
		specialGroupBytes[b%16] |= 1 << (b / 16)
	}
}

// escapeRegexpString escapes every special character so the string matches
// only itself.
func escapeRegexpString(s string) string {
	// A byte loop is correct because all metacharacters are ASCII.
	var i int
	for i = 0; i < len(s); i++ {
		if specialRegexp(s[i]) {
			break
		}
	}
	// No meta characters found, so return original string.
	if i >= len(s) {
		return s
	}

	b := make([]byte, 2*len(s)-i)
	copy(b, s[:i])
	j := i
	for ; i < len(s); i++ {
		if specialRegexp(s[i]) {
			b[j] = '\\'
			j++
		}
		b[j] = s[i]
		j++
	}
	return string(b[:j])
}

// escapeGroupString neutralizes group delimiters and assertion characters
// in a user-supplied matching group. Quantifiers and classes pass through
// untouched, and a backslash escape written by the user is never escaped
// again.
func escapeGroupString(s string) string {
	// A byte loop is correct because all metacharacters are ASCII.
	var i int
	for i = 0; i < len(s); i++ {
		if s[i] == '\\' || specialGroup(s[i]) {
			break
		}
	}
	// No meta characters found, so return original string.
	if i >= len(s) {
		return s
	}

	b := make([]byte, 0, 2*len(s)-i)
	b = append(b, s[:i]...)
	for ; i < len(s); i++ {
		if s[i] == '\\' && i < len(s)-1 {
			b = append(b, s[i], s[i+1])
			i++

			continue
		}
		if specialGroup(s[i]) {
			b = append(b, '\\')
		}
		b = append(b, s[i])
	}
	return string(b)
}
