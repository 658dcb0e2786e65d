// Copyright 2019-present Ganbaro Digital Ltd
// All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions
// are met:
//
//   * Redistributions of source code must retain the above copyright
//     notice, this list of conditions and the following disclaimer.
//
//   * Redistributions in binary form must reproduce the above copyright
//     notice, this list of conditions and the following disclaimer in
//     the documentation and/or other materials provided with the
//     distribution.
//
//   * Neither the names of the copyright holders nor the names of his
//     contributors may be used to endorse or promote products derived
//     from this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
// "AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
// LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS
// FOR A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE
// COPYRIGHT OWNER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT,
// INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING,
// BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES;
// LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
// CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT
// LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN
// ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
// POSSIBILITY OF SUCH DAMAGE.

package wordexpand

import "strings"

// specialToBraceGlob is the set of characters that, when they appear in an
// unquoted expansion result, must be backslash-protected so that brace
// expansion and filename generation don't later treat them as structural
// (spec.md §4.1, §4.3 step 10). It mirrors the CHARS_ESCAPED set the
// reference shell implementation this spec was distilled from uses.
const specialToBraceGlob = "\\\"'{,}"

func runeInSet(r rune, set string) bool {
	return strings.ContainsRune(set, r)
}

// Escape returns a copy of s in which every code point in set (or every
// code point, when set is empty) is preceded by a backslash.
func Escape(s string, set string) string {
	var buf strings.Builder
	buf.Grow(len(s))
	for _, r := range s {
		if set == "" || runeInSet(r, set) {
			buf.WriteByte('\\')
		}
		buf.WriteRune(r)
	}
	return buf.String()
}

// Unescape removes every backslash not at the end of the string, keeping
// the code point that followed it.
func Unescape(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '\\' && i+1 < len(runes) {
			i++
			buf.WriteRune(runes[i])
			continue
		}
		buf.WriteRune(runes[i])
	}
	return buf.String()
}

// quoteRemoval strips every structural ' and " (i.e. one not itself
// preceded by a backslash) from an expanded word, leaving backslash
// escapes in place (spec.md §4.6).
func quoteRemoval(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '\\':
			buf.WriteRune('\\')
			if i+1 < len(runes) {
				i++
				buf.WriteRune(runes[i])
			}
		case '\'', '"':
			// structural mark: drop it.
		default:
			buf.WriteRune(runes[i])
		}
	}
	return buf.String()
}

// quoteRemovalIdempotent applies quoteRemoval, which is already idempotent
// by construction (the only ' or " characters left in its own output are
// backslash-escaped ones, which a second pass also keeps), so it is
// exposed as documentation of that
// testable property rather than as a distinct algorithm.
func quoteRemovalIdempotent(s string) string {
	return quoteRemoval(s)
}

const safeWordChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789._-/"

// QuoteAsWord renders s so that re-parsing it as a single shell word and
// running the full expansion pipeline in a clean environment yields
// exactly s back (spec.md §4.6, §8 Quote-as-word round-trip).
func QuoteAsWord(s string) string {
	if s == "" {
		return "''"
	}

	var buf strings.Builder
	inQuote := false
	closeQuote := func() {
		if inQuote {
			buf.WriteByte('\'')
			inQuote = false
		}
	}
	for _, r := range s {
		if r == '\'' {
			closeQuote()
			buf.WriteString(`\'`)
			continue
		}
		if strings.ContainsRune(safeWordChars, r) {
			closeQuote()
			buf.WriteRune(r)
			continue
		}
		if !inQuote {
			buf.WriteByte('\'')
			inQuote = true
		}
		buf.WriteRune(r)
	}
	closeQuote()
	return buf.String()
}

// Unquote is an alias kept for callers migrating from quote-removal-only
// use cases: it runs quote removal followed by Unescape, the same pipeline
// ExpandSingleAndUnescape performs after stage 1.
func Unquote(s string) string {
	return Unescape(quoteRemoval(s))
}

// EscapedIndexAny returns the index of the first code point in s that is
// also in chars and not escaped by a preceding backslash, or -1.
func EscapedIndexAny(s string, chars string) int {
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '\\' {
			i++
			continue
		}
		if strings.ContainsRune(chars, runes[i]) {
			return i
		}
	}
	return -1
}

// EscapedRemove removes every unescaped occurrence of any code point in
// chars from s, leaving backslash escapes (and the characters they
// protect) untouched.
func EscapedRemove(s string, chars string) string {
	var buf strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '\\' && i+1 < len(runes) {
			buf.WriteRune(runes[i])
			i++
			buf.WriteRune(runes[i])
			continue
		}
		if strings.ContainsRune(chars, runes[i]) {
			continue
		}
		buf.WriteRune(runes[i])
	}
	return buf.String()
}
