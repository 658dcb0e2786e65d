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

// Package patternmatch implements wordexpand.PatternMatcher by
// translating a shell glob pattern into a regexp.Regexp. Neither
// gobwas/glob nor bmatcuk/doublestar expose the match *span* a trim or
// substitution operator needs (they only answer "does the whole string
// match"), so this package does the translation itself and hands the
// anchoring and greediness the caller asked for straight to Go's RE2
// engine, which already implements both.
package patternmatch

import (
	"regexp"
	"strings"

	"github.com/ganbarodigital/go_wordexpand"
)

// Matcher implements wordexpand.PatternMatcher.
type Matcher struct{}

// Compile implements wordexpand.PatternMatcher.
func (Matcher) Compile(pattern string, flags wordexpand.PatternFlags) (wordexpand.CompiledPattern, error) {
	body := translate(pattern, flags.Greedy)

	switch flags.Anchor {
	case wordexpand.AnchorStart:
		body = "^(?:" + body + ")"
	case wordexpand.AnchorEnd:
		body = "(?:" + body + ")$"
	}

	reFlags := ""
	if flags.CaseFold {
		reFlags = "(?i)"
	}
	re, err := regexp.Compile(reFlags + body)
	if err != nil {
		return nil, err
	}
	return &compiled{re: re, anchor: flags.Anchor}, nil
}

type compiled struct {
	re     *regexp.Regexp
	anchor wordexpand.PatternAnchor
}

// Find implements wordexpand.CompiledPattern.
func (c *compiled) Find(s string) (start, end int, ok bool) {
	loc := c.re.FindStringIndex(s)
	if loc == nil {
		return 0, 0, false
	}
	return loc[0], loc[1], true
}

// Substitute implements wordexpand.CompiledPattern.
func (c *compiled) Substitute(s, replacement string, all bool) string {
	if !all {
		loc := c.re.FindStringIndex(s)
		if loc == nil {
			return s
		}
		return s[:loc[0]] + replacement + s[loc[1]:]
	}
	return c.re.ReplaceAllLiteralString(s, replacement)
}

// translate converts a shell glob pattern (the subset used by parameter
// pattern operators: "*", "?", "[...]", and literal characters) into an
// equivalent regexp body. greedy selects "*" matching as much as
// possible ("##", "%%") versus as little as possible ("#", "%") when the
// match is ambiguous, by choosing between "*" and "*?" for the
// translated wildcard.
func translate(pattern string, greedy bool) string {
	star := "*?"
	if greedy {
		star = "*"
	}

	var buf strings.Builder
	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c == '\\' && i+1 < len(runes):
			buf.WriteString(regexp.QuoteMeta(string(runes[i+1])))
			i++
		case c == '*':
			buf.WriteString(".")
			buf.WriteString(star)
		case c == '?':
			buf.WriteString(".")
		case c == '[':
			j := i + 1
			if j < len(runes) && (runes[j] == '!' || runes[j] == '^') {
				j++
			}
			if j < len(runes) && runes[j] == ']' {
				j++
			}
			for j < len(runes) && runes[j] != ']' {
				j++
			}
			if j >= len(runes) {
				buf.WriteString(regexp.QuoteMeta("["))
				continue
			}
			class := string(runes[i+1 : j])
			class = strings.Replace(class, "!", "^", 1)
			buf.WriteString("[" + class + "]")
			i = j
		default:
			buf.WriteString(regexp.QuoteMeta(string(c)))
		}
	}
	return buf.String()
}
