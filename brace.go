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

import "strconv"

// expandBraces implements spec.md §4.4, stage 2 of the pipeline. It takes
// one already-E4-expanded word (mask included) and returns the one or
// more words produced by expanding every top-level "{...}" brace group it
// contains. A word with no recognisable brace group is returned
// unchanged, as a single-element slice.
func expandBraces(w ExpandedWord, opts Options) ([]ExpandedWord, error) {
	if !opts.BraceExpand {
		return []ExpandedWord{w}, nil
	}
	return expandBracesRec(w, 0)
}

func expandBracesRec(w ExpandedWord, depth int) ([]ExpandedWord, error) {
	if depth > MaxRecursionDepth {
		return nil, newError(KindSyntax, "brace expansion nested too deeply (limit %d)", MaxRecursionDepth)
	}

	var open, close int
	var alts []ExpandedWord
	for from := 0; ; from = open + 1 {
		var ok bool
		open, close, ok = findOuterBrace(w, from)
		if !ok {
			return []ExpandedWord{w}, nil
		}
		var err error
		alts, err = splitBraceBody(w.slice(open+1, close))
		if err != nil {
			return nil, err
		}
		if alts != nil {
			break
		}
		// not a valid brace expression (e.g. no comma and no ".."): this
		// "{" is literal, so keep scanning after it.
	}

	prefix := w.slice(0, open)
	suffix := w.slice(close+1, w.Len())
	if len(alts) > MaxBraceSequenceCount {
		return nil, newError(KindSyntax, "brace sequence produces too many elements (limit %d)", MaxBraceSequenceCount)
	}

	var out []ExpandedWord
	for _, alt := range alts {
		combined := ExpandedWord{}
		combined.appendWord(prefix)
		combined.appendWord(alt)
		combined.appendWord(suffix)

		expanded, err := expandBracesRec(combined, depth+1)
		if err != nil {
			return nil, err
		}
		out = append(out, expanded...)
	}
	return out, nil
}

// findOuterBrace locates the first unescaped "{" at or after index from
// and its matching unescaped "}" at the same nesting depth, skipping over
// nested braces. The splittability mask is not consulted: quote-awareness
// rests on the escape bit E4 wrote, since every code point inside a quoted
// region arrives backslash-escaped — a "{" or "}" preceded by a backslash
// in Value is a literal brace, not structure.
func findOuterBrace(w ExpandedWord, from int) (open, close int, ok bool) {
	depth := 0
	open = -1
	for i := from; i < len(w.Value); i++ {
		if w.Value[i] == '\\' {
			i++
			continue
		}
		switch w.Value[i] {
		case '{':
			if depth == 0 {
				open = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 && open >= 0 {
					return open, i, true
				}
			}
		}
	}
	return 0, 0, false
}

// splitBraceBody recognises the two forms spec.md §4.4 supports: a
// comma-separated list ("a,b,c") and a numeric sequence
// ("start..end[..step]"). It returns nil when body is neither (the
// braces were literal).
func splitBraceBody(body ExpandedWord) ([]ExpandedWord, error) {
	parts := splitTopLevelComma(body)
	if len(parts) > 1 {
		return parts, nil
	}

	if seq, ok, err := splitNumericSequence(body); ok || err != nil {
		return seq, err
	}

	return nil, nil
}

// splitTopLevelComma splits body on every unescaped "," not nested inside
// a deeper brace group.
func splitTopLevelComma(body ExpandedWord) []ExpandedWord {
	var parts []ExpandedWord
	depth := 0
	start := 0
	for i := 0; i < len(body.Value); i++ {
		switch {
		case body.Value[i] == '\\':
			i++
		case body.Value[i] == '{':
			depth++
		case body.Value[i] == '}':
			if depth > 0 {
				depth--
			}
		case body.Value[i] == ',' && depth == 0:
			parts = append(parts, body.slice(start, i))
			start = i + 1
		}
	}
	if len(parts) == 0 {
		return nil
	}
	parts = append(parts, body.slice(start, body.Len()))
	return parts
}

// splitNumericSequence recognises "start..end" or "start..end..step",
// where start/end/step are plain (possibly negative, possibly
// zero-padded) decimal integers.
func splitNumericSequence(body ExpandedWord) ([]ExpandedWord, bool, error) {
	text := body.String()
	segs := splitLiteral(text, "..")
	if len(segs) != 2 && len(segs) != 3 {
		return nil, false, nil
	}

	start, startWidth, startPlus, startOK := parseBraceInt(segs[0])
	end, endWidth, _, endOK := parseBraceInt(segs[1])
	if !startOK || !endOK {
		return nil, false, nil
	}
	width := startWidth
	if endWidth > width {
		width = endWidth
	}
	step := 1
	if start > end {
		step = -1
	}
	if len(segs) == 3 {
		s, _, _, ok := parseBraceInt(segs[2])
		if !ok || s == 0 {
			return nil, false, nil
		}
		step = s
		if (step > 0 && start > end) || (step < 0 && start < end) {
			return nil, true, newError(KindSyntax, "brace sequence %q has a step of the wrong sign", text)
		}
	}

	count := 0
	for n := start; (step > 0 && n <= end) || (step < 0 && n >= end); n += step {
		count++
		if count > MaxBraceSequenceCount {
			return nil, true, newError(KindSyntax, "brace sequence %q produces too many elements (limit %d)", text, MaxBraceSequenceCount)
		}
	}

	out := make([]ExpandedWord, 0, count)
	for n := start; (step > 0 && n <= end) || (step < 0 && n >= end); n += step {
		s := formatBraceInt(n, width, startPlus)
		ew := ExpandedWord{}
		ew.appendString(s, true)
		out = append(out, ew)
	}
	return out, true, nil
}

// splitLiteral splits s on every occurrence of sep, with no regard for
// escaping: the numeric sequence grammar has no quoting of its own.
func splitLiteral(s, sep string) []string {
	var out []string
	for {
		i := indexLiteral(s, sep)
		if i < 0 {
			out = append(out, s)
			return out
		}
		out = append(out, s[:i])
		s = s[i+len(sep):]
	}
}

func indexLiteral(s, sep string) int {
	for i := 0; i+len(sep) <= len(s); i++ {
		if s[i:i+len(sep)] == sep {
			return i
		}
	}
	return -1
}

// parseBraceInt parses a brace-sequence endpoint, returning its value, the
// zero-padded width it was written with (0 when not zero-padded), and
// whether it carried an explicit leading "+", so formatBraceInt can
// reproduce the same width and sign convention for every generated value.
func parseBraceInt(s string) (n int, width int, plus bool, ok bool) {
	if s == "" {
		return 0, 0, false, false
	}
	digits := s
	neg := false
	if digits[0] == '+' || digits[0] == '-' {
		neg = digits[0] == '-'
		plus = digits[0] == '+'
		digits = digits[1:]
	}
	if digits == "" {
		return 0, 0, false, false
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return 0, 0, false, false
		}
	}
	v, err := strconv.Atoi(digits)
	if err != nil {
		return 0, 0, false, false
	}
	if neg {
		v = -v
	}
	if len(digits) > 1 && digits[0] == '0' {
		width = len(digits)
	}
	return v, width, plus, true
}

// formatBraceInt renders n as a decimal string, zero-padded to width when
// width > 0 (sign excluded from the padded digit count, per shell
// convention: "{-01..01}" yields "-01 00 01"), with an explicit leading
// "+" on non-negative values when plus is set (spec.md §4.4 step 2,
// expand.c's try_expand_brace_sequence: "{+1..3}" yields "+1","+2","+3").
func formatBraceInt(n int, width int, plus bool) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.Itoa(n)
	for len(s) < width {
		s = "0" + s
	}
	switch {
	case neg:
		s = "-" + s
	case plus:
		s = "+" + s
	}
	return s
}
