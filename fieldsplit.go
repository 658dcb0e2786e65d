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

// fieldSplit implements spec.md §4.5, stage 3 of the pipeline: split one
// brace-expanded word into one or more fields at the splittable code
// points that also appear in IFS. A word produced by a parameter
// expansion's multi-element emission already arrives as several separate
// ExpandedWords (spec.md §4.3 step 10 handles that split); this function
// only splits within a single word on IFS-classified, mask-marked
// positions.
func fieldSplit(w ExpandedWord, opts Options) []ExpandedWord {
	ifsWS, ifsNonWS := classifyIFS(opts.effectiveIFS())
	if len(ifsWS) == 0 && len(ifsNonWS) == 0 {
		return []ExpandedWord{w}
	}

	var fields []ExpandedWord
	cur := ExpandedWord{}
	haveCur := false
	i := 0
	n := w.Len()

	skipLeadingWS := func() {
		for i < n && w.Mask[i] && strings.ContainsRune(ifsWS, w.Value[i]) {
			i++
		}
	}

	skipLeadingWS()
	for i < n {
		c := w.Value[i]
		splittable := w.Mask[i]

		if splittable && strings.ContainsRune(ifsWS, c) {
			fields = append(fields, cur)
			cur = ExpandedWord{}
			haveCur = false
			i++
			skipLeadingWS()
			continue
		}

		if splittable && strings.ContainsRune(ifsNonWS, c) {
			fields = append(fields, cur)
			cur = ExpandedWord{}
			haveCur = false
			i++
			// a non-whitespace delimiter followed immediately by
			// whitespace still eats that whitespace, but produces no
			// extra empty field for it.
			for i < n && w.Mask[i] && strings.ContainsRune(ifsWS, w.Value[i]) {
				i++
			}
			continue
		}

		cur.appendRune(c, splittable)
		haveCur = true
		i++
	}

	if haveCur || opts.EmptyLastField || len(fields) == 0 {
		fields = append(fields, cur)
	}
	return fields
}

// classifyIFS splits IFS into its whitespace subset (space, tab, newline)
// and everything else, per spec.md §4.5 / Glossary.
func classifyIFS(ifs string) (whitespace, other string) {
	var ws, rest strings.Builder
	for _, c := range ifs {
		if c == ' ' || c == '\t' || c == '\n' {
			ws.WriteRune(c)
		} else {
			rest.WriteRune(c)
		}
	}
	return ws.String(), rest.String()
}

// removeEmptyFields implements spec.md §4.5's stage-4 rule, scoped to one
// expanded word's own split result: the rule only drops a field when the
// splitting of that single word produced exactly one, empty field (or
// the zeroword case, handled by the caller before fieldSplit ever runs).
// A non-whitespace IFS delimiter can legitimately produce an empty field
// in the middle of a multi-field split (spec.md:265, IFS=":", "a::b" ->
// ["a","","b"]); that empty field is not this rule's concern and must
// survive, so this must be called per source word, never on a list
// already merged across several words.
func removeEmptyFields(fields []ExpandedWord) []ExpandedWord {
	if len(fields) == 1 && fields[0].Len() == 0 {
		return nil
	}
	return fields
}
