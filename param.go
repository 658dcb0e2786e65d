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

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// fetchedValue is the normalized result of spec.md §4.3 step 2: NotFound
// is folded into an empty Scalar so the rest of the pipeline never has to
// special-case it, while unset still records that it was absent.
type fetchedValue struct {
	kind   ValueKind // Scalar, Array, or ArrayConcat
	scalar string
	elems  []string
	unset  bool
}

// expandParamUnit implements the parameter-expansion operator set,
// spec.md §4.3. indq is the combined "we are inside double quotes, or the
// caller wants everything escaped" flag the E4 engine computes for this
// unit.
func (e *engine) expandParamUnit(p *ParamExp, indq bool, st *expandState) error {
	inner, err := e.deeper()
	if err != nil {
		return e.report(err)
	}

	// step 1: parse indices
	idxType, err := inner.paramIndexType(p)
	if err != nil {
		return e.report(err)
	}

	// step 2: fetch value
	fv, err := inner.fetchParamValue(p)
	if err != nil {
		return e.report(err)
	}

	// step 3: apply index
	elems, concatenate, err := inner.applyParamIndex(p, fv, idxType)
	if err != nil {
		return e.report(err)
	}
	unset := fv.unset

	// step 4: empty-as-unset
	if p.Flags.Has(FlagColon) && allEmpty(elems) {
		unset = true
	}

	// step 5: operator branch
	switch {
	case p.Flags.Has(FlagPlus):
		if !unset {
			words, err := inner.expandSubstWords(p.Subst, indq)
			if err != nil {
				return e.report(err)
			}
			emitParamWords(st, words, indq)
			return nil
		}
		emitParamWords(st, nil, indq)
		return nil

	case p.Flags.Has(FlagMinus):
		if unset {
			words, err := inner.expandSubstWords(p.Subst, indq)
			if err != nil {
				return e.report(err)
			}
			emitParamWords(st, words, indq)
			return nil
		}

	case p.Flags.Has(FlagAssign):
		if unset {
			assigned, err := inner.assignDefault(p)
			if err != nil {
				return e.report(err)
			}
			elems = []string{assigned}
			unset = false
		}

	case p.Flags.Has(FlagError):
		if unset {
			return e.report(inner.paramError(p))
		}
	}

	// step 6: unset-after-operators
	if unset && !e.opts.UnsetOK {
		return e.report(newError(KindUnset, "parameter %q is not set", paramLabel(p)))
	}

	// step 7: pattern operators
	if p.Flags.Has(FlagMatchHead) || p.Flags.Has(FlagMatchTail) {
		elems, err = inner.applyMatchTrim(p, elems)
		if err != nil {
			return e.report(err)
		}
	} else if p.Flags.Has(FlagSubst) {
		elems, err = inner.applySubst(p, elems)
		if err != nil {
			return e.report(err)
		}
	}

	// step 8: concatenation
	if concatenate && indq {
		elems = []string{joinWithIFS(elems, e.opts)}
	}

	// step 9: length operator
	if p.Flags.Has(FlagLength) {
		for i, el := range elems {
			elems[i] = strconv.Itoa(utf8.RuneCountInString(el))
		}
	}

	// step 10: backslash-escape and emit
	words := make([]ExpandedWord, len(elems))
	for i, el := range elems {
		appendExpansionResult(&words[i], el, indq)
	}
	emitParamWords(st, words, indq)
	return nil
}

func paramLabel(p *ParamExp) string {
	if p.Name != "" {
		return p.Name
	}
	return "<nested>"
}

func allEmpty(elems []string) bool {
	for _, el := range elems {
		if el != "" {
			return false
		}
	}
	return true
}

// emitParamWords implements spec.md §4.3 step 10's emission rule: zero
// elements under double quotes mark a "$@"-style zero word for later
// empty-field removal; one element joins the word currently being built;
// many elements flush the word so far, push every middle element as its
// own word, and start a new word with the last element.
func emitParamWords(st *expandState, words []ExpandedWord, indq bool) {
	if len(words) == 0 {
		if indq {
			st.zeroword = true
		}
		return
	}

	st.valuebuf.appendWord(words[0])
	if len(words) == 1 {
		return
	}
	st.flush()
	for _, mid := range words[1 : len(words)-1] {
		st.pushWord(mid)
	}
	st.valuebuf = words[len(words)-1]
}

// paramIndexType implements spec.md §4.3 step 1.
func (e *engine) paramIndexType(p *ParamExp) (IndexType, error) {
	if len(p.Start) == 0 {
		return IndexNone, nil
	}
	text, err := e.expandStage1Flat(p.Start)
	if err != nil {
		return IndexNone, err
	}

	var t IndexType
	switch text {
	case "@":
		t = IndexAll
	case "*":
		t = IndexConcat
	case "#":
		t = IndexNumber
	default:
		return IndexNone, nil
	}
	if len(p.End) > 0 {
		return IndexNone, newError(KindSyntax, "index type %q may not take an end index", text)
	}
	return t, nil
}

// fetchParamValue implements spec.md §4.3 step 2.
func (e *engine) fetchParamValue(p *ParamExp) (fetchedValue, error) {
	if p.Flags.Has(FlagNested) {
		words, err := e.expandSubstWords(p.Nested, true)
		if err != nil {
			return fetchedValue{}, err
		}
		strs := make([]string, len(words))
		for i, w := range words {
			strs[i] = Unescape(quoteRemoval(w.String()))
		}
		if len(strs) == 1 {
			return fetchedValue{kind: Scalar, scalar: strs[0]}, nil
		}
		return fetchedValue{kind: Array, elems: strs}, nil
	}

	if e.collab.Vars == nil {
		return fetchedValue{kind: Scalar, unset: true}, nil
	}
	v := e.collab.Vars.Lookup(p.Name)
	switch v.Kind {
	case NotFound:
		return fetchedValue{kind: Scalar, unset: true}, nil
	case Scalar:
		return fetchedValue{kind: Scalar, scalar: v.Str}, nil
	default:
		return fetchedValue{kind: v.Kind, elems: v.Elems}, nil
	}
}

// applyParamIndex implements spec.md §4.3 step 3.
func (e *engine) applyParamIndex(p *ParamExp, fv fetchedValue, idxType IndexType) (elems []string, concatenate bool, err error) {
	if idxType == IndexNumber {
		if fv.kind == Array || fv.kind == ArrayConcat {
			return []string{strconv.Itoa(len(fv.elems))}, false, nil
		}
		return []string{strconv.Itoa(utf8.RuneCountInString(fv.scalar))}, false, nil
	}

	hasStart := len(p.Start) > 0 && idxType == IndexNone
	hasEnd := len(p.End) > 0

	if fv.kind == Array || fv.kind == ArrayConcat {
		arr := fv.elems
		switch idxType {
		case IndexAll, IndexConcat:
			concatenate = idxType == IndexConcat || fv.kind == ArrayConcat
			return append([]string{}, arr...), concatenate, nil
		default:
			if !hasStart {
				return append([]string{}, arr...), fv.kind == ArrayConcat, nil
			}
			start, err := e.evaluateNumericIndex(p.Start)
			if err != nil {
				return nil, false, err
			}
			end := len(arr)
			if hasEnd {
				end, err = e.evaluateNumericIndex(p.End)
				if err != nil {
					return nil, false, err
				}
			}
			s, en := normalizeRange(start, hasEnd, end, len(arr))
			return append([]string{}, arr[s:en]...), fv.kind == ArrayConcat, nil
		}
	}

	// Scalar.
	runes := []rune(fv.scalar)
	if idxType == IndexNone && !hasStart {
		return []string{fv.scalar}, false, nil
	}
	start, err := e.evaluateNumericIndex(p.Start)
	if err != nil {
		return nil, false, err
	}
	end := len(runes)
	if hasEnd {
		end, err = e.evaluateNumericIndex(p.End)
		if err != nil {
			return nil, false, err
		}
	}
	s, en := normalizeRange(start, hasEnd, end, len(runes))
	return []string{string(runes[s:en])}, false, nil
}

// normalizeRange converts a 1-based external start (and optional
// exclusive external end) into a clamped 0-based half-open [start, end)
// range over a sequence of the given length.
//
// spec.md §9 flags this as an Open Question: a raw start of 0 can mean
// either "the first element" or "past the end", depending on shell
// tradition. This implementation picks "past the end" and documents the
// choice here, per the spec's own suggestion.
func normalizeRange(rawStart int, hasEnd bool, rawEnd int, length int) (start, end int) {
	switch {
	case rawStart == 0:
		start = length
	case rawStart < 0:
		start = rawStart + length
	default:
		start = rawStart - 1
	}
	if start < 0 {
		start = 0
	}
	if start > length {
		start = length
	}

	if !hasEnd {
		end = length
	} else {
		end = rawEnd
		switch {
		case end < 0:
			end += length
		case end > 0:
			end--
		}
		if end > length {
			end = length
		}
		if end < start {
			end = start
		}
	}
	return start, end
}

// evaluateNumericIndex expands and evaluates an index sub-word to an int.
func (e *engine) evaluateNumericIndex(units []WordUnit) (int, error) {
	text, err := e.expandStage1Flat(units)
	if err != nil {
		return 0, err
	}
	if e.collab.Index == nil {
		return 0, newError(KindDelegate, "no index evaluator configured")
	}
	n, err := e.collab.Index.EvaluateIndex(e.ctx, text)
	if err != nil {
		return 0, wrapError(KindDelegate, err, "index expression %q failed", text)
	}
	return n, nil
}

// expandStage1Flat expands units through stage 1 only (no tilde, quotes
// processed but not surviving) and flattens the result to one unescaped
// string — "stage 1 only, unescaped" in spec.md §4.3 step 1, and "stage 1
// + unescape" in step 5's ASSIGN/ERROR branches.
func (e *engine) expandStage1Flat(units []WordUnit) (string, error) {
	if len(units) == 0 {
		return "", nil
	}
	st, err := e.expandFour(units, e4params{tilde: TildeNone, processQuotes: true, escapeAll: false, rec: false})
	if err != nil {
		return "", err
	}
	words := append(st.valuelist, st.valuebuf)
	var buf strings.Builder
	for _, w := range words {
		buf.WriteString(Unescape(quoteRemoval(w.String())))
	}
	return buf.String(), nil
}

// expandSubstWords expands a PLUS/MINUS/nested right-hand side with full
// recursive, splittable semantics: "processquotes=true, escapeall=indq,
// rec=true" per spec.md §4.3 step 5.
func (e *engine) expandSubstWords(units []WordUnit, indq bool) ([]ExpandedWord, error) {
	st, err := e.expandFour(units, e4params{tilde: TildeNone, processQuotes: true, escapeAll: indq, rec: true})
	if err != nil {
		return nil, err
	}
	return append(st.valuelist, st.valuebuf), nil
}

// assignDefault implements the ASSIGN branch of spec.md §4.3 step 5:
// assign to name (scalar) or to name[start] (array), per whichever index
// form the parameter carried.
func (e *engine) assignDefault(p *ParamExp) (string, error) {
	if p.Flags.Has(FlagNested) || !isValidIdentifier(p.Name) {
		return "", newError(KindSyntax, "cannot assign to %q", paramLabel(p))
	}
	value, err := e.expandStage1Flat(p.Subst)
	if err != nil {
		return "", err
	}
	if e.collab.Vars == nil {
		return "", newError(KindDelegate, "no variable store configured")
	}

	idxType, err := e.paramIndexType(p)
	if err != nil {
		return "", err
	}
	if idxType == IndexNone && len(p.Start) > 0 {
		rawIndex, err := e.evaluateNumericIndex(p.Start)
		if err != nil {
			return "", err
		}
		length := 0
		if v := e.collab.Vars.Lookup(p.Name); v.Kind == Array || v.Kind == ArrayConcat {
			length = len(v.Elems)
		}
		index, _ := normalizeRange(rawIndex, false, 0, length)
		if err := e.collab.Vars.AssignElement(p.Name, index, value); err != nil {
			return "", wrapError(KindSyntax, err, "cannot assign to %q", paramLabel(p))
		}
		return value, nil
	}

	if err := e.collab.Vars.Assign(p.Name, value, false); err != nil {
		return "", wrapError(KindSyntax, err, "cannot assign to %q", p.Name)
	}
	return value, nil
}

// paramError implements the ERROR branch of spec.md §4.3 step 5.
func (e *engine) paramError(p *ParamExp) error {
	msg := "parameter not set"
	if len(p.Subst) > 0 {
		if text, err := e.expandStage1Flat(p.Subst); err == nil && text != "" {
			msg = text
		}
	}
	return newError(KindSyntax, "%s: %s", paramLabel(p), msg)
}

func isValidIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		if i == 0 && !isNameStartRune(c) {
			return false
		}
		if i > 0 && !isNameBodyRune(c) {
			return false
		}
	}
	return true
}

func isNameStartRune(c rune) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameBodyRune(c rune) bool {
	return isNameStartRune(c) || (c >= '0' && c <= '9')
}

// applyMatchTrim implements spec.md §4.3 step 7's MATCH branch: compile
// the pattern and strip the matched span from the head or tail of each
// element.
func (e *engine) applyMatchTrim(p *ParamExp, elems []string) ([]string, error) {
	pattern, err := e.expandStage1Flat(p.Match)
	if err != nil {
		return nil, err
	}
	if e.collab.Patterns == nil {
		return nil, newError(KindDelegate, "no pattern matcher configured")
	}
	anchor := AnchorStart
	if p.Flags.Has(FlagMatchTail) {
		anchor = AnchorEnd
	}
	compiled, err := e.collab.Patterns.Compile(pattern, PatternFlags{
		Anchor: anchor,
		Greedy: p.Flags.Has(FlagMatchLongest),
	})
	if err != nil {
		return nil, wrapError(KindDelegate, err, "pattern %q failed to compile", pattern)
	}

	out := make([]string, len(elems))
	for i, el := range elems {
		start, end, ok := compiled.Find(el)
		if !ok {
			out[i] = el
			continue
		}
		out[i] = el[:start] + el[end:]
	}
	return out, nil
}

// applySubst implements spec.md §4.3 step 7's SUBST branch.
func (e *engine) applySubst(p *ParamExp, elems []string) ([]string, error) {
	pattern, err := e.expandStage1Flat(p.Match)
	if err != nil {
		return nil, err
	}
	replacement, err := e.expandStage1Flat(p.Subst)
	if err != nil {
		return nil, err
	}
	if e.collab.Patterns == nil {
		return nil, newError(KindDelegate, "no pattern matcher configured")
	}
	anchor := AnchorNone
	switch {
	case p.Flags.Has(FlagMatchHead):
		anchor = AnchorStart
	case p.Flags.Has(FlagMatchTail):
		anchor = AnchorEnd
	}
	compiled, err := e.collab.Patterns.Compile(pattern, PatternFlags{Anchor: anchor, Greedy: true})
	if err != nil {
		return nil, wrapError(KindDelegate, err, "pattern %q failed to compile", pattern)
	}

	out := make([]string, len(elems))
	for i, el := range elems {
		out[i] = compiled.Substitute(el, replacement, p.Flags.Has(FlagSubstAll))
	}
	return out, nil
}

// joinWithIFS implements spec.md §4.3 step 8: join array elements with
// the first character of IFS (or a space when IFS is unset; no separator
// when IFS is set but empty).
func joinWithIFS(elems []string, opts Options) string {
	ifs := opts.effectiveIFS()
	sep := " "
	if opts.EmptyIFSSet || opts.IFS != "" {
		if ifs == "" {
			sep = ""
		} else {
			sep = string([]rune(ifs)[0])
		}
	}
	return strings.Join(elems, sep)
}
