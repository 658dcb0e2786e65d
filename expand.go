// wordexpand turns a parsed shell word into its final argument strings:
// tilde, parameter, command substitution and arithmetic expansion, brace
// expansion, field splitting, quote removal, and filename generation.
//
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

import "context"

// ExpandLine runs the full six-stage pipeline (spec.md §2) over every
// word-unit chain in words, in order, and returns the final argument
// list. Command substitution, arithmetic, and glob matching may each
// observe side effects from an earlier word in the same call, since they
// share one engine and one Collaborators.
func ExpandLine(ctx context.Context, words [][]WordUnit, collab *Collaborators, opts Options) ([]string, error) {
	e := newEngine(ctx, collab, opts)
	var out []string
	for _, chain := range words {
		fields, err := e.expandOneWord(chain, TildeSingle)
		if err != nil {
			return nil, err
		}
		out = append(out, fields...)
	}
	return out, nil
}

// ExpandMultiple runs the pipeline over a single word-unit chain and
// returns every resulting field (brace expansion, field splitting, and
// glob expansion may each turn one word into several).
func ExpandMultiple(ctx context.Context, units []WordUnit, collab *Collaborators, opts Options) ([]string, error) {
	e := newEngine(ctx, collab, opts)
	return e.expandOneWord(units, TildeSingle)
}

// ExpandSingle runs only stage 1 (the four expansions) over units and
// returns the single resulting word, quote marks and backslash escapes
// still in place. Used by callers that need the expanded-but-not-yet-
// field-split text, such as a prompt string or an assignment's raw
// value.
func ExpandSingle(ctx context.Context, units []WordUnit, collab *Collaborators, opts Options) (string, error) {
	e := newEngine(ctx, collab, opts)
	st, err := e.expandFour(units, e4params{tilde: TildeSingle, processQuotes: true, escapeAll: false, rec: true})
	if err != nil {
		return "", err
	}
	st.flush()
	var out []rune
	for _, w := range st.valuelist {
		out = append(out, w.Value...)
	}
	return string(out), nil
}

// ExpandSingleAndUnescape runs ExpandSingle and then applies quote
// removal and backslash unescaping, yielding the plain text a variable
// assignment's right-hand side should store.
func ExpandSingleAndUnescape(ctx context.Context, units []WordUnit, collab *Collaborators, opts Options) (string, error) {
	s, err := ExpandSingle(ctx, units, collab, opts)
	if err != nil {
		return "", err
	}
	return Unescape(quoteRemoval(s)), nil
}

// ExpandSingleWithGlob runs the full pipeline but requires the result to
// be exactly one field, applying the single-target glob leniency rule
// from spec.md §4.7: a pattern matching many files falls back to its own
// literal text under PosixlyCorrect, and is a hard ambiguity error
// otherwise.
func ExpandSingleWithGlob(ctx context.Context, units []WordUnit, collab *Collaborators, opts Options) (string, error) {
	e := newEngine(ctx, collab, opts)
	fields, raw, err := e.expandToFields(units, TildeSingle)
	if err != nil {
		return "", err
	}
	if len(fields) == 1 {
		return fields[0], nil
	}
	if len(raw) == 1 {
		return e.globSingle(raw[0])
	}
	return "", e.report(newError(KindSyntax, "expected exactly one word, got %d", len(fields)))
}

// ParseAndExpandString is a convenience entry point for callers that
// already have the parser's word-unit chain for a single already-parsed
// string token (e.g. a config value or test fixture) and just want its
// final expanded fields.
func ParseAndExpandString(ctx context.Context, units []WordUnit, collab *Collaborators, opts Options) ([]string, error) {
	return ExpandMultiple(ctx, units, collab, opts)
}

// expandOneWord runs stages 1-6 on a single word-unit chain and returns
// the final field list.
func (e *engine) expandOneWord(units []WordUnit, tilde TildeMode) ([]string, error) {
	fields, _, err := e.expandToFields(units, tilde)
	return fields, err
}

// expandToFields runs the full pipeline and also returns the
// pre-quote-removal, pre-glob fields, which ExpandSingleWithGlob needs to
// recover the original pattern when field splitting produced exactly one
// field.
func (e *engine) expandToFields(units []WordUnit, tilde TildeMode) (final []string, preGlob []ExpandedWord, err error) {
	st, err := e.expandFour(units, e4params{tilde: tilde, processQuotes: true, escapeAll: false, rec: true})
	if err != nil {
		return nil, nil, err
	}
	st.flush()
	words := st.valuelist
	sawZeroWord := st.zeroword

	var braced []ExpandedWord
	for _, w := range words {
		bw, err := expandBraces(w, e.opts)
		if err != nil {
			return nil, nil, e.report(err)
		}
		braced = append(braced, bw...)
	}

	var split []ExpandedWord
	for _, w := range braced {
		split = append(split, removeEmptyFields(fieldSplit(w, e.opts))...)
	}

	if len(split) == 0 && sawZeroWord {
		// an unquoted "$@" with zero positional parameters vanishes
		// entirely rather than leaving a single empty field.
		return nil, nil, nil
	}

	preGlob = split

	out := make([]string, 0, len(split))
	for _, w := range split {
		removed := quoteRemovedWord(w)

		matches, err := e.globDispatch(removed)
		if err != nil {
			return nil, nil, err
		}
		out = append(out, matches...)
	}
	return out, preGlob, nil
}

// quoteRemovedWord applies quote removal to w while keeping its
// splittability mask aligned to the surviving code points; quote removal
// only ever deletes the structural ' and " marks, so a parallel walk
// suffices.
func quoteRemovedWord(w ExpandedWord) ExpandedWord {
	out := ExpandedWord{}
	i := 0
	for i < len(w.Value) {
		switch w.Value[i] {
		case '\\':
			out.appendRune('\\', w.Mask[i])
			i++
			if i < len(w.Value) {
				out.appendRune(w.Value[i], w.Mask[i])
				i++
			}
		case '\'', '"':
			i++
		default:
			out.appendRune(w.Value[i], w.Mask[i])
			i++
		}
	}
	return out
}
