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

// e4params is the parameter set expandFour takes, per spec.md §4.1.
type e4params struct {
	tilde         TildeMode
	processQuotes bool
	escapeAll     bool
	rec           bool
}

// escapableInDoubleQuotes lists the characters after which a backslash
// retains its special meaning inside a "..." region; every other
// backslash inside double quotes is itself literal.
const escapableInDoubleQuotes = "$`\"\\\n"

// expandFour is the four-expansion engine (spec.md §4.1). It walks one
// word-unit chain and returns the completed expandState: zero or more
// finished expanded words in valuelist, plus whatever is still open in
// valuebuf (the caller flushes it).
func (e *engine) expandFour(units []WordUnit, p e4params) (*expandState, error) {
	st := &expandState{}
	indq := false

	for i, u := range units {
		hasNext := i+1 < len(units)

		switch u.Kind {
		case WordString:
			if err := e.expandStringUnit(u.String, i == 0, hasNext, &indq, p, st); err != nil {
				return nil, err
			}

		case WordParam:
			if err := e.expandParamUnit(u.Param, indq || p.escapeAll, st); err != nil {
				return nil, err
			}

		case WordCmdSub:
			if e.collab.CmdSub == nil {
				return nil, e.report(newError(KindDelegate, "no command substituter configured"))
			}
			out, err := e.collab.CmdSub.Substitute(e.ctx, u.CmdSub)
			if err != nil {
				return nil, e.report(wrapError(KindDelegate, err, "command substitution %q failed", u.CmdSub.Source))
			}
			appendExpansionResult(&st.valuebuf, out, indq || p.escapeAll)

		case WordArith:
			out, err := e.expandArithUnit(u.Arith)
			if err != nil {
				return nil, err
			}
			appendExpansionResult(&st.valuebuf, out, indq || p.escapeAll)
		}
	}

	return st, nil
}

// expandStringUnit implements the STRING case of spec.md §4.1.
func (e *engine) expandStringUnit(s string, isFirstUnit, hasNext bool, indq *bool, p e4params, st *expandState) error {
	runes := []rune(s)
	i := 0
	dirs := e.collab.DirStack
	if !e.opts.DirStackEnabled {
		dirs = nil
	}

	if isFirstUnit && p.tilde != TildeNone && !*indq && len(runes) > 0 && runes[0] == '~' {
		res := expandTilde(runes, p.tilde, hasNext, e.collab.Vars, e.collab.HomeDirs, dirs, e.opts.PosixlyCorrect)
		if res.expanded {
			st.valuebuf.appendString(res.replacement, false)
			i = res.consumed
		}
	}

	for i < len(runes) {
		c := runes[i]
		switch {
		case c == '"' && p.processQuotes:
			*indq = !*indq
			st.valuebuf.appendRune('"', false)
			i++

		case c == '\'' && p.processQuotes && !*indq:
			st.valuebuf.appendRune('\'', false)
			i++
			for i < len(runes) && runes[i] != '\'' {
				st.valuebuf.appendRune('\\', false)
				st.valuebuf.appendRune(runes[i], false)
				i++
			}
			st.valuebuf.appendRune('\'', false)
			if i < len(runes) {
				i++
			}

		case c == '\\':
			i = e.handleBackslash(runes, i, *indq, p, st)

		case c == ':' && p.tilde == TildeMulti && !*indq:
			st.valuebuf.appendRune(':', false)
			i++
			if i < len(runes) && runes[i] == '~' {
				res := expandTilde(runes[i:], p.tilde, hasNext, e.collab.Vars, e.collab.HomeDirs, dirs, e.opts.PosixlyCorrect)
				if res.expanded {
					st.valuebuf.appendString(res.replacement, false)
					i += res.consumed
					continue
				}
			}

		default:
			splittable := !*indq && !p.escapeAll && p.rec
			if *indq || p.escapeAll {
				st.valuebuf.appendRune('\\', false)
			}
			st.valuebuf.appendRune(c, splittable)
			i++
		}
	}
	return nil
}

// handleBackslash applies the flag-dependent backslash rules from
// spec.md §4.1 and returns the index just past the consumed pair.
func (e *engine) handleBackslash(runes []rune, i int, indq bool, p e4params, st *expandState) int {
	if i+1 >= len(runes) {
		st.valuebuf.appendRune('\\', false)
		return i + 1
	}
	next := runes[i+1]

	if p.processQuotes {
		if indq && !runeInSet(next, escapableInDoubleQuotes) {
			// backslash is itself literal here (spec.md §4.1; yash's
			// expand.c escape: branch for a non-escapable char inside
			// "..."). A bare backslash+next pair would be collapsed
			// by the later Unescape() pass, so escape each rune in
			// turn: that way Unescape reproduces "\next" instead of
			// silently dropping the backslash.
			st.valuebuf.appendRune('\\', false)
			st.valuebuf.appendRune('\\', false)
			st.valuebuf.appendRune('\\', false)
			st.valuebuf.appendRune(next, false)
			return i + 2
		}
		st.valuebuf.appendRune('\\', false)
		st.valuebuf.appendRune(next, false)
		return i + 2
	}

	if !p.escapeAll && runeInSet(next, "$`\\") {
		st.valuebuf.appendRune(next, false)
		return i + 2
	}

	st.valuebuf.appendRune('\\', false)
	st.valuebuf.appendRune(next, false)
	return i + 2
}

// appendExpansionResult appends s (a command-substitution or arithmetic
// result) to w, escaping per spec.md §4.1: every code point when
// escapeAll is true, otherwise only the set special to brace/glob.
func appendExpansionResult(w *ExpandedWord, s string, escapeAll bool) {
	for _, r := range s {
		if escapeAll || runeInSet(r, specialToBraceGlob) {
			w.appendRune('\\', false)
			w.appendRune(r, false)
			continue
		}
		w.appendRune(r, true)
	}
}

// expandArithUnit implements the ARITH case of spec.md §4.1: expand the
// sub-word with no surviving quotes, unescape it, and hand the plain
// expression to the arithmetic evaluator.
func (e *engine) expandArithUnit(units []WordUnit) (string, error) {
	st, err := e.expandFour(units, e4params{tilde: TildeNone, processQuotes: true, escapeAll: false, rec: false})
	if err != nil {
		return "", err
	}
	words := append(st.valuelist, st.valuebuf)

	var buf strings.Builder
	for _, w := range words {
		buf.WriteString(Unescape(quoteRemoval(w.String())))
	}

	if e.collab.Arith == nil {
		return "", e.report(newError(KindDelegate, "no arithmetic evaluator configured"))
	}
	result, err := e.collab.Arith.Evaluate(e.ctx, buf.String())
	if err != nil {
		return "", e.report(wrapError(KindDelegate, err, "arithmetic expansion of %q failed", buf.String()))
	}
	return result, nil
}
