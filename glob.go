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

// globDispatch implements spec.md §4.7, stage 6 of the pipeline: decide
// whether a quote-removed field contains an active (unescaped) glob
// metacharacter, and if so hand it to the Globber; otherwise (or on no
// match with nullglob off) return the field unescaped, verbatim.
func (e *engine) globDispatch(field ExpandedWord) ([]string, error) {
	pattern, literal := renderGlobPattern(field)
	if literal || !e.opts.Glob {
		return []string{Unescape(field.String())}, nil
	}

	if e.collab.Glob == nil {
		return nil, e.report(newError(KindDelegate, "no globber configured"))
	}

	select {
	case <-e.interruptChan():
		return nil, e.report(newError(KindDelegate, "glob expansion of %q interrupted", pattern))
	default:
	}

	flags := GlobFlags{
		CaseFold:     !e.opts.CaseGlob,
		IncludeDot:   e.opts.DotGlob,
		MarkDirs:     e.opts.MarkDirs,
		ExtendedGlob: e.opts.ExtendedGlob,
	}
	matches, err := e.collab.Glob.Glob(e.ctx, pattern, flags)
	if err != nil {
		return nil, e.report(wrapError(KindDelegate, err, "glob expansion of %q failed", pattern))
	}

	if len(matches) == 0 {
		if e.opts.Nullglob {
			return nil, nil
		}
		return []string{Unescape(field.String())}, nil
	}
	return matches, nil
}

// globSingle implements ExpandSingleWithGlob's leniency: a single-target
// glob that matches exactly one path returns it; zero matches fall back
// to the literal field. More than one match is ambiguous: spec.md §4.7
// treats the pattern as its own literal text in POSIX mode, and as a
// hard error otherwise.
func (e *engine) globSingle(field ExpandedWord) (string, error) {
	matches, err := e.globDispatch(field)
	if err != nil {
		return "", err
	}
	switch len(matches) {
	case 0:
		return Unescape(field.String()), nil
	case 1:
		return matches[0], nil
	default:
		if e.opts.PosixlyCorrect {
			return Unescape(field.String()), nil
		}
		return "", e.report(newError(KindAmbiguity, "pattern %q matched %d files, expected exactly one", field.String(), len(matches)))
	}
}

func (e *engine) interruptChan() <-chan struct{} {
	if e.collab.Interrupt != nil {
		return e.collab.Interrupt
	}
	return nil
}

// renderGlobPattern walks field's mask-tagged runes and produces the
// pattern string the Globber should see (escaped-char markers stripped,
// since a Globber matches literal characters there), plus whether the
// field contains no active metacharacter at all (i.e. is already
// literal, so glob dispatch can be skipped).
func renderGlobPattern(field ExpandedWord) (pattern string, literal bool) {
	var buf []rune
	literal = true
	runes := field.Value
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if c == '\\' && i+1 < len(runes) {
			i++
			buf = append(buf, runes[i])
			continue
		}
		if isGlobMeta(c) {
			literal = false
		}
		buf = append(buf, c)
	}
	return string(buf), literal
}

func isGlobMeta(c rune) bool {
	switch c {
	case '*', '?', '[':
		return true
	default:
		return false
	}
}
