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
	"context"
	"strconv"
	"strings"
)

// fakeVars is a minimal in-memory VariableStore for tests.
type fakeVars struct {
	scalars map[string]string
	arrays  map[string][]string
	concats map[string]bool
}

func newFakeVars() *fakeVars {
	return &fakeVars{scalars: map[string]string{}, arrays: map[string][]string{}, concats: map[string]bool{}}
}

func (f *fakeVars) setScalar(name, value string) { f.scalars[name] = value }
func (f *fakeVars) setArray(name string, values []string, concat bool) {
	f.arrays[name] = values
	f.concats[name] = concat
}

func (f *fakeVars) Lookup(name string) Value {
	if v, ok := f.arrays[name]; ok {
		if f.concats[name] {
			return Value{Kind: ArrayConcat, Elems: v}
		}
		return Value{Kind: Array, Elems: v}
	}
	if v, ok := f.scalars[name]; ok {
		return Value{Kind: Scalar, Str: v}
	}
	return Value{Kind: NotFound}
}

func (f *fakeVars) Assign(name, value string, global bool) error {
	f.scalars[name] = value
	return nil
}

func (f *fakeVars) AssignElement(name string, index int, value string) error {
	arr := f.arrays[name]
	for len(arr) <= index {
		arr = append(arr, "")
	}
	arr[index] = value
	f.arrays[name] = arr
	return nil
}

// fakeArith evaluates "n + m"-style expressions just well enough to drive
// the tests that need an ArithmeticEvaluator; anything it can't parse it
// returns unevaluated.
type fakeArith struct{}

func (fakeArith) Evaluate(ctx context.Context, expr string) (string, error) {
	expr = strings.TrimSpace(expr)
	if n, err := strconv.Atoi(expr); err == nil {
		return strconv.Itoa(n), nil
	}
	for _, op := range []string{"+", "-"} {
		if i := strings.Index(expr, op); i > 0 {
			a, errA := strconv.Atoi(strings.TrimSpace(expr[:i]))
			b, errB := strconv.Atoi(strings.TrimSpace(expr[i+1:]))
			if errA == nil && errB == nil {
				if op == "+" {
					return strconv.Itoa(a + b), nil
				}
				return strconv.Itoa(a - b), nil
			}
		}
	}
	return expr, nil
}

// fakeIndex evaluates a plain decimal integer expression.
type fakeIndex struct{}

func (fakeIndex) EvaluateIndex(ctx context.Context, expr string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(expr))
}

// fakeCmdSub returns a canned string for any substitution, recording the
// source it was asked to run.
type fakeCmdSub struct {
	output string
	calls  []string
}

func (f *fakeCmdSub) Substitute(ctx context.Context, unit CmdSubUnit) (string, error) {
	f.calls = append(f.calls, unit.Source)
	return f.output, nil
}

func testCollab(vars *fakeVars) *Collaborators {
	return &Collaborators{
		Vars:     vars,
		Arith:    fakeArith{},
		Index:    fakeIndex{},
		Patterns: testPatternMatcher{},
	}
}

// testPatternMatcher implements a tiny "*"-and-literal-only PatternMatcher
// sufficient for the MATCH/SUBST operator tests, without depending on the
// collab/patternmatch package (kept as a separate, real, regexp-backed
// implementation; that package has no tests of its own).
type testPatternMatcher struct{}

type testCompiledPattern struct {
	prefix, suffix string
	star           bool
	anchor         PatternAnchor
	greedy         bool
}

func (testPatternMatcher) Compile(pattern string, flags PatternFlags) (CompiledPattern, error) {
	if i := strings.Index(pattern, "*"); i >= 0 {
		return &testCompiledPattern{prefix: pattern[:i], suffix: pattern[i+1:], star: true, anchor: flags.Anchor, greedy: flags.Greedy}, nil
	}
	return &testCompiledPattern{prefix: pattern, anchor: flags.Anchor}, nil
}

func (c *testCompiledPattern) Find(s string) (int, int, bool) {
	if !c.star {
		if idx := strings.Index(s, c.prefix); idx >= 0 && c.prefix != "" {
			return idx, idx + len(c.prefix), true
		}
		return 0, 0, false
	}
	if !strings.HasPrefix(s, c.prefix) {
		return 0, 0, false
	}
	rest := s[len(c.prefix):]
	if c.suffix == "" {
		return 0, len(s), true
	}
	idx := strings.Index(rest, c.suffix)
	if c.greedy {
		idx = strings.LastIndex(rest, c.suffix)
	}
	if idx < 0 {
		return 0, 0, false
	}
	return 0, len(c.prefix) + idx + len(c.suffix), true
}

func (c *testCompiledPattern) Substitute(s, replacement string, all bool) string {
	start, end, ok := c.Find(s)
	if !ok {
		return s
	}
	out := s[:start] + replacement + s[end:]
	if all {
		for {
			start2, end2, ok2 := c.Find(out[start+len(replacement):])
			if !ok2 {
				break
			}
			base := start + len(replacement)
			out = out[:base+start2] + replacement + out[base+end2:]
		}
	}
	return out
}

func str(s string) []WordUnit {
	return []WordUnit{{Kind: WordString, String: s}}
}
