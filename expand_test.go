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
	"testing"

	"github.com/stretchr/testify/assert"
)

func mustExpand(t *testing.T, units []WordUnit, collab *Collaborators, opts Options) []string {
	t.Helper()
	got, err := ExpandMultiple(context.Background(), units, collab, opts)
	if err != nil {
		t.Fatalf("ExpandMultiple(%v) returned error: %v", units, err)
	}
	return got
}

func TestExpandLiteralWord(t *testing.T) {
	t.Parallel()

	// ----------------------------------------------------------------
	// setup your test

	collab := testCollab(newFakeVars())
	expectedResult := []string{"hello"}

	// ----------------------------------------------------------------
	// perform the change

	actualResult := mustExpand(t, str("hello"), collab, Options{})

	// ----------------------------------------------------------------
	// test the results

	assert.Equal(t, expectedResult, actualResult)
}

func TestExpandFieldSplitsOnWhitespace(t *testing.T) {
	t.Parallel()

	// ----------------------------------------------------------------
	// setup your test

	vars := newFakeVars()
	vars.setScalar("X", "a  b   c")
	collab := testCollab(vars)
	units := []WordUnit{{Kind: WordParam, Param: &ParamExp{Name: "X"}}}
	expectedResult := []string{"a", "b", "c"}

	// ----------------------------------------------------------------
	// perform the change

	actualResult := mustExpand(t, units, collab, Options{})

	// ----------------------------------------------------------------
	// test the results

	assert.Equal(t, expectedResult, actualResult)
}

func TestExpandNonWhitespaceIFSKeepsInteriorEmptyField(t *testing.T) {
	t.Parallel()

	// ----------------------------------------------------------------
	// setup your test

	vars := newFakeVars()
	vars.setScalar("X", "a::b")
	collab := testCollab(vars)
	units := []WordUnit{{Kind: WordParam, Param: &ParamExp{Name: "X"}}}
	expectedResult := []string{"a", "", "b"}

	// ----------------------------------------------------------------
	// perform the change

	actualResult := mustExpand(t, units, collab, Options{IFS: ":", EmptyIFSSet: true})

	// ----------------------------------------------------------------
	// test the results

	assert.Equal(t, expectedResult, actualResult)
}

func TestExpandQuotedParamDoesNotSplit(t *testing.T) {
	t.Parallel()

	// ----------------------------------------------------------------
	// setup your test

	vars := newFakeVars()
	vars.setScalar("X", "a b c")
	collab := testCollab(vars)
	units := []WordUnit{
		{Kind: WordString, String: `"`},
		{Kind: WordParam, Param: &ParamExp{Name: "X"}},
		{Kind: WordString, String: `"`},
	}
	expectedResult := []string{"a b c"}

	// ----------------------------------------------------------------
	// perform the change

	actualResult := mustExpand(t, units, collab, Options{})

	// ----------------------------------------------------------------
	// test the results

	assert.Equal(t, expectedResult, actualResult)
}

func TestExpandUnsetParamDefault(t *testing.T) {
	t.Parallel()

	// ----------------------------------------------------------------
	// setup your test

	collab := testCollab(newFakeVars())
	units := []WordUnit{{Kind: WordParam, Param: &ParamExp{
		Name:  "X",
		Flags: FlagMinus | FlagColon,
		Subst: str("fallback"),
	}}}
	expectedResult := []string{"fallback"}

	// ----------------------------------------------------------------
	// perform the change

	actualResult := mustExpand(t, units, collab, Options{})

	// ----------------------------------------------------------------
	// test the results

	assert.Equal(t, expectedResult, actualResult)
}

func TestExpandUnsetParamErrorsWithoutUnsetOK(t *testing.T) {
	t.Parallel()

	// ----------------------------------------------------------------
	// setup your test

	collab := testCollab(newFakeVars())
	units := []WordUnit{{Kind: WordParam, Param: &ParamExp{Name: "X"}}}

	// ----------------------------------------------------------------
	// perform the change

	_, err := ExpandMultiple(context.Background(), units, collab, Options{})

	// ----------------------------------------------------------------
	// test the results

	assert.Error(t, err)
	werr, ok := err.(*Error)
	assert.True(t, ok)
	assert.Equal(t, KindUnset, werr.Kind)
}

func TestExpandArrayAtSignSplitsPerElement(t *testing.T) {
	t.Parallel()

	// ----------------------------------------------------------------
	// setup your test

	vars := newFakeVars()
	vars.setArray("@", []string{"one", "two three", "four"}, false)
	collab := testCollab(vars)
	units := []WordUnit{
		{Kind: WordString, String: `"`},
		{Kind: WordParam, Param: &ParamExp{Name: "@", Start: str("@")}},
		{Kind: WordString, String: `"`},
	}
	expectedResult := []string{"one", "two three", "four"}

	// ----------------------------------------------------------------
	// perform the change

	actualResult := mustExpand(t, units, collab, Options{})

	// ----------------------------------------------------------------
	// test the results

	assert.Equal(t, expectedResult, actualResult)
}

func TestExpandBraceList(t *testing.T) {
	t.Parallel()

	// ----------------------------------------------------------------
	// setup your test

	collab := testCollab(newFakeVars())
	expectedResult := []string{"abe", "ace", "ade"}

	// ----------------------------------------------------------------
	// perform the change

	actualResult := mustExpand(t, str("a{b,c,d}e"), collab, Options{BraceExpand: true})

	// ----------------------------------------------------------------
	// test the results

	assert.Equal(t, expectedResult, actualResult)
}

func TestExpandBraceNumericSequence(t *testing.T) {
	t.Parallel()

	// ----------------------------------------------------------------
	// setup your test

	collab := testCollab(newFakeVars())
	expectedResult := []string{"1", "2", "3"}

	// ----------------------------------------------------------------
	// perform the change

	actualResult := mustExpand(t, str("{1..3}"), collab, Options{BraceExpand: true})

	// ----------------------------------------------------------------
	// test the results

	assert.Equal(t, expectedResult, actualResult)
}

func TestExpandBraceNumericSequenceZeroPadded(t *testing.T) {
	t.Parallel()

	// ----------------------------------------------------------------
	// setup your test

	collab := testCollab(newFakeVars())
	expectedResult := []string{"01", "02", "03"}

	// ----------------------------------------------------------------
	// perform the change

	actualResult := mustExpand(t, str("{01..03}"), collab, Options{BraceExpand: true})

	// ----------------------------------------------------------------
	// test the results

	assert.Equal(t, expectedResult, actualResult)
}

func TestExpandArithmetic(t *testing.T) {
	t.Parallel()

	// ----------------------------------------------------------------
	// setup your test

	collab := testCollab(newFakeVars())
	units := []WordUnit{{Kind: WordArith, Arith: str("2 + 3")}}
	expectedResult := []string{"5"}

	// ----------------------------------------------------------------
	// perform the change

	actualResult := mustExpand(t, units, collab, Options{})

	// ----------------------------------------------------------------
	// test the results

	assert.Equal(t, expectedResult, actualResult)
}

func TestExpandCommandSubstitution(t *testing.T) {
	t.Parallel()

	// ----------------------------------------------------------------
	// setup your test

	vars := newFakeVars()
	collab := testCollab(vars)
	collab.CmdSub = &fakeCmdSub{output: "hello world"}
	units := []WordUnit{{Kind: WordCmdSub, CmdSub: CmdSubUnit{Source: "echo hello world"}}}
	expectedResult := []string{"hello", "world"}

	// ----------------------------------------------------------------
	// perform the change

	actualResult := mustExpand(t, units, collab, Options{})

	// ----------------------------------------------------------------
	// test the results

	assert.Equal(t, expectedResult, actualResult)
}

func TestQuoteAsWordThenExpandRoundTrips(t *testing.T) {
	t.Parallel()

	testData := []string{"hello world", "a'b", "", "x*y"}

	for _, expectedResult := range testData {
		// ----------------------------------------------------------------
		// setup your test

		collab := testCollab(newFakeVars())
		quoted := QuoteAsWord(expectedResult)

		// ----------------------------------------------------------------
		// perform the change

		actualResult := mustExpand(t, str(quoted), collab, Options{})

		// ----------------------------------------------------------------
		// test the results

		assert.Equal(t, []string{expectedResult}, actualResult)
	}
}
