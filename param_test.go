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

func TestParamLength(t *testing.T) {
	t.Parallel()

	// ----------------------------------------------------------------
	// setup your test

	vars := newFakeVars()
	vars.setScalar("X", "hello")
	collab := testCollab(vars)
	units := []WordUnit{{Kind: WordParam, Param: &ParamExp{Name: "X", Flags: FlagLength}}}
	expectedResult := []string{"5"}

	// ----------------------------------------------------------------
	// perform the change

	actualResult := mustExpand(t, units, collab, Options{})

	// ----------------------------------------------------------------
	// test the results

	assert.Equal(t, expectedResult, actualResult)
}

func TestParamArrayLength(t *testing.T) {
	t.Parallel()

	// ----------------------------------------------------------------
	// setup your test

	vars := newFakeVars()
	vars.setArray("A", []string{"a", "b", "c"}, false)
	collab := testCollab(vars)
	units := []WordUnit{{Kind: WordParam, Param: &ParamExp{Name: "A", Start: str("@"), Flags: FlagLength}}}
	// the length operator applies to each element; the "#" index form
	// is what yields the element count
	expectedResult := []string{"1", "1", "1"}

	// ----------------------------------------------------------------
	// perform the change

	actualResult := mustExpand(t, units, collab, Options{})

	// ----------------------------------------------------------------
	// test the results

	assert.Equal(t, expectedResult, actualResult)
}

func TestParamSliceByIndex(t *testing.T) {
	t.Parallel()

	// ----------------------------------------------------------------
	// setup your test

	vars := newFakeVars()
	vars.setScalar("X", "abcdef")
	collab := testCollab(vars)
	units := []WordUnit{{Kind: WordParam, Param: &ParamExp{Name: "X", Start: str("2"), End: str("4")}}}
	expectedResult := []string{"bc"}

	// ----------------------------------------------------------------
	// perform the change

	actualResult := mustExpand(t, units, collab, Options{})

	// ----------------------------------------------------------------
	// test the results

	assert.Equal(t, expectedResult, actualResult)
}

func TestParamMatchHeadShortest(t *testing.T) {
	t.Parallel()

	// ----------------------------------------------------------------
	// setup your test

	vars := newFakeVars()
	vars.setScalar("X", "axbxc")
	collab := testCollab(vars)
	units := []WordUnit{{Kind: WordParam, Param: &ParamExp{
		Name:  "X",
		Flags: FlagMatchHead,
		Match: str("a*x"),
	}}}
	expectedResult := []string{"bxc"}

	// ----------------------------------------------------------------
	// perform the change

	actualResult := mustExpand(t, units, collab, Options{})

	// ----------------------------------------------------------------
	// test the results

	assert.Equal(t, expectedResult, actualResult)
}

func TestParamMatchHeadLongest(t *testing.T) {
	t.Parallel()

	// ----------------------------------------------------------------
	// setup your test

	vars := newFakeVars()
	vars.setScalar("X", "axbxc")
	collab := testCollab(vars)
	units := []WordUnit{{Kind: WordParam, Param: &ParamExp{
		Name:  "X",
		Flags: FlagMatchHead | FlagMatchLongest,
		Match: str("a*x"),
	}}}
	expectedResult := []string{"c"}

	// ----------------------------------------------------------------
	// perform the change

	actualResult := mustExpand(t, units, collab, Options{})

	// ----------------------------------------------------------------
	// test the results

	assert.Equal(t, expectedResult, actualResult)
}

func TestParamSubstituteFirst(t *testing.T) {
	t.Parallel()

	// ----------------------------------------------------------------
	// setup your test

	vars := newFakeVars()
	vars.setScalar("X", "foo bar foo")
	collab := testCollab(vars)
	units := []WordUnit{{Kind: WordParam, Param: &ParamExp{
		Name:  "X",
		Flags: FlagSubst,
		Match: str("foo"),
		Subst: str("baz"),
	}}}
	expectedResult := []string{"baz bar foo"}

	// ----------------------------------------------------------------
	// perform the change

	actualResult := mustExpand(t, units, collab, Options{})

	// ----------------------------------------------------------------
	// test the results

	assert.Equal(t, expectedResult, actualResult)
}

func TestParamAssignDefault(t *testing.T) {
	t.Parallel()

	// ----------------------------------------------------------------
	// setup your test

	vars := newFakeVars()
	collab := testCollab(vars)
	units := []WordUnit{{Kind: WordParam, Param: &ParamExp{
		Name:  "X",
		Flags: FlagAssign | FlagColon,
		Subst: str("assigned"),
	}}}
	expectedResult := []string{"assigned"}

	// ----------------------------------------------------------------
	// perform the change

	actualResult := mustExpand(t, units, collab, Options{})

	// ----------------------------------------------------------------
	// test the results

	assert.Equal(t, expectedResult, actualResult)
	assert.Equal(t, "assigned", vars.Lookup("X").Str)
}

func TestParamErrorMessage(t *testing.T) {
	t.Parallel()

	// ----------------------------------------------------------------
	// setup your test

	collab := testCollab(newFakeVars())
	units := []WordUnit{{Kind: WordParam, Param: &ParamExp{
		Name:  "X",
		Flags: FlagError | FlagColon,
		Subst: str("X must be set"),
	}}}

	// ----------------------------------------------------------------
	// perform the change

	_, err := ExpandMultiple(context.Background(), units, collab, Options{})

	// ----------------------------------------------------------------
	// test the results

	assert.Error(t, err)
	werr, ok := err.(*Error)
	assert.True(t, ok)
	assert.Equal(t, KindSyntax, werr.Kind)
}

func TestParamPlusUsesAlternateOnlyWhenSet(t *testing.T) {
	t.Parallel()

	// ----------------------------------------------------------------
	// setup your test

	vars := newFakeVars()
	vars.setScalar("X", "anything")
	collab := testCollab(vars)
	units := []WordUnit{{Kind: WordParam, Param: &ParamExp{
		Name:  "X",
		Flags: FlagPlus,
		Subst: str("alt"),
	}}}

	// ----------------------------------------------------------------
	// perform the change

	setResult := mustExpand(t, units, collab, Options{})
	units[0].Param.Name = "Y"
	unsetResult := mustExpand(t, units, collab, Options{})

	// ----------------------------------------------------------------
	// test the results

	assert.Equal(t, []string{"alt"}, setResult)
	assert.Empty(t, unsetResult)
}
