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
	"testing"

	"github.com/stretchr/testify/assert"
)

func splittableWord(s string) ExpandedWord {
	w := ExpandedWord{}
	w.appendString(s, true)
	return w
}

func wordStrings(fields []ExpandedWord) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.String()
	}
	return out
}

func TestFieldSplitWhitespace(t *testing.T) {
	t.Parallel()

	// ----------------------------------------------------------------
	// setup your test

	expectedResult := []string{"a", "b", "c"}

	// ----------------------------------------------------------------
	// perform the change

	fields := fieldSplit(splittableWord("  a  b c  "), Options{})
	actualResult := wordStrings(fields)

	// ----------------------------------------------------------------
	// test the results

	assert.Equal(t, expectedResult, actualResult)
}

func TestFieldSplitNonWhitespaceDelimiterKeepsEmptyFields(t *testing.T) {
	t.Parallel()

	// ----------------------------------------------------------------
	// setup your test

	expectedResult := []string{"a", "", "b"}

	// ----------------------------------------------------------------
	// perform the change

	fields := fieldSplit(splittableWord("a::b"), Options{IFS: ":", EmptyIFSSet: true})
	actualResult := wordStrings(fields)

	// ----------------------------------------------------------------
	// test the results

	assert.Equal(t, expectedResult, actualResult)
}

func TestFieldSplitUnsplittableMaskPreventsSplit(t *testing.T) {
	t.Parallel()

	// ----------------------------------------------------------------
	// setup your test

	w := ExpandedWord{}
	w.appendString("a b", false)

	// ----------------------------------------------------------------
	// perform the change

	fields := fieldSplit(w, Options{})

	// ----------------------------------------------------------------
	// test the results

	assert.Len(t, fields, 1)
	assert.Equal(t, "a b", fields[0].String())
}

func TestFieldSplitNoIFSReturnsWordUnchanged(t *testing.T) {
	t.Parallel()

	// ----------------------------------------------------------------
	// perform the change

	fields := fieldSplit(splittableWord("a b"), Options{IFS: "", EmptyIFSSet: true})

	// ----------------------------------------------------------------
	// test the results

	assert.Len(t, fields, 1)
	assert.Equal(t, "a b", fields[0].String())
}
