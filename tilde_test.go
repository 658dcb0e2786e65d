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

func TestExpandTildeHome(t *testing.T) {
	t.Parallel()

	// ----------------------------------------------------------------
	// setup your test

	vars := newFakeVars()
	vars.setScalar("HOME", "/home/alice")

	// ----------------------------------------------------------------
	// perform the change

	actualResult := expandTilde([]rune("~/docs"), TildeSingle, false, vars, nil, nil, false)

	// ----------------------------------------------------------------
	// test the results

	assert.True(t, actualResult.expanded)
	assert.Equal(t, "/home/alice", actualResult.replacement)
	assert.Equal(t, 1, actualResult.consumed)
}

func TestExpandTildeNoHomeIsLiteral(t *testing.T) {
	t.Parallel()

	// ----------------------------------------------------------------
	// setup your test

	vars := newFakeVars()

	// ----------------------------------------------------------------
	// perform the change

	actualResult := expandTilde([]rune("~/docs"), TildeSingle, false, vars, nil, nil, false)

	// ----------------------------------------------------------------
	// test the results

	assert.False(t, actualResult.expanded)
}

func TestReadTildeTokenStopsAtSlash(t *testing.T) {
	t.Parallel()

	// ----------------------------------------------------------------
	// perform the change

	token, end, ok := readTildeToken([]rune("~bob/bin"), false, false)

	// ----------------------------------------------------------------
	// test the results

	assert.True(t, ok)
	assert.Equal(t, "bob", token)
	assert.Equal(t, 4, end)
}

func TestReadTildeTokenRejectsSpanningUnits(t *testing.T) {
	t.Parallel()

	// ----------------------------------------------------------------
	// perform the change

	_, _, ok := readTildeToken([]rune("~bob"), false, true)

	// ----------------------------------------------------------------
	// test the results

	assert.False(t, ok, "expected refusal when the token would run into a later word unit")
}

type fakeHomes struct{ dirs map[string]string }

func (f fakeHomes) Lookup(user string) (string, bool) {
	d, ok := f.dirs[user]
	return d, ok
}

func TestExpandTildeUser(t *testing.T) {
	t.Parallel()

	// ----------------------------------------------------------------
	// setup your test

	vars := newFakeVars()
	homes := fakeHomes{dirs: map[string]string{"bob": "/home/bob"}}

	// ----------------------------------------------------------------
	// perform the change

	actualResult := expandTilde([]rune("~bob/bin"), TildeSingle, false, vars, homes, nil, false)

	// ----------------------------------------------------------------
	// test the results

	assert.True(t, actualResult.expanded)
	assert.Equal(t, "/home/bob", actualResult.replacement)
}
