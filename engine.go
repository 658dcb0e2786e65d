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

// engine carries the state threaded through one full expansion call: the
// caller-supplied collaborators and options, the active context, and a
// recursion-depth counter for nested parameter expansion (spec.md §9
// Design Notes). Brace expansion tracks its own depth against the same
// MaxRecursionDepth.
type engine struct {
	ctx    context.Context
	collab *Collaborators
	opts   Options
	depth  int
}

func newEngine(ctx context.Context, collab *Collaborators, opts Options) *engine {
	if collab == nil {
		collab = &Collaborators{}
	}
	return &engine{ctx: ctx, collab: collab, opts: opts}
}

// deeper returns a copy of e with its recursion depth incremented, or an
// error once MaxRecursionDepth is exceeded.
func (e *engine) deeper() (*engine, error) {
	if e.depth+1 > MaxRecursionDepth {
		return nil, newError(KindSyntax, "expansion nested too deeply (limit %d)", MaxRecursionDepth)
	}
	child := *e
	child.depth++
	return &child, nil
}

func (e *engine) report(err error) error {
	return reportAndReturn(e.collab.Errors, err)
}
