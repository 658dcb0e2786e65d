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

// Package varstore is a minimal in-memory wordexpand.VariableStore: a
// scope stack of string/array variables, good enough to drive tests and
// small embedding shells that don't need persistence.
package varstore

import (
	"fmt"

	"github.com/ganbarodigital/go_wordexpand"
)

type entry struct {
	array bool
	str   string
	elems []string
}

// Store is a scope stack of variables; index 0 is the global scope.
type Store struct {
	scopes []map[string]entry
}

// New returns a Store with a single global scope.
func New() *Store {
	return &Store{scopes: []map[string]entry{{}}}
}

// PushScope opens a new local scope, shadowing the enclosing ones.
func (s *Store) PushScope() {
	s.scopes = append(s.scopes, map[string]entry{})
}

// PopScope discards the innermost scope. It is a no-op on the global
// scope.
func (s *Store) PopScope() {
	if len(s.scopes) > 1 {
		s.scopes = s.scopes[:len(s.scopes)-1]
	}
}

// SetArray installs name as an indexed array variable, replacing any
// existing scalar or array entry in the innermost scope.
func (s *Store) SetArray(name string, elems []string) {
	s.top()[name] = entry{array: true, elems: append([]string{}, elems...)}
}

func (s *Store) top() map[string]entry {
	return s.scopes[len(s.scopes)-1]
}

func (s *Store) find(name string) (entry, bool) {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if e, ok := s.scopes[i][name]; ok {
			return e, true
		}
	}
	return entry{}, false
}

// Lookup implements wordexpand.VariableStore.
func (s *Store) Lookup(name string) wordexpand.Value {
	e, ok := s.find(name)
	if !ok {
		return wordexpand.Value{Kind: wordexpand.NotFound}
	}
	if e.array {
		return wordexpand.Value{Kind: wordexpand.Array, Elems: e.elems}
	}
	return wordexpand.Value{Kind: wordexpand.Scalar, Str: e.str}
}

// Assign implements wordexpand.VariableStore. global writes into the
// outermost scope instead of the innermost.
func (s *Store) Assign(name, value string, global bool) error {
	scope := s.top()
	if global {
		scope = s.scopes[0]
	}
	scope[name] = entry{str: value}
	return nil
}

// AssignElement implements wordexpand.VariableStore, extending the array
// with empty strings when index is past its current length.
func (s *Store) AssignElement(name string, index int, value string) error {
	if index < 0 {
		return fmt.Errorf("varstore: negative array index %d for %q", index, name)
	}
	e, ok := s.find(name)
	if !ok {
		e = entry{array: true}
	}
	if !e.array {
		return fmt.Errorf("varstore: %q is not an array", name)
	}
	for len(e.elems) <= index {
		e.elems = append(e.elems, "")
	}
	e.elems[index] = value
	s.top()[name] = e
	return nil
}
