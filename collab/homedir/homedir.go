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

// Package homedir implements wordexpand.HomeDirResolver against os/user,
// and a small in-memory wordexpand.DirStackResolver for the "~+N"/"~-N"
// directory-stack tilde forms.
package homedir

import (
	"fmt"
	"os/user"
)

// OS resolves "~user" via the operating system's user database.
type OS struct{}

// Lookup implements wordexpand.HomeDirResolver.
func (OS) Lookup(name string) (string, bool) {
	u, err := user.Lookup(name)
	if err != nil {
		return "", false
	}
	return u.HomeDir, true
}

// Stack is an ordered directory stack for "~+N" (counting from the top,
// N==0 is the current directory) and "~-N" (counting from the bottom).
type Stack struct {
	dirs []string
}

// NewStack returns a Stack seeded with dirs, top of stack first.
func NewStack(dirs []string) *Stack {
	return &Stack{dirs: append([]string{}, dirs...)}
}

// Push adds dir to the top of the stack.
func (s *Stack) Push(dir string) {
	s.dirs = append([]string{dir}, s.dirs...)
}

// Entry implements wordexpand.DirStackResolver.
func (s *Stack) Entry(token string) (string, bool) {
	if len(token) < 2 {
		return "", false
	}
	var n int
	if _, err := fmt.Sscanf(token[1:], "%d", &n); err != nil {
		return "", false
	}
	if token[0] == '-' {
		n = len(s.dirs) - 1 - n
	}
	if n < 0 || n >= len(s.dirs) {
		return "", false
	}
	return s.dirs[n], true
}
