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

// tildeResult is what expandTilde found at a '~' position.
type tildeResult struct {
	expanded bool
	replacement string
	// consumed is how many runes of the input (starting at the '~')
	// were consumed by the token; only meaningful when expanded is true.
	consumed int
}

// readTildeToken reads the user-name token starting at runes[0] == '~' up
// to the first '/', the first ':' when multi is true, or the end of the
// slice (spec.md §4.2 step 1). hasNextUnit tells it whether there is
// another word unit after this STRING unit in the chain.
func readTildeToken(runes []rune, multi bool, hasNextUnit bool) (token string, end int, ok bool) {
	i := 1
	for i < len(runes) {
		c := runes[i]
		if c == '/' {
			break
		}
		if multi && c == ':' {
			break
		}
		i++
	}

	if i == len(runes) && hasNextUnit {
		// the token would run to the end of this STRING unit, but
		// there is more word left in a later unit: refuse, per
		// spec.md §4.2 step 1.
		return "", 0, false
	}

	token = string(runes[1:i])
	for _, c := range token {
		if c == '"' || c == '\'' || c == '\\' {
			return "", 0, false
		}
	}
	return token, i, true
}

// expandTilde implements spec.md §4.2. runes[0] must be '~'. hasNextUnit
// indicates whether more word units follow the current STRING unit.
func expandTilde(runes []rune, mode TildeMode, hasNextUnit bool, vars VariableStore, homes HomeDirResolver, dirs DirStackResolver, posix bool) tildeResult {
	multi := mode == TildeMulti
	token, end, ok := readTildeToken(runes, multi, hasNextUnit)
	if !ok {
		return tildeResult{}
	}
	lookup := func(name string) Value {
		if vars == nil {
			return Value{Kind: NotFound}
		}
		return vars.Lookup(name)
	}

	switch {
	case token == "":
		v := lookup("HOME")
		if v.Kind != Scalar && v.Kind != ArrayConcat && v.Kind != Array {
			return tildeResult{}
		}
		return tildeResult{expanded: true, replacement: scalarOf(v), consumed: end}

	case !posix && token == "+":
		v := lookup("PWD")
		if v.Kind == NotFound {
			return tildeResult{}
		}
		return tildeResult{expanded: true, replacement: scalarOf(v), consumed: end}

	case !posix && token == "-":
		v := lookup("OLDPWD")
		if v.Kind == NotFound {
			return tildeResult{}
		}
		return tildeResult{expanded: true, replacement: scalarOf(v), consumed: end}

	case !posix && dirs != nil && isDirStackToken(token):
		path, ok := dirs.Entry(token)
		if !ok {
			return tildeResult{}
		}
		return tildeResult{expanded: true, replacement: path, consumed: end}

	default:
		if homes == nil {
			return tildeResult{}
		}
		path, ok := homes.Lookup(token)
		if !ok {
			return tildeResult{}
		}
		return tildeResult{expanded: true, replacement: path, consumed: end}
	}
}

// isDirStackToken recognises the "+N" / "-N" directory-stack forms.
func isDirStackToken(token string) bool {
	if len(token) < 2 {
		return false
	}
	if token[0] != '+' && token[0] != '-' {
		return false
	}
	for _, c := range token[1:] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func scalarOf(v Value) string {
	switch v.Kind {
	case Scalar:
		return v.Str
	case Array, ArrayConcat:
		if len(v.Elems) > 0 {
			return v.Elems[0]
		}
		return ""
	default:
		return ""
	}
}
