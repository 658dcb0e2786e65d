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

// WordKind identifies which variant of WordUnit is populated.
type WordKind int

const (
	// WordString is a literal fragment, possibly containing quotes,
	// backslashes, a leading tilde, or ordinary text.
	WordString WordKind = iota
	// WordParam is a parameter expansion ("$x", "${x:-y}", ...).
	WordParam
	// WordCmdSub is a command substitution ("$(...)"  or  "`...`").
	WordCmdSub
	// WordArith is an arithmetic expansion ("$((...))").
	WordArith
)

// WordUnit is one link in the read-only chain the parser hands to the
// expander. The chain is represented as a plain slice: the parser never
// hands back a unit for mutation, and a slice is the idiomatic Go
// equivalent of the "ordered sequence with a next link" the spec
// describes.
type WordUnit struct {
	Kind WordKind

	// String holds the literal text when Kind == WordString.
	String string

	// Param holds the parameter-expansion descriptor when Kind == WordParam.
	Param *ParamExp

	// CmdSub is an opaque token describing the substitution to run;
	// it is handed verbatim to CommandSubstituter.
	CmdSub CmdSubUnit

	// Arith is the arithmetic expression's own word-unit chain: it is
	// itself expanded (stage 1 only) before being handed to the
	// arithmetic evaluator.
	Arith []WordUnit
}

// CmdSubUnit is the opaque command-substitution descriptor produced by the
// parser. The core never inspects it; it is passed straight through to
// CommandSubstituter.Substitute.
type CmdSubUnit struct {
	// Source is the substitution's original source text, kept only for
	// error messages; the executor is free to ignore it.
	Source string
}

// ParamFlag is a bit in a ParamExp's Flags set.
type ParamFlag uint32

const (
	// FlagColon treats an empty value the same as "unset" (the ":-",
	// ":=", ":?", ":+" family vs. their colon-less counterparts).
	FlagColon ParamFlag = 1 << iota
	// FlagPlus selects the "use alternate value if set" operator.
	FlagPlus
	// FlagMinus selects the "use default value if unset" operator.
	FlagMinus
	// FlagAssign selects the "assign default value if unset" operator.
	FlagAssign
	// FlagError selects the "error if unset" operator.
	FlagError
	// FlagMatchHead anchors a pattern-removal operator to the start of
	// the value ("#", "##").
	FlagMatchHead
	// FlagMatchTail anchors a pattern-removal operator to the end of
	// the value ("%", "%%").
	FlagMatchTail
	// FlagMatchLongest selects greedy ("##", "%%") over minimal ("#", "%")
	// matching.
	FlagMatchLongest
	// FlagSubst selects the "/pattern/replacement" substitution operator.
	FlagSubst
	// FlagSubstAll replaces every match instead of only the first.
	FlagSubstAll
	// FlagLength selects the "${#var}" length operator.
	FlagLength
	// FlagNested marks a descriptor whose Nested chain replaces Name.
	FlagNested
)

// Has reports whether every bit in want is set in f.
func (f ParamFlag) Has(want ParamFlag) bool {
	return f&want == want
}

// ParamExp describes one "${...}" or "$x" parameter expansion.
type ParamExp struct {
	// Name is the parameter being expanded. Empty when Nested is set.
	Name string

	// Nested, when non-nil, replaces Name for recursive "${${x}}"-style
	// expansions: it is itself expanded first, and the result used as
	// the parameter name.
	Nested []WordUnit

	// Start and End are word-unit chains evaluated to numeric indices
	// for slicing ("${x:1:2}"). Either may be nil.
	Start []WordUnit
	End   []WordUnit

	// Subst supplies the operator's right-hand side: default value,
	// assignment value, error message, or substitution replacement.
	Subst []WordUnit

	// Match supplies the pattern for trim ("#", "##", "%", "%%") and
	// substitution ("/", "//", "/#", "/%") operators.
	Match []WordUnit

	Flags ParamFlag
}
