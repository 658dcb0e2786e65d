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

// ValueKind tags the variant held by a Value.
type ValueKind int

const (
	// NotFound means the variable store has no entry for the name.
	NotFound ValueKind = iota
	// Scalar holds a single string.
	Scalar
	// Array holds an indexed list of strings, addressed element by
	// element ("$@" semantics when referenced unquoted or per-element).
	Array
	// ArrayConcat is the same shape as Array, but was looked up via "$*"
	// semantics: a concatenate-on-join flag travels with it through
	// index application.
	ArrayConcat
)

// Value is the tagged union returned by VariableStore.Lookup.
type Value struct {
	Kind ValueKind

	// Str is populated when Kind == Scalar.
	Str string

	// Elems is populated when Kind == Array or Kind == ArrayConcat.
	Elems []string
}

// IndexType classifies the textual form of a parameter expansion's Start
// index, per spec.md §4.3 step 1.
type IndexType int

const (
	// IndexNone is a plain numeric index (or absent, meaning the whole
	// value).
	IndexNone IndexType = iota
	// IndexAll is "@": expand to each element as its own word.
	IndexAll
	// IndexConcat is "*": expand to all elements joined into one word
	// when inside double quotes.
	IndexConcat
	// IndexNumber is "#": expand to the element/character count.
	IndexNumber
)
