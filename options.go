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

// TildeMode controls when expandTilde looks for a leading "~" inside a
// STRING word unit (spec.md Glossary).
type TildeMode int

const (
	// TildeNone disables tilde expansion entirely.
	TildeNone TildeMode = iota
	// TildeSingle expands only a "~" at the very start of the word.
	TildeSingle
	// TildeMulti additionally expands a "~" immediately following every
	// unquoted ":" in the word — used for assignment-value context
	// ("PATH=~bob:~alice/bin").
	TildeMulti
)

// Options is the subset of shell options the core reads, per spec.md §6.
// Callers embedding the core in a shell share one Options value across
// expansions; the zero value matches a fresh POSIX-ish shell except where
// noted.
type Options struct {
	// Glob disables filename generation entirely when false.
	Glob bool
	// Nullglob removes a non-matching glob pattern instead of keeping it
	// literal.
	Nullglob bool
	// CaseGlob makes glob matching case-sensitive when true (the POSIX
	// default); when false, matching is case-insensitive.
	CaseGlob bool
	// DotGlob allows "*" to match leading-dot filenames.
	DotGlob bool
	// MarkDirs appends "/" to glob matches that are directories.
	MarkDirs bool
	// ExtendedGlob enables "**" (recursive) patterns and extended
	// bracket forms.
	ExtendedGlob bool
	// BraceExpand enables stage 2 (brace expansion). When false, "{...}"
	// text passes through E4 untouched.
	BraceExpand bool
	// EmptyLastField preserves a trailing empty field produced by an
	// IFS non-whitespace delimiter (spec.md §4.5).
	EmptyLastField bool
	// PosixlyCorrect disables the non-POSIX tilde forms ("~+", "~-",
	// "~+N", "~-N") and enables the lenient multi-match behaviour of
	// ExpandSingleWithGlob (a pattern matching several files falls back
	// to its literal text instead of failing).
	PosixlyCorrect bool
	// UnsetOK suppresses the "parameter not set" error an unset
	// reference would otherwise raise (spec.md §4.3 step 6).
	UnsetOK bool

	// IFS is the field separator; an empty string here is treated as
	// "unset", which defaults to " \t\n" (spec.md Glossary). Pass a
	// literal empty-but-set IFS by using a pointer in a future version
	// if that distinction is ever needed by a caller; today's callers
	// that need "IFS set to empty" should pass EmptyIFSSet.
	IFS string
	// EmptyIFSSet distinguishes an explicitly empty IFS ("IFS=") from
	// an unset one, both of which would otherwise stringify to "".
	EmptyIFSSet bool

	// DirStackEnabled gates the "~+N"/"~-N" directory-stack tilde forms.
	DirStackEnabled bool
}

// DefaultIFS is used whenever IFS is unset.
const DefaultIFS = " \t\n"

// effectiveIFS returns the IFS value the field splitter should use.
func (o Options) effectiveIFS() string {
	if o.IFS == "" && !o.EmptyIFSSet {
		return DefaultIFS
	}
	return o.IFS
}

// MaxRecursionDepth bounds nested parameter expansion and brace expansion
// recursion (spec.md §9 Design Notes).
const MaxRecursionDepth = 128

// MaxBraceSequenceCount bounds the number of values a single numeric brace
// sequence "{n..m[..step]}" may enumerate (spec.md §9 Design Notes).
const MaxBraceSequenceCount = 4096
