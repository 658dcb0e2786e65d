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

// VariableStore is the small lookup/assign interface the core uses in
// place of owning variable storage itself (spec.md §6).
type VariableStore interface {
	// Lookup returns the current value of name, or a NotFound Value if
	// it has no entry.
	Lookup(name string) Value
	// Assign sets a scalar variable. global selects global vs. local
	// scope for shells that have one; a flat store may ignore it.
	Assign(name, value string, global bool) error
	// AssignElement sets one element of an indexed array variable,
	// extending the array if needed.
	AssignElement(name string, index int, value string) error
}

// CommandSubstituter runs "$(...)" / "`...`" and returns its captured
// output.
type CommandSubstituter interface {
	Substitute(ctx context.Context, unit CmdSubUnit) (string, error)
}

// ArithmeticEvaluator evaluates an already-expanded arithmetic expression
// and returns its decimal result.
type ArithmeticEvaluator interface {
	Evaluate(ctx context.Context, expr string) (string, error)
}

// IndexEvaluator evaluates an already-expanded expression to a signed
// integer, used for the start/end indices of a parameter slice.
type IndexEvaluator interface {
	EvaluateIndex(ctx context.Context, expr string) (int, error)
}

// PatternAnchor pins a compiled pattern to the start or end of the
// candidate string, or leaves it free to match anywhere (spec.md §4.3
// step 7's head/tail trim operators need the first two; step 7's "/"
// substitute operator uses AnchorNone unless the pattern came from "/#"
// or "/%").
type PatternAnchor int

const (
	AnchorNone PatternAnchor = iota
	AnchorStart
	AnchorEnd
)

// PatternFlags selects matching behaviour for PatternMatcher.Compile.
type PatternFlags struct {
	CaseFold bool
	Anchor   PatternAnchor
	// Greedy selects longest-match ("##", "%%") over shortest-match
	// ("#", "%") semantics for ambiguous patterns.
	Greedy bool
}

// CompiledPattern is a pattern compiled by PatternMatcher, ready to match
// against candidate strings.
type CompiledPattern interface {
	// Find returns the span of the first (for MATCH_HEAD/MATCH_TAIL,
	// the anchored) match in s, or ok=false on no match.
	Find(s string) (start, end int, ok bool)
	// Substitute replaces the first match, or every match when all is
	// true, with replacement.
	Substitute(s, replacement string, all bool) string
}

// PatternMatcher compiles shell glob patterns for the pattern-removal and
// substitution operators (spec.md §4.3 step 7). The literal-vs-glob check
// of glob dispatch does not use it.
type PatternMatcher interface {
	Compile(pattern string, flags PatternFlags) (CompiledPattern, error)
}

// GlobFlags mirrors the shell options relevant to filename generation,
// already resolved to booleans the Globber can act on directly.
type GlobFlags struct {
	CaseFold     bool
	IncludeDot   bool
	MarkDirs     bool
	ExtendedGlob bool
}

// Globber performs filesystem-backed filename generation.
type Globber interface {
	Glob(ctx context.Context, pattern string, flags GlobFlags) ([]string, error)
}

// HomeDirResolver looks up a named user's home directory for "~user"
// tilde expansion.
type HomeDirResolver interface {
	Lookup(user string) (string, bool)
}

// DirStackResolver resolves the non-POSIX "~+N"/"~-N" directory-stack
// tilde forms.
type DirStackResolver interface {
	Entry(token string) (string, bool)
}

// ErrorReporter is the shell's error-reporting channel (spec.md §6's
// xerror). The core calls Report and then returns false/nil/error to its
// own caller; it never calls os.Exit or otherwise implements the
// interactive/non-interactive exit policy itself.
type ErrorReporter interface {
	Report(err error)
}

// Collaborators bundles every external dependency ExpandLine and friends
// need. A zero-value field that the expansion actually needs to use
// produces a KindDelegate Error rather than a panic, except that a nil
// Vars makes every parameter read as unset and leaves "~" unexpanded.
type Collaborators struct {
	Vars       VariableStore
	CmdSub     CommandSubstituter
	Arith      ArithmeticEvaluator
	Index      IndexEvaluator
	Patterns   PatternMatcher
	Glob       Globber
	HomeDirs   HomeDirResolver
	DirStack   DirStackResolver
	Errors     ErrorReporter
	Interrupt  <-chan struct{} // closed/sent-to in order to cancel an in-flight glob
}
