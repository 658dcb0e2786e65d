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

// ExpandedWord is a code-point sequence carrying the parallel splittability
// mask described in spec.md §3. The two are owned together and must be
// kept the same length at every stage boundary — see appendRune.
type ExpandedWord struct {
	Value []rune
	Mask  []bool
}

// Len returns the shared length of Value and Mask.
func (w *ExpandedWord) Len() int {
	return len(w.Value)
}

// appendRune appends one code point and its splittability bit, keeping the
// invariant that len(Mask) == len(Value) after every append. This is the
// "invariant-restorer" the spec's E4 contract requires.
func (w *ExpandedWord) appendRune(r rune, splittable bool) {
	w.Value = append(w.Value, r)
	w.Mask = append(w.Mask, splittable)
}

// appendString appends every code point of s with the same splittability
// bit.
func (w *ExpandedWord) appendString(s string, splittable bool) {
	for _, r := range s {
		w.appendRune(r, splittable)
	}
}

// appendWord appends another ExpandedWord's contents verbatim, mask and
// all — used by brace expansion, which copies masks byte-for-byte rather
// than recomputing them.
func (w *ExpandedWord) appendWord(other ExpandedWord) {
	w.Value = append(w.Value, other.Value...)
	w.Mask = append(w.Mask, other.Mask...)
}

// String renders the expanded word back to a plain string, backslash
// escapes and quote marks included.
func (w ExpandedWord) String() string {
	return string(w.Value)
}

// slice returns the sub-word [start, end), sharing no backing array with
// the receiver.
func (w ExpandedWord) slice(start, end int) ExpandedWord {
	out := ExpandedWord{
		Value: make([]rune, end-start),
		Mask:  make([]bool, end-start),
	}
	copy(out.Value, w.Value[start:end])
	copy(out.Mask, w.Mask[start:end])
	return out
}

// expandState accumulates the output of the E4 stage (§4.1): valuebuf is
// the word currently being built and valuelist the completed words flushed
// so far; each ExpandedWord carries its own mask, so there are no separate
// mask buffers. zeroword records that an unquoted "$@"
// with zero positionals produced an empty quoted word, which empty-field
// removal (§4.5) must later drop.
type expandState struct {
	valuelist []ExpandedWord
	valuebuf  ExpandedWord
	zeroword  bool
}

// flush moves valuebuf onto valuelist and starts a fresh accumulator.
func (e *expandState) flush() {
	e.valuelist = append(e.valuelist, e.valuebuf)
	e.valuebuf = ExpandedWord{}
}

// pushWord appends a standalone completed word (one that did not pass
// through valuebuf), such as a middle element of a multi-element parameter
// expansion.
func (e *expandState) pushWord(w ExpandedWord) {
	e.valuelist = append(e.valuelist, w)
}
