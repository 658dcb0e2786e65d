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
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies a failure per the taxonomy in spec.md §7.
type ErrorKind int

const (
	// KindSyntax covers invalid parameter indices, assignment to a
	// non-identifier, assignment via an unsupported index, and
	// "${var:?msg}".
	KindSyntax ErrorKind = iota
	// KindUnset is a parameter reference with no value and the unset
	// option off.
	KindUnset
	// KindDelegate wraps a failure returned by a collaborator (command
	// substitution, arithmetic, pattern compile, glob — including
	// cancellation).
	KindDelegate
	// KindEncoding is a lossy conversion from code points to the
	// system's byte encoding.
	KindEncoding
	// KindAmbiguity is a single-target glob that matched more than one
	// file with POSIX leniency off.
	KindAmbiguity
)

func (k ErrorKind) String() string {
	switch k {
	case KindSyntax:
		return "syntax"
	case KindUnset:
		return "unset"
	case KindDelegate:
		return "delegate"
	case KindEncoding:
		return "encoding"
	case KindAmbiguity:
		return "ambiguity"
	default:
		return "unknown"
	}
}

// Error is the error type every core operation returns on failure. The
// underlying cause (if any) is preserved via github.com/pkg/errors so
// callers that want the original collaborator error can still get at it
// with errors.Unwrap / errors.Is / errors.As (Error has no Cause method,
// so errors.Cause stops at the Error itself).
type Error struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the wrapped cause to errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.cause
}

func newError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func wrapError(kind ErrorKind, cause error, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		cause:   errors.WithStack(cause),
	}
}

func reportAndReturn(rep ErrorReporter, err error) error {
	if rep != nil {
		rep.Report(err)
	}
	return err
}
