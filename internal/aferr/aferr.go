// Copyright (c) 2023, The AFC Engine Authors.
// All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are met:
// 1. Redistributions of source code must retain the above copyright
//    notice, this list of conditions and the following disclaimer.
// 2. Redistributions in binary form must reproduce the above copyright
//    notice, this list of conditions and the following disclaimer in the
//    documentation and/or other materials provided with the distribution.
// 3. Neither the name of the copyright holder nor the
//    names of its contributors may be used to endorse or promote products
//    derived from this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
// AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
// IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
// ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
// LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
// CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
// SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
// INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
// CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
// ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
// POSSIBILITY OF SUCH DAMAGE.

// Package aferr defines the engine's error taxonomy (spec §7): callers
// branch on Kind() rather than matching error strings. Every constructor
// wraps the underlying cause with github.com/pkg/errors so a stack trace
// survives up to the top-level analysis logger.
package aferr

import "github.com/pkg/errors"

// Kind is one of the error categories the analysis pipeline distinguishes
// when deciding whether to abort a request or isolate a single record/
// triple and continue.
type Kind string

const (
	KindInvalidInput Kind = "InvalidInput"
	KindMissingData  Kind = "MissingData"
	KindIngest       Kind = "Ingest"
	KindModelMatch   Kind = "ModelMatch"
	KindCompute      Kind = "Compute"
	KindCancelled    Kind = "Cancelled"
	KindTimeout      Kind = "Timeout"
)

// AFCError is a Kind-tagged wrapped error.
type AFCError struct {
	kind  Kind
	cause error
}

func (e *AFCError) Error() string {
	return string(e.kind) + ": " + e.cause.Error()
}

func (e *AFCError) Unwrap() error { return e.cause }

// KindOf returns the error category, defaulting to KindCompute for any error
// not constructed through this package (so callers can always switch on it
// safely).
func KindOf(err error) Kind {
	var afcErr *AFCError
	if errors.As(err, &afcErr) {
		return afcErr.kind
	}
	return KindCompute
}

func newErr(kind Kind, format string, args ...interface{}) *AFCError {
	return &AFCError{kind: kind, cause: errors.Errorf(format, args...)}
}

func wrap(kind Kind, cause error, msg string) *AFCError {
	return &AFCError{kind: kind, cause: errors.Wrap(cause, msg)}
}

func InvalidInput(format string, args ...interface{}) error { return newErr(KindInvalidInput, format, args...) }
func MissingData(format string, args ...interface{}) error  { return newErr(KindMissingData, format, args...) }
func Ingest(format string, args ...interface{}) error       { return newErr(KindIngest, format, args...) }
func ModelMatch(format string, args ...interface{}) error   { return newErr(KindModelMatch, format, args...) }
func Compute(format string, args ...interface{}) error      { return newErr(KindCompute, format, args...) }
func Cancelled(format string, args ...interface{}) error    { return newErr(KindCancelled, format, args...) }
func Timeout(format string, args ...interface{}) error      { return newErr(KindTimeout, format, args...) }

func WrapInvalidInput(cause error, msg string) error { return wrap(KindInvalidInput, cause, msg) }
func WrapMissingData(cause error, msg string) error  { return wrap(KindMissingData, cause, msg) }
func WrapIngest(cause error, msg string) error       { return wrap(KindIngest, cause, msg) }
func WrapModelMatch(cause error, msg string) error   { return wrap(KindModelMatch, cause, msg) }
func WrapCompute(cause error, msg string) error      { return wrap(KindCompute, cause, msg) }

// IsAbortKind reports whether the request-path should abort on this error,
// per spec §7: InvalidInput, MissingData, Cancelled and Timeout abort;
// everything else is isolated at the record/triple level.
func IsAbortKind(k Kind) bool {
	return k == KindInvalidInput || k == KindMissingData || k == KindCancelled || k == KindTimeout
}
