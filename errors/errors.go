// Copyright 2024 The Phie Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package errors defines the error taxonomy raised while resolving and
// dataizing a phie Universe.
//
// The pivotal type is the Error interface. Unlike a plain error, it carries
// a Kind from the fixed taxonomy and a Path: the sequence of (vertex,
// attribute) frames visited between the point where the error was detected
// and the top-level Dataize call, outermost first.
package errors

import (
	"fmt"
	"io"
	"strings"
)

// Kind classifies an Error. The set is closed: the core detects exactly
// these failure modes and no others.
type Kind uint8

const (
	// Other is used only for errors promoted from a plain error with no
	// more specific kind available.
	Other Kind = iota
	MissingVertex
	AttributeNotFound
	UnboundOuter
	DataNotObject
	AtomNotObject
	AtomTypeError
	AtomArity
	StepLimit
	DuplicateVertex
)

func (k Kind) String() string {
	switch k {
	case MissingVertex:
		return "MissingVertex"
	case AttributeNotFound:
		return "AttributeNotFound"
	case UnboundOuter:
		return "UnboundOuter"
	case DataNotObject:
		return "DataNotObject"
	case AtomNotObject:
		return "AtomNotObject"
	case AtomTypeError:
		return "AtomTypeError"
	case AtomArity:
		return "AtomArity"
	case StepLimit:
		return "StepLimit"
	case DuplicateVertex:
		return "DuplicateVertex"
	default:
		return "Other"
	}
}

// Error is the common error type returned by every package in the core.
type Error interface {
	error

	// Kind reports which member of the fixed taxonomy this error is.
	Kind() Kind

	// Path returns the context chain accumulated as the error unwound the
	// evaluation stack, top (outermost) frame first.
	Path() []string

	// Unwrap exposes the wrapped cause, if any, for use with errors.Is/As.
	Unwrap() error
}

type coreError struct {
	kind  Kind
	msg   string
	path  []string
	cause error
}

// Newf creates an Error of the given kind with no context chain yet; callers
// further up the stack call Wrapf as it unwinds to build the chain.
func Newf(kind Kind, format string, args ...any) Error {
	return &coreError{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Wrapf prepends frame to err's context chain, preserving its kind and
// message. An Error implemented outside this package keeps its kind and
// becomes the cause of the new Error; a plain error becomes the cause of a
// new Other error.
func Wrapf(err error, frame string) Error {
	ce, ok := err.(*coreError)
	if !ok {
		if e, ok := err.(Error); ok {
			return &coreError{kind: e.Kind(), msg: e.Error(), path: append([]string{frame}, e.Path()...), cause: err}
		}
		return &coreError{kind: Other, msg: err.Error(), path: []string{frame}, cause: err}
	}
	cp := *ce
	cp.path = append([]string{frame}, ce.path...)
	return &cp
}

func (e *coreError) Error() string {
	if len(e.path) == 0 {
		return e.msg
	}
	return fmt.Sprintf("%s: %s", strings.Join(e.path, " -> "), e.msg)
}

func (e *coreError) Kind() Kind        { return e.kind }
func (e *coreError) Path() []string    { return e.path }
func (e *coreError) Unwrap() error     { return e.cause }
func (e *coreError) Is(target error) bool {
	k, ok := target.(interface{ Kind() Kind })
	return ok && k.Kind() == e.kind
}

// List aggregates zero or more Errors collected during a non-fatal walk such
// as Validate. A List is itself an error when non-empty.
type List []Error

func (l List) Error() string {
	if len(l) == 0 {
		return "no errors"
	}
	parts := make([]string, len(l))
	for i, e := range l {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "\n")
}

// Add appends err to the list.
func (l *List) Add(err Error) {
	*l = append(*l, err)
}

// Err returns l as an error, or nil if l is empty.
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

// Print writes err, and its full context chain if any, to w.
func Print(w io.Writer, err error) {
	if list, ok := err.(List); ok {
		for _, e := range list {
			Print(w, e)
		}
		return
	}
	if e, ok := err.(Error); ok {
		fmt.Fprintf(w, "%s: %s\n", e.Kind(), e.Error())
		return
	}
	fmt.Fprintln(w, err.Error())
}
