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

// Package atom implements the fixed, closed registry of built-in
// operations: integer arithmetic, comparison, the lazy conditional, and
// the write side effect.
package atom

import (
	"fmt"
	"io"

	"github.com/objectionary/phie/errors"
	"github.com/objectionary/phie/internal/core/phi"
	"github.com/objectionary/phie/internal/core/resolve"
)

// Eval dataizes body fully, in frame fr, to a primitive word. It is
// supplied by the dataizer (internal/core/eval) so that atoms never need to
// know how the evaluation stack or step counter work; it is what lets a
// strict atom force its operands and a lazy one avoid forcing them.
type Eval func(fr resolve.Frame, body phi.Body) (uint64, errors.Error)

// Context is everything an atom needs to resolve and force its own
// positional arguments and, for write, to reach the output sink.
type Context struct {
	Universe *phi.Universe
	Frame    resolve.Frame
	Receiver phi.ID
	Sink     io.Writer
	Eval     Eval
}

// Arg resolves and forces the receiver's i'th positional argument to a
// word. A missing a_i becomes AtomArity; an a_i that resolves to an object
// with no usable value (no phi, no delta, no lambda) becomes AtomTypeError,
// since the attribute lookup itself succeeded.
func (c Context) Arg(i uint32) (uint64, errors.Error) {
	v, err := c.Universe.Get(c.Receiver)
	if err != nil {
		return 0, err
	}
	body, ok := v.Lookup(phi.Positional(i))
	if !ok {
		return 0, errors.Newf(errors.AtomArity, "missing positional attribute a%d on ν%d", i, c.Receiver)
	}
	word, everr := c.Eval(c.Frame, body)
	if everr != nil {
		if everr.Kind() == errors.AttributeNotFound {
			return 0, errors.Newf(errors.AtomTypeError,
				"a%d of ν%d did not resolve to a value", i, c.Receiver)
		}
		return 0, everr
	}
	return word, nil
}

// ArgOutcome resolves (but does not force) the receiver's i'th positional
// argument, for atoms such as if that must not dataize an argument they do
// not select.
func (c Context) ArgOutcome(i uint32) (resolve.Outcome, errors.Error) {
	v, err := c.Universe.Get(c.Receiver)
	if err != nil {
		return resolve.Outcome{}, err
	}
	body, ok := v.Lookup(phi.Positional(i))
	if !ok {
		return resolve.Outcome{}, errors.Newf(errors.AtomArity, "missing positional attribute a%d on ν%d", i, c.Receiver)
	}
	return resolve.Resolve(c.Universe, c.Frame, body)
}

// Result is what an atom hands back to the dataizer: either a concrete
// word, or an outcome (a vertex or a further atom call) that the dataizer
// must continue evaluating. Atoms never return a raw locator: ArgOutcome
// already resolves one into an Outcome before an atom ever sees it.
type Result struct {
	Datum   bool
	Word    uint64
	Outcome resolve.Outcome
}

func wordResult(w uint64) Result              { return Result{Datum: true, Word: w} }
func outcomeResult(o resolve.Outcome) Result  { return fromOutcome(o) }

func fromOutcome(o resolve.Outcome) Result {
	if o.Kind == resolve.KindDatum {
		return Result{Datum: true, Word: o.Word}
	}
	return Result{Outcome: o}
}

// Func is the signature every registry entry implements.
type Func func(c Context) (Result, errors.Error)

// Builtins returns the fixed required set plus the module's supplemented
// int-mul and int-div, keyed by the atom name used in a lambda attribute.
func Builtins() map[string]Func {
	return map[string]Func{
		"int-add":  intAdd,
		"int-sub":  intSub,
		"int-mul":  intMul,
		"int-div":  intDiv,
		"int-less": intLess,
		"int-eq":   intEq,
		"if":       ifAtom,
		"write":    write,
	}
}

func asInt64(w uint64) int64 { return int64(w) }
func asWord(i int64) uint64  { return uint64(i) }

func intAdd(c Context) (Result, errors.Error) {
	a, err := c.Arg(0)
	if err != nil {
		return Result{}, err
	}
	b, err := c.Arg(1)
	if err != nil {
		return Result{}, err
	}
	return wordResult(asWord(asInt64(a) + asInt64(b))), nil
}

func intSub(c Context) (Result, errors.Error) {
	a, err := c.Arg(0)
	if err != nil {
		return Result{}, err
	}
	b, err := c.Arg(1)
	if err != nil {
		return Result{}, err
	}
	return wordResult(asWord(asInt64(a) - asInt64(b))), nil
}

func intMul(c Context) (Result, errors.Error) {
	a, err := c.Arg(0)
	if err != nil {
		return Result{}, err
	}
	b, err := c.Arg(1)
	if err != nil {
		return Result{}, err
	}
	return wordResult(asWord(asInt64(a) * asInt64(b))), nil
}

func intDiv(c Context) (Result, errors.Error) {
	a, err := c.Arg(0)
	if err != nil {
		return Result{}, err
	}
	b, err := c.Arg(1)
	if err != nil {
		return Result{}, err
	}
	if asInt64(b) == 0 {
		return Result{}, errors.Newf(errors.AtomTypeError, "int-div by zero on ν%d", c.Receiver)
	}
	return wordResult(asWord(asInt64(a) / asInt64(b))), nil
}

func intLess(c Context) (Result, errors.Error) {
	a, err := c.Arg(0)
	if err != nil {
		return Result{}, err
	}
	b, err := c.Arg(1)
	if err != nil {
		return Result{}, err
	}
	if asInt64(a) < asInt64(b) {
		return wordResult(1), nil
	}
	return wordResult(0), nil
}

func intEq(c Context) (Result, errors.Error) {
	a, err := c.Arg(0)
	if err != nil {
		return Result{}, err
	}
	b, err := c.Arg(1)
	if err != nil {
		return Result{}, err
	}
	if a == b {
		return wordResult(1), nil
	}
	return wordResult(0), nil
}

// ifAtom is strict in its selector (a0) and lazy in both branches: only the
// selected branch (a1 or a2) is ever resolved, and resolution does not
// force it to a word — the dataizer continues evaluating whichever
// Outcome comes back.
func ifAtom(c Context) (Result, errors.Error) {
	sel, err := c.Arg(0)
	if err != nil {
		return Result{}, err
	}
	branch := uint32(1)
	if sel == 0 {
		branch = 2
	}
	o, err := c.ArgOutcome(branch)
	if err != nil {
		return Result{}, err
	}
	return outcomeResult(o), nil
}

func write(c Context) (Result, errors.Error) {
	w, err := c.Arg(0)
	if err != nil {
		return Result{}, err
	}
	if c.Sink != nil {
		fmt.Fprintf(c.Sink, "%d\n", asInt64(w))
	}
	return wordResult(w), nil
}
