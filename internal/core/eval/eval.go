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

// Package eval implements the dataizer: it drives
// resolution from a Universe's root down to a primitive datum, invoking
// atoms as it encounters them, and counts the steps it takes.
package eval

import (
	"fmt"

	"github.com/objectionary/phie/errors"
	"github.com/objectionary/phie/internal/core/atom"
	"github.com/objectionary/phie/internal/core/phi"
	"github.com/objectionary/phie/internal/core/resolve"
	"github.com/objectionary/phie/internal/core/runtime"
)

// dataizer holds the per-call state: the Universe being evaluated, the
// Runtime supplying atoms/sink/trace/step cap, and the running step count.
type dataizer struct {
	rt     *runtime.Runtime
	u      *phi.Universe
	cycles int
}

// Dataize drives dataization of u's root phi attribute to a primitive word.
// It returns the word and the number of resolver/dataizer steps taken, or
// the first error encountered while unwinding the evaluation stack.
func Dataize(rt *runtime.Runtime, u *phi.Universe) (uint64, int, errors.Error) {
	d := &dataizer{rt: rt, u: u}
	root := u.Root()
	fr := resolve.Initial(root)
	word, err := d.dataizeVertex(root, fr)
	return word, d.cycles, err
}

func (d *dataizer) step(label string) errors.Error {
	d.cycles++
	if d.rt.Trace != nil {
		fmt.Fprintf(d.rt.Trace, "[%d] %s\n", d.cycles, label)
	}
	if d.rt.StepLimit > 0 && d.cycles > d.rt.StepLimit {
		return errors.Newf(errors.StepLimit, "exceeded step limit %d", d.rt.StepLimit)
	}
	return nil
}

// dataizeVertex implements the Dataizing state: fetch id's phi attribute
// (or, if id is already a leaf, its delta/lambda directly — the
// phi-decoration tie-break applied at the source) and feed
// it to Resolving.
func (d *dataizer) dataizeVertex(id phi.ID, fr resolve.Frame) (uint64, errors.Error) {
	frame := fmt.Sprintf("ν%d", id)
	if err := d.step("dataize " + frame); err != nil {
		return 0, err
	}
	v, err := d.u.Get(id)
	if err != nil {
		return 0, errors.Wrapf(err, frame)
	}
	if w, ok := v.Delta(); ok {
		return w, nil
	}
	if name, ok := v.Lambda(); ok {
		return d.invoke(name, id, fr)
	}
	phiBody, ok := v.Lookup(phi.PhiName)
	if !ok {
		return 0, errors.Wrapf(errors.Newf(errors.AttributeNotFound, "ν%d has no phi", id), frame)
	}
	outcome, rerr := resolve.Resolve(d.u, fr, phiBody)
	if rerr != nil {
		return 0, errors.Wrapf(rerr, frame+".phi")
	}
	return d.continueOutcome(outcome)
}

// continueOutcome implements the remaining arcs of the state machine:
// Resolving lands on a Datum (Done), a Vertex (back to Dataizing), or an
// AtomCall (Invoking).
func (d *dataizer) continueOutcome(o resolve.Outcome) (uint64, errors.Error) {
	switch o.Kind {
	case resolve.KindDatum:
		return o.Word, nil
	case resolve.KindVertex:
		return d.dataizeVertex(o.Vertex, o.Frame)
	case resolve.KindAtomCall:
		return d.invoke(o.Atom, o.Vertex, o.Frame)
	default:
		return 0, errors.Newf(errors.Other, "unreachable outcome kind %v", o.Kind)
	}
}

// invoke implements the Invoking state: run the named atom, then follow
// its result back into Resolving/Dataizing or stop at Done.
func (d *dataizer) invoke(name string, recv phi.ID, fr resolve.Frame) (uint64, errors.Error) {
	if err := d.step(fmt.Sprintf("invoke %s on ν%d", name, recv)); err != nil {
		return 0, err
	}
	fn, ok := d.rt.Atom(name)
	if !ok {
		return 0, errors.Newf(errors.AtomTypeError, "unknown atom %q", name)
	}
	ctx := atom.Context{
		Universe: d.u,
		Frame:    fr,
		Receiver: recv,
		Sink:     d.rt.Sink,
		Eval:     d.evalBody,
	}
	res, aerr := fn(ctx)
	if aerr != nil {
		return 0, errors.Wrapf(aerr, fmt.Sprintf("ν%d.lambda(%s)", recv, name))
	}
	if res.Datum {
		return res.Word, nil
	}
	return d.continueOutcome(res.Outcome)
}

// evalBody is the callback atoms use (via atom.Context.Eval) to force one
// of their own positional arguments to a word.
func (d *dataizer) evalBody(fr resolve.Frame, body phi.Body) (uint64, errors.Error) {
	if err := d.step("force argument"); err != nil {
		return 0, err
	}
	outcome, err := resolve.Resolve(d.u, fr, body)
	if err != nil {
		return 0, err
	}
	return d.continueOutcome(outcome)
}
