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

// Package demo builds small Universes by hand, standing in for the (out of
// scope) surface-syntax parser: a black-box collaborator that hands the
// core a populated object graph. These are the three worked scenarios used
// by the CLI's demo subcommands and by the eval package's end-to-end tests.
package demo

import "github.com/objectionary/phie/internal/core/phi"

// Constant builds ν0.phi = ν1; ν1.delta = 42.
func Constant() *phi.Universe {
	u := phi.NewUniverse()
	in := u.Interner()

	root := phi.NewBuilder(in).
		Phi(phi.Loc(phi.At(1))).
		Build()
	_ = u.Put(phi.RootID, root)

	forty2 := phi.NewBuilder(in).Delta(42).Build()
	_ = u.Put(1, forty2)

	return u
}

// SelfAdd builds ν0.phi = ν3; ν1.delta = 42; ν2 is int-add reading its
// operands from its outer's a0/a1; ν3.phi = ν2(this), a0 = ν1, a1 = ν1.
// Dataizing ν0 yields 84.
func SelfAdd() *phi.Universe {
	u := phi.NewUniverse()
	in := u.Interner()

	root := phi.NewBuilder(in).
		Phi(phi.Loc(phi.At(3))).
		Build()
	_ = u.Put(phi.RootID, root)

	forty2 := phi.NewBuilder(in).Delta(42).Build()
	_ = u.Put(1, forty2)

	adder := phi.NewBuilder(in).
		Lambda("int-add").
		Arg(0, phi.Loc(phi.AnchorOuter, phi.Attr(phi.Positional(0)))).
		Arg(1, phi.Loc(phi.AnchorOuter, phi.Attr(phi.Positional(1)))).
		Build()
	_ = u.Put(2, adder)

	caller := phi.NewBuilder(in).
		Phi(phi.Copy{Target: 2, Bind: phi.AnchorThis}).
		Arg(0, phi.Loc(phi.At(1))).
		Arg(1, phi.Loc(phi.At(1))).
		Build()
	_ = u.Put(3, caller)

	return u
}

// Fibonacci builds a Universe computing the n'th Fibonacci number
// recursively, using if, int-less, int-sub and int-add. Dataizing ν0 yields
// fib(n).
//
// The recursive function lives at ν2: it reads its argument n as
// outer.a0, then dispatches through an if node (ν3) to either n itself (the
// base case) or the sum (ν4) of two recursive calls (ν5, ν7). Each call
// site re-enters ν2 with outer bound to itself, and its own a0 is the
// decremented argument computed by ν6 or ν8.
//
// Every copy in this graph is either Bind:This, which introduces a new
// stack level (the vertex being copied becomes directly visible as the
// target's outer), or Bind:Outer, which threads the current level straight
// through to an intermediate vertex, so that its outer.a0 still reads the
// current call's n.
// That is the only mechanism this graph uses to keep n reachable at every
// depth of the recursion despite the Universe itself being finite and
// static.
func Fibonacci(n uint64) *phi.Universe {
	u := phi.NewUniverse()
	in := u.Interner()

	root := phi.NewBuilder(in).
		Phi(phi.Copy{Target: 2, Bind: phi.AnchorThis}).
		Arg(0, phi.Data{Word: n}).
		Build()
	_ = u.Put(phi.RootID, root)

	fib := phi.NewBuilder(in).
		Phi(phi.Copy{Target: 3, Bind: phi.AnchorThis}).
		Arg(0, phi.Loc(phi.AnchorOuter, phi.Attr(phi.Positional(0)))).
		Build()
	_ = u.Put(2, fib)

	ifNode := phi.NewBuilder(in).
		Lambda("if").
		Arg(0, phi.Copy{Target: 1, Bind: phi.AnchorOuter}).
		Arg(1, phi.Loc(phi.AnchorOuter, phi.Attr(phi.Positional(0)))).
		Arg(2, phi.Copy{Target: 4, Bind: phi.AnchorOuter}).
		Build()
	_ = u.Put(3, ifNode)

	less2 := phi.NewBuilder(in).
		Lambda("int-less").
		Arg(0, phi.Loc(phi.AnchorOuter, phi.Attr(phi.Positional(0)))).
		Arg(1, phi.Data{Word: 2}).
		Build()
	_ = u.Put(1, less2)

	sum := phi.NewBuilder(in).
		Lambda("int-add").
		Arg(0, phi.Copy{Target: 5, Bind: phi.AnchorOuter}).
		Arg(1, phi.Copy{Target: 7, Bind: phi.AnchorOuter}).
		Build()
	_ = u.Put(4, sum)

	callMinus1 := phi.NewBuilder(in).
		Phi(phi.Copy{Target: 2, Bind: phi.AnchorThis}).
		Arg(0, phi.Copy{Target: 6, Bind: phi.AnchorOuter}).
		Build()
	_ = u.Put(5, callMinus1)

	decBy1 := phi.NewBuilder(in).
		Lambda("int-sub").
		Arg(0, phi.Loc(phi.AnchorOuter, phi.Attr(phi.Positional(0)))).
		Arg(1, phi.Data{Word: 1}).
		Build()
	_ = u.Put(6, decBy1)

	callMinus2 := phi.NewBuilder(in).
		Phi(phi.Copy{Target: 2, Bind: phi.AnchorThis}).
		Arg(0, phi.Copy{Target: 8, Bind: phi.AnchorOuter}).
		Build()
	_ = u.Put(7, callMinus2)

	decBy2 := phi.NewBuilder(in).
		Lambda("int-sub").
		Arg(0, phi.Loc(phi.AnchorOuter, phi.Attr(phi.Positional(0)))).
		Arg(1, phi.Data{Word: 2}).
		Build()
	_ = u.Put(8, decBy2)

	return u
}
