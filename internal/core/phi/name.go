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

// Package phi holds the data model of the dataization core: vertices,
// attribute bodies, and the Universe that indexes them.
package phi

import (
	"fmt"
	"strconv"
)

// NameKind discriminates the three disjoint attribute-name categories of
// the object calculus.
type NameKind uint8

const (
	KindSpecial NameKind = iota
	KindPositional
	KindLabelled
)

// Special enumerates the fixed special attribute names.
type Special uint8

const (
	Phi Special = iota
	Delta
	Lambda
	Rho
	Sigma
)

func (s Special) String() string {
	switch s {
	case Phi:
		return "phi"
	case Delta:
		return "delta"
	case Lambda:
		return "lambda"
	case Rho:
		return "rho"
	case Sigma:
		return "sigma"
	default:
		return "?"
	}
}

// Name is a compact, comparable encoding of an attribute name: a category
// tag plus a small integer index (a Special value, a positional slot
// number, or an index into a Universe's Interner). Two Names compare equal
// with == iff they denote the same attribute, so Name can be used directly
// as a map key.
type Name struct {
	kind  NameKind
	index uint32
}

// SpecialName builds the Name for one of the five special attributes.
func SpecialName(s Special) Name { return Name{kind: KindSpecial, index: uint32(s)} }

// Positional builds the Name for the i'th positional argument slot (a0, a1, ...).
func Positional(i uint32) Name { return Name{kind: KindPositional, index: i} }

// Labelled builds the Name for a user-chosen identifier already interned to id.
func Labelled(id uint32) Name { return Name{kind: KindLabelled, index: id} }

// Well-known special names, used throughout the resolver and dataizer.
var (
	PhiName    = SpecialName(Phi)
	DeltaName  = SpecialName(Delta)
	LambdaName = SpecialName(Lambda)
	RhoName    = SpecialName(Rho)
	SigmaName  = SpecialName(Sigma)
)

// Kind reports the name's category.
func (n Name) Kind() NameKind { return n.kind }

// Special reports whether n is the given special name.
func (n Name) Special(s Special) bool {
	return n.kind == KindSpecial && Special(n.index) == s
}

// Index returns the raw index component: the Special ordinal, the
// positional slot, or the interner id, depending on Kind.
func (n Name) Index() uint32 { return n.index }

// Less orders two Names so that positional slots sort numerically
// (a0 < a1 < ... < a10), matching the numerically ordered convention for
// positional attributes.
// Names of different kinds are ordered Special < Positional < Labelled.
func (n Name) Less(o Name) bool {
	if n.kind != o.kind {
		return n.kind < o.kind
	}
	return n.index < o.index
}

// String renders n for diagnostics and error context chains. A Labelled
// name needs in to recover its original text; pass nil only when n is known
// not to be Labelled.
func (n Name) String(in *Interner) string {
	switch n.kind {
	case KindSpecial:
		return Special(n.index).String()
	case KindPositional:
		return "a" + strconv.FormatUint(uint64(n.index), 10)
	case KindLabelled:
		if in == nil {
			return fmt.Sprintf("<label#%d>", n.index)
		}
		return in.ToString(n.index)
	default:
		return "?"
	}
}

// ParseName resolves the textual name s (as it would appear in 𝜑-calculus
// surface syntax) to a Name, interning it in in if it is a labelled
// identifier. This is the single place that classifies a bare string into
// one of the three categories, used by the programmatic builder and by
// tests in place of a real parser.
func ParseName(in *Interner, s string) Name {
	switch s {
	case "phi":
		return PhiName
	case "delta":
		return DeltaName
	case "lambda":
		return LambdaName
	case "rho":
		return RhoName
	case "sigma":
		return SigmaName
	}
	if len(s) >= 2 && s[0] == 'a' {
		if i, err := strconv.ParseUint(s[1:], 10, 32); err == nil {
			return Positional(uint32(i))
		}
	}
	return Labelled(in.ToIndex(s))
}
