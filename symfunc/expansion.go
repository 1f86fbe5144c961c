// Package symfunc implements the pieces of the ring of symmetric functions
// needed for the k-Schur basis at t = 1: Kostka numbers, expansions between
// the homogeneous, Schur and k-Schur bases, lift and retract for the
// k-bounded subspace, and products of k-Schur functions.
package symfunc

import (
	"fmt"
	"math/big"
	"sort"
	"strings"

	"combinat-kernel/partition"
)

// Term is one basis element with its coefficient.
type Term struct {
	Mu partition.Partition
	C  *big.Rat
}

// Expansion is a finite linear combination of basis elements indexed by
// partitions, with rational coefficients.
type Expansion struct {
	terms map[string]*Term
}

// NewExpansion returns the zero expansion.
func NewExpansion() *Expansion {
	return &Expansion{terms: map[string]*Term{}}
}

// Monomial returns the expansion with a single term c * b_mu.
func Monomial(mu partition.Partition, c *big.Rat) *Expansion {
	e := NewExpansion()
	e.Add(mu, c)
	return e
}

// Add accumulates c onto the coefficient of mu, dropping the term when it
// cancels.
func (e *Expansion) Add(mu partition.Partition, c *big.Rat) {
	if c.Sign() == 0 {
		return
	}
	k := mu.Key()
	t, ok := e.terms[k]
	if !ok {
		e.terms[k] = &Term{Mu: mu.Copy(), C: new(big.Rat).Set(c)}
		return
	}
	t.C.Add(t.C, c)
	if t.C.Sign() == 0 {
		delete(e.terms, k)
	}
}

// AddScaled accumulates c * other onto e.
func (e *Expansion) AddScaled(other *Expansion, c *big.Rat) {
	tmp := new(big.Rat)
	for _, t := range other.terms {
		tmp.Mul(t.C, c)
		e.Add(t.Mu, tmp)
	}
}

// Coeff returns the coefficient of mu (zero when absent).
func (e *Expansion) Coeff(mu partition.Partition) *big.Rat {
	if t, ok := e.terms[mu.Key()]; ok {
		return new(big.Rat).Set(t.C)
	}
	return new(big.Rat)
}

// Len returns the number of nonzero terms.
func (e *Expansion) Len() int { return len(e.terms) }

// IsZero reports whether the expansion has no terms.
func (e *Expansion) IsZero() bool { return len(e.terms) == 0 }

// Terms returns the terms sorted in reverse-lexicographic order of their
// partitions, the order partitions of equal size are generated in.
func (e *Expansion) Terms() []Term {
	out := make([]Term, 0, len(e.terms))
	for _, t := range e.terms {
		out = append(out, Term{Mu: t.Mu, C: new(big.Rat).Set(t.C)})
	}
	sort.Slice(out, func(i, j int) bool { return revLexLess(out[i].Mu, out[j].Mu) })
	return out
}

// Equal reports whether e and other have identical terms.
func (e *Expansion) Equal(other *Expansion) bool {
	if len(e.terms) != len(other.terms) {
		return false
	}
	for k, t := range e.terms {
		o, ok := other.terms[k]
		if !ok || t.C.Cmp(o.C) != 0 {
			return false
		}
	}
	return true
}

func (e *Expansion) String() string {
	ts := e.Terms()
	if len(ts) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, t := range ts {
		if i > 0 {
			sb.WriteString(" + ")
		}
		fmt.Fprintf(&sb, "%s*%v", t.C.RatString(), t.Mu)
	}
	return sb.String()
}

// revLexLess orders partitions with larger first parts first, ties broken on
// later parts, shorter before longer on a common prefix.
func revLexLess(a, b partition.Partition) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] > b[i]
		}
	}
	return len(a) < len(b)
}
