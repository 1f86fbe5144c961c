// Package homset implements sets of unital ring homomorphisms between the
// concrete rings of this library: the integers, the rings Z/N, and the
// finite fields GF(p^n) in Conway representation. A homomorphism is
// determined by the image of the distinguished generator of its domain, and
// candidate images are validated against the defining relations.
package homset

import (
	"fmt"

	"combinat-kernel/gf"
)

// Ring is a ring with a distinguished generator. Characteristic 0 denotes
// the integers.
type Ring interface {
	String() string
	Characteristic() int64
}

// Integers is the ring Z.
type Integers struct{}

func (Integers) String() string        { return "Integer Ring" }
func (Integers) Characteristic() int64 { return 0 }

// IntegersMod is the quotient ring Z/N.
type IntegersMod struct {
	N int64
}

// NewIntegersMod constructs Z/N for N >= 1.
func NewIntegersMod(n int64) (IntegersMod, error) {
	if n < 1 {
		return IntegersMod{}, fmt.Errorf("homset: modulus must be positive, got %d", n)
	}
	return IntegersMod{N: n}, nil
}

func (r IntegersMod) String() string        { return fmt.Sprintf("Ring of integers modulo %d", r.N) }
func (r IntegersMod) Characteristic() int64 { return r.N }

// GaloisField is GF(p^n) on its Conway polynomial.
type GaloisField struct {
	F *gf.Field
}

func (r GaloisField) String() string {
	if r.F.N == 1 {
		return fmt.Sprintf("Finite Field of size %d", r.F.P)
	}
	return fmt.Sprintf("Finite Field in x of size %d^%d", r.F.P, r.F.N)
}

func (r GaloisField) Characteristic() int64 { return int64(r.F.P) }
