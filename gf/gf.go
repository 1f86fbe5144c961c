// Package gf implements the finite fields GF(p^n) in a power-basis
// representation over a monic irreducible modulus, by default the Conway
// polynomial for (p, n). Elements are coefficient vectors over F_p; the
// package also provides the primitivity and subfield-compatibility checks
// that characterize Conway polynomials.
package gf

import (
	"fmt"
	"math/big"
	"math/bits"

	"combinat-kernel/arith"
	"combinat-kernel/conway"
)

// Field describes GF(p^n) = F_p[x]/(modulus).
type Field struct {
	P       uint64
	N       int
	Modulus []uint64 // monic, ascending, length N+1
}

// Elem is a field element represented by its N coefficients in the power
// basis 1, x, ..., x^{N-1}.
type Elem struct {
	Limb []uint64
}

// New constructs GF(p^n) on the Conway polynomial for (p, n) from db.
func New(db *conway.Database, p int64, n int) (*Field, error) {
	coeffs, err := db.Polynomial(p, n)
	if err != nil {
		return nil, err
	}
	mod := make([]uint64, len(coeffs))
	for i, c := range coeffs {
		mod[i] = uint64(c)
	}
	return NewWithModulus(uint64(p), mod)
}

// NewWithModulus constructs F_p[x]/(modulus). The modulus must be monic
// irreducible over F_p and p must be prime.
func NewWithModulus(p uint64, modulus []uint64) (*Field, error) {
	if !arith.IsPrime(int64(p)) {
		return nil, fmt.Errorf("gf: characteristic %d is not prime", p)
	}
	if len(modulus) < 2 {
		return nil, fmt.Errorf("gf: modulus must have positive degree")
	}
	mod := make([]uint64, len(modulus))
	for i, c := range modulus {
		mod[i] = c % p
	}
	if mod[len(mod)-1] != 1 {
		return nil, fmt.Errorf("gf: modulus must be monic")
	}
	if !isIrreducible(p, mod) {
		return nil, fmt.Errorf("gf: modulus is reducible over F_%d", p)
	}
	return &Field{P: p, N: len(mod) - 1, Modulus: mod}, nil
}

// Order returns p^n.
func (f *Field) Order() *big.Int {
	return new(big.Int).Exp(big.NewInt(int64(f.P)), big.NewInt(int64(f.N)), nil)
}

// Zero returns the additive identity.
func (f *Field) Zero() Elem {
	return Elem{Limb: make([]uint64, f.N)}
}

// One returns the multiplicative identity.
func (f *Field) One() Elem {
	e := f.Zero()
	e.Limb[0] = 1 % f.P
	return e
}

// Gen returns the class of x, a root of the modulus.
func (f *Field) Gen() Elem {
	e := f.Zero()
	if f.N > 1 {
		e.Limb[1] = 1
	} else {
		// N = 1: x = -modulus[0]
		e.Limb[0] = (f.P - f.Modulus[0]%f.P) % f.P
	}
	return e
}

// Embed lifts an F_p scalar to the field.
func (f *Field) Embed(c uint64) Elem {
	e := f.Zero()
	e.Limb[0] = c % f.P
	return e
}

// FromCoords builds an element from power-basis coordinates, truncated or
// padded to length N.
func (f *Field) FromCoords(coords []uint64) Elem {
	e := f.Zero()
	n := len(coords)
	if n > f.N {
		n = f.N
	}
	for i := 0; i < n; i++ {
		e.Limb[i] = coords[i] % f.P
	}
	return e
}

// Coords returns a reduced copy of the coordinates of e.
func (f *Field) Coords(e Elem) []uint64 {
	out := make([]uint64, f.N)
	copy(out, e.Limb)
	for i := range out {
		out[i] %= f.P
	}
	return out
}

// IsZero reports whether e is zero.
func (f *Field) IsZero(e Elem) bool {
	for _, c := range e.Limb {
		if c%f.P != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether a and b represent the same element.
func (f *Field) Equal(a, b Elem) bool {
	return f.IsZero(f.Sub(a, b))
}

// Add returns a + b.
func (f *Field) Add(a, b Elem) Elem {
	out := f.Zero()
	for i := 0; i < f.N; i++ {
		out.Limb[i] = modAdd(a.Limb[i], b.Limb[i], f.P)
	}
	return out
}

// Sub returns a - b.
func (f *Field) Sub(a, b Elem) Elem {
	out := f.Zero()
	for i := 0; i < f.N; i++ {
		out.Limb[i] = modSub(a.Limb[i], b.Limb[i], f.P)
	}
	return out
}

// Neg returns -a.
func (f *Field) Neg(a Elem) Elem {
	return f.Sub(f.Zero(), a)
}

// Mul returns a * b, schoolbook product reduced by the modulus.
func (f *Field) Mul(a, b Elem) Elem {
	deg := f.N
	tmp := make([]uint64, 2*deg)
	for i := 0; i < deg; i++ {
		ai := a.Limb[i] % f.P
		if ai == 0 {
			continue
		}
		for j := 0; j < deg; j++ {
			bj := b.Limb[j] % f.P
			if bj == 0 {
				continue
			}
			tmp[i+j] = modAdd(tmp[i+j], modMul(ai, bj, f.P), f.P)
		}
	}
	for k := len(tmp) - 1; k >= deg; k-- {
		c := tmp[k] % f.P
		if c == 0 {
			continue
		}
		tmp[k] = 0
		m := k - deg
		for j := 0; j < deg; j++ {
			tmp[m+j] = modSub(tmp[m+j], modMul(c, f.Modulus[j], f.P), f.P)
		}
	}
	out := make([]uint64, deg)
	copy(out, tmp[:deg])
	return Elem{Limb: out}
}

// Pow returns base^exp for non-negative exp.
func (f *Field) Pow(base Elem, exp *big.Int) Elem {
	if exp == nil || exp.Sign() == 0 {
		return f.One()
	}
	result := f.One()
	for i := exp.BitLen() - 1; i >= 0; i-- {
		result = f.Mul(result, result)
		if exp.Bit(i) == 1 {
			result = f.Mul(result, base)
		}
	}
	return result
}

// PowUint returns base^exp.
func (f *Field) PowUint(base Elem, exp uint64) Elem {
	return f.Pow(base, new(big.Int).SetUint64(exp))
}

// Inv returns the multiplicative inverse of a.
func (f *Field) Inv(a Elem) (Elem, error) {
	if f.IsZero(a) {
		return Elem{}, fmt.Errorf("gf: inverse of zero")
	}
	exp := f.Order()
	exp.Sub(exp, big.NewInt(2))
	return f.Pow(a, exp), nil
}

// Frobenius returns a^p, the image of a under the Frobenius automorphism.
func (f *Field) Frobenius(a Elem) Elem {
	return f.Pow(a, big.NewInt(int64(f.P)))
}

// EvalPoly evaluates an F_p-coefficient polynomial at e by Horner's method.
func (f *Field) EvalPoly(coeffs []uint64, e Elem) Elem {
	acc := f.Zero()
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc = f.Mul(acc, e)
		acc = f.Add(acc, f.Embed(coeffs[i]))
	}
	return acc
}

// MultiplicativeOrder returns the order of a in the unit group.
func (f *Field) MultiplicativeOrder(a Elem) (*big.Int, error) {
	if f.IsZero(a) {
		return nil, fmt.Errorf("gf: zero has no multiplicative order")
	}
	order := new(big.Int).Sub(f.Order(), big.NewInt(1))
	if !order.IsInt64() {
		return nil, fmt.Errorf("gf: unit group of order %s too large to factor", order)
	}
	ord := order.Int64()
	for p := range arith.Factor(ord) {
		for ord%p == 0 {
			cand := ord / p
			if !f.Equal(f.Pow(a, big.NewInt(cand)), f.One()) {
				break
			}
			ord = cand
		}
	}
	return big.NewInt(ord), nil
}

// IsPrimitive reports whether a generates the unit group.
func (f *Field) IsPrimitive(a Elem) (bool, error) {
	ord, err := f.MultiplicativeOrder(a)
	if err != nil {
		return false, err
	}
	want := new(big.Int).Sub(f.Order(), big.NewInt(1))
	return ord.Cmp(want) == 0, nil
}

func modAdd(a, b, p uint64) uint64 {
	a %= p
	b %= p
	s := a + b
	if s >= p || s < a {
		s -= p
	}
	return s
}

func modSub(a, b, p uint64) uint64 {
	a %= p
	b %= p
	if a >= b {
		return a - b
	}
	return a + p - b
}

func modMul(a, b, p uint64) uint64 {
	a %= p
	b %= p
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, p)
	return rem
}
