package gf

import (
	"fmt"

	"combinat-kernel/arith"
	"combinat-kernel/conway"
)

type poly []uint64

func polyTrim(p poly, q uint64) poly {
	if len(p) == 0 {
		return poly{0}
	}
	idx := len(p) - 1
	for idx > 0 && p[idx]%q == 0 {
		idx--
	}
	out := make(poly, idx+1)
	for i := 0; i <= idx; i++ {
		out[i] = p[i] % q
	}
	return out
}

func polySub(a, b poly, q uint64) poly {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make(poly, n)
	for i := 0; i < n; i++ {
		var ai, bi uint64
		if i < len(a) {
			ai = a[i]
		}
		if i < len(b) {
			bi = b[i]
		}
		out[i] = modSub(ai, bi, q)
	}
	return polyTrim(out, q)
}

func polyMul(a, b poly, q uint64) poly {
	if len(a) == 0 || len(b) == 0 {
		return poly{0}
	}
	out := make(poly, len(a)+len(b)-1)
	for i := range a {
		if a[i]%q == 0 {
			continue
		}
		for j := range b {
			if b[j]%q == 0 {
				continue
			}
			out[i+j] = modAdd(out[i+j], modMul(a[i], b[j], q), q)
		}
	}
	return polyTrim(out, q)
}

func modPowU(a, e, q uint64) uint64 {
	r := uint64(1 % q)
	a %= q
	for e > 0 {
		if e&1 == 1 {
			r = modMul(r, a, q)
		}
		a = modMul(a, a, q)
		e >>= 1
	}
	return r
}

func polyDivMod(a, b poly, q uint64) (poly, poly) {
	A := polyTrim(a, q)
	B := polyTrim(b, q)
	if len(B) == 1 && B[0] == 0 {
		panic("gf: divide by zero polynomial")
	}
	if len(A) < len(B) {
		return poly{0}, A
	}
	rem := make(poly, len(A))
	copy(rem, A)
	quot := make(poly, len(A)-len(B)+1)
	invLead := modPowU(B[len(B)-1], q-2, q)
	for i := len(A) - 1; i >= len(B)-1; i-- {
		c := rem[i]
		if c != 0 {
			c = modMul(c, invLead, q)
			quot[i-(len(B)-1)] = c
			for j := 0; j < len(B); j++ {
				rem[i-j] = modSub(rem[i-j], modMul(c, B[len(B)-1-j], q), q)
			}
		}
		if i == len(B)-1 {
			break
		}
	}
	return polyTrim(quot, q), polyTrim(rem[:len(B)-1], q)
}

func polyMod(a, b poly, q uint64) poly {
	_, r := polyDivMod(a, b, q)
	return r
}

func polyGCD(a, b poly, q uint64) poly {
	A := polyTrim(a, q)
	B := polyTrim(b, q)
	zero := func(p poly) bool { return len(p) == 1 && p[0] == 0 }
	for !zero(B) {
		_, r := polyDivMod(A, B, q)
		A, B = B, r
	}
	inv := modPowU(A[len(A)-1], q-2, q)
	for i := range A {
		A[i] = modMul(A[i], inv, q)
	}
	return A
}

func polyPowMod(base poly, exp uint64, modulus poly, q uint64) poly {
	result := poly{1}
	b := polyTrim(base, q)
	m := polyTrim(modulus, q)
	for exp > 0 {
		if exp&1 == 1 {
			result = polyMod(polyMul(result, b, q), m, q)
		}
		exp >>= 1
		if exp > 0 {
			b = polyMod(polyMul(b, b, q), m, q)
		}
	}
	return polyTrim(result, q)
}

// isIrreducible is the Ben-Or/Frobenius irreducibility test over F_q.
func isIrreducible(q uint64, f poly) bool {
	f = polyTrim(f, q)
	if len(f) <= 1 {
		return false
	}
	n := len(f) - 1
	x := poly{0, 1}
	xp := poly{0, 1}
	for i := 1; i <= n/2; i++ {
		xp = polyPowMod(xp, q, f, q)
		if g := polyGCD(polySub(xp, x, q), f, q); len(g) > 1 {
			return false
		}
	}
	xp = poly{0, 1}
	for i := 0; i < n; i++ {
		xp = polyPowMod(xp, q, f, q)
	}
	diff := polySub(xp, x, q)
	return len(diff) == 1 && diff[0] == 0
}

// VerifyConway checks that the database entry for (p, n) is a Conway
// polynomial relative to the entries below it: monic irreducible, primitive,
// and compatible with the subfield entries via the norm-compatibility
// substitution x -> x^t with t = (p^n - 1)/(p^m - 1).
func VerifyConway(db *conway.Database, p int64, n int) error {
	f, err := New(db, p, n)
	if err != nil {
		return err
	}
	prim, err := f.IsPrimitive(f.Gen())
	if err != nil {
		return err
	}
	if !prim {
		return fmt.Errorf("gf: entry for p=%d, n=%d is not primitive", p, n)
	}
	pn := powInt64(p, n)
	for q := range arith.Factor(int64(n)) {
		m := n / int(q)
		sub, err := db.Polynomial(p, m)
		if err != nil {
			return fmt.Errorf("gf: entry for p=%d, n=%d needs subfield entry n=%d: %w", p, n, m, err)
		}
		pm := powInt64(p, m)
		t := (pn - 1) / (pm - 1)
		xt := f.PowUint(f.Gen(), uint64(t))
		coeffs := make([]uint64, len(sub))
		for i, c := range sub {
			coeffs[i] = uint64(c)
		}
		if !f.IsZero(f.EvalPoly(coeffs, xt)) {
			return fmt.Errorf("gf: entry for p=%d, n=%d incompatible with subfield n=%d", p, n, m)
		}
	}
	return nil
}

func powInt64(p int64, n int) int64 {
	v := int64(1)
	for i := 0; i < n; i++ {
		v *= p
	}
	return v
}
