// Package arith collects the elementary number-theoretic helpers shared by
// the congruence-subgroup, finite-field and database packages: gcds, modular
// inverses, factorization, unit-group generators of Z/N and the index
// formula for Gamma0(N).
package arith

import (
	"fmt"
	"sort"
)

// Gcd returns the non-negative greatest common divisor of a and b.
func Gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Xgcd returns (g, x, y) with a*x + b*y = g = gcd(a,b) and g >= 0.
func Xgcd(a, b int64) (g, x, y int64) {
	x0, x1 := int64(1), int64(0)
	y0, y1 := int64(0), int64(1)
	for b != 0 {
		q := a / b
		a, b = b, a-q*b
		x0, x1 = x1, x0-q*x1
		y0, y1 = y1, y0-q*y1
	}
	if a < 0 {
		return -a, -x0, -y0
	}
	return a, x0, y0
}

// InverseMod returns the inverse of a modulo n.
func InverseMod(a, n int64) (int64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("arith: modulus must be positive, got %d", n)
	}
	g, x, _ := Xgcd(a%n, n)
	if g != 1 {
		return 0, fmt.Errorf("arith: %d is not a unit modulo %d", a, n)
	}
	x %= n
	if x < 0 {
		x += n
	}
	return x, nil
}

// PowMod returns a^e mod n for e >= 0.
func PowMod(a, e, n int64) int64 {
	a %= n
	if a < 0 {
		a += n
	}
	r := int64(1) % n
	for e > 0 {
		if e&1 == 1 {
			r = r * a % n
		}
		a = a * a % n
		e >>= 1
	}
	return r
}

// Divisors returns the positive divisors of n in increasing order.
func Divisors(n int64) []int64 {
	if n < 0 {
		n = -n
	}
	var out []int64
	for d := int64(1); d*d <= n; d++ {
		if n%d == 0 {
			out = append(out, d)
			if d != n/d {
				out = append(out, n/d)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Factor returns the prime factorization of n > 0 as a map prime -> exponent.
func Factor(n int64) map[int64]int {
	f := map[int64]int{}
	for p := int64(2); p*p <= n; p++ {
		for n%p == 0 {
			f[p]++
			n /= p
		}
	}
	if n > 1 {
		f[n]++
	}
	return f
}

// PrimesOf returns the distinct prime divisors of n in increasing order.
func PrimesOf(n int64) []int64 {
	f := Factor(n)
	out := make([]int64, 0, len(f))
	for p := range f {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IsPrime reports whether n is prime (trial division; the levels and
// characteristics handled by this library are small).
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	for p := int64(2); p*p <= n; p++ {
		if n%p == 0 {
			return false
		}
	}
	return true
}

// EulerPhi returns the order of (Z/n)^*.
func EulerPhi(n int64) int64 {
	phi := n
	for p := range Factor(n) {
		phi = phi / p * (p - 1)
	}
	return phi
}

// MultiplicativeOrder returns the order of a in (Z/n)^*.
func MultiplicativeOrder(a, n int64) (int64, error) {
	if Gcd(a, n) != 1 {
		return 0, fmt.Errorf("arith: %d is not a unit modulo %d", a, n)
	}
	phi := EulerPhi(n)
	ord := phi
	for p := range Factor(phi) {
		for ord%p == 0 && PowMod(a, ord/p, n) == 1 {
			ord /= p
		}
	}
	return ord, nil
}

// CRT returns the unique x modulo m*n with x = a (mod m) and x = b (mod n).
// m and n must be coprime.
func CRT(a, m, b, n int64) (int64, error) {
	mi, err := InverseMod(m, n)
	if err != nil {
		return 0, fmt.Errorf("arith: CRT moduli %d, %d are not coprime", m, n)
	}
	t := ((b-a)%n + n) % n * mi % n
	return (a%(m*n) + m*t%(m*n) + m*n) % (m * n), nil
}

// PrimitiveRoot returns a generator of (Z/q)^* for q an odd prime power.
func PrimitiveRoot(q int64) (int64, error) {
	ps := PrimesOf(q)
	if len(ps) != 1 || ps[0] == 2 {
		return 0, fmt.Errorf("arith: %d is not an odd prime power", q)
	}
	phi := EulerPhi(q)
	qs := PrimesOf(phi)
	for g := int64(2); g < q; g++ {
		if Gcd(g, q) != 1 {
			continue
		}
		ok := true
		for _, r := range qs {
			if PowMod(g, phi/r, q) == 1 {
				ok = false
				break
			}
		}
		if ok {
			return g, nil
		}
	}
	return 0, fmt.Errorf("arith: no primitive root modulo %d", q)
}

// UnitGens returns generators of (Z/n)^*, one per cyclic factor, computed by
// CRT from the prime-power components of n. For odd prime powers the
// generator is the least primitive root; for 2^e with e >= 3 the two
// generators are -1 and 5. The empty slice is returned for n <= 2.
func UnitGens(n int64) ([]int64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("arith: modulus must be positive, got %d", n)
	}
	if n <= 2 {
		return nil, nil
	}
	fac := Factor(n)
	type comp struct{ p, q int64 }
	comps := make([]comp, 0, len(fac))
	for p, e := range fac {
		q := int64(1)
		for i := 0; i < e; i++ {
			q *= p
		}
		comps = append(comps, comp{p, q})
	}
	sort.Slice(comps, func(i, j int) bool { return comps[i].p < comps[j].p })
	qs := make([]int64, len(comps))
	for i, c := range comps {
		qs[i] = c.q
	}

	var gens []int64
	for _, q := range qs {
		var local []int64
		switch {
		case q == 2:
			// trivial component
		case q == 4:
			local = []int64{3}
		case q%2 == 0:
			local = []int64{q - 1, 5}
		default:
			g, err := PrimitiveRoot(q)
			if err != nil {
				return nil, err
			}
			local = []int64{g}
		}
		m := n / q
		for _, s := range local {
			if m == 1 {
				gens = append(gens, s)
				continue
			}
			x, err := CRT(s, q, 1, m)
			if err != nil {
				return nil, err
			}
			gens = append(gens, x)
		}
	}
	return gens, nil
}

// IndexGamma0 returns the index [SL2(Z) : Gamma0(N)] = N * prod_{p|N} (1 + 1/p).
func IndexGamma0(n int64) (int64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("arith: level must be positive, got %d", n)
	}
	idx := n
	for _, p := range PrimesOf(n) {
		idx = idx / p * (p + 1)
	}
	return idx, nil
}
