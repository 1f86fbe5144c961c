package congroup

import (
	"fmt"

	"combinat-kernel/arith"
)

// P1Point is a point (c : d) of P^1(Z/N) in canonical form.
type P1Point struct {
	C, D int64
}

// P1List returns the canonical representatives of P^1(Z/N): among the unit
// multiples of a valid pair, the lexicographically least is chosen. For N = 1
// the single point is (0, 0).
func P1List(n int64) ([]P1Point, error) {
	if n <= 0 {
		return nil, fmt.Errorf("congroup: level must be positive, got %d", n)
	}
	if n == 1 {
		return []P1Point{{0, 0}}, nil
	}
	var units []int64
	for u := int64(1); u < n; u++ {
		if arith.Gcd(u, n) == 1 {
			units = append(units, u)
		}
	}
	seen := map[P1Point]bool{}
	var reps []P1Point
	for c := int64(0); c < n; c++ {
		for d := int64(0); d < n; d++ {
			if arith.Gcd(arith.Gcd(c, d), n) != 1 {
				continue
			}
			canon := P1Point{C: n, D: n}
			for _, u := range units {
				p := P1Point{C: u * c % n, D: u * d % n}
				if p.C < canon.C || (p.C == canon.C && p.D < canon.D) {
					canon = p
				}
			}
			if !seen[canon] {
				seen[canon] = true
				reps = append(reps, canon)
			}
		}
	}
	return reps, nil
}

// SL2Mat is an integer matrix [A B; C D] of determinant 1.
type SL2Mat struct {
	A, B, C, D int64
}

// Det returns the determinant.
func (m SL2Mat) Det() int64 { return m.A*m.D - m.B*m.C }

// LiftToSL2Z lifts a point (c : d) of P^1(Z/N) to a matrix [a b; c' d'] in
// SL2(Z) with c' = c and d' = d modulo N.
func LiftToSL2Z(c, d, n int64) (SL2Mat, error) {
	if n <= 0 {
		return SL2Mat{}, fmt.Errorf("congroup: level must be positive, got %d", n)
	}
	if n == 1 {
		return SL2Mat{1, 0, 0, 1}, nil
	}
	c = ((c % n) + n) % n
	d = ((d % n) + n) % n
	if arith.Gcd(arith.Gcd(c, d), n) != 1 {
		return SL2Mat{}, fmt.Errorf("congroup: (%d, %d) is not a point of P^1(Z/%d)", c, d, n)
	}
	g, z1, z2 := arith.Xgcd(c, d)
	if g == 1 {
		return SL2Mat{A: z2, B: -z1, C: c, D: d}, nil
	}
	if c == 0 {
		c += n
	}
	if d == 0 {
		d += n
	}
	// make d coprime to c without changing it mod N: strip from c the part
	// sharing factors with d or N, then shift d by a multiple of N
	m := c
	for {
		g0 := arith.Gcd(m, d)
		if g0 == 1 {
			break
		}
		m /= g0
	}
	for {
		g0 := arith.Gcd(m, n)
		if g0 == 1 {
			break
		}
		m /= g0
	}
	d += n * m
	g, z1, z2 = arith.Xgcd(c, d)
	if g != 1 {
		return SL2Mat{}, fmt.Errorf("congroup: failed to lift (%d, %d) mod %d", c, d, n)
	}
	return SL2Mat{A: z2, B: -z1, C: c, D: d}, nil
}
