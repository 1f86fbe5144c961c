// Package congroup implements coset reduction for congruence subgroups of
// SL2(Z) of GammaH type: closure of a subgroup H of (Z/N)^*, precomputed
// reduction tables for the two coordinates of a Manin symbol, canonical
// representatives of P^1(Z/N), lifts to SL2(Z), and coset representatives of
// degeneracy maps between Gamma0 levels.
package congroup

import (
	"fmt"
	"sort"

	"combinat-kernel/arith"
)

// ElementsOfH returns the sorted elements of the subgroup of (Z/N)^*
// generated by gens.
func ElementsOfH(n int64, gens []int64) ([]int64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("congroup: level must be positive, got %d", n)
	}
	if n == 1 {
		return []int64{1}, nil
	}
	in := map[int64]bool{1: true}
	for _, g := range gens {
		g = ((g % n) + n) % n
		if arith.Gcd(g, n) != 1 {
			return nil, fmt.Errorf("congroup: generator %d is not a unit modulo %d", g, n)
		}
		// powers of g, then fold into the subgroup built so far
		var powers []int64
		gk := g
		for !in[gk] {
			powers = append(powers, gk)
			gk = gk * g % n
		}
		powers = append(powers, gk)
		old := make([]int64, 0, len(in))
		for x := range in {
			old = append(old, x)
		}
		for _, x := range powers {
			for _, h := range old {
				in[x*h%n] = true
			}
		}
	}
	out := make([]int64, 0, len(in))
	for x := range in {
		out = append(out, x)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// firstEntry describes how a residue u reduces in the first coordinate:
// Rep is the chosen representative of the H-orbit of u, Gcd is gcd(u, N),
// and Scale is the unit multiplying the second coordinate during reduction.
type firstEntry struct {
	Rep, Gcd, Scale int64
}

// Tables holds the reduction data of the group GammaH(N) determined by a
// subgroup H of (Z/N)^*.
type Tables struct {
	N      int64
	H      []int64
	first  []firstEntry
	second map[int64][]int64
}

// NewTables computes the reduction tables for level n and the subgroup of
// (Z/N)^* generated by gens.
func NewTables(n int64, gens []int64) (*Tables, error) {
	h, err := ElementsOfH(n, gens)
	if err != nil {
		return nil, err
	}
	t := &Tables{N: n, H: h}
	if err := t.buildFirst(); err != nil {
		return nil, err
	}
	t.buildSecond()
	return t, nil
}

// buildFirst computes, for every residue u mod N, the representative of the
// orbit of u under multiplication by H, together with gcd(u, N) and the unit
// carrying the reduction onto the second coordinate.
func (t *Tables) buildFirst() error {
	n := t.N
	type row struct{ u, rep, g, scale int64 }
	rows := []row{{0, 0, n, 0}}
	inH := map[int64]bool{}
	for _, x := range t.H {
		inH[x] = true
		inv, err := arith.InverseMod(x, n)
		if err != nil {
			return err
		}
		rows = append(rows, row{x, 1, 1, inv})
	}

	// orbit representatives of H modulo N/d, one unit per residue class
	reprMod := map[int64][]int64{}
	for _, d := range arith.Divisors(n) {
		nd := n / d
		seen := map[int64]bool{1 % nd: true}
		z := []int64{1}
		for _, x := range t.H {
			if !seen[x%nd] {
				seen[x%nd] = true
				z = append(z, x)
			}
		}
		reprMod[d] = z
	}

	var notdone []int64
	for u := int64(1); u < n; u++ {
		if !inH[u] {
			notdone = append(notdone, u)
		}
	}
	done := map[int64]bool{}
	for len(notdone) > 0 {
		u := notdone[0]
		d := arith.Gcd(u, n)
		for _, x := range reprMod[d] {
			v := u * x % n
			inv, err := arith.InverseMod(x, n)
			if err != nil {
				return err
			}
			rows = append(rows, row{v, u, d, inv})
			done[v] = true
		}
		var rest []int64
		for _, x := range notdone {
			if !done[x] {
				rest = append(rest, x)
			}
		}
		notdone = rest
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].u < rows[j].u })
	t.first = make([]firstEntry, n)
	for i, r := range rows {
		if int64(i) != r.u {
			return fmt.Errorf("congroup: first coordinate table misses residue %d", i)
		}
		t.first[i] = firstEntry{Rep: r.rep, Gcd: r.g, Scale: r.scale}
	}
	return nil
}

// buildSecond lists, for each divisor d of N with 1 < d <= sqrt(N), the
// elements of H congruent to 1 modulo N/d.
func (t *Tables) buildSecond() {
	n := t.N
	t.second = map[int64][]int64{1: {1}}
	for _, d := range arith.Divisors(n) {
		if d <= 1 || d*d > n {
			continue
		}
		nd := n / d
		var v []int64
		for _, x := range t.H {
			if x%nd == 1 {
				v = append(v, x)
			}
		}
		t.second[d] = v
	}
}

// First returns (representative, gcd with N) for the residue u.
func (t *Tables) First(u int64) (rep, g int64) {
	u = ((u % t.N) + t.N) % t.N
	e := t.first[u]
	return e.Rep, e.Gcd
}

// ReduceCoset reduces the Manin symbol coordinates (u, v) modulo the action
// of GammaH(N). The zero symbol (0, 0) is returned when gcd(u, v, N) > 1.
func (t *Tables) ReduceCoset(u, v int64) (int64, int64) {
	n := t.N
	u = ((u % n) + n) % n
	v = ((v % n) + n) % n
	gu := t.first[u].Gcd
	gv := t.first[v].Gcd
	if arith.Gcd(gu, gv) != 1 {
		return 0, 0
	}
	if u == 0 {
		return 0, t.first[v].Rep
	}
	if v == 0 {
		return t.first[u].Rep, 0
	}
	reduce := func(u, v int64) (int64, int64) {
		v = v * t.first[u].Scale % n
		d := t.first[u].Gcd
		u = t.first[u].Rep
		hc := t.second[d]
		if len(hc) > 1 {
			// v is refined in place while scanning, matching the original
			// sequential minimization
			vmin := v
			for _, x := range hc {
				if v1 := v * x % n; v1 < vmin {
					vmin = v1
				}
				v = vmin
			}
		}
		return u, v
	}
	if gu <= gv {
		return reduce(u, v)
	}
	v, u = reduce(v, u)
	return u, v
}
