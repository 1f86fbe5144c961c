package congroup

import (
	"fmt"
	"sort"

	"combinat-kernel/arith"
	"combinat-kernel/internal/mrange"
)

// Kind distinguishes the three families of congruence subgroups handled
// here. Gamma0(N) corresponds to H = (Z/N)^*, Gamma1(N) to H = {1}.
type Kind int

const (
	KindGamma0 Kind = iota
	KindGamma1
	KindGammaH
)

// Group is a congruence subgroup of SL2(Z) of GammaH type: the matrices
// congruent modulo N to an upper triangular matrix whose diagonal lies in a
// subgroup H of (Z/N)^*.
type Group struct {
	kind   Kind
	n      int64
	hGens  []int64
	tables *Tables
}

// NewGamma0 returns Gamma0(n).
func NewGamma0(n int64) (*Group, error) {
	if n <= 0 {
		return nil, fmt.Errorf("congroup: level must be positive, got %d", n)
	}
	return &Group{kind: KindGamma0, n: n}, nil
}

// NewGamma1 returns Gamma1(n).
func NewGamma1(n int64) (*Group, error) {
	if n <= 0 {
		return nil, fmt.Errorf("congroup: level must be positive, got %d", n)
	}
	return &Group{kind: KindGamma1, n: n}, nil
}

// SL2Z returns the full modular group, as Gamma0(1).
func SL2Z() *Group {
	g, _ := NewGamma0(1)
	return g
}

// NewGammaH returns GammaH(n) for the subgroup of (Z/n)^* generated by gens.
// The generator list is reduced mod n, deduplicated, sorted, and 1 is
// removed; a non-unit generator is an error.
func NewGammaH(n int64, gens []int64) (*Group, error) {
	if n <= 0 {
		return nil, fmt.Errorf("congroup: level must be positive, got %d", n)
	}
	seen := map[int64]bool{}
	var h []int64
	for _, g := range gens {
		g = ((g % n) + n) % n
		if arith.Gcd(g, n) != 1 {
			return nil, fmt.Errorf("congroup: generator %d is not a unit modulo %d", g, n)
		}
		if g == 1%n || seen[g] {
			continue
		}
		seen[g] = true
		h = append(h, g)
	}
	sort.Slice(h, func(i, j int) bool { return h[i] < h[j] })
	return &Group{kind: KindGammaH, n: n, hGens: h}, nil
}

// Level returns N.
func (g *Group) Level() int64 { return g.n }

// Kind returns the family of the group.
func (g *Group) Kind() Kind { return g.kind }

func (g *Group) String() string {
	switch g.kind {
	case KindGamma0:
		return fmt.Sprintf("Gamma0(%d)", g.n)
	case KindGamma1:
		return fmt.Sprintf("Gamma1(%d)", g.n)
	default:
		return fmt.Sprintf("GammaH(%d) with H generated by %v", g.n, g.hGens)
	}
}

// GeneratorsForH returns generators of the subgroup H of (Z/N)^*: the stored
// list for GammaH, the unit-group generators for Gamma0, none for Gamma1.
func (g *Group) GeneratorsForH() ([]int64, error) {
	switch g.kind {
	case KindGamma0:
		return arith.UnitGens(g.n)
	case KindGamma1:
		return nil, nil
	default:
		return append([]int64(nil), g.hGens...), nil
	}
}

// ElementsOfH returns the sorted elements of H as residues in 0..N-1.
func (g *Group) ElementsOfH() ([]int64, error) {
	switch g.kind {
	case KindGamma0:
		if g.n == 1 {
			return []int64{1}, nil
		}
		out := make([]int64, 0, g.n-1)
		for u := int64(1); u < g.n; u++ {
			out = append(out, u)
		}
		return out, nil
	case KindGamma1:
		return []int64{1}, nil
	default:
		return ElementsOfH(g.n, g.hGens)
	}
}

// IsEven reports whether the group contains -1.
func (g *Group) IsEven() (bool, error) {
	if g.n == 1 {
		return true, nil
	}
	switch g.kind {
	case KindGamma0:
		return true, nil
	case KindGamma1:
		return g.n <= 2, nil
	default:
		h, err := ElementsOfH(g.n, g.hGens)
		if err != nil {
			return false, err
		}
		for _, x := range h {
			if x == g.n-1 {
				return true, nil
			}
		}
		return false, nil
	}
}

// IsOdd reports whether the group does not contain -1.
func (g *Group) IsOdd() (bool, error) {
	even, err := g.IsEven()
	return !even, err
}

// IsSubgroup reports whether g is contained in right. It is decided by level
// divisibility within the Gamma0/Gamma1 family; other comparisons are not
// supported.
func (g *Group) IsSubgroup(right *Group) (bool, error) {
	if right.n == 1 {
		return true, nil
	}
	switch {
	case g.kind == KindGamma0 && right.kind == KindGamma0:
		return g.n%right.n == 0, nil
	case g.kind == KindGamma0 && right.kind == KindGamma1:
		// Gamma1(2) == Gamma0(2); Gamma1(N) for N >= 3 contains no Gamma0
		return right.n == 2 && g.n == 2, nil
	case g.kind == KindGamma1 && (right.kind == KindGamma0 || right.kind == KindGamma1):
		return g.n%right.n == 0, nil
	}
	return false, fmt.Errorf("congroup: containment of %v in %v is not decided here", g, right)
}

// NewGroupFromLevel returns the group of the same family at the given level,
// which must divide or be divisible by N. For GammaH moving up a level the
// new H is the inverse image of H under reduction; moving down it is the
// image of H.
func (g *Group) NewGroupFromLevel(level int64) (*Group, error) {
	if level <= 0 {
		return nil, fmt.Errorf("congroup: level must be positive, got %d", level)
	}
	if level%g.n != 0 && g.n%level != 0 {
		return nil, fmt.Errorf("congroup: one of the levels %d and %d must divide the other", g.n, level)
	}
	switch g.kind {
	case KindGamma0:
		return NewGamma0(level)
	case KindGamma1:
		return NewGamma1(level)
	}
	if level > g.n {
		d := level / g.n
		var gens []int64
		for _, h := range g.hGens {
			for i := int64(0); i < d; i++ {
				gens = append(gens, h+g.n*i)
			}
		}
		return NewGammaH(level, gens)
	}
	gens := make([]int64, len(g.hGens))
	for i, h := range g.hGens {
		gens[i] = h % level
	}
	return NewGammaH(level, gens)
}

// Restrict returns the GammaH group of level m whose H is the image of H
// modulo m. m must divide the level.
func (g *Group) Restrict(m int64) (*Group, error) {
	if g.kind != KindGammaH {
		return nil, fmt.Errorf("congroup: Restrict applies to GammaH groups, not %v", g)
	}
	if m <= 0 || g.n%m != 0 {
		return nil, fmt.Errorf("congroup: m (=%d) must be a divisor of the level %d", m, g.n)
	}
	if m == g.n {
		return g, nil
	}
	var gens []int64
	for _, a := range g.hGens {
		if a%m != 0 {
			gens = append(gens, a%m)
		}
	}
	return NewGammaH(m, gens)
}

// DivisorSubgroups returns, for every divisor m of the level, the GammaH
// group of level m whose H is the image of H modulo m.
func (g *Group) DivisorSubgroups() ([]*Group, error) {
	if g.kind != KindGammaH {
		return nil, fmt.Errorf("congroup: DivisorSubgroups applies to GammaH groups, not %v", g)
	}
	var out []*Group
	for _, m := range arith.Divisors(g.n) {
		var gens []int64
		for _, a := range g.hGens {
			if a%m != 0 {
				gens = append(gens, a%m)
			}
		}
		sub, err := NewGammaH(m, gens)
		if err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	return out, nil
}

// GammaHSubgroups returns the groups GammaH(N, K) for K running over the
// subgroups of (Z/N)^* generated by powers of the unit-group generators,
// largest first.
func (g *Group) GammaHSubgroups() ([]*Group, error) {
	if g.kind != KindGamma0 {
		return nil, fmt.Errorf("congroup: GammaHSubgroups applies to Gamma0 groups, not %v", g)
	}
	unitGens, err := arith.UnitGens(g.n)
	if err != nil {
		return nil, err
	}
	divs := make([][]int64, len(unitGens))
	radix := make([]int, len(unitGens))
	for i, u := range unitGens {
		ord, err := arith.MultiplicativeOrder(u, g.n)
		if err != nil {
			return nil, err
		}
		divs[i] = arith.Divisors(ord)
		radix[i] = len(divs[i])
	}
	var out []*Group
	if len(unitGens) == 0 {
		sub, err := NewGammaH(g.n, nil)
		if err != nil {
			return nil, err
		}
		return []*Group{sub}, nil
	}
	idx := make([]int, len(radix))
	it := mrange.New(radix)
	for it.Next(idx) {
		gens := make([]int64, len(unitGens))
		for i, u := range unitGens {
			gens[i] = arith.PowMod(u, divs[i][idx[i]], g.n)
		}
		sub, err := NewGammaH(g.n, gens)
		if err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	return out, nil
}

// ReductionTables returns the coset reduction tables of the group, computed
// once and cached.
func (g *Group) ReductionTables() (*Tables, error) {
	if g.tables != nil {
		return g.tables, nil
	}
	var gens []int64
	switch g.kind {
	case KindGamma0:
		u, err := arith.UnitGens(g.n)
		if err != nil {
			return nil, err
		}
		gens = u
	case KindGamma1:
		gens = nil
	default:
		gens = g.hGens
	}
	t, err := NewTables(g.n, gens)
	if err != nil {
		return nil, err
	}
	g.tables = t
	return t, nil
}

// CosetReps returns representatives of the right cosets of Gamma0(N) in
// SL2(Z), one lift per point of P^1(Z/N).
func (g *Group) CosetReps() ([]SL2Mat, error) {
	if g.kind != KindGamma0 {
		return nil, fmt.Errorf("congroup: CosetReps applies to Gamma0 groups, not %v", g)
	}
	pts, err := P1List(g.n)
	if err != nil {
		return nil, err
	}
	reps := make([]SL2Mat, len(pts))
	for i, p := range pts {
		m, err := LiftToSL2Z(p.C, p.D, g.n)
		if err != nil {
			return nil, err
		}
		reps[i] = m
	}
	return reps, nil
}

// ReduceCoset reduces the Manin symbol (u, v) to its canonical form modulo
// the group.
func (g *Group) ReduceCoset(u, v int64) (int64, int64, error) {
	t, err := g.ReductionTables()
	if err != nil {
		return 0, 0, err
	}
	ru, rv := t.ReduceCoset(u, v)
	return ru, rv, nil
}

// Cusp is a point u/v of P^1(Q), with v = 0 denoting infinity. Canonical
// cusps are in lowest terms with nonnegative denominator.
type Cusp struct {
	U, V int64
}

func newCusp(u, v int64) Cusp {
	if v == 0 {
		return Cusp{U: 1, V: 0}
	}
	if u == 0 {
		return Cusp{U: 0, V: 1}
	}
	d := arith.Gcd(u, v)
	u, v = u/d, v/d
	if v < 0 {
		u, v = -u, -v
	}
	return Cusp{U: u, V: v}
}

func (c Cusp) String() string {
	if c.V == 0 {
		return "oo"
	}
	if c.V == 1 {
		return fmt.Sprintf("%d", c.U)
	}
	return fmt.Sprintf("%d/%d", c.U, c.V)
}

// ReduceCusp returns a canonical form of the cusp u/v modulo the group,
// together with the sign carrying the equivalence: two cusps u1/v1 and u2/v2
// are equivalent when v1 = s*h*v2 mod N and u1 = s*h^-1*u2 mod gcd(v1, N)
// for some h in H and sign s.
func (g *Group) ReduceCusp(u, v int64) (Cusp, int, error) {
	t, err := g.ReductionTables()
	if err != nil {
		return Cusp{}, 0, err
	}
	n := g.n
	u = ((u % n) + n) % n
	v = ((v % n) + n) % n
	if u == 0 {
		return newCusp(0, 1), 1, nil
	}
	if v == 0 {
		return newCusp(1, 0), 1, nil
	}

	gcdVN := t.first[v].Gcd
	h := t.first[v].Scale
	v = t.first[v].Rep
	d := t.first[v].Gcd
	if d == 1 {
		u, v = 0, 1
	} else {
		hinv, err := arith.InverseMod(h, gcdVN)
		if err != nil {
			return Cusp{}, 0, err
		}
		u = hinv * u % d
		if hc := t.second[d]; len(hc) > 1 {
			// u is refined in place while scanning, matching the
			// sequential minimization of reduceCoset
			umin := u
			for _, x := range hc {
				if u1 := u * x % d; u1 < umin {
					umin = u1
				}
				u = umin
			}
		}
	}
	sign := 1
	if u > n/2 {
		u = n/2 - u
		v = n/2 - v
		sign = -1
	}
	return newCusp(u, v), sign, nil
}
