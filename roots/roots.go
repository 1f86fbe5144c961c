// Package roots implements finite Cartan types: Cartan matrices, the
// symmetrizer, positive roots generated by simple reflections, and the Weyl
// dimension formula for highest-weight representations.
package roots

import (
	"fmt"
	"math/big"
)

// CartanType names a finite irreducible root system.
type CartanType struct {
	Letter byte // 'A'..'G'
	Rank   int
}

// NewCartanType validates the (letter, rank) pair against the finite
// classification.
func NewCartanType(letter byte, rank int) (CartanType, error) {
	ok := false
	switch letter {
	case 'A':
		ok = rank >= 1
	case 'B', 'C':
		ok = rank >= 2
	case 'D':
		ok = rank >= 3
	case 'E':
		ok = rank >= 6 && rank <= 8
	case 'F':
		ok = rank == 4
	case 'G':
		ok = rank == 2
	}
	if !ok {
		return CartanType{}, fmt.Errorf("roots: no finite Cartan type %c%d", letter, rank)
	}
	return CartanType{Letter: letter, Rank: rank}, nil
}

func (ct CartanType) String() string {
	return fmt.Sprintf("%c%d", ct.Letter, ct.Rank)
}

// Dual returns the Langlands dual type: B and C swap, all other types are
// self-dual.
func (ct CartanType) Dual() CartanType {
	switch ct.Letter {
	case 'B':
		return CartanType{Letter: 'C', Rank: ct.Rank}
	case 'C':
		return CartanType{Letter: 'B', Rank: ct.Rank}
	}
	return ct
}

// CartanMatrix returns the Cartan matrix A with A[i][j] = <alpha_j,
// alpha_i^vee>, with nodes numbered as in Bourbaki.
func (ct CartanType) CartanMatrix() [][]int {
	n := ct.Rank
	A := make([][]int, n)
	for i := range A {
		A[i] = make([]int, n)
		A[i][i] = 2
	}
	link := func(i, j int) {
		A[i][j] = -1
		A[j][i] = -1
	}
	switch ct.Letter {
	case 'A', 'B', 'C', 'D':
		for i := 0; i < n-1; i++ {
			link(i, i+1)
		}
	}
	switch ct.Letter {
	case 'B':
		// alpha_n short
		A[n-2][n-1] = -1
		A[n-1][n-2] = -2
	case 'C':
		A[n-2][n-1] = -2
		A[n-1][n-2] = -1
	case 'D':
		A[n-2][n-1] = 0
		A[n-1][n-2] = 0
		link(n-3, n-1)
	case 'E':
		// chain 1-3-4-5-6(-7)(-8) with node 2 on node 4
		for i := range A {
			for j := range A[i] {
				if i != j {
					A[i][j] = 0
				}
			}
		}
		edges := [][2]int{{1, 3}, {3, 4}, {4, 5}, {5, 6}, {2, 4}}
		if n >= 7 {
			edges = append(edges, [2]int{6, 7})
		}
		if n == 8 {
			edges = append(edges, [2]int{7, 8})
		}
		for _, e := range edges {
			link(e[0]-1, e[1]-1)
		}
	case 'F':
		// 1-2=>3-4, alpha_1, alpha_2 long
		link(0, 1)
		A[1][2] = -1
		A[2][1] = -2
		link(2, 3)
	case 'G':
		// alpha_1 short
		A[0][1] = -3
		A[1][0] = -1
	}
	return A
}

// Symmetrizer returns positive rationals d_i with d_i A[i][j] = d_j A[j][i],
// normalized so d_0 = 1.
func (ct CartanType) Symmetrizer() []*big.Rat {
	A := ct.CartanMatrix()
	n := ct.Rank
	d := make([]*big.Rat, n)
	d[0] = big.NewRat(1, 1)
	for {
		progress := false
		missing := false
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if A[i][j] == 0 || d[i] == nil {
					continue
				}
				if d[j] == nil {
					r := big.NewRat(int64(A[i][j]), int64(A[j][i]))
					d[j] = new(big.Rat).Mul(d[i], r)
					progress = true
				}
			}
		}
		for _, x := range d {
			if x == nil {
				missing = true
			}
		}
		if !missing || !progress {
			break
		}
	}
	return d
}

// PositiveRoots returns the positive roots in the basis of simple roots,
// computed as the closure of the simple roots under simple reflections.
func (ct CartanType) PositiveRoots() [][]int {
	A := ct.CartanMatrix()
	n := ct.Rank
	key := func(r []int) string { return fmt.Sprintf("%v", r) }
	seen := map[string][]int{}
	var frontier [][]int
	for i := 0; i < n; i++ {
		r := make([]int, n)
		r[i] = 1
		seen[key(r)] = r
		frontier = append(frontier, r)
	}
	for len(frontier) > 0 {
		var next [][]int
		for _, r := range frontier {
			for i := 0; i < n; i++ {
				// pairing <r, alpha_i^vee>
				c := 0
				for j := 0; j < n; j++ {
					c += r[j] * A[i][j]
				}
				s := make([]int, n)
				copy(s, r)
				s[i] -= c
				if _, found := seen[key(s)]; !found {
					seen[key(s)] = s
					next = append(next, s)
				}
			}
		}
		frontier = next
	}
	var pos [][]int
	for _, r := range seen {
		nonneg, nonzero := true, false
		for _, x := range r {
			if x < 0 {
				nonneg = false
			}
			if x > 0 {
				nonzero = true
			}
		}
		if nonneg && nonzero {
			pos = append(pos, r)
		}
	}
	return pos
}

// WeylDim returns the dimension of the irreducible highest-weight
// representation with highest weight sum coeffs[i] * Lambda_i, by the Weyl
// dimension formula.
func (ct CartanType) WeylDim(coeffs []int) (*big.Int, error) {
	if len(coeffs) != ct.Rank {
		return nil, fmt.Errorf("roots: want %d fundamental weight coefficients, got %d",
			ct.Rank, len(coeffs))
	}
	for _, c := range coeffs {
		if c < 0 {
			return nil, fmt.Errorf("roots: weight coefficients must be non-negative, got %v", coeffs)
		}
	}
	d := ct.Symmetrizer()
	num := big.NewRat(1, 1)
	den := big.NewRat(1, 1)
	for _, r := range ct.PositiveRoots() {
		top := new(big.Rat)
		bot := new(big.Rat)
		for j, m := range r {
			if m == 0 {
				continue
			}
			md := new(big.Rat).Mul(big.NewRat(int64(m), 1), d[j])
			top.Add(top, new(big.Rat).Mul(md, big.NewRat(int64(coeffs[j]+1), 1)))
			bot.Add(bot, md)
		}
		num.Mul(num, top)
		den.Mul(den, bot)
	}
	q := num.Quo(num, den)
	if !q.IsInt() {
		return nil, fmt.Errorf("roots: dimension %s is not an integer for %s", q, ct)
	}
	return new(big.Int).Set(q.Num()), nil
}
