package symfunc

import (
	"math/big"
	"sort"

	"combinat-kernel/partition"
)

// kostkaCache memoizes Kostka numbers across calls.
var kostkaCache = map[string]*big.Int{}

// Kostka returns the Kostka number K[mu][lam]: the number of semistandard
// tableaux of shape mu and content lam. It is computed by peeling the cells
// holding the largest entry, which form a horizontal strip.
func Kostka(mu, lam partition.Partition) *big.Int {
	if mu.Size() != lam.Size() {
		return big.NewInt(0)
	}
	key := mu.Key() + "|" + lam.Key()
	if v, ok := kostkaCache[key]; ok {
		return new(big.Int).Set(v)
	}
	var res *big.Int
	if len(lam) == 0 {
		if len(mu) == 0 {
			res = big.NewInt(1)
		} else {
			res = big.NewInt(0)
		}
	} else {
		r := lam[len(lam)-1]
		rest := lam[:len(lam)-1]
		res = big.NewInt(0)
		for _, nu := range partition.Gen(mu.Size()-r, 0) {
			if partition.IsHorizontalStrip(mu, nu) {
				res.Add(res, Kostka(nu, rest))
			}
		}
	}
	kostkaCache[key] = res
	return new(big.Int).Set(res)
}

// HomogeneousInSchur expands h_lam in the Schur basis:
// h_lam = sum_mu K[mu][lam] s_mu.
func HomogeneousInSchur(lam partition.Partition) *Expansion {
	out := NewExpansion()
	for _, mu := range partition.Gen(lam.Size(), 0) {
		k := Kostka(mu, lam)
		if k.Sign() != 0 {
			out.Add(mu, new(big.Rat).SetInt(k))
		}
	}
	return out
}

// SchurInHomogeneous expands s_lam in the homogeneous basis by the
// Jacobi-Trudi determinant s_lam = det(h_{lam_i - i + j}), expanded over
// permutations. Entries with negative subscript vanish and h_0 = 1.
func SchurInHomogeneous(lam partition.Partition) *Expansion {
	out := NewExpansion()
	n := len(lam)
	if n == 0 {
		out.Add(nil, big.NewRat(1, 1))
		return out
	}
	used := make([]bool, n)
	var rec func(i, inversions int, parts []int)
	rec = func(i, inversions int, parts []int) {
		if i == n {
			mu := make(partition.Partition, len(parts))
			copy(mu, parts)
			sort.Sort(sort.Reverse(sort.IntSlice(mu)))
			sign := int64(1)
			if inversions%2 == 1 {
				sign = -1
			}
			out.Add(mu, big.NewRat(sign, 1))
			return
		}
		for j := 0; j < n; j++ {
			if used[j] {
				continue
			}
			r := lam[i] - i + j
			if r < 0 {
				continue
			}
			inv := 0
			for jj := j + 1; jj < n; jj++ {
				if used[jj] {
					inv++
				}
			}
			used[j] = true
			if r > 0 {
				parts = append(parts, r)
			}
			rec(i+1, inversions+inv, parts)
			if r > 0 {
				parts = parts[:len(parts)-1]
			}
			used[j] = false
		}
	}
	rec(0, 0, nil)
	return out
}

// Omega applies the involution omega to a Schur expansion, transposing every
// indexing partition.
func Omega(e *Expansion) *Expansion {
	out := NewExpansion()
	for _, t := range e.Terms() {
		out.Add(t.Mu.Conjugate(), t.C)
	}
	return out
}
