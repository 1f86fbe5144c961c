package symfunc

import (
	"math/big"
	"sort"

	"combinat-kernel/internal/mrange"
	"combinat-kernel/partition"
)

// TensorTerm is one term of an element of the tensor square of the ring,
// c * (b_Left tensor b_Right).
type TensorTerm struct {
	Left, Right partition.Partition
	C           *big.Rat
}

// HomogeneousCoproduct returns the coproduct of h_lam. Each part r splits as
// h_i tensor h_{r-i}, and the splittings multiply across parts, so the terms
// run over all ways of distributing the parts' contents between the two
// factors.
func HomogeneousCoproduct(lam partition.Partition) []TensorTerm {
	if len(lam) == 0 {
		return []TensorTerm{{C: big.NewRat(1, 1)}}
	}
	radix := make([]int, len(lam))
	for i, r := range lam {
		radix[i] = r + 1
	}
	acc := map[string]*TensorTerm{}
	one := big.NewRat(1, 1)
	split := make([]int, len(lam))
	it := mrange.New(radix)
	for it.Next(split) {
		var left, right partition.Partition
		for i, r := range lam {
			if split[i] > 0 {
				left = append(left, split[i])
			}
			if r-split[i] > 0 {
				right = append(right, r-split[i])
			}
		}
		sort.Sort(sort.Reverse(sort.IntSlice(left)))
		sort.Sort(sort.Reverse(sort.IntSlice(right)))
		k := left.Key() + "|" + right.Key()
		if t, ok := acc[k]; ok {
			t.C.Add(t.C, one)
		} else {
			acc[k] = &TensorTerm{Left: left, Right: right, C: big.NewRat(1, 1)}
		}
	}
	out := make([]TensorTerm, 0, len(acc))
	for _, t := range acc {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Left.Equal(out[j].Left) {
			return revLexLess(out[i].Left, out[j].Left)
		}
		return revLexLess(out[i].Right, out[j].Right)
	})
	return out
}
