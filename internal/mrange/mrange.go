// Package mrange iterates over products of integer ranges in odometer order,
// most significant digit first. It backs exhaustive searches over coefficient
// words and generator-image tuples.
package mrange

// Iter walks tuples (x_0, ..., x_{k-1}) with 0 <= x_i < radix[i].
type Iter struct {
	radix []int
	cur   []int
	done  bool
}

// New returns an iterator over the product of the given ranges. The product
// is empty if the radix list is empty or contains a non-positive entry.
func New(radix []int) *Iter {
	it := &Iter{radix: radix, cur: make([]int, len(radix))}
	if len(radix) == 0 {
		it.done = true
	}
	for _, r := range radix {
		if r <= 0 {
			it.done = true
		}
	}
	return it
}

// Uniform returns an iterator over k digits each in [0, n).
func Uniform(n, k int) *Iter {
	radix := make([]int, k)
	for i := range radix {
		radix[i] = n
	}
	return New(radix)
}

// Next stores the next tuple into dst and reports whether one was produced.
// dst must have length len(radix).
func (it *Iter) Next(dst []int) bool {
	if it.done {
		return false
	}
	copy(dst, it.cur)
	for i := len(it.cur) - 1; ; i-- {
		if i < 0 {
			it.done = true
			break
		}
		it.cur[i]++
		if it.cur[i] < it.radix[i] {
			break
		}
		it.cur[i] = 0
	}
	return true
}
