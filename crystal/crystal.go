// Package crystal implements type A crystals on tableau reading words. A
// word lists letters in 1..n+1 (column reading, bottom to top within each
// column); the raising and lowering operators act through the signature rule
// on the bracketing of +/- marks, and tensor products concatenate words.
package crystal

import (
	"fmt"
	"sort"

	"combinat-kernel/internal/mrange"
	"combinat-kernel/partition"
)

// Word is a crystal element: a sequence of letters in 1..n+1.
type Word []int

// Key returns a string usable as a map key.
func (w Word) Key() string {
	return fmt.Sprintf("%v", []int(w))
}

// Crystal is the type A_n letter crystal and the word crystals built on it.
type Crystal struct {
	n int
}

// New returns the type A_n crystal operators, acting on letters 1..n+1.
func New(n int) (*Crystal, error) {
	if n < 1 {
		return nil, fmt.Errorf("crystal: rank must be at least 1, got %d", n)
	}
	return &Crystal{n: n}, nil
}

// Rank returns n.
func (c *Crystal) Rank() int { return c.n }

// Letters returns the number of letters, n+1.
func (c *Crystal) Letters() int { return c.n + 1 }

// Valid reports whether every letter of w lies in 1..n+1.
func (c *Crystal) Valid(w Word) bool {
	for _, x := range w {
		if x < 1 || x > c.n+1 {
			return false
		}
	}
	return true
}

// unmatchedMinus returns the positions of unmatched minus marks for index i,
// scanning left to right. With dual set it returns unmatched plus marks; with
// reverse set the scan runs right to left (positions still refer to w).
func unmatchedMinus(w Word, i int, dual, reverse bool) []int {
	n := len(w)
	var out []int
	height := 0
	for k := 0; k < n; k++ {
		j := k
		if reverse {
			j = n - 1 - k
		}
		x := w[j]
		minus, plus := 0, 0
		if x == i {
			minus = 1
		}
		if x == i+1 {
			plus = 1
		}
		if dual {
			minus, plus = plus, minus
		}
		if height-minus < 0 {
			out = append(out, j)
			height = plus
		} else {
			height = height - minus + plus
		}
	}
	return out
}

func unmatchedPlus(w Word, i int) []int {
	lst := unmatchedMinus(w, i, true, true)
	// positions come out right to left
	for a, b := 0, len(lst)-1; a < b; a, b = a+1, b-1 {
		lst[a], lst[b] = lst[b], lst[a]
	}
	return lst
}

// E applies the raising operator e_i, turning the first unmatched i+1 into i.
// It returns nil when e_i annihilates w.
func (c *Crystal) E(w Word, i int) Word {
	if i < 1 || i > c.n {
		return nil
	}
	pos := unmatchedPlus(w, i)
	if len(pos) == 0 {
		return nil
	}
	out := make(Word, len(w))
	copy(out, w)
	out[pos[0]] = i
	return out
}

// F applies the lowering operator f_i, turning the last unmatched i into i+1.
// It returns nil when f_i annihilates w.
func (c *Crystal) F(w Word, i int) Word {
	if i < 1 || i > c.n {
		return nil
	}
	pos := unmatchedMinus(w, i, false, false)
	if len(pos) == 0 {
		return nil
	}
	out := make(Word, len(w))
	copy(out, w)
	out[pos[len(pos)-1]] = i + 1
	return out
}

// Epsilon returns the largest m with e_i^m(w) nonzero.
func (c *Crystal) Epsilon(w Word, i int) int {
	return len(unmatchedPlus(w, i))
}

// Phi returns the largest m with f_i^m(w) nonzero.
func (c *Crystal) Phi(w Word, i int) int {
	return len(unmatchedMinus(w, i, false, false))
}

// IsHighestWeight reports whether every e_i annihilates w.
func (c *Crystal) IsHighestWeight(w Word) bool {
	for i := 1; i <= c.n; i++ {
		if c.Epsilon(w, i) > 0 {
			return false
		}
	}
	return true
}

// Weight returns the content of w: entry j counts occurrences of letter j+1.
func (c *Crystal) Weight(w Word) []int {
	wt := make([]int, c.n+1)
	for _, x := range w {
		wt[x-1]++
	}
	return wt
}

// TableauGenerator returns the reading word of the highest-weight tableau of
// the given shape: column j holds the letters p'[j] down to 1, read bottom to
// top.
func (c *Crystal) TableauGenerator(shape partition.Partition) (Word, error) {
	if !shape.Valid() {
		return nil, fmt.Errorf("crystal: invalid shape %v", shape)
	}
	if len(shape) > c.n+1 {
		return nil, fmt.Errorf("crystal: shape %v has more than %d rows", shape, c.n+1)
	}
	conj := shape.Conjugate()
	var w Word
	for _, h := range conj {
		for i := 0; i < h; i++ {
			w = append(w, h-i)
		}
	}
	return w, nil
}

// Generate returns the closure of the generators under all e_i and f_i,
// sorted lexicographically.
func (c *Crystal) Generate(gens []Word) []Word {
	seen := map[string]Word{}
	var frontier []Word
	for _, g := range gens {
		if _, ok := seen[g.Key()]; !ok {
			seen[g.Key()] = g
			frontier = append(frontier, g)
		}
	}
	for len(frontier) > 0 {
		var next []Word
		for _, w := range frontier {
			for i := 1; i <= c.n; i++ {
				for _, v := range []Word{c.E(w, i), c.F(w, i)} {
					if v == nil {
						continue
					}
					if _, ok := seen[v.Key()]; !ok {
						seen[v.Key()] = v
						next = append(next, v)
					}
				}
			}
		}
		frontier = next
	}
	out := make([]Word, 0, len(seen))
	for _, w := range seen {
		out = append(out, w)
	}
	sort.Slice(out, func(a, b int) bool { return less(out[a], out[b]) })
	return out
}

func less(a, b Word) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

// HighestWeightWords scans every word of the given length over the letters
// 1..n+1 and returns the ones annihilated by all e_i, in lexicographic
// order. These generate the full word crystal of that length.
func (c *Crystal) HighestWeightWords(length int) []Word {
	var out []Word
	buf := make([]int, length)
	it := mrange.Uniform(c.n+1, length)
	for it.Next(buf) {
		w := make(Word, length)
		for i, x := range buf {
			w[i] = x + 1
		}
		if c.IsHighestWeight(w) {
			out = append(out, w)
		}
	}
	return out
}

// OfWords returns the crystal of all words of the given length, together
// with its highest-weight words.
func (c *Crystal) OfWords(length int) (elements, highest []Word) {
	highest = c.HighestWeightWords(length)
	return c.Generate(highest), highest
}

// OfTableaux returns all elements of the crystal of tableaux of the given
// shape.
func (c *Crystal) OfTableaux(shape partition.Partition) ([]Word, error) {
	g, err := c.TableauGenerator(shape)
	if err != nil {
		return nil, err
	}
	return c.Generate([]Word{g}), nil
}

// ToTableau arranges a word of the crystal of the given shape into tableau
// rows. The word must list the columns left to right, each read bottom to
// top.
func (c *Crystal) ToTableau(w Word, shape partition.Partition) ([][]int, error) {
	if !shape.Valid() {
		return nil, fmt.Errorf("crystal: invalid shape %v", shape)
	}
	if len(w) != shape.Size() {
		return nil, fmt.Errorf("crystal: word of length %d does not fill shape %v", len(w), shape)
	}
	rows := make([][]int, len(shape))
	for i, r := range shape {
		rows[i] = make([]int, r)
	}
	pos := 0
	conj := shape.Conjugate()
	for j, h := range conj {
		for i := h - 1; i >= 0; i-- {
			rows[i][j] = w[pos]
			pos++
		}
	}
	return rows, nil
}

// FromTableau returns the reading word of a semistandard tableau given by
// its rows. Row lengths must form a partition, rows must weakly increase and
// columns strictly increase, with letters in 1..n+1.
func (c *Crystal) FromTableau(rows [][]int) (Word, error) {
	shape := make(partition.Partition, len(rows))
	for i, r := range rows {
		shape[i] = len(r)
	}
	if !shape.Valid() {
		return nil, fmt.Errorf("crystal: row lengths %v do not form a partition", shape)
	}
	for i, r := range rows {
		for j, x := range r {
			if x < 1 || x > c.n+1 {
				return nil, fmt.Errorf("crystal: entry %d out of range at row %d", x, i+1)
			}
			if j > 0 && r[j-1] > x {
				return nil, fmt.Errorf("crystal: row %d is not weakly increasing", i+1)
			}
			if i > 0 && j < len(rows[i-1]) && rows[i-1][j] >= x {
				return nil, fmt.Errorf("crystal: column %d is not strictly increasing", j+1)
			}
		}
	}
	var w Word
	for j, h := range shape.Conjugate() {
		for i := h - 1; i >= 0; i-- {
			w = append(w, rows[i][j])
		}
	}
	return w, nil
}

// TensorProduct returns the full tensor product of two crystals given by
// their element lists: words are concatenated, and the product decomposes
// into the components generated by its highest-weight words.
func (c *Crystal) TensorProduct(left, right []Word) (elements, highest []Word) {
	for _, a := range left {
		for _, b := range right {
			w := make(Word, 0, len(a)+len(b))
			w = append(w, a...)
			w = append(w, b...)
			if c.IsHighestWeight(w) {
				highest = append(highest, w)
			}
		}
	}
	return c.Generate(highest), highest
}
