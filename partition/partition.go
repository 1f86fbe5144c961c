// Package partition implements integer partitions: enumeration in
// reverse-lexicographic order, conjugation, containment and strip tests,
// dominance, and the bijection between k-bounded partitions and (k+1)-cores
// that underlies the k-Schur basis.
package partition

import (
	"fmt"
	"sort"
)

// Partition is a weakly decreasing sequence of positive integers. The empty
// partition is the nil slice.
type Partition []int

// Valid reports whether p is weakly decreasing with positive parts.
func (p Partition) Valid() bool {
	for i, x := range p {
		if x <= 0 {
			return false
		}
		if i > 0 && x > p[i-1] {
			return false
		}
	}
	return true
}

// Size returns the number of boxes |p|.
func (p Partition) Size() int {
	s := 0
	for _, x := range p {
		s += x
	}
	return s
}

// Equal reports whether p and q are the same partition.
func (p Partition) Equal(q Partition) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Copy returns an independent copy of p.
func (p Partition) Copy() Partition {
	if len(p) == 0 {
		return nil
	}
	q := make(Partition, len(p))
	copy(q, p)
	return q
}

// String renders p in bracket form, e.g. [3 1 1].
func (p Partition) String() string {
	return fmt.Sprintf("%v", []int(p))
}

// Key returns a string usable as a map key.
func (p Partition) Key() string {
	return p.String()
}

// Conjugate returns the transposed partition.
func (p Partition) Conjugate() Partition {
	if len(p) == 0 {
		return nil
	}
	out := make(Partition, p[0])
	for j := 0; j < p[0]; j++ {
		for _, x := range p {
			if x > j {
				out[j]++
			}
		}
	}
	return out
}

// Contains reports whether the diagram of p contains the diagram of q.
func (p Partition) Contains(q Partition) bool {
	if len(q) > len(p) {
		return false
	}
	for i := range q {
		if q[i] > p[i] {
			return false
		}
	}
	return true
}

// part returns p[i] with trailing zeros.
func (p Partition) part(i int) int {
	if i < len(p) {
		return p[i]
	}
	return 0
}

// IsHorizontalStrip reports whether p/q is a horizontal strip: q contained in
// p with at most one box added per column.
func IsHorizontalStrip(p, q Partition) bool {
	if !p.Contains(q) {
		return false
	}
	pc, qc := p.Conjugate(), q.Conjugate()
	for i := range pc {
		if pc[i]-qc.part(i) > 1 {
			return false
		}
	}
	return true
}

// IsVerticalStrip reports whether p/q is a vertical strip: q contained in p
// with at most one box added per row.
func IsVerticalStrip(p, q Partition) bool {
	if !p.Contains(q) {
		return false
	}
	for i := range p {
		if p[i]-q.part(i) > 1 {
			return false
		}
	}
	return true
}

// DominatedBy reports whether p <= q in dominance order. Both partitions must
// have the same size for the order to be meaningful.
func (p Partition) DominatedBy(q Partition) bool {
	sp, sq := 0, 0
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	for i := 0; i < n; i++ {
		sp += p.part(i)
		sq += q.part(i)
		if sp > sq {
			return false
		}
	}
	return true
}

// Union returns the partition whose multiset of parts is the union of the
// parts of p and q.
func Union(p, q Partition) Partition {
	out := make(Partition, 0, len(p)+len(q))
	out = append(out, p...)
	out = append(out, q...)
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

// Gen returns all partitions of n with parts at most maxPart, in
// reverse-lexicographic order ([n], [n-1,1], ...). maxPart <= 0 means no
// bound.
func Gen(n, maxPart int) []Partition {
	if maxPart <= 0 || maxPart > n {
		maxPart = n
	}
	var out []Partition
	var rec func(rem, mp int, prefix Partition)
	rec = func(rem, mp int, prefix Partition) {
		if rem == 0 {
			out = append(out, prefix.Copy())
			return
		}
		first := mp
		if rem < first {
			first = rem
		}
		for ; first >= 1; first-- {
			rec(rem-first, first, append(prefix, first))
		}
	}
	rec(n, maxPart, nil)
	return out
}

// HookLength returns the hook length of the cell (i, j) of p, 0-indexed.
func (p Partition) HookLength(i, j int) int {
	pc := p.Conjugate()
	return (p[i] - j - 1) + (pc[j] - i - 1) + 1
}
