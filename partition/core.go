package partition

import "fmt"

// kSkew builds the k-skew diagram of a k-bounded partition, returning the
// inner and outer shapes. Rows are added from the bottom up, each shifted
// right by the least amount keeping every cell's hook length at most k. The
// outer shape is the (k+1)-core associated to p.
func kSkew(p Partition, k int) (inner, outer Partition) {
	if len(p) == 0 {
		return nil, nil
	}
	innerRest, outerRest := kSkew(p[1:], k)
	p0 := p[0]
	ok := func(shift int) bool {
		if len(outerRest) > 0 && shift+p0 < outerRest[0] {
			return false
		}
		if len(innerRest) > 0 && shift < innerRest[0] {
			return false
		}
		for j := shift; j < shift+p0; j++ {
			leg := 0
			for i := range outerRest {
				if innerRest[i] <= j && j < outerRest[i] {
					leg++
				} else {
					break
				}
			}
			if (shift+p0-1-j)+leg+1 > k {
				return false
			}
		}
		return true
	}
	shift := 0
	for !ok(shift) {
		shift++
	}
	inner = append(Partition{shift}, innerRest...)
	outer = append(Partition{shift + p0}, outerRest...)
	return inner, outer
}

// ToCore returns the (k+1)-core corresponding to the k-bounded partition p.
func ToCore(p Partition, k int) (Partition, error) {
	if k < 1 {
		return nil, fmt.Errorf("partition: k must be at least 1, got %d", k)
	}
	if len(p) > 0 && p[0] > k {
		return nil, fmt.Errorf("partition: %v is not %d-bounded", p, k)
	}
	_, outer := kSkew(p, k)
	// rows of the inner shape may be zero-width after trimming
	out := make(Partition, 0, len(outer))
	for _, x := range outer {
		if x > 0 {
			out = append(out, x)
		}
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

// FromCore returns the k-bounded partition corresponding to a (k+1)-core c:
// each row keeps the cells whose hook length is at most k.
func FromCore(c Partition, k int) Partition {
	cc := c.Conjugate()
	var out Partition
	for i := range c {
		cnt := 0
		for j := 0; j < c[i]; j++ {
			if (c[i]-j-1)+(cc[j]-i-1)+1 <= k {
				cnt++
			}
		}
		if cnt > 0 {
			out = append(out, cnt)
		}
	}
	return out
}

// KConjugate returns the k-conjugate of the k-bounded partition p: the
// k-bounded partition of the transposed (k+1)-core.
func KConjugate(p Partition, k int) (Partition, error) {
	if len(p) == 0 {
		return nil, nil
	}
	c, err := ToCore(p, k)
	if err != nil {
		return nil, err
	}
	return FromCore(c.Conjugate(), k), nil
}
