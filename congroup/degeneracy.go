package congroup

import (
	"encoding/binary"
	"fmt"

	"combinat-kernel/arith"

	"github.com/tuneinsight/lattigo/v4/utils"
)

// randRange draws a uniform integer in [lo, hi] from the PRNG.
func randRange(prng utils.PRNG, lo, hi int64) (int64, error) {
	span := uint64(hi - lo + 1)
	var buf [8]byte
	if _, err := prng.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("congroup: prng read: %w", err)
	}
	return lo + int64(binary.BigEndian.Uint64(buf[:])%span), nil
}

// DegeneracyCosetRepsGamma0 returns coset representatives for the degeneracy
// map of level t between Gamma0(N) and Gamma0(M), where M | N and
// t | (N/M). Representatives are found by random search in Gamma0(M),
// keeping a matrix when it is inequivalent modulo t in the first row and
// modulo N/t in the second row to all matrices kept so far. The search is
// deterministic given the PRNG.
func DegeneracyCosetRepsGamma0(n, m, t int64, prng utils.PRNG) ([]SL2Mat, error) {
	if n <= 0 || m <= 0 || t <= 0 {
		return nil, fmt.Errorf("congroup: levels must be positive, got N=%d, M=%d, t=%d", n, m, t)
	}
	if n%m != 0 {
		return nil, fmt.Errorf("congroup: M=%d must divide N=%d", m, n)
	}
	if (n/m)%t != 0 {
		return nil, fmt.Errorf("congroup: t=%d must divide N/M=%d", t, n/m)
	}
	idxN, err := arith.IndexGamma0(n)
	if err != nil {
		return nil, err
	}
	idxM, err := arith.IndexGamma0(m)
	if err != nil {
		return nil, err
	}
	count := idxN / idxM
	nDivT := n / t
	halfmax := 2 * (count + 10)
	budget := halfmax * count

	var reps []SL2Mat
	misses := int64(0)
	for int64(len(reps)) < count {
		if misses >= budget {
			return nil, fmt.Errorf("congroup: found %d of %d representatives after %d draws without progress", len(reps), count, budget)
		}
		misses++
		r, err := randRange(prng, -halfmax, halfmax)
		if err != nil {
			return nil, err
		}
		cc := m * r
		dd, err := randRange(prng, -halfmax, halfmax)
		if err != nil {
			return nil, err
		}
		g, bb, aa := arith.Xgcd(-cc, dd)
		if g == 0 {
			continue
		}
		cc /= g
		dd /= g
		if cc%m != 0 {
			continue
		}
		cand := SL2Mat{A: aa, B: bb, C: cc, D: dd}
		isNew := true
		for _, r := range reps {
			if (r.B*cand.A-r.A*cand.B)%t == 0 && (r.D*cand.C-r.C*cand.D)%nDivT == 0 {
				isNew = false
				break
			}
		}
		if isNew {
			reps = append(reps, cand)
			misses = 0
		}
	}
	out := make([]SL2Mat, len(reps))
	for i, r := range reps {
		out[i] = SL2Mat{A: r.A, B: r.B, C: r.C * t, D: r.D * t}
	}
	return out, nil
}
