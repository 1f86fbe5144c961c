package symfunc

import (
	"fmt"
	"math/big"

	"combinat-kernel/partition"
)

// KBounded is the subspace of symmetric functions spanned by the k-Schur
// functions at t = 1, indexed by k-bounded partitions.
type KBounded struct {
	K int
}

// NewKBounded returns the k-bounded subspace for k >= 1.
func NewKBounded(k int) (KBounded, error) {
	if k < 1 {
		return KBounded{}, fmt.Errorf("symfunc: k must be at least 1, got %d", k)
	}
	return KBounded{K: k}, nil
}

// WeakHorizontalStrips returns the k-bounded partitions lam with
// |lam| = |mu| + r such that lam/mu is a horizontal strip and the k-conjugate
// of lam over the k-conjugate of mu is a vertical strip.
func (kb KBounded) WeakHorizontalStrips(mu partition.Partition, r int) ([]partition.Partition, error) {
	muk, err := partition.KConjugate(mu, kb.K)
	if err != nil {
		return nil, err
	}
	var out []partition.Partition
	for _, lam := range partition.Gen(mu.Size()+r, kb.K) {
		if !partition.IsHorizontalStrip(lam, mu) {
			continue
		}
		lamk, err := partition.KConjugate(lam, kb.K)
		if err != nil {
			return nil, err
		}
		if partition.IsVerticalStrip(lamk, muk) {
			out = append(out, lam)
		}
	}
	return out, nil
}

// HomogeneousInKSchur expands h_lam in the k-Schur basis by the weak Pieri
// rule, multiplying in the parts of lam from largest to smallest. lam must
// be k-bounded.
func (kb KBounded) HomogeneousInKSchur(lam partition.Partition) (*Expansion, error) {
	if len(lam) > 0 && lam[0] > kb.K {
		return nil, fmt.Errorf("symfunc: %v is not %d-bounded", lam, kb.K)
	}
	cur := Monomial(nil, big.NewRat(1, 1))
	for _, r := range lam {
		next := NewExpansion()
		for _, t := range cur.Terms() {
			strips, err := kb.WeakHorizontalStrips(t.Mu, r)
			if err != nil {
				return nil, err
			}
			for _, nu := range strips {
				next.Add(nu, t.C)
			}
		}
		cur = next
	}
	return cur, nil
}

// KSchurInHomogeneous expands ks_lam in the homogeneous basis by inverting
// the unitriangular weak Pieri expansion in degree |lam|.
func (kb KBounded) KSchurInHomogeneous(lam partition.Partition) (*Expansion, error) {
	rows, err := kb.kSchurToH(lam.Size())
	if err != nil {
		return nil, err
	}
	e, ok := rows[lam.Key()]
	if !ok {
		return nil, fmt.Errorf("symfunc: %v is not %d-bounded", lam, kb.K)
	}
	return e, nil
}

// kSchurToH inverts the matrix of h_lam in ks_mu over all k-bounded
// partitions of n. The result maps each lam to the h-expansion of ks_lam.
func (kb KBounded) kSchurToH(n int) (map[string]*Expansion, error) {
	plist := partition.Gen(n, kb.K)
	m := len(plist)
	idx := map[string]int{}
	for i, p := range plist {
		idx[p.Key()] = i
	}
	// M[i][j] = coefficient of ks_{plist[j]} in h_{plist[i]}
	M := make([][]*big.Rat, m)
	A := make([][]*big.Rat, m)
	for i, p := range plist {
		h, err := kb.HomogeneousInKSchur(p)
		if err != nil {
			return nil, err
		}
		M[i] = make([]*big.Rat, m)
		A[i] = make([]*big.Rat, m)
		for j := range plist {
			M[i][j] = new(big.Rat)
			A[i][j] = new(big.Rat)
		}
		A[i][i].SetInt64(1)
		for _, t := range h.Terms() {
			M[i][idx[t.Mu.Key()]].Set(t.C)
		}
	}
	if err := invert(M, A); err != nil {
		return nil, err
	}
	// h_i = sum_j M[i][j] ks_j, so ks_j = sum_i A[j][i] h_i
	out := map[string]*Expansion{}
	for j, lam := range plist {
		e := NewExpansion()
		for i, mu := range plist {
			if A[j][i].Sign() != 0 {
				e.Add(mu, A[j][i])
			}
		}
		out[lam.Key()] = e
	}
	return out, nil
}

// invert performs Gauss-Jordan elimination, turning M into the identity and
// A into M^{-1}.
func invert(M, A [][]*big.Rat) error {
	m := len(M)
	for col := 0; col < m; col++ {
		piv := -1
		for r := col; r < m; r++ {
			if M[r][col].Sign() != 0 {
				piv = r
				break
			}
		}
		if piv < 0 {
			return fmt.Errorf("symfunc: transition matrix is singular")
		}
		M[col], M[piv] = M[piv], M[col]
		A[col], A[piv] = A[piv], A[col]
		d := new(big.Rat).Set(M[col][col])
		for j := 0; j < m; j++ {
			M[col][j].Quo(M[col][j], d)
			A[col][j].Quo(A[col][j], d)
		}
		for r := 0; r < m; r++ {
			if r == col || M[r][col].Sign() == 0 {
				continue
			}
			f := new(big.Rat).Set(M[r][col])
			tmp := new(big.Rat)
			for j := 0; j < m; j++ {
				M[r][j].Sub(M[r][j], tmp.Mul(f, M[col][j]))
				A[r][j].Sub(A[r][j], tmp.Mul(f, A[col][j]))
			}
		}
	}
	return nil
}

// KSchurInSchur lifts ks_lam to the Schur basis of the full ring.
func (kb KBounded) KSchurInSchur(lam partition.Partition) (*Expansion, error) {
	hexp, err := kb.KSchurInHomogeneous(lam)
	if err != nil {
		return nil, err
	}
	out := NewExpansion()
	for _, t := range hexp.Terms() {
		out.AddScaled(HomogeneousInSchur(t.Mu), t.C)
	}
	return out, nil
}

// Lift is the inclusion of the k-bounded subspace into the ring of symmetric
// functions, expressed in the Schur basis.
func (kb KBounded) Lift(lam partition.Partition) (*Expansion, error) {
	return kb.KSchurInSchur(lam)
}

// Retract expands a Schur expansion in the k-Schur basis. An error is
// returned when the function does not lie in the k-bounded subspace.
func (kb KBounded) Retract(schur *Expansion) (*Expansion, error) {
	out := NewExpansion()
	rest := NewExpansion()
	for _, t := range schur.Terms() {
		rest.Add(t.Mu, t.C)
	}
	negOne := big.NewRat(-1, 1)
	for !rest.IsZero() {
		// ks_lam = s_lam + terms that are earlier in reverse-lexicographic
		// order, so the trailing term always indexes the next k-Schur
		// component
		ts := rest.Terms()
		lead := ts[len(ts)-1]
		if len(lead.Mu) > 0 && lead.Mu[0] > kb.K {
			return nil, fmt.Errorf("symfunc: %v term is outside the %d-bounded subspace", lead.Mu, kb.K)
		}
		ks, err := kb.KSchurInSchur(lead.Mu)
		if err != nil {
			return nil, err
		}
		out.Add(lead.Mu, lead.C)
		scale := new(big.Rat).Mul(lead.C, negOne)
		rest.AddScaled(ks, scale)
	}
	return out, nil
}

// Omega applies the omega involution to a k-Schur expansion. At t = 1 it
// sends ks_lam to the k-Schur function of the k-conjugate of lam.
func (kb KBounded) Omega(e *Expansion) (*Expansion, error) {
	out := NewExpansion()
	for _, t := range e.Terms() {
		lk, err := partition.KConjugate(t.Mu, kb.K)
		if err != nil {
			return nil, err
		}
		out.Add(lk, t.C)
	}
	return out, nil
}

// Product expands ks_mu * ks_nu at t = 1 in the k-Schur basis, by
// multiplying the h-expansions (h_a h_b = h_{a union b}) and re-expanding.
func (kb KBounded) Product(mu, nu partition.Partition) (*Expansion, error) {
	hmu, err := kb.KSchurInHomogeneous(mu)
	if err != nil {
		return nil, err
	}
	hnu, err := kb.KSchurInHomogeneous(nu)
	if err != nil {
		return nil, err
	}
	prod := NewExpansion()
	tmp := new(big.Rat)
	for _, a := range hmu.Terms() {
		for _, b := range hnu.Terms() {
			tmp.Mul(a.C, b.C)
			prod.Add(partition.Union(a.Mu, b.Mu), tmp)
		}
	}
	out := NewExpansion()
	for _, t := range prod.Terms() {
		ksexp, err := kb.HomogeneousInKSchur(t.Mu)
		if err != nil {
			return nil, err
		}
		out.AddScaled(ksexp, t.C)
	}
	return out, nil
}
