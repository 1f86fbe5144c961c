// Package hyperell computes the classical invariants of genus 2
// hyperelliptic curves y^2 + h(x)y = f(x): the Clebsch invariants of the
// associated binary sextic, the Igusa-Clebsch invariants, and the absolute
// invariant triples. All arithmetic is exact over the rationals.
package hyperell

import "math/big"

// monomial indexes x^i y^j in a homogeneous binary form.
type monomial struct {
	X, Y int
}

// BinForm is a binary form: a polynomial in x and y with rational
// coefficients, stored sparsely.
type BinForm map[monomial]*big.Rat

// NewBinForm returns the zero form.
func NewBinForm() BinForm { return BinForm{} }

// Homogenize builds the binary form of degree deg from ascending univariate
// coefficients, padding with powers of y.
func Homogenize(coeffs []*big.Rat, deg int) BinForm {
	f := NewBinForm()
	for i, c := range coeffs {
		if c != nil && c.Sign() != 0 {
			f[monomial{i, deg - i}] = new(big.Rat).Set(c)
		}
	}
	return f
}

// Degree returns the total degree, zero for the zero form.
func (f BinForm) Degree() int {
	d := 0
	for m := range f {
		if m.X+m.Y > d {
			d = m.X + m.Y
		}
	}
	return d
}

// IsConstant reports whether f has no monomial of positive degree.
func (f BinForm) IsConstant() bool {
	for m, c := range f {
		if (m.X > 0 || m.Y > 0) && c.Sign() != 0 {
			return false
		}
	}
	return true
}

// Constant returns the coefficient of the constant monomial.
func (f BinForm) Constant() *big.Rat {
	if c, ok := f[monomial{0, 0}]; ok {
		return new(big.Rat).Set(c)
	}
	return new(big.Rat)
}

func (f BinForm) add(g BinForm) BinForm {
	out := NewBinForm()
	for m, c := range f {
		out[m] = new(big.Rat).Set(c)
	}
	for m, c := range g {
		if cur, ok := out[m]; ok {
			cur.Add(cur, c)
			if cur.Sign() == 0 {
				delete(out, m)
			}
		} else if c.Sign() != 0 {
			out[m] = new(big.Rat).Set(c)
		}
	}
	return out
}

func (f BinForm) mul(g BinForm) BinForm {
	out := NewBinForm()
	for m1, c1 := range f {
		for m2, c2 := range g {
			m := monomial{m1.X + m2.X, m1.Y + m2.Y}
			p := new(big.Rat).Mul(c1, c2)
			if cur, ok := out[m]; ok {
				cur.Add(cur, p)
				if cur.Sign() == 0 {
					delete(out, m)
				}
			} else if p.Sign() != 0 {
				out[m] = p
			}
		}
	}
	return out
}

func (f BinForm) scale(s *big.Rat) BinForm {
	out := NewBinForm()
	if s.Sign() == 0 {
		return out
	}
	for m, c := range f {
		out[m] = new(big.Rat).Mul(c, s)
	}
	return out
}

// diff differentiates k times with respect to x (var = 0) or y (var = 1).
func (f BinForm) diff(variable, k int) BinForm {
	cur := f
	for step := 0; step < k; step++ {
		next := NewBinForm()
		for m, c := range cur {
			var deg int
			var nm monomial
			if variable == 0 {
				deg = m.X
				nm = monomial{m.X - 1, m.Y}
			} else {
				deg = m.Y
				nm = monomial{m.X, m.Y - 1}
			}
			if deg == 0 {
				continue
			}
			d := new(big.Rat).Mul(c, big.NewRat(int64(deg), 1))
			if acc, ok := next[nm]; ok {
				acc.Add(acc, d)
			} else {
				next[nm] = d
			}
		}
		cur = next
	}
	return cur
}

// Transvectant returns the k-th transvectant (f, g)_k of two binary forms.
// It is zero when either degree is below k.
func Transvectant(f, g BinForm, k int) BinForm {
	m, n := f.Degree(), g.Degree()
	if len(f) == 0 || len(g) == 0 || m < k || n < k {
		return NewBinForm()
	}
	sum := NewBinForm()
	for j := 0; j <= k; j++ {
		t := f.diff(0, k-j).diff(1, j).mul(g.diff(0, j).diff(1, k-j))
		binom := new(big.Int).Binomial(int64(k), int64(j))
		c := new(big.Rat).SetInt(binom)
		if j%2 == 1 {
			c.Neg(c)
		}
		sum = sum.add(t.scale(c))
	}
	num := new(big.Int).Mul(factorial(m-k), factorial(n-k))
	den := new(big.Int).Mul(factorial(m), factorial(n))
	return sum.scale(new(big.Rat).SetFrac(num, den))
}

func factorial(n int) *big.Int {
	return new(big.Int).MulRange(1, int64(n))
}
