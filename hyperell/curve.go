package hyperell

import (
	"fmt"
	"math/big"
)

// Curve is a genus 2 hyperelliptic curve y^2 + h(x) y = f(x) over Q, with f
// and h given by ascending coefficients.
type Curve struct {
	F, H []*big.Rat
}

// NewCurve validates the defining polynomials: deg f <= 6, deg h <= 3, and
// 4f + h^2 must be a polynomial of degree 5 or 6.
func NewCurve(f, h []*big.Rat) (*Curve, error) {
	c := &Curve{F: trimPoly(f), H: trimPoly(h)}
	if d := polyDegree(c.F); d > 6 {
		return nil, fmt.Errorf("hyperell: f has degree %d, want at most 6", d)
	}
	if d := polyDegree(c.H); d > 3 {
		return nil, fmt.Errorf("hyperell: h has degree %d, want at most 3", d)
	}
	d := polyDegree(c.Sextic())
	if d != 5 && d != 6 {
		return nil, fmt.Errorf("hyperell: 4f + h^2 has degree %d, want 5 or 6", d)
	}
	return c, nil
}

// NewCurveInt is NewCurve on integer coefficient slices.
func NewCurveInt(f, h []int64) (*Curve, error) {
	return NewCurve(ratSlice(f), ratSlice(h))
}

func ratSlice(xs []int64) []*big.Rat {
	out := make([]*big.Rat, len(xs))
	for i, x := range xs {
		out[i] = big.NewRat(x, 1)
	}
	return out
}

func trimPoly(p []*big.Rat) []*big.Rat {
	n := len(p)
	for n > 0 && (p[n-1] == nil || p[n-1].Sign() == 0) {
		n--
	}
	out := make([]*big.Rat, n)
	for i := 0; i < n; i++ {
		if p[i] == nil {
			out[i] = new(big.Rat)
		} else {
			out[i] = new(big.Rat).Set(p[i])
		}
	}
	return out
}

func polyDegree(p []*big.Rat) int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i].Sign() != 0 {
			return i
		}
	}
	return -1
}

// IsOddDegree reports whether the defining sextic degenerates to degree 5.
func (c *Curve) IsOddDegree() bool {
	return polyDegree(c.Sextic()) == 5
}

// Sextic returns the ascending coefficients of 4f + h^2, always of length 7.
func (c *Curve) Sextic() []*big.Rat {
	out := make([]*big.Rat, 7)
	for i := range out {
		out[i] = new(big.Rat)
	}
	four := big.NewRat(4, 1)
	for i, a := range c.F {
		out[i].Add(out[i], new(big.Rat).Mul(four, a))
	}
	tmp := new(big.Rat)
	for i, a := range c.H {
		for j, b := range c.H {
			tmp.Mul(a, b)
			out[i+j].Add(out[i+j], tmp)
		}
	}
	return out
}

// ClebschInvariants returns (A, B, C, D) for the curve.
func (c *Curve) ClebschInvariants() (a, b, cc, d *big.Rat, err error) {
	return ClebschInvariants(c.Sextic())
}

// IgusaClebschInvariants returns (I2, I4, I6, I10) for the curve.
func (c *Curve) IgusaClebschInvariants() (i2, i4, i6, i10 *big.Rat, err error) {
	return IgusaClebschInvariants(c.Sextic())
}

// AbsoluteIgusaWamelen returns the Wamelen absolute invariant triple.
func (c *Curve) AbsoluteIgusaWamelen() ([3]*big.Rat, error) {
	return AbsoluteIgusaWamelen(c.Sextic())
}

// AbsoluteIgusaKohel returns the Kohel absolute invariant triple.
func (c *Curve) AbsoluteIgusaKohel() ([3]*big.Rat, error) {
	return AbsoluteIgusaKohel(c.Sextic())
}
