package hyperell

import (
	"fmt"
	"math/big"
)

// ClebschInvariants returns the Clebsch invariants (A, B, C, D) of a binary
// sextic given by its ascending univariate coefficients, via the classical
// transvectant pipeline.
func ClebschInvariants(sextic []*big.Rat) (a, b, c, d *big.Rat, err error) {
	f := Homogenize(sextic, 6)
	if f.Degree() != 6 {
		return nil, nil, nil, nil, fmt.Errorf("hyperell: form has degree %d, want a sextic", f.Degree())
	}
	i := Transvectant(f, f, 4)
	delta := Transvectant(i, i, 2)
	y1 := Transvectant(f, i, 4)
	y2 := Transvectant(i, y1, 2)
	y3 := Transvectant(i, y2, 2)

	forA := Transvectant(f, f, 6)
	forB := Transvectant(i, i, 4)
	forC := Transvectant(i, delta, 4)
	forD := Transvectant(y3, y1, 2)
	for _, t := range []BinForm{forA, forB, forC, forD} {
		if !t.IsConstant() {
			return nil, nil, nil, nil, fmt.Errorf("hyperell: transvectant pipeline left a non-constant form")
		}
	}
	return forA.Constant(), forB.Constant(), forC.Constant(), forD.Constant(), nil
}

// IgusaClebschInvariants returns (I2, I4, I6, I10) of a binary sextic, as
// integer polynomials in the Clebsch invariants.
func IgusaClebschInvariants(sextic []*big.Rat) (i2, i4, i6, i10 *big.Rat, err error) {
	a, b, c, d, err := ClebschInvariants(sextic)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	rat := func(n int64) *big.Rat { return big.NewRat(n, 1) }
	mul := func(xs ...*big.Rat) *big.Rat {
		out := big.NewRat(1, 1)
		for _, x := range xs {
			out.Mul(out, x)
		}
		return out
	}
	add := func(xs ...*big.Rat) *big.Rat {
		out := new(big.Rat)
		for _, x := range xs {
			out.Add(out, x)
		}
		return out
	}

	i2 = mul(rat(-120), a)
	i4 = add(mul(rat(-720), a, a), mul(rat(6750), b))
	i6 = add(mul(rat(8640), a, a, a), mul(rat(-108000), a, b), mul(rat(202500), c))
	i10 = add(
		mul(rat(-62208), a, a, a, a, a),
		mul(rat(972000), a, a, a, b),
		mul(rat(1620000), a, a, c),
		mul(rat(-3037500), a, b, b),
		mul(rat(-6075000), b, c),
		mul(rat(-4556250), d),
	)
	return i2, i4, i6, i10, nil
}

// AbsoluteIgusaWamelen returns the absolute invariant triple
// (I2^5/I10, I2^3 I4/I10, I2^2 I6/I10). The curve must have nonzero I10.
func AbsoluteIgusaWamelen(sextic []*big.Rat) ([3]*big.Rat, error) {
	i2, i4, i6, i10, err := IgusaClebschInvariants(sextic)
	if err != nil {
		return [3]*big.Rat{}, err
	}
	if i10.Sign() == 0 {
		return [3]*big.Rat{}, fmt.Errorf("hyperell: I10 vanishes, curve is singular")
	}
	pow := func(x *big.Rat, n int) *big.Rat {
		out := big.NewRat(1, 1)
		for i := 0; i < n; i++ {
			out.Mul(out, x)
		}
		return out
	}
	var out [3]*big.Rat
	out[0] = new(big.Rat).Quo(pow(i2, 5), i10)
	out[1] = new(big.Rat).Quo(new(big.Rat).Mul(pow(i2, 3), i4), i10)
	out[2] = new(big.Rat).Quo(new(big.Rat).Mul(pow(i2, 2), i6), i10)
	return out, nil
}

// AbsoluteIgusaKohel returns the absolute invariant triple
// (I4 I6/I10, I2^3 I4/I10, I2^2 I6/I10).
func AbsoluteIgusaKohel(sextic []*big.Rat) ([3]*big.Rat, error) {
	i2, i4, i6, i10, err := IgusaClebschInvariants(sextic)
	if err != nil {
		return [3]*big.Rat{}, err
	}
	if i10.Sign() == 0 {
		return [3]*big.Rat{}, fmt.Errorf("hyperell: I10 vanishes, curve is singular")
	}
	i2cubed := new(big.Rat).Mul(new(big.Rat).Mul(i2, i2), i2)
	i2sq := new(big.Rat).Mul(i2, i2)
	var out [3]*big.Rat
	out[0] = new(big.Rat).Quo(new(big.Rat).Mul(i4, i6), i10)
	out[1] = new(big.Rat).Quo(new(big.Rat).Mul(i2cubed, i4), i10)
	out[2] = new(big.Rat).Quo(new(big.Rat).Mul(i2sq, i6), i10)
	return out, nil
}
