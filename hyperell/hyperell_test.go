package hyperell

import (
	"math/big"
	"testing"
)

func rat(n, d int64) *big.Rat { return big.NewRat(n, d) }

func checkRat(t *testing.T, name string, got, want *big.Rat) {
	t.Helper()
	if got.Cmp(want) != 0 {
		t.Fatalf("%s = %s, want %s", name, got.RatString(), want.RatString())
	}
}

func TestClebschInvariants(t *testing.T) {
	// y^2 = x^5 - x^4 + 3
	c, err := NewCurveInt([]int64{3, 0, 0, 0, -1, 1}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !c.IsOddDegree() {
		t.Fatal("x^5 - x^4 + 3 should give an odd-degree model")
	}
	a, b, cc, d, err := c.ClebschInvariants()
	if err != nil {
		t.Fatal(err)
	}
	checkRat(t, "A", a, rat(0, 1))
	checkRat(t, "B", b, rat(-2048, 375))
	checkRat(t, "C", cc, rat(-4096, 25))
	checkRat(t, "D", d, rat(-4881645568, 84375))
}

func TestClebschInvariantsWithH(t *testing.T) {
	// y^2 + x y = x^5 - x^4 + 3
	c, err := NewCurveInt([]int64{3, 0, 0, 0, -1, 1}, []int64{0, 1})
	if err != nil {
		t.Fatal(err)
	}
	a, b, cc, d, err := c.ClebschInvariants()
	if err != nil {
		t.Fatal(err)
	}
	checkRat(t, "A", a, rat(-8, 15))
	checkRat(t, "B", b, rat(17504, 5625))
	checkRat(t, "C", cc, rat(-23162896, 140625))
	checkRat(t, "D", d, rat(-420832861216768, 7119140625))
}

func TestIgusaClebschInvariants(t *testing.T) {
	// y^2 = x^5 - x + 2
	c, err := NewCurveInt([]int64{2, -1, 0, 0, 0, 1}, nil)
	if err != nil {
		t.Fatal(err)
	}
	i2, i4, i6, i10, err := c.IgusaClebschInvariants()
	if err != nil {
		t.Fatal(err)
	}
	checkRat(t, "I2", i2, rat(-640, 1))
	checkRat(t, "I4", i4, rat(-20480, 1))
	checkRat(t, "I6", i6, rat(1310720, 1))
	checkRat(t, "I10", i10, rat(52160364544, 1))
}

func TestIgusaClebschInvariantsWithH(t *testing.T) {
	// y^2 + x y = x^5 - x + 2
	c, err := NewCurveInt([]int64{2, -1, 0, 0, 0, 1}, []int64{0, 1})
	if err != nil {
		t.Fatal(err)
	}
	i2, i4, i6, i10, err := c.IgusaClebschInvariants()
	if err != nil {
		t.Fatal(err)
	}
	checkRat(t, "I2", i2, rat(-640, 1))
	checkRat(t, "I4", i4, rat(17920, 1))
	checkRat(t, "I6", i6, rat(-1966656, 1))
	checkRat(t, "I10", i10, rat(52409511936, 1))
}

func TestAbsoluteIgusaWamelen(t *testing.T) {
	// y^2 = x^5 - 1 has I2 = I4 = I6 = 0
	c, err := NewCurveInt([]int64{-1, 0, 0, 0, 0, 1}, nil)
	if err != nil {
		t.Fatal(err)
	}
	abs, err := c.AbsoluteIgusaWamelen()
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range abs {
		if v.Sign() != 0 {
			t.Fatalf("absolute invariant %d = %s, want 0", i, v.RatString())
		}
	}
}

func TestAbsoluteIgusaKohel(t *testing.T) {
	// y^2 + x^2 y = x^5 - x + 1
	c, err := NewCurveInt([]int64{1, -1, 0, 0, 0, 1}, []int64{0, 0, 1})
	if err != nil {
		t.Fatal(err)
	}
	abs, err := c.AbsoluteIgusaKohel()
	if err != nil {
		t.Fatal(err)
	}
	checkRat(t, "i4", abs[0], rat(-1030567, 178769))
	checkRat(t, "i2", abs[1], rat(259686400, 178769))
	checkRat(t, "i3", abs[2], rat(20806400, 178769))
}

func TestAbsoluteInvariantsUnderScaling(t *testing.T) {
	// substituting x -> c x multiplies I_k by c^(3k) and leaves the
	// absolute invariants fixed
	scale := func(coeffs []int64, c int64) []int64 {
		out := make([]int64, len(coeffs))
		pow := int64(1)
		for i, a := range coeffs {
			out[i] = a * pow
			pow *= c
		}
		return out
	}
	orig, err := NewCurveInt([]int64{1, -1, 0, 0, 0, 1}, []int64{0, 0, 1})
	if err != nil {
		t.Fatal(err)
	}
	scaled, err := NewCurveInt(scale([]int64{1, -1, 0, 0, 0, 1}, 3), scale([]int64{0, 0, 1}, 3))
	if err != nil {
		t.Fatal(err)
	}
	want, err := orig.AbsoluteIgusaKohel()
	if err != nil {
		t.Fatal(err)
	}
	got, err := scaled.AbsoluteIgusaKohel()
	if err != nil {
		t.Fatal(err)
	}
	for i := range want {
		checkRat(t, "kohel invariant", got[i], want[i])
	}
	orig2, err := NewCurveInt([]int64{2, -1, 0, 0, 0, 1}, nil)
	if err != nil {
		t.Fatal(err)
	}
	scaled2, err := NewCurveInt(scale([]int64{2, -1, 0, 0, 0, 1}, 2), nil)
	if err != nil {
		t.Fatal(err)
	}
	want2, err := orig2.AbsoluteIgusaWamelen()
	if err != nil {
		t.Fatal(err)
	}
	got2, err := scaled2.AbsoluteIgusaWamelen()
	if err != nil {
		t.Fatal(err)
	}
	for i := range want2 {
		checkRat(t, "wamelen invariant", got2[i], want2[i])
	}
}

func TestNewCurveRejectsBadDegree(t *testing.T) {
	if _, err := NewCurveInt([]int64{1, 1, 1}, nil); err == nil {
		t.Fatal("expected error for a quadratic model")
	}
	if _, err := NewCurveInt(nil, nil); err == nil {
		t.Fatal("expected error for the zero curve")
	}
	if _, err := NewCurveInt([]int64{0, 0, 0, 0, 0, 0, 0, 1}, nil); err == nil {
		t.Fatal("expected error for a degree 7 f")
	}
	if _, err := NewCurveInt([]int64{0, 0, 0, 0, 0, 1}, []int64{0, 0, 0, 0, 1}); err == nil {
		t.Fatal("expected error for a quartic h")
	}
}

func TestTransvectantBasics(t *testing.T) {
	f := Homogenize(ratSlice([]int64{0, 0, 0, 0, 0, 0, 1}), 6) // x^6
	// (f, f)_k vanishes for odd k by symmetry
	if got := Transvectant(f, f, 1); len(got) != 0 {
		t.Fatalf("(x^6, x^6)_1 = %v, want 0", got)
	}
	// transvectant of index above the degree is zero
	g := Homogenize(ratSlice([]int64{1, 1}), 1)
	if got := Transvectant(g, g, 2); len(got) != 0 {
		t.Fatalf("(linear, linear)_2 = %v, want 0", got)
	}
}
