package gf

import (
	"math/big"
	"testing"

	"combinat-kernel/conway"
)

func mustField(t *testing.T, p int64, n int) *Field {
	t.Helper()
	f, err := New(conway.Builtin(), p, n)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestNewRejectsBadModuli(t *testing.T) {
	if _, err := NewWithModulus(4, []uint64{1, 1}); err == nil {
		t.Fatal("expected error for composite characteristic")
	}
	if _, err := NewWithModulus(2, []uint64{1, 1, 1, 1}); err == nil {
		t.Fatal("expected error for reducible modulus x^3+x^2+x+1")
	}
	if _, err := NewWithModulus(3, []uint64{1, 2}); err == nil {
		t.Fatal("expected error for non-monic modulus")
	}
}

func TestArithmeticGF9(t *testing.T) {
	f := mustField(t, 3, 2)
	x := f.Gen()
	// modulus x^2 + 2x + 2: x^2 = -2x - 2 = x + 1
	sq := f.Mul(x, x)
	if !f.Equal(sq, f.Add(x, f.One())) {
		t.Fatalf("x^2 = %v, want x + 1", sq.Limb)
	}
	inv, err := f.Inv(x)
	if err != nil {
		t.Fatal(err)
	}
	if !f.Equal(f.Mul(x, inv), f.One()) {
		t.Fatal("x * x^-1 != 1")
	}
	if _, err := f.Inv(f.Zero()); err == nil {
		t.Fatal("expected error inverting zero")
	}
	if !f.IsZero(f.Sub(x, x)) {
		t.Fatal("x - x != 0")
	}
}

func TestGenPrimitive(t *testing.T) {
	for _, c := range []struct {
		p int64
		n int
	}{{2, 4}, {3, 2}, {3, 3}, {5, 2}, {7, 3}, {2, 9}} {
		f := mustField(t, c.p, c.n)
		prim, err := f.IsPrimitive(f.Gen())
		if err != nil {
			t.Fatal(err)
		}
		if !prim {
			t.Fatalf("generator of GF(%d^%d) not primitive", c.p, c.n)
		}
	}
}

func TestGenDegreeOne(t *testing.T) {
	// Conway polynomial for (5, 1) is x - 2, so x reduces to the least
	// primitive root 2
	f := mustField(t, 5, 1)
	if got := f.Coords(f.Gen()); got[0] != 2 {
		t.Fatalf("generator of GF(5) = %v, want 2", got)
	}
}

func TestFrobenius(t *testing.T) {
	f := mustField(t, 3, 3)
	x := f.Gen()
	// Frobenius fixes exactly the prime field; x has degree 3
	fr := f.Frobenius(x)
	if f.Equal(fr, x) {
		t.Fatal("Frobenius should move x")
	}
	// three applications return to x
	if !f.Equal(f.Frobenius(f.Frobenius(fr)), x) {
		t.Fatal("Frobenius^3 != identity on GF(27)")
	}
	// additivity spot check
	a := f.FromCoords([]uint64{1, 2, 0})
	b := f.FromCoords([]uint64{2, 1, 1})
	if !f.Equal(f.Frobenius(f.Add(a, b)), f.Add(f.Frobenius(a), f.Frobenius(b))) {
		t.Fatal("Frobenius not additive")
	}
}

func TestMultiplicativeOrder(t *testing.T) {
	f := mustField(t, 3, 2)
	ord, err := f.MultiplicativeOrder(f.Gen())
	if err != nil {
		t.Fatal(err)
	}
	if ord.Int64() != 8 {
		t.Fatalf("order of x in GF(9) = %s, want 8", ord)
	}
	one, err := f.MultiplicativeOrder(f.One())
	if err != nil {
		t.Fatal(err)
	}
	if one.Int64() != 1 {
		t.Fatalf("order of 1 = %s", one)
	}
}

func TestPow(t *testing.T) {
	f := mustField(t, 2, 4)
	x := f.Gen()
	// unit group has order 15
	if !f.Equal(f.Pow(x, big.NewInt(15)), f.One()) {
		t.Fatal("x^15 != 1 in GF(16)")
	}
	if f.Equal(f.Pow(x, big.NewInt(5)), f.One()) {
		t.Fatal("x^5 should not be 1 in GF(16)")
	}
}

func TestVerifyConwayTable(t *testing.T) {
	db := conway.Builtin()
	for _, p := range db.Primes() {
		for _, n := range db.Degrees(p) {
			if p == 3 && n == 21 {
				continue // covered separately
			}
			if err := VerifyConway(db, p, n); err != nil {
				t.Fatalf("entry (%d, %d): %v", p, n, err)
			}
		}
	}
}

func TestVerifyConwayLargeEntry(t *testing.T) {
	if testing.Short() {
		t.Skip("large field check")
	}
	if err := VerifyConway(conway.Builtin(), 3, 21); err != nil {
		t.Fatal(err)
	}
}

func TestVerifyConwayRejectsWrongEntry(t *testing.T) {
	db := conway.New()
	if err := db.Insert(3, 1, []int64{1, 1}); err != nil {
		t.Fatal(err)
	}
	// x^2 + 1 is irreducible over F_3 but x has order 4, not 8
	if err := db.Insert(3, 2, []int64{1, 0, 1}); err != nil {
		t.Fatal(err)
	}
	if err := VerifyConway(db, 3, 2); err == nil {
		t.Fatal("expected primitivity failure for x^2 + 1")
	}
}
