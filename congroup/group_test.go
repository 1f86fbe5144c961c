package congroup

import (
	"reflect"
	"testing"
)

func TestGammaHConstructor(t *testing.T) {
	g, err := NewGammaH(11, []int64{2, 1})
	if err != nil {
		t.Fatal(err)
	}
	gens, _ := g.GeneratorsForH()
	if !reflect.DeepEqual(gens, []int64{2}) {
		t.Fatalf("generators = %v, want [2]", gens)
	}
	if _, err := NewGammaH(12, []int64{4}); err == nil {
		t.Fatal("expected error for non-unit generator")
	}
	if _, err := NewGammaH(0, nil); err == nil {
		t.Fatal("expected error for non-positive level")
	}
}

func TestParity(t *testing.T) {
	for _, tc := range []struct {
		g    *Group
		even bool
	}{
		{mustGamma0(t, 11), true},
		{mustGamma1(t, 1), true},
		{mustGamma1(t, 2), true},
		{mustGamma1(t, 3), false},
		{mustGammaH(t, 12, []int64{-1, 5}), true},
		{mustGammaH(t, 11, []int64{3}), false},
		{SL2Z(), true},
	} {
		even, err := tc.g.IsEven()
		if err != nil {
			t.Fatal(err)
		}
		if even != tc.even {
			t.Fatalf("%v even = %v, want %v", tc.g, even, tc.even)
		}
		odd, _ := tc.g.IsOdd()
		if odd == even {
			t.Fatalf("%v parity is not exclusive", tc.g)
		}
	}
}

func TestIsSubgroup(t *testing.T) {
	for _, tc := range []struct {
		a, b *Group
		want bool
	}{
		{mustGamma1(t, 3), SL2Z(), true},
		{mustGamma1(t, 3), mustGamma1(t, 5), false},
		{mustGamma1(t, 3), mustGamma1(t, 6), false},
		{mustGamma1(t, 6), mustGamma1(t, 3), true},
		{mustGamma0(t, 20), mustGamma0(t, 4), true},
		{mustGamma0(t, 20), mustGamma0(t, 7), false},
		{mustGamma1(t, 10), mustGamma0(t, 5), true},
	} {
		got, err := tc.a.IsSubgroup(tc.b)
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.want {
			t.Fatalf("%v in %v = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestNewGroupFromLevel(t *testing.T) {
	g, err := mustGamma0(t, 20).NewGroupFromLevel(4)
	if err != nil {
		t.Fatal(err)
	}
	if g.Kind() != KindGamma0 || g.Level() != 4 {
		t.Fatalf("got %v", g)
	}
	if _, err := mustGamma1(t, 10).NewGroupFromLevel(6); err == nil {
		t.Fatal("expected error when neither level divides the other")
	}

	gh := mustGammaH(t, 50, []int64{3, 37})
	down, err := gh.NewGroupFromLevel(25)
	if err != nil {
		t.Fatal(err)
	}
	downGens, _ := down.GeneratorsForH()
	if !reflect.DeepEqual(downGens, []int64{3, 12}) {
		t.Fatalf("level 25 generators = %v, want [3 12]", downGens)
	}
	up, err := gh.NewGroupFromLevel(100)
	if err != nil {
		t.Fatal(err)
	}
	upGens, _ := up.GeneratorsForH()
	if !reflect.DeepEqual(upGens, []int64{3, 37, 53, 87}) {
		t.Fatalf("level 100 generators = %v, want [3 37 53 87]", upGens)
	}
}

func TestRestrictAndDivisorSubgroups(t *testing.T) {
	g := mustGammaH(t, 33, []int64{2})
	r, err := g.Restrict(11)
	if err != nil {
		t.Fatal(err)
	}
	gens, _ := r.GeneratorsForH()
	if r.Level() != 11 || !reflect.DeepEqual(gens, []int64{2}) {
		t.Fatalf("restrict to 11 = %v", r)
	}
	triv, err := g.Restrict(1)
	if err != nil {
		t.Fatal(err)
	}
	if gens, _ := triv.GeneratorsForH(); len(gens) != 0 {
		t.Fatalf("restrict to 1 has generators %v", gens)
	}
	if _, err := g.Restrict(15); err == nil {
		t.Fatal("expected error for non-divisor 15")
	}

	subs, err := g.DivisorSubgroups()
	if err != nil {
		t.Fatal(err)
	}
	wantLevels := []int64{1, 3, 11, 33}
	if len(subs) != len(wantLevels) {
		t.Fatalf("got %d divisor subgroups", len(subs))
	}
	for i, s := range subs {
		if s.Level() != wantLevels[i] {
			t.Fatalf("subs[%d] has level %d, want %d", i, s.Level(), wantLevels[i])
		}
		sg, _ := s.GeneratorsForH()
		if wantLevels[i] == 1 {
			if len(sg) != 0 {
				t.Fatalf("level 1 generators %v", sg)
			}
		} else if !reflect.DeepEqual(sg, []int64{2}) {
			t.Fatalf("subs[%d] generators %v, want [2]", i, sg)
		}
	}
}

func TestGammaHSubgroups(t *testing.T) {
	subs, err := mustGamma0(t, 11).GammaHSubgroups()
	if err != nil {
		t.Fatal(err)
	}
	want := [][]int64{{2}, {4}, {10}, nil}
	if len(subs) != len(want) {
		t.Fatalf("Gamma0(11) has %d GammaH subgroups, want %d", len(subs), len(want))
	}
	for i, s := range subs {
		gens, _ := s.GeneratorsForH()
		if !reflect.DeepEqual(gens, want[i]) {
			t.Fatalf("subs[%d] generated by %v, want %v", i, gens, want[i])
		}
	}

	subs, err = mustGamma0(t, 12).GammaHSubgroups()
	if err != nil {
		t.Fatal(err)
	}
	want = [][]int64{{5, 7}, {7}, {5}, nil}
	if len(subs) != len(want) {
		t.Fatalf("Gamma0(12) has %d GammaH subgroups, want %d", len(subs), len(want))
	}
	for i, s := range subs {
		gens, _ := s.GeneratorsForH()
		if !reflect.DeepEqual(gens, want[i]) {
			t.Fatalf("subs[%d] generated by %v, want %v", i, gens, want[i])
		}
	}
}

func TestGroupReduceCoset(t *testing.T) {
	// the group wrapper and the raw tables agree
	g := mustGammaH(t, 9, []int64{7})
	tab, err := NewTables(9, []int64{7})
	if err != nil {
		t.Fatal(err)
	}
	for u := int64(0); u < 9; u++ {
		for v := int64(0); v < 9; v++ {
			tu, tv := tab.ReduceCoset(u, v)
			gu, gv, err := g.ReduceCoset(u, v)
			if err != nil {
				t.Fatal(err)
			}
			if tu != gu || tv != gv {
				t.Fatalf("mismatch at (%d, %d)", u, v)
			}
		}
	}
}

func TestReduceCusp(t *testing.T) {
	g := mustGamma1(t, 12)
	c, s, err := g.ReduceCusp(0, 7)
	if err != nil {
		t.Fatal(err)
	}
	if (c != Cusp{U: 0, V: 1}) || s != 1 {
		t.Fatalf("cusp 0/7 reduces to %v sign %d", c, s)
	}
	c, s, err = g.ReduceCusp(3, 0)
	if err != nil {
		t.Fatal(err)
	}
	if (c != Cusp{U: 1, V: 0}) || s != 1 {
		t.Fatalf("cusp 3/0 reduces to %v sign %d", c, s)
	}
	// denominator prime to the level collapses to the cusp 0
	c, _, err = g.ReduceCusp(5, 7)
	if err != nil {
		t.Fatal(err)
	}
	if (c != Cusp{U: 0, V: 1}) {
		t.Fatalf("cusp 5/7 reduces to %v, want 0", c)
	}
	// denominator sharing a factor with the level keeps it
	c, s, err = g.ReduceCusp(7, 6)
	if err != nil {
		t.Fatal(err)
	}
	if (c != Cusp{U: 1, V: 6}) || s != 1 {
		t.Fatalf("cusp 7/6 reduces to %v sign %d, want 1/6 sign 1", c, s)
	}
	if got := (Cusp{U: 1, V: 0}).String(); got != "oo" {
		t.Fatalf("infinity prints as %q", got)
	}
}

func TestCosetReps(t *testing.T) {
	g := mustGamma0(t, 12)
	reps, err := g.CosetReps()
	if err != nil {
		t.Fatal(err)
	}
	if len(reps) != 24 {
		t.Fatalf("Gamma0(12) has %d coset representatives, want 24", len(reps))
	}
	for _, m := range reps {
		if m.Det() != 1 {
			t.Fatalf("representative %v has determinant %d", m, m.Det())
		}
	}
	if _, err := mustGamma1(t, 5).CosetReps(); err == nil {
		t.Fatal("expected error outside the Gamma0 family")
	}
}

func mustGamma0(t *testing.T, n int64) *Group {
	t.Helper()
	g, err := NewGamma0(n)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func mustGamma1(t *testing.T, n int64) *Group {
	t.Helper()
	g, err := NewGamma1(n)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func mustGammaH(t *testing.T, n int64, gens []int64) *Group {
	t.Helper()
	g, err := NewGammaH(n, gens)
	if err != nil {
		t.Fatal(err)
	}
	return g
}
