package partition

import (
	"reflect"
	"testing"
)

func TestConjugate(t *testing.T) {
	cases := []struct{ p, want Partition }{
		{Partition{4, 2, 1}, Partition{3, 2, 1, 1}},
		{Partition{2, 2, 1, 1}, Partition{4, 2}},
		{nil, nil},
	}
	for _, c := range cases {
		if got := c.p.Conjugate(); !got.Equal(c.want) {
			t.Fatalf("Conjugate(%v) = %v, want %v", c.p, got, c.want)
		}
	}
}

func TestGen(t *testing.T) {
	got := Gen(5, 3)
	want := []Partition{
		{3, 2}, {3, 1, 1}, {2, 2, 1}, {2, 1, 1, 1}, {1, 1, 1, 1, 1},
	}
	if len(got) != len(want) {
		t.Fatalf("Gen(5,3) has %d partitions, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Fatalf("Gen(5,3)[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if n := len(Gen(6, 0)); n != 11 {
		t.Fatalf("p(6) = %d, want 11", n)
	}
	if got := Gen(0, 0); len(got) != 1 || got[0] != nil {
		t.Fatalf("Gen(0) = %v", got)
	}
}

func TestStrips(t *testing.T) {
	if !IsHorizontalStrip(Partition{5, 3, 1}, Partition{4, 3}) {
		t.Fatal("[5,3,1]/[4,3] should be a horizontal strip")
	}
	if IsHorizontalStrip(Partition{5, 3, 1}, Partition{3, 3}) {
		t.Fatal("[5,3,1]/[3,3] has two boxes in a column")
	}
	if !IsVerticalStrip(Partition{3, 3, 2}, Partition{2, 2, 2}) {
		t.Fatal("[3,3,2]/[2,2,2] should be a vertical strip")
	}
	if IsVerticalStrip(Partition{4, 2}, Partition{2, 2}) {
		t.Fatal("[4,2]/[2,2] has two boxes in a row")
	}
}

func TestDominance(t *testing.T) {
	if !(Partition{2, 2, 1}).DominatedBy(Partition{3, 2}) {
		t.Fatal("[2,2,1] <= [3,2] in dominance")
	}
	if (Partition{3, 1, 1}).DominatedBy(Partition{2, 2, 1}) {
		t.Fatal("[3,1,1] is not <= [2,2,1]")
	}
}

func TestUnion(t *testing.T) {
	got := Union(Partition{3, 1}, Partition{2, 1})
	if !got.Equal(Partition{3, 2, 1, 1}) {
		t.Fatalf("Union = %v", got)
	}
}

func TestToCore(t *testing.T) {
	c, err := ToCore(Partition{3, 2}, 3)
	if err != nil {
		t.Fatal(err)
	}
	if !c.Equal(Partition{5, 2}) {
		t.Fatalf("4-core of [3,2] = %v, want [5 2]", c)
	}
	if got := FromCore(c, 3); !got.Equal(Partition{3, 2}) {
		t.Fatalf("round trip gave %v", got)
	}
	if _, err := ToCore(Partition{5, 1}, 3); err == nil {
		t.Fatal("expected error for unbounded part")
	}
}

func TestCoreBijection(t *testing.T) {
	// the core map is a bijection degree by degree
	for _, k := range []int{2, 3, 4} {
		for n := 0; n <= 7; n++ {
			seen := map[string]bool{}
			for _, p := range Gen(n, k) {
				c, err := ToCore(p, k)
				if err != nil {
					t.Fatal(err)
				}
				if seen[c.Key()] {
					t.Fatalf("k=%d: core %v repeated", k, c)
				}
				seen[c.Key()] = true
				if got := FromCore(c, k); !got.Equal(p) {
					t.Fatalf("k=%d: FromCore(ToCore(%v)) = %v", k, p, got)
				}
			}
		}
	}
}

func TestKConjugate(t *testing.T) {
	got, err := KConjugate(Partition{2, 2, 1, 1}, 3)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(Partition{2, 2, 2}) {
		t.Fatalf("3-conjugate of [2,2,1,1] = %v, want [2 2 2]", got)
	}
	// involution
	for _, p := range Gen(6, 3) {
		q, err := KConjugate(p, 3)
		if err != nil {
			t.Fatal(err)
		}
		r, err := KConjugate(q, 3)
		if err != nil {
			t.Fatal(err)
		}
		if !r.Equal(p) {
			t.Fatalf("k-conjugate not an involution at %v: %v -> %v", p, q, r)
		}
	}
}

func TestHookLength(t *testing.T) {
	p := Partition{4, 2, 1}
	want := [][]int{{6, 4, 2, 1}, {3, 1}, {1}}
	for i := range want {
		for j, w := range want[i] {
			if got := p.HookLength(i, j); got != w {
				t.Fatalf("hook(%d,%d) = %d, want %d", i, j, got, w)
			}
		}
	}
	if !reflect.DeepEqual(p.Conjugate(), Partition{3, 2, 1, 1}) {
		t.Fatal("conjugate mismatch")
	}
}
