package conway

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestBuiltinLookups(t *testing.T) {
	db := Builtin()
	cases := []struct {
		p    int64
		n    int
		want []int64
	}{
		{2, 3, []int64{1, 1, 0, 1}},
		{2, 5, []int64{1, 0, 1, 0, 0, 1}},
		{3, 1, []int64{1, 1}},
		{3, 2, []int64{2, 2, 1}},
		{3, 3, []int64{1, 2, 0, 1}},
		{3, 10, []int64{2, 1, 0, 0, 2, 2, 2, 0, 0, 0, 1}},
		{3, 21, []int64{1, 2, 0, 2, 0, 1, 2, 0, 2, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}},
		{5, 1, []int64{3, 1}},
		{5, 4, []int64{2, 4, 4, 0, 1}},
		{7, 3, []int64{4, 0, 6, 1}},
		{13, 2, []int64{2, 12, 1}},
		{31, 2, []int64{3, 29, 1}},
		{71, 1, []int64{64, 1}},
	}
	for _, c := range cases {
		got, err := db.Polynomial(c.p, c.n)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(got, c.want) {
			t.Fatalf("Polynomial(%d, %d) = %v, want %v", c.p, c.n, got, c.want)
		}
	}
}

func TestMissingEntry(t *testing.T) {
	db := Builtin()
	if db.Has(97, 50) {
		t.Fatal("Has(97, 50) should be false")
	}
	if _, err := db.Polynomial(97, 50); err == nil {
		t.Fatal("expected error for missing entry")
	}
}

func TestPrimesDegrees(t *testing.T) {
	db := Builtin()
	primes := db.Primes()
	if primes[0] != 2 || primes[len(primes)-1] != 71 {
		t.Fatalf("Primes() = %v", primes)
	}
	if got := db.Degrees(7); !reflect.DeepEqual(got, []int{1, 2, 3, 4}) {
		t.Fatalf("Degrees(7) = %v", got)
	}
	if db.MaxDegree(2) != 9 {
		t.Fatalf("MaxDegree(2) = %d", db.MaxDegree(2))
	}
	if db.MaxDegree(97) != 0 {
		t.Fatalf("MaxDegree(97) = %d", db.MaxDegree(97))
	}
}

func TestInsertValidation(t *testing.T) {
	db := New()
	if err := db.Insert(3, 2, []int64{2, 2, 1}); err != nil {
		t.Fatal(err)
	}
	if err := db.Insert(3, 2, []int64{2, 2, 2}); err == nil {
		t.Fatal("expected error for non-monic entry")
	}
	if err := db.Insert(3, 2, []int64{5, 2, 1}); err == nil {
		t.Fatal("expected error for coefficient out of range")
	}
	if err := db.Insert(3, 2, []int64{2, 1}); err == nil {
		t.Fatal("expected error for wrong length")
	}
}

func TestBuiltinCopiesAreIndependent(t *testing.T) {
	db := Builtin()
	if err := db.Insert(9973, 2, []int64{5, 9971, 1}); err != nil {
		t.Fatal(err)
	}
	if !db.Has(9973, 2) {
		t.Fatal("insert did not land in the copy")
	}
	if Builtin().Has(9973, 2) {
		t.Fatal("insert into one copy leaked into a fresh Builtin()")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conway.json")
	db := Builtin()
	if err := db.Save(path); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != db.Len() {
		t.Fatalf("loaded %d entries, want %d", got.Len(), db.Len())
	}
	p, err := got.Polynomial(3, 10)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(p, []int64{2, 1, 0, 0, 2, 2, 2, 0, 0, 0, 1}) {
		t.Fatalf("loaded Polynomial(3, 10) = %v", p)
	}
}

func TestLoadRejectsTampering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conway.json")
	if err := Builtin().Save(path); err != nil {
		t.Fatal(err)
	}
	blob, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	tampered := []byte(string(blob))
	for i := range tampered {
		// flip the first coefficient digit found after "coeffs"
		if tampered[i] == '[' {
			tampered[i+1] = '9'
			break
		}
	}
	if err := os.WriteFile(path, tampered, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected digest mismatch for tampered file")
	}
}
