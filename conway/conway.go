// Package conway provides the table of Conway polynomials: for each
// characteristic p and degree n in the database, the distinguished monic
// primitive polynomial of degree n over F_p whose roots are compatible with
// the norm maps between the subfields of F_{p^n}. The built-in table ships
// with the package; larger tables can be saved to and loaded from disk.
package conway

import (
	"fmt"
	"sort"
)

// Key identifies a table entry.
type Key struct {
	P int64 // characteristic, prime
	N int   // degree
}

// Database is a Conway polynomial lookup table.
type Database struct {
	table map[Key][]int64
}

// Builtin returns a fresh copy of the database distributed with the package.
// Inserting into the copy does not affect later calls.
func Builtin() *Database {
	table := make(map[Key][]int64, len(builtinTable))
	for k, v := range builtinTable {
		table[k] = v
	}
	return &Database{table: table}
}

// New returns an empty database.
func New() *Database {
	return &Database{table: map[Key][]int64{}}
}

// Len returns the number of entries.
func (db *Database) Len() int { return len(db.table) }

// Has reports whether the polynomial for (p, n) is in the database.
func (db *Database) Has(p int64, n int) bool {
	_, ok := db.table[Key{p, n}]
	return ok
}

// Polynomial returns the coefficients of the Conway polynomial for (p, n),
// ascending, with leading coefficient 1.
func (db *Database) Polynomial(p int64, n int) ([]int64, error) {
	c, ok := db.table[Key{p, n}]
	if !ok {
		return nil, fmt.Errorf("conway: polynomial for p=%d, n=%d not in database", p, n)
	}
	out := make([]int64, len(c))
	copy(out, c)
	return out, nil
}

// Insert adds or replaces the entry for (p, n). The coefficient slice must
// be monic of degree n with entries reduced modulo p.
func (db *Database) Insert(p int64, n int, coeffs []int64) error {
	if p < 2 || n < 1 {
		return fmt.Errorf("conway: invalid key p=%d, n=%d", p, n)
	}
	if len(coeffs) != n+1 || coeffs[n] != 1 {
		return fmt.Errorf("conway: entry for p=%d, n=%d must be monic of degree %d", p, n, n)
	}
	for _, c := range coeffs {
		if c < 0 || c >= p {
			return fmt.Errorf("conway: coefficient %d out of range modulo %d", c, p)
		}
	}
	cp := make([]int64, len(coeffs))
	copy(cp, coeffs)
	db.table[Key{p, n}] = cp
	return nil
}

// Primes returns the characteristics present in the database, sorted.
func (db *Database) Primes() []int64 {
	seen := map[int64]bool{}
	for k := range db.table {
		seen[k.P] = true
	}
	out := make([]int64, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Degrees returns the degrees available for characteristic p, sorted.
func (db *Database) Degrees(p int64) []int {
	var out []int
	for k := range db.table {
		if k.P == p {
			out = append(out, k.N)
		}
	}
	sort.Ints(out)
	return out
}

// MaxDegree returns the largest degree available for p, or 0 when p is
// absent.
func (db *Database) MaxDegree(p int64) int {
	max := 0
	for k := range db.table {
		if k.P == p && k.N > max {
			max = k.N
		}
	}
	return max
}
