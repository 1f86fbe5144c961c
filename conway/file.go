package conway

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"golang.org/x/crypto/sha3"
)

// fileEntry is one table row in the on-disk format.
type fileEntry struct {
	P      int64   `json:"p"`
	N      int     `json:"n"`
	Coeffs []int64 `json:"coeffs"`
}

// fileFormat is the on-disk database: the entries plus a SHAKE-256 digest of
// their canonical encoding, so that a corrupted or edited file is rejected at
// load time.
type fileFormat struct {
	Entries []fileEntry `json:"entries"`
	Digest  string      `json:"digest"`
}

// digest hashes the entries in sorted order.
func digest(entries []fileEntry) [32]byte {
	h := sha3.NewShake256()
	var buf [8]byte
	for _, e := range entries {
		binary.LittleEndian.PutUint64(buf[:], uint64(e.P))
		h.Write(buf[:])
		binary.LittleEndian.PutUint64(buf[:], uint64(e.N))
		h.Write(buf[:])
		for _, c := range e.Coeffs {
			binary.LittleEndian.PutUint64(buf[:], uint64(c))
			h.Write(buf[:])
		}
	}
	var out [32]byte
	h.Read(out[:])
	return out
}

func (db *Database) sortedEntries() []fileEntry {
	keys := make([]Key, 0, len(db.table))
	for k := range db.table {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].P != keys[j].P {
			return keys[i].P < keys[j].P
		}
		return keys[i].N < keys[j].N
	})
	entries := make([]fileEntry, len(keys))
	for i, k := range keys {
		entries[i] = fileEntry{P: k.P, N: k.N, Coeffs: db.table[k]}
	}
	return entries
}

// Save writes the database to path with its digest.
func (db *Database) Save(path string) error {
	entries := db.sortedEntries()
	d := digest(entries)
	blob, err := json.MarshalIndent(fileFormat{
		Entries: entries,
		Digest:  hex.EncodeToString(d[:]),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("conway: marshal database: %w", err)
	}
	if err := os.WriteFile(path, blob, 0o644); err != nil {
		return fmt.Errorf("conway: write database: %w", err)
	}
	return nil
}

// Load reads a database from path, verifying the digest.
func Load(path string) (*Database, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("conway: read database: %w", err)
	}
	var ff fileFormat
	if err := json.Unmarshal(blob, &ff); err != nil {
		return nil, fmt.Errorf("conway: parse database: %w", err)
	}
	want, err := hex.DecodeString(ff.Digest)
	if err != nil {
		return nil, fmt.Errorf("conway: parse digest: %w", err)
	}
	got := digest(ff.Entries)
	if !bytes.Equal(want, got[:]) {
		return nil, fmt.Errorf("conway: database digest mismatch")
	}
	db := New()
	for _, e := range ff.Entries {
		if err := db.Insert(e.P, e.N, e.Coeffs); err != nil {
			return nil, err
		}
	}
	return db, nil
}
