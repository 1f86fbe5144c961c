package mrange

import (
	"reflect"
	"testing"
)

func collect(it *Iter, k int) [][]int {
	var out [][]int
	buf := make([]int, k)
	for it.Next(buf) {
		row := make([]int, k)
		copy(row, buf)
		out = append(out, row)
	}
	return out
}

func TestOrder(t *testing.T) {
	got := collect(New([]int{2, 3}), 2)
	want := [][]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestUniform(t *testing.T) {
	if n := len(collect(Uniform(3, 3), 3)); n != 27 {
		t.Fatalf("3^3 tuples: got %d", n)
	}
}

func TestEmpty(t *testing.T) {
	if got := collect(New(nil), 0); got != nil {
		t.Fatalf("empty radix should be empty, got %v", got)
	}
	if got := collect(New([]int{2, 0}), 2); got != nil {
		t.Fatalf("zero radix should be empty, got %v", got)
	}
}
