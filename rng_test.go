package flatprm

import (
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestHaltonDeterministicUnitCube(t *testing.T) {
	a := NewHalton(6)
	b := NewHalton(6)
	seen := make(map[float64]bool)
	for i := 0; i < 1000; i++ {
		sa, sb := a.Next(), b.Next()
		if !floats.Equal(sa, sb) {
			t.Fatalf("sequences diverge at %d: %v vs %v", i, sa, sb)
		}
		for d, v := range sa {
			if v < 0 || v >= 1 {
				t.Fatalf("sample %d dim %d out of the unit cube: %f", i, d, v)
			}
		}
		if seen[sa[0]] {
			t.Fatalf("base-2 coordinate repeated at %d", i)
		}
		seen[sa[0]] = true
	}
}

func TestHaltonFirstBases(t *testing.T) {
	primes := firstPrimes(6)
	want := []uint64{2, 3, 5, 7, 11, 13}
	for i := range want {
		if primes[i] != want[i] {
			t.Fatalf("prime %d = %d, expected %d", i, primes[i], want[i])
		}
	}
}

func TestUniformRNGSeeded(t *testing.T) {
	a := NewUniformRNG(4, 42)
	b := NewUniformRNG(4, 42)
	c := NewUniformRNG(4, 43)
	var diverged bool
	for i := 0; i < 100; i++ {
		sa, sb, sc := a.Next(), b.Next(), c.Next()
		if !floats.Equal(sa, sb) {
			t.Fatalf("same seed diverged at %d", i)
		}
		if !floats.Equal(sa, sc) {
			diverged = true
		}
		for d, v := range sa {
			if v < 0 || v >= 1 {
				t.Fatalf("sample %d dim %d out of the unit cube: %f", i, d, v)
			}
		}
	}
	if !diverged {
		t.Fatal("different seeds produced identical sequences")
	}
}
