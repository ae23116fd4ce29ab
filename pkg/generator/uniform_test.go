package generator

import (
	"math/rand"
	"testing"
)

func TestUniformBounds(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	g := NewUniform(0, 0)

	for i := 0; i < 100; i++ {
		if n := g.Next(r); n != 0 {
			t.Fatalf("want 0 from a degenerate interval, but got %d", n)
		}
	}

	g = NewUniform(1, 3)
	for i := 0; i < 1000; i++ {
		n := g.Next(r)
		if n < 1 || n > 3 {
			t.Fatalf("want value in [1, 3], but got %d", n)
		}
		if g.Last() != n {
			t.Fatalf("want Last %d, but got %d", n, g.Last())
		}
	}
}
