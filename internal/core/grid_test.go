package core

import "testing"

func TestGridRowMajorIndex(t *testing.T) {
	g := NewGrid(4, 3)
	g.Set(2, 1, 7.5)

	if g.Index(2, 1) != 6 {
		t.Fatalf("Index(2,1) = %d, expected 6", g.Index(2, 1))
	}
	if g.Data()[6] != 7.5 {
		t.Fatalf("backing slice not row-major: data[6] = %v", g.Data()[6])
	}
	if g.At(2, 1) != 7.5 {
		t.Fatalf("At(2,1) = %v, expected 7.5", g.At(2, 1))
	}
}

func TestGridFillAndZero(t *testing.T) {
	g := NewGrid(3, 3)
	g.Fill(2.0)
	for i, v := range g.Data() {
		if v != 2.0 {
			t.Fatalf("cell %d = %v after Fill(2)", i, v)
		}
	}
	g.Zero()
	for i, v := range g.Data() {
		if v != 0 {
			t.Fatalf("cell %d = %v after Zero", i, v)
		}
	}
}

func TestGridFillCircle(t *testing.T) {
	g := NewGrid(9, 9)
	g.FillCircle(4, 4, 2, 1.0)

	if g.At(4, 4) != 1.0 {
		t.Fatal("circle center not stamped")
	}
	if g.At(4, 2) != 1.0 || g.At(2, 4) != 1.0 {
		t.Fatal("cells at exactly radius distance must be stamped")
	}
	if g.At(2, 2) != 0 {
		t.Fatal("corner outside radius must stay untouched")
	}

	// Discs overlapping the edge must not wrap or panic.
	g.FillCircle(0, 0, 3, 1.0)
	if g.At(8, 8) != 0 {
		t.Fatal("edge disc leaked to the far corner")
	}
}

func TestGridCloneIsDeep(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(1, 1, 3.0)

	c := g.Clone()
	c.Set(1, 1, 9.0)

	if g.At(1, 1) != 3.0 {
		t.Fatalf("mutating the clone changed the original: %v", g.At(1, 1))
	}
	if c.At(1, 1) != 9.0 {
		t.Fatalf("clone did not keep its own write: %v", c.At(1, 1))
	}
}

func TestGridBoundsPanic(t *testing.T) {
	g := NewGrid(3, 3)
	defer func() {
		if recover() == nil {
			t.Fatal("negative x must panic, row-major indexing would alias the previous row")
		}
	}()
	g.At(-1, 1)
}
