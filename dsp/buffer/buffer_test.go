package buffer

import "testing"

func TestNew(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{-3, 0},
		{16, 16},
	}

	for _, tt := range tests {
		b := New(tt.n)
		if b.Len() != tt.want {
			t.Errorf("New(%d).Len() = %d, want %d", tt.n, b.Len(), tt.want)
		}

		for i, v := range b.Data() {
			if v != 0 {
				t.Fatalf("New(%d)[%d] = %g, want 0", tt.n, i, v)
			}
		}
	}
}

func TestResetReusesCapacity(t *testing.T) {
	b := New(32)
	b.Data()[3] = 7

	b.Reset(8)

	if b.Len() != 8 || b.Cap() != 32 {
		t.Fatalf("Len/Cap = %d/%d, want 8/32", b.Len(), b.Cap())
	}

	if b.Data()[3] != 7 {
		t.Fatalf("Reset cleared contents: %v", b.Data())
	}

	b.Reset(64)

	if b.Len() != 64 || b.Cap() < 64 {
		t.Fatalf("Len/Cap after grow = %d/%d", b.Len(), b.Cap())
	}

	b.Reset(-1)

	if b.Len() != 0 {
		t.Fatalf("Reset(-1).Len() = %d", b.Len())
	}
}

func TestZero(t *testing.T) {
	b := New(4)
	copy(b.Data(), []float64{1, 2, 3, 4})
	b.Zero()

	for i, v := range b.Data() {
		if v != 0 {
			t.Fatalf("[%d] = %g after Zero", i, v)
		}
	}
}

func TestPool(t *testing.T) {
	p := NewPool()

	b := p.Get(10)
	if b.Len() != 10 {
		t.Fatalf("Get(10).Len() = %d", b.Len())
	}

	for i := range b.Data() {
		b.Data()[i] = 1
	}

	p.Put(b)

	z := p.GetZeroed(10)
	for i, v := range z.Data() {
		if v != 0 {
			t.Fatalf("GetZeroed[%d] = %g", i, v)
		}
	}

	p.Put(z)
	p.Put(nil)
}

func TestSharedPool(t *testing.T) {
	b := Get(5)
	if b.Len() != 5 {
		t.Fatalf("Get(5).Len() = %d", b.Len())
	}

	Put(b)
}
