package frame

import (
	"errors"
	"testing"
)

func TestFromSliceValidatesSize(t *testing.T) {
	if _, err := FromSlice(2, 2, make([]float64, 3)); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("err = %v, want ErrInvalidSize", err)
	}

	if _, err := FromSlice(0, 4, nil); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("err = %v, want ErrInvalidSize", err)
	}

	f, err := FromSlice(3, 2, []float64{0, 1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}

	if got := f.At(1, 1); got != 4 {
		t.Fatalf("At(1,1) = %v, want 4", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	f := Constant(4, 3, 7)
	c := f.Clone()
	c.Set(0, 0, 1)

	if f.At(0, 0) != 7 {
		t.Fatal("Clone shares storage with the source")
	}

	if f.Equal(c) {
		t.Fatal("Equal reported modified clone as identical")
	}
}

func TestEqualComparesSize(t *testing.T) {
	a := Constant(4, 2, 1)
	b := Constant(2, 4, 1)

	if a.Equal(b) {
		t.Fatal("frames of different shape compared equal")
	}
}

func TestRowAliases(t *testing.T) {
	f := New(3, 2)
	f.Row(1)[2] = 9

	if f.At(2, 1) != 9 {
		t.Fatal("Row does not alias Pix")
	}
}

func TestArithmetic(t *testing.T) {
	a := Constant(2, 2, 10)
	d := Constant(2, 2, -2)

	got := AddScaled(a, d, 0.5)
	for i, v := range got.Pix {
		if v != 9 {
			t.Fatalf("AddScaled[%d] = %v, want 9", i, v)
		}
	}

	s := Scale(d, 3)
	if s.MaxAbs() != 6 {
		t.Fatalf("MaxAbs = %v, want 6", s.MaxAbs())
	}

	diff := AddScaled(a, got, -1)
	if diff.Mean() != 1 {
		t.Fatalf("Mean = %v, want 1", diff.Mean())
	}

	a.AddInPlace(d)
	a.ScaleInPlace(0.5)
	if a.At(1, 1) != 4 {
		t.Fatalf("in-place result = %v, want 4", a.At(1, 1))
	}
}

func TestMismatchedSizesPanic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()

	New(2, 2).AddInPlace(New(3, 2))
}
