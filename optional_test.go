package main

import "testing"

func TestDivideSafe(t *testing.T) {
	tests := []struct {
		a, b    int
		present bool
		orElse  int
	}{
		{10, 2, true, 5},
		{10, 0, false, -1},
		{0, 5, true, 0},
		{-9, 3, true, -3},
	}

	for _, test := range tests {
		res := divideSafe(test.a, test.b)
		if res.Present() != test.present {
			t.Errorf("divideSafe(%d, %d).Present() = %t wanted %t", test.a, test.b, res.Present(), test.present)
		}
		if got := res.OrElse(-1); got != test.orElse {
			t.Errorf("divideSafe(%d, %d).OrElse(-1) = %d wanted %d", test.a, test.b, got, test.orElse)
		}
	}
}

func TestOptionalString(t *testing.T) {
	if got := some(5).String(); got != "5" {
		t.Errorf("some(5).String() = %q wanted %q", got, "5")
	}
	if got := none[int]().String(); got != "none" {
		t.Errorf("none().String() = %q wanted %q", got, "none")
	}
	var zero optional[string]
	if _, ok := zero.Get(); ok {
		t.Errorf("zero optional is present")
	}
}
