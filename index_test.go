package main

import (
	"testing"

	"github.com/pkg/errors"
)

func TestAt(t *testing.T) {
	vec := []int{1, 2, 3}
	tests := []struct {
		index int
		want  int
		fails bool
	}{
		{0, 1, false},
		{2, 3, false},
		{3, 0, true},
		{10, 0, true},
		{-1, 0, true},
	}

	for _, test := range tests {
		got, err := at(vec, test.index)
		if test.fails {
			var ie *indexError
			if !errors.As(err, &ie) {
				t.Errorf("at(vec, %d) error = %v wanted *indexError", test.index, err)
				continue
			}
			if ie.Index != test.index || ie.Len != len(vec) {
				t.Errorf("at(vec, %d) error = %+v", test.index, ie)
			}
			if !errors.Is(err, errIndexOutOfRange) {
				t.Errorf("at(vec, %d) error does not match errIndexOutOfRange", test.index)
			}
			continue
		}
		if err != nil || got != test.want {
			t.Errorf("at(vec, %d) = (%d, %v) wanted %d", test.index, got, err, test.want)
		}
	}
}

func TestRecoverIndex(t *testing.T) {
	vec := []int{1, 2, 3}
	tests := []struct {
		index   int
		wantLen int
		message string
	}{
		{10, 3, "index 10 out of range for length 3"},
		{3, 3, "index 3 out of range for length 3"},
		{-1, -1, "index -1 out of range"},
	}

	for _, test := range tests {
		t.Run(test.message, func(t *testing.T) {
			i := test.index
			err := recoverIndex(func() {
				_ = vec[i]
			})
			var ie *indexError
			if !errors.As(err, &ie) {
				t.Fatalf("recoverIndex(vec[%d]) = %v wanted *indexError", i, err)
			}
			if ie.Index != test.index || ie.Len != test.wantLen {
				t.Errorf("recoverIndex(vec[%d]) = %+v wanted index %d length %d", i, ie, test.index, test.wantLen)
			}
			if err.Error() != test.message {
				t.Errorf("recoverIndex(vec[%d]) message = %q wanted %q", i, err.Error(), test.message)
			}
			if !errors.Is(err, errIndexOutOfRange) {
				t.Errorf("recoverIndex(vec[%d]) does not match errIndexOutOfRange", i)
			}
		})
	}

	if err := recoverIndex(func() {}); err != nil {
		t.Errorf("recoverIndex(no-op) = %v", err)
	}
}

func TestParseBoundsPanic(t *testing.T) {
	tests := []struct {
		msg   string
		ok    bool
		index int
		len   int
	}{
		{"runtime error: index out of range [7] with length 2", true, 7, 2},
		{"runtime error: index out of range [-4]", true, -4, -1},
		{"runtime error: slice bounds out of range [:5] with capacity 3", false, 0, 0},
		{"runtime error: invalid memory address or nil pointer dereference", false, 0, 0},
	}

	for _, test := range tests {
		ie, ok := parseBoundsPanic(test.msg)
		if ok != test.ok {
			t.Errorf("parseBoundsPanic(%q) ok = %t wanted %t", test.msg, ok, test.ok)
			continue
		}
		if ok && (ie.Index != test.index || ie.Len != test.len) {
			t.Errorf("parseBoundsPanic(%q) = %+v wanted index %d length %d", test.msg, ie, test.index, test.len)
		}
	}
}

func TestRecoverIndexOtherPanic(t *testing.T) {
	defer func() {
		if r := recover(); r != "boom" {
			t.Errorf("recovered %v wanted boom", r)
		}
	}()
	_ = recoverIndex(func() {
		panic("boom")
	})
	t.Errorf("recoverIndex swallowed an unrelated panic")
}
